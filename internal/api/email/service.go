package email

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"github.com/thirabeach/concierge/internal/config"
	"github.com/thirabeach/concierge/internal/utils"
)

const (
	defaultSubject = "Room Availability at Thira Beach Home"
	defaultBody    = "Here are the details of the available rooms."
)

// Service relays transactional email through the Postmark API.
type Service struct {
	httpClient  *resty.Client
	senderEmail string
}

func NewService(cfg *config.Config) *Service {
	client := resty.New().
		SetBaseURL(cfg.PostmarkBaseURL).
		SetTimeout(30 * time.Second).
		SetHeader("Accept", "application/json").
		SetHeader("Content-Type", "application/json").
		SetHeader("X-Postmark-Server-Token", cfg.PostmarkAPIKey)

	return &Service{
		httpClient:  client,
		senderEmail: cfg.SenderEmail,
	}
}

// Send relays one email. Empty subject or body fall back to the room
// availability defaults. The upstream error body is surfaced verbatim.
func (s *Service) Send(ctx context.Context, toEmail, subject, body string) *Response {
	if subject == "" {
		subject = defaultSubject
	}
	if body == "" {
		body = defaultBody
	}

	resp, err := s.httpClient.R().
		SetContext(ctx).
		SetBody(postmarkEmail{
			From:     s.senderEmail,
			To:       toEmail,
			Subject:  subject,
			TextBody: body,
		}).
		Post("/email")
	if err != nil {
		utils.Zlog.Error("Postmark request failed", zap.Error(err))
		return &Response{Success: false, Error: fmt.Sprintf("failed to reach email API: %v", err)}
	}

	if resp.StatusCode() != 200 {
		utils.Zlog.Error("Postmark rejected email",
			zap.Int("status", resp.StatusCode()),
			zap.String("body", resp.String()))
		return &Response{Success: false, Error: resp.String()}
	}

	utils.Zlog.Info("Email sent", zap.String("to", toEmail))
	return &Response{Success: true, Message: "Email sent successfully"}
}
