package twilio

import (
	"context"
	"errors"

	"github.com/thirabeach/concierge/internal/core"
)

const unableToClassify = "Unable to classify your query."

// Service turns an inbound message into reply text for the TwiML envelope.
type Service struct {
	pipeline *core.Pipeline
}

func NewService(pipeline *core.Pipeline) *Service {
	return &Service{pipeline: pipeline}
}

// Reply answers a message body. An unrecognized category becomes a polite
// in-band message rather than an HTTP error; transport failures propagate.
func (s *Service) Reply(ctx context.Context, body string) (string, error) {
	reply, err := s.pipeline.Answer(ctx, body)
	if err != nil {
		if errors.Is(err, core.ErrUnknownCategory) {
			return unableToClassify, nil
		}
		return "", err
	}
	return reply, nil
}
