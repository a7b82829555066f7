package llm

import (
	"context"
	"fmt"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/thirabeach/concierge/internal/utils"
)

const personaPrompt = "You are Maya, a friendly and professional hotel receptionist at Thira Beach Home. " +
	"Your job is to assist guests by providing accurate and helpful information about the hotel, " +
	"its amenities, and room availability."

// Generate produces the guest-facing reply for a query given the resolved
// context block. The model output is returned verbatim.
func (g *GroqClient) Generate(ctx context.Context, query, contextText string) (string, error) {
	utils.Zlog.Info("Generating response", zap.String("query", truncate(query, 50)))

	ctx, cancel := context.WithTimeout(ctx, 60*time.Second)
	defer cancel()

	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: g.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: personaPrompt,
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: fmt.Sprintf("Query: %s\nContext: %s", query, contextText),
			},
		},
		MaxTokens:   300,
		Temperature: 0.5,
		TopP:        1,
	})
	if err != nil {
		return "", fmt.Errorf("response generation failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("response generation returned no choices")
	}

	utils.Zlog.Info("Successfully generated response")
	return resp.Choices[0].Message.Content, nil
}
