package llm

import (
	"context"
	"fmt"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/thirabeach/concierge/internal/utils"
)

const classifyPromptTemplate = `Classify the following query into one of two categories:
1. Checking details - if the query is about wanting to book a hotel room
2. Getting information - if the query is about wanting to know general information related to the hotel.

Query: %s

Respond with only the category number (1 or 2).`

// Classify maps a guest query to a category digit. The raw trimmed model
// output is returned; callers reject anything outside {"1","2"}. Transport
// failures are returned as-is with no retry.
func (g *GroqClient) Classify(ctx context.Context, query string) (string, error) {
	utils.Zlog.Info("Classifying query", zap.String("query", truncate(query, 50)))

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: g.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: fmt.Sprintf(classifyPromptTemplate, query),
			},
		},
		MaxTokens:   10,
		Temperature: 0.5,
		TopP:        1,
	})
	if err != nil {
		return "", fmt.Errorf("classification request failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("classification returned no choices")
	}

	result := strings.TrimSpace(resp.Choices[0].Message.Content)
	utils.Zlog.Info("Query classified", zap.String("category", result))
	return result, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
