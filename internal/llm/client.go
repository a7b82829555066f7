package llm

import (
	openai "github.com/sashabaranov/go-openai"

	"github.com/thirabeach/concierge/internal/config"
)

// GroqClient wraps the Groq chat-completions API, reached through its
// OpenAI-compatible endpoint.
type GroqClient struct {
	client *openai.Client
	model  string
}

func NewGroqClient(cfg *config.Config) *GroqClient {
	clientCfg := openai.DefaultConfig(cfg.GroqAPIKey)
	clientCfg.BaseURL = cfg.GroqBaseURL

	return &GroqClient{
		client: openai.NewClientWithConfig(clientCfg),
		model:  cfg.GroqModel,
	}
}
