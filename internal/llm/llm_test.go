package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thirabeach/concierge/internal/config"
)

// fakeGroq captures the chat-completion request and returns a canned reply.
func fakeGroq(t *testing.T, reply string, captured *openai.ChatCompletionRequest) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		assert.NoError(t, json.NewDecoder(r.Body).Decode(captured))

		resp := openai.ChatCompletionResponse{
			Choices: []openai.ChatCompletionChoice{
				{Message: openai.ChatCompletionMessage{Role: "assistant", Content: reply}},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}))
}

func newTestClient(baseURL string) *GroqClient {
	return NewGroqClient(&config.Config{
		GroqAPIKey:  "test-key",
		GroqBaseURL: baseURL,
		GroqModel:   "llama-3.3-70b-versatile",
	})
}

func TestClassifyTrimsWhitespace(t *testing.T) {
	var captured openai.ChatCompletionRequest
	srv := fakeGroq(t, " 1\n", &captured)
	defer srv.Close()

	category, err := newTestClient(srv.URL).Classify(context.Background(), "I want to book a room")
	require.NoError(t, err)

	assert.Equal(t, "1", category)
	assert.Equal(t, "llama-3.3-70b-versatile", captured.Model)
	assert.Equal(t, 10, captured.MaxTokens)
	require.Len(t, captured.Messages, 1)
	assert.Equal(t, "user", captured.Messages[0].Role)
	assert.Contains(t, captured.Messages[0].Content, "Query: I want to book a room")
	assert.Contains(t, captured.Messages[0].Content, "Respond with only the category number (1 or 2).")
}

func TestClassifyReturnsUnrecognizedOutputVerbatim(t *testing.T) {
	var captured openai.ChatCompletionRequest
	srv := fakeGroq(t, "neither", &captured)
	defer srv.Close()

	category, err := newTestClient(srv.URL).Classify(context.Background(), "hello")
	require.NoError(t, err)
	assert.Equal(t, "neither", category)
}

func TestClassifyTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"rate limited"}}`, http.StatusTooManyRequests)
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).Classify(context.Background(), "hello")
	assert.Error(t, err)
}

func TestGenerateSendsPersonaAndContext(t *testing.T) {
	var captured openai.ChatCompletionRequest
	srv := fakeGroq(t, "Welcome to Thira Beach Home!", &captured)
	defer srv.Close()

	reply, err := newTestClient(srv.URL).Generate(context.Background(), "Any rooms free?", "Room: Garden Villa\nDescription: d")
	require.NoError(t, err)

	assert.Equal(t, "Welcome to Thira Beach Home!", reply)
	assert.Equal(t, 300, captured.MaxTokens)
	require.Len(t, captured.Messages, 2)
	assert.Equal(t, "system", captured.Messages[0].Role)
	assert.Contains(t, captured.Messages[0].Content, "Maya")
	assert.Equal(t, "user", captured.Messages[1].Role)
	assert.Equal(t, "Query: Any rooms free?\nContext: Room: Garden Villa\nDescription: d", captured.Messages[1].Content)
}

func TestGenerateTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"server error"}}`, http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).Generate(context.Background(), "q", "c")
	assert.Error(t, err)
}
