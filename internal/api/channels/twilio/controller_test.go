package twilio

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thirabeach/concierge/internal/config"
	"github.com/thirabeach/concierge/internal/core"
)

type fakeLLM struct {
	category string
	reply    string
}

func (f *fakeLLM) Classify(ctx context.Context, query string) (string, error) {
	return f.category, nil
}

func (f *fakeLLM) Generate(ctx context.Context, query, contextText string) (string, error) {
	return f.reply, nil
}

type fakeStore struct{ details string }

func (f *fakeStore) FetchRoomDetails(ctx context.Context) (string, error) {
	return f.details, nil
}

func newTestRouter(llm core.LLM, cfg *config.Config) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	pipeline := core.NewPipeline(llm, &fakeStore{details: "Room: Garden Villa\nDescription: d"})
	router.POST("/twilio_webhook", NewController(NewService(pipeline), cfg).Webhook)
	return router
}

func postForm(router *gin.Engine, form url.Values) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/twilio_webhook", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	router.ServeHTTP(w, req)
	return w
}

func TestWebhookMissingFields(t *testing.T) {
	router := newTestRouter(&fakeLLM{}, &config.Config{})

	cases := []url.Values{
		{},
		{"From": {"+14155552671"}},
		{"Body": {"Do you have rooms?"}},
	}
	for _, form := range cases {
		w := postForm(router, form)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Phone number and message are required")
		assert.Contains(t, w.Header().Get("Content-Type"), "application/xml")
	}
}

func TestWebhookRepliesInTwiML(t *testing.T) {
	router := newTestRouter(&fakeLLM{category: core.CategoryRoomDetails, reply: "The Garden Villa is available."}, &config.Config{})

	w := postForm(router, url.Values{
		"From": {"+14155552671"},
		"Body": {"Do you have rooms?"},
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "application/xml")
	assert.Contains(t, w.Body.String(), "<Response>")
	assert.Contains(t, w.Body.String(), "<Message>The Garden Villa is available.</Message>")
}

func TestWebhookUnknownCategoryMessage(t *testing.T) {
	router := newTestRouter(&fakeLLM{category: "weird"}, &config.Config{})

	w := postForm(router, url.Values{
		"From": {"+14155552671"},
		"Body": {"???"},
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Unable to classify your query.")
}

func TestWebhookRejectsBadSignature(t *testing.T) {
	cfg := &config.Config{TwilioAuthToken: "secret-token"}
	router := newTestRouter(&fakeLLM{category: core.CategoryHotelInfo, reply: "hi"}, cfg)

	w := httptest.NewRecorder()
	form := url.Values{"From": {"+14155552671"}, "Body": {"hello"}}
	req, _ := http.NewRequest(http.MethodPost, "/twilio_webhook", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("X-Twilio-Signature", "bogus")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}
