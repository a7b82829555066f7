package core

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/thirabeach/concierge/internal/utils"
)

// Query categories returned by the classifier.
const (
	CategoryRoomDetails = "1"
	CategoryHotelInfo   = "2"
)

// ErrUnknownCategory is returned when the classifier produces anything
// outside {"1","2"}. Callers must surface an error, never a generated reply.
var ErrUnknownCategory = errors.New("invalid query classification")

// LLM is the hosted-model surface the pipeline depends on.
type LLM interface {
	Classify(ctx context.Context, query string) (string, error)
	Generate(ctx context.Context, query, contextText string) (string, error)
}

// RoomStore provides the formatted room-description block.
type RoomStore interface {
	FetchRoomDetails(ctx context.Context) (string, error)
}

// Pipeline runs the classify → resolve → generate flow shared by every chat
// surface. Requests are independent; the pipeline holds no per-request state.
type Pipeline struct {
	llm   LLM
	store RoomStore
}

func NewPipeline(llm LLM, store RoomStore) *Pipeline {
	return &Pipeline{llm: llm, store: store}
}

// ResolveContext maps a category to the context block passed to generation.
func (p *Pipeline) ResolveContext(ctx context.Context, category string) (string, error) {
	switch category {
	case CategoryRoomDetails:
		return p.store.FetchRoomDetails(ctx)
	case CategoryHotelInfo:
		return HotelInfo, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownCategory, category)
	}
}

// Answer classifies the query, resolves its context and generates the reply.
// Any step failing aborts the flow with no retry.
func (p *Pipeline) Answer(ctx context.Context, query string) (string, error) {
	category, err := p.llm.Classify(ctx, query)
	if err != nil {
		utils.Zlog.Error("Query classification failed", zap.Error(err))
		return "", err
	}

	contextText, err := p.ResolveContext(ctx, category)
	if err != nil {
		utils.Zlog.Error("Context resolution failed",
			zap.String("category", category),
			zap.Error(err))
		return "", err
	}

	reply, err := p.llm.Generate(ctx, query, contextText)
	if err != nil {
		utils.Zlog.Error("Response generation failed", zap.Error(err))
		return "", err
	}

	return reply, nil
}
