package query

import (
	"context"

	"github.com/thirabeach/concierge/internal/core"
)

// Service answers guest queries over the shared pipeline.
type Service struct {
	pipeline *core.Pipeline
}

func NewService(pipeline *core.Pipeline) *Service {
	return &Service{pipeline: pipeline}
}

func (s *Service) Answer(ctx context.Context, q string) (string, error) {
	return s.pipeline.Answer(ctx, q)
}
