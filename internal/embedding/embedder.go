package embedding

import (
	"context"
	"errors"
)

var (
	ErrUnavailable   = errors.New("embedding service unavailable")
	ErrEmptyText     = errors.New("embedding input is empty")
	ErrEmptyResponse = errors.New("embedding response has no values")
)

// Embedder turns free text into a fixed-length vector. Vectors produced by the
// same Embedder are comparable with cosine similarity.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float64, error)
}

// Disabled is used when no embedding provider is configured. Every call fails
// with ErrUnavailable so callers degrade to a zero similarity.
type Disabled struct{}

func (Disabled) Embed(_ context.Context, _ string) ([]float64, error) {
	return nil, ErrUnavailable
}
