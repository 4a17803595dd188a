package ingest

import (
	"context"

	"github.com/tasnim001/Ai-Job-Search/internal/domain"
)

// Repository persists jobs and owns the search index schema.
type Repository interface {
	EnsureIndex(ctx context.Context) error
	Save(ctx context.Context, job *domain.Job, vector []float32) error
	Get(ctx context.Context, id string) (domain.Job, error)
}

// Embedder vectorizes the job document text.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}
