package domain

import "context"

// DefaultEmbeddingDimension is the vector width used when no vectorizer
// dimension is configured.
const DefaultEmbeddingDimension = 768

// Embedder is the shared text vectorization contract between layers.
// Implementations must be safe for concurrent use.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

// EmbedderHealthChecker verifies embedding provider availability.
type EmbedderHealthChecker interface {
	HealthCheck(ctx context.Context) error
}
