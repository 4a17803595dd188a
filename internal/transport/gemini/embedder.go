package gemini

import (
	"context"
	"fmt"
	"time"

	"github.com/tasnim001/Ai-Job-Search/internal/domain"
	"github.com/tasnim001/Ai-Job-Search/internal/metrics"
)

const providerName = "gemini"

// Embedder is the Gemini embedding provider.
type Embedder struct {
	client     *Client
	model      string
	dimensions int
}

// NewEmbedder creates a Gemini embedding provider. The model's native
// dimension should match dimensions; vectors are truncated or zero-padded
// if the provider disagrees with the configured index width.
func NewEmbedder(client *Client, model string, dimensions int) *Embedder {
	return &Embedder{client: client, model: model, dimensions: dimensions}
}

// Embed implements domain.Embedder.
func (e *Embedder) Embed(ctx context.Context, text string) ([]float32, error) {
	start := time.Now()

	vec, err := e.client.embedContent(ctx, e.model, text)
	if err != nil {
		metrics.EmbeddingRequestsTotal.WithLabelValues(providerName, e.model, "error").Inc()
		return nil, fmt.Errorf("%w: %w", domain.ErrEmbeddingProviderError, err)
	}

	metrics.EmbeddingRequestsTotal.WithLabelValues(providerName, e.model, "success").Inc()
	metrics.EmbeddingRequestDuration.WithLabelValues(providerName, e.model).Observe(time.Since(start).Seconds())

	return fitDimension(vec, e.dimensions), nil
}

// HealthCheck probes the embedding endpoint with a fixed short input.
func (e *Embedder) HealthCheck(ctx context.Context) error {
	if _, err := e.client.embedContent(ctx, e.model, "ping"); err != nil {
		return fmt.Errorf("gemini health probe: %w", err)
	}
	return nil
}

// fitDimension pads with zeros or truncates so the vector always matches
// the index dimension.
func fitDimension(vec []float32, dim int) []float32 {
	if dim <= 0 || len(vec) == dim {
		return vec
	}
	if len(vec) > dim {
		return vec[:dim]
	}
	out := make([]float32, dim)
	copy(out, vec)
	return out
}
