package embedding

import (
	"context"

	"go.uber.org/zap"

	"github.com/tasnim001/Ai-Job-Search/internal/domain"
	"github.com/tasnim001/Ai-Job-Search/internal/metrics"
)

// FailoverEmbedder tries the primary provider and degrades to the offline
// embedder on any error. The caller never sees a primary failure; the
// offline vector keeps the query deterministic while the provider is down.
type FailoverEmbedder struct {
	primary  domain.Embedder
	fallback domain.Embedder
	provider string
	logger   *zap.Logger
}

// NewFailover creates the failover decorator. provider is the metrics label
// for the primary.
func NewFailover(primary, fallback domain.Embedder, provider string, logger *zap.Logger) *FailoverEmbedder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FailoverEmbedder{
		primary:  primary,
		fallback: fallback,
		provider: provider,
		logger:   logger,
	}
}

// Embed delegates to the primary and falls back on error.
func (e *FailoverEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	vec, err := e.primary.Embed(ctx, text)
	if err == nil {
		return vec, nil
	}

	metrics.EmbeddingFallbacksTotal.WithLabelValues(e.provider).Inc()
	e.logger.Warn("embedding provider failed, using offline fallback",
		zap.String("provider", e.provider), zap.Error(err))

	return e.fallback.Embed(ctx, text)
}

// HealthCheck reports the primary's health; the fallback has none to check.
func (e *FailoverEmbedder) HealthCheck(ctx context.Context) error {
	if hc, ok := e.primary.(domain.EmbedderHealthChecker); ok {
		return hc.HealthCheck(ctx)
	}
	return nil
}
