package search

import (
	"context"

	"github.com/tasnim001/Ai-Job-Search/internal/domain"
)

// VectorRetriever is the semantic retrieval channel: nearest-neighbor
// search over job embeddings, ordered by similarity descending.
type VectorRetriever interface {
	Search(ctx context.Context, vector []float32, limit int) ([]domain.VectorCandidate, error)
}

// StructuredRetriever is the attribute retrieval channel. It only applies
// the equality filters it can index (status, city, category, employment
// type, experience level); salary ranges and skill intersections are
// fusion's responsibility.
type StructuredRetriever interface {
	Filter(ctx context.Context, filters domain.ParsedFilters, limit int) ([]domain.Job, error)
}

// QueryParser is the optional LLM parsing channel. Any error it returns is
// recovered by the rule-based parser and never surfaces to callers.
type QueryParser interface {
	Parse(ctx context.Context, query string) (domain.ParsedFilters, error)
}

// RuleParser is the deterministic fallback parser. It cannot fail.
type RuleParser interface {
	Parse(query string) domain.ParsedFilters
}
