// Package vector implements the semantic retrieval channel: KNN search
// over job embeddings in the FT index.
package vector

import (
	"context"
	"fmt"
	"strings"

	"github.com/tasnim001/Ai-Job-Search/internal/db"
	"github.com/tasnim001/Ai-Job-Search/internal/domain"
)

const indexName = domain.KeyPrefix + "jobs:idx"

// returnFields is the narrow projection the vector channel exposes: the
// candidate shape carries a title snippet, category and skills, nothing
// else. Full attributes come from the structured channel during fusion.
var returnFields = []string{"job_id", "title", "category", "skills"}

// store is the consumer interface for KNN search (ISP).
type store interface {
	SearchKNN(ctx context.Context, q *db.KNNQuery) (*db.SearchResult, error)
}

// Repo implements the orchestrator's VectorRetriever contract.
type Repo struct {
	store store
}

// New creates a vector retrieval repository.
func New(s store) *Repo {
	return &Repo{store: s}
}

// Search returns up to limit nearest-neighbor candidates for the query
// vector, ordered by similarity descending.
func (r *Repo) Search(ctx context.Context, vec []float32, limit int) ([]domain.VectorCandidate, error) {
	result, err := r.store.SearchKNN(ctx, &db.KNNQuery{
		IndexName:    indexName,
		Vector:       vec,
		K:            limit,
		ReturnFields: returnFields,
	})
	if err != nil {
		return nil, fmt.Errorf("knn search: %w", err)
	}

	candidates := make([]domain.VectorCandidate, 0, len(result.Entries))
	for _, entry := range result.Entries {
		jobID := entry.Fields["job_id"]
		if jobID == "" {
			// key format mm:job:<id>; fall back to it when the
			// projection is missing the id field
			jobID = strings.TrimPrefix(entry.Key, domain.KeyPrefix+"job:")
		}

		cand := domain.VectorCandidate{
			JobID:        jobID,
			TitleSnippet: entry.Fields["title"],
			Category:     entry.Fields["category"],
			Skills:       []string{},
			Similarity:   entry.Score,
		}
		if skills := entry.Fields["skills"]; skills != "" {
			cand.Skills = strings.Split(skills, ",")
		}
		candidates = append(candidates, cand)
	}
	return candidates, nil
}
