// Package jobs persists job records as Redis hashes and implements the
// structured retrieval channel over the FT index.
package jobs

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/tasnim001/Ai-Job-Search/internal/db"
	"github.com/tasnim001/Ai-Job-Search/internal/domain"
)

const (
	keyPrefix = domain.KeyPrefix + "job:"
	indexName = domain.KeyPrefix + "jobs:idx"
)

// store is the consumer interface for job persistence (ISP).
type store interface {
	HSet(ctx context.Context, key string, fields map[string]string) error
	HGetAll(ctx context.Context, key string) (map[string]string, error)
	Exists(ctx context.Context, key string) (bool, error)
	CreateIndex(ctx context.Context, def *db.IndexDefinition) error
	IndexExists(ctx context.Context, name string) (bool, error)
	SearchList(ctx context.Context, index, query string, limit int, fields []string) (*db.SearchResult, error)
}

// Repo reads and writes job records. It implements the orchestrator's
// StructuredRetriever contract and the ingestion service's writer contract.
type Repo struct {
	store     store
	vectorDim int
	logger    *zap.Logger
}

// New creates a job repository.
func New(s store, vectorDim int, logger *zap.Logger) *Repo {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Repo{store: s, vectorDim: vectorDim, logger: logger}
}

// EnsureIndex creates the job FT index if it does not exist yet.
func (r *Repo) EnsureIndex(ctx context.Context) error {
	exists, err := r.store.IndexExists(ctx, indexName)
	if err != nil {
		return fmt.Errorf("check index: %w", err)
	}
	if exists {
		return nil
	}

	def := &db.IndexDefinition{
		Name:     indexName,
		Prefixes: []string{keyPrefix},
		Fields: []db.IndexField{
			{Name: "status", Type: db.IndexFieldTag},
			{Name: "city", Type: db.IndexFieldTag},
			{Name: "category", Type: db.IndexFieldTag},
			{Name: "employment_type", Type: db.IndexFieldTag},
			{Name: "experience_level", Type: db.IndexFieldTag},
			{Name: "skills", Type: db.IndexFieldTag, TagSeparator: skillSeparator},
			{Name: "salary_min", Type: db.IndexFieldNumeric},
			{Name: "salary_max", Type: db.IndexFieldNumeric},
			{Name: "title", Type: db.IndexFieldText},
			{Name: "embedding", Type: db.IndexFieldVector, VectorDim: r.vectorDim},
		},
	}

	if err := r.store.CreateIndex(ctx, def); err != nil && err != db.ErrIndexExists {
		return fmt.Errorf("create index: %w", err)
	}
	return nil
}

// Save writes a job and its embedding as one hash.
func (r *Repo) Save(ctx context.Context, job *domain.Job, vector []float32) error {
	key := keyPrefix + job.JobID.String()
	if err := r.store.HSet(ctx, key, jobToFields(job, vector)); err != nil {
		return fmt.Errorf("save job %s: %w", job.JobID, err)
	}
	return nil
}

// Get returns one job by id, or domain.ErrJobNotFound.
func (r *Repo) Get(ctx context.Context, id string) (domain.Job, error) {
	key := keyPrefix + id

	exists, err := r.store.Exists(ctx, key)
	if err != nil {
		return domain.Job{}, fmt.Errorf("check job %s: %w", id, err)
	}
	if !exists {
		return domain.Job{}, domain.ErrJobNotFound
	}

	fields, err := r.store.HGetAll(ctx, key)
	if err != nil {
		return domain.Job{}, fmt.Errorf("get job %s: %w", id, err)
	}
	delete(fields, fieldEmbedding)

	job, err := jobFromFields(fields)
	if err != nil {
		return domain.Job{}, fmt.Errorf("decode job %s: %w", id, err)
	}
	return job, nil
}

// Filter implements the structured retrieval channel: an FT tag query over
// the equality filters the index can serve (status, city, category,
// employment type, experience level). Salary ranges and skill overlap are
// deliberately left to fusion, which also sees partial vector candidates.
//
// Records that fail to decode are skipped one at a time; a single malformed
// hash never fails the whole channel.
func (r *Repo) Filter(ctx context.Context, filters domain.ParsedFilters, limit int) ([]domain.Job, error) {
	result, err := r.store.SearchList(ctx, indexName, buildTagQuery(filters), limit, nil)
	if err != nil {
		return nil, fmt.Errorf("filter jobs: %w", err)
	}

	out := make([]domain.Job, 0, len(result.Entries))
	for _, entry := range result.Entries {
		delete(entry.Fields, fieldEmbedding)
		job, err := jobFromFields(entry.Fields)
		if err != nil {
			r.logger.Warn("skipping malformed job record",
				zap.String("key", entry.Key), zap.Error(err))
			continue
		}
		out = append(out, job)
	}
	return out, nil
}

// buildTagQuery renders the indexable equality filters as an FT query.
// TAG matching is case-insensitive, which is exactly the comparison
// semantics the filter fields require.
func buildTagQuery(f domain.ParsedFilters) string {
	var parts []string

	status := f.Status
	if status == "" {
		status = domain.StatusActive
	}
	parts = append(parts, tagClause("status", status))

	if f.Location != nil {
		parts = append(parts, tagClause("city", *f.Location))
	}
	if f.Category != nil {
		parts = append(parts, tagClause("category", *f.Category))
	}
	if f.EmploymentType != nil {
		parts = append(parts, tagClause("employment_type", *f.EmploymentType))
	}
	if f.ExperienceLevel != nil {
		parts = append(parts, tagClause("experience_level", *f.ExperienceLevel))
	}

	return strings.Join(parts, " ")
}

func tagClause(field, value string) string {
	return fmt.Sprintf("@%s:{%s}", field, escapeTag(value))
}

// escapeTag escapes the characters the FT query syntax treats specially
// inside TAG values.
func escapeTag(v string) string {
	var b strings.Builder
	for _, c := range v {
		if strings.ContainsRune(` ,.<>{}[]"':;!@#$%^&*()-+=~|/\`, c) {
			b.WriteByte('\\')
		}
		b.WriteRune(c)
	}
	return b.String()
}
