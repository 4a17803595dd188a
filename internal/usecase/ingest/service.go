// Package ingest handles job indexing: validation, document vectorization
// and persistence into the searchable store.
package ingest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/panjf2000/ants/v2"
	"go.uber.org/zap"

	"github.com/tasnim001/Ai-Job-Search/internal/domain"
)

// MaxBatchSize is the maximum number of jobs per batch request.
const MaxBatchSize = 100

// Result is the per-item outcome of a batch indexing request.
type Result struct {
	JobID string `json:"job_id"`
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

// Service indexes jobs. Batch indexing embeds items concurrently on a
// bounded worker pool so one large batch cannot exhaust provider quotas.
type Service struct {
	repo   Repository
	embed  Embedder
	pool   *ants.Pool
	logger *zap.Logger
}

// New creates an ingestion service with the given embedding worker count.
func New(repo Repository, embed Embedder, workers int, logger *zap.Logger) (*Service, error) {
	if workers < 1 {
		workers = 1
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	pool, err := ants.NewPool(workers)
	if err != nil {
		return nil, fmt.Errorf("create worker pool: %w", err)
	}

	return &Service{repo: repo, embed: embed, pool: pool, logger: logger}, nil
}

// Close releases the worker pool. The service must not be used afterwards.
func (s *Service) Close() {
	s.pool.Release()
}

// EnsureIndex creates the search index if missing.
func (s *Service) EnsureIndex(ctx context.Context) error {
	return s.repo.EnsureIndex(ctx)
}

// Index validates, vectorizes and stores one job. The assigned job id is
// returned on the stored record.
func (s *Service) Index(ctx context.Context, insert *domain.JobInsert) (domain.Job, error) {
	if err := insert.Validate(); err != nil {
		return domain.Job{}, err
	}

	job := jobFromInsert(insert)

	vector, err := s.embed.Embed(ctx, documentText(insert))
	if err != nil {
		return domain.Job{}, fmt.Errorf("vectorize job: %w", err)
	}

	if err := s.repo.Save(ctx, &job, vector); err != nil {
		return domain.Job{}, fmt.Errorf("store job: %w", err)
	}

	s.logger.Info("job indexed",
		zap.String("job_id", job.JobID.String()), zap.String("title", job.Title))
	return job, nil
}

// Get returns one indexed job by id.
func (s *Service) Get(ctx context.Context, id string) (domain.Job, error) {
	return s.repo.Get(ctx, id)
}

// IndexBatch indexes up to MaxBatchSize jobs with per-item error reporting.
// One bad item never fails its neighbours.
func (s *Service) IndexBatch(ctx context.Context, inserts []domain.JobInsert) []Result {
	results := make([]Result, len(inserts))

	if len(inserts) > MaxBatchSize {
		for i := range results {
			results[i] = Result{Error: fmt.Sprintf("batch size exceeds %d", MaxBatchSize)}
		}
		return results
	}

	var wg sync.WaitGroup
	for i := range inserts {
		i := i
		wg.Add(1)

		task := func() {
			defer wg.Done()
			job, err := s.Index(ctx, &inserts[i])
			if err != nil {
				results[i] = Result{Error: err.Error()}
				return
			}
			results[i] = Result{JobID: job.JobID.String(), OK: true}
		}

		// Submit fails only when the pool is released; run inline then.
		if err := s.pool.Submit(task); err != nil {
			task()
		}
	}
	wg.Wait()

	return results
}

// documentText builds the text that represents a job in vector space.
// Title leads so it dominates the embedding.
func documentText(in *domain.JobInsert) string {
	var b strings.Builder
	b.WriteString(in.Title)
	if in.Description != "" {
		b.WriteString(" | ")
		b.WriteString(in.Description)
	}
	if len(in.Skills) > 0 {
		b.WriteString(" | Skills: ")
		b.WriteString(strings.Join(in.Skills, ", "))
	}
	if in.Category != "" {
		b.WriteString(" | Category: ")
		b.WriteString(in.Category)
	}
	return b.String()
}

// jobFromInsert assigns the id and timestamps and lifts the insert payload
// into the read model.
func jobFromInsert(in *domain.JobInsert) domain.Job {
	now := time.Now().UTC()

	status := in.Status
	if status == "" {
		status = domain.StatusActive
	}

	job := domain.Job{
		JobID:      uuid.New(),
		Title:      in.Title,
		Skills:     in.Skills,
		Status:     &status,
		DatePosted: &now,
	}
	if in.Skills == nil {
		job.Skills = []string{}
	}

	if in.ProviderID != uuid.Nil {
		providerID := in.ProviderID
		job.ProviderID = &providerID
	}
	setOpt(&job.Description, in.Description)
	setOpt(&job.Category, in.Category)
	setOpt(&job.City, in.City)
	setOpt(&job.Country, in.Country)
	setOpt(&job.EmploymentType, in.EmploymentType)
	setOpt(&job.Currency, in.Currency)
	setOpt(&job.ExperienceLevel, in.ExperienceLevel)

	if in.Latitude != 0 || in.Longitude != 0 {
		lat, lon := in.Latitude, in.Longitude
		job.Latitude, job.Longitude = &lat, &lon
	}
	if in.SalaryMin != 0 {
		v := in.SalaryMin
		job.SalaryMin = &v
	}
	if in.SalaryMax != 0 {
		v := in.SalaryMax
		job.SalaryMax = &v
	}
	verified := in.IsVerified
	job.IsVerified = &verified

	return job
}

func setOpt(dst **string, v string) {
	if v != "" {
		*dst = &v
	}
}
