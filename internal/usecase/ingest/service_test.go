package ingest

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"

	"github.com/tasnim001/Ai-Job-Search/internal/domain"
)

type mockRepo struct {
	mu      sync.Mutex
	saved   []domain.Job
	vectors [][]float32
	saveErr error
}

func (m *mockRepo) EnsureIndex(_ context.Context) error { return nil }

func (m *mockRepo) Save(_ context.Context, job *domain.Job, vector []float32) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saved = append(m.saved, *job)
	m.vectors = append(m.vectors, vector)
	return nil
}

func (m *mockRepo) Get(_ context.Context, _ string) (domain.Job, error) {
	return domain.Job{}, domain.ErrJobNotFound
}

type mockEmbedder struct {
	vec   []float32
	err   error
	texts []string
	mu    sync.Mutex
}

func (m *mockEmbedder) Embed(_ context.Context, text string) ([]float32, error) {
	m.mu.Lock()
	m.texts = append(m.texts, text)
	m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	return m.vec, nil
}

func newService(t *testing.T, repo *mockRepo, embed *mockEmbedder) *Service {
	t.Helper()
	svc, err := New(repo, embed, 2, nil)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	t.Cleanup(svc.Close)
	return svc
}

func TestIndex_AssignsIDAndDefaults(t *testing.T) {
	repo := &mockRepo{}
	embed := &mockEmbedder{vec: []float32{0.1, 0.2}}
	svc := newService(t, repo, embed)

	insert := &domain.JobInsert{
		Title:       "Backend Engineer",
		Description: "Build APIs",
		Skills:      []string{"Go", "Redis"},
		Category:    "Software Engineering",
	}

	job, err := svc.Index(context.Background(), insert)
	if err != nil {
		t.Fatalf("Index failed: %v", err)
	}

	if job.JobID == uuid.Nil {
		t.Error("expected an assigned job id")
	}
	if job.Status == nil || *job.Status != domain.StatusActive {
		t.Error("missing status should default to active")
	}
	if job.DatePosted == nil {
		t.Error("expected date_posted to be set")
	}
	if len(repo.saved) != 1 {
		t.Fatalf("expected 1 saved job, got %d", len(repo.saved))
	}
	if len(repo.vectors[0]) != 2 {
		t.Errorf("stored vector has %d dims", len(repo.vectors[0]))
	}
}

func TestIndex_ValidationRejected(t *testing.T) {
	svc := newService(t, &mockRepo{}, &mockEmbedder{vec: []float32{1}})

	_, err := svc.Index(context.Background(), &domain.JobInsert{Title: ""})
	if !errors.Is(err, domain.ErrTitleRequired) {
		t.Errorf("expected ErrTitleRequired, got %v", err)
	}

	_, err = svc.Index(context.Background(), &domain.JobInsert{
		Title: "X", SalaryMin: 9000, SalaryMax: 100,
	})
	if !errors.Is(err, domain.ErrSalaryRange) {
		t.Errorf("expected ErrSalaryRange, got %v", err)
	}
}

func TestIndex_EmbedderFailure(t *testing.T) {
	repo := &mockRepo{}
	svc := newService(t, repo, &mockEmbedder{err: domain.ErrEmbeddingProviderError})

	_, err := svc.Index(context.Background(), &domain.JobInsert{Title: "X"})
	if !errors.Is(err, domain.ErrEmbeddingProviderError) {
		t.Errorf("expected provider error, got %v", err)
	}
	if len(repo.saved) != 0 {
		t.Error("nothing must be stored when vectorization fails")
	}
}

func TestIndexBatch_PerItemErrors(t *testing.T) {
	repo := &mockRepo{}
	svc := newService(t, repo, &mockEmbedder{vec: []float32{1}})

	results := svc.IndexBatch(context.Background(), []domain.JobInsert{
		{Title: "Valid One"},
		{Title: ""},
		{Title: "Valid Two"},
	})

	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	if !results[0].OK || !results[2].OK {
		t.Errorf("valid items must succeed: %+v", results)
	}
	if results[1].OK || results[1].Error == "" {
		t.Errorf("invalid item must carry its error: %+v", results[1])
	}
	if len(repo.saved) != 2 {
		t.Errorf("expected 2 stored jobs, got %d", len(repo.saved))
	}
}

func TestIndexBatch_SizeLimit(t *testing.T) {
	svc := newService(t, &mockRepo{}, &mockEmbedder{vec: []float32{1}})

	inserts := make([]domain.JobInsert, MaxBatchSize+1)
	for i := range inserts {
		inserts[i] = domain.JobInsert{Title: "X"}
	}

	results := svc.IndexBatch(context.Background(), inserts)
	for i, r := range results {
		if r.OK {
			t.Fatalf("oversized batch item %d must be rejected", i)
		}
	}
}

func TestDocumentText(t *testing.T) {
	got := documentText(&domain.JobInsert{
		Title:       "Data Scientist",
		Description: "ML pipelines",
		Skills:      []string{"Python", "SQL"},
		Category:    "Data Science",
	})
	want := "Data Scientist | ML pipelines | Skills: Python, SQL | Category: Data Science"
	if got != want {
		t.Errorf("documentText = %q, want %q", got, want)
	}

	if got := documentText(&domain.JobInsert{Title: "Clerk"}); got != "Clerk" {
		t.Errorf("minimal documentText = %q", got)
	}

	if strings.Contains(documentText(&domain.JobInsert{Title: "A"}), "|") {
		t.Error("no separators expected without optional sections")
	}
}
