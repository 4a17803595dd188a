package jobs

import (
	"context"
	"reflect"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/tasnim001/Ai-Job-Search/internal/db"
	"github.com/tasnim001/Ai-Job-Search/internal/domain"
)

type mockStore struct {
	hashes     map[string]map[string]string
	indexes    map[string]bool
	listResult *db.SearchResult
	listQuery  string
	listErr    error
}

func newMockStore() *mockStore {
	return &mockStore{
		hashes:  make(map[string]map[string]string),
		indexes: make(map[string]bool),
	}
}

func (m *mockStore) HSet(_ context.Context, key string, fields map[string]string) error {
	m.hashes[key] = fields
	return nil
}

func (m *mockStore) HGetAll(_ context.Context, key string) (map[string]string, error) {
	fields, ok := m.hashes[key]
	if !ok {
		return map[string]string{}, nil
	}
	out := make(map[string]string, len(fields))
	for k, v := range fields {
		out[k] = v
	}
	return out, nil
}

func (m *mockStore) Exists(_ context.Context, key string) (bool, error) {
	_, ok := m.hashes[key]
	return ok, nil
}

func (m *mockStore) CreateIndex(_ context.Context, def *db.IndexDefinition) error {
	m.indexes[def.Name] = true
	return nil
}

func (m *mockStore) IndexExists(_ context.Context, name string) (bool, error) {
	return m.indexes[name], nil
}

func (m *mockStore) SearchList(_ context.Context, _ string, query string, _ int, _ []string) (*db.SearchResult, error) {
	m.listQuery = query
	if m.listErr != nil {
		return nil, m.listErr
	}
	if m.listResult == nil {
		return &db.SearchResult{}, nil
	}
	return m.listResult, nil
}

func sampleJob() domain.Job {
	city := "Dhaka"
	category := "Software Engineering"
	salaryMin, salaryMax := 50000, 80000
	status := domain.StatusActive
	verified := true
	posted := time.Date(2026, 5, 12, 9, 30, 0, 0, time.UTC)
	providerID := uuid.New()

	return domain.Job{
		JobID:      uuid.New(),
		ProviderID: &providerID,
		Title:      "Backend Engineer",
		City:       &city,
		Category:   &category,
		SalaryMin:  &salaryMin,
		SalaryMax:  &salaryMax,
		Skills:     []string{"Go", "Redis"},
		Status:     &status,
		IsVerified: &verified,
		DatePosted: &posted,
	}
}

func TestJobFieldsRoundTrip(t *testing.T) {
	job := sampleJob()

	fields := jobToFields(&job, []float32{0.5, -0.5})
	delete(fields, fieldEmbedding)

	got, err := jobFromFields(fields)
	if err != nil {
		t.Fatalf("jobFromFields failed: %v", err)
	}
	if !reflect.DeepEqual(got, job) {
		t.Errorf("round trip mismatch:\ngot:  %+v\nwant: %+v", got, job)
	}
}

func TestJobFromFields_Malformed(t *testing.T) {
	cases := []struct {
		name   string
		fields map[string]string
	}{
		{"missing job_id", map[string]string{fieldTitle: "X"}},
		{"bad job_id", map[string]string{fieldJobID: "nope", fieldTitle: "X"}},
		{"missing title", map[string]string{fieldJobID: uuid.NewString()}},
		{"bad salary", map[string]string{
			fieldJobID: uuid.NewString(), fieldTitle: "X", fieldSalaryMin: "lots",
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := jobFromFields(tc.fields); err == nil {
				t.Error("expected decode error")
			}
		})
	}
}

func TestSaveAndGet(t *testing.T) {
	store := newMockStore()
	repo := New(store, 2, nil)
	job := sampleJob()

	if err := repo.Save(context.Background(), &job, []float32{0.1, 0.2}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	stored, ok := store.hashes[keyPrefix+job.JobID.String()]
	if !ok {
		t.Fatal("job hash not written under expected key")
	}
	if stored[fieldEmbedding] == "" {
		t.Error("embedding blob must be stored with the job")
	}

	got, err := repo.Get(context.Background(), job.JobID.String())
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.JobID != job.JobID || got.Title != job.Title {
		t.Errorf("got %+v", got)
	}
}

func TestGet_NotFound(t *testing.T) {
	repo := New(newMockStore(), 2, nil)

	_, err := repo.Get(context.Background(), uuid.NewString())
	if err != domain.ErrJobNotFound {
		t.Errorf("err = %v, want ErrJobNotFound", err)
	}
}

func TestEnsureIndex_Idempotent(t *testing.T) {
	store := newMockStore()
	repo := New(store, 768, nil)

	if err := repo.EnsureIndex(context.Background()); err != nil {
		t.Fatalf("EnsureIndex failed: %v", err)
	}
	if !store.indexes[indexName] {
		t.Fatal("index not created")
	}
	if err := repo.EnsureIndex(context.Background()); err != nil {
		t.Fatalf("second EnsureIndex failed: %v", err)
	}
}

func TestFilter_SkipsMalformedRecords(t *testing.T) {
	store := newMockStore()
	goodID := uuid.New()
	store.listResult = &db.SearchResult{
		Total: 2,
		Entries: []db.SearchEntry{
			{Key: keyPrefix + goodID.String(), Fields: map[string]string{
				fieldJobID: goodID.String(), fieldTitle: "Good",
			}},
			{Key: keyPrefix + "broken", Fields: map[string]string{
				fieldJobID: "broken", fieldTitle: "Bad",
			}},
		},
	}

	repo := New(store, 2, nil)
	jobs, err := repo.Filter(context.Background(), domain.NewParsedFilters("q"), 100)
	if err != nil {
		t.Fatalf("Filter failed: %v", err)
	}
	if len(jobs) != 1 || jobs[0].JobID != goodID {
		t.Errorf("expected only the decodable record, got %+v", jobs)
	}
}

func TestBuildTagQuery(t *testing.T) {
	t.Run("defaults to active status", func(t *testing.T) {
		got := buildTagQuery(domain.NewParsedFilters("q"))
		if got != "@status:{active}" {
			t.Errorf("query = %q", got)
		}
	})

	t.Run("all equality filters", func(t *testing.T) {
		f := domain.NewParsedFilters("q")
		city, cat, emp, exp := "Dhaka", "Software Engineering", "full-time", "mid"
		f.Location = &city
		f.Category = &cat
		f.EmploymentType = &emp
		f.ExperienceLevel = &exp

		got := buildTagQuery(f)
		want := `@status:{active} @city:{Dhaka} @category:{Software\ Engineering} ` +
			`@employment_type:{full\-time} @experience_level:{mid}`
		if got != want {
			t.Errorf("query = %q\nwant    %q", got, want)
		}
	})

	t.Run("salary and skills are not index filters", func(t *testing.T) {
		f := domain.NewParsedFilters("q")
		smin := 50000
		f.SalaryMin = &smin
		f.Skills = []string{"Python"}

		got := buildTagQuery(f)
		if got != "@status:{active}" {
			t.Errorf("salary/skills must be left to fusion, got %q", got)
		}
	})
}
