package matchmaker

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSearch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/search" {
			t.Errorf("path = %q, want /search", r.URL.Path)
		}
		if got := r.URL.Query().Get("q"); got != "python developer" {
			t.Errorf("q = %q, want %q", got, "python developer")
		}
		if got := r.Header.Get("Authorization"); got != "Bearer secret" {
			t.Errorf("Authorization = %q, want bearer token", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(SearchResponse{
			Query: "python developer",
			Results: []Job{
				{JobID: "a1", Title: "Python Developer", MatchScore: 0.9},
			},
		})
	}))
	defer srv.Close()

	client, err := New(srv.URL, WithAPIKey("secret"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	resp, err := client.Search(context.Background(), "python developer")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(resp.Results) != 1 || resp.Results[0].Title != "Python Developer" {
		t.Fatalf("unexpected results: %+v", resp.Results)
	}
}

func TestCreateAndGetJob(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/jobs":
			var insert JobInsert
			if err := json.NewDecoder(r.Body).Decode(&insert); err != nil {
				t.Fatalf("decode insert: %v", err)
			}
			if insert.Title != "Backend Engineer" {
				t.Errorf("title = %q", insert.Title)
			}
			w.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(w).Encode(Job{JobID: "j1", Title: insert.Title})
		case r.Method == http.MethodGet && r.URL.Path == "/jobs/j1":
			_ = json.NewEncoder(w).Encode(Job{JobID: "j1", Title: "Backend Engineer"})
		default:
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	client, _ := New(srv.URL)

	created, err := client.CreateJob(context.Background(), &JobInsert{Title: "Backend Engineer"})
	if err != nil {
		t.Fatalf("CreateJob: %v", err)
	}
	got, err := client.GetJob(context.Background(), created.JobID)
	if err != nil {
		t.Fatalf("GetJob: %v", err)
	}
	if got.Title != "Backend Engineer" {
		t.Errorf("title = %q", got.Title)
	}
}

func TestCreateJobsBatch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/jobs/batch" {
			t.Errorf("path = %q", r.URL.Path)
		}
		var req struct {
			Jobs []JobInsert `json:"jobs"`
		}
		_ = json.NewDecoder(r.Body).Decode(&req)
		results := make([]BatchResult, len(req.Jobs))
		for i, j := range req.Jobs {
			if j.Title == "" {
				results[i] = BatchResult{OK: false, Error: "title is required"}
				continue
			}
			results[i] = BatchResult{JobID: "id", OK: true}
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"results": results})
	}))
	defer srv.Close()

	client, _ := New(srv.URL)

	results, err := client.CreateJobsBatch(context.Background(), []JobInsert{
		{Title: "One"},
		{},
	})
	if err != nil {
		t.Fatalf("CreateJobsBatch: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("len(results) = %d, want 2", len(results))
	}
	if !results[0].OK || results[1].OK {
		t.Errorf("unexpected outcomes: %+v", results)
	}
}

func TestAPIErrorSentinels(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		code     string
		sentinel error
	}{
		{"empty query", http.StatusBadRequest, "empty_query", ErrEmptyQuery},
		{"not found", http.StatusNotFound, "job_not_found", ErrJobNotFound},
		{"validation", http.StatusBadRequest, "validation_failed", ErrValidationFailed},
		{"provider", http.StatusBadGateway, "embedding_provider_error", ErrEmbeddingProviderError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_ = json.NewEncoder(w).Encode(map[string]string{
					"code": tt.code, "message": tt.name,
				})
			}))
			defer srv.Close()

			client, _ := New(srv.URL)
			_, err := client.Search(context.Background(), "x")
			if !errors.Is(err, tt.sentinel) {
				t.Fatalf("errors.Is(%v, sentinel) = false", err)
			}
			var apiErr *APIError
			if !errors.As(err, &apiErr) {
				t.Fatalf("errors.As APIError failed: %v", err)
			}
			if apiErr.StatusCode != tt.status || apiErr.Code != tt.code {
				t.Errorf("got %+v", apiErr)
			}
		})
	}
}

func TestHealth(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(HealthReport{
			Status: "degraded",
			Checks: map[string]HealthCheck{
				"redis":     {Status: "ok"},
				"embedding": {Status: "degraded", Error: "provider down"},
			},
		})
	}))
	defer srv.Close()

	client, _ := New(srv.URL)
	report, err := client.Health(context.Background())
	if err != nil {
		t.Fatalf("Health: %v", err)
	}
	if report.Status != "degraded" {
		t.Errorf("status = %q", report.Status)
	}
	if report.Checks["embedding"].Error != "provider down" {
		t.Errorf("embedding check = %+v", report.Checks["embedding"])
	}
}

func TestNewValidation(t *testing.T) {
	if _, err := New(""); err == nil {
		t.Fatal("expected error for empty base URL")
	}
	client, err := New("http://localhost:8080/")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if client.baseURL != "http://localhost:8080" {
		t.Errorf("baseURL = %q, trailing slash not trimmed", client.baseURL)
	}
}
