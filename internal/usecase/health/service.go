// Package health aggregates component liveness for the health endpoint.
package health

import "context"

// Status is the aggregated health status.
type Status string

const (
	// Healthy indicates all components are operational.
	Healthy Status = "ok"
	// Degraded indicates at least one component is failing. Search still
	// works in this state, possibly on the offline embedder.
	Degraded Status = "degraded"
)

// Check is one component's outcome.
type Check struct {
	Status Status `json:"status"`
	Error  string `json:"error,omitempty"`
}

// Report aggregates the component checks.
type Report struct {
	Status Status           `json:"status"`
	Checks map[string]Check `json:"checks"`
}

// Service runs the component health checks.
type Service struct {
	store     StorePinger
	embedding EmbeddingChecker
}

// New creates a Service. embedding can be nil when only the offline
// embedder is configured.
func New(store StorePinger, embedding EmbeddingChecker) *Service {
	return &Service{store: store, embedding: embedding}
}

// Run checks every component and aggregates the result.
func (s *Service) Run(ctx context.Context) Report {
	checks := make(map[string]Check)

	if err := s.store.Ping(ctx); err != nil {
		checks["redis"] = Check{Status: Degraded, Error: err.Error()}
	} else {
		checks["redis"] = Check{Status: Healthy}
	}

	if s.embedding != nil {
		if err := s.embedding.HealthCheck(ctx); err != nil {
			checks["embedding"] = Check{Status: Degraded, Error: err.Error()}
		} else {
			checks["embedding"] = Check{Status: Healthy}
		}
	}

	status := Healthy
	for _, c := range checks {
		if c.Status != Healthy {
			status = Degraded
			break
		}
	}

	return Report{Status: status, Checks: checks}
}
