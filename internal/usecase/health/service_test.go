package health

import (
	"context"
	"errors"
	"testing"
)

type mockPinger struct{ err error }

func (m *mockPinger) Ping(_ context.Context) error { return m.err }

type mockEmbeddingChecker struct{ err error }

func (m *mockEmbeddingChecker) HealthCheck(_ context.Context) error { return m.err }

func TestRun_AllHealthy(t *testing.T) {
	svc := New(&mockPinger{}, &mockEmbeddingChecker{})

	report := svc.Run(context.Background())
	if report.Status != Healthy {
		t.Errorf("status = %s, want %s", report.Status, Healthy)
	}
	if report.Checks["redis"].Status != Healthy || report.Checks["embedding"].Status != Healthy {
		t.Errorf("unexpected checks: %+v", report.Checks)
	}
}

func TestRun_StoreDown(t *testing.T) {
	svc := New(&mockPinger{err: errors.New("connection refused")}, &mockEmbeddingChecker{})

	report := svc.Run(context.Background())
	if report.Status != Degraded {
		t.Errorf("status = %s, want %s", report.Status, Degraded)
	}
	if report.Checks["redis"].Error == "" {
		t.Error("failing check must carry its error")
	}
}

func TestRun_EmbeddingDown(t *testing.T) {
	svc := New(&mockPinger{}, &mockEmbeddingChecker{err: errors.New("quota exceeded")})

	report := svc.Run(context.Background())
	if report.Status != Degraded {
		t.Errorf("status = %s, want %s", report.Status, Degraded)
	}
	if report.Checks["redis"].Status != Healthy {
		t.Error("store check must stay healthy")
	}
}

func TestRun_NilEmbeddingChecker(t *testing.T) {
	svc := New(&mockPinger{}, nil)

	report := svc.Run(context.Background())
	if report.Status != Healthy {
		t.Errorf("status = %s, want %s", report.Status, Healthy)
	}
	if _, ok := report.Checks["embedding"]; ok {
		t.Error("no embedding check expected when checker is nil")
	}
}
