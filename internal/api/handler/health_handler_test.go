package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/inc-inventory/inventory-system/internal/core/domain"
)

func TestHealthHandler_Liveness(t *testing.T) {
	c, rec := newContext(http.MethodGet, "/health", nil, "")
	if err := NewHealthHandler().Liveness(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestHealthDependenciesHandler_Readiness(t *testing.T) {
	ok := PingFunc(func(ctx context.Context) error { return nil })
	down := PingFunc(func(ctx context.Context) error { return errors.New("connection refused") })

	tests := []struct {
		name string
		deps map[string]Pinger
		code int
	}{
		{"all up", map[string]Pinger{"mongodb": ok, "redis": ok}, http.StatusOK},
		{"redis down", map[string]Pinger{"mongodb": ok, "redis": down}, http.StatusServiceUnavailable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newContext(http.MethodGet, "/health/ready", nil, "")
			if err := NewHealthDependenciesHandler(tt.deps).Readiness(c); err != nil {
				t.Fatalf("handler error: %v", err)
			}
			if rec.Code != tt.code {
				t.Fatalf("expected %d, got %d", tt.code, rec.Code)
			}
			var resp readinessResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("invalid json: %v", err)
			}
			if len(resp.Dependencies) != len(tt.deps) {
				t.Fatalf("unexpected dependencies %+v", resp.Dependencies)
			}
		})
	}
}

func TestDashboardHandler_Summary(t *testing.T) {
	var got domain.DashboardPeriod
	h := NewDashboardHandler(&stubDashboardService{
		summaryFn: func(ctx context.Context, p domain.DashboardPeriod) (*domain.DashboardSummary, error) {
			got = p
			return &domain.DashboardSummary{Period: p, Days: p.Days()}, nil
		},
	})

	c, rec := newContext(http.MethodGet, "/dashboard?period=month", nil, "")
	if err := h.Summary(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if got != domain.PeriodMonth || rec.Code != http.StatusOK {
		t.Fatalf("unexpected period %q / status %d", got, rec.Code)
	}

	c, _ = newContext(http.MethodGet, "/dashboard?period=decade", nil, "")
	if err := h.Summary(c); !errors.Is(err, domain.ErrInvalidPeriod) {
		t.Fatalf("expected ErrInvalidPeriod, got %v", err)
	}
}
