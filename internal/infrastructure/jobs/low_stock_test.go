package jobs

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/inc-inventory/inventory-system/internal/core/domain"
)

type stubTotaler struct {
	totals domain.ProductTotals
	err    error
}

func (s stubTotaler) ProductTotals(context.Context) (domain.ProductTotals, error) {
	return s.totals, s.err
}

func TestLowStockSweep_Run(t *testing.T) {
	sweep, err := NewLowStockSweep(stubTotaler{totals: domain.ProductTotals{LowStockCount: 3}}, "", zerolog.Nop())
	if err != nil {
		t.Fatalf("NewLowStockSweep returned error: %v", err)
	}
	n, err := sweep.Run(context.Background())
	if err != nil || n != 3 {
		t.Fatalf("expected 3 low stock products, got %d, %v", n, err)
	}
}

func TestLowStockSweep_RunError(t *testing.T) {
	boom := errors.New("boom")
	sweep, _ := NewLowStockSweep(stubTotaler{err: boom}, "@every 1h", zerolog.Nop())
	if _, err := sweep.Run(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
}

func TestNewLowStockSweep_BadSchedule(t *testing.T) {
	if _, err := NewLowStockSweep(stubTotaler{}, "not a schedule", zerolog.Nop()); err == nil {
		t.Fatalf("expected error for invalid schedule")
	}
}
