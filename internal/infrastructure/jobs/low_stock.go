package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"github.com/inc-inventory/inventory-system/internal/api/metrics"
	"github.com/inc-inventory/inventory-system/internal/core/domain"
)

const (
	defaultSchedule = "@every 5m"
	sweepTimeout    = 30 * time.Second
)

// ProductTotaler reports aggregate product figures.
type ProductTotaler interface {
	ProductTotals(ctx context.Context) (domain.ProductTotals, error)
}

// LowStockSweep periodically counts products at or below the low stock
// threshold and publishes the figure as a gauge.
type LowStockSweep struct {
	source ProductTotaler
	log    zerolog.Logger
	cron   *cron.Cron
}

// NewLowStockSweep schedules the sweep with a standard cron spec or an
// "@every" descriptor. An empty schedule runs every five minutes.
func NewLowStockSweep(source ProductTotaler, schedule string, log zerolog.Logger) (*LowStockSweep, error) {
	if schedule == "" {
		schedule = defaultSchedule
	}
	s := &LowStockSweep{
		source: source,
		log:    log,
		cron:   cron.New(),
	}
	if _, err := s.cron.AddFunc(schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), sweepTimeout)
		defer cancel()
		if _, err := s.Run(ctx); err != nil {
			s.log.Error().Err(err).Msg("low stock sweep failed")
		}
	}); err != nil {
		return nil, fmt.Errorf("schedule low stock sweep %q: %w", schedule, err)
	}
	return s, nil
}

// Start launches the scheduler.
func (s *LowStockSweep) Start() {
	s.cron.Start()
	s.log.Info().Msg("low stock sweep started")
}

// Stop waits for a running sweep to finish or ctx to expire.
func (s *LowStockSweep) Stop(ctx context.Context) {
	stopCtx := s.cron.Stop()
	select {
	case <-stopCtx.Done():
	case <-ctx.Done():
	}
	s.log.Info().Msg("low stock sweep stopped")
}

// Run performs one sweep and returns the low stock count.
func (s *LowStockSweep) Run(ctx context.Context) (int, error) {
	totals, err := s.source.ProductTotals(ctx)
	if err != nil {
		return 0, err
	}
	metrics.LowStockProducts.Set(float64(totals.LowStockCount))
	if totals.LowStockCount > 0 {
		s.log.Warn().Int("low_stock", totals.LowStockCount).Msg("products running low on stock")
	}
	return totals.LowStockCount, nil
}
