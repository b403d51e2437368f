package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/inc-inventory/inventory-system/internal/api/metrics"
	"github.com/inc-inventory/inventory-system/internal/core/domain"
	"github.com/inc-inventory/inventory-system/internal/core/ports"
)

type dashboardService struct {
	repo  ports.DashboardRepository
	cache ports.DashboardCache
	log   zerolog.Logger
	now   func() time.Time
}

// NewDashboardService returns a DashboardService. cache may be nil.
func NewDashboardService(repo ports.DashboardRepository, cache ports.DashboardCache, log zerolog.Logger) ports.DashboardService {
	return &dashboardService{repo: repo, cache: cache, log: log, now: time.Now}
}

// Summary serves a cached summary when one exists, otherwise it runs the
// three aggregations concurrently and caches the result.
func (s *dashboardService) Summary(ctx context.Context, period domain.DashboardPeriod) (*domain.DashboardSummary, error) {
	if s.cache != nil {
		cached, ok, err := s.cache.Get(ctx, period)
		switch {
		case err != nil:
			s.log.Warn().Err(err).Str("period", string(period)).Msg("dashboard cache read failed")
		case ok:
			metrics.DashboardCacheTotal.WithLabelValues("hit").Inc()
			return cached, nil
		}
		metrics.DashboardCacheTotal.WithLabelValues("miss").Inc()
	}

	since := s.now().UTC().AddDate(0, 0, -period.Days())
	summary := &domain.DashboardSummary{Period: period, Days: period.Days()}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		totals, err := s.repo.OrderTotals(gctx, since)
		if err != nil {
			return fmt.Errorf("order totals: %w", err)
		}
		summary.Orders = totals
		return nil
	})
	g.Go(func() error {
		totals, err := s.repo.ProductTotals(gctx)
		if err != nil {
			return fmt.Errorf("product totals: %w", err)
		}
		summary.Products = totals
		return nil
	})
	g.Go(func() error {
		trend, err := s.repo.SalesTrend(gctx, since, period.Bucket())
		if err != nil {
			return fmt.Errorf("sales trend: %w", err)
		}
		summary.SalesTrend = trend
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if summary.SalesTrend == nil {
		summary.SalesTrend = []domain.TrendPoint{}
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, summary); err != nil {
			s.log.Warn().Err(err).Str("period", string(period)).Msg("dashboard cache write failed")
		}
	}
	return summary, nil
}
