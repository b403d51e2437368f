package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/inc-inventory/inventory-system/internal/api/metrics"
	"github.com/inc-inventory/inventory-system/internal/core/domain"
	"github.com/inc-inventory/inventory-system/internal/core/ports"
)

// MovementDedup abstracts the idempotency store (Redis).
type MovementDedup interface {
	IsDuplicate(ctx context.Context, movementID string) (bool, error)
	Mark(ctx context.Context, movementID string) error
}

type stockService struct {
	repo  ports.StockMovementRepository
	dedup MovementDedup
	log   zerolog.Logger
}

// NewStockService returns a StockRecorder that persists movements once.
// dedup may be nil, in which case every movement is written.
func NewStockService(repo ports.StockMovementRepository, dedup MovementDedup, log zerolog.Logger) ports.StockRecorder {
	return &stockService{repo: repo, dedup: dedup, log: log}
}

// Record validates, deduplicates and persists a single stock movement.
func (s *stockService) Record(ctx context.Context, m domain.StockMovement) error {
	start := time.Now()
	result := "ok"
	defer func() {
		metrics.StockProcessingDuration.WithLabelValues(result).Observe(time.Since(start).Seconds())
	}()

	if m.ProductID == "" || m.Quantity <= 0 {
		result = "error"
		return fmt.Errorf("record movement: %w", domain.ErrInvalidQuantity)
	}
	if m.Type != domain.MovementIncrease && m.Type != domain.MovementDecrease {
		result = "error"
		return fmt.Errorf("record movement: unknown type %q", m.Type)
	}

	if s.dedup != nil && m.ID != "" {
		dup, err := s.dedup.IsDuplicate(ctx, m.ID)
		if err != nil {
			s.log.Warn().Err(err).Str("movement_id", m.ID).Msg("dedup check failed, recording anyway")
		} else if dup {
			s.log.Debug().Str("movement_id", m.ID).Msg("duplicate movement skipped")
			return nil
		}
	}

	if err := s.repo.Insert(ctx, &m); err != nil {
		result = "error"
		metrics.StockMovementErrorsTotal.Inc()
		return fmt.Errorf("record movement: %w", err)
	}

	if s.dedup != nil && m.ID != "" {
		if err := s.dedup.Mark(ctx, m.ID); err != nil {
			s.log.Warn().Err(err).Str("movement_id", m.ID).Msg("failed to set dedup key")
		}
	}

	metrics.StockMovementsTotal.WithLabelValues(string(m.Type)).Inc()
	s.log.Debug().
		Str("product_id", m.ProductID).
		Str("type", string(m.Type)).
		Int("quantity", m.Quantity).
		Msg("stock movement recorded")
	return nil
}
