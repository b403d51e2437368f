package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/inc-inventory/inventory-system/internal/api/metrics"
	"github.com/inc-inventory/inventory-system/internal/core/domain"
	"github.com/inc-inventory/inventory-system/internal/core/ports"
)

const orderListLimit = 100

// cancellableFrom lists the statuses an order can be cancelled from.
var cancellableFrom = []domain.OrderStatus{domain.OrderCompleted, domain.OrderPending}

var errOnlyCompleted = fmt.Errorf("%w: only completed orders can be moved to pending", domain.ErrInvalidTransition)

func cancelError(status domain.OrderStatus) error {
	if status == domain.OrderCancelled {
		return domain.ErrOrderAlreadyCancelled
	}
	if !status.CanTransitionTo(domain.OrderCancelled) {
		return fmt.Errorf("cancel order: %w (from %s)", domain.ErrInvalidTransition, status)
	}
	return nil
}

type deduction struct {
	productID string
	qty       int
}

type OrderService struct {
	orders    ports.OrderRepository
	products  ports.ProductRepository
	publisher ports.StockPublisher
	logger    zerolog.Logger
	now       func() time.Time
}

func NewOrderService(
	orders ports.OrderRepository,
	products ports.ProductRepository,
	publisher ports.StockPublisher,
	logger zerolog.Logger,
) *OrderService {
	return &OrderService{
		orders:    orders,
		products:  products,
		publisher: publisher,
		logger:    logger,
		now:       time.Now,
	}
}

// Create prices every line from the current product, deducts stock with a
// guarded update and stores the order. Any failure after the first
// deduction gives every deducted unit back before returning.
func (s *OrderService) Create(ctx context.Context, actor ports.Actor, in ports.CreateOrderInput) (order *domain.Order, err error) {
	if len(in.Items) == 0 {
		return nil, domain.ErrEmptyOrder
	}

	var deducted []deduction
	defer func() {
		if err == nil || len(deducted) == 0 {
			return
		}
		s.rollback(deducted)
	}()

	items := make([]domain.OrderItem, 0, len(in.Items))
	var total float64
	for _, line := range in.Items {
		if line.Quantity <= 0 {
			return nil, domain.ErrInvalidQuantity
		}

		p, findErr := s.products.FindActiveByID(ctx, line.ProductID)
		if findErr != nil {
			return nil, fmt.Errorf("product %s: %w", line.ProductID, findErr)
		}
		if p.Stock < line.Quantity {
			return nil, fmt.Errorf("%w for %s", domain.ErrInsufficientStock, p.Name)
		}

		ok, decErr := s.products.DecrementStock(ctx, p.ID, line.Quantity)
		if decErr != nil {
			return nil, fmt.Errorf("deduct stock for %s: %w", p.Name, decErr)
		}
		if !ok {
			return nil, fmt.Errorf("%w for %s", domain.ErrInsufficientStock, p.Name)
		}
		deducted = append(deducted, deduction{productID: p.ID, qty: line.Quantity})

		subtotal := p.Price * float64(line.Quantity)
		total += subtotal
		items = append(items, domain.OrderItem{
			ProductID:   p.ID,
			ProductName: p.Name,
			Quantity:    line.Quantity,
			Price:       p.Price,
			Subtotal:    subtotal,
		})
	}

	in.Customer.Name = strings.TrimSpace(in.Customer.Name)
	order = &domain.Order{
		ID:                uuid.NewString(),
		Customer:          in.Customer,
		Items:             items,
		Total:             total,
		Status:            domain.OrderCompleted,
		CreatedAt:         s.now().UTC(),
		CreatedByID:       actor.ID,
		CreatedByUsername: actor.Username,
	}
	if err = s.orders.Create(ctx, order); err != nil {
		s.logger.Error().Err(err).Msg("failed to create order")
		return nil, err
	}

	for _, it := range order.Items {
		s.publish(actor, it.ProductID, domain.MovementDecrease, it.Quantity, "order "+order.ID, order.CreatedAt)
	}

	metrics.OrdersCreatedTotal.Inc()
	s.logger.Info().
		Str("order_id", order.ID).
		Str("created_by", actor.Username).
		Int("items", len(order.Items)).
		Float64("total", order.Total).
		Msg("order created")
	return order, nil
}

// rollback uses a fresh context so a cancelled request still returns stock.
func (s *OrderService) rollback(deducted []deduction) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	for _, d := range deducted {
		if err := s.products.IncrementStock(ctx, d.productID, d.qty); err != nil {
			s.logger.Error().Err(err).Str("product_id", d.productID).Int("qty", d.qty).Msg("stock rollback failed")
		}
	}
	metrics.OrderRollbacksTotal.Inc()
	s.logger.Warn().Int("lines", len(deducted)).Msg("order rolled back")
}

func (s *OrderService) List(ctx context.Context) ([]*domain.Order, error) {
	return s.orders.List(ctx, orderListLimit)
}

func (s *OrderService) Get(ctx context.Context, id string) (*domain.Order, error) {
	return s.orders.FindByID(ctx, id)
}

// Cancel marks the order cancelled and then restores the stock of every
// line. The status is claimed with a guarded update, so of two concurrent
// cancels only one restores stock.
func (s *OrderService) Cancel(ctx context.Context, actor ports.Actor, id string) (*domain.Order, error) {
	order, err := s.orders.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := cancelError(order.Status); err != nil {
		return nil, err
	}

	ok, err := s.orders.UpdateStatus(ctx, id, cancellableFrom, domain.OrderCancelled)
	if err != nil {
		return nil, fmt.Errorf("cancel order: %w", err)
	}
	if !ok {
		current, err := s.orders.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if err := cancelError(current.Status); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("cancel order: %w", domain.ErrInvalidTransition)
	}
	order.Status = domain.OrderCancelled

	for _, it := range order.Items {
		if err := s.products.IncrementStock(ctx, it.ProductID, it.Quantity); err != nil {
			s.logger.Error().Err(err).Str("order_id", id).Str("product_id", it.ProductID).
				Int("qty", it.Quantity).Msg("restock after cancel failed")
			return nil, fmt.Errorf("cancel order: restore stock: %w", err)
		}
	}

	now := s.now().UTC()
	for _, it := range order.Items {
		s.publish(actor, it.ProductID, domain.MovementIncrease, it.Quantity, "cancel order "+order.ID, now)
	}

	metrics.OrdersCancelledTotal.Inc()
	s.logger.Info().Str("order_id", id).Str("cancelled_by", actor.Username).Msg("order cancelled")
	return order, nil
}

// MarkPending moves a completed order back to pending.
func (s *OrderService) MarkPending(ctx context.Context, id string) (*domain.Order, error) {
	order, err := s.orders.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order.Status != domain.OrderCompleted || !order.Status.CanTransitionTo(domain.OrderPending) {
		return nil, errOnlyCompleted
	}
	ok, err := s.orders.UpdateStatus(ctx, id, []domain.OrderStatus{domain.OrderCompleted}, domain.OrderPending)
	if err != nil {
		return nil, fmt.Errorf("mark pending: %w", err)
	}
	if !ok {
		return nil, errOnlyCompleted
	}
	order.Status = domain.OrderPending
	return order, nil
}

func (s *OrderService) publish(actor ports.Actor, productID string, typ domain.MovementType, qty int, reason string, at time.Time) {
	if s.publisher == nil {
		return
	}
	s.publisher.Publish(domain.StockMovement{
		ID:                  uuid.NewString(),
		ProductID:           productID,
		Type:                typ,
		Quantity:            qty,
		Reason:              reason,
		Timestamp:           at,
		PerformedByID:       actor.ID,
		PerformedByUsername: actor.Username,
	})
}
