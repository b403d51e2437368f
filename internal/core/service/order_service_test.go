package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/inc-inventory/inventory-system/internal/core/domain"
	"github.com/inc-inventory/inventory-system/internal/core/ports"
)

var testActor = ports.Actor{ID: "u1", Username: "clerk", Role: domain.RoleEmployee}

func newOrderFixture() (*OrderService, *stubProductRepo, *stubOrderRepo, *stubPublisher) {
	products := newStubProductRepo(
		&domain.Product{ID: "p1", Name: "Chips", Price: 10, Stock: 5, IsActive: true},
		&domain.Product{ID: "p2", Name: "Soda", Price: 2.5, Stock: 1, IsActive: true},
		&domain.Product{ID: "p3", Name: "Retired", Price: 1, Stock: 50, IsActive: false},
	)
	orders := newStubOrderRepo()
	pub := &stubPublisher{}
	return NewOrderService(orders, products, pub, zerolog.Nop()), products, orders, pub
}

func TestOrderService_Create_Success(t *testing.T) {
	svc, products, orders, pub := newOrderFixture()

	order, err := svc.Create(context.Background(), testActor, ports.CreateOrderInput{
		Customer: domain.Customer{Name: " Ana "},
		Items: []ports.OrderLineInput{
			{ProductID: "p1", Quantity: 2},
			{ProductID: "p2", Quantity: 1},
		},
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if order.Total != 22.5 {
		t.Fatalf("expected total 22.5, got %v", order.Total)
	}
	if order.Status != domain.OrderCompleted || order.Customer.Name != "Ana" {
		t.Fatalf("unexpected order: %+v", order)
	}
	if order.CreatedByUsername != "clerk" {
		t.Fatalf("expected creator clerk, got %q", order.CreatedByUsername)
	}
	if products.stock("p1") != 3 || products.stock("p2") != 0 {
		t.Fatalf("stock not deducted: p1=%d p2=%d", products.stock("p1"), products.stock("p2"))
	}
	if _, ok := orders.byID[order.ID]; !ok {
		t.Fatalf("order not persisted")
	}
	if len(pub.published) != 2 || pub.published[0].Type != domain.MovementDecrease {
		t.Fatalf("expected two decrease movements, got %+v", pub.published)
	}
}

func TestOrderService_Create_Validation(t *testing.T) {
	svc, _, _, _ := newOrderFixture()

	if _, err := svc.Create(context.Background(), testActor, ports.CreateOrderInput{}); !errors.Is(err, domain.ErrEmptyOrder) {
		t.Fatalf("expected ErrEmptyOrder, got %v", err)
	}
	_, err := svc.Create(context.Background(), testActor, ports.CreateOrderInput{
		Items: []ports.OrderLineInput{{ProductID: "p3", Quantity: 1}},
	})
	if !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound for inactive product, got %v", err)
	}
	_, err = svc.Create(context.Background(), testActor, ports.CreateOrderInput{
		Items: []ports.OrderLineInput{{ProductID: "p1", Quantity: 6}},
	})
	if !errors.Is(err, domain.ErrInsufficientStock) || !strings.Contains(err.Error(), "Chips") {
		t.Fatalf("expected ErrInsufficientStock naming the product, got %v", err)
	}
}

func TestOrderService_Create_RollsBackOnLaterFailure(t *testing.T) {
	svc, products, orders, pub := newOrderFixture()

	_, err := svc.Create(context.Background(), testActor, ports.CreateOrderInput{
		Items: []ports.OrderLineInput{
			{ProductID: "p1", Quantity: 2},
			{ProductID: "p2", Quantity: 5},
		},
	})
	if !errors.Is(err, domain.ErrInsufficientStock) {
		t.Fatalf("expected ErrInsufficientStock, got %v", err)
	}
	if products.stock("p1") != 5 {
		t.Fatalf("expected p1 stock restored to 5, got %d", products.stock("p1"))
	}
	if len(orders.byID) != 0 || len(pub.published) != 0 {
		t.Fatalf("expected no order and no movements")
	}
}

func TestOrderService_Create_RollsBackWhenGuardLosesRace(t *testing.T) {
	svc, products, _, _ := newOrderFixture()
	products.raceDecrement = "p2"

	_, err := svc.Create(context.Background(), testActor, ports.CreateOrderInput{
		Items: []ports.OrderLineInput{
			{ProductID: "p1", Quantity: 1},
			{ProductID: "p2", Quantity: 1},
		},
	})
	if !errors.Is(err, domain.ErrInsufficientStock) {
		t.Fatalf("expected ErrInsufficientStock, got %v", err)
	}
	if products.stock("p1") != 5 {
		t.Fatalf("expected p1 stock restored, got %d", products.stock("p1"))
	}
}

func TestOrderService_Create_RollsBackWhenInsertFails(t *testing.T) {
	svc, products, orders, _ := newOrderFixture()
	orders.createErr = errStubStore

	_, err := svc.Create(context.Background(), testActor, ports.CreateOrderInput{
		Items: []ports.OrderLineInput{{ProductID: "p1", Quantity: 3}},
	})
	if !errors.Is(err, errStubStore) {
		t.Fatalf("expected store error, got %v", err)
	}
	if products.stock("p1") != 5 {
		t.Fatalf("expected p1 stock restored, got %d", products.stock("p1"))
	}
}

func TestOrderService_Cancel(t *testing.T) {
	svc, products, orders, pub := newOrderFixture()
	orders.byID["o1"] = &domain.Order{
		ID:        "o1",
		Status:    domain.OrderCompleted,
		Items:     []domain.OrderItem{{ProductID: "p1", Quantity: 2}},
		CreatedAt: time.Now(),
	}

	got, err := svc.Cancel(context.Background(), testActor, "o1")
	if err != nil {
		t.Fatalf("Cancel returned error: %v", err)
	}
	if got.Status != domain.OrderCancelled || orders.byID["o1"].Status != domain.OrderCancelled {
		t.Fatalf("expected cancelled order")
	}
	if products.stock("p1") != 7 {
		t.Fatalf("expected stock restored to 7, got %d", products.stock("p1"))
	}
	if len(pub.published) != 1 || pub.published[0].Type != domain.MovementIncrease {
		t.Fatalf("expected one increase movement, got %+v", pub.published)
	}

	if _, err := svc.Cancel(context.Background(), testActor, "o1"); !errors.Is(err, domain.ErrOrderAlreadyCancelled) {
		t.Fatalf("expected ErrOrderAlreadyCancelled, got %v", err)
	}
	if _, err := svc.Cancel(context.Background(), testActor, "missing"); !errors.Is(err, domain.ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound, got %v", err)
	}
}

func cancellableOrder(orders *stubOrderRepo) {
	orders.byID["o1"] = &domain.Order{
		ID:        "o1",
		Status:    domain.OrderCompleted,
		Items:     []domain.OrderItem{{ProductID: "p1", Quantity: 2}},
		CreatedAt: time.Now(),
	}
}

func TestOrderService_Cancel_SecondCancelDuringRestock(t *testing.T) {
	svc, products, orders, _ := newOrderFixture()
	cancellableOrder(orders)

	var secondErr error
	products.beforeIncrement = func() {
		products.beforeIncrement = nil
		_, secondErr = svc.Cancel(context.Background(), testActor, "o1")
	}

	if _, err := svc.Cancel(context.Background(), testActor, "o1"); err != nil {
		t.Fatalf("first Cancel returned error: %v", err)
	}
	if !errors.Is(secondErr, domain.ErrOrderAlreadyCancelled) {
		t.Fatalf("expected ErrOrderAlreadyCancelled for overlapping cancel, got %v", secondErr)
	}
	if products.stock("p1") != 7 {
		t.Fatalf("expected stock restored once to 7, got %d", products.stock("p1"))
	}
}

func TestOrderService_Cancel_LosesStatusClaim(t *testing.T) {
	svc, products, orders, pub := newOrderFixture()
	cancellableOrder(orders)

	var secondErr error
	orders.beforeUpdate = func() {
		orders.beforeUpdate = nil
		_, secondErr = svc.Cancel(context.Background(), testActor, "o1")
	}

	_, err := svc.Cancel(context.Background(), testActor, "o1")
	if !errors.Is(err, domain.ErrOrderAlreadyCancelled) {
		t.Fatalf("expected ErrOrderAlreadyCancelled after losing the claim, got %v", err)
	}
	if secondErr != nil {
		t.Fatalf("winning Cancel returned error: %v", secondErr)
	}
	if products.stock("p1") != 7 || len(pub.published) != 1 {
		t.Fatalf("expected a single restock, stock=%d movements=%d", products.stock("p1"), len(pub.published))
	}
}

func TestOrderService_MarkPending(t *testing.T) {
	svc, _, orders, _ := newOrderFixture()
	orders.byID["o1"] = &domain.Order{ID: "o1", Status: domain.OrderCompleted}
	orders.byID["o2"] = &domain.Order{ID: "o2", Status: domain.OrderCancelled}

	got, err := svc.MarkPending(context.Background(), "o1")
	if err != nil || got.Status != domain.OrderPending {
		t.Fatalf("expected pending order, got %+v, %v", got, err)
	}
	if _, err := svc.MarkPending(context.Background(), "o1"); !errors.Is(err, domain.ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition for pending order, got %v", err)
	}
	if _, err := svc.MarkPending(context.Background(), "o2"); !errors.Is(err, domain.ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition for cancelled order, got %v", err)
	}
}
