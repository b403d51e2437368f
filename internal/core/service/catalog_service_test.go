package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/inc-inventory/inventory-system/internal/core/domain"
	"github.com/inc-inventory/inventory-system/internal/core/ports"
)

func strPtr(s string) *string { return &s }

func TestCategoryService_Create_DuplicateIgnoresCase(t *testing.T) {
	svc := NewCategoryService(newStubCategoryRepo(), zerolog.Nop())

	if _, err := svc.Create(context.Background(), ports.CategoryInput{Name: "Beverages"}); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if _, err := svc.Create(context.Background(), ports.CategoryInput{Name: "beverages"}); !errors.Is(err, domain.ErrCategoryExists) {
		t.Fatalf("expected ErrCategoryExists, got %v", err)
	}
	if _, err := svc.Create(context.Background(), ports.CategoryInput{Name: "  "}); !errors.Is(err, domain.ErrNameRequired) {
		t.Fatalf("expected ErrNameRequired, got %v", err)
	}
}

func TestCategoryService_Update(t *testing.T) {
	repo := newStubCategoryRepo(
		&domain.Category{ID: "c1", Name: "Snacks"},
		&domain.Category{ID: "c2", Name: "Drinks"},
	)
	svc := NewCategoryService(repo, zerolog.Nop())

	if _, err := svc.Update(context.Background(), "c1", domain.CategoryPatch{}); !errors.Is(err, domain.ErrNoUpdateFields) {
		t.Fatalf("expected ErrNoUpdateFields, got %v", err)
	}
	if _, err := svc.Update(context.Background(), "c1", domain.CategoryPatch{Name: strPtr("DRINKS")}); !errors.Is(err, domain.ErrCategoryExists) {
		t.Fatalf("expected ErrCategoryExists, got %v", err)
	}
	// Renaming to its own name in another case is allowed.
	got, err := svc.Update(context.Background(), "c1", domain.CategoryPatch{Name: strPtr("SNACKS")})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if got.Name != "SNACKS" || got.UpdatedAt == nil {
		t.Fatalf("unexpected category: %+v", got)
	}
	if _, err := svc.Update(context.Background(), "nope", domain.CategoryPatch{Name: strPtr("x")}); !errors.Is(err, domain.ErrCategoryNotFound) {
		t.Fatalf("expected ErrCategoryNotFound, got %v", err)
	}
}

func newTestProductService(products *stubProductRepo, cats *stubCategoryRepo) ports.ProductService {
	return NewProductService(products, cats, &stubMovementRepo{}, zerolog.Nop())
}

func TestProductService_Create(t *testing.T) {
	cats := newStubCategoryRepo(&domain.Category{ID: "c1", Name: "Snacks"})
	products := newStubProductRepo()
	svc := newTestProductService(products, cats)

	p, err := svc.Create(context.Background(), ports.ProductInput{
		Name:        "Chips",
		Description: "<b>crunchy</b> <script>alert(1)</script>",
		Price:       12.5,
		Stock:       10,
		IsActive:    true,
		CategoryID:  "c1",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if p.Description != "crunchy" {
		t.Fatalf("expected markup stripped, got %q", p.Description)
	}

	if _, err := svc.Create(context.Background(), ports.ProductInput{Name: "chips", Price: 1, CategoryID: "c1"}); !errors.Is(err, domain.ErrProductExists) {
		t.Fatalf("expected ErrProductExists, got %v", err)
	}
	if _, err := svc.Create(context.Background(), ports.ProductInput{Name: "Soda", Price: 1, CategoryID: "missing"}); !errors.Is(err, domain.ErrInvalidCategory) {
		t.Fatalf("expected ErrInvalidCategory, got %v", err)
	}
	// Same name in another category is fine.
	if _, err := svc.Create(context.Background(), ports.ProductInput{Name: "Chips", Price: 1}); err != nil {
		t.Fatalf("expected no error for uncategorised duplicate name, got %v", err)
	}
}

func TestProductService_List_NormalisesFilter(t *testing.T) {
	cats := newStubCategoryRepo(&domain.Category{ID: "c1", Name: "Frozen Food"})
	products := newStubProductRepo(
		&domain.Product{ID: "p1", Name: "Ice", IsActive: true, CategoryID: "c1"},
		&domain.Product{ID: "p2", Name: "Bread", IsActive: true},
	)
	svc := newTestProductService(products, cats)

	if _, err := svc.List(context.Background(), domain.ProductFilter{Skip: -3, Limit: 0}); err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if products.lastFilter.Skip != 0 || products.lastFilter.Limit != 25 {
		t.Fatalf("expected skip 0 limit 25, got %+v", products.lastFilter)
	}

	_, _ = svc.List(context.Background(), domain.ProductFilter{Limit: 1000})
	if products.lastFilter.Limit != 200 {
		t.Fatalf("expected limit capped at 200, got %d", products.lastFilter.Limit)
	}

	got, err := svc.List(context.Background(), domain.ProductFilter{CategoryName: "frozen"})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(got) != 1 || got[0].ID != "p1" {
		t.Fatalf("expected only p1, got %+v", got)
	}

	got, err = svc.List(context.Background(), domain.ProductFilter{CategoryName: "toys"})
	if err != nil || len(got) != 0 {
		t.Fatalf("expected empty page for unknown category, got %v, %v", got, err)
	}
}

func TestProductService_Update(t *testing.T) {
	cats := newStubCategoryRepo(&domain.Category{ID: "c1", Name: "Snacks"})
	products := newStubProductRepo(
		&domain.Product{ID: "p1", Name: "Chips", CategoryID: "c1", IsActive: true},
		&domain.Product{ID: "p2", Name: "Nuts", CategoryID: "c1", IsActive: true},
	)
	svc := newTestProductService(products, cats)

	if _, err := svc.Update(context.Background(), "p1", domain.ProductPatch{}); !errors.Is(err, domain.ErrNoUpdateFields) {
		t.Fatalf("expected ErrNoUpdateFields, got %v", err)
	}
	if _, err := svc.Update(context.Background(), "p1", domain.ProductPatch{Name: strPtr("nuts")}); !errors.Is(err, domain.ErrProductExists) {
		t.Fatalf("expected ErrProductExists, got %v", err)
	}
	price := 3.0
	got, err := svc.Update(context.Background(), "p1", domain.ProductPatch{Price: &price})
	if err != nil || got.Price != 3 {
		t.Fatalf("expected price 3, got %+v, %v", got, err)
	}

	got, err = svc.SetActive(context.Background(), "p2", false)
	if err != nil || got.IsActive {
		t.Fatalf("expected deactivated product, got %+v, %v", got, err)
	}
}

func TestProductService_Movements(t *testing.T) {
	products := newStubProductRepo(&domain.Product{ID: "p1", Name: "Chips"})
	movements := &stubMovementRepo{}
	movements.inserted = []domain.StockMovement{
		{ID: "m1", ProductID: "p1", Type: domain.MovementDecrease, Quantity: 2, Timestamp: time.Now()},
		{ID: "m2", ProductID: "p9", Type: domain.MovementDecrease, Quantity: 1, Timestamp: time.Now()},
		{ID: "m3", ProductID: "p1", Type: domain.MovementIncrease, Quantity: 2, Timestamp: time.Now()},
	}
	svc := NewProductService(products, newStubCategoryRepo(), movements, zerolog.Nop())

	got, err := svc.Movements(context.Background(), "p1", 0)
	if err != nil {
		t.Fatalf("Movements returned error: %v", err)
	}
	if len(got) != 2 || got[0].ID != "m3" {
		t.Fatalf("expected newest p1 movements first, got %+v", got)
	}
	if _, err := svc.Movements(context.Background(), "nope", 0); !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}
