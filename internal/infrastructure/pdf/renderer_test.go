package pdf

import (
	"bytes"
	"testing"
	"time"

	"github.com/inc-inventory/inventory-system/internal/core/domain"
	"github.com/inc-inventory/inventory-system/internal/core/ports"
)

func TestRenderer_RenderSales(t *testing.T) {
	r := NewRenderer()
	now := time.Date(2025, 3, 4, 10, 0, 0, 0, time.UTC)
	doc, err := r.RenderSales(ports.SalesReport{
		CompanyName: "INC",
		From:        now.AddDate(0, 0, -7),
		GeneratedAt: now,
		Orders: []*domain.Order{
			{ID: "o1", Customer: domain.Customer{Name: "Ana"}, Total: 1234.5, Status: domain.OrderCompleted, CreatedAt: now},
		},
		TotalSales: 1234.5,
	})
	if err != nil {
		t.Fatalf("RenderSales returned error: %v", err)
	}
	if !bytes.HasPrefix(doc, []byte("%PDF-")) {
		t.Fatalf("expected a PDF document, got %q", doc[:min(len(doc), 16)])
	}
}

func TestRenderer_RenderInventory(t *testing.T) {
	r := NewRenderer()
	doc, err := r.RenderInventory(ports.InventoryReport{
		CompanyName: "INC",
		GeneratedAt: time.Now(),
		Products: []*domain.Product{
			{ID: "p1", Name: "Chips", Price: 10, Stock: 2, IsActive: true},
			{ID: "p2", Name: "Soda", Price: 5, Stock: 40, IsActive: false},
		},
		InventoryValue: 220,
	})
	if err != nil {
		t.Fatalf("RenderInventory returned error: %v", err)
	}
	if !bytes.HasPrefix(doc, []byte("%PDF-")) {
		t.Fatalf("expected a PDF document")
	}
}

func TestHelpers(t *testing.T) {
	r := NewRenderer()
	if got := r.peso(1234567.891); got != "PHP 1,234,567.89" {
		t.Fatalf("peso = %q", got)
	}
	if got := truncate("abcdefghij", 6); got != "abc..." {
		t.Fatalf("truncate = %q", got)
	}
	if got := reportPeriod(time.Time{}, time.Time{}); got != "All time" {
		t.Fatalf("reportPeriod = %q", got)
	}
	if got := productStatus(&domain.Product{IsActive: true, Stock: 1}); got != "Low stock" {
		t.Fatalf("productStatus = %q", got)
	}
}
