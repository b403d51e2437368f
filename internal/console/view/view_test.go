package view

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/inc-inventory/inventory-system/internal/core/domain"
)

func TestFormatPHP(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "₱0.00"},
		{1234.5, "₱1,234.50"},
		{9999.99, "₱9,999.99"},
		{10000, "₱10K"},
		{12345, "₱12.3K"},
		{1500000, "₱1.5M"},
		{-12.5, "-₱12.50"},
	}
	for _, tt := range tests {
		if got := FormatPHP(tt.in); got != tt.want {
			t.Errorf("FormatPHP(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatCompact(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{42, "42"},
		{9999, "9,999"},
		{10000, "10K"},
		{25400, "25.4K"},
		{999960, "1M"},
		{2000000000, "2B"},
	}
	for _, tt := range tests {
		if got := FormatCompact(tt.in); got != tt.want {
			t.Errorf("FormatCompact(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestShapeTrend(t *testing.T) {
	var points []domain.TrendPoint
	for i := 1; i <= 10; i++ {
		points = append(points, domain.TrendPoint{Date: time.Date(2025, 1, i, 0, 0, 0, 0, time.UTC).Format(time.DateOnly), Revenue: 10, Orders: 1})
	}
	tr := ShapeTrend(points)
	if tr.TotalRevenue != 100 || tr.TotalOrders != 10 {
		t.Fatalf("totals should cover every bucket, got %+v", tr)
	}
	if len(tr.Points) != TrendWindow || tr.Points[0].Date != "2025-01-04" {
		t.Fatalf("expected last %d buckets, got %+v", TrendWindow, tr.Points)
	}

	if short := ShapeTrend(points[:3]); len(short.Points) != 3 {
		t.Fatalf("short trend should be kept whole, got %d", len(short.Points))
	}
	if empty := ShapeTrend(nil); len(empty.Points) != 0 || empty.TotalOrders != 0 {
		t.Fatalf("unexpected empty trend %+v", empty)
	}
}

func TestProductStatusSlices(t *testing.T) {
	s := ProductStatusSlices(domain.ProductTotals{TotalProducts: 8, LowStockCount: 3})
	if s[0].Count != 5 || s[0].Percent != 63 || s[1].Count != 3 || s[1].Percent != 38 {
		t.Fatalf("unexpected slices %+v", s)
	}
	empty := ProductStatusSlices(domain.ProductTotals{})
	if empty[0].Percent != 0 || empty[1].Percent != 0 {
		t.Fatalf("empty catalog should have zero percentages, got %+v", empty)
	}
}

func TestProducts(t *testing.T) {
	var buf bytes.Buffer
	err := Products(&buf, []domain.Product{
		{ID: "p1", Name: "Widget", Price: 1234.5, Stock: 2, IsActive: true},
		{ID: "p2", Name: "Gadget", Price: 50, Stock: 40},
	})
	if err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"NAME", "Widget", "₱1,234.50", "active, low stock", "inactive"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestOrdersAndUsers(t *testing.T) {
	var buf bytes.Buffer
	_ = Orders(&buf, []domain.Order{{
		ID:       "o1",
		Customer: domain.Customer{Name: "Ana"},
		Items:    []domain.OrderItem{{Quantity: 2}, {Quantity: 3}},
		Total:    99,
		Status:   domain.OrderCompleted,
	}})
	if out := buf.String(); !strings.Contains(out, "Ana") || !strings.Contains(out, "5") || !strings.Contains(out, "₱99.00") {
		t.Fatalf("unexpected orders output:\n%s", out)
	}

	buf.Reset()
	_ = Users(&buf, []domain.User{{ID: "u1", Username: "bob", Role: domain.RoleEmployee, IsActive: true}})
	if out := buf.String(); !strings.Contains(out, "bob") || !strings.Contains(out, "employee") || !strings.Contains(out, "true") {
		t.Fatalf("unexpected users output:\n%s", out)
	}
}

func TestSidebar(t *testing.T) {
	var buf bytes.Buffer
	u := &domain.User{Username: "alice", Role: domain.RoleOwner}
	_ = Sidebar(&buf, u, []MenuEntry{{Label: "Dashboard", Path: "/dashboard", Active: true}, {Label: "Users", Path: "/users"}})
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 || lines[0] != "alice (owner)" || !strings.HasPrefix(lines[1], ">") || strings.HasPrefix(lines[2], ">") {
		t.Fatalf("unexpected sidebar:\n%s", buf.String())
	}
}

func TestDashboard(t *testing.T) {
	var buf bytes.Buffer
	err := Dashboard(&buf, &domain.DashboardSummary{
		Period:   domain.PeriodWeek,
		Days:     7,
		Orders:   domain.OrderTotals{TotalOrders: 4, TotalRevenue: 25000},
		Products: domain.ProductTotals{TotalProducts: 4, LowStockCount: 1},
		SalesTrend: []domain.TrendPoint{
			{Date: "2025-01-01", Revenue: 25000, Orders: 4},
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"week (7 days)", "₱25K", "In Stock", "75%", "2025-01-01"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}
