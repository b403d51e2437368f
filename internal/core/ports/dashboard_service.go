package ports

import (
	"context"
	"time"

	"github.com/inc-inventory/inventory-system/internal/core/domain"
)

// DashboardRepository runs the aggregations behind the dashboard.
type DashboardRepository interface {
	OrderTotals(ctx context.Context, since time.Time) (domain.OrderTotals, error)
	ProductTotals(ctx context.Context) (domain.ProductTotals, error)
	SalesTrend(ctx context.Context, since time.Time, bucket domain.TrendBucket) ([]domain.TrendPoint, error)
}

// DashboardCache stores computed summaries per period.
type DashboardCache interface {
	Get(ctx context.Context, period domain.DashboardPeriod) (*domain.DashboardSummary, bool, error)
	Set(ctx context.Context, summary *domain.DashboardSummary) error
}

// DashboardService builds the dashboard summary.
type DashboardService interface {
	Summary(ctx context.Context, period domain.DashboardPeriod) (*domain.DashboardSummary, error)
}

// SalesReport is the data rendered into the sales PDF.
type SalesReport struct {
	CompanyName string
	From, To    time.Time
	GeneratedAt time.Time
	Orders      []*domain.Order
	TotalSales  float64
}

// InventoryReport is the data rendered into the inventory PDF.
type InventoryReport struct {
	CompanyName    string
	GeneratedAt    time.Time
	Products       []*domain.Product
	InventoryValue float64
}

// ReportRenderer turns report data into a document.
type ReportRenderer interface {
	RenderSales(r SalesReport) ([]byte, error)
	RenderInventory(r InventoryReport) ([]byte, error)
}

// ReportService builds downloadable reports.
type ReportService interface {
	Sales(ctx context.Context, from, to time.Time) ([]byte, error)
	Inventory(ctx context.Context) ([]byte, error)
}
