package view

import (
	"math"

	"github.com/inc-inventory/inventory-system/internal/core/domain"
)

// TrendWindow is how many trend buckets the dashboard shows.
const TrendWindow = 7

// Trend is the sales trend as shown on the dashboard. Totals cover every
// bucket, Points only the last TrendWindow.
type Trend struct {
	Points       []domain.TrendPoint
	TotalRevenue float64
	TotalOrders  int
}

// ShapeTrend totals points and keeps the trailing window.
func ShapeTrend(points []domain.TrendPoint) Trend {
	var t Trend
	for _, p := range points {
		t.TotalRevenue += p.Revenue
		t.TotalOrders += p.Orders
	}
	start := max(len(points)-TrendWindow, 0)
	t.Points = append([]domain.TrendPoint(nil), points[start:]...)
	return t
}

// StatusSlice is one part of the product status breakdown.
type StatusSlice struct {
	Label   string
	Count   int
	Percent int
}

// ProductStatusSlices splits the catalog into in-stock and low-stock parts.
// Percentages are rounded and zero for an empty catalog.
func ProductStatusSlices(p domain.ProductTotals) []StatusSlice {
	low := p.LowStockCount
	inStock := max(p.TotalProducts-low, 0)
	return []StatusSlice{
		{Label: "In Stock", Count: inStock, Percent: percent(inStock, p.TotalProducts)},
		{Label: "Low Stock", Count: low, Percent: percent(low, p.TotalProducts)},
	}
}

func percent(part, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(total) * 100))
}
