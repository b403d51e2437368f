package domain

import "strings"

// DashboardPeriod is the reporting window of the dashboard.
type DashboardPeriod string

const (
	PeriodWeek  DashboardPeriod = "week"
	PeriodMonth DashboardPeriod = "month"
	PeriodYear  DashboardPeriod = "year"
	PeriodAll   DashboardPeriod = "all"
)

// ParsePeriod accepts the period names and their day-count aliases.
// An empty string means week.
func ParsePeriod(s string) (DashboardPeriod, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "week", "7", "7d":
		return PeriodWeek, nil
	case "month", "30", "30d":
		return PeriodMonth, nil
	case "year", "365", "365d":
		return PeriodYear, nil
	case "all", "0":
		return PeriodAll, nil
	default:
		return "", ErrInvalidPeriod
	}
}

// Days returns the length of the window. "all" is a hundred years.
func (p DashboardPeriod) Days() int {
	switch p {
	case PeriodMonth:
		return 30
	case PeriodYear:
		return 365
	case PeriodAll:
		return 36500
	default:
		return 7
	}
}

// Bucket names the granularity of the sales trend for the period.
func (p DashboardPeriod) Bucket() TrendBucket {
	switch p {
	case PeriodYear:
		return BucketMonth
	case PeriodAll:
		return BucketYear
	default:
		return BucketDay
	}
}

// TrendBucket is the granularity of a sales trend point.
type TrendBucket string

const (
	BucketDay   TrendBucket = "day"
	BucketMonth TrendBucket = "month"
	BucketYear  TrendBucket = "year"
)

type OrderTotals struct {
	TotalOrders    int     `json:"total_orders"`
	TotalRevenue   float64 `json:"total_revenue"`
	TotalItemsSold int     `json:"total_items_sold"`
}

type ProductTotals struct {
	TotalProducts    int     `json:"total_products"`
	ActiveProducts   int     `json:"active_products"`
	InactiveProducts int     `json:"inactive_products"`
	InventoryValue   float64 `json:"inventory_value"`
	LowStockCount    int     `json:"low_stock_count"`
}

// TrendPoint is one bucket of the sales trend. Date is formatted as
// 2006-01-02, 2006-01 or 2006 depending on the bucket.
type TrendPoint struct {
	Date    string  `json:"date"`
	Revenue float64 `json:"revenue"`
	Orders  int     `json:"orders"`
}

// DashboardSummary is the payload of the dashboard endpoint.
type DashboardSummary struct {
	Period     DashboardPeriod `json:"period"`
	Days       int             `json:"days"`
	Orders     OrderTotals     `json:"orders"`
	Products   ProductTotals   `json:"products"`
	SalesTrend []TrendPoint    `json:"sales_trend"`
}
