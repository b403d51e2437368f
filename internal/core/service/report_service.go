package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/inc-inventory/inventory-system/internal/core/domain"
	"github.com/inc-inventory/inventory-system/internal/core/ports"
)

const (
	salesReportLimit     = 500
	inventoryReportLimit = 1000
)

type reportService struct {
	orders   ports.OrderRepository
	products ports.ProductRepository
	renderer ports.ReportRenderer
	company  string
	log      zerolog.Logger
	now      func() time.Time
}

// NewReportService returns a ReportService rendering through renderer.
func NewReportService(
	orders ports.OrderRepository,
	products ports.ProductRepository,
	renderer ports.ReportRenderer,
	company string,
	log zerolog.Logger,
) ports.ReportService {
	return &reportService{
		orders:   orders,
		products: products,
		renderer: renderer,
		company:  company,
		log:      log,
		now:      time.Now,
	}
}

// Sales renders the orders created within [from, to]. Zero bounds are open.
func (s *reportService) Sales(ctx context.Context, from, to time.Time) ([]byte, error) {
	orders, err := s.orders.ListBetween(ctx, from, to, salesReportLimit)
	if err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return nil, domain.ErrNoReportData
	}

	var total float64
	for _, o := range orders {
		if o.Status != domain.OrderCancelled {
			total += o.Total
		}
	}

	doc, err := s.renderer.RenderSales(ports.SalesReport{
		CompanyName: s.company,
		From:        from,
		To:          to,
		GeneratedAt: s.now().UTC(),
		Orders:      orders,
		TotalSales:  total,
	})
	if err != nil {
		return nil, err
	}
	s.log.Info().Int("orders", len(orders)).Int("bytes", len(doc)).Msg("sales report generated")
	return doc, nil
}

// Inventory renders every product sorted by name.
func (s *reportService) Inventory(ctx context.Context) ([]byte, error) {
	products, err := s.products.ListAll(ctx, inventoryReportLimit)
	if err != nil {
		return nil, err
	}
	if len(products) == 0 {
		return nil, domain.ErrNoReportData
	}

	var value float64
	for _, p := range products {
		value += p.Price * float64(p.Stock)
	}

	doc, err := s.renderer.RenderInventory(ports.InventoryReport{
		CompanyName:    s.company,
		GeneratedAt:    s.now().UTC(),
		Products:       products,
		InventoryValue: value,
	})
	if err != nil {
		return nil, err
	}
	s.log.Info().Int("products", len(products)).Int("bytes", len(doc)).Msg("inventory report generated")
	return doc, nil
}
