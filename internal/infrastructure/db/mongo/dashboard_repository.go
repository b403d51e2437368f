package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/inc-inventory/inventory-system/internal/core/domain"
)

// DashboardRepository runs the dashboard aggregations over orders and
// products.
type DashboardRepository struct {
	orders   *mongo.Collection
	products *mongo.Collection
}

func NewDashboardRepository(db *mongo.Database) *DashboardRepository {
	return &DashboardRepository{
		orders:   db.Collection(collectionOrders),
		products: db.Collection(collectionProducts),
	}
}

var trendFormats = map[domain.TrendBucket]string{
	domain.BucketDay:   "%Y-%m-%d",
	domain.BucketMonth: "%Y-%m",
	domain.BucketYear:  "%Y",
}

func (r *DashboardRepository) OrderTotals(ctx context.Context, since time.Time) (domain.OrderTotals, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"created_at": bson.M{"$gte": since.UTC()}}}},
		{{Key: "$group", Value: bson.M{
			"_id":              nil,
			"total_orders":     bson.M{"$sum": 1},
			"total_revenue":    bson.M{"$sum": "$total"},
			"total_items_sold": bson.M{"$sum": bson.M{"$size": "$items"}},
		}}},
	}

	var rows []struct {
		TotalOrders    int     `bson:"total_orders"`
		TotalRevenue   float64 `bson:"total_revenue"`
		TotalItemsSold int     `bson:"total_items_sold"`
	}
	if err := r.aggregate(ctx, r.orders, pipeline, &rows); err != nil {
		return domain.OrderTotals{}, fmt.Errorf("order totals: %w", err)
	}
	if len(rows) == 0 {
		return domain.OrderTotals{}, nil
	}
	return domain.OrderTotals{
		TotalOrders:    rows[0].TotalOrders,
		TotalRevenue:   rows[0].TotalRevenue,
		TotalItemsSold: rows[0].TotalItemsSold,
	}, nil
}

func (r *DashboardRepository) ProductTotals(ctx context.Context) (domain.ProductTotals, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{
			"_id":             nil,
			"total":           bson.M{"$sum": 1},
			"active":          bson.M{"$sum": bson.M{"$cond": bson.A{"$is_active", 1, 0}}},
			"inventory_value": bson.M{"$sum": bson.M{"$multiply": bson.A{"$price", "$stock"}}},
			"low_stock": bson.M{"$sum": bson.M{"$cond": bson.A{
				bson.M{"$lte": bson.A{"$stock", domain.LowStockThreshold}}, 1, 0,
			}}},
		}}},
	}

	var rows []struct {
		Total          int     `bson:"total"`
		Active         int     `bson:"active"`
		InventoryValue float64 `bson:"inventory_value"`
		LowStock       int     `bson:"low_stock"`
	}
	if err := r.aggregate(ctx, r.products, pipeline, &rows); err != nil {
		return domain.ProductTotals{}, fmt.Errorf("product totals: %w", err)
	}
	if len(rows) == 0 {
		return domain.ProductTotals{}, nil
	}
	row := rows[0]
	return domain.ProductTotals{
		TotalProducts:    row.Total,
		ActiveProducts:   row.Active,
		InactiveProducts: row.Total - row.Active,
		InventoryValue:   row.InventoryValue,
		LowStockCount:    row.LowStock,
	}, nil
}

func (r *DashboardRepository) SalesTrend(ctx context.Context, since time.Time, bucket domain.TrendBucket) ([]domain.TrendPoint, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	format, ok := trendFormats[bucket]
	if !ok {
		format = trendFormats[domain.BucketDay]
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"created_at": bson.M{"$gte": since.UTC()}}}},
		{{Key: "$group", Value: bson.M{
			"_id":     bson.M{"$dateToString": bson.M{"format": format, "date": "$created_at"}},
			"revenue": bson.M{"$sum": "$total"},
			"orders":  bson.M{"$sum": 1},
		}}},
		{{Key: "$sort", Value: bson.M{"_id": 1}}},
	}

	var rows []struct {
		Date    string  `bson:"_id"`
		Revenue float64 `bson:"revenue"`
		Orders  int     `bson:"orders"`
	}
	if err := r.aggregate(ctx, r.orders, pipeline, &rows); err != nil {
		return nil, fmt.Errorf("sales trend: %w", err)
	}

	points := make([]domain.TrendPoint, 0, len(rows))
	for _, row := range rows {
		points = append(points, domain.TrendPoint{Date: row.Date, Revenue: row.Revenue, Orders: row.Orders})
	}
	return points, nil
}

func (r *DashboardRepository) aggregate(ctx context.Context, col *mongo.Collection, pipeline mongo.Pipeline, out interface{}) error {
	cursor, err := col.Aggregate(ctx, pipeline)
	if err != nil {
		return err
	}
	return cursor.All(ctx, out)
}
