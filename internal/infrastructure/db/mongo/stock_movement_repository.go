package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/inc-inventory/inventory-system/internal/core/domain"
)

// StockMovementRepository stores the stock audit trail.
type StockMovementRepository struct {
	col *mongo.Collection
}

func NewStockMovementRepository(db *mongo.Database) *StockMovementRepository {
	return &StockMovementRepository{col: db.Collection(collectionMovements)}
}

// Insert persists a movement. Re-inserting the same id is a no-op.
func (r *StockMovementRepository) Insert(ctx context.Context, m *domain.StockMovement) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.col.InsertOne(ctx, m); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil
		}
		return fmt.Errorf("insert movement: %w", err)
	}
	return nil
}

func (r *StockMovementRepository) ListByProduct(ctx context.Context, productID string, limit int) ([]*domain.StockMovement, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}}).SetLimit(int64(limit))
	cursor, err := r.col.Find(ctx, bson.M{"product_id": productID}, opts)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	out := make([]*domain.StockMovement, 0)
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode movements: %w", err)
	}
	return out, nil
}

func (r *StockMovementRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, indexTimeout)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "product_id", Value: 1}, {Key: "timestamp", Value: -1}},
	})
	return err
}
