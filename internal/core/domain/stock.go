package domain

import "time"

// MovementType tells whether a stock movement adds or removes units.
type MovementType string

const (
	MovementIncrease MovementType = "increase"
	MovementDecrease MovementType = "decrease"
)

// StockMovement records a single change to a product's stock level.
type StockMovement struct {
	ID                  string       `json:"id" bson:"_id"`
	ProductID           string       `json:"product_id" bson:"product_id"`
	Type                MovementType `json:"type" bson:"type"`
	Quantity            int          `json:"quantity" bson:"quantity"`
	Reason              string       `json:"reason" bson:"reason"`
	Timestamp           time.Time    `json:"timestamp" bson:"timestamp"`
	PerformedByID       string       `json:"performed_by_id" bson:"performed_by_id"`
	PerformedByUsername string       `json:"performed_by_username" bson:"performed_by_username"`
}
