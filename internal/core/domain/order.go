package domain

import (
	"errors"
	"time"
)

// OrderStatus represents the lifecycle state of an order.
type OrderStatus string

const (
	OrderCompleted OrderStatus = "completed"
	OrderPending   OrderStatus = "pending"
	OrderCancelled OrderStatus = "cancelled"
)

// validTransitions defines the allowed order status changes.
var validTransitions = map[OrderStatus][]OrderStatus{
	OrderCompleted: {OrderPending, OrderCancelled},
	OrderPending:   {OrderCancelled},
}

var ErrInvalidTransition = errors.New("invalid order status transition")

// CanTransitionTo reports whether an order may move from s to next.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Customer holds the buyer's contact details captured with an order.
type Customer struct {
	Name    string `json:"customer_name" bson:"customer_name"`
	Phone   string `json:"customer_phone,omitempty" bson:"customer_phone,omitempty"`
	Email   string `json:"customer_email,omitempty" bson:"customer_email,omitempty"`
	Address string `json:"customer_address,omitempty" bson:"customer_address,omitempty"`
}

// OrderItem is a priced line of an order. Name and price are copied from
// the product at order time.
type OrderItem struct {
	ProductID   string  `json:"product_id" bson:"product_id"`
	ProductName string  `json:"product_name" bson:"product_name"`
	Quantity    int     `json:"quantity" bson:"quantity"`
	Price       float64 `json:"price" bson:"price"`
	Subtotal    float64 `json:"subtotal" bson:"subtotal"`
}

// Order is a sale placed by a staff member.
type Order struct {
	ID                string      `json:"id" bson:"_id"`
	Customer          `bson:",inline"`
	Items             []OrderItem `json:"items" bson:"items"`
	Total             float64     `json:"total" bson:"total"`
	Status            OrderStatus `json:"status" bson:"status"`
	CreatedAt         time.Time   `json:"created_at" bson:"created_at"`
	CreatedByID       string      `json:"created_by_id" bson:"created_by_id"`
	CreatedByUsername string      `json:"created_by_username" bson:"created_by_username"`
}
