package domain

import "time"

// LowStockThreshold is the stock level at or below which a product is
// reported as running low.
const LowStockThreshold = 5

// Category groups products.
type Category struct {
	ID          string     `json:"id" bson:"_id"`
	Name        string     `json:"name" bson:"name"`
	Description string     `json:"description,omitempty" bson:"description,omitempty"`
	CreatedAt   time.Time  `json:"created_at" bson:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at" bson:"updated_at"`
}

// CategoryPatch carries the optional fields of a category update.
type CategoryPatch struct {
	Name        *string
	Description *string
}

// Empty reports whether the patch changes nothing.
func (p CategoryPatch) Empty() bool { return p.Name == nil && p.Description == nil }

// Product is a sellable stock item.
type Product struct {
	ID          string     `json:"id" bson:"_id"`
	Name        string     `json:"name" bson:"name"`
	Description string     `json:"description,omitempty" bson:"description,omitempty"`
	Price       float64    `json:"price" bson:"price"`
	Stock       int        `json:"stock" bson:"stock"`
	IsActive    bool       `json:"is_active" bson:"is_active"`
	CategoryID  string     `json:"category_id,omitempty" bson:"category_id,omitempty"`
	CreatedAt   time.Time  `json:"created_at" bson:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at" bson:"updated_at"`
}

// LowStock reports whether the product is at or below LowStockThreshold.
func (p Product) LowStock() bool { return p.Stock <= LowStockThreshold }

// ProductPatch carries the optional fields of a product update.
type ProductPatch struct {
	Name        *string
	Description *string
	Price       *float64
	Stock       *int
	IsActive    *bool
	CategoryID  *string
}

// Empty reports whether the patch changes nothing.
func (p ProductPatch) Empty() bool {
	return p.Name == nil && p.Description == nil && p.Price == nil &&
		p.Stock == nil && p.IsActive == nil && p.CategoryID == nil
}

// ProductFilter narrows a product listing. CategoryName is resolved to a
// category id by the service before it reaches the repository.
type ProductFilter struct {
	Skip         int
	Limit        int
	ActiveOnly   bool
	CategoryID   string
	CategoryName string
	Search       string
}
