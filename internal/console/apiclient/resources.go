package apiclient

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/inc-inventory/inventory-system/internal/core/domain"
)

// ProductQuery filters GET /products. Zero values are left to the server.
type ProductQuery struct {
	Skip         int
	Limit        int
	IncludeAll   bool
	CategoryID   string
	CategoryName string
	Search       string
}

func (q ProductQuery) values() url.Values {
	v := url.Values{}
	if q.Skip > 0 {
		v.Set("skip", strconv.Itoa(q.Skip))
	}
	if q.Limit > 0 {
		v.Set("limit", strconv.Itoa(q.Limit))
	}
	if q.IncludeAll {
		v.Set("active_only", "false")
	}
	if q.CategoryID != "" {
		v.Set("category_id", q.CategoryID)
	}
	if q.CategoryName != "" {
		v.Set("category_name", q.CategoryName)
	}
	if q.Search != "" {
		v.Set("search", q.Search)
	}
	return v
}

// ProductRequest is the body of POST /products.
type ProductRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
	IsActive    *bool   `json:"is_active,omitempty"`
	CategoryID  string  `json:"category_id,omitempty"`
}

// ProductPatch is the body of PATCH /products/{id}.
type ProductPatch struct {
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	Stock       *int     `json:"stock,omitempty"`
	CategoryID  *string  `json:"category_id,omitempty"`
}

// CategoryRequest is the body of POST /categories.
type CategoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// OrderLine is one item of an order request.
type OrderLine struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// OrderRequest is the body of POST /orders.
type OrderRequest struct {
	CustomerName    string      `json:"customer_name"`
	CustomerPhone   string      `json:"customer_phone,omitempty"`
	CustomerEmail   string      `json:"customer_email,omitempty"`
	CustomerAddress string      `json:"customer_address,omitempty"`
	Items           []OrderLine `json:"items"`
}

// --- Products ---

func (c *Client) ListProducts(ctx context.Context, q ProductQuery) ([]domain.Product, error) {
	var out []domain.Product
	err := c.do(ctx, request{method: http.MethodGet, path: "/products", query: q.values()}, &out)
	return out, err
}

func (c *Client) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	var p domain.Product
	if err := c.do(ctx, request{method: http.MethodGet, path: "/products/" + url.PathEscape(id)}, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *Client) CreateProduct(ctx context.Context, in ProductRequest) (*domain.Product, error) {
	return c.sendProduct(ctx, http.MethodPost, "/products", in)
}

func (c *Client) UpdateProduct(ctx context.Context, id string, patch ProductPatch) (*domain.Product, error) {
	return c.sendProduct(ctx, http.MethodPatch, "/products/"+url.PathEscape(id), patch)
}

// SetProductActive toggles a product through its activate/deactivate endpoint.
func (c *Client) SetProductActive(ctx context.Context, id string, active bool) (*domain.Product, error) {
	action := "/deactivate"
	if active {
		action = "/activate"
	}
	return c.sendProduct(ctx, http.MethodPatch, "/products/"+url.PathEscape(id)+action, nil)
}

func (c *Client) DeleteProduct(ctx context.Context, id string) error {
	return c.do(ctx, request{method: http.MethodDelete, path: "/products/" + url.PathEscape(id)}, nil)
}

func (c *Client) ProductMovements(ctx context.Context, id string) ([]domain.StockMovement, error) {
	var out []domain.StockMovement
	err := c.do(ctx, request{method: http.MethodGet, path: "/products/" + url.PathEscape(id) + "/movements"}, &out)
	return out, err
}

func (c *Client) sendProduct(ctx context.Context, method, path string, payload any) (*domain.Product, error) {
	r, err := c.jsonRequest(method, path, payload)
	if err != nil {
		return nil, err
	}
	var p domain.Product
	if err := c.do(ctx, r, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// --- Categories ---

func (c *Client) ListCategories(ctx context.Context) ([]domain.Category, error) {
	var out []domain.Category
	err := c.do(ctx, request{method: http.MethodGet, path: "/categories"}, &out)
	return out, err
}

func (c *Client) CreateCategory(ctx context.Context, in CategoryRequest) (*domain.Category, error) {
	r, err := c.jsonRequest(http.MethodPost, "/categories", in)
	if err != nil {
		return nil, err
	}
	var cat domain.Category
	if err := c.do(ctx, r, &cat); err != nil {
		return nil, err
	}
	return &cat, nil
}

func (c *Client) DeleteCategory(ctx context.Context, id string) error {
	return c.do(ctx, request{method: http.MethodDelete, path: "/categories/" + url.PathEscape(id)}, nil)
}

// --- Orders ---

func (c *Client) ListOrders(ctx context.Context) ([]domain.Order, error) {
	var out []domain.Order
	err := c.do(ctx, request{method: http.MethodGet, path: "/orders"}, &out)
	return out, err
}

func (c *Client) CreateOrder(ctx context.Context, in OrderRequest) (*domain.Order, error) {
	r, err := c.jsonRequest(http.MethodPost, "/orders", in)
	if err != nil {
		return nil, err
	}
	var o domain.Order
	if err := c.do(ctx, r, &o); err != nil {
		return nil, err
	}
	return &o, nil
}

func (c *Client) CancelOrder(ctx context.Context, id string) (*domain.Order, error) {
	return c.patchOrder(ctx, id, "/cancel")
}

func (c *Client) MarkOrderPending(ctx context.Context, id string) (*domain.Order, error) {
	return c.patchOrder(ctx, id, "/pending")
}

func (c *Client) patchOrder(ctx context.Context, id, action string) (*domain.Order, error) {
	var o domain.Order
	if err := c.do(ctx, request{method: http.MethodPatch, path: "/orders/" + url.PathEscape(id) + action}, &o); err != nil {
		return nil, err
	}
	return &o, nil
}

// --- Users ---

func (c *Client) ListUsers(ctx context.Context) ([]domain.User, error) {
	var out []domain.User
	err := c.do(ctx, request{method: http.MethodGet, path: "/users"}, &out)
	return out, err
}

func (c *Client) CreateUser(ctx context.Context, in SignupRequest) (*domain.User, error) {
	r, err := c.jsonRequest(http.MethodPost, "/users", in)
	if err != nil {
		return nil, err
	}
	var u domain.User
	if err := c.do(ctx, r, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *Client) SetUserRole(ctx context.Context, id string, role domain.Role) (*domain.User, error) {
	r, err := c.jsonRequest(http.MethodPut, "/users/"+url.PathEscape(id)+"/role", map[string]domain.Role{"role": role})
	if err != nil {
		return nil, err
	}
	var u domain.User
	if err := c.do(ctx, r, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *Client) SetUserActive(ctx context.Context, id string, active bool) (*domain.User, error) {
	var u domain.User
	err := c.do(ctx, request{
		method: http.MethodPatch,
		path:   "/users/" + url.PathEscape(id) + "/activate",
		query:  url.Values{"is_active": {strconv.FormatBool(active)}},
	}, &u)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// --- Dashboard & reports ---

func (c *Client) Dashboard(ctx context.Context, period string) (*domain.DashboardSummary, error) {
	q := url.Values{}
	if period != "" {
		q.Set("period", period)
	}
	var s domain.DashboardSummary
	if err := c.do(ctx, request{method: http.MethodGet, path: "/dashboard", query: q}, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// SalesReport downloads the sales PDF. Zero bounds are omitted.
func (c *Client) SalesReport(ctx context.Context, from, to time.Time) ([]byte, error) {
	q := url.Values{}
	if !from.IsZero() {
		q.Set("start_date", from.Format(time.DateOnly))
	}
	if !to.IsZero() {
		q.Set("end_date", to.Format(time.DateOnly))
	}
	return c.doRaw(ctx, request{method: http.MethodGet, path: "/reports/sales/pdf", query: q})
}

func (c *Client) InventoryReport(ctx context.Context) ([]byte, error) {
	return c.doRaw(ctx, request{method: http.MethodGet, path: "/reports/inventory/pdf"})
}
