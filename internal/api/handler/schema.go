package handler

import "github.com/inc-inventory/inventory-system/internal/core/domain"

// --- Auth / users ---

type signupRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Password string `json:"password" validate:"required,min=4"`
	Role     string `json:"role"     validate:"omitempty,oneof=owner employee"`
	FullName string `json:"full_name,omitempty" validate:"omitempty,max=100"`
	Email    string `json:"email,omitempty"     validate:"omitempty,email"`
}

type loginRequest struct {
	Username string `form:"username" validate:"required"`
	Password string `form:"password" validate:"required"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type roleRequest struct {
	Role string `json:"role" validate:"required,oneof=owner employee"`
}

type selfUpdateRequest struct {
	Username *string `json:"username,omitempty" validate:"omitempty,min=3,max=50"`
	Password *string `json:"password,omitempty" validate:"omitempty,min=4"`
}

// --- Catalog ---

type categoryRequest struct {
	Name        string `json:"name"        validate:"required,max=100"`
	Description string `json:"description" validate:"max=500"`
}

type categoryPatchRequest struct {
	Name        *string `json:"name,omitempty"        validate:"omitempty,min=1,max=100"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=500"`
}

type productRequest struct {
	Name        string  `json:"name"        validate:"required,max=255"`
	Description string  `json:"description" validate:"max=1000"`
	Price       float64 `json:"price"       validate:"gt=0"`
	Stock       int     `json:"stock"       validate:"gte=0"`
	IsActive    *bool   `json:"is_active,omitempty"`
	CategoryID  string  `json:"category_id,omitempty"`
}

type productPatchRequest struct {
	Name        *string  `json:"name,omitempty"        validate:"omitempty,min=1,max=255"`
	Description *string  `json:"description,omitempty" validate:"omitempty,max=1000"`
	Price       *float64 `json:"price,omitempty"       validate:"omitempty,gt=0"`
	Stock       *int     `json:"stock,omitempty"       validate:"omitempty,gte=0"`
	IsActive    *bool    `json:"is_active,omitempty"`
	CategoryID  *string  `json:"category_id,omitempty"`
}

func (r productPatchRequest) toPatch() domain.ProductPatch {
	return domain.ProductPatch{
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		Stock:       r.Stock,
		IsActive:    r.IsActive,
		CategoryID:  r.CategoryID,
	}
}

type productListQuery struct {
	Skip         int    `query:"skip"          validate:"gte=0"`
	Limit        int    `query:"limit"         validate:"gte=0,lte=200"`
	ActiveOnly   string `query:"active_only"`
	CategoryID   string `query:"category_id"`
	CategoryName string `query:"category_name"`
	Search       string `query:"search"`
}

// --- Orders ---

type orderItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity"   validate:"gte=1"`
}

type createOrderRequest struct {
	CustomerName    string             `json:"customer_name"              validate:"required,max=100"`
	CustomerPhone   string             `json:"customer_phone,omitempty"   validate:"max=30"`
	CustomerEmail   string             `json:"customer_email,omitempty"   validate:"omitempty,email"`
	CustomerAddress string             `json:"customer_address,omitempty" validate:"max=255"`
	Items           []orderItemRequest `json:"items"                      validate:"required,min=1,dive"`
}

// --- Misc ---

type messageResponse struct {
	Detail string `json:"detail"`
}
