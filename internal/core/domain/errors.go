package domain

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("username already taken")
	ErrUserInactive       = errors.New("user account is deactivated")
	ErrInvalidRole        = errors.New("invalid role")
	ErrInvalidToken       = errors.New("invalid authentication token")
	ErrForbidden          = errors.New("you do not have permission to perform this action")

	ErrCategoryNotFound = errors.New("category not found")
	ErrCategoryExists   = errors.New("category already exists")
	ErrInvalidCategory  = errors.New("invalid category_id")

	ErrProductNotFound = errors.New("product not found")
	ErrProductExists   = errors.New("product with this name already exists in the category")

	ErrOrderNotFound         = errors.New("order not found")
	ErrOrderAlreadyCancelled = errors.New("order already cancelled")
	ErrInsufficientStock     = errors.New("not enough stock")
	ErrEmptyOrder            = errors.New("order must contain at least one item")
	ErrInvalidQuantity       = errors.New("quantity must be at least 1")

	ErrNameRequired   = errors.New("name is required")
	ErrNoUpdateFields = errors.New("no fields provided for update")
	ErrInvalidPeriod  = errors.New("invalid period")
	ErrNoReportData   = errors.New("no data for report")
)
