package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/inc-inventory/inventory-system/internal/core/domain"
	"github.com/inc-inventory/inventory-system/internal/core/ports"
)

type ProductHandler struct {
	products ports.ProductService
}

func NewProductHandler(products ports.ProductService) *ProductHandler {
	return &ProductHandler{products: products}
}

// List returns a page of products.
//
// @Summary      List products
// @Tags         products
// @Produce      json
// @Param        skip           query  int     false  "Offset"
// @Param        limit          query  int     false  "Page size (max 200)"
// @Param        active_only    query  bool    false  "Only active products (default true)"
// @Param        category_id    query  string  false  "Category ID"
// @Param        category_name  query  string  false  "Category name fragment"
// @Param        search         query  string  false  "Search in name and description"
// @Success      200  {array}   domain.Product
// @Failure      422  {object}  messageResponse
// @Router       /products [get]
func (h *ProductHandler) List(c echo.Context) error {
	var q productListQuery
	if err := bindAndValidate(c, &q); err != nil {
		return err
	}
	activeOnly := true
	if q.ActiveOnly != "" {
		v, err := strconv.ParseBool(q.ActiveOnly)
		if err != nil {
			return echo.NewHTTPError(http.StatusUnprocessableEntity, "active_only must be a boolean")
		}
		activeOnly = v
	}

	products, err := h.products.List(c.Request().Context(), domain.ProductFilter{
		Skip:         q.Skip,
		Limit:        q.Limit,
		ActiveOnly:   activeOnly,
		CategoryID:   q.CategoryID,
		CategoryName: q.CategoryName,
		Search:       q.Search,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, products)
}

// Get returns one product.
//
// @Summary      Get product
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Product ID"
// @Success      200  {object}  domain.Product
// @Failure      404  {object}  messageResponse
// @Router       /products/{id} [get]
func (h *ProductHandler) Get(c echo.Context) error {
	p, err := h.products.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, p)
}

// Create adds a product.
//
// @Summary      Create product
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      productRequest  true  "Product"
// @Success      201   {object}  domain.Product
// @Failure      400   {object}  messageResponse
// @Failure      422   {object}  messageResponse
// @Router       /products [post]
func (h *ProductHandler) Create(c echo.Context) error {
	var req productRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}
	p, err := h.products.Create(c.Request().Context(), ports.ProductInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
		IsActive:    active,
		CategoryID:  req.CategoryID,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, p)
}

// Update applies a partial update to a product.
//
// @Summary      Update product
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string               true  "Product ID"
// @Param        body  body      productPatchRequest  true  "Fields to change"
// @Success      200   {object}  domain.Product
// @Failure      400   {object}  messageResponse
// @Failure      404   {object}  messageResponse
// @Router       /products/{id} [patch]
func (h *ProductHandler) Update(c echo.Context) error {
	var req productPatchRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	p, err := h.products.Update(c.Request().Context(), c.Param("id"), req.toPatch())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, p)
}

// Activate marks a product active.
//
// @Summary      Activate product
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Product ID"
// @Success      200  {object}  domain.Product
// @Router       /products/{id}/activate [patch]
func (h *ProductHandler) Activate(c echo.Context) error {
	return h.setActive(c, true)
}

// Deactivate marks a product inactive.
//
// @Summary      Deactivate product
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Product ID"
// @Success      200  {object}  domain.Product
// @Router       /products/{id}/deactivate [patch]
func (h *ProductHandler) Deactivate(c echo.Context) error {
	return h.setActive(c, false)
}

func (h *ProductHandler) setActive(c echo.Context, active bool) error {
	p, err := h.products.SetActive(c.Request().Context(), c.Param("id"), active)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, p)
}

// Delete removes a product.
//
// @Summary      Delete product
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Product ID"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  messageResponse
// @Router       /products/{id} [delete]
func (h *ProductHandler) Delete(c echo.Context) error {
	if err := h.products.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Detail: "Product deleted"})
}

// Movements lists the stock movements of a product, newest first.
//
// @Summary      Product stock movements
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Param        id     path      string  true   "Product ID"
// @Param        limit  query     int     false  "Max entries (max 100)"
// @Success      200    {array}   domain.StockMovement
// @Failure      404    {object}  messageResponse
// @Router       /products/{id}/movements [get]
func (h *ProductHandler) Movements(c echo.Context) error {
	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return echo.NewHTTPError(http.StatusUnprocessableEntity, "limit must be a positive integer")
		}
		limit = n
	}
	moves, err := h.products.Movements(c.Request().Context(), c.Param("id"), limit)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, moves)
}
