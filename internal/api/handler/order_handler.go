package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/inc-inventory/inventory-system/internal/core/domain"
	"github.com/inc-inventory/inventory-system/internal/core/ports"
)

type OrderHandler struct {
	orders ports.OrderService
}

func NewOrderHandler(orders ports.OrderService) *OrderHandler {
	return &OrderHandler{orders: orders}
}

// Create places an order and deducts stock for every line.
//
// @Summary      Create order
// @Tags         orders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createOrderRequest  true  "Order"
// @Success      201   {object}  domain.Order
// @Failure      400   {object}  messageResponse
// @Failure      404   {object}  messageResponse
// @Failure      422   {object}  messageResponse
// @Router       /orders [post]
func (h *OrderHandler) Create(c echo.Context) error {
	actor, err := currentActor(c)
	if err != nil {
		return err
	}
	var req createOrderRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	lines := make([]ports.OrderLineInput, 0, len(req.Items))
	for _, it := range req.Items {
		lines = append(lines, ports.OrderLineInput{ProductID: it.ProductID, Quantity: it.Quantity})
	}

	order, err := h.orders.Create(c.Request().Context(), actor, ports.CreateOrderInput{
		Customer: domain.Customer{
			Name:    req.CustomerName,
			Phone:   req.CustomerPhone,
			Email:   req.CustomerEmail,
			Address: req.CustomerAddress,
		},
		Items: lines,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, order)
}

// List returns the most recent orders.
//
// @Summary      List orders
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Order
// @Router       /orders [get]
func (h *OrderHandler) List(c echo.Context) error {
	orders, err := h.orders.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, orders)
}

// Get returns one order.
//
// @Summary      Get order
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Order ID"
// @Success      200  {object}  domain.Order
// @Failure      404  {object}  messageResponse
// @Router       /orders/{id} [get]
func (h *OrderHandler) Get(c echo.Context) error {
	order, err := h.orders.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, order)
}

// Cancel cancels an order and restores its stock.
//
// @Summary      Cancel order
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Order ID"
// @Success      200  {object}  domain.Order
// @Failure      400  {object}  messageResponse
// @Failure      404  {object}  messageResponse
// @Router       /orders/{id}/cancel [patch]
func (h *OrderHandler) Cancel(c echo.Context) error {
	actor, err := currentActor(c)
	if err != nil {
		return err
	}
	order, err := h.orders.Cancel(c.Request().Context(), actor, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, order)
}

// MarkPending moves a completed order back to pending.
//
// @Summary      Mark order pending
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Order ID"
// @Success      200  {object}  domain.Order
// @Failure      400  {object}  messageResponse
// @Failure      404  {object}  messageResponse
// @Router       /orders/{id}/pending [patch]
func (h *OrderHandler) MarkPending(c echo.Context) error {
	order, err := h.orders.MarkPending(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, order)
}
