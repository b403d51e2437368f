package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/inc-inventory/inventory-system/internal/core/domain"
	"github.com/inc-inventory/inventory-system/internal/core/ports"
)

type DashboardHandler struct {
	dashboard ports.DashboardService
}

func NewDashboardHandler(dashboard ports.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard}
}

// Summary returns sales and inventory aggregates for a period.
//
// @Summary      Dashboard summary
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Param        period  query     string  false  "week, month, year or all"
// @Success      200     {object}  domain.DashboardSummary
// @Failure      400     {object}  messageResponse
// @Router       /dashboard [get]
func (h *DashboardHandler) Summary(c echo.Context) error {
	period, err := domain.ParsePeriod(c.QueryParam("period"))
	if err != nil {
		return err
	}
	summary, err := h.dashboard.Summary(c.Request().Context(), period)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, summary)
}
