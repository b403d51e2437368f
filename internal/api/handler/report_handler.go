package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/inc-inventory/inventory-system/internal/core/ports"
)

const mimePDF = "application/pdf"

type ReportHandler struct {
	reports ports.ReportService
	now     func() time.Time
}

func NewReportHandler(reports ports.ReportService) *ReportHandler {
	return &ReportHandler{reports: reports, now: time.Now}
}

// Sales streams the sales report as a PDF attachment.
//
// @Summary      Sales report
// @Tags         reports
// @Produce      application/pdf
// @Security     BearerAuth
// @Param        start_date  query  string  false  "YYYY-MM-DD or RFC3339"
// @Param        end_date    query  string  false  "YYYY-MM-DD or RFC3339"
// @Success      200  {file}    binary
// @Failure      404  {object}  messageResponse
// @Router       /reports/sales/pdf [get]
func (h *ReportHandler) Sales(c echo.Context) error {
	from, err := parseReportDate(c.QueryParam("start_date"), false)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "start_date: "+err.Error())
	}
	to, err := parseReportDate(c.QueryParam("end_date"), true)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "end_date: "+err.Error())
	}

	doc, err := h.reports.Sales(c.Request().Context(), from, to)
	if err != nil {
		return err
	}
	return h.attach(c, "sales_report", doc)
}

// Inventory streams the inventory report as a PDF attachment.
//
// @Summary      Inventory report
// @Tags         reports
// @Produce      application/pdf
// @Security     BearerAuth
// @Success      200  {file}    binary
// @Failure      404  {object}  messageResponse
// @Router       /reports/inventory/pdf [get]
func (h *ReportHandler) Inventory(c echo.Context) error {
	doc, err := h.reports.Inventory(c.Request().Context())
	if err != nil {
		return err
	}
	return h.attach(c, "inventory_report", doc)
}

func (h *ReportHandler) attach(c echo.Context, prefix string, doc []byte) error {
	name := fmt.Sprintf("%s_%s.pdf", prefix, h.now().Format("20060102_150405"))
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", name))
	return c.Blob(http.StatusOK, mimePDF, doc)
}

// parseReportDate accepts a calendar date or an RFC3339 timestamp. A bare
// end date covers the whole day.
func parseReportDate(raw string, endOfDay bool) (time.Time, error) {
	if raw == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse(time.DateOnly, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q", raw)
	}
	if endOfDay {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}
	return t, nil
}
