package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/inc-inventory/inventory-system/internal/core/domain"
)

func TestReportHandler_Sales_Attachment(t *testing.T) {
	var gotFrom, gotTo time.Time
	stub := &stubReportService{
		salesFn: func(ctx context.Context, from, to time.Time) ([]byte, error) {
			gotFrom, gotTo = from, to
			return []byte("%PDF-sales"), nil
		},
	}
	h := NewReportHandler(stub)
	h.now = func() time.Time { return time.Date(2024, 3, 5, 14, 7, 9, 0, time.UTC) }

	c, rec := newContext(http.MethodGet, "/reports/sales/pdf?start_date=2024-03-01&end_date=2024-03-05", nil, "")
	if err := h.Sales(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if ct := rec.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Fatalf("unexpected content type %q", ct)
	}
	if cd := rec.Header().Get("Content-Disposition"); !strings.Contains(cd, "sales_report_20240305_140709.pdf") {
		t.Fatalf("unexpected disposition %q", cd)
	}
	if !gotFrom.Equal(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected from %v", gotFrom)
	}
	if gotTo.Day() != 5 || gotTo.Hour() != 23 {
		t.Fatalf("end date should cover the whole day, got %v", gotTo)
	}
}

func TestReportHandler_Sales_NoData(t *testing.T) {
	stub := &stubReportService{
		salesFn: func(ctx context.Context, from, to time.Time) ([]byte, error) {
			return nil, domain.ErrNoReportData
		},
	}
	h := NewReportHandler(stub)

	c, _ := newContext(http.MethodGet, "/reports/sales/pdf", nil, "")
	if err := h.Sales(c); !errors.Is(err, domain.ErrNoReportData) {
		t.Fatalf("expected ErrNoReportData, got %v", err)
	}
}

func TestParseReportDate(t *testing.T) {
	if d, err := parseReportDate("", true); err != nil || !d.IsZero() {
		t.Fatalf("empty date should be open, got %v %v", d, err)
	}
	if _, err := parseReportDate("03/01/2024", false); err == nil {
		t.Fatal("expected error for unsupported format")
	}
	d, err := parseReportDate("2024-03-01T10:00:00+08:00", true)
	if err != nil || d.Hour() != 2 {
		t.Fatalf("RFC3339 should be kept as-is in UTC, got %v %v", d, err)
	}
}
