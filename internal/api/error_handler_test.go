package api

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/inc-inventory/inventory-system/internal/core/domain"
)

func TestHTTPErrorHandler(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
		body string
	}{
		{"not found", domain.ErrProductNotFound, http.StatusNotFound, `{"detail":"product not found"}`},
		{"wrapped", fmt.Errorf("%w for Chips", domain.ErrInsufficientStock), http.StatusBadRequest, "not enough stock for Chips"},
		{"inactive", domain.ErrUserInactive, http.StatusForbidden, "deactivated"},
		{"echo error", echo.NewHTTPError(http.StatusUnauthorized, "not authenticated"), http.StatusUnauthorized, "not authenticated"},
		{"unknown", errors.New("mongo exploded"), http.StatusInternalServerError, "internal server error"},
	}

	handler := NewHTTPErrorHandler(zerolog.Nop())
	for _, tc := range cases {
		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/x", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		handler(tc.err, c)

		if rec.Code != tc.code {
			t.Fatalf("%s: expected %d, got %d", tc.name, tc.code, rec.Code)
		}
		if !strings.Contains(rec.Body.String(), tc.body) {
			t.Fatalf("%s: expected body to contain %q, got %s", tc.name, tc.body, rec.Body.String())
		}
		if strings.Contains(rec.Body.String(), "mongo exploded") {
			t.Fatalf("%s: internal error leaked", tc.name)
		}
	}
}
