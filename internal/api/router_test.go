package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/inc-inventory/inventory-system/internal/core/domain"
	"github.com/inc-inventory/inventory-system/internal/core/ports"
)

type routerAuthStub struct {
	ports.AuthService
	users map[string]*domain.User
}

func (s *routerAuthStub) Authenticate(ctx context.Context, token string) (*domain.User, error) {
	if u, ok := s.users[token]; ok {
		return u, nil
	}
	return nil, domain.ErrInvalidToken
}

type routerUsersStub struct{ ports.UserService }

func (routerUsersStub) List(ctx context.Context) ([]*domain.User, error) {
	return []*domain.User{{ID: "u1", Username: "boss", Role: domain.RoleOwner}}, nil
}

type routerProductsStub struct{ ports.ProductService }

func (routerProductsStub) List(ctx context.Context, f domain.ProductFilter) ([]*domain.Product, error) {
	return []*domain.Product{}, nil
}

type routerDashboardStub struct{}

func (routerDashboardStub) Summary(ctx context.Context, p domain.DashboardPeriod) (*domain.DashboardSummary, error) {
	return &domain.DashboardSummary{Period: p, Days: p.Days(), SalesTrend: []domain.TrendPoint{}}, nil
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	auth := &routerAuthStub{users: map[string]*domain.User{
		"owner-token":    {ID: "u1", Username: "boss", Role: domain.RoleOwner, IsActive: true},
		"employee-token": {ID: "u2", Username: "clerk", Role: domain.RoleEmployee, IsActive: true},
	}}
	return NewRouter(Services{
		Auth:      auth,
		Users:     routerUsersStub{},
		Products:  routerProductsStub{},
		Dashboard: routerDashboardStub{},
	}, Options{
		Log:      zerolog.Nop(),
		Registry: prometheus.NewRegistry(),
	})
}

func TestRouter_Access(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		name   string
		method string
		path   string
		token  string
		code   int
		body   string
	}{
		{"liveness", http.MethodGet, "/health", "", http.StatusOK, `"status":"ok"`},
		{"public product list with trailing slash", http.MethodGet, "/products/", "", http.StatusOK, "[]"},
		{"users needs token", http.MethodGet, "/users", "", http.StatusUnauthorized, `"detail":"not authenticated"`},
		{"users rejects bad token", http.MethodGet, "/users", "nope", http.StatusUnauthorized, "could not validate credentials"},
		{"users is owner only", http.MethodGet, "/users", "employee-token", http.StatusForbidden, "insufficient permissions"},
		{"owner lists users", http.MethodGet, "/users", "owner-token", http.StatusOK, `"username":"boss"`},
		{"employee sees dashboard", http.MethodGet, "/dashboard?period=year", "employee-token", http.StatusOK, `"days":365`},
		{"bad period", http.MethodGet, "/dashboard?period=decade", "owner-token", http.StatusBadRequest, "invalid period"},
		{"reports are owner only", http.MethodGet, "/reports/inventory/pdf", "employee-token", http.StatusForbidden, "insufficient permissions"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			if tt.token != "" {
				req.Header.Set("Authorization", "Bearer "+tt.token)
			}
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			if rec.Code != tt.code {
				t.Fatalf("expected %d, got %d: %s", tt.code, rec.Code, rec.Body.String())
			}
			if !strings.Contains(rec.Body.String(), tt.body) {
				t.Fatalf("body %q does not contain %q", rec.Body.String(), tt.body)
			}
		})
	}
}

func TestRouter_Unauthorized_SetsChallenge(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if got := rec.Header().Get("WWW-Authenticate"); got != "Bearer" {
		t.Fatalf("expected Bearer challenge, got %q", got)
	}
}

func TestRouter_Metrics(t *testing.T) {
	router := newTestRouter(t)

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/products", nil))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "inventory_http_requests_total") {
		t.Fatal("expected http request counter in metrics output")
	}
}
