package handler

import (
	"context"
	"io"
	"net/http/httptest"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/inc-inventory/inventory-system/internal/api/middleware"
	"github.com/inc-inventory/inventory-system/internal/core/domain"
	"github.com/inc-inventory/inventory-system/internal/core/ports"
)

// Stubs embed the port interface so tests only implement what they call.

type stubAuthService struct {
	ports.AuthService
	signupFn func(ctx context.Context, in ports.SignupInput) (*domain.User, error)
	loginFn  func(ctx context.Context, username, password string) (string, *domain.User, error)
}

func (s *stubAuthService) Signup(ctx context.Context, in ports.SignupInput) (*domain.User, error) {
	return s.signupFn(ctx, in)
}

func (s *stubAuthService) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	return s.loginFn(ctx, username, password)
}

type stubUserService struct {
	ports.UserService
	setPictureFn func(ctx context.Context, id, path string) (*domain.User, error)
	updateSelfFn func(ctx context.Context, id string, in ports.SelfUpdateInput) (*domain.User, error)
}

func (s *stubUserService) SetProfilePicture(ctx context.Context, id, path string) (*domain.User, error) {
	return s.setPictureFn(ctx, id, path)
}

func (s *stubUserService) UpdateSelf(ctx context.Context, id string, in ports.SelfUpdateInput) (*domain.User, error) {
	return s.updateSelfFn(ctx, id, in)
}

type stubProductService struct {
	ports.ProductService
	listFn      func(ctx context.Context, f domain.ProductFilter) ([]*domain.Product, error)
	createFn    func(ctx context.Context, in ports.ProductInput) (*domain.Product, error)
	setActiveFn func(ctx context.Context, id string, active bool) (*domain.Product, error)
}

func (s *stubProductService) List(ctx context.Context, f domain.ProductFilter) ([]*domain.Product, error) {
	return s.listFn(ctx, f)
}

func (s *stubProductService) Create(ctx context.Context, in ports.ProductInput) (*domain.Product, error) {
	return s.createFn(ctx, in)
}

func (s *stubProductService) SetActive(ctx context.Context, id string, active bool) (*domain.Product, error) {
	return s.setActiveFn(ctx, id, active)
}

type stubOrderService struct {
	ports.OrderService
	createFn func(ctx context.Context, actor ports.Actor, in ports.CreateOrderInput) (*domain.Order, error)
	cancelFn func(ctx context.Context, actor ports.Actor, id string) (*domain.Order, error)
}

func (s *stubOrderService) Create(ctx context.Context, actor ports.Actor, in ports.CreateOrderInput) (*domain.Order, error) {
	return s.createFn(ctx, actor, in)
}

func (s *stubOrderService) Cancel(ctx context.Context, actor ports.Actor, id string) (*domain.Order, error) {
	return s.cancelFn(ctx, actor, id)
}

type stubDashboardService struct {
	summaryFn func(ctx context.Context, p domain.DashboardPeriod) (*domain.DashboardSummary, error)
}

func (s *stubDashboardService) Summary(ctx context.Context, p domain.DashboardPeriod) (*domain.DashboardSummary, error) {
	return s.summaryFn(ctx, p)
}

type stubReportService struct {
	salesFn func(ctx context.Context, from, to time.Time) ([]byte, error)
}

func (s *stubReportService) Sales(ctx context.Context, from, to time.Time) ([]byte, error) {
	return s.salesFn(ctx, from, to)
}

func (s *stubReportService) Inventory(ctx context.Context) ([]byte, error) {
	return []byte("%PDF-inventory"), nil
}

// newContext builds an echo context with the handler validator installed.
func newContext(method, target string, body io.Reader, contentType string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, target, body)
	if contentType != "" {
		req.Header.Set(echo.HeaderContentType, contentType)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func withUser(c echo.Context, u *domain.User) {
	c.Set(middleware.CtxUser, u)
}
