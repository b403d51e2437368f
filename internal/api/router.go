package api

import (
	"net/http"
	"strings"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/inc-inventory/inventory-system/docs"
	"github.com/inc-inventory/inventory-system/internal/api/handler"
	"github.com/inc-inventory/inventory-system/internal/api/middleware"
	"github.com/inc-inventory/inventory-system/internal/core/domain"
	"github.com/inc-inventory/inventory-system/internal/core/ports"
)

// Services groups the application services the HTTP layer depends on.
type Services struct {
	Auth       ports.AuthService
	Users      ports.UserService
	Categories ports.CategoryService
	Products   ports.ProductService
	Orders     ports.OrderService
	Dashboard  ports.DashboardService
	Reports    ports.ReportService
}

// Options tunes the router. Zero values are usable.
type Options struct {
	Log             zerolog.Logger
	CORSOrigins     []string
	UploadDir       string
	LoginRatePerMin int
	// Readiness names the dependencies probed by /health/ready.
	Readiness map[string]handler.Pinger
	// Registry receives the HTTP metrics; nil means the default registry.
	Registry *prometheus.Registry
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(svc Services, opts Options) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(opts.Log)

	// --- Global middleware ---
	e.Pre(echomiddleware.RemoveTrailingSlash())
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(requestLogger(opts.Log))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     opts.CORSOrigins,
		AllowCredentials: true,
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))

	var registerer prometheus.Registerer = prometheus.DefaultRegisterer
	var gatherer prometheus.Gatherer = prometheus.DefaultGatherer
	if opts.Registry != nil {
		registerer, gatherer = opts.Registry, opts.Registry
	}
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Namespace:  "inventory",
		Subsystem:  "http",
		Registerer: registerer,
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/metrics" || strings.HasPrefix(c.Path(), "/health")
		},
	}))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(svc.Auth)
	userHandler := handler.NewUserHandler(svc.Users, opts.UploadDir)
	categoryHandler := handler.NewCategoryHandler(svc.Categories)
	productHandler := handler.NewProductHandler(svc.Products)
	orderHandler := handler.NewOrderHandler(svc.Orders)
	dashboardHandler := handler.NewDashboardHandler(svc.Dashboard)
	reportHandler := handler.NewReportHandler(svc.Reports)

	auth := middleware.Auth(svc.Auth)
	owner := middleware.OwnerOnly()
	staff := middleware.RBAC(domain.RoleOwner, domain.RoleEmployee)

	// --- Auth routes ---
	e.POST("/auth/signup", authHandler.Signup)
	e.POST("/auth/login", authHandler.Login, middleware.LoginRateLimit(opts.LoginRatePerMin))
	e.GET("/auth/me", authHandler.Me, auth)

	// --- Users ---
	users := e.Group("/users", auth)
	users.PUT("/me", userHandler.UpdateSelf)
	users.PUT("/me/profile-picture", userHandler.UploadProfilePicture)
	users.GET("", userHandler.List, owner)
	users.POST("", userHandler.Create, owner)
	users.PUT("/:id/role", userHandler.UpdateRole, owner)
	users.PATCH("/:id/activate", userHandler.SetActive, owner)

	// --- Catalog ---
	categories := e.Group("/categories")
	categories.GET("", categoryHandler.List)
	categories.GET("/:id", categoryHandler.Get)
	categories.POST("", categoryHandler.Create, auth, owner)
	categories.PATCH("/:id", categoryHandler.Update, auth, owner)
	categories.DELETE("/:id", categoryHandler.Delete, auth, owner)

	products := e.Group("/products")
	products.GET("", productHandler.List)
	products.GET("/:id", productHandler.Get, auth)
	products.GET("/:id/movements", productHandler.Movements, auth)
	products.POST("", productHandler.Create, auth, owner)
	products.PATCH("/:id", productHandler.Update, auth, owner)
	products.PATCH("/:id/activate", productHandler.Activate, auth, owner)
	products.PATCH("/:id/deactivate", productHandler.Deactivate, auth, owner)
	products.DELETE("/:id", productHandler.Delete, auth, owner)

	// --- Orders ---
	orders := e.Group("/orders", auth)
	orders.POST("", orderHandler.Create)
	orders.GET("", orderHandler.List)
	orders.GET("/:id", orderHandler.Get)
	orders.PATCH("/:id/cancel", orderHandler.Cancel)
	orders.PATCH("/:id/pending", orderHandler.MarkPending)

	// --- Dashboard & reports ---
	e.GET("/dashboard", dashboardHandler.Summary, auth, staff)
	reports := e.Group("/reports", auth, owner)
	reports.GET("/sales/pdf", reportHandler.Sales)
	reports.GET("/inventory/pdf", reportHandler.Inventory)

	// --- Static uploads, docs and metrics ---
	if opts.UploadDir != "" {
		e.Static(handler.UploadPrefix, opts.UploadDir)
	}
	e.GET("/swagger/*", echoSwagger.WrapHandler)
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: gatherer}))
	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"message": "Inventory API is running"})
	})

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(opts.Readiness)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	return e
}

// requestLogger writes one zerolog line per request.
func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogRemoteIP:  true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			ev := log.Info()
			if v.Status >= http.StatusInternalServerError {
				ev = log.Error().Err(v.Error)
			}
			ev.Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Str("remote_ip", v.RemoteIP).
				Msg("request")
			return nil
		},
	})
}
