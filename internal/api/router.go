package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/JPVargas2025/storefront/docs"
	"github.com/JPVargas2025/storefront/internal/api/handler"
	"github.com/JPVargas2025/storefront/internal/api/middleware"
	"github.com/JPVargas2025/storefront/internal/core/domain"
	"github.com/JPVargas2025/storefront/internal/core/ports"
)

// Dependencies are the services and probes the router wires into handlers.
type Dependencies struct {
	Auth    ports.AuthService
	Catalog ports.CatalogService
	Orders  ports.OrderService
	Reports ports.ReportService

	// Readiness maps a dependency name to its probe for /health/ready.
	Readiness map[string]handler.Pinger

	JWTSecret string
	Logger    zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("storefront"))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(deps.Auth)
	productHandler := handler.NewProductHandler(deps.Catalog)
	orderHandler := handler.NewOrderHandler(deps.Orders)
	reportHandler := handler.NewReportHandler(deps.Reports)
	authMiddleware := middleware.Auth(deps.JWTSecret)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	// --- Authenticated routes (user or admin) ---
	v1 := e.Group("/v1", authMiddleware, middleware.RBAC(domain.RoleUser, domain.RoleAdmin))
	v1.GET("/products", productHandler.List)
	v1.GET("/products/categories", productHandler.Categories)
	v1.POST("/products", productHandler.Create, middleware.RBAC(domain.RoleAdmin))
	v1.POST("/orders", orderHandler.Create)
	v1.GET("/orders", orderHandler.ListMine)

	// --- Admin routes ---
	admin := v1.Group("/admin", middleware.RBAC(domain.RoleAdmin))
	admin.GET("/users", authHandler.ListUsers)
	admin.GET("/users/:username/orders", orderHandler.ListForUser)
	admin.GET("/reports/sales", reportHandler.Sales)
	admin.GET("/exports/inventory", reportHandler.ExportInventory)
	admin.GET("/exports/sales", reportHandler.ExportSales)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(deps.Readiness)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Operational ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
