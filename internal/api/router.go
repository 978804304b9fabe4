package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"

	_ "github.com/bettolandro/BettoGames/internal/api/docs"
	"github.com/bettolandro/BettoGames/internal/api/handler"
	"github.com/bettolandro/BettoGames/internal/api/middleware"
	"github.com/bettolandro/BettoGames/internal/core/domain"
	"github.com/bettolandro/BettoGames/internal/core/ports"
	"github.com/bettolandro/BettoGames/internal/core/service"
	"github.com/bettolandro/BettoGames/internal/infrastructure/repository"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// The key-value store backend is the only injected dependency; every
// repository and service is constructed over it here.
func NewRouter(store ports.KeyValueStore, jwtSecret string, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("storefront"))

	// --- Dependencies ---
	users := repository.NewUsers(store, log)
	products := repository.NewProducts(store, log)
	carts := repository.NewCarts(store, log)
	sessions := repository.NewSessions(store, log)

	authService := service.NewAuthService(users, sessions, jwtSecret, 24*time.Hour, log)
	catalogService := service.NewCatalogService(products, log)
	cartService := service.NewCartService(carts, products, log)

	authHandler := handler.NewAuthHandler(authService)
	profileHandler := handler.NewProfileHandler(authService)
	catalogHandler := handler.NewCatalogHandler(catalogService)
	cartHandler := handler.NewCartHandler(cartService)

	requireSession := middleware.Session(jwtSecret, sessions)
	optionalSession := middleware.OptionalSession(jwtSecret, sessions)
	adminOnly := middleware.RBAC(domain.RoleAdmin)

	// --- Auth / session routes ---
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/forgot", authHandler.Forgot)
	e.POST("/auth/logout", authHandler.Logout, requireSession)
	e.GET("/v1/session", authHandler.Current)

	// --- Catalog (public) ---
	e.GET("/v1/products", catalogHandler.List)
	e.GET("/v1/products/categories", catalogHandler.Categories)
	e.GET("/v1/products/:id", catalogHandler.Get)

	// --- Admin product CRUD ---
	admin := e.Group("/v1/admin", requireSession, adminOnly)
	admin.POST("/products", catalogHandler.Create)
	admin.PUT("/products/:id", catalogHandler.Update)
	admin.DELETE("/products/:id", catalogHandler.Delete)

	// --- Cart (guest key when unauthenticated) ---
	cart := e.Group("/v1/cart", optionalSession)
	cart.GET("", cartHandler.Get)
	cart.DELETE("", cartHandler.Clear)
	cart.POST("/items", cartHandler.AddItem)
	cart.PUT("/items/:productID", cartHandler.SetQuantity)
	cart.DELETE("/items/:productID", cartHandler.RemoveItem)

	// --- Profile ---
	profile := e.Group("/v1/profile", requireSession)
	profile.GET("", profileHandler.Get)
	profile.PUT("", profileHandler.Update)

	// --- Observability and docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(store)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)

	return e
}
