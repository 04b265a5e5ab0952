package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/furnishop/storefront/internal/api/handler"
	"github.com/furnishop/storefront/internal/api/middleware"
	"github.com/furnishop/storefront/internal/core/domain"
	"github.com/furnishop/storefront/internal/core/ports"
)

// Deps carries everything the router needs. The concrete store and session
// backends are chosen in main; the router only sees the ports.
type Deps struct {
	Auth      ports.AuthService
	Cart      ports.CartService
	Wishlist  ports.WishlistService
	Checkout  ports.CheckoutService
	Catalog   ports.CatalogService
	Admin     ports.AdminService
	JWTSecret string
	Health    map[string]handler.DependencyCheck
	Logger    zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("storefront"))

	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	authMiddleware := middleware.Auth(deps.JWTSecret)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(deps.Auth)
	cartHandler := handler.NewCartHandler(deps.Cart)
	wishlistHandler := handler.NewWishlistHandler(deps.Wishlist)
	checkoutHandler := handler.NewCheckoutHandler(deps.Checkout)
	catalogHandler := handler.NewCatalogHandler(deps.Catalog)
	adminHandler := handler.NewAdminHandler(deps.Admin)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/logout", authHandler.Logout, authMiddleware)
	e.GET("/auth/profile", authHandler.GetProfile, authMiddleware)
	e.PUT("/auth/profile", authHandler.UpdateProfile, authMiddleware)

	// --- Catalog (public) ---
	e.GET("/products", catalogHandler.ListProducts)
	e.GET("/products/:id", catalogHandler.GetProduct)

	// --- Cart ---
	cart := e.Group("/cart", authMiddleware)
	cart.GET("", cartHandler.View)
	cart.POST("/items", cartHandler.Add)
	cart.PUT("/items/:productId", cartHandler.UpdateQuantity)
	cart.DELETE("/items/:productId", cartHandler.Remove)
	cart.DELETE("", cartHandler.Clear)

	// --- Wishlist ---
	wishlist := e.Group("/wishlist", authMiddleware)
	wishlist.GET("", wishlistHandler.List)
	wishlist.POST("/toggle", wishlistHandler.Toggle)
	wishlist.DELETE("/:productId", wishlistHandler.Remove)

	// --- Checkout ---
	e.POST("/checkout", checkoutHandler.PlaceOrder, authMiddleware)
	e.GET("/orders", checkoutHandler.ListOrders, authMiddleware)

	// --- Admin panel ---
	admin := e.Group("/admin", authMiddleware, middleware.RBAC(domain.RoleAdmin))
	admin.GET("/users", adminHandler.ListUsers)
	admin.PUT("/users/:id/blocked", adminHandler.SetBlocked)
	admin.DELETE("/users/:id", adminHandler.DeleteUser)
	admin.POST("/products", adminHandler.CreateProduct)
	admin.PUT("/products/:id", adminHandler.UpdateProduct)
	admin.DELETE("/products/:id", adminHandler.DeleteProduct)
	admin.GET("/orders", adminHandler.ListOrders)
	admin.PUT("/orders/:userId/:orderId/status", adminHandler.UpdateOrderStatus)
	admin.DELETE("/orders/:userId/:orderId", adminHandler.DeleteOrder)
	admin.GET("/dashboard", adminHandler.Dashboard)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(deps.Health)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
