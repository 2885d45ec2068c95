package routes

import (
	"trichygold-order/internal/adapters/http/handlers"
	"trichygold-order/internal/adapters/http/middleware"
	"trichygold-order/internal/adapters/persistence/repositories"
	"trichygold-order/internal/config"
	"trichygold-order/internal/core/services"
	"trichygold-order/internal/pkg/logger"
	"trichygold-order/internal/pkg/validate"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"gorm.io/gorm"

	_ "trichygold-order/docs"
)

// Setup configures all routes for the application
func Setup(app *fiber.App, db *gorm.DB, cfg *config.Config, log *logger.Logger) {
	// Initialize repositories
	employeeRepo := repositories.NewEmployeeRepository(db)
	orderRepo := repositories.NewOrderRepository(db)

	// Initialize services
	authService := services.NewAuthService(employeeRepo, cfg, log)
	orderService := services.NewOrderService(orderRepo, employeeRepo, log)

	// Initialize handlers
	validator := validate.New()
	healthHandler := handlers.NewHealthHandler(db, cfg)
	authHandler := handlers.NewAuthHandler(authService, validator, cfg, log)
	orderHandler := handlers.NewOrderHandler(orderService, validator, cfg, log)

	// Health check & root routes
	app.Get("/", healthHandler.Root)
	app.Get("/health", healthHandler.HealthCheck)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	api := app.Group("/api")
	authRequired := middleware.AuthMiddleware(authService)

	// ============================================================
	// Auth
	// ============================================================
	auth := api.Group("/auth")
	auth.Post("/login", middleware.AuthRateLimiter(cfg), authHandler.Login)
	auth.Get("/me", authRequired, authHandler.Me)
	auth.Post("/register", authRequired, middleware.AdminOnly(), authHandler.Register)
	auth.Get("/employees", authRequired, middleware.AdminOnly(), authHandler.ListEmployees)

	// ============================================================
	// Orders
	// ============================================================
	orders := api.Group("/orders", authRequired, middleware.NoCacheHeaders())
	orders.Get("/", orderHandler.Get)
	orders.Post("/", orderHandler.Create)
	orders.Get("/summary", middleware.AdminOnly(), orderHandler.Summary)
	orders.Get("/:id", orderHandler.GetByID)
	orders.Patch("/:id/status", orderHandler.UpdateStatus)
	orders.Delete("/:id", orderHandler.Delete)
}
