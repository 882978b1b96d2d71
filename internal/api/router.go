package api

import (
	"database/sql"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/spendwise/expense-system/internal/api/handler"
	"github.com/spendwise/expense-system/internal/api/middleware"
	"github.com/spendwise/expense-system/internal/core/domain"
	"github.com/spendwise/expense-system/internal/core/service"
	"github.com/spendwise/expense-system/internal/infrastructure/db/postgres"
	redisinfra "github.com/spendwise/expense-system/internal/infrastructure/db/redis"
)

// Options carries the pieces NewRouter needs beyond the two store handles.
type Options struct {
	JWTSecret string
	TokenTTL  time.Duration
	Logger    zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *sql.DB, rdb *redis.Client, opts Options) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("expense"))

	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(opts.Logger)

	// --- Dependencies ---
	userRepo := postgres.NewUserRepository(db)
	categoryRepo := postgres.NewCategoryRepository(db)
	expenseRepo := postgres.NewExpenseRepository(db)
	summaryRepo := postgres.NewSummaryRepository(db)
	sessions := redisinfra.NewSessionStore(rdb)

	authService := service.NewAuthService(userRepo, sessions, opts.JWTSecret, opts.TokenTTL)
	expenseService := service.NewExpenseService(expenseRepo, categoryRepo, opts.Logger)
	categoryService := service.NewCategoryService(categoryRepo, opts.Logger)
	summaryService := service.NewSummaryService(summaryRepo, opts.Logger)
	userService := service.NewUserService(userRepo, categoryRepo, summaryRepo, opts.Logger)

	authHandler := handler.NewAuthHandler(authService)
	expenseHandler := handler.NewExpenseHandler(expenseService)
	categoryHandler := handler.NewCategoryHandler(categoryService)
	dashboardHandler := handler.NewDashboardHandler(summaryService)
	userHandler := handler.NewUserHandler(userService)

	authMiddleware := middleware.Auth(opts.JWTSecret, sessions)
	adminOnly := middleware.RBAC(domain.RoleAdmin)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/logout", authHandler.Logout, authMiddleware)

	// --- Authenticated API ---
	v1 := e.Group("/v1", authMiddleware)

	v1.GET("/dashboard", dashboardHandler.Overview)
	v1.GET("/dashboard/monthly-series", dashboardHandler.MonthlySeries)

	v1.GET("/expenses", expenseHandler.List)
	v1.POST("/expenses", expenseHandler.Create)
	v1.GET("/expenses/:id", expenseHandler.Get)
	v1.PUT("/expenses/:id", expenseHandler.Update)
	v1.DELETE("/expenses/:id", expenseHandler.Delete)

	v1.GET("/categories", categoryHandler.List)
	v1.POST("/categories", categoryHandler.Create, adminOnly)
	v1.PUT("/categories/:id", categoryHandler.Rename, adminOnly)
	v1.DELETE("/categories/:id", categoryHandler.Delete, adminOnly)

	admin := v1.Group("/admin", adminOnly)
	admin.GET("/overview", userHandler.Overview)
	admin.GET("/users", userHandler.List)
	admin.POST("/users", userHandler.Create)
	admin.PUT("/users/:id", userHandler.Update)
	admin.DELETE("/users/:id", userHandler.Delete)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
