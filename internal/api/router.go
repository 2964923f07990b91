package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/febic/fair-platform/docs"
	"github.com/febic/fair-platform/internal/api/handler"
	"github.com/febic/fair-platform/internal/api/middleware"
	"github.com/febic/fair-platform/internal/core/domain"
	"github.com/febic/fair-platform/internal/core/service"
	"github.com/febic/fair-platform/internal/infrastructure/config"
	mongodb "github.com/febic/fair-platform/internal/infrastructure/db/mongo"
	redisdb "github.com/febic/fair-platform/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, audit handler.AuditSink, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("fair_platform"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	projectRepo := mongodb.NewProjectRepository(db)
	sessionStore := redisdb.NewSessionStore(rdb, cfg.SessionTTL, log)

	authService := service.NewAuthService(userRepo, sessionStore, log)
	userService := service.NewUserService(userRepo, log)
	projectService := service.NewProjectService(projectRepo, log)
	dashboardService := service.NewDashboardService(projectRepo, cfg.DemoFallback, log)

	authHandler := handler.NewAuthHandler(authService, userService, audit, cfg.JWTSecret, cfg.SessionTTL)
	userHandler := handler.NewUserHandler(userService, audit)
	projectHandler := handler.NewProjectHandler(projectService)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)
	navigationHandler := handler.NewNavigationHandler()

	requireSession := middleware.Auth(cfg.JWTSecret, authService)

	// --- Auth routes ---
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/logout", authHandler.Logout, requireSession)

	// --- Session-scoped routes ---
	e.GET("/me", authHandler.Me, requireSession)
	e.PUT("/me", authHandler.UpdateMe, requireSession)
	e.GET("/navigation", navigationHandler.Menu, requireSession)
	e.GET("/dashboard", dashboardHandler.Summary, requireSession)
	e.GET("/projects", projectHandler.List, requireSession)
	e.GET("/projects/:id", projectHandler.Get, requireSession)

	// --- Admin routes (approve-users role set) ---
	users := e.Group("/users", requireSession,
		middleware.ActiveRole(domain.RoleAdminStaff, domain.RoleAdminCoordinator))
	users.GET("/search", userHandler.SearchByCPF)
	users.POST("/:id/roles/:role/approve", userHandler.ApproveRole)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
