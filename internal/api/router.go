package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/khadamat/marketplace-api/internal/api/handler"
	"github.com/khadamat/marketplace-api/internal/api/middleware"
	"github.com/khadamat/marketplace-api/internal/core/ports"
	"github.com/khadamat/marketplace-api/internal/core/service"
	"github.com/khadamat/marketplace-api/internal/infrastructure/config"
	mongodb "github.com/khadamat/marketplace-api/internal/infrastructure/db/mongo"
	redisdb "github.com/khadamat/marketplace-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger, notifier ports.Notifier) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("marketplace"))

	// --- Repositories (the remote data service) ---
	users := mongodb.NewUserRepository(db)
	stores := mongodb.NewStoreRepository(db)
	properties := mongodb.NewPropertyRepository(db)
	vehicles := mongodb.NewVehicleRepository(db)
	orders := mongodb.NewOrderRepository(db)
	categories := mongodb.NewCategoryRepository(db)
	sessionStore := redisdb.NewSessionStore(rdb)

	// --- Services ---
	sessionService := service.NewSessionService(users, sessionStore, log, cfg.JWTSecret, cfg.TokenTTL, cfg.SignupRequireConfirmation)
	dashboardService := service.NewDashboardService(stores, properties, vehicles, orders, notifier, log)
	catalogService := service.NewCatalogService(categories, stores, notifier, log)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(sessionService)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)
	catalogHandler := handler.NewCatalogHandler(catalogService)
	pagesHandler := handler.NewPagesHandler()
	requireAuth := middleware.Auth(cfg.JWTSecret, sessionStore)

	// --- Auth / session routes ---
	e.POST("/v1/auth/signup", authHandler.SignUp)
	e.POST("/v1/auth/signin", authHandler.SignIn)
	e.POST("/v1/auth/signout", authHandler.SignOut)
	e.GET("/v1/session", authHandler.Session)

	// --- Dashboard (session required) ---
	e.GET("/v1/dashboard", dashboardHandler.Get, requireAuth)
	e.DELETE("/v1/dashboard/:collection/:id", dashboardHandler.Delete, requireAuth)

	// --- Public catalog and static pages ---
	e.GET("/v1/catalog", catalogHandler.Get)
	e.GET("/v1/pages/:slug", pagesHandler.Get)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
