package api

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/estately/realty-api/docs"
	"github.com/estately/realty-api/internal/api/handler"
	"github.com/estately/realty-api/internal/api/middleware"
	"github.com/estately/realty-api/internal/core/service"
	"github.com/estately/realty-api/internal/infrastructure/config"
	"github.com/estately/realty-api/internal/infrastructure/db/postgres"
	"github.com/estately/realty-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(pool *pgxpool.Pool, rdb *goredis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("realty"))

	// --- Dependencies ---
	accountRepo := postgres.NewAccountRepository(pool)
	listingRepo := postgres.NewListingRepository(pool)
	tokenStore := redis.NewRefreshTokenStore(rdb)
	policy := service.NewDefaultPasswordPolicy(cfg.MinPasswordLength)

	authService := service.NewAuthService(accountRepo, tokenStore, cfg.JWTSecret, cfg.AccessTTL, cfg.RefreshTTL, log)
	accountService := service.NewAccountService(accountRepo, tokenStore, policy, log)
	listingService := service.NewListingService(listingRepo, accountRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	accountHandler := handler.NewAccountHandler(accountService)
	listingHandler := handler.NewListingHandler(listingService)

	auth := middleware.Auth(cfg.JWTSecret)
	optionalAuth := middleware.OptionalAuth(cfg.JWTSecret)

	// --- Auth routes ---
	e.POST("/v1/auth/register", accountHandler.Register, optionalAuth)
	e.POST("/v1/auth/login", authHandler.Login)
	e.POST("/v1/auth/refresh", authHandler.Refresh)

	// --- Account self-service ---
	me := e.Group("/v1/accounts/me", auth)
	me.GET("", accountHandler.Me)
	me.PUT("", accountHandler.UpdateMe)
	me.PATCH("", accountHandler.PatchMe)
	me.DELETE("", accountHandler.DeleteMe)
	me.POST("/change-password", accountHandler.ChangePassword)

	// --- Listings ---
	listings := e.Group("/v1/listings", auth)
	listings.GET("", listingHandler.List)
	listings.POST("", listingHandler.Create)
	listings.GET("/:id", listingHandler.Get)
	listings.PUT("/:id", listingHandler.Update)
	listings.PATCH("/:id", listingHandler.Patch)
	listings.DELETE("/:id", listingHandler.Delete)

	// --- Health probes, metrics, docs (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(pool, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
