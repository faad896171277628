package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/estately/realty-api/internal/api"
	"github.com/estately/realty-api/internal/core/domain"
	"github.com/estately/realty-api/internal/core/ports"
	"github.com/estately/realty-api/internal/core/service"
	"github.com/estately/realty-api/internal/infrastructure/config"
	"github.com/estately/realty-api/internal/infrastructure/db/postgres"
	"github.com/estately/realty-api/internal/infrastructure/db/redis"
	"github.com/estately/realty-api/pkg/logger"
)

// @title           Realty API
// @version         1.0
// @description     Account and property listing service.
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	pool, err := postgres.Connect(ctx, postgres.Config{DSN: cfg.Postgres.DSN})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	defer pool.Close()

	if err := postgres.EnsureSchema(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("failed to ensure database schema")
	}

	rdb, err := redis.Connect(ctx, redis.Config{Addr: cfg.Redis.Addr, Password: cfg.Redis.Password, DB: cfg.Redis.DB})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer rdb.Close()

	if err := bootstrapSuperuser(ctx, pool, rdb, cfg, log); err != nil {
		log.Fatal().Err(err).Msg("failed to bootstrap superuser")
	}

	e := api.NewRouter(pool, rdb, cfg, log)

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	log.Info().Msg("server stopped")
}

// bootstrapSuperuser seeds the initial superuser account when all ADMIN_*
// variables are set. An already existing account is not an error, which makes
// the seeding idempotent across restarts.
func bootstrapSuperuser(ctx context.Context, pool *pgxpool.Pool, rdb *goredis.Client, cfg *config.Config, log zerolog.Logger) error {
	b := cfg.Bootstrap
	if b.AdminUsername == "" || b.AdminEmail == "" || b.AdminPassword == "" {
		return nil
	}

	accounts := postgres.NewAccountRepository(pool)
	tokens := redis.NewRefreshTokenStore(rdb)
	policy := service.NewDefaultPasswordPolicy(cfg.MinPasswordLength)
	accountService := service.NewAccountService(accounts, tokens, policy, log)

	_, err := accountService.Register(ctx, ports.RegisterInput{
		Username:       b.AdminUsername,
		Email:          b.AdminEmail,
		Password:       b.AdminPassword,
		PasswordRetype: b.AdminPassword,
		IsSuperuser:    true,
	})
	if errors.Is(err, domain.ErrAccountExists) {
		log.Debug().Str("username", b.AdminUsername).Msg("superuser already exists, skipping bootstrap")
		return nil
	}
	if err != nil {
		return err
	}
	log.Info().Str("username", b.AdminUsername).Msg("superuser account created")
	return nil
}
