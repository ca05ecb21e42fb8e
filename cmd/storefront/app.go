package main

import (
	"context"
	"fmt"

	redisclient "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/JPVargas2025/storefront/internal/api/handler"
	"github.com/JPVargas2025/storefront/internal/core/ports"
	"github.com/JPVargas2025/storefront/internal/core/service"
	"github.com/JPVargas2025/storefront/internal/infrastructure/db/mongo"
	"github.com/JPVargas2025/storefront/internal/infrastructure/db/redis"
	"github.com/JPVargas2025/storefront/internal/infrastructure/db/sqlite"
	"github.com/JPVargas2025/storefront/internal/infrastructure/export"
	"github.com/JPVargas2025/storefront/internal/pkg/config"
	"github.com/JPVargas2025/storefront/pkg/logger"
)

// app bundles the opened resources and the services built on them.
type app struct {
	cfg   *config.Config
	log   zerolog.Logger
	store ports.StoreRepository
	rdb   *redisclient.Client
	dedup *redis.OrderDedup

	auth    *service.AuthService
	catalog *service.CatalogService
	orders  *service.OrderService
	reports *service.ReportService
}

func newApp(ctx context.Context) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.IsDevelopment(),
		App:    "storefront",
		File:   cfg.LogFile,
	})

	store, err := openStore(ctx, cfg.Store)
	if err != nil {
		return nil, err
	}
	if err := store.EnsureSchema(ctx); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("ensure schema: %w", err)
	}
	log.Info().Str("driver", cfg.Store.Driver).Msg("store ready")

	a := &app{cfg: cfg, log: log, store: store}

	// A nil dedup keeps the service from touching Redis at all.
	var dedup service.OrderDedup
	if cfg.Redis.Enabled {
		a.rdb, err = redis.Connect(ctx, redis.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			_ = store.Close()
			return nil, err
		}
		a.dedup = redis.NewOrderDedup(a.rdb, cfg.Redis.DedupTTL)
		dedup = a.dedup
		log.Info().Str("addr", cfg.Redis.Addr).Msg("order dedup enabled")
	}

	a.auth = service.NewAuthService(store, service.AuthConfig{
		JWTSecret:   cfg.Auth.JWTSecret,
		TokenTTL:    cfg.Auth.TokenTTL,
		AdminCode:   cfg.Auth.AdminCode,
		EmailDomain: cfg.Auth.EmailDomain,
	}, log)
	a.catalog = service.NewCatalogService(store, log)
	a.orders = service.NewOrderService(store, dedup, log)
	a.reports = service.NewReportService(store, store, map[string]service.Exporter{
		ports.FormatXLSX: export.NewXLSX(),
		ports.FormatCSV:  export.NewCSV(),
	}, log)

	return a, nil
}

func openStore(ctx context.Context, cfg config.StoreConfig) (ports.StoreRepository, error) {
	switch cfg.Driver {
	case config.DriverMongo:
		return mongo.Open(ctx, mongo.Config{URI: cfg.MongoURI, Database: cfg.MongoDB, Timeout: cfg.Timeout})
	default:
		return sqlite.Open(ctx, sqlite.Config{Path: cfg.SQLitePath, Timeout: cfg.Timeout})
	}
}

// readiness lists the probes served on /health/ready.
func (a *app) readiness() map[string]handler.Pinger {
	deps := map[string]handler.Pinger{a.cfg.Store.Driver: a.store}
	if a.dedup != nil {
		deps["redis"] = a.dedup
	}
	return deps
}

func (a *app) Close() {
	if a.rdb != nil {
		if err := a.rdb.Close(); err != nil {
			a.log.Warn().Err(err).Msg("close redis")
		}
	}
	if err := a.store.Close(); err != nil {
		a.log.Warn().Err(err).Msg("close store")
	}
}
