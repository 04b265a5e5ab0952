package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/furnishop/storefront/docs"
	"github.com/furnishop/storefront/internal/api"
	"github.com/furnishop/storefront/internal/api/handler"
	"github.com/furnishop/storefront/internal/core/ports"
	"github.com/furnishop/storefront/internal/core/service"
	"github.com/furnishop/storefront/internal/infrastructure/config"
	"github.com/furnishop/storefront/internal/infrastructure/notify"
	"github.com/furnishop/storefront/internal/infrastructure/session"
	"github.com/furnishop/storefront/internal/infrastructure/store/mongo"
	"github.com/furnishop/storefront/internal/infrastructure/store/rest"
	"github.com/furnishop/storefront/pkg/logger"
)

const (
	storeTimeout    = 10 * time.Second
	shutdownTimeout = 10 * time.Second
	tokenTTL        = 24 * time.Hour
)

// @title        Furnishop Storefront API
// @version      1.0
// @description  Furniture storefront: catalog, per-user cart and wishlist, checkout, and an admin panel.
// @BasePath     /
// @securityDefinitions.apikey BearerAuth
// @in    header
// @name  Authorization
func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	docs.SwaggerInfo.Host = "localhost:" + cfg.Port

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- Document store backend ---
	users, products, health, cleanup, err := buildStore(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Str("backend", cfg.Store.Backend).Msg("failed to initialise document store")
	}
	defer cleanup()

	// --- Session snapshot store ---
	sessionStore, err := buildSessionStore(ctx, cfg, health)
	if err != nil {
		log.Fatal().Err(err).Str("backend", cfg.Session.Backend).Msg("failed to initialise session store")
	}

	// --- Notification dispatcher ---
	dispatcher := notify.NewDispatcher(cfg.Notify.Workers, notify.NewLogSink(log), log)
	dispatcher.Start(ctx)

	// --- Core services ---
	sessions := service.NewSessionRegistry(users, sessionStore, log)
	sessions.Rehydrate(ctx)

	deps := api.Deps{
		Auth:      service.NewAuthService(users, sessions, dispatcher, cfg.JWTSecret, tokenTTL, log),
		Cart:      service.NewCartService(sessions, products, dispatcher, log),
		Wishlist:  service.NewWishlistService(sessions, products, dispatcher, log),
		Checkout:  service.NewCheckoutService(users, sessions, dispatcher, log),
		Catalog:   service.NewCatalogService(products, log),
		Admin:     service.NewAdminService(users, products, sessions, log),
		JWTSecret: cfg.JWTSecret,
		Health:    health,
		Logger:    log,
	}

	e := api.NewRouter(deps)

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}

// buildStore selects the document store backend from configuration and
// registers its readiness check.
func buildStore(ctx context.Context, cfg *config.Config, log zerolog.Logger) (ports.UserRepository, ports.ProductRepository, map[string]handler.DependencyCheck, func(), error) {
	health := make(map[string]handler.DependencyCheck)

	switch cfg.Store.Backend {
	case "mongo":
		client, db, err := mongo.Connect(ctx, mongo.Config{
			URI:      cfg.Mongo.URI,
			Database: cfg.Mongo.Database,
		})
		if err != nil {
			return nil, nil, nil, nil, err
		}
		health["mongodb"] = func(ctx context.Context) error {
			return client.Ping(ctx, nil)
		}
		cleanup := func() {
			disconnectCtx, cancel := context.WithTimeout(context.Background(), storeTimeout)
			defer cancel()
			if err := client.Disconnect(disconnectCtx); err != nil {
				log.Warn().Err(err).Msg("mongo disconnect failed")
			}
		}
		return mongo.NewUserRepository(db), mongo.NewProductRepository(db), health, cleanup, nil

	case "rest":
		client := rest.NewClient(cfg.Store.BaseURL, storeTimeout)
		health["store"] = client.Ping
		return rest.NewUserRepository(client), rest.NewProductRepository(client), health, func() {}, nil

	default:
		return nil, nil, nil, nil, errors.New("unknown store backend: " + cfg.Store.Backend)
	}
}

// buildSessionStore selects where session snapshots live across restarts.
func buildSessionStore(ctx context.Context, cfg *config.Config, health map[string]handler.DependencyCheck) (ports.SessionStore, error) {
	switch cfg.Session.Backend {
	case "redis":
		client, err := session.Connect(ctx, session.Config{
			Addr: cfg.Redis.Addr,
			DB:   cfg.Redis.DB,
		})
		if err != nil {
			return nil, err
		}
		health["redis"] = func(ctx context.Context) error {
			return client.Ping(ctx).Err()
		}
		return session.NewRedisStore(client), nil

	case "file":
		return session.NewFileStore(cfg.Session.Dir)

	default:
		return nil, errors.New("unknown session backend: " + cfg.Session.Backend)
	}
}
