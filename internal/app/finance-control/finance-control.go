package financecontrol

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"

	"github.com/pan-subscribe-manager/finance-control/internal/cache"
	"github.com/pan-subscribe-manager/finance-control/internal/config"
	"github.com/pan-subscribe-manager/finance-control/internal/lib/jwt"
	"github.com/pan-subscribe-manager/finance-control/internal/lib/sl"
	"github.com/pan-subscribe-manager/finance-control/internal/migrations"
	authservice "github.com/pan-subscribe-manager/finance-control/internal/services/auth"
	methodservice "github.com/pan-subscribe-manager/finance-control/internal/services/method"
	subscriptionservice "github.com/pan-subscribe-manager/finance-control/internal/services/subscription"
	"github.com/pan-subscribe-manager/finance-control/internal/storage/repository"
)

type App struct {
	server *http.Server
	logger *slog.Logger
	db     *repository.Storage
	cache  *cache.Cache
}

func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	db, err := repository.New(cfg.StorageConnectionString)
	if err != nil {
		return nil, err
	}
	if err = migrations.Run(db.DB, cfg.MigrationsPath); err != nil {
		return nil, err
	}

	cacheRedis, err := cache.InitServer(ctx, cfg.RedisConnection)
	if err != nil {
		return nil, err
	}

	jwtMaker := jwt.NewJWTMaker(cfg.SecretKey, cfg.TokenTTL)

	authService := authservice.NewAuthService(db, jwtMaker)
	methodService := methodservice.NewMethodService(db, logger)
	subscriptionService := subscriptionservice.NewSubscriptionService(db, cacheRedis, logger)

	router := chi.NewRouter()

	RegisterRoutes(router, logger, cfg, db, authService, methodService, subscriptionService)

	srv := &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server: srv,
		logger: logger,
		db:     db,
		cache:  cacheRedis,
	}, nil
}

func (a *App) Run(ctx context.Context) error {
	defer a.closeResources()

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		return a.server.Shutdown(timeoutCtx)
	}
}

// closeResources закрывает соединения с базой данных и Redis.
func (a *App) closeResources() {
	if err := a.db.DB.Close(); err != nil {
		a.logger.Error("failed to close database connection", sl.Err(err))
	}
	if err := a.cache.DB.Close(); err != nil {
		a.logger.Error("failed to close redis client", sl.Err(err))
	}
}
