// Package financecontrol предоставляет маршруты для основного приложения.
package financecontrol

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/pan-subscribe-manager/finance-control/internal/config"
	"github.com/pan-subscribe-manager/finance-control/internal/http/handlers/auth/register"
	"github.com/pan-subscribe-manager/finance-control/internal/http/handlers/auth/token"
	"github.com/pan-subscribe-manager/finance-control/internal/http/handlers/health"
	"github.com/pan-subscribe-manager/finance-control/internal/http/handlers/internalusers/initialize"
	methodcreate "github.com/pan-subscribe-manager/finance-control/internal/http/handlers/method/create"
	methodlist "github.com/pan-subscribe-manager/finance-control/internal/http/handlers/method/list"
	methodread "github.com/pan-subscribe-manager/finance-control/internal/http/handlers/method/read"
	methodremove "github.com/pan-subscribe-manager/finance-control/internal/http/handlers/method/remove"
	methodupdate "github.com/pan-subscribe-manager/finance-control/internal/http/handlers/method/update"
	subcreate "github.com/pan-subscribe-manager/finance-control/internal/http/handlers/subscription/create"
	sublist "github.com/pan-subscribe-manager/finance-control/internal/http/handlers/subscription/list"
	"github.com/pan-subscribe-manager/finance-control/internal/http/handlers/subscription/markpurchased"
	"github.com/pan-subscribe-manager/finance-control/internal/http/handlers/subscription/nextpayment"
	subread "github.com/pan-subscribe-manager/finance-control/internal/http/handlers/subscription/read"
	subremove "github.com/pan-subscribe-manager/finance-control/internal/http/handlers/subscription/remove"
	subupdate "github.com/pan-subscribe-manager/finance-control/internal/http/handlers/subscription/update"
	"github.com/pan-subscribe-manager/finance-control/internal/http/handlers/user/me"
	"github.com/pan-subscribe-manager/finance-control/internal/http/middlewarectx"
	authservice "github.com/pan-subscribe-manager/finance-control/internal/services/auth"
	methodservice "github.com/pan-subscribe-manager/finance-control/internal/services/method"
	subscriptionservice "github.com/pan-subscribe-manager/finance-control/internal/services/subscription"
	"github.com/pan-subscribe-manager/finance-control/internal/storage/repository"
)

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger, cfg *config.Config, db *repository.Storage,
	authService *authservice.AuthService, methodService *methodservice.MethodService,
	subscriptionService *subscriptionservice.SubscriptionService) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
		middleware.Timeout(cfg.TimeoutHTTP),
	)

	// Открытые конечные точки
	r.Post("/register", register.New(logger, authService).ServeHTTP)
	r.Post("/token", token.New(logger, authService).ServeHTTP)

	if cfg.Debug {
		r.Post("/internal/users/initialize", initialize.New(logger, authService).ServeHTTP)
	}

	// Группа с JWT аутентификацией
	r.Group(func(r chi.Router) {
		r.Use(middlewarectx.JWTMiddleware(authService, logger))

		r.Get("/users/me", me.New(logger, db).ServeHTTP)

		r.Route("/methods", func(r chi.Router) {
			r.Post("/", methodcreate.New(logger, methodService).ServeHTTP)
			r.Get("/", methodlist.New(logger, methodService).ServeHTTP)
			r.Get("/{method_id}", methodread.New(logger, methodService).ServeHTTP)
			r.Patch("/{method_id}", methodupdate.New(logger, methodService).ServeHTTP)
			r.Delete("/{method_id}", methodremove.New(logger, methodService).ServeHTTP)

			// Подписки доступны только владельцу способа оплаты
			r.Route("/{method_id}/subscriptions", func(r chi.Router) {
				r.Use(middlewarectx.MethodOwnerMiddleware(methodService, logger))

				r.Post("/", subcreate.New(logger, subscriptionService).ServeHTTP)
				r.Get("/", sublist.New(logger, subscriptionService).ServeHTTP)
				r.Get("/{subscription_id}", subread.New(logger, subscriptionService).ServeHTTP)
				r.Patch("/{subscription_id}", subupdate.New(logger, subscriptionService).ServeHTTP)
				r.Delete("/{subscription_id}", subremove.New(logger, subscriptionService).ServeHTTP)
				r.Get("/{subscription_id}/next-payment-date", nextpayment.New(logger, subscriptionService).ServeHTTP)
				r.Post("/{subscription_id}/mark-purchased", markpurchased.New(logger, subscriptionService).ServeHTTP)
			})
		})
	})

	r.Get("/health", health.New(logger).ServeHTTP)
	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
