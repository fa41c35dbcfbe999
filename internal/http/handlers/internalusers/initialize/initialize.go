// Package initialize реализует отладочный HTTP-обработчик создания
// пользователя admin. Маршрут регистрируется только при включённом
// флаге debug в конфигурации.
package initialize

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/pan-subscribe-manager/finance-control/internal/http/response"
	"github.com/pan-subscribe-manager/finance-control/internal/lib/sl"
	"github.com/pan-subscribe-manager/finance-control/internal/storage/repository"
)

// Handler обрабатывает запросы на создание отладочного пользователя.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс создания отладочного пользователя.
type Service interface {
	SeedAdmin(ctx context.Context) error
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.internalusers.initialize"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	if err := h.service.SeedAdmin(r.Context()); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			log.Warn("admin user already exists")
			render.Status(r, http.StatusConflict)
			render.JSON(w, r, response.Error("admin user already exists"))
			return
		}
		log.Error("failed to seed admin user", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to seed admin user"))
		return
	}

	log.Info("admin user created")
	render.JSON(w, r, response.OK())
}
