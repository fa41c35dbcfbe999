// Package read реализует HTTP-обработчик получения способа оплаты по ID.
//
// Возвращает 404 как для отсутствующих записей, так и для методов
// других пользователей: чужие идентификаторы не раскрываются.
package read

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/google/uuid"

	"github.com/pan-subscribe-manager/finance-control/internal/http/middlewarectx"
	"github.com/pan-subscribe-manager/finance-control/internal/http/response"
	"github.com/pan-subscribe-manager/finance-control/internal/lib/sl"
	"github.com/pan-subscribe-manager/finance-control/internal/models"
	"github.com/pan-subscribe-manager/finance-control/internal/storage/repository"
)

// Handler обрабатывает запросы на получение способа оплаты по ID.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики чтения способа оплаты.
type Service interface {
	Get(ctx context.Context, username string, id uuid.UUID) (*models.Method, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Получить способ оплаты
// @Description Возвращает способ оплаты текущего пользователя по ID.
// @Tags Methods
// @Produce json
// @Security BearerAuth
// @Param method_id path string true "ID способа оплаты"
// @Success 200 {object} response.Response "Способ оплаты"
// @Failure 400 {object} response.ErrorResponse "Некорректный ID"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 404 {object} response.ErrorResponse "Способ оплаты не найден"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /methods/{method_id} [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.method.read"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	username, ok := r.Context().Value(middlewarectx.User).(string)
	if !ok || username == "" {
		log.Error("username not found in context")
		render.Status(r, http.StatusUnauthorized)
		render.JSON(w, r, response.Error("unauthorized"))
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "method_id"))
	if err != nil {
		log.Error("failed to decode method_id from url", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error("failed to decode method_id from url"))
		return
	}

	method, err := h.service.Get(r.Context(), username, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, response.Error("method not found"))
			return
		}
		log.Error("failed to read method", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not read method"))
		return
	}

	render.JSON(w, r, response.StatusOKWithData(method))
}
