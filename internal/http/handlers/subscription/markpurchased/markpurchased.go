// Package markpurchased реализует HTTP-обработчик отметки подписки оплаченной.
package markpurchased

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
	"github.com/pan-subscribe-manager/finance-control/internal/storage/repository"
)

// Handler обрабатывает запросы на отметку подписки оплаченной сегодня.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики отметки оплаты.
type Service interface {
	MarkPurchased(ctx context.Context, methodID, id uuid.UUID) error
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Отметить подписку оплаченной
// @Description Устанавливает дату последней оплаты подписки на сегодня.
// @Tags Subscriptions
// @Produce json
// @Security BearerAuth
// @Param method_id path string true "ID способа оплаты"
// @Param subscription_id path string true "ID подписки"
// @Success 204 "Оплата отмечена"
// @Failure 400 {object} response.ErrorResponse "Некорректный ID"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 403 {object} response.ErrorResponse "Чужой способ оплаты"
// @Failure 404 {object} response.ErrorResponse "Подписка не найдена"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /methods/{method_id}/subscriptions/{subscription_id}/mark-purchased [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.subscription.markpurchased"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	methodID, ok := r.Context().Value(middlewarectx.MethodID).(uuid.UUID)
	if !ok {
		log.Error("method_id not found in context")
		render.Status(r, http.StatusForbidden)
		render.JSON(w, r, response.Error("forbidden"))
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "subscription_id"))
	if err != nil {
		log.Error("failed to decode subscription_id from url", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error("failed to decode subscription_id from url"))
		return
	}

	if err := h.service.MarkPurchased(r.Context(), methodID, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, response.Error("subscription not found"))
			return
		}
		log.Error("failed to mark subscription purchased", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not mark subscription purchased"))
		return
	}

	log.Info("subscription marked purchased", slog.String("subscription_id", id.String()))

	w.WriteHeader(http.StatusNoContent)
}
