// Package nextpayment реализует HTTP-обработчик расчета даты
// следующего платежа по подписке.
package nextpayment

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

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

// Handler обрабатывает запросы на расчет даты следующего платежа.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс расчета даты следующего платежа.
type Service interface {
	NextPayment(ctx context.Context, methodID, id uuid.UUID) (lastPaid, next time.Time, err error)
}

// NextPaymentResponse содержит дату последней оплаты и дату следующего платежа.
type NextPaymentResponse struct {
	LastPurchasedAt   string `json:"last_purchased_at"`
	NextDateOfPayment string `json:"next_date_of_payment"`
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Дата следующего платежа
// @Description Возвращает дату последней оплаты и расчетную дату следующего платежа.
// @Tags Subscriptions
// @Produce json
// @Security BearerAuth
// @Param method_id path string true "ID способа оплаты"
// @Param subscription_id path string true "ID подписки"
// @Success 200 {object} response.Response "Даты платежей"
// @Failure 400 {object} response.ErrorResponse "Некорректный ID"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 403 {object} response.ErrorResponse "Чужой способ оплаты"
// @Failure 404 {object} response.ErrorResponse "Подписка не найдена"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /methods/{method_id}/subscriptions/{subscription_id}/next-payment-date [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.subscription.nextpayment"

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

	lastPaid, next, err := h.service.NextPayment(r.Context(), methodID, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, response.Error("subscription not found"))
			return
		}
		log.Error("failed to calculate next payment date", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not calculate next payment date"))
		return
	}

	render.JSON(w, r, response.StatusOKWithData(NextPaymentResponse{
		LastPurchasedAt:   lastPaid.Format(models.DateLayout),
		NextDateOfPayment: next.Format(models.DateLayout),
	}))
}
