// Package list реализует HTTP-обработчик получения списка способов
// оплаты текущего пользователя с пагинацией.
package list

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/pan-subscribe-manager/finance-control/internal/http/middlewarectx"
	"github.com/pan-subscribe-manager/finance-control/internal/http/pagination"
	"github.com/pan-subscribe-manager/finance-control/internal/http/response"
	"github.com/pan-subscribe-manager/finance-control/internal/lib/sl"
	"github.com/pan-subscribe-manager/finance-control/internal/models"
)

// Handler обрабатывает запросы на получение списка способов оплаты.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики получения списка.
type Service interface {
	List(ctx context.Context, username string, limit, offset int) ([]*models.Method, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Список способов оплаты
// @Description Возвращает способы оплаты текущего пользователя с пагинацией.
// @Tags Methods
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Размер страницы (по умолчанию 10)"
// @Param offset query int false "Смещение (по умолчанию 0)"
// @Success 200 {object} response.Response "Список способов оплаты"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /methods [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.method.list"

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

	p := pagination.FromRequest(r)
	methods, err := h.service.List(r.Context(), username, p.Limit, p.Offset)
	if err != nil {
		log.Error("failed to list methods", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not list methods"))
		return
	}
	if methods == nil {
		methods = []*models.Method{}
	}

	log.Info("success to list methods", slog.Int("count", len(methods)))
	render.JSON(w, r, response.StatusOKWithData(methods))
}
