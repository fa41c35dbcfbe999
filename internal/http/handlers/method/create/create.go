// Package create реализует HTTP-обработчик создания способа оплаты.
//
// Handler принимает JSON-запрос с данными метода, валидирует их,
// извлекает имя пользователя из контекста и возвращает созданную
// запись со статусом 201.
package create

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/pan-subscribe-manager/finance-control/internal/http/middlewarectx"
	"github.com/pan-subscribe-manager/finance-control/internal/http/response"
	"github.com/pan-subscribe-manager/finance-control/internal/lib/sl"
	"github.com/pan-subscribe-manager/finance-control/internal/models"
)

// Handler управляет HTTP-запросами на создание способов оплаты.
type Handler struct {
	log      *slog.Logger        // Логгер для записи информации и ошибок
	service  Service             // Сервис бизнес-логики способов оплаты
	validate *validator.Validate // Валидатор структуры входящих данных
}

// Service описывает интерфейс бизнес-логики создания способа оплаты.
type Service interface {
	Create(ctx context.Context, username string, draft models.MethodDraft) (*models.Method, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Создать способ оплаты
// @Description Создает новый способ оплаты для текущего пользователя.
// @Tags Methods
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.MethodDraft true "Данные нового способа оплаты"
// @Success 201 {object} response.Response "Созданный способ оплаты"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /methods [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.method.create"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var draft models.MethodDraft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}
	log.Info("request body decoded", slog.Any("request", draft))

	if err := h.validate.Struct(draft); err != nil {
		log.Error("validation failed", sl.Err(err))
		render.Status(r, http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	username, ok := r.Context().Value(middlewarectx.User).(string)
	if !ok || username == "" {
		log.Error("username not found in context")
		render.Status(r, http.StatusUnauthorized)
		render.JSON(w, r, response.Error("unauthorized"))
		return
	}

	method, err := h.service.Create(r.Context(), username, draft)
	if err != nil {
		log.Error("failed to create method", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not create method"))
		return
	}

	log.Info("success to create method", slog.String("id", method.ID.String()))
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, response.StatusOKWithData(method))
}
