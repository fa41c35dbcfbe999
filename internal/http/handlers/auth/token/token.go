// Package token реализует HTTP-обработчик выдачи bearer-токена.
//
// Запрос принимает стандартную OAuth2-форму password-грант (поля
// username и password). При успешной аутентификации возвращается JSON
// вида {"access_token": ..., "token_type": "bearer"}; неверные учетные
// данные и заблокированный пользователь дают 401 с одним и тем же
// сообщением.
package token

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/pan-subscribe-manager/finance-control/internal/http/response"
	"github.com/pan-subscribe-manager/finance-control/internal/lib/sl"
	authservice "github.com/pan-subscribe-manager/finance-control/internal/services/auth"
)

// Token — ответ в форме OAuth2 password-гранта.
type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Handler обрабатывает HTTP-запросы на выдачу токена.
type Handler struct {
	log     *slog.Logger // Логгер для записи операций и ошибок
	service Service      // Сервис бизнес-логики аутентификации
}

// Service описывает интерфейс бизнес-логики аутентификации.
type Service interface {
	Login(ctx context.Context, username, password string) (string, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Выдача bearer-токена
// @Description Аутентифицирует пользователя по OAuth2-форме (username, password) и возвращает подписанный токен.
// @Tags Auth
// @Accept x-www-form-urlencoded
// @Produce json
// @Param username formData string true "Имя пользователя"
// @Param password formData string true "Пароль"
// @Success 200 {object} Token "Выданный токен"
// @Failure 400 {object} response.ErrorResponse "Некорректная форма"
// @Failure 401 {object} response.ErrorResponse "Неверные учетные данные"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /token [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.token"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	if err := r.ParseForm(); err != nil {
		log.Error("failed to parse form", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request form"))
		return
	}
	username := r.PostFormValue("username")
	password := r.PostFormValue("password")
	if username == "" || password == "" {
		log.Error("username or password is empty")
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error("username and password are required"))
		return
	}

	accessToken, err := h.service.Login(r.Context(), username, password)
	if err != nil {
		if errors.Is(err, authservice.ErrInvalidCredentials) || errors.Is(err, authservice.ErrInactiveUser) {
			log.Warn("login rejected", slog.String("username", username))
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("incorrect username or password"))
			return
		}
		log.Error("login failed", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("internal error"))
		return
	}

	log.Info("token issued", slog.String("username", username))
	render.JSON(w, r, Token{
		AccessToken: accessToken,
		TokenType:   "bearer",
	})
}
