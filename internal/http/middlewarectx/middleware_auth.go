// Package middlewarectx содержит HTTP middleware для аутентификации
// по bearer-токену и проверки владения вложенными ресурсами.
//
// JWTMiddleware проверяет наличие и валидность токена в заголовке
// Authorization, разрешает его в запись пользователя и в случае успеха
// добавляет в контекст имя пользователя для дальнейшего использования
// в обработчиках. В случае ошибки возвращает HTTP 401 Unauthorized.
package middlewarectx

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/pan-subscribe-manager/finance-control/internal/http/response"
	"github.com/pan-subscribe-manager/finance-control/internal/lib/jwt"
	"github.com/pan-subscribe-manager/finance-control/internal/lib/sl"
	"github.com/pan-subscribe-manager/finance-control/internal/models"
	authservice "github.com/pan-subscribe-manager/finance-control/internal/services/auth"
)

// Key тип для ключей контекста HTTP-запроса.
type Key string

const (
	// User — ключ для имени пользователя в контексте.
	User Key = "username"
	// MethodID — ключ для идентификатора способа оплаты в контексте.
	MethodID Key = "method_id"
)

// AuthService описывает интерфейс разрешения токена в пользователя.
type AuthService interface {
	Authenticate(ctx context.Context, token string) (*models.User, error)
}

// JWTMiddleware возвращает HTTP middleware, который проверяет JWT в заголовке Authorization.
//
// Если токен валиден и пользователь активен, имя пользователя
// добавляется в контекст запроса, иначе возвращается 401 Unauthorized.
// Заблокированный пользователь неотличим от невалидного токена.
func JWTMiddleware(auth AuthService, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const op = "middlewarectx.JWTMiddleware"

			log := log.With(
				slog.String("op", op),
				slog.String("request_id", middleware.GetReqID(r.Context())),
			)

			authHeader := r.Header.Get("Authorization")
			if !strings.HasPrefix(authHeader, "Bearer ") {
				log.Error("missing or invalid authorization header")
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("missing or invalid authorization header"))
				return
			}
			tokenStr := strings.TrimPrefix(authHeader, "Bearer ")

			user, err := auth.Authenticate(r.Context(), tokenStr)
			if err != nil {
				if errors.Is(err, jwt.ErrInvalidToken) || errors.Is(err, authservice.ErrInactiveUser) {
					log.Error("invalid or expired token", sl.Err(err))
					render.Status(r, http.StatusUnauthorized)
					render.JSON(w, r, response.Error("invalid or expired token"))
					return
				}
				log.Error("failed to authenticate request", sl.Err(err))
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("internal error"))
				return
			}

			ctx := context.WithValue(r.Context(), User, user.Username)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
