package middlewarectx

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/google/uuid"

	"github.com/pan-subscribe-manager/finance-control/internal/http/response"
	"github.com/pan-subscribe-manager/finance-control/internal/lib/sl"
)

// MethodOwner описывает интерфейс проверки владения способом оплаты.
type MethodOwner interface {
	Owns(ctx context.Context, username string, id uuid.UUID) (bool, error)
}

// MethodOwnerMiddleware возвращает HTTP middleware, проверяющий, что
// способ оплаты из URL принадлежит аутентифицированному пользователю.
// Ставится перед всеми операциями над подписками: подписка не хранит
// владельца, принадлежность транзитивна через метод.
//
// Чужой метод даёт 403 независимо от его существования, чтобы не
// раскрывать наличие чужих записей. 404 отдают сами обработчики для
// отсутствующих записей в рамках владельца.
func MethodOwnerMiddleware(methods MethodOwner, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const op = "middlewarectx.MethodOwnerMiddleware"

			log := log.With(
				slog.String("op", op),
				slog.String("request_id", middleware.GetReqID(r.Context())),
			)

			username, ok := r.Context().Value(User).(string)
			if !ok || username == "" {
				log.Error("username not found in context")
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("unauthorized"))
				return
			}

			methodID, err := uuid.Parse(chi.URLParam(r, "method_id"))
			if err != nil {
				log.Error("failed to decode method_id from url", sl.Err(err))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("failed to decode method_id from url"))
				return
			}

			owns, err := methods.Owns(r.Context(), username, methodID)
			if err != nil {
				log.Error("failed to check method ownership", sl.Err(err))
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("internal error"))
				return
			}
			if !owns {
				log.Warn("method access denied",
					slog.String("username", username),
					slog.String("method_id", methodID.String()))
				render.Status(r, http.StatusForbidden)
				render.JSON(w, r, response.Error("forbidden"))
				return
			}

			ctx := context.WithValue(r.Context(), MethodID, methodID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
