package middlewarectx

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"github.com/answerhub/faq-service/internal/http/response"
)

// RequireRole создает middleware, пропускающий запрос только при точном
// совпадении роли из контекста с требуемой. Иерархии ролей нет:
// admin не проходит проверку RequireRole("user").
func RequireRole(requiredRole string, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, ok := r.Context().Value(Role).(string)
			if !ok || role == "" {
				log.Error("role not found in context")
				w.WriteHeader(http.StatusUnauthorized)
				render.JSON(w, r, response.Error("unauthorized"))
				return
			}

			if role != requiredRole {
				log.Error("access denied",
					slog.String("role", role),
					slog.String("required_role", requiredRole))
				w.WriteHeader(http.StatusForbidden)
				render.JSON(w, r, response.Error("forbidden"))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
