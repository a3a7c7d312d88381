package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/m04kA/ACI-ReservationService/internal/api/handlers"
)

type contextKey string

const adminIDKey contextKey = "adminID"

// Auth middleware проверяет наличие заголовка X-Admin-ID и кладёт его в контекст
// Аутентификация выполняется на API gateway; здесь только идентификация
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		adminIDStr := r.Header.Get("X-Admin-ID")
		if adminIDStr == "" {
			handlers.RespondUnauthorized(w, "отсутствует заголовок X-Admin-ID")
			return
		}

		adminID, err := strconv.ParseInt(adminIDStr, 10, 64)
		if err != nil || adminID <= 0 {
			handlers.RespondUnauthorized(w, "некорректный заголовок X-Admin-ID")
			return
		}

		ctx := context.WithValue(r.Context(), adminIDKey, adminID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetAdminID извлекает ID админа из контекста запроса
func GetAdminID(ctx context.Context) (int64, bool) {
	adminID, ok := ctx.Value(adminIDKey).(int64)
	return adminID, ok
}
