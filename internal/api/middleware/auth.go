package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/m04kA/PJ-BookingService/internal/api/handlers"
)

type staffIDKey struct{}
type sessionIDKey struct{}

// Auth проверяет наличие заголовка X-Staff-ID на защищенных маршрутах
// Аутентификация выполняется на API gateway, сервис доверяет заголовку
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get("X-Staff-ID")
		if raw == "" {
			handlers.RespondError(w, http.StatusUnauthorized, "требуется заголовок X-Staff-ID")
			return
		}

		staffID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || staffID <= 0 {
			handlers.RespondError(w, http.StatusUnauthorized, "некорректный X-Staff-ID")
			return
		}

		ctx := context.WithValue(r.Context(), staffIDKey{}, staffID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// StaffID возвращает ID сотрудника из контекста запроса
func StaffID(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(staffIDKey{}).(int64)
	return id, ok
}

// Session проверяет наличие заголовка X-Session-ID на маршрутах корзины
// Корзина живет в сессии и не требует аутентификации
func Session(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sessionID := r.Header.Get("X-Session-ID")
		if sessionID == "" {
			handlers.RespondBadRequest(w, "требуется заголовок X-Session-ID")
			return
		}

		ctx := context.WithValue(r.Context(), sessionIDKey{}, sessionID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// SessionID возвращает ID сессии из контекста запроса
func SessionID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(sessionIDKey{}).(string)
	return id, ok
}
