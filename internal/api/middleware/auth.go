package middleware

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/vinaywa/Seat-Booking-System/internal/api/handlers"
)

// UserIDHeader заголовок с ID вызывающего пользователя
const UserIDHeader = "X-User-ID"

const msgUnauthorized = "требуется заголовок X-User-ID с положительным ID пользователя"

type userIDKey struct{}

// Auth извлекает ID пользователя из X-User-ID и кладет его в контекст
// Без валидного заголовка отвечает 401
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, err := strconv.ParseInt(strings.TrimSpace(r.Header.Get(UserIDHeader)), 10, 64)
		if err != nil || userID <= 0 {
			handlers.RespondUnauthorized(w, msgUnauthorized)
			return
		}
		next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), userID)))
	})
}

// WithUserID кладет ID пользователя в контекст
func WithUserID(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, userIDKey{}, userID)
}

// GetUserID возвращает ID пользователя, установленный Auth
func GetUserID(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDKey{}).(int64)
	return userID, ok
}
