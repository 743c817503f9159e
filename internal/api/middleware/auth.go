package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/tadbeer-it/TDB-FieldService/internal/api/handlers"
)

const userIDHeader = "X-User-ID"

const msgMissingUserID = "رأس X-User-ID مطلوب"

type contextKey string

const userIDContextKey contextKey = "userID"

// Auth requires a numeric X-User-ID header and stores the value in the
// request context. Identity is verified upstream at the API gateway; this
// service only reads the propagated user ID.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get(userIDHeader)
		if raw == "" {
			handlers.RespondUnauthorized(w, msgMissingUserID)
			return
		}

		userID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || userID <= 0 {
			handlers.RespondUnauthorized(w, msgMissingUserID)
			return
		}

		ctx := context.WithValue(r.Context(), userIDContextKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserID extracts the authenticated user ID from the request context
func GetUserID(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDContextKey).(int64)
	return userID, ok
}
