package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuth(t *testing.T) {
	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantUserID int64
	}{
		{
			name:       "valid user id passes through",
			header:     "42",
			wantStatus: http.StatusOK,
			wantUserID: 42,
		},
		{
			name:       "missing header is rejected",
			header:     "",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "non-numeric header is rejected",
			header:     "abc",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "zero user id is rejected",
			header:     "0",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "negative user id is rejected",
			header:     "-5",
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotUserID int64
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				userID, ok := GetUserID(r.Context())
				require.True(t, ok)
				gotUserID = userID
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings/1", nil)
			if tt.header != "" {
				req.Header.Set(userIDHeader, tt.header)
			}
			rec := httptest.NewRecorder()

			Auth(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, tt.wantUserID, gotUserID)
			}
		})
	}
}

func TestGetUserID_MissingFromContext(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	_, ok := GetUserID(req.Context())
	assert.False(t, ok)
}
