package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/nesquaeke/smartshopaipoland-sub000/internal/config"
)

func TestAPIKeyAuth(t *testing.T) {
	cfg := config.AuthConfig{
		APIKeys: []string{"apitest", "secondkey"},
	}

	handler := APIKeyAuth(cfg)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	tests := []struct {
		name       string
		apiKey     string
		wantStatus int
	}{
		{
			name:       "valid key",
			apiKey:     "apitest",
			wantStatus: http.StatusOK,
		},
		{
			name:       "second valid key",
			apiKey:     "secondkey",
			wantStatus: http.StatusOK,
		},
		{
			name:       "missing key",
			apiKey:     "",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "invalid key",
			apiKey:     "wrongkey",
			wantStatus: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/user/u1/cart", nil)
			if tt.apiKey != "" {
				req.Header.Set("api_key", tt.apiKey)
			}
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
		})
	}
}
