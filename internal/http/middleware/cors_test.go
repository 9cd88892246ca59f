package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestCORSAllowsConfiguredOrigins(t *testing.T) {
	t.Parallel()
	gin.SetMode(gin.TestMode)

	allowed := []string{"http://localhost:5173", "https://learn.example.com"}

	tests := []struct {
		origin  string
		allowed bool
	}{
		{origin: "http://localhost:5173", allowed: true},
		{origin: "https://learn.example.com", allowed: true},
		{origin: "https://evil.example.com", allowed: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.origin, func(t *testing.T) {
			t.Parallel()
			r := gin.New()
			r.Use(CORS(allowed))
			r.POST("/auth/login", func(c *gin.Context) {
				c.Status(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodOptions, "/auth/login", nil)
			req.Header.Set("Origin", tt.origin)
			req.Header.Set("Access-Control-Request-Method", http.MethodPost)

			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			got := rec.Header().Get("Access-Control-Allow-Origin")
			if tt.allowed {
				if rec.Code != http.StatusNoContent {
					t.Fatalf("unexpected status: got=%d want=%d", rec.Code, http.StatusNoContent)
				}
				if got != tt.origin {
					t.Fatalf("unexpected allow-origin header: got=%q want=%q", got, tt.origin)
				}
				if rec.Header().Get("Access-Control-Allow-Credentials") != "true" {
					t.Fatalf("credentials not allowed")
				}
				return
			}
			if got != "" {
				t.Fatalf("disallowed origin echoed: %q", got)
			}
		})
	}
}
