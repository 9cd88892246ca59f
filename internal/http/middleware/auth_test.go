package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	types "github.com/yungbote/learnify-backend/internal/domain"
	"github.com/yungbote/learnify-backend/internal/platform/apierr"
	"github.com/yungbote/learnify-backend/internal/platform/logger"
)

type fakeResolver struct {
	actors map[string]*types.Actor
	err    error
}

func (f *fakeResolver) ResolveActor(ctx context.Context, token string) (*types.Actor, error) {
	if f.err != nil {
		return nil, f.err
	}
	if a, ok := f.actors[token]; ok {
		return a, nil
	}
	return nil, apierr.Unauthorized("invalid_token", "Could not validate credentials")
}

func TestRequireAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)

	resolver := &fakeResolver{actors: map[string]*types.Actor{
		"good": {UserID: 7, Email: "ada@example.com", Role: types.RoleTeacher},
	}}

	tests := []struct {
		name     string
		resolver *fakeResolver
		header   string
		status   int
		code     string
	}{
		{name: "valid", resolver: resolver, header: "Bearer good", status: http.StatusOK},
		{name: "lowercase scheme", resolver: resolver, header: "bearer good", status: http.StatusOK},
		{name: "missing", resolver: resolver, header: "", status: http.StatusUnauthorized, code: "unauthorized"},
		{name: "wrong scheme", resolver: resolver, header: "Basic good", status: http.StatusUnauthorized, code: "unauthorized"},
		{name: "unknown token", resolver: resolver, header: "Bearer bad", status: http.StatusUnauthorized, code: "invalid_token"},
		{name: "store failure", resolver: &fakeResolver{err: errors.New("db down")}, header: "Bearer good", status: http.StatusInternalServerError, code: "internal_error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			am := NewAuthMiddleware(logger.Nop(), tt.resolver)
			r := gin.New()
			var seen *types.Actor
			r.GET("/me", am.RequireAuth(), func(c *gin.Context) {
				seen = Actor(c)
				c.Status(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			if rec.Code != tt.status {
				t.Fatalf("status: got=%d want=%d body=%s", rec.Code, tt.status, rec.Body.String())
			}
			if tt.status == http.StatusOK {
				if seen == nil || seen.UserID != 7 {
					t.Fatalf("actor not attached: %+v", seen)
				}
				return
			}
			var body struct {
				Detail string `json:"detail"`
				Code   string `json:"code"`
			}
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if body.Code != tt.code || body.Detail == "" {
				t.Fatalf("body: %+v", body)
			}
		})
	}
}

func TestAttachTraceContext(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(AttachTraceContext())
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-Id", "req-123")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if got := rec.Header().Get("X-Request-Id"); got != "req-123" {
		t.Fatalf("request id: got %q", got)
	}
	if rec.Header().Get("X-Trace-Id") == "" {
		t.Fatalf("trace id not set")
	}

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Header().Get("X-Request-Id") == "" {
		t.Fatalf("request id not generated")
	}
}
