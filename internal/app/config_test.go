package app

import (
	"reflect"
	"testing"
	"time"

	"github.com/yungbote/learnify-backend/internal/platform/logger"
	"github.com/yungbote/learnify-backend/internal/services"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, k := range []string{
		"PORT", "LOG_MODE", "JWT_SECRET", "ACCESS_TOKEN_TTL_MINUTES", "FRONTEND_URL",
		"OPENAI_API_KEY", "GENERATION_STREAM_DELAY_MS", "QUIZ_CONTEXT_LIMIT", "OTEL_ENABLED",
	} {
		t.Setenv(k, "")
	}

	cfg := LoadConfig(logger.Nop())
	if cfg.Port != "8080" || cfg.LogMode != "development" {
		t.Fatalf("port/log mode: %+v", cfg)
	}
	if cfg.JWTSecret != devJWTSecret || cfg.AccessTokenTTL != 30*time.Minute {
		t.Fatalf("auth defaults: secret=%q ttl=%v", cfg.JWTSecret, cfg.AccessTokenTTL)
	}
	if !reflect.DeepEqual(cfg.AllowedOrigins, []string{"http://localhost:5173"}) {
		t.Fatalf("origins: %v", cfg.AllowedOrigins)
	}
	if cfg.Generation.StreamDelay != services.DefaultStreamDelay || cfg.Generation.QuizContextLimit != services.DefaultQuizContextLimit {
		t.Fatalf("generation: %+v", cfg.Generation)
	}
	if cfg.Otel.Enabled {
		t.Fatalf("otel should be off by default")
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("ACCESS_TOKEN_TTL_MINUTES", "5")
	t.Setenv("FRONTEND_URL", "https://app.test/,http://localhost:3000")
	t.Setenv("GENERATION_STREAM_DELAY_MS", "0")
	t.Setenv("QUIZ_CONTEXT_LIMIT", "100")
	t.Setenv("OTEL_ENABLED", "true")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "x-api-key=abc")

	cfg := LoadConfig(logger.Nop())
	if cfg.Port != "9000" || cfg.JWTSecret != "s3cret" || cfg.AccessTokenTTL != 5*time.Minute {
		t.Fatalf("overrides: %+v", cfg)
	}
	if !reflect.DeepEqual(cfg.AllowedOrigins, []string{"https://app.test", "http://localhost:3000"}) {
		t.Fatalf("origins: %v", cfg.AllowedOrigins)
	}
	if cfg.Generation.StreamDelay != 0 || cfg.Generation.QuizContextLimit != 100 {
		t.Fatalf("generation: %+v", cfg.Generation)
	}
	if !cfg.Otel.Enabled || cfg.Otel.Headers["x-api-key"] != "abc" {
		t.Fatalf("otel: %+v", cfg.Otel)
	}
}

func TestLoadConfigNonPositiveTTL(t *testing.T) {
	t.Setenv("ACCESS_TOKEN_TTL_MINUTES", "0")
	if got := LoadConfig(logger.Nop()).AccessTokenTTL; got != services.DefaultAccessTTL {
		t.Fatalf("ttl: got=%v", got)
	}
}
