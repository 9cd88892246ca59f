package app

import (
	"time"

	"github.com/yungbote/learnify-backend/internal/data/db"
	"github.com/yungbote/learnify-backend/internal/observability"
	"github.com/yungbote/learnify-backend/internal/platform/envutil"
	"github.com/yungbote/learnify-backend/internal/platform/logger"
	"github.com/yungbote/learnify-backend/internal/platform/openai"
	"github.com/yungbote/learnify-backend/internal/services"
)

const devJWTSecret = "mysupersecretkey_changethis_minimum32chars"

type Config struct {
	Port           string
	LogMode        string
	JWTSecret      string
	AccessTokenTTL time.Duration
	AllowedOrigins []string
	OpenAI         openai.Config
	Generation     services.GenerationConfig
	Postgres       db.PostgresConfig
	Otel           observability.OtelConfig
}

func LoadConfig(log *logger.Logger) Config {
	cfg := Config{
		Port:           envutil.String("PORT", "8080"),
		LogMode:        envutil.String("LOG_MODE", "development"),
		JWTSecret:      envutil.String("JWT_SECRET", devJWTSecret),
		AccessTokenTTL: time.Duration(envutil.Int("ACCESS_TOKEN_TTL_MINUTES", 30)) * time.Minute,
		AllowedOrigins: envutil.List("FRONTEND_URL", []string{"http://localhost:5173"}),
		OpenAI: openai.Config{
			APIKey:  envutil.String("OPENAI_API_KEY", ""),
			BaseURL: envutil.String("OPENAI_BASE_URL", ""),
			Model:   envutil.String("OPENAI_MODEL", ""),
			Timeout: time.Duration(envutil.Int("OPENAI_TIMEOUT_SECONDS", 0)) * time.Second,
		},
		Generation: services.GenerationConfig{
			StreamDelay:      envutil.Millis("GENERATION_STREAM_DELAY_MS", services.DefaultStreamDelay),
			QuizContextLimit: envutil.Int("QUIZ_CONTEXT_LIMIT", services.DefaultQuizContextLimit),
		},
		Postgres: db.PostgresConfig{
			Host:     envutil.String("POSTGRES_HOST", "localhost"),
			Port:     envutil.String("POSTGRES_PORT", "5432"),
			User:     envutil.String("POSTGRES_USER", "postgres"),
			Password: envutil.String("POSTGRES_PASSWORD", ""),
			Name:     envutil.String("POSTGRES_NAME", "learnify"),
			SSLMode:  envutil.String("POSTGRES_SSLMODE", "disable"),
		},
		Otel: observability.OtelConfig{
			Enabled:     envutil.Bool("OTEL_ENABLED", false),
			ServiceName: envutil.String("OTEL_SERVICE_NAME", observability.DefaultServiceName),
			Environment: envutil.String("OTEL_ENVIRONMENT", ""),
			Version:     envutil.String("OTEL_SERVICE_VERSION", ""),
			Endpoint:    envutil.String("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
			Headers:     observability.ParseHeaders(envutil.String("OTEL_EXPORTER_OTLP_HEADERS", "")),
			Insecure:    envutil.Bool("OTEL_EXPORTER_OTLP_INSECURE", false),
			SampleRatio: envutil.Float("OTEL_SAMPLER_RATIO", 0.1),
		},
	}

	if cfg.AccessTokenTTL <= 0 {
		cfg.AccessTokenTTL = services.DefaultAccessTTL
	}
	if cfg.JWTSecret == devJWTSecret {
		log.Warn("JWT_SECRET not set, using development secret")
	}
	if !services.ProviderKeyConfigured(cfg.OpenAI.APIKey) {
		log.Warn("OPENAI_API_KEY not configured, generation will serve fallback content")
	}
	return cfg
}
