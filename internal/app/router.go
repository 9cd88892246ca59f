package app

import (
	apphttp "github.com/yungbote/learnify-backend/internal/http"
	"github.com/yungbote/learnify-backend/internal/platform/logger"
)

func routerConfig(log *logger.Logger, cfg Config, h Handlers, mw Middleware) apphttp.RouterConfig {
	serviceName := ""
	if cfg.Otel.Enabled {
		serviceName = cfg.Otel.ServiceName
	}
	return apphttp.RouterConfig{
		Log:               log,
		ServiceName:       serviceName,
		AllowedOrigins:    cfg.AllowedOrigins,
		AuthMiddleware:    mw.Auth,
		AuthHandler:       h.Auth,
		CourseHandler:     h.Course,
		GenerationHandler: h.Generation,
		QuizHandler:       h.Quiz,
		HealthHandler:     h.Health,
	}
}
