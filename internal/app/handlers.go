package app

import (
	httpH "github.com/yungbote/learnify-backend/internal/http/handlers"
	httpMW "github.com/yungbote/learnify-backend/internal/http/middleware"
	"github.com/yungbote/learnify-backend/internal/platform/logger"
)

type Handlers struct {
	Auth       *httpH.AuthHandler
	Course     *httpH.CourseHandler
	Generation *httpH.GenerationHandler
	Quiz       *httpH.QuizHandler
	Health     *httpH.HealthHandler
}

type Middleware struct {
	Auth *httpMW.AuthMiddleware
}

func wireHandlers(log *logger.Logger, s Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Auth:       httpH.NewAuthHandler(s.Auth),
		Course:     httpH.NewCourseHandler(s.Course),
		Generation: httpH.NewGenerationHandler(log, s.Generation),
		Quiz:       httpH.NewQuizHandler(s.Quiz),
		Health:     httpH.NewHealthHandler(),
	}
}

func wireMiddleware(log *logger.Logger, s Services) Middleware {
	log.Info("Wiring middleware...")
	return Middleware{Auth: httpMW.NewAuthMiddleware(log, s.Auth)}
}
