package http

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	httpH "github.com/yungbote/learnify-backend/internal/http/handlers"
	httpMW "github.com/yungbote/learnify-backend/internal/http/middleware"
	"github.com/yungbote/learnify-backend/internal/platform/logger"
)

type RouterConfig struct {
	Log            *logger.Logger
	ServiceName    string
	AllowedOrigins []string

	AuthMiddleware *httpMW.AuthMiddleware

	AuthHandler       *httpH.AuthHandler
	CourseHandler     *httpH.CourseHandler
	GenerationHandler *httpH.GenerationHandler
	QuizHandler       *httpH.QuizHandler
	HealthHandler     *httpH.HealthHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	if cfg.ServiceName != "" {
		r.Use(otelgin.Middleware(cfg.ServiceName))
	}
	r.Use(httpMW.AttachTraceContext())
	r.Use(httpMW.RequestLogger(cfg.Log))
	r.Use(httpMW.CORS(cfg.AllowedOrigins))

	// protected wraps h with the auth middleware when one is configured.
	protected := func(h gin.HandlerFunc) []gin.HandlerFunc {
		if cfg.AuthMiddleware == nil {
			return []gin.HandlerFunc{h}
		}
		return []gin.HandlerFunc{cfg.AuthMiddleware.RequireAuth(), h}
	}

	// Health
	if cfg.HealthHandler != nil {
		r.GET("/", cfg.HealthHandler.Root)
		r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
	}

	// Auth
	if cfg.AuthHandler != nil {
		r.POST("/auth/register", cfg.AuthHandler.Register)
		r.POST("/auth/login", cfg.AuthHandler.Login)
		r.GET("/auth/me", protected(cfg.AuthHandler.Me)...)
	}

	// Courses; the collection routes answer with and without the trailing slash
	if cfg.CourseHandler != nil {
		for _, p := range []string{"/courses", "/courses/"} {
			r.POST(p, protected(cfg.CourseHandler.CreateCourse)...)
			r.GET(p, cfg.CourseHandler.ListCourses)
		}
		r.GET("/courses/:id", cfg.CourseHandler.GetCourse)
		r.PUT("/courses/:id", protected(cfg.CourseHandler.UpdateCourse)...)
		r.DELETE("/courses/:id", protected(cfg.CourseHandler.DeleteCourse)...)
		r.PUT("/courses/:id/publish", protected(cfg.CourseHandler.PublishCourse)...)
		r.GET("/courses/:id/lessons", cfg.CourseHandler.ListLessons)
	}

	// Generation
	if cfg.GenerationHandler != nil {
		r.POST("/ai/generate-course", protected(cfg.GenerationHandler.GenerateCourse)...)
		r.POST("/ai/generate-course-stream", protected(cfg.GenerationHandler.GenerateCourseStream)...)
		r.POST("/ai/generate-quiz", protected(cfg.GenerationHandler.GenerateQuiz)...)
	}

	// Quizzes
	if cfg.QuizHandler != nil {
		r.GET("/quizzes/history/me", protected(cfg.QuizHandler.GetHistory)...)
		r.GET("/quizzes/course/:course_id", cfg.QuizHandler.GetQuizByCourse)
		r.GET("/quizzes/:id", cfg.QuizHandler.GetQuiz)
		r.POST("/quizzes/:id/attempt", protected(cfg.QuizHandler.SubmitAttempt)...)
	}

	return r
}
