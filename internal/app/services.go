package app

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/yungbote/learnify-backend/internal/platform/logger"
	"github.com/yungbote/learnify-backend/internal/platform/openai"
	"github.com/yungbote/learnify-backend/internal/services"
)

type Services struct {
	Tokens     services.TokenService
	Auth       services.AuthService
	Course     services.CourseService
	Generation services.GenerationService
	Quiz       services.QuizService
}

func wireServices(db *gorm.DB, log *logger.Logger, cfg Config, r Repos) (Services, error) {
	log.Info("Wiring services...")

	var client openai.Client
	if services.ProviderKeyConfigured(cfg.OpenAI.APIKey) {
		c, err := openai.NewClient(log, cfg.OpenAI)
		if err != nil {
			return Services{}, fmt.Errorf("init openai client: %w", err)
		}
		client = c
	}
	provider, err := services.NewContentProvider(log, client)
	if err != nil {
		return Services{}, fmt.Errorf("init content provider: %w", err)
	}

	tokens := services.NewTokenService(log, cfg.JWTSecret, cfg.AccessTokenTTL)
	return Services{
		Tokens:     tokens,
		Auth:       services.NewAuthService(db, log, r.User, tokens),
		Course:     services.NewCourseService(db, log, r.Course, r.Lesson, r.Quiz, r.Question, r.Progress),
		Generation: services.NewGenerationService(db, log, r.Course, r.Lesson, r.Quiz, r.Question, provider, cfg.Generation),
		Quiz:       services.NewQuizService(db, log, r.Course, r.Quiz, r.Question, r.QuizAttempt),
	}, nil
}
