package app

import (
	"gorm.io/gorm"

	"github.com/yungbote/learnify-backend/internal/data/repos"
	"github.com/yungbote/learnify-backend/internal/platform/logger"
)

type Repos struct {
	User        repos.UserRepo
	Course      repos.CourseRepo
	Lesson      repos.LessonRepo
	Quiz        repos.QuizRepo
	Question    repos.QuestionRepo
	QuizAttempt repos.QuizAttemptRepo
	Progress    repos.ProgressRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		User:        repos.NewUserRepo(db, log),
		Course:      repos.NewCourseRepo(db, log),
		Lesson:      repos.NewLessonRepo(db, log),
		Quiz:        repos.NewQuizRepo(db, log),
		Question:    repos.NewQuestionRepo(db, log),
		QuizAttempt: repos.NewQuizAttemptRepo(db, log),
		Progress:    repos.NewProgressRepo(db, log),
	}
}
