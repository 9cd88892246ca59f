package services

import (
	"context"
	"testing"

	"gorm.io/gorm"

	"github.com/yungbote/learnify-backend/internal/data/repos"
	"github.com/yungbote/learnify-backend/internal/data/repos/testutil"
	types "github.com/yungbote/learnify-backend/internal/domain"
	"github.com/yungbote/learnify-backend/internal/platform/logger"
)

type testEnv struct {
	db  *gorm.DB
	log *logger.Logger

	users     repos.UserRepo
	courses   repos.CourseRepo
	lessons   repos.LessonRepo
	quizzes   repos.QuizRepo
	questions repos.QuestionRepo
	attempts  repos.QuizAttemptRepo
	progress  repos.ProgressRepo
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db := testutil.DB(t)
	log := testutil.Logger(t)
	return &testEnv{
		db:        db,
		log:       log,
		users:     repos.NewUserRepo(db, log),
		courses:   repos.NewCourseRepo(db, log),
		lessons:   repos.NewLessonRepo(db, log),
		quizzes:   repos.NewQuizRepo(db, log),
		questions: repos.NewQuestionRepo(db, log),
		attempts:  repos.NewQuizAttemptRepo(db, log),
		progress:  repos.NewProgressRepo(db, log),
	}
}

func (e *testEnv) courseService() CourseService {
	return NewCourseService(e.db, e.log, e.courses, e.lessons, e.quizzes, e.questions, e.progress)
}

func (e *testEnv) quizService() QuizService {
	return NewQuizService(e.db, e.log, e.courses, e.quizzes, e.questions, e.attempts)
}

func (e *testEnv) actor(t *testing.T, email, role string) *types.Actor {
	t.Helper()
	u := testutil.SeedUser(t, context.Background(), e.db, email, role)
	return types.NewActor(u)
}
