package domain

import (
	"github.com/yungbote/learnify-backend/internal/domain/learning"
	"github.com/yungbote/learnify-backend/internal/domain/user"
)

const (
	RoleStudent = user.RoleStudent
	RoleTeacher = user.RoleTeacher
	RoleAdmin   = user.RoleAdmin
)

type (
	User  = user.User
	Actor = user.Actor

	Course      = learning.Course
	Lesson      = learning.Lesson
	Quiz        = learning.Quiz
	Question    = learning.Question
	QuizAttempt = learning.QuizAttempt
	Progress    = learning.Progress
)

// Models lists every persisted entity in migration order.
func Models() []any {
	return []any{
		&User{},
		&Course{},
		&Lesson{},
		&Quiz{},
		&Question{},
		&QuizAttempt{},
		&Progress{},
	}
}

func NewActor(u *User) *Actor { return user.NewActor(u) }
