package learning

import (
	"time"

	"gorm.io/datatypes"
)

// Quiz rows accumulate per course; generation never replaces an older quiz.
type Quiz struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CourseID  uint      `gorm:"column:course_id;not null;index" json:"course_id"`
	Title     string    `gorm:"column:title" json:"title"`
	CreatedAt time.Time `gorm:"column:created_at;not null" json:"-"`
}

func (Quiz) TableName() string { return "quizzes" }

type Question struct {
	ID            uint                        `gorm:"primaryKey" json:"id"`
	QuizID        uint                        `gorm:"column:quiz_id;not null;index" json:"quiz_id"`
	QuestionText  string                      `gorm:"column:question_text;type:text" json:"question_text"`
	Options       datatypes.JSONSlice[string] `gorm:"column:options" json:"options"`
	CorrectAnswer string                      `gorm:"column:correct_answer" json:"correct_answer"`
	Explanation   string                      `gorm:"column:explanation;type:text" json:"explanation"`
}

func (Question) TableName() string { return "questions" }
