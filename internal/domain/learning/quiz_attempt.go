package learning

import (
	"time"

	"gorm.io/datatypes"
)

// QuizAttempt is written once per submission and never updated. Answers are
// stored exactly as submitted, positionally aligned to question order.
type QuizAttempt struct {
	ID          uint                        `gorm:"primaryKey" json:"id"`
	UserID      uint                        `gorm:"column:user_id;not null;index" json:"user_id"`
	QuizID      uint                        `gorm:"column:quiz_id;not null;index" json:"quiz_id"`
	Score       int                         `gorm:"column:score;not null" json:"score"`
	Answers     datatypes.JSONSlice[string] `gorm:"column:answers" json:"answers"`
	AttemptedAt time.Time                   `gorm:"column:attempted_at;not null;index" json:"attempted_at"`
}

func (QuizAttempt) TableName() string { return "quiz_attempts" }
