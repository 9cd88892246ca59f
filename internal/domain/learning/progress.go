package learning

import "time"

type Progress struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	UserID      uint       `gorm:"column:user_id;not null;index" json:"user_id"`
	LessonID    uint       `gorm:"column:lesson_id;not null;index" json:"lesson_id"`
	Completed   bool       `gorm:"column:completed;not null;default:false" json:"completed"`
	CompletedAt *time.Time `gorm:"column:completed_at" json:"completed_at,omitempty"`
}

func (Progress) TableName() string { return "progress" }
