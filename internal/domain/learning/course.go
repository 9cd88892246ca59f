package learning

import "time"

type Course struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"column:title;not null" json:"title"`
	Description *string   `gorm:"column:description;type:text" json:"description"`
	Topic       string    `gorm:"column:topic" json:"topic"`
	Difficulty  string    `gorm:"column:difficulty" json:"difficulty"`
	IsPublished bool      `gorm:"column:is_published;not null;default:false" json:"is_published"`
	CreatedBy   uint      `gorm:"column:created_by;index" json:"created_by"`
	CreatedAt   time.Time `gorm:"column:created_at;not null" json:"-"`
}

func (Course) TableName() string { return "courses" }
