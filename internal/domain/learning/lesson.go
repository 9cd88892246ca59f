package learning

import "time"

type Lesson struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	CourseID   uint      `gorm:"column:course_id;not null;index" json:"course_id"`
	Title      string    `gorm:"column:title;not null" json:"title"`
	Content    string    `gorm:"column:content;type:text" json:"content"`
	OrderIndex int       `gorm:"column:order_index;not null;default:0" json:"order_index"`
	CreatedAt  time.Time `gorm:"column:created_at;not null" json:"-"`
}

func (Lesson) TableName() string { return "lessons" }
