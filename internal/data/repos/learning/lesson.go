package learning

import (
	"context"

	types "github.com/yungbote/learnify-backend/internal/domain"
	"github.com/yungbote/learnify-backend/internal/platform/logger"
	"gorm.io/gorm"
)

type LessonRepo interface {
	Create(ctx context.Context, tx *gorm.DB, lessons []*types.Lesson) ([]*types.Lesson, error)
	GetByCourseID(ctx context.Context, tx *gorm.DB, courseID uint) ([]*types.Lesson, error)
	FullDeleteByCourseIDs(ctx context.Context, tx *gorm.DB, courseIDs []uint) error
}

type lessonRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewLessonRepo(db *gorm.DB, baseLog *logger.Logger) LessonRepo {
	repoLog := baseLog.With("repo", "LessonRepo")
	return &lessonRepo{db: db, log: repoLog}
}

func (r *lessonRepo) Create(ctx context.Context, tx *gorm.DB, lessons []*types.Lesson) ([]*types.Lesson, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if len(lessons) == 0 {
		return []*types.Lesson{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&lessons).Error; err != nil {
		return nil, err
	}
	return lessons, nil
}

// GetByCourseID returns the course's lessons by order_index, id.
func (r *lessonRepo) GetByCourseID(ctx context.Context, tx *gorm.DB, courseID uint) ([]*types.Lesson, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.Lesson
	if err := transaction.WithContext(ctx).
		Where("course_id = ?", courseID).
		Order("order_index ASC").
		Order("id ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *lessonRepo) FullDeleteByCourseIDs(ctx context.Context, tx *gorm.DB, courseIDs []uint) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if len(courseIDs) == 0 {
		return nil
	}

	return transaction.WithContext(ctx).
		Where("course_id IN ?", courseIDs).
		Delete(&types.Lesson{}).Error
}
