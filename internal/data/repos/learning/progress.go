package learning

import (
	"context"

	types "github.com/yungbote/learnify-backend/internal/domain"
	"github.com/yungbote/learnify-backend/internal/platform/logger"
	"gorm.io/gorm"
)

// ProgressRepo only backs cascade cleanup; no endpoint reads progress yet.
type ProgressRepo interface {
	Create(ctx context.Context, tx *gorm.DB, rows []*types.Progress) ([]*types.Progress, error)
	GetByUserID(ctx context.Context, tx *gorm.DB, userID uint) ([]*types.Progress, error)
	FullDeleteByLessonIDs(ctx context.Context, tx *gorm.DB, lessonIDs []uint) error
}

type progressRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewProgressRepo(db *gorm.DB, baseLog *logger.Logger) ProgressRepo {
	repoLog := baseLog.With("repo", "ProgressRepo")
	return &progressRepo{db: db, log: repoLog}
}

func (r *progressRepo) Create(ctx context.Context, tx *gorm.DB, rows []*types.Progress) ([]*types.Progress, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if len(rows) == 0 {
		return []*types.Progress{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *progressRepo) GetByUserID(ctx context.Context, tx *gorm.DB, userID uint) ([]*types.Progress, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.Progress
	if err := transaction.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *progressRepo) FullDeleteByLessonIDs(ctx context.Context, tx *gorm.DB, lessonIDs []uint) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if len(lessonIDs) == 0 {
		return nil
	}

	return transaction.WithContext(ctx).
		Where("lesson_id IN ?", lessonIDs).
		Delete(&types.Progress{}).Error
}
