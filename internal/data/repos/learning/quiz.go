package learning

import (
	"context"
	"errors"

	types "github.com/yungbote/learnify-backend/internal/domain"
	"github.com/yungbote/learnify-backend/internal/platform/logger"
	"gorm.io/gorm"
)

type QuizRepo interface {
	Create(ctx context.Context, tx *gorm.DB, quizzes []*types.Quiz) ([]*types.Quiz, error)
	GetByIDs(ctx context.Context, tx *gorm.DB, quizIDs []uint) ([]*types.Quiz, error)
	GetByCourseIDs(ctx context.Context, tx *gorm.DB, courseIDs []uint) ([]*types.Quiz, error)
	// GetFirstByCourseID returns the lowest-id quiz of the course, or nil.
	GetFirstByCourseID(ctx context.Context, tx *gorm.DB, courseID uint) (*types.Quiz, error)
	FullDeleteByIDs(ctx context.Context, tx *gorm.DB, quizIDs []uint) error
}

type quizRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewQuizRepo(db *gorm.DB, baseLog *logger.Logger) QuizRepo {
	repoLog := baseLog.With("repo", "QuizRepo")
	return &quizRepo{db: db, log: repoLog}
}

func (r *quizRepo) Create(ctx context.Context, tx *gorm.DB, quizzes []*types.Quiz) ([]*types.Quiz, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if len(quizzes) == 0 {
		return []*types.Quiz{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&quizzes).Error; err != nil {
		return nil, err
	}
	return quizzes, nil
}

func (r *quizRepo) GetByIDs(ctx context.Context, tx *gorm.DB, quizIDs []uint) ([]*types.Quiz, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.Quiz
	if len(quizIDs) == 0 {
		return results, nil
	}

	if err := transaction.WithContext(ctx).
		Where("id IN ?", quizIDs).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *quizRepo) GetByCourseIDs(ctx context.Context, tx *gorm.DB, courseIDs []uint) ([]*types.Quiz, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.Quiz
	if len(courseIDs) == 0 {
		return results, nil
	}

	if err := transaction.WithContext(ctx).
		Where("course_id IN ?", courseIDs).
		Order("id ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *quizRepo) GetFirstByCourseID(ctx context.Context, tx *gorm.DB, courseID uint) (*types.Quiz, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var quiz types.Quiz
	err := transaction.WithContext(ctx).
		Where("course_id = ?", courseID).
		Order("id ASC").
		First(&quiz).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &quiz, nil
}

func (r *quizRepo) FullDeleteByIDs(ctx context.Context, tx *gorm.DB, quizIDs []uint) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if len(quizIDs) == 0 {
		return nil
	}

	return transaction.WithContext(ctx).
		Where("id IN ?", quizIDs).
		Delete(&types.Quiz{}).Error
}
