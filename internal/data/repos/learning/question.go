package learning

import (
	"context"

	types "github.com/yungbote/learnify-backend/internal/domain"
	"github.com/yungbote/learnify-backend/internal/platform/logger"
	"gorm.io/gorm"
)

type QuestionRepo interface {
	Create(ctx context.Context, tx *gorm.DB, questions []*types.Question) ([]*types.Question, error)
	// GetByQuizID returns questions in insertion (id) order, which is the
	// order answers are graded against.
	GetByQuizID(ctx context.Context, tx *gorm.DB, quizID uint) ([]*types.Question, error)
	FullDeleteByQuizIDs(ctx context.Context, tx *gorm.DB, quizIDs []uint) error
}

type questionRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewQuestionRepo(db *gorm.DB, baseLog *logger.Logger) QuestionRepo {
	repoLog := baseLog.With("repo", "QuestionRepo")
	return &questionRepo{db: db, log: repoLog}
}

func (r *questionRepo) Create(ctx context.Context, tx *gorm.DB, questions []*types.Question) ([]*types.Question, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if len(questions) == 0 {
		return []*types.Question{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *questionRepo) GetByQuizID(ctx context.Context, tx *gorm.DB, quizID uint) ([]*types.Question, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.Question
	if err := transaction.WithContext(ctx).
		Where("quiz_id = ?", quizID).
		Order("id ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *questionRepo) FullDeleteByQuizIDs(ctx context.Context, tx *gorm.DB, quizIDs []uint) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if len(quizIDs) == 0 {
		return nil
	}

	return transaction.WithContext(ctx).
		Where("quiz_id IN ?", quizIDs).
		Delete(&types.Question{}).Error
}
