package testutil

import (
	"context"
	"testing"
	"time"

	types "github.com/yungbote/learnify-backend/internal/domain"
	"gorm.io/gorm"
)

func SeedUser(tb testing.TB, ctx context.Context, tx *gorm.DB, email, role string) *types.User {
	tb.Helper()
	u := &types.User{
		Email:          email,
		HashedPassword: "pw",
		FullName:       "Test User",
		Role:           role,
		IsActive:       true,
		CreatedAt:      time.Now().UTC(),
	}
	if err := tx.WithContext(ctx).Create(u).Error; err != nil {
		tb.Fatalf("seed user: %v", err)
	}
	return u
}

func SeedCourse(tb testing.TB, ctx context.Context, tx *gorm.DB, ownerID uint, published bool) *types.Course {
	tb.Helper()
	c := &types.Course{
		Title:       "Intro to Go",
		Topic:       "go",
		Difficulty:  "beginner",
		IsPublished: published,
		CreatedBy:   ownerID,
		CreatedAt:   time.Now().UTC(),
	}
	if err := tx.WithContext(ctx).Create(c).Error; err != nil {
		tb.Fatalf("seed course: %v", err)
	}
	return c
}

func SeedLesson(tb testing.TB, ctx context.Context, tx *gorm.DB, courseID uint, index int, content string) *types.Lesson {
	tb.Helper()
	l := &types.Lesson{
		CourseID:   courseID,
		Title:      "lesson",
		Content:    content,
		OrderIndex: index,
		CreatedAt:  time.Now().UTC(),
	}
	if err := tx.WithContext(ctx).Create(l).Error; err != nil {
		tb.Fatalf("seed lesson: %v", err)
	}
	return l
}

func SeedQuiz(tb testing.TB, ctx context.Context, tx *gorm.DB, courseID uint, correctAnswers ...string) (*types.Quiz, []*types.Question) {
	tb.Helper()
	q := &types.Quiz{CourseID: courseID, Title: "quiz", CreatedAt: time.Now().UTC()}
	if err := tx.WithContext(ctx).Create(q).Error; err != nil {
		tb.Fatalf("seed quiz: %v", err)
	}
	questions := make([]*types.Question, 0, len(correctAnswers))
	for _, answer := range correctAnswers {
		questions = append(questions, &types.Question{
			QuizID:        q.ID,
			QuestionText:  "pick " + answer,
			Options:       []string{answer, "X", "Y", "Z"},
			CorrectAnswer: answer,
			Explanation:   answer + " is right",
		})
	}
	if len(questions) > 0 {
		if err := tx.WithContext(ctx).Create(&questions).Error; err != nil {
			tb.Fatalf("seed questions: %v", err)
		}
	}
	return q, questions
}
