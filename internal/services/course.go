package services

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/yungbote/learnify-backend/internal/data/repos"
	types "github.com/yungbote/learnify-backend/internal/domain"
	"github.com/yungbote/learnify-backend/internal/platform/apierr"
	"github.com/yungbote/learnify-backend/internal/platform/logger"
)

// CourseInput is the full set of editable course fields. Updates replace all
// of them; there is no partial patch.
type CourseInput struct {
	Title       string  `json:"title" validate:"required"`
	Description *string `json:"description"`
	Topic       string  `json:"topic"`
	Difficulty  string  `json:"difficulty"`
}

type CourseService interface {
	Create(ctx context.Context, actor *types.Actor, in CourseInput) (*types.Course, error)
	ListPublished(ctx context.Context) ([]*types.Course, error)
	Get(ctx context.Context, courseID uint) (*types.Course, error)
	Update(ctx context.Context, actor *types.Actor, courseID uint, in CourseInput) (*types.Course, error)
	SetPublished(ctx context.Context, actor *types.Actor, courseID uint, published bool) (*types.Course, error)
	Delete(ctx context.Context, actor *types.Actor, courseID uint) error
	ListLessons(ctx context.Context, courseID uint) ([]*types.Lesson, error)
}

type courseService struct {
	db           *gorm.DB
	log          *logger.Logger
	courseRepo   repos.CourseRepo
	lessonRepo   repos.LessonRepo
	quizRepo     repos.QuizRepo
	questionRepo repos.QuestionRepo
	progressRepo repos.ProgressRepo
}

func NewCourseService(
	db *gorm.DB,
	baseLog *logger.Logger,
	courseRepo repos.CourseRepo,
	lessonRepo repos.LessonRepo,
	quizRepo repos.QuizRepo,
	questionRepo repos.QuestionRepo,
	progressRepo repos.ProgressRepo,
) CourseService {
	serviceLog := baseLog.With("service", "CourseService")
	return &courseService{
		db:           db,
		log:          serviceLog,
		courseRepo:   courseRepo,
		lessonRepo:   lessonRepo,
		quizRepo:     quizRepo,
		questionRepo: questionRepo,
		progressRepo: progressRepo,
	}
}

func errCourseNotFound() error { return apierr.NotFound("course_not_found", "Course not found") }

// loadCourse returns the course or a NotFound apierr.
func loadCourse(ctx context.Context, tx *gorm.DB, repo repos.CourseRepo, courseID uint) (*types.Course, error) {
	rows, err := repo.GetByIDs(ctx, tx, []uint{courseID})
	if err != nil {
		return nil, fmt.Errorf("load course: %w", err)
	}
	if len(rows) == 0 || rows[0] == nil {
		return nil, errCourseNotFound()
	}
	return rows[0], nil
}

func (cs *courseService) Create(ctx context.Context, actor *types.Actor, in CourseInput) (*types.Course, error) {
	if !actor.CanAuthorCourses() {
		return nil, apierr.Forbidden("forbidden", "Only teachers and admins can create courses")
	}
	if err := validateInput(in); err != nil {
		return nil, err
	}

	course := &types.Course{
		Title:       in.Title,
		Description: in.Description,
		Topic:       in.Topic,
		Difficulty:  in.Difficulty,
		IsPublished: false,
		CreatedBy:   actor.UserID,
		CreatedAt:   time.Now().UTC(),
	}
	if err := cs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := cs.courseRepo.Create(ctx, tx, []*types.Course{course}); err != nil {
			return fmt.Errorf("create course: %w", err)
		}
		return nil
	}); err != nil {
		return nil, err
	}

	cs.log.Info("Course created", "course_id", course.ID, "user_id", actor.UserID)
	return course, nil
}

func (cs *courseService) ListPublished(ctx context.Context) ([]*types.Course, error) {
	rows, err := cs.courseRepo.ListPublished(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}
	return rows, nil
}

func (cs *courseService) Get(ctx context.Context, courseID uint) (*types.Course, error) {
	return loadCourse(ctx, nil, cs.courseRepo, courseID)
}

func (cs *courseService) Update(ctx context.Context, actor *types.Actor, courseID uint, in CourseInput) (*types.Course, error) {
	var out *types.Course
	err := cs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		course, err := loadCourse(ctx, tx, cs.courseRepo, courseID)
		if err != nil {
			return err
		}
		if !actor.CanManage(course.CreatedBy) {
			return apierr.Forbidden("forbidden", "Not authorised")
		}
		if err := validateInput(in); err != nil {
			return err
		}

		course.Title = in.Title
		course.Description = in.Description
		course.Topic = in.Topic
		course.Difficulty = in.Difficulty
		if err := cs.courseRepo.UpdateDetails(ctx, tx, course); err != nil {
			return fmt.Errorf("update course: %w", err)
		}
		out = course
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (cs *courseService) SetPublished(ctx context.Context, actor *types.Actor, courseID uint, published bool) (*types.Course, error) {
	var out *types.Course
	err := cs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		course, err := loadCourse(ctx, tx, cs.courseRepo, courseID)
		if err != nil {
			return err
		}
		if !actor.CanManage(course.CreatedBy) {
			return apierr.Forbidden("forbidden", "Not authorised")
		}
		if err := cs.courseRepo.SetPublished(ctx, tx, courseID, published); err != nil {
			return fmt.Errorf("set published: %w", err)
		}
		course.IsPublished = published
		out = course
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Delete removes the course with its lessons, quizzes, questions and lesson
// progress in one transaction. Quiz attempts survive and show placeholders
// in history.
func (cs *courseService) Delete(ctx context.Context, actor *types.Actor, courseID uint) error {
	if !actor.IsAdmin() {
		return apierr.Forbidden("forbidden", "Only admins can delete courses")
	}

	return cs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := loadCourse(ctx, tx, cs.courseRepo, courseID); err != nil {
			return err
		}

		quizzes, err := cs.quizRepo.GetByCourseIDs(ctx, tx, []uint{courseID})
		if err != nil {
			return fmt.Errorf("load quizzes: %w", err)
		}
		quizIDs := make([]uint, 0, len(quizzes))
		for _, q := range quizzes {
			quizIDs = append(quizIDs, q.ID)
		}
		if err := cs.questionRepo.FullDeleteByQuizIDs(ctx, tx, quizIDs); err != nil {
			return fmt.Errorf("delete questions: %w", err)
		}
		if err := cs.quizRepo.FullDeleteByIDs(ctx, tx, quizIDs); err != nil {
			return fmt.Errorf("delete quizzes: %w", err)
		}

		lessons, err := cs.lessonRepo.GetByCourseID(ctx, tx, courseID)
		if err != nil {
			return fmt.Errorf("load lessons: %w", err)
		}
		lessonIDs := make([]uint, 0, len(lessons))
		for _, l := range lessons {
			lessonIDs = append(lessonIDs, l.ID)
		}
		if err := cs.progressRepo.FullDeleteByLessonIDs(ctx, tx, lessonIDs); err != nil {
			return fmt.Errorf("delete progress: %w", err)
		}
		if err := cs.lessonRepo.FullDeleteByCourseIDs(ctx, tx, []uint{courseID}); err != nil {
			return fmt.Errorf("delete lessons: %w", err)
		}
		if err := cs.courseRepo.FullDeleteByIDs(ctx, tx, []uint{courseID}); err != nil {
			return fmt.Errorf("delete course: %w", err)
		}

		cs.log.Info("Course deleted",
			"course_id", courseID,
			"user_id", actor.UserID,
			"quizzes", len(quizIDs),
			"lessons", len(lessonIDs),
		)
		return nil
	})
}

func (cs *courseService) ListLessons(ctx context.Context, courseID uint) ([]*types.Lesson, error) {
	if _, err := loadCourse(ctx, nil, cs.courseRepo, courseID); err != nil {
		return nil, err
	}
	rows, err := cs.lessonRepo.GetByCourseID(ctx, nil, courseID)
	if err != nil {
		return nil, fmt.Errorf("list lessons: %w", err)
	}
	return rows, nil
}
