package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/yungbote/learnify-backend/internal/data/repos"
	types "github.com/yungbote/learnify-backend/internal/domain"
	"github.com/yungbote/learnify-backend/internal/platform/apierr"
	"github.com/yungbote/learnify-backend/internal/platform/logger"
)

const (
	DefaultNumLessons       = 6
	DefaultNumQuestions     = 10
	MaxGenerationCount      = 20
	DefaultStreamDelay      = 600 * time.Millisecond
	DefaultQuizContextLimit = 3000
)

type GenerationConfig struct {
	// StreamDelay is the pause after each streamed lesson.
	StreamDelay time.Duration
	// QuizContextLimit caps the lesson text sent to the provider, in characters.
	QuizContextLimit int
}

type GenerateCourseResult struct {
	Message string            `json:"message"`
	Lessons []GeneratedLesson `json:"lessons"`
}

type GenerateQuizResult struct {
	Message string `json:"message"`
	QuizID  uint   `json:"quiz_id"`
}

// LessonEmitter receives each streamed lesson after it has been committed.
// Returning an error stops the stream.
type LessonEmitter func(index int, lesson GeneratedLesson) error

type GenerationService interface {
	GenerateCourseContent(ctx context.Context, actor *types.Actor, courseID uint, numLessons int) (*GenerateCourseResult, error)
	// StartCourseStream resolves the course, calls the provider and clears the
	// existing lessons. Lessons are written as the returned stream runs.
	StartCourseStream(ctx context.Context, actor *types.Actor, courseID uint, numLessons int) (*CourseStream, error)
	GenerateQuiz(ctx context.Context, actor *types.Actor, courseID uint, numQuestions int) (*GenerateQuizResult, error)
}

type generationService struct {
	db           *gorm.DB
	log          *logger.Logger
	courseRepo   repos.CourseRepo
	lessonRepo   repos.LessonRepo
	quizRepo     repos.QuizRepo
	questionRepo repos.QuestionRepo
	provider     ContentProvider
	cfg          GenerationConfig
}

func NewGenerationService(
	db *gorm.DB,
	baseLog *logger.Logger,
	courseRepo repos.CourseRepo,
	lessonRepo repos.LessonRepo,
	quizRepo repos.QuizRepo,
	questionRepo repos.QuestionRepo,
	provider ContentProvider,
	cfg GenerationConfig,
) GenerationService {
	if cfg.StreamDelay < 0 {
		cfg.StreamDelay = 0
	}
	if cfg.QuizContextLimit <= 0 {
		cfg.QuizContextLimit = DefaultQuizContextLimit
	}
	return &generationService{
		db:           db,
		log:          baseLog.With("service", "GenerationService"),
		courseRepo:   courseRepo,
		lessonRepo:   lessonRepo,
		quizRepo:     quizRepo,
		questionRepo: questionRepo,
		provider:     provider,
		cfg:          cfg,
	}
}

func validateCount(field string, n int) error {
	if n < 1 || n > MaxGenerationCount {
		return apierr.InvalidArgument("invalid_input", fmt.Errorf("%s must be between 1 and %d", field, MaxGenerationCount))
	}
	return nil
}

func lessonRows(courseID uint, generated []GeneratedLesson, now time.Time) []*types.Lesson {
	rows := make([]*types.Lesson, 0, len(generated))
	for i, gl := range generated {
		rows = append(rows, &types.Lesson{
			CourseID:   courseID,
			Title:      gl.Title,
			Content:    gl.Content,
			OrderIndex: i,
			CreatedAt:  now,
		})
	}
	return rows
}

func (gs *generationService) GenerateCourseContent(ctx context.Context, actor *types.Actor, courseID uint, numLessons int) (*GenerateCourseResult, error) {
	if err := validateCount("num_lessons", numLessons); err != nil {
		return nil, err
	}
	course, err := loadCourse(ctx, nil, gs.courseRepo, courseID)
	if err != nil {
		return nil, err
	}

	generated, err := gs.provider.GenerateCourse(ctx, course.Topic, course.Difficulty, numLessons)
	if err != nil {
		return nil, fmt.Errorf("generate course: %w", err)
	}

	// destructive replace: prior lessons and any edits to them are discarded
	if err := gs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := gs.lessonRepo.FullDeleteByCourseIDs(ctx, tx, []uint{course.ID}); err != nil {
			return fmt.Errorf("delete lessons: %w", err)
		}
		if _, err := gs.lessonRepo.Create(ctx, tx, lessonRows(course.ID, generated.Lessons, time.Now().UTC())); err != nil {
			return fmt.Errorf("create lessons: %w", err)
		}
		return nil
	}); err != nil {
		return nil, err
	}

	gs.log.Info("Course content generated",
		"course_id", course.ID,
		"user_id", actorID(actor),
		"lessons", len(generated.Lessons),
	)
	return &GenerateCourseResult{
		Message: fmt.Sprintf("Generated %d lessons", len(generated.Lessons)),
		Lessons: generated.Lessons,
	}, nil
}

func (gs *generationService) StartCourseStream(ctx context.Context, actor *types.Actor, courseID uint, numLessons int) (*CourseStream, error) {
	if err := validateCount("num_lessons", numLessons); err != nil {
		return nil, err
	}
	course, err := loadCourse(ctx, nil, gs.courseRepo, courseID)
	if err != nil {
		return nil, err
	}

	generated, err := gs.provider.GenerateCourse(ctx, course.Topic, course.Difficulty, numLessons)
	if err != nil {
		return nil, fmt.Errorf("generate course: %w", err)
	}

	if err := gs.lessonRepo.FullDeleteByCourseIDs(ctx, nil, []uint{course.ID}); err != nil {
		return nil, fmt.Errorf("delete lessons: %w", err)
	}

	gs.log.Info("Course stream started",
		"course_id", course.ID,
		"user_id", actorID(actor),
		"lessons", len(generated.Lessons),
	)
	return &CourseStream{
		log:        gs.log,
		lessonRepo: gs.lessonRepo,
		courseID:   course.ID,
		lessons:    generated.Lessons,
		delay:      gs.cfg.StreamDelay,
	}, nil
}

func (gs *generationService) GenerateQuiz(ctx context.Context, actor *types.Actor, courseID uint, numQuestions int) (*GenerateQuizResult, error) {
	if err := validateCount("num_questions", numQuestions); err != nil {
		return nil, err
	}
	course, err := loadCourse(ctx, nil, gs.courseRepo, courseID)
	if err != nil {
		return nil, err
	}

	lessons, err := gs.lessonRepo.GetByCourseID(ctx, nil, course.ID)
	if err != nil {
		return nil, fmt.Errorf("load lessons: %w", err)
	}
	parts := make([]string, 0, len(lessons))
	for _, l := range lessons {
		parts = append(parts, l.Content)
	}
	courseContent := truncateRunes(strings.Join(parts, " "), gs.cfg.QuizContextLimit)

	generated, err := gs.provider.GenerateQuiz(ctx, courseContent, numQuestions)
	if err != nil {
		return nil, fmt.Errorf("generate quiz: %w", err)
	}

	// additive: earlier quizzes for the course are kept
	quiz := &types.Quiz{
		CourseID:  course.ID,
		Title:     QuizTitle(course.Title),
		CreatedAt: time.Now().UTC(),
	}
	if err := gs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := gs.quizRepo.Create(ctx, tx, []*types.Quiz{quiz}); err != nil {
			return fmt.Errorf("create quiz: %w", err)
		}
		questions := make([]*types.Question, 0, len(generated.Questions))
		for _, gq := range generated.Questions {
			questions = append(questions, &types.Question{
				QuizID:        quiz.ID,
				QuestionText:  gq.QuestionText,
				Options:       append([]string(nil), gq.Options...),
				CorrectAnswer: gq.CorrectAnswer,
				Explanation:   gq.Explanation,
			})
		}
		if _, err := gs.questionRepo.Create(ctx, tx, questions); err != nil {
			return fmt.Errorf("create questions: %w", err)
		}
		return nil
	}); err != nil {
		return nil, err
	}

	gs.log.Info("Quiz generated",
		"course_id", course.ID,
		"quiz_id", quiz.ID,
		"user_id", actorID(actor),
		"questions", len(generated.Questions),
	)
	return &GenerateQuizResult{
		Message: fmt.Sprintf("Generated %d questions", len(generated.Questions)),
		QuizID:  quiz.ID,
	}, nil
}

func QuizTitle(courseTitle string) string {
	return courseTitle + " — Quiz"
}

func truncateRunes(s string, limit int) string {
	if limit <= 0 {
		return s
	}
	n := 0
	for i := range s {
		if n == limit {
			return s[:i]
		}
		n++
	}
	return s
}

func actorID(a *types.Actor) uint {
	if a == nil {
		return 0
	}
	return a.UserID
}

// CourseStream writes and emits generated lessons one at a time. Each lesson
// is committed before it is emitted, then the stream pauses for the
// configured delay.
type CourseStream struct {
	log        *logger.Logger
	lessonRepo repos.LessonRepo
	courseID   uint
	lessons    []GeneratedLesson
	delay      time.Duration
}

func (s *CourseStream) Len() int { return len(s.lessons) }

// Run stops without further writes once ctx is done or emit fails.
func (s *CourseStream) Run(ctx context.Context, emit LessonEmitter) error {
	var timer *time.Timer
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for i, gl := range s.lessons {
		if err := ctx.Err(); err != nil {
			return err
		}
		row := &types.Lesson{
			CourseID:   s.courseID,
			Title:      gl.Title,
			Content:    gl.Content,
			OrderIndex: i,
			CreatedAt:  time.Now().UTC(),
		}
		if _, err := s.lessonRepo.Create(ctx, nil, []*types.Lesson{row}); err != nil {
			return fmt.Errorf("create lesson %d: %w", i, err)
		}
		if err := emit(i, gl); err != nil {
			s.log.Warn("Course stream emit failed", "course_id", s.courseID, "index", i, "error", err)
			return err
		}

		if s.delay <= 0 {
			continue
		}
		if timer == nil {
			timer = time.NewTimer(s.delay)
		} else {
			timer.Reset(s.delay)
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
	}
	return nil
}
