package services

import (
	"context"
	"fmt"
	"math"
	"time"

	"gorm.io/gorm"

	"github.com/yungbote/learnify-backend/internal/data/repos"
	types "github.com/yungbote/learnify-backend/internal/domain"
	"github.com/yungbote/learnify-backend/internal/platform/apierr"
	"github.com/yungbote/learnify-backend/internal/platform/logger"
)

const (
	UnknownQuizTitle   = "Unknown Quiz"
	UnknownCourseTitle = "Unknown Course"
)

// QuizQuestionView is a question with the answer and explanation withheld.
type QuizQuestionView struct {
	ID           uint     `json:"id"`
	QuestionText string   `json:"question_text"`
	Options      []string `json:"options"`
}

type QuizView struct {
	ID        uint               `json:"id"`
	Title     string             `json:"title"`
	Questions []QuizQuestionView `json:"questions"`
}

type QuestionResult struct {
	QuestionText  string `json:"question_text"`
	YourAnswer    string `json:"your_answer"`
	CorrectAnswer string `json:"correct_answer"`
	Explanation   string `json:"explanation"`
	IsCorrect     bool   `json:"is_correct"`
}

type AttemptResult struct {
	Score   int              `json:"score"`
	Correct int              `json:"correct"`
	Total   int              `json:"total"`
	Results []QuestionResult `json:"results"`
}

type AttemptSummary struct {
	AttemptID   uint      `json:"attempt_id"`
	QuizID      uint      `json:"quiz_id"`
	QuizTitle   string    `json:"quiz_title"`
	CourseTitle string    `json:"course_title"`
	CourseTopic string    `json:"course_topic"`
	Score       int       `json:"score"`
	AttemptedAt time.Time `json:"attempted_at"`
}

type CourseQuizRef struct {
	QuizID uint   `json:"quiz_id"`
	Title  string `json:"title"`
}

type QuizService interface {
	GetQuiz(ctx context.Context, quizID uint) (*QuizView, error)
	SubmitAttempt(ctx context.Context, actor *types.Actor, quizID uint, answers []string) (*AttemptResult, error)
	GetHistory(ctx context.Context, actor *types.Actor) ([]AttemptSummary, error)
	GetQuizByCourse(ctx context.Context, courseID uint) (*CourseQuizRef, error)
}

type quizService struct {
	db           *gorm.DB
	log          *logger.Logger
	courseRepo   repos.CourseRepo
	quizRepo     repos.QuizRepo
	questionRepo repos.QuestionRepo
	attemptRepo  repos.QuizAttemptRepo
	now          func() time.Time
}

func NewQuizService(
	db *gorm.DB,
	baseLog *logger.Logger,
	courseRepo repos.CourseRepo,
	quizRepo repos.QuizRepo,
	questionRepo repos.QuestionRepo,
	attemptRepo repos.QuizAttemptRepo,
) QuizService {
	return &quizService{
		db:           db,
		log:          baseLog.With("service", "QuizService"),
		courseRepo:   courseRepo,
		quizRepo:     quizRepo,
		questionRepo: questionRepo,
		attemptRepo:  attemptRepo,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

func errQuizNotFound() error { return apierr.NotFound("quiz_not_found", "Quiz not found") }

func (qs *quizService) GetQuiz(ctx context.Context, quizID uint) (*QuizView, error) {
	quizzes, err := qs.quizRepo.GetByIDs(ctx, nil, []uint{quizID})
	if err != nil {
		return nil, fmt.Errorf("load quiz: %w", err)
	}
	if len(quizzes) == 0 || quizzes[0] == nil {
		return nil, errQuizNotFound()
	}
	quiz := quizzes[0]

	questions, err := qs.questionRepo.GetByQuizID(ctx, nil, quiz.ID)
	if err != nil {
		return nil, fmt.Errorf("load questions: %w", err)
	}
	view := &QuizView{ID: quiz.ID, Title: quiz.Title, Questions: make([]QuizQuestionView, 0, len(questions))}
	for _, q := range questions {
		options := []string(q.Options)
		if options == nil {
			options = []string{}
		}
		view.Questions = append(view.Questions, QuizQuestionView{
			ID:           q.ID,
			QuestionText: q.QuestionText,
			Options:      options,
		})
	}
	return view, nil
}

// Grade scores answers positionally against questions. Missing answers count
// as the empty string; comparison is exact.
func Grade(questions []*types.Question, answers []string) *AttemptResult {
	res := &AttemptResult{Total: len(questions), Results: make([]QuestionResult, 0, len(questions))}
	for i, q := range questions {
		answer := ""
		if i < len(answers) {
			answer = answers[i]
		}
		ok := answer == q.CorrectAnswer
		if ok {
			res.Correct++
		}
		res.Results = append(res.Results, QuestionResult{
			QuestionText:  q.QuestionText,
			YourAnswer:    answer,
			CorrectAnswer: q.CorrectAnswer,
			Explanation:   q.Explanation,
			IsCorrect:     ok,
		})
	}
	if res.Total > 0 {
		res.Score = int(math.Round(float64(res.Correct) / float64(res.Total) * 100))
	}
	return res
}

func (qs *quizService) SubmitAttempt(ctx context.Context, actor *types.Actor, quizID uint, answers []string) (*AttemptResult, error) {
	if actor == nil {
		return nil, apierr.Unauthorized("unauthenticated", "Not authenticated")
	}
	if answers == nil {
		answers = []string{}
	}

	var result *AttemptResult
	err := qs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		questions, err := qs.questionRepo.GetByQuizID(ctx, tx, quizID)
		if err != nil {
			return fmt.Errorf("load questions: %w", err)
		}
		// a quiz without questions is indistinguishable from a missing quiz
		if len(questions) == 0 {
			return errQuizNotFound()
		}

		result = Grade(questions, answers)
		attempt := &types.QuizAttempt{
			UserID:      actor.UserID,
			QuizID:      quizID,
			Score:       result.Score,
			Answers:     append([]string(nil), answers...),
			AttemptedAt: qs.now(),
		}
		if _, err := qs.attemptRepo.Create(ctx, tx, []*types.QuizAttempt{attempt}); err != nil {
			return fmt.Errorf("create attempt: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	qs.log.Info("Quiz attempt graded",
		"quiz_id", quizID,
		"user_id", actor.UserID,
		"score", result.Score,
		"correct", result.Correct,
		"total", result.Total,
	)
	return result, nil
}

func (qs *quizService) GetHistory(ctx context.Context, actor *types.Actor) ([]AttemptSummary, error) {
	if actor == nil {
		return nil, apierr.Unauthorized("unauthenticated", "Not authenticated")
	}

	attempts, err := qs.attemptRepo.GetByUserID(ctx, nil, actor.UserID)
	if err != nil {
		return nil, fmt.Errorf("load attempts: %w", err)
	}
	out := make([]AttemptSummary, 0, len(attempts))
	if len(attempts) == 0 {
		return out, nil
	}

	quizIDs := make([]uint, 0, len(attempts))
	seenQuiz := map[uint]bool{}
	for _, a := range attempts {
		if !seenQuiz[a.QuizID] {
			seenQuiz[a.QuizID] = true
			quizIDs = append(quizIDs, a.QuizID)
		}
	}
	quizzes, err := qs.quizRepo.GetByIDs(ctx, nil, quizIDs)
	if err != nil {
		return nil, fmt.Errorf("load quizzes: %w", err)
	}
	quizByID := make(map[uint]*types.Quiz, len(quizzes))
	courseIDs := make([]uint, 0, len(quizzes))
	for _, q := range quizzes {
		quizByID[q.ID] = q
		courseIDs = append(courseIDs, q.CourseID)
	}
	courses, err := qs.courseRepo.GetByIDs(ctx, nil, courseIDs)
	if err != nil {
		return nil, fmt.Errorf("load courses: %w", err)
	}
	courseByID := make(map[uint]*types.Course, len(courses))
	for _, c := range courses {
		courseByID[c.ID] = c
	}

	for _, a := range attempts {
		summary := AttemptSummary{
			AttemptID:   a.ID,
			QuizID:      a.QuizID,
			QuizTitle:   UnknownQuizTitle,
			CourseTitle: UnknownCourseTitle,
			Score:       a.Score,
			AttemptedAt: a.AttemptedAt,
		}
		if quiz, ok := quizByID[a.QuizID]; ok {
			summary.QuizTitle = quiz.Title
			if course, ok := courseByID[quiz.CourseID]; ok {
				summary.CourseTitle = course.Title
				summary.CourseTopic = course.Topic
			}
		}
		out = append(out, summary)
	}
	return out, nil
}

func (qs *quizService) GetQuizByCourse(ctx context.Context, courseID uint) (*CourseQuizRef, error) {
	quiz, err := qs.quizRepo.GetFirstByCourseID(ctx, nil, courseID)
	if err != nil {
		return nil, fmt.Errorf("load quiz: %w", err)
	}
	if quiz == nil {
		return nil, apierr.NotFound("quiz_not_found", "No quiz for this course")
	}
	return &CourseQuizRef{QuizID: quiz.ID, Title: quiz.Title}, nil
}
