package services

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/yungbote/learnify-backend/internal/platform/logger"
	"github.com/yungbote/learnify-backend/internal/platform/openai"
)

// PlaceholderAPIKey is the value shipped in example env files; it counts as unset.
const PlaceholderAPIKey = "sk-your-key-here"

//go:embed fallback_content.yaml
var fallbackContentFS embed.FS

type GeneratedLesson struct {
	Title    string `json:"title" yaml:"title"`
	Content  string `json:"content" yaml:"content"`
	Duration string `json:"duration" yaml:"duration"`
}

type GeneratedCourse struct {
	Lessons []GeneratedLesson `json:"lessons" yaml:"lessons"`
}

type GeneratedQuestion struct {
	QuestionText  string   `json:"question_text" yaml:"question_text"`
	Options       []string `json:"options" yaml:"options"`
	CorrectAnswer string   `json:"correct_answer" yaml:"correct_answer"`
	Explanation   string   `json:"explanation" yaml:"explanation"`
}

type GeneratedQuiz struct {
	Questions []GeneratedQuestion `json:"questions" yaml:"questions"`
}

// ContentProvider produces lesson and quiz content. Implementations degrade
// to fallback content instead of failing, so callers never see provider errors.
type ContentProvider interface {
	GenerateCourse(ctx context.Context, topic, difficulty string, numLessons int) (*GeneratedCourse, error)
	GenerateQuiz(ctx context.Context, courseContent string, numQuestions int) (*GeneratedQuiz, error)
}

// ProviderKeyConfigured reports whether key is a usable provider credential.
func ProviderKeyConfigured(key string) bool {
	key = strings.TrimSpace(key)
	return key != "" && key != PlaceholderAPIKey
}

type fallbackContent struct {
	Course GeneratedCourse `yaml:"course"`
	Quiz   GeneratedQuiz   `yaml:"quiz"`
}

func loadFallbackContent() (*fallbackContent, error) {
	data, err := fallbackContentFS.ReadFile("fallback_content.yaml")
	if err != nil {
		return nil, err
	}
	var fc fallbackContent
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("parse fallback content: %w", err)
	}
	if len(fc.Course.Lessons) == 0 || len(fc.Quiz.Questions) == 0 {
		return nil, errors.New("fallback content is empty")
	}
	return &fc, nil
}

type contentProvider struct {
	log      *logger.Logger
	client   openai.Client
	fallback *fallbackContent
}

// NewContentProvider returns a provider backed by client. A nil client means
// no credential is configured and every call is served from fallback content.
func NewContentProvider(log *logger.Logger, client openai.Client) (ContentProvider, error) {
	fc, err := loadFallbackContent()
	if err != nil {
		return nil, err
	}
	providerLog := log.With("service", "ContentProvider")
	if client == nil {
		providerLog.Warn("No provider credential configured, serving fallback content")
	}
	return &contentProvider{log: providerLog, client: client, fallback: fc}, nil
}

const (
	courseSystemPrompt = "You are an expert course creator. Always respond with valid JSON only."
	quizSystemPrompt   = "You are an expert quiz creator. Always respond with valid JSON only."
)

func coursePrompt(topic, difficulty string, numLessons int) string {
	return fmt.Sprintf(`Create a %s level course on '%s' with exactly %d lessons.
Return JSON in this exact format:
{
  "lessons": [
    {
      "title": "lesson title",
      "content": "full lesson content in markdown, at least 3 paragraphs",
      "duration": "X min"
    }
  ]
}`, difficulty, topic, numLessons)
}

func quizPrompt(courseContent string, numQuestions int) string {
	return fmt.Sprintf(`Create %d multiple choice questions based on this content:
%s

Return JSON in this exact format:
{
  "questions": [
    {
      "question_text": "the question",
      "options": ["A", "B", "C", "D"],
      "correct_answer": "the correct option text",
      "explanation": "why this is correct"
    }
  ]
}`, numQuestions, courseContent)
}

func (p *contentProvider) GenerateCourse(ctx context.Context, topic, difficulty string, numLessons int) (*GeneratedCourse, error) {
	if p.client == nil {
		return p.fallbackCourse(), nil
	}

	var out GeneratedCourse
	if err := p.client.GenerateJSON(ctx, courseSystemPrompt, coursePrompt(topic, difficulty, numLessons), &out); err != nil {
		p.log.Warn("Course generation failed, using fallback content", "error", err)
		return p.fallbackCourse(), nil
	}
	if len(out.Lessons) == 0 {
		p.log.Warn("Course generation returned no lessons, using fallback content")
		return p.fallbackCourse(), nil
	}
	return &out, nil
}

func (p *contentProvider) GenerateQuiz(ctx context.Context, courseContent string, numQuestions int) (*GeneratedQuiz, error) {
	if p.client == nil {
		return p.fallbackQuiz(), nil
	}

	var out GeneratedQuiz
	if err := p.client.GenerateJSON(ctx, quizSystemPrompt, quizPrompt(courseContent, numQuestions), &out); err != nil {
		p.log.Warn("Quiz generation failed, using fallback content", "error", err)
		return p.fallbackQuiz(), nil
	}
	if len(out.Questions) == 0 {
		p.log.Warn("Quiz generation returned no questions, using fallback content")
		return p.fallbackQuiz(), nil
	}
	return &out, nil
}

func (p *contentProvider) fallbackCourse() *GeneratedCourse {
	lessons := make([]GeneratedLesson, len(p.fallback.Course.Lessons))
	copy(lessons, p.fallback.Course.Lessons)
	return &GeneratedCourse{Lessons: lessons}
}

func (p *contentProvider) fallbackQuiz() *GeneratedQuiz {
	questions := make([]GeneratedQuestion, len(p.fallback.Quiz.Questions))
	for i, q := range p.fallback.Quiz.Questions {
		q.Options = append([]string(nil), q.Options...)
		questions[i] = q
	}
	return &GeneratedQuiz{Questions: questions}
}
