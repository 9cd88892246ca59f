package services

import (
	"context"
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/yungbote/learnify-backend/internal/platform/logger"
)

type stubOpenAI struct {
	payload string
	err     error
	calls   int
	lastSys string
	lastUsr string
}

func (s *stubOpenAI) GenerateJSON(ctx context.Context, system string, user string, out any) error {
	s.calls++
	s.lastSys, s.lastUsr = system, user
	if s.err != nil {
		return s.err
	}
	return json.Unmarshal([]byte(s.payload), out)
}

func TestProviderKeyConfigured(t *testing.T) {
	tests := map[string]bool{
		"":                 false,
		"   ":              false,
		"sk-your-key-here": false,
		"sk-live-123":      true,
	}
	for key, want := range tests {
		if got := ProviderKeyConfigured(key); got != want {
			t.Fatalf("ProviderKeyConfigured(%q)=%v want %v", key, got, want)
		}
	}
}

func TestContentProviderFallbackWithoutClient(t *testing.T) {
	p, err := NewContentProvider(logger.Nop(), nil)
	if err != nil {
		t.Fatalf("NewContentProvider: %v", err)
	}
	ctx := context.Background()

	first, err := p.GenerateCourse(ctx, "go", "beginner", 3)
	if err != nil {
		t.Fatalf("GenerateCourse: %v", err)
	}
	if len(first.Lessons) != 6 {
		t.Fatalf("fallback lessons: got %d", len(first.Lessons))
	}
	if first.Lessons[0].Title != "Introduction to the Topic" || first.Lessons[5].Duration != "13 min" {
		t.Fatalf("fallback lessons: %+v", first.Lessons)
	}

	first.Lessons[0].Title = "mutated"
	second, _ := p.GenerateCourse(ctx, "rust", "advanced", 9)
	if second.Lessons[0].Title != "Introduction to the Topic" {
		t.Fatalf("fallback content shared with callers")
	}
	a, _ := json.Marshal(second)
	third, _ := p.GenerateCourse(ctx, "rust", "advanced", 9)
	b, _ := json.Marshal(third)
	if string(a) != string(b) {
		t.Fatalf("fallback course not deterministic")
	}

	quiz, err := p.GenerateQuiz(ctx, "content", 10)
	if err != nil {
		t.Fatalf("GenerateQuiz: %v", err)
	}
	if len(quiz.Questions) != 3 {
		t.Fatalf("fallback questions: got %d", len(quiz.Questions))
	}
	q := quiz.Questions[2]
	if q.CorrectAnswer != "Both B and C" || !reflect.DeepEqual(q.Options, []string{"Nothing", "Errors occur", "Performance degrades", "Both B and C"}) {
		t.Fatalf("fallback question: %+v", q)
	}
}

func TestContentProviderUsesClient(t *testing.T) {
	stub := &stubOpenAI{payload: `{"lessons":[{"title":"T1","content":"C1","duration":"5 min"}]}`}
	p, err := NewContentProvider(logger.Nop(), stub)
	if err != nil {
		t.Fatalf("NewContentProvider: %v", err)
	}

	out, err := p.GenerateCourse(context.Background(), "graphs", "intermediate", 1)
	if err != nil {
		t.Fatalf("GenerateCourse: %v", err)
	}
	if len(out.Lessons) != 1 || out.Lessons[0].Title != "T1" {
		t.Fatalf("lessons: %+v", out.Lessons)
	}
	if !strings.Contains(stub.lastUsr, "intermediate level course on 'graphs' with exactly 1 lessons") {
		t.Fatalf("prompt: %q", stub.lastUsr)
	}
	if stub.lastSys != courseSystemPrompt {
		t.Fatalf("system prompt: %q", stub.lastSys)
	}
}

func TestContentProviderFallsBackOnFailure(t *testing.T) {
	tests := []struct {
		name string
		stub *stubOpenAI
	}{
		{name: "call error", stub: &stubOpenAI{err: errors.New("boom")}},
		{name: "empty payload", stub: &stubOpenAI{payload: `{}`}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewContentProvider(logger.Nop(), tt.stub)
			if err != nil {
				t.Fatalf("NewContentProvider: %v", err)
			}
			course, err := p.GenerateCourse(context.Background(), "x", "y", 2)
			if err != nil || len(course.Lessons) != 6 {
				t.Fatalf("GenerateCourse: lessons=%v err=%v", course, err)
			}
			quiz, err := p.GenerateQuiz(context.Background(), "ctx", 2)
			if err != nil || len(quiz.Questions) != 3 {
				t.Fatalf("GenerateQuiz: quiz=%v err=%v", quiz, err)
			}
			if tt.stub.calls != 2 {
				t.Fatalf("expected one provider call per generation, got %d", tt.stub.calls)
			}
		})
	}
}
