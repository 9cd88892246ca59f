package services

import (
	"context"
	"testing"
	"time"

	"github.com/yungbote/learnify-backend/internal/data/repos/testutil"
	types "github.com/yungbote/learnify-backend/internal/domain"
	"github.com/yungbote/learnify-backend/internal/platform/apierr"
)

func TestCourseCreateRoles(t *testing.T) {
	env := newTestEnv(t)
	svc := env.courseService()
	ctx := context.Background()

	in := CourseInput{Title: "Go", Topic: "go", Difficulty: "beginner"}

	tests := []struct {
		role   string
		status int
	}{
		{role: types.RoleStudent, status: 403},
		{role: types.RoleTeacher, status: 0},
		{role: types.RoleAdmin, status: 0},
	}
	for _, tt := range tests {
		t.Run(tt.role, func(t *testing.T) {
			actor := env.actor(t, tt.role+"@example.com", tt.role)
			course, err := svc.Create(ctx, actor, in)
			if tt.status != 0 {
				if apierr.StatusOf(err) != tt.status {
					t.Fatalf("expected %d, got %v", tt.status, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Create: %v", err)
			}
			if course.ID == 0 || course.CreatedBy != actor.UserID || course.IsPublished {
				t.Fatalf("course: %+v", course)
			}
		})
	}

	if _, err := svc.Create(ctx, nil, in); apierr.StatusOf(err) != 403 {
		t.Fatalf("Create without actor: expected 403, got %v", err)
	}
}

func TestCourseListAndGet(t *testing.T) {
	env := newTestEnv(t)
	svc := env.courseService()
	ctx := context.Background()

	teacher := env.actor(t, "t@example.com", types.RoleTeacher)
	draft := testutil.SeedCourse(t, ctx, env.db, teacher.UserID, false)
	live := testutil.SeedCourse(t, ctx, env.db, teacher.UserID, true)

	list, err := svc.ListPublished(ctx)
	if err != nil {
		t.Fatalf("ListPublished: %v", err)
	}
	if len(list) != 1 || list[0].ID != live.ID {
		t.Fatalf("ListPublished: expected only published course, got %v", list)
	}

	got, err := svc.Get(ctx, draft.ID)
	if err != nil || got.ID != draft.ID {
		t.Fatalf("Get unpublished by id: course=%v err=%v", got, err)
	}
	if _, err := svc.Get(ctx, 9999); apierr.StatusOf(err) != 404 {
		t.Fatalf("Get missing: expected 404, got %v", err)
	}
}

func TestCourseUpdate(t *testing.T) {
	env := newTestEnv(t)
	svc := env.courseService()
	ctx := context.Background()

	owner := env.actor(t, "owner@example.com", types.RoleTeacher)
	other := env.actor(t, "other@example.com", types.RoleTeacher)
	admin := env.actor(t, "admin@example.com", types.RoleAdmin)
	course := testutil.SeedCourse(t, ctx, env.db, owner.UserID, false)

	in := CourseInput{Title: "Renamed", Topic: "rust", Difficulty: "advanced"}

	if _, err := svc.Update(ctx, other, course.ID, in); apierr.StatusOf(err) != 403 {
		t.Fatalf("Update by non-owner: expected 403, got %v", err)
	}
	if _, err := svc.Update(ctx, owner, 9999, in); apierr.StatusOf(err) != 404 {
		t.Fatalf("Update missing: expected 404, got %v", err)
	}

	updated, err := svc.Update(ctx, owner, course.ID, in)
	if err != nil {
		t.Fatalf("Update by owner: %v", err)
	}
	if updated.Title != "Renamed" || updated.Topic != "rust" || updated.Description != nil {
		t.Fatalf("Update result: %+v", updated)
	}

	desc := "by admin"
	in.Description = &desc
	if _, err := svc.Update(ctx, admin, course.ID, in); err != nil {
		t.Fatalf("Update by admin: %v", err)
	}
	got, err := svc.Get(ctx, course.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Description == nil || *got.Description != "by admin" {
		t.Fatalf("stored description: %v", got.Description)
	}
}

func TestCourseSetPublished(t *testing.T) {
	env := newTestEnv(t)
	svc := env.courseService()
	ctx := context.Background()

	owner := env.actor(t, "owner@example.com", types.RoleTeacher)
	student := env.actor(t, "student@example.com", types.RoleStudent)
	course := testutil.SeedCourse(t, ctx, env.db, owner.UserID, false)

	if _, err := svc.SetPublished(ctx, student, course.ID, true); apierr.StatusOf(err) != 403 {
		t.Fatalf("SetPublished by student: expected 403, got %v", err)
	}
	got, err := svc.SetPublished(ctx, owner, course.ID, true)
	if err != nil || !got.IsPublished {
		t.Fatalf("SetPublished: course=%v err=%v", got, err)
	}
	list, err := svc.ListPublished(ctx)
	if err != nil || len(list) != 1 {
		t.Fatalf("ListPublished after publish: err=%v len=%d", err, len(list))
	}
}

func TestCourseDeleteCascades(t *testing.T) {
	env := newTestEnv(t)
	svc := env.courseService()
	ctx := context.Background()

	owner := env.actor(t, "owner@example.com", types.RoleTeacher)
	admin := env.actor(t, "admin@example.com", types.RoleAdmin)
	student := env.actor(t, "student@example.com", types.RoleStudent)

	course := testutil.SeedCourse(t, ctx, env.db, owner.UserID, true)
	keep := testutil.SeedCourse(t, ctx, env.db, owner.UserID, true)
	lesson := testutil.SeedLesson(t, ctx, env.db, course.ID, 0, "body")
	testutil.SeedLesson(t, ctx, env.db, keep.ID, 0, "other body")
	quiz, _ := testutil.SeedQuiz(t, ctx, env.db, course.ID, "A", "B")
	keptQuiz, _ := testutil.SeedQuiz(t, ctx, env.db, keep.ID, "C")

	if _, err := env.progress.Create(ctx, nil, []*types.Progress{{UserID: student.UserID, LessonID: lesson.ID}}); err != nil {
		t.Fatalf("seed progress: %v", err)
	}
	if _, err := env.attempts.Create(ctx, nil, []*types.QuizAttempt{{
		UserID: student.UserID, QuizID: quiz.ID, Score: 50, Answers: []string{"A"}, AttemptedAt: time.Now().UTC(),
	}}); err != nil {
		t.Fatalf("seed attempt: %v", err)
	}

	if err := svc.Delete(ctx, owner, course.ID); apierr.StatusOf(err) != 403 {
		t.Fatalf("Delete by owner: expected 403, got %v", err)
	}
	if err := svc.Delete(ctx, admin, 9999); apierr.StatusOf(err) != 404 {
		t.Fatalf("Delete missing: expected 404, got %v", err)
	}
	if err := svc.Delete(ctx, admin, course.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	if _, err := svc.Get(ctx, course.ID); apierr.StatusOf(err) != 404 {
		t.Fatalf("Get deleted: expected 404, got %v", err)
	}
	if rows, _ := env.lessons.GetByCourseID(ctx, nil, course.ID); len(rows) != 0 {
		t.Fatalf("lessons survived: %d", len(rows))
	}
	if rows, _ := env.quizzes.GetByIDs(ctx, nil, []uint{quiz.ID}); len(rows) != 0 {
		t.Fatalf("quiz survived")
	}
	if rows, _ := env.questions.GetByQuizID(ctx, nil, quiz.ID); len(rows) != 0 {
		t.Fatalf("questions survived: %d", len(rows))
	}
	if rows, _ := env.progress.GetByUserID(ctx, nil, student.UserID); len(rows) != 0 {
		t.Fatalf("progress survived: %d", len(rows))
	}
	if rows, _ := env.attempts.GetByUserID(ctx, nil, student.UserID); len(rows) != 1 {
		t.Fatalf("attempts should be kept, got %d", len(rows))
	}

	if rows, _ := env.lessons.GetByCourseID(ctx, nil, keep.ID); len(rows) != 1 {
		t.Fatalf("unrelated lessons touched")
	}
	if rows, _ := env.questions.GetByQuizID(ctx, nil, keptQuiz.ID); len(rows) != 1 {
		t.Fatalf("unrelated questions touched")
	}
}

func TestCourseListLessons(t *testing.T) {
	env := newTestEnv(t)
	svc := env.courseService()
	ctx := context.Background()

	owner := env.actor(t, "owner@example.com", types.RoleTeacher)
	course := testutil.SeedCourse(t, ctx, env.db, owner.UserID, false)
	testutil.SeedLesson(t, ctx, env.db, course.ID, 1, "second")
	testutil.SeedLesson(t, ctx, env.db, course.ID, 0, "first")

	rows, err := svc.ListLessons(ctx, course.ID)
	if err != nil {
		t.Fatalf("ListLessons: %v", err)
	}
	if len(rows) != 2 || rows[0].Content != "first" || rows[1].Content != "second" {
		t.Fatalf("ListLessons order: %v", rows)
	}
	if _, err := svc.ListLessons(ctx, 9999); apierr.StatusOf(err) != 404 {
		t.Fatalf("ListLessons missing: expected 404, got %v", err)
	}
}
