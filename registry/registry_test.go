package registry

import (
	"reflect"
	"testing"

	"github.com/pulseprimer/ecg_api/model"
)

func intPtr(v int) *int { return &v }

func quizLesson(id string, order int) model.Lesson {
	return model.Lesson{
		ID:       id,
		ModuleID: "module-1",
		Title:    "Lesson " + id,
		Order:    order,
		Content: model.LessonContent{
			Type:         "mixed",
			Introduction: "intro",
			Slides: []model.Slide{
				{ID: "s1", Title: "Overview", Type: "highlight", Highlights: []string{"a", "b"}},
				{
					ID: "s2", Title: "Check", Type: "quiz",
					Question:      "Pick one",
					Options:       []string{"x", "y", "z"},
					CorrectAnswer: intPtr(1),
				},
			},
		},
		Tasks: []model.Task{
			{
				ID:   "task-1",
				Type: "quiz",
				XP:   10,
				Content: model.TaskContent{
					Question:      "Pick one",
					Options:       []string{"x", "y"},
					CorrectAnswer: intPtr(0),
				},
			},
		},
	}
}

func TestBuildRejectsDuplicateKeys(t *testing.T) {
	_, err := Build([]model.Lesson{
		quizLesson("module-1-lesson-1", 1),
		quizLesson("module-1-lesson-1", 2),
	})
	if err == nil {
		t.Fatal("expected duplicate key error, got nil")
	}
}

func TestBuildRejectsMalformedKeys(t *testing.T) {
	for _, id := range []string{"module-0-lesson-1", "module-1-lesson-01", "lesson-1", "module-1-lesson-", "Module-1-lesson-1"} {
		t.Run(id, func(t *testing.T) {
			if _, err := Build([]model.Lesson{quizLesson(id, 1)}); err == nil {
				t.Errorf("expected key validation error for %q", id)
			}
		})
	}
}

func TestBuildRejectsOutOfRangeCorrectAnswer(t *testing.T) {
	lesson := quizLesson("module-1-lesson-1", 1)
	lesson.Content.Slides[1].CorrectAnswer = intPtr(3)

	if _, err := Build([]model.Lesson{lesson}); err == nil {
		t.Fatal("expected correctAnswer range error, got nil")
	}
}

func TestBuildRejectsDanglingPrerequisite(t *testing.T) {
	lesson := quizLesson("module-1-lesson-1", 1)
	lesson.Tasks = append(lesson.Tasks, model.Task{
		ID:   "task-2",
		Type: "final-assessment",
		Content: model.TaskContent{
			PrerequisiteTask: "no-such-task",
			PassingScore:     intPtr(80),
			Questions: []model.AssessmentQuestion{
				{ID: "q1", Question: "?", Options: []string{"a", "b"}, CorrectAnswer: 0},
			},
		},
	})

	if _, err := Build([]model.Lesson{lesson}); err == nil {
		t.Fatal("expected prerequisite validation error, got nil")
	}
}

func TestBuildRejectsAssessmentWithoutPassingScore(t *testing.T) {
	lesson := quizLesson("module-1-lesson-1", 1)
	lesson.Tasks = append(lesson.Tasks, model.Task{
		ID:   "task-2",
		Type: "final-assessment",
		Content: model.TaskContent{
			Questions: []model.AssessmentQuestion{
				{ID: "q1", Question: "?", Options: []string{"a", "b"}, CorrectAnswer: 0},
			},
		},
	})

	if _, err := Build([]model.Lesson{lesson}); err == nil {
		t.Fatal("expected passingScore validation error, got nil")
	}
}

func TestGetReturnsNilForUnknownKey(t *testing.T) {
	r, err := Build([]model.Lesson{quizLesson("module-1-lesson-1", 1)})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	if got := r.Get("module-9-lesson-9"); got != nil {
		t.Errorf("expected nil for unknown key, got %+v", got)
	}
}

func TestGetIsDeterministic(t *testing.T) {
	r, err := Build([]model.Lesson{quizLesson("module-1-lesson-1", 1)})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	first := r.Get("module-1-lesson-1")
	second := r.Get("module-1-lesson-1")
	if !reflect.DeepEqual(first, second) {
		t.Error("repeated lookups returned different results")
	}
}

func TestGetAnnotatesIDWithRequestedKey(t *testing.T) {
	lesson := quizLesson("module-1-lesson-10", 10)
	// Authored payloads may carry an internal id different from the
	// registry key; the key the caller asked for must win.
	r, err := Build([]model.Lesson{lesson})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	got := r.Get("module-1-lesson-10")
	if got == nil {
		t.Fatal("lesson not found")
	}
	if got.ID != "module-1-lesson-10" {
		t.Errorf("ID = %q, want requested key", got.ID)
	}
}

func TestGetReturnsCopy(t *testing.T) {
	r, err := Build([]model.Lesson{quizLesson("module-1-lesson-1", 1)})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	first := r.Get("module-1-lesson-1")
	first.Title = "mutated"

	second := r.Get("module-1-lesson-1")
	if second.Title == "mutated" {
		t.Error("mutation of a returned lesson leaked into the registry")
	}
}

func TestByModuleFiltersAndSortsByOrder(t *testing.T) {
	module2 := quizLesson("module-2-lesson-1", 1)
	module2.ModuleID = "module-2"

	// Registered out of declared order on purpose.
	r, err := Build([]model.Lesson{
		quizLesson("module-1-lesson-3", 3),
		quizLesson("module-1-lesson-1", 1),
		module2,
		quizLesson("module-1-lesson-2", 2),
	})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	lessons := r.ByModule("module-1")
	if len(lessons) != 3 {
		t.Fatalf("got %d lessons, want 3", len(lessons))
	}
	for i, lesson := range lessons {
		if lesson.Order != i+1 {
			t.Errorf("lessons[%d].Order = %d, want %d", i, lesson.Order, i+1)
		}
		if got, want := lesson.ID, "module-1-lesson-"; len(got) < len(want) || got[:len(want)] != want {
			t.Errorf("lessons[%d].ID = %q, want prefix %q", i, got, want)
		}
	}
}

func TestIDsPreservesRegistrationOrder(t *testing.T) {
	r, err := Build([]model.Lesson{
		quizLesson("module-1-lesson-2", 2),
		quizLesson("module-1-lesson-1", 1),
	})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	want := []string{"module-1-lesson-2", "module-1-lesson-1"}
	if got := r.IDs(); !reflect.DeepEqual(got, want) {
		t.Errorf("IDs() = %v, want %v", got, want)
	}
}
