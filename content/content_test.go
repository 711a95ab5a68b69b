package content

import (
	"testing"

	"github.com/pulseprimer/ecg_api/registry"
	"github.com/pulseprimer/ecg_api/shared"
)

func TestLoadCorpus(t *testing.T) {
	lessons, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if len(lessons) == 0 {
		t.Fatal("embedded corpus is empty")
	}

	for _, lesson := range lessons {
		if !registry.ValidKey(lesson.ID) {
			t.Errorf("lesson %q has a malformed id", lesson.ID)
		}
		if len(lesson.Content.Slides) == 0 {
			t.Errorf("lesson %q has no slides", lesson.ID)
		}
		if len(lesson.Tasks) == 0 {
			t.Errorf("lesson %q has no tasks", lesson.ID)
		}
	}
}

func TestCorpusBuildsRegistry(t *testing.T) {
	lessons, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	reg, err := registry.Build(lessons)
	if err != nil {
		t.Fatalf("corpus failed registry validation: %v", err)
	}
	if reg.Len() != len(lessons) {
		t.Fatalf("registry holds %d lessons, corpus has %d", reg.Len(), len(lessons))
	}
}

func TestCorpusLoadIsDeterministic(t *testing.T) {
	first, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	second, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if len(first) != len(second) {
		t.Fatalf("lesson count changed between loads: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].ID != second[i].ID {
			t.Errorf("lesson order changed at %d: %q vs %q", i, first[i].ID, second[i].ID)
		}
	}
}

func TestCorpusExercisesAssessments(t *testing.T) {
	lessons, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	var finals, gated int
	for _, lesson := range lessons {
		for _, task := range lesson.Tasks {
			if task.Type != shared.TaskTypeFinalAssessment {
				continue
			}
			finals++
			if task.Content.PassingScore == nil {
				t.Errorf("final assessment %s/%s has no passing score", lesson.ID, task.ID)
			}
			if task.Content.PrerequisiteTask != "" {
				gated++
			}
		}
	}
	if finals == 0 {
		t.Error("corpus carries no final assessments")
	}
	if gated == 0 {
		t.Error("corpus carries no prerequisite-gated assessment")
	}
}
