// Package registry holds the immutable in-memory lesson index. It is
// built once at startup and is safe for unlimited concurrent readers.
package registry

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/pulseprimer/ecg_api/model"
	"github.com/pulseprimer/ecg_api/shared"
)

// Lesson keys follow module-{N}-lesson-{M}: both positive integers,
// no zero padding. This is the sole external addressing scheme.
var lessonKeyPattern = regexp.MustCompile(`^module-[1-9][0-9]*-lesson-[1-9][0-9]*$`)

type Registry struct {
	lessons map[string]model.Lesson
	keys    []string // insertion order
}

// ValidKey reports whether id is a well-formed lesson key.
func ValidKey(id string) bool {
	return lessonKeyPattern.MatchString(id)
}

// Build validates and indexes the authored corpus. Content defects
// (duplicate keys, out-of-range answers, dangling prerequisites,
// missing passing scores) fail the build loudly; a registry is never
// constructed from a half-valid corpus.
func Build(lessons []model.Lesson) (*Registry, error) {
	r := &Registry{
		lessons: make(map[string]model.Lesson, len(lessons)),
		keys:    make([]string, 0, len(lessons)),
	}

	for _, lesson := range lessons {
		if !ValidKey(lesson.ID) {
			return nil, fmt.Errorf("lesson key %q does not match module-{N}-lesson-{M}", lesson.ID)
		}
		if _, exists := r.lessons[lesson.ID]; exists {
			return nil, fmt.Errorf("duplicate lesson key %q", lesson.ID)
		}
		if err := validateLesson(lesson); err != nil {
			return nil, fmt.Errorf("lesson %s: %w", lesson.ID, err)
		}

		r.lessons[lesson.ID] = lesson
		r.keys = append(r.keys, lesson.ID)
	}

	return r, nil
}

// Get returns a copy of the lesson for id with the ID field set to the
// requested key, or nil when absent. Absence is an expected outcome,
// never an error.
func (r *Registry) Get(id string) *model.Lesson {
	lesson, ok := r.lessons[id]
	if !ok {
		return nil
	}

	lesson.ID = id
	return &lesson
}

// ByModule returns the module's lessons sorted by their declared order
// field. Author-declared order wins over registration order so map
// iteration semantics can never reorder a module.
func (r *Registry) ByModule(moduleID string) []model.Lesson {
	prefix := moduleID + "-lesson-"

	var lessons []model.Lesson
	for _, key := range r.keys {
		if !strings.HasPrefix(key, prefix) {
			continue
		}
		lesson := r.lessons[key]
		lesson.ID = key
		lessons = append(lessons, lesson)
	}

	sort.SliceStable(lessons, func(i, j int) bool {
		return lessons[i].Order < lessons[j].Order
	})

	return lessons
}

// IDs returns all registered lesson keys in registration order.
func (r *Registry) IDs() []string {
	ids := make([]string, len(r.keys))
	copy(ids, r.keys)
	return ids
}

func (r *Registry) Len() int {
	return len(r.keys)
}

func validateLesson(lesson model.Lesson) error {
	for _, slide := range lesson.Content.Slides {
		if err := validateSlide(slide); err != nil {
			return err
		}
	}

	taskIDs := make(map[string]bool, len(lesson.Tasks))
	for _, task := range lesson.Tasks {
		taskIDs[task.ID] = true
	}

	for _, task := range lesson.Tasks {
		if err := validateTask(task, taskIDs); err != nil {
			return fmt.Errorf("task %s: %w", task.ID, err)
		}
	}

	return nil
}

func validateSlide(slide model.Slide) error {
	switch slide.Type {
	case shared.SlideTypeQuiz, shared.SlideTypeQuestion:
		if slide.CorrectAnswer == nil {
			return fmt.Errorf("slide %s: quiz slide without correctAnswer", slide.ID)
		}
		if *slide.CorrectAnswer < 0 || *slide.CorrectAnswer >= len(slide.Options) {
			return fmt.Errorf("slide %s: correctAnswer %d out of range for %d options",
				slide.ID, *slide.CorrectAnswer, len(slide.Options))
		}
	}
	return nil
}

func validateTask(task model.Task, taskIDs map[string]bool) error {
	content := task.Content

	if content.PrerequisiteTask != "" && !taskIDs[content.PrerequisiteTask] {
		return fmt.Errorf("prerequisite task %q not found in lesson", content.PrerequisiteTask)
	}

	switch task.Type {
	case shared.TaskTypeQuiz, shared.TaskTypeCaseStudy:
		if content.CorrectAnswer == nil {
			return fmt.Errorf("%s task without correctAnswer", task.Type)
		}
		if *content.CorrectAnswer < 0 || *content.CorrectAnswer >= len(content.Options) {
			return fmt.Errorf("correctAnswer %d out of range for %d options",
				*content.CorrectAnswer, len(content.Options))
		}

	case shared.TaskTypeVideo:
		if content.VideoURL == "" {
			return fmt.Errorf("video task without videoUrl")
		}
		if content.VideoDuration <= 0 {
			return fmt.Errorf("video task without a positive videoDuration")
		}

	case shared.TaskTypeFinalAssessment:
		if len(content.Questions) == 0 {
			return fmt.Errorf("final assessment without questions")
		}
		if content.PassingScore == nil {
			return fmt.Errorf("final assessment without passingScore")
		}
		if *content.PassingScore <= 0 || *content.PassingScore > 100 {
			return fmt.Errorf("passingScore %d outside (0,100]", *content.PassingScore)
		}
		for _, q := range content.Questions {
			if q.CorrectAnswer < 0 || q.CorrectAnswer >= len(q.Options) {
				return fmt.Errorf("question %s: correctAnswer %d out of range for %d options",
					q.ID, q.CorrectAnswer, len(q.Options))
			}
		}
	}

	return nil
}
