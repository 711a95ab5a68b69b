// Package content ships the authored lesson corpus with the binary.
// The JSON files under lessons/ are the product of the content team;
// this package only enumerates and decodes them.
package content

import (
	"embed"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/pulseprimer/ecg_api/model"
)

//go:embed lessons/*.json
var lessonFS embed.FS

// Load decodes every embedded lesson, ordered by file name so the
// registry sees a deterministic corpus on every start.
func Load() ([]model.Lesson, error) {
	entries, err := lessonFS.ReadDir("lessons")
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded lessons: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	lessons := make([]model.Lesson, 0, len(names))
	for _, name := range names {
		data, err := lessonFS.ReadFile("lessons/" + name)
		if err != nil {
			return nil, fmt.Errorf("failed to read lesson %s: %w", name, err)
		}

		var lesson model.Lesson
		if err := json.Unmarshal(data, &lesson); err != nil {
			return nil, fmt.Errorf("failed to parse lesson %s: %w", name, err)
		}
		lessons = append(lessons, lesson)
	}

	return lessons, nil
}
