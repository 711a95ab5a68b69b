// seeders/lesson_seeder.go
package seeders

import (
	"encoding/json"
	"fmt"
	"log"

	"gorm.io/gorm"

	"github.com/pulseprimer/ecg_api/content"
	"github.com/pulseprimer/ecg_api/model"
	"github.com/pulseprimer/ecg_api/registry"
)

// LessonSeeder writes the embedded lesson corpus into the content store
type LessonSeeder struct {
	db *gorm.DB
}

// NewLessonSeeder creates a new lesson seeder
func NewLessonSeeder(db *gorm.DB) *LessonSeeder {
	return &LessonSeeder{db: db}
}

// SeedLessons validates the embedded corpus and inserts it. Existing
// lessons are skipped unless force is set.
func (s *LessonSeeder) SeedLessons(force bool) error {
	lessons, err := content.Load()
	if err != nil {
		return fmt.Errorf("failed to load embedded corpus: %w", err)
	}

	// Refuse to seed a corpus the server would reject at startup.
	if _, err := registry.Build(lessons); err != nil {
		return fmt.Errorf("corpus failed validation: %w", err)
	}

	for _, lesson := range lessons {
		payload, err := json.Marshal(lesson)
		if err != nil {
			return fmt.Errorf("failed to encode lesson %s: %w", lesson.ID, err)
		}

		record := model.LessonRecord{
			ID:        lesson.ID,
			ModuleID:  lesson.ModuleID,
			Order:     lesson.Order,
			Title:     lesson.Title,
			Payload:   payload,
			CreatedAt: lesson.CreatedAt,
			UpdatedAt: lesson.UpdatedAt,
		}

		var existing model.LessonRecord
		err = s.db.Where("id = ?", record.ID).First(&existing).Error
		switch {
		case err == gorm.ErrRecordNotFound:
			if err := s.db.Create(&record).Error; err != nil {
				log.Printf("Error creating lesson %s: %v", record.ID, err)
				return err
			}
			log.Printf("Created lesson: %s (%s)", record.ID, record.Title)
		case err != nil:
			log.Printf("Error checking lesson %s: %v", record.ID, err)
			return err
		case force:
			if err := s.db.Save(&record).Error; err != nil {
				log.Printf("Error updating lesson %s: %v", record.ID, err)
				return err
			}
			log.Printf("Updated lesson: %s (%s)", record.ID, record.Title)
		default:
			log.Printf("Lesson %s already exists, skipping", record.ID)
		}
	}

	log.Println("Lesson seeding completed successfully")
	return nil
}
