package seeders

import (
	"log"

	"gorm.io/gorm"

	"github.com/pulseprimer/ecg_api/model"
)

// MainSeeder coordinates all seeding operations
type MainSeeder struct {
	db *gorm.DB
}

// NewMainSeeder creates a new main seeder
func NewMainSeeder(db *gorm.DB) *MainSeeder {
	return &MainSeeder{db: db}
}

// SeedAll migrates the schema and runs all seeders
func (s *MainSeeder) SeedAll(force bool) error {
	log.Println("Starting content store seeding...")

	if err := s.db.AutoMigrate(&model.LessonRecord{}); err != nil {
		log.Printf("Schema migration failed: %v", err)
		return err
	}

	lessonSeeder := NewLessonSeeder(s.db)
	if err := lessonSeeder.SeedLessons(force); err != nil {
		log.Printf("Lesson seeding failed: %v", err)
		return err
	}

	log.Println("Content store seeding completed successfully!")
	return nil
}
