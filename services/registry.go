package services

import (
	"encoding/json"
	"fmt"

	"github.com/alphabatem/common/context"
	log "github.com/sirupsen/logrus"

	"github.com/pulseprimer/ecg_api/content"
	"github.com/pulseprimer/ecg_api/model"
	"github.com/pulseprimer/ecg_api/registry"
	"github.com/pulseprimer/ecg_api/services/repositories"
)

// RegistryService builds the immutable lesson registry at startup.
// The corpus comes from the content store when it has been seeded;
// otherwise the embedded corpus is loaded and written through so the
// next start finds it in the store. A corpus that fails validation
// aborts startup rather than serving a partial catalog.
type RegistryService struct {
	context.DefaultService

	storeSvc *ContentStoreService

	lessonRepo *repositories.LessonRepository
	registry   *registry.Registry
}

const REGISTRY_SVC = "registry_svc"

func (svc RegistryService) Id() string {
	return REGISTRY_SVC
}

func (svc *RegistryService) Configure(ctx *context.Context) error {
	return svc.DefaultService.Configure(ctx)
}

func (svc *RegistryService) Start() error {
	svc.storeSvc = svc.Service(STORE_SVC).(*ContentStoreService)
	svc.lessonRepo = repositories.NewLessonRepository(svc.storeSvc.Db())

	lessons, err := svc.loadCorpus()
	if err != nil {
		return err
	}

	reg, err := registry.Build(lessons)
	if err != nil {
		return fmt.Errorf("lesson corpus rejected: %w", err)
	}

	svc.registry = reg
	log.WithFields(log.Fields{"lessons": reg.Len()}).Info("Lesson registry built")
	return nil
}

// Registry returns the built lesson registry. Nil before Start.
func (svc *RegistryService) Registry() *registry.Registry {
	return svc.registry
}

func (svc *RegistryService) loadCorpus() ([]model.Lesson, error) {
	records, err := svc.lessonRepo.LoadAll()
	if err != nil {
		return nil, svc.storeSvc.HandleError(err)
	}

	if len(records) == 0 {
		return svc.seedFromEmbedded()
	}

	lessons := make([]model.Lesson, 0, len(records))
	for _, record := range records {
		var lesson model.Lesson
		if err := json.Unmarshal(record.Payload, &lesson); err != nil {
			return nil, fmt.Errorf("corrupt lesson payload %s: %w", record.ID, err)
		}
		lessons = append(lessons, lesson)
	}
	return lessons, nil
}

func (svc *RegistryService) seedFromEmbedded() ([]model.Lesson, error) {
	lessons, err := content.Load()
	if err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{"lessons": len(lessons)}).Info("Content store empty, seeding embedded corpus")

	for i := range lessons {
		payload, err := json.Marshal(lessons[i])
		if err != nil {
			return nil, err
		}

		record := model.LessonRecord{
			ID:        lessons[i].ID,
			ModuleID:  lessons[i].ModuleID,
			Order:     lessons[i].Order,
			Title:     lessons[i].Title,
			Payload:   payload,
			CreatedAt: lessons[i].CreatedAt,
			UpdatedAt: lessons[i].UpdatedAt,
		}
		if err := svc.lessonRepo.Upsert(&record); err != nil {
			// Serve from the embedded corpus even if write-through fails.
			log.WithError(err).Warnf("Failed to persist lesson %s", lessons[i].ID)
		}
	}

	return lessons, nil
}
