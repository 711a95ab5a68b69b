package repositories

import (
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/pulseprimer/ecg_api/model"
)

type LessonRepository struct {
	BaseRepository
}

func NewLessonRepository(db *gorm.DB) *LessonRepository {
	return &LessonRepository{
		BaseRepository: NewBaseRepository(db),
	}
}

func (ds *LessonRepository) GetLesson(id string) (*model.LessonRecord, error) {
	var record model.LessonRecord
	if err := ds.db.Where("id = ?", id).First(&record).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

// LoadAll returns the full corpus ordered by module then position, the
// order the registry expects to ingest it in.
func (ds *LessonRepository) LoadAll() ([]model.LessonRecord, error) {
	var records []model.LessonRecord
	if err := ds.db.Order("module_id, \"order\"").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (ds *LessonRepository) Upsert(record *model.LessonRecord) error {
	record.UpdatedAt = time.Now()
	if record.CreatedAt.IsZero() {
		record.CreatedAt = record.UpdatedAt
	}

	return ds.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(record).Error
}

func (ds *LessonRepository) Count() (int64, error) {
	var count int64
	if err := ds.db.Model(&model.LessonRecord{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (ds *LessonRepository) Delete(id string) error {
	return ds.db.Where("id = ?", id).Delete(&model.LessonRecord{}).Error
}
