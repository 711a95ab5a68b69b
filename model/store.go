// model/store.go
package model

import (
	"encoding/json"
	"time"
)

// LessonRecord is the content-store row for an authored lesson. Payload
// holds the full Lesson JSON; the remaining columns exist for listing
// and ordering without deserializing the whole unit.
type LessonRecord struct {
	ID        string          `json:"id" gorm:"primaryKey"`
	ModuleID  string          `json:"module_id" gorm:"not null;index"`
	Order     int             `json:"order" gorm:"not null"`
	Title     string          `json:"title" gorm:"not null"`
	Payload   json.RawMessage `json:"payload" gorm:"type:text;not null"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}
