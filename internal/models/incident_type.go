package models

import (
	"time"

	"github.com/google/uuid"
)

// IncidentType - элемент справочника типов обращений.
// Целостность со старыми обращениями не поддерживается: удаление типа
// не трогает записи, которые на него ссылаются.
type IncidentType struct {
	ID        uuid.UUID `json:"id"`
	Code      string    `json:"code"`
	Label     string    `json:"label"`
	CreatedAt time.Time `json:"created_at"`
}
