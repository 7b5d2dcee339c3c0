package models

import (
	"time"

	"github.com/google/uuid"
)

// Статусы жизненного цикла обращения
const (
	IncidentStatusPending  = "pending"
	IncidentStatusResolved = "resolved"
)

// Incident представляет обращение жителя: тип, описание, место и
// необязательные координаты/фото
type Incident struct {
	ID          uuid.UUID  `json:"id"`
	TypeCode    string     `json:"type_code"`
	Description string     `json:"description"`
	Location    string     `json:"location"`
	Contact     string     `json:"contact,omitempty"`
	ImageURL    string     `json:"image_url"`
	Latitude    *float64   `json:"latitude,omitempty"`
	Longitude   *float64   `json:"longitude,omitempty"`
	Status      string     `json:"status"`
	ReporterID  *uuid.UUID `json:"reporter_id,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}
