package models

import (
	"time"

	"github.com/google/uuid"
)

// Роли пользователей
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User представляет учетную запись пользователя.
// Роль назначается только на стороне сервера, через API она не меняется.
type User struct {
	ID           uuid.UUID  `json:"id"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	DisplayName  string     `json:"display_name"`
	Contact      string     `json:"contact,omitempty"`
	PhotoURL     string     `json:"photo_url,omitempty"`
	Role         string     `json:"role"`
	LastSeenAt   *time.Time `json:"last_seen_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}
