package models

import (
	"time"

	"github.com/google/uuid"
)

// PushToken - зарегистрированный токен браузерной push-подписки.
// Ключом служит сама строка токена. Политики истечения нет:
// устаревшие токены живут, пока их явно не удалят.
type PushToken struct {
	Token     string     `json:"token"`
	UserID    *uuid.UUID `json:"user_id,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}
