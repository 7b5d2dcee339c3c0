package v1

import (
	"time"

	"github.com/google/uuid"
)

// CreateIncidentRequest DTO для подачи обращения
// @Description DTO для подачи обращения
type CreateIncidentRequest struct {
	TypeCode    string   `json:"type_code" validate:"required,min=2,max=64"`
	Description string   `json:"description" validate:"required,min=2"`
	Location    string   `json:"location,omitempty" validate:"max=500"`
	Contact     string   `json:"contact,omitempty" validate:"max=255"`
	Latitude    *float64 `json:"latitude,omitempty" validate:"omitempty,latitude"`
	Longitude   *float64 `json:"longitude,omitempty" validate:"omitempty,longitude"`
}

// IncidentResponse DTO для ответа с информацией об обращении
// @Description DTO для ответа с информацией об обращении
type IncidentResponse struct {
	ID          uuid.UUID `json:"id"`
	TypeCode    string    `json:"type_code"`
	Description string    `json:"description"`
	Location    string    `json:"location,omitempty"`
	Contact     string    `json:"contact,omitempty"`
	ImageURL    string    `json:"image_url"`
	Latitude    *float64  `json:"latitude,omitempty"`
	Longitude   *float64  `json:"longitude,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

// RegisterRequest DTO для регистрации пользователя
// @Description DTO для регистрации пользователя
type RegisterRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=6,max=72"`
	DisplayName string `json:"display_name" validate:"required,min=2,max=255"`
}

// LoginRequest DTO для входа
// @Description DTO для входа
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse DTO с выданным токеном и профилем
// @Description DTO с выданным токеном и профилем
type LoginResponse struct {
	Token string        `json:"token"`
	User  *UserResponse `json:"user"`
}

// UserResponse DTO для ответа с профилем пользователя
// @Description DTO для ответа с профилем пользователя
type UserResponse struct {
	ID          uuid.UUID  `json:"id"`
	Email       string     `json:"email"`
	DisplayName string     `json:"display_name"`
	Contact     string     `json:"contact,omitempty"`
	PhotoURL    string     `json:"photo_url,omitempty"`
	Role        string     `json:"role"`
	Online      bool       `json:"online"`
	LastSeenAt  *time.Time `json:"last_seen_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// UpdateProfileRequest DTO для обновления профиля
// @Description DTO для обновления профиля
type UpdateProfileRequest struct {
	DisplayName string `json:"display_name" validate:"required,min=2,max=255"`
	Contact     string `json:"contact,omitempty" validate:"max=255"`
	PhotoURL    string `json:"photo_url,omitempty" validate:"omitempty,max=2048"`
}

// RegisterTokenRequest DTO для регистрации push-токена
// @Description DTO для регистрации push-токена
type RegisterTokenRequest struct {
	Token string `json:"token" validate:"required,min=8,max=4096"`
}

// PushTokenResponse DTO для ответа с зарегистрированным токеном
// @Description DTO для ответа с зарегистрированным токеном
type PushTokenResponse struct {
	Token     string    `json:"token"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateIncidentTypeRequest DTO для добавления типа обращения
// @Description DTO для добавления типа обращения
type CreateIncidentTypeRequest struct {
	Code  string `json:"code" validate:"required,min=2,max=64"`
	Label string `json:"label" validate:"required,min=1,max=255"`
}

// IncidentTypeResponse DTO для элемента справочника типов
// @Description DTO для элемента справочника типов
type IncidentTypeResponse struct {
	ID        uuid.UUID `json:"id"`
	Code      string    `json:"code"`
	Label     string    `json:"label"`
	CreatedAt time.Time `json:"created_at"`
}
