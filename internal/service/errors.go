package service

import "errors"

// Сентинельные ошибки слоя сервисов. Репозитории заворачивают их в свои
// ошибки, хэндлеры различают через errors.Is при выборе HTTP-статуса.
var (
	ErrNotFound           = errors.New("not found")
	ErrAlreadyExists      = errors.New("already exists")
	ErrEmailTaken         = errors.New("email already in use")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidWindow      = errors.New("unsupported stats window")
)
