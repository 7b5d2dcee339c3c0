package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shenikar/community_incident_service/internal/models"
	"github.com/sirupsen/logrus"
)

// PushTokenRepository определяет контракт для работы с бд push-токенов
type PushTokenRepository interface {
	Upsert(ctx context.Context, token *models.PushToken) error
	Delete(ctx context.Context, token string) error
	ListAll(ctx context.Context) ([]string, error)
}

// NotificationService определяет контракт жизненного цикла push-токенов
type NotificationService interface {
	RegisterToken(ctx context.Context, token string, userID *uuid.UUID) (*models.PushToken, error)
	UnregisterToken(ctx context.Context, token string) error
}

type notificationService struct {
	repo   PushTokenRepository
	logger *logrus.Logger
}

func NewNotificationService(repo PushTokenRepository, logger *logrus.Logger) NotificationService {
	return &notificationService{
		repo:   repo,
		logger: logger,
	}
}

// RegisterToken сохраняет токен подписки. Операция идемпотентна:
// повторная регистрация того же токена просто освежает запись.
func (s *notificationService) RegisterToken(ctx context.Context, token string, userID *uuid.UUID) (*models.PushToken, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "notification",
		"method":  "RegisterToken",
	})
	log.Info("Registering push token")

	record := &models.PushToken{
		Token:  token,
		UserID: userID,
	}
	if err := s.repo.Upsert(ctx, record); err != nil {
		log.WithError(err).Error("Failed to upsert push token in repository")
		return nil, fmt.Errorf("service: could not register push token: %w", err)
	}

	log.Info("Push token registered successfully")
	return record, nil
}

// UnregisterToken удаляет запись токена по ключу. Подписка на стороне
// платформы при этом не отзывается - это осознанная "заглушка" рассылки,
// а не полный отзыв.
func (s *notificationService) UnregisterToken(ctx context.Context, token string) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "notification",
		"method":  "UnregisterToken",
	})
	log.Info("Unregistering push token")

	if err := s.repo.Delete(ctx, token); err != nil {
		log.WithError(err).Warn("Failed to delete push token in repository")
		return fmt.Errorf("service: could not unregister push token: %w", err)
	}

	log.Info("Push token unregistered successfully")
	return nil
}
