package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/community_incident_service/internal/config"
	"github.com/shenikar/community_incident_service/internal/models"
	"github.com/sirupsen/logrus"
)

// PresenceService определяет контракт отметок активности.
// Клиент шлет heartbeat при входе и затем каждые 180 секунд,
// онлайн выводится из давности последней отметки.
type PresenceService interface {
	Heartbeat(ctx context.Context, userID uuid.UUID) error
	IsOnline(ctx context.Context, user *models.User) bool
	IsOnlineByID(ctx context.Context, userID uuid.UUID) (bool, error)
}

type presenceService struct {
	repo   UserRepository
	logger *logrus.Logger
	cfg    *config.Config
}

func NewPresenceService(repo UserRepository, logger *logrus.Logger, cfg *config.Config) PresenceService {
	return &presenceService{
		repo:   repo,
		logger: logger,
		cfg:    cfg,
	}
}

// Heartbeat пишет отметку последней активности
func (s *presenceService) Heartbeat(ctx context.Context, userID uuid.UUID) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "presence",
		"method":  "Heartbeat",
		"user_id": userID,
	})

	if err := s.repo.TouchLastSeen(ctx, userID, s.cfg.PresenceThreshold); err != nil {
		log.WithError(err).Error("Failed to touch last seen")
		return fmt.Errorf("service: could not record heartbeat: %w", err)
	}

	log.Debug("Heartbeat recorded")
	return nil
}

// IsOnline - чистая производная от давности отметки. После обрыва без
// явного выхода пользователь читается как онлайн до истечения порога.
func (s *presenceService) IsOnline(_ context.Context, user *models.User) bool {
	if user == nil || user.LastSeenAt == nil {
		return false
	}
	return time.Since(*user.LastSeenAt) < s.cfg.PresenceThreshold
}

// IsOnlineByID проверяет presence-ключ в Redis
func (s *presenceService) IsOnlineByID(ctx context.Context, userID uuid.UUID) (bool, error) {
	online, err := s.repo.IsOnline(ctx, userID)
	if err != nil {
		return false, fmt.Errorf("service: could not check presence: %w", err)
	}
	return online, nil
}
