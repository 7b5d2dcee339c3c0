package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shenikar/community_incident_service/internal/models"
	"github.com/sirupsen/logrus"
)

// IncidentTypeRepository определяет контракт для справочника типов
type IncidentTypeRepository interface {
	Create(ctx context.Context, incidentType *models.IncidentType) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]*models.IncidentType, error)
}

// IncidentTypeService определяет контракт управления справочником типов
type IncidentTypeService interface {
	CreateType(ctx context.Context, incidentType *models.IncidentType) error
	DeleteType(ctx context.Context, id uuid.UUID) error
	ListTypes(ctx context.Context) ([]*models.IncidentType, error)
}

type incidentTypeService struct {
	repo   IncidentTypeRepository
	logger *logrus.Logger
}

func NewIncidentTypeService(repo IncidentTypeRepository, logger *logrus.Logger) IncidentTypeService {
	return &incidentTypeService{
		repo:   repo,
		logger: logger,
	}
}

// CreateType добавляет тип в справочник
func (s *incidentTypeService) CreateType(ctx context.Context, incidentType *models.IncidentType) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "incident_type",
		"method":  "CreateType",
		"code":    incidentType.Code,
	})
	log.Info("Creating incident type")

	if err := s.repo.Create(ctx, incidentType); err != nil {
		log.WithError(err).Error("Failed to create incident type in repository")
		return fmt.Errorf("service: could not create incident type: %w", err)
	}

	log.WithField("type_id", incidentType.ID).Info("Incident type created successfully")
	return nil
}

// DeleteType удаляет тип. Существующие обращения с этим кодом не трогаются.
func (s *incidentTypeService) DeleteType(ctx context.Context, id uuid.UUID) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "incident_type",
		"method":  "DeleteType",
		"type_id": id,
	})
	log.Info("Deleting incident type")

	if err := s.repo.Delete(ctx, id); err != nil {
		log.WithError(err).Error("Failed to delete incident type in repository")
		return fmt.Errorf("service: could not delete incident type: %w", err)
	}

	log.Info("Incident type deleted successfully")
	return nil
}

// ListTypes возвращает справочник для селектора типов
func (s *incidentTypeService) ListTypes(ctx context.Context) ([]*models.IncidentType, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "incident_type",
		"method":  "ListTypes",
	})

	types, err := s.repo.List(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to list incident types from repository")
		return nil, fmt.Errorf("service: could not list incident types: %w", err)
	}
	return types, nil
}
