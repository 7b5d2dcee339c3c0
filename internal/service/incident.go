package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/community_incident_service/internal/config"
	"github.com/shenikar/community_incident_service/internal/models"
	"github.com/shenikar/community_incident_service/internal/notify"
	"github.com/sirupsen/logrus"
)

// IncidentRepository определяет контракт для работы с бд обращений
type IncidentRepository interface {
	Create(ctx context.Context, incident *models.Incident) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Incident, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListIncidents(ctx context.Context, page, pageSize int) ([]*models.Incident, error)
	ListAllIncidents(ctx context.Context) ([]*models.Incident, error)
	GetIncidentFromCache(ctx context.Context, id uuid.UUID) (*models.Incident, error)
	SetIncidentCache(ctx context.Context, incident *models.Incident) error
	InvalidateIncidentCache(ctx context.Context, id uuid.UUID) error
}

// IncidentService определяет контракт для бизнес-логики управления обращениями
type IncidentService interface {
	CreateIncident(ctx context.Context, incident *models.Incident) error
	GetIncident(ctx context.Context, id uuid.UUID) (*models.Incident, error)
	ListIncidents(ctx context.Context, page, pageSize int) ([]*models.Incident, error)
	ResolveIncident(ctx context.Context, id uuid.UUID) error
	DeleteIncident(ctx context.Context, id uuid.UUID) error
	ReportStats(ctx context.Context, windowDays int) (*StatsReport, error)
}

type incidentService struct {
	repo      IncidentRepository
	typeRepo  IncidentTypeRepository
	logger    *logrus.Logger
	cfg       *config.Config
	publisher notify.Publisher
}

func NewIncidentService(repo IncidentRepository, typeRepo IncidentTypeRepository, logger *logrus.Logger, cfg *config.Config, publisher notify.Publisher) IncidentService {
	return &incidentService{
		repo:      repo,
		typeRepo:  typeRepo,
		logger:    logger,
		cfg:       cfg,
		publisher: publisher,
	}
}

// CreateIncident создает обращение. Статус всегда pending,
// что бы ни пришло от клиента.
func (s *incidentService) CreateIncident(ctx context.Context, incident *models.Incident) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "incident",
		"method":    "CreateIncident",
		"type_code": incident.TypeCode,
	})
	log.Info("Attempting to create a new incident")

	incident.Status = models.IncidentStatusPending
	if err := s.repo.Create(ctx, incident); err != nil {
		log.WithError(err).Error("Failed to create incident in repository")
		return fmt.Errorf("service: could not create incident: %w", err)
	}

	log.WithField("incident_id", incident.ID).Info("Incident created successfully")
	return nil
}

// GetIncident получает обращение по ID, сначала из кеша, потом из бд
func (s *incidentService) GetIncident(ctx context.Context, id uuid.UUID) (*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "GetIncident",
		"incident_id": id,
	})
	log.Info("Fetching incident by ID")

	cached, err := s.repo.GetIncidentFromCache(ctx, id)
	if err != nil {
		// Ошибка кеша не фатальна, идем в бд
		log.WithError(err).Warn("Failed to read incident from cache")
	}
	if cached != nil {
		log.Info("Incident served from cache")
		return cached, nil
	}

	incident, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Error("Failed to get incident in repository")
		return nil, fmt.Errorf("service: could not get incident: %w", err)
	}

	if err := s.repo.SetIncidentCache(ctx, incident); err != nil {
		log.WithError(err).Warn("Failed to cache incident")
	}

	log.Info("Incident fetched successfully")
	return incident, nil
}

// ListIncidents возвращает список обращений с пагинацией
func (s *incidentService) ListIncidents(ctx context.Context, page, pageSize int) ([]*models.Incident, error) {
	if page < 1 {
		page = 1
	}

	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	log := s.logger.WithFields(logrus.Fields{
		"service":   "incident",
		"method":    "ListIncidents",
		"page":      page,
		"page_size": pageSize,
	})
	log.Info("Listing incidents")

	incidents, err := s.repo.ListIncidents(ctx, page, pageSize)
	if err != nil {
		log.WithError(err).Error("Failed to list incidents from repository")
		return nil, fmt.Errorf("service: could not list incidents: %w", err)
	}

	log.WithField("count", len(incidents)).Info("Incidents listed successfully")
	return incidents, nil
}

// ResolveIncident переводит обращение в resolved и ставит событие
// рассылки в очередь. Другие поля записи не меняются.
func (s *incidentService) ResolveIncident(ctx context.Context, id uuid.UUID) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "ResolveIncident",
		"incident_id": id,
	})
	log.Info("Attempting to resolve incident")

	incident, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Attempted to resolve a non-existent incident")
		return fmt.Errorf("service: incident with id %s not found for resolve: %w", id, err)
	}

	if err := s.repo.UpdateStatus(ctx, id, models.IncidentStatusResolved); err != nil {
		log.WithError(err).Error("Failed to resolve incident in repository")
		return fmt.Errorf("service: could not resolve incident: %w", err)
	}

	if err := s.repo.InvalidateIncidentCache(ctx, id); err != nil {
		log.WithError(err).Warn("Failed to invalidate incident cache")
	}

	event := notify.Event{
		IncidentID: incident.ID.String(),
		TypeCode:   incident.TypeCode,
		Title:      "Incident resolved",
		Body:       incident.Description,
		OccurredAt: time.Now().UTC(),
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		// Рассылка не должна откатывать уже выполненный перевод статуса
		log.WithError(err).Error("Failed to enqueue resolved notification")
	}

	log.Info("Incident resolved successfully")
	return nil
}

// DeleteIncident удаляет обращение безвозвратно
func (s *incidentService) DeleteIncident(ctx context.Context, id uuid.UUID) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "DeleteIncident",
		"incident_id": id,
	})
	log.Info("Attempting to delete incident")

	if err := s.repo.Delete(ctx, id); err != nil {
		log.WithError(err).Error("Failed to delete incident in repository")
		return fmt.Errorf("service: could not delete incident: %w", err)
	}

	if err := s.repo.InvalidateIncidentCache(ctx, id); err != nil {
		log.WithError(err).Warn("Failed to invalidate incident cache")
	}

	log.Info("Incident deleted successfully")
	return nil
}

// ReportStats строит отчет по обращениям за окно в днях.
// Отчет каждый раз пересчитывается целиком по выбранному списку.
func (s *incidentService) ReportStats(ctx context.Context, windowDays int) (*StatsReport, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "ReportStats",
		"window_days": windowDays,
	})

	if !IsReportWindow(windowDays) {
		log.Warn("Unsupported stats window requested")
		return nil, fmt.Errorf("service: window of %d days: %w", windowDays, ErrInvalidWindow)
	}

	log.Info("Building incident stats report")

	incidents, err := s.repo.ListAllIncidents(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to list incidents for stats")
		return nil, fmt.Errorf("service: could not build stats: %w", err)
	}

	types, err := s.typeRepo.List(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to list incident types for stats")
		return nil, fmt.Errorf("service: could not build stats: %w", err)
	}

	filtered := FilterByWindow(incidents, windowDays, time.Now())
	buckets := GroupByLabel(filtered, mergeTypeLabels(types))

	report := &StatsReport{
		WindowDays: windowDays,
		Total:      len(filtered),
		Buckets:    buckets,
	}

	log.WithField("total", report.Total).Info("Stats report built successfully")
	return report, nil
}
