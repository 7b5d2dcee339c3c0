package service_test

import (
	"bytes"
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/community_incident_service/internal/config"
	"github.com/shenikar/community_incident_service/internal/models"
	"github.com/shenikar/community_incident_service/internal/notify"
	notify_mocks "github.com/shenikar/community_incident_service/internal/notify/mocks"
	. "github.com/shenikar/community_incident_service/internal/service"
	"github.com/shenikar/community_incident_service/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestIncidentService — вспомогательная функция для создания инстанса сервиса с моками.
func newTestIncidentService(t *testing.T) (IncidentService, *mocks.MockIncidentRepository, *mocks.MockIncidentTypeRepository, *notify_mocks.MockPublisher) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockIncidentRepository(ctrl)
	typeRepoMock := mocks.NewMockIncidentTypeRepository(ctrl)
	publisherMock := notify_mocks.NewMockPublisher(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{}

	service := NewIncidentService(repoMock, typeRepoMock, logger, cfg, publisherMock)
	return service, repoMock, typeRepoMock, publisherMock
}

func TestCreateIncident_Success(t *testing.T) {
	// Подготовка
	service, repoMock, _, _ := newTestIncidentService(t)
	ctx := context.Background()
	incidentToCreate := &models.Incident{
		TypeCode:    "fire",
		Description: "Пожар в мусорном баке",
	}

	// Ожидания
	repoMock.EXPECT().
		Create(ctx, gomock.Any()).
		DoAndReturn(func(ctx context.Context, inc *models.Incident) error {
			// Симулируем, что БД присвоила ID и отметку времени
			inc.ID = uuid.New()
			inc.CreatedAt = time.Now()
			return nil
		}).Times(1)

	// Действие
	err := service.CreateIncident(ctx, incidentToCreate)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, models.IncidentStatusPending, incidentToCreate.Status)
	assert.NotEqual(t, uuid.Nil, incidentToCreate.ID)
}

func TestCreateIncident_StatusAlwaysPending(t *testing.T) {
	// Подготовка
	service, repoMock, _, _ := newTestIncidentService(t)
	ctx := context.Background()
	// Клиент пытается подать обращение сразу со статусом resolved
	incidentToCreate := &models.Incident{
		TypeCode:    "flood",
		Description: "Затопило подвал",
		Status:      models.IncidentStatusResolved,
	}

	// Ожидания
	repoMock.EXPECT().
		Create(ctx, gomock.Any()).
		Do(func(ctx context.Context, inc *models.Incident) {
			// В репозиторий запись уходит уже со статусом pending
			assert.Equal(t, models.IncidentStatusPending, inc.Status)
		}).Return(nil).Times(1)

	// Действие
	err := service.CreateIncident(ctx, incidentToCreate)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, models.IncidentStatusPending, incidentToCreate.Status)
}

func TestGetIncident_Success_FromCache(t *testing.T) {
	// Подготовка
	service, repoMock, _, _ := newTestIncidentService(t)
	ctx := context.Background()
	incidentID := uuid.New()
	expectedIncident := &models.Incident{
		ID:          incidentID,
		Description: "Обращение из кеша",
	}

	// Ожидания
	repoMock.EXPECT().
		GetIncidentFromCache(ctx, incidentID).
		Return(expectedIncident, nil).
		Times(1)

	// Действие
	incident, err := service.GetIncident(ctx, incidentID)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, expectedIncident, incident)
}

func TestGetIncident_Success_FromDB(t *testing.T) {
	// Подготовка
	service, repoMock, _, _ := newTestIncidentService(t)
	ctx := context.Background()
	incidentID := uuid.New()
	expectedIncident := &models.Incident{
		ID:          incidentID,
		Description: "Обращение из БД",
	}

	// Ожидания
	// 1. Промах кеша
	repoMock.EXPECT().
		GetIncidentFromCache(ctx, incidentID).
		Return(nil, nil).
		Times(1)

	// 2. Попадание в БД
	repoMock.EXPECT().
		GetByID(ctx, incidentID).
		Return(expectedIncident, nil).
		Times(1)

	// 3. Запись в кеш
	repoMock.EXPECT().
		SetIncidentCache(ctx, expectedIncident).
		Return(nil).
		Times(1)

	// Действие
	incident, err := service.GetIncident(ctx, incidentID)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, expectedIncident, incident)
}

func TestGetIncident_NotFound(t *testing.T) {
	// Подготовка
	service, repoMock, _, _ := newTestIncidentService(t)
	ctx := context.Background()
	incidentID := uuid.New()

	// Ожидания
	// 1. Промах кеша
	repoMock.EXPECT().
		GetIncidentFromCache(ctx, incidentID).
		Return(nil, nil).
		Times(1)

	// 2. Промах в БД
	repoMock.EXPECT().
		GetByID(ctx, incidentID).
		Return(nil, ErrNotFound).
		Times(1)

	// Действие
	incident, err := service.GetIncident(ctx, incidentID)

	// Проверки
	require.Error(t, err)
	assert.Nil(t, incident)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestResolveIncident_Success(t *testing.T) {
	// Подготовка
	service, repoMock, _, publisherMock := newTestIncidentService(t)
	ctx := context.Background()
	incidentID := uuid.New()
	existingIncident := &models.Incident{
		ID:          incidentID,
		TypeCode:    "fire",
		Description: "Горит гараж",
		Status:      models.IncidentStatusPending,
	}

	// Ожидания
	repoMock.EXPECT().GetByID(ctx, incidentID).Return(existingIncident, nil).Times(1)
	repoMock.EXPECT().UpdateStatus(ctx, incidentID, models.IncidentStatusResolved).Return(nil).Times(1)
	repoMock.EXPECT().InvalidateIncidentCache(ctx, incidentID).Return(nil).Times(1)

	// Событие рассылки несет данные решенного обращения
	publisherMock.EXPECT().
		Publish(ctx, gomock.Any()).
		Do(func(ctx context.Context, event notify.Event) {
			assert.Equal(t, incidentID.String(), event.IncidentID)
			assert.Equal(t, "fire", event.TypeCode)
			assert.Equal(t, "Incident resolved", event.Title)
			assert.Equal(t, "Горит гараж", event.Body)
		}).Return(nil).Times(1)

	// Действие
	err := service.ResolveIncident(ctx, incidentID)

	// Проверки
	require.NoError(t, err)
}

func TestResolveIncident_NotFound(t *testing.T) {
	// Подготовка
	service, repoMock, _, publisherMock := newTestIncidentService(t)
	ctx := context.Background()
	incidentID := uuid.New()

	// Ожидания
	repoMock.EXPECT().GetByID(ctx, incidentID).Return(nil, ErrNotFound).Times(1)
	// Событие рассылки НЕ публикуется
	publisherMock.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)

	// Действие
	err := service.ResolveIncident(ctx, incidentID)

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestResolveIncident_PublishFailureDoesNotRollback(t *testing.T) {
	// Подготовка
	service, repoMock, _, publisherMock := newTestIncidentService(t)
	ctx := context.Background()
	incidentID := uuid.New()
	existingIncident := &models.Incident{
		ID:       incidentID,
		TypeCode: "water",
		Status:   models.IncidentStatusPending,
	}

	// Ожидания
	repoMock.EXPECT().GetByID(ctx, incidentID).Return(existingIncident, nil).Times(1)
	repoMock.EXPECT().UpdateStatus(ctx, incidentID, models.IncidentStatusResolved).Return(nil).Times(1)
	repoMock.EXPECT().InvalidateIncidentCache(ctx, incidentID).Return(nil).Times(1)
	publisherMock.EXPECT().Publish(ctx, gomock.Any()).Return(fmt.Errorf("redis down")).Times(1)

	// Действие
	err := service.ResolveIncident(ctx, incidentID)

	// Проверки: перевод статуса выполнен, ошибка очереди не всплывает
	require.NoError(t, err)
}

func TestDeleteIncident_Success(t *testing.T) {
	// Подготовка
	service, repoMock, _, _ := newTestIncidentService(t)
	ctx := context.Background()
	incidentID := uuid.New()

	// Ожидания
	repoMock.EXPECT().Delete(ctx, incidentID).Return(nil).Times(1)
	repoMock.EXPECT().InvalidateIncidentCache(ctx, incidentID).Return(nil).Times(1)

	// Действие
	err := service.DeleteIncident(ctx, incidentID)

	// Проверки
	require.NoError(t, err)
}

func TestDeleteIncident_NotFound(t *testing.T) {
	// Подготовка
	service, repoMock, _, _ := newTestIncidentService(t)
	ctx := context.Background()
	incidentID := uuid.New()

	// Ожидания
	repoMock.EXPECT().Delete(ctx, incidentID).Return(ErrNotFound).Times(1)

	// Действие
	err := service.DeleteIncident(ctx, incidentID)

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListIncidents_Success(t *testing.T) {
	// Подготовка
	service, repoMock, _, _ := newTestIncidentService(t)
	ctx := context.Background()
	page, pageSize := 1, 10
	expectedIncidents := []*models.Incident{
		{ID: uuid.New(), Description: "Обращение 1"},
		{ID: uuid.New(), Description: "Обращение 2"},
	}

	// Ожидания
	repoMock.EXPECT().ListIncidents(ctx, page, pageSize).Return(expectedIncidents, nil).Times(1)

	// Действие
	incidents, err := service.ListIncidents(ctx, page, pageSize)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, expectedIncidents, incidents)
}

func TestReportStats_InvalidWindow(t *testing.T) {
	// Подготовка
	service, repoMock, _, _ := newTestIncidentService(t)
	ctx := context.Background()

	// Ожидания: репозиторий не трогаем
	repoMock.EXPECT().ListAllIncidents(gomock.Any()).Times(0)

	// Действие
	report, err := service.ReportStats(ctx, 14)

	// Проверки
	require.Error(t, err)
	assert.Nil(t, report)
	assert.ErrorIs(t, err, ErrInvalidWindow)
}

func TestReportStats_FiltersByWindow(t *testing.T) {
	// Подготовка
	service, repoMock, typeRepoMock, _ := newTestIncidentService(t)
	ctx := context.Background()
	now := time.Now()
	incidents := []*models.Incident{
		{ID: uuid.New(), TypeCode: "fire", CreatedAt: now.Add(-2 * 24 * time.Hour)},
		{ID: uuid.New(), TypeCode: "fire", CreatedAt: now.Add(-10 * 24 * time.Hour)},
		{ID: uuid.New(), TypeCode: "flood", CreatedAt: now.Add(-40 * 24 * time.Hour)},
	}

	// Ожидания
	repoMock.EXPECT().ListAllIncidents(ctx).Return(incidents, nil).Times(1)
	typeRepoMock.EXPECT().List(ctx).Return(nil, nil).Times(1)

	// Действие: окно 7 дней пропускает только свежую запись
	report, err := service.ReportStats(ctx, 7)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, 7, report.WindowDays)
	assert.Equal(t, 1, report.Total)
	require.Len(t, report.Buckets, 1)
	assert.Equal(t, "Fire", report.Buckets[0].Label)
	assert.Equal(t, 1, report.Buckets[0].Count)
}

func TestReportStats_DictionaryOverridesDefaults(t *testing.T) {
	// Подготовка
	service, repoMock, typeRepoMock, _ := newTestIncidentService(t)
	ctx := context.Background()
	now := time.Now()
	incidents := []*models.Incident{
		{ID: uuid.New(), TypeCode: "fire", CreatedAt: now.Add(-time.Hour)},
		{ID: uuid.New(), TypeCode: "sinkhole", CreatedAt: now.Add(-2 * time.Hour)},
	}
	// Справочник из бд переопределяет статичную подпись для fire
	types := []*models.IncidentType{
		{ID: uuid.New(), Code: "fire", Label: "Огонь"},
	}

	// Ожидания
	repoMock.EXPECT().ListAllIncidents(ctx).Return(incidents, nil).Times(1)
	typeRepoMock.EXPECT().List(ctx).Return(types, nil).Times(1)

	// Действие
	report, err := service.ReportStats(ctx, 7)

	// Проверки: подпись из справочника, неизвестный код проходит как есть
	require.NoError(t, err)
	assert.Equal(t, 2, report.Total)
	require.Len(t, report.Buckets, 2)
	assert.Equal(t, "Огонь", report.Buckets[0].Label)
	assert.Equal(t, "sinkhole", report.Buckets[1].Label)
}

func TestReportStats_ZeroTimestampExcluded(t *testing.T) {
	// Подготовка
	service, repoMock, typeRepoMock, _ := newTestIncidentService(t)
	ctx := context.Background()
	incidents := []*models.Incident{
		{ID: uuid.New(), TypeCode: "fire"}, // CreatedAt не заполнен
	}

	// Ожидания
	repoMock.EXPECT().ListAllIncidents(ctx).Return(incidents, nil).Times(1)
	typeRepoMock.EXPECT().List(ctx).Return(nil, nil).Times(1)

	// Действие: запись без отметки времени не попадает даже в годовое окно
	report, err := service.ReportStats(ctx, 365)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, 0, report.Total)
	assert.Empty(t, report.Buckets)
}
