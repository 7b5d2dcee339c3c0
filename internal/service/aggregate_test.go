package service

import (
	"testing"
	"time"

	"github.com/shenikar/community_incident_service/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsReportWindow(t *testing.T) {
	for _, window := range []int{1, 3, 5, 7, 30, 60, 90, 365} {
		assert.True(t, IsReportWindow(window), "окно %d должно быть разрешено", window)
	}
	for _, window := range []int{0, -1, 2, 14, 100, 366} {
		assert.False(t, IsReportWindow(window), "окно %d должно быть запрещено", window)
	}
}

func TestFilterByWindow_BoundaryInclusive(t *testing.T) {
	// Подготовка
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	onBoundary := &models.Incident{TypeCode: "fire", CreatedAt: now.Add(-7 * 24 * time.Hour)}
	pastBoundary := &models.Incident{TypeCode: "fire", CreatedAt: now.Add(-7*24*time.Hour - time.Second)}

	// Действие
	filtered := FilterByWindow([]*models.Incident{onBoundary, pastBoundary}, 7, now)

	// Проверки: запись ровно на пороге включается, на секунду старше - нет
	require.Len(t, filtered, 1)
	assert.Equal(t, onBoundary, filtered[0])
}

func TestFilterByWindow_ZeroTimestampExcluded(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	incidents := []*models.Incident{
		{TypeCode: "fire"},
		{TypeCode: "flood", CreatedAt: now.Add(-time.Hour)},
	}

	filtered := FilterByWindow(incidents, 365, now)

	require.Len(t, filtered, 1)
	assert.Equal(t, "flood", filtered[0].TypeCode)
}

func TestFilterByWindow_FutureTimestampIncluded(t *testing.T) {
	// Запись с отметкой чуть впереди now (рассинхрон часов) не отбрасывается
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	incidents := []*models.Incident{
		{TypeCode: "fire", CreatedAt: now.Add(time.Minute)},
	}

	filtered := FilterByWindow(incidents, 1, now)

	assert.Len(t, filtered, 1)
}

func TestGroupByLabel_FirstSeenOrder(t *testing.T) {
	// Подготовка
	incidents := []*models.Incident{
		{TypeCode: "flood"},
		{TypeCode: "fire"},
		{TypeCode: "flood"},
		{TypeCode: "fire"},
		{TypeCode: "flood"},
	}
	labels := map[string]string{"fire": "Fire", "flood": "Flood"}

	// Действие
	buckets := GroupByLabel(incidents, labels)

	// Проверки: порядок корзин - порядок первого появления кода
	require.Len(t, buckets, 2)
	assert.Equal(t, LabelCount{Label: "Flood", Count: 3}, buckets[0])
	assert.Equal(t, LabelCount{Label: "Fire", Count: 2}, buckets[1])
}

func TestGroupByLabel_UnknownCodePassesThrough(t *testing.T) {
	incidents := []*models.Incident{
		{TypeCode: "sinkhole"},
		{TypeCode: "sinkhole"},
	}

	buckets := GroupByLabel(incidents, defaultTypeLabels)

	require.Len(t, buckets, 1)
	assert.Equal(t, LabelCount{Label: "sinkhole", Count: 2}, buckets[0])
}

func TestGroupByLabel_Empty(t *testing.T) {
	buckets := GroupByLabel(nil, defaultTypeLabels)
	assert.Empty(t, buckets)
	assert.NotNil(t, buckets)
}

func TestMergeTypeLabels_Overlay(t *testing.T) {
	types := []*models.IncidentType{
		{Code: "fire", Label: "Огонь"},
		{Code: "sinkhole", Label: "Провал грунта"},
	}

	labels := mergeTypeLabels(types)

	// Справочник из бд накрывает статичную подпись и добавляет новую
	assert.Equal(t, "Огонь", labels["fire"])
	assert.Equal(t, "Провал грунта", labels["sinkhole"])
	assert.Equal(t, "Flood", labels["flood"])
}
