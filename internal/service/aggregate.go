package service

import (
	"time"

	"github.com/shenikar/community_incident_service/internal/models"
)

// Допустимые окна статистики в днях
var reportWindows = map[int]struct{}{
	1: {}, 3: {}, 5: {}, 7: {}, 30: {}, 60: {}, 90: {}, 365: {},
}

// Статичная таблица подписей для базовых кодов типов.
// Справочник из бд накладывается поверх неё, неизвестные коды
// проходят в отчет без изменений.
var defaultTypeLabels = map[string]string{
	"fire":        "Fire",
	"flood":       "Flood",
	"accident":    "Road accident",
	"crime":       "Crime",
	"electricity": "Electricity",
	"water":       "Water supply",
	"garbage":     "Garbage",
	"other":       "Other",
}

// IsReportWindow сообщает, входит ли окно в разрешенный набор
func IsReportWindow(windowDays int) bool {
	_, ok := reportWindows[windowDays]
	return ok
}

// LabelCount - одна корзина отчета: подпись типа и количество обращений
type LabelCount struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// StatsReport - агрегированный отчет по обращениям за окно
type StatsReport struct {
	WindowDays int          `json:"window_days"`
	Total      int          `json:"total"`
	Buckets    []LabelCount `json:"buckets"`
}

// FilterByWindow оставляет обращения не старше windowDays суток.
// Граница включительная: запись ровно на пороге попадает в выборку.
// Записи без отметки времени исключаются из любого окна.
func FilterByWindow(incidents []*models.Incident, windowDays int, now time.Time) []*models.Incident {
	window := time.Duration(windowDays) * 24 * time.Hour
	filtered := make([]*models.Incident, 0, len(incidents))
	for _, incident := range incidents {
		if incident.CreatedAt.IsZero() {
			continue
		}
		if now.Sub(incident.CreatedAt) <= window {
			filtered = append(filtered, incident)
		}
	}
	return filtered
}

// GroupByLabel считает обращения по подписи типа. Порядок корзин -
// порядок первого появления кода при обходе входа, без сортировки.
func GroupByLabel(incidents []*models.Incident, labels map[string]string) []LabelCount {
	index := make(map[string]int)
	buckets := make([]LabelCount, 0)
	for _, incident := range incidents {
		label, ok := labels[incident.TypeCode]
		if !ok {
			label = incident.TypeCode
		}
		if i, seen := index[label]; seen {
			buckets[i].Count++
			continue
		}
		index[label] = len(buckets)
		buckets = append(buckets, LabelCount{Label: label, Count: 1})
	}
	return buckets
}

// mergeTypeLabels строит таблицу код->подпись: статичные значения
// плюс справочник из бд поверх них
func mergeTypeLabels(types []*models.IncidentType) map[string]string {
	labels := make(map[string]string, len(defaultTypeLabels)+len(types))
	for code, label := range defaultTypeLabels {
		labels[code] = label
	}
	for _, t := range types {
		labels[t.Code] = t.Label
	}
	return labels
}
