package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shenikar/community_incident_service/internal/config"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// staticTokens - простая заглушка источника токенов для тестов
type staticTokens struct {
	tokens []string
	calls  atomic.Int32
}

func (s *staticTokens) ListAll(ctx context.Context) ([]string, error) {
	s.calls.Add(1)
	return s.tokens, nil
}

func newTestWorker(relayURL string, tokens TokenSource) *Worker {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		PushRelayURL:        relayURL,
		PushServerKey:       "test-server-key",
		PushRelayTimeout:    time.Second,
		PushRelayMaxRetries: 3,
		PushRelayBaseDelay:  time.Millisecond,
	}

	return NewWorker(nil, tokens, logger, cfg)
}

func TestProcessEvent_DeliversToRelay(t *testing.T) {
	// Подготовка
	var received relayRequest
	var authHeader string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	tokens := &staticTokens{tokens: []string{"token-a", "token-b"}}
	worker := newTestWorker(server.URL, tokens)

	event := Event{
		IncidentID: "4f6c0b0e-0000-0000-0000-000000000001",
		TypeCode:   "fire",
		Title:      "Incident resolved",
		Body:       "Горит гараж",
		OccurredAt: time.Now(),
	}

	// Действие
	worker.processEvent(context.Background(), event)

	// Проверки: один запрос со всем пакетом токенов и ключом сервера
	assert.Equal(t, "key=test-server-key", authHeader)
	assert.Equal(t, []string{"token-a", "token-b"}, received.RegistrationIDs)
	assert.Equal(t, "Incident resolved", received.Notification.Title)
	assert.Equal(t, "Горит гараж", received.Notification.Body)
	assert.Equal(t, "fire", received.Data["type_code"])
	assert.Equal(t, event.IncidentID, received.Data["incident_id"])
}

func TestProcessEvent_DefaultTitleAndBody(t *testing.T) {
	// Подготовка: событие с пустой полезной нагрузкой
	var received relayRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	tokens := &staticTokens{tokens: []string{"token-a"}}
	worker := newTestWorker(server.URL, tokens)

	// Действие
	worker.processEvent(context.Background(), Event{IncidentID: "id-1", TypeCode: "other"})

	// Проверки
	assert.Equal(t, defaultTitle, received.Notification.Title)
	assert.Equal(t, defaultBody, received.Notification.Body)
}

func TestProcessEvent_NoTokens(t *testing.T) {
	// Подготовка
	var requests atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	tokens := &staticTokens{}
	worker := newTestWorker(server.URL, tokens)

	// Действие
	worker.processEvent(context.Background(), Event{IncidentID: "id-1"})

	// Проверки: без подписок релей не вызывается
	assert.Equal(t, int32(0), requests.Load())
	assert.Equal(t, int32(1), tokens.calls.Load())
}

func TestProcessEvent_NoRelayURL(t *testing.T) {
	// Подготовка: релей не сконфигурирован
	tokens := &staticTokens{tokens: []string{"token-a"}}
	worker := newTestWorker("", tokens)

	// Действие
	worker.processEvent(context.Background(), Event{IncidentID: "id-1"})

	// Проверки: до загрузки токенов дело не доходит
	assert.Equal(t, int32(0), tokens.calls.Load())
}

func TestDeliver_RetriesOnServerError(t *testing.T) {
	// Подготовка: первая попытка падает, вторая проходит
	var requests atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if requests.Add(1) == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	tokens := &staticTokens{tokens: []string{"token-a"}}
	worker := newTestWorker(server.URL, tokens)

	// Действие
	worker.processEvent(context.Background(), Event{IncidentID: "id-1", TypeCode: "fire"})

	// Проверки
	assert.Equal(t, int32(2), requests.Load())
}
