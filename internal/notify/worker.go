package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/community_incident_service/internal/config"
	"github.com/sirupsen/logrus"
)

// Заголовок и текст по умолчанию, когда у события пустая полезная нагрузка
const (
	defaultTitle = "Community Incident Service"
	defaultBody  = "An incident report has been updated"
)

// TokenSource отдает токены всех текущих push-подписок
type TokenSource interface {
	ListAll(ctx context.Context) ([]string, error)
}

// relayRequest - тело запроса к push-релею: пакет токенов плюс уведомление
type relayRequest struct {
	RegistrationIDs []string          `json:"registration_ids"`
	Notification    relayNotification `json:"notification"`
	Data            map[string]string `json:"data,omitempty"`
}

type relayNotification struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// Worker - обработчик очереди рассылки: читает события из Redis
// и доставляет их push-релею
type Worker struct {
	redisClient *redis.Client
	tokens      TokenSource
	logger      *logrus.Logger
	cfg         *config.Config
	httpClient  *http.Client
}

// NewWorker создает новый Worker
func NewWorker(redisClient *redis.Client, tokens TokenSource, logger *logrus.Logger, cfg *config.Config) *Worker {
	return &Worker{
		redisClient: redisClient,
		tokens:      tokens,
		logger:      logger,
		cfg:         cfg,
		httpClient: &http.Client{
			Timeout: cfg.PushRelayTimeout,
		},
	}
}

// Start запускает горутину для обработки очереди рассылки
func (w *Worker) Start(ctx context.Context) {
	w.logger.Info("Starting notification worker...")
	go func() {
		for {
			select {
			case <-ctx.Done():
				w.logger.Info("Stopping notification worker.")
				return
			default:
				// BRPOP - блокирующее извлечение из правой части списка (очереди)
				// 0 означает бесконечное ожидание
				result, err := w.redisClient.BRPop(ctx, 0, notificationQueueKey).Result()
				if err != nil {
					if errors.Is(err, context.Canceled) {
						continue // Контекст отменен, но не ошибка Redis
					}
					w.logger.WithError(err).Error("Failed to pop notification event from Redis")
					time.Sleep(w.cfg.PushRelayTimeout) // Ждем перед повторной попыткой
					continue
				}

				// result[0] - ключ, result[1] - значение
				payload := result[1]
				var event Event
				if err := json.Unmarshal([]byte(payload), &event); err != nil {
					w.logger.WithError(err).Error("Failed to unmarshal notification event from Redis")
					continue
				}

				w.processEvent(ctx, event)
			}
		}
	}()
}

func (w *Worker) processEvent(ctx context.Context, event Event) {
	log := w.logger.WithField("incident_id", event.IncidentID).WithField("type_code", event.TypeCode)
	log.Debug("Processing notification event...")

	if w.cfg.PushRelayURL == "" {
		log.Warn("Push relay URL is not configured. Skipping notification delivery.")
		return
	}

	tokens, err := w.tokens.ListAll(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to load push tokens for delivery")
		return
	}
	if len(tokens) == 0 {
		log.Debug("No registered push tokens, nothing to deliver.")
		return
	}

	// Пустые поля события заменяются значениями по умолчанию
	title := event.Title
	if title == "" {
		title = defaultTitle
	}
	body := event.Body
	if body == "" {
		body = defaultBody
	}

	request := relayRequest{
		RegistrationIDs: tokens,
		Notification: relayNotification{
			Title: title,
			Body:  body,
		},
		Data: map[string]string{
			"incident_id": event.IncidentID,
			"type_code":   event.TypeCode,
		},
	}

	rawPayload, err := json.Marshal(request)
	if err != nil {
		log.WithError(err).Error("Failed to marshal relay request")
		return
	}

	w.deliver(ctx, log, rawPayload, len(tokens))
}

func (w *Worker) deliver(ctx context.Context, log *logrus.Entry, rawPayload []byte, tokenCount int) {
	maxRetries := w.cfg.PushRelayMaxRetries
	baseDelay := w.cfg.PushRelayBaseDelay

	for i := 0; i < maxRetries; i++ {
		req, err := http.NewRequestWithContext(ctx, "POST", w.cfg.PushRelayURL, bytes.NewBuffer(rawPayload))
		if err != nil {
			log.WithError(err).Errorf("Failed to create relay request. Retries left: %d", maxRetries-1-i)
			continue
		}

		req.Header.Set("Content-Type", "application/json")
		// Релей авторизует сервер по фиксированному ключу приложения
		req.Header.Set("Authorization", fmt.Sprintf("key=%s", w.cfg.PushServerKey))

		resp, err := w.httpClient.Do(req)
		if err != nil {
			log.WithError(err).Warnf("Failed to send relay request. Retrying in %v. Retries left: %d", baseDelay, maxRetries-1-i)
			time.Sleep(baseDelay)
			baseDelay *= 2 // Экспоненциальная задержка
			continue
		}
		resp.Body.Close()

		if resp.StatusCode >= 200 && resp.StatusCode < 300 {
			log.WithField("tokens", tokenCount).Info("Notification delivered to relay successfully.")
			return
		}

		log.Warnf("Relay delivery failed with status code %d. Retrying in %v. Retries left: %d", resp.StatusCode, baseDelay, maxRetries-1-i)
		time.Sleep(baseDelay)
		baseDelay *= 2 // Экспоненциальная задержка
	}

	log.Errorf("Failed to deliver notification after %d retries.", maxRetries)
}
