package webhook

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/rtcc_dashboard/internal/events"
	"github.com/sirupsen/logrus"
)

const (
	webhookQueueKey = "webhook_events"
	// defaultPushTimeout ограничивает запись одного события в очередь
	defaultPushTimeout = time.Second
)

// WebhookEvent - структура для данных вебхука
type WebhookEvent struct {
	Type      events.Kind `json:"type"`
	Payload   any         `json:"payload"`
	Timestamp time.Time   `json:"timestamp"`
}

// EventForwarder ставит каждое событие командного центра в очередь Redis,
// откуда его забирает Worker. Реализует events.Publisher.
type EventForwarder struct {
	redisClient *redis.Client
	clock       clockwork.Clock
	logger      *logrus.Logger
	pushTimeout time.Duration
}

func NewEventForwarder(client *redis.Client, clock clockwork.Clock, logger *logrus.Logger) *EventForwarder {
	return &EventForwarder{
		redisClient: client,
		clock:       clock,
		logger:      logger,
		pushTimeout: defaultPushTimeout,
	}
}

// Publish ставит событие в очередь; ошибка только логируется, мутация уже зафиксирована
func (f *EventForwarder) Publish(ctx context.Context, event events.Event) {
	if err := f.Forward(ctx, event); err != nil {
		f.logger.WithError(err).WithField("event_type", event.Kind()).Error("Failed to queue webhook event")
	}
}

// Forward публикует событие вебхука в очередь Redis. Отмена ctx запроса не отменяет
// запись уже зафиксированного события, но запись ограничена pushTimeout.
func (f *EventForwarder) Forward(ctx context.Context, event events.Event) error {
	payload, err := json.Marshal(WebhookEvent{
		Type:      event.Kind(),
		Payload:   event.Payload(),
		Timestamp: f.clock.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("failed to marshal webhook event: %w", err)
	}

	pushCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), f.pushTimeout)
	defer cancel()

	// LPUSH добавляет событие в левую часть списка, Worker забирает справа
	if err := f.redisClient.LPush(pushCtx, webhookQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish webhook event to Redis: %w", err)
	}
	return nil
}
