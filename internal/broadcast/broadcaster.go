package broadcast

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/jonboulle/clockwork"
	"github.com/shenikar/rtcc_dashboard/internal/events"
	"github.com/shenikar/rtcc_dashboard/internal/metrics"
	"github.com/shenikar/rtcc_dashboard/internal/models"
	"github.com/sirupsen/logrus"
)

const (
	DefaultWriteTimeout      = 5 * time.Second
	DefaultSendBuffer        = 64
	DefaultKeepaliveInterval = 30 * time.Second
)

// ErrClosed возвращается при регистрации после остановки Broadcaster
var ErrClosed = errors.New("broadcast: broadcaster is closed")

// SnapshotFunc возвращает полное текущее состояние для init-сообщения
type SnapshotFunc func(ctx context.Context) (*models.Snapshot, error)

type Config struct {
	WriteTimeout      time.Duration
	SendBuffer        int
	KeepaliveInterval time.Duration
}

func (c Config) withDefaults() Config {
	if c.WriteTimeout <= 0 {
		c.WriteTimeout = DefaultWriteTimeout
	}
	if c.SendBuffer <= 0 {
		c.SendBuffer = DefaultSendBuffer
	}
	if c.KeepaliveInterval <= 0 {
		c.KeepaliveInterval = DefaultKeepaliveInterval
	}
	return c
}

// Broadcaster хранит реестр живых подписчиков и рассылает им события.
// Блокировка реестра удерживается только для добавления, удаления и
// копирования списка, но никогда на время записи в соединение.
type Broadcaster struct {
	cfg    Config
	clock  clockwork.Clock
	logger *logrus.Logger

	mu          sync.RWMutex
	subscribers map[uuid.UUID]*Subscriber
	closed      bool

	// publishMu упорядочивает публикации, чтобы все подписчики видели один порядок событий
	publishMu sync.Mutex
}

func NewBroadcaster(cfg Config, clock clockwork.Clock, logger *logrus.Logger) *Broadcaster {
	return &Broadcaster{
		cfg:         cfg.withDefaults(),
		clock:       clock,
		logger:      logger,
		subscribers: make(map[uuid.UUID]*Subscriber),
	}
}

// Register добавляет соединение в реестр и первым сообщением отправляет init-снимок.
// Снимок читается под блокировкой реестра: событие, зафиксированное после чтения
// снимка, гарантированно попадет в очередь нового подписчика.
func (b *Broadcaster) Register(ctx context.Context, conn Conn, snapshot SnapshotFunc) (*Subscriber, error) {
	sub := newSubscriber(conn, b.cfg.SendBuffer)
	log := b.logger.WithField("subscriber_id", sub.id)

	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		sub.close()
		return nil, ErrClosed
	}
	var state *models.Snapshot
	if snapshot != nil {
		var err error
		state, err = snapshot(ctx)
		if err != nil {
			b.mu.Unlock()
			sub.close()
			return nil, fmt.Errorf("broadcast: could not build snapshot: %w", err)
		}
	}
	b.subscribers[sub.id] = sub
	count := len(b.subscribers)
	b.mu.Unlock()
	metrics.Subscribers.Set(float64(count))

	data, err := json.Marshal(events.NewInitMessage(state))
	if err != nil {
		b.remove(sub, "")
		return nil, fmt.Errorf("broadcast: failed to marshal init message: %w", err)
	}
	if err := b.write(sub, data); err != nil {
		b.remove(sub, reasonWriteError)
		return nil, fmt.Errorf("broadcast: failed to send init message: %w", err)
	}

	go b.writeLoop(sub)

	log.WithField("subscribers", count).Info("Subscriber registered")
	return sub, nil
}

// Unregister удаляет подписчика. Повторный вызов ничего не делает.
func (b *Broadcaster) Unregister(sub *Subscriber) {
	if sub == nil {
		return
	}
	if b.remove(sub, "") {
		b.logger.WithField("subscriber_id", sub.id).Info("Subscriber unregistered")
	}
}

// Publish ставит событие в очередь каждого подписчика и никогда не блокируется на записи.
// Подписчик с переполненным буфером или закрытым соединением отключается,
// остальные получают событие как обычно.
func (b *Broadcaster) Publish(_ context.Context, event events.Event) {
	data, err := json.Marshal(event)
	if err != nil {
		b.logger.WithError(err).WithField("kind", event.Kind()).Error("Failed to marshal event")
		return
	}

	b.publishMu.Lock()
	defer b.publishMu.Unlock()

	type failure struct {
		sub    *Subscriber
		reason string
	}
	var failed []failure
	delivered := 0
	for _, sub := range b.snapshot() {
		switch sub.enqueue(data) {
		case outcomeDelivered:
			delivered++
		case outcomeOverflow:
			failed = append(failed, failure{sub: sub, reason: reasonOverflow})
		case outcomeClosed:
			failed = append(failed, failure{sub: sub, reason: reasonClosed})
		}
	}
	for _, f := range failed {
		b.remove(f.sub, f.reason)
	}

	metrics.EventsPublished.WithLabelValues(string(event.Kind())).Inc()
	b.logger.WithFields(logrus.Fields{
		"kind":      event.Kind(),
		"delivered": delivered,
		"dropped":   len(failed),
	}).Debug("Event published")
}

// RunKeepalive периодически публикует ping с текущим временем до отмены ctx
func (b *Broadcaster) RunKeepalive(ctx context.Context) error {
	ticker := b.clock.NewTicker(b.cfg.KeepaliveInterval)
	defer ticker.Stop()

	b.logger.WithField("interval", b.cfg.KeepaliveInterval).Info("Starting keepalive...")
	for {
		select {
		case <-ctx.Done():
			b.logger.Info("Stopping keepalive.")
			return nil
		case <-ticker.Chan():
			b.Publish(ctx, events.Ping(b.clock.Now()))
		}
	}
}

// Count возвращает число зарегистрированных подписчиков
func (b *Broadcaster) Count() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subscribers)
}

// Close отключает всех подписчиков и запрещает новые регистрации
func (b *Broadcaster) Close() {
	b.mu.Lock()
	b.closed = true
	subs := make([]*Subscriber, 0, len(b.subscribers))
	for id, sub := range b.subscribers {
		subs = append(subs, sub)
		delete(b.subscribers, id)
	}
	b.mu.Unlock()

	for _, sub := range subs {
		sub.close()
	}
	metrics.Subscribers.Set(0)
	b.logger.WithField("subscribers", len(subs)).Info("Broadcaster closed")
}

func (b *Broadcaster) snapshot() []*Subscriber {
	b.mu.RLock()
	defer b.mu.RUnlock()
	subs := make([]*Subscriber, 0, len(b.subscribers))
	for _, sub := range b.subscribers {
		subs = append(subs, sub)
	}
	return subs
}

// remove возвращает true, если подписчик был в реестре
func (b *Broadcaster) remove(sub *Subscriber, reason string) bool {
	b.mu.Lock()
	_, ok := b.subscribers[sub.id]
	if ok {
		delete(b.subscribers, sub.id)
	}
	count := len(b.subscribers)
	b.mu.Unlock()

	sub.close()
	if !ok {
		return false
	}

	metrics.Subscribers.Set(float64(count))
	if reason != "" {
		metrics.DeliveryFailures.WithLabelValues(reason).Inc()
		b.logger.WithFields(logrus.Fields{
			"subscriber_id": sub.id,
			"reason":        reason,
		}).Warn("Subscriber dropped")
	}
	return true
}

func (b *Broadcaster) writeLoop(sub *Subscriber) {
	for {
		select {
		case <-sub.done:
			return
		case data := <-sub.send:
			if err := b.write(sub, data); err != nil {
				b.logger.WithError(err).WithField("subscriber_id", sub.id).Debug("Write to subscriber failed")
				b.remove(sub, reasonWriteError)
				return
			}
		}
	}
}

// write пишет одно сообщение с ограниченным дедлайном.
// Дедлайн сетевой, поэтому берется от реального времени, а не от b.clock.
func (b *Broadcaster) write(sub *Subscriber, data []byte) error {
	start := time.Now()
	if err := sub.conn.SetWriteDeadline(start.Add(b.cfg.WriteTimeout)); err != nil {
		return err
	}
	err := sub.conn.WriteMessage(websocket.TextMessage, data)
	metrics.MessageWriteDuration.Observe(time.Since(start).Seconds())
	return err
}
