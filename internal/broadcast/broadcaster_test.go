package broadcast

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/shenikar/rtcc_dashboard/internal/events"
	"github.com/shenikar/rtcc_dashboard/internal/models"
	"github.com/shenikar/rtcc_dashboard/internal/repository"
	"github.com/shenikar/rtcc_dashboard/internal/service"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeConn - соединение в памяти. block заставляет запись (кроме первой, init) висеть до Close.
type fakeConn struct {
	mu       sync.Mutex
	messages [][]byte
	closed   bool
	writeErr error
	block    bool
	unblock  chan struct{}
}

func newFakeConn() *fakeConn {
	return &fakeConn{unblock: make(chan struct{})}
}

func (c *fakeConn) WriteMessage(_ int, data []byte) error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return errors.New("use of closed connection")
	}
	first := len(c.messages) == 0
	if !first && c.writeErr != nil {
		c.mu.Unlock()
		return c.writeErr
	}
	block := c.block && !first
	c.mu.Unlock()

	if block {
		<-c.unblock
		return errors.New("connection closed while writing")
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.messages = append(c.messages, append([]byte(nil), data...))
	return nil
}

func (c *fakeConn) SetWriteDeadline(time.Time) error { return nil }

func (c *fakeConn) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.closed {
		c.closed = true
		close(c.unblock)
	}
	return nil
}

func (c *fakeConn) isClosed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed
}

// types возвращает значения поля "type" всех записанных сообщений
func (c *fakeConn) types(t *testing.T) []string {
	t.Helper()
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]string, 0, len(c.messages))
	for _, raw := range c.messages {
		var msg map[string]any
		require.NoError(t, json.Unmarshal(raw, &msg))
		out = append(out, fmt.Sprint(msg["type"]))
	}
	return out
}

// incidentIDs собирает идентификаторы инцидентов из init-снимка и событий incident_created
func (c *fakeConn) incidentIDs() map[string]struct{} {
	c.mu.Lock()
	defer c.mu.Unlock()
	ids := make(map[string]struct{})
	for _, raw := range c.messages {
		var msg struct {
			Type      string             `json:"type"`
			Incidents []*models.Incident `json:"incidents"`
			Incident  *models.Incident   `json:"incident"`
		}
		if err := json.Unmarshal(raw, &msg); err != nil {
			continue
		}
		switch msg.Type {
		case string(events.KindInit):
			for _, incident := range msg.Incidents {
				ids[incident.IncidentID] = struct{}{}
			}
		case string(events.KindIncidentCreated):
			ids[msg.Incident.IncidentID] = struct{}{}
		}
	}
	return ids
}

func (c *fakeConn) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.messages)
}

func newTestBroadcaster(t *testing.T, cfg Config, clock clockwork.Clock) *Broadcaster {
	t.Helper()
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	b := NewBroadcaster(cfg, clock, logger)
	t.Cleanup(b.Close)
	return b
}

func emptySnapshot(context.Context) (*models.Snapshot, error) {
	return &models.Snapshot{}, nil
}

func register(t *testing.T, b *Broadcaster, conn Conn) *Subscriber {
	t.Helper()
	sub, err := b.Register(context.Background(), conn, emptySnapshot)
	require.NoError(t, err)
	return sub
}

func TestRegister_SendsInitSnapshotFirst(t *testing.T) {
	b := newTestBroadcaster(t, Config{}, nil)
	conn := newFakeConn()

	snapshot := func(context.Context) (*models.Snapshot, error) {
		return &models.Snapshot{
			Incidents: []*models.Incident{{IncidentID: "INC-001"}},
			Units:     []*models.EmergencyUnit{{UnitID: "PD-001"}},
		}, nil
	}
	_, err := b.Register(context.Background(), conn, snapshot)
	require.NoError(t, err)

	b.Publish(context.Background(), events.IncidentDeleted("INC-001"))

	require.Eventually(t, func() bool { return conn.count() == 2 }, time.Second, time.Millisecond)
	assert.Equal(t, []string{"init", "incident_deleted"}, conn.types(t))

	var init events.InitMessage
	conn.mu.Lock()
	require.NoError(t, json.Unmarshal(conn.messages[0], &init))
	conn.mu.Unlock()
	require.Len(t, init.Incidents, 1)
	assert.Equal(t, "INC-001", init.Incidents[0].IncidentID)
	assert.Equal(t, "PD-001", init.Units[0].UnitID)
	assert.Empty(t, init.Traffic)
	assert.Equal(t, 1, b.Count())
}

func TestRegister_SnapshotFailureAbortsRegistration(t *testing.T) {
	b := newTestBroadcaster(t, Config{}, nil)
	conn := newFakeConn()

	_, err := b.Register(context.Background(), conn, func(context.Context) (*models.Snapshot, error) {
		return nil, errors.New("store unavailable")
	})

	require.Error(t, err)
	assert.ErrorContains(t, err, "could not build snapshot")
	assert.Equal(t, 0, b.Count())
	assert.True(t, conn.isClosed())
}

func TestRegister_InitWriteFailureAbortsRegistration(t *testing.T) {
	b := newTestBroadcaster(t, Config{}, nil)
	conn := newFakeConn()
	require.NoError(t, conn.Close())

	_, err := b.Register(context.Background(), conn, emptySnapshot)

	require.Error(t, err)
	assert.ErrorContains(t, err, "failed to send init message")
	assert.Equal(t, 0, b.Count())
}

func TestRegister_AfterCloseFails(t *testing.T) {
	b := newTestBroadcaster(t, Config{}, nil)
	b.Close()

	_, err := b.Register(context.Background(), newFakeConn(), emptySnapshot)
	assert.ErrorIs(t, err, ErrClosed)
}

func TestUnregister_IsIdempotentAndStopsDelivery(t *testing.T) {
	b := newTestBroadcaster(t, Config{}, nil)
	kept, gone := newFakeConn(), newFakeConn()
	register(t, b, kept)
	sub := register(t, b, gone)

	b.Unregister(sub)
	b.Unregister(sub)
	b.Unregister(nil)

	assert.False(t, sub.alive.Load())
	assert.True(t, gone.isClosed())
	assert.Equal(t, 1, b.Count())

	assert.NotPanics(t, func() {
		b.Publish(context.Background(), events.UnitDeleted("PD-001"))
	})

	require.Eventually(t, func() bool { return kept.count() == 2 }, time.Second, time.Millisecond)
	assert.Equal(t, []string{"init"}, gone.types(t))
}

func TestPublish_DeliversEveryEventInOrder(t *testing.T) {
	b := newTestBroadcaster(t, Config{SendBuffer: 32}, nil)
	conns := []*fakeConn{newFakeConn(), newFakeConn(), newFakeConn()}
	for _, conn := range conns {
		register(t, b, conn)
	}

	published := []events.Event{
		events.IncidentCreated(&models.Incident{IncidentID: "INC-001"}),
		events.IncidentUpdated(&models.Incident{IncidentID: "INC-001"}),
		events.UnitUpdated(&models.EmergencyUnit{UnitID: "PD-001"}),
		events.TrafficCreated(&models.TrafficIncident{IncidentID: "TRAFFIC-001"}),
		events.TrafficResolved(&models.TrafficIncident{IncidentID: "TRAFFIC-001"}),
		events.IncidentDeleted("INC-001"),
	}
	for _, e := range published {
		b.Publish(context.Background(), e)
	}

	expected := []string{"init", "incident_created", "incident_updated", "unit_updated", "traffic_created", "traffic_resolved", "incident_deleted"}
	for _, conn := range conns {
		require.Eventually(t, func() bool { return conn.count() == len(expected) }, time.Second, time.Millisecond)
		assert.Equal(t, expected, conn.types(t))
	}
}

func TestPublish_SlowSubscriberDoesNotBlockOthers(t *testing.T) {
	b := newTestBroadcaster(t, Config{SendBuffer: 2}, nil)
	healthy := []*fakeConn{newFakeConn(), newFakeConn()}
	for _, conn := range healthy {
		register(t, b, conn)
	}
	slow := newFakeConn()
	slow.block = true
	slowSub := register(t, b, slow)

	const total = 6
	for i := 1; i <= total; i++ {
		done := make(chan struct{})
		go func() {
			b.Publish(context.Background(), events.IncidentDeleted(fmt.Sprintf("INC-%03d", i)))
			close(done)
		}()
		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("publish blocked on a slow subscriber")
		}
		for _, conn := range healthy {
			require.Eventually(t, func() bool { return conn.count() == i+1 }, time.Second, time.Millisecond)
		}
	}

	assert.False(t, slowSub.alive.Load())
	assert.True(t, slow.isClosed())
	assert.Equal(t, len(healthy), b.Count())
	for _, conn := range healthy {
		assert.Len(t, conn.types(t), total+1)
	}
}

func TestPublish_BrokenSubscriberIsUnregistered(t *testing.T) {
	b := newTestBroadcaster(t, Config{}, nil)
	healthy := newFakeConn()
	register(t, b, healthy)
	broken := newFakeConn()
	broken.writeErr = errors.New("broken pipe")
	brokenSub := register(t, b, broken)

	b.Publish(context.Background(), events.UnitDeleted("PD-001"))
	require.Eventually(t, func() bool { return !brokenSub.alive.Load() }, time.Second, time.Millisecond)
	b.Publish(context.Background(), events.UnitDeleted("PD-002"))

	require.Eventually(t, func() bool { return healthy.count() == 3 }, time.Second, time.Millisecond)
	assert.Equal(t, 1, b.Count())
	assert.True(t, broken.isClosed())
}

func TestPublish_ConcurrentPublishersKeepOneGlobalOrder(t *testing.T) {
	b := newTestBroadcaster(t, Config{SendBuffer: 512}, nil)
	conns := []*fakeConn{newFakeConn(), newFakeConn(), newFakeConn()}
	for _, conn := range conns {
		register(t, b, conn)
	}

	var wg sync.WaitGroup
	for w := 0; w < 4; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 25; i++ {
				b.Publish(context.Background(), events.IncidentDeleted(fmt.Sprintf("W%d-%d", w, i)))
			}
		}()
	}
	wg.Wait()

	for _, conn := range conns {
		require.Eventually(t, func() bool { return conn.count() == 101 }, time.Second, time.Millisecond)
	}
	conns[0].mu.Lock()
	reference := conns[0].messages
	conns[0].mu.Unlock()
	for _, conn := range conns[1:] {
		conn.mu.Lock()
		assert.Equal(t, reference, conn.messages)
		conn.mu.Unlock()
	}
}

func TestRunKeepalive_PublishesPing(t *testing.T) {
	clock := clockwork.NewFakeClock()
	b := newTestBroadcaster(t, Config{KeepaliveInterval: 30 * time.Second}, clock)
	conn := newFakeConn()
	register(t, b, conn)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- b.RunKeepalive(ctx) }()

	require.NoError(t, clock.BlockUntilContext(ctx, 1))
	clock.Advance(30 * time.Second)

	require.Eventually(t, func() bool { return conn.count() == 2 }, time.Second, time.Millisecond)
	assert.Equal(t, []string{"init", "ping"}, conn.types(t))

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("keepalive did not stop after cancel")
	}
}

func TestClose_DisconnectsEveryone(t *testing.T) {
	b := newTestBroadcaster(t, Config{}, nil)
	conns := []*fakeConn{newFakeConn(), newFakeConn()}
	for _, conn := range conns {
		register(t, b, conn)
	}

	b.Close()

	assert.Equal(t, 0, b.Count())
	for _, conn := range conns {
		assert.True(t, conn.isClosed())
	}
}

func TestRegister_SnapshotThenStreamHasNoGaps(t *testing.T) {
	// Подготовка
	const (
		creates     = 500
		subscribers = 20
	)
	b := newTestBroadcaster(t, Config{SendBuffer: creates + 1}, nil)
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})
	svc := service.NewService(repository.NewMemoryStore(), nil, b, clockwork.NewRealClock(), logger)
	ctx := context.Background()

	conns := make([]*fakeConn, subscribers)
	for i := range conns {
		conns[i] = newFakeConn()
	}

	// Действие: подписчики регистрируются, пока другая горутина создает инциденты
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < creates; i++ {
			assert.NoError(t, svc.CreateIncident(ctx, &models.Incident{
				Type:        models.IncidentTypeFire,
				Priority:    models.PriorityLow,
				Location:    models.Location{Lat: 38.9, Lng: -77.0},
				Description: "load",
			}))
		}
	}()
	for _, conn := range conns {
		wg.Add(1)
		go func(conn *fakeConn) {
			defer wg.Done()
			_, err := b.Register(ctx, conn, svc.Snapshot)
			assert.NoError(t, err)
		}(conn)
	}
	wg.Wait()

	// Проверки: снимок и поток вместе покрывают каждый инцидент
	expected := make(map[string]struct{}, creates)
	for i := 1; i <= creates; i++ {
		expected[fmt.Sprintf("INC-%03d", i)] = struct{}{}
	}
	for i, conn := range conns {
		require.Eventually(t, func() bool {
			return len(conn.incidentIDs()) == creates
		}, 5*time.Second, 5*time.Millisecond, "subscriber %d missed incidents", i)
		assert.Equal(t, expected, conn.incidentIDs())
	}
	assert.Equal(t, subscribers, b.Count())
}
