package simulator

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"sync"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/shenikar/rtcc_dashboard/internal/events"
	"github.com/shenikar/rtcc_dashboard/internal/models"
	"github.com/shenikar/rtcc_dashboard/internal/repository"
	"github.com/shenikar/rtcc_dashboard/internal/service"
	"github.com/shenikar/rtcc_dashboard/internal/simulator/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type kindRecorder struct {
	mu    sync.Mutex
	kinds []events.Kind
}

func (r *kindRecorder) Publish(_ context.Context, event events.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.kinds = append(r.kinds, event.Kind())
}

func (r *kindRecorder) count(kind events.Kind) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, k := range r.kinds {
		if k == kind {
			n++
		}
	}
	return n
}

func newTestLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})
	return logger
}

func forcedConfig() Config {
	return Config{
		Interval:            time.Minute,
		MovementJitter:      DefaultMovementJitter,
		IncidentProbability: 1.0,
		TrafficProbability:  1.0,
		Reference:           DefaultReference,
		Spread:              DefaultSpread,
		Rand:                rand.New(rand.NewPCG(1, 2)),
	}
}

func within(t *testing.T, loc models.Location, ref models.Location, spread float64) {
	t.Helper()
	assert.LessOrEqual(t, math.Abs(loc.Lat-ref.Lat), spread)
	assert.LessOrEqual(t, math.Abs(loc.Lng-ref.Lng), spread)
}

func TestTick_ForcedProbabilitiesCreateOnePerTick(t *testing.T) {
	// Подготовка
	const ticks = 12
	ctx := context.Background()
	clock := clockwork.NewFakeClock()
	recorder := &kindRecorder{}
	svc := service.NewService(repository.NewMemoryStore(), nil, recorder, clock, newTestLogger())
	sim := New(forcedConfig(), svc, clock, newTestLogger())

	// Действие
	for i := 0; i < ticks; i++ {
		sim.Tick(ctx)
	}

	// Проверки
	incidents, err := svc.ListIncidents(ctx, models.IncidentFilter{})
	require.NoError(t, err)
	require.Len(t, incidents, ticks)
	for i, incident := range incidents {
		assert.Equal(t, fmt.Sprintf("INC-%03d", i+1), incident.IncidentID)
		assert.Equal(t, fmt.Sprintf("Simulated %s incident", incident.Type), incident.Description)
		assert.Contains(t, models.IncidentTypes, incident.Type)
		assert.Contains(t, models.Priorities, incident.Priority)
		within(t, incident.Location, DefaultReference, DefaultSpread)
	}

	traffic, err := svc.ListTraffic(ctx, models.TrafficFilter{})
	require.NoError(t, err)
	require.Len(t, traffic, ticks)
	for i, tr := range traffic {
		assert.Equal(t, fmt.Sprintf("TRAFFIC-%03d", i+1), tr.IncidentID)
		assert.NotEmpty(t, tr.AffectedRoads)
		assert.GreaterOrEqual(t, tr.EstimatedDuration, 1)
		assert.LessOrEqual(t, tr.EstimatedDuration, 1440)
		within(t, tr.Location, DefaultReference, DefaultSpread)
	}

	assert.Equal(t, ticks, recorder.count(events.KindIncidentCreated))
	assert.Equal(t, ticks, recorder.count(events.KindTrafficCreated))
}

func TestTick_ZeroProbabilitiesCreateNothing(t *testing.T) {
	ctx := context.Background()
	clock := clockwork.NewFakeClock()
	svc := service.NewService(repository.NewMemoryStore(), nil, nil, clock, newTestLogger())
	cfg := forcedConfig()
	cfg.IncidentProbability = 0
	cfg.TrafficProbability = 0
	sim := New(cfg, svc, clock, newTestLogger())

	for i := 0; i < 20; i++ {
		sim.Tick(ctx)
	}

	incidents, err := svc.ListIncidents(ctx, models.IncidentFilter{})
	require.NoError(t, err)
	assert.Empty(t, incidents)
}

func TestTick_MovesOnlyRespondingUnits(t *testing.T) {
	ctx := context.Background()
	clock := clockwork.NewFakeClock()
	recorder := &kindRecorder{}
	svc := service.NewService(repository.NewMemoryStore(), nil, recorder, clock, newTestLogger())

	start := models.Location{Lat: 38.9, Lng: -77.0}
	require.NoError(t, svc.CreateUnit(ctx, &models.EmergencyUnit{UnitID: "FD-001", Type: models.UnitTypeFire, Status: models.UnitStatusResponding, Location: start}))
	require.NoError(t, svc.CreateUnit(ctx, &models.EmergencyUnit{UnitID: "PD-001", Type: models.UnitTypePolice, Status: models.UnitStatusAvailable, Location: start}))

	cfg := forcedConfig()
	cfg.IncidentProbability = 0
	cfg.TrafficProbability = 0
	sim := New(cfg, svc, clock, newTestLogger())

	sim.Tick(ctx)

	moved, err := svc.GetUnit(ctx, "FD-001")
	require.NoError(t, err)
	assert.NotEqual(t, start, moved.Location)
	within(t, moved.Location, start, cfg.MovementJitter)

	idle, err := svc.GetUnit(ctx, "PD-001")
	require.NoError(t, err)
	assert.Equal(t, start, idle.Location)

	assert.Equal(t, 1, recorder.count(events.KindUnitUpdated))
}

func TestTick_StoreErrorsDoNotAbortTick(t *testing.T) {
	// Подготовка
	ctrl := gomock.NewController(t)
	mutator := mocks.NewMockMutator(ctrl)
	ctx := context.Background()
	sim := New(forcedConfig(), mutator, clockwork.NewFakeClock(), newTestLogger())
	storeErr := errors.New("connection reset")

	// Ожидания: каждый шаг падает, но все шаги выполняются
	mutator.EXPECT().
		ListUnits(ctx, gomock.Any()).
		Return([]*models.EmergencyUnit{{UnitID: "FD-001"}, {UnitID: "EMS-001"}}, nil).
		Times(1)
	mutator.EXPECT().MoveUnit(ctx, "FD-001", gomock.Any(), gomock.Any()).Return(nil, storeErr).Times(1)
	mutator.EXPECT().MoveUnit(ctx, "EMS-001", gomock.Any(), gomock.Any()).Return(&models.EmergencyUnit{}, nil).Times(1)
	mutator.EXPECT().CreateIncident(ctx, gomock.Any()).Return(storeErr).Times(1)
	mutator.EXPECT().CreateTraffic(ctx, gomock.Any()).Return(nil).Times(1)

	// Действие
	sim.Tick(ctx)
}

func TestTick_ListFailureSkipsMovementOnly(t *testing.T) {
	ctrl := gomock.NewController(t)
	mutator := mocks.NewMockMutator(ctrl)
	ctx := context.Background()
	sim := New(forcedConfig(), mutator, clockwork.NewFakeClock(), newTestLogger())

	mutator.EXPECT().ListUnits(ctx, gomock.Any()).Return(nil, errors.New("timeout")).Times(1)
	mutator.EXPECT().CreateIncident(ctx, gomock.Any()).Return(nil).Times(1)
	mutator.EXPECT().CreateTraffic(ctx, gomock.Any()).Return(nil).Times(1)

	sim.Tick(ctx)
}

func TestRun_TicksOnIntervalUntilCancelled(t *testing.T) {
	ctrl := gomock.NewController(t)
	mutator := mocks.NewMockMutator(ctrl)
	clock := clockwork.NewFakeClock()
	cfg := forcedConfig()
	cfg.IncidentProbability = 0
	cfg.TrafficProbability = 0
	sim := New(cfg, mutator, clock, newTestLogger())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ticked := make(chan struct{}, 1)
	mutator.EXPECT().
		ListUnits(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, models.UnitFilter) ([]*models.EmergencyUnit, error) {
			ticked <- struct{}{}
			return nil, nil
		}).
		Times(1)

	done := make(chan error, 1)
	go func() { done <- sim.Run(ctx) }()

	require.NoError(t, clock.BlockUntilContext(ctx, 1))
	clock.Advance(cfg.Interval)

	select {
	case <-ticked:
	case <-time.After(2 * time.Second):
		t.Fatal("simulator did not tick")
	}

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("simulator did not stop")
	}
}
