package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/shenikar/rtcc_dashboard/internal/events"
	events_mocks "github.com/shenikar/rtcc_dashboard/internal/events/mocks"
	"github.com/shenikar/rtcc_dashboard/internal/models"
	"github.com/shenikar/rtcc_dashboard/internal/repository"
	"github.com/shenikar/rtcc_dashboard/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testStart = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

// recordingPublisher запоминает опубликованные события в порядке публикации
type recordingPublisher struct {
	mu     sync.Mutex
	events []events.Event
}

func (p *recordingPublisher) Publish(_ context.Context, event events.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
}

func (p *recordingPublisher) kinds() []events.Kind {
	p.mu.Lock()
	defer p.mu.Unlock()
	kinds := make([]events.Kind, 0, len(p.events))
	for _, e := range p.events {
		kinds = append(kinds, e.Kind())
	}
	return kinds
}

func (p *recordingPublisher) all() []events.Event {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]events.Event(nil), p.events...)
}

func newTestLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах
	return logger
}

// newMemoryService - сервис поверх настоящего MemoryStore с фиктивными часами
func newMemoryService(t *testing.T) (*Service, *repository.MemoryStore, *recordingPublisher, *clockwork.FakeClock) {
	t.Helper()
	store := repository.NewMemoryStore()
	publisher := &recordingPublisher{}
	clock := clockwork.NewFakeClockAt(testStart)
	return NewService(store, nil, publisher, clock, newTestLogger()), store, publisher, clock
}

// newMockService - сервис с моками хранилища, кеша и издателя
func newMockService(t *testing.T) (*Service, *mocks.MockStore, *mocks.MockIncidentCache, *events_mocks.MockPublisher) {
	ctrl := gomock.NewController(t)
	storeMock := mocks.NewMockStore(ctrl)
	cacheMock := mocks.NewMockIncidentCache(ctrl)
	publisherMock := events_mocks.NewMockPublisher(ctrl)
	clock := clockwork.NewFakeClockAt(testStart)
	return NewService(storeMock, cacheMock, publisherMock, clock, newTestLogger()), storeMock, cacheMock, publisherMock
}

func testIncident() *models.Incident {
	return &models.Incident{
		Type:        models.IncidentTypeMedical,
		Priority:    models.PriorityHigh,
		Location:    models.Location{Lat: 38.9, Lng: -77.0},
		Description: "test",
	}
}

func testTraffic() *models.TrafficIncident {
	return &models.TrafficIncident{
		Type:              models.TrafficTypeAccident,
		Severity:          models.SeverityMedium,
		Location:          models.Location{Lat: 38.9, Lng: -77.0},
		Description:       "Crash on I-395",
		AffectedRoads:     []string{"I-395"},
		EstimatedDuration: 45,
	}
}

func TestCreateIncident_FirstIncidentScenario(t *testing.T) {
	// Подготовка
	service, _, publisher, _ := newMemoryService(t)
	incident := testIncident()

	// Действие
	err := service.CreateIncident(context.Background(), incident)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, "INC-001", incident.IncidentID)
	assert.Equal(t, models.IncidentStatusActive, incident.Status)
	assert.Equal(t, testStart, incident.CreatedAt)

	published := publisher.all()
	require.Len(t, published, 1)
	assert.Equal(t, events.KindIncidentCreated, published[0].Kind())
	assert.Equal(t, incident, published[0].Payload())
}

func TestCreate_SequentialIDsAcrossPrefixes(t *testing.T) {
	service, _, _, _ := newMemoryService(t)
	ctx := context.Background()

	inc1, traffic1, inc2 := testIncident(), testTraffic(), testIncident()
	require.NoError(t, service.CreateIncident(ctx, inc1))
	require.NoError(t, service.CreateTraffic(ctx, traffic1))
	require.NoError(t, service.CreateIncident(ctx, inc2))

	assert.Equal(t, "INC-001", inc1.IncidentID)
	assert.Equal(t, "TRAFFIC-001", traffic1.IncidentID)
	assert.Equal(t, "INC-002", inc2.IncidentID)
}

func TestCreate_ConcurrentIDsAreUnique(t *testing.T) {
	service, _, _, _ := newMemoryService(t)
	ctx := context.Background()
	const n = 25

	var (
		mu         sync.Mutex
		incidentID []string
		trafficID  []string
		wg         sync.WaitGroup
	)
	for i := 0; i < n; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			incident := testIncident()
			if assert.NoError(t, service.CreateIncident(ctx, incident)) {
				mu.Lock()
				incidentID = append(incidentID, incident.IncidentID)
				mu.Unlock()
			}
		}()
		go func() {
			defer wg.Done()
			traffic := testTraffic()
			if assert.NoError(t, service.CreateTraffic(ctx, traffic)) {
				mu.Lock()
				trafficID = append(trafficID, traffic.IncidentID)
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	expectedIncidents := make([]string, 0, n)
	expectedTraffic := make([]string, 0, n)
	for i := 1; i <= n; i++ {
		expectedIncidents = append(expectedIncidents, fmt.Sprintf("INC-%03d", i))
		expectedTraffic = append(expectedTraffic, fmt.Sprintf("TRAFFIC-%03d", i))
	}
	sort.Strings(incidentID)
	sort.Strings(trafficID)
	assert.Equal(t, expectedIncidents, incidentID)
	assert.Equal(t, expectedTraffic, trafficID)
}

func TestCreateIncident_IDNotReusedAfterDelete(t *testing.T) {
	service, _, _, _ := newMemoryService(t)
	ctx := context.Background()

	first := testIncident()
	require.NoError(t, service.CreateIncident(ctx, first))
	require.NoError(t, service.DeleteIncident(ctx, first.IncidentID))

	second := testIncident()
	require.NoError(t, service.CreateIncident(ctx, second))
	assert.Equal(t, "INC-002", second.IncidentID)
}

func TestCreateIncident_StoreFailure_NoEvent(t *testing.T) {
	// Подготовка
	service, storeMock, _, _ := newMockService(t)
	ctx := context.Background()
	dbError := errors.New("connection refused")

	// Ожидания
	// 1. Чтение последнего номера
	storeMock.EXPECT().MaxSequence(ctx, models.IncidentPrefix).Return(4, nil).Times(1)
	// 2. Сбой записи; событие и запись журнала не ожидаются
	storeMock.EXPECT().
		CreateIncident(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, incident *models.Incident) error {
			assert.Equal(t, "INC-005", incident.IncidentID)
			return dbError
		}).
		Times(1)

	// Действие
	err := service.CreateIncident(ctx, testIncident())

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, dbError)
}

func TestCreateIncident_SequenceReadFailure(t *testing.T) {
	service, storeMock, _, _ := newMockService(t)
	ctx := context.Background()

	storeMock.EXPECT().MaxSequence(ctx, models.IncidentPrefix).Return(0, errors.New("timeout")).Times(1)

	err := service.CreateIncident(ctx, testIncident())
	assert.Error(t, err)
}

func TestCreateIncident_LogFailureDoesNotFailMutation(t *testing.T) {
	service, storeMock, _, publisherMock := newMockService(t)
	ctx := context.Background()

	storeMock.EXPECT().MaxSequence(ctx, models.IncidentPrefix).Return(0, nil).Times(1)
	storeMock.EXPECT().CreateIncident(ctx, gomock.Any()).Return(nil).Times(1)
	publisherMock.EXPECT().Publish(ctx, gomock.Any()).Times(1)
	storeMock.EXPECT().CreateLog(ctx, gomock.Any()).Return(errors.New("disk full")).Times(1)

	err := service.CreateIncident(ctx, testIncident())
	assert.NoError(t, err)
}

func TestGetIncident_Success_FromCache(t *testing.T) {
	// Подготовка
	service, _, cacheMock, _ := newMockService(t)
	ctx := context.Background()
	expected := &models.Incident{IncidentID: "INC-001", Description: "Тестовый инцидент из кеша"}

	// Ожидания
	cacheMock.EXPECT().GetIncident(ctx, "INC-001").Return(expected, nil).Times(1)

	// Действие
	incident, err := service.GetIncident(ctx, "INC-001")

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, expected, incident)
}

func TestGetIncident_Success_FromStore(t *testing.T) {
	// Подготовка
	service, storeMock, cacheMock, _ := newMockService(t)
	ctx := context.Background()
	expected := &models.Incident{IncidentID: "INC-001", Description: "Тестовый инцидент из БД"}

	// Ожидания
	// 1. Промах кеша
	cacheMock.EXPECT().GetIncident(ctx, "INC-001").Return(nil, nil).Times(1)
	// 2. Попадание в хранилище
	storeMock.EXPECT().GetIncident(ctx, "INC-001").Return(expected, nil).Times(1)
	// 3. Запись в кеш
	cacheMock.EXPECT().SetIncident(ctx, expected).Return(nil).Times(1)

	// Действие
	incident, err := service.GetIncident(ctx, "INC-001")

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, expected, incident)
}

func TestGetIncident_NotFound(t *testing.T) {
	service, storeMock, cacheMock, _ := newMockService(t)
	ctx := context.Background()

	cacheMock.EXPECT().GetIncident(ctx, "INC-404").Return(nil, nil).Times(1)
	storeMock.EXPECT().GetIncident(ctx, "INC-404").Return(nil, fmt.Errorf("incident INC-404: %w", models.ErrNotFound)).Times(1)

	incident, err := service.GetIncident(ctx, "INC-404")
	assert.Nil(t, incident)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestUpdateIncident_InvalidatesCache(t *testing.T) {
	service, storeMock, cacheMock, publisherMock := newMockService(t)
	ctx := context.Background()
	existing := &models.Incident{IncidentID: "INC-001", Status: models.IncidentStatusActive, AssignedUnits: []string{}}
	priority := models.PriorityCritical

	storeMock.EXPECT().GetIncident(ctx, "INC-001").Return(existing, nil).Times(1)
	storeMock.EXPECT().UpdateIncident(ctx, gomock.Any()).Return(nil).Times(1)
	cacheMock.EXPECT().InvalidateIncident(ctx, "INC-001").Return(nil).Times(1)
	publisherMock.EXPECT().
		Publish(ctx, gomock.Any()).
		Do(func(_ context.Context, event events.Event) {
			assert.Equal(t, events.KindIncidentUpdated, event.Kind())
		}).
		Times(1)
	storeMock.EXPECT().CreateLog(ctx, gomock.Any()).Return(nil).Times(1)

	updated, err := service.UpdateIncident(ctx, "INC-001", models.IncidentPatch{Priority: &priority})
	require.NoError(t, err)
	assert.Equal(t, models.PriorityCritical, updated.Priority)
}

func TestUpdateIncident_ResolvedAtLifecycle(t *testing.T) {
	service, _, _, clock := newMemoryService(t)
	ctx := context.Background()

	incident := testIncident()
	require.NoError(t, service.CreateIncident(ctx, incident))

	resolved := models.IncidentStatusResolved
	clock.Advance(10 * time.Minute)
	updated, err := service.UpdateIncident(ctx, incident.IncidentID, models.IncidentPatch{Status: &resolved})
	require.NoError(t, err)
	require.NotNil(t, updated.ResolvedAt)
	firstResolution := *updated.ResolvedAt

	// Повторный resolved не сдвигает время
	clock.Advance(5 * time.Minute)
	updated, err = service.UpdateIncident(ctx, incident.IncidentID, models.IncidentPatch{Status: &resolved})
	require.NoError(t, err)
	assert.Equal(t, firstResolution, *updated.ResolvedAt)

	active := models.IncidentStatusActive
	updated, err = service.UpdateIncident(ctx, incident.IncidentID, models.IncidentPatch{Status: &active})
	require.NoError(t, err)
	assert.Nil(t, updated.ResolvedAt)
}

func TestUpdateIncident_NotFound_NoEvent(t *testing.T) {
	service, _, publisher, _ := newMemoryService(t)

	_, err := service.UpdateIncident(context.Background(), "INC-404", models.IncidentPatch{})
	assert.ErrorIs(t, err, models.ErrNotFound)
	assert.Empty(t, publisher.kinds())
}

func TestGetStats_AverageResponseTime(t *testing.T) {
	service, _, _, clock := newMemoryService(t)
	ctx := context.Background()

	stats, err := service.GetStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0.0, stats.AverageResponseTime)

	incident := testIncident()
	require.NoError(t, service.CreateIncident(ctx, incident))
	clock.Advance(10 * time.Minute)
	resolved := models.IncidentStatusResolved
	_, err = service.UpdateIncident(ctx, incident.IncidentID, models.IncidentPatch{Status: &resolved})
	require.NoError(t, err)

	stats, err = service.GetStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 10.0, stats.AverageResponseTime)
	assert.Equal(t, 0, stats.ActiveIncidents)
	assert.Equal(t, 1, stats.TotalIncidentsToday)
}

func TestAverageResponseMinutes(t *testing.T) {
	at := func(d time.Duration) *time.Time {
		v := testStart.Add(d)
		return &v
	}
	incidents := []*models.Incident{
		{CreatedAt: testStart, ResolvedAt: at(10 * time.Minute)},
		{CreatedAt: testStart, ResolvedAt: at(20*time.Minute + 20*time.Second)},
		{CreatedAt: testStart},
	}

	assert.Equal(t, 0.0, AverageResponseMinutes(nil))
	assert.Equal(t, 15.17, AverageResponseMinutes(incidents))
}

func TestCreateAssignment_UpdatesUnitAndIncident(t *testing.T) {
	service, _, publisher, _ := newMemoryService(t)
	ctx := context.Background()

	require.NoError(t, service.CreateUnit(ctx, &models.EmergencyUnit{
		UnitID:      "EMS-001",
		Type:        models.UnitTypeEMS,
		Location:    models.Location{Lat: 38.9, Lng: -77.0},
		Description: "Ambulance 1",
	}))
	incident := testIncident()
	require.NoError(t, service.CreateIncident(ctx, incident))

	assignment := &models.UnitAssignment{UnitID: "EMS-001", IncidentID: incident.IncidentID}
	require.NoError(t, service.CreateAssignment(ctx, assignment))

	assert.Equal(t, int64(1), assignment.ID)
	assert.Equal(t, models.AssignmentStatusAssigned, assignment.Status)

	unit, err := service.GetUnit(ctx, "EMS-001")
	require.NoError(t, err)
	assert.Equal(t, models.UnitStatusResponding, unit.Status)
	require.NotNil(t, unit.CurrentIncidentID)
	assert.Equal(t, incident.IncidentID, *unit.CurrentIncidentID)

	stored, err := service.GetIncident(ctx, incident.IncidentID)
	require.NoError(t, err)
	assert.Equal(t, []string{"EMS-001"}, stored.AssignedUnits)

	assert.Equal(t, []events.Kind{
		events.KindUnitCreated,
		events.KindIncidentCreated,
		events.KindAssignmentCreated,
		events.KindUnitUpdated,
		events.KindIncidentUpdated,
	}, publisher.kinds())
}

func TestCreateAssignment_UnknownUnit(t *testing.T) {
	service, _, publisher, _ := newMemoryService(t)
	ctx := context.Background()

	incident := testIncident()
	require.NoError(t, service.CreateIncident(ctx, incident))

	err := service.CreateAssignment(ctx, &models.UnitAssignment{UnitID: "XX-404", IncidentID: incident.IncidentID})
	assert.ErrorIs(t, err, models.ErrNotFound)
	assert.Equal(t, []events.Kind{events.KindIncidentCreated}, publisher.kinds())
}

func TestUpdateAssignmentStatus_ClearedReleasesUnit(t *testing.T) {
	service, _, publisher, _ := newMemoryService(t)
	ctx := context.Background()

	require.NoError(t, service.CreateUnit(ctx, &models.EmergencyUnit{UnitID: "PD-001", Type: models.UnitTypePolice, Description: "Patrol"}))
	incident := testIncident()
	require.NoError(t, service.CreateIncident(ctx, incident))
	assignment := &models.UnitAssignment{UnitID: "PD-001", IncidentID: incident.IncidentID}
	require.NoError(t, service.CreateAssignment(ctx, assignment))

	onScene, err := service.UpdateAssignmentStatus(ctx, assignment.ID, models.AssignmentStatusOnScene)
	require.NoError(t, err)
	assert.Equal(t, models.AssignmentStatusOnScene, onScene.Status)

	_, err = service.UpdateAssignmentStatus(ctx, assignment.ID, models.AssignmentStatusCleared)
	require.NoError(t, err)

	unit, err := service.GetUnit(ctx, "PD-001")
	require.NoError(t, err)
	assert.Equal(t, models.UnitStatusAvailable, unit.Status)
	assert.Nil(t, unit.CurrentIncidentID)

	kinds := publisher.kinds()
	assert.Equal(t, []events.Kind{
		events.KindAssignmentUpdated,
		events.KindAssignmentUpdated,
		events.KindUnitUpdated,
	}, kinds[len(kinds)-3:])

	_, err = service.UpdateAssignmentStatus(ctx, 99, models.AssignmentStatusCleared)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestCreateAssignment_UnitUpdateFailureKeepsCommittedAssignment(t *testing.T) {
	// Подготовка
	service, storeMock, cacheMock, publisherMock := newMockService(t)
	ctx := context.Background()
	incident := testIncident()
	incident.IncidentID = "INC-001"
	incident.AssignedUnits = []string{}
	var published []events.Kind

	// Ожидания
	// 1. Проверка ссылок и запись назначения
	storeMock.EXPECT().GetIncident(ctx, "INC-001").Return(incident, nil).Times(1)
	storeMock.EXPECT().GetUnit(ctx, "PD-001").Return(&models.EmergencyUnit{UnitID: "PD-001"}, nil).Times(2)
	storeMock.EXPECT().
		CreateAssignment(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, a *models.UnitAssignment) error {
			a.ID = 7
			return nil
		}).
		Times(1)
	// 2. Сбой обновления службы не отменяет остальные шаги
	storeMock.EXPECT().UpdateUnit(ctx, gomock.Any()).Return(errors.New("db down")).Times(1)
	storeMock.EXPECT().
		UpdateIncident(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, updated *models.Incident) error {
			assert.Equal(t, []string{"PD-001"}, updated.AssignedUnits)
			return nil
		}).
		Times(1)
	cacheMock.EXPECT().InvalidateIncident(ctx, "INC-001").Return(nil).Times(1)
	publisherMock.EXPECT().
		Publish(ctx, gomock.Any()).
		Do(func(_ context.Context, event events.Event) { published = append(published, event.Kind()) }).
		Times(2)
	storeMock.EXPECT().CreateLog(ctx, gomock.Any()).Return(nil).Times(1)

	// Действие
	assignment := &models.UnitAssignment{UnitID: "PD-001", IncidentID: "INC-001"}
	err := service.CreateAssignment(ctx, assignment)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, int64(7), assignment.ID)
	assert.Equal(t, []events.Kind{events.KindAssignmentCreated, events.KindIncidentUpdated}, published)
}

func TestUpdateAssignmentStatus_ReleaseFailureKeepsStatus(t *testing.T) {
	service, storeMock, _, publisherMock := newMockService(t)
	ctx := context.Background()

	storeMock.EXPECT().
		GetAssignment(ctx, int64(3)).
		Return(&models.UnitAssignment{ID: 3, UnitID: "PD-001", IncidentID: "INC-001", Status: models.AssignmentStatusOnScene}, nil).
		Times(1)
	storeMock.EXPECT().UpdateAssignment(ctx, gomock.Any()).Return(nil).Times(1)
	publisherMock.EXPECT().Publish(ctx, gomock.Any()).Times(1)
	storeMock.EXPECT().GetUnit(ctx, "PD-001").Return(nil, errors.New("timeout")).Times(1)
	storeMock.EXPECT().CreateLog(ctx, gomock.Any()).Return(nil).Times(1)

	assignment, err := service.UpdateAssignmentStatus(ctx, 3, models.AssignmentStatusCleared)

	require.NoError(t, err)
	assert.Equal(t, models.AssignmentStatusCleared, assignment.Status)
}

func TestDeleteIncident_ReleasesAttachedUnits(t *testing.T) {
	// Подготовка
	service, _, publisher, _ := newMemoryService(t)
	ctx := context.Background()

	require.NoError(t, service.CreateUnit(ctx, &models.EmergencyUnit{UnitID: "PD-001", Type: models.UnitTypePolice, Description: "Patrol"}))
	require.NoError(t, service.CreateUnit(ctx, &models.EmergencyUnit{UnitID: "FD-001", Type: models.UnitTypeFire, Description: "Engine 1"}))
	incident := testIncident()
	require.NoError(t, service.CreateIncident(ctx, incident))
	require.NoError(t, service.CreateAssignment(ctx, &models.UnitAssignment{UnitID: "PD-001", IncidentID: incident.IncidentID}))
	before := len(publisher.all())

	// Действие
	err := service.DeleteIncident(ctx, incident.IncidentID)

	// Проверки
	require.NoError(t, err)
	_, err = service.GetIncident(ctx, incident.IncidentID)
	assert.ErrorIs(t, err, models.ErrNotFound)

	released, err := service.GetUnit(ctx, "PD-001")
	require.NoError(t, err)
	assert.Equal(t, models.UnitStatusAvailable, released.Status)
	assert.Nil(t, released.CurrentIncidentID)

	untouched, err := service.GetUnit(ctx, "FD-001")
	require.NoError(t, err)
	assert.Equal(t, models.UnitStatusAvailable, untouched.Status)

	assignments, err := service.ListAssignments(ctx, models.AssignmentFilter{IncidentID: incident.IncidentID})
	require.NoError(t, err)
	assert.Empty(t, assignments)

	published := publisher.all()[before:]
	require.Len(t, published, 2)
	assert.Equal(t, events.KindIncidentDeleted, published[0].Kind())
	assert.Equal(t, events.KindUnitUpdated, published[1].Kind())
	unit, ok := published[1].Payload().(*models.EmergencyUnit)
	require.True(t, ok)
	assert.Equal(t, "PD-001", unit.UnitID)
	assert.Nil(t, unit.CurrentIncidentID)
}

func TestDeleteIncident_NotFound_NoEvent(t *testing.T) {
	service, _, publisher, _ := newMemoryService(t)

	err := service.DeleteIncident(context.Background(), "INC-404")

	assert.ErrorIs(t, err, models.ErrNotFound)
	assert.Empty(t, publisher.all())
}

func TestDeleteUnit_DetachesFromIncidents(t *testing.T) {
	// Подготовка
	service, _, publisher, _ := newMemoryService(t)
	ctx := context.Background()

	require.NoError(t, service.CreateUnit(ctx, &models.EmergencyUnit{UnitID: "FD-001", Type: models.UnitTypeFire, Description: "Engine 1"}))
	require.NoError(t, service.CreateUnit(ctx, &models.EmergencyUnit{UnitID: "EMS-001", Type: models.UnitTypeEMS, Description: "Ambulance 1"}))
	incident := testIncident()
	require.NoError(t, service.CreateIncident(ctx, incident))
	other := testIncident()
	require.NoError(t, service.CreateIncident(ctx, other))
	require.NoError(t, service.CreateAssignment(ctx, &models.UnitAssignment{UnitID: "FD-001", IncidentID: incident.IncidentID}))
	require.NoError(t, service.CreateAssignment(ctx, &models.UnitAssignment{UnitID: "EMS-001", IncidentID: incident.IncidentID}))
	before := len(publisher.all())

	// Действие
	err := service.DeleteUnit(ctx, "FD-001")

	// Проверки
	require.NoError(t, err)
	_, err = service.GetUnit(ctx, "FD-001")
	assert.ErrorIs(t, err, models.ErrNotFound)

	stored, err := service.GetIncident(ctx, incident.IncidentID)
	require.NoError(t, err)
	assert.Equal(t, []string{"EMS-001"}, stored.AssignedUnits)

	published := publisher.all()[before:]
	require.Len(t, published, 2)
	assert.Equal(t, events.KindUnitDeleted, published[0].Kind())
	assert.Equal(t, events.KindIncidentUpdated, published[1].Kind())
	updated, ok := published[1].Payload().(*models.Incident)
	require.True(t, ok)
	assert.Equal(t, incident.IncidentID, updated.IncidentID)
}

func TestUpdateUnit_UnknownIncidentReference(t *testing.T) {
	service, _, publisher, _ := newMemoryService(t)
	ctx := context.Background()
	require.NoError(t, service.CreateUnit(ctx, &models.EmergencyUnit{UnitID: "PD-001", Type: models.UnitTypePolice, Description: "Patrol"}))

	missing := "INC-404"
	_, err := service.UpdateUnit(ctx, "PD-001", models.UnitPatch{CurrentIncidentID: &missing})
	assert.ErrorIs(t, err, models.ErrUnknownIncident)
	assert.Equal(t, []events.Kind{events.KindUnitCreated}, publisher.kinds())

	incident := testIncident()
	require.NoError(t, service.CreateIncident(ctx, incident))
	unit, err := service.UpdateUnit(ctx, "PD-001", models.UnitPatch{CurrentIncidentID: &incident.IncidentID})
	require.NoError(t, err)
	require.NotNil(t, unit.CurrentIncidentID)
	assert.Equal(t, incident.IncidentID, *unit.CurrentIncidentID)
}

func TestCreateUnit_Duplicate_NoEvent(t *testing.T) {
	service, _, publisher, _ := newMemoryService(t)
	ctx := context.Background()

	require.NoError(t, service.CreateUnit(ctx, &models.EmergencyUnit{UnitID: "PD-001", Type: models.UnitTypePolice}))
	err := service.CreateUnit(ctx, &models.EmergencyUnit{UnitID: "PD-001", Type: models.UnitTypePolice})

	assert.ErrorIs(t, err, models.ErrConflict)
	assert.Equal(t, []events.Kind{events.KindUnitCreated}, publisher.kinds())
}

func TestMoveUnit_ClampsCoordinates(t *testing.T) {
	service, _, publisher, _ := newMemoryService(t)
	ctx := context.Background()

	require.NoError(t, service.CreateUnit(ctx, &models.EmergencyUnit{
		UnitID:   "FD-001",
		Type:     models.UnitTypeFire,
		Status:   models.UnitStatusResponding,
		Location: models.Location{Lat: 89.9995, Lng: -179.9995},
	}))

	unit, err := service.MoveUnit(ctx, "FD-001", 0.001, -0.001)
	require.NoError(t, err)
	assert.Equal(t, 90.0, unit.Location.Lat)
	assert.Equal(t, -180.0, unit.Location.Lng)
	assert.Equal(t, []events.Kind{events.KindUnitCreated, events.KindUnitUpdated}, publisher.kinds())
}

func TestUpdateUnitStatus_WithLocation(t *testing.T) {
	service, _, _, clock := newMemoryService(t)
	ctx := context.Background()

	require.NoError(t, service.CreateUnit(ctx, &models.EmergencyUnit{UnitID: "PD-001", Type: models.UnitTypePolice}))
	clock.Advance(time.Minute)

	location := &models.Location{Lat: 38.91, Lng: -77.02}
	unit, err := service.UpdateUnitStatus(ctx, "PD-001", models.UnitStatusBusy, location)
	require.NoError(t, err)
	assert.Equal(t, models.UnitStatusBusy, unit.Status)
	assert.Equal(t, *location, unit.Location)
	assert.Equal(t, testStart.Add(time.Minute), unit.LastUpdated)
}

func TestTraffic_Lifecycle(t *testing.T) {
	service, _, publisher, clock := newMemoryService(t)
	ctx := context.Background()

	traffic := testTraffic()
	require.NoError(t, service.CreateTraffic(ctx, traffic))
	assert.True(t, traffic.IsActive)

	severity := models.SeverityHigh
	updated, err := service.UpdateTraffic(ctx, traffic.IncidentID, models.TrafficPatch{Severity: &severity})
	require.NoError(t, err)
	assert.Equal(t, models.SeverityHigh, updated.Severity)

	clock.Advance(30 * time.Minute)
	resolved, err := service.ResolveTraffic(ctx, traffic.IncidentID)
	require.NoError(t, err)
	assert.False(t, resolved.IsActive)
	require.NotNil(t, resolved.ResolvedAt)
	assert.Equal(t, testStart.Add(30*time.Minute), *resolved.ResolvedAt)

	active, err := service.ListTraffic(ctx, models.TrafficFilter{ActiveOnly: true})
	require.NoError(t, err)
	assert.Empty(t, active)

	assert.Equal(t, []events.Kind{
		events.KindTrafficCreated,
		events.KindTrafficUpdated,
		events.KindTrafficResolved,
	}, publisher.kinds())
}

func TestMutations_OneEventPerMutationInOrder(t *testing.T) {
	service, _, publisher, _ := newMemoryService(t)
	ctx := context.Background()

	incident := testIncident()
	require.NoError(t, service.CreateIncident(ctx, incident))
	notes := "caller on scene"
	_, err := service.UpdateIncident(ctx, incident.IncidentID, models.IncidentPatch{Notes: &notes})
	require.NoError(t, err)
	require.NoError(t, service.CreateUnit(ctx, &models.EmergencyUnit{UnitID: "PD-001", Type: models.UnitTypePolice}))
	require.NoError(t, service.DeleteUnit(ctx, "PD-001"))
	require.NoError(t, service.DeleteIncident(ctx, incident.IncidentID))

	// Неудачные мутации событий не порождают
	assert.Error(t, service.DeleteIncident(ctx, incident.IncidentID))
	_, err = service.ResolveTraffic(ctx, "TRAFFIC-404")
	assert.Error(t, err)

	published := publisher.all()
	require.Len(t, published, 5)
	assert.Equal(t, []events.Kind{
		events.KindIncidentCreated,
		events.KindIncidentUpdated,
		events.KindUnitCreated,
		events.KindUnitDeleted,
		events.KindIncidentDeleted,
	}, publisher.kinds())
	assert.Equal(t, incident.IncidentID, published[4].Payload())
}

func TestMutations_WriteSystemLog(t *testing.T) {
	service, _, _, _ := newMemoryService(t)
	ctx := context.Background()

	require.NoError(t, service.CreateIncident(ctx, testIncident()))
	require.NoError(t, service.CreateTraffic(ctx, testTraffic()))

	logs, err := service.ListLogs(ctx, models.LogFilter{})
	require.NoError(t, err)
	require.Len(t, logs, 2)
	assert.Equal(t, "traffic", logs[0].Category)
	assert.Equal(t, "incident", logs[1].Category)
	assert.Equal(t, "INC-001", logs[1].Data["incident_id"])
}

func TestListIncidents_NormalizesPage(t *testing.T) {
	service, storeMock, _, _ := newMockService(t)
	ctx := context.Background()

	storeMock.EXPECT().
		ListIncidents(ctx, models.IncidentFilter{Skip: 0, Limit: 100}).
		Return([]*models.Incident{}, nil).
		Times(1)

	incidents, err := service.ListIncidents(ctx, models.IncidentFilter{Skip: -5, Limit: 0})
	require.NoError(t, err)
	assert.Empty(t, incidents)
}

func TestSnapshot_ReturnsActiveState(t *testing.T) {
	service, _, _, _ := newMemoryService(t)
	ctx := context.Background()

	require.NoError(t, service.CreateIncident(ctx, testIncident()))
	traffic := testTraffic()
	require.NoError(t, service.CreateTraffic(ctx, traffic))
	require.NoError(t, service.CreateTraffic(ctx, testTraffic()))
	_, err := service.ResolveTraffic(ctx, traffic.IncidentID)
	require.NoError(t, err)
	require.NoError(t, service.CreateUnit(ctx, &models.EmergencyUnit{UnitID: "PD-001", Type: models.UnitTypePolice}))

	snapshot, err := service.Snapshot(ctx)
	require.NoError(t, err)
	assert.Len(t, snapshot.Incidents, 1)
	assert.Len(t, snapshot.Units, 1)
	require.Len(t, snapshot.Traffic, 1)
	assert.Equal(t, "TRAFFIC-002", snapshot.Traffic[0].IncidentID)
}

func TestSeedSampleData(t *testing.T) {
	service, _, _, _ := newMemoryService(t)
	ctx := context.Background()

	require.NoError(t, service.SeedSampleData(ctx))
	// Повторный вызов на непустом хранилище ничего не делает
	require.NoError(t, service.SeedSampleData(ctx))

	units, err := service.ListUnits(ctx, models.UnitFilter{})
	require.NoError(t, err)
	require.Len(t, units, 3)

	incidents, err := service.ListIncidents(ctx, models.IncidentFilter{})
	require.NoError(t, err)
	require.Len(t, incidents, 1)
	assert.Equal(t, "INC-001", incidents[0].IncidentID)
	assert.Equal(t, []string{"EMS-001"}, incidents[0].AssignedUnits)

	fire, err := service.GetUnit(ctx, "FD-001")
	require.NoError(t, err)
	assert.Equal(t, models.UnitStatusResponding, fire.Status)
}
