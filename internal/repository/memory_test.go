package repository

import (
	"context"
	"testing"
	"time"

	"github.com/shenikar/rtcc_dashboard/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newIncident(id string, status models.IncidentStatus) *models.Incident {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	return &models.Incident{
		IncidentID:    id,
		Type:          models.IncidentTypeMedical,
		Priority:      models.PriorityHigh,
		Status:        status,
		Location:      models.Location{Lat: 38.9, Lng: -77.0},
		Description:   "test",
		AssignedUnits: []string{},
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func TestMemoryStore_IncidentCRUD(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	incident := newIncident("INC-001", models.IncidentStatusActive)
	require.NoError(t, store.CreateIncident(ctx, incident))

	got, err := store.GetIncident(ctx, "INC-001")
	require.NoError(t, err)
	assert.Equal(t, incident, got)

	// Изменение полученной копии не влияет на хранилище
	got.Description = "changed"
	again, err := store.GetIncident(ctx, "INC-001")
	require.NoError(t, err)
	assert.Equal(t, "test", again.Description)

	got.Status = models.IncidentStatusPending
	require.NoError(t, store.UpdateIncident(ctx, got))
	again, err = store.GetIncident(ctx, "INC-001")
	require.NoError(t, err)
	assert.Equal(t, models.IncidentStatusPending, again.Status)

	require.NoError(t, store.DeleteIncident(ctx, "INC-001"))
	_, err = store.GetIncident(ctx, "INC-001")
	assert.ErrorIs(t, err, models.ErrNotFound)
	assert.ErrorIs(t, store.DeleteIncident(ctx, "INC-001"), models.ErrNotFound)
	assert.ErrorIs(t, store.UpdateIncident(ctx, got), models.ErrNotFound)
}

func TestMemoryStore_DuplicateIncident(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.CreateIncident(ctx, newIncident("INC-001", models.IncidentStatusActive)))
	err := store.CreateIncident(ctx, newIncident("INC-001", models.IncidentStatusActive))
	assert.ErrorIs(t, err, models.ErrConflict)
}

func TestMemoryStore_MaxSequenceSurvivesDelete(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	n, err := store.MaxSequence(ctx, models.IncidentPrefix)
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	require.NoError(t, store.CreateIncident(ctx, newIncident("INC-001", models.IncidentStatusActive)))
	require.NoError(t, store.CreateIncident(ctx, newIncident("INC-002", models.IncidentStatusActive)))
	require.NoError(t, store.DeleteIncident(ctx, "INC-002"))

	n, err = store.MaxSequence(ctx, models.IncidentPrefix)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	n, err = store.MaxSequence(ctx, models.TrafficPrefix)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestMemoryStore_ListIncidentsFilterAndPage(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.CreateIncident(ctx, newIncident("INC-001", models.IncidentStatusActive)))
	require.NoError(t, store.CreateIncident(ctx, newIncident("INC-002", models.IncidentStatusResolved)))
	require.NoError(t, store.CreateIncident(ctx, newIncident("INC-003", models.IncidentStatusActive)))

	active, err := store.ListIncidents(ctx, models.IncidentFilter{Status: models.IncidentStatusActive})
	require.NoError(t, err)
	require.Len(t, active, 2)
	assert.Equal(t, "INC-001", active[0].IncidentID)
	assert.Equal(t, "INC-003", active[1].IncidentID)

	paged, err := store.ListIncidents(ctx, models.IncidentFilter{Skip: 1, Limit: 1})
	require.NoError(t, err)
	require.Len(t, paged, 1)
	assert.Equal(t, "INC-002", paged[0].IncidentID)

	empty, err := store.ListIncidents(ctx, models.IncidentFilter{Skip: 10})
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestMemoryStore_DeleteCascadesAssignments(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.CreateIncident(ctx, newIncident("INC-001", models.IncidentStatusActive)))
	incidentID := "INC-001"
	require.NoError(t, store.CreateUnit(ctx, &models.EmergencyUnit{UnitID: "PD-001", Type: models.UnitTypePolice, IsActive: true, CurrentIncidentID: &incidentID}))

	a := &models.UnitAssignment{UnitID: "PD-001", IncidentID: "INC-001", Status: models.AssignmentStatusAssigned}
	require.NoError(t, store.CreateAssignment(ctx, a))
	assert.Equal(t, int64(1), a.ID)

	err := store.CreateAssignment(ctx, &models.UnitAssignment{UnitID: "XX-404", IncidentID: "INC-001"})
	assert.ErrorIs(t, err, models.ErrNotFound)

	require.NoError(t, store.DeleteIncident(ctx, "INC-001"))
	list, err := store.ListAssignments(ctx, models.AssignmentFilter{UnitID: "PD-001"})
	require.NoError(t, err)
	assert.Empty(t, list)

	// Ссылка службы на удаленный инцидент обнуляется, как ON DELETE SET NULL в PostgreSQL
	unit, err := store.GetUnit(ctx, "PD-001")
	require.NoError(t, err)
	assert.Nil(t, unit.CurrentIncidentID)
}

func TestMemoryStore_LogsNewestFirst(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	for _, category := range []string{"incident", "unit", "incident"} {
		require.NoError(t, store.CreateLog(ctx, &models.SystemLog{Level: "info", Category: category, Message: category}))
	}

	logs, err := store.ListLogs(ctx, models.LogFilter{})
	require.NoError(t, err)
	require.Len(t, logs, 3)
	assert.Equal(t, int64(3), logs[0].ID)
	assert.Equal(t, int64(1), logs[2].ID)

	incidents, err := store.ListLogs(ctx, models.LogFilter{Category: "incident"})
	require.NoError(t, err)
	assert.Len(t, incidents, 2)
}

func TestMemoryStore_DashboardCounters(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	dayStart := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	old := newIncident("INC-001", models.IncidentStatusActive)
	old.CreatedAt = dayStart.Add(-time.Hour)
	require.NoError(t, store.CreateIncident(ctx, old))
	require.NoError(t, store.CreateIncident(ctx, newIncident("INC-002", models.IncidentStatusResolved)))

	require.NoError(t, store.CreateUnit(ctx, &models.EmergencyUnit{UnitID: "PD-001", Status: models.UnitStatusAvailable, IsActive: true}))
	require.NoError(t, store.CreateUnit(ctx, &models.EmergencyUnit{UnitID: "FD-001", Status: models.UnitStatusResponding, IsActive: true}))
	require.NoError(t, store.CreateUnit(ctx, &models.EmergencyUnit{UnitID: "EMS-001", Status: models.UnitStatusAvailable, IsActive: false}))

	require.NoError(t, store.CreateTraffic(ctx, &models.TrafficIncident{IncidentID: "TRAFFIC-001", IsActive: true}))
	require.NoError(t, store.CreateTraffic(ctx, &models.TrafficIncident{IncidentID: "TRAFFIC-002", IsActive: false}))

	counters, err := store.DashboardCounters(ctx, dayStart)
	require.NoError(t, err)
	assert.Equal(t, &models.DashboardCounters{
		ActiveIncidents:     1,
		AvailableUnits:      1,
		RespondingUnits:     1,
		TrafficIssues:       1,
		TotalIncidentsToday: 1,
	}, counters)
}
