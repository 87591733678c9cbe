package service

//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks

import (
	"context"
	"time"

	"github.com/shenikar/rtcc_dashboard/internal/models"
)

// Store определяет контракт хранилища состояния командного центра.
// Реализация сама сериализует свои записи, но сервис не полагается на
// атомарность последовательности из нескольких вызовов.
// Limit == 0 в фильтрах означает "без ограничения".
type Store interface {
	CreateIncident(ctx context.Context, incident *models.Incident) error
	GetIncident(ctx context.Context, incidentID string) (*models.Incident, error)
	ListIncidents(ctx context.Context, filter models.IncidentFilter) ([]*models.Incident, error)
	UpdateIncident(ctx context.Context, incident *models.Incident) error
	DeleteIncident(ctx context.Context, incidentID string) error
	ListResolvedIncidents(ctx context.Context) ([]*models.Incident, error)

	CreateUnit(ctx context.Context, unit *models.EmergencyUnit) error
	GetUnit(ctx context.Context, unitID string) (*models.EmergencyUnit, error)
	ListUnits(ctx context.Context, filter models.UnitFilter) ([]*models.EmergencyUnit, error)
	UpdateUnit(ctx context.Context, unit *models.EmergencyUnit) error
	DeleteUnit(ctx context.Context, unitID string) error

	CreateAssignment(ctx context.Context, assignment *models.UnitAssignment) error
	GetAssignment(ctx context.Context, id int64) (*models.UnitAssignment, error)
	ListAssignments(ctx context.Context, filter models.AssignmentFilter) ([]*models.UnitAssignment, error)
	UpdateAssignment(ctx context.Context, assignment *models.UnitAssignment) error

	CreateTraffic(ctx context.Context, traffic *models.TrafficIncident) error
	GetTraffic(ctx context.Context, incidentID string) (*models.TrafficIncident, error)
	ListTraffic(ctx context.Context, filter models.TrafficFilter) ([]*models.TrafficIncident, error)
	UpdateTraffic(ctx context.Context, traffic *models.TrafficIncident) error

	CreateLog(ctx context.Context, entry *models.SystemLog) error
	ListLogs(ctx context.Context, filter models.LogFilter) ([]*models.SystemLog, error)

	// MaxSequence возвращает наибольший числовой суффикс, выданный для префикса, или 0
	MaxSequence(ctx context.Context, prefix string) (int, error)
	// DashboardCounters считает агрегаты дашборда; dayStart - начало текущих суток
	DashboardCounters(ctx context.Context, dayStart time.Time) (*models.DashboardCounters, error)
}

// IncidentCache - кеш отдельных инцидентов (Redis). Промах кеша - (nil, nil).
type IncidentCache interface {
	GetIncident(ctx context.Context, incidentID string) (*models.Incident, error)
	SetIncident(ctx context.Context, incident *models.Incident) error
	InvalidateIncident(ctx context.Context, incidentID string) error
}

type noopCache struct{}

func (noopCache) GetIncident(context.Context, string) (*models.Incident, error) { return nil, nil }
func (noopCache) SetIncident(context.Context, *models.Incident) error           { return nil }
func (noopCache) InvalidateIncident(context.Context, string) error              { return nil }
