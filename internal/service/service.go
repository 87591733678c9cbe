package service

//go:generate mockgen -source=service.go -destination=mocks/mock_service.go -package=mocks

import (
	"context"
	"sync"

	"github.com/jonboulle/clockwork"
	"github.com/shenikar/rtcc_dashboard/internal/events"
	"github.com/shenikar/rtcc_dashboard/internal/models"
	"github.com/sirupsen/logrus"
)

const (
	defaultLimit = 100
	maxLimit     = 1000
)

// CommandCenter определяет контракт бизнес-логики командного центра
type CommandCenter interface {
	CreateIncident(ctx context.Context, incident *models.Incident) error
	GetIncident(ctx context.Context, incidentID string) (*models.Incident, error)
	ListIncidents(ctx context.Context, filter models.IncidentFilter) ([]*models.Incident, error)
	UpdateIncident(ctx context.Context, incidentID string, patch models.IncidentPatch) (*models.Incident, error)
	DeleteIncident(ctx context.Context, incidentID string) error

	CreateUnit(ctx context.Context, unit *models.EmergencyUnit) error
	GetUnit(ctx context.Context, unitID string) (*models.EmergencyUnit, error)
	ListUnits(ctx context.Context, filter models.UnitFilter) ([]*models.EmergencyUnit, error)
	UpdateUnit(ctx context.Context, unitID string, patch models.UnitPatch) (*models.EmergencyUnit, error)
	UpdateUnitStatus(ctx context.Context, unitID string, status models.UnitStatus, location *models.Location) (*models.EmergencyUnit, error)
	MoveUnit(ctx context.Context, unitID string, dLat, dLng float64) (*models.EmergencyUnit, error)
	DeleteUnit(ctx context.Context, unitID string) error

	CreateAssignment(ctx context.Context, assignment *models.UnitAssignment) error
	ListAssignments(ctx context.Context, filter models.AssignmentFilter) ([]*models.UnitAssignment, error)
	UpdateAssignmentStatus(ctx context.Context, id int64, status models.AssignmentStatus) (*models.UnitAssignment, error)

	CreateTraffic(ctx context.Context, traffic *models.TrafficIncident) error
	GetTraffic(ctx context.Context, incidentID string) (*models.TrafficIncident, error)
	ListTraffic(ctx context.Context, filter models.TrafficFilter) ([]*models.TrafficIncident, error)
	UpdateTraffic(ctx context.Context, incidentID string, patch models.TrafficPatch) (*models.TrafficIncident, error)
	ResolveTraffic(ctx context.Context, incidentID string) (*models.TrafficIncident, error)

	GetStats(ctx context.Context) (*models.DashboardStats, error)
	ListLogs(ctx context.Context, filter models.LogFilter) ([]*models.SystemLog, error)
	Snapshot(ctx context.Context) (*models.Snapshot, error)
}

// Service реализует CommandCenter. Каждая мутация выполняется под блокировкой
// своего класса сущностей: фиксация в хранилище и публикация события идут подряд,
// и другая мутация того же класса не может вклиниться между ними.
// Порядок захвата блокировок: incidents -> units -> assignments -> traffic.
type Service struct {
	store     Store
	cache     IncidentCache
	publisher events.Publisher
	clock     clockwork.Clock
	logger    *logrus.Logger
	ids       *idAllocator

	incidentsMu   sync.Mutex
	unitsMu       sync.Mutex
	assignmentsMu sync.Mutex
	trafficMu     sync.Mutex
}

// NewService создает сервис. cache может быть nil - тогда кеширование отключено.
func NewService(store Store, cache IncidentCache, publisher events.Publisher, clock clockwork.Clock, logger *logrus.Logger) *Service {
	if cache == nil {
		cache = noopCache{}
	}
	if publisher == nil {
		publisher = events.Publishers{}
	}
	return &Service{
		store:     store,
		cache:     cache,
		publisher: publisher,
		clock:     clock,
		logger:    logger,
		ids:       &idAllocator{source: store},
	}
}

// publish отправляет событие уже зафиксированной мутации; ошибок не бывает по контракту Publisher
func (s *Service) publish(ctx context.Context, event events.Event) {
	s.publisher.Publish(ctx, event)
}

// record пишет запись в системный журнал. Сбой журнала не влияет на результат мутации.
func (s *Service) record(ctx context.Context, category, message string, data map[string]any) {
	entry := &models.SystemLog{
		Timestamp: s.clock.Now().UTC(),
		Level:     "info",
		Category:  category,
		Message:   message,
		Data:      data,
	}
	if err := s.store.CreateLog(ctx, entry); err != nil {
		s.logger.WithError(err).WithField("category", category).Warn("Failed to write system log")
	}
}

func normalizePage(skip, limit int) (int, int) {
	if skip < 0 {
		skip = 0
	}
	if limit < 1 || limit > maxLimit {
		limit = defaultLimit
	}
	return skip, limit
}
