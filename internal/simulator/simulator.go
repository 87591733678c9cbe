package simulator

//go:generate mockgen -source=simulator.go -destination=mocks/mock_mutator.go -package=mocks

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/shenikar/rtcc_dashboard/internal/metrics"
	"github.com/shenikar/rtcc_dashboard/internal/models"
	"github.com/sirupsen/logrus"
)

const (
	DefaultInterval            = 30 * time.Second
	DefaultMovementJitter      = 0.001
	DefaultIncidentProbability = 0.05
	DefaultTrafficProbability  = 0.03
	DefaultSpread              = 0.05

	// respondingPageSize ограничивает число служб, смещаемых за один тик
	respondingPageSize = 1000
)

// DefaultReference - центр области генерации (Вашингтон, округ Колумбия)
var DefaultReference = models.Location{Lat: 38.9072, Lng: -77.0369}

var simulatedRoads = []string{
	"I-395", "I-66", "I-295", "I-695", "Route 50",
	"New York Ave", "Constitution Ave", "Pennsylvania Ave", "K St", "16th St",
}

// Mutator - путь записи, которым пользуются и клиенты, и симулятор
type Mutator interface {
	ListUnits(ctx context.Context, filter models.UnitFilter) ([]*models.EmergencyUnit, error)
	MoveUnit(ctx context.Context, unitID string, dLat, dLng float64) (*models.EmergencyUnit, error)
	CreateIncident(ctx context.Context, incident *models.Incident) error
	CreateTraffic(ctx context.Context, traffic *models.TrafficIncident) error
}

type Config struct {
	Interval            time.Duration
	MovementJitter      float64
	IncidentProbability float64
	TrafficProbability  float64
	Reference           models.Location
	Spread              float64
	// Rand - источник случайности; nil означает недетерминированный источник
	Rand *rand.Rand
}

// Simulator периодически двигает службы в статусе responding и
// с заданной вероятностью создает новые инциденты и дорожные происшествия.
type Simulator struct {
	cfg     Config
	mutator Mutator
	clock   clockwork.Clock
	logger  *logrus.Logger
	rnd     *rand.Rand
}

func New(cfg Config, mutator Mutator, clock clockwork.Clock, logger *logrus.Logger) *Simulator {
	if cfg.Interval <= 0 {
		cfg.Interval = DefaultInterval
	}
	rnd := cfg.Rand
	if rnd == nil {
		rnd = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Simulator{
		cfg:     cfg,
		mutator: mutator,
		clock:   clock,
		logger:  logger,
		rnd:     rnd,
	}
}

// Run выполняет тики с заданным интервалом до отмены ctx. Ошибки тика не останавливают цикл.
func (s *Simulator) Run(ctx context.Context) error {
	ticker := s.clock.NewTicker(s.cfg.Interval)
	defer ticker.Stop()

	s.logger.WithField("interval", s.cfg.Interval.String()).Info("Simulator started")
	for {
		select {
		case <-ticker.Chan():
			s.Tick(ctx)
		case <-ctx.Done():
			s.logger.Info("Simulator stopped")
			return nil
		}
	}
}

// Tick выполняет один шаг симуляции. Каждый шаг независим: сбой одного не отменяет остальные.
func (s *Simulator) Tick(ctx context.Context) {
	metrics.SimulatorTicks.Inc()

	s.moveRespondingUnits(ctx)

	if s.rnd.Float64() < s.cfg.IncidentProbability {
		incident := s.randomIncident()
		if err := s.mutator.CreateIncident(ctx, incident); err != nil {
			s.fail("create_incident", err)
		} else {
			s.logger.WithField("incident_id", incident.IncidentID).Debug("Simulated incident created")
		}
	}

	if s.rnd.Float64() < s.cfg.TrafficProbability {
		traffic := s.randomTraffic()
		if err := s.mutator.CreateTraffic(ctx, traffic); err != nil {
			s.fail("create_traffic", err)
		} else {
			s.logger.WithField("incident_id", traffic.IncidentID).Debug("Simulated traffic incident created")
		}
	}
}

func (s *Simulator) moveRespondingUnits(ctx context.Context) {
	units, err := s.mutator.ListUnits(ctx, models.UnitFilter{
		Status: models.UnitStatusResponding,
		Limit:  respondingPageSize,
	})
	if err != nil {
		s.fail("list_units", err)
		return
	}
	for _, unit := range units {
		dLat := s.uniform(-s.cfg.MovementJitter, s.cfg.MovementJitter)
		dLng := s.uniform(-s.cfg.MovementJitter, s.cfg.MovementJitter)
		if _, err := s.mutator.MoveUnit(ctx, unit.UnitID, dLat, dLng); err != nil {
			s.fail("move_unit", fmt.Errorf("unit %s: %w", unit.UnitID, err))
		}
	}
}

func (s *Simulator) randomIncident() *models.Incident {
	incidentType := models.IncidentTypes[s.rnd.IntN(len(models.IncidentTypes))]
	return &models.Incident{
		Type:        incidentType,
		Priority:    models.Priorities[s.rnd.IntN(len(models.Priorities))],
		Status:      models.IncidentStatusActive,
		Location:    s.randomLocation(),
		Description: fmt.Sprintf("Simulated %s incident", incidentType),
	}
}

func (s *Simulator) randomTraffic() *models.TrafficIncident {
	trafficType := models.TrafficIncidentTypes[s.rnd.IntN(len(models.TrafficIncidentTypes))]
	first := s.rnd.IntN(len(simulatedRoads))
	roads := []string{simulatedRoads[first]}
	if s.rnd.IntN(2) == 1 {
		roads = append(roads, simulatedRoads[(first+1+s.rnd.IntN(len(simulatedRoads)-1))%len(simulatedRoads)])
	}
	return &models.TrafficIncident{
		Type:              trafficType,
		Severity:          models.Severities[s.rnd.IntN(len(models.Severities))],
		Location:          s.randomLocation(),
		Description:       fmt.Sprintf("Simulated %s on %s", trafficType, roads[0]),
		AffectedRoads:     roads,
		EstimatedDuration: 15 + s.rnd.IntN(166),
	}
}

func (s *Simulator) randomLocation() models.Location {
	return models.Location{
		Lat: s.cfg.Reference.Lat + s.uniform(-s.cfg.Spread, s.cfg.Spread),
		Lng: s.cfg.Reference.Lng + s.uniform(-s.cfg.Spread, s.cfg.Spread),
	}
}

func (s *Simulator) uniform(lo, hi float64) float64 {
	return lo + s.rnd.Float64()*(hi-lo)
}

func (s *Simulator) fail(step string, err error) {
	metrics.SimulatorErrors.WithLabelValues(step).Inc()
	s.logger.WithError(err).WithField("step", step).Error("Simulator step failed")
}
