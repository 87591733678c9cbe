package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/shenikar/rtcc_dashboard/internal/models"
)

// GetStats собирает показатели дашборда
func (s *Service) GetStats(ctx context.Context) (*models.DashboardStats, error) {
	now := s.clock.Now().UTC()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	counters, err := s.store.DashboardCounters(ctx, dayStart)
	if err != nil {
		s.logger.WithError(err).WithField("method", "GetStats").Error("Failed to count dashboard stats")
		return nil, fmt.Errorf("service: could not get dashboard stats: %w", err)
	}
	resolved, err := s.store.ListResolvedIncidents(ctx)
	if err != nil {
		s.logger.WithError(err).WithField("method", "GetStats").Error("Failed to list resolved incidents")
		return nil, fmt.Errorf("service: could not get dashboard stats: %w", err)
	}

	return &models.DashboardStats{
		ActiveIncidents:     counters.ActiveIncidents,
		AvailableUnits:      counters.AvailableUnits,
		RespondingUnits:     counters.RespondingUnits,
		TrafficIssues:       counters.TrafficIssues,
		TotalIncidentsToday: counters.TotalIncidentsToday,
		AverageResponseTime: AverageResponseMinutes(resolved),
	}, nil
}

// AverageResponseMinutes - среднее (resolved_at - created_at) в минутах, округленное до сотых.
// Инциденты без resolved_at не учитываются; без таких инцидентов результат 0.
func AverageResponseMinutes(incidents []*models.Incident) float64 {
	var total float64
	var count int
	for _, incident := range incidents {
		if incident.ResolvedAt == nil {
			continue
		}
		total += incident.ResolvedAt.Sub(incident.CreatedAt).Minutes()
		count++
	}
	if count == 0 {
		return 0
	}
	return math.Round(total/float64(count)*100) / 100
}

// ListLogs возвращает записи системного журнала, новые первыми
func (s *Service) ListLogs(ctx context.Context, filter models.LogFilter) ([]*models.SystemLog, error) {
	filter.Skip, filter.Limit = normalizePage(filter.Skip, filter.Limit)
	logs, err := s.store.ListLogs(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("service: could not list system logs: %w", err)
	}
	return logs, nil
}

// Snapshot читает текущее состояние для сообщения init.
// Блокировки классов не берутся: Snapshot вызывается брокером под его собственной блокировкой реестра.
func (s *Service) Snapshot(ctx context.Context) (*models.Snapshot, error) {
	incidents, err := s.store.ListIncidents(ctx, models.IncidentFilter{})
	if err != nil {
		return nil, fmt.Errorf("service: snapshot incidents: %w", err)
	}
	units, err := s.store.ListUnits(ctx, models.UnitFilter{ActiveOnly: true})
	if err != nil {
		return nil, fmt.Errorf("service: snapshot units: %w", err)
	}
	traffic, err := s.store.ListTraffic(ctx, models.TrafficFilter{ActiveOnly: true})
	if err != nil {
		return nil, fmt.Errorf("service: snapshot traffic: %w", err)
	}
	return &models.Snapshot{Incidents: incidents, Units: units, Traffic: traffic}, nil
}

// SeedSampleData заполняет пустое хранилище демонстрационными службами и инцидентом INC-001.
// Данные проходят обычный путь записи, поэтому попадают в журнал и рассылку.
func (s *Service) SeedSampleData(ctx context.Context) error {
	units, err := s.store.ListUnits(ctx, models.UnitFilter{Limit: 1})
	if err != nil {
		return fmt.Errorf("service: could not check units before seeding: %w", err)
	}
	incidents, err := s.store.ListIncidents(ctx, models.IncidentFilter{Limit: 1})
	if err != nil {
		return fmt.Errorf("service: could not check incidents before seeding: %w", err)
	}
	if len(units) > 0 || len(incidents) > 0 {
		s.logger.Info("Store is not empty, skipping sample data")
		return nil
	}

	sampleUnits := []*models.EmergencyUnit{
		{UnitID: "PD-001", Type: models.UnitTypePolice, Status: models.UnitStatusAvailable, Location: models.Location{Lat: 38.9072, Lng: -77.0369}, Description: "Metro Police Unit 1"},
		{UnitID: "FD-001", Type: models.UnitTypeFire, Status: models.UnitStatusResponding, Location: models.Location{Lat: 38.8951, Lng: -77.0364}, Description: "Fire Engine 1"},
		{UnitID: "EMS-001", Type: models.UnitTypeEMS, Status: models.UnitStatusAvailable, Location: models.Location{Lat: 38.9007, Lng: -77.0167}, Description: "Ambulance 1"},
	}
	for _, unit := range sampleUnits {
		if err := s.CreateUnit(ctx, unit); err != nil && !errors.Is(err, models.ErrConflict) {
			return err
		}
	}

	incident := &models.Incident{
		Type:        models.IncidentTypeMedical,
		Priority:    models.PriorityHigh,
		Status:      models.IncidentStatusActive,
		Location:    models.Location{Lat: 38.9072, Lng: -77.0369},
		Description: "Medical emergency at Union Station",
	}
	if err := s.CreateIncident(ctx, incident); err != nil {
		return err
	}
	if err := s.CreateAssignment(ctx, &models.UnitAssignment{UnitID: "EMS-001", IncidentID: incident.IncidentID}); err != nil {
		return err
	}

	s.logger.WithField("incident_id", incident.IncidentID).Info("Sample data seeded")
	return nil
}
