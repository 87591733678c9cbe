package service

import (
	"context"
	"fmt"

	"github.com/shenikar/rtcc_dashboard/internal/events"
	"github.com/shenikar/rtcc_dashboard/internal/models"
	"github.com/sirupsen/logrus"
)

// CreateTraffic выделяет TRAFFIC-идентификатор, сохраняет происшествие и публикует traffic_created
func (s *Service) CreateTraffic(ctx context.Context, traffic *models.TrafficIncident) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "traffic",
		"method":  "CreateTraffic",
		"type":    traffic.Type,
	})

	s.trafficMu.Lock()
	defer s.trafficMu.Unlock()

	id, err := s.ids.Allocate(ctx, models.TrafficPrefix)
	if err != nil {
		log.WithError(err).Error("Failed to allocate traffic incident id")
		return fmt.Errorf("service: could not create traffic incident: %w", err)
	}

	traffic.IncidentID = id
	traffic.CreatedAt = s.clock.Now().UTC()
	traffic.ResolvedAt = nil
	traffic.IsActive = true
	if traffic.AffectedRoads == nil {
		traffic.AffectedRoads = []string{}
	}

	if err := s.store.CreateTraffic(ctx, traffic); err != nil {
		log.WithError(err).Error("Failed to create traffic incident in repository")
		return fmt.Errorf("service: could not create traffic incident: %w", err)
	}
	s.publish(ctx, events.TrafficCreated(traffic))

	log.WithField("incident_id", id).Info("Traffic incident created successfully")
	s.record(ctx, "traffic", fmt.Sprintf("Traffic incident %s reported", id), map[string]any{
		"incident_id": id,
		"type":        traffic.Type,
		"severity":    traffic.Severity,
	})
	return nil
}

func (s *Service) GetTraffic(ctx context.Context, incidentID string) (*models.TrafficIncident, error) {
	traffic, err := s.store.GetTraffic(ctx, incidentID)
	if err != nil {
		return nil, fmt.Errorf("service: could not get traffic incident: %w", err)
	}
	return traffic, nil
}

func (s *Service) ListTraffic(ctx context.Context, filter models.TrafficFilter) ([]*models.TrafficIncident, error) {
	filter.Skip, filter.Limit = normalizePage(filter.Skip, filter.Limit)
	list, err := s.store.ListTraffic(ctx, filter)
	if err != nil {
		s.logger.WithError(err).WithField("method", "ListTraffic").Error("Failed to list traffic incidents from repository")
		return nil, fmt.Errorf("service: could not list traffic incidents: %w", err)
	}
	return list, nil
}

// UpdateTraffic применяет частичное обновление и публикует traffic_updated
func (s *Service) UpdateTraffic(ctx context.Context, incidentID string, patch models.TrafficPatch) (*models.TrafficIncident, error) {
	return s.mutateTraffic(ctx, "UpdateTraffic", incidentID, events.TrafficUpdated, func(t *models.TrafficIncident) {
		applyTrafficPatch(t, patch)
	})
}

// ResolveTraffic снимает происшествие с активного учета и публикует traffic_resolved
func (s *Service) ResolveTraffic(ctx context.Context, incidentID string) (*models.TrafficIncident, error) {
	now := s.clock.Now().UTC()
	return s.mutateTraffic(ctx, "ResolveTraffic", incidentID, events.TrafficResolved, func(t *models.TrafficIncident) {
		t.IsActive = false
		t.ResolvedAt = &now
	})
}

func (s *Service) mutateTraffic(
	ctx context.Context,
	method, incidentID string,
	newEvent func(*models.TrafficIncident) events.Event,
	mutate func(*models.TrafficIncident),
) (*models.TrafficIncident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "traffic",
		"method":      method,
		"incident_id": incidentID,
	})

	s.trafficMu.Lock()
	defer s.trafficMu.Unlock()

	traffic, err := s.store.GetTraffic(ctx, incidentID)
	if err != nil {
		log.WithError(err).Warn("Attempted to update a non-existent traffic incident")
		return nil, fmt.Errorf("service: traffic incident %s not found for update: %w", incidentID, err)
	}
	mutate(traffic)

	if err := s.store.UpdateTraffic(ctx, traffic); err != nil {
		log.WithError(err).Error("Failed to update traffic incident in repository")
		return nil, fmt.Errorf("service: could not update traffic incident: %w", err)
	}
	event := newEvent(traffic)
	s.publish(ctx, event)

	log.Info("Traffic incident updated successfully")
	s.record(ctx, "traffic", fmt.Sprintf("Traffic incident %s: %s", incidentID, event.Kind()), map[string]any{
		"incident_id": incidentID,
		"is_active":   traffic.IsActive,
	})
	return traffic, nil
}

func applyTrafficPatch(t *models.TrafficIncident, patch models.TrafficPatch) {
	if patch.Type != nil {
		t.Type = *patch.Type
	}
	if patch.Severity != nil {
		t.Severity = *patch.Severity
	}
	if patch.Location != nil {
		t.Location = *patch.Location
	}
	if patch.Description != nil {
		t.Description = *patch.Description
	}
	if patch.AffectedRoads != nil {
		t.AffectedRoads = append([]string{}, patch.AffectedRoads...)
	}
	if patch.EstimatedDuration != nil {
		t.EstimatedDuration = *patch.EstimatedDuration
	}
	if patch.IsActive != nil {
		t.IsActive = *patch.IsActive
	}
	if patch.ResolvedAt != nil {
		resolvedAt := patch.ResolvedAt.UTC()
		t.ResolvedAt = &resolvedAt
	}
}
