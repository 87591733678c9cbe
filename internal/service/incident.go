package service

import (
	"context"
	"fmt"
	"time"

	"github.com/shenikar/rtcc_dashboard/internal/events"
	"github.com/shenikar/rtcc_dashboard/internal/models"
	"github.com/sirupsen/logrus"
)

// CreateIncident выделяет следующий INC-идентификатор, сохраняет инцидент и публикует incident_created
func (s *Service) CreateIncident(ctx context.Context, incident *models.Incident) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "incident",
		"method":  "CreateIncident",
		"type":    incident.Type,
	})
	log.Debug("Attempting to create a new incident")

	s.incidentsMu.Lock()
	defer s.incidentsMu.Unlock()

	id, err := s.ids.Allocate(ctx, models.IncidentPrefix)
	if err != nil {
		log.WithError(err).Error("Failed to allocate incident id")
		return fmt.Errorf("service: could not create incident: %w", err)
	}

	now := s.clock.Now().UTC()
	incident.IncidentID = id
	incident.CreatedAt = now
	incident.UpdatedAt = now
	if incident.Status == "" {
		incident.Status = models.IncidentStatusActive
	}
	if incident.Status == models.IncidentStatusResolved {
		incident.ResolvedAt = &now
	}
	if incident.AssignedUnits == nil {
		incident.AssignedUnits = []string{}
	}

	if err := s.store.CreateIncident(ctx, incident); err != nil {
		log.WithError(err).Error("Failed to create incident in repository")
		return fmt.Errorf("service: could not create incident: %w", err)
	}
	s.publish(ctx, events.IncidentCreated(incident))

	log.WithField("incident_id", id).Info("Incident created successfully")
	s.record(ctx, "incident", fmt.Sprintf("Incident %s created", id), map[string]any{
		"incident_id": id,
		"type":        incident.Type,
		"priority":    incident.Priority,
	})
	return nil
}

// GetIncident получает инцидент по ID, сначала пробуя кеш
func (s *Service) GetIncident(ctx context.Context, incidentID string) (*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "GetIncident",
		"incident_id": incidentID,
	})

	cached, err := s.cache.GetIncident(ctx, incidentID)
	if err != nil {
		log.WithError(err).Warn("Failed to read incident from cache")
	}
	if cached != nil {
		return cached, nil
	}

	incident, err := s.store.GetIncident(ctx, incidentID)
	if err != nil {
		return nil, fmt.Errorf("service: could not get incident: %w", err)
	}
	if err := s.cache.SetIncident(ctx, incident); err != nil {
		log.WithError(err).Warn("Failed to put incident into cache")
	}
	return incident, nil
}

// ListIncidents возвращает список инцидентов с фильтрами и пагинацией
func (s *Service) ListIncidents(ctx context.Context, filter models.IncidentFilter) ([]*models.Incident, error) {
	filter.Skip, filter.Limit = normalizePage(filter.Skip, filter.Limit)
	incidents, err := s.store.ListIncidents(ctx, filter)
	if err != nil {
		s.logger.WithError(err).WithField("method", "ListIncidents").Error("Failed to list incidents from repository")
		return nil, fmt.Errorf("service: could not list incidents: %w", err)
	}
	return incidents, nil
}

// UpdateIncident применяет частичное обновление и публикует incident_updated
func (s *Service) UpdateIncident(ctx context.Context, incidentID string, patch models.IncidentPatch) (*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "UpdateIncident",
		"incident_id": incidentID,
	})

	s.incidentsMu.Lock()
	defer s.incidentsMu.Unlock()

	incident, err := s.store.GetIncident(ctx, incidentID)
	if err != nil {
		log.WithError(err).Warn("Attempted to update a non-existent incident")
		return nil, fmt.Errorf("service: incident %s not found for update: %w", incidentID, err)
	}

	now := s.clock.Now().UTC()
	applyIncidentPatch(incident, patch, now)

	if err := s.store.UpdateIncident(ctx, incident); err != nil {
		log.WithError(err).Error("Failed to update incident in repository")
		return nil, fmt.Errorf("service: could not update incident: %w", err)
	}
	s.invalidate(ctx, incidentID)
	s.publish(ctx, events.IncidentUpdated(incident))

	log.Info("Incident updated successfully")
	s.record(ctx, "incident", fmt.Sprintf("Incident %s updated", incidentID), map[string]any{
		"incident_id": incidentID,
		"status":      incident.Status,
	})
	return incident, nil
}

// DeleteIncident удаляет инцидент и публикует incident_deleted.
// Службы, закрепленные за инцидентом, освобождаются, каждая со своим unit_updated.
func (s *Service) DeleteIncident(ctx context.Context, incidentID string) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "DeleteIncident",
		"incident_id": incidentID,
	})

	s.incidentsMu.Lock()
	defer s.incidentsMu.Unlock()
	s.unitsMu.Lock()
	defer s.unitsMu.Unlock()

	// Список читается до удаления: PostgreSQL обнуляет ссылку каскадно
	attached, err := s.unitsOnIncident(ctx, incidentID)
	if err != nil {
		log.WithError(err).Error("Failed to list units attached to incident")
		return fmt.Errorf("service: could not delete incident %s: %w", incidentID, err)
	}

	if err := s.store.DeleteIncident(ctx, incidentID); err != nil {
		log.WithError(err).Warn("Failed to delete incident in repository")
		return fmt.Errorf("service: could not delete incident %s: %w", incidentID, err)
	}
	s.invalidate(ctx, incidentID)
	s.publish(ctx, events.IncidentDeleted(incidentID))

	for _, unitID := range attached {
		if _, err := s.updateUnitLocked(ctx, unitID, func(unit *models.EmergencyUnit) {
			unit.CurrentIncidentID = nil
			if unit.Status == models.UnitStatusResponding {
				unit.Status = models.UnitStatusAvailable
			}
		}); err != nil {
			log.WithError(err).WithField("unit_id", unitID).Error("Failed to release unit of deleted incident")
		}
	}

	log.WithField("released_units", len(attached)).Info("Incident deleted successfully")
	s.record(ctx, "incident", fmt.Sprintf("Incident %s deleted", incidentID), map[string]any{"incident_id": incidentID})
	return nil
}

// unitsOnIncident возвращает unit_id служб, у которых current_incident_id указывает на инцидент
func (s *Service) unitsOnIncident(ctx context.Context, incidentID string) ([]string, error) {
	units, err := s.store.ListUnits(ctx, models.UnitFilter{})
	if err != nil {
		return nil, err
	}
	var ids []string
	for _, unit := range units {
		if unit.CurrentIncidentID != nil && *unit.CurrentIncidentID == incidentID {
			ids = append(ids, unit.UnitID)
		}
	}
	return ids, nil
}

func (s *Service) invalidate(ctx context.Context, incidentID string) {
	if err := s.cache.InvalidateIncident(ctx, incidentID); err != nil {
		s.logger.WithError(err).WithField("incident_id", incidentID).Warn("Failed to invalidate incident cache")
	}
}

// applyIncidentPatch переносит заданные поля; переход в resolved фиксирует resolved_at
func applyIncidentPatch(incident *models.Incident, patch models.IncidentPatch, now time.Time) {
	if patch.Type != nil {
		incident.Type = *patch.Type
	}
	if patch.Priority != nil {
		incident.Priority = *patch.Priority
	}
	if patch.Location != nil {
		incident.Location = *patch.Location
	}
	if patch.Description != nil {
		incident.Description = *patch.Description
	}
	if patch.Notes != nil {
		notes := *patch.Notes
		incident.Notes = &notes
	}
	if patch.AssignedUnits != nil {
		incident.AssignedUnits = append([]string{}, patch.AssignedUnits...)
	}
	if patch.Status != nil {
		switch {
		case *patch.Status == models.IncidentStatusResolved && incident.ResolvedAt == nil:
			resolvedAt := now
			incident.ResolvedAt = &resolvedAt
		case *patch.Status != models.IncidentStatusResolved:
			incident.ResolvedAt = nil
		}
		incident.Status = *patch.Status
	}
	incident.UpdatedAt = now
}
