package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/shenikar/rtcc_dashboard/internal/events"
	"github.com/shenikar/rtcc_dashboard/internal/models"
	"github.com/sirupsen/logrus"
)

// CreateUnit регистрирует службу с заданным unit_id и публикует unit_created
func (s *Service) CreateUnit(ctx context.Context, unit *models.EmergencyUnit) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "unit",
		"method":  "CreateUnit",
		"unit_id": unit.UnitID,
	})

	s.unitsMu.Lock()
	defer s.unitsMu.Unlock()

	if unit.Status == "" {
		unit.Status = models.UnitStatusAvailable
	}
	unit.LastUpdated = s.clock.Now().UTC()
	unit.IsActive = true

	if err := s.store.CreateUnit(ctx, unit); err != nil {
		log.WithError(err).Error("Failed to create unit in repository")
		return fmt.Errorf("service: could not create unit: %w", err)
	}
	s.publish(ctx, events.UnitCreated(unit))

	log.Info("Unit created successfully")
	s.record(ctx, "unit", fmt.Sprintf("Unit %s registered", unit.UnitID), map[string]any{
		"unit_id": unit.UnitID,
		"type":    unit.Type,
	})
	return nil
}

func (s *Service) GetUnit(ctx context.Context, unitID string) (*models.EmergencyUnit, error) {
	unit, err := s.store.GetUnit(ctx, unitID)
	if err != nil {
		return nil, fmt.Errorf("service: could not get unit: %w", err)
	}
	return unit, nil
}

func (s *Service) ListUnits(ctx context.Context, filter models.UnitFilter) ([]*models.EmergencyUnit, error) {
	filter.Skip, filter.Limit = normalizePage(filter.Skip, filter.Limit)
	units, err := s.store.ListUnits(ctx, filter)
	if err != nil {
		s.logger.WithError(err).WithField("method", "ListUnits").Error("Failed to list units from repository")
		return nil, fmt.Errorf("service: could not list units: %w", err)
	}
	return units, nil
}

// UpdateUnit применяет частичное обновление и публикует unit_updated.
// Новый current_incident_id должен ссылаться на существующий инцидент.
func (s *Service) UpdateUnit(ctx context.Context, unitID string, patch models.UnitPatch) (*models.EmergencyUnit, error) {
	if !patch.ClearIncident && patch.CurrentIncidentID != nil {
		s.incidentsMu.Lock()
		defer s.incidentsMu.Unlock()

		incidentID := *patch.CurrentIncidentID
		if _, err := s.store.GetIncident(ctx, incidentID); err != nil {
			s.logger.WithError(err).WithFields(logrus.Fields{
				"service":     "unit",
				"method":      "UpdateUnit",
				"unit_id":     unitID,
				"incident_id": incidentID,
			}).Warn("Unit references unknown incident")
			if errors.Is(err, models.ErrNotFound) {
				return nil, fmt.Errorf("service: incident %s for unit %s: %w", incidentID, unitID, models.ErrUnknownIncident)
			}
			return nil, fmt.Errorf("service: could not check incident %s: %w", incidentID, err)
		}
	}
	return s.mutateUnit(ctx, "UpdateUnit", unitID, func(unit *models.EmergencyUnit) {
		applyUnitPatch(unit, patch)
	})
}

// UpdateUnitStatus меняет статус службы и, если передана, ее позицию
func (s *Service) UpdateUnitStatus(ctx context.Context, unitID string, status models.UnitStatus, location *models.Location) (*models.EmergencyUnit, error) {
	return s.mutateUnit(ctx, "UpdateUnitStatus", unitID, func(unit *models.EmergencyUnit) {
		unit.Status = status
		if location != nil {
			unit.Location = *location
		}
	})
}

// MoveUnit смещает позицию службы на (dLat, dLng) с ограничением допустимыми координатами.
// Используется симулятором; каждое смещение публикует unit_updated.
func (s *Service) MoveUnit(ctx context.Context, unitID string, dLat, dLng float64) (*models.EmergencyUnit, error) {
	return s.mutateUnit(ctx, "MoveUnit", unitID, func(unit *models.EmergencyUnit) {
		unit.Location.Lat = clamp(unit.Location.Lat+dLat, -90, 90)
		unit.Location.Lng = clamp(unit.Location.Lng+dLng, -180, 180)
	})
}

// DeleteUnit удаляет службу вместе с ее назначениями и публикует unit_deleted.
// Служба убирается из assigned_units инцидентов, каждый из которых получает incident_updated.
func (s *Service) DeleteUnit(ctx context.Context, unitID string) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "unit",
		"method":  "DeleteUnit",
		"unit_id": unitID,
	})

	s.incidentsMu.Lock()
	defer s.incidentsMu.Unlock()
	s.unitsMu.Lock()
	defer s.unitsMu.Unlock()

	incidents, err := s.store.ListIncidents(ctx, models.IncidentFilter{})
	if err != nil {
		log.WithError(err).Error("Failed to list incidents for unit removal")
		return fmt.Errorf("service: could not delete unit %s: %w", unitID, err)
	}

	if err := s.store.DeleteUnit(ctx, unitID); err != nil {
		log.WithError(err).Warn("Failed to delete unit in repository")
		return fmt.Errorf("service: could not delete unit %s: %w", unitID, err)
	}
	s.publish(ctx, events.UnitDeleted(unitID))

	now := s.clock.Now().UTC()
	for _, incident := range incidents {
		if !slices.Contains(incident.AssignedUnits, unitID) {
			continue
		}
		incident.AssignedUnits = slices.DeleteFunc(incident.AssignedUnits, func(id string) bool { return id == unitID })
		incident.UpdatedAt = now
		if err := s.store.UpdateIncident(ctx, incident); err != nil {
			log.WithError(err).WithField("incident_id", incident.IncidentID).Error("Failed to detach unit from incident")
			continue
		}
		s.invalidate(ctx, incident.IncidentID)
		s.publish(ctx, events.IncidentUpdated(incident))
	}

	log.Info("Unit deleted successfully")
	s.record(ctx, "unit", fmt.Sprintf("Unit %s removed", unitID), map[string]any{"unit_id": unitID})
	return nil
}

func (s *Service) mutateUnit(ctx context.Context, method, unitID string, mutate func(*models.EmergencyUnit)) (*models.EmergencyUnit, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "unit",
		"method":  method,
		"unit_id": unitID,
	})

	s.unitsMu.Lock()
	defer s.unitsMu.Unlock()

	unit, err := s.updateUnitLocked(ctx, unitID, mutate)
	if err != nil {
		log.WithError(err).Warn("Failed to update unit")
		return nil, err
	}

	log.WithField("status", unit.Status).Debug("Unit updated")
	if method != "MoveUnit" {
		s.record(ctx, "unit", fmt.Sprintf("Unit %s updated", unitID), map[string]any{
			"unit_id": unitID,
			"status":  unit.Status,
		})
	}
	return unit, nil
}

// updateUnitLocked читает, меняет, сохраняет службу и публикует unit_updated. Требует unitsMu.
func (s *Service) updateUnitLocked(ctx context.Context, unitID string, mutate func(*models.EmergencyUnit)) (*models.EmergencyUnit, error) {
	unit, err := s.store.GetUnit(ctx, unitID)
	if err != nil {
		return nil, fmt.Errorf("service: unit %s not found for update: %w", unitID, err)
	}
	mutate(unit)
	unit.LastUpdated = s.clock.Now().UTC()

	if err := s.store.UpdateUnit(ctx, unit); err != nil {
		return nil, fmt.Errorf("service: could not update unit: %w", err)
	}
	s.publish(ctx, events.UnitUpdated(unit))
	return unit, nil
}

func applyUnitPatch(unit *models.EmergencyUnit, patch models.UnitPatch) {
	if patch.Type != nil {
		unit.Type = *patch.Type
	}
	if patch.Status != nil {
		unit.Status = *patch.Status
	}
	if patch.Location != nil {
		unit.Location = *patch.Location
	}
	if patch.Description != nil {
		unit.Description = *patch.Description
	}
	if patch.ClearIncident {
		unit.CurrentIncidentID = nil
	} else if patch.CurrentIncidentID != nil {
		id := *patch.CurrentIncidentID
		unit.CurrentIncidentID = &id
	}
	if patch.IsActive != nil {
		unit.IsActive = *patch.IsActive
	}
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
