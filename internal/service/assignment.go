package service

import (
	"context"
	"fmt"
	"slices"

	"github.com/shenikar/rtcc_dashboard/internal/events"
	"github.com/shenikar/rtcc_dashboard/internal/models"
	"github.com/sirupsen/logrus"
)

// CreateAssignment назначает службу на инцидент.
// Публикует assignment_created, затем unit_updated (служба переходит в responding)
// и incident_updated (служба добавляется в assigned_units).
func (s *Service) CreateAssignment(ctx context.Context, assignment *models.UnitAssignment) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "assignment",
		"method":      "CreateAssignment",
		"unit_id":     assignment.UnitID,
		"incident_id": assignment.IncidentID,
	})

	s.incidentsMu.Lock()
	defer s.incidentsMu.Unlock()
	s.unitsMu.Lock()
	defer s.unitsMu.Unlock()
	s.assignmentsMu.Lock()
	defer s.assignmentsMu.Unlock()

	incident, err := s.store.GetIncident(ctx, assignment.IncidentID)
	if err != nil {
		log.WithError(err).Warn("Assignment references unknown incident")
		return fmt.Errorf("service: incident %s for assignment: %w", assignment.IncidentID, err)
	}
	if _, err := s.store.GetUnit(ctx, assignment.UnitID); err != nil {
		log.WithError(err).Warn("Assignment references unknown unit")
		return fmt.Errorf("service: unit %s for assignment: %w", assignment.UnitID, err)
	}

	if assignment.Status == "" {
		assignment.Status = models.AssignmentStatusAssigned
	}
	now := s.clock.Now().UTC()
	assignment.AssignedAt = now

	if err := s.store.CreateAssignment(ctx, assignment); err != nil {
		log.WithError(err).Error("Failed to create assignment in repository")
		return fmt.Errorf("service: could not create assignment: %w", err)
	}
	s.publish(ctx, events.AssignmentCreated(assignment))

	// Назначение уже зафиксировано и опубликовано: сбои обновления службы и инцидента только логируются
	incidentID := assignment.IncidentID
	if _, err := s.updateUnitLocked(ctx, assignment.UnitID, func(unit *models.EmergencyUnit) {
		unit.Status = models.UnitStatusResponding
		unit.CurrentIncidentID = &incidentID
	}); err != nil {
		log.WithError(err).Error("Failed to mark unit as responding")
	}

	if !slices.Contains(incident.AssignedUnits, assignment.UnitID) {
		incident.AssignedUnits = append(incident.AssignedUnits, assignment.UnitID)
	}
	incident.UpdatedAt = now
	if err := s.store.UpdateIncident(ctx, incident); err != nil {
		log.WithError(err).Error("Failed to attach unit to incident")
	} else {
		s.invalidate(ctx, incident.IncidentID)
		s.publish(ctx, events.IncidentUpdated(incident))
	}

	log.WithField("assignment_id", assignment.ID).Info("Unit assigned to incident")
	s.record(ctx, "assignment", fmt.Sprintf("Unit %s assigned to %s", assignment.UnitID, assignment.IncidentID), map[string]any{
		"assignment_id": assignment.ID,
		"unit_id":       assignment.UnitID,
		"incident_id":   assignment.IncidentID,
	})
	return nil
}

func (s *Service) ListAssignments(ctx context.Context, filter models.AssignmentFilter) ([]*models.UnitAssignment, error) {
	assignments, err := s.store.ListAssignments(ctx, filter)
	if err != nil {
		s.logger.WithError(err).WithField("method", "ListAssignments").Error("Failed to list assignments from repository")
		return nil, fmt.Errorf("service: could not list assignments: %w", err)
	}
	return assignments, nil
}

// UpdateAssignmentStatus меняет статус назначения. Статус cleared освобождает службу.
func (s *Service) UpdateAssignmentStatus(ctx context.Context, id int64, status models.AssignmentStatus) (*models.UnitAssignment, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":       "assignment",
		"method":        "UpdateAssignmentStatus",
		"assignment_id": id,
		"status":        status,
	})

	s.unitsMu.Lock()
	defer s.unitsMu.Unlock()
	s.assignmentsMu.Lock()
	defer s.assignmentsMu.Unlock()

	assignment, err := s.store.GetAssignment(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Attempted to update a non-existent assignment")
		return nil, fmt.Errorf("service: assignment %d not found for update: %w", id, err)
	}
	assignment.Status = status

	if err := s.store.UpdateAssignment(ctx, assignment); err != nil {
		log.WithError(err).Error("Failed to update assignment in repository")
		return nil, fmt.Errorf("service: could not update assignment: %w", err)
	}
	s.publish(ctx, events.AssignmentUpdated(assignment))

	if status == models.AssignmentStatusCleared {
		if _, err := s.updateUnitLocked(ctx, assignment.UnitID, func(unit *models.EmergencyUnit) {
			unit.Status = models.UnitStatusAvailable
			if unit.CurrentIncidentID != nil && *unit.CurrentIncidentID == assignment.IncidentID {
				unit.CurrentIncidentID = nil
			}
		}); err != nil {
			// Смена статуса назначения уже зафиксирована
			log.WithError(err).Error("Failed to release unit")
		}
	}

	log.Info("Assignment updated successfully")
	s.record(ctx, "assignment", fmt.Sprintf("Assignment %d is now %s", id, status), map[string]any{
		"assignment_id": id,
		"unit_id":       assignment.UnitID,
		"status":        status,
	})
	return assignment, nil
}
