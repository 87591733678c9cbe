package repository

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/shenikar/rtcc_dashboard/internal/models"
)

// MemoryStore хранит состояние командного центра в памяти процесса.
// Все методы возвращают и принимают копии, внешние изменения не затрагивают хранимые данные.
type MemoryStore struct {
	mu sync.RWMutex

	incidents     map[string]*models.Incident
	incidentOrder []string

	units     map[string]*models.EmergencyUnit
	unitOrder []string

	assignments      map[int64]*models.UnitAssignment
	lastAssignmentID int64

	traffic      map[string]*models.TrafficIncident
	trafficOrder []string

	logs      []*models.SystemLog
	lastLogID int64

	// sequences - наибольший выданный суффикс по префиксу, не уменьшается при удалении
	sequences map[string]int
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		incidents:   make(map[string]*models.Incident),
		units:       make(map[string]*models.EmergencyUnit),
		assignments: make(map[int64]*models.UnitAssignment),
		traffic:     make(map[string]*models.TrafficIncident),
		sequences:   make(map[string]int),
	}
}

func (s *MemoryStore) CreateIncident(_ context.Context, incident *models.Incident) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.incidents[incident.IncidentID]; ok {
		return fmt.Errorf("incident %s: %w", incident.IncidentID, models.ErrConflict)
	}
	s.incidents[incident.IncidentID] = incident.Clone()
	s.incidentOrder = append(s.incidentOrder, incident.IncidentID)
	s.bumpSequence(incident.IncidentID, models.IncidentPrefix)
	return nil
}

func (s *MemoryStore) GetIncident(_ context.Context, incidentID string) (*models.Incident, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	incident, ok := s.incidents[incidentID]
	if !ok {
		return nil, fmt.Errorf("incident %s: %w", incidentID, models.ErrNotFound)
	}
	return incident.Clone(), nil
}

func (s *MemoryStore) ListIncidents(_ context.Context, filter models.IncidentFilter) ([]*models.Incident, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*models.Incident, 0)
	for _, id := range s.incidentOrder {
		incident := s.incidents[id]
		if filter.Status != "" && incident.Status != filter.Status {
			continue
		}
		if filter.Type != "" && incident.Type != filter.Type {
			continue
		}
		result = append(result, incident.Clone())
	}
	return page(result, filter.Skip, filter.Limit), nil
}

func (s *MemoryStore) UpdateIncident(_ context.Context, incident *models.Incident) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.incidents[incident.IncidentID]; !ok {
		return fmt.Errorf("incident %s: %w", incident.IncidentID, models.ErrNotFound)
	}
	s.incidents[incident.IncidentID] = incident.Clone()
	return nil
}

// DeleteIncident удаляет инцидент и его назначения и обнуляет ссылки служб на него
func (s *MemoryStore) DeleteIncident(_ context.Context, incidentID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.incidents[incidentID]; !ok {
		return fmt.Errorf("incident %s: %w", incidentID, models.ErrNotFound)
	}
	delete(s.incidents, incidentID)
	s.incidentOrder = slices.DeleteFunc(s.incidentOrder, func(id string) bool { return id == incidentID })
	for _, unit := range s.units {
		if unit.CurrentIncidentID != nil && *unit.CurrentIncidentID == incidentID {
			unit.CurrentIncidentID = nil
		}
	}
	for id, a := range s.assignments {
		if a.IncidentID == incidentID {
			delete(s.assignments, id)
		}
	}
	return nil
}

func (s *MemoryStore) ListResolvedIncidents(_ context.Context) ([]*models.Incident, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*models.Incident, 0)
	for _, id := range s.incidentOrder {
		incident := s.incidents[id]
		if incident.Status == models.IncidentStatusResolved && incident.ResolvedAt != nil {
			result = append(result, incident.Clone())
		}
	}
	return result, nil
}

func (s *MemoryStore) CreateUnit(_ context.Context, unit *models.EmergencyUnit) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.units[unit.UnitID]; ok {
		return fmt.Errorf("unit %s: %w", unit.UnitID, models.ErrConflict)
	}
	s.units[unit.UnitID] = unit.Clone()
	s.unitOrder = append(s.unitOrder, unit.UnitID)
	return nil
}

func (s *MemoryStore) GetUnit(_ context.Context, unitID string) (*models.EmergencyUnit, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	unit, ok := s.units[unitID]
	if !ok {
		return nil, fmt.Errorf("unit %s: %w", unitID, models.ErrNotFound)
	}
	return unit.Clone(), nil
}

func (s *MemoryStore) ListUnits(_ context.Context, filter models.UnitFilter) ([]*models.EmergencyUnit, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*models.EmergencyUnit, 0)
	for _, id := range s.unitOrder {
		unit := s.units[id]
		if filter.Status != "" && unit.Status != filter.Status {
			continue
		}
		if filter.Type != "" && unit.Type != filter.Type {
			continue
		}
		if filter.ActiveOnly && !unit.IsActive {
			continue
		}
		result = append(result, unit.Clone())
	}
	return page(result, filter.Skip, filter.Limit), nil
}

func (s *MemoryStore) UpdateUnit(_ context.Context, unit *models.EmergencyUnit) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.units[unit.UnitID]; !ok {
		return fmt.Errorf("unit %s: %w", unit.UnitID, models.ErrNotFound)
	}
	s.units[unit.UnitID] = unit.Clone()
	return nil
}

// DeleteUnit удаляет службу и ее назначения
func (s *MemoryStore) DeleteUnit(_ context.Context, unitID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.units[unitID]; !ok {
		return fmt.Errorf("unit %s: %w", unitID, models.ErrNotFound)
	}
	delete(s.units, unitID)
	s.unitOrder = slices.DeleteFunc(s.unitOrder, func(id string) bool { return id == unitID })
	for id, a := range s.assignments {
		if a.UnitID == unitID {
			delete(s.assignments, id)
		}
	}
	return nil
}

func (s *MemoryStore) CreateAssignment(_ context.Context, assignment *models.UnitAssignment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.units[assignment.UnitID]; !ok {
		return fmt.Errorf("unit %s: %w", assignment.UnitID, models.ErrNotFound)
	}
	if _, ok := s.incidents[assignment.IncidentID]; !ok {
		return fmt.Errorf("incident %s: %w", assignment.IncidentID, models.ErrNotFound)
	}
	s.lastAssignmentID++
	assignment.ID = s.lastAssignmentID
	c := *assignment
	s.assignments[c.ID] = &c
	return nil
}

func (s *MemoryStore) GetAssignment(_ context.Context, id int64) (*models.UnitAssignment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.assignments[id]
	if !ok {
		return nil, fmt.Errorf("assignment %d: %w", id, models.ErrNotFound)
	}
	c := *a
	return &c, nil
}

func (s *MemoryStore) ListAssignments(_ context.Context, filter models.AssignmentFilter) ([]*models.UnitAssignment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*models.UnitAssignment, 0, len(s.assignments))
	for _, a := range s.assignments {
		if filter.UnitID != "" && a.UnitID != filter.UnitID {
			continue
		}
		if filter.IncidentID != "" && a.IncidentID != filter.IncidentID {
			continue
		}
		c := *a
		result = append(result, &c)
	}
	slices.SortFunc(result, func(a, b *models.UnitAssignment) int { return cmp.Compare(a.ID, b.ID) })
	return result, nil
}

func (s *MemoryStore) UpdateAssignment(_ context.Context, assignment *models.UnitAssignment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.assignments[assignment.ID]; !ok {
		return fmt.Errorf("assignment %d: %w", assignment.ID, models.ErrNotFound)
	}
	c := *assignment
	s.assignments[c.ID] = &c
	return nil
}

func (s *MemoryStore) CreateTraffic(_ context.Context, traffic *models.TrafficIncident) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.traffic[traffic.IncidentID]; ok {
		return fmt.Errorf("traffic incident %s: %w", traffic.IncidentID, models.ErrConflict)
	}
	s.traffic[traffic.IncidentID] = traffic.Clone()
	s.trafficOrder = append(s.trafficOrder, traffic.IncidentID)
	s.bumpSequence(traffic.IncidentID, models.TrafficPrefix)
	return nil
}

func (s *MemoryStore) GetTraffic(_ context.Context, incidentID string) (*models.TrafficIncident, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.traffic[incidentID]
	if !ok {
		return nil, fmt.Errorf("traffic incident %s: %w", incidentID, models.ErrNotFound)
	}
	return t.Clone(), nil
}

func (s *MemoryStore) ListTraffic(_ context.Context, filter models.TrafficFilter) ([]*models.TrafficIncident, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*models.TrafficIncident, 0)
	for _, id := range s.trafficOrder {
		t := s.traffic[id]
		if filter.ActiveOnly && !t.IsActive {
			continue
		}
		result = append(result, t.Clone())
	}
	return page(result, filter.Skip, filter.Limit), nil
}

func (s *MemoryStore) UpdateTraffic(_ context.Context, traffic *models.TrafficIncident) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.traffic[traffic.IncidentID]; !ok {
		return fmt.Errorf("traffic incident %s: %w", traffic.IncidentID, models.ErrNotFound)
	}
	s.traffic[traffic.IncidentID] = traffic.Clone()
	return nil
}

func (s *MemoryStore) CreateLog(_ context.Context, entry *models.SystemLog) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastLogID++
	entry.ID = s.lastLogID
	c := *entry
	c.Data = cloneData(entry.Data)
	s.logs = append(s.logs, &c)
	return nil
}

// ListLogs возвращает записи журнала, новые первыми
func (s *MemoryStore) ListLogs(_ context.Context, filter models.LogFilter) ([]*models.SystemLog, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*models.SystemLog, 0)
	for i := len(s.logs) - 1; i >= 0; i-- {
		entry := s.logs[i]
		if filter.Level != "" && entry.Level != filter.Level {
			continue
		}
		if filter.Category != "" && entry.Category != filter.Category {
			continue
		}
		c := *entry
		c.Data = cloneData(entry.Data)
		result = append(result, &c)
	}
	return page(result, filter.Skip, filter.Limit), nil
}

func (s *MemoryStore) MaxSequence(_ context.Context, prefix string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sequences[prefix], nil
}

func (s *MemoryStore) DashboardCounters(_ context.Context, dayStart time.Time) (*models.DashboardCounters, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	counters := &models.DashboardCounters{}
	for _, incident := range s.incidents {
		if incident.Status == models.IncidentStatusActive {
			counters.ActiveIncidents++
		}
		if !incident.CreatedAt.Before(dayStart) {
			counters.TotalIncidentsToday++
		}
	}
	for _, unit := range s.units {
		if !unit.IsActive {
			continue
		}
		switch unit.Status {
		case models.UnitStatusAvailable:
			counters.AvailableUnits++
		case models.UnitStatusResponding:
			counters.RespondingUnits++
		}
	}
	for _, t := range s.traffic {
		if t.IsActive {
			counters.TrafficIssues++
		}
	}
	return counters, nil
}

func (s *MemoryStore) bumpSequence(id, prefix string) {
	if n, ok := models.ParseSequence(id, prefix); ok && n > s.sequences[prefix] {
		s.sequences[prefix] = n
	}
}

// page применяет skip/limit; limit <= 0 означает "без ограничения"
func page[T any](items []T, skip, limit int) []T {
	if skip >= len(items) {
		return items[:0]
	}
	if skip > 0 {
		items = items[skip:]
	}
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items
}

func cloneData(data map[string]any) map[string]any {
	if data == nil {
		return nil
	}
	c := make(map[string]any, len(data))
	for k, v := range data {
		c[k] = v
	}
	return c
}
