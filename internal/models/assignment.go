package models

import "time"

type AssignmentStatus string

const (
	AssignmentStatusAssigned AssignmentStatus = "assigned"
	AssignmentStatusEnRoute  AssignmentStatus = "en_route"
	AssignmentStatusOnScene  AssignmentStatus = "on_scene"
	AssignmentStatusCleared  AssignmentStatus = "cleared"
)

// UnitAssignment связывает экстренную службу с инцидентом
type UnitAssignment struct {
	ID         int64            `json:"id"`
	UnitID     string           `json:"unit_id"`
	IncidentID string           `json:"incident_id"`
	Status     AssignmentStatus `json:"status"`
	AssignedAt time.Time        `json:"assigned_at"`
}

type AssignmentFilter struct {
	UnitID     string
	IncidentID string
}
