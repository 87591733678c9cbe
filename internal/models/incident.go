package models

import (
	"time"
)

type IncidentType string

const (
	IncidentTypeMedical IncidentType = "medical"
	IncidentTypeFire    IncidentType = "fire"
	IncidentTypePolice  IncidentType = "police"
	IncidentTypeTraffic IncidentType = "traffic"
	IncidentTypeOther   IncidentType = "other"
)

// IncidentTypes перечисляет все допустимые типы инцидентов
var IncidentTypes = []IncidentType{
	IncidentTypeMedical,
	IncidentTypeFire,
	IncidentTypePolice,
	IncidentTypeTraffic,
	IncidentTypeOther,
}

type Priority string

const (
	PriorityLow      Priority = "low"
	PriorityMedium   Priority = "medium"
	PriorityHigh     Priority = "high"
	PriorityCritical Priority = "critical"
)

var Priorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical}

type IncidentStatus string

const (
	IncidentStatusActive   IncidentStatus = "active"
	IncidentStatusPending  IncidentStatus = "pending"
	IncidentStatusResolved IncidentStatus = "resolved"
)

// IncidentPrefix - префикс человекочитаемого идентификатора инцидента (INC-001)
const IncidentPrefix = "INC"

type Incident struct {
	IncidentID    string         `json:"incident_id"`
	Type          IncidentType   `json:"type"`
	Priority      Priority       `json:"priority"`
	Status        IncidentStatus `json:"status"`
	Location      Location       `json:"location"`
	Description   string         `json:"description"`
	Notes         *string        `json:"notes,omitempty"`
	AssignedUnits []string       `json:"assigned_units"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	ResolvedAt    *time.Time     `json:"resolved_at,omitempty"`
}

// Clone возвращает глубокую копию инцидента
func (i *Incident) Clone() *Incident {
	c := *i
	c.AssignedUnits = append([]string{}, i.AssignedUnits...)
	if i.Notes != nil {
		notes := *i.Notes
		c.Notes = &notes
	}
	if i.ResolvedAt != nil {
		resolvedAt := *i.ResolvedAt
		c.ResolvedAt = &resolvedAt
	}
	return &c
}

// IncidentPatch - частичное обновление инцидента, nil означает "не менять"
type IncidentPatch struct {
	Type          *IncidentType
	Priority      *Priority
	Status        *IncidentStatus
	Location      *Location
	Description   *string
	Notes         *string
	AssignedUnits []string
}

// IncidentFilter - параметры выборки списка инцидентов
type IncidentFilter struct {
	Status IncidentStatus
	Type   IncidentType
	Skip   int
	Limit  int
}
