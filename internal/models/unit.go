package models

import "time"

type UnitType string

const (
	UnitTypePolice  UnitType = "police"
	UnitTypeFire    UnitType = "fire"
	UnitTypeEMS     UnitType = "ems"
	UnitTypeTraffic UnitType = "traffic"
)

type UnitStatus string

const (
	UnitStatusAvailable   UnitStatus = "available"
	UnitStatusResponding  UnitStatus = "responding"
	UnitStatusBusy        UnitStatus = "busy"
	UnitStatusMaintenance UnitStatus = "maintenance"
)

// EmergencyUnit - экстренная служба (патруль, пожарный расчет, скорая)
type EmergencyUnit struct {
	UnitID            string     `json:"unit_id"`
	Type              UnitType   `json:"type"`
	Status            UnitStatus `json:"status"`
	Location          Location   `json:"location"`
	Description       string     `json:"description"`
	CurrentIncidentID *string    `json:"current_incident_id,omitempty"`
	LastUpdated       time.Time  `json:"last_updated"`
	IsActive          bool       `json:"is_active"`
}

func (u *EmergencyUnit) Clone() *EmergencyUnit {
	c := *u
	if u.CurrentIncidentID != nil {
		id := *u.CurrentIncidentID
		c.CurrentIncidentID = &id
	}
	return &c
}

type UnitPatch struct {
	Type              *UnitType
	Status            *UnitStatus
	Location          *Location
	Description       *string
	CurrentIncidentID *string
	// ClearIncident сбрасывает CurrentIncidentID в NULL
	ClearIncident bool
	IsActive      *bool
}

type UnitFilter struct {
	Status     UnitStatus
	Type       UnitType
	ActiveOnly bool
	Skip       int
	Limit      int
}
