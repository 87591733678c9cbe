package models

import "time"

type TrafficIncidentType string

const (
	TrafficTypeAccident     TrafficIncidentType = "accident"
	TrafficTypeCongestion   TrafficIncidentType = "congestion"
	TrafficTypeConstruction TrafficIncidentType = "construction"
	TrafficTypeWeather      TrafficIncidentType = "weather"
)

var TrafficIncidentTypes = []TrafficIncidentType{
	TrafficTypeAccident,
	TrafficTypeCongestion,
	TrafficTypeConstruction,
	TrafficTypeWeather,
}

type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

var Severities = []Severity{SeverityLow, SeverityMedium, SeverityHigh}

// TrafficPrefix - префикс идентификатора дорожного происшествия (TRAFFIC-001)
const TrafficPrefix = "TRAFFIC"

type TrafficIncident struct {
	IncidentID        string              `json:"incident_id"`
	Type              TrafficIncidentType `json:"type"`
	Severity          Severity            `json:"severity"`
	Location          Location            `json:"location"`
	Description       string              `json:"description"`
	AffectedRoads     []string            `json:"affected_roads"`
	EstimatedDuration int                 `json:"estimated_duration"`
	CreatedAt         time.Time           `json:"created_at"`
	ResolvedAt        *time.Time          `json:"resolved_at,omitempty"`
	IsActive          bool                `json:"is_active"`
}

func (t *TrafficIncident) Clone() *TrafficIncident {
	c := *t
	c.AffectedRoads = append([]string{}, t.AffectedRoads...)
	if t.ResolvedAt != nil {
		resolvedAt := *t.ResolvedAt
		c.ResolvedAt = &resolvedAt
	}
	return &c
}

type TrafficPatch struct {
	Type              *TrafficIncidentType
	Severity          *Severity
	Location          *Location
	Description       *string
	AffectedRoads     []string
	EstimatedDuration *int
	IsActive          *bool
	ResolvedAt        *time.Time
}

type TrafficFilter struct {
	ActiveOnly bool
	Skip       int
	Limit      int
}
