package models

// DashboardCounters - счетчики, которые хранилище считает одним запросом
type DashboardCounters struct {
	ActiveIncidents     int
	AvailableUnits      int
	RespondingUnits     int
	TrafficIssues       int
	TotalIncidentsToday int
}

type DashboardStats struct {
	ActiveIncidents     int     `json:"active_incidents"`
	AvailableUnits      int     `json:"available_units"`
	RespondingUnits     int     `json:"responding_units"`
	TrafficIssues       int     `json:"traffic_issues"`
	TotalIncidentsToday int     `json:"total_incidents_today"`
	AverageResponseTime float64 `json:"average_response_time"`
}

// Snapshot - полное текущее состояние, отправляемое новому подписчику
type Snapshot struct {
	Incidents []*Incident        `json:"incidents"`
	Units     []*EmergencyUnit   `json:"units"`
	Traffic   []*TrafficIncident `json:"traffic"`
}
