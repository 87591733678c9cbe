package events

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/shenikar/rtcc_dashboard/internal/models"
)

// Kind - тип события, передается клиенту в поле "type"
type Kind string

const (
	KindIncidentCreated   Kind = "incident_created"
	KindIncidentUpdated   Kind = "incident_updated"
	KindIncidentDeleted   Kind = "incident_deleted"
	KindUnitCreated       Kind = "unit_created"
	KindUnitUpdated       Kind = "unit_updated"
	KindUnitDeleted       Kind = "unit_deleted"
	KindAssignmentCreated Kind = "assignment_created"
	KindAssignmentUpdated Kind = "assignment_updated"
	KindTrafficCreated    Kind = "traffic_created"
	KindTrafficUpdated    Kind = "traffic_updated"
	KindTrafficResolved   Kind = "traffic_resolved"
	KindPing              Kind = "ping"
	KindInit              Kind = "init"
)

// Event - неизменяемое уведомление об изменении состояния.
// Полезная нагрузка копируется при создании, поэтому последующие мутации
// исходной сущности не влияют на уже опубликованное событие.
type Event struct {
	kind       Kind
	payloadKey string
	payload    any
}

func (e Event) Kind() Kind { return e.kind }

// Payload возвращает копию сущности (или идентификатор для удалений)
func (e Event) Payload() any { return e.payload }

// MarshalJSON сериализует событие в формат {"type": ..., "<key>": payload}
func (e Event) MarshalJSON() ([]byte, error) {
	if e.kind == "" {
		return nil, fmt.Errorf("events: empty event kind")
	}
	msg := map[string]any{"type": e.kind}
	if e.payloadKey != "" {
		msg[e.payloadKey] = e.payload
	}
	return json.Marshal(msg)
}

func IncidentCreated(incident *models.Incident) Event {
	return Event{kind: KindIncidentCreated, payloadKey: "incident", payload: incident.Clone()}
}

func IncidentUpdated(incident *models.Incident) Event {
	return Event{kind: KindIncidentUpdated, payloadKey: "incident", payload: incident.Clone()}
}

func IncidentDeleted(incidentID string) Event {
	return Event{kind: KindIncidentDeleted, payloadKey: "incident_id", payload: incidentID}
}

func UnitCreated(unit *models.EmergencyUnit) Event {
	return Event{kind: KindUnitCreated, payloadKey: "unit", payload: unit.Clone()}
}

func UnitUpdated(unit *models.EmergencyUnit) Event {
	return Event{kind: KindUnitUpdated, payloadKey: "unit", payload: unit.Clone()}
}

func UnitDeleted(unitID string) Event {
	return Event{kind: KindUnitDeleted, payloadKey: "unit_id", payload: unitID}
}

func AssignmentCreated(assignment *models.UnitAssignment) Event {
	c := *assignment
	return Event{kind: KindAssignmentCreated, payloadKey: "assignment", payload: &c}
}

func AssignmentUpdated(assignment *models.UnitAssignment) Event {
	c := *assignment
	return Event{kind: KindAssignmentUpdated, payloadKey: "assignment", payload: &c}
}

func TrafficCreated(traffic *models.TrafficIncident) Event {
	return Event{kind: KindTrafficCreated, payloadKey: "traffic_incident", payload: traffic.Clone()}
}

func TrafficUpdated(traffic *models.TrafficIncident) Event {
	return Event{kind: KindTrafficUpdated, payloadKey: "traffic_incident", payload: traffic.Clone()}
}

func TrafficResolved(traffic *models.TrafficIncident) Event {
	return Event{kind: KindTrafficResolved, payloadKey: "traffic_incident", payload: traffic.Clone()}
}

func Ping(at time.Time) Event {
	return Event{kind: KindPing, payloadKey: "timestamp", payload: at.UTC().Format(time.RFC3339)}
}

// InitMessage - первое сообщение нового подписчика с полным снимком состояния
type InitMessage struct {
	Type      Kind                      `json:"type"`
	Incidents []*models.Incident        `json:"incidents"`
	Units     []*models.EmergencyUnit   `json:"units"`
	Traffic   []*models.TrafficIncident `json:"traffic"`
}

func NewInitMessage(snapshot *models.Snapshot) InitMessage {
	msg := InitMessage{
		Type:      KindInit,
		Incidents: []*models.Incident{},
		Units:     []*models.EmergencyUnit{},
		Traffic:   []*models.TrafficIncident{},
	}
	if snapshot == nil {
		return msg
	}
	if snapshot.Incidents != nil {
		msg.Incidents = snapshot.Incidents
	}
	if snapshot.Units != nil {
		msg.Units = snapshot.Units
	}
	if snapshot.Traffic != nil {
		msg.Traffic = snapshot.Traffic
	}
	return msg
}
