package v1

import "github.com/shenikar/rtcc_dashboard/internal/models"

func toLocation(dto *LocationRequest) *models.Location {
	if dto == nil || dto.Lat == nil || dto.Lng == nil {
		return nil
	}
	return &models.Location{Lat: *dto.Lat, Lng: *dto.Lng}
}

// DTOToIncidentModel преобразует DTO создания в доменную модель
func DTOToIncidentModel(dto CreateIncidentRequest) *models.Incident {
	incident := &models.Incident{
		Type:        models.IncidentType(dto.Type),
		Priority:    models.Priority(dto.Priority),
		Status:      models.IncidentStatus(dto.Status),
		Description: dto.Description,
		Notes:       dto.Notes,
	}
	if loc := toLocation(dto.Location); loc != nil {
		incident.Location = *loc
	}
	return incident
}

// DTOToIncidentPatch оставляет nil для полей, которых не было в запросе
func DTOToIncidentPatch(dto UpdateIncidentRequest) models.IncidentPatch {
	patch := models.IncidentPatch{
		Location:      toLocation(dto.Location),
		Description:   dto.Description,
		Notes:         dto.Notes,
		AssignedUnits: dto.AssignedUnits,
	}
	if dto.Type != nil {
		v := models.IncidentType(*dto.Type)
		patch.Type = &v
	}
	if dto.Priority != nil {
		v := models.Priority(*dto.Priority)
		patch.Priority = &v
	}
	if dto.Status != nil {
		v := models.IncidentStatus(*dto.Status)
		patch.Status = &v
	}
	return patch
}

func DTOToUnitModel(dto CreateUnitRequest) *models.EmergencyUnit {
	unit := &models.EmergencyUnit{
		UnitID:      dto.UnitID,
		Type:        models.UnitType(dto.Type),
		Status:      models.UnitStatus(dto.Status),
		Description: dto.Description,
	}
	if loc := toLocation(dto.Location); loc != nil {
		unit.Location = *loc
	}
	return unit
}

// DTOToUnitPatch: пустая строка в current_incident_id снимает привязку к инциденту
func DTOToUnitPatch(dto UpdateUnitRequest) models.UnitPatch {
	patch := models.UnitPatch{
		Location:    toLocation(dto.Location),
		Description: dto.Description,
		IsActive:    dto.IsActive,
	}
	if dto.Type != nil {
		v := models.UnitType(*dto.Type)
		patch.Type = &v
	}
	if dto.Status != nil {
		v := models.UnitStatus(*dto.Status)
		patch.Status = &v
	}
	if dto.CurrentIncidentID != nil {
		if *dto.CurrentIncidentID == "" {
			patch.ClearIncident = true
		} else {
			patch.CurrentIncidentID = dto.CurrentIncidentID
		}
	}
	return patch
}

func DTOToAssignmentModel(dto CreateAssignmentRequest) *models.UnitAssignment {
	return &models.UnitAssignment{
		UnitID:     dto.UnitID,
		IncidentID: dto.IncidentID,
		Status:     models.AssignmentStatus(dto.Status),
	}
}

func DTOToTrafficModel(dto CreateTrafficRequest) *models.TrafficIncident {
	traffic := &models.TrafficIncident{
		Type:              models.TrafficIncidentType(dto.Type),
		Severity:          models.Severity(dto.Severity),
		Description:       dto.Description,
		AffectedRoads:     dto.AffectedRoads,
		EstimatedDuration: dto.EstimatedDuration,
	}
	if traffic.AffectedRoads == nil {
		traffic.AffectedRoads = []string{}
	}
	if loc := toLocation(dto.Location); loc != nil {
		traffic.Location = *loc
	}
	return traffic
}

func DTOToTrafficPatch(dto UpdateTrafficRequest) models.TrafficPatch {
	patch := models.TrafficPatch{
		Location:          toLocation(dto.Location),
		Description:       dto.Description,
		AffectedRoads:     dto.AffectedRoads,
		EstimatedDuration: dto.EstimatedDuration,
	}
	if dto.Type != nil {
		v := models.TrafficIncidentType(*dto.Type)
		patch.Type = &v
	}
	if dto.Severity != nil {
		v := models.Severity(*dto.Severity)
		patch.Severity = &v
	}
	return patch
}
