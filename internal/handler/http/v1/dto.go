package v1

// LocationRequest DTO координат в градусах WGS84
// @Description DTO координат
type LocationRequest struct {
	Lat *float64 `json:"lat" validate:"required,latitude"`
	Lng *float64 `json:"lng" validate:"required,longitude"`
}

// CreateIncidentRequest DTO для создания инцидента
// @Description DTO для создания инцидента
type CreateIncidentRequest struct {
	Type        string           `json:"type" validate:"required,oneof=medical fire police traffic other"`
	Priority    string           `json:"priority" validate:"required,oneof=low medium high critical"`
	Status      string           `json:"status,omitempty" validate:"omitempty,oneof=active pending resolved"`
	Location    *LocationRequest `json:"location" validate:"required"`
	Description string           `json:"description" validate:"required,min=1,max=500"`
	Notes       *string          `json:"notes,omitempty" validate:"omitempty,max=2000"`
}

// UpdateIncidentRequest DTO для частичного обновления инцидента
// @Description DTO для частичного обновления инцидента; отсутствующие поля не меняются
type UpdateIncidentRequest struct {
	Type          *string          `json:"type,omitempty" validate:"omitempty,oneof=medical fire police traffic other"`
	Priority      *string          `json:"priority,omitempty" validate:"omitempty,oneof=low medium high critical"`
	Status        *string          `json:"status,omitempty" validate:"omitempty,oneof=active pending resolved"`
	Location      *LocationRequest `json:"location,omitempty"`
	Description   *string          `json:"description,omitempty" validate:"omitempty,min=1,max=500"`
	Notes         *string          `json:"notes,omitempty" validate:"omitempty,max=2000"`
	AssignedUnits []string         `json:"assigned_units,omitempty" validate:"omitempty,dive,required"`
}

// CreateUnitRequest DTO для регистрации экстренной службы
// @Description DTO для регистрации экстренной службы
type CreateUnitRequest struct {
	UnitID      string           `json:"unit_id" validate:"required,min=1,max=20"`
	Type        string           `json:"type" validate:"required,oneof=police fire ems traffic"`
	Status      string           `json:"status,omitempty" validate:"omitempty,oneof=available responding busy maintenance"`
	Location    *LocationRequest `json:"location" validate:"required"`
	Description string           `json:"description" validate:"required,min=1,max=200"`
}

// UpdateUnitRequest DTO для частичного обновления службы
// @Description DTO для частичного обновления службы
type UpdateUnitRequest struct {
	Type              *string          `json:"type,omitempty" validate:"omitempty,oneof=police fire ems traffic"`
	Status            *string          `json:"status,omitempty" validate:"omitempty,oneof=available responding busy maintenance"`
	Location          *LocationRequest `json:"location,omitempty"`
	Description       *string          `json:"description,omitempty" validate:"omitempty,min=1,max=200"`
	CurrentIncidentID *string          `json:"current_incident_id,omitempty"`
	IsActive          *bool            `json:"is_active,omitempty"`
}

// UnitStatusRequest DTO смены статуса службы
// @Description DTO смены статуса службы с необязательной новой позицией
type UnitStatusRequest struct {
	Status   string           `json:"status" validate:"required,oneof=available responding busy maintenance"`
	Location *LocationRequest `json:"location,omitempty"`
}

// CreateAssignmentRequest DTO назначения службы на инцидент
// @Description DTO назначения службы на инцидент
type CreateAssignmentRequest struct {
	UnitID     string `json:"unit_id" validate:"required"`
	IncidentID string `json:"incident_id" validate:"required"`
	Status     string `json:"status,omitempty" validate:"omitempty,oneof=assigned en_route on_scene cleared"`
}

// UpdateAssignmentRequest DTO смены статуса назначения
// @Description DTO смены статуса назначения
type UpdateAssignmentRequest struct {
	Status string `json:"status" validate:"required,oneof=assigned en_route on_scene cleared"`
}

// CreateTrafficRequest DTO для создания дорожного происшествия
// @Description DTO для создания дорожного происшествия
type CreateTrafficRequest struct {
	Type              string           `json:"type" validate:"required,oneof=accident congestion construction weather"`
	Severity          string           `json:"severity" validate:"required,oneof=low medium high"`
	Location          *LocationRequest `json:"location" validate:"required"`
	Description       string           `json:"description" validate:"required,min=1,max=500"`
	AffectedRoads     []string         `json:"affected_roads,omitempty" validate:"omitempty,dive,required"`
	EstimatedDuration int              `json:"estimated_duration" validate:"required,min=1,max=1440"`
}

// UpdateTrafficRequest DTO для частичного обновления дорожного происшествия
// @Description DTO для частичного обновления дорожного происшествия
type UpdateTrafficRequest struct {
	Type              *string          `json:"type,omitempty" validate:"omitempty,oneof=accident congestion construction weather"`
	Severity          *string          `json:"severity,omitempty" validate:"omitempty,oneof=low medium high"`
	Location          *LocationRequest `json:"location,omitempty"`
	Description       *string          `json:"description,omitempty" validate:"omitempty,min=1,max=500"`
	AffectedRoads     []string         `json:"affected_roads,omitempty" validate:"omitempty,dive,required"`
	EstimatedDuration *int             `json:"estimated_duration,omitempty" validate:"omitempty,min=1,max=1440"`
}

// ErrorResponse DTO ошибки
// @Description DTO ошибки
type ErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

// StatusResponse DTO ответа корневого маршрута
// @Description DTO ответа корневого маршрута
type StatusResponse struct {
	Message string `json:"message"`
	Status  string `json:"status"`
}

// HealthResponse DTO ответа проверки состояния
// @Description Состояние сервиса и число подключенных дашбордов
type HealthResponse struct {
	Status      string `json:"status"`
	Subscribers int    `json:"subscribers"`
}
