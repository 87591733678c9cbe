package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/rtcc_dashboard/internal/models"
)

// @Summary Create a new incident
// @Description Create an incident with the next sequential ID (INC-001, INC-002, ...)
// @Tags Incidents
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param incident body CreateIncidentRequest true "Incident creation request"
// @Success 201 {object} models.Incident
// @Failure 400 {object} ErrorResponse "Invalid request body or validation error"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /api/incidents [post]
func (h *Handler) createIncident(c *gin.Context) {
	var input CreateIncidentRequest
	log := h.logger.WithField("method", "createIncident")

	if !h.bind(c, log, &input) {
		return
	}

	incident := DTOToIncidentModel(input)
	if err := h.service.CreateIncident(c.Request.Context(), incident); err != nil {
		respondError(c, log, err, "incident")
		return
	}
	c.JSON(http.StatusCreated, incident)
}

// @Summary Get a list of incidents
// @Tags Incidents
// @Produce json
// @Param status query string false "Filter by status"
// @Param type query string false "Filter by type"
// @Param skip query int false "Number of items to skip" default(0)
// @Param limit query int false "Maximum number of items" default(100)
// @Success 200 {array} models.Incident
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /api/incidents [get]
func (h *Handler) listIncidents(c *gin.Context) {
	log := h.logger.WithField("method", "listIncidents")
	skip, limit := pagination(c)

	incidents, err := h.service.ListIncidents(c.Request.Context(), models.IncidentFilter{
		Status: models.IncidentStatus(c.Query("status")),
		Type:   models.IncidentType(c.Query("type")),
		Skip:   skip,
		Limit:  limit,
	})
	if err != nil {
		respondError(c, log, err, "incident")
		return
	}
	c.JSON(http.StatusOK, incidents)
}

// @Summary Get incident by ID
// @Tags Incidents
// @Produce json
// @Param id path string true "Incident ID"
// @Success 200 {object} models.Incident
// @Failure 404 {object} ErrorResponse "Incident not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /api/incidents/{id} [get]
func (h *Handler) getIncident(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "getIncident").WithField("id", id)

	incident, err := h.service.GetIncident(c.Request.Context(), id)
	if err != nil {
		respondError(c, log, err, "incident")
		return
	}
	c.JSON(http.StatusOK, incident)
}

// @Summary Update an existing incident
// @Description Partially update an incident. Setting status to resolved stamps resolved_at.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Incident ID"
// @Param incident body UpdateIncidentRequest true "Incident update request"
// @Success 200 {object} models.Incident
// @Failure 400 {object} ErrorResponse "Invalid request body or validation error"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Incident not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /api/incidents/{id} [put]
func (h *Handler) updateIncident(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "updateIncident").WithField("id", id)

	var input UpdateIncidentRequest
	if !h.bind(c, log, &input) {
		return
	}

	incident, err := h.service.UpdateIncident(c.Request.Context(), id, DTOToIncidentPatch(input))
	if err != nil {
		respondError(c, log, err, "incident")
		return
	}
	c.JSON(http.StatusOK, incident)
}

// @Summary Delete an incident
// @Tags Incidents
// @Security ApiKeyAuth
// @Param id path string true "Incident ID"
// @Success 204 "No Content"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Incident not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /api/incidents/{id} [delete]
func (h *Handler) deleteIncident(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "deleteIncident").WithField("id", id)

	if err := h.service.DeleteIncident(c.Request.Context(), id); err != nil {
		respondError(c, log, err, "incident")
		return
	}
	c.Status(http.StatusNoContent)
}
