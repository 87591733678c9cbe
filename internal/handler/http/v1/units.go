package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/rtcc_dashboard/internal/models"
)

// @Summary Register an emergency unit
// @Tags Units
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param unit body CreateUnitRequest true "Unit creation request"
// @Success 201 {object} models.EmergencyUnit
// @Failure 400 {object} ErrorResponse "Invalid request body or validation error"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 409 {object} ErrorResponse "Unit already exists"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /api/units [post]
func (h *Handler) createUnit(c *gin.Context) {
	var input CreateUnitRequest
	log := h.logger.WithField("method", "createUnit")

	if !h.bind(c, log, &input) {
		return
	}

	unit := DTOToUnitModel(input)
	if err := h.service.CreateUnit(c.Request.Context(), unit); err != nil {
		respondError(c, log, err, "unit")
		return
	}
	c.JSON(http.StatusCreated, unit)
}

// @Summary Get a list of units
// @Tags Units
// @Produce json
// @Param status query string false "Filter by status"
// @Param type query string false "Filter by type"
// @Param active_only query bool false "Only active units" default(true)
// @Param skip query int false "Number of items to skip" default(0)
// @Param limit query int false "Maximum number of items" default(100)
// @Success 200 {array} models.EmergencyUnit
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /api/units [get]
func (h *Handler) listUnits(c *gin.Context) {
	log := h.logger.WithField("method", "listUnits")
	skip, limit := pagination(c)

	units, err := h.service.ListUnits(c.Request.Context(), models.UnitFilter{
		Status:     models.UnitStatus(c.Query("status")),
		Type:       models.UnitType(c.Query("type")),
		ActiveOnly: queryBool(c, "active_only", true),
		Skip:       skip,
		Limit:      limit,
	})
	if err != nil {
		respondError(c, log, err, "unit")
		return
	}
	c.JSON(http.StatusOK, units)
}

// @Summary Get unit by ID
// @Tags Units
// @Produce json
// @Param id path string true "Unit ID"
// @Success 200 {object} models.EmergencyUnit
// @Failure 404 {object} ErrorResponse "Unit not found"
// @Router /api/units/{id} [get]
func (h *Handler) getUnit(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "getUnit").WithField("id", id)

	unit, err := h.service.GetUnit(c.Request.Context(), id)
	if err != nil {
		respondError(c, log, err, "unit")
		return
	}
	c.JSON(http.StatusOK, unit)
}

// @Summary Update a unit
// @Description Partially update a unit. An empty current_incident_id detaches the unit from its incident.
// @Tags Units
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Unit ID"
// @Param unit body UpdateUnitRequest true "Unit update request"
// @Success 200 {object} models.EmergencyUnit
// @Failure 400 {object} ErrorResponse "Invalid request body or validation error"
// @Failure 404 {object} ErrorResponse "Unit not found"
// @Failure 422 {object} ErrorResponse "current_incident_id references an unknown incident"
// @Router /api/units/{id} [put]
func (h *Handler) updateUnit(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "updateUnit").WithField("id", id)

	var input UpdateUnitRequest
	if !h.bind(c, log, &input) {
		return
	}

	unit, err := h.service.UpdateUnit(c.Request.Context(), id, DTOToUnitPatch(input))
	if err != nil {
		respondError(c, log, err, "unit")
		return
	}
	c.JSON(http.StatusOK, unit)
}

// @Summary Change unit status
// @Tags Units
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Unit ID"
// @Param status body UnitStatusRequest true "New status and optional location"
// @Success 200 {object} models.EmergencyUnit
// @Failure 400 {object} ErrorResponse "Invalid request body or validation error"
// @Failure 404 {object} ErrorResponse "Unit not found"
// @Router /api/units/{id}/status [put]
func (h *Handler) updateUnitStatus(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "updateUnitStatus").WithField("id", id)

	var input UnitStatusRequest
	if !h.bind(c, log, &input) {
		return
	}

	unit, err := h.service.UpdateUnitStatus(c.Request.Context(), id, models.UnitStatus(input.Status), toLocation(input.Location))
	if err != nil {
		respondError(c, log, err, "unit")
		return
	}
	c.JSON(http.StatusOK, unit)
}

// @Summary Delete a unit
// @Tags Units
// @Security ApiKeyAuth
// @Param id path string true "Unit ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse "Unit not found"
// @Router /api/units/{id} [delete]
func (h *Handler) deleteUnit(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "deleteUnit").WithField("id", id)

	if err := h.service.DeleteUnit(c.Request.Context(), id); err != nil {
		respondError(c, log, err, "unit")
		return
	}
	c.Status(http.StatusNoContent)
}
