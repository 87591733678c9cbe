package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/rtcc_dashboard/internal/models"
)

// @Summary Assign a unit to an incident
// @Description The unit switches to responding and joins the incident's assigned_units
// @Tags Assignments
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param assignment body CreateAssignmentRequest true "Assignment request"
// @Success 201 {object} models.UnitAssignment
// @Failure 400 {object} ErrorResponse "Invalid request body or validation error"
// @Failure 404 {object} ErrorResponse "Unit or incident not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /api/assignments [post]
func (h *Handler) createAssignment(c *gin.Context) {
	var input CreateAssignmentRequest
	log := h.logger.WithField("method", "createAssignment")

	if !h.bind(c, log, &input) {
		return
	}

	assignment := DTOToAssignmentModel(input)
	if err := h.service.CreateAssignment(c.Request.Context(), assignment); err != nil {
		respondError(c, log, err, "unit or incident")
		return
	}
	c.JSON(http.StatusCreated, assignment)
}

// @Summary Get a list of assignments
// @Tags Assignments
// @Produce json
// @Param unit_id query string false "Filter by unit"
// @Param incident_id query string false "Filter by incident"
// @Success 200 {array} models.UnitAssignment
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /api/assignments [get]
func (h *Handler) listAssignments(c *gin.Context) {
	log := h.logger.WithField("method", "listAssignments")

	assignments, err := h.service.ListAssignments(c.Request.Context(), models.AssignmentFilter{
		UnitID:     c.Query("unit_id"),
		IncidentID: c.Query("incident_id"),
	})
	if err != nil {
		respondError(c, log, err, "assignment")
		return
	}
	c.JSON(http.StatusOK, assignments)
}

// @Summary Change assignment status
// @Description Clearing an assignment returns the unit to available
// @Tags Assignments
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Assignment ID"
// @Param assignment body UpdateAssignmentRequest true "New status"
// @Success 200 {object} models.UnitAssignment
// @Failure 400 {object} ErrorResponse "Invalid assignment ID or request body"
// @Failure 404 {object} ErrorResponse "Assignment not found"
// @Router /api/assignments/{id} [put]
func (h *Handler) updateAssignment(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid assignment ID"})
		return
	}
	log := h.logger.WithField("method", "updateAssignment").WithField("id", id)

	var input UpdateAssignmentRequest
	if !h.bind(c, log, &input) {
		return
	}

	assignment, err := h.service.UpdateAssignmentStatus(c.Request.Context(), id, models.AssignmentStatus(input.Status))
	if err != nil {
		respondError(c, log, err, "assignment")
		return
	}
	c.JSON(http.StatusOK, assignment)
}
