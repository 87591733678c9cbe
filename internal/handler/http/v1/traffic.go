package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/rtcc_dashboard/internal/models"
)

// @Summary Report a traffic incident
// @Tags Traffic
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param traffic body CreateTrafficRequest true "Traffic incident creation request"
// @Success 201 {object} models.TrafficIncident
// @Failure 400 {object} ErrorResponse "Invalid request body or validation error"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /api/traffic [post]
func (h *Handler) createTraffic(c *gin.Context) {
	var input CreateTrafficRequest
	log := h.logger.WithField("method", "createTraffic")

	if !h.bind(c, log, &input) {
		return
	}

	traffic := DTOToTrafficModel(input)
	if err := h.service.CreateTraffic(c.Request.Context(), traffic); err != nil {
		respondError(c, log, err, "traffic incident")
		return
	}
	c.JSON(http.StatusCreated, traffic)
}

// @Summary Get a list of traffic incidents
// @Tags Traffic
// @Produce json
// @Param active_only query bool false "Only unresolved incidents" default(true)
// @Param skip query int false "Number of items to skip" default(0)
// @Param limit query int false "Maximum number of items" default(100)
// @Success 200 {array} models.TrafficIncident
// @Router /api/traffic [get]
func (h *Handler) listTraffic(c *gin.Context) {
	log := h.logger.WithField("method", "listTraffic")
	skip, limit := pagination(c)

	traffic, err := h.service.ListTraffic(c.Request.Context(), models.TrafficFilter{
		ActiveOnly: queryBool(c, "active_only", true),
		Skip:       skip,
		Limit:      limit,
	})
	if err != nil {
		respondError(c, log, err, "traffic incident")
		return
	}
	c.JSON(http.StatusOK, traffic)
}

// @Summary Get traffic incident by ID
// @Tags Traffic
// @Produce json
// @Param id path string true "Traffic incident ID"
// @Success 200 {object} models.TrafficIncident
// @Failure 404 {object} ErrorResponse "Traffic incident not found"
// @Router /api/traffic/{id} [get]
func (h *Handler) getTraffic(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "getTraffic").WithField("id", id)

	traffic, err := h.service.GetTraffic(c.Request.Context(), id)
	if err != nil {
		respondError(c, log, err, "traffic incident")
		return
	}
	c.JSON(http.StatusOK, traffic)
}

// @Summary Update a traffic incident
// @Tags Traffic
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Traffic incident ID"
// @Param traffic body UpdateTrafficRequest true "Traffic incident update request"
// @Success 200 {object} models.TrafficIncident
// @Failure 400 {object} ErrorResponse "Invalid request body or validation error"
// @Failure 404 {object} ErrorResponse "Traffic incident not found"
// @Router /api/traffic/{id} [put]
func (h *Handler) updateTraffic(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "updateTraffic").WithField("id", id)

	var input UpdateTrafficRequest
	if !h.bind(c, log, &input) {
		return
	}

	traffic, err := h.service.UpdateTraffic(c.Request.Context(), id, DTOToTrafficPatch(input))
	if err != nil {
		respondError(c, log, err, "traffic incident")
		return
	}
	c.JSON(http.StatusOK, traffic)
}

// @Summary Resolve a traffic incident
// @Tags Traffic
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Traffic incident ID"
// @Success 200 {object} models.TrafficIncident
// @Failure 404 {object} ErrorResponse "Traffic incident not found"
// @Router /api/traffic/{id}/resolve [post]
func (h *Handler) resolveTraffic(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "resolveTraffic").WithField("id", id)

	traffic, err := h.service.ResolveTraffic(c.Request.Context(), id)
	if err != nil {
		respondError(c, log, err, "traffic incident")
		return
	}
	c.JSON(http.StatusOK, traffic)
}
