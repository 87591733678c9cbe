package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/rtcc_dashboard/internal/models"
)

// @Summary Get dashboard statistics
// @Tags Dashboard
// @Produce json
// @Success 200 {object} models.DashboardStats
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /api/dashboard/stats [get]
func (h *Handler) getStats(c *gin.Context) {
	log := h.logger.WithField("method", "getStats")

	stats, err := h.service.GetStats(c.Request.Context())
	if err != nil {
		respondError(c, log, err, "stats")
		return
	}
	c.JSON(http.StatusOK, stats)
}

// @Summary Get system logs
// @Description Newest entries first
// @Tags Dashboard
// @Produce json
// @Param level query string false "Filter by level"
// @Param category query string false "Filter by category"
// @Param skip query int false "Number of items to skip" default(0)
// @Param limit query int false "Maximum number of items" default(100)
// @Success 200 {array} models.SystemLog
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /api/logs [get]
func (h *Handler) listLogs(c *gin.Context) {
	log := h.logger.WithField("method", "listLogs")
	skip, limit := pagination(c)

	logs, err := h.service.ListLogs(c.Request.Context(), models.LogFilter{
		Level:    c.Query("level"),
		Category: c.Query("category"),
		Skip:     skip,
		Limit:    limit,
	})
	if err != nil {
		respondError(c, log, err, "logs")
		return
	}
	c.JSON(http.StatusOK, logs)
}

// @Summary Get WMATA metro incidents
// @Description Falls back to simulated incidents when the WMATA API is unavailable
// @Tags Transit
// @Produce json
// @Success 200 {object} transit.MetroStatus
// @Router /api/wmata/metro [get]
func (h *Handler) getMetro(c *gin.Context) {
	c.JSON(http.StatusOK, h.transit.MetroIncidents(c.Request.Context()))
}

// @Summary Get bus positions
// @Tags Transit
// @Produce json
// @Success 200 {object} transit.BusStatus
// @Router /api/wmata/bus [get]
func (h *Handler) getBuses(c *gin.Context) {
	c.JSON(http.StatusOK, h.transit.Buses())
}

// @Summary API status
// @Tags System
// @Produce json
// @Success 200 {object} StatusResponse
// @Router / [get]
func (h *Handler) root(c *gin.Context) {
	c.JSON(http.StatusOK, StatusResponse{Message: "DC RTCC Simulation API", Status: "running"})
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /api/system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	resp := HealthResponse{Status: "ok"}
	if h.hub != nil {
		resp.Subscribers = h.hub.Count()
	}
	c.JSON(http.StatusOK, resp)
}
