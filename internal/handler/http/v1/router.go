package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует корневой маршрут, REST API под /api и живой канал /ws/rtcc
func (h *Handler) RegisterRoutes(router gin.IRouter) {
	router.GET("/", h.root)
	router.GET("/ws/rtcc", h.liveChannel)

	api := router.Group("/api")
	// Мутирующие маршруты требуют API-ключ, если ключи заданы
	auth := APIKeyAuthMiddleware(h.cfg.APIKeys, h.logger)

	incidents := api.Group("/incidents")
	{
		incidents.POST("", auth, h.createIncident)
		incidents.GET("", h.listIncidents)
		incidents.GET("/:id", h.getIncident)
		incidents.PUT("/:id", auth, h.updateIncident)
		incidents.DELETE("/:id", auth, h.deleteIncident)
	}

	units := api.Group("/units")
	{
		units.POST("", auth, h.createUnit)
		units.GET("", h.listUnits)
		units.GET("/:id", h.getUnit)
		units.PUT("/:id", auth, h.updateUnit)
		units.PUT("/:id/status", auth, h.updateUnitStatus)
		units.DELETE("/:id", auth, h.deleteUnit)
	}

	assignments := api.Group("/assignments")
	{
		assignments.POST("", auth, h.createAssignment)
		assignments.GET("", h.listAssignments)
		assignments.PUT("/:id", auth, h.updateAssignment)
	}

	traffic := api.Group("/traffic")
	{
		traffic.POST("", auth, h.createTraffic)
		traffic.GET("", h.listTraffic)
		traffic.GET("/:id", h.getTraffic)
		traffic.PUT("/:id", auth, h.updateTraffic)
		traffic.POST("/:id/resolve", auth, h.resolveTraffic)
	}

	api.GET("/dashboard/stats", h.getStats)
	api.GET("/logs", h.listLogs)

	wmata := api.Group("/wmata")
	{
		wmata.GET("/metro", h.getMetro)
		wmata.GET("/bus", h.getBuses)
	}

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}
