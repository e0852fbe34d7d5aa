package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires every endpoint onto the engine. All /api routes
// sit behind the supplied authentication middleware; /login and / do not.
func (h *Handler) RegisterRoutes(r *gin.Engine, auth gin.HandlerFunc) {
	r.POST("/login", h.Login)
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "gestiparc backend is running")
	})

	api := r.Group("/api", auth)

	api.GET("/establishments", h.ListEstablishments)
	api.POST("/establishments", h.CreateEstablishment)
	api.PUT("/establishments/:id", h.UpdateEstablishment)
	api.DELETE("/establishments/:id", h.DeleteEstablishment)

	api.GET("/equipment", h.ListEquipment)
	api.GET("/equipment/damaged", h.ListDamagedEquipment)
	api.GET("/equipment/functional", h.ListFunctionalEquipment)
	api.GET("/equipment/new", h.ListNewEquipment)
	api.POST("/equipment", h.CreateEquipment)
	api.PUT("/equipment/:id", h.UpdateEquipment)
	api.DELETE("/equipment/:id", h.DeleteEquipment)

	api.POST("/reports", h.CreateReport)
	api.GET("/reports", h.ListReports)
	api.GET("/reports/:id", h.GetReport)

	api.POST("/missions", h.CreateMission)
	api.GET("/missions", h.ListMissions)
	api.GET("/missions/summary", h.MissionSummary)

	api.GET("/dashboard/summary", h.DashboardSummary)
	api.GET("/dashboard/equipment-by-establishment", h.EquipmentByEstablishment)
}
