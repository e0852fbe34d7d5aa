package handler

import (
	"net/http"

	"github.com/gestiparc/gestiparc/internal/apiserver/database"
	"github.com/gestiparc/gestiparc/internal/common/dto"
	"github.com/gin-gonic/gin"
)

// CreateMission handles mission creation. Description and status are
// optional; status defaults to "pending".
func (h *Handler) CreateMission(c *gin.Context) {
	var req dto.CreateMissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name is required"})
		return
	}

	mission := &database.Mission{
		Name:        req.Name,
		Description: req.Description,
		Status:      req.Status,
	}
	if err := h.db.CreateMission(c.Request.Context(), mission); err != nil {
		storeError(c, err)
		return
	}

	created(c, gin.H{
		"id":          mission.ID,
		"name":        mission.Name,
		"description": mission.Description,
		"status":      mission.Status,
	})
}

// ListMissions handles listing all missions, newest first
func (h *Handler) ListMissions(c *gin.Context) {
	missions, err := h.db.ListMissions(c.Request.Context())
	if err != nil {
		storeError(c, err)
		return
	}
	ok(c, missions)
}

// MissionSummary handles the mission count grouped by status
func (h *Handler) MissionSummary(c *gin.Context) {
	counts, err := h.db.CountMissionsByStatus(c.Request.Context())
	if err != nil {
		storeError(c, err)
		return
	}
	ok(c, counts)
}
