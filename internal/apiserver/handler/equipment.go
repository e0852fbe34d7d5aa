package handler

import (
	"net/http"

	"github.com/gestiparc/gestiparc/internal/apiserver/database"
	"github.com/gestiparc/gestiparc/internal/common/dto"
	"github.com/gin-gonic/gin"
)

// ListEquipment handles listing equipment joined with establishment
// names, with optional status and establishment_id equality filters.
func (h *Handler) ListEquipment(c *gin.Context) {
	filter := database.EquipmentFilter{
		Status:          c.Query("status"),
		EstablishmentID: c.Query("establishment_id"),
	}
	h.listEquipment(c, filter)
}

// ListDamagedEquipment handles the fixed-status convenience route
func (h *Handler) ListDamagedEquipment(c *gin.Context) {
	h.listEquipment(c, database.EquipmentFilter{Status: "damaged"})
}

// ListFunctionalEquipment handles the fixed-status convenience route
func (h *Handler) ListFunctionalEquipment(c *gin.Context) {
	h.listEquipment(c, database.EquipmentFilter{Status: "functional"})
}

// ListNewEquipment handles the fixed-status convenience route
func (h *Handler) ListNewEquipment(c *gin.Context) {
	h.listEquipment(c, database.EquipmentFilter{Status: "new"})
}

func (h *Handler) listEquipment(c *gin.Context, filter database.EquipmentFilter) {
	rows, err := h.db.ListEquipment(c.Request.Context(), filter)
	if err != nil {
		storeError(c, err)
		return
	}
	ok(c, rows)
}

// CreateEquipment handles equipment creation. The establishment id is
// stored as supplied, without checking that the establishment exists.
func (h *Handler) CreateEquipment(c *gin.Context) {
	var req dto.CreateEquipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Name == "" || req.Status == "" || req.EstablishmentID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name, status, and establishment_id are required"})
		return
	}

	eq := &database.Equipment{
		Name:            req.Name,
		Status:          req.Status,
		EstablishmentID: req.EstablishmentID,
	}
	if err := h.db.CreateEquipment(c.Request.Context(), eq); err != nil {
		storeError(c, err)
		return
	}

	created(c, gin.H{
		"id":               eq.ID,
		"name":             eq.Name,
		"status":           eq.Status,
		"establishment_id": eq.EstablishmentID,
	})
}

// UpdateEquipment handles a full replace of name, status and
// establishment_id by id
func (h *Handler) UpdateEquipment(c *gin.Context) {
	var req dto.UpdateEquipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Name == "" || req.Status == "" || req.EstablishmentID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name, status, and establishment_id are required"})
		return
	}

	id := c.Param("id")
	changes, err := h.db.UpdateEquipment(c.Request.Context(), id, &database.Equipment{
		Name:            req.Name,
		Status:          req.Status,
		EstablishmentID: req.EstablishmentID,
	})
	if err != nil {
		storeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "success",
		"data": gin.H{
			"id":               id,
			"name":             req.Name,
			"status":           req.Status,
			"establishment_id": req.EstablishmentID,
		},
		"changes": changes,
	})
}

// DeleteEquipment handles deleting an equipment record by id
func (h *Handler) DeleteEquipment(c *gin.Context) {
	changes, err := h.db.DeleteEquipment(c.Request.Context(), c.Param("id"))
	if err != nil {
		storeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "success", "changes": changes})
}
