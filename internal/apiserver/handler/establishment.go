package handler

import (
	"net/http"

	"github.com/gestiparc/gestiparc/internal/apiserver/database"
	"github.com/gestiparc/gestiparc/internal/common/dto"
	"github.com/gin-gonic/gin"
)

// ListEstablishments handles listing all establishments
func (h *Handler) ListEstablishments(c *gin.Context) {
	ests, err := h.db.ListEstablishments(c.Request.Context())
	if err != nil {
		storeError(c, err)
		return
	}
	ok(c, ests)
}

// CreateEstablishment handles establishment creation
func (h *Handler) CreateEstablishment(c *gin.Context) {
	var req dto.CreateEstablishmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name is required"})
		return
	}

	est := &database.Establishment{Name: req.Name}
	if err := h.db.CreateEstablishment(c.Request.Context(), est); err != nil {
		storeError(c, err)
		return
	}

	created(c, gin.H{"id": est.ID, "name": est.Name})
}

// UpdateEstablishment handles renaming an establishment by id
func (h *Handler) UpdateEstablishment(c *gin.Context) {
	var req dto.UpdateEstablishmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name is required"})
		return
	}

	id := c.Param("id")
	changes, err := h.db.UpdateEstablishment(c.Request.Context(), id, req.Name)
	if err != nil {
		storeError(c, err)
		return
	}

	// A missing id is not distinguished here: changes carries the count
	c.JSON(http.StatusOK, gin.H{
		"message": "success",
		"data":    gin.H{"id": id, "name": req.Name},
		"changes": changes,
	})
}

// DeleteEstablishment handles deleting an establishment by id. The store
// rejects the delete while equipment rows still reference the id.
func (h *Handler) DeleteEstablishment(c *gin.Context) {
	changes, err := h.db.DeleteEstablishment(c.Request.Context(), c.Param("id"))
	if err != nil {
		storeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "success", "changes": changes})
}
