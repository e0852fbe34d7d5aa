package handler

import (
	"github.com/gestiparc/gestiparc/internal/apiserver/database"
	"github.com/gin-gonic/gin"
)

// DashboardSummary handles the total equipment count plus the count per
// status
func (h *Handler) DashboardSummary(c *gin.Context) {
	ctx := c.Request.Context()

	total, err := h.db.CountEquipment(ctx)
	if err != nil {
		storeError(c, err)
		return
	}

	statusCounts, err := h.db.CountEquipmentByStatus(ctx)
	if err != nil {
		storeError(c, err)
		return
	}

	ok(c, database.DashboardSummary{
		TotalEquipment: total,
		StatusCounts:   statusCounts,
	})
}

// EquipmentByEstablishment handles the equipment count per establishment
// name. Establishments without equipment appear with a zero count.
func (h *Handler) EquipmentByEstablishment(c *gin.Context) {
	counts, err := h.db.CountEquipmentByEstablishment(c.Request.Context())
	if err != nil {
		storeError(c, err)
		return
	}
	ok(c, counts)
}
