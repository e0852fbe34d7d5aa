package handler

import (
	"errors"
	"net/http"

	"github.com/gestiparc/gestiparc/internal/apiserver/database"
	"github.com/gestiparc/gestiparc/internal/common/dto"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CreateReport handles filing a report. Reports are write-once: there is
// no update or delete route.
func (h *Handler) CreateReport(c *gin.Context) {
	var req dto.CreateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Content == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Content is required"})
		return
	}

	report := &database.Report{Content: req.Content}
	if err := h.db.CreateReport(c.Request.Context(), report); err != nil {
		storeError(c, err)
		return
	}

	created(c, gin.H{"id": report.ID, "content": report.Content})
}

// ListReports handles listing all reports, newest first
func (h *Handler) ListReports(c *gin.Context) {
	reports, err := h.db.ListReports(c.Request.Context())
	if err != nil {
		storeError(c, err)
		return
	}
	ok(c, reports)
}

// GetReport handles fetching one report by id
func (h *Handler) GetReport(c *gin.Context) {
	report, err := h.db.GetReport(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Report not found"})
			return
		}
		storeError(c, err)
		return
	}
	ok(c, report)
}
