package handler

import (
	"net/http"

	"github.com/gestiparc/gestiparc/internal/apiserver/database"
	"github.com/gestiparc/gestiparc/internal/auth/jwt"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler carries the dependencies shared by all endpoint handlers
type Handler struct {
	db         database.Database
	jwtService *jwt.Service
	logger     *zap.Logger
}

// NewHandler creates a new handler
func NewHandler(db database.Database, jwtService *jwt.Service, logger *zap.Logger) *Handler {
	return &Handler{
		db:         db,
		jwtService: jwtService,
		logger:     logger,
	}
}

// ok writes the success envelope
func ok(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, gin.H{"message": "success", "data": data})
}

// created writes the success envelope with a 201 status
func created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, gin.H{"message": "success", "data": data})
}

// storeError surfaces a persistence failure verbatim with a 400 status.
// Surfacing the raw store message is part of the API contract.
func storeError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}
