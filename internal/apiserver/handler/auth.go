package handler

import (
	"errors"
	"net/http"

	"github.com/gestiparc/gestiparc/internal/common/dto"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Login handles user login.
//
// An unknown username and a wrong password produce the same response: a
// 200 with {"success":false,"message":"Invalid credentials"}. Error
// statuses are reserved for server-side faults, so a caller cannot tell
// the two rejection causes apart.
func (h *Handler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	invalid := dto.LoginFailure{Success: false, Message: "Invalid credentials"}

	user, err := h.db.GetUserByUsername(c.Request.Context(), req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusOK, invalid)
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	// bcrypt compares in constant time against the stored hash
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		c.JSON(http.StatusOK, invalid)
		return
	}

	token, err := h.jwtService.GenerateToken(user.Username)
	if err != nil {
		h.logger.Error("failed to generate token", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{Success: true, Token: token})
}
