package middleware

import (
	"net/http"
	"strings"

	"github.com/gestiparc/gestiparc/internal/auth/jwt"
	"github.com/gin-gonic/gin"
)

// JWTAuthMiddleware creates a middleware that validates JWT tokens.
//
// A missing or malformed Authorization header is rejected with 401 and an
// empty body; a well-formed header whose token fails verification (bad
// signature, malformed, expired) is rejected with 403, also without a
// body. The two failure kinds are deliberately not distinguished any
// further for the caller.
func JWTAuthMiddleware(jwtService *jwt.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		claims, err := jwtService.ValidateToken(parts[1])
		if err != nil {
			c.AbortWithStatus(http.StatusForbidden)
			return
		}

		// Bind the caller identity to request-scoped state
		c.Set("claims", claims)
		c.Next()
	}
}
