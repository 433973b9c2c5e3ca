package middleware

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/Rodolf-GitHub/jatishop-back/internal/config"
	"github.com/Rodolf-GitHub/jatishop-back/pkg/utils"
)

type Claims struct {
	UserID  uint   `json:"user_id"`
	Email   string `json:"email"`
	EsAdmin bool   `json:"es_admin"`
	jwt.RegisteredClaims
}

// AuthMiddleware validates a bearer token issued elsewhere and exposes the
// caller's identity in the gin context. Token issuance is not this
// service's job.
func AuthMiddleware(cfg config.JWTConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.SendUnauthorizedError(c, "Authorization header required")
			c.Abort()
			return
		}

		tokenParts := strings.Split(authHeader, " ")
		if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
			utils.SendUnauthorizedError(c, "Invalid authorization header format")
			c.Abort()
			return
		}

		claims := &Claims{}
		token, err := jwt.ParseWithClaims(tokenParts[1], claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return []byte(cfg.SecretKey), nil
		})
		if err != nil || !token.Valid {
			utils.SendUnauthorizedError(c, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("email", claims.Email)
		c.Set("es_admin", claims.EsAdmin)
		c.Next()
	}
}

func AdminOnlyMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		esAdmin, exists := c.Get("es_admin")
		if !exists || !esAdmin.(bool) {
			utils.SendForbiddenError(c, "Admin access required")
			c.Abort()
			return
		}
		c.Next()
	}
}

// CurrentUserID reads the authenticated user id set by AuthMiddleware.
func CurrentUserID(c *gin.Context) (uint, bool) {
	value, exists := c.Get("user_id")
	if !exists {
		return 0, false
	}
	id, ok := value.(uint)
	return id, ok
}
