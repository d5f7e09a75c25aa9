package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"viajes-backoffice/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AuthMiddleware struct {
	tokens *jwt.Service
}

const (
	ctxSellerIDKey   = "seller_id"
	ctxSellerRoleKey = "seller_role"
)

func NewAuthMiddleware(tokens *jwt.Service) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		var token string
		authHeader := c.GetHeader("Authorization")
		if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
			token = strings.TrimSpace(authHeader[len("Bearer "):])
		}

		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Access token required",
			})
			c.Abort()
			return
		}

		claims, err := m.tokens.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired token",
			})
			c.Abort()
			return
		}

		c.Set(ctxSellerIDKey, claims.SellerID)
		c.Set(ctxSellerRoleKey, claims.Role)
		c.Set("jwt_claims", map[string]any{
			"seller_id": claims.SellerID.String(),
			"role":      claims.Role,
		})
		c.Next()
	}
}

func GetSellerID(c *gin.Context) (uuid.UUID, bool) {
	sellerID, exists := c.Get(ctxSellerIDKey)
	if !exists {
		return uuid.Nil, false
	}

	id, ok := sellerID.(uuid.UUID)
	return id, ok
}

func GetSellerRole(c *gin.Context) (string, bool) {
	role, exists := c.Get(ctxSellerRoleKey)
	if !exists {
		return "", false
	}

	r, ok := role.(string)
	return r, ok
}
