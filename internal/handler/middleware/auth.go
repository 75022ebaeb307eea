package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/tomasUnverdorben/floor-flow-sub000/internal/handler/httperr"
	"github.com/tomasUnverdorben/floor-flow-sub000/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
)

var errMissingToken = errors.New("missing access token")

const ctxRoleKey = "role"

// AuthMiddleware guards the seat-editor endpoints. There is a single
// admin role; everything else on the API is public.
type AuthMiddleware struct {
	jwtService *jwt.Service
}

func NewAuthMiddleware(jwtService *jwt.Service) *AuthMiddleware {
	return &AuthMiddleware{jwtService: jwtService}
}

func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, errMissingToken, "Access token required", nil)
			return
		}

		claims, err := m.jwtService.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid or expired token", nil)
			return
		}

		if claims.Role != jwt.RoleAdmin {
			httperr.AbortWithError(c, http.StatusForbidden, jwt.ErrInvalidToken, "Insufficient permissions", nil)
			return
		}

		c.Set(ctxRoleKey, claims.Role)
		c.Next()
	}
}

func GetRole(c *gin.Context) (string, bool) {
	value, exists := c.Get(ctxRoleKey)
	if !exists {
		return "", false
	}
	role, ok := value.(string)
	return role, ok
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(authHeader[len("Bearer "):])
}
