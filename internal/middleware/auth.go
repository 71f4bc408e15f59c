package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"mealmate/internal/auth"
	"mealmate/internal/models"
)

const principalKey = "principal"

// AuthGuard verifies the bearer token and stores the principal in the
// context. When roles are given the principal must hold one of them.
func AuthGuard(secret string, allowedRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		log := Logger(c).WithField("area", "AUTH")

		raw := strings.TrimSpace(c.GetHeader("Authorization"))
		if raw == "" {
			log.Debug("missing token")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "missing token"})
			return
		}

		parts := strings.Fields(raw)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			log.Debug("invalid token format")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "invalid token"})
			return
		}

		principal, err := auth.ParseAccessToken(parts[1], secret)
		if err != nil {
			log.WithError(err).Info("token validation failed")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "unauthorized"})
			return
		}

		if len(allowedRoles) > 0 && !hasRole(principal.Role, allowedRoles) {
			log.WithField("account", principal.AccountID.Hex()).Info("role not allowed")
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "forbidden"})
			return
		}

		c.Set(principalKey, principal)
		c.Next()
	}
}

func AdminAuth(secret string) gin.HandlerFunc {
	return AuthGuard(secret, models.RoleAdmin)
}

// PrincipalFrom returns the principal AuthGuard stored, if any.
func PrincipalFrom(c *gin.Context) (auth.Principal, bool) {
	value, ok := c.Get(principalKey)
	if !ok {
		return auth.Principal{}, false
	}
	principal, ok := value.(auth.Principal)
	return principal, ok
}

func hasRole(role string, allowed []string) bool {
	for _, r := range allowed {
		if strings.EqualFold(role, r) {
			return true
		}
	}
	return false
}
