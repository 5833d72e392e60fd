package middleware

import (
	"context"
	"net/http"
	"strings"

	"sisgad/internal/auth"
	"sisgad/internal/domain"

	"github.com/gin-gonic/gin"
)

const identityKey = "identity"

// IdentityLoader resolves a user id into a full identity (roles and
// permissions). Injectable so tests can run without a store.
type IdentityLoader func(ctx context.Context, userID int64) (domain.Identity, error)

// Authenticate validates the bearer token and attaches the identity to the
// request. A missing or invalid credential always ends here with 401; it is
// never reported as a permission problem.
func Authenticate(tokens auth.Manager, load IdentityLoader) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := strings.TrimSpace(c.GetHeader("Authorization"))
		if header == "" {
			abortUnauthorized(c, "falta el encabezado Authorization")
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			abortUnauthorized(c, "encabezado Authorization mal formado")
			return
		}

		userID, err := tokens.Parse(strings.TrimSpace(parts[1]))
		if err != nil {
			abortUnauthorized(c, err.Error())
			return
		}

		ident, err := load(c.Request.Context(), userID)
		if err != nil {
			if domain.IsUnauthorized(err) {
				abortUnauthorized(c, err.Error())
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error":   "no se pudo cargar la identidad",
			})
			return
		}

		c.Set(identityKey, ident)
		c.Next()
	}
}

// RequirePermission gates one route on membership in the identity's
// permission union. Evaluated fresh per request, no caching.
func RequirePermission(perm string) gin.HandlerFunc {
	return func(c *gin.Context) {
		ident, ok := GetIdentity(c)
		if !ok {
			abortUnauthorized(c, "identidad no presente en la petición")
			return
		}
		if !ident.HasPermission(perm) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"success": false,
				"error":   domain.ForbiddenError{Permission: perm}.Error(),
			})
			return
		}
		c.Next()
	}
}

// GetIdentity extracts the authenticated identity from the gin context.
func GetIdentity(c *gin.Context) (domain.Identity, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return domain.Identity{}, false
	}
	ident, ok := v.(domain.Identity)
	return ident, ok
}

func abortUnauthorized(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"success": false,
		"error":   msg,
	})
}
