package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/lanestel/admin-gateway/internal/auth"
)

const (
	SessionCookieName = "admin_session"

	IdentityIDKey   = "identity_id"
	IdentityNameKey = "identity_name"
)

// SessionAuth guards a route with the session token check. The token is
// read from the session cookie, falling back to an Authorization bearer
// header. A missing token and an invalid or expired one are handled
// identically: API paths get a 401 JSON body, browser paths get a
// redirect to the login page.
func SessionAuth(secret, loginPath string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		claims, err := auth.ValidateToken(secret, token)
		if token == "" || err != nil {
			if strings.HasPrefix(c.Request.URL.Path, "/api/") {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized - Please login first"})
			} else {
				c.Redirect(http.StatusFound, loginPath)
				c.Abort()
			}
			return
		}

		c.Set(IdentityIDKey, claims.IdentityID)
		c.Set(IdentityNameKey, claims.Name)
		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	if cookie, err := c.Cookie(SessionCookieName); err == nil && cookie != "" {
		return cookie
	}
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return ""
}
