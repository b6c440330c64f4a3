package auth

import (
	"time"

	"github.com/gin-gonic/gin"
)

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

const (
	ctxUserID    = "userID"
	ctxUserRole  = "userRole"
	ctxTokenID   = "tokenID"
	ctxTokenExps = "tokenExpiresAt"
)

// GetUserID returns the authenticated user's ID or empty string.
func GetUserID(c *gin.Context) string {
	return c.GetString(ctxUserID)
}

// GetUserRole returns the authenticated user's role or empty string.
func GetUserRole(c *gin.Context) string {
	return c.GetString(ctxUserRole)
}

// IsAdmin reports whether the authenticated principal holds the admin role.
func IsAdmin(c *gin.Context) bool {
	return GetUserRole(c) == RoleAdmin
}

// GetTokenID returns the jti of the token used for this request.
func GetTokenID(c *gin.Context) string {
	return c.GetString(ctxTokenID)
}

// GetTokenExpiry returns the expiry of the token used for this request.
func GetTokenExpiry(c *gin.Context) time.Time {
	return c.GetTime(ctxTokenExps)
}

// SetPrincipal stores an authenticated principal in the gin context.
func SetPrincipal(c *gin.Context, claims *Claims) {
	c.Set(ctxUserID, claims.UserID)
	c.Set(ctxUserRole, claims.Role)
	c.Set(ctxTokenID, claims.ID)
	if claims.ExpiresAt != nil {
		c.Set(ctxTokenExps, claims.ExpiresAt.Time)
	}
}
