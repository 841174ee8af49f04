package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"foodhub-api/apperr"
	"foodhub-api/auth"
	"foodhub-api/config"
	"foodhub-api/models"
)

// BearerToken extracts the raw token from the Authorization header, or ""
// when the header is absent or not a Bearer scheme.
func BearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header == "" || !strings.HasPrefix(header, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
}

// AuthRequired verifies the bearer token and injects the verified identity
// into the context. Handlers must take owner ids from this identity, never
// from request bodies.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := BearerToken(c)
		if token == "" {
			apperr.Abort(c, apperr.New(apperr.AuthRequired, "Authorization header required (Bearer <token>)"))
			return
		}
		id, err := auth.Verify(config.JWTSecret, token)
		if err != nil {
			apperr.Abort(c, apperr.New(apperr.AuthRequired, "Invalid or expired token"))
			return
		}
		c.Set("subjectID", id.SubjectID)
		c.Set("role", string(id.Role))
		c.Next()
	}
}

// RoleRequired enforces that the verified role is one of the allowed roles.
// Runs after AuthRequired; a wrong role is an authorization failure,
// distinct from the authentication failures above.
func RoleRequired(roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		caller := GetRole(c)
		for _, r := range roles {
			if caller == r {
				c.Next()
				return
			}
		}
		apperr.Abort(c, apperr.New(apperr.Forbidden, "Access denied. Required role(s): "+rolesString(roles)))
	}
}

func rolesString(roles []models.Role) string {
	s := ""
	for i, r := range roles {
		if i > 0 {
			s += ", "
		}
		s += string(r)
	}
	return s
}

// GetSubjectID extracts the verified caller id from context.
func GetSubjectID(c *gin.Context) uint {
	val, _ := c.Get("subjectID")
	id, _ := val.(uint)
	return id
}

// GetRole extracts the verified caller role from context.
func GetRole(c *gin.Context) models.Role {
	val, _ := c.Get("role")
	s, _ := val.(string)
	return models.Role(s)
}
