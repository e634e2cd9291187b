package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"fitness-api/services"
)

// Context keys set by the auth gateway and read by downstream handlers.
const (
	ContextKeyUsername = "username"
	ContextKeyRole     = "role"
)

// RoleUser is the single fixed authority every authenticated identity
// carries.
const RoleUser = "ROLE_USER"

// publicPaths bypass the authentication requirement entirely: login,
// register, the health check and the diagnostic console.
var publicPaths = []string{
	"/auth/login",
	"/auth/register",
	"/health",
	"/console",
}

func isPublicPath(path string) bool {
	for _, p := range publicPaths {
		if path == p || strings.HasPrefix(path, p+"/") {
			return true
		}
	}
	return false
}

// Auth is the gateway middleware applied to every inbound request.
//
// If an Authorization header carries a Bearer token, the token is validated
// and, when valid, the username and a fixed role are attached to the request
// context. Invalid or expired tokens attach nothing; they are not a distinct
// error. Requests to non-public paths that reach this point without an
// attached identity are rejected before any handler runs.
func Auth(tokens *services.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if tokenString, found := strings.CutPrefix(authHeader, "Bearer "); found {
			if tokens.Validate(tokenString) {
				if _, attached := c.Get(ContextKeyUsername); !attached {
					username, err := tokens.ExtractUsername(tokenString)
					if err == nil {
						c.Set(ContextKeyUsername, username)
						c.Set(ContextKeyRole, RoleUser)
					}
				}
			}
		}

		if isPublicPath(c.Request.URL.Path) {
			c.Next()
			return
		}

		if _, attached := c.Get(ContextKeyUsername); !attached {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		c.Next()
	}
}

// GetUsername returns the authenticated username attached by Auth, or ""
// when the request carried no valid identity.
func GetUsername(c *gin.Context) string {
	return c.GetString(ContextKeyUsername)
}

// CORS allows browser clients from any origin to reach the API.
func CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Authorization, Content-Type")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// SecurityHeaders adds standard security headers to every response.
func SecurityHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("X-Frame-Options", "DENY")
		c.Header("Referrer-Policy", "strict-origin-when-cross-origin")
		c.Next()
	}
}
