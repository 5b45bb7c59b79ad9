package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/snackpool/backend/internal/httperrors"
)

// contextClaims is the gin context key the middleware stores the
// validated claims under.
const contextClaims = "snackpool-claims"

// Middleware requires a valid bearer token on every request and makes
// its claims available to the handlers.
func Middleware(service *Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		// OPTIONS requests only announce the allowed verbs and carry no
		// credentials, browsers send them before the token is attached
		if c.Request.Method == http.MethodOptions {
			c.Next()
			return
		}

		header := c.GetHeader("Authorization")
		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || token == "" {
			httperrors.New(c, http.StatusUnauthorized, "you must log in to use this endpoint")
			c.Abort()
			return
		}

		claims, err := service.ValidateToken(token)
		if err != nil {
			httperrors.New(c, http.StatusUnauthorized, err.Error())
			c.Abort()
			return
		}

		c.Set(contextClaims, claims)
		c.Next()
	}
}

// RequireAdmin aborts the request when the token does not belong to
// the admin account. It must run after Middleware.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := ClaimsFromContext(c)
		if claims == nil || !claims.Admin() {
			httperrors.New(c, http.StatusForbidden, "this endpoint requires the admin role")
			c.Abort()
			return
		}

		c.Next()
	}
}

// ClaimsFromContext returns the claims stored by Middleware, nil when
// the request did not carry a valid token.
func ClaimsFromContext(c *gin.Context) *Claims {
	value, ok := c.Get(contextClaims)
	if !ok {
		return nil
	}

	claims, ok := value.(*Claims)
	if !ok {
		return nil
	}

	return claims
}
