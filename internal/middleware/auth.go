package middleware

import (
	"strings"

	"course_catalog_backend/internal/config"
	"course_catalog_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware resolves the caller identity from a bearer token. Token
// issuance belongs to the external identity provider; here we only verify
// and expose the claims.
func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := ""
		authHeader := c.GetHeader("Authorization")
		if authHeader != "" {
			tokenString = strings.TrimPrefix(authHeader, "Bearer ")
		}

		if tokenString == "" {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		claims, err := util.ParseJWT(tokenString, cfg.JWT.Secret)
		if err != nil {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		c.Set("user", claims)
		c.Next()
	}
}
