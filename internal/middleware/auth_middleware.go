package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"wildrydes/internal/utils"
)

// JWTClaims represents the JWT token claims
type JWTClaims struct {
	Username string `json:"cognito:username"`
	jwt.RegisteredClaims
}

// IdentityMiddleware resolves the caller identity from a bearer token
// when one is present. Missing or invalid tokens leave the request
// anonymous rather than rejecting it; the ride service synthesizes a
// guest identity for anonymous callers.
func IdentityMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Next()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.Next()
			return
		}

		token, err := jwt.ParseWithClaims(tokenString, &JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			c.Next()
			return
		}

		claims, ok := token.Claims.(*JWTClaims)
		if !ok {
			c.Next()
			return
		}

		identity := claims.Username
		if identity == "" {
			identity = claims.Subject
		}
		if identity != "" {
			c.Set(utils.CallerIdentityKey, identity)
		}

		c.Next()
	}
}

// CallerIdentity returns the resolved caller identity, or "" for an
// anonymous request.
func CallerIdentity(c *gin.Context) string {
	if identity, exists := c.Get(utils.CallerIdentityKey); exists {
		if str, ok := identity.(string); ok {
			return str
		}
	}
	return ""
}
