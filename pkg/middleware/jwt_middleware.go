package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"cityinfo/pkg/utils"
)

const (
	ClaimsKey = "claims"
	UserIDKey = "user_id"
	CityKey   = "city"
)

func JWTAuthMiddleware(tokens *utils.TokenService) gin.HandlerFunc {

	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.Header("WWW-Authenticate", "Bearer")
			utils.RespondError(c, http.StatusUnauthorized, "Authorization header missing or invalid")
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := tokens.ValidateToken(tokenString)
		if err != nil {
			msg := "Invalid token"
			if errors.Is(err, utils.ErrExpiredToken) {
				msg = "Token expired"
			}
			utils.LoggerFrom(c).Infow("Rejected bearer token", "error", err)
			c.Header("WWW-Authenticate", `Bearer error="invalid_token"`)
			utils.RespondError(c, http.StatusUnauthorized, msg)
			c.Abort()
			return
		}

		// Pass user information to the next handler
		c.Set(ClaimsKey, claims)
		c.Set(UserIDKey, claims.Subject)
		c.Set(CityKey, claims.City)
		c.Next()
	}
}

// MustBeFromCity only lets through callers whose city claim equals city.
// An empty city allows everyone.
func MustBeFromCity(city string) gin.HandlerFunc {

	return func(c *gin.Context) {
		if city == "" {
			c.Next()
			return
		}

		if c.GetString(CityKey) != city {
			utils.RespondError(c, http.StatusForbidden, "Forbidden: insufficient permissions")
			c.Abort()
			return
		}

		c.Next()
	}
}

// ClaimsFrom returns the token claims stored by JWTAuthMiddleware.
func ClaimsFrom(c *gin.Context) (*utils.Claims, bool) {
	v, ok := c.Get(ClaimsKey)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*utils.Claims)
	return claims, ok
}
