package middleware

import (
	"net/http"
	"strings"

	"github.com/redis/go-redis/v9"

	tokensvc "auth-backend/internal/token"
	"auth-backend/pkg/model"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware verifies the bearer access token and rejects tokens that
// have been revoked by logout or rotation. The verified identity and the raw
// token are stored in the request context for the controllers.
func AuthMiddleware(accessSecret string, cache *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			// fall back to cookie
			authHeader, _ = c.Cookie("access_token")
		}
		bearerToken := strings.Split(authHeader, " ")
		if len(bearerToken) != 2 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, model.ErrorResponse{
				Error: "Unauthorized",
			})
			return
		}
		authToken := bearerToken[1]
		claims, err := tokensvc.ExtractCustomClaimsFromToken(&authToken, accessSecret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, model.ErrorResponse{
				Error: "Unauthorized",
			})
			return
		}
		exists, err := cache.Exists(c, claims.ID).Result()
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, model.ErrorResponse{
				Error: "failed to check token revocation: cache server error",
			})
			return
		}
		if exists == 1 {
			// token has been revoked
			c.AbortWithStatusJSON(http.StatusUnauthorized, model.ErrorResponse{
				Error: "Unauthorized",
			})
			return
		}
		identity := &claims.Identity
		c.Set("identity", identity)
		c.Set("access_token", authToken)
		c.Next()
	}
}
