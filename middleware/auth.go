package middleware

import (
	"net/http"
	"strings"

	"github.com/Claudio-Lins/amigo-tvde-backend/config"
	"github.com/Claudio-Lins/amigo-tvde-backend/internal/auth"
	"github.com/Claudio-Lins/amigo-tvde-backend/logger"
	"github.com/gin-gonic/gin"
)

// AuthMiddleware validates the Bearer token and stores the user ID in the
// request context. Every /v1 data route sits behind it.
func AuthMiddleware(cfg *config.ServerConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		log := logger.GetLogger()

		token := extractBearerToken(c.GetHeader("Authorization"))
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Authorization required",
			})
			return
		}

		userID, err := auth.ValidateAccessToken(token, cfg.JwtSecretKey)
		if err != nil {
			log.Warnw("Invalid JWT token",
				"error", err,
				"request_path", c.Request.URL.Path,
				"request_method", c.Request.Method,
				"client_ip", c.ClientIP(),
				"token", logger.MaskJWT(token),
			)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid authentication token",
			})
			return
		}

		if userID == "" {
			log.Errorw("Empty userID from valid JWT", "request_path", c.Request.URL.Path)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"error": "Authentication system error",
			})
			return
		}

		c.Set(string(UserIDKey), userID)
		c.Next()
	}
}

func extractBearerToken(header string) string {
	if header == "" || !strings.HasPrefix(header, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(header, "Bearer ")
}
