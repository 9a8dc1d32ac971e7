package middleware

import (
	"crypto/subtle"

	"github.com/gin-gonic/gin"
	apperrors "github.com/rahulrai19/Sentiment-Analysis-WebApp/errors"
)

// APIKeyAuth requires the X-API-Key header to match the configured key.
// An empty configured key disables the check entirely, so deployments
// without an access-control boundary are unaffected.
func APIKeyAuth(apiKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if apiKey == "" {
			c.Next()
			return
		}

		provided := c.GetHeader("X-API-Key")
		if subtle.ConstantTimeCompare([]byte(provided), []byte(apiKey)) != 1 {
			_ = c.Error(apperrors.AuthenticationFailed("Invalid API key"))
			c.Abort()
			return
		}

		c.Next()
	}
}
