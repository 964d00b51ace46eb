package middleware

import (
	"crypto/subtle"

	"github.com/gin-gonic/gin"
)

// ServiceKeyAuth authenticates internal callers, such as the monthly billing scheduler,
// through the x-api-key header. keys maps an api key to the service user id it acts as.
// Requests without a known key fall through to AuthMiddleware.
func ServiceKeyAuth(keys map[string]string) gin.HandlerFunc {
	return func(c *gin.Context) {
		apiKey := c.GetHeader("x-api-key")
		if apiKey == "" || len(keys) == 0 {
			c.Next()
			return
		}

		for key, serviceUserID := range keys {
			if subtle.ConstantTimeCompare([]byte(key), []byte(apiKey)) == 1 {
				setAuthenticatedUser(c, serviceUserID, "service_key")
				break
			}
		}
		c.Next()
	}
}
