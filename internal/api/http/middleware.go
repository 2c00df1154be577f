package apiHttp

import (
	"net/http"
	"slices"

	"github.com/gin-gonic/gin"
)

const allowAnyOrigin = "*"

func corsMiddleware(allowedOrigins []string) gin.HandlerFunc {
	anyOrigin := len(allowedOrigins) == 0 || slices.Contains(allowedOrigins, allowAnyOrigin)

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		switch {
		case anyOrigin:
			c.Header("Access-Control-Allow-Origin", allowAnyOrigin)
		case origin != "" && slices.Contains(allowedOrigins, origin):
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Vary", "Origin")
		}
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Authorization, Content-Type")
		c.Header("Access-Control-Expose-Headers", "Location")

		if c.Request.Method != http.MethodOptions {
			c.Next()
		} else {
			c.AbortWithStatus(http.StatusOK)
		}
	}
}
