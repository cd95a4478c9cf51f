package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"
)

// CORS allows the configured origins ("*" for any) and answers preflight requests
// with 204.
func CORS(allowedOrigins string) gin.HandlerFunc {
	origins := lo.Compact(lo.Map(strings.Split(allowedOrigins, ","), func(o string, _ int) string {
		return strings.TrimSpace(o)
	}))
	allowAny := len(origins) == 0 || lo.Contains(origins, "*")

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		switch {
		case allowAny:
			c.Header("Access-Control-Allow-Origin", "*")
		case origin != "" && lo.Contains(origins, origin):
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Vary", "Origin")
		}
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, X-Request-ID")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
