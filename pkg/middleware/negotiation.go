package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cityinfo/pkg/utils"
)

// AcceptableFormats rejects requests whose Accept header names no format the
// API can produce, before any handler runs.
func AcceptableFormats() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.NegotiateFormat(utils.OfferedFormats...) == "" {
			c.AbortWithStatus(http.StatusNotAcceptable)
			return
		}
		c.Next()
	}
}
