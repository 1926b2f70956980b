package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"cityinfo/pkg/utils"
)

// RequestLogger stores a request-scoped logger carrying the trace id and logs
// every request once it completes. It must run after TraceIDMiddleware.
func RequestLogger(lggr *zap.SugaredLogger) gin.HandlerFunc {
	lggr = lggr.Named("http")

	return func(c *gin.Context) {
		start := time.Now()
		reqLggr := lggr.With(utils.TraceIDKey, c.GetString(utils.TraceIDKey))
		c.Set(utils.LoggerKey, reqLggr)

		c.Next()

		status := c.Writer.Status()
		fields := []interface{}{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"route", c.FullPath(),
			"status", status,
			"latency", time.Since(start),
			"client_ip", c.ClientIP(),
		}
		if len(c.Errors) > 0 {
			fields = append(fields, "errors", c.Errors.String())
		}

		switch {
		case status >= 500:
			reqLggr.Errorw("Request failed", fields...)
		case status >= 400:
			reqLggr.Warnw("Request rejected", fields...)
		default:
			reqLggr.Infow("Request handled", fields...)
		}
	}
}

// Recovery turns a panic into a 500 envelope and logs the stack.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(nil, func(c *gin.Context, recovered interface{}) {
		utils.LoggerFrom(c).Errorw("Recovered from panic", "panic", recovered, zap.StackSkip("stack", 2))
		utils.RespondError(c, http.StatusInternalServerError, "Internal server error")
		c.Abort()
	})
}
