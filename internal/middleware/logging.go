package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RequestIDKey is the gin context key holding the request ID
const RequestIDKey = "request_id"

// requestFields identifies the request in every log line the middleware writes.
// route is the matched template, so one entry covers every path it serves.
func requestFields(c *gin.Context) []zap.Field {
	return []zap.Field{
		zap.String("method", c.Request.Method),
		zap.String("path", c.Request.URL.Path),
		zap.String("route", c.FullPath()),
		zap.String("request_id", c.GetString(RequestIDKey)),
		zap.String("ip", c.ClientIP()),
	}
}

// RequestLoggingMiddleware logs every request with its outcome and timing.
// 5xx log at Error, 4xx at Warn, the rest at Info.
func RequestLoggingMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		status := c.Writer.Status()
		fields := append(requestFields(c),
			zap.String("query", c.Request.URL.RawQuery),
			zap.Int("status", status),
			zap.Int("response_size", c.Writer.Size()),
			zap.Duration("duration", time.Since(start)),
			zap.Time("timestamp", start),
		)

		switch {
		case status >= http.StatusInternalServerError:
			logger.Error("Request completed with server error", fields...)
		case status >= http.StatusBadRequest:
			logger.Warn("Request completed with client error", fields...)
		default:
			logger.Info("Request completed", fields...)
		}
	}
}

// ErrorLoggingMiddleware logs each error handlers attached with c.Error
func ErrorLoggingMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		for _, err := range c.Errors {
			logger.Error("Request error occurred", append(requestFields(c),
				zap.Error(err.Err),
				zap.Uint64("error_type", uint64(err.Type)),
				zap.Stack("stack_trace"),
			)...)
		}
	}
}

// RecoveryMiddleware turns a handler panic into a 500 INTERNAL_ERROR response
func RecoveryMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("Panic recovered", append(requestFields(c),
					zap.Any("error", r),
					zap.Stack("stack_trace"),
				)...)

				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"code":    "INTERNAL_ERROR",
					"message": "Internal server error",
				})
			}
		}()

		c.Next()
	}
}

// RequestIDMiddleware adds a unique request ID to each request
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}

		c.Set(RequestIDKey, requestID)
		c.Header("X-Request-ID", requestID)

		c.Next()
	}
}
