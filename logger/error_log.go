package logger

import (
	"os"
	"runtime"
	"strings"

	"github.com/gin-gonic/gin"
)

// LogHTTPError logs an HTTP error with request context attached.
// Client errors (4xx) are logged at warn level, server errors at error level.
func LogHTTPError(c *gin.Context, err error, statusCode int, message string) {
	log := GetLogger()

	keysAndValues := []interface{}{
		"error", err,
		"status_code", statusCode,
		"path", c.Request.URL.Path,
		"method", c.Request.Method,
		"client_ip", c.ClientIP(),
		"request_id", c.GetString("request_id"),
	}

	// Add stack trace for server errors in non-production environments
	if statusCode >= 500 && os.Getenv("ENVIRONMENT") != "production" {
		keysAndValues = append(keysAndValues, "stack_trace", getStackTrace(2))
	}

	if statusCode >= 500 {
		log.Errorw(message, keysAndValues...)
	} else {
		log.Warnw(message, keysAndValues...)
	}
}

// getStackTrace returns a trimmed stack trace, skipping the given number of frames.
func getStackTrace(skip int) string {
	const depth = 16
	var pcs [depth]uintptr
	n := runtime.Callers(skip+1, pcs[:])
	frames := runtime.CallersFrames(pcs[:n])

	var sb strings.Builder
	for {
		frame, more := frames.Next()
		if frame.Function != "" {
			sb.WriteString(frame.Function)
			sb.WriteString("\n\t")
			sb.WriteString(frame.File)
			sb.WriteString("\n")
		}
		if !more {
			break
		}
	}
	return sb.String()
}
