package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	RequestIDHeader = "X-Request-ID"
	loggerKey       = "logger"
)

// RequestID tags every request with an id, echoed in the response header,
// and logs one line per completed request.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}
		c.Header(RequestIDHeader, id)

		entry := logrus.WithField("requestId", id)
		c.Set(loggerKey, entry)

		start := time.Now()
		c.Next()

		entry.WithFields(logrus.Fields{
			"area":     "HTTP",
			"method":   c.Request.Method,
			"route":    c.FullPath(),
			"status":   c.Writer.Status(),
			"duration": time.Since(start).String(),
		}).Info("request handled")
	}
}

// Logger returns the request-scoped entry, or the standard logger when
// RequestID did not run.
func Logger(c *gin.Context) *logrus.Entry {
	if value, ok := c.Get(loggerKey); ok {
		if entry, ok := value.(*logrus.Entry); ok {
			return entry
		}
	}
	return logrus.NewEntry(logrus.StandardLogger())
}
