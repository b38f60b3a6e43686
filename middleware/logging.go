package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	// RequestIDHeader es el header con el que se devuelve el id del request
	RequestIDHeader = "X-Request-ID"

	requestIDKey = "request_id"
	loggerKey    = "logger"
)

// RequestLogger asigna un request id, guarda un logger hijo en el contexto de
// gin y, al terminar, loguea el resultado del request.
func RequestLogger(base zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		// Respetar el id si viene de un proxy
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Header(RequestIDHeader, requestID)

		log := base.With().Str("request_id", requestID).Logger()
		c.Set(requestIDKey, requestID)
		c.Set(loggerKey, &log)

		c.Next()

		status := c.Writer.Status()
		var event *zerolog.Event
		switch {
		case status >= 500:
			event = log.Error()
		case status >= 400:
			event = log.Warn()
		default:
			event = log.Info()
		}

		if len(c.Errors) > 0 {
			event = event.Str("errors", c.Errors.String())
		}

		event.
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Str("route", c.FullPath()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Str("client_ip", c.ClientIP()).
			Msg("request completed")
	}
}

// GetLogger devuelve el logger del request, o uno que descarta todo si el
// middleware no corrió (por ejemplo en tests de un handler suelto)
func GetLogger(c *gin.Context) *zerolog.Logger {
	if v, ok := c.Get(loggerKey); ok {
		if log, ok := v.(*zerolog.Logger); ok {
			return log
		}
	}
	nop := zerolog.Nop()
	return &nop
}

// GetRequestID devuelve el id del request actual
func GetRequestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}
