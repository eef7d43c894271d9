package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jhoicas/stockflow-api/pkg/logger"
)

const requestIDLocal = "request_id"

// RequestLogger asigna un request id y registra método, ruta, estado y latencia
// de cada petición con el logger estructurado.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		requestID := c.Get(fiber.HeaderXRequestID)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Locals(requestIDLocal, requestID)
		c.Set(fiber.HeaderXRequestID, requestID)

		start := time.Now()
		err := c.Next()

		log.Info().
			Str("request_id", requestID).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", c.Response().StatusCode()).
			Dur("latency", time.Since(start)).
			Msg("petición HTTP")
		return err
	}
}

// GetRequestID devuelve el request id asignado por RequestLogger.
func GetRequestID(c *fiber.Ctx) string {
	if id, ok := c.Locals(requestIDLocal).(string); ok {
		return id
	}
	return ""
}
