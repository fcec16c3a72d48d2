package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/imobcrm/crm-imobiliario-api/pkg/logger"
)

// requestIDKey chave no Locals do Fiber com o id de correlação da requisição.
const requestIDKey = "request_id"

// RequestLogger gera um id de correlação por requisição, devolve no header
// X-Request-ID e loga método, rota, status e latência ao final.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		requestID := c.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Locals(requestIDKey, requestID)
		c.Set("X-Request-ID", requestID)

		start := time.Now()
		err := c.Next()

		log.Info().
			Str("request_id", requestID).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", c.Response().StatusCode()).
			Int64("duration_ms", time.Since(start).Milliseconds()).
			Msg("requisição atendida")
		return err
	}
}

// RequestID devolve o id de correlação da requisição atual.
func RequestID(c *fiber.Ctx) string {
	if id, ok := c.Locals(requestIDKey).(string); ok {
		return id
	}
	return ""
}
