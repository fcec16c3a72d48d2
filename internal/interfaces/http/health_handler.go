package http

import (
	"context"

	"github.com/gofiber/fiber/v2"
)

// HealthHandler responde o estado do serviço e da conexão com o banco.
// O ping recebe o contexto da requisição; se for nil o banco é considerado
// conectado (útil em ambientes sem banco, como testes de rota).
func HealthHandler(ping func(context.Context) error) fiber.Handler {
	return func(c *fiber.Ctx) error {
		database := "connected"
		if ping != nil {
			if err := ping(c.Context()); err != nil {
				database = "disconnected"
			}
		}
		return c.JSON(fiber.Map{
			"status":   "ok",
			"database": database,
		})
	}
}
