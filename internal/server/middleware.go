package server

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/logger"
	"github.com/google/uuid"
)

// ============================================================
// Middleware
// ============================================================

const HeaderRequestID = "X-Request-ID"

// RequestID keeps an incoming X-Request-ID or stamps a new one, on both the
// request locals and the response.
func RequestID() fiber.Handler {
	return func(c fiber.Ctx) error {
		id := c.Get(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Locals(HeaderRequestID, id)
		c.Set(HeaderRequestID, id)
		return c.Next()
	}
}

// Logger returns the request log middleware.
func Logger() fiber.Handler {
	return logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path} | id=${respHeader:X-Request-ID}\n",
		TimeFormat: "15:04:05",
		TimeZone:   "Local",
	})
}

func requestID(c fiber.Ctx) string {
	id, _ := c.Locals(HeaderRequestID).(string)
	return id
}
