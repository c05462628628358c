package middleware

import (
	"github.com/EdoFendy/lanadot-restaurant/domain"
	"github.com/EdoFendy/lanadot-restaurant/pkg/auth"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

type (
	Middleware interface {
		CORSMiddleware() fiber.Handler
		AdminGuard(sessionService auth.SessionService) fiber.Handler
	}

	middleware struct{}
)

func NewMiddleware() Middleware {
	return &middleware{}
}

func (m *middleware) CORSMiddleware() fiber.Handler {
	return cors.New(cors.Config{
		AllowCredentials: true,
		AllowOrigins:     "http://localhost:3000",
		AllowHeaders:     "Origin, Content-Type, Accept",
		AllowMethods:     "GET, POST, PUT, DELETE",
	})
}

// AdminGuard rejects any request whose session cookie does not carry the
// exact sentinel value. Missing cookie and wrong value are the same case.
func (m *middleware) AdminGuard(sessionService auth.SessionService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !sessionService.Verify(c.Cookies(sessionService.CookieName())) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": domain.MessageUnauthorized,
			})
		}
		return c.Next()
	}
}
