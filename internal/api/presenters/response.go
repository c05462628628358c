package presenters

import (
	"log"

	"github.com/gofiber/fiber/v2"
)

// ErrorResponse writes the flat {"error": message} body the admin panel
// expects. The underlying error is logged server-side, never sent out.
func ErrorResponse(c *fiber.Ctx, status int, message string, err error) error {
	if err != nil {
		log.Printf("%s: %v", message, err)
	}
	return c.Status(status).JSON(fiber.Map{"error": message})
}

func SuccessResponse(c *fiber.Ctx, data interface{}) error {
	return c.JSON(data)
}
