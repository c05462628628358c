package routes

import (
	"path/filepath"

	"github.com/EdoFendy/lanadot-restaurant/internal/api/handlers"
	"github.com/EdoFendy/lanadot-restaurant/internal/middleware"
	"github.com/EdoFendy/lanadot-restaurant/pkg/auth"
	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App            *fiber.App
	AuthHandler    handlers.AuthHandler
	MenuHandler    handlers.MenuHandler
	Middleware     middleware.Middleware
	SessionService auth.SessionService
	PublicDir      string
	UploadsDir     string
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.Auth()
	c.Menu()
	c.GuestRoute()
}

func (c *Config) Auth() {
	session := c.App.Group("/auth")
	{
		session.Post("", c.AuthHandler.Login)
		session.Get("", c.AuthHandler.Status)
		session.Delete("", c.AuthHandler.Logout)
	}
}

func (c *Config) Menu() {
	guard := c.Middleware.AdminGuard(c.SessionService)

	c.App.Get("/categories", guard, c.MenuHandler.ListCategories)

	items := c.App.Group("/menu-items", guard)
	{
		items.Get("", c.MenuHandler.ListItems)
		items.Post("", c.MenuHandler.CreateItem)
		items.Put("/:id", c.MenuHandler.UpdateItem)
		items.Delete("/:id", c.MenuHandler.DeleteItem)
	}
}

func (c *Config) GuestRoute() {
	c.App.Get("/menu", c.MenuHandler.PublicMenu)
	c.App.Static("/"+c.UploadsDir, filepath.Join(c.PublicDir, c.UploadsDir))
	c.App.Get("/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}
