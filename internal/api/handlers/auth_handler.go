package handlers

import (
	"time"

	"github.com/EdoFendy/lanadot-restaurant/domain"
	"github.com/EdoFendy/lanadot-restaurant/internal/api/presenters"
	"github.com/EdoFendy/lanadot-restaurant/pkg/auth"
	"github.com/gofiber/fiber/v2"
)

type (
	AuthHandler interface {
		Login(c *fiber.Ctx) error
		Status(c *fiber.Ctx) error
		Logout(c *fiber.Ctx) error
	}

	authHandler struct {
		sessionService auth.SessionService
		secureCookies  bool
	}
)

func NewAuthHandler(sessionService auth.SessionService, secureCookies bool) AuthHandler {
	return &authHandler{
		sessionService: sessionService,
		secureCookies:  secureCookies,
	}
}

func (h *authHandler) Login(c *fiber.Ctx) error {
	req := new(domain.LoginRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageMissingCredentials, err)
	}
	if req.Username == "" || req.Password == "" {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageMissingCredentials, nil)
	}

	value, err := h.sessionService.Login(req.Username, req.Password)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageInvalidCredentials, nil)
	}

	c.Cookie(&fiber.Cookie{
		Name:     h.sessionService.CookieName(),
		Value:    value,
		HTTPOnly: true,
		Secure:   h.secureCookies,
		SameSite: fiber.CookieSameSiteStrictMode,
		MaxAge:   int(auth.SessionMaxAge.Seconds()),
	})
	return c.JSON(fiber.Map{"success": true})
}

func (h *authHandler) Status(c *fiber.Ctx) error {
	return c.JSON(domain.AuthStatusResponse{
		Authenticated: h.sessionService.Verify(c.Cookies(h.sessionService.CookieName())),
	})
}

func (h *authHandler) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     h.sessionService.CookieName(),
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		MaxAge:   -1,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteStrictMode,
	})
	return c.JSON(fiber.Map{"success": true})
}
