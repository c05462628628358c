package handlers

import (
	"errors"
	"mime/multipart"

	"github.com/EdoFendy/lanadot-restaurant/domain"
	"github.com/EdoFendy/lanadot-restaurant/internal/api/presenters"
	"github.com/EdoFendy/lanadot-restaurant/pkg/menu"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	MenuHandler interface {
		PublicMenu(c *fiber.Ctx) error
		ListCategories(c *fiber.Ctx) error
		ListItems(c *fiber.Ctx) error
		CreateItem(c *fiber.Ctx) error
		UpdateItem(c *fiber.Ctx) error
		DeleteItem(c *fiber.Ctx) error
	}

	menuHandler struct {
		menuService menu.MenuService
		validator   *validator.Validate
	}
)

func NewMenuHandler(menuService menu.MenuService, validator *validator.Validate) MenuHandler {
	return &menuHandler{
		menuService: menuService,
		validator:   validator,
	}
}

func (h *menuHandler) PublicMenu(c *fiber.Ctx) error {
	categories, err := h.menuService.PublicMenu(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedFetchMenu, err)
	}
	return presenters.SuccessResponse(c, categories)
}

func (h *menuHandler) ListCategories(c *fiber.Ctx) error {
	categories, err := h.menuService.ListCategories(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedLoadCategories, err)
	}
	return presenters.SuccessResponse(c, categories)
}

func (h *menuHandler) ListItems(c *fiber.Ctx) error {
	items, err := h.menuService.ListItems(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedLoadItems, err)
	}
	return presenters.SuccessResponse(c, items)
}

func (h *menuHandler) CreateItem(c *fiber.Ctx) error {
	req := new(domain.UpsertMenuItemRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageRequiredFields, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageRequiredFields, err)
	}

	id, err := h.menuService.CreateItem(c.Context(), *req, formImages(c))
	if err != nil {
		return menuError(c, err, domain.MessageFailedCreateItem)
	}
	return c.JSON(domain.CreateMenuItemResponse{Success: true, ID: id})
}

func (h *menuHandler) UpdateItem(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateItem, err)
	}

	req := new(domain.UpsertMenuItemRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageRequiredFields, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageRequiredFields, err)
	}

	if err := h.menuService.UpdateItem(c.Context(), uint(id), *req, formImages(c)); err != nil {
		return menuError(c, err, domain.MessageFailedUpdateItem)
	}
	return c.JSON(fiber.Map{"success": true})
}

func (h *menuHandler) DeleteItem(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteItem, err)
	}

	if err := h.menuService.DeleteItem(c.Context(), uint(id)); err != nil {
		return menuError(c, err, domain.MessageFailedDeleteItem)
	}
	return c.JSON(fiber.Map{"success": true})
}

// formImages pulls the uploaded "images" files from the multipart form, if
// any. JSON bodies and forms without files yield nil.
func formImages(c *fiber.Ctx) []*multipart.FileHeader {
	form, err := c.MultipartForm()
	if err != nil || form == nil {
		return nil
	}
	return form.File["images"]
}

func menuError(c *fiber.Ctx, err error, fallback string) error {
	switch {
	case errors.Is(err, domain.ErrRequiredFields):
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageRequiredFields, nil)
	case errors.Is(err, domain.ErrInvalidCategory):
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageInvalidCategory, nil)
	default:
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, fallback, err)
	}
}
