package domain

import (
	"errors"
	"time"
)

var (
	MessageRequiredFields       = "Titolo, descrizione e categoria sono richiesti"
	MessageInvalidCategory      = "Categoria non valida"
	MessageFailedLoadItems      = "Errore nel caricamento"
	MessageFailedLoadCategories = "Errore nel caricamento delle categorie"
	MessageFailedCreateItem     = "Errore durante la creazione"
	MessageFailedUpdateItem     = "Errore durante l'aggiornamento"
	MessageFailedDeleteItem     = "Errore durante l'eliminazione"
	MessageFailedFetchMenu      = "Failed to fetch menu"

	ErrRequiredFields  = errors.New("title, description and category are required")
	ErrInvalidCategory = errors.New("category id is not a valid number")
)

type (
	// UpsertMenuItemRequest carries the multipart form fields shared by create
	// and update. Price and IsAvailable arrive as raw form strings and are
	// coerced by the service.
	UpsertMenuItemRequest struct {
		Title       string `form:"title" validate:"required"`
		Description string `form:"description" validate:"required"`
		CategoryID  string `form:"category_id" validate:"required"`
		Price       string `form:"price"`
		IsAvailable string `form:"is_available"`
	}

	MenuItemImageResponse struct {
		ID           uint   `json:"id"`
		MenuItemID   uint   `json:"menu_item_id"`
		ImagePath    string `json:"image_path"`
		ImageAlt     string `json:"image_alt"`
		DisplayOrder int    `json:"display_order"`
	}

	// PublicMenuItemResponse is one available dish in the public menu tree.
	PublicMenuItemResponse struct {
		ID           uint                    `json:"id"`
		Title        string                  `json:"title"`
		Description  string                  `json:"description"`
		Price        *float64                `json:"price"`
		DisplayOrder int                     `json:"display_order"`
		IsAvailable  bool                    `json:"is_available"`
		CategoryName string                  `json:"category_name"`
		Images       []MenuItemImageResponse `json:"images"`
	}

	MenuCategoryResponse struct {
		ID           uint                     `json:"id"`
		Name         string                   `json:"name"`
		DisplayOrder int                      `json:"display_order"`
		Items        []PublicMenuItemResponse `json:"items"`
	}

	// AdminMenuItemResponse is the admin listing row: every column of the
	// item regardless of availability, plus category name and images.
	AdminMenuItemResponse struct {
		ID           uint                    `json:"id"`
		Title        string                  `json:"title"`
		Description  string                  `json:"description"`
		CategoryID   *uint                   `json:"category_id"`
		Price        *float64                `json:"price"`
		DisplayOrder int                     `json:"display_order"`
		IsAvailable  bool                    `json:"is_available"`
		CategoryName string                  `json:"category_name"`
		Images       []MenuItemImageResponse `json:"images"`
		CreatedAt    time.Time               `json:"created_at"`
		UpdatedAt    time.Time               `json:"updated_at"`
	}

	CreateMenuItemResponse struct {
		Success bool `json:"success"`
		ID      uint `json:"id"`
	}
)
