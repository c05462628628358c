package menu

import (
	"context"
	"time"

	"github.com/EdoFendy/lanadot-restaurant/entities"
	"gorm.io/gorm"
)

type (
	// CategoryItemRow is one row of the public menu join: category columns
	// always set, item columns nil for categories without available items.
	CategoryItemRow struct {
		CategoryID      uint
		CategoryName    string
		CategoryOrder   int
		ItemID          *uint
		ItemTitle       *string
		ItemDescription *string
		ItemPrice       *float64
		ItemOrder       *int
		ItemAvailable   *bool
	}

	// AdminItemRow is a menu item annotated with its category name.
	AdminItemRow struct {
		ID           uint
		Title        string
		Description  string
		CategoryID   *uint
		Price        *float64
		DisplayOrder int
		IsAvailable  bool
		CategoryName *string
		CreatedAt    time.Time
		UpdatedAt    time.Time
	}

	MenuRepository interface {
		ListCategories(ctx context.Context) ([]entities.Category, error)
		ListCategoriesWithAvailableItems(ctx context.Context) ([]CategoryItemRow, error)
		ListAllItems(ctx context.Context) ([]AdminItemRow, error)
		ListImages(ctx context.Context, itemID uint) ([]entities.MenuItemImage, error)
		InsertItem(ctx context.Context, item *entities.MenuItem) error
		UpdateItem(ctx context.Context, item *entities.MenuItem) error
		DeleteItem(ctx context.Context, id uint) error
		InsertImage(ctx context.Context, image *entities.MenuItemImage) error
		DeleteImagesForItem(ctx context.Context, itemID uint) error
	}

	menuRepository struct {
		db *gorm.DB
	}
)

func NewMenuRepository(db *gorm.DB) MenuRepository {
	return &menuRepository{db: db}
}

func (r *menuRepository) ListCategories(ctx context.Context) ([]entities.Category, error) {
	categories := make([]entities.Category, 0)
	if err := r.db.WithContext(ctx).Order("display_order, id").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *menuRepository) ListCategoriesWithAvailableItems(ctx context.Context) ([]CategoryItemRow, error) {
	var rows []CategoryItemRow
	err := r.db.WithContext(ctx).
		Table("categories c").
		Select(`c.id as category_id,
			c.name as category_name,
			c.display_order as category_order,
			mi.id as item_id,
			mi.title as item_title,
			mi.description as item_description,
			mi.price as item_price,
			mi.display_order as item_order,
			mi.is_available as item_available`).
		Joins("LEFT JOIN menu_items mi ON c.id = mi.category_id AND mi.is_available = ?", true).
		Order("c.display_order, mi.display_order, mi.id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *menuRepository) ListAllItems(ctx context.Context) ([]AdminItemRow, error) {
	var rows []AdminItemRow
	err := r.db.WithContext(ctx).
		Table("menu_items mi").
		Select("mi.*, c.name as category_name").
		Joins("LEFT JOIN categories c ON mi.category_id = c.id").
		Order("c.display_order, mi.display_order, mi.id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *menuRepository) ListImages(ctx context.Context, itemID uint) ([]entities.MenuItemImage, error) {
	var images []entities.MenuItemImage
	if err := r.db.WithContext(ctx).
		Where("menu_item_id = ?", itemID).
		Order("display_order, id").
		Find(&images).Error; err != nil {
		return nil, err
	}
	return images, nil
}

func (r *menuRepository) InsertItem(ctx context.Context, item *entities.MenuItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *menuRepository) UpdateItem(ctx context.Context, item *entities.MenuItem) error {
	// Full overwrite of every editable column; gorm refreshes updated_at.
	return r.db.WithContext(ctx).Model(&entities.MenuItem{}).
		Where("id = ?", item.ID).
		Updates(map[string]interface{}{
			"title":         item.Title,
			"description":   item.Description,
			"category_id":   item.CategoryID,
			"price":         item.Price,
			"display_order": item.DisplayOrder,
			"is_available":  item.IsAvailable,
		}).Error
}

func (r *menuRepository) DeleteItem(ctx context.Context, id uint) error {
	// Image rows go with the item via the ON DELETE CASCADE constraint.
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.MenuItem{}).Error
}

func (r *menuRepository) InsertImage(ctx context.Context, image *entities.MenuItemImage) error {
	return r.db.WithContext(ctx).Create(image).Error
}

func (r *menuRepository) DeleteImagesForItem(ctx context.Context, itemID uint) error {
	return r.db.WithContext(ctx).Where("menu_item_id = ?", itemID).Delete(&entities.MenuItemImage{}).Error
}
