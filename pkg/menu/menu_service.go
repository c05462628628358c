package menu

import (
	"context"
	"fmt"
	"log"
	"mime/multipart"
	"sort"
	"strconv"
	"strings"

	"github.com/EdoFendy/lanadot-restaurant/domain"
	"github.com/EdoFendy/lanadot-restaurant/entities"
	"github.com/EdoFendy/lanadot-restaurant/internal/utils/storage"
	"github.com/google/uuid"
)

type (
	MenuService interface {
		PublicMenu(ctx context.Context) ([]domain.MenuCategoryResponse, error)
		ListCategories(ctx context.Context) ([]entities.Category, error)
		ListItems(ctx context.Context) ([]domain.AdminMenuItemResponse, error)
		CreateItem(ctx context.Context, req domain.UpsertMenuItemRequest, images []*multipart.FileHeader) (uint, error)
		UpdateItem(ctx context.Context, id uint, req domain.UpsertMenuItemRequest, images []*multipart.FileHeader) error
		DeleteItem(ctx context.Context, id uint) error
	}

	menuService struct {
		menuRepository MenuRepository
		storage        storage.Storage
		uploadsFolder  string
	}
)

func NewMenuService(menuRepository MenuRepository, store storage.Storage, uploadsFolder string) MenuService {
	return &menuService{
		menuRepository: menuRepository,
		storage:        store,
		uploadsFolder:  uploadsFolder,
	}
}

func (s *menuService) PublicMenu(ctx context.Context) ([]domain.MenuCategoryResponse, error) {
	rows, err := s.menuRepository.ListCategoriesWithAvailableItems(ctx)
	if err != nil {
		return nil, err
	}

	// Group rows by category, keyed by first-seen order. A row without item
	// columns is an empty category and still gets an entry.
	categories := make([]domain.MenuCategoryResponse, 0)
	index := make(map[uint]int)

	for _, row := range rows {
		pos, ok := index[row.CategoryID]
		if !ok {
			categories = append(categories, domain.MenuCategoryResponse{
				ID:           row.CategoryID,
				Name:         row.CategoryName,
				DisplayOrder: row.CategoryOrder,
				Items:        []domain.PublicMenuItemResponse{},
			})
			pos = len(categories) - 1
			index[row.CategoryID] = pos
		}

		if row.ItemID == nil {
			continue
		}

		images, err := s.menuRepository.ListImages(ctx, *row.ItemID)
		if err != nil {
			return nil, err
		}

		categories[pos].Items = append(categories[pos].Items, domain.PublicMenuItemResponse{
			ID:           *row.ItemID,
			Title:        strVal(row.ItemTitle),
			Description:  strVal(row.ItemDescription),
			Price:        row.ItemPrice,
			DisplayOrder: intVal(row.ItemOrder),
			IsAvailable:  boolVal(row.ItemAvailable),
			CategoryName: row.CategoryName,
			Images:       toImageResponses(images),
		})
	}

	// Re-sort defensively; grouping already follows the query order.
	sort.SliceStable(categories, func(i, j int) bool {
		return categories[i].DisplayOrder < categories[j].DisplayOrder
	})
	for i := range categories {
		items := categories[i].Items
		sort.SliceStable(items, func(a, b int) bool {
			return items[a].DisplayOrder < items[b].DisplayOrder
		})
	}

	return categories, nil
}

func (s *menuService) ListCategories(ctx context.Context) ([]entities.Category, error) {
	return s.menuRepository.ListCategories(ctx)
}

func (s *menuService) ListItems(ctx context.Context) ([]domain.AdminMenuItemResponse, error) {
	rows, err := s.menuRepository.ListAllItems(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]domain.AdminMenuItemResponse, 0, len(rows))
	for _, row := range rows {
		images, err := s.menuRepository.ListImages(ctx, row.ID)
		if err != nil {
			return nil, err
		}
		items = append(items, domain.AdminMenuItemResponse{
			ID:           row.ID,
			Title:        row.Title,
			Description:  row.Description,
			CategoryID:   row.CategoryID,
			Price:        row.Price,
			DisplayOrder: row.DisplayOrder,
			IsAvailable:  row.IsAvailable,
			CategoryName: strVal(row.CategoryName),
			Images:       toImageResponses(images),
			CreatedAt:    row.CreatedAt,
			UpdatedAt:    row.UpdatedAt,
		})
	}
	return items, nil
}

func (s *menuService) CreateItem(ctx context.Context, req domain.UpsertMenuItemRequest, images []*multipart.FileHeader) (uint, error) {
	item, err := buildItem(req)
	if err != nil {
		return 0, err
	}

	if err := s.menuRepository.InsertItem(ctx, item); err != nil {
		return 0, err
	}

	// A failed upload leaves the item row and any already-written images in
	// place; there is no rollback.
	if err := s.saveImages(ctx, item, images); err != nil {
		return item.ID, err
	}
	return item.ID, nil
}

func (s *menuService) UpdateItem(ctx context.Context, id uint, req domain.UpsertMenuItemRequest, images []*multipart.FileHeader) error {
	item, err := buildItem(req)
	if err != nil {
		return err
	}
	item.ID = id

	if err := s.menuRepository.UpdateItem(ctx, item); err != nil {
		return err
	}

	if !hasUploads(images) {
		return nil
	}

	// Two-phase replacement: old files and rows go first, then the new set.
	// A crash in between can leave the item without images.
	old, err := s.menuRepository.ListImages(ctx, id)
	if err != nil {
		return err
	}
	s.removeImageFiles(old)
	if err := s.menuRepository.DeleteImagesForItem(ctx, id); err != nil {
		return err
	}
	return s.saveImages(ctx, item, images)
}

func (s *menuService) DeleteItem(ctx context.Context, id uint) error {
	images, err := s.menuRepository.ListImages(ctx, id)
	if err != nil {
		return err
	}
	s.removeImageFiles(images)

	// Image rows cascade with the item; deleting a missing id is a no-op.
	return s.menuRepository.DeleteItem(ctx, id)
}

// buildItem coerces the raw form fields into an item. Title, description and
// a numeric category id are mandatory; a blank price means no price.
func buildItem(req domain.UpsertMenuItemRequest) (*entities.MenuItem, error) {
	if req.Title == "" || req.Description == "" || req.CategoryID == "" {
		return nil, domain.ErrRequiredFields
	}

	categoryID, err := strconv.Atoi(req.CategoryID)
	if err != nil {
		return nil, domain.ErrInvalidCategory
	}
	cid := uint(categoryID)

	var price *float64
	if p := strings.TrimSpace(req.Price); p != "" {
		if v, err := strconv.ParseFloat(p, 64); err == nil {
			price = &v
		}
	}

	available := true
	if req.IsAvailable != "" {
		available = req.IsAvailable == "true" || req.IsAvailable == "1" || req.IsAvailable == "on"
	}

	return &entities.MenuItem{
		Title:        req.Title,
		Description:  req.Description,
		CategoryID:   &cid,
		Price:        price,
		DisplayOrder: 0,
		IsAvailable:  available,
	}, nil
}

func (s *menuService) saveImages(ctx context.Context, item *entities.MenuItem, images []*multipart.FileHeader) error {
	for i, file := range images {
		if file == nil || file.Size == 0 {
			continue
		}

		key, err := s.storage.UploadFile(uuid.New().String(), file, s.uploadsFolder, storage.AllowImage...)
		if err != nil {
			return err
		}

		image := &entities.MenuItemImage{
			MenuItemID:   item.ID,
			ImagePath:    s.storage.GetPublicLinkKey(key),
			ImageAlt:     fmt.Sprintf("%s - immagine %d", item.Title, i+1),
			DisplayOrder: i,
		}
		if err := s.menuRepository.InsertImage(ctx, image); err != nil {
			return err
		}
	}
	return nil
}

// removeImageFiles deletes backing files best-effort: failures are logged
// and never block the surrounding operation.
func (s *menuService) removeImageFiles(images []entities.MenuItemImage) {
	for _, image := range images {
		key := s.storage.GetObjectKeyFromLink(image.ImagePath)
		if err := s.storage.DeleteFile(key); err != nil {
			log.Printf("warning: could not remove image file %s: %v", image.ImagePath, err)
		}
	}
}

func hasUploads(images []*multipart.FileHeader) bool {
	for _, file := range images {
		if file != nil && file.Size > 0 {
			return true
		}
	}
	return false
}

func toImageResponses(images []entities.MenuItemImage) []domain.MenuItemImageResponse {
	out := make([]domain.MenuItemImageResponse, 0, len(images))
	for _, image := range images {
		out = append(out, domain.MenuItemImageResponse{
			ID:           image.ID,
			MenuItemID:   image.MenuItemID,
			ImagePath:    image.ImagePath,
			ImageAlt:     image.ImageAlt,
			DisplayOrder: image.DisplayOrder,
		})
	}
	return out
}

func strVal(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func intVal(i *int) int {
	if i == nil {
		return 0
	}
	return *i
}

func boolVal(b *bool) bool {
	if b == nil {
		return false
	}
	return *b
}
