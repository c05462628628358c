package menu

import (
	"context"
	"errors"
	"mime/multipart"
	"testing"

	"github.com/EdoFendy/lanadot-restaurant/domain"
	"github.com/EdoFendy/lanadot-restaurant/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRepository struct {
	MenuRepository

	joinRows []CategoryItemRow
	images   map[uint][]entities.MenuItemImage

	inserted      []*entities.MenuItem
	updated       []*entities.MenuItem
	deletedItems  []uint
	insertedImgs  []*entities.MenuItemImage
	clearedImages []uint
}

func (r *stubRepository) ListCategoriesWithAvailableItems(ctx context.Context) ([]CategoryItemRow, error) {
	return r.joinRows, nil
}

func (r *stubRepository) ListImages(ctx context.Context, itemID uint) ([]entities.MenuItemImage, error) {
	return r.images[itemID], nil
}

func (r *stubRepository) InsertItem(ctx context.Context, item *entities.MenuItem) error {
	item.ID = uint(len(r.inserted) + 1)
	r.inserted = append(r.inserted, item)
	return nil
}

func (r *stubRepository) UpdateItem(ctx context.Context, item *entities.MenuItem) error {
	r.updated = append(r.updated, item)
	return nil
}

func (r *stubRepository) DeleteItem(ctx context.Context, id uint) error {
	r.deletedItems = append(r.deletedItems, id)
	return nil
}

func (r *stubRepository) InsertImage(ctx context.Context, image *entities.MenuItemImage) error {
	image.ID = uint(len(r.insertedImgs) + 1)
	r.insertedImgs = append(r.insertedImgs, image)
	return nil
}

func (r *stubRepository) DeleteImagesForItem(ctx context.Context, itemID uint) error {
	r.clearedImages = append(r.clearedImages, itemID)
	return nil
}

type stubStorage struct {
	uploads   []string
	deleted   []string
	deleteErr error
}

func (s *stubStorage) UploadFile(fileName string, file *multipart.FileHeader, folder string, allowedExt ...string) (string, error) {
	key := folder + "/" + fileName + ".jpg"
	s.uploads = append(s.uploads, key)
	return key, nil
}

func (s *stubStorage) DeleteFile(objectKey string) error {
	s.deleted = append(s.deleted, objectKey)
	return s.deleteErr
}

func (s *stubStorage) GetPublicLinkKey(objectKey string) string { return "/" + objectKey }
func (s *stubStorage) GetObjectKeyFromLink(link string) string  { return link[1:] }

func ptr[T any](v T) *T { return &v }

func TestPublicMenuGroupsRowsByCategory(t *testing.T) {
	repo := &stubRepository{
		joinRows: []CategoryItemRow{
			{CategoryID: 1, CategoryName: "Antipasti", CategoryOrder: 1,
				ItemID: ptr(uint(10)), ItemTitle: ptr("Bruschetta"), ItemDescription: ptr("Pane e pomodoro"),
				ItemPrice: ptr(6.5), ItemOrder: ptr(0), ItemAvailable: ptr(true)},
			{CategoryID: 1, CategoryName: "Antipasti", CategoryOrder: 1,
				ItemID: ptr(uint(11)), ItemTitle: ptr("Tagliere"), ItemDescription: ptr("Salumi misti"),
				ItemPrice: nil, ItemOrder: ptr(0), ItemAvailable: ptr(true)},
			{CategoryID: 2, CategoryName: "Primi", CategoryOrder: 2},
		},
		images: map[uint][]entities.MenuItemImage{
			10: {{ID: 1, MenuItemID: 10, ImagePath: "/uploads/a.jpg", ImageAlt: "Bruschetta - immagine 1"}},
		},
	}
	service := NewMenuService(repo, &stubStorage{}, "uploads")

	categories, err := service.PublicMenu(context.Background())
	require.NoError(t, err)
	require.Len(t, categories, 2)

	antipasti := categories[0]
	assert.Equal(t, "Antipasti", antipasti.Name)
	require.Len(t, antipasti.Items, 2)
	assert.Equal(t, "Bruschetta", antipasti.Items[0].Title)
	require.Len(t, antipasti.Items[0].Images, 1)
	assert.Equal(t, "/uploads/a.jpg", antipasti.Items[0].Images[0].ImagePath)

	// Price null stays null, it is not coerced to zero.
	assert.Nil(t, antipasti.Items[1].Price)
	assert.Empty(t, antipasti.Items[1].Images)

	// A category with no available items is still present, with no items.
	primi := categories[1]
	assert.Equal(t, "Primi", primi.Name)
	assert.NotNil(t, primi.Items)
	assert.Empty(t, primi.Items)
}

func TestPublicMenuSortsByDisplayOrder(t *testing.T) {
	repo := &stubRepository{
		joinRows: []CategoryItemRow{
			{CategoryID: 5, CategoryName: "Dolci", CategoryOrder: 5},
			{CategoryID: 1, CategoryName: "Antipasti", CategoryOrder: 1,
				ItemID: ptr(uint(2)), ItemTitle: ptr("B"), ItemDescription: ptr("b"),
				ItemOrder: ptr(2), ItemAvailable: ptr(true)},
			{CategoryID: 1, CategoryName: "Antipasti", CategoryOrder: 1,
				ItemID: ptr(uint(1)), ItemTitle: ptr("A"), ItemDescription: ptr("a"),
				ItemOrder: ptr(1), ItemAvailable: ptr(true)},
		},
		images: map[uint][]entities.MenuItemImage{},
	}
	service := NewMenuService(repo, &stubStorage{}, "uploads")

	categories, err := service.PublicMenu(context.Background())
	require.NoError(t, err)
	require.Len(t, categories, 2)
	assert.Equal(t, "Antipasti", categories[0].Name)
	assert.Equal(t, "Dolci", categories[1].Name)
	require.Len(t, categories[0].Items, 2)
	assert.Equal(t, "A", categories[0].Items[0].Title)
	assert.Equal(t, "B", categories[0].Items[1].Title)
}

func TestBuildItemValidation(t *testing.T) {
	_, err := buildItem(domain.UpsertMenuItemRequest{Description: "d", CategoryID: "1"})
	assert.ErrorIs(t, err, domain.ErrRequiredFields)

	_, err = buildItem(domain.UpsertMenuItemRequest{Title: "t", Description: "d", CategoryID: "abc"})
	assert.ErrorIs(t, err, domain.ErrInvalidCategory)
}

func TestBuildItemCoercions(t *testing.T) {
	item, err := buildItem(domain.UpsertMenuItemRequest{
		Title: "Risotto", Description: "allo zafferano", CategoryID: "2", Price: "12.50",
	})
	require.NoError(t, err)
	require.NotNil(t, item.CategoryID)
	assert.Equal(t, uint(2), *item.CategoryID)
	require.NotNil(t, item.Price)
	assert.Equal(t, 12.50, *item.Price)
	assert.True(t, item.IsAvailable, "availability defaults to true")
	assert.Equal(t, 0, item.DisplayOrder)

	item, err = buildItem(domain.UpsertMenuItemRequest{
		Title: "t", Description: "d", CategoryID: "1", Price: "  ", IsAvailable: "false",
	})
	require.NoError(t, err)
	assert.Nil(t, item.Price)
	assert.False(t, item.IsAvailable)
}

func TestCreateItemUploadsImages(t *testing.T) {
	repo := &stubRepository{images: map[uint][]entities.MenuItemImage{}}
	store := &stubStorage{}
	service := NewMenuService(repo, store, "uploads")

	files := []*multipart.FileHeader{
		{Filename: "a.jpg", Size: 100},
		{Filename: "empty.jpg", Size: 0},
		{Filename: "b.jpg", Size: 200},
	}
	id, err := service.CreateItem(context.Background(), domain.UpsertMenuItemRequest{
		Title: "Risotto", Description: "allo zafferano", CategoryID: "2", Price: "12.50", IsAvailable: "true",
	}, files)
	require.NoError(t, err)
	assert.Equal(t, uint(1), id)

	// Empty files are skipped; display order is positional.
	require.Len(t, repo.insertedImgs, 2)
	assert.Equal(t, "Risotto - immagine 1", repo.insertedImgs[0].ImageAlt)
	assert.Equal(t, 0, repo.insertedImgs[0].DisplayOrder)
	assert.Equal(t, "Risotto - immagine 3", repo.insertedImgs[1].ImageAlt)
	assert.Equal(t, 2, repo.insertedImgs[1].DisplayOrder)
	assert.Len(t, store.uploads, 2)
}

func TestCreateItemRejectsBadCategoryBeforeStorage(t *testing.T) {
	repo := &stubRepository{images: map[uint][]entities.MenuItemImage{}}
	service := NewMenuService(repo, &stubStorage{}, "uploads")

	_, err := service.CreateItem(context.Background(), domain.UpsertMenuItemRequest{
		Title: "t", Description: "d", CategoryID: "not-a-number",
	}, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidCategory)
	assert.Empty(t, repo.inserted)
}

func TestUpdateItemReplacesImagesWhenNewOnesSupplied(t *testing.T) {
	repo := &stubRepository{
		images: map[uint][]entities.MenuItemImage{
			7: {{ID: 1, MenuItemID: 7, ImagePath: "/uploads/old.jpg"}},
		},
	}
	store := &stubStorage{}
	service := NewMenuService(repo, store, "uploads")

	err := service.UpdateItem(context.Background(), 7, domain.UpsertMenuItemRequest{
		Title: "Nuovo", Description: "d", CategoryID: "1",
	}, []*multipart.FileHeader{{Filename: "new.jpg", Size: 10}})
	require.NoError(t, err)

	require.Len(t, repo.updated, 1)
	assert.Equal(t, uint(7), repo.updated[0].ID)
	assert.Equal(t, []string{"uploads/old.jpg"}, store.deleted)
	assert.Equal(t, []uint{7}, repo.clearedImages)
	require.Len(t, repo.insertedImgs, 1)
	assert.Equal(t, uint(7), repo.insertedImgs[0].MenuItemID)
}

func TestUpdateItemKeepsImagesWithoutNewUploads(t *testing.T) {
	repo := &stubRepository{
		images: map[uint][]entities.MenuItemImage{
			7: {{ID: 1, MenuItemID: 7, ImagePath: "/uploads/old.jpg"}},
		},
	}
	store := &stubStorage{}
	service := NewMenuService(repo, store, "uploads")

	err := service.UpdateItem(context.Background(), 7, domain.UpsertMenuItemRequest{
		Title: "Nuovo", Description: "d", CategoryID: "1",
	}, nil)
	require.NoError(t, err)
	assert.Empty(t, store.deleted)
	assert.Empty(t, repo.clearedImages)
}

func TestDeleteItemRemovesFilesBestEffort(t *testing.T) {
	repo := &stubRepository{
		images: map[uint][]entities.MenuItemImage{
			3: {
				{ID: 1, MenuItemID: 3, ImagePath: "/uploads/a.jpg"},
				{ID: 2, MenuItemID: 3, ImagePath: "/uploads/b.jpg"},
			},
		},
	}
	store := &stubStorage{deleteErr: errors.New("gone already")}
	service := NewMenuService(repo, store, "uploads")

	// File removal failures are logged and swallowed.
	err := service.DeleteItem(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, []string{"uploads/a.jpg", "uploads/b.jpg"}, store.deleted)
	assert.Equal(t, []uint{3}, repo.deletedItems)
}

func TestDeleteItemWithoutImagesIsIdempotent(t *testing.T) {
	repo := &stubRepository{images: map[uint][]entities.MenuItemImage{}}
	service := NewMenuService(repo, &stubStorage{}, "uploads")

	require.NoError(t, service.DeleteItem(context.Background(), 999))
	assert.Equal(t, []uint{999}, repo.deletedItems)
}
