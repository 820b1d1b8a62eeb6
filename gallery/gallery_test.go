package gallery_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"server/gallery"
	"server/models"
)

type fakeCategories struct {
	mu         sync.Mutex
	byID       map[string]*models.Category
	failUpdate bool
	failRemove bool
}

func newFakeCategories() *fakeCategories {
	return &fakeCategories{byID: map[string]*models.Category{}}
}

func (f *fakeCategories) add(name string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	cat := &models.Category{ID: primitive.NewObjectID(), Name: name}
	f.byID[cat.ID.Hex()] = cat
	return cat.ID.Hex()
}

func (f *fakeCategories) FindByName(_ context.Context, name string) (*models.Category, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, cat := range f.byID {
		if cat.Name == name {
			copied := *cat
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeCategories) GetByID(_ context.Context, id string) (*models.Category, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	cat, ok := f.byID[id]
	if !ok {
		return nil, nil
	}
	copied := *cat
	return &copied, nil
}

func (f *fakeCategories) Insert(_ context.Context, cat *models.Category) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	cat.ID = primitive.NewObjectID()
	stored := *cat
	f.byID[cat.ID.Hex()] = &stored
	return cat.ID.Hex(), nil
}

func (f *fakeCategories) UpdateName(_ context.Context, id, name string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failUpdate {
		return errors.New("update refused")
	}
	if cat, ok := f.byID[id]; ok {
		cat.Name = name
	}
	return nil
}

func (f *fakeCategories) Remove(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failRemove {
		return errors.New("remove refused")
	}
	delete(f.byID, id)
	return nil
}

type fakePhotos struct {
	mu         sync.Mutex
	byID       map[string]*models.Photo
	batchSizes []int
	failBatch  bool
}

func newFakePhotos() *fakePhotos {
	return &fakePhotos{byID: map[string]*models.Photo{}}
}

func (f *fakePhotos) add(title, category, imageKey string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	p := &models.Photo{ID: primitive.NewObjectID(), Title: title, Category: category, ImageKey: imageKey}
	f.byID[p.ID.Hex()] = p
	return p.ID.Hex()
}

func (f *fakePhotos) get(id string) *models.Photo {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.byID[id]
	if !ok {
		return nil
	}
	copied := *p
	return &copied
}

func (f *fakePhotos) Insert(_ context.Context, photo *models.Photo) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	photo.ID = primitive.NewObjectID()
	stored := *photo
	f.byID[photo.ID.Hex()] = &stored
	return photo.ID.Hex(), nil
}

func (f *fakePhotos) FindByCategory(_ context.Context, category string) ([]models.Photo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	result := []models.Photo{}
	for _, p := range f.byID {
		if p.Category == category {
			result = append(result, *p)
		}
	}
	return result, nil
}

func (f *fakePhotos) UpdateCategories(_ context.Context, ids []string, category string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failBatch {
		return errors.New("batch refused")
	}
	f.batchSizes = append(f.batchSizes, len(ids))
	for _, id := range ids {
		if p, ok := f.byID[id]; ok {
			p.Category = category
		}
	}
	return nil
}

func (f *fakePhotos) Remove(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.byID, id) // missing id is a no-op, like the real store
	return nil
}

type fakeBlobs struct {
	mu       sync.Mutex
	deleted  []string
	failKeys map[string]bool
}

func newFakeBlobs() *fakeBlobs {
	return &fakeBlobs{failKeys: map[string]bool{}}
}

func (f *fakeBlobs) Delete(_ context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failKeys[key] {
		return errors.New("object not found")
	}
	f.deleted = append(f.deleted, key)
	return nil
}

func (f *fakeBlobs) wasDeleted(key string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, k := range f.deleted {
		if k == key {
			return true
		}
	}
	return false
}

func newTestService() (*gallery.Service, *fakeCategories, *fakePhotos, *fakeBlobs) {
	cats := newFakeCategories()
	photos := newFakePhotos()
	blobs := newFakeBlobs()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return gallery.NewService(cats, photos, blobs, log), cats, photos, blobs
}

func TestCreateCategory(t *testing.T) {
	svc, _, _, _ := newTestService()

	cat, err := svc.CreateCategory(context.Background(), "  Cats  ")
	require.NoError(t, err)
	assert.Equal(t, "Cats", cat.Name)
	assert.False(t, cat.ID.IsZero())
}

func TestCreateCategory_DuplicateConflict(t *testing.T) {
	svc, _, _, _ := newTestService()

	_, err := svc.CreateCategory(context.Background(), "Cats")
	require.NoError(t, err)

	_, err = svc.CreateCategory(context.Background(), "Cats")
	assert.ErrorIs(t, err, gallery.ErrConflict)
}

func TestCreateCategory_EmptyName(t *testing.T) {
	svc, _, _, _ := newTestService()

	_, err := svc.CreateCategory(context.Background(), "   ")
	assert.ErrorIs(t, err, gallery.ErrValidation)
}

func TestCreateCategory_ReservedName(t *testing.T) {
	svc, _, _, _ := newTestService()

	_, err := svc.CreateCategory(context.Background(), models.ReservedCategoryName)
	assert.ErrorIs(t, err, gallery.ErrValidation)
}

func TestRenameCategory_CascadesToMatchingPhotos(t *testing.T) {
	svc, cats, photos, _ := newTestService()
	id := cats.add("Cats")
	p1 := photos.add("one", "Cats", "k1")
	p2 := photos.add("two", "Cats", "")
	p3 := photos.add("three", "Dogs", "k3")

	updated, err := svc.RenameCategory(context.Background(), id, "Kittens")
	require.NoError(t, err)
	assert.Equal(t, 2, updated)

	cat, _ := cats.GetByID(context.Background(), id)
	assert.Equal(t, "Kittens", cat.Name)
	assert.Equal(t, "Kittens", photos.get(p1).Category)
	assert.Equal(t, "Kittens", photos.get(p2).Category)
	assert.Equal(t, "Dogs", photos.get(p3).Category)
}

func TestRenameCategory_ReservedNameRejected(t *testing.T) {
	svc, cats, photos, _ := newTestService()
	id := cats.add("Cats")
	p1 := photos.add("one", "Cats", "k1")

	_, err := svc.RenameCategory(context.Background(), id, models.ReservedCategoryName)
	assert.ErrorIs(t, err, gallery.ErrValidation)

	// Nothing may be mutated on a rejected rename.
	cat, _ := cats.GetByID(context.Background(), id)
	assert.Equal(t, "Cats", cat.Name)
	assert.Equal(t, "Cats", photos.get(p1).Category)
}

func TestRenameCategory_NotFound(t *testing.T) {
	svc, _, _, _ := newTestService()

	_, err := svc.RenameCategory(context.Background(), primitive.NewObjectID().Hex(), "Kittens")
	assert.ErrorIs(t, err, gallery.ErrNotFound)
}

func TestRenameCategory_MissingInput(t *testing.T) {
	svc, cats, _, _ := newTestService()
	id := cats.add("Cats")

	_, err := svc.RenameCategory(context.Background(), "", "Kittens")
	assert.ErrorIs(t, err, gallery.ErrValidation)

	_, err = svc.RenameCategory(context.Background(), id, "  ")
	assert.ErrorIs(t, err, gallery.ErrValidation)
}

func TestRenameCategory_BatchFailureKeepsCommittedName(t *testing.T) {
	svc, cats, photos, _ := newTestService()
	id := cats.add("Cats")
	p1 := photos.add("one", "Cats", "k1")
	photos.failBatch = true

	_, err := svc.RenameCategory(context.Background(), id, "Kittens")
	assert.ErrorIs(t, err, gallery.ErrDependency)

	// The name change is the point of no return; the photos are left behind
	// as a detected divergence, not rolled back.
	cat, _ := cats.GetByID(context.Background(), id)
	assert.Equal(t, "Kittens", cat.Name)
	assert.Equal(t, "Cats", photos.get(p1).Category)
}

func TestRenameCategory_ChunksLargeBatches(t *testing.T) {
	svc, cats, photos, _ := newTestService()
	id := cats.add("Cats")
	for i := 0; i < 1200; i++ {
		photos.add("p", "Cats", "")
	}

	updated, err := svc.RenameCategory(context.Background(), id, "Kittens")
	require.NoError(t, err)
	assert.Equal(t, 1200, updated)
	assert.Equal(t, []int{500, 500, 200}, photos.batchSizes)
}

func TestDeleteCategory_Cascade(t *testing.T) {
	svc, cats, photos, blobs := newTestService()
	id := cats.add("Cats")
	p1 := photos.add("one", "Cats", "k1")
	p2 := photos.add("two", "Cats", "")

	result, err := svc.DeleteCategory(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Matched)
	assert.Equal(t, 2, result.DocsDeleted)
	assert.Equal(t, 1, result.BlobsDeleted)
	assert.Zero(t, result.DocFailures)
	assert.Zero(t, result.BlobFailures)

	assert.Nil(t, photos.get(p1))
	assert.Nil(t, photos.get(p2))
	assert.True(t, blobs.wasDeleted("k1"))
	cat, _ := cats.GetByID(context.Background(), id)
	assert.Nil(t, cat)
}

func TestDeleteCategory_Empty(t *testing.T) {
	svc, cats, _, _ := newTestService()
	id := cats.add("Empty")

	result, err := svc.DeleteCategory(context.Background(), id)
	require.NoError(t, err)
	assert.Zero(t, result.Matched)
	cat, _ := cats.GetByID(context.Background(), id)
	assert.Nil(t, cat)
}

func TestDeleteCategory_NotFound(t *testing.T) {
	svc, _, _, _ := newTestService()

	_, err := svc.DeleteCategory(context.Background(), primitive.NewObjectID().Hex())
	assert.ErrorIs(t, err, gallery.ErrNotFound)
}

func TestDeleteCategory_BlobFailureDoesNotBlock(t *testing.T) {
	svc, cats, photos, blobs := newTestService()
	id := cats.add("Cats")
	p1 := photos.add("one", "Cats", "k1")
	blobs.failKeys["k1"] = true

	result, err := svc.DeleteCategory(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, 1, result.BlobFailures)
	assert.Equal(t, 1, result.DocsDeleted)

	assert.Nil(t, photos.get(p1))
	cat, _ := cats.GetByID(context.Background(), id)
	assert.Nil(t, cat)
}

func TestDeleteCategory_PartialBlobFailuresStillFinalize(t *testing.T) {
	svc, cats, photos, blobs := newTestService()
	id := cats.add("Cats")
	for i := 0; i < 5; i++ {
		photos.add("p", "Cats", "key-"+string(rune('a'+i)))
	}
	blobs.failKeys["key-a"] = true
	blobs.failKeys["key-b"] = true

	result, err := svc.DeleteCategory(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, 5, result.Matched)
	assert.Equal(t, 5, result.DocsDeleted)
	assert.Equal(t, 3, result.BlobsDeleted)
	assert.Equal(t, 2, result.BlobFailures)
	assert.Zero(t, result.DocFailures)

	cat, _ := cats.GetByID(context.Background(), id)
	assert.Nil(t, cat)
}

func TestDeletePhoto(t *testing.T) {
	svc, _, photos, blobs := newTestService()
	id := photos.add("one", "Cats", "k1")

	err := svc.DeletePhoto(context.Background(), id, "k1")
	require.NoError(t, err)
	assert.Nil(t, photos.get(id))
	assert.True(t, blobs.wasDeleted("k1"))
}

func TestDeletePhoto_MissingIDIsNoOp(t *testing.T) {
	svc, _, _, _ := newTestService()

	err := svc.DeletePhoto(context.Background(), primitive.NewObjectID().Hex(), "")
	assert.NoError(t, err)
}

func TestDeletePhoto_BlobFailureStillSucceeds(t *testing.T) {
	svc, _, photos, blobs := newTestService()
	id := photos.add("one", "Cats", "k1")
	blobs.failKeys["k1"] = true

	err := svc.DeletePhoto(context.Background(), id, "k1")
	assert.NoError(t, err)
	assert.Nil(t, photos.get(id))
}

func TestCreatePhoto_Validation(t *testing.T) {
	svc, _, _, _ := newTestService()

	_, err := svc.CreatePhoto(context.Background(), &models.Photo{Title: "", Category: "Cats"})
	assert.ErrorIs(t, err, gallery.ErrValidation)

	_, err = svc.CreatePhoto(context.Background(), &models.Photo{Title: "one", Category: " "})
	assert.ErrorIs(t, err, gallery.ErrValidation)
}

func TestCreatePhoto(t *testing.T) {
	svc, _, photos, _ := newTestService()

	p, err := svc.CreatePhoto(context.Background(), &models.Photo{Title: " one ", Category: "Cats", ImageKey: "k1"})
	require.NoError(t, err)
	assert.Equal(t, "one", p.Title)
	assert.NotNil(t, photos.get(p.ID.Hex()))
}
