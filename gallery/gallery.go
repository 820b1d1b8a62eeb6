// Package gallery keeps category names, photo-category references and blob
// objects coherent across the document store and the blob store. Neither
// store offers a cross-store transaction, so multi-store operations run as a
// fixed-order saga: primary document mutation first, cascade second,
// dependent-record removal last, with failures tallied and logged rather than
// rolled back.
package gallery

import (
	"context"
	"log/slog"

	"server/models"
)

// CategoryStore is the document-store surface the service needs for
// categories. Lookups return nil (no error) when nothing matches.
type CategoryStore interface {
	FindByName(ctx context.Context, name string) (*models.Category, error)
	GetByID(ctx context.Context, id string) (*models.Category, error)
	Insert(ctx context.Context, cat *models.Category) (string, error)
	UpdateName(ctx context.Context, id, name string) error
	Remove(ctx context.Context, id string) error
}

// PhotoStore is the document-store surface for photos. UpdateCategories is a
// single batched write; Remove of a missing id is not an error.
type PhotoStore interface {
	Insert(ctx context.Context, photo *models.Photo) (string, error)
	FindByCategory(ctx context.Context, category string) ([]models.Photo, error)
	UpdateCategories(ctx context.Context, ids []string, category string) error
	Remove(ctx context.Context, id string) error
}

// BlobStore deletes stored binaries. Delete of a missing key may or may not
// fail; callers treat blob deletion as best-effort either way.
type BlobStore interface {
	Delete(ctx context.Context, key string) error
}

type Service struct {
	categories CategoryStore
	photos     PhotoStore
	blobs      BlobStore
	log        *slog.Logger
}

func NewService(categories CategoryStore, photos PhotoStore, blobs BlobStore, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{
		categories: categories,
		photos:     photos,
		blobs:      blobs,
		log:        log,
	}
}
