package gallery

import (
	"context"
	"fmt"
	"strings"

	"server/models"
)

// CreatePhoto validates and inserts a photo document. The blob is expected to
// be uploaded already; photo creation only records the reference.
func (s *Service) CreatePhoto(ctx context.Context, photo *models.Photo) (*models.Photo, error) {
	photo.Title = strings.TrimSpace(photo.Title)
	photo.Category = strings.TrimSpace(photo.Category)
	if photo.Title == "" || photo.Category == "" {
		return nil, fmt.Errorf("%w: photo title and category are required", ErrValidation)
	}
	if _, err := s.photos.Insert(ctx, photo); err != nil {
		return nil, fmt.Errorf("%w: photo insert: %v", ErrDependency, err)
	}
	s.log.Info("photo created", "id", photo.ID.Hex(), "title", photo.Title, "category", photo.Category)
	return photo, nil
}

// PhotosByCategory exposes the fresh-query lookup used by the cascades.
func (s *Service) PhotosByCategory(ctx context.Context, category string) ([]models.Photo, error) {
	photos, err := s.photos.FindByCategory(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("%w: photo query: %v", ErrDependency, err)
	}
	return photos, nil
}
