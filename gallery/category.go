package gallery

import (
	"context"
	"fmt"
	"strings"

	"server/models"
)

// CreateCategory inserts a new category after checking name validity and
// uniqueness. No mutation happens on a rejected request.
func (s *Service) CreateCategory(ctx context.Context, name string) (*models.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: category name is required", ErrValidation)
	}
	if strings.EqualFold(name, models.ReservedCategoryName) {
		return nil, fmt.Errorf("%w: %q is a reserved category name", ErrValidation, models.ReservedCategoryName)
	}
	existing, err := s.categories.FindByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("%w: category lookup: %v", ErrDependency, err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: category %q", ErrConflict, name)
	}
	cat := &models.Category{Name: name}
	if _, err := s.categories.Insert(ctx, cat); err != nil {
		return nil, fmt.Errorf("%w: category insert: %v", ErrDependency, err)
	}
	s.log.Info("category created", "id", cat.ID.Hex(), "name", name)
	return cat, nil
}

// RenameCategory updates a category's name and rewrites the denormalized
// category field of every photo that referenced the old name. The name update
// is the point of no return: if the photo batch fails afterwards, the rename
// stays committed and the divergence is reported to the caller.
func (s *Service) RenameCategory(ctx context.Context, id, newName string) (int, error) {
	newName = strings.TrimSpace(newName)
	if id == "" || newName == "" {
		return 0, fmt.Errorf("%w: category id and new name are required", ErrValidation)
	}
	if strings.EqualFold(newName, models.ReservedCategoryName) {
		return 0, fmt.Errorf("%w: %q is a reserved category name", ErrValidation, models.ReservedCategoryName)
	}
	cat, err := s.categories.GetByID(ctx, id)
	if err != nil {
		return 0, fmt.Errorf("%w: category lookup: %v", ErrDependency, err)
	}
	if cat == nil {
		return 0, fmt.Errorf("%w: category %q", ErrNotFound, id)
	}
	// The pre-rename name must be captured now: after the update commits it
	// exists nowhere else, and the cascade query needs it.
	oldName := cat.Name
	if err := s.categories.UpdateName(ctx, id, newName); err != nil {
		return 0, fmt.Errorf("%w: category update: %v", ErrDependency, err)
	}
	updated, err := s.renameCascade(ctx, oldName, newName)
	if err != nil {
		s.log.Warn("cascade divergence: category renamed but photos still reference the old name",
			"categoryId", id, "oldName", oldName, "newName", newName, "err", err)
		return updated, fmt.Errorf("%w: photo cascade after rename: %v", ErrDependency, err)
	}
	s.log.Info("category renamed", "id", id, "oldName", oldName, "newName", newName, "photosUpdated", updated)
	return updated, nil
}

// DeleteCategory removes a category and cascades to its photos and their
// blobs. The category document is removed last so a cascade that dies
// partway leaves the name binding intact and the operation retryable.
func (s *Service) DeleteCategory(ctx context.Context, id string) (*CascadeResult, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: category id is required", ErrValidation)
	}
	cat, err := s.categories.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: category lookup: %v", ErrDependency, err)
	}
	if cat == nil {
		return nil, fmt.Errorf("%w: category %q", ErrNotFound, id)
	}
	result, err := s.deleteCascade(ctx, cat.Name)
	if err != nil {
		return nil, err
	}
	if err := s.categories.Remove(ctx, id); err != nil {
		return result, fmt.Errorf("%w: category delete: %v", ErrDependency, err)
	}
	s.log.Info("category deleted", "id", id, "name", cat.Name,
		"photosMatched", result.Matched, "docsDeleted", result.DocsDeleted,
		"docFailures", result.DocFailures, "blobFailures", result.BlobFailures)
	return result, nil
}
