package gallery

import (
	"context"
	"fmt"
	"sync"
)

// batchSize caps the number of mutations per batched write.
const batchSize = 500

// CascadeResult is the tally of one category-delete cascade. Matched counts
// photos found for the category; the remaining fields partition every
// sub-delete outcome.
type CascadeResult struct {
	Matched      int `json:"matched"`
	DocsDeleted  int `json:"docsDeleted"`
	BlobsDeleted int `json:"blobsDeleted"`
	DocFailures  int `json:"docFailures"`
	BlobFailures int `json:"blobFailures"`
}

// renameCascade rewrites the category field of every photo referencing
// oldName, in chunks under the store's per-batch limit. Returns how many
// photos were matched for update.
func (s *Service) renameCascade(ctx context.Context, oldName, newName string) (int, error) {
	photos, err := s.photos.FindByCategory(ctx, oldName)
	if err != nil {
		return 0, err
	}
	ids := make([]string, 0, len(photos))
	for _, p := range photos {
		ids = append(ids, p.ID.Hex())
	}
	for start := 0; start < len(ids); start += batchSize {
		end := start + batchSize
		if end > len(ids) {
			end = len(ids)
		}
		if err := s.photos.UpdateCategories(ctx, ids[start:end], newName); err != nil {
			return start, err
		}
	}
	return len(ids), nil
}

// deleteCascade removes every photo of the category: per photo the blob
// delete (when an image key exists) and the document delete run as
// independent sub-deletes, all photos fanned out concurrently. The join
// waits for every outcome; a failure never stops the other sub-deletes, it
// only shows up in the tally.
func (s *Service) deleteCascade(ctx context.Context, name string) (*CascadeResult, error) {
	photos, err := s.photos.FindByCategory(ctx, name)
	if err != nil {
		return nil, err
	}
	result := &CascadeResult{Matched: len(photos)}
	if len(photos) == 0 {
		return result, nil
	}

	type outcome struct {
		blob bool
		id   string
		key  string
		err  error
	}
	outcomes := make(chan outcome, 2*len(photos))
	var wg sync.WaitGroup
	for _, p := range photos {
		id := p.ID.Hex()
		if p.ImageKey != "" {
			wg.Add(1)
			go func(id, key string) {
				defer wg.Done()
				outcomes <- outcome{blob: true, id: id, key: key, err: s.blobs.Delete(ctx, key)}
			}(id, p.ImageKey)
		}
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			outcomes <- outcome{id: id, err: s.photos.Remove(ctx, id)}
		}(id)
	}
	wg.Wait()
	close(outcomes)

	for o := range outcomes {
		switch {
		case o.err == nil && o.blob:
			result.BlobsDeleted++
		case o.err == nil:
			result.DocsDeleted++
		case o.blob:
			result.BlobFailures++
			s.log.Warn("cascade blob delete failed", "category", name, "photoId", o.id, "imageKey", o.key, "err", o.err)
		default:
			result.DocFailures++
			s.log.Warn("cascade photo delete failed", "category", name, "photoId", o.id, "err", o.err)
		}
	}
	return result, nil
}

// DeletePhoto removes the photo document and then, when an image key is
// present, attempts the blob delete. The document deletion is the unit of
// success; a blob failure is logged and swallowed.
func (s *Service) DeletePhoto(ctx context.Context, id, imageKey string) error {
	if id == "" {
		return fmt.Errorf("%w: photo id is required", ErrValidation)
	}
	if err := s.photos.Remove(ctx, id); err != nil {
		return fmt.Errorf("%w: photo delete: %v", ErrDependency, err)
	}
	if imageKey != "" {
		if err := s.blobs.Delete(ctx, imageKey); err != nil {
			s.log.Warn("photo blob delete failed", "photoId", id, "imageKey", imageKey, "err", err)
		}
	}
	s.log.Info("photo deleted", "id", id)
	return nil
}
