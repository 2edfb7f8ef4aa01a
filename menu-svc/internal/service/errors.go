package service

import (
	"errors"
	"fmt"

	"boum-cafe/menu-svc/internal/domain"
)

var (
	ErrUnknownCategory = errors.New("unknown category")
	ErrCategoryFull    = errors.New("category is full")
	ErrOrderOutOfBand  = errors.New("sort order outside category band")
	ErrOrderMismatch   = errors.New("order must list every item of the category exactly once")
	ErrInvalidMenu     = errors.New("invalid menu")
	ErrMenuNotFound    = errors.New("menu not found")

	ErrUnsupportedImage     = errors.New("invalid file type. Only JPEG, PNG, GIF, WebP allowed")
	ErrStorageBucketMissing = errors.New("image upload failed: create the image storage bucket first")
	ErrStoragePolicy        = errors.New("image upload failed: grant write access on the image storage bucket")
	ErrUploadFailed         = errors.New("image upload failed")
)

// OrderOutOfBandError rejects a manual sort order and reports the value the
// item keeps.
type OrderOutOfBandError struct {
	Category  domain.Category
	Base      int
	Max       int
	Requested int
	Current   int
}

func (e *OrderOutOfBandError) Error() string {
	return fmt.Sprintf("%s accepts sort orders %d to %d, got %d", e.Category, e.Base, e.Max, e.Requested)
}

func (e *OrderOutOfBandError) Is(target error) bool {
	return target == ErrOrderOutOfBand
}
