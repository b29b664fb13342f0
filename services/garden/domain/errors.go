package domain

import "errors"

// Sentinel errors for the garden domain. Use errors.Is() to check these.
var (
	// ErrBedNotFound indicates the requested bed does not exist.
	ErrBedNotFound = errors.New("bed not found")

	// ErrInvalidBedDimensions indicates a non-positive length or width.
	ErrInvalidBedDimensions = errors.New("invalid bed dimensions")

	// ErrInvalidBedCount indicates a batch size below one.
	ErrInvalidBedCount = errors.New("invalid bed count")

	// ErrBedIndexConflict indicates a write would give two live beds the same index.
	ErrBedIndexConflict = errors.New("bed index already in use")
)
