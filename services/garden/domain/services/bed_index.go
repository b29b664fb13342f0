// Package services contains stateless domain services for the garden bounded context.
// They enforce the bed index rules on domain types only.
package services

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/ghuser/grow/services/garden/domain/models"
)

// NextIndex returns the index a single new bed receives when the highest live
// index is maxIndex (0 for an empty collection).
func NextIndex(maxIndex int) int {
	if maxIndex < 0 {
		maxIndex = 0
	}
	return maxIndex + 1
}

// ValidateBedForCreation checks a fully-constructed bed before it is persisted.
func ValidateBedForCreation(bed *models.Bed) error {
	if bed == nil {
		return fmt.Errorf("bed cannot be nil")
	}
	if bed.ID == uuid.Nil {
		return fmt.Errorf("id must be set")
	}
	if bed.Index < 1 {
		return fmt.Errorf("index must be at least 1, got %d", bed.Index)
	}
	if bed.Length <= 0 || bed.Width <= 0 {
		return fmt.Errorf("dimensions must be positive, got %dx%d", bed.Length, bed.Width)
	}
	if len(bed.PlantFamilies) != 0 {
		return fmt.Errorf("new beds must not have plant families")
	}
	return nil
}

// ValidateDenseSequence reports an error unless beds carry exactly the
// indices 1..len(beds) in ascending order.
func ValidateDenseSequence(beds []*models.Bed) error {
	for i, bed := range beds {
		if bed == nil {
			return fmt.Errorf("bed at position %d is nil", i)
		}
		if bed.Index != i+1 {
			return fmt.Errorf("bed at position %d has index %d, want %d", i, bed.Index, i+1)
		}
	}
	return nil
}

// ValidateBatchForCreation checks a batch built for createBeds / replaceBeds:
// every bed is individually valid and the indices form the dense sequence 1..n.
func ValidateBatchForCreation(beds []*models.Bed) error {
	if len(beds) == 0 {
		return fmt.Errorf("batch must contain at least one bed")
	}
	if err := ValidateDenseSequence(beds); err != nil {
		return err
	}
	seen := make(map[uuid.UUID]struct{}, len(beds))
	for _, bed := range beds {
		if err := ValidateBedForCreation(bed); err != nil {
			return fmt.Errorf("bed %d: %w", bed.Index, err)
		}
		if _, dup := seen[bed.ID]; dup {
			return fmt.Errorf("duplicate bed id %s", bed.ID)
		}
		seen[bed.ID] = struct{}{}
	}
	return nil
}
