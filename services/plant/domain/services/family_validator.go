// Package services contains stateless domain services for the plant bounded context.
// Domain services enforce business rules that operate purely on domain types
// and have zero external dependencies beyond stdlib and the domain layer.
package services

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/google/uuid"

	"github.com/ghuser/grow/services/plant/domain/models"
)

// ValidateName enforces business rules for FamilyName beyond the length
// constraints enforced by the FamilyName constructor.
//
// Business rules:
//   - No leading or trailing whitespace
//   - No control characters (Unicode category Cc)
//   - No consecutive spaces
//   - Must not be only whitespace characters
func ValidateName(name models.FamilyName) error {
	s := name.String()

	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("plant family name must not be only whitespace")
	}

	if s != strings.TrimSpace(s) {
		return fmt.Errorf("plant family name must not have leading or trailing whitespace")
	}

	for _, r := range s {
		if unicode.IsControl(r) {
			return fmt.Errorf("plant family name must not contain control characters")
		}
	}

	if strings.Contains(s, "  ") {
		return fmt.Errorf("plant family name must not contain consecutive spaces")
	}

	return nil
}

// ValidatePlantFamilyForCreation checks a fully-constructed PlantFamily
// before it is persisted.
func ValidatePlantFamilyForCreation(family *models.PlantFamily) error {
	if family == nil {
		return fmt.Errorf("plant family cannot be nil")
	}

	if err := ValidateName(family.Name); err != nil {
		return fmt.Errorf("invalid name: %w", err)
	}

	if family.ID == uuid.Nil {
		return fmt.Errorf("id must be set")
	}

	if family.RotationTime < 0 {
		return fmt.Errorf("rotation time must not be negative")
	}

	return nil
}
