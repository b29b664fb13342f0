package models

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// PlantFamily is a crop category used for rotation planning.
type PlantFamily struct {
	ID                    uuid.UUID
	Name                  FamilyName
	NutritionRequirements string
	RotationTime          int // years before the family may return to the same bed
}

// NewPlantFamily constructs a PlantFamily with a generated ID.
func NewPlantFamily(name FamilyName, nutritionRequirements string, rotationTime int) (*PlantFamily, error) {
	if strings.TrimSpace(nutritionRequirements) == "" {
		return nil, fmt.Errorf("nutrition requirements must not be empty")
	}
	if rotationTime < 0 {
		return nil, fmt.Errorf("rotation time must not be negative, got %d", rotationTime)
	}
	return &PlantFamily{
		ID:                    uuid.New(),
		Name:                  name,
		NutritionRequirements: nutritionRequirements,
		RotationTime:          rotationTime,
	}, nil
}
