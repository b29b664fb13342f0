package db

import "github.com/google/uuid"

type PlantFamily struct {
	ID                    uuid.UUID
	Name                  string
	NutritionRequirements string
	RotationTime          int
}
