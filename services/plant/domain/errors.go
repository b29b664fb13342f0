package domain

import "errors"

// Sentinel errors for the plant domain. Use errors.Is() to check these.
var (
	// ErrPlantFamilyNotFound indicates the requested plant family does not exist.
	ErrPlantFamilyNotFound = errors.New("plant family not found")

	// ErrPlantFamilyAlreadyExists indicates a plant family with the same name already exists.
	ErrPlantFamilyAlreadyExists = errors.New("plant family already exists")

	// ErrInvalidPlantFamily indicates the plant family violates domain constraints.
	ErrInvalidPlantFamily = errors.New("invalid plant family")
)
