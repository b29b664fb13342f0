package db

import "github.com/google/uuid"

// BedRow is one row of a bed joined with at most one of its plant families.
// A bed with no families yields a single row with an invalid PlantFamilyID.
type BedRow struct {
	ID            uuid.UUID
	BedIndex      int
	Length        int
	Width         int
	PlantFamilyID uuid.NullUUID
}
