package models

import (
	"fmt"
	"slices"

	"github.com/google/uuid"
)

// Bed is the core aggregate of the garden bounded context.
type Bed struct {
	ID    uuid.UUID
	Index int // 1-based display position, immutable after creation
	Dimensions
	PlantFamilies []uuid.UUID
}

// NewBed constructs a Bed with a generated ID at the given index and no plant families.
func NewBed(index int, dims Dimensions) (*Bed, error) {
	if index < 1 {
		return nil, fmt.Errorf("bed index must be at least 1, got %d", index)
	}
	return &Bed{
		ID:            uuid.New(),
		Index:         index,
		Dimensions:    dims,
		PlantFamilies: []uuid.UUID{},
	}, nil
}

// NewBedBatch constructs count beds with identical dimensions and indices 1..count in order.
func NewBedBatch(count int, dims Dimensions) ([]*Bed, error) {
	if count < 1 {
		return nil, fmt.Errorf("number of beds must be at least 1, got %d", count)
	}
	beds := make([]*Bed, count)
	for i := range beds {
		bed, err := NewBed(i+1, dims)
		if err != nil {
			return nil, err
		}
		beds[i] = bed
	}
	return beds, nil
}

// Clone returns a deep copy of the bed.
func (b *Bed) Clone() *Bed {
	c := *b
	c.PlantFamilies = slices.Clone(b.PlantFamilies)
	if c.PlantFamilies == nil {
		c.PlantFamilies = []uuid.UUID{}
	}
	return &c
}
