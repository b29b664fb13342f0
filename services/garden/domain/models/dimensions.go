package models

import "fmt"

// Dimensions is a value object holding a bed's footprint in centimetres.
// Both sides are strictly positive.
type Dimensions struct {
	Length int
	Width  int
}

// NewDimensions constructs valid Dimensions or returns an error if either side is not positive.
func NewDimensions(length, width int) (Dimensions, error) {
	if length <= 0 {
		return Dimensions{}, fmt.Errorf("length must be greater than 0, got %d", length)
	}
	if width <= 0 {
		return Dimensions{}, fmt.Errorf("width must be greater than 0, got %d", width)
	}
	return Dimensions{Length: length, Width: width}, nil
}

