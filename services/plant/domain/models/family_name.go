package models

import (
	"fmt"
	"unicode/utf8"
)

// FamilyName is a value object representing a valid plant family name.
// Encapsulates validation rules: 1 <= characters <= 255.
type FamilyName string

const (
	minFamilyNameLength = 1
	maxFamilyNameLength = 255
)

// NewFamilyName constructs a valid FamilyName or returns an error if constraints are violated.
func NewFamilyName(s string) (FamilyName, error) {
	n := utf8.RuneCountInString(s)
	if n < minFamilyNameLength {
		return "", fmt.Errorf("plant family name must be at least %d character", minFamilyNameLength)
	}
	if n > maxFamilyNameLength {
		return "", fmt.Errorf("plant family name must not exceed %d characters", maxFamilyNameLength)
	}
	return FamilyName(s), nil
}

// String returns the underlying string value.
func (n FamilyName) String() string {
	return string(n)
}
