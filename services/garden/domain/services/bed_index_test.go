package services

import (
	"testing"

	"github.com/google/uuid"

	"github.com/ghuser/grow/services/garden/domain/models"
)

func bedAt(index int) *models.Bed {
	return &models.Bed{
		ID:            uuid.New(),
		Index:         index,
		Dimensions:    models.Dimensions{Length: 200, Width: 100},
		PlantFamilies: []uuid.UUID{},
	}
}

func TestNextIndex(t *testing.T) {
	tests := []struct{ max, want int }{
		{0, 1},
		{3, 4},
		{-1, 1},
	}
	for _, tt := range tests {
		if got := NextIndex(tt.max); got != tt.want {
			t.Errorf("NextIndex(%d) = %d, want %d", tt.max, got, tt.want)
		}
	}
}

func TestValidateBedForCreation(t *testing.T) {
	t.Run("nil bed", func(t *testing.T) {
		if err := ValidateBedForCreation(nil); err == nil {
			t.Fatal("expected error for nil bed")
		}
	})

	t.Run("valid bed", func(t *testing.T) {
		if err := ValidateBedForCreation(bedAt(1)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	tests := []struct {
		name   string
		mutate func(*models.Bed)
	}{
		{"zero id", func(b *models.Bed) { b.ID = uuid.Nil }},
		{"zero index", func(b *models.Bed) { b.Index = 0 }},
		{"zero length", func(b *models.Bed) { b.Length = 0 }},
		{"negative width", func(b *models.Bed) { b.Width = -5 }},
		{"preassigned families", func(b *models.Bed) { b.PlantFamilies = []uuid.UUID{uuid.New()} }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bed := bedAt(1)
			tt.mutate(bed)
			if err := ValidateBedForCreation(bed); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestValidateDenseSequence(t *testing.T) {
	tests := []struct {
		name    string
		indices []int
		wantErr bool
	}{
		{"empty", nil, false},
		{"dense", []int{1, 2, 3}, false},
		{"gap after delete", []int{1, 3}, true},
		{"starts at two", []int{2, 3}, true},
		{"out of order", []int{2, 1}, true},
		{"duplicate", []int{1, 1}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			beds := make([]*models.Bed, len(tt.indices))
			for i, idx := range tt.indices {
				beds[i] = bedAt(idx)
			}
			if err := ValidateDenseSequence(beds); (err != nil) != tt.wantErr {
				t.Fatalf("ValidateDenseSequence(%v) error = %v, wantErr = %v", tt.indices, err, tt.wantErr)
			}
		})
	}
}

func TestValidateBatchForCreation(t *testing.T) {
	t.Run("empty batch", func(t *testing.T) {
		if err := ValidateBatchForCreation(nil); err == nil {
			t.Fatal("expected error for empty batch")
		}
	})

	t.Run("valid batch", func(t *testing.T) {
		beds, err := models.NewBedBatch(5, models.Dimensions{Length: 1, Width: 1})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := ValidateBatchForCreation(beds); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("duplicate id", func(t *testing.T) {
		a, b := bedAt(1), bedAt(2)
		b.ID = a.ID
		if err := ValidateBatchForCreation([]*models.Bed{a, b}); err == nil {
			t.Fatal("expected error for duplicate id")
		}
	})

	t.Run("invalid member", func(t *testing.T) {
		a, b := bedAt(1), bedAt(2)
		b.Width = 0
		if err := ValidateBatchForCreation([]*models.Bed{a, b}); err == nil {
			t.Fatal("expected error for invalid member")
		}
	})
}
