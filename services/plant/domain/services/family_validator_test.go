package services

import (
	"testing"

	"github.com/google/uuid"

	"github.com/ghuser/grow/services/plant/domain/models"
)

func TestValidateName(t *testing.T) {
	tests := []struct {
		name    string
		input   models.FamilyName
		wantErr bool
	}{
		{"valid name", "Brassicaceae", false},
		{"valid name with spaces", "Cabbage family", false},
		{"leading whitespace", " Solanaceae", true},
		{"trailing whitespace", "Solanaceae ", true},
		{"only whitespace", "   ", true},
		{"tab character", "Cabbage\tfamily", true},
		{"newline character", "Cabbage\nfamily", true},
		{"consecutive spaces", "Cabbage  family", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateName(%q) error = %v, wantErr = %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidatePlantFamilyForCreation(t *testing.T) {
	valid := func() *models.PlantFamily {
		return &models.PlantFamily{ID: uuid.New(), Name: "Fabaceae", NutritionRequirements: "fixes nitrogen", RotationTime: 2}
	}

	t.Run("nil family", func(t *testing.T) {
		if err := ValidatePlantFamilyForCreation(nil); err == nil {
			t.Fatal("expected error for nil family")
		}
	})

	t.Run("valid family", func(t *testing.T) {
		if err := ValidatePlantFamilyForCreation(valid()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("zero id", func(t *testing.T) {
		f := valid()
		f.ID = uuid.Nil
		if err := ValidatePlantFamilyForCreation(f); err == nil {
			t.Fatal("expected error for zero id")
		}
	})

	t.Run("bad name", func(t *testing.T) {
		f := valid()
		f.Name = " Fabaceae"
		if err := ValidatePlantFamilyForCreation(f); err == nil {
			t.Fatal("expected error for bad name")
		}
	})

	t.Run("negative rotation", func(t *testing.T) {
		f := valid()
		f.RotationTime = -3
		if err := ValidatePlantFamilyForCreation(f); err == nil {
			t.Fatal("expected error for negative rotation")
		}
	})
}
