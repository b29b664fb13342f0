package events

import (
	"time"

	"github.com/google/uuid"
)

const (
	// TopicPlantFamilyCreated is published when a plant family is persisted.
	TopicPlantFamilyCreated = "plant.family.created"

	// TopicPlantFamilyDeleted is published when a plant family is removed. The
	// database also drops it from every bed it was assigned to.
	TopicPlantFamilyDeleted = "plant.family.deleted"
)

// PlantFamilyCreatedEvent is published after a new PlantFamily is persisted.
type PlantFamilyCreatedEvent struct {
	EventID       uuid.UUID `json:"event_id"` // Unique publish-time identifier for deduplication
	Version       int       `json:"version"`  // Schema version; increment on breaking changes
	PlantFamilyID uuid.UUID `json:"plant_family_id"`
	Name          string    `json:"name"`
	RotationTime  int       `json:"rotation_time"`
	OccurredAt    time.Time `json:"occurred_at"`
}

// PlantFamilyDeletedEvent is published after a PlantFamily is removed.
type PlantFamilyDeletedEvent struct {
	EventID       uuid.UUID `json:"event_id"`
	Version       int       `json:"version"`
	PlantFamilyID uuid.UUID `json:"plant_family_id"`
	OccurredAt    time.Time `json:"occurred_at"`
}
