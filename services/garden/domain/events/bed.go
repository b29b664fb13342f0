package events

import (
	"time"

	"github.com/google/uuid"
)

const (
	// TopicBedsCreated is published when one or more beds are persisted.
	TopicBedsCreated = "garden.beds.created"

	// TopicBedsCleared is published when the whole bed collection is wiped,
	// either directly or as the first half of a replacement.
	TopicBedsCleared = "garden.beds.cleared"
)

// BedSnapshot is the event payload shape of a single bed.
type BedSnapshot struct {
	ID     uuid.UUID `json:"id"`
	Index  int       `json:"index"`
	Length int       `json:"length"`
	Width  int       `json:"width"`
}

// BedsCreatedEvent lists the beds written by one insert, in index order.
type BedsCreatedEvent struct {
	EventID    uuid.UUID     `json:"event_id"`
	Version    int           `json:"version"`
	Beds       []BedSnapshot `json:"beds"`
	OccurredAt time.Time     `json:"occurred_at"`
}

// BedsClearedEvent records a full collection wipe. Consumers holding
// per-bed read models must drop them.
type BedsClearedEvent struct {
	EventID    uuid.UUID `json:"event_id"`
	Version    int       `json:"version"`
	Removed    int       `json:"removed"`
	OccurredAt time.Time `json:"occurred_at"`
}
