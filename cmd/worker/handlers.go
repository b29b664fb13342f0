package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"

	"github.com/ghuser/grow/pkg/cache"
	"github.com/ghuser/grow/pkg/logger"
	gardenEvents "github.com/ghuser/grow/services/garden/domain/events"
	plantEvents "github.com/ghuser/grow/services/plant/domain/events"
)

// handlerFunc is the EventBus subscriber signature.
type handlerFunc func(context.Context, *message.Message) error

// bedCacheInvalidator keeps the single-bed Redis read model in step with the
// garden and plant events. Events arrive late and unordered across topics, so
// handlers only ever remove entries; the API refills them on read. Handlers
// must be idempotent: the EventBus retries up to 3x on failure and delivery
// is at-least-once.
type bedCacheInvalidator struct {
	cache *cache.BedCache
	log   logger.Logger
}

// handlers maps each subscribed topic to its handler.
func (w *bedCacheInvalidator) handlers() map[string]handlerFunc {
	return map[string]handlerFunc{
		gardenEvents.TopicBedsCreated:       w.handleBedsCreated,
		gardenEvents.TopicBedsCleared:       w.handleBedsCleared,
		plantEvents.TopicPlantFamilyCreated: w.handlePlantFamilyCreated,
		plantEvents.TopicPlantFamilyDeleted: w.handlePlantFamilyDeleted,
	}
}

// handleBedsCreated drops any cached entry for the new ids. It never writes
// beds: the event may arrive after they were updated or deleted.
func (w *bedCacheInvalidator) handleBedsCreated(ctx context.Context, msg *message.Message) error {
	var evt gardenEvents.BedsCreatedEvent
	if err := json.Unmarshal(msg.Payload, &evt); err != nil {
		return fmt.Errorf("decode %s: %w", gardenEvents.TopicBedsCreated, err)
	}

	ids := make([]uuid.UUID, len(evt.Beds))
	for i, b := range evt.Beds {
		ids[i] = b.ID
	}
	if err := w.cache.Delete(ctx, ids...); err != nil {
		return err
	}
	w.log.InfoContext(ctx, "beds created", "event_id", evt.EventID, "beds", len(ids))
	return nil
}

// handleBedsCleared drops every cached bed. A purge failure is returned so the
// message is retried; stale entries would otherwise outlive their beds.
func (w *bedCacheInvalidator) handleBedsCleared(ctx context.Context, msg *message.Message) error {
	var evt gardenEvents.BedsClearedEvent
	if err := json.Unmarshal(msg.Payload, &evt); err != nil {
		return fmt.Errorf("decode %s: %w", gardenEvents.TopicBedsCleared, err)
	}
	n, err := w.cache.Purge(ctx)
	if err != nil {
		return err
	}
	w.log.InfoContext(ctx, "bed cache purged", "event_id", evt.EventID, "removed", evt.Removed, "keys", n)
	return nil
}

func (w *bedCacheInvalidator) handlePlantFamilyCreated(ctx context.Context, msg *message.Message) error {
	var evt plantEvents.PlantFamilyCreatedEvent
	if err := json.Unmarshal(msg.Payload, &evt); err != nil {
		return fmt.Errorf("decode %s: %w", plantEvents.TopicPlantFamilyCreated, err)
	}
	w.log.InfoContext(ctx, "plant family created",
		"plant_family_id", evt.PlantFamilyID, "name", evt.Name, "rotation_time", evt.RotationTime)
	return nil
}

// handlePlantFamilyDeleted purges the bed cache because the delete cascades
// through bed_plant_families.
func (w *bedCacheInvalidator) handlePlantFamilyDeleted(ctx context.Context, msg *message.Message) error {
	var evt plantEvents.PlantFamilyDeletedEvent
	if err := json.Unmarshal(msg.Payload, &evt); err != nil {
		return fmt.Errorf("decode %s: %w", plantEvents.TopicPlantFamilyDeleted, err)
	}
	n, err := w.cache.Purge(ctx)
	if err != nil {
		return err
	}
	w.log.InfoContext(ctx, "bed cache purged", "plant_family_id", evt.PlantFamilyID, "keys", n)
	return nil
}
