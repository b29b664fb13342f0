// Package sqlstore implements the garden BedStore over database/sql. The
// same code serves the postgres (pgx) and sqlite drivers: on Postgres writers
// serialise on an advisory lock and publish outbox events; on SQLite the
// single pooled connection serialises them.
package sqlstore

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/ghuser/grow/pkg/database"
	"github.com/ghuser/grow/pkg/events"
	gardendomain "github.com/ghuser/grow/services/garden/domain"
	domainevents "github.com/ghuser/grow/services/garden/domain/events"
	"github.com/ghuser/grow/services/garden/domain/models"
	"github.com/ghuser/grow/services/garden/domain/repositories"
	"github.com/ghuser/grow/services/garden/infrastructure/persistence/sqlstore/db"
)

// bedsLockKey identifies the bed collection in pg_advisory_xact_lock.
const bedsLockKey int64 = 0x6265647300 // "beds\x00"

const eventVersion = 1

var _ repositories.BedStore = (*BedRepository)(nil)

var tracer = otel.Tracer("github.com/ghuser/grow/services/garden/sqlstore")

// BedRepository implements repositories.BedStore against a SQL database.
type BedRepository struct {
	db  *database.Database
	bus *events.EventBus
}

// NewBedRepository returns a BedRepository on the given pool. bus may be nil,
// in which case no events are published.
func NewBedRepository(database *database.Database, bus *events.EventBus) *BedRepository {
	return &BedRepository{db: database, bus: bus}
}

// WithinTx runs fn in one database transaction holding the collection lock.
func (r *BedRepository) WithinTx(ctx context.Context, fn func(tx repositories.BedRepository) error) error {
	ctx, span := tracer.Start(ctx, "beds.tx")
	defer span.End()

	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		q := db.New(tx, r.db.Driver())
		if r.db.Driver() == database.DriverPgx {
			if err := q.LockBeds(ctx, bedsLockKey); err != nil {
				return err
			}
		}
		return fn(&bedWriter{q: q, tx: tx, bus: r.bus})
	})
}

func (r *BedRepository) reader() *bedWriter {
	return &bedWriter{q: db.New(r.db.DB(), r.db.Driver())}
}

func (r *BedRepository) InsertOne(ctx context.Context, bed *models.Bed) (*models.Bed, error) {
	var out *models.Bed
	err := r.WithinTx(ctx, func(tx repositories.BedRepository) error {
		var err error
		out, err = tx.InsertOne(ctx, bed)
		return err
	})
	return out, err
}

func (r *BedRepository) InsertMany(ctx context.Context, beds []*models.Bed) ([]*models.Bed, error) {
	var out []*models.Bed
	err := r.WithinTx(ctx, func(tx repositories.BedRepository) error {
		var err error
		out, err = tx.InsertMany(ctx, beds)
		return err
	})
	return out, err
}

func (r *BedRepository) UpdateFields(ctx context.Context, id uuid.UUID, dims models.Dimensions) (*models.Bed, error) {
	var out *models.Bed
	err := r.WithinTx(ctx, func(tx repositories.BedRepository) error {
		var err error
		out, err = tx.UpdateFields(ctx, id, dims)
		return err
	})
	return out, err
}

func (r *BedRepository) DeleteByID(ctx context.Context, id uuid.UUID) (bool, error) {
	return r.reader().DeleteByID(ctx, id)
}

func (r *BedRepository) DeleteAll(ctx context.Context) (int, error) {
	var n int
	err := r.WithinTx(ctx, func(tx repositories.BedRepository) error {
		var err error
		n, err = tx.DeleteAll(ctx)
		return err
	})
	return n, err
}

func (r *BedRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Bed, error) {
	return r.reader().FindByID(ctx, id)
}

func (r *BedRepository) FindAll(ctx context.Context) ([]*models.Bed, error) {
	return r.reader().FindAll(ctx)
}

func (r *BedRepository) MaxIndex(ctx context.Context) (int, error) {
	return r.reader().MaxIndex(ctx)
}

// bedWriter runs queries on either the pool or one transaction. tx is nil
// outside WithinTx, and events are only published when tx is set.
type bedWriter struct {
	q   *db.Queries
	tx  *sql.Tx
	bus *events.EventBus
}

func (w *bedWriter) insert(ctx context.Context, bed *models.Bed) error {
	if err := w.q.InsertBed(ctx, db.InsertBedParams{
		ID:       bed.ID,
		BedIndex: bed.Index,
		Length:   bed.Length,
		Width:    bed.Width,
	}); err != nil {
		if database.IsUniqueViolation(err) {
			return gardendomain.ErrBedIndexConflict
		}
		return fmt.Errorf("insert bed: %w", err)
	}
	return nil
}

func (w *bedWriter) InsertOne(ctx context.Context, bed *models.Bed) (*models.Bed, error) {
	out, err := w.InsertMany(ctx, []*models.Bed{bed})
	if err != nil {
		return nil, err
	}
	return out[0], nil
}

func (w *bedWriter) InsertMany(ctx context.Context, beds []*models.Bed) ([]*models.Bed, error) {
	trace.SpanFromContext(ctx).SetAttributes(attribute.Int("beds.count", len(beds)))

	out := make([]*models.Bed, len(beds))
	for i, b := range beds {
		if err := w.insert(ctx, b); err != nil {
			return nil, err
		}
		out[i] = b.Clone()
	}
	if err := w.publishCreated(ctx, out); err != nil {
		return nil, fmt.Errorf("publish beds created: %w", err)
	}
	return out, nil
}

func (w *bedWriter) FindByID(ctx context.Context, id uuid.UUID) (*models.Bed, error) {
	rows, err := w.q.GetBed(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("query bed: %w", err)
	}
	beds := rowsToBeds(rows)
	if len(beds) == 0 {
		return nil, gardendomain.ErrBedNotFound
	}
	return beds[0], nil
}

func (w *bedWriter) FindAll(ctx context.Context) ([]*models.Bed, error) {
	rows, err := w.q.ListBeds(ctx)
	if err != nil {
		return nil, fmt.Errorf("query beds: %w", err)
	}
	return rowsToBeds(rows), nil
}

func (w *bedWriter) UpdateFields(ctx context.Context, id uuid.UUID, dims models.Dimensions) (*models.Bed, error) {
	n, err := w.q.UpdateBedDimensions(ctx, db.UpdateBedDimensionsParams{
		Length: dims.Length,
		Width:  dims.Width,
		ID:     id,
	})
	if err != nil {
		return nil, fmt.Errorf("update bed: %w", err)
	}
	if n == 0 {
		return nil, gardendomain.ErrBedNotFound
	}
	return w.FindByID(ctx, id)
}

func (w *bedWriter) DeleteByID(ctx context.Context, id uuid.UUID) (bool, error) {
	n, err := w.q.DeleteBed(ctx, id)
	if err != nil {
		return false, fmt.Errorf("delete bed: %w", err)
	}
	return n > 0, nil
}

func (w *bedWriter) DeleteAll(ctx context.Context) (int, error) {
	n, err := w.q.DeleteAllBeds(ctx)
	if err != nil {
		return 0, fmt.Errorf("delete beds: %w", err)
	}
	if err := w.publishCleared(ctx, int(n)); err != nil {
		return 0, fmt.Errorf("publish beds cleared: %w", err)
	}
	return int(n), nil
}

func (w *bedWriter) MaxIndex(ctx context.Context) (int, error) {
	n, err := w.q.MaxBedIndex(ctx)
	if err != nil {
		return 0, fmt.Errorf("query max bed index: %w", err)
	}
	return n, nil
}

func (w *bedWriter) publishCreated(ctx context.Context, beds []*models.Bed) error {
	if w.bus == nil || w.tx == nil || len(beds) == 0 {
		return nil
	}
	snapshots := make([]domainevents.BedSnapshot, len(beds))
	for i, b := range beds {
		snapshots[i] = domainevents.BedSnapshot{ID: b.ID, Index: b.Index, Length: b.Length, Width: b.Width}
	}
	event := domainevents.BedsCreatedEvent{
		EventID:    uuid.New(),
		Version:    eventVersion,
		Beds:       snapshots,
		OccurredAt: time.Now().UTC(),
	}
	return w.bus.PublishJSONInTx(ctx, w.tx, domainevents.TopicBedsCreated, event.EventID, event.Version, event)
}

func (w *bedWriter) publishCleared(ctx context.Context, removed int) error {
	if w.bus == nil || w.tx == nil {
		return nil
	}
	event := domainevents.BedsClearedEvent{
		EventID:    uuid.New(),
		Version:    eventVersion,
		Removed:    removed,
		OccurredAt: time.Now().UTC(),
	}
	return w.bus.PublishJSONInTx(ctx, w.tx, domainevents.TopicBedsCleared, event.EventID, event.Version, event)
}

// rowsToBeds folds joined rows into beds, keeping the row order.
func rowsToBeds(rows []db.BedRow) []*models.Bed {
	beds := make([]*models.Bed, 0, len(rows))
	byID := make(map[uuid.UUID]*models.Bed, len(rows))
	for _, row := range rows {
		bed, ok := byID[row.ID]
		if !ok {
			bed = &models.Bed{
				ID:            row.ID,
				Index:         row.BedIndex,
				Dimensions:    models.Dimensions{Length: row.Length, Width: row.Width},
				PlantFamilies: []uuid.UUID{},
			}
			byID[row.ID] = bed
			beds = append(beds, bed)
		}
		if row.PlantFamilyID.Valid {
			bed.PlantFamilies = append(bed.PlantFamilies, row.PlantFamilyID.UUID)
		}
	}
	return beds
}
