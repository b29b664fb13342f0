package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

const insertBed = `
INSERT INTO beds (id, bed_index, length, width)
VALUES ($1, $2, $3, $4)
`

type InsertBedParams struct {
	ID       uuid.UUID
	BedIndex int
	Length   int
	Width    int
}

func (q *Queries) InsertBed(ctx context.Context, arg InsertBedParams) error {
	_, err := q.db.ExecContext(ctx, q.sql(insertBed), arg.ID, arg.BedIndex, arg.Length, arg.Width)
	return err
}

const listBeds = `
SELECT b.id, b.bed_index, b.length, b.width, bpf.plant_family_id
FROM beds b
LEFT JOIN bed_plant_families bpf ON bpf.bed_id = b.id
ORDER BY b.bed_index, bpf.plant_family_id
`

func (q *Queries) ListBeds(ctx context.Context) ([]BedRow, error) {
	return q.queryBedRows(ctx, q.sql(listBeds))
}

const getBed = `
SELECT b.id, b.bed_index, b.length, b.width, bpf.plant_family_id
FROM beds b
LEFT JOIN bed_plant_families bpf ON bpf.bed_id = b.id
WHERE b.id = $1
ORDER BY bpf.plant_family_id
`

// GetBed returns no rows when the bed does not exist.
func (q *Queries) GetBed(ctx context.Context, id uuid.UUID) ([]BedRow, error) {
	return q.queryBedRows(ctx, q.sql(getBed), id)
}

func (q *Queries) queryBedRows(ctx context.Context, query string, args ...interface{}) ([]BedRow, error) {
	rows, err := q.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []BedRow
	for rows.Next() {
		var i BedRow
		if err := rows.Scan(&i.ID, &i.BedIndex, &i.Length, &i.Width, &i.PlantFamilyID); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const updateBedDimensions = `
UPDATE beds SET length = $1, width = $2
WHERE id = $3
`

type UpdateBedDimensionsParams struct {
	Length int
	Width  int
	ID     uuid.UUID
}

// UpdateBedDimensions returns the number of rows changed.
func (q *Queries) UpdateBedDimensions(ctx context.Context, arg UpdateBedDimensionsParams) (int64, error) {
	res, err := q.db.ExecContext(ctx, q.sql(updateBedDimensions), arg.Length, arg.Width, arg.ID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

const deleteBed = `
DELETE FROM beds WHERE id = $1
`

func (q *Queries) DeleteBed(ctx context.Context, id uuid.UUID) (int64, error) {
	res, err := q.db.ExecContext(ctx, q.sql(deleteBed), id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

const deleteAllBeds = `
DELETE FROM beds
`

func (q *Queries) DeleteAllBeds(ctx context.Context) (int64, error) {
	res, err := q.db.ExecContext(ctx, deleteAllBeds)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

const maxBedIndex = `
SELECT COALESCE(MAX(bed_index), 0) FROM beds
`

func (q *Queries) MaxBedIndex(ctx context.Context) (int, error) {
	var n int
	err := q.db.QueryRowContext(ctx, maxBedIndex).Scan(&n)
	return n, err
}

const lockBeds = `
SELECT pg_advisory_xact_lock($1)
`

// LockBeds takes a transaction-scoped advisory lock. Postgres only.
func (q *Queries) LockBeds(ctx context.Context, key int64) error {
	if _, err := q.db.ExecContext(ctx, lockBeds, key); err != nil {
		return fmt.Errorf("advisory lock: %w", err)
	}
	return nil
}
