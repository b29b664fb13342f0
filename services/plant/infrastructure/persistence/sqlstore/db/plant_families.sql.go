package db

import (
	"context"

	"github.com/google/uuid"
)

const insertPlantFamily = `
INSERT INTO plant_families (id, name, nutrition_requirements, rotation_time)
VALUES ($1, $2, $3, $4)
`

type InsertPlantFamilyParams struct {
	ID                    uuid.UUID
	Name                  string
	NutritionRequirements string
	RotationTime          int
}

func (q *Queries) InsertPlantFamily(ctx context.Context, arg InsertPlantFamilyParams) error {
	_, err := q.db.ExecContext(ctx, q.sql(insertPlantFamily), arg.ID, arg.Name, arg.NutritionRequirements, arg.RotationTime)
	return err
}

const getPlantFamilyByID = `
SELECT id, name, nutrition_requirements, rotation_time
FROM plant_families
WHERE id = $1
`

func (q *Queries) GetPlantFamilyByID(ctx context.Context, id uuid.UUID) (PlantFamily, error) {
	row := q.db.QueryRowContext(ctx, q.sql(getPlantFamilyByID), id)
	var i PlantFamily
	err := row.Scan(&i.ID, &i.Name, &i.NutritionRequirements, &i.RotationTime)
	return i, err
}

const listPlantFamilies = `
SELECT id, name, nutrition_requirements, rotation_time
FROM plant_families
ORDER BY name
`

func (q *Queries) ListPlantFamilies(ctx context.Context) ([]PlantFamily, error) {
	rows, err := q.db.QueryContext(ctx, listPlantFamilies)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []PlantFamily
	for rows.Next() {
		var i PlantFamily
		if err := rows.Scan(&i.ID, &i.Name, &i.NutritionRequirements, &i.RotationTime); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const deletePlantFamily = `
DELETE FROM plant_families WHERE id = $1
`

func (q *Queries) DeletePlantFamily(ctx context.Context, id uuid.UUID) (int64, error) {
	res, err := q.db.ExecContext(ctx, q.sql(deletePlantFamily), id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
