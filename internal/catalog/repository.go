package catalog

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
)

var ErrTreatmentNotFound = errors.New("treatment not found")

const treatmentColumns = `id, name, description, duration_minutes, price_cents, image_url, is_active, created_at, updated_at`

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, t *Treatment) (*Treatment, error) {
	query := `
		INSERT INTO treatments (name, description, duration_minutes, price_cents, image_url)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + treatmentColumns

	var created Treatment
	err := r.db.GetContext(ctx, &created, query,
		t.Name, t.Description, t.DurationMinutes, t.PriceCents, t.ImageURL)
	if err != nil {
		return nil, err
	}

	return &created, nil
}

func (r *repository) GetByID(ctx context.Context, id int) (*Treatment, error) {
	query := `
		SELECT ` + treatmentColumns + `
		FROM treatments
		WHERE id = $1
	`

	var t Treatment
	err := r.db.GetContext(ctx, &t, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTreatmentNotFound
		}
		return nil, err
	}

	return &t, nil
}

func (r *repository) List(ctx context.Context, activeOnly bool) ([]Treatment, error) {
	query := `
		SELECT ` + treatmentColumns + `
		FROM treatments
	`
	if activeOnly {
		query += ` WHERE is_active = true`
	}
	query += ` ORDER BY name`

	var treatments []Treatment
	err := r.db.SelectContext(ctx, &treatments, query)
	if err != nil {
		return nil, err
	}

	return treatments, nil
}

func (r *repository) Update(ctx context.Context, t *Treatment) (*Treatment, error) {
	query := `
		UPDATE treatments
		SET name = $2,
		    description = $3,
		    duration_minutes = $4,
		    price_cents = $5,
		    image_url = $6,
		    is_active = $7,
		    updated_at = NOW()
		WHERE id = $1
		RETURNING ` + treatmentColumns

	var updated Treatment
	err := r.db.GetContext(ctx, &updated, query,
		t.ID, t.Name, t.Description, t.DurationMinutes, t.PriceCents, t.ImageURL, t.IsActive)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTreatmentNotFound
		}
		return nil, err
	}

	return &updated, nil
}

func (r *repository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM treatments WHERE id = $1`, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return ErrTreatmentNotFound
	}

	return nil
}
