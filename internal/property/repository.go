package property

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
)

var ErrPropertyNotFound = errors.New("property not found")

const propertyColumns = `id, name, description, location, price_per_night_cents, capacity, image_urls, is_active, created_at, updated_at`

type Repository interface {
	Create(ctx context.Context, p *Property) (*Property, error)
	GetByID(ctx context.Context, id int) (*Property, error)
	List(ctx context.Context, activeOnly bool) ([]Property, error)
	Update(ctx context.Context, p *Property) (*Property, error)
	Delete(ctx context.Context, id int) error
}

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, p *Property) (*Property, error) {
	query := `
		INSERT INTO properties (name, description, location, price_per_night_cents, capacity, image_urls)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + propertyColumns

	var created Property
	err := r.db.GetContext(ctx, &created, query,
		p.Name, p.Description, p.Location, p.PricePerNightCents, p.Capacity, p.ImageURLs)
	if err != nil {
		return nil, err
	}

	return &created, nil
}

func (r *repository) GetByID(ctx context.Context, id int) (*Property, error) {
	query := `
		SELECT ` + propertyColumns + `
		FROM properties
		WHERE id = $1
	`

	var p Property
	err := r.db.GetContext(ctx, &p, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPropertyNotFound
		}
		return nil, err
	}

	return &p, nil
}

func (r *repository) List(ctx context.Context, activeOnly bool) ([]Property, error) {
	query := `
		SELECT ` + propertyColumns + `
		FROM properties
	`
	if activeOnly {
		query += ` WHERE is_active = true`
	}
	query += ` ORDER BY name`

	var properties []Property
	err := r.db.SelectContext(ctx, &properties, query)
	if err != nil {
		return nil, err
	}

	return properties, nil
}

func (r *repository) Update(ctx context.Context, p *Property) (*Property, error) {
	query := `
		UPDATE properties
		SET name = $2,
		    description = $3,
		    location = $4,
		    price_per_night_cents = $5,
		    capacity = $6,
		    image_urls = $7,
		    is_active = $8,
		    updated_at = NOW()
		WHERE id = $1
		RETURNING ` + propertyColumns

	var updated Property
	err := r.db.GetContext(ctx, &updated, query,
		p.ID, p.Name, p.Description, p.Location, p.PricePerNightCents, p.Capacity, p.ImageURLs, p.IsActive)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPropertyNotFound
		}
		return nil, err
	}

	return &updated, nil
}

func (r *repository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM properties WHERE id = $1`, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return ErrPropertyNotFound
	}

	return nil
}
