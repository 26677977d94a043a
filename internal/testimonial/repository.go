package testimonial

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
)

var ErrTestimonialNotFound = errors.New("testimonial not found")

const testimonialColumns = `id, author_name, content, rating, is_approved, created_at`

type Repository interface {
	Create(ctx context.Context, t *Testimonial) (*Testimonial, error)
	ListApproved(ctx context.Context) ([]Testimonial, error)
	ListAll(ctx context.Context) ([]Testimonial, error)
	Approve(ctx context.Context, id int) (*Testimonial, error)
	Delete(ctx context.Context, id int) error
}

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, t *Testimonial) (*Testimonial, error) {
	query := `
		INSERT INTO testimonials (author_name, content, rating)
		VALUES ($1, $2, $3)
		RETURNING ` + testimonialColumns

	var created Testimonial
	err := r.db.GetContext(ctx, &created, query, t.AuthorName, t.Content, t.Rating)
	if err != nil {
		return nil, err
	}

	return &created, nil
}

func (r *repository) ListApproved(ctx context.Context) ([]Testimonial, error) {
	query := `
		SELECT ` + testimonialColumns + `
		FROM testimonials
		WHERE is_approved = true
		ORDER BY created_at DESC
	`

	var testimonials []Testimonial
	err := r.db.SelectContext(ctx, &testimonials, query)
	if err != nil {
		return nil, err
	}

	return testimonials, nil
}

func (r *repository) ListAll(ctx context.Context) ([]Testimonial, error) {
	query := `
		SELECT ` + testimonialColumns + `
		FROM testimonials
		ORDER BY created_at DESC
	`

	var testimonials []Testimonial
	err := r.db.SelectContext(ctx, &testimonials, query)
	if err != nil {
		return nil, err
	}

	return testimonials, nil
}

func (r *repository) Approve(ctx context.Context, id int) (*Testimonial, error) {
	query := `
		UPDATE testimonials
		SET is_approved = true
		WHERE id = $1
		RETURNING ` + testimonialColumns

	var t Testimonial
	err := r.db.GetContext(ctx, &t, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTestimonialNotFound
		}
		return nil, err
	}

	return &t, nil
}

func (r *repository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM testimonials WHERE id = $1`, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return ErrTestimonialNotFound
	}

	return nil
}
