package catalog

import "time"

// Treatment is a bookable service offering shown on the public site.
type Treatment struct {
	ID              int       `db:"id" json:"id"`
	Name            string    `db:"name" json:"name"`
	Description     string    `db:"description" json:"description"`
	DurationMinutes int       `db:"duration_minutes" json:"duration_minutes"`
	PriceCents      int       `db:"price_cents" json:"price_cents"`
	ImageURL        string    `db:"image_url" json:"image_url"`
	IsActive        bool      `db:"is_active" json:"is_active"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time `db:"updated_at" json:"updated_at"`
}

type CreateTreatmentRequest struct {
	Name            string `json:"name" binding:"required,min=2,max=200"`
	Description     string `json:"description"`
	DurationMinutes int    `json:"duration_minutes" binding:"required,min=5,max=480"`
	PriceCents      int    `json:"price_cents" binding:"min=0"`
	ImageURL        string `json:"image_url" binding:"omitempty,url"`
}

type UpdateTreatmentRequest struct {
	Name            string `json:"name" binding:"required,min=2,max=200"`
	Description     string `json:"description"`
	DurationMinutes int    `json:"duration_minutes" binding:"required,min=5,max=480"`
	PriceCents      int    `json:"price_cents" binding:"min=0"`
	ImageURL        string `json:"image_url" binding:"omitempty,url"`
	IsActive        *bool  `json:"is_active" binding:"required"`
}
