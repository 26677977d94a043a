package property

import (
	"time"

	"github.com/lib/pq"
)

// Property is a rental listing shown on the public site alongside the
// treatment catalog.
type Property struct {
	ID                 int            `db:"id" json:"id"`
	Name               string         `db:"name" json:"name"`
	Description        string         `db:"description" json:"description"`
	Location           string         `db:"location" json:"location"`
	PricePerNightCents int            `db:"price_per_night_cents" json:"price_per_night_cents"`
	Capacity           int            `db:"capacity" json:"capacity"`
	ImageURLs          pq.StringArray `db:"image_urls" json:"image_urls"`
	IsActive           bool           `db:"is_active" json:"is_active"`
	CreatedAt          time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt          time.Time      `db:"updated_at" json:"updated_at"`
}

type CreatePropertyRequest struct {
	Name               string   `json:"name" binding:"required,min=2,max=200"`
	Description        string   `json:"description"`
	Location           string   `json:"location" binding:"required"`
	PricePerNightCents int      `json:"price_per_night_cents" binding:"min=0"`
	Capacity           int      `json:"capacity" binding:"required,min=1,max=50"`
	ImageURLs          []string `json:"image_urls" binding:"omitempty,dive,url"`
}

type UpdatePropertyRequest struct {
	Name               string   `json:"name" binding:"required,min=2,max=200"`
	Description        string   `json:"description"`
	Location           string   `json:"location" binding:"required"`
	PricePerNightCents int      `json:"price_per_night_cents" binding:"min=0"`
	Capacity           int      `json:"capacity" binding:"required,min=1,max=50"`
	ImageURLs          []string `json:"image_urls" binding:"omitempty,dive,url"`
	IsActive           *bool    `json:"is_active" binding:"required"`
}
