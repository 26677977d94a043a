package booking

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// activeSlotIndex is the partial unique index over (date, time_slot) for
// bookings whose status still occupies the slot. It is what makes the
// writer's final check-then-insert atomic across server instances.
const activeSlotIndex = "bookings_active_slot_idx"

const uniqueViolation = "23505"

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

const bookingColumns = `id, date, time_slot, treatment_id, status, customer_name, customer_email,
		customer_phone, customer_gender, notes, reminder_sent, created_at, updated_at`

func (r *repository) Create(ctx context.Context, b *Booking) (*Booking, error) {
	query := `
		INSERT INTO bookings (date, time_slot, treatment_id, status, customer_name,
			customer_email, customer_phone, customer_gender, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + bookingColumns

	var created Booking
	err := r.db.GetContext(ctx, &created, query,
		b.Date, b.TimeSlot, b.TreatmentID, b.Status,
		b.CustomerName, b.CustomerEmail, b.CustomerPhone, b.CustomerGender, b.Notes,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation && pqErr.Constraint == activeSlotIndex {
			return nil, ErrSlotAlreadyBooked
		}
		return nil, err
	}

	return &created, nil
}

func (r *repository) GetByID(ctx context.Context, id int) (*Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE id = $1
	`

	var b Booking
	err := r.db.GetContext(ctx, &b, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}

	return &b, nil
}

func (r *repository) ListByDate(ctx context.Context, date string) ([]BookingWithTreatment, error) {
	query := `
		SELECT
			b.id, b.date, b.time_slot, b.treatment_id, b.status, b.customer_name,
			b.customer_email, b.customer_phone, b.customer_gender, b.notes,
			b.reminder_sent, b.created_at, b.updated_at,
			t.name AS treatment_name
		FROM bookings b
		LEFT JOIN treatments t ON b.treatment_id = t.id
		WHERE b.date = $1
		ORDER BY b.time_slot, b.created_at
	`

	var bookings []BookingWithTreatment
	err := r.db.SelectContext(ctx, &bookings, query, date)
	if err != nil {
		return nil, err
	}

	return bookings, nil
}

func (r *repository) ListByStatus(ctx context.Context, status Status, limit, offset int) ([]BookingWithTreatment, error) {
	query := `
		SELECT
			b.id, b.date, b.time_slot, b.treatment_id, b.status, b.customer_name,
			b.customer_email, b.customer_phone, b.customer_gender, b.notes,
			b.reminder_sent, b.created_at, b.updated_at,
			t.name AS treatment_name
		FROM bookings b
		LEFT JOIN treatments t ON b.treatment_id = t.id
		WHERE b.status = $1
		ORDER BY b.date DESC, b.time_slot
		LIMIT $2 OFFSET $3
	`

	var bookings []BookingWithTreatment
	err := r.db.SelectContext(ctx, &bookings, query, status, limit, offset)
	if err != nil {
		return nil, err
	}

	return bookings, nil
}

func (r *repository) ActiveSlotsByDate(ctx context.Context, date string) ([]string, error) {
	query := `
		SELECT time_slot
		FROM bookings
		WHERE date = $1 AND status IN ('pending', 'confirmed')
		ORDER BY time_slot
	`

	var slots []string
	err := r.db.SelectContext(ctx, &slots, query, date)
	if err != nil {
		return nil, err
	}

	return slots, nil
}

func (r *repository) UpdateStatus(ctx context.Context, id int, from, to Status) (*Booking, error) {
	query := `
		UPDATE bookings
		SET status = $3,
		    updated_at = NOW()
		WHERE id = $1 AND status = $2
		RETURNING ` + bookingColumns

	var b Booking
	err := r.db.GetContext(ctx, &b, query, id, from, to)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrInvalidStatusTransition
		}
		return nil, err
	}

	return &b, nil
}

func (r *repository) DueReminders(ctx context.Context, date string) ([]BookingWithTreatment, error) {
	query := `
		SELECT
			b.id, b.date, b.time_slot, b.treatment_id, b.status, b.customer_name,
			b.customer_email, b.customer_phone, b.customer_gender, b.notes,
			b.reminder_sent, b.created_at, b.updated_at,
			t.name AS treatment_name
		FROM bookings b
		LEFT JOIN treatments t ON b.treatment_id = t.id
		WHERE b.date = $1 AND b.status = 'confirmed' AND b.reminder_sent = false
		ORDER BY b.time_slot
	`

	var bookings []BookingWithTreatment
	err := r.db.SelectContext(ctx, &bookings, query, date)
	if err != nil {
		return nil, err
	}

	return bookings, nil
}

func (r *repository) MarkReminderSent(ctx context.Context, id int) error {
	query := `
		UPDATE bookings
		SET reminder_sent = true,
		    updated_at = NOW()
		WHERE id = $1
	`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}
