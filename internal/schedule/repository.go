package schedule

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

var (
	ErrDayNotFound         = errors.New("weekday schedule not found")
	ErrBlockedDateNotFound = errors.New("blocked date not found")
)

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetWeek(ctx context.Context) ([]DaySchedule, error) {
	query := `
		SELECT weekday, is_working, time_slots, updated_at
		FROM weekly_schedule
		ORDER BY weekday
	`

	var days []DaySchedule
	err := r.db.SelectContext(ctx, &days, query)
	if err != nil {
		return nil, err
	}

	return days, nil
}

func (r *repository) GetDay(ctx context.Context, weekday int) (*DaySchedule, error) {
	query := `
		SELECT weekday, is_working, time_slots, updated_at
		FROM weekly_schedule
		WHERE weekday = $1
	`

	var day DaySchedule
	err := r.db.GetContext(ctx, &day, query, weekday)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrDayNotFound
		}
		return nil, err
	}

	return &day, nil
}

func (r *repository) UpdateDay(ctx context.Context, weekday int, isWorking bool, timeSlots []string) (*DaySchedule, error) {
	query := `
		INSERT INTO weekly_schedule (weekday, is_working, time_slots, updated_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (weekday) DO UPDATE
		SET is_working = EXCLUDED.is_working,
		    time_slots = EXCLUDED.time_slots,
		    updated_at = NOW()
		RETURNING weekday, is_working, time_slots, updated_at
	`

	var day DaySchedule
	err := r.db.GetContext(ctx, &day, query, weekday, isWorking, pq.StringArray(timeSlots))
	if err != nil {
		return nil, err
	}

	return &day, nil
}

func (r *repository) CreateBlockedDate(ctx context.Context, date string, blockedTimeSlots []string, reason string) (*BlockedDate, error) {
	query := `
		INSERT INTO blocked_dates (date, blocked_time_slots, reason)
		VALUES ($1, $2, $3)
		RETURNING id, date, blocked_time_slots, is_active, reason, created_at, updated_at
	`

	var bd BlockedDate
	err := r.db.GetContext(ctx, &bd, query, date, pq.StringArray(blockedTimeSlots), reason)
	if err != nil {
		return nil, err
	}

	bd.derive()
	return &bd, nil
}

func (r *repository) GetBlockedDateByID(ctx context.Context, id int) (*BlockedDate, error) {
	query := `
		SELECT id, date, blocked_time_slots, is_active, reason, created_at, updated_at
		FROM blocked_dates
		WHERE id = $1
	`

	var bd BlockedDate
	err := r.db.GetContext(ctx, &bd, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBlockedDateNotFound
		}
		return nil, err
	}

	bd.derive()
	return &bd, nil
}

func (r *repository) ListBlockedDates(ctx context.Context, from, to string, activeOnly bool) ([]BlockedDate, error) {
	query := `
		SELECT id, date, blocked_time_slots, is_active, reason, created_at, updated_at
		FROM blocked_dates
		WHERE date >= $1 AND date <= $2
	`

	if activeOnly {
		query += " AND is_active = true"
	}

	query += " ORDER BY date, id"

	var dates []BlockedDate
	err := r.db.SelectContext(ctx, &dates, query, from, to)
	if err != nil {
		return nil, err
	}

	for i := range dates {
		dates[i].derive()
	}

	return dates, nil
}

func (r *repository) ActiveBlockedDatesByDate(ctx context.Context, date string) ([]BlockedDate, error) {
	query := `
		SELECT id, date, blocked_time_slots, is_active, reason, created_at, updated_at
		FROM blocked_dates
		WHERE date = $1 AND is_active = true
		ORDER BY id
	`

	var dates []BlockedDate
	err := r.db.SelectContext(ctx, &dates, query, date)
	if err != nil {
		return nil, err
	}

	for i := range dates {
		dates[i].derive()
	}

	return dates, nil
}

func (r *repository) UpdateBlockedDate(ctx context.Context, id int, blockedTimeSlots []string, reason string) (*BlockedDate, error) {
	query := `
		UPDATE blocked_dates
		SET blocked_time_slots = $2,
		    reason = $3,
		    updated_at = NOW()
		WHERE id = $1 AND is_active = true
		RETURNING id, date, blocked_time_slots, is_active, reason, created_at, updated_at
	`

	var bd BlockedDate
	err := r.db.GetContext(ctx, &bd, query, id, pq.StringArray(blockedTimeSlots), reason)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBlockedDateNotFound
		}
		return nil, err
	}

	bd.derive()
	return &bd, nil
}

func (r *repository) DeactivateBlockedDate(ctx context.Context, id int) error {
	query := `
		UPDATE blocked_dates
		SET is_active = false,
		    updated_at = NOW()
		WHERE id = $1 AND is_active = true
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
		return ErrBlockedDateNotFound
	}

	return nil
}
