package availability

import (
	"context"
	"fmt"
	"time"

	"github.com/Synquic/zenyourlife-sub004/internal/civildate"
	"github.com/Synquic/zenyourlife-sub004/internal/metrics"
	"github.com/Synquic/zenyourlife-sub004/internal/schedule"
)

// ScheduleStore is the slice of the schedule repository the resolver needs.
type ScheduleStore interface {
	GetDay(ctx context.Context, weekday int) (*schedule.DaySchedule, error)
	ActiveBlockedDatesByDate(ctx context.Context, date string) ([]schedule.BlockedDate, error)
}

// BookingStore lists the slot labels occupied by active bookings
// (status pending or confirmed) on a civil date.
type BookingStore interface {
	ActiveSlotsByDate(ctx context.Context, date string) ([]string, error)
}

// Resolver combines the weekly schedule, blocked-date overrides and
// active bookings into the definitive availability of a calendar date.
// Resolution is deterministic and has no side effects.
type Resolver struct {
	schedules    ScheduleStore
	bookings     BookingStore
	defaultSlots []string
	loc          *time.Location
}

func NewResolver(schedules ScheduleStore, bookings BookingStore, defaultSlots []string, loc *time.Location) *Resolver {
	return &Resolver{
		schedules:    schedules,
		bookings:     bookings,
		defaultSlots: defaultSlots,
		loc:          loc,
	}
}

// Resolve computes the DayStatus for any date representation accepted by
// civildate.Normalize. Past dates resolve like any other; rejecting
// past-dated writes is the booking writer's job.
func (r *Resolver) Resolve(ctx context.Context, date string) (*DayStatus, error) {
	civil, err := civildate.Normalize(date, r.loc)
	if err != nil {
		return nil, err
	}

	weekday, err := civildate.Weekday(civil, r.loc)
	if err != nil {
		return nil, err
	}

	day := &DayStatus{
		Date:           civil,
		Weekday:        weekday,
		OfferedSlots:   []string{},
		BlockedSlots:   []string{},
		BookedSlots:    []string{},
		AvailableSlots: []string{},
	}

	daySchedule, err := r.schedules.GetDay(ctx, weekday)
	if err != nil {
		return nil, fmt.Errorf("load weekday schedule: %w", err)
	}

	if !daySchedule.IsWorking {
		day.Status = StatusNonWorking
		metrics.RecordAvailabilityQuery(string(day.Status))
		return day, nil
	}
	day.IsWorkingDay = true

	day.OfferedSlots = append(day.OfferedSlots, daySchedule.TimeSlots...)
	if len(day.OfferedSlots) == 0 {
		// Working day configured before per-day slot lists existed:
		// fall back to the global default list.
		day.OfferedSlots = append(day.OfferedSlots, r.defaultSlots...)
	}

	blockedDates, err := r.schedules.ActiveBlockedDatesByDate(ctx, civil)
	if err != nil {
		return nil, fmt.Errorf("load blocked dates: %w", err)
	}

	blocked := map[string]bool{}
	for _, bd := range blockedDates {
		if len(bd.BlockedTimeSlots) == 0 {
			day.IsFullDayBlocked = true
			day.Status = StatusBlocked
			day.BlockedSlots = append([]string{}, day.OfferedSlots...)
			day.AvailableSlots = []string{}
			metrics.RecordAvailabilityQuery(string(day.Status))
			return day, nil
		}
		for _, slot := range bd.BlockedTimeSlots {
			if !blocked[slot] {
				blocked[slot] = true
				day.BlockedSlots = append(day.BlockedSlots, slot)
			}
		}
	}

	bookedSlots, err := r.bookings.ActiveSlotsByDate(ctx, civil)
	if err != nil {
		return nil, fmt.Errorf("load booked slots: %w", err)
	}

	booked := map[string]bool{}
	for _, slot := range bookedSlots {
		if !booked[slot] {
			booked[slot] = true
			day.BookedSlots = append(day.BookedSlots, slot)
		}
	}

	for _, slot := range day.OfferedSlots {
		if !blocked[slot] && !booked[slot] {
			day.AvailableSlots = append(day.AvailableSlots, slot)
		}
	}

	switch {
	case len(day.OfferedSlots) == 0:
		// Zero-supply misconfiguration: a working day offering no slots
		// is full, not available.
		day.Status = StatusFull
	case len(day.BlockedSlots) == 0 && len(day.BookedSlots) == 0:
		day.Status = StatusAvailable
	case len(day.AvailableSlots) == 0:
		day.Status = StatusFull
	default:
		day.Status = StatusPartial
	}

	metrics.RecordAvailabilityQuery(string(day.Status))
	return day, nil
}

// ResolveMonth resolves every date of a YYYY-MM month for calendar views.
func (r *Resolver) ResolveMonth(ctx context.Context, month string) ([]DayStatus, error) {
	first, err := time.Parse("2006-01", month)
	if err != nil {
		return nil, civildate.ErrInvalidFormat
	}

	daysInMonth := first.AddDate(0, 1, -1).Day()
	result := make([]DayStatus, 0, daysInMonth)

	for d := 1; d <= daysInMonth; d++ {
		date := time.Date(first.Year(), first.Month(), d, 0, 0, 0, 0, time.UTC).Format(civildate.Layout)
		day, err := r.Resolve(ctx, date)
		if err != nil {
			return nil, err
		}
		result = append(result, *day)
	}

	return result, nil
}
