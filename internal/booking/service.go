package booking

import (
	"context"
	"errors"
	"time"

	"github.com/Synquic/zenyourlife-sub004/internal/availability"
	"github.com/Synquic/zenyourlife-sub004/internal/civildate"
	"github.com/Synquic/zenyourlife-sub004/internal/logger"
	"github.com/Synquic/zenyourlife-sub004/internal/metrics"
)

var (
	ErrInvalidDateFormat       = errors.New("invalid date format")
	ErrDateInPast              = errors.New("date is in the past")
	ErrSlotNotOffered          = errors.New("time slot is not offered on this day")
	ErrSlotBlocked             = errors.New("time slot is blocked")
	ErrSlotAlreadyBooked       = errors.New("time slot is already booked")
	ErrBookingNotFound         = errors.New("booking not found")
	ErrInvalidStatusTransition = errors.New("invalid status transition")
)

// Resolver is the slice of the availability resolver the writer needs.
type Resolver interface {
	Resolve(ctx context.Context, date string) (*availability.DayStatus, error)
}

// Mailer is satisfied by *email.Service.
type Mailer interface {
	SendBookingConfirmation(ctx context.Context, to, name, date, timeSlot string) error
	SendCancellation(ctx context.Context, to, name, date, timeSlot string) error
}

type Service interface {
	Create(ctx context.Context, req CreateBookingRequest) (*Booking, error)
	GetByID(ctx context.Context, id int) (*Booking, error)
	BookedSlots(ctx context.Context, date string) ([]string, error)
	ListByDate(ctx context.Context, date string) ([]BookingWithTreatment, error)
	ListByStatus(ctx context.Context, status Status, limit, offset int) ([]BookingWithTreatment, error)
	Confirm(ctx context.Context, id int) (*Booking, error)
	Cancel(ctx context.Context, id int) (*Booking, error)
	Complete(ctx context.Context, id int) (*Booking, error)
}

type service struct {
	repo          Repository
	resolver      Resolver
	mailer        Mailer
	initialStatus Status
	loc           *time.Location
}

func NewService(repo Repository, resolver Resolver, mailer Mailer, initialStatus Status, loc *time.Location) Service {
	return &service{
		repo:          repo,
		resolver:      resolver,
		mailer:        mailer,
		initialStatus: initialStatus,
		loc:           loc,
	}
}

// Create validates a booking request against the current schedule and
// persists it. The precondition checks here are advisory reads; the
// at-most-one-active-booking-per-slot guarantee comes from the storage
// unique index, so of two concurrent submissions for the same slot
// exactly one succeeds and the other gets ErrSlotAlreadyBooked.
func (s *service) Create(ctx context.Context, req CreateBookingRequest) (*Booking, error) {
	date, err := civildate.Normalize(req.Date, s.loc)
	if err != nil {
		metrics.RecordBookingRejection("invalid_date")
		return nil, ErrInvalidDateFormat
	}

	if civildate.Before(date, civildate.Today(s.loc)) {
		metrics.RecordBookingRejection("date_in_past")
		return nil, ErrDateInPast
	}

	day, err := s.resolver.Resolve(ctx, date)
	if err != nil {
		return nil, err
	}

	if !day.IsWorkingDay || !day.HasSlot(req.TimeSlot) {
		metrics.RecordBookingRejection("slot_not_offered")
		return nil, ErrSlotNotOffered
	}

	if day.SlotBlocked(req.TimeSlot) {
		metrics.RecordBookingRejection("slot_blocked")
		return nil, ErrSlotBlocked
	}

	// Fast path for stale client views; the authoritative check is the
	// unique index hit inside repo.Create.
	if day.SlotBooked(req.TimeSlot) {
		metrics.RecordBookingRejection("slot_already_booked")
		return nil, ErrSlotAlreadyBooked
	}

	created, err := s.repo.Create(ctx, &Booking{
		Date:           date,
		TimeSlot:       req.TimeSlot,
		TreatmentID:    req.TreatmentID,
		Status:         s.initialStatus,
		CustomerName:   req.CustomerName,
		CustomerEmail:  req.CustomerEmail,
		CustomerPhone:  req.CustomerPhone,
		CustomerGender: req.CustomerGender,
		Notes:          req.Notes,
	})
	if err != nil {
		if errors.Is(err, ErrSlotAlreadyBooked) {
			metrics.RecordBookingRejection("slot_already_booked")
		}
		return nil, err
	}

	metrics.RecordBookingCreated(string(created.Status))

	// Best effort: a lost confirmation email never rolls back a booking.
	if err := s.mailer.SendBookingConfirmation(ctx, created.CustomerEmail, created.CustomerName, created.Date, created.TimeSlot); err != nil {
		logger.Error("failed to queue booking confirmation",
			"booking_id", created.ID,
			"error", err.Error(),
		)
	}

	return created, nil
}

func (s *service) GetByID(ctx context.Context, id int) (*Booking, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) BookedSlots(ctx context.Context, date string) ([]string, error) {
	civil, err := civildate.Normalize(date, s.loc)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}
	return s.repo.ActiveSlotsByDate(ctx, civil)
}

func (s *service) ListByDate(ctx context.Context, date string) ([]BookingWithTreatment, error) {
	civil, err := civildate.Normalize(date, s.loc)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}
	return s.repo.ListByDate(ctx, civil)
}

func (s *service) ListByStatus(ctx context.Context, status Status, limit, offset int) ([]BookingWithTreatment, error) {
	if limit <= 0 {
		limit = 50
	}
	if limit > 200 {
		limit = 200
	}
	if offset < 0 {
		offset = 0
	}
	return s.repo.ListByStatus(ctx, status, limit, offset)
}

func (s *service) Confirm(ctx context.Context, id int) (*Booking, error) {
	return s.transition(ctx, id, StatusConfirmed)
}

func (s *service) Cancel(ctx context.Context, id int) (*Booking, error) {
	booking, err := s.transition(ctx, id, StatusCancelled)
	if err != nil {
		return nil, err
	}

	if err := s.mailer.SendCancellation(ctx, booking.CustomerEmail, booking.CustomerName, booking.Date, booking.TimeSlot); err != nil {
		logger.Error("failed to queue cancellation email",
			"booking_id", booking.ID,
			"error", err.Error(),
		)
	}

	return booking, nil
}

func (s *service) Complete(ctx context.Context, id int) (*Booking, error) {
	return s.transition(ctx, id, StatusCompleted)
}

// transitions holds the admin-triggered status machine: pending may be
// confirmed or cancelled, confirmed may be cancelled or completed.
// cancelled and completed are terminal.
var transitions = map[Status][]Status{
	StatusConfirmed: {StatusPending},
	StatusCancelled: {StatusPending, StatusConfirmed},
	StatusCompleted: {StatusConfirmed},
}

func canTransition(from, to Status) bool {
	for _, allowed := range transitions[to] {
		if from == allowed {
			return true
		}
	}
	return false
}

func (s *service) transition(ctx context.Context, id int, to Status) (*Booking, error) {
	booking, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !canTransition(booking.Status, to) {
		return nil, ErrInvalidStatusTransition
	}

	updated, err := s.repo.UpdateStatus(ctx, id, booking.Status, to)
	if err != nil {
		return nil, err
	}

	metrics.RecordBookingTransition(string(to))
	return updated, nil
}
