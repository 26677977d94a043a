package reminder

import (
	"context"
	"time"

	"github.com/Synquic/zenyourlife-sub004/internal/booking"
	"github.com/Synquic/zenyourlife-sub004/internal/civildate"
	"github.com/Synquic/zenyourlife-sub004/internal/logger"
	"github.com/Synquic/zenyourlife-sub004/internal/metrics"
)

// BookingStore is the slice of the booking repository the scheduler needs.
type BookingStore interface {
	DueReminders(ctx context.Context, date string) ([]booking.BookingWithTreatment, error)
	MarkReminderSent(ctx context.Context, id int) error
}

// Mailer is satisfied by *email.Service.
type Mailer interface {
	SendReminder(ctx context.Context, to, name, date, timeSlot, treatment string) error
}

// Scheduler periodically scans for confirmed bookings happening tomorrow
// and emails each customer once. The reminder_sent flag makes the scan
// idempotent, so overlapping runs or restarts never double-send.
type Scheduler struct {
	store    BookingStore
	mailer   Mailer
	interval time.Duration
	loc      *time.Location
}

func New(store BookingStore, mailer Mailer, interval time.Duration, loc *time.Location) *Scheduler {
	return &Scheduler{
		store:    store,
		mailer:   mailer,
		interval: interval,
		loc:      loc,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	logger.Info("Reminder scheduler started", "interval", s.interval.String())

	// Run immediately on start
	s.run(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("Reminder scheduler stopped")
			return
		case <-ticker.C:
			s.run(ctx)
		}
	}
}

func (s *Scheduler) run(ctx context.Context) {
	tomorrow, err := civildate.AddDays(civildate.Today(s.loc), 1)
	if err != nil {
		logger.Error("Failed to compute reminder date", "error", err.Error())
		return
	}

	due, err := s.store.DueReminders(ctx, tomorrow)
	if err != nil {
		logger.Error("Failed to fetch due reminders", "error", err.Error())
		return
	}

	if len(due) == 0 {
		return
	}

	logger.Infof("Sending %d reminders for %s", len(due), tomorrow)

	for _, b := range due {
		treatment := ""
		if b.TreatmentName != nil {
			treatment = *b.TreatmentName
		}

		if err := s.mailer.SendReminder(ctx, b.CustomerEmail, b.CustomerName, b.Date, b.TimeSlot, treatment); err != nil {
			// Leave the flag unset so the next scan retries this one.
			logger.Error("Failed to queue reminder", "booking_id", b.ID, "error", err.Error())
			continue
		}

		if err := s.store.MarkReminderSent(ctx, b.ID); err != nil {
			logger.Error("Failed to mark reminder sent", "booking_id", b.ID, "error", err.Error())
			continue
		}

		metrics.RecordReminderSent()
	}
}
