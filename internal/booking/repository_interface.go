package booking

import "context"

type Repository interface {
	Create(ctx context.Context, b *Booking) (*Booking, error)
	GetByID(ctx context.Context, id int) (*Booking, error)
	ListByDate(ctx context.Context, date string) ([]BookingWithTreatment, error)
	ListByStatus(ctx context.Context, status Status, limit, offset int) ([]BookingWithTreatment, error)
	ActiveSlotsByDate(ctx context.Context, date string) ([]string, error)
	UpdateStatus(ctx context.Context, id int, from, to Status) (*Booking, error)

	DueReminders(ctx context.Context, date string) ([]BookingWithTreatment, error)
	MarkReminderSent(ctx context.Context, id int) error
}
