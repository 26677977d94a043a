package schedule

import "context"

type Repository interface {
	GetWeek(ctx context.Context) ([]DaySchedule, error)
	GetDay(ctx context.Context, weekday int) (*DaySchedule, error)
	UpdateDay(ctx context.Context, weekday int, isWorking bool, timeSlots []string) (*DaySchedule, error)

	CreateBlockedDate(ctx context.Context, date string, blockedTimeSlots []string, reason string) (*BlockedDate, error)
	GetBlockedDateByID(ctx context.Context, id int) (*BlockedDate, error)
	ListBlockedDates(ctx context.Context, from, to string, activeOnly bool) ([]BlockedDate, error)
	ActiveBlockedDatesByDate(ctx context.Context, date string) ([]BlockedDate, error)
	UpdateBlockedDate(ctx context.Context, id int, blockedTimeSlots []string, reason string) (*BlockedDate, error)
	DeactivateBlockedDate(ctx context.Context, id int) error
}
