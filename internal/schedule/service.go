package schedule

import (
	"context"
	"errors"
	"time"

	"github.com/Synquic/zenyourlife-sub004/internal/civildate"
)

var (
	ErrInvalidWeekday  = errors.New("weekday must be between 0 (Sunday) and 6 (Saturday)")
	ErrInvalidTimeSlot = errors.New("time slots must be HH:MM labels")
	ErrInvalidDate     = errors.New("invalid date")
)

type Service interface {
	GetWeek(ctx context.Context) ([]DaySchedule, error)
	UpdateDay(ctx context.Context, weekday int, req UpdateDayRequest) (*DaySchedule, error)

	CreateBlockedDate(ctx context.Context, req CreateBlockedDateRequest) (*BlockedDate, error)
	GetBlockedDate(ctx context.Context, id int) (*BlockedDate, error)
	ListBlockedDates(ctx context.Context, from, to string) ([]BlockedDate, error)
	UpdateBlockedDate(ctx context.Context, id int, req UpdateBlockedDateRequest) (*BlockedDate, error)
	DeactivateBlockedDate(ctx context.Context, id int) error
}

type service struct {
	repo Repository
	loc  *time.Location
}

func NewService(repo Repository, loc *time.Location) Service {
	return &service{
		repo: repo,
		loc:  loc,
	}
}

func (s *service) GetWeek(ctx context.Context) ([]DaySchedule, error) {
	return s.repo.GetWeek(ctx)
}

func (s *service) UpdateDay(ctx context.Context, weekday int, req UpdateDayRequest) (*DaySchedule, error) {
	if weekday < 0 || weekday > 6 {
		return nil, ErrInvalidWeekday
	}

	if err := validateSlots(req.TimeSlots); err != nil {
		return nil, err
	}

	return s.repo.UpdateDay(ctx, weekday, req.IsWorking, req.TimeSlots)
}

func (s *service) CreateBlockedDate(ctx context.Context, req CreateBlockedDateRequest) (*BlockedDate, error) {
	date, err := civildate.Normalize(req.Date, s.loc)
	if err != nil {
		return nil, ErrInvalidDate
	}

	if err := validateSlots(req.BlockedTimeSlots); err != nil {
		return nil, err
	}

	return s.repo.CreateBlockedDate(ctx, date, req.BlockedTimeSlots, req.Reason)
}

func (s *service) GetBlockedDate(ctx context.Context, id int) (*BlockedDate, error) {
	return s.repo.GetBlockedDateByID(ctx, id)
}

func (s *service) ListBlockedDates(ctx context.Context, from, to string) ([]BlockedDate, error) {
	normFrom, err := civildate.Normalize(from, s.loc)
	if err != nil {
		return nil, ErrInvalidDate
	}

	normTo, err := civildate.Normalize(to, s.loc)
	if err != nil {
		return nil, ErrInvalidDate
	}

	return s.repo.ListBlockedDates(ctx, normFrom, normTo, true)
}

func (s *service) UpdateBlockedDate(ctx context.Context, id int, req UpdateBlockedDateRequest) (*BlockedDate, error) {
	if err := validateSlots(req.BlockedTimeSlots); err != nil {
		return nil, err
	}

	return s.repo.UpdateBlockedDate(ctx, id, req.BlockedTimeSlots, req.Reason)
}

func (s *service) DeactivateBlockedDate(ctx context.Context, id int) error {
	return s.repo.DeactivateBlockedDate(ctx, id)
}

func validateSlots(slots []string) error {
	for _, slot := range slots {
		if _, err := time.Parse("15:04", slot); err != nil {
			return ErrInvalidTimeSlot
		}
	}
	return nil
}
