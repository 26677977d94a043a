package availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Synquic/zenyourlife-sub004/internal/schedule"
)

type MockScheduleStore struct{ mock.Mock }
type MockBookingStore struct{ mock.Mock }

func (m *MockScheduleStore) GetDay(ctx context.Context, weekday int) (*schedule.DaySchedule, error) {
	args := m.Called(ctx, weekday)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*schedule.DaySchedule), args.Error(1)
}

func (m *MockScheduleStore) ActiveBlockedDatesByDate(ctx context.Context, date string) ([]schedule.BlockedDate, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]schedule.BlockedDate), args.Error(1)
}

func (m *MockBookingStore) ActiveSlotsByDate(ctx context.Context, date string) ([]string, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func newTestResolver(t *testing.T, ss *MockScheduleStore, bs *MockBookingStore, defaultSlots []string) *Resolver {
	loc, err := time.LoadLocation("Europe/Madrid")
	require.NoError(t, err)
	return NewResolver(ss, bs, defaultSlots, loc)
}

// 2025-06-09 is a Monday, 2025-06-08 a Sunday.
const (
	monday = "2025-06-09"
	sunday = "2025-06-08"
)

func workingDay(weekday int, slots ...string) *schedule.DaySchedule {
	return &schedule.DaySchedule{Weekday: weekday, IsWorking: true, TimeSlots: slots}
}

func TestResolve_OpenDay(t *testing.T) {
	ss := new(MockScheduleStore)
	bs := new(MockBookingStore)

	ss.On("GetDay", mock.Anything, 1).Return(workingDay(1, "12:30", "13:30", "14:30"), nil)
	ss.On("ActiveBlockedDatesByDate", mock.Anything, monday).Return([]schedule.BlockedDate{}, nil)
	bs.On("ActiveSlotsByDate", mock.Anything, monday).Return([]string{}, nil)

	day, err := newTestResolver(t, ss, bs, nil).Resolve(context.Background(), monday)
	require.NoError(t, err)

	assert.Equal(t, StatusAvailable, day.Status)
	assert.True(t, day.IsWorkingDay)
	assert.False(t, day.IsFullDayBlocked)
	assert.Equal(t, []string{"12:30", "13:30", "14:30"}, day.AvailableSlots)
	assert.Equal(t, 1, day.Weekday)
}

func TestResolve_PartialWithBooking(t *testing.T) {
	ss := new(MockScheduleStore)
	bs := new(MockBookingStore)

	ss.On("GetDay", mock.Anything, 1).Return(workingDay(1, "12:30", "13:30", "14:30"), nil)
	ss.On("ActiveBlockedDatesByDate", mock.Anything, monday).Return([]schedule.BlockedDate{}, nil)
	bs.On("ActiveSlotsByDate", mock.Anything, monday).Return([]string{"13:30"}, nil)

	day, err := newTestResolver(t, ss, bs, nil).Resolve(context.Background(), monday)
	require.NoError(t, err)

	assert.Equal(t, StatusPartial, day.Status)
	assert.Equal(t, []string{"12:30", "14:30"}, day.AvailableSlots)
	assert.Equal(t, []string{"13:30"}, day.BookedSlots)
}

func TestResolve_FullDayBlockOverridesBookings(t *testing.T) {
	ss := new(MockScheduleStore)
	bs := new(MockBookingStore)

	ss.On("GetDay", mock.Anything, 1).Return(workingDay(1, "12:30", "13:30"), nil)
	ss.On("ActiveBlockedDatesByDate", mock.Anything, monday).Return([]schedule.BlockedDate{
		{ID: 1, Date: monday, BlockedTimeSlots: nil, IsActive: true},
	}, nil)

	day, err := newTestResolver(t, ss, bs, nil).Resolve(context.Background(), monday)
	require.NoError(t, err)

	assert.Equal(t, StatusBlocked, day.Status)
	assert.True(t, day.IsFullDayBlocked)
	assert.Empty(t, day.AvailableSlots)
	// Bookings are never consulted once the day is fully blocked.
	bs.AssertNotCalled(t, "ActiveSlotsByDate", mock.Anything, mock.Anything)
}

func TestResolve_NonWorkingIgnoresStrayBooking(t *testing.T) {
	ss := new(MockScheduleStore)
	bs := new(MockBookingStore)

	ss.On("GetDay", mock.Anything, 0).Return(&schedule.DaySchedule{Weekday: 0, IsWorking: false}, nil)

	day, err := newTestResolver(t, ss, bs, nil).Resolve(context.Background(), sunday)
	require.NoError(t, err)

	assert.Equal(t, StatusNonWorking, day.Status)
	assert.False(t, day.IsWorkingDay)
	assert.Empty(t, day.AvailableSlots)
	bs.AssertNotCalled(t, "ActiveSlotsByDate", mock.Anything, mock.Anything)
}

func TestResolve_UnionsMultipleBlockedRecords(t *testing.T) {
	ss := new(MockScheduleStore)
	bs := new(MockBookingStore)

	ss.On("GetDay", mock.Anything, 1).Return(workingDay(1, "12:30", "13:30", "14:30", "16:00"), nil)
	ss.On("ActiveBlockedDatesByDate", mock.Anything, monday).Return([]schedule.BlockedDate{
		{ID: 1, Date: monday, BlockedTimeSlots: []string{"12:30"}, IsActive: true},
		{ID: 2, Date: monday, BlockedTimeSlots: []string{"12:30", "13:30"}, IsActive: true},
	}, nil)
	bs.On("ActiveSlotsByDate", mock.Anything, monday).Return([]string{"13:30", "14:30"}, nil)

	day, err := newTestResolver(t, ss, bs, nil).Resolve(context.Background(), monday)
	require.NoError(t, err)

	// 13:30 is both blocked and booked but appears once per list, and the
	// set difference is not double-applied.
	assert.Equal(t, StatusPartial, day.Status)
	assert.Equal(t, []string{"12:30", "13:30"}, day.BlockedSlots)
	assert.Equal(t, []string{"13:30", "14:30"}, day.BookedSlots)
	assert.Equal(t, []string{"16:00"}, day.AvailableSlots)
}

func TestResolve_FullWhenEverySlotTaken(t *testing.T) {
	ss := new(MockScheduleStore)
	bs := new(MockBookingStore)

	ss.On("GetDay", mock.Anything, 1).Return(workingDay(1, "12:30", "13:30"), nil)
	ss.On("ActiveBlockedDatesByDate", mock.Anything, monday).Return([]schedule.BlockedDate{
		{ID: 1, Date: monday, BlockedTimeSlots: []string{"12:30"}, IsActive: true},
	}, nil)
	bs.On("ActiveSlotsByDate", mock.Anything, monday).Return([]string{"13:30"}, nil)

	day, err := newTestResolver(t, ss, bs, nil).Resolve(context.Background(), monday)
	require.NoError(t, err)

	assert.Equal(t, StatusFull, day.Status)
	assert.Empty(t, day.AvailableSlots)
}

func TestResolve_DefaultSlotFallback(t *testing.T) {
	ss := new(MockScheduleStore)
	bs := new(MockBookingStore)

	ss.On("GetDay", mock.Anything, 1).Return(workingDay(1), nil)
	ss.On("ActiveBlockedDatesByDate", mock.Anything, monday).Return([]schedule.BlockedDate{}, nil)
	bs.On("ActiveSlotsByDate", mock.Anything, monday).Return([]string{}, nil)

	day, err := newTestResolver(t, ss, bs, []string{"10:00", "11:00"}).Resolve(context.Background(), monday)
	require.NoError(t, err)

	assert.Equal(t, StatusAvailable, day.Status)
	assert.Equal(t, []string{"10:00", "11:00"}, day.AvailableSlots)
}

func TestResolve_ZeroSupplyWorkingDayIsFull(t *testing.T) {
	ss := new(MockScheduleStore)
	bs := new(MockBookingStore)

	ss.On("GetDay", mock.Anything, 1).Return(workingDay(1), nil)
	ss.On("ActiveBlockedDatesByDate", mock.Anything, monday).Return([]schedule.BlockedDate{}, nil)
	bs.On("ActiveSlotsByDate", mock.Anything, monday).Return([]string{}, nil)

	day, err := newTestResolver(t, ss, bs, nil).Resolve(context.Background(), monday)
	require.NoError(t, err)

	assert.Equal(t, StatusFull, day.Status)
	assert.Empty(t, day.AvailableSlots)
}

func TestResolve_Idempotent(t *testing.T) {
	ss := new(MockScheduleStore)
	bs := new(MockBookingStore)

	ss.On("GetDay", mock.Anything, 1).Return(workingDay(1, "12:30", "13:30", "14:30"), nil)
	ss.On("ActiveBlockedDatesByDate", mock.Anything, monday).Return([]schedule.BlockedDate{
		{ID: 1, Date: monday, BlockedTimeSlots: []string{"12:30"}, IsActive: true},
	}, nil)
	bs.On("ActiveSlotsByDate", mock.Anything, monday).Return([]string{"13:30"}, nil)

	r := newTestResolver(t, ss, bs, nil)

	first, err := r.Resolve(context.Background(), monday)
	require.NoError(t, err)
	second, err := r.Resolve(context.Background(), monday)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestResolve_NormalizesInstantInput(t *testing.T) {
	ss := new(MockScheduleStore)
	bs := new(MockBookingStore)

	// 23:30 UTC on Sunday is already Monday in the business timezone.
	ss.On("GetDay", mock.Anything, 1).Return(workingDay(1, "12:30"), nil)
	ss.On("ActiveBlockedDatesByDate", mock.Anything, monday).Return([]schedule.BlockedDate{}, nil)
	bs.On("ActiveSlotsByDate", mock.Anything, monday).Return([]string{}, nil)

	day, err := newTestResolver(t, ss, bs, nil).Resolve(context.Background(), "2025-06-08T23:30:00Z")
	require.NoError(t, err)

	assert.Equal(t, monday, day.Date)
	assert.Equal(t, 1, day.Weekday)
}

func TestResolve_InvalidDate(t *testing.T) {
	r := newTestResolver(t, new(MockScheduleStore), new(MockBookingStore), nil)

	_, err := r.Resolve(context.Background(), "30/06/2025")
	assert.Error(t, err)
}

func TestResolveMonth(t *testing.T) {
	ss := new(MockScheduleStore)
	bs := new(MockBookingStore)

	for wd := 0; wd <= 6; wd++ {
		if wd == 0 {
			ss.On("GetDay", mock.Anything, wd).Return(&schedule.DaySchedule{Weekday: wd, IsWorking: false}, nil)
			continue
		}
		ss.On("GetDay", mock.Anything, wd).Return(workingDay(wd, "12:30"), nil)
	}
	ss.On("ActiveBlockedDatesByDate", mock.Anything, mock.Anything).Return([]schedule.BlockedDate{}, nil)
	bs.On("ActiveSlotsByDate", mock.Anything, mock.Anything).Return([]string{}, nil)

	days, err := newTestResolver(t, ss, bs, nil).ResolveMonth(context.Background(), "2025-06")
	require.NoError(t, err)

	require.Len(t, days, 30)
	assert.Equal(t, "2025-06-01", days[0].Date)
	assert.Equal(t, "2025-06-30", days[29].Date)
	assert.Equal(t, StatusNonWorking, days[0].Status) // June 1st 2025 is a Sunday
	assert.Equal(t, StatusAvailable, days[1].Status)

	_, err = newTestResolver(t, ss, bs, nil).ResolveMonth(context.Background(), "junk")
	assert.Error(t, err)
}
