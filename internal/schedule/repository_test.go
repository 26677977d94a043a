package schedule

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupMock(t *testing.T) (Repository, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	repo := NewRepository(sqlxDB)

	return repo, mock, func() { db.Close() }
}

func TestRepoGetWeek(t *testing.T) {
	repo, mock, closer := setupMock(t)
	defer closer()

	rows := sqlmock.NewRows([]string{"weekday", "is_working", "time_slots", "updated_at"}).
		AddRow(0, false, pq.StringArray{}, time.Now()).
		AddRow(1, true, pq.StringArray{"12:30", "13:30"}, time.Now())

	mock.ExpectQuery(regexp.QuoteMeta("FROM weekly_schedule")).WillReturnRows(rows)

	days, err := repo.GetWeek(context.Background())
	require.NoError(t, err)
	require.Len(t, days, 2)
	assert.False(t, days[0].IsWorking)
	assert.Equal(t, pq.StringArray{"12:30", "13:30"}, days[1].TimeSlots)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepoGetDay(t *testing.T) {
	repo, mock, closer := setupMock(t)
	defer closer()

	t.Run("Found", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"weekday", "is_working", "time_slots", "updated_at"}).
			AddRow(3, true, pq.StringArray{"16:00"}, time.Now())

		mock.ExpectQuery(regexp.QuoteMeta("WHERE weekday = $1")).
			WithArgs(3).
			WillReturnRows(rows)

		day, err := repo.GetDay(context.Background(), 3)
		require.NoError(t, err)
		assert.Equal(t, 3, day.Weekday)
		assert.True(t, day.IsWorking)
	})

	t.Run("Not found", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("WHERE weekday = $1")).
			WithArgs(5).
			WillReturnRows(sqlmock.NewRows([]string{"weekday", "is_working", "time_slots", "updated_at"}))

		_, err := repo.GetDay(context.Background(), 5)
		assert.ErrorIs(t, err, ErrDayNotFound)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepoUpdateDay(t *testing.T) {
	repo, mock, closer := setupMock(t)
	defer closer()

	rows := sqlmock.NewRows([]string{"weekday", "is_working", "time_slots", "updated_at"}).
		AddRow(2, true, pq.StringArray{"10:00", "11:00"}, time.Now())

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO weekly_schedule")).
		WithArgs(2, true, pq.StringArray{"10:00", "11:00"}).
		WillReturnRows(rows)

	day, err := repo.UpdateDay(context.Background(), 2, true, []string{"10:00", "11:00"})
	require.NoError(t, err)
	assert.Equal(t, 2, day.Weekday)
	assert.Equal(t, pq.StringArray{"10:00", "11:00"}, day.TimeSlots)
	assert.NoError(t, mock.ExpectationsWereMet())
}

var blockedDateColumns = []string{"id", "date", "blocked_time_slots", "is_active", "reason", "created_at", "updated_at"}

func TestRepoCreateBlockedDate(t *testing.T) {
	repo, mock, closer := setupMock(t)
	defer closer()

	t.Run("Full day", func(t *testing.T) {
		rows := sqlmock.NewRows(blockedDateColumns).
			AddRow(1, "2030-01-07", pq.StringArray{}, true, "maintenance", time.Now(), time.Now())

		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO blocked_dates")).
			WithArgs("2030-01-07", pq.StringArray{}, "maintenance").
			WillReturnRows(rows)

		bd, err := repo.CreateBlockedDate(context.Background(), "2030-01-07", []string{}, "maintenance")
		require.NoError(t, err)
		assert.True(t, bd.IsFullDayBlocked)
	})

	t.Run("Partial day", func(t *testing.T) {
		rows := sqlmock.NewRows(blockedDateColumns).
			AddRow(2, "2030-01-08", pq.StringArray{"12:30"}, true, "", time.Now(), time.Now())

		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO blocked_dates")).
			WithArgs("2030-01-08", pq.StringArray{"12:30"}, "").
			WillReturnRows(rows)

		bd, err := repo.CreateBlockedDate(context.Background(), "2030-01-08", []string{"12:30"}, "")
		require.NoError(t, err)
		assert.False(t, bd.IsFullDayBlocked)
		assert.Equal(t, pq.StringArray{"12:30"}, bd.BlockedTimeSlots)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepoGetBlockedDateByID(t *testing.T) {
	repo, mock, closer := setupMock(t)
	defer closer()

	t.Run("Found", func(t *testing.T) {
		rows := sqlmock.NewRows(blockedDateColumns).
			AddRow(3, "2030-01-07", pq.StringArray{}, true, "holiday", time.Now(), time.Now())

		mock.ExpectQuery(regexp.QuoteMeta("FROM blocked_dates")).
			WithArgs(3).
			WillReturnRows(rows)

		bd, err := repo.GetBlockedDateByID(context.Background(), 3)
		require.NoError(t, err)
		assert.True(t, bd.IsFullDayBlocked)
		assert.Equal(t, "holiday", bd.Reason)
	})

	t.Run("Not found", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("FROM blocked_dates")).
			WithArgs(99).
			WillReturnRows(sqlmock.NewRows(blockedDateColumns))

		_, err := repo.GetBlockedDateByID(context.Background(), 99)
		assert.ErrorIs(t, err, ErrBlockedDateNotFound)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepoListBlockedDates(t *testing.T) {
	repo, mock, closer := setupMock(t)
	defer closer()

	rows := sqlmock.NewRows(blockedDateColumns).
		AddRow(1, "2030-01-07", pq.StringArray{}, true, "", time.Now(), time.Now()).
		AddRow(2, "2030-01-09", pq.StringArray{"16:00"}, true, "", time.Now(), time.Now())

	mock.ExpectQuery(regexp.QuoteMeta("is_active = true")).
		WithArgs("2030-01-01", "2030-01-31").
		WillReturnRows(rows)

	dates, err := repo.ListBlockedDates(context.Background(), "2030-01-01", "2030-01-31", true)
	require.NoError(t, err)
	require.Len(t, dates, 2)
	assert.True(t, dates[0].IsFullDayBlocked)
	assert.False(t, dates[1].IsFullDayBlocked)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepoActiveBlockedDatesByDate(t *testing.T) {
	repo, mock, closer := setupMock(t)
	defer closer()

	rows := sqlmock.NewRows(blockedDateColumns).
		AddRow(1, "2030-01-07", pq.StringArray{"12:30"}, true, "", time.Now(), time.Now())

	mock.ExpectQuery(regexp.QuoteMeta("WHERE date = $1 AND is_active = true")).
		WithArgs("2030-01-07").
		WillReturnRows(rows)

	dates, err := repo.ActiveBlockedDatesByDate(context.Background(), "2030-01-07")
	require.NoError(t, err)
	require.Len(t, dates, 1)
	assert.Equal(t, "2030-01-07", dates[0].Date)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepoUpdateBlockedDate(t *testing.T) {
	repo, mock, closer := setupMock(t)
	defer closer()

	t.Run("Found", func(t *testing.T) {
		rows := sqlmock.NewRows(blockedDateColumns).
			AddRow(1, "2030-01-07", pq.StringArray{"13:30"}, true, "updated", time.Now(), time.Now())

		mock.ExpectQuery(regexp.QuoteMeta("UPDATE blocked_dates")).
			WithArgs(1, pq.StringArray{"13:30"}, "updated").
			WillReturnRows(rows)

		bd, err := repo.UpdateBlockedDate(context.Background(), 1, []string{"13:30"}, "updated")
		require.NoError(t, err)
		assert.Equal(t, "updated", bd.Reason)
	})

	t.Run("Not found", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("UPDATE blocked_dates")).
			WithArgs(99, pq.StringArray{}, "").
			WillReturnRows(sqlmock.NewRows(blockedDateColumns))

		_, err := repo.UpdateBlockedDate(context.Background(), 99, []string{}, "")
		assert.ErrorIs(t, err, ErrBlockedDateNotFound)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepoDatabaseErrorsPassThrough(t *testing.T) {
	repo, mock, closer := setupMock(t)
	defer closer()

	// Only an empty result set maps to a not-found sentinel; a failing
	// database surfaces as-is.
	dbErr := errors.New("connection refused")

	mock.ExpectQuery(regexp.QuoteMeta("WHERE weekday = $1")).
		WithArgs(1).
		WillReturnError(dbErr)

	_, err := repo.GetDay(context.Background(), 1)
	require.ErrorIs(t, err, dbErr)
	require.NotErrorIs(t, err, ErrDayNotFound)

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE blocked_dates")).
		WithArgs(1, pq.StringArray{}, "").
		WillReturnError(dbErr)

	_, err = repo.UpdateBlockedDate(context.Background(), 1, []string{}, "")
	require.ErrorIs(t, err, dbErr)
	require.NotErrorIs(t, err, ErrBlockedDateNotFound)
}

func TestRepoDeactivateBlockedDate(t *testing.T) {
	repo, mock, closer := setupMock(t)
	defer closer()

	t.Run("Found", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("SET is_active = false")).
			WithArgs(1).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.DeactivateBlockedDate(context.Background(), 1)
		assert.NoError(t, err)
	})

	t.Run("Already inactive", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("SET is_active = false")).
			WithArgs(1).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.DeactivateBlockedDate(context.Background(), 1)
		assert.ErrorIs(t, err, ErrBlockedDateNotFound)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}
