package schedule

import (
	"time"

	"github.com/lib/pq"
)

// DaySchedule is one row of the weekly template, weekday 0=Sunday..6=Saturday.
// When IsWorking is false the slot list is ignored.
type DaySchedule struct {
	Weekday   int            `db:"weekday" json:"weekday"`
	IsWorking bool           `db:"is_working" json:"is_working"`
	TimeSlots pq.StringArray `db:"time_slots" json:"time_slots" swaggertype:"array,string"`
	UpdatedAt time.Time      `db:"updated_at" json:"updated_at"`
}

// BlockedDate is an admin override for a single calendar date. An empty
// slot list blocks the whole day. Several active records may exist for
// the same date; consumers union them.
type BlockedDate struct {
	ID               int            `db:"id" json:"id"`
	Date             string         `db:"date" json:"date"`
	BlockedTimeSlots pq.StringArray `db:"blocked_time_slots" json:"blocked_time_slots" swaggertype:"array,string"`
	IsActive         bool           `db:"is_active" json:"is_active"`
	// Derived from BlockedTimeSlots on every read, never stored.
	IsFullDayBlocked bool      `db:"-" json:"is_full_day_blocked"`
	Reason           string    `db:"reason" json:"reason"`
	CreatedAt        time.Time `db:"created_at" json:"created_at"`
	UpdatedAt        time.Time `db:"updated_at" json:"updated_at"`
}

func (b *BlockedDate) derive() {
	b.IsFullDayBlocked = len(b.BlockedTimeSlots) == 0
}

type UpdateDayRequest struct {
	IsWorking bool     `json:"is_working"`
	TimeSlots []string `json:"time_slots"`
}

type CreateBlockedDateRequest struct {
	Date             string   `json:"date" binding:"required"`
	BlockedTimeSlots []string `json:"blocked_time_slots"`
	Reason           string   `json:"reason"`
}

type UpdateBlockedDateRequest struct {
	BlockedTimeSlots []string `json:"blocked_time_slots"`
	Reason           string   `json:"reason"`
}
