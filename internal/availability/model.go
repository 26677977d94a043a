package availability

type Status string

const (
	StatusAvailable  Status = "available"
	StatusPartial    Status = "partial"
	StatusFull       Status = "full"
	StatusBlocked    Status = "blocked"
	StatusNonWorking Status = "non-working"
)

// DayStatus is the resolved state of a single civil date. It is derived
// on every query and never persisted.
type DayStatus struct {
	Date             string   `json:"date"`
	Weekday          int      `json:"weekday"`
	Status           Status   `json:"status"`
	IsWorkingDay     bool     `json:"is_working_day"`
	IsFullDayBlocked bool     `json:"is_full_day_blocked"`
	OfferedSlots     []string `json:"offered_slots"`
	BlockedSlots     []string `json:"blocked_slots"`
	BookedSlots      []string `json:"booked_slots"`
	AvailableSlots   []string `json:"available_slots"`
}

// HasSlot reports whether the weekday's schedule offers the slot at all.
func (d *DayStatus) HasSlot(slot string) bool {
	for _, s := range d.OfferedSlots {
		if s == slot {
			return true
		}
	}
	return false
}

// SlotBlocked reports whether the slot is blocked by an admin override.
func (d *DayStatus) SlotBlocked(slot string) bool {
	if d.IsFullDayBlocked {
		return true
	}
	for _, s := range d.BlockedSlots {
		if s == slot {
			return true
		}
	}
	return false
}

// SlotBooked reports whether an active booking already occupies the slot.
func (d *DayStatus) SlotBooked(slot string) bool {
	for _, s := range d.BookedSlots {
		if s == slot {
			return true
		}
	}
	return false
}
