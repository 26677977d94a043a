package booking

import "time"

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

// Active reports whether the booking still occupies its slot.
func (s Status) Active() bool {
	return s == StatusPending || s == StatusConfirmed
}

type Booking struct {
	ID             int       `db:"id" json:"id"`
	Date           string    `db:"date" json:"date"`
	TimeSlot       string    `db:"time_slot" json:"time_slot"`
	TreatmentID    *int      `db:"treatment_id" json:"treatment_id,omitempty"`
	Status         Status    `db:"status" json:"status"`
	CustomerName   string    `db:"customer_name" json:"customer_name"`
	CustomerEmail  string    `db:"customer_email" json:"customer_email"`
	CustomerPhone  string    `db:"customer_phone" json:"customer_phone"`
	CustomerGender string    `db:"customer_gender" json:"customer_gender"`
	Notes          string    `db:"notes" json:"notes"`
	ReminderSent   bool      `db:"reminder_sent" json:"reminder_sent"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time `db:"updated_at" json:"updated_at"`
}

// BookingWithTreatment joins the booked treatment's name for notifications
// and admin listings.
type BookingWithTreatment struct {
	Booking
	TreatmentName *string `db:"treatment_name" json:"treatment_name,omitempty"`
}

type CreateBookingRequest struct {
	Date           string `json:"date" binding:"required"`
	TimeSlot       string `json:"time_slot" binding:"required,timeslot"`
	TreatmentID    *int   `json:"treatment_id"`
	CustomerName   string `json:"customer_name" binding:"required"`
	CustomerEmail  string `json:"customer_email" binding:"required,email"`
	CustomerPhone  string `json:"customer_phone"`
	CustomerGender string `json:"customer_gender" binding:"omitempty,oneof=female male other"`
	Notes          string `json:"notes"`
}

type BookedSlotsResponse struct {
	Date        string   `json:"date"`
	BookedSlots []string `json:"booked_slots"`
}
