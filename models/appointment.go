package models

import "time"

// Appointment statuses.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
	StatusCompleted = "completed"
)

// ValidStatuses lists every status an appointment may transition to.
var ValidStatuses = []string{StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted}

// IsValidStatus reports whether s is an allowed appointment status.
func IsValidStatus(s string) bool {
	for _, v := range ValidStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// Appointment is a committed booking record. It is created only once all
// five candidate fields have been collected and validated.
type Appointment struct {
	ID            string    `bson:"id" json:"id"` // UUID
	SessionID     string    `bson:"session_id" json:"sessionId"`
	OwnerName     string    `bson:"owner_name" json:"ownerName"`
	PetName       string    `bson:"pet_name" json:"petName"`
	PhoneNumber   string    `bson:"phone_number" json:"phoneNumber"` // digits only, 10-15
	PreferredDate time.Time `bson:"preferred_date" json:"preferredDate"`
	PreferredTime string    `bson:"preferred_time" json:"preferredTime"` // "HH:MM", 24h
	Status        string    `bson:"status" json:"status"`
	Notes         string    `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt     time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt     time.Time `bson:"updated_at" json:"updatedAt"`
}

// AppointmentStats aggregates appointment counts per status.
type AppointmentStats struct {
	Total     int64 `json:"total"`
	Pending   int64 `json:"pending"`
	Confirmed int64 `json:"confirmed"`
	Completed int64 `json:"completed"`
	Cancelled int64 `json:"cancelled"`
	Recent    int64 `json:"recent"` // created within the last 30 days
}
