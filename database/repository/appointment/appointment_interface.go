package appointmentRepo

import "vetchat/models"

// AppointmentRepository defines the interface for appointment data access.
type AppointmentRepository interface {
	// Insert persists a new appointment record.
	Insert(appt *models.Appointment) error
	// GetByID fetches a single appointment by its ID.
	GetByID(id string) (*models.Appointment, error)
	// FindBySession lists appointments for a session, newest first.
	FindBySession(sessionID string) ([]models.Appointment, error)
	// UpdateStatus transitions an appointment to the given status and returns
	// the updated record, or an error when the appointment does not exist.
	UpdateStatus(id, status string) (*models.Appointment, error)
	// GetAll returns a page of appointments plus the total count.
	GetAll(page, limit int64) ([]models.Appointment, int64, error)
	// Stats aggregates appointment counts per status.
	Stats() (*models.AppointmentStats, error)
}
