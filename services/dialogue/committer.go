// File: services/dialogue/committer.go
package dialogue

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	appointmentRepo "vetchat/database/repository/appointment"
	"vetchat/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	phoneDigitsRe = regexp.MustCompile(`^\d{10,15}$`)
	clockTimeRe   = regexp.MustCompile(`^([01]?[0-9]|2[0-3]):[0-5][0-9]$`)
)

// ValidationError reports why a candidate could not be committed. It is
// recoverable: the dialogue stays in the collecting state.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Messages, ", ")
}

// ReminderScheduler schedules a follow-up reminder for a booked appointment.
type ReminderScheduler interface {
	ScheduleReminder(appt *models.Appointment) error
}

// Committer validates a complete candidate and persists it as an appointment.
type Committer struct {
	Repo      appointmentRepo.AppointmentRepository
	Reminders ReminderScheduler // optional
	Logger    *zap.Logger
}

// Validate applies the commit rules and returns human-readable messages for
// every failing field.
func Validate(c Candidate) []string {
	var errs []string

	if len(c.OwnerName) < 2 {
		errs = append(errs, "pet owner name must be at least 2 characters")
	}
	if len(c.PetName) < 1 {
		errs = append(errs, "pet name is required")
	}
	if !phoneDigitsRe.MatchString(c.PhoneNumber) {
		errs = append(errs, "valid phone number is required")
	}
	if c.PreferredDate == nil || !c.PreferredDate.After(time.Now()) {
		errs = append(errs, "preferred date must be in the future")
	}
	if !clockTimeRe.MatchString(c.PreferredTime) {
		errs = append(errs, "valid time format required (HH:MM)")
	}

	return errs
}

// Commit validates the candidate and persists it with status pending. On
// validation failure it returns a *ValidationError and writes nothing.
func (cm *Committer) Commit(sessionID string, c Candidate) (*models.Appointment, error) {
	if errs := Validate(c); len(errs) > 0 {
		return nil, &ValidationError{Messages: errs}
	}

	appt := &models.Appointment{
		ID:            uuid.New().String(),
		SessionID:     sessionID,
		OwnerName:     c.OwnerName,
		PetName:       c.PetName,
		PhoneNumber:   c.PhoneNumber,
		PreferredDate: *c.PreferredDate,
		PreferredTime: c.PreferredTime,
		Status:        models.StatusPending,
	}
	if err := cm.Repo.Insert(appt); err != nil {
		return nil, fmt.Errorf("failed to commit appointment: %w", err)
	}

	// The booking itself succeeded; a reminder that cannot be queued is not
	// worth failing the whole turn over.
	if cm.Reminders != nil {
		if err := cm.Reminders.ScheduleReminder(appt); err != nil && cm.Logger != nil {
			cm.Logger.Warn("failed to schedule appointment reminder",
				zap.String("appointmentId", appt.ID), zap.Error(err))
		}
	}

	return appt, nil
}
