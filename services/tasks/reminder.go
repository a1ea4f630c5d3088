package tasks

import (
	"encoding/json"
	"fmt"
	"time"

	"vetchat/config"
	"vetchat/models"

	"github.com/hibiken/asynq"
)

const TypeAppointmentReminder = "appointment:reminder"

// reminderLeadTime is how long before the appointment the reminder fires.
const reminderLeadTime = 24 * time.Hour

// ReminderService enqueues delayed appointment reminder tasks.
type ReminderService struct {
	client *asynq.Client
}

// NewReminderService builds a reminder service on a fresh asynq client.
func NewReminderService() *ReminderService {
	client := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})
	return &ReminderService{client: client}
}

// ScheduleReminder enqueues a reminder 24h before the appointment slot, or
// right away when the slot is closer than that.
func (s *ReminderService) ScheduleReminder(appt *models.Appointment) error {
	fireAt := reminderFireTime(appt)

	payload := models.ReminderPayload{
		AppointmentID: appt.ID,
		SessionID:     appt.SessionID,
		OwnerName:     appt.OwnerName,
		PetName:       appt.PetName,
		PhoneNumber:   appt.PhoneNumber,
		FireDate:      fireAt.Format(time.RFC3339),
	}
	b, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal reminder payload: %w", err)
	}

	task := asynq.NewTask(TypeAppointmentReminder, b)
	if _, err := s.client.Enqueue(task, asynq.ProcessAt(fireAt), asynq.Queue("default")); err != nil {
		return fmt.Errorf("failed to enqueue reminder for appointment %s: %w", appt.ID, err)
	}
	return nil
}

// reminderFireTime combines the preferred date and time and subtracts the
// lead time. Slots within the lead window fire a minute from now.
func reminderFireTime(appt *models.Appointment) time.Time {
	slot := appt.PreferredDate
	if t, err := time.Parse("15:04", appt.PreferredTime); err == nil {
		slot = time.Date(slot.Year(), slot.Month(), slot.Day(),
			t.Hour(), t.Minute(), 0, 0, slot.Location())
	}

	fireAt := slot.Add(-reminderLeadTime)
	if fireAt.Before(time.Now()) {
		fireAt = time.Now().Add(time.Minute)
	}
	return fireAt
}
