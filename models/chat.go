package models

// ChatRequest is the payload coming from the frontend into /api/chat/message.
type ChatRequest struct {
	SessionID string            `json:"sessionId"` // optional; generated when empty
	Message   string            `json:"message" binding:"required,min=1,max=2000"`
	Context   map[string]string `json:"context,omitempty"` // opaque client context
}

// ChatResponse is what the chat handler returns to the frontend.
type ChatResponse struct {
	SessionID string `json:"sessionId"`
	Reply     string `json:"message"`
	Timestamp string `json:"timestamp"` // ISO-8601
}

// ReminderPayload is the asynq task payload for appointment reminders.
type ReminderPayload struct {
	AppointmentID string `json:"appointmentId"`
	SessionID     string `json:"sessionId"`
	OwnerName     string `json:"ownerName"`
	PetName       string `json:"petName"`
	PhoneNumber   string `json:"phoneNumber"`
	FireDate      string `json:"fireDate"` // RFC3339 timestamp the reminder fires at
}
