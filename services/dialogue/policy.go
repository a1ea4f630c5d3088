// File: services/dialogue/policy.go
package dialogue

import (
	"fmt"
	"strings"

	"vetchat/models"
)

// State is the conceptual dialogue state, re-derived each turn from intent
// and candidate completeness. It is never persisted.
type State int

const (
	StateIdle State = iota
	StateCollecting
	StateConfirming
	StateCommitted
)

// ActionKind enumerates the decisions the policy can take for one turn.
type ActionKind int

const (
	// ActionGeneral defers to the external text generator.
	ActionGeneral ActionKind = iota
	// ActionAskField prompts for the next missing field.
	ActionAskField
	// ActionCommit summarizes and commits the complete candidate. The
	// summary and the commit are a single step: the commit reply embeds the
	// full field summary instead of waiting for an explicit "yes".
	ActionCommit
)

// Action is the policy's decision for the current turn.
type Action struct {
	Kind  ActionKind
	Field Field // set for ActionAskField
}

// defaultFieldPrompts are the fixed per-field questions. Every prompt
// mentions the appointment so sticky intent keeps short answers like a bare
// name or "14:30" inside the booking flow.
var defaultFieldPrompts = map[Field]string{
	FieldOwnerName:     "Great, let's book your appointment! What's your name (pet owner's name)?",
	FieldPetName:       "What's your pet's name for the appointment?",
	FieldPhoneNumber:   "What's the best phone number to confirm your appointment?",
	FieldPreferredDate: "What date would you prefer for the appointment? (Please use MM/DD/YYYY format)",
	FieldPreferredTime: "What time would work best for your appointment? (Please use HH:MM format, e.g., 14:30)",
}

// Policy decides, per turn, whether to ask for a field, commit, or defer to
// the general answer path.
type Policy struct {
	prompts map[Field]string
}

// NewPolicy builds a policy with the given prompt overrides merged over the
// defaults.
func NewPolicy(overrides map[Field]string) *Policy {
	prompts := make(map[Field]string, len(defaultFieldPrompts))
	for f, p := range defaultFieldPrompts {
		prompts[f] = p
	}
	for f, p := range overrides {
		prompts[f] = p
	}
	return &Policy{prompts: prompts}
}

// Decide picks the next action from the classified intent and current
// candidate state.
func (p *Policy) Decide(intent Intent, c Candidate) Action {
	if intent != IntentAppointment {
		return Action{Kind: ActionGeneral}
	}
	if missing := Missing(c); len(missing) > 0 {
		return Action{Kind: ActionAskField, Field: missing[0]}
	}
	return Action{Kind: ActionCommit}
}

// StateOf derives the conceptual state for the current turn.
func (p *Policy) StateOf(intent Intent, c Candidate, committed bool) State {
	switch {
	case committed:
		return StateCommitted
	case intent != IntentAppointment:
		return StateIdle
	case c.Complete():
		return StateConfirming
	default:
		return StateCollecting
	}
}

// PromptFor returns the question text for a missing field.
func (p *Policy) PromptFor(f Field) string {
	if prompt, ok := p.prompts[f]; ok {
		return prompt
	}
	return "I need some additional information to book your appointment."
}

// Confirmation renders the commit reply: the booking summary with the
// generated identifier and the echoed fields.
func (p *Policy) Confirmation(appt *models.Appointment) string {
	return fmt.Sprintf(`Great! Your appointment has been booked successfully!

Appointment Confirmation
- Confirmation ID: %s
- Pet Owner: %s
- Pet Name: %s
- Date: %s
- Time: %s
- Status: %s

We'll contact you at %s to confirm the details. Is there anything else I can help you with?`,
		appt.ID, appt.OwnerName, appt.PetName,
		appt.PreferredDate.Format("01/02/2006"), appt.PreferredTime,
		appt.Status, appt.PhoneNumber)
}

// ValidationApology renders the recoverable validation-failure reply. The
// conversation stays in the collecting state so the user can resupply values.
func (p *Policy) ValidationApology(verr *ValidationError) string {
	return fmt.Sprintf("I'm sorry, there was an issue booking your appointment: %s. Please try again or contact us directly.",
		strings.Join(verr.Messages, ", "))
}
