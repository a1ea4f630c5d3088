package dialogue

import (
	"strings"
	"testing"
	"time"

	"vetchat/models"

	"github.com/stretchr/testify/assert"
)

func completeCandidate() Candidate {
	d := time.Now().AddDate(0, 1, 0)
	return Candidate{
		OwnerName:     "Jane Doe",
		PetName:       "Rex",
		PhoneNumber:   "5551234567",
		PreferredDate: &d,
		PreferredTime: "14:30",
	}
}

func TestDecideGeneralIntent(t *testing.T) {
	p := NewPolicy(nil)
	assert.Equal(t, ActionGeneral, p.Decide(IntentGeneral, Candidate{}).Kind)
}

func TestDecideAsksNextMissingFieldInCanonicalOrder(t *testing.T) {
	p := NewPolicy(nil)

	action := p.Decide(IntentAppointment, Candidate{})
	assert.Equal(t, ActionAskField, action.Kind)
	assert.Equal(t, FieldOwnerName, action.Field)

	action = p.Decide(IntentAppointment, Candidate{OwnerName: "Jane Doe", PreferredTime: "14:30"})
	assert.Equal(t, FieldPetName, action.Field)
}

func TestDecideCommitsCompleteCandidate(t *testing.T) {
	p := NewPolicy(nil)
	assert.Equal(t, ActionCommit, p.Decide(IntentAppointment, completeCandidate()).Kind)
}

func TestStateOf(t *testing.T) {
	p := NewPolicy(nil)

	assert.Equal(t, StateIdle, p.StateOf(IntentGeneral, Candidate{}, false))
	assert.Equal(t, StateCollecting, p.StateOf(IntentAppointment, Candidate{}, false))
	assert.Equal(t, StateConfirming, p.StateOf(IntentAppointment, completeCandidate(), false))
	assert.Equal(t, StateCommitted, p.StateOf(IntentAppointment, completeCandidate(), true))
}

func TestEveryPromptKeepsIntentSticky(t *testing.T) {
	p := NewPolicy(nil)

	// Sticky intent matches on "appointment" in bot turns; a prompt that
	// does not mention it would drop the user out of the booking flow.
	for _, f := range fieldOrder {
		assert.Contains(t, strings.ToLower(p.PromptFor(f)), "appointment", "field %s", f)
	}
}

func TestPromptOverrides(t *testing.T) {
	p := NewPolicy(map[Field]string{FieldPetName: "Who is the appointment for?"})

	assert.Equal(t, "Who is the appointment for?", p.PromptFor(FieldPetName))
	assert.Equal(t, defaultFieldPrompts[FieldOwnerName], p.PromptFor(FieldOwnerName))
}

func TestConfirmationEchoesFields(t *testing.T) {
	p := NewPolicy(nil)
	appt := &models.Appointment{
		ID:            "abc-123",
		OwnerName:     "Jane Doe",
		PetName:       "Rex",
		PhoneNumber:   "5551234567",
		PreferredDate: time.Date(2027, time.March, 15, 0, 0, 0, 0, time.UTC),
		PreferredTime: "14:30",
		Status:        models.StatusPending,
	}

	msg := p.Confirmation(appt)
	for _, want := range []string{"abc-123", "Jane Doe", "Rex", "5551234567", "03/15/2027", "14:30", "pending"} {
		assert.Contains(t, msg, want)
	}
}

func TestValidationApologyListsMessages(t *testing.T) {
	p := NewPolicy(nil)
	msg := p.ValidationApology(&ValidationError{Messages: []string{
		"preferred date must be in the future",
	}})

	assert.Contains(t, msg, "preferred date must be in the future")
	assert.Contains(t, strings.ToLower(msg), "sorry")
}
