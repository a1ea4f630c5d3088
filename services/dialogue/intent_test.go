package dialogue

import (
	"testing"

	"vetchat/models"

	"github.com/stretchr/testify/assert"
)

func TestClassifyKeywords(t *testing.T) {
	d := NewDetector(nil)

	appointment := []string{
		"I want to book an appointment",
		"Can I schedule a visit?",
		"my dog needs a CHECKUP",
		"I'd like to see a vet tomorrow",
	}
	for _, u := range appointment {
		assert.Equal(t, IntentAppointment, d.Classify(u, nil), "utterance: %q", u)
	}

	general := []string{
		"How often should I feed my puppy?",
		"what vaccines does a kitten need",
	}
	for _, u := range general {
		assert.Equal(t, IntentGeneral, d.Classify(u, nil), "utterance: %q", u)
	}
}

func TestClassifyStickyIntent(t *testing.T) {
	d := NewDetector(nil)

	prior := []models.Turn{
		{Role: models.RoleUser, Text: "I want to book an appointment"},
		{Role: models.RoleBot, Text: "Great, let's book your appointment! What's your name (pet owner's name)?"},
	}

	// No keywords in the utterance, but a prior bot turn referenced the
	// appointment, so the flow stays appointment-directed.
	assert.Equal(t, IntentAppointment, d.Classify("John", prior))
	assert.Equal(t, IntentAppointment, d.Classify("14:30", prior))
}

func TestClassifyUserTurnsDoNotStick(t *testing.T) {
	d := NewDetector(nil)

	// Only bot turns carry stickiness.
	prior := []models.Turn{
		{Role: models.RoleUser, Text: "appointment stuff"},
		{Role: models.RoleBot, Text: "How can I help?"},
	}
	assert.Equal(t, IntentGeneral, d.Classify("John", prior))
}

func TestClassifyCustomKeywords(t *testing.T) {
	d := NewDetector([]string{"termin"})

	assert.Equal(t, IntentAppointment, d.Classify("Ich brauche einen Termin", nil))
	assert.Equal(t, IntentGeneral, d.Classify("I want to book an appointment", nil))
}
