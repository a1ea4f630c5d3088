// File: services/dialogue/intent.go
package dialogue

import (
	"strings"

	"vetchat/models"
)

// Intent is the classified purpose of an utterance.
type Intent int

const (
	IntentGeneral Intent = iota
	IntentAppointment
)

// defaultIntentKeywords marks a message as appointment-directed.
var defaultIntentKeywords = []string{
	"appointment", "book", "schedule", "visit", "consultation",
	"checkup", "examination", "see a vet", "vet visit",
}

// Detector classifies utterances as appointment-directed or general.
// Classification is pure; it never mutates conversation state.
type Detector struct {
	keywords []string
}

// NewDetector builds a detector with the given keyword set, falling back to
// the default set when none is configured.
func NewDetector(keywords []string) *Detector {
	if len(keywords) == 0 {
		keywords = defaultIntentKeywords
	}
	lowered := make([]string, len(keywords))
	for i, k := range keywords {
		lowered[i] = strings.ToLower(k)
	}
	return &Detector{keywords: lowered}
}

// Classify returns IntentAppointment when the utterance contains any
// configured keyword, or when a prior bot turn already referenced
// "appointment" (sticky intent: mid-flow answers like "2pm" stay in the
// booking flow). Matching is case-insensitive substring, no stemming.
func (d *Detector) Classify(utterance string, prior []models.Turn) Intent {
	lower := strings.ToLower(utterance)
	for _, k := range d.keywords {
		if strings.Contains(lower, k) {
			return IntentAppointment
		}
	}
	for _, t := range prior {
		if t.Role == models.RoleBot && strings.Contains(strings.ToLower(t.Text), "appointment") {
			return IntentAppointment
		}
	}
	return IntentGeneral
}
