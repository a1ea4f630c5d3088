// File: services/dialogue/extractor.go
package dialogue

import (
	"regexp"
	"strings"
	"time"
)

// Pattern families for the five appointment fields. Extraction is a
// best-effort heuristic, not a parser; anything that does not match is
// silently skipped.
var (
	ownerNameRe = regexp.MustCompile(`(?i)\b(?:my name is|i'm|i am)\s+([a-zA-Z][a-zA-Z\s]*)`)
	petNameRe   = regexp.MustCompile(`(?i)\b(?:pet's name is|pet is|dog is|cat is)\s+([a-zA-Z][a-zA-Z\s]*)`)
	phoneRe     = regexp.MustCompile(`\+?[\d\s\-()]{10,}`)
	dateRe      = regexp.MustCompile(`\b\d{1,2}/\d{1,2}/\d{4}\b`)
	timeRe      = regexp.MustCompile(`\b\d{1,2}:\d{2}\b`)
	nonDigitRe  = regexp.MustCompile(`\D`)
)

// Extract pulls candidate field values out of a single utterance. Every
// pattern family is tried independently, so one message may yield several
// fields. A returned candidate holds only fields whose shape checked out.
func Extract(text string) Candidate {
	var c Candidate

	if m := ownerNameRe.FindStringSubmatch(text); m != nil {
		c.OwnerName = strings.TrimSpace(m[1])
	}
	if m := petNameRe.FindStringSubmatch(text); m != nil {
		c.PetName = strings.TrimSpace(m[1])
	}
	if m := phoneRe.FindString(text); m != "" {
		digits := nonDigitRe.ReplaceAllString(m, "")
		if len(digits) >= 10 && len(digits) <= 15 {
			c.PhoneNumber = digits
		}
	}
	if m := dateRe.FindString(text); m != "" {
		if d, err := time.Parse("1/2/2006", m); err == nil {
			c.PreferredDate = &d
		}
	}
	if m := timeRe.FindString(text); m != "" {
		// Stored as-is; 24-hour convention is assumed and AM/PM is not
		// disambiguated. Range checking happens at commit time.
		c.PreferredTime = m
	}

	return c
}
