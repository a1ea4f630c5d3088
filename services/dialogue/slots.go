// File: services/dialogue/slots.go
package dialogue

import (
	"time"

	"vetchat/models"
)

// Field identifies one appointment slot.
type Field string

const (
	FieldOwnerName     Field = "ownerName"
	FieldPetName       Field = "petName"
	FieldPhoneNumber   Field = "phoneNumber"
	FieldPreferredDate Field = "preferredDate"
	FieldPreferredTime Field = "preferredTime"
)

// fieldOrder is the canonical slot order. Missing fields are always reported
// in this order so the next question asked is deterministic.
var fieldOrder = []Field{
	FieldOwnerName,
	FieldPetName,
	FieldPhoneNumber,
	FieldPreferredDate,
	FieldPreferredTime,
}

// Candidate is the in-progress appointment record derived from a
// conversation's user turns. It is recomputed, never persisted.
type Candidate struct {
	OwnerName     string     `json:"ownerName,omitempty"`
	PetName       string     `json:"petName,omitempty"`
	PhoneNumber   string     `json:"phoneNumber,omitempty"`
	PreferredDate *time.Time `json:"preferredDate,omitempty"`
	PreferredTime string     `json:"preferredTime,omitempty"`
}

// Has reports whether the given field is populated.
func (c Candidate) Has(f Field) bool {
	switch f {
	case FieldOwnerName:
		return c.OwnerName != ""
	case FieldPetName:
		return c.PetName != ""
	case FieldPhoneNumber:
		return c.PhoneNumber != ""
	case FieldPreferredDate:
		return c.PreferredDate != nil
	case FieldPreferredTime:
		return c.PreferredTime != ""
	}
	return false
}

// Complete reports whether all five fields are populated.
func (c Candidate) Complete() bool {
	return len(Missing(c)) == 0
}

// Aggregate derives the candidate from a conversation history. Only user
// turns are scanned, in conversation order; the first value found for a field
// wins and is never overwritten within the same pass. The result is
// deterministic for a given turn sequence.
func Aggregate(turns []models.Turn) Candidate {
	return AggregateFrom(Candidate{}, turns)
}

// AggregateFrom resumes aggregation from a previously derived candidate and
// the turns appended since. Because first-wins aggregation is monotonic, the
// result equals a full recomputation over the whole history.
func AggregateFrom(base Candidate, turns []models.Turn) Candidate {
	c := base
	for _, t := range turns {
		if t.Role != models.RoleUser {
			continue
		}
		if c.Complete() {
			break
		}
		c = merge(c, Extract(t.Text))
	}
	return c
}

// merge fills fields of c that are still unset from next.
func merge(c, next Candidate) Candidate {
	if c.OwnerName == "" {
		c.OwnerName = next.OwnerName
	}
	if c.PetName == "" {
		c.PetName = next.PetName
	}
	if c.PhoneNumber == "" {
		c.PhoneNumber = next.PhoneNumber
	}
	if c.PreferredDate == nil {
		c.PreferredDate = next.PreferredDate
	}
	if c.PreferredTime == "" {
		c.PreferredTime = next.PreferredTime
	}
	return c
}

// Missing returns the unpopulated fields in canonical order.
func Missing(c Candidate) []Field {
	var missing []Field
	for _, f := range fieldOrder {
		if !c.Has(f) {
			missing = append(missing, f)
		}
	}
	return missing
}
