package dialogue

import (
	"testing"
	"time"

	"vetchat/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func userTurn(text string) models.Turn {
	return models.Turn{Role: models.RoleUser, Text: text, CreatedAt: time.Now()}
}

func botTurn(text string) models.Turn {
	return models.Turn{Role: models.RoleBot, Text: text, CreatedAt: time.Now()}
}

func TestAggregateIsIdempotent(t *testing.T) {
	turns := []models.Turn{
		userTurn("I want to book an appointment"),
		userTurn("my name is Jane Doe"),
		userTurn("pet is Rex"),
	}

	first := Aggregate(turns)
	second := Aggregate(turns)
	assert.Equal(t, first, second)
}

func TestAggregateFirstValueWins(t *testing.T) {
	turns := []models.Turn{
		userTurn("pet is Rex"),
		userTurn("pet is Max"),
	}

	c := Aggregate(turns)
	assert.Equal(t, "Rex", c.PetName)
}

func TestAggregateIgnoresBotTurns(t *testing.T) {
	turns := []models.Turn{
		botTurn("my name is VetChat"),
		userTurn("my name is Jane Doe"),
	}

	c := Aggregate(turns)
	assert.Equal(t, "Jane Doe", c.OwnerName)
}

func TestAggregateFromResumesCheckpoint(t *testing.T) {
	all := []models.Turn{
		userTurn("my name is Jane Doe"),
		userTurn("pet is Rex"),
		userTurn("pet is Max"),
		userTurn("phone 5551234567"),
	}

	base := Aggregate(all[:2])
	resumed := AggregateFrom(base, all[2:])
	assert.Equal(t, Aggregate(all), resumed)
	assert.Equal(t, "Rex", resumed.PetName)
	assert.Equal(t, "5551234567", resumed.PhoneNumber)
}

func TestMissingCanonicalOrder(t *testing.T) {
	// Fields discovered out of canonical order must still be reported in it.
	c := Aggregate([]models.Turn{
		userTurn("14:30"),
		userTurn("phone 5551234567"),
	})

	assert.Equal(t, []Field{FieldOwnerName, FieldPetName, FieldPreferredDate}, Missing(c))
}

func TestMissingEmptyAndComplete(t *testing.T) {
	assert.Equal(t, fieldOrder, Missing(Candidate{}))

	d := time.Now().AddDate(0, 1, 0)
	full := Candidate{
		OwnerName:     "Jane Doe",
		PetName:       "Rex",
		PhoneNumber:   "5551234567",
		PreferredDate: &d,
		PreferredTime: "14:30",
	}
	require.Empty(t, Missing(full))
	assert.True(t, full.Complete())
}
