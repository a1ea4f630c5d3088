package dialogue

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractOwnerName(t *testing.T) {
	cases := map[string]string{
		"my name is Jane Doe":      "Jane Doe",
		"Hi, I'm Bob":              "Bob",
		"i am Alice Smith, thanks": "Alice Smith",
	}
	for text, want := range cases {
		c := Extract(text)
		assert.Equal(t, want, c.OwnerName, "input: %q", text)
	}
}

func TestExtractPetName(t *testing.T) {
	cases := map[string]string{
		"my pet's name is Whiskers": "Whiskers",
		"pet is Rex":                "Rex",
		"my dog is Buddy":           "Buddy",
		"the cat is Luna":           "Luna",
	}
	for text, want := range cases {
		c := Extract(text)
		assert.Equal(t, want, c.PetName, "input: %q", text)
	}
}

func TestExtractPhoneNumber(t *testing.T) {
	c := Extract("call me at +1 (555) 123-4567")
	assert.Equal(t, "15551234567", c.PhoneNumber)

	c = Extract("phone 5551234567")
	assert.Equal(t, "5551234567", c.PhoneNumber)

	// Too few digits after stripping: field stays unset.
	c = Extract("call 555-1234")
	assert.Empty(t, c.PhoneNumber)
}

func TestExtractDate(t *testing.T) {
	c := Extract("how about 03/15/2027?")
	require.NotNil(t, c.PreferredDate)
	assert.Equal(t, time.Date(2027, time.March, 15, 0, 0, 0, 0, time.UTC), *c.PreferredDate)

	// Matches the literal shape but is not a real calendar date.
	c = Extract("13/45/2027 works")
	assert.Nil(t, c.PreferredDate)
}

func TestExtractTime(t *testing.T) {
	assert.Equal(t, "14:30", Extract("14:30 please").PreferredTime)
	assert.Equal(t, "9:05", Extract("around 9:05").PreferredTime)
}

func TestExtractMultipleFieldsFromOneUtterance(t *testing.T) {
	c := Extract("pet is Rex, phone 5551234567, 03/15/2027 at 14:30")
	assert.Equal(t, "Rex", c.PetName)
	assert.Equal(t, "5551234567", c.PhoneNumber)
	assert.NotNil(t, c.PreferredDate)
	assert.Equal(t, "14:30", c.PreferredTime)
}

func TestExtractMalformedInputReturnsNothing(t *testing.T) {
	for _, text := range []string{"", "hello there", "???", "my name is ", "12/34"} {
		c := Extract(text)
		assert.Equal(t, Candidate{}, c, "input: %q", text)
	}
}
