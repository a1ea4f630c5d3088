package models

import "time"

// Turn roles within a conversation.
const (
	RoleUser = "user"
	RoleBot  = "bot"
)

// Turn is a single message in a conversation. Turns are immutable once
// appended; their order is the conversation order.
type Turn struct {
	Role      string    `bson:"role" json:"role"` // "user" or "bot"
	Text      string    `bson:"text" json:"text"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	IsError   bool      `bson:"is_error,omitempty" json:"isError,omitempty"` // bot turn produced by a failure fallback
}

// Conversation holds the full turn history for one chat session.
// It is mutated only by appending turns; sessions are never deleted,
// only marked inactive.
type Conversation struct {
	SessionID string            `bson:"session_id" json:"sessionId"`
	Turns     []Turn            `bson:"turns" json:"turns"`
	Context   map[string]string `bson:"context,omitempty" json:"context,omitempty"`
	Active    bool              `bson:"active" json:"active"`
	CreatedAt time.Time         `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time         `bson:"updated_at" json:"updatedAt"`
}

// UserTurns returns the user-authored turns in conversation order.
func (c *Conversation) UserTurns() []Turn {
	var turns []Turn
	for _, t := range c.Turns {
		if t.Role == RoleUser {
			turns = append(turns, t)
		}
	}
	return turns
}
