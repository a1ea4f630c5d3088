package conversationRepo

import "vetchat/models"

// ConversationRepository defines the interface for conversation data access.
type ConversationRepository interface {
	// GetOrCreate fetches the conversation for sessionID, creating an empty
	// active one when none exists yet.
	GetOrCreate(sessionID string, context map[string]string) (*models.Conversation, error)
	// AppendTurn atomically appends a turn to the conversation history.
	AppendTurn(sessionID string, turn models.Turn) error
	// GetTurns returns the ordered turn sequence for a session.
	GetTurns(sessionID string) ([]models.Turn, error)
	// GetBySessionID returns the full conversation document.
	GetBySessionID(sessionID string) (*models.Conversation, error)
	// GetActive lists active conversations, most recently updated first.
	GetActive(limit int64) ([]models.Conversation, error)
	// Deactivate marks a conversation inactive. The history is kept.
	Deactivate(sessionID string) error
}
