// File: services/intelligence/prompt.go
package ai

import (
	"strings"

	"vetchat/models"
)

// historyWindow bounds how many recent turns are included in the prompt.
const historyWindow = 5

const systemPrompt = `You are a helpful veterinary assistant chatbot. Your role is to:

1. Answer ONLY veterinary-related questions about:
   - Pet care and health
   - Vaccination schedules
   - Diet and nutrition
   - Common pet illnesses
   - Preventive care
   - General pet wellness

2. If asked non-veterinary questions, politely decline and redirect to veterinary topics.

3. Always remind users that your advice is general information and they should consult a licensed veterinarian for specific medical concerns.

4. Be conversational, friendly, and helpful.

5. Keep responses concise but informative (under 200 words).

6. If a user wants to book an appointment, acknowledge their request and let them know you'll help them schedule it.

Remember: You provide general veterinary information only, not specific medical diagnoses or treatment recommendations.`

// BuildPrompt assembles the generation prompt from the system instructions,
// a bounded window of recent turns, and the current user message.
func BuildPrompt(message string, history []models.Turn) string {
	var sb strings.Builder
	sb.WriteString(systemPrompt)
	sb.WriteString("\n\nConversation:\n")

	recent := history
	if len(recent) > historyWindow {
		recent = recent[len(recent)-historyWindow:]
	}
	for _, t := range recent {
		if t.Role == models.RoleUser {
			sb.WriteString("User: ")
		} else {
			sb.WriteString("Assistant: ")
		}
		sb.WriteString(t.Text)
		sb.WriteString("\n")
	}

	sb.WriteString("User: ")
	sb.WriteString(message)
	sb.WriteString("\nAssistant:")
	return sb.String()
}
