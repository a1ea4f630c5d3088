// File: services/intelligence/interface.go
package ai

import "context"

// TextGenerator produces free-text answers for general veterinary questions.
// Implementations may fail with transport or quota errors; callers are
// expected to substitute a fallback reply.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
