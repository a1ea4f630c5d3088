// File: services/dialogue/engine.go
package dialogue

import (
	"context"
	"errors"
	"time"

	"vetchat/models"
	ai "vetchat/services/intelligence"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// generationApology is the fixed fallback reply when the text generator is
// unreachable or errors. The raw error is logged, never shown to the user.
const generationApology = "I'm sorry, I'm having trouble answering right now. Please try sending your message again in a moment."

const defaultGenTimeout = 15 * time.Second

// ProcessMessage handles one inbound utterance. It appends the user turn,
// classifies intent, runs either the slot-filling flow or the general answer
// path, and appends exactly one bot turn. Storage failures propagate to the
// caller; every other failure still yields a bot turn.
func (e *DefaultDialogueEngine) ProcessMessage(ctx context.Context, req models.ChatRequest) (*models.ChatResponse, error) {
	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = uuid.New().String()
	}

	if _, err := e.Convos.GetOrCreate(sessionID, req.Context); err != nil {
		return nil, err
	}

	userTurn := models.Turn{Role: models.RoleUser, Text: req.Message, CreatedAt: time.Now()}
	if err := e.Convos.AppendTurn(sessionID, userTurn); err != nil {
		return nil, err
	}

	turns, err := e.Convos.GetTurns(sessionID)
	if err != nil {
		return nil, err
	}

	var (
		reply     string
		replyErr  bool
		candidate Candidate
	)

	intent := e.Detector.Classify(req.Message, turns)
	if intent == IntentAppointment {
		// The candidate is derived only on the appointment path; general
		// messages never reach the extractor.
		candidate = e.deriveCandidate(ctx, sessionID, turns)
	}

	switch action := e.Policy.Decide(intent, candidate); action.Kind {
	case ActionAskField:
		reply = e.Policy.PromptFor(action.Field)
	case ActionCommit:
		reply, replyErr, err = e.commitOrDefer(ctx, sessionID, candidate, req.Message, turns)
		if err != nil {
			return nil, err
		}
	default:
		reply, replyErr = e.generateAnswer(ctx, req.Message, turns[:len(turns)-1])
	}

	botTurn := models.Turn{Role: models.RoleBot, Text: reply, CreatedAt: time.Now(), IsError: replyErr}
	if err := e.Convos.AppendTurn(sessionID, botTurn); err != nil {
		return nil, err
	}

	return &models.ChatResponse{
		SessionID: sessionID,
		Reply:     reply,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}, nil
}

// commitOrDefer commits a complete candidate, unless an identical appointment
// was already committed for this session — sticky intent ends at commit, so a
// later message falls through to the general answer path instead of booking
// the same appointment again.
func (e *DefaultDialogueEngine) commitOrDefer(ctx context.Context, sessionID string, c Candidate, message string, turns []models.Turn) (string, bool, error) {
	existing, err := e.Appointments.FindBySession(sessionID)
	if err != nil {
		return "", false, err
	}
	for _, a := range existing {
		if matchesCandidate(a, c) {
			reply, replyErr := e.generateAnswer(ctx, message, turns[:len(turns)-1])
			return reply, replyErr, nil
		}
	}

	appt, err := e.Committer.Commit(sessionID, c)
	if err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			// Recoverable: stay collecting, let the user resupply values.
			return e.Policy.ValidationApology(verr), false, nil
		}
		return "", false, err
	}

	if e.Candidates != nil {
		if err := e.Candidates.Clear(ctx, sessionID); err != nil {
			e.Logger.Warn("failed to clear candidate checkpoint", zap.Error(err))
		}
	}
	return e.Policy.Confirmation(appt), false, nil
}

// generateAnswer forwards the message to the text generator with a bounded
// window of recent turns under a timeout. Failures degrade to a fixed apology
// turn marked as an error so the user can retry.
func (e *DefaultDialogueEngine) generateAnswer(ctx context.Context, message string, history []models.Turn) (string, bool) {
	timeout := e.GenTimeout
	if timeout <= 0 {
		timeout = defaultGenTimeout
	}
	genCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	reply, err := e.Generator.Generate(genCtx, ai.BuildPrompt(message, history))
	if err != nil {
		e.Logger.Warn("text generation failed", zap.Error(err))
		return generationApology, true
	}
	return reply, false
}

// deriveCandidate recomputes the candidate from the history, resuming from
// the cached checkpoint when one is available. Cache errors fall back to a
// full recomputation; the cache is an optimization, never a source of truth.
func (e *DefaultDialogueEngine) deriveCandidate(ctx context.Context, sessionID string, turns []models.Turn) Candidate {
	var user []models.Turn
	for _, t := range turns {
		if t.Role == models.RoleUser {
			user = append(user, t)
		}
	}

	if e.Candidates != nil {
		cp, err := e.Candidates.Get(ctx, sessionID)
		if err != nil {
			e.Logger.Warn("failed to load candidate checkpoint", zap.Error(err))
		} else if cp != nil && cp.UserTurns <= len(user) {
			cand := AggregateFrom(cp.Candidate, user[cp.UserTurns:])
			e.checkpoint(ctx, sessionID, cand, len(user))
			return cand
		}
	}

	cand := Aggregate(user)
	e.checkpoint(ctx, sessionID, cand, len(user))
	return cand
}

func (e *DefaultDialogueEngine) checkpoint(ctx context.Context, sessionID string, c Candidate, userTurns int) {
	if e.Candidates == nil {
		return
	}
	if err := e.Candidates.Set(ctx, sessionID, &Checkpoint{Candidate: c, UserTurns: userTurns}); err != nil {
		e.Logger.Warn("failed to store candidate checkpoint", zap.Error(err))
	}
}

// matchesCandidate reports whether a persisted appointment carries the same
// field values as the derived candidate.
func matchesCandidate(a models.Appointment, c Candidate) bool {
	return c.PreferredDate != nil &&
		a.OwnerName == c.OwnerName &&
		a.PetName == c.PetName &&
		a.PhoneNumber == c.PhoneNumber &&
		a.PreferredTime == c.PreferredTime &&
		a.PreferredDate.Equal(*c.PreferredDate)
}
