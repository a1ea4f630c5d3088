// File: services/dialogue/interface.go
package dialogue

import (
	"context"
	"time"

	appointmentRepo "vetchat/database/repository/appointment"
	conversationRepo "vetchat/database/repository/conversation"
	"vetchat/models"
	ai "vetchat/services/intelligence"

	"go.uber.org/zap"
)

// Engine is the conversational appointment slot-filling engine. One call
// handles one inbound utterance and produces exactly one reply.
type Engine interface {
	ProcessMessage(ctx context.Context, req models.ChatRequest) (*models.ChatResponse, error)
}

// DefaultDialogueEngine implements Engine with explicit collaborators so
// every dependency can be substituted with a fake in tests.
type DefaultDialogueEngine struct {
	Convos       conversationRepo.ConversationRepository
	Appointments appointmentRepo.AppointmentRepository
	Generator    ai.TextGenerator
	Candidates   CandidateCache // optional aggregation checkpoint cache
	Detector     *Detector
	Policy       *Policy
	Committer    *Committer
	GenTimeout   time.Duration
	Logger       *zap.Logger
}

// NewDefaultDialogueEngine wires the engine with its collaborators.
func NewDefaultDialogueEngine(
	convos conversationRepo.ConversationRepository,
	appts appointmentRepo.AppointmentRepository,
	generator ai.TextGenerator,
	candidates CandidateCache,
	reminders ReminderScheduler,
	keywords []string,
	genTimeout time.Duration,
	logger *zap.Logger,
) *DefaultDialogueEngine {
	return &DefaultDialogueEngine{
		Convos:       convos,
		Appointments: appts,
		Generator:    generator,
		Candidates:   candidates,
		Detector:     NewDetector(keywords),
		Policy:       NewPolicy(nil),
		Committer:    &Committer{Repo: appts, Reminders: reminders, Logger: logger},
		GenTimeout:   genTimeout,
		Logger:       logger,
	}
}
