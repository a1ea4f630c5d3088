package dialogue

import (
	"context"
	"errors"
	"fmt"
	"time"

	"vetchat/models"
)

// In-memory collaborator fakes. The engine takes interfaces for every
// dependency, so tests run without Mongo, Redis, or the Gemini API.

type fakeConvRepo struct {
	convs map[string]*models.Conversation
}

func newFakeConvRepo() *fakeConvRepo {
	return &fakeConvRepo{convs: make(map[string]*models.Conversation)}
}

func (r *fakeConvRepo) GetOrCreate(sessionID string, context map[string]string) (*models.Conversation, error) {
	if conv, ok := r.convs[sessionID]; ok {
		return conv, nil
	}
	conv := &models.Conversation{
		SessionID: sessionID,
		Context:   context,
		Active:    true,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	r.convs[sessionID] = conv
	return conv, nil
}

func (r *fakeConvRepo) AppendTurn(sessionID string, turn models.Turn) error {
	conv, ok := r.convs[sessionID]
	if !ok {
		return fmt.Errorf("conversation %s not found", sessionID)
	}
	conv.Turns = append(conv.Turns, turn)
	conv.UpdatedAt = time.Now()
	return nil
}

func (r *fakeConvRepo) GetTurns(sessionID string) ([]models.Turn, error) {
	conv, ok := r.convs[sessionID]
	if !ok {
		return nil, fmt.Errorf("conversation %s not found", sessionID)
	}
	return conv.Turns, nil
}

func (r *fakeConvRepo) GetBySessionID(sessionID string) (*models.Conversation, error) {
	conv, ok := r.convs[sessionID]
	if !ok {
		return nil, fmt.Errorf("conversation %s not found", sessionID)
	}
	return conv, nil
}

func (r *fakeConvRepo) GetActive(limit int64) ([]models.Conversation, error) {
	var convs []models.Conversation
	for _, c := range r.convs {
		if c.Active {
			convs = append(convs, *c)
		}
	}
	return convs, nil
}

func (r *fakeConvRepo) Deactivate(sessionID string) error {
	conv, ok := r.convs[sessionID]
	if !ok {
		return fmt.Errorf("conversation %s not found", sessionID)
	}
	conv.Active = false
	return nil
}

type fakeApptRepo struct {
	appts     []models.Appointment
	insertErr error
}

func (r *fakeApptRepo) Insert(appt *models.Appointment) error {
	if r.insertErr != nil {
		return r.insertErr
	}
	now := time.Now()
	appt.CreatedAt = now
	appt.UpdatedAt = now
	r.appts = append(r.appts, *appt)
	return nil
}

func (r *fakeApptRepo) GetByID(id string) (*models.Appointment, error) {
	for i := range r.appts {
		if r.appts[i].ID == id {
			return &r.appts[i], nil
		}
	}
	return nil, errors.New("appointment not found")
}

func (r *fakeApptRepo) FindBySession(sessionID string) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, a := range r.appts {
		if a.SessionID == sessionID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *fakeApptRepo) UpdateStatus(id, status string) (*models.Appointment, error) {
	for i := range r.appts {
		if r.appts[i].ID == id {
			r.appts[i].Status = status
			return &r.appts[i], nil
		}
	}
	return nil, errors.New("appointment not found")
}

func (r *fakeApptRepo) GetAll(page, limit int64) ([]models.Appointment, int64, error) {
	return r.appts, int64(len(r.appts)), nil
}

func (r *fakeApptRepo) Stats() (*models.AppointmentStats, error) {
	return &models.AppointmentStats{Total: int64(len(r.appts))}, nil
}

type fakeGenerator struct {
	reply   string
	err     error
	calls   int
	prompts []string
}

func (g *fakeGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	g.calls++
	g.prompts = append(g.prompts, prompt)
	if g.err != nil {
		return "", g.err
	}
	return g.reply, nil
}

type fakeReminderScheduler struct {
	scheduled []models.Appointment
	err       error
}

func (s *fakeReminderScheduler) ScheduleReminder(appt *models.Appointment) error {
	if s.err != nil {
		return s.err
	}
	s.scheduled = append(s.scheduled, *appt)
	return nil
}

type memCandidateCache struct {
	checkpoints map[string]*Checkpoint
	gets        int
	sets        int
}

func newMemCandidateCache() *memCandidateCache {
	return &memCandidateCache{checkpoints: make(map[string]*Checkpoint)}
}

func (c *memCandidateCache) Get(ctx context.Context, sessionID string) (*Checkpoint, error) {
	c.gets++
	return c.checkpoints[sessionID], nil
}

func (c *memCandidateCache) Set(ctx context.Context, sessionID string, cp *Checkpoint) error {
	c.sets++
	c.checkpoints[sessionID] = cp
	return nil
}

func (c *memCandidateCache) Clear(ctx context.Context, sessionID string) error {
	delete(c.checkpoints, sessionID)
	return nil
}
