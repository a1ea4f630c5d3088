package dialogue

import (
	"errors"
	"testing"
	"time"

	"vetchat/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestValidateEmptyCandidate(t *testing.T) {
	errs := Validate(Candidate{})
	assert.Len(t, errs, 5)
}

func TestValidateRejectsPastDate(t *testing.T) {
	c := completeCandidate()
	past := time.Now().AddDate(0, 0, -1)
	c.PreferredDate = &past

	errs := Validate(c)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0], "date")
}

func TestValidateRejectsBadShapes(t *testing.T) {
	c := completeCandidate()
	c.OwnerName = "J"
	c.PhoneNumber = "123"
	c.PreferredTime = "25:99"

	errs := Validate(c)
	assert.Len(t, errs, 3)
}

func TestCommitPersistsPendingAppointment(t *testing.T) {
	repo := &fakeApptRepo{}
	reminders := &fakeReminderScheduler{}
	cm := &Committer{Repo: repo, Reminders: reminders, Logger: zap.NewNop()}

	cand := completeCandidate()
	appt, err := cm.Commit("sess-1", cand)
	require.NoError(t, err)

	assert.NotEmpty(t, appt.ID)
	assert.Equal(t, "sess-1", appt.SessionID)
	assert.Equal(t, models.StatusPending, appt.Status)
	assert.Equal(t, cand.OwnerName, appt.OwnerName)
	require.Len(t, repo.appts, 1)
	require.Len(t, reminders.scheduled, 1)
	assert.Equal(t, appt.ID, reminders.scheduled[0].ID)
}

func TestCommitValidationFailureWritesNothing(t *testing.T) {
	repo := &fakeApptRepo{}
	cm := &Committer{Repo: repo, Logger: zap.NewNop()}

	c := completeCandidate()
	past := time.Now().AddDate(0, 0, -1)
	c.PreferredDate = &past

	_, err := cm.Commit("sess-1", c)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Messages[0], "date")
	assert.Empty(t, repo.appts)
}

func TestCommitReminderFailureDoesNotFailCommit(t *testing.T) {
	repo := &fakeApptRepo{}
	reminders := &fakeReminderScheduler{err: errors.New("queue down")}
	cm := &Committer{Repo: repo, Reminders: reminders, Logger: zap.NewNop()}

	_, err := cm.Commit("sess-1", completeCandidate())
	require.NoError(t, err)
	assert.Len(t, repo.appts, 1)
}

func TestCommitStorageFailurePropagates(t *testing.T) {
	repo := &fakeApptRepo{insertErr: errors.New("mongo down")}
	cm := &Committer{Repo: repo, Logger: zap.NewNop()}

	_, err := cm.Commit("sess-1", completeCandidate())
	require.Error(t, err)
	var verr *ValidationError
	assert.False(t, errors.As(err, &verr))
}
