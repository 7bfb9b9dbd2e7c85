package usecase

import (
	"context"
	"testing"
	"time"

	"legal-consult-api/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pendingConsultation(lawyerID uuid.UUID) *entity.Consultation {
	return &entity.Consultation{
		ID:              uuid.New(),
		LawyerID:        lawyerID,
		ClientID:        uuid.New(),
		ScheduledDate:   time.Now().AddDate(0, 0, 7),
		ScheduledTime:   "15:00",
		DurationMinutes: 60,
		ContactName:     "Asha Rao",
		ContactEmail:    "asha@example.com",
		ContactPhone:    "9876543210",
		Status:          entity.ConsultationStatusPending,
	}
}

func newLifecycleFixture(t *testing.T, consult *entity.Consultation) (ConsultationUsecase, *fakeConsultationRepo, *fakeAuditService) {
	t.Helper()
	repo := &fakeConsultationRepo{consult: consult, updateRows: 1}
	audit := &fakeAuditService{}
	uc := NewConsultationUsecase(newTestDB(t), newTestLogger(), repo, audit)
	return uc, repo, audit
}

func TestConsultationConfirm(t *testing.T) {
	lawyerID := uuid.New()
	consult := pendingConsultation(lawyerID)
	uc, repo, audit := newLifecycleFixture(t, consult)

	resp, err := uc.Confirm(context.Background(), lawyerID, consult.ID)
	require.NoError(t, err)

	assert.Equal(t, "confirmed", resp.Status)
	assert.Equal(t, 1, repo.updates)
	assert.Equal(t, 1, audit.entries)
}

func TestConsultationReject(t *testing.T) {
	lawyerID := uuid.New()
	consult := pendingConsultation(lawyerID)
	uc, _, _ := newLifecycleFixture(t, consult)

	resp, err := uc.Reject(context.Background(), lawyerID, consult.ID)
	require.NoError(t, err)

	// Rejection lands on the cancelled status, not a separate one
	assert.Equal(t, "cancelled", resp.Status)
}

func TestConsultationTransitionGates(t *testing.T) {
	lawyerID := uuid.New()

	t.Run("not found", func(t *testing.T) {
		uc, _, _ := newLifecycleFixture(t, pendingConsultation(lawyerID))
		_, err := uc.Confirm(context.Background(), lawyerID, uuid.New())
		assert.ErrorIs(t, err, ErrConsultationNotFound)
	})

	t.Run("foreign consultation is rejected before state is checked", func(t *testing.T) {
		consult := pendingConsultation(lawyerID)
		consult.Status = entity.ConsultationStatusCancelled // also non-pending
		uc, repo, _ := newLifecycleFixture(t, consult)

		_, err := uc.Confirm(context.Background(), uuid.New(), consult.ID)
		assert.ErrorIs(t, err, entity.ErrNotConsultationOwner)
		assert.Zero(t, repo.updates)
	})

	t.Run("non-pending source always fails, never a no-op", func(t *testing.T) {
		consult := pendingConsultation(lawyerID)
		consult.Status = entity.ConsultationStatusConfirmed
		uc, repo, _ := newLifecycleFixture(t, consult)

		_, err := uc.Confirm(context.Background(), lawyerID, consult.ID)
		assert.ErrorIs(t, err, entity.ErrInvalidTransition)
		assert.Zero(t, repo.updates)
	})
}

func TestConsultationConcurrentTransitionConflicts(t *testing.T) {
	lawyerID := uuid.New()
	consult := pendingConsultation(lawyerID)
	uc, repo, audit := newLifecycleFixture(t, consult)

	// Another session flipped the row between our read and our update
	repo.updateRows = 0

	_, err := uc.Confirm(context.Background(), lawyerID, consult.ID)
	assert.ErrorIs(t, err, ErrStatusConflict)
	assert.Zero(t, audit.entries, "a lost race must not be audited as a transition")
}
