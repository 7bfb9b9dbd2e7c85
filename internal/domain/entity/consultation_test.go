package entity

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

func newPendingConsultation(lawyerID uuid.UUID) *Consultation {
	return &Consultation{
		ID:            uuid.New(),
		LawyerID:      lawyerID,
		ClientID:      uuid.New(),
		ScheduledDate: time.Date(2026, time.September, 10, 0, 0, 0, 0, time.UTC),
		ScheduledTime: "15:00",
		Status:        ConsultationStatusPending,
	}
}

func TestConsultationTransition(t *testing.T) {
	lawyerID := uuid.New()

	t.Run("owner confirms a pending consultation", func(t *testing.T) {
		c := newPendingConsultation(lawyerID)
		if err := c.Transition(EventConfirm, lawyerID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if c.Status != ConsultationStatusConfirmed {
			t.Errorf("status = %s, want confirmed", c.Status)
		}
	})

	t.Run("owner rejects a pending consultation", func(t *testing.T) {
		c := newPendingConsultation(lawyerID)
		if err := c.Transition(EventReject, lawyerID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if c.Status != ConsultationStatusCancelled {
			t.Errorf("status = %s, want cancelled", c.Status)
		}
	})

	t.Run("non-owner fails with ownership error and status is unchanged", func(t *testing.T) {
		c := newPendingConsultation(lawyerID)
		err := c.Transition(EventConfirm, uuid.New())
		if !errors.Is(err, ErrNotConsultationOwner) {
			t.Fatalf("expected ErrNotConsultationOwner, got %v", err)
		}
		if c.Status != ConsultationStatusPending {
			t.Errorf("status mutated to %s", c.Status)
		}
	})

	t.Run("ownership is checked before state", func(t *testing.T) {
		c := newPendingConsultation(lawyerID)
		c.Status = ConsultationStatusConfirmed
		err := c.Transition(EventReject, uuid.New())
		if !errors.Is(err, ErrNotConsultationOwner) {
			t.Fatalf("expected ErrNotConsultationOwner, got %v", err)
		}
	})

	t.Run("non-pending sources never transition", func(t *testing.T) {
		for _, from := range []ConsultationStatus{ConsultationStatusConfirmed, ConsultationStatusCancelled, ConsultationStatusCompleted} {
			c := newPendingConsultation(lawyerID)
			c.Status = from
			err := c.Transition(EventConfirm, lawyerID)
			if !errors.Is(err, ErrInvalidTransition) {
				t.Errorf("from %s: expected ErrInvalidTransition, got %v", from, err)
			}
			if c.Status != from {
				t.Errorf("from %s: status regressed to %s", from, c.Status)
			}
		}
	})

	t.Run("unknown event is an invalid transition", func(t *testing.T) {
		c := newPendingConsultation(lawyerID)
		if err := c.Transition(LifecycleEvent("complete"), lawyerID); !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
	})
}

func TestConsultationDisplayStatus(t *testing.T) {
	lawyerID := uuid.New()
	now := time.Date(2026, time.September, 11, 10, 0, 0, 0, time.UTC)

	t.Run("confirmed in the past reads as completed", func(t *testing.T) {
		c := newPendingConsultation(lawyerID)
		c.Status = ConsultationStatusConfirmed
		if got := c.DisplayStatus(now); got != ConsultationStatusCompleted {
			t.Errorf("display status = %s, want completed", got)
		}
		if c.Status != ConsultationStatusConfirmed {
			t.Error("derivation mutated the stored status")
		}
	})

	t.Run("confirmed in the future stays confirmed", func(t *testing.T) {
		c := newPendingConsultation(lawyerID)
		c.Status = ConsultationStatusConfirmed
		if got := c.DisplayStatus(time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC)); got != ConsultationStatusConfirmed {
			t.Errorf("display status = %s, want confirmed", got)
		}
	})

	t.Run("pending in the past stays pending", func(t *testing.T) {
		c := newPendingConsultation(lawyerID)
		if got := c.DisplayStatus(now); got != ConsultationStatusPending {
			t.Errorf("display status = %s, want pending", got)
		}
	})
}

func TestConsultationIsUpcoming(t *testing.T) {
	lawyerID := uuid.New()
	before := time.Date(2026, time.September, 10, 14, 0, 0, 0, time.UTC)
	after := time.Date(2026, time.September, 10, 16, 0, 0, 0, time.UTC)

	c := newPendingConsultation(lawyerID) // scheduled 2026-09-10 15:00
	if !c.IsUpcoming(before) {
		t.Error("expected upcoming before the scheduled instant")
	}
	if c.IsUpcoming(after) {
		t.Error("expected past after the scheduled instant")
	}

	c.Status = ConsultationStatusCancelled
	if c.IsUpcoming(before) {
		t.Error("cancelled consultations are never upcoming")
	}
}
