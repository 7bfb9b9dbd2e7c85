package entity

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ConsultationStatus represents the stored status of a consultation
type ConsultationStatus string

const (
	ConsultationStatusPending   ConsultationStatus = "pending"
	ConsultationStatusConfirmed ConsultationStatus = "confirmed"
	ConsultationStatusCompleted ConsultationStatus = "completed"
	ConsultationStatusCancelled ConsultationStatus = "cancelled"
)

// LifecycleEvent is a lawyer-triggered transition on a pending consultation
type LifecycleEvent string

const (
	EventConfirm LifecycleEvent = "confirm"
	EventReject  LifecycleEvent = "reject"
)

var (
	ErrNotConsultationOwner = errors.New("consultation does not belong to this lawyer")
	ErrInvalidTransition    = errors.New("consultation is not in a state that allows this transition")
)

// Consultation represents a booked session between a client and a lawyer
type Consultation struct {
	ID              uuid.UUID          `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	LawyerID        uuid.UUID          `gorm:"type:uuid;not null;index" json:"lawyer_id"`
	ClientID        uuid.UUID          `gorm:"type:uuid;not null;index" json:"client_id"`
	ScheduledDate   time.Time          `gorm:"type:date;not null;index" json:"scheduled_date"`
	ScheduledTime   string             `gorm:"type:time;not null" json:"scheduled_time"`
	DurationMinutes int                `gorm:"not null" json:"duration_minutes"`
	CaseType        string             `gorm:"type:varchar(100)" json:"case_type,omitempty"`
	CaseDescription string             `gorm:"type:text" json:"case_description,omitempty"`
	ContactName     string             `gorm:"type:varchar(255);not null" json:"contact_name"`
	ContactEmail    string             `gorm:"type:varchar(255);not null" json:"contact_email"`
	ContactPhone    string             `gorm:"type:varchar(20);not null" json:"contact_phone"`
	Fee             decimal.Decimal    `gorm:"type:numeric(12,2);not null" json:"fee"`
	Status          ConsultationStatus `gorm:"type:consultation_status;not null;default:'pending';index" json:"status"`
	CreatedAt       time.Time          `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time          `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Lawyer LawyerProfile `gorm:"foreignKey:LawyerID" json:"lawyer,omitempty"`
	Client User          `gorm:"foreignKey:ClientID" json:"client,omitempty"`
}

func (Consultation) TableName() string {
	return "consultations"
}

// IsPending checks if the consultation is still awaiting the lawyer
func (c *Consultation) IsPending() bool {
	return c.Status == ConsultationStatusPending
}

// IsConfirmed checks if the consultation has been accepted
func (c *Consultation) IsConfirmed() bool {
	return c.Status == ConsultationStatusConfirmed
}

// IsCancelled checks if the consultation was rejected or cancelled
func (c *Consultation) IsCancelled() bool {
	return c.Status == ConsultationStatusCancelled
}

// ScheduledAt combines the stored date and canonical 24-hour time into one
// instant in the given location.
func (c *Consultation) ScheduledAt(loc *time.Location) time.Time {
	t, err := time.Parse("15:04", c.ScheduledTime)
	if err != nil {
		return time.Date(c.ScheduledDate.Year(), c.ScheduledDate.Month(), c.ScheduledDate.Day(), 0, 0, 0, 0, loc)
	}
	return time.Date(c.ScheduledDate.Year(), c.ScheduledDate.Month(), c.ScheduledDate.Day(), t.Hour(), t.Minute(), 0, 0, loc)
}

// Transition applies a lawyer-triggered lifecycle event in place.
// Authorization is checked before state: an actor who does not own the
// consultation gets ErrNotConsultationOwner even when the transition would
// also be invalid. Non-pending sources always fail, never silently no-op.
func (c *Consultation) Transition(event LifecycleEvent, actorLawyerID uuid.UUID) error {
	if c.LawyerID != actorLawyerID {
		return ErrNotConsultationOwner
	}
	if c.Status != ConsultationStatusPending {
		return ErrInvalidTransition
	}

	switch event {
	case EventConfirm:
		c.Status = ConsultationStatusConfirmed
	case EventReject:
		c.Status = ConsultationStatusCancelled
	default:
		return ErrInvalidTransition
	}
	return nil
}

// DisplayStatus derives the status shown to users. A confirmed consultation
// whose scheduled instant has passed reads as completed; the stored column
// is never mutated by the passage of time.
func (c *Consultation) DisplayStatus(now time.Time) ConsultationStatus {
	if c.Status == ConsultationStatusConfirmed && c.ScheduledAt(now.Location()).Before(now) {
		return ConsultationStatusCompleted
	}
	return c.Status
}

// IsUpcoming partitions consultations for dashboard display. Pure view
// derivation: cancelled consultations are never upcoming, everything else is
// upcoming while its scheduled instant is still ahead.
func (c *Consultation) IsUpcoming(now time.Time) bool {
	if c.Status == ConsultationStatusCancelled {
		return false
	}
	return c.ScheduledAt(now.Location()).After(now)
}
