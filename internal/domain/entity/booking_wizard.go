package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Booking wizard steps. A step may only be entered once every earlier step
// has passed its gate.
const (
	BookingStepSchedule = 1
	BookingStepContact  = 2
	BookingStepReview   = 3
)

// Allowed consultation duration tiers in minutes
var DurationTiers = []int{30, 60, 90}

// IsDurationTier reports whether minutes is one of the enumerated tiers.
func IsDurationTier(minutes int) bool {
	for _, d := range DurationTiers {
		if d == minutes {
			return true
		}
	}
	return false
}

// BookingWizardSession is the accumulated state of one client's booking
// wizard against one lawyer. It lives in redis until submitted or cancelled;
// nothing here is ever written to the database before final submission.
type BookingWizardSession struct {
	ClientID        uuid.UUID       `json:"client_id"`
	LawyerID        uuid.UUID       `json:"lawyer_id"`
	CompletedStep   int             `json:"completed_step"`
	Date            string          `json:"date,omitempty"`
	TimeLabel       string          `json:"time_label,omitempty"`
	DurationMinutes int             `json:"duration_minutes,omitempty"`
	QuotedFee       decimal.Decimal `json:"quoted_fee"`
	Name            string          `json:"name,omitempty"`
	Email           string          `json:"email,omitempty"`
	Phone           string          `json:"phone,omitempty"`
	CaseType        string          `json:"case_type,omitempty"`
	CaseDescription string          `json:"case_description,omitempty"`
	Agreement       bool            `json:"agreement"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// CanEnter reports whether the wizard may accept input for the given step.
func (s *BookingWizardSession) CanEnter(step int) bool {
	return step <= s.CompletedStep+1
}

// ReadyToSubmit reports whether every gate has passed, including the
// mandatory terms agreement.
func (s *BookingWizardSession) ReadyToSubmit() bool {
	return s.CompletedStep >= BookingStepReview && s.Agreement
}
