package dto

import (
	"github.com/shopspring/decimal"
)

// Request DTOs

// BookingScheduleRequest is step 1 of the booking wizard.
type BookingScheduleRequest struct {
	Date            string `json:"date" validate:"required"`       // YYYY-MM-DD
	TimeLabel       string `json:"time_label" validate:"required"` // catalogue label, e.g. "03:00 PM"
	DurationMinutes int    `json:"duration_minutes" validate:"required,oneof=30 60 90"`
}

// BookingContactRequest is step 2 of the booking wizard.
type BookingContactRequest struct {
	Name  string `json:"name" validate:"required,min=2"`
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"phone" validate:"required,inphone"`
}

// BookingSubmitRequest is step 3: case details are optional, the agreement
// flag is not.
type BookingSubmitRequest struct {
	CaseType        string `json:"case_type" validate:"omitempty,max=100"`
	CaseDescription string `json:"case_description" validate:"omitempty,max=4000"`
	Agreement       bool   `json:"agreement"`
}

// Response DTOs

type BookingQuoteResponse struct {
	Fee             decimal.Decimal `json:"fee"`
	DurationMinutes int             `json:"duration_minutes"`
	Date            string          `json:"date"`
	TimeLabel       string          `json:"time_label"`
}

type BookingWizardStateResponse struct {
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
}

type SlotCatalogueResponse struct {
	Dates []string           `json:"dates"`
	Times []SlotTimeResponse `json:"times"`
}

type SlotTimeResponse struct {
	Label  string `json:"label"`
	Period string `json:"period"`
}
