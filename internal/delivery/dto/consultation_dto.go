package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Response DTOs

type ConsultationResponse struct {
	ID              uuid.UUID       `json:"id"`
	LawyerID        uuid.UUID       `json:"lawyer_id"`
	LawyerName      string          `json:"lawyer_name,omitempty"`
	ClientID        uuid.UUID       `json:"client_id"`
	ClientName      string          `json:"client_name,omitempty"`
	ScheduledDate   string          `json:"scheduled_date"`
	ScheduledTime   string          `json:"scheduled_time"`
	DurationMinutes int             `json:"duration_minutes"`
	CaseType        string          `json:"case_type,omitempty"`
	CaseDescription string          `json:"case_description,omitempty"`
	ContactName     string          `json:"contact_name"`
	ContactPhone    string          `json:"contact_phone"`
	Fee             decimal.Decimal `json:"fee"`
	Status          string          `json:"status"`
	DisplayStatus   string          `json:"display_status"`
	Upcoming        bool            `json:"upcoming"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

type ConsultationListResponse struct {
	Consultations []ConsultationResponse `json:"consultations"`
	Total         int                    `json:"total"`
}
