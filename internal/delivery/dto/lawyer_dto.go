package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Response DTOs

type LawyerResponse struct {
	ID              uuid.UUID                `json:"id"`
	FullName        string                   `json:"full_name"`
	LawType         string                   `json:"law_type,omitempty"`
	BaseFee         decimal.Decimal          `json:"base_fee"`
	Rating          float64                  `json:"rating"`
	YearsExperience int                      `json:"years_experience"`
	PracticeAreas   []string                 `json:"practice_areas,omitempty"`
	Languages       []string                 `json:"languages,omitempty"`
	PhotoURL        string                   `json:"photo_url,omitempty"`
	City            string                   `json:"city,omitempty"`
	Address         string                   `json:"address,omitempty"`
	About           string                   `json:"about,omitempty"`
	IsComplete      bool                     `json:"is_complete"`
	WorkExperiences []WorkExperienceResponse `json:"work_experiences,omitempty"`
	Educations      []EducationResponse      `json:"educations,omitempty"`
	UpdatedAt       time.Time                `json:"updated_at"`
}

type LawyerListResponse struct {
	Lawyers []LawyerResponse `json:"lawyers"`
	Total   int              `json:"total"`
}

type WorkExperienceResponse struct {
	ID          uuid.UUID `json:"id"`
	Firm        string    `json:"firm"`
	Title       string    `json:"title"`
	StartDate   string    `json:"start_date"`
	EndDate     string    `json:"end_date,omitempty"`
	Description string    `json:"description,omitempty"`
}

type EducationResponse struct {
	ID          uuid.UUID `json:"id"`
	Institution string    `json:"institution"`
	Degree      string    `json:"degree"`
	StartDate   string    `json:"start_date"`
	EndDate     string    `json:"end_date,omitempty"`
	Description string    `json:"description,omitempty"`
}
