package dto

import "github.com/shopspring/decimal"

// Request DTOs

// ProfileBasicInfoRequest is the basic_info stage payload. PhotoURL must be
// present when PhotoChanged is true, or on first creation; when false on an
// edit the stored photo reference is kept untouched.
type ProfileBasicInfoRequest struct {
	LawType         string          `json:"law_type" validate:"required"`
	BaseFee         decimal.Decimal `json:"base_fee" validate:"required"`
	YearsExperience int             `json:"years_experience" validate:"gte=0,lte=70"`
	PracticeAreas   []string        `json:"practice_areas" validate:"required,min=1,dive,required"`
	Languages       []string        `json:"languages" validate:"required,min=1,dive,required"`
	PhotoURL        string          `json:"photo_url" validate:"omitempty,max=2048"`
	PhotoChanged    bool            `json:"photo_changed"`
	City            string          `json:"city" validate:"required"`
	Address         string          `json:"address" validate:"required"`
	About           string          `json:"about" validate:"omitempty,max=4000"`
}

type WorkExperienceItem struct {
	Firm        string `json:"firm" validate:"required"`
	Title       string `json:"title" validate:"required"`
	StartDate   string `json:"start_date" validate:"required"` // YYYY-MM-DD
	EndDate     string `json:"end_date" validate:"omitempty"`
	Description string `json:"description" validate:"omitempty,max=2000"`
}

type ProfileWorkExperienceRequest struct {
	Items []WorkExperienceItem `json:"items" validate:"dive"`
}

type EducationItem struct {
	Institution string `json:"institution" validate:"required"`
	Degree      string `json:"degree" validate:"required"`
	StartDate   string `json:"start_date" validate:"required"` // YYYY-MM-DD
	EndDate     string `json:"end_date" validate:"omitempty"`
	Description string `json:"description" validate:"omitempty,max=2000"`
}

type ProfileEducationRequest struct {
	Items []EducationItem `json:"items" validate:"dive"`
}

// Response DTOs

type ProfileWizardStateResponse struct {
	Stage       string               `json:"stage"`
	HasProfile  bool                 `json:"has_profile"`
	BasicInfo   ProfileBasicInfoView `json:"basic_info"`
	Experiences []WorkExperienceItem `json:"experiences"`
	Educations  []EducationItem      `json:"educations"`
}

type ProfileBasicInfoView struct {
	LawType         string          `json:"law_type"`
	BaseFee         decimal.Decimal `json:"base_fee"`
	YearsExperience int             `json:"years_experience"`
	PracticeAreas   []string        `json:"practice_areas"`
	Languages       []string        `json:"languages"`
	PhotoURL        string          `json:"photo_url"`
	City            string          `json:"city"`
	Address         string          `json:"address"`
	About           string          `json:"about"`
}
