package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Profile wizard stages, in dependency order. Child records cannot be
// touched before the basic-info stage has persisted the parent profile.
const (
	ProfileStageView           = "view"
	ProfileStageBasicInfo      = "basic_info"
	ProfileStageWorkExperience = "work_experience"
	ProfileStageEducation      = "education"
)

// ProfileDraft holds the editable basic-info snapshot. PhotoChanged
// distinguishes "keep the stored photo untouched" from "a new photo
// reference was supplied"; the stored reference must never be resent as if
// it were a fresh upload.
type ProfileDraft struct {
	LawType         string          `json:"law_type"`
	BaseFee         decimal.Decimal `json:"base_fee"`
	YearsExperience int             `json:"years_experience"`
	PracticeAreas   []string        `json:"practice_areas"`
	Languages       []string        `json:"languages"`
	PhotoURL        string          `json:"photo_url"`
	PhotoChanged    bool            `json:"photo_changed"`
	City            string          `json:"city"`
	Address         string          `json:"address"`
	About           string          `json:"about"`
}

// ExperienceDraft is an in-memory work-experience entry awaiting
// reconciliation. Dates use the YYYY-MM-DD wire form.
type ExperienceDraft struct {
	Firm        string `json:"firm"`
	Title       string `json:"title"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date,omitempty"`
	Description string `json:"description,omitempty"`
}

// EducationDraft is an in-memory education entry awaiting reconciliation.
type EducationDraft struct {
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date,omitempty"`
	Description string `json:"description,omitempty"`
}

// ProfileWizardSession is the redis-held state of a lawyer's profile wizard.
// Entering the wizard snapshots the persisted profile; Cancel discards the
// whole session so no partial edits leak back into view state.
type ProfileWizardSession struct {
	UserID      uuid.UUID         `json:"user_id"`
	Stage       string            `json:"stage"`
	HasProfile  bool              `json:"has_profile"`
	Draft       ProfileDraft      `json:"draft"`
	Experiences []ExperienceDraft `json:"experiences"`
	Educations  []EducationDraft  `json:"educations"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

// StageReached reports whether the wizard has progressed at least to the
// given stage.
func (s *ProfileWizardSession) StageReached(stage string) bool {
	order := map[string]int{
		ProfileStageBasicInfo:      1,
		ProfileStageWorkExperience: 2,
		ProfileStageEducation:      3,
	}
	return order[s.Stage] >= order[stage]
}
