package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MinimumBaseFee is the lowest hourly base fee a lawyer may publish.
var MinimumBaseFee = decimal.NewFromInt(500)

// LawyerProfile represents lawyer-specific profile data.
// A row is created empty on registration and filled in through the profile
// wizard (basic info, then work experience, then education).
type LawyerProfile struct {
	UserID          uuid.UUID       `gorm:"type:uuid;primaryKey" json:"user_id"`
	LawType         string          `gorm:"type:varchar(100);index" json:"law_type"`
	BaseFee         decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0" json:"base_fee"`
	Rating          float64         `gorm:"type:numeric(3,2);not null;default:0" json:"rating"`
	YearsExperience int             `json:"years_experience"`
	PracticeAreas   StringList      `gorm:"type:jsonb" json:"practice_areas,omitempty"`
	Languages       StringList      `gorm:"type:jsonb" json:"languages,omitempty"`
	PhotoURL        string          `gorm:"type:text" json:"photo_url,omitempty"`
	City            string          `gorm:"type:varchar(100)" json:"city,omitempty"`
	Address         string          `gorm:"type:text" json:"address,omitempty"`
	About           string          `gorm:"type:text" json:"about,omitempty"`
	CreatedAt       time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time       `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	User            User             `gorm:"foreignKey:UserID" json:"user,omitempty"`
	WorkExperiences []WorkExperience `gorm:"foreignKey:LawyerID" json:"work_experiences,omitempty"`
	Educations      []Education      `gorm:"foreignKey:LawyerID" json:"educations,omitempty"`
}

func (LawyerProfile) TableName() string {
	return "lawyer_profiles"
}

// IsComplete reports whether the profile is publishable: every required
// basic-info field is present, including the photo.
func (p *LawyerProfile) IsComplete() bool {
	return p.LawType != "" &&
		p.BaseFee.GreaterThanOrEqual(MinimumBaseFee) &&
		len(p.PracticeAreas) > 0 &&
		len(p.Languages) > 0 &&
		p.PhotoURL != "" &&
		p.City != "" &&
		p.Address != ""
}
