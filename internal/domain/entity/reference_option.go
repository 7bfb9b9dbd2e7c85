package entity

import (
	"time"

	"github.com/google/uuid"
)

// Reference data kinds served to the wizards' dropdowns
const (
	ReferenceKindCity           = "cities"
	ReferenceKindLawType        = "law_types"
	ReferenceKindExperienceBand = "experience_bands"
	ReferenceKindLanguage       = "languages"
	ReferenceKindPracticeArea   = "practice_areas"
	ReferenceKindInstitution    = "institutions"
)

// ReferenceKinds lists every kind in warm-up order.
var ReferenceKinds = []string{
	ReferenceKindCity,
	ReferenceKindLawType,
	ReferenceKindExperienceBand,
	ReferenceKindLanguage,
	ReferenceKindPracticeArea,
	ReferenceKindInstitution,
}

// IsReferenceKind reports whether kind is a known reference-data kind.
func IsReferenceKind(kind string) bool {
	for _, k := range ReferenceKinds {
		if k == kind {
			return true
		}
	}
	return false
}

// ReferenceOption is one selectable entry of a reference-data kind,
// persisted locally as a fallback for when the upstream directory is down.
type ReferenceOption struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Kind      string    `gorm:"type:varchar(50);not null;index:idx_reference_options_kind_code,unique" json:"kind"`
	Code      string    `gorm:"type:varchar(100);not null;index:idx_reference_options_kind_code,unique" json:"code"`
	Label     string    `gorm:"type:varchar(255);not null" json:"label"`
	Position  int       `gorm:"not null;default:0" json:"position"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (ReferenceOption) TableName() string {
	return "reference_options"
}
