package entity

import (
	"time"

	"github.com/google/uuid"
)

// WorkExperience is a child record of a lawyer profile. Insertion order
// carries no meaning; the collection is replaced wholesale on save.
type WorkExperience struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	LawyerID    uuid.UUID  `gorm:"type:uuid;not null;index" json:"lawyer_id"`
	Firm        string     `gorm:"type:varchar(255);not null" json:"firm"`
	Title       string     `gorm:"type:varchar(150);not null" json:"title"`
	StartDate   time.Time  `gorm:"type:date;not null" json:"start_date"`
	EndDate     *time.Time `gorm:"type:date" json:"end_date,omitempty"`
	Description string     `gorm:"type:text" json:"description,omitempty"`
	CreatedAt   time.Time  `gorm:"autoCreateTime" json:"created_at"`

	// Relationships
	Lawyer LawyerProfile `gorm:"foreignKey:LawyerID" json:"lawyer,omitempty"`
}

func (WorkExperience) TableName() string {
	return "work_experiences"
}
