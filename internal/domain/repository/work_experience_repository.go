package repository

import (
	"legal-consult-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type WorkExperienceRepository interface {
	Create(db *gorm.DB, record *entity.WorkExperience) error
	FindByLawyerID(db *gorm.DB, lawyerID uuid.UUID) ([]entity.WorkExperience, error)
	Delete(db *gorm.DB, id uuid.UUID) error
}
