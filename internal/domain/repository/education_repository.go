package repository

import (
	"legal-consult-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EducationRepository interface {
	Create(db *gorm.DB, record *entity.Education) error
	FindByLawyerID(db *gorm.DB, lawyerID uuid.UUID) ([]entity.Education, error)
	Delete(db *gorm.DB, id uuid.UUID) error
}
