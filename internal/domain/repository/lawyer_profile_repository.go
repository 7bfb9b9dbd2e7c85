package repository

import (
	"legal-consult-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LawyerProfileRepository interface {
	Create(db *gorm.DB, profile *entity.LawyerProfile) error
	FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.LawyerProfile, error)
	FindAll(db *gorm.DB) ([]entity.LawyerProfile, error)
	Update(db *gorm.DB, profile *entity.LawyerProfile) error
}
