package repository

import (
	"legal-consult-api/internal/domain/entity"
	domainRepo "legal-consult-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type educationRepository struct{}

func NewEducationRepository() domainRepo.EducationRepository {
	return &educationRepository{}
}

func (r *educationRepository) Create(db *gorm.DB, record *entity.Education) error {
	return db.Create(record).Error
}

func (r *educationRepository) FindByLawyerID(db *gorm.DB, lawyerID uuid.UUID) ([]entity.Education, error) {
	var records []entity.Education
	err := db.Where("lawyer_id = ?", lawyerID).Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (r *educationRepository) Delete(db *gorm.DB, id uuid.UUID) error {
	return db.Where("id = ?", id).Delete(&entity.Education{}).Error
}
