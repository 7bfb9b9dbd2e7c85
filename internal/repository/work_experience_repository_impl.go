package repository

import (
	"legal-consult-api/internal/domain/entity"
	domainRepo "legal-consult-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type workExperienceRepository struct{}

func NewWorkExperienceRepository() domainRepo.WorkExperienceRepository {
	return &workExperienceRepository{}
}

func (r *workExperienceRepository) Create(db *gorm.DB, record *entity.WorkExperience) error {
	return db.Create(record).Error
}

func (r *workExperienceRepository) FindByLawyerID(db *gorm.DB, lawyerID uuid.UUID) ([]entity.WorkExperience, error) {
	var records []entity.WorkExperience
	err := db.Where("lawyer_id = ?", lawyerID).Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (r *workExperienceRepository) Delete(db *gorm.DB, id uuid.UUID) error {
	return db.Where("id = ?", id).Delete(&entity.WorkExperience{}).Error
}
