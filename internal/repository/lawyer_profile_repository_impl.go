package repository

import (
	"errors"

	"legal-consult-api/internal/domain/entity"
	domainRepo "legal-consult-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type lawyerProfileRepository struct{}

func NewLawyerProfileRepository() domainRepo.LawyerProfileRepository {
	return &lawyerProfileRepository{}
}

func (r *lawyerProfileRepository) Create(db *gorm.DB, profile *entity.LawyerProfile) error {
	return db.Create(profile).Error
}

func (r *lawyerProfileRepository) FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.LawyerProfile, error) {
	var profile entity.LawyerProfile
	err := db.Preload("User").
		Preload("WorkExperiences").
		Preload("Educations").
		Where("user_id = ?", userID).
		First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

func (r *lawyerProfileRepository) FindAll(db *gorm.DB) ([]entity.LawyerProfile, error) {
	var profiles []entity.LawyerProfile
	err := db.Preload("User").Find(&profiles).Error
	if err != nil {
		return nil, err
	}
	return profiles, nil
}

func (r *lawyerProfileRepository) Update(db *gorm.DB, profile *entity.LawyerProfile) error {
	return db.Save(profile).Error
}
