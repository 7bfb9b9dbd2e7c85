package repository

import (
	"legal-consult-api/internal/domain/entity"
	domainRepo "legal-consult-api/internal/domain/repository"

	"gorm.io/gorm"
)

type referenceOptionRepository struct{}

func NewReferenceOptionRepository() domainRepo.ReferenceOptionRepository {
	return &referenceOptionRepository{}
}

func (r *referenceOptionRepository) FindByKind(db *gorm.DB, kind string) ([]entity.ReferenceOption, error) {
	var options []entity.ReferenceOption
	err := db.Where("kind = ?", kind).Order("position ASC, label ASC").Find(&options).Error
	if err != nil {
		return nil, err
	}
	return options, nil
}

func (r *referenceOptionRepository) ReplaceKind(db *gorm.DB, kind string, options []entity.ReferenceOption) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("kind = ?", kind).Delete(&entity.ReferenceOption{}).Error; err != nil {
			return err
		}
		if len(options) == 0 {
			return nil
		}
		return tx.Create(&options).Error
	})
}
