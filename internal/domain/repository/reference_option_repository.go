package repository

import (
	"legal-consult-api/internal/domain/entity"

	"gorm.io/gorm"
)

type ReferenceOptionRepository interface {
	FindByKind(db *gorm.DB, kind string) ([]entity.ReferenceOption, error)
	// ReplaceKind swaps the locally persisted options of one kind for the
	// freshly fetched set.
	ReplaceKind(db *gorm.DB, kind string, options []entity.ReferenceOption) error
}
