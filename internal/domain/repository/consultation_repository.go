package repository

import (
	"legal-consult-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ConsultationRepository interface {
	Create(db *gorm.DB, consultation *entity.Consultation) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Consultation, error)
	FindByClientID(db *gorm.DB, clientID uuid.UUID) ([]entity.Consultation, error)
	FindByLawyerID(db *gorm.DB, lawyerID uuid.UUID) ([]entity.Consultation, error)
	// UpdateStatusFromPending flips the status only while the stored row is
	// still pending. Returns affected rows: 0 means a concurrent writer won.
	UpdateStatusFromPending(db *gorm.DB, id uuid.UUID, status entity.ConsultationStatus) (int64, error)
}
