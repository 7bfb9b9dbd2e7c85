package repository

import (
	"errors"

	"legal-consult-api/internal/domain/entity"
	domainRepo "legal-consult-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type consultationRepository struct{}

func NewConsultationRepository() domainRepo.ConsultationRepository {
	return &consultationRepository{}
}

func (r *consultationRepository) Create(db *gorm.DB, consultation *entity.Consultation) error {
	return db.Create(consultation).Error
}

func (r *consultationRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Consultation, error) {
	var consultation entity.Consultation
	err := db.Preload("Lawyer.User").Where("id = ?", id).First(&consultation).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &consultation, nil
}

func (r *consultationRepository) FindByClientID(db *gorm.DB, clientID uuid.UUID) ([]entity.Consultation, error) {
	var consultations []entity.Consultation
	err := db.Preload("Lawyer.User").
		Where("client_id = ?", clientID).
		Order("scheduled_date DESC, scheduled_time DESC").
		Find(&consultations).Error
	if err != nil {
		return nil, err
	}
	return consultations, nil
}

func (r *consultationRepository) FindByLawyerID(db *gorm.DB, lawyerID uuid.UUID) ([]entity.Consultation, error) {
	var consultations []entity.Consultation
	err := db.Preload("Client").
		Where("lawyer_id = ?", lawyerID).
		Order("scheduled_date DESC, scheduled_time DESC").
		Find(&consultations).Error
	if err != nil {
		return nil, err
	}
	return consultations, nil
}

// UpdateStatusFromPending flips status ONLY while the row is still pending.
// Returns affected rows: 1 = success, 0 = a concurrent writer got there
// first (prevents double confirm/reject race).
func (r *consultationRepository) UpdateStatusFromPending(db *gorm.DB, id uuid.UUID, status entity.ConsultationStatus) (int64, error) {
	result := db.Model(&entity.Consultation{}).
		Where("id = ? AND status = ?", id, entity.ConsultationStatusPending).
		Update("status", status)
	return result.RowsAffected, result.Error
}
