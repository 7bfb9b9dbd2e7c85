package usecase

import (
	"context"
	"errors"
	"time"

	"legal-consult-api/internal/converter"
	"legal-consult-api/internal/delivery/dto"
	"legal-consult-api/internal/domain/entity"
	"legal-consult-api/internal/domain/repository"
	"legal-consult-api/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrConsultationNotFound = errors.New("consultation not found")
	ErrStatusConflict       = errors.New("consultation was updated concurrently, refresh and try again")
)

type ConsultationUsecase interface {
	GetClientConsultations(ctx context.Context, clientID uuid.UUID) (*dto.ConsultationListResponse, error)
	GetLawyerConsultations(ctx context.Context, lawyerID uuid.UUID) (*dto.ConsultationListResponse, error)
	Confirm(ctx context.Context, actorLawyerID, consultationID uuid.UUID) (*dto.ConsultationResponse, error)
	Reject(ctx context.Context, actorLawyerID, consultationID uuid.UUID) (*dto.ConsultationResponse, error)
}

type consultationUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	consultationRepo repository.ConsultationRepository
	auditService     service.AuditService
}

func NewConsultationUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	consultationRepo repository.ConsultationRepository,
	auditService service.AuditService,
) ConsultationUsecase {
	return &consultationUsecase{
		db:               db,
		log:              log,
		consultationRepo: consultationRepo,
		auditService:     auditService,
	}
}

// GetClientConsultations returns all consultations booked by the client,
// with display status derived at read time.
func (u *consultationUsecase) GetClientConsultations(ctx context.Context, clientID uuid.UUID) (*dto.ConsultationListResponse, error) {
	consultations, err := u.consultationRepo.FindByClientID(u.db.WithContext(ctx), clientID)
	if err != nil {
		u.log.Warnf("Failed to find consultations for client %s: %+v", clientID, err)
		return nil, err
	}

	return &dto.ConsultationListResponse{
		Consultations: converter.ConsultationsToResponses(consultations, time.Now()),
		Total:         len(consultations),
	}, nil
}

// GetLawyerConsultations returns the lawyer's booking inbox.
func (u *consultationUsecase) GetLawyerConsultations(ctx context.Context, lawyerID uuid.UUID) (*dto.ConsultationListResponse, error) {
	consultations, err := u.consultationRepo.FindByLawyerID(u.db.WithContext(ctx), lawyerID)
	if err != nil {
		u.log.Warnf("Failed to find consultations for lawyer %s: %+v", lawyerID, err)
		return nil, err
	}

	return &dto.ConsultationListResponse{
		Consultations: converter.ConsultationsToResponses(consultations, time.Now()),
		Total:         len(consultations),
	}, nil
}

func (u *consultationUsecase) Confirm(ctx context.Context, actorLawyerID, consultationID uuid.UUID) (*dto.ConsultationResponse, error) {
	return u.applyTransition(ctx, actorLawyerID, consultationID, entity.EventConfirm, entity.AuditActionConsultationConfirm)
}

func (u *consultationUsecase) Reject(ctx context.Context, actorLawyerID, consultationID uuid.UUID) (*dto.ConsultationResponse, error) {
	return u.applyTransition(ctx, actorLawyerID, consultationID, entity.EventReject, entity.AuditActionConsultationReject)
}

// applyTransition runs one role-gated lifecycle event.
//
// Flow:
// 1. Load the consultation
// 2. Gate in memory: ownership first, then source state (entity.Transition)
// 3. Conditional UPDATE restricted to the pending status
// 4. 0 affected rows means a concurrent session won the race -> conflict,
//    never a silent overwrite
func (u *consultationUsecase) applyTransition(ctx context.Context, actorLawyerID, consultationID uuid.UUID, event entity.LifecycleEvent, auditAction string) (*dto.ConsultationResponse, error) {
	consultation, err := u.consultationRepo.FindByID(u.db.WithContext(ctx), consultationID)
	if err != nil {
		u.log.Warnf("Failed to find consultation %s: %+v", consultationID, err)
		return nil, err
	}
	if consultation == nil {
		return nil, ErrConsultationNotFound
	}

	oldStatus := consultation.Status
	if err := consultation.Transition(event, actorLawyerID); err != nil {
		return nil, err
	}

	rows, err := u.consultationRepo.UpdateStatusFromPending(u.db.WithContext(ctx), consultationID, consultation.Status)
	if err != nil {
		u.log.Warnf("Failed to update consultation %s status: %+v", consultationID, err)
		return nil, err
	}
	if rows == 0 {
		return nil, ErrStatusConflict
	}

	if err := u.auditService.LogUpdate(ctx, u.db.WithContext(ctx), &actorLawyerID, auditAction, "consultation", consultationID.String(), string(oldStatus), string(consultation.Status)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
		// Audit failures never roll back a completed transition
	}

	u.log.Infof("Consultation %s: %s -> %s by lawyer %s", consultationID, oldStatus, consultation.Status, actorLawyerID)
	return converter.ConsultationToResponse(consultation, time.Now()), nil
}
