package usecase

import (
	"context"

	"legal-consult-api/internal/converter"
	"legal-consult-api/internal/delivery/dto"
	"legal-consult-api/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type LawyerUsecase interface {
	GetLawyers(ctx context.Context) (*dto.LawyerListResponse, error)
	GetLawyer(ctx context.Context, userID uuid.UUID) (*dto.LawyerResponse, error)
}

type lawyerUsecase struct {
	db         *gorm.DB
	log        *logrus.Logger
	lawyerRepo repository.LawyerProfileRepository
}

func NewLawyerUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	lawyerRepo repository.LawyerProfileRepository,
) LawyerUsecase {
	return &lawyerUsecase{
		db:         db,
		log:        log,
		lawyerRepo: lawyerRepo,
	}
}

// GetLawyers returns the public listing. Incomplete profiles are filtered
// out; a lawyer becomes bookable only once every profile field is present.
func (u *lawyerUsecase) GetLawyers(ctx context.Context) (*dto.LawyerListResponse, error) {
	profiles, err := u.lawyerRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find lawyers: %+v", err)
		return nil, err
	}

	response := &dto.LawyerListResponse{
		Lawyers: make([]dto.LawyerResponse, 0, len(profiles)),
	}
	for i := range profiles {
		if !profiles[i].IsComplete() {
			continue
		}
		if resp := converter.LawyerProfileToResponse(&profiles[i]); resp != nil {
			response.Lawyers = append(response.Lawyers, *resp)
		}
	}
	response.Total = len(response.Lawyers)
	return response, nil
}

func (u *lawyerUsecase) GetLawyer(ctx context.Context, userID uuid.UUID) (*dto.LawyerResponse, error) {
	profile, err := u.lawyerRepo.FindByUserID(u.db.WithContext(ctx), userID)
	if err != nil {
		u.log.Warnf("Failed to find lawyer %s: %+v", userID, err)
		return nil, err
	}
	if profile == nil || !profile.IsComplete() {
		return nil, ErrLawyerNotFound
	}
	return converter.LawyerProfileToResponse(profile), nil
}
