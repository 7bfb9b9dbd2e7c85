package usecase

import (
	"context"
	"errors"
	"time"

	"legal-consult-api/internal/converter"
	"legal-consult-api/internal/delivery/dto"
	"legal-consult-api/internal/domain/entity"
	"legal-consult-api/internal/domain/repository"
	"legal-consult-api/internal/infrastructure/cache"
	"legal-consult-api/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrProfileNotFound       = errors.New("lawyer profile not found")
	ErrStageIncomplete       = errors.New("earlier wizard stages have not been completed")
	ErrBaseFeeTooLow         = errors.New("base fee is below the published minimum")
	ErrPhotoRequired         = errors.New("a profile photo is required")
	ErrInvalidDateRange      = errors.New("invalid date or date range, use YYYY-MM-DD")
	ErrPartialReconciliation = errors.New("profile records were partially replaced, resubmit to restore them")
)

type ProfileWizardUsecase interface {
	Start(ctx context.Context, userID uuid.UUID) (*dto.ProfileWizardStateResponse, error)
	GetState(ctx context.Context, userID uuid.UUID) (*dto.ProfileWizardStateResponse, error)
	SaveBasicInfo(ctx context.Context, userID uuid.UUID, req *dto.ProfileBasicInfoRequest) (*dto.ProfileWizardStateResponse, error)
	SaveWorkExperiences(ctx context.Context, userID uuid.UUID, req *dto.ProfileWorkExperienceRequest) (*dto.ProfileWizardStateResponse, error)
	SaveEducations(ctx context.Context, userID uuid.UUID, req *dto.ProfileEducationRequest) (*dto.ProfileWizardStateResponse, error)
	Cancel(ctx context.Context, userID uuid.UUID) error
}

type profileWizardUsecase struct {
	db             *gorm.DB
	log            *logrus.Logger
	store          cache.WizardStore
	lawyerRepo     repository.LawyerProfileRepository
	experienceRepo repository.WorkExperienceRepository
	educationRepo  repository.EducationRepository
	auditService   service.AuditService
}

func NewProfileWizardUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	store cache.WizardStore,
	lawyerRepo repository.LawyerProfileRepository,
	experienceRepo repository.WorkExperienceRepository,
	educationRepo repository.EducationRepository,
	auditService service.AuditService,
) ProfileWizardUsecase {
	return &profileWizardUsecase{
		db:             db,
		log:            log,
		store:          store,
		lawyerRepo:     lawyerRepo,
		experienceRepo: experienceRepo,
		educationRepo:  educationRepo,
		auditService:   auditService,
	}
}

// Start opens the wizard by snapshotting the persisted profile into a fresh
// session. Re-entering replaces any stale session so the wizard always edits
// against current database state.
func (u *profileWizardUsecase) Start(ctx context.Context, userID uuid.UUID) (*dto.ProfileWizardStateResponse, error) {
	profile, err := u.lawyerRepo.FindByUserID(u.db.WithContext(ctx), userID)
	if err != nil {
		u.log.Warnf("Failed to find lawyer profile for user %s: %+v", userID, err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrProfileNotFound
	}

	session := &entity.ProfileWizardSession{
		UserID:     userID,
		Stage:      entity.ProfileStageView,
		HasProfile: profile.LawType != "",
		Draft:      draftFromProfile(profile),
	}

	experiences, err := u.experienceRepo.FindByLawyerID(u.db.WithContext(ctx), userID)
	if err != nil {
		u.log.Warnf("Failed to load work experiences for user %s: %+v", userID, err)
		return nil, err
	}
	session.Experiences = experienceDrafts(experiences)

	educations, err := u.educationRepo.FindByLawyerID(u.db.WithContext(ctx), userID)
	if err != nil {
		u.log.Warnf("Failed to load educations for user %s: %+v", userID, err)
		return nil, err
	}
	session.Educations = educationDrafts(educations)

	if err := u.store.SaveProfileSession(ctx, session); err != nil {
		u.log.Warnf("Failed to save profile wizard session: %+v", err)
		return nil, err
	}
	return converter.ProfileWizardSessionToResponse(session), nil
}

func (u *profileWizardUsecase) GetState(ctx context.Context, userID uuid.UUID) (*dto.ProfileWizardStateResponse, error) {
	session, err := u.store.GetProfileSession(ctx, userID)
	if err != nil {
		u.log.Warnf("Failed to load profile wizard session: %+v", err)
		return nil, err
	}
	if session == nil {
		return nil, ErrWizardNotFound
	}
	return converter.ProfileWizardSessionToResponse(session), nil
}

// SaveBasicInfo persists the basic_info stage.
//
// Photo semantics: a stored photo reference is never resent as if it were a
// fresh upload. On an edit with PhotoChanged false the stored reference is
// kept untouched; a first-time save must carry a photo.
func (u *profileWizardUsecase) SaveBasicInfo(ctx context.Context, userID uuid.UUID, req *dto.ProfileBasicInfoRequest) (*dto.ProfileWizardStateResponse, error) {
	session, err := u.requireSession(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.BaseFee.LessThan(entity.MinimumBaseFee) {
		return nil, ErrBaseFeeTooLow
	}

	profile, err := u.lawyerRepo.FindByUserID(u.db.WithContext(ctx), userID)
	if err != nil {
		u.log.Warnf("Failed to find lawyer profile for user %s: %+v", userID, err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrProfileNotFound
	}

	firstSave := profile.LawType == ""
	if req.PhotoChanged || firstSave {
		if req.PhotoURL == "" {
			return nil, ErrPhotoRequired
		}
		profile.PhotoURL = req.PhotoURL
	}

	oldLawType := profile.LawType
	profile.LawType = req.LawType
	profile.BaseFee = req.BaseFee
	profile.YearsExperience = req.YearsExperience
	profile.PracticeAreas = entity.StringList(req.PracticeAreas)
	profile.Languages = entity.StringList(req.Languages)
	profile.City = req.City
	profile.Address = req.Address
	profile.About = req.About

	if err := u.lawyerRepo.Update(u.db.WithContext(ctx), profile); err != nil {
		u.log.Warnf("Failed to update lawyer profile for user %s: %+v", userID, err)
		return nil, err
	}

	if err := u.auditService.LogUpdate(ctx, u.db.WithContext(ctx), &userID, entity.AuditActionProfileBasicInfoSave, "lawyer_profile", userID.String(), oldLawType, profile.LawType); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	session.HasProfile = true
	session.Draft = draftFromProfile(profile)
	session.Stage = entity.ProfileStageBasicInfo
	if err := u.store.SaveProfileSession(ctx, session); err != nil {
		u.log.Warnf("Failed to save profile wizard session: %+v", err)
		return nil, err
	}
	return converter.ProfileWizardSessionToResponse(session), nil
}

// SaveWorkExperiences replaces the lawyer's work-experience records with the
// submitted set. The replacement is delete-then-recreate:
//   - any delete failure aborts before a single create runs, leaving the
//     stored set intact
//   - a create failure after deletes have landed is reported as
//     ErrPartialReconciliation; resubmitting the same set restores the data
//
// The wizard stage is only advanced once the whole set is in place.
func (u *profileWizardUsecase) SaveWorkExperiences(ctx context.Context, userID uuid.UUID, req *dto.ProfileWorkExperienceRequest) (*dto.ProfileWizardStateResponse, error) {
	session, err := u.requireSession(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !session.StageReached(entity.ProfileStageBasicInfo) {
		return nil, ErrStageIncomplete
	}

	records := make([]entity.WorkExperience, 0, len(req.Items))
	drafts := make([]entity.ExperienceDraft, 0, len(req.Items))
	for _, item := range req.Items {
		start, end, err := parseDateRange(item.StartDate, item.EndDate)
		if err != nil {
			return nil, err
		}
		records = append(records, entity.WorkExperience{
			LawyerID:    userID,
			Firm:        item.Firm,
			Title:       item.Title,
			StartDate:   start,
			EndDate:     end,
			Description: item.Description,
		})
		drafts = append(drafts, entity.ExperienceDraft{
			Firm:        item.Firm,
			Title:       item.Title,
			StartDate:   item.StartDate,
			EndDate:     item.EndDate,
			Description: item.Description,
		})
	}

	existing, err := u.experienceRepo.FindByLawyerID(u.db.WithContext(ctx), userID)
	if err != nil {
		u.log.Warnf("Failed to load work experiences for user %s: %+v", userID, err)
		return nil, err
	}
	for _, record := range existing {
		if err := u.experienceRepo.Delete(u.db.WithContext(ctx), record.ID); err != nil {
			u.log.Warnf("Failed to delete work experience %s, aborting before creates: %+v", record.ID, err)
			return nil, err
		}
	}
	for i := range records {
		if err := u.experienceRepo.Create(u.db.WithContext(ctx), &records[i]); err != nil {
			u.log.Warnf("Failed to recreate work experience for user %s: %+v", userID, err)
			return nil, ErrPartialReconciliation
		}
	}

	if err := u.auditService.LogUpdate(ctx, u.db.WithContext(ctx), &userID, entity.AuditActionProfileExperienceSave, "work_experience", userID.String(), len(existing), len(records)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	session.Experiences = drafts
	if !session.StageReached(entity.ProfileStageWorkExperience) {
		session.Stage = entity.ProfileStageWorkExperience
	}
	if err := u.store.SaveProfileSession(ctx, session); err != nil {
		u.log.Warnf("Failed to save profile wizard session: %+v", err)
		return nil, err
	}
	return converter.ProfileWizardSessionToResponse(session), nil
}

// SaveEducations replaces the lawyer's education records with the submitted
// set, with the same delete-then-recreate semantics as work experiences.
func (u *profileWizardUsecase) SaveEducations(ctx context.Context, userID uuid.UUID, req *dto.ProfileEducationRequest) (*dto.ProfileWizardStateResponse, error) {
	session, err := u.requireSession(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !session.StageReached(entity.ProfileStageWorkExperience) {
		return nil, ErrStageIncomplete
	}

	records := make([]entity.Education, 0, len(req.Items))
	drafts := make([]entity.EducationDraft, 0, len(req.Items))
	for _, item := range req.Items {
		start, end, err := parseDateRange(item.StartDate, item.EndDate)
		if err != nil {
			return nil, err
		}
		records = append(records, entity.Education{
			LawyerID:    userID,
			Institution: item.Institution,
			Degree:      item.Degree,
			StartDate:   start,
			EndDate:     end,
			Description: item.Description,
		})
		drafts = append(drafts, entity.EducationDraft{
			Institution: item.Institution,
			Degree:      item.Degree,
			StartDate:   item.StartDate,
			EndDate:     item.EndDate,
			Description: item.Description,
		})
	}

	existing, err := u.educationRepo.FindByLawyerID(u.db.WithContext(ctx), userID)
	if err != nil {
		u.log.Warnf("Failed to load educations for user %s: %+v", userID, err)
		return nil, err
	}
	for _, record := range existing {
		if err := u.educationRepo.Delete(u.db.WithContext(ctx), record.ID); err != nil {
			u.log.Warnf("Failed to delete education %s, aborting before creates: %+v", record.ID, err)
			return nil, err
		}
	}
	for i := range records {
		if err := u.educationRepo.Create(u.db.WithContext(ctx), &records[i]); err != nil {
			u.log.Warnf("Failed to recreate education for user %s: %+v", userID, err)
			return nil, ErrPartialReconciliation
		}
	}

	if err := u.auditService.LogUpdate(ctx, u.db.WithContext(ctx), &userID, entity.AuditActionProfileEducationSave, "education", userID.String(), len(existing), len(records)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	session.Educations = drafts
	if !session.StageReached(entity.ProfileStageEducation) {
		session.Stage = entity.ProfileStageEducation
	}
	if err := u.store.SaveProfileSession(ctx, session); err != nil {
		u.log.Warnf("Failed to save profile wizard session: %+v", err)
		return nil, err
	}
	return converter.ProfileWizardSessionToResponse(session), nil
}

// Cancel discards the wizard session. Already-persisted stages stay
// persisted; only unsaved session state is lost.
func (u *profileWizardUsecase) Cancel(ctx context.Context, userID uuid.UUID) error {
	if err := u.store.DeleteProfileSession(ctx, userID); err != nil {
		u.log.Warnf("Failed to delete profile wizard session: %+v", err)
		return err
	}
	return nil
}

func (u *profileWizardUsecase) requireSession(ctx context.Context, userID uuid.UUID) (*entity.ProfileWizardSession, error) {
	session, err := u.store.GetProfileSession(ctx, userID)
	if err != nil {
		u.log.Warnf("Failed to load profile wizard session: %+v", err)
		return nil, err
	}
	if session == nil {
		return nil, ErrWizardNotFound
	}
	return session, nil
}

func parseDateRange(startDate, endDate string) (time.Time, *time.Time, error) {
	start, err := time.Parse("2006-01-02", startDate)
	if err != nil {
		return time.Time{}, nil, ErrInvalidDateRange
	}
	if endDate == "" {
		return start, nil, nil
	}
	end, err := time.Parse("2006-01-02", endDate)
	if err != nil {
		return time.Time{}, nil, ErrInvalidDateRange
	}
	if end.Before(start) {
		return time.Time{}, nil, ErrInvalidDateRange
	}
	return start, &end, nil
}

func draftFromProfile(profile *entity.LawyerProfile) entity.ProfileDraft {
	return entity.ProfileDraft{
		LawType:         profile.LawType,
		BaseFee:         profile.BaseFee,
		YearsExperience: profile.YearsExperience,
		PracticeAreas:   profile.PracticeAreas,
		Languages:       profile.Languages,
		PhotoURL:        profile.PhotoURL,
		City:            profile.City,
		Address:         profile.Address,
		About:           profile.About,
	}
}

func experienceDrafts(records []entity.WorkExperience) []entity.ExperienceDraft {
	drafts := make([]entity.ExperienceDraft, 0, len(records))
	for _, record := range records {
		draft := entity.ExperienceDraft{
			Firm:        record.Firm,
			Title:       record.Title,
			StartDate:   record.StartDate.Format("2006-01-02"),
			Description: record.Description,
		}
		if record.EndDate != nil {
			draft.EndDate = record.EndDate.Format("2006-01-02")
		}
		drafts = append(drafts, draft)
	}
	return drafts
}

func educationDrafts(records []entity.Education) []entity.EducationDraft {
	drafts := make([]entity.EducationDraft, 0, len(records))
	for _, record := range records {
		draft := entity.EducationDraft{
			Institution: record.Institution,
			Degree:      record.Degree,
			StartDate:   record.StartDate.Format("2006-01-02"),
			Description: record.Description,
		}
		if record.EndDate != nil {
			draft.EndDate = record.EndDate.Format("2006-01-02")
		}
		drafts = append(drafts, draft)
	}
	return drafts
}
