package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"legal-consult-api/internal/converter"
	"legal-consult-api/internal/delivery/dto"
	"legal-consult-api/internal/domain/entity"
	"legal-consult-api/internal/domain/repository"
	"legal-consult-api/internal/infrastructure/cache"
	"legal-consult-api/internal/pricing"
	"legal-consult-api/internal/schedule"
	"legal-consult-api/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrLawyerNotFound      = errors.New("lawyer not found")
	ErrLawyerNotBookable   = errors.New("lawyer profile is not complete enough to accept bookings")
	ErrWizardNotFound      = errors.New("no booking wizard in progress")
	ErrStepIncomplete      = errors.New("earlier wizard steps have not been completed")
	ErrInvalidBookingDate  = errors.New("invalid booking date, use YYYY-MM-DD")
	ErrDateNotBookable     = errors.New("date is not in the bookable window")
	ErrTimeNotBookable     = errors.New("time is not in the slot catalogue")
	ErrInvalidDuration     = errors.New("duration must be 30, 60 or 90 minutes")
	ErrAgreementRequired   = errors.New("terms agreement is required before submission")
	ErrSubmissionInFlight  = errors.New("a submission for this booking is already in progress")
)

// submitLockTTL bounds how long a crashed submission can block the wizard.
const submitLockTTL = 30 * time.Second

type BookingWizardUsecase interface {
	GetSlotCatalogue(ctx context.Context) (*dto.SlotCatalogueResponse, error)
	GetState(ctx context.Context, clientID, lawyerID uuid.UUID) (*dto.BookingWizardStateResponse, error)
	SubmitSchedule(ctx context.Context, clientID, lawyerID uuid.UUID, req *dto.BookingScheduleRequest) (*dto.BookingQuoteResponse, error)
	SubmitContact(ctx context.Context, clientID, lawyerID uuid.UUID, req *dto.BookingContactRequest) error
	Submit(ctx context.Context, clientID, lawyerID uuid.UUID, req *dto.BookingSubmitRequest) (*dto.ConsultationResponse, error)
	Cancel(ctx context.Context, clientID, lawyerID uuid.UUID) error
}

type bookingWizardUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	store            cache.WizardStore
	lawyerRepo       repository.LawyerProfileRepository
	consultationRepo repository.ConsultationRepository
	auditService     service.AuditService
}

func NewBookingWizardUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	store cache.WizardStore,
	lawyerRepo repository.LawyerProfileRepository,
	consultationRepo repository.ConsultationRepository,
	auditService service.AuditService,
) BookingWizardUsecase {
	return &bookingWizardUsecase{
		db:               db,
		log:              log,
		store:            store,
		lawyerRepo:       lawyerRepo,
		consultationRepo: consultationRepo,
		auditService:     auditService,
	}
}

// GetSlotCatalogue returns the bookable dates and the fixed time grid.
func (u *bookingWizardUsecase) GetSlotCatalogue(ctx context.Context) (*dto.SlotCatalogueResponse, error) {
	dates, err := schedule.AvailableDates(time.Now(), schedule.DefaultWindowSize)
	if err != nil {
		u.log.Warnf("Failed to generate bookable dates: %+v", err)
		return nil, err
	}

	response := &dto.SlotCatalogueResponse{
		Dates: make([]string, len(dates)),
	}
	for i, d := range dates {
		response.Dates[i] = d.Format("2006-01-02")
	}
	for _, slot := range schedule.AvailableTimes() {
		response.Times = append(response.Times, dto.SlotTimeResponse{
			Label:  slot.Label,
			Period: string(slot.Period),
		})
	}
	return response, nil
}

func (u *bookingWizardUsecase) GetState(ctx context.Context, clientID, lawyerID uuid.UUID) (*dto.BookingWizardStateResponse, error) {
	session, err := u.store.GetBookingSession(ctx, clientID, lawyerID)
	if err != nil {
		u.log.Warnf("Failed to load booking wizard session: %+v", err)
		return nil, err
	}
	if session == nil {
		return nil, ErrWizardNotFound
	}
	return sessionToState(session), nil
}

// SubmitSchedule is step 1: date, time and duration. Passing the gate stores
// the fee quote computed by the pricing policy; the same function prices the
// final submission so quote and charge can never diverge.
func (u *bookingWizardUsecase) SubmitSchedule(ctx context.Context, clientID, lawyerID uuid.UUID, req *dto.BookingScheduleRequest) (*dto.BookingQuoteResponse, error) {
	lawyer, err := u.lawyerRepo.FindByUserID(u.db.WithContext(ctx), lawyerID)
	if err != nil {
		u.log.Warnf("Failed to find lawyer %s: %+v", lawyerID, err)
		return nil, err
	}
	if lawyer == nil {
		return nil, ErrLawyerNotFound
	}
	if !lawyer.IsComplete() {
		return nil, ErrLawyerNotBookable
	}

	if err := validateSchedule(req, time.Now()); err != nil {
		return nil, err
	}

	session, err := u.store.GetBookingSession(ctx, clientID, lawyerID)
	if err != nil {
		u.log.Warnf("Failed to load booking wizard session: %+v", err)
		return nil, err
	}
	if session == nil {
		session = &entity.BookingWizardSession{
			ClientID: clientID,
			LawyerID: lawyerID,
		}
	}

	session.Date = req.Date
	session.TimeLabel = req.TimeLabel
	session.DurationMinutes = req.DurationMinutes
	session.QuotedFee = pricing.ComputeFee(lawyer.BaseFee, req.DurationMinutes)
	if session.CompletedStep < entity.BookingStepSchedule {
		session.CompletedStep = entity.BookingStepSchedule
	}

	if err := u.store.SaveBookingSession(ctx, session); err != nil {
		u.log.Warnf("Failed to save booking wizard session: %+v", err)
		return nil, err
	}

	return &dto.BookingQuoteResponse{
		Fee:             session.QuotedFee,
		DurationMinutes: session.DurationMinutes,
		Date:            session.Date,
		TimeLabel:       session.TimeLabel,
	}, nil
}

// SubmitContact is step 2. It refuses to run before step 1 has passed.
func (u *bookingWizardUsecase) SubmitContact(ctx context.Context, clientID, lawyerID uuid.UUID, req *dto.BookingContactRequest) error {
	session, err := u.store.GetBookingSession(ctx, clientID, lawyerID)
	if err != nil {
		u.log.Warnf("Failed to load booking wizard session: %+v", err)
		return err
	}
	if session == nil {
		return ErrWizardNotFound
	}
	if !session.CanEnter(entity.BookingStepContact) {
		return ErrStepIncomplete
	}

	session.Name = req.Name
	session.Email = req.Email
	session.Phone = req.Phone
	if session.CompletedStep < entity.BookingStepContact {
		session.CompletedStep = entity.BookingStepContact
	}

	if err := u.store.SaveBookingSession(ctx, session); err != nil {
		u.log.Warnf("Failed to save booking wizard session: %+v", err)
		return err
	}
	return nil
}

// Submit is step 3 and the single creation call.
//
// Flow:
// 1. Gate: steps 1-2 complete, agreement flag set
// 2. Single-flight lock so a doubled tap sends exactly one create
// 3. Convert the display time to canonical 24-hour form
// 4. Create the consultation, status forced to pending, fee from the
//    pricing policy
// 5. On create failure: release the lock, keep the session intact so the
//    client can resubmit without re-entering anything
func (u *bookingWizardUsecase) Submit(ctx context.Context, clientID, lawyerID uuid.UUID, req *dto.BookingSubmitRequest) (*dto.ConsultationResponse, error) {
	session, err := u.store.GetBookingSession(ctx, clientID, lawyerID)
	if err != nil {
		u.log.Warnf("Failed to load booking wizard session: %+v", err)
		return nil, err
	}
	if session == nil {
		return nil, ErrWizardNotFound
	}
	if !session.CanEnter(entity.BookingStepReview) {
		return nil, ErrStepIncomplete
	}
	if !req.Agreement {
		return nil, ErrAgreementRequired
	}

	session.CaseType = req.CaseType
	session.CaseDescription = req.CaseDescription
	session.Agreement = true
	if session.CompletedStep < entity.BookingStepReview {
		session.CompletedStep = entity.BookingStepReview
	}

	lockKey := fmt.Sprintf("%s:%s", clientID, lawyerID)
	acquired, err := u.store.AcquireSubmitLock(ctx, lockKey, submitLockTTL)
	if err != nil {
		u.log.Warnf("Failed to acquire submit lock: %+v", err)
		return nil, err
	}
	if !acquired {
		return nil, ErrSubmissionInFlight
	}

	lawyer, err := u.lawyerRepo.FindByUserID(u.db.WithContext(ctx), lawyerID)
	if err != nil || lawyer == nil {
		u.releaseLock(lockKey)
		if err != nil {
			u.log.Warnf("Failed to find lawyer %s: %+v", lawyerID, err)
			return nil, err
		}
		return nil, ErrLawyerNotFound
	}

	scheduledDate, err := time.Parse("2006-01-02", session.Date)
	if err != nil {
		u.releaseLock(lockKey)
		return nil, ErrInvalidBookingDate
	}
	canonicalTime, err := schedule.To24Hour(session.TimeLabel)
	if err != nil {
		u.releaseLock(lockKey)
		return nil, ErrTimeNotBookable
	}

	consultation := &entity.Consultation{
		LawyerID:        lawyerID,
		ClientID:        clientID,
		ScheduledDate:   scheduledDate,
		ScheduledTime:   canonicalTime,
		DurationMinutes: session.DurationMinutes,
		CaseType:        session.CaseType,
		CaseDescription: session.CaseDescription,
		ContactName:     session.Name,
		ContactEmail:    session.Email,
		ContactPhone:    session.Phone,
		Fee:             pricing.ComputeFee(lawyer.BaseFee, session.DurationMinutes),
		Status:          entity.ConsultationStatusPending,
	}

	if err := u.consultationRepo.Create(u.db.WithContext(ctx), consultation); err != nil {
		u.log.Warnf("Failed to create consultation, keeping wizard session: %+v", err)
		u.releaseLock(lockKey)
		// Session survives so resubmission needs no re-entry
		if saveErr := u.store.SaveBookingSession(ctx, session); saveErr != nil {
			u.log.Warnf("Failed to save booking wizard session after create failure: %+v", saveErr)
		}
		return nil, err
	}

	if err := u.store.DeleteBookingSession(ctx, clientID, lawyerID); err != nil {
		u.log.Warnf("Failed to delete booking wizard session (non-fatal): %+v", err)
	}
	u.releaseLock(lockKey)

	if err := u.auditService.LogCreate(ctx, u.db.WithContext(ctx), &clientID, entity.AuditActionConsultationCreate, "consultation", consultation.ID.String(), string(consultation.Status)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	u.log.Infof("Consultation created: id=%s, lawyer=%s, client=%s, fee=%s", consultation.ID, lawyerID, clientID, consultation.Fee)
	return converter.ConsultationToResponse(consultation, time.Now()), nil
}

// Cancel abandons the wizard: the session is discarded and nothing else is
// called.
func (u *bookingWizardUsecase) Cancel(ctx context.Context, clientID, lawyerID uuid.UUID) error {
	if err := u.store.DeleteBookingSession(ctx, clientID, lawyerID); err != nil {
		u.log.Warnf("Failed to delete booking wizard session: %+v", err)
		return err
	}
	return nil
}

func (u *bookingWizardUsecase) releaseLock(key string) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := u.store.ReleaseSubmitLock(ctx, key); err != nil {
		u.log.Warnf("Failed to release submit lock %s: %+v", key, err)
	}
}

// validateSchedule applies the step 1 gate against reference time now.
func validateSchedule(req *dto.BookingScheduleRequest, now time.Time) error {
	if !entity.IsDurationTier(req.DurationMinutes) {
		return ErrInvalidDuration
	}
	if !schedule.IsAvailableTime(req.TimeLabel) {
		return ErrTimeNotBookable
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return ErrInvalidBookingDate
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if !date.After(today) {
		return ErrDateNotBookable
	}
	if date.Weekday() == schedule.BlackoutWeekday {
		return ErrDateNotBookable
	}
	return nil
}

func sessionToState(session *entity.BookingWizardSession) *dto.BookingWizardStateResponse {
	return &dto.BookingWizardStateResponse{
		CompletedStep:   session.CompletedStep,
		Date:            session.Date,
		TimeLabel:       session.TimeLabel,
		DurationMinutes: session.DurationMinutes,
		QuotedFee:       session.QuotedFee,
		Name:            session.Name,
		Email:           session.Email,
		Phone:           session.Phone,
		CaseType:        session.CaseType,
		CaseDescription: session.CaseDescription,
		Agreement:       session.Agreement,
	}
}
