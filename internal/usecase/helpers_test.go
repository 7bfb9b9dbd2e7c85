package usecase

import (
	"context"
	"fmt"
	"io"
	"testing"
	"time"

	"legal-consult-api/internal/domain/entity"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB returns a gorm handle backed by sqlmock. The fakes below ignore
// the db argument entirely; the handle only exists so WithContext works.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	sqlDB, _, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger:               logger.Discard,
		DisableAutomaticPing: true,
	})
	require.NoError(t, err)
	return db
}

func newTestLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func completeLawyerProfile(userID uuid.UUID) *entity.LawyerProfile {
	return &entity.LawyerProfile{
		UserID:          userID,
		LawType:         "corporate",
		BaseFee:         decimal.NewFromInt(2000),
		YearsExperience: 8,
		PracticeAreas:   entity.StringList{"mergers", "compliance"},
		Languages:       entity.StringList{"english", "hindi"},
		PhotoURL:        "https://cdn.example.com/photos/a.jpg",
		City:            "Mumbai",
		Address:         "12 Marine Drive",
		About:           "Corporate law practice",
	}
}

// fakeWizardStore is an in-memory WizardStore.
type fakeWizardStore struct {
	bookingSessions map[string]*entity.BookingWizardSession
	profileSessions map[uuid.UUID]*entity.ProfileWizardSession
	locks           map[string]bool
	saveErr         error
}

func newFakeWizardStore() *fakeWizardStore {
	return &fakeWizardStore{
		bookingSessions: map[string]*entity.BookingWizardSession{},
		profileSessions: map[uuid.UUID]*entity.ProfileWizardSession{},
		locks:           map[string]bool{},
	}
}

func bookingSessionKey(clientID, lawyerID uuid.UUID) string {
	return fmt.Sprintf("%s:%s", clientID, lawyerID)
}

func (s *fakeWizardStore) GetBookingSession(ctx context.Context, clientID, lawyerID uuid.UUID) (*entity.BookingWizardSession, error) {
	session, ok := s.bookingSessions[bookingSessionKey(clientID, lawyerID)]
	if !ok {
		return nil, nil
	}
	copied := *session
	return &copied, nil
}

func (s *fakeWizardStore) SaveBookingSession(ctx context.Context, session *entity.BookingWizardSession) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	copied := *session
	s.bookingSessions[bookingSessionKey(session.ClientID, session.LawyerID)] = &copied
	return nil
}

func (s *fakeWizardStore) DeleteBookingSession(ctx context.Context, clientID, lawyerID uuid.UUID) error {
	delete(s.bookingSessions, bookingSessionKey(clientID, lawyerID))
	return nil
}

func (s *fakeWizardStore) GetProfileSession(ctx context.Context, userID uuid.UUID) (*entity.ProfileWizardSession, error) {
	session, ok := s.profileSessions[userID]
	if !ok {
		return nil, nil
	}
	copied := *session
	return &copied, nil
}

func (s *fakeWizardStore) SaveProfileSession(ctx context.Context, session *entity.ProfileWizardSession) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	copied := *session
	s.profileSessions[session.UserID] = &copied
	return nil
}

func (s *fakeWizardStore) DeleteProfileSession(ctx context.Context, userID uuid.UUID) error {
	delete(s.profileSessions, userID)
	return nil
}

func (s *fakeWizardStore) AcquireSubmitLock(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	if s.locks[key] {
		return false, nil
	}
	s.locks[key] = true
	return true, nil
}

func (s *fakeWizardStore) ReleaseSubmitLock(ctx context.Context, key string) error {
	delete(s.locks, key)
	return nil
}

// fakeLawyerRepo serves one profile and records updates.
type fakeLawyerRepo struct {
	profile *entity.LawyerProfile
	findErr error
	updated []*entity.LawyerProfile
}

func (r *fakeLawyerRepo) Create(db *gorm.DB, profile *entity.LawyerProfile) error {
	return nil
}

func (r *fakeLawyerRepo) FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.LawyerProfile, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	if r.profile == nil || r.profile.UserID != userID {
		return nil, nil
	}
	copied := *r.profile
	return &copied, nil
}

func (r *fakeLawyerRepo) FindAll(db *gorm.DB) ([]entity.LawyerProfile, error) {
	if r.profile == nil {
		return nil, nil
	}
	return []entity.LawyerProfile{*r.profile}, nil
}

func (r *fakeLawyerRepo) Update(db *gorm.DB, profile *entity.LawyerProfile) error {
	copied := *profile
	r.updated = append(r.updated, &copied)
	r.profile = &copied
	return nil
}

// fakeConsultationRepo records creates and serves a canned consultation.
type fakeConsultationRepo struct {
	created    []*entity.Consultation
	createErr  error
	consult    *entity.Consultation
	updateRows int64
	updateErr  error
	updates    int
}

func (r *fakeConsultationRepo) Create(db *gorm.DB, consultation *entity.Consultation) error {
	if r.createErr != nil {
		return r.createErr
	}
	consultation.ID = uuid.New()
	copied := *consultation
	r.created = append(r.created, &copied)
	return nil
}

func (r *fakeConsultationRepo) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Consultation, error) {
	if r.consult == nil || r.consult.ID != id {
		return nil, nil
	}
	copied := *r.consult
	return &copied, nil
}

func (r *fakeConsultationRepo) FindByClientID(db *gorm.DB, clientID uuid.UUID) ([]entity.Consultation, error) {
	return nil, nil
}

func (r *fakeConsultationRepo) FindByLawyerID(db *gorm.DB, lawyerID uuid.UUID) ([]entity.Consultation, error) {
	return nil, nil
}

func (r *fakeConsultationRepo) UpdateStatusFromPending(db *gorm.DB, id uuid.UUID, status entity.ConsultationStatus) (int64, error) {
	r.updates++
	if r.updateErr != nil {
		return 0, r.updateErr
	}
	return r.updateRows, nil
}

// fakeChildRepo backs both work-experience and education reconciliation
// tests: configurable delete/create failures plus call recording.
type fakeChildRepo struct {
	deleteErr   error
	createErr   error
	failCreateN int // fail the Nth create (1-based); 0 disables
	deletes     []uuid.UUID
	creates     int
}

func (r *fakeChildRepo) delete(id uuid.UUID) error {
	if r.deleteErr != nil {
		return r.deleteErr
	}
	r.deletes = append(r.deletes, id)
	return nil
}

func (r *fakeChildRepo) create() error {
	r.creates++
	if r.createErr != nil {
		return r.createErr
	}
	if r.failCreateN > 0 && r.creates == r.failCreateN {
		return fmt.Errorf("insert failed")
	}
	return nil
}

type fakeExperienceRepo struct {
	fakeChildRepo
	existing []entity.WorkExperience
}

func (r *fakeExperienceRepo) Create(db *gorm.DB, record *entity.WorkExperience) error {
	return r.create()
}

func (r *fakeExperienceRepo) FindByLawyerID(db *gorm.DB, lawyerID uuid.UUID) ([]entity.WorkExperience, error) {
	return r.existing, nil
}

func (r *fakeExperienceRepo) Delete(db *gorm.DB, id uuid.UUID) error {
	return r.delete(id)
}

type fakeEducationRepo struct {
	fakeChildRepo
	existing []entity.Education
}

func (r *fakeEducationRepo) Create(db *gorm.DB, record *entity.Education) error {
	return r.create()
}

func (r *fakeEducationRepo) FindByLawyerID(db *gorm.DB, lawyerID uuid.UUID) ([]entity.Education, error) {
	return r.existing, nil
}

func (r *fakeEducationRepo) Delete(db *gorm.DB, id uuid.UUID) error {
	return r.delete(id)
}

// fakeAuditService counts log calls and never fails.
type fakeAuditService struct {
	entries int
}

func (s *fakeAuditService) LogCreate(ctx context.Context, tx *gorm.DB, userID *uuid.UUID, action string, entityName string, entityID string, newValue interface{}) error {
	s.entries++
	return nil
}

func (s *fakeAuditService) LogUpdate(ctx context.Context, tx *gorm.DB, userID *uuid.UUID, action string, entityName string, entityID string, oldValue, newValue interface{}) error {
	s.entries++
	return nil
}

func (s *fakeAuditService) LogDelete(ctx context.Context, tx *gorm.DB, userID *uuid.UUID, action string, entityName string, entityID string, oldValue interface{}) error {
	s.entries++
	return nil
}
