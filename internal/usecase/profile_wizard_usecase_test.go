package usecase

import (
	"context"
	"fmt"
	"testing"
	"time"

	"legal-consult-api/internal/delivery/dto"
	"legal-consult-api/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type profileFixture struct {
	uc          ProfileWizardUsecase
	store       *fakeWizardStore
	lawyers     *fakeLawyerRepo
	experiences *fakeExperienceRepo
	educations  *fakeEducationRepo
	userID      uuid.UUID
}

func newProfileFixture(t *testing.T, profile *entity.LawyerProfile) *profileFixture {
	t.Helper()

	f := &profileFixture{
		store:       newFakeWizardStore(),
		experiences: &fakeExperienceRepo{},
		educations:  &fakeEducationRepo{},
	}
	if profile != nil {
		f.userID = profile.UserID
	} else {
		f.userID = uuid.New()
		profile = &entity.LawyerProfile{UserID: f.userID} // empty row from registration
	}
	f.lawyers = &fakeLawyerRepo{profile: profile}

	f.uc = NewProfileWizardUsecase(newTestDB(t), newTestLogger(), f.store, f.lawyers, f.experiences, f.educations, &fakeAuditService{})
	return f
}

func basicInfoRequest() *dto.ProfileBasicInfoRequest {
	return &dto.ProfileBasicInfoRequest{
		LawType:         "criminal",
		BaseFee:         decimal.NewFromInt(1500),
		YearsExperience: 5,
		PracticeAreas:   []string{"bail", "appeals"},
		Languages:       []string{"english"},
		PhotoURL:        "https://cdn.example.com/photos/new.jpg",
		PhotoChanged:    true,
		City:            "Delhi",
		Address:         "4 Court Lane",
	}
}

func (f *profileFixture) start(t *testing.T) {
	t.Helper()
	_, err := f.uc.Start(context.Background(), f.userID)
	require.NoError(t, err)
}

func (f *profileFixture) reachStage(t *testing.T, stage string) {
	t.Helper()
	session, err := f.store.GetProfileSession(context.Background(), f.userID)
	require.NoError(t, err)
	require.NotNil(t, session)
	session.Stage = stage
	require.NoError(t, f.store.SaveProfileSession(context.Background(), session))
}

func TestProfileWizardStartSnapshotsProfile(t *testing.T) {
	lawyerID := uuid.New()
	profile := completeLawyerProfile(lawyerID)
	f := newProfileFixture(t, profile)

	end := time.Date(2020, 6, 30, 0, 0, 0, 0, time.UTC)
	f.experiences.existing = []entity.WorkExperience{{
		ID:        uuid.New(),
		LawyerID:  lawyerID,
		Firm:      "Rao & Partners",
		Title:     "Associate",
		StartDate: time.Date(2016, 1, 4, 0, 0, 0, 0, time.UTC),
		EndDate:   &end,
	}}

	state, err := f.uc.Start(context.Background(), lawyerID)
	require.NoError(t, err)

	assert.Equal(t, entity.ProfileStageView, state.Stage)
	assert.True(t, state.HasProfile)
	assert.Equal(t, "corporate", state.BasicInfo.LawType)
	require.Len(t, state.Experiences, 1)
	assert.Equal(t, "2016-01-04", state.Experiences[0].StartDate)
	assert.Equal(t, "2020-06-30", state.Experiences[0].EndDate)
}

func TestProfileWizardBasicInfoPhotoSemantics(t *testing.T) {
	t.Run("first save requires a photo", func(t *testing.T) {
		f := newProfileFixture(t, nil)
		f.start(t)

		req := basicInfoRequest()
		req.PhotoChanged = false
		req.PhotoURL = ""
		_, err := f.uc.SaveBasicInfo(context.Background(), f.userID, req)
		assert.ErrorIs(t, err, ErrPhotoRequired)
		assert.Empty(t, f.lawyers.updated)
	})

	t.Run("edit with unchanged photo keeps the stored reference", func(t *testing.T) {
		profile := completeLawyerProfile(uuid.New())
		stored := profile.PhotoURL
		f := newProfileFixture(t, profile)
		f.start(t)

		req := basicInfoRequest()
		req.PhotoChanged = false
		req.PhotoURL = "" // stale reference must not be resent
		state, err := f.uc.SaveBasicInfo(context.Background(), f.userID, req)
		require.NoError(t, err)

		require.Len(t, f.lawyers.updated, 1)
		assert.Equal(t, stored, f.lawyers.updated[0].PhotoURL)
		assert.Equal(t, stored, state.BasicInfo.PhotoURL)
		assert.Equal(t, entity.ProfileStageBasicInfo, state.Stage)
	})

	t.Run("changed photo replaces the stored reference", func(t *testing.T) {
		f := newProfileFixture(t, completeLawyerProfile(uuid.New()))
		f.start(t)

		req := basicInfoRequest()
		_, err := f.uc.SaveBasicInfo(context.Background(), f.userID, req)
		require.NoError(t, err)

		require.Len(t, f.lawyers.updated, 1)
		assert.Equal(t, req.PhotoURL, f.lawyers.updated[0].PhotoURL)
	})

	t.Run("base fee below minimum is rejected", func(t *testing.T) {
		f := newProfileFixture(t, completeLawyerProfile(uuid.New()))
		f.start(t)

		req := basicInfoRequest()
		req.BaseFee = decimal.NewFromInt(499)
		_, err := f.uc.SaveBasicInfo(context.Background(), f.userID, req)
		assert.ErrorIs(t, err, ErrBaseFeeTooLow)
	})
}

func TestProfileWizardStageOrder(t *testing.T) {
	f := newProfileFixture(t, completeLawyerProfile(uuid.New()))
	f.start(t)

	_, err := f.uc.SaveWorkExperiences(context.Background(), f.userID, &dto.ProfileWorkExperienceRequest{})
	assert.ErrorIs(t, err, ErrStageIncomplete)

	f.reachStage(t, entity.ProfileStageBasicInfo)
	_, err = f.uc.SaveEducations(context.Background(), f.userID, &dto.ProfileEducationRequest{})
	assert.ErrorIs(t, err, ErrStageIncomplete)
}

func TestProfileWizardReconciliation(t *testing.T) {
	items := []dto.WorkExperienceItem{
		{Firm: "Rao & Partners", Title: "Associate", StartDate: "2016-01-04", EndDate: "2020-06-30"},
		{Firm: "Own practice", Title: "Principal", StartDate: "2020-07-01"},
	}

	t.Run("replaces the whole set", func(t *testing.T) {
		f := newProfileFixture(t, completeLawyerProfile(uuid.New()))
		f.start(t)
		f.reachStage(t, entity.ProfileStageBasicInfo)
		f.experiences.existing = []entity.WorkExperience{{ID: uuid.New()}, {ID: uuid.New()}}

		state, err := f.uc.SaveWorkExperiences(context.Background(), f.userID, &dto.ProfileWorkExperienceRequest{Items: items})
		require.NoError(t, err)

		assert.Len(t, f.experiences.deletes, 2)
		assert.Equal(t, 2, f.experiences.creates)
		assert.Equal(t, entity.ProfileStageWorkExperience, state.Stage)
		require.Len(t, state.Experiences, 2)
	})

	t.Run("delete failure issues no creates", func(t *testing.T) {
		f := newProfileFixture(t, completeLawyerProfile(uuid.New()))
		f.start(t)
		f.reachStage(t, entity.ProfileStageBasicInfo)
		f.experiences.existing = []entity.WorkExperience{{ID: uuid.New()}}
		f.experiences.deleteErr = fmt.Errorf("delete failed")

		_, err := f.uc.SaveWorkExperiences(context.Background(), f.userID, &dto.ProfileWorkExperienceRequest{Items: items})
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrPartialReconciliation)
		assert.Zero(t, f.experiences.creates)

		// Stage does not advance on failure
		session, serr := f.store.GetProfileSession(context.Background(), f.userID)
		require.NoError(t, serr)
		assert.Equal(t, entity.ProfileStageBasicInfo, session.Stage)
	})

	t.Run("create failure after deletes reports partial state", func(t *testing.T) {
		f := newProfileFixture(t, completeLawyerProfile(uuid.New()))
		f.start(t)
		f.reachStage(t, entity.ProfileStageBasicInfo)
		f.experiences.existing = []entity.WorkExperience{{ID: uuid.New()}}
		f.experiences.failCreateN = 2

		_, err := f.uc.SaveWorkExperiences(context.Background(), f.userID, &dto.ProfileWorkExperienceRequest{Items: items})
		assert.ErrorIs(t, err, ErrPartialReconciliation)

		session, serr := f.store.GetProfileSession(context.Background(), f.userID)
		require.NoError(t, serr)
		assert.Equal(t, entity.ProfileStageBasicInfo, session.Stage)
	})

	t.Run("invalid date range is rejected before any write", func(t *testing.T) {
		f := newProfileFixture(t, completeLawyerProfile(uuid.New()))
		f.start(t)
		f.reachStage(t, entity.ProfileStageBasicInfo)

		bad := []dto.WorkExperienceItem{{Firm: "X", Title: "Y", StartDate: "2020-07-01", EndDate: "2016-01-04"}}
		_, err := f.uc.SaveWorkExperiences(context.Background(), f.userID, &dto.ProfileWorkExperienceRequest{Items: bad})
		assert.ErrorIs(t, err, ErrInvalidDateRange)
		assert.Empty(t, f.experiences.deletes)
		assert.Zero(t, f.experiences.creates)
	})
}

func TestProfileWizardEducationStage(t *testing.T) {
	f := newProfileFixture(t, completeLawyerProfile(uuid.New()))
	f.start(t)
	f.reachStage(t, entity.ProfileStageWorkExperience)
	f.educations.existing = []entity.Education{{ID: uuid.New()}}

	state, err := f.uc.SaveEducations(context.Background(), f.userID, &dto.ProfileEducationRequest{
		Items: []dto.EducationItem{{Institution: "NLU Delhi", Degree: "LLB", StartDate: "2010-08-01", EndDate: "2013-05-31"}},
	})
	require.NoError(t, err)

	assert.Len(t, f.educations.deletes, 1)
	assert.Equal(t, 1, f.educations.creates)
	assert.Equal(t, entity.ProfileStageEducation, state.Stage)
}

func TestProfileWizardCancelDiscardsSession(t *testing.T) {
	f := newProfileFixture(t, completeLawyerProfile(uuid.New()))
	f.start(t)

	require.NoError(t, f.uc.Cancel(context.Background(), f.userID))

	_, err := f.uc.GetState(context.Background(), f.userID)
	assert.ErrorIs(t, err, ErrWizardNotFound)
	assert.Empty(t, f.lawyers.updated)
}
