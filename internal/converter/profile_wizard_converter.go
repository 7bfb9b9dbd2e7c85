package converter

import (
	"legal-consult-api/internal/delivery/dto"
	"legal-consult-api/internal/domain/entity"
)

// ProfileWizardSessionToResponse converts a wizard session to its DTO
func ProfileWizardSessionToResponse(session *entity.ProfileWizardSession) *dto.ProfileWizardStateResponse {
	if session == nil {
		return nil
	}

	response := &dto.ProfileWizardStateResponse{
		Stage:      session.Stage,
		HasProfile: session.HasProfile,
		BasicInfo: dto.ProfileBasicInfoView{
			LawType:         session.Draft.LawType,
			BaseFee:         session.Draft.BaseFee,
			YearsExperience: session.Draft.YearsExperience,
			PracticeAreas:   session.Draft.PracticeAreas,
			Languages:       session.Draft.Languages,
			PhotoURL:        session.Draft.PhotoURL,
			City:            session.Draft.City,
			Address:         session.Draft.Address,
			About:           session.Draft.About,
		},
		Experiences: make([]dto.WorkExperienceItem, 0, len(session.Experiences)),
		Educations:  make([]dto.EducationItem, 0, len(session.Educations)),
	}

	for _, draft := range session.Experiences {
		response.Experiences = append(response.Experiences, dto.WorkExperienceItem{
			Firm:        draft.Firm,
			Title:       draft.Title,
			StartDate:   draft.StartDate,
			EndDate:     draft.EndDate,
			Description: draft.Description,
		})
	}
	for _, draft := range session.Educations {
		response.Educations = append(response.Educations, dto.EducationItem{
			Institution: draft.Institution,
			Degree:      draft.Degree,
			StartDate:   draft.StartDate,
			EndDate:     draft.EndDate,
			Description: draft.Description,
		})
	}

	return response
}
