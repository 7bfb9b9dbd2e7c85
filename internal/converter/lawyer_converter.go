package converter

import (
	"legal-consult-api/internal/delivery/dto"
	"legal-consult-api/internal/domain/entity"
)

const dateLayout = "2006-01-02"

// LawyerProfileToResponse converts a LawyerProfile entity to LawyerResponse DTO
func LawyerProfileToResponse(profile *entity.LawyerProfile) *dto.LawyerResponse {
	if profile == nil {
		return nil
	}

	response := &dto.LawyerResponse{
		ID:              profile.UserID,
		FullName:        profile.User.FullName,
		LawType:         profile.LawType,
		BaseFee:         profile.BaseFee,
		Rating:          profile.Rating,
		YearsExperience: profile.YearsExperience,
		PracticeAreas:   profile.PracticeAreas,
		Languages:       profile.Languages,
		PhotoURL:        profile.PhotoURL,
		City:            profile.City,
		Address:         profile.Address,
		About:           profile.About,
		IsComplete:      profile.IsComplete(),
		UpdatedAt:       profile.UpdatedAt,
	}

	for _, exp := range profile.WorkExperiences {
		response.WorkExperiences = append(response.WorkExperiences, WorkExperienceToResponse(&exp))
	}
	for _, edu := range profile.Educations {
		response.Educations = append(response.Educations, EducationToResponse(&edu))
	}

	return response
}

// WorkExperienceToResponse converts a WorkExperience entity to its DTO
func WorkExperienceToResponse(record *entity.WorkExperience) dto.WorkExperienceResponse {
	response := dto.WorkExperienceResponse{
		ID:          record.ID,
		Firm:        record.Firm,
		Title:       record.Title,
		StartDate:   record.StartDate.Format(dateLayout),
		Description: record.Description,
	}
	if record.EndDate != nil {
		response.EndDate = record.EndDate.Format(dateLayout)
	}
	return response
}

// EducationToResponse converts an Education entity to its DTO
func EducationToResponse(record *entity.Education) dto.EducationResponse {
	response := dto.EducationResponse{
		ID:          record.ID,
		Institution: record.Institution,
		Degree:      record.Degree,
		StartDate:   record.StartDate.Format(dateLayout),
		Description: record.Description,
	}
	if record.EndDate != nil {
		response.EndDate = record.EndDate.Format(dateLayout)
	}
	return response
}
