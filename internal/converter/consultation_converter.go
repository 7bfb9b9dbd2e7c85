package converter

import (
	"time"

	"legal-consult-api/internal/delivery/dto"
	"legal-consult-api/internal/domain/entity"
)

// ConsultationToResponse converts a Consultation entity to its DTO. The
// stored status and the derived display status are both carried so clients
// can tell a real transition from a view-level classification.
func ConsultationToResponse(consultation *entity.Consultation, now time.Time) *dto.ConsultationResponse {
	if consultation == nil {
		return nil
	}

	response := &dto.ConsultationResponse{
		ID:              consultation.ID,
		LawyerID:        consultation.LawyerID,
		ClientID:        consultation.ClientID,
		ScheduledDate:   consultation.ScheduledDate.Format(dateLayout),
		ScheduledTime:   consultation.ScheduledTime,
		DurationMinutes: consultation.DurationMinutes,
		CaseType:        consultation.CaseType,
		CaseDescription: consultation.CaseDescription,
		ContactName:     consultation.ContactName,
		ContactPhone:    consultation.ContactPhone,
		Fee:             consultation.Fee,
		Status:          string(consultation.Status),
		DisplayStatus:   string(consultation.DisplayStatus(now)),
		Upcoming:        consultation.IsUpcoming(now),
		CreatedAt:       consultation.CreatedAt,
		UpdatedAt:       consultation.UpdatedAt,
	}

	if consultation.Lawyer.User.FullName != "" {
		response.LawyerName = consultation.Lawyer.User.FullName
	}
	if consultation.Client.FullName != "" {
		response.ClientName = consultation.Client.FullName
	}

	return response
}

// ConsultationsToResponses converts a slice of Consultation entities to DTOs
func ConsultationsToResponses(consultations []entity.Consultation, now time.Time) []dto.ConsultationResponse {
	responses := make([]dto.ConsultationResponse, len(consultations))
	for i, consultation := range consultations {
		resp := ConsultationToResponse(&consultation, now)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
