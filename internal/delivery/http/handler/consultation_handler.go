package handler

import (
	"context"
	"net/http"

	"legal-consult-api/internal/delivery/dto"
	"legal-consult-api/internal/delivery/http/middleware"
	"legal-consult-api/internal/domain/entity"
	"legal-consult-api/internal/usecase"
	"legal-consult-api/pkg/response"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type ConsultationHandler struct {
	consultationUsecase usecase.ConsultationUsecase
}

func NewConsultationHandler(consultationUsecase usecase.ConsultationUsecase) *ConsultationHandler {
	return &ConsultationHandler{
		consultationUsecase: consultationUsecase,
	}
}

// GetMyConsultations returns the authenticated client's bookings
func (h *ConsultationHandler) GetMyConsultations(w http.ResponseWriter, r *http.Request) {
	clientID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	consultations, err := h.consultationUsecase.GetClientConsultations(r.Context(), clientID)
	if err != nil {
		response.InternalServerError(w, "Failed to get consultations")
		return
	}

	response.Success(w, http.StatusOK, "Consultations retrieved successfully", consultations)
}

// GetInbox returns the authenticated lawyer's booking inbox
func (h *ConsultationHandler) GetInbox(w http.ResponseWriter, r *http.Request) {
	lawyerID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	consultations, err := h.consultationUsecase.GetLawyerConsultations(r.Context(), lawyerID)
	if err != nil {
		response.InternalServerError(w, "Failed to get consultations")
		return
	}

	response.Success(w, http.StatusOK, "Consultations retrieved successfully", consultations)
}

// Confirm accepts a pending consultation
func (h *ConsultationHandler) Confirm(w http.ResponseWriter, r *http.Request) {
	h.applyTransition(w, r, h.consultationUsecase.Confirm)
}

// Reject declines a pending consultation
func (h *ConsultationHandler) Reject(w http.ResponseWriter, r *http.Request) {
	h.applyTransition(w, r, h.consultationUsecase.Reject)
}

func (h *ConsultationHandler) applyTransition(
	w http.ResponseWriter,
	r *http.Request,
	apply func(ctx context.Context, actorLawyerID, consultationID uuid.UUID) (*dto.ConsultationResponse, error),
) {
	lawyerID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	vars := mux.Vars(r)
	consultationID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid consultation ID", nil)
		return
	}

	consultation, err := apply(r.Context(), lawyerID, consultationID)
	if err != nil {
		switch err {
		case usecase.ErrConsultationNotFound:
			response.NotFound(w, "Consultation not found")
		case entity.ErrNotConsultationOwner:
			response.Forbidden(w, "Consultation belongs to another lawyer")
		case entity.ErrInvalidTransition:
			response.UnprocessableEntity(w, "Consultation is no longer pending")
		case usecase.ErrStatusConflict:
			response.Conflict(w, "Consultation was updated concurrently, refresh and try again")
		default:
			response.InternalServerError(w, "Failed to update consultation")
		}
		return
	}

	response.Success(w, http.StatusOK, "Consultation updated successfully", consultation)
}
