package handler

import (
	"encoding/json"
	"net/http"

	"legal-consult-api/internal/delivery/dto"
	"legal-consult-api/internal/delivery/http/middleware"
	"legal-consult-api/internal/usecase"
	"legal-consult-api/pkg/response"
	"legal-consult-api/pkg/validator"

	"github.com/google/uuid"
)

type ProfileWizardHandler struct {
	profileUsecase usecase.ProfileWizardUsecase
	validator      *validator.CustomValidator
}

func NewProfileWizardHandler(profileUsecase usecase.ProfileWizardUsecase, validator *validator.CustomValidator) *ProfileWizardHandler {
	return &ProfileWizardHandler{
		profileUsecase: profileUsecase,
		validator:      validator,
	}
}

// Start opens the wizard with a snapshot of the persisted profile
func (h *ProfileWizardHandler) Start(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	state, err := h.profileUsecase.Start(r.Context(), userID)
	if err != nil {
		if err == usecase.ErrProfileNotFound {
			response.NotFound(w, "Lawyer profile not found")
			return
		}
		response.InternalServerError(w, "Failed to start profile wizard")
		return
	}

	response.Success(w, http.StatusOK, "Profile wizard started successfully", state)
}

// GetState returns the wizard's current stage and drafts
func (h *ProfileWizardHandler) GetState(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	state, err := h.profileUsecase.GetState(r.Context(), userID)
	if err != nil {
		if err == usecase.ErrWizardNotFound {
			response.NotFound(w, "No profile wizard in progress")
			return
		}
		response.InternalServerError(w, "Failed to get profile wizard state")
		return
	}

	response.Success(w, http.StatusOK, "Profile wizard state retrieved successfully", state)
}

// SaveBasicInfo persists the basic_info stage
func (h *ProfileWizardHandler) SaveBasicInfo(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	var req dto.ProfileBasicInfoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}
	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	state, err := h.profileUsecase.SaveBasicInfo(r.Context(), userID, &req)
	if err != nil {
		switch err {
		case usecase.ErrWizardNotFound:
			response.NotFound(w, "No profile wizard in progress")
		case usecase.ErrProfileNotFound:
			response.NotFound(w, "Lawyer profile not found")
		case usecase.ErrBaseFeeTooLow:
			response.Error(w, http.StatusBadRequest, "Base fee is below the published minimum", nil)
		case usecase.ErrPhotoRequired:
			response.Error(w, http.StatusBadRequest, "A profile photo is required", nil)
		default:
			response.InternalServerError(w, "Failed to save profile")
		}
		return
	}

	response.Success(w, http.StatusOK, "Profile saved successfully", state)
}

// SaveWorkExperiences replaces the work experience records
func (h *ProfileWizardHandler) SaveWorkExperiences(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	var req dto.ProfileWorkExperienceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}
	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	state, err := h.profileUsecase.SaveWorkExperiences(r.Context(), userID, &req)
	if err != nil {
		h.writeStageError(w, err, "Failed to save work experience")
		return
	}

	response.Success(w, http.StatusOK, "Work experience saved successfully", state)
}

// SaveEducations replaces the education records
func (h *ProfileWizardHandler) SaveEducations(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	var req dto.ProfileEducationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}
	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	state, err := h.profileUsecase.SaveEducations(r.Context(), userID, &req)
	if err != nil {
		h.writeStageError(w, err, "Failed to save education")
		return
	}

	response.Success(w, http.StatusOK, "Education saved successfully", state)
}

// Cancel discards the wizard session without writing anything
func (h *ProfileWizardHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	if err := h.profileUsecase.Cancel(r.Context(), userID); err != nil {
		response.InternalServerError(w, "Failed to cancel profile wizard")
		return
	}

	response.Success(w, http.StatusOK, "Profile wizard cancelled successfully", nil)
}

func (h *ProfileWizardHandler) writeStageError(w http.ResponseWriter, err error, fallback string) {
	switch err {
	case usecase.ErrWizardNotFound:
		response.NotFound(w, "No profile wizard in progress")
	case usecase.ErrStageIncomplete:
		response.UnprocessableEntity(w, "Complete the earlier stages first")
	case usecase.ErrInvalidDateRange:
		response.Error(w, http.StatusBadRequest, "Invalid date or date range", nil)
	case usecase.ErrPartialReconciliation:
		response.BadGateway(w, "Records were partially replaced, resubmit to restore them")
	default:
		response.InternalServerError(w, fallback)
	}
}

func (h *ProfileWizardHandler) userID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return uuid.Nil, false
	}
	return userID, true
}
