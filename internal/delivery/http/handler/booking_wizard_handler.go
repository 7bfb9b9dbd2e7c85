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
	"github.com/gorilla/mux"
)

type BookingWizardHandler struct {
	bookingUsecase usecase.BookingWizardUsecase
	validator      *validator.CustomValidator
}

func NewBookingWizardHandler(bookingUsecase usecase.BookingWizardUsecase, validator *validator.CustomValidator) *BookingWizardHandler {
	return &BookingWizardHandler{
		bookingUsecase: bookingUsecase,
		validator:      validator,
	}
}

// GetState returns the wizard's accumulated state for resuming
func (h *BookingWizardHandler) GetState(w http.ResponseWriter, r *http.Request) {
	clientID, lawyerID, ok := h.parties(w, r)
	if !ok {
		return
	}

	state, err := h.bookingUsecase.GetState(r.Context(), clientID, lawyerID)
	if err != nil {
		if err == usecase.ErrWizardNotFound {
			response.NotFound(w, "No booking in progress")
			return
		}
		response.InternalServerError(w, "Failed to get booking state")
		return
	}

	response.Success(w, http.StatusOK, "Booking state retrieved successfully", state)
}

// SubmitSchedule handles step 1: date, time, duration; responds with the
// fee quote
func (h *BookingWizardHandler) SubmitSchedule(w http.ResponseWriter, r *http.Request) {
	clientID, lawyerID, ok := h.parties(w, r)
	if !ok {
		return
	}

	var req dto.BookingScheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}
	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	quote, err := h.bookingUsecase.SubmitSchedule(r.Context(), clientID, lawyerID, &req)
	if err != nil {
		switch err {
		case usecase.ErrLawyerNotFound:
			response.NotFound(w, "Lawyer not found")
		case usecase.ErrLawyerNotBookable:
			response.UnprocessableEntity(w, "Lawyer is not accepting bookings")
		case usecase.ErrInvalidBookingDate, usecase.ErrDateNotBookable,
			usecase.ErrTimeNotBookable, usecase.ErrInvalidDuration:
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		default:
			response.InternalServerError(w, "Failed to save booking step")
		}
		return
	}

	response.Success(w, http.StatusOK, "Schedule saved successfully", quote)
}

// SubmitContact handles step 2: contact details
func (h *BookingWizardHandler) SubmitContact(w http.ResponseWriter, r *http.Request) {
	clientID, lawyerID, ok := h.parties(w, r)
	if !ok {
		return
	}

	var req dto.BookingContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}
	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	if err := h.bookingUsecase.SubmitContact(r.Context(), clientID, lawyerID, &req); err != nil {
		switch err {
		case usecase.ErrWizardNotFound:
			response.NotFound(w, "No booking in progress")
		case usecase.ErrStepIncomplete:
			response.UnprocessableEntity(w, "Complete the schedule step first")
		default:
			response.InternalServerError(w, "Failed to save booking step")
		}
		return
	}

	response.Success(w, http.StatusOK, "Contact saved successfully", nil)
}

// Submit handles step 3: review, agreement and final submission
func (h *BookingWizardHandler) Submit(w http.ResponseWriter, r *http.Request) {
	clientID, lawyerID, ok := h.parties(w, r)
	if !ok {
		return
	}

	var req dto.BookingSubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}
	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	consultation, err := h.bookingUsecase.Submit(r.Context(), clientID, lawyerID, &req)
	if err != nil {
		switch err {
		case usecase.ErrWizardNotFound:
			response.NotFound(w, "No booking in progress")
		case usecase.ErrStepIncomplete:
			response.UnprocessableEntity(w, "Complete the earlier steps first")
		case usecase.ErrAgreementRequired:
			response.UnprocessableEntity(w, "Terms agreement is required")
		case usecase.ErrSubmissionInFlight:
			response.Conflict(w, "A submission is already in progress")
		case usecase.ErrLawyerNotFound:
			response.NotFound(w, "Lawyer not found")
		default:
			response.InternalServerError(w, "Failed to submit booking")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Consultation booked successfully", consultation)
}

// Cancel abandons the wizard and discards its session
func (h *BookingWizardHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	clientID, lawyerID, ok := h.parties(w, r)
	if !ok {
		return
	}

	if err := h.bookingUsecase.Cancel(r.Context(), clientID, lawyerID); err != nil {
		response.InternalServerError(w, "Failed to cancel booking")
		return
	}

	response.Success(w, http.StatusOK, "Booking cancelled successfully", nil)
}

func (h *BookingWizardHandler) parties(w http.ResponseWriter, r *http.Request) (clientID, lawyerID uuid.UUID, ok bool) {
	clientID, found := middleware.GetUserIDFromContext(r.Context())
	if !found {
		response.Unauthorized(w, "Invalid token")
		return uuid.Nil, uuid.Nil, false
	}

	vars := mux.Vars(r)
	lawyerID, err := uuid.Parse(vars["lawyerId"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid lawyer ID", nil)
		return uuid.Nil, uuid.Nil, false
	}
	return clientID, lawyerID, true
}
