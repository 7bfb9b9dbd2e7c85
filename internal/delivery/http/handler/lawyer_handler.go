package handler

import (
	"net/http"

	"legal-consult-api/internal/usecase"
	"legal-consult-api/pkg/response"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type LawyerHandler struct {
	lawyerUsecase  usecase.LawyerUsecase
	bookingUsecase usecase.BookingWizardUsecase
}

func NewLawyerHandler(lawyerUsecase usecase.LawyerUsecase, bookingUsecase usecase.BookingWizardUsecase) *LawyerHandler {
	return &LawyerHandler{
		lawyerUsecase:  lawyerUsecase,
		bookingUsecase: bookingUsecase,
	}
}

// GetLawyers returns the public directory of bookable lawyers
func (h *LawyerHandler) GetLawyers(w http.ResponseWriter, r *http.Request) {
	lawyers, err := h.lawyerUsecase.GetLawyers(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get lawyers")
		return
	}

	response.Success(w, http.StatusOK, "Lawyers retrieved successfully", lawyers)
}

// GetLawyer returns one lawyer's public profile with work experience and
// education
func (h *LawyerHandler) GetLawyer(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	lawyerID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid lawyer ID", nil)
		return
	}

	lawyer, err := h.lawyerUsecase.GetLawyer(r.Context(), lawyerID)
	if err != nil {
		if err == usecase.ErrLawyerNotFound {
			response.NotFound(w, "Lawyer not found")
			return
		}
		response.InternalServerError(w, "Failed to get lawyer")
		return
	}

	response.Success(w, http.StatusOK, "Lawyer retrieved successfully", lawyer)
}

// GetSlotCatalogue returns the bookable dates and the fixed time grid
func (h *LawyerHandler) GetSlotCatalogue(w http.ResponseWriter, r *http.Request) {
	catalogue, err := h.bookingUsecase.GetSlotCatalogue(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to build slot catalogue")
		return
	}

	response.Success(w, http.StatusOK, "Slot catalogue retrieved successfully", catalogue)
}
