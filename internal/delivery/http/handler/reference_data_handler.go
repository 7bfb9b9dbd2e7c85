package handler

import (
	"net/http"

	"legal-consult-api/internal/infrastructure/directory"
	"legal-consult-api/internal/usecase"
	"legal-consult-api/pkg/response"

	"github.com/gorilla/mux"
)

type ReferenceDataHandler struct {
	referenceUsecase usecase.ReferenceDataUsecase
}

func NewReferenceDataHandler(referenceUsecase usecase.ReferenceDataUsecase) *ReferenceDataHandler {
	return &ReferenceDataHandler{
		referenceUsecase: referenceUsecase,
	}
}

// GetOptions serves one reference-data kind for dropdowns
func (h *ReferenceDataHandler) GetOptions(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	kind := vars["kind"]

	options, err := h.referenceUsecase.GetOptions(r.Context(), kind)
	if err != nil {
		switch err {
		case usecase.ErrUnknownReferenceKind:
			response.NotFound(w, "Unknown reference data kind")
		case directory.ErrRateLimited:
			response.ServiceUnavailable(w, "Reference directory is rate limiting, try again shortly")
		default:
			response.BadGateway(w, "Reference directory is unavailable")
		}
		return
	}

	response.Success(w, http.StatusOK, "Reference data retrieved successfully", options)
}
