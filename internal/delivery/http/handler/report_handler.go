package handler

import (
	"net/http"

	"salon-booking-engine/internal/usecase"
	"salon-booking-engine/pkg/response"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type ReportHandler struct {
	reportUsecase usecase.ReportUsecase
}

func NewReportHandler(reportUsecase usecase.ReportUsecase) *ReportHandler {
	return &ReportHandler{reportUsecase: reportUsecase}
}

// GetFinancialSummary reports the month of ?date=YYYY-MM-DD, defaulting
// to the current month.
func (h *ReportHandler) GetFinancialSummary(w http.ResponseWriter, r *http.Request) {
	businessID, err := uuid.Parse(mux.Vars(r)["businessId"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid business ID", nil)
		return
	}

	summary, err := h.reportUsecase.SummarizeFinancials(r.Context(), businessID, r.URL.Query().Get("date"))
	if err != nil {
		switch err {
		case usecase.ErrBusinessNotFound:
			response.NotFound(w, "Business not found")
		case usecase.ErrInvalidDate:
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		default:
			response.InternalServerError(w, "Failed to build financial summary")
		}
		return
	}

	response.Success(w, http.StatusOK, "Financial summary retrieved successfully", summary)
}
