package handler

import (
	"net/http"
	"strconv"

	"salon-booking-engine/internal/delivery/dto"
	"salon-booking-engine/internal/usecase"
	"salon-booking-engine/pkg/response"
	"salon-booking-engine/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type AvailabilityHandler struct {
	availabilityUsecase usecase.AvailabilityUsecase
	validator           *validator.CustomValidator
}

func NewAvailabilityHandler(availabilityUsecase usecase.AvailabilityUsecase, validator *validator.CustomValidator) *AvailabilityHandler {
	return &AvailabilityHandler{
		availabilityUsecase: availabilityUsecase,
		validator:           validator,
	}
}

// GetAvailableSlots reads its parameters from the query string so the
// result stays cacheable by intermediaries.
func (h *AvailabilityHandler) GetAvailableSlots(w http.ResponseWriter, r *http.Request) {
	businessID, err := uuid.Parse(mux.Vars(r)["businessId"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid business ID", nil)
		return
	}

	query := r.URL.Query()

	professionalID, err := uuid.Parse(query.Get("professional_id"))
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid professional ID", nil)
		return
	}
	serviceID, err := uuid.Parse(query.Get("service_id"))
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid service ID", nil)
		return
	}

	stepMinutes := 0
	if raw := query.Get("step_minutes"); raw != "" {
		stepMinutes, err = strconv.Atoi(raw)
		if err != nil {
			response.Error(w, http.StatusBadRequest, "Invalid step_minutes", nil)
			return
		}
	}

	req := &dto.AvailableSlotsRequest{
		ProfessionalID: professionalID,
		ServiceID:      serviceID,
		Date:           query.Get("date"),
		StepMinutes:    stepMinutes,
	}

	if err := h.validator.Validate(req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	slots, err := h.availabilityUsecase.ComputeAvailableSlots(r.Context(), businessID, req)
	if err != nil {
		switch err {
		case usecase.ErrProfessionalNotFound:
			response.NotFound(w, "Professional not found or inactive")
		case usecase.ErrServiceNotFound:
			response.NotFound(w, "Service not found or inactive")
		case usecase.ErrInvalidDate:
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		default:
			response.InternalServerError(w, "Failed to compute available slots")
		}
		return
	}

	response.Success(w, http.StatusOK, "Available slots retrieved successfully", slots)
}
