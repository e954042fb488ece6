package handler

import (
	"encoding/json"
	"net/http"

	"salon-booking-engine/internal/delivery/dto"
	"salon-booking-engine/internal/domain/entity"
	"salon-booking-engine/internal/usecase"
	"salon-booking-engine/pkg/response"
	"salon-booking-engine/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type ProfessionalHandler struct {
	professionalUsecase usecase.ProfessionalUsecase
	validator           *validator.CustomValidator
}

func NewProfessionalHandler(professionalUsecase usecase.ProfessionalUsecase, validator *validator.CustomValidator) *ProfessionalHandler {
	return &ProfessionalHandler{
		professionalUsecase: professionalUsecase,
		validator:           validator,
	}
}

func (h *ProfessionalHandler) CreateProfessional(w http.ResponseWriter, r *http.Request) {
	businessID, err := uuid.Parse(mux.Vars(r)["businessId"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid business ID", nil)
		return
	}

	var req dto.CreateProfessionalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	professional, err := h.professionalUsecase.CreateProfessional(r.Context(), businessID, &req)
	if err != nil {
		switch err {
		case usecase.ErrBusinessNotFound:
			response.NotFound(w, "Business not found")
		case entity.ErrInvalidClock, entity.ErrInvalidWorkingHours:
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		default:
			response.InternalServerError(w, "Failed to create professional")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Professional created successfully", professional)
}

func (h *ProfessionalHandler) ListProfessionals(w http.ResponseWriter, r *http.Request) {
	businessID, err := uuid.Parse(mux.Vars(r)["businessId"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid business ID", nil)
		return
	}

	professionals, err := h.professionalUsecase.ListProfessionals(r.Context(), businessID)
	if err != nil {
		response.InternalServerError(w, "Failed to list professionals")
		return
	}

	response.Success(w, http.StatusOK, "Professionals retrieved successfully", professionals)
}

func (h *ProfessionalHandler) GetProfessional(w http.ResponseWriter, r *http.Request) {
	businessID, professionalID, ok := h.parseIDs(w, r)
	if !ok {
		return
	}

	professional, err := h.professionalUsecase.GetProfessional(r.Context(), businessID, professionalID)
	if err != nil {
		switch err {
		case usecase.ErrProfessionalNotFound:
			response.NotFound(w, "Professional not found")
		default:
			response.InternalServerError(w, "Failed to get professional")
		}
		return
	}

	response.Success(w, http.StatusOK, "Professional retrieved successfully", professional)
}

func (h *ProfessionalHandler) UpdateProfessional(w http.ResponseWriter, r *http.Request) {
	businessID, professionalID, ok := h.parseIDs(w, r)
	if !ok {
		return
	}

	var req dto.UpdateProfessionalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	professional, err := h.professionalUsecase.UpdateProfessional(r.Context(), businessID, professionalID, &req)
	if err != nil {
		switch err {
		case usecase.ErrProfessionalNotFound:
			response.NotFound(w, "Professional not found")
		default:
			response.InternalServerError(w, "Failed to update professional")
		}
		return
	}

	response.Success(w, http.StatusOK, "Professional updated successfully", professional)
}

func (h *ProfessionalHandler) GetWorkingHours(w http.ResponseWriter, r *http.Request) {
	businessID, professionalID, ok := h.parseIDs(w, r)
	if !ok {
		return
	}

	hours, err := h.professionalUsecase.GetWorkingHours(r.Context(), businessID, professionalID)
	if err != nil {
		switch err {
		case usecase.ErrProfessionalNotFound:
			response.NotFound(w, "Professional not found")
		default:
			response.InternalServerError(w, "Failed to get working hours")
		}
		return
	}

	response.Success(w, http.StatusOK, "Working hours retrieved successfully", hours)
}

func (h *ProfessionalHandler) UpdateWorkingHours(w http.ResponseWriter, r *http.Request) {
	businessID, professionalID, ok := h.parseIDs(w, r)
	if !ok {
		return
	}

	var req dto.UpdateWorkingHoursRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	hours, err := h.professionalUsecase.UpdateWorkingHours(r.Context(), businessID, professionalID, &req)
	if err != nil {
		switch err {
		case usecase.ErrProfessionalNotFound:
			response.NotFound(w, "Professional not found")
		case entity.ErrInvalidClock, entity.ErrInvalidWorkingHours:
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		default:
			response.InternalServerError(w, "Failed to update working hours")
		}
		return
	}

	response.Success(w, http.StatusOK, "Working hours updated successfully", hours)
}

func (h *ProfessionalHandler) parseIDs(w http.ResponseWriter, r *http.Request) (uuid.UUID, uuid.UUID, bool) {
	vars := mux.Vars(r)
	businessID, err := uuid.Parse(vars["businessId"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid business ID", nil)
		return uuid.Nil, uuid.Nil, false
	}
	professionalID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid professional ID", nil)
		return uuid.Nil, uuid.Nil, false
	}
	return businessID, professionalID, true
}
