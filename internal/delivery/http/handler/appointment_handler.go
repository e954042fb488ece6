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

type AppointmentHandler struct {
	appointmentUsecase usecase.AppointmentUsecase
	validator          *validator.CustomValidator
}

func NewAppointmentHandler(appointmentUsecase usecase.AppointmentUsecase, validator *validator.CustomValidator) *AppointmentHandler {
	return &AppointmentHandler{
		appointmentUsecase: appointmentUsecase,
		validator:          validator,
	}
}

func (h *AppointmentHandler) CreateAppointment(w http.ResponseWriter, r *http.Request) {
	businessID, err := uuid.Parse(mux.Vars(r)["businessId"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid business ID", nil)
		return
	}

	var req dto.CreateAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	appointment, err := h.appointmentUsecase.CreateAppointment(r.Context(), businessID, &req)
	if err != nil {
		switch err {
		case usecase.ErrBusinessNotFound:
			response.NotFound(w, "Business not found")
		case usecase.ErrProfessionalNotFound:
			response.NotFound(w, "Professional not found or inactive")
		case usecase.ErrServiceNotFound:
			response.NotFound(w, "Service not found or inactive")
		case usecase.ErrInvalidDate, usecase.ErrInvalidTimeFormat:
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		case usecase.ErrOutsideWorkingHours:
			response.UnprocessableEntity(w, "Requested time is outside the professional's working hours")
		case usecase.ErrTimeSlotTaken:
			response.Conflict(w, "Requested time overlaps an existing appointment")
		default:
			response.InternalServerError(w, "Failed to create appointment")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Appointment created successfully", appointment)
}

func (h *AppointmentHandler) ListAppointments(w http.ResponseWriter, r *http.Request) {
	businessID, err := uuid.Parse(mux.Vars(r)["businessId"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid business ID", nil)
		return
	}

	query := r.URL.Query()
	filter := &entity.AppointmentFilter{
		StartAt:        query.Get("start_at"),
		EndAt:          query.Get("end_at"),
		ProfessionalID: query.Get("professional_id"),
		Status:         query.Get("status"),
	}

	appointments, err := h.appointmentUsecase.ListAppointments(r.Context(), businessID, filter)
	if err != nil {
		response.InternalServerError(w, "Failed to list appointments")
		return
	}

	response.Success(w, http.StatusOK, "Appointments retrieved successfully", appointments)
}

func (h *AppointmentHandler) TransitionStatus(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	businessID, err := uuid.Parse(vars["businessId"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid business ID", nil)
		return
	}
	appointmentID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid appointment ID", nil)
		return
	}

	var req dto.TransitionStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	appointment, err := h.appointmentUsecase.TransitionStatus(r.Context(), businessID, appointmentID, entity.AppointmentStatus(req.Status))
	if err != nil {
		switch err {
		case usecase.ErrAppointmentNotFound:
			response.NotFound(w, "Appointment not found")
		case usecase.ErrInvalidStatus:
			response.Error(w, http.StatusBadRequest, "Unknown appointment status", nil)
		case usecase.ErrInvalidStatusTransition:
			response.Conflict(w, "Status transition not permitted from the current state")
		default:
			response.InternalServerError(w, "Failed to update appointment status")
		}
		return
	}

	response.Success(w, http.StatusOK, "Appointment status updated successfully", appointment)
}
