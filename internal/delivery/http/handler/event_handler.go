package handler

import (
	"net/http"
	"strconv"

	"salon-booking-engine/internal/usecase"
	"salon-booking-engine/pkg/response"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type EventHandler struct {
	eventUsecase usecase.EventUsecase
}

func NewEventHandler(eventUsecase usecase.EventUsecase) *EventHandler {
	return &EventHandler{eventUsecase: eventUsecase}
}

func (h *EventHandler) ListEvents(w http.ResponseWriter, r *http.Request) {
	businessID, err := uuid.Parse(mux.Vars(r)["businessId"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid business ID", nil)
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil || limit < 0 {
			response.Error(w, http.StatusBadRequest, "Invalid limit", nil)
			return
		}
	}

	events, err := h.eventUsecase.ListEvents(r.Context(), businessID, limit)
	if err != nil {
		response.InternalServerError(w, "Failed to list events")
		return
	}

	response.Success(w, http.StatusOK, "Events retrieved successfully", events)
}
