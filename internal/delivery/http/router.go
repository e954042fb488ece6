package http

import (
	"net/http"

	"salon-booking-engine/internal/delivery/http/handler"
	"salon-booking-engine/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router              *mux.Router
	appointmentHandler  *handler.AppointmentHandler
	availabilityHandler *handler.AvailabilityHandler
	professionalHandler *handler.ProfessionalHandler
	serviceHandler      *handler.ServiceHandler
	reportHandler       *handler.ReportHandler
	eventHandler        *handler.EventHandler
	authMiddleware      *middleware.AuthMiddleware
	corsMiddleware      *middleware.CORSMiddleware
}

func NewRouter(
	appointmentHandler *handler.AppointmentHandler,
	availabilityHandler *handler.AvailabilityHandler,
	professionalHandler *handler.ProfessionalHandler,
	serviceHandler *handler.ServiceHandler,
	reportHandler *handler.ReportHandler,
	eventHandler *handler.EventHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:              mux.NewRouter(),
		appointmentHandler:  appointmentHandler,
		availabilityHandler: availabilityHandler,
		professionalHandler: professionalHandler,
		serviceHandler:      serviceHandler,
		reportHandler:       reportHandler,
		eventHandler:        eventHandler,
		authMiddleware:      authMiddleware,
		corsMiddleware:      corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Public booking surface: clients browse availability and book
	// without an account.
	public := api.PathPrefix("/businesses/{businessId}").Subrouter()
	public.HandleFunc("/available-slots", r.availabilityHandler.GetAvailableSlots).Methods(http.MethodGet)
	public.HandleFunc("/appointments", r.appointmentHandler.CreateAppointment).Methods(http.MethodPost)

	// Management surface (protected, business scoped)
	protected := api.PathPrefix("/businesses/{businessId}").Subrouter()
	protected.Use(r.authMiddleware.Authenticate)
	protected.Use(middleware.RequireBusinessScope)

	// Appointment ledger
	protected.HandleFunc("/appointments", r.appointmentHandler.ListAppointments).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{id}/status", r.appointmentHandler.TransitionStatus).Methods(http.MethodPatch)

	// Professional management
	protected.HandleFunc("/professionals", r.professionalHandler.CreateProfessional).Methods(http.MethodPost)
	protected.HandleFunc("/professionals", r.professionalHandler.ListProfessionals).Methods(http.MethodGet)
	protected.HandleFunc("/professionals/{id}", r.professionalHandler.GetProfessional).Methods(http.MethodGet)
	protected.HandleFunc("/professionals/{id}", r.professionalHandler.UpdateProfessional).Methods(http.MethodPut)
	protected.HandleFunc("/professionals/{id}/working-hours", r.professionalHandler.GetWorkingHours).Methods(http.MethodGet)
	protected.HandleFunc("/professionals/{id}/working-hours", r.professionalHandler.UpdateWorkingHours).Methods(http.MethodPut)

	// Service catalog
	protected.HandleFunc("/services", r.serviceHandler.CreateService).Methods(http.MethodPost)
	protected.HandleFunc("/services", r.serviceHandler.ListServices).Methods(http.MethodGet)
	protected.HandleFunc("/services/{id}", r.serviceHandler.GetService).Methods(http.MethodGet)
	protected.HandleFunc("/services/{id}", r.serviceHandler.UpdateService).Methods(http.MethodPut)

	// Reports and event trail
	protected.HandleFunc("/reports/financial-summary", r.reportHandler.GetFinancialSummary).Methods(http.MethodGet)
	protected.HandleFunc("/events", r.eventHandler.ListEvents).Methods(http.MethodGet)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
