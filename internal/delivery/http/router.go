package http

import (
	"net/http"

	"legal-consult-api/internal/delivery/http/handler"
	"legal-consult-api/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router               *mux.Router
	authHandler          *handler.AuthHandler
	lawyerHandler        *handler.LawyerHandler
	consultationHandler  *handler.ConsultationHandler
	bookingHandler       *handler.BookingWizardHandler
	profileHandler       *handler.ProfileWizardHandler
	referenceDataHandler *handler.ReferenceDataHandler
	auditLogHandler      *handler.AuditLogHandler
	authMiddleware       *middleware.AuthMiddleware
	corsMiddleware       *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	lawyerHandler *handler.LawyerHandler,
	consultationHandler *handler.ConsultationHandler,
	bookingHandler *handler.BookingWizardHandler,
	profileHandler *handler.ProfileWizardHandler,
	referenceDataHandler *handler.ReferenceDataHandler,
	auditLogHandler *handler.AuditLogHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:               mux.NewRouter(),
		authHandler:          authHandler,
		lawyerHandler:        lawyerHandler,
		consultationHandler:  consultationHandler,
		bookingHandler:       bookingHandler,
		profileHandler:       profileHandler,
		referenceDataHandler: referenceDataHandler,
		auditLogHandler:      auditLogHandler,
		authMiddleware:       authMiddleware,
		corsMiddleware:       corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/register/client", r.authHandler.RegisterClient).Methods(http.MethodPost)
	auth.HandleFunc("/register/lawyer", r.authHandler.RegisterLawyer).Methods(http.MethodPost)
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", r.authHandler.RefreshToken).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.GetCurrentUser).Methods(http.MethodGet)

	// Public directory: lawyer listing, profiles, slots, reference data
	api.HandleFunc("/lawyers", r.lawyerHandler.GetLawyers).Methods(http.MethodGet)
	api.HandleFunc("/lawyers/{id}", r.lawyerHandler.GetLawyer).Methods(http.MethodGet)
	api.HandleFunc("/slots", r.lawyerHandler.GetSlotCatalogue).Methods(http.MethodGet)
	api.HandleFunc("/reference/{kind}", r.referenceDataHandler.GetOptions).Methods(http.MethodGet)

	// Booking wizard (client only)
	booking := api.PathPrefix("/booking").Subrouter()
	booking.Use(r.authMiddleware.Authenticate)
	booking.Use(middleware.RequireClient)
	booking.HandleFunc("/{lawyerId}", r.bookingHandler.GetState).Methods(http.MethodGet)
	booking.HandleFunc("/{lawyerId}/schedule", r.bookingHandler.SubmitSchedule).Methods(http.MethodPut)
	booking.HandleFunc("/{lawyerId}/contact", r.bookingHandler.SubmitContact).Methods(http.MethodPut)
	booking.HandleFunc("/{lawyerId}/submit", r.bookingHandler.Submit).Methods(http.MethodPost)
	booking.HandleFunc("/{lawyerId}", r.bookingHandler.Cancel).Methods(http.MethodDelete)

	// Client's own consultations
	consultations := api.PathPrefix("/consultations").Subrouter()
	consultations.Use(r.authMiddleware.Authenticate)
	consultations.Use(middleware.RequireClient)
	consultations.HandleFunc("", r.consultationHandler.GetMyConsultations).Methods(http.MethodGet)

	// Lawyer dashboard: inbox, lifecycle, profile wizard (lawyer only)
	lawyer := api.PathPrefix("/lawyer").Subrouter()
	lawyer.Use(r.authMiddleware.Authenticate)
	lawyer.Use(middleware.RequireLawyer)
	lawyer.HandleFunc("/consultations", r.consultationHandler.GetInbox).Methods(http.MethodGet)
	lawyer.HandleFunc("/consultations/{id}/confirm", r.consultationHandler.Confirm).Methods(http.MethodPost)
	lawyer.HandleFunc("/consultations/{id}/reject", r.consultationHandler.Reject).Methods(http.MethodPost)
	lawyer.HandleFunc("/profile/wizard", r.profileHandler.Start).Methods(http.MethodPost)
	lawyer.HandleFunc("/profile/wizard", r.profileHandler.GetState).Methods(http.MethodGet)
	lawyer.HandleFunc("/profile/wizard", r.profileHandler.Cancel).Methods(http.MethodDelete)
	lawyer.HandleFunc("/profile/wizard/basic-info", r.profileHandler.SaveBasicInfo).Methods(http.MethodPut)
	lawyer.HandleFunc("/profile/wizard/work-experiences", r.profileHandler.SaveWorkExperiences).Methods(http.MethodPut)
	lawyer.HandleFunc("/profile/wizard/educations", r.profileHandler.SaveEducations).Methods(http.MethodPut)

	// Admin routes (protected - admin only)
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(r.authMiddleware.Authenticate)
	admin.Use(middleware.RequireAdmin)
	admin.HandleFunc("/audit-logs", r.auditLogHandler.GetAllAuditLogs).Methods(http.MethodGet)
	admin.HandleFunc("/audit-logs/{id}", r.auditLogHandler.GetAuditLog).Methods(http.MethodGet)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
