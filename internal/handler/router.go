package handler

import (
	"net/http"

	"oakline/internal/services"
)

// Services bundles everything the router mounts.
type Services struct {
	Health   *services.HealthService
	Auth     *services.AuthService
	Inquiry  *services.InquiryService
	Review   *services.ReviewService
	Team     *services.TeamService
	Offering *services.OfferingService
}

// NewRouter builds the HTTP mux: public submission and listing endpoints,
// plus the admin back-office behind JWT auth.
func NewRouter(svcs Services) *http.ServeMux {
	mux := http.NewServeMux()

	healthHandler := NewHealthHandler(svcs.Health)
	authHandler := NewAuthHandler(svcs.Auth)
	inquiryHandler := NewInquiryHandler(svcs.Inquiry)
	reviewHandler := NewReviewHandler(svcs.Review)
	teamHandler := NewTeamHandler(svcs.Team)
	offeringHandler := NewOfferingHandler(svcs.Offering)

	auth := NewAuthMiddleware(svcs.Auth)

	// Public endpoints
	mux.HandleFunc("GET /health", healthHandler.Check)
	mux.HandleFunc("POST /api/v1/auth/login", authHandler.Login)
	mux.HandleFunc("POST /api/v1/contact", inquiryHandler.Submit)
	mux.HandleFunc("POST /api/v1/reviews", reviewHandler.Submit)
	mux.HandleFunc("GET /api/v1/reviews", reviewHandler.ListPublic)
	mux.HandleFunc("GET /api/v1/team", teamHandler.List)
	mux.HandleFunc("GET /api/v1/team/{id}", teamHandler.Get)
	mux.HandleFunc("GET /api/v1/offerings", offeringHandler.List)
	mux.HandleFunc("GET /api/v1/offerings/{id}", offeringHandler.Get)

	// Back-office endpoints (staff)
	mux.HandleFunc("GET /api/v1/auth/me", auth.RequireStaff(authHandler.Me))
	mux.HandleFunc("GET /api/v1/admin/inquiries", auth.RequireStaff(inquiryHandler.List))
	mux.HandleFunc("GET /api/v1/admin/inquiries/{id}", auth.RequireStaff(inquiryHandler.Get))
	mux.HandleFunc("PATCH /api/v1/admin/inquiries/{id}/status", auth.RequireStaff(inquiryHandler.UpdateStatus))
	mux.HandleFunc("GET /api/v1/admin/reviews", auth.RequireStaff(reviewHandler.List))
	mux.HandleFunc("GET /api/v1/admin/reviews/{id}", auth.RequireStaff(reviewHandler.Get))
	mux.HandleFunc("POST /api/v1/admin/reviews/{id}/moderate", auth.RequireStaff(reviewHandler.Moderate))
	mux.HandleFunc("PATCH /api/v1/admin/reviews/{id}/visibility", auth.RequireStaff(reviewHandler.SetVisibility))

	// Back-office endpoints (admin)
	mux.HandleFunc("POST /api/v1/admin/team", auth.RequireAdmin(teamHandler.Create))
	mux.HandleFunc("PUT /api/v1/admin/team/{id}", auth.RequireAdmin(teamHandler.Update))
	mux.HandleFunc("POST /api/v1/admin/offerings", auth.RequireAdmin(offeringHandler.Create))
	mux.HandleFunc("PUT /api/v1/admin/offerings/{id}", auth.RequireAdmin(offeringHandler.Update))

	return mux
}
