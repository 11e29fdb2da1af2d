package handler

import (
	"net/http"

	"oakline/internal/domain"
	"oakline/internal/services"
)

// TeamHandler handles team member listing and admin management.
type TeamHandler struct {
	teamService *services.TeamService
}

// NewTeamHandler creates a TeamHandler with the given service.
func NewTeamHandler(teamService *services.TeamService) *TeamHandler {
	return &TeamHandler{teamService: teamService}
}

// memberRequest is the JSON body for create and update.
type memberRequest struct {
	Name        string             `json:"name"`
	Role        string             `json:"role"`
	Image       string             `json:"image"`
	Bio         string             `json:"bio"`
	SocialLinks domain.SocialLinks `json:"socialLinks"`
}

func (req *memberRequest) toDomain() *domain.TeamMember {
	return &domain.TeamMember{
		Name:        req.Name,
		Role:        req.Role,
		Image:       req.Image,
		Bio:         req.Bio,
		SocialLinks: req.SocialLinks,
	}
}

// List handles GET /api/v1/team.
func (h *TeamHandler) List(w http.ResponseWriter, r *http.Request) {
	members, err := h.teamService.List(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, members)
}

// Get handles GET /api/v1/team/{id}.
func (h *TeamHandler) Get(w http.ResponseWriter, r *http.Request) {
	member, err := h.teamService.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, member)
}

// Create handles POST /api/v1/admin/team.
func (h *TeamHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req memberRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, err)
		return
	}

	saved, err := h.teamService.Create(r.Context(), req.toDomain())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, saved)
}

// Update handles PUT /api/v1/admin/team/{id}.
func (h *TeamHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req memberRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, err)
		return
	}

	updated, err := h.teamService.Update(r.Context(), r.PathValue("id"), req.toDomain())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, updated)
}
