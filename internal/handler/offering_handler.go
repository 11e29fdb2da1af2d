package handler

import (
	"net/http"

	"oakline/internal/domain"
	"oakline/internal/services"
)

// OfferingHandler handles service offering listing and admin management.
type OfferingHandler struct {
	offeringService *services.OfferingService
}

// NewOfferingHandler creates an OfferingHandler with the given service.
func NewOfferingHandler(offeringService *services.OfferingService) *OfferingHandler {
	return &OfferingHandler{offeringService: offeringService}
}

// offeringRequest is the JSON body for create and update.
type offeringRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Order       int    `json:"order"`
}

func (req *offeringRequest) toDomain() *domain.Offering {
	return &domain.Offering{
		Title:       req.Title,
		Description: req.Description,
		Icon:        req.Icon,
		Order:       req.Order,
	}
}

// List handles GET /api/v1/offerings.
func (h *OfferingHandler) List(w http.ResponseWriter, r *http.Request) {
	offerings, err := h.offeringService.List(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, offerings)
}

// Get handles GET /api/v1/offerings/{id}.
func (h *OfferingHandler) Get(w http.ResponseWriter, r *http.Request) {
	offering, err := h.offeringService.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, offering)
}

// Create handles POST /api/v1/admin/offerings.
func (h *OfferingHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req offeringRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, err)
		return
	}

	saved, err := h.offeringService.Create(r.Context(), req.toDomain())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, saved)
}

// Update handles PUT /api/v1/admin/offerings/{id}.
func (h *OfferingHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req offeringRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, err)
		return
	}

	updated, err := h.offeringService.Update(r.Context(), r.PathValue("id"), req.toDomain())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, updated)
}
