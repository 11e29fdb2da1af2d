package handler

import (
	"net/http"

	"oakline/internal/domain"
	"oakline/internal/services"
)

// ReviewHandler handles public review submission and admin moderation.
type ReviewHandler struct {
	reviewService *services.ReviewService
}

// NewReviewHandler creates a ReviewHandler with the given service.
func NewReviewHandler(reviewService *services.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService}
}

// submitReviewRequest is the expected JSON body for POST /api/v1/reviews.
// Status and isPublic are deliberately absent: the service forces pending
// and hidden regardless of what a caller might send.
type submitReviewRequest struct {
	Name        string   `json:"name"`
	Position    string   `json:"position"`
	Company     string   `json:"company"`
	Content     string   `json:"content"`
	Image       string   `json:"image"`
	Rating      int      `json:"rating"`
	Tags        []string `json:"tags,omitempty"`
	ProjectType *string  `json:"projectType,omitempty"`
}

// Submit handles POST /api/v1/reviews.
func (h *ReviewHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req submitReviewRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, err)
		return
	}

	rev := &domain.Review{
		Name:        req.Name,
		Position:    req.Position,
		Company:     req.Company,
		Content:     req.Content,
		Image:       req.Image,
		Rating:      req.Rating,
		Tags:        req.Tags,
		ProjectType: req.ProjectType,
	}

	saved, err := h.reviewService.Submit(r.Context(), rev)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, saved)
}

// ListPublic handles GET /api/v1/reviews: approved, publicly visible
// reviews for the marketing site.
func (h *ReviewHandler) ListPublic(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.reviewService.ListPublic(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, reviews)
}

// List handles GET /api/v1/admin/reviews with an optional status filter.
func (h *ReviewHandler) List(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.reviewService.List(r.Context(), r.URL.Query().Get("status"))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, reviews)
}

// Get handles GET /api/v1/admin/reviews/{id}.
func (h *ReviewHandler) Get(w http.ResponseWriter, r *http.Request) {
	rev, err := h.reviewService.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, rev)
}

// moderateRequest is the JSON body for POST .../reviews/{id}/moderate.
type moderateRequest struct {
	Status string `json:"status"`
}

// Moderate handles POST /api/v1/admin/reviews/{id}/moderate. The moderator
// identity is taken from the authenticated user, not the request body.
func (h *ReviewHandler) Moderate(w http.ResponseWriter, r *http.Request) {
	var req moderateRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, err)
		return
	}

	reviewedBy := ""
	if user, ok := UserFromContext(r.Context()); ok {
		reviewedBy = user.Username
	}

	result, err := h.reviewService.Moderate(r.Context(), r.PathValue("id"), domain.ReviewStatus(req.Status), reviewedBy)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, result)
}

// visibilityRequest is the JSON body for PATCH .../reviews/{id}/visibility.
type visibilityRequest struct {
	IsPublic bool `json:"isPublic"`
}

// SetVisibility handles PATCH /api/v1/admin/reviews/{id}/visibility.
func (h *ReviewHandler) SetVisibility(w http.ResponseWriter, r *http.Request) {
	var req visibilityRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, err)
		return
	}

	if err := h.reviewService.SetVisibility(r.Context(), r.PathValue("id"), req.IsPublic); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"id": r.PathValue("id"), "isPublic": req.IsPublic})
}
