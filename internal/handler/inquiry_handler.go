package handler

import (
	"net/http"

	"oakline/internal/domain"
	"oakline/internal/services"
)

// InquiryHandler handles contact form submission and admin workflow.
type InquiryHandler struct {
	inquiryService *services.InquiryService
}

// NewInquiryHandler creates an InquiryHandler with the given service.
func NewInquiryHandler(inquiryService *services.InquiryService) *InquiryHandler {
	return &InquiryHandler{inquiryService: inquiryService}
}

// submitInquiryRequest is the expected JSON body for POST /api/v1/contact.
// Status is deliberately absent: submissions always start as "new".
type submitInquiryRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// Submit handles POST /api/v1/contact.
func (h *InquiryHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req submitInquiryRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, err)
		return
	}

	inq := &domain.ContactInquiry{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	}

	saved, err := h.inquiryService.Submit(r.Context(), inq)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, saved)
}

// List handles GET /api/v1/admin/inquiries. The status query parameter
// filters by workflow state; empty or "all" returns everything.
func (h *InquiryHandler) List(w http.ResponseWriter, r *http.Request) {
	inquiries, err := h.inquiryService.List(r.Context(), r.URL.Query().Get("status"))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, inquiries)
}

// Get handles GET /api/v1/admin/inquiries/{id}.
func (h *InquiryHandler) Get(w http.ResponseWriter, r *http.Request) {
	inq, err := h.inquiryService.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, inq)
}

// updateStatusRequest is the JSON body for PATCH .../inquiries/{id}/status.
type updateStatusRequest struct {
	Status string `json:"status"`
}

// UpdateStatus handles PATCH /api/v1/admin/inquiries/{id}/status.
func (h *InquiryHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req updateStatusRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, err)
		return
	}

	result, err := h.inquiryService.UpdateStatus(r.Context(), r.PathValue("id"), domain.InquiryStatus(req.Status))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, result)
}
