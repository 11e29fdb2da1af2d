package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"regexp"
	"strings"

	"oakline/internal/domain"
	"oakline/internal/metrics"
	"oakline/internal/store"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// StatusUpdate is the result of a status transition operation.
type StatusUpdate struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

// InquiryService manages contact inquiries against the document store.
type InquiryService struct {
	store        store.Store
	emailService *EmailService
}

// NewInquiryService creates a new inquiry service
func NewInquiryService(st store.Store, emailService *EmailService) *InquiryService {
	return &InquiryService{store: st, emailService: emailService}
}

// Submit stores a new contact inquiry. The status is forced to "new"
// regardless of any caller-supplied value; id and timestamps are assigned by
// the store.
func (s *InquiryService) Submit(ctx context.Context, inq *domain.ContactInquiry) (*domain.ContactInquiry, error) {
	log.Printf("[INQUIRY] Submit request: name=%s, email=%s", strings.TrimSpace(inq.Name), strings.TrimSpace(inq.Email))

	if err := s.validateInquiry(inq); err != nil {
		log.Printf("[INQUIRY] Submit failed: validation error: %v", err)
		return nil, NewValidationError(err.Error())
	}

	inq.Name = strings.TrimSpace(inq.Name)
	inq.Email = strings.ToLower(strings.TrimSpace(inq.Email))
	inq.Subject = strings.TrimSpace(inq.Subject)
	inq.Message = strings.TrimSpace(inq.Message)
	inq.Status = domain.InquiryStatusNew

	doc, err := store.Encode(inq)
	if err != nil {
		return nil, NewInternalError("failed to encode inquiry", err)
	}
	if _, err := s.store.Insert(ctx, inq.Collection(), doc); err != nil {
		log.Printf("[INQUIRY] Submit failed: store error: %v", err)
		return nil, NewInternalError("failed to save contact inquiry", err)
	}

	var saved domain.ContactInquiry
	if err := store.Decode(doc, &saved); err != nil {
		return nil, NewInternalError("failed to decode inquiry", err)
	}

	log.Printf("[INQUIRY] Submit successful: id=%s, name=%s, email=%s", saved.ID, saved.Name, saved.Email)
	metrics.RecordInquirySubmission()

	// Email notification to admin (async, don't fail if email fails)
	go func() {
		if err := s.emailService.SendInquiryNotification(&saved); err != nil {
			log.Printf("[INQUIRY] Warning: failed to send notification email: %v", err)
		}
	}()

	return &saved, nil
}

// List returns inquiries ordered by creation time, most recent first. An
// empty filter or the "all" sentinel returns every inquiry.
func (s *InquiryService) List(ctx context.Context, statusFilter string) ([]domain.ContactInquiry, error) {
	log.Printf("[INQUIRY] List request: status=%s", statusFilter)

	q := store.Query{Desc: true}
	if statusFilter != "" && statusFilter != domain.StatusFilterAll {
		q.Filter = map[string]any{"status": statusFilter}
	}

	docs, err := s.store.Query(ctx, domain.ContactInquiry{}.Collection(), q)
	if err != nil {
		log.Printf("[INQUIRY] List failed: store error: %v", err)
		return nil, NewInternalError("failed to fetch contact inquiries", err)
	}

	inquiries := make([]domain.ContactInquiry, 0, len(docs))
	for _, doc := range docs {
		var inq domain.ContactInquiry
		if err := store.Decode(doc, &inq); err != nil {
			return nil, NewInternalError("failed to decode inquiry", err)
		}
		inquiries = append(inquiries, inq)
	}

	log.Printf("[INQUIRY] List successful: returned %d inquiries", len(inquiries))
	return inquiries, nil
}

// Get returns a single inquiry. A missing id yields a not-found error,
// distinct from a store failure.
func (s *InquiryService) Get(ctx context.Context, id string) (*domain.ContactInquiry, error) {
	log.Printf("[INQUIRY] Get request: id=%s", id)

	doc, err := s.store.Get(ctx, domain.ContactInquiry{}.Collection(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Printf("[INQUIRY] Get failed: id=%s not found", id)
			return nil, NewNotFoundError("Inquiry not found")
		}
		log.Printf("[INQUIRY] Get failed: store error: %v", err)
		return nil, NewInternalError("failed to fetch contact inquiry", err)
	}

	var inq domain.ContactInquiry
	if err := store.Decode(doc, &inq); err != nil {
		return nil, NewInternalError("failed to decode inquiry", err)
	}
	return &inq, nil
}

// UpdateStatus writes the new status unconditionally. Any member of the
// status domain is accepted as a target, including backward moves; only
// membership is checked. A missing id surfaces as whatever the store raises.
func (s *InquiryService) UpdateStatus(ctx context.Context, id string, status domain.InquiryStatus) (*StatusUpdate, error) {
	log.Printf("[INQUIRY] UpdateStatus request: id=%s, status=%s", id, status)

	if !status.Valid() {
		log.Printf("[INQUIRY] UpdateStatus failed: invalid status %q", status)
		return nil, NewBadRequestError(fmt.Sprintf("invalid status %q", status))
	}

	patch := store.Document{"status": string(status)}
	if err := s.store.Update(ctx, domain.ContactInquiry{}.Collection(), id, patch); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Printf("[INQUIRY] UpdateStatus failed: id=%s not found", id)
			return nil, NewNotFoundError("Inquiry not found")
		}
		log.Printf("[INQUIRY] UpdateStatus failed: store error: %v", err)
		return nil, NewInternalError("failed to update inquiry status", err)
	}

	log.Printf("[INQUIRY] UpdateStatus successful: id=%s, status=%s", id, status)
	metrics.RecordInquiryStatusChange(string(status))
	return &StatusUpdate{ID: id, Status: string(status)}, nil
}

// validateInquiry validates the contact form input
func (s *InquiryService) validateInquiry(inq *domain.ContactInquiry) error {
	name := strings.TrimSpace(inq.Name)
	if len(name) < 2 || len(name) > 100 {
		return fmt.Errorf("name must be between 2 and 100 characters")
	}

	if !emailRegex.MatchString(strings.TrimSpace(inq.Email)) {
		return fmt.Errorf("invalid email address")
	}

	subject := strings.TrimSpace(inq.Subject)
	if len(subject) > 200 {
		return fmt.Errorf("subject must not exceed 200 characters")
	}

	message := strings.TrimSpace(inq.Message)
	if len(message) < 1 {
		return fmt.Errorf("message is required")
	}
	if len(message) > 5000 {
		return fmt.Errorf("message must not exceed 5000 characters")
	}

	return nil
}
