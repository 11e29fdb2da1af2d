package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"oakline/internal/domain"
	"oakline/internal/metrics"
	"oakline/internal/store"
)

// ReviewService manages review submission and moderation against the
// document store. Reviews are soft-moderated: there is no delete path, a
// rejected status acts as the tombstone.
type ReviewService struct {
	store        store.Store
	emailService *EmailService
}

// NewReviewService creates a new review service
func NewReviewService(st store.Store, emailService *EmailService) *ReviewService {
	return &ReviewService{store: st, emailService: emailService}
}

// Submit stores a new review. Status is forced to "pending" and isPublic to
// false regardless of caller-supplied values. The rating is validated before
// any store call is issued.
func (s *ReviewService) Submit(ctx context.Context, rev *domain.Review) (*domain.Review, error) {
	log.Printf("[REVIEW] Submit request: name=%s, company=%s, rating=%d", strings.TrimSpace(rev.Name), strings.TrimSpace(rev.Company), rev.Rating)

	if err := s.validateReview(rev); err != nil {
		log.Printf("[REVIEW] Submit failed: validation error: %v", err)
		return nil, NewValidationError(err.Error())
	}

	rev.Name = strings.TrimSpace(rev.Name)
	rev.Position = strings.TrimSpace(rev.Position)
	rev.Company = strings.TrimSpace(rev.Company)
	rev.Content = strings.TrimSpace(rev.Content)
	rev.Status = domain.ReviewStatusPending
	rev.IsPublic = false
	rev.ReviewedAt = nil
	rev.ReviewedBy = nil
	rev.SubmittedAt = time.Now().UTC()

	doc, err := store.Encode(rev)
	if err != nil {
		return nil, NewInternalError("failed to encode review", err)
	}
	if _, err := s.store.Insert(ctx, rev.Collection(), doc); err != nil {
		log.Printf("[REVIEW] Submit failed: store error: %v", err)
		return nil, NewInternalError("failed to save review", err)
	}

	var saved domain.Review
	if err := store.Decode(doc, &saved); err != nil {
		return nil, NewInternalError("failed to decode review", err)
	}

	log.Printf("[REVIEW] Submit successful: id=%s, name=%s", saved.ID, saved.Name)
	metrics.RecordReviewSubmission()

	go func() {
		if err := s.emailService.SendReviewNotification(&saved); err != nil {
			log.Printf("[REVIEW] Warning: failed to send notification email: %v", err)
		}
	}()

	return &saved, nil
}

// List returns reviews ordered by creation time, most recent first. An empty
// filter or the "all" sentinel returns every review.
func (s *ReviewService) List(ctx context.Context, statusFilter string) ([]domain.Review, error) {
	log.Printf("[REVIEW] List request: status=%s", statusFilter)

	q := store.Query{Desc: true}
	if statusFilter != "" && statusFilter != domain.StatusFilterAll {
		q.Filter = map[string]any{"status": statusFilter}
	}
	return s.queryReviews(ctx, q)
}

// ListPublic returns approved reviews whose visibility gate is open. This is
// the only place the approved+public conjunction is applied; the moderation
// operations themselves leave the two fields independent.
func (s *ReviewService) ListPublic(ctx context.Context) ([]domain.Review, error) {
	q := store.Query{
		Desc: true,
		Filter: map[string]any{
			"status":   string(domain.ReviewStatusApproved),
			"isPublic": true,
		},
	}
	return s.queryReviews(ctx, q)
}

// Get returns a single review. A missing id yields a not-found error.
func (s *ReviewService) Get(ctx context.Context, id string) (*domain.Review, error) {
	log.Printf("[REVIEW] Get request: id=%s", id)

	doc, err := s.store.Get(ctx, domain.Review{}.Collection(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Printf("[REVIEW] Get failed: id=%s not found", id)
			return nil, NewNotFoundError("Review not found")
		}
		log.Printf("[REVIEW] Get failed: store error: %v", err)
		return nil, NewInternalError("failed to fetch review", err)
	}

	var rev domain.Review
	if err := store.Decode(doc, &rev); err != nil {
		return nil, NewInternalError("failed to decode review", err)
	}
	return &rev, nil
}

// Moderate transitions a review into a terminal decision state and stamps
// reviewedAt/reviewedBy. Pending is not a valid target: no operation moves a
// review back out of a decision.
func (s *ReviewService) Moderate(ctx context.Context, id string, status domain.ReviewStatus, reviewedBy string) (*StatusUpdate, error) {
	log.Printf("[REVIEW] Moderate request: id=%s, status=%s, by=%s", id, status, reviewedBy)

	if !status.IsDecision() {
		log.Printf("[REVIEW] Moderate failed: invalid target status %q", status)
		return nil, NewBadRequestError(fmt.Sprintf("status must be %q or %q", domain.ReviewStatusApproved, domain.ReviewStatusRejected))
	}

	patch := store.Document{
		"status":     string(status),
		"reviewedAt": time.Now().UTC().Format(time.RFC3339Nano),
		"reviewedBy": reviewedBy,
	}
	if err := s.store.Update(ctx, domain.Review{}.Collection(), id, patch); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Printf("[REVIEW] Moderate failed: id=%s not found", id)
			return nil, NewNotFoundError("Review not found")
		}
		log.Printf("[REVIEW] Moderate failed: store error: %v", err)
		return nil, NewInternalError("failed to moderate review", err)
	}

	log.Printf("[REVIEW] Moderate successful: id=%s, status=%s", id, status)
	metrics.RecordReviewModeration(string(status))
	return &StatusUpdate{ID: id, Status: string(status)}, nil
}

// SetVisibility toggles the isPublic gate. Visibility is orthogonal to
// moderation status; this layer does not require the review to be approved.
func (s *ReviewService) SetVisibility(ctx context.Context, id string, isPublic bool) error {
	log.Printf("[REVIEW] SetVisibility request: id=%s, isPublic=%v", id, isPublic)

	patch := store.Document{"isPublic": isPublic}
	if err := s.store.Update(ctx, domain.Review{}.Collection(), id, patch); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Printf("[REVIEW] SetVisibility failed: id=%s not found", id)
			return NewNotFoundError("Review not found")
		}
		log.Printf("[REVIEW] SetVisibility failed: store error: %v", err)
		return NewInternalError("failed to update review visibility", err)
	}

	log.Printf("[REVIEW] SetVisibility successful: id=%s, isPublic=%v", id, isPublic)
	return nil
}

func (s *ReviewService) queryReviews(ctx context.Context, q store.Query) ([]domain.Review, error) {
	docs, err := s.store.Query(ctx, domain.Review{}.Collection(), q)
	if err != nil {
		log.Printf("[REVIEW] List failed: store error: %v", err)
		return nil, NewInternalError("failed to fetch reviews", err)
	}

	reviews := make([]domain.Review, 0, len(docs))
	for _, doc := range docs {
		var rev domain.Review
		if err := store.Decode(doc, &rev); err != nil {
			return nil, NewInternalError("failed to decode review", err)
		}
		reviews = append(reviews, rev)
	}

	log.Printf("[REVIEW] List successful: returned %d reviews", len(reviews))
	return reviews, nil
}

// validateReview validates a review submission
func (s *ReviewService) validateReview(rev *domain.Review) error {
	if err := rev.ValidateRating(); err != nil {
		return err
	}

	name := strings.TrimSpace(rev.Name)
	if len(name) < 2 || len(name) > 100 {
		return fmt.Errorf("name must be between 2 and 100 characters")
	}

	content := strings.TrimSpace(rev.Content)
	if len(content) < 1 {
		return fmt.Errorf("content is required")
	}
	if len(content) > 5000 {
		return fmt.Errorf("content must not exceed 5000 characters")
	}

	return nil
}
