package domain

import (
	"fmt"
	"time"
)

// ReviewStatus is the moderation state of a review.
type ReviewStatus string

const (
	ReviewStatusPending  ReviewStatus = "pending"
	ReviewStatusApproved ReviewStatus = "approved"
	ReviewStatusRejected ReviewStatus = "rejected"
)

// Valid reports whether s is a member of the review status domain.
func (s ReviewStatus) Valid() bool {
	switch s {
	case ReviewStatusPending, ReviewStatusApproved, ReviewStatusRejected:
		return true
	}
	return false
}

// IsDecision reports whether s is a terminal moderation decision. Once a
// review is approved or rejected no operation moves it back to pending.
func (s ReviewStatus) IsDecision() bool {
	return s == ReviewStatusApproved || s == ReviewStatusRejected
}

// Review represents a client testimonial submitted through the public site.
// IsPublic is an independent visibility gate: this layer does not enforce
// that only approved reviews are made public.
type Review struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Position    string       `json:"position"`
	Company     string       `json:"company"`
	Content     string       `json:"content"`
	Image       string       `json:"image"`
	Rating      int          `json:"rating"`
	Status      ReviewStatus `json:"status"`
	SubmittedAt time.Time    `json:"submittedAt"`
	ReviewedAt  *time.Time   `json:"reviewedAt,omitempty"`
	ReviewedBy  *string      `json:"reviewedBy,omitempty"`
	IsPublic    bool         `json:"isPublic"`
	Tags        []string     `json:"tags,omitempty"`
	ProjectType *string      `json:"projectType,omitempty"`
}

// Collection specifies the document collection for Review.
func (Review) Collection() string {
	return "reviews"
}

// ValidateRating checks that the rating lies in [1,5]. It must be called
// before any persistence attempt.
func (r *Review) ValidateRating() error {
	if r.Rating < 1 || r.Rating > 5 {
		return fmt.Errorf("rating must be between 1 and 5, got %d", r.Rating)
	}
	return nil
}
