package services

import (
	"context"
	"testing"

	"oakline/internal/domain"
	"oakline/internal/store"
)

// recordingStore counts store calls so tests can assert a write never
// happened.
type recordingStore struct {
	store.Store
	inserts int
}

func (s *recordingStore) Insert(ctx context.Context, collection string, doc store.Document) (string, error) {
	s.inserts++
	return s.Store.Insert(ctx, collection, doc)
}

func validReview() *domain.Review {
	return &domain.Review{
		Name:    "Grace Hopper",
		Company: "Navy",
		Content: "Excellent work, delivered on time.",
		Rating:  5,
	}
}

func TestReviewSubmitForcesModerationDefaults(t *testing.T) {
	svc := NewReviewService(store.NewMemStore(), newTestEmailService())

	rev := validReview()
	rev.Status = domain.ReviewStatusApproved // caller-supplied, must be ignored
	rev.IsPublic = true
	by := "attacker"
	rev.ReviewedBy = &by

	saved, err := svc.Submit(context.Background(), rev)
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if saved.Status != domain.ReviewStatusPending {
		t.Errorf("status = %q, want pending", saved.Status)
	}
	if saved.IsPublic {
		t.Error("isPublic must be forced to false on submit")
	}
	if saved.ReviewedAt != nil || saved.ReviewedBy != nil {
		t.Error("review fields must be empty on submit")
	}
	if saved.SubmittedAt.IsZero() {
		t.Error("submittedAt should be stamped")
	}
}

func TestReviewSubmitRejectsRatingBeforePersisting(t *testing.T) {
	rec := &recordingStore{Store: store.NewMemStore()}
	svc := NewReviewService(rec, newTestEmailService())
	ctx := context.Background()

	for _, rating := range []int{0, 6, -1} {
		rev := validReview()
		rev.Rating = rating
		if _, err := svc.Submit(ctx, rev); !IsValidation(err) {
			t.Errorf("rating %d: err = %v, want validation error", rating, err)
		}
	}
	if rec.inserts != 0 {
		t.Errorf("store received %d inserts, want 0", rec.inserts)
	}
}

func TestReviewModerate(t *testing.T) {
	svc := NewReviewService(store.NewMemStore(), newTestEmailService())
	ctx := context.Background()

	saved, err := svc.Submit(ctx, validReview())
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}

	result, err := svc.Moderate(ctx, saved.ID, domain.ReviewStatusApproved, "admin")
	if err != nil {
		t.Fatalf("Moderate: %v", err)
	}
	if result.Status != string(domain.ReviewStatusApproved) {
		t.Errorf("result status = %q, want approved", result.Status)
	}

	got, err := svc.Get(ctx, saved.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Status != domain.ReviewStatusApproved {
		t.Errorf("status = %q, want approved", got.Status)
	}
	if got.ReviewedAt == nil {
		t.Error("reviewedAt should be stamped by moderation")
	}
	if got.ReviewedBy == nil || *got.ReviewedBy != "admin" {
		t.Errorf("reviewedBy = %v, want admin", got.ReviewedBy)
	}
	if got.IsPublic {
		t.Error("moderation must not flip the visibility gate")
	}
}

func TestReviewModerateRejectsPendingTarget(t *testing.T) {
	svc := NewReviewService(store.NewMemStore(), newTestEmailService())
	ctx := context.Background()

	saved, _ := svc.Submit(ctx, validReview())
	if _, err := svc.Moderate(ctx, saved.ID, domain.ReviewStatusPending, "admin"); !IsValidation(err) {
		t.Errorf("err = %v, want bad request for pending target", err)
	}
	if _, err := svc.Moderate(ctx, saved.ID, domain.ReviewStatus("bogus"), "admin"); !IsValidation(err) {
		t.Errorf("err = %v, want bad request for unknown target", err)
	}
}

func TestReviewListPublicRequiresApprovedAndPublic(t *testing.T) {
	svc := NewReviewService(store.NewMemStore(), newTestEmailService())
	ctx := context.Background()

	// pending + private
	pending, _ := svc.Submit(ctx, validReview())

	// approved + private
	approvedPrivate, _ := svc.Submit(ctx, validReview())
	svc.Moderate(ctx, approvedPrivate.ID, domain.ReviewStatusApproved, "admin")

	// approved + public
	approvedPublic, _ := svc.Submit(ctx, validReview())
	svc.Moderate(ctx, approvedPublic.ID, domain.ReviewStatusApproved, "admin")
	if err := svc.SetVisibility(ctx, approvedPublic.ID, true); err != nil {
		t.Fatalf("SetVisibility: %v", err)
	}

	// rejected + public: visibility alone is not enough
	rejectedPublic, _ := svc.Submit(ctx, validReview())
	svc.Moderate(ctx, rejectedPublic.ID, domain.ReviewStatusRejected, "admin")
	svc.SetVisibility(ctx, rejectedPublic.ID, true)

	public, err := svc.ListPublic(ctx)
	if err != nil {
		t.Fatalf("ListPublic: %v", err)
	}
	if len(public) != 1 || public[0].ID != approvedPublic.ID {
		t.Fatalf("ListPublic = %+v, want only the approved+public review", public)
	}

	// The moderation listing still sees everything.
	all, err := svc.List(ctx, domain.StatusFilterAll)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) != 4 {
		t.Errorf("List(all) returned %d reviews, want 4", len(all))
	}
	_ = pending
}

func TestReviewListFilter(t *testing.T) {
	svc := NewReviewService(store.NewMemStore(), newTestEmailService())
	ctx := context.Background()

	first, _ := svc.Submit(ctx, validReview())
	second, _ := svc.Submit(ctx, validReview())
	svc.Moderate(ctx, second.ID, domain.ReviewStatusRejected, "admin")

	rejected, err := svc.List(ctx, string(domain.ReviewStatusRejected))
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(rejected) != 1 || rejected[0].ID != second.ID {
		t.Errorf("unexpected filtered result: %+v", rejected)
	}

	pending, err := svc.List(ctx, string(domain.ReviewStatusPending))
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(pending) != 1 || pending[0].ID != first.ID {
		t.Errorf("unexpected filtered result: %+v", pending)
	}
}

func TestReviewNotFound(t *testing.T) {
	svc := NewReviewService(store.NewMemStore(), newTestEmailService())
	ctx := context.Background()

	if _, err := svc.Get(ctx, "missing"); !IsNotFound(err) {
		t.Errorf("Get err = %v, want not found", err)
	}
	if _, err := svc.Moderate(ctx, "missing", domain.ReviewStatusApproved, "admin"); !IsNotFound(err) {
		t.Errorf("Moderate err = %v, want not found", err)
	}
	if err := svc.SetVisibility(ctx, "missing", true); !IsNotFound(err) {
		t.Errorf("SetVisibility err = %v, want not found", err)
	}
}
