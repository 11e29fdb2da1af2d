package domain

import "testing"

func TestInquiryStatusValid(t *testing.T) {
	for _, s := range []InquiryStatus{InquiryStatusNew, InquiryStatusInProgress, InquiryStatusResolved} {
		if !s.Valid() {
			t.Errorf("%q should be valid", s)
		}
	}
	for _, s := range []InquiryStatus{"", "archived", "New"} {
		if s.Valid() {
			t.Errorf("%q should not be valid", s)
		}
	}
}

func TestReviewStatusDecision(t *testing.T) {
	if !ReviewStatusApproved.IsDecision() || !ReviewStatusRejected.IsDecision() {
		t.Error("approved and rejected are moderation decisions")
	}
	if ReviewStatusPending.IsDecision() {
		t.Error("pending is not a moderation decision")
	}
	if ReviewStatus("bogus").IsDecision() {
		t.Error("unknown status is not a moderation decision")
	}
}

func TestValidateRating(t *testing.T) {
	for rating := 1; rating <= 5; rating++ {
		r := Review{Rating: rating}
		if err := r.ValidateRating(); err != nil {
			t.Errorf("rating %d: unexpected error %v", rating, err)
		}
	}
	for _, rating := range []int{0, -1, 6, 100} {
		r := Review{Rating: rating}
		if err := r.ValidateRating(); err == nil {
			t.Errorf("rating %d: expected error", rating)
		}
	}
}
