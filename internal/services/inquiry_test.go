package services

import (
	"context"
	"testing"

	"oakline/internal/config"
	"oakline/internal/domain"
	"oakline/internal/store"
)

func newTestEmailService() *EmailService {
	return NewEmailService(&config.EmailConfig{})
}

func validInquiry() *domain.ContactInquiry {
	return &domain.ContactInquiry{
		Name:    "Ada Lovelace",
		Email:   "Ada@Example.com",
		Subject: "Website redesign",
		Message: "We would like a quote for a full redesign.",
	}
}

func TestInquirySubmitForcesNewStatus(t *testing.T) {
	svc := NewInquiryService(store.NewMemStore(), newTestEmailService())

	inq := validInquiry()
	inq.Status = domain.InquiryStatusResolved // caller-supplied, must be ignored

	saved, err := svc.Submit(context.Background(), inq)
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if saved.Status != domain.InquiryStatusNew {
		t.Errorf("status = %q, want %q", saved.Status, domain.InquiryStatusNew)
	}
	if saved.ID == "" {
		t.Error("expected a store-assigned id")
	}
	if saved.CreatedAt.IsZero() || saved.UpdatedAt.IsZero() {
		t.Error("expected store-assigned timestamps")
	}
	if saved.Email != "ada@example.com" {
		t.Errorf("email = %q, want lowercased", saved.Email)
	}
}

func TestInquirySubmitValidation(t *testing.T) {
	svc := NewInquiryService(store.NewMemStore(), newTestEmailService())
	ctx := context.Background()

	cases := []struct {
		name   string
		mutate func(*domain.ContactInquiry)
	}{
		{"short name", func(i *domain.ContactInquiry) { i.Name = "A" }},
		{"bad email", func(i *domain.ContactInquiry) { i.Email = "not-an-email" }},
		{"empty message", func(i *domain.ContactInquiry) { i.Message = "   " }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			inq := validInquiry()
			tc.mutate(inq)
			_, err := svc.Submit(ctx, inq)
			if !IsValidation(err) {
				t.Errorf("err = %v, want validation error", err)
			}
		})
	}
}

func TestInquiryListFilterAndOrdering(t *testing.T) {
	svc := NewInquiryService(store.NewMemStore(), newTestEmailService())
	ctx := context.Background()

	var ids []string
	for _, subject := range []string{"first", "second", "third"} {
		inq := validInquiry()
		inq.Subject = subject
		saved, err := svc.Submit(ctx, inq)
		if err != nil {
			t.Fatalf("Submit %s: %v", subject, err)
		}
		ids = append(ids, saved.ID)
	}

	// Most recent first.
	all, err := svc.List(ctx, "")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("got %d inquiries, want 3", len(all))
	}
	if all[0].Subject != "third" || all[2].Subject != "first" {
		t.Errorf("wrong order: %s, %s, %s", all[0].Subject, all[1].Subject, all[2].Subject)
	}

	// "all" behaves like no filter.
	allSentinel, err := svc.List(ctx, domain.StatusFilterAll)
	if err != nil {
		t.Fatalf("List(all): %v", err)
	}
	if len(allSentinel) != len(all) {
		t.Errorf("List(all) returned %d, List(\"\") returned %d", len(allSentinel), len(all))
	}

	// Move one inquiry along and filter on the new status.
	if _, err := svc.UpdateStatus(ctx, ids[1], domain.InquiryStatusResolved); err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}
	resolved, err := svc.List(ctx, string(domain.InquiryStatusResolved))
	if err != nil {
		t.Fatalf("List(resolved): %v", err)
	}
	if len(resolved) != 1 || resolved[0].ID != ids[1] {
		t.Errorf("unexpected filtered result: %+v", resolved)
	}
}

func TestInquiryUpdateStatusRoundTrip(t *testing.T) {
	svc := NewInquiryService(store.NewMemStore(), newTestEmailService())
	ctx := context.Background()

	saved, err := svc.Submit(ctx, validInquiry())
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}

	result, err := svc.UpdateStatus(ctx, saved.ID, domain.InquiryStatusInProgress)
	if err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}
	if result.ID != saved.ID || result.Status != string(domain.InquiryStatusInProgress) {
		t.Errorf("unexpected result: %+v", result)
	}

	got, err := svc.Get(ctx, saved.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Status != domain.InquiryStatusInProgress {
		t.Errorf("status = %q, want %q", got.Status, domain.InquiryStatusInProgress)
	}

	// Backward transitions are allowed; only membership is checked.
	if _, err := svc.UpdateStatus(ctx, saved.ID, domain.InquiryStatusNew); err != nil {
		t.Errorf("backward transition rejected: %v", err)
	}
}

func TestInquiryUpdateStatusInvalid(t *testing.T) {
	svc := NewInquiryService(store.NewMemStore(), newTestEmailService())
	ctx := context.Background()

	saved, _ := svc.Submit(ctx, validInquiry())
	_, err := svc.UpdateStatus(ctx, saved.ID, domain.InquiryStatus("archived"))
	if !IsValidation(err) {
		t.Errorf("err = %v, want bad request", err)
	}
}

func TestInquiryGetNotFound(t *testing.T) {
	svc := NewInquiryService(store.NewMemStore(), newTestEmailService())

	_, err := svc.Get(context.Background(), "missing")
	if !IsNotFound(err) {
		t.Fatalf("err = %v, want not found", err)
	}
	if err.Error() != "Inquiry not found" {
		t.Errorf("message = %q, want %q", err.Error(), "Inquiry not found")
	}
}

func TestInquiryUpdateStatusNotFound(t *testing.T) {
	svc := NewInquiryService(store.NewMemStore(), newTestEmailService())

	_, err := svc.UpdateStatus(context.Background(), "missing", domain.InquiryStatusResolved)
	if !IsNotFound(err) {
		t.Errorf("err = %v, want not found", err)
	}
}
