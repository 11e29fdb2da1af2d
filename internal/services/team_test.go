package services

import (
	"context"
	"testing"

	"oakline/internal/domain"
	"oakline/internal/store"
)

func TestTeamCreateAndGet(t *testing.T) {
	svc := NewTeamService(store.NewMemStore())
	ctx := context.Background()

	saved, err := svc.Create(ctx, &domain.TeamMember{Name: "Ada Lovelace", Role: "Engineer"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if saved.ID == "" || saved.CreatedAt.IsZero() {
		t.Errorf("missing store-assigned fields: %+v", saved)
	}

	got, err := svc.Get(ctx, saved.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Name != "Ada Lovelace" || got.Role != "Engineer" {
		t.Errorf("unexpected member: %+v", got)
	}
}

func TestTeamCreateValidation(t *testing.T) {
	svc := NewTeamService(store.NewMemStore())
	ctx := context.Background()

	if _, err := svc.Create(ctx, &domain.TeamMember{Name: "A", Role: "Engineer"}); !IsValidation(err) {
		t.Errorf("short name: err = %v, want validation error", err)
	}
	if _, err := svc.Create(ctx, &domain.TeamMember{Name: "Ada Lovelace"}); !IsValidation(err) {
		t.Errorf("missing role: err = %v, want validation error", err)
	}
}

func TestTeamUpdatePreservesIdentityFields(t *testing.T) {
	svc := NewTeamService(store.NewMemStore())
	ctx := context.Background()

	saved, err := svc.Create(ctx, &domain.TeamMember{Name: "Ada Lovelace", Role: "Engineer"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	updated, err := svc.Update(ctx, saved.ID, &domain.TeamMember{
		ID:   "spoofed-id",
		Name: "Ada Lovelace",
		Role: "Lead Engineer",
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.ID != saved.ID {
		t.Errorf("id changed on update: %s -> %s", saved.ID, updated.ID)
	}
	if updated.Role != "Lead Engineer" {
		t.Errorf("role = %q, want updated", updated.Role)
	}
	if !updated.CreatedAt.Equal(saved.CreatedAt) {
		t.Error("createdAt must not change on update")
	}
}

func TestTeamUpdateNotFound(t *testing.T) {
	svc := NewTeamService(store.NewMemStore())
	_, err := svc.Update(context.Background(), "missing", &domain.TeamMember{Name: "Ada Lovelace", Role: "Engineer"})
	if !IsNotFound(err) {
		t.Errorf("err = %v, want not found", err)
	}
}

func TestOfferingCreateListUpdate(t *testing.T) {
	svc := NewOfferingService(store.NewMemStore())
	ctx := context.Background()

	saved, err := svc.Create(ctx, &domain.Offering{Title: "Brand Design", Description: "Full identity work"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	list, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 1 || list[0].ID != saved.ID {
		t.Errorf("unexpected listing: %+v", list)
	}

	updated, err := svc.Update(ctx, saved.ID, &domain.Offering{Title: "Brand Design", Description: "Identity and guidelines"})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Description != "Identity and guidelines" {
		t.Errorf("description = %q, want updated", updated.Description)
	}

	if _, err := svc.Create(ctx, &domain.Offering{Title: "x"}); !IsValidation(err) {
		t.Errorf("short title: err = %v, want validation error", err)
	}
	if _, err := svc.Get(ctx, "missing"); !IsNotFound(err) {
		t.Errorf("Get err = %v, want not found", err)
	}
}
