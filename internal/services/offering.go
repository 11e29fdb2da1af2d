package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"oakline/internal/domain"
	"oakline/internal/store"
)

// OfferingService manages the studio's service offerings.
type OfferingService struct {
	store store.Store
}

// NewOfferingService creates a new offering service
func NewOfferingService(st store.Store) *OfferingService {
	return &OfferingService{store: st}
}

// Create stores a new offering; id and timestamps are store-assigned.
func (s *OfferingService) Create(ctx context.Context, o *domain.Offering) (*domain.Offering, error) {
	log.Printf("[OFFERING] Create request: title=%s", strings.TrimSpace(o.Title))

	if err := s.validateOffering(o); err != nil {
		log.Printf("[OFFERING] Create failed: validation error: %v", err)
		return nil, NewValidationError(err.Error())
	}

	o.Title = strings.TrimSpace(o.Title)

	doc, err := store.Encode(o)
	if err != nil {
		return nil, NewInternalError("failed to encode offering", err)
	}
	if _, err := s.store.Insert(ctx, o.Collection(), doc); err != nil {
		log.Printf("[OFFERING] Create failed: store error: %v", err)
		return nil, NewInternalError("failed to save offering", err)
	}

	var saved domain.Offering
	if err := store.Decode(doc, &saved); err != nil {
		return nil, NewInternalError("failed to decode offering", err)
	}

	log.Printf("[OFFERING] Create successful: id=%s, title=%s", saved.ID, saved.Title)
	return &saved, nil
}

// List returns all offerings ordered by creation time, most recent first.
func (s *OfferingService) List(ctx context.Context) ([]domain.Offering, error) {
	docs, err := s.store.Query(ctx, domain.Offering{}.Collection(), store.Query{Desc: true})
	if err != nil {
		log.Printf("[OFFERING] List failed: store error: %v", err)
		return nil, NewInternalError("failed to fetch offerings", err)
	}

	offerings := make([]domain.Offering, 0, len(docs))
	for _, doc := range docs {
		var o domain.Offering
		if err := store.Decode(doc, &o); err != nil {
			return nil, NewInternalError("failed to decode offering", err)
		}
		offerings = append(offerings, o)
	}

	log.Printf("[OFFERING] List successful: returned %d offerings", len(offerings))
	return offerings, nil
}

// Get returns a single offering.
func (s *OfferingService) Get(ctx context.Context, id string) (*domain.Offering, error) {
	doc, err := s.store.Get(ctx, domain.Offering{}.Collection(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Printf("[OFFERING] Get failed: id=%s not found", id)
			return nil, NewNotFoundError("Offering not found")
		}
		log.Printf("[OFFERING] Get failed: store error: %v", err)
		return nil, NewInternalError("failed to fetch offering", err)
	}

	var o domain.Offering
	if err := store.Decode(doc, &o); err != nil {
		return nil, NewInternalError("failed to decode offering", err)
	}
	return &o, nil
}

// Update merges the supplied fields into the stored offering.
func (s *OfferingService) Update(ctx context.Context, id string, o *domain.Offering) (*domain.Offering, error) {
	log.Printf("[OFFERING] Update request: id=%s", id)

	if err := s.validateOffering(o); err != nil {
		log.Printf("[OFFERING] Update failed: validation error: %v", err)
		return nil, NewValidationError(err.Error())
	}

	patch, err := store.Encode(o)
	if err != nil {
		return nil, NewInternalError("failed to encode offering", err)
	}
	delete(patch, "id")
	delete(patch, "createdAt")
	delete(patch, "updatedAt")

	if err := s.store.Update(ctx, domain.Offering{}.Collection(), id, patch); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Printf("[OFFERING] Update failed: id=%s not found", id)
			return nil, NewNotFoundError("Offering not found")
		}
		log.Printf("[OFFERING] Update failed: store error: %v", err)
		return nil, NewInternalError("failed to update offering", err)
	}

	log.Printf("[OFFERING] Update successful: id=%s", id)
	return s.Get(ctx, id)
}

// validateOffering validates an offering
func (s *OfferingService) validateOffering(o *domain.Offering) error {
	title := strings.TrimSpace(o.Title)
	if len(title) < 2 || len(title) > 200 {
		return fmt.Errorf("title must be between 2 and 200 characters")
	}
	return nil
}
