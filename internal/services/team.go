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

// TeamService manages team member profiles. Team members have no workflow
// and, like every entity in this layer, no delete path.
type TeamService struct {
	store store.Store
}

// NewTeamService creates a new team service
func NewTeamService(st store.Store) *TeamService {
	return &TeamService{store: st}
}

// Create stores a new team member; id and timestamps are store-assigned.
func (s *TeamService) Create(ctx context.Context, m *domain.TeamMember) (*domain.TeamMember, error) {
	log.Printf("[TEAM] Create request: name=%s, role=%s", strings.TrimSpace(m.Name), strings.TrimSpace(m.Role))

	if err := s.validateMember(m); err != nil {
		log.Printf("[TEAM] Create failed: validation error: %v", err)
		return nil, NewValidationError(err.Error())
	}

	m.Name = strings.TrimSpace(m.Name)
	m.Role = strings.TrimSpace(m.Role)

	doc, err := store.Encode(m)
	if err != nil {
		return nil, NewInternalError("failed to encode team member", err)
	}
	if _, err := s.store.Insert(ctx, m.Collection(), doc); err != nil {
		log.Printf("[TEAM] Create failed: store error: %v", err)
		return nil, NewInternalError("failed to save team member", err)
	}

	var saved domain.TeamMember
	if err := store.Decode(doc, &saved); err != nil {
		return nil, NewInternalError("failed to decode team member", err)
	}

	log.Printf("[TEAM] Create successful: id=%s, name=%s", saved.ID, saved.Name)
	return &saved, nil
}

// List returns all team members ordered by creation time, most recent first.
func (s *TeamService) List(ctx context.Context) ([]domain.TeamMember, error) {
	docs, err := s.store.Query(ctx, domain.TeamMember{}.Collection(), store.Query{Desc: true})
	if err != nil {
		log.Printf("[TEAM] List failed: store error: %v", err)
		return nil, NewInternalError("failed to fetch team members", err)
	}

	members := make([]domain.TeamMember, 0, len(docs))
	for _, doc := range docs {
		var m domain.TeamMember
		if err := store.Decode(doc, &m); err != nil {
			return nil, NewInternalError("failed to decode team member", err)
		}
		members = append(members, m)
	}

	log.Printf("[TEAM] List successful: returned %d members", len(members))
	return members, nil
}

// Get returns a single team member.
func (s *TeamService) Get(ctx context.Context, id string) (*domain.TeamMember, error) {
	doc, err := s.store.Get(ctx, domain.TeamMember{}.Collection(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Printf("[TEAM] Get failed: id=%s not found", id)
			return nil, NewNotFoundError("Team member not found")
		}
		log.Printf("[TEAM] Get failed: store error: %v", err)
		return nil, NewInternalError("failed to fetch team member", err)
	}

	var m domain.TeamMember
	if err := store.Decode(doc, &m); err != nil {
		return nil, NewInternalError("failed to decode team member", err)
	}
	return &m, nil
}

// Update merges the supplied fields into the stored profile. Identity and
// timestamp fields are never written by the caller.
func (s *TeamService) Update(ctx context.Context, id string, m *domain.TeamMember) (*domain.TeamMember, error) {
	log.Printf("[TEAM] Update request: id=%s", id)

	if err := s.validateMember(m); err != nil {
		log.Printf("[TEAM] Update failed: validation error: %v", err)
		return nil, NewValidationError(err.Error())
	}

	patch, err := store.Encode(m)
	if err != nil {
		return nil, NewInternalError("failed to encode team member", err)
	}
	delete(patch, "id")
	delete(patch, "createdAt")
	delete(patch, "updatedAt")

	if err := s.store.Update(ctx, domain.TeamMember{}.Collection(), id, patch); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Printf("[TEAM] Update failed: id=%s not found", id)
			return nil, NewNotFoundError("Team member not found")
		}
		log.Printf("[TEAM] Update failed: store error: %v", err)
		return nil, NewInternalError("failed to update team member", err)
	}

	log.Printf("[TEAM] Update successful: id=%s", id)
	return s.Get(ctx, id)
}

// validateMember validates a team member profile
func (s *TeamService) validateMember(m *domain.TeamMember) error {
	name := strings.TrimSpace(m.Name)
	if len(name) < 2 || len(name) > 100 {
		return fmt.Errorf("name must be between 2 and 100 characters")
	}
	if strings.TrimSpace(m.Role) == "" {
		return fmt.Errorf("role is required")
	}
	return nil
}
