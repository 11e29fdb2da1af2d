package services

import (
	"context"
)

// HealthResult is the health check response.
type HealthResult struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

// HealthService implements the health service
type HealthService struct{}

// NewHealthService creates a new health service
func NewHealthService() *HealthService {
	return &HealthService{}
}

// Check implements the health check method
func (s *HealthService) Check(ctx context.Context) (*HealthResult, error) {
	return &HealthResult{
		Status:  "healthy",
		Service: "Oakline Studio API",
	}, nil
}
