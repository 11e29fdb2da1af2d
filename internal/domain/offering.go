package domain

import (
	"time"
)

// Offering represents a service offering shown on the public site.
type Offering struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
	Order       int       `json:"order"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Collection specifies the document collection for Offering.
func (Offering) Collection() string {
	return "offerings"
}
