package domain

import (
	"time"
)

// SocialLinks holds optional social profile URLs for a team member.
type SocialLinks struct {
	LinkedIn *string `json:"linkedin,omitempty"`
	Twitter  *string `json:"twitter,omitempty"`
	GitHub   *string `json:"github,omitempty"`
}

// TeamMember represents a studio team member shown on the public site.
// Team members have no workflow, only plain create/read/update.
type TeamMember struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Role        string      `json:"role"`
	Image       string      `json:"image"`
	Bio         string      `json:"bio"`
	SocialLinks SocialLinks `json:"socialLinks"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

// Collection specifies the document collection for TeamMember.
func (TeamMember) Collection() string {
	return "team_members"
}
