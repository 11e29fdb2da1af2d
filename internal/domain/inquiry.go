package domain

import (
	"time"
)

// InquiryStatus is the workflow state of a contact inquiry.
type InquiryStatus string

const (
	InquiryStatusNew        InquiryStatus = "new"
	InquiryStatusInProgress InquiryStatus = "in-progress"
	InquiryStatusResolved   InquiryStatus = "resolved"
)

// StatusFilterAll is the sentinel filter value meaning "no status filter".
const StatusFilterAll = "all"

// Valid reports whether s is a member of the inquiry status domain.
// Transitions between valid statuses are deliberately unrestricted: an
// inquiry may move from any status to any other, including backward.
func (s InquiryStatus) Valid() bool {
	switch s {
	case InquiryStatusNew, InquiryStatusInProgress, InquiryStatusResolved:
		return true
	}
	return false
}

// ContactInquiry represents a contact form submission.
type ContactInquiry struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	Email     string        `json:"email"`
	Subject   string        `json:"subject"`
	Message   string        `json:"message"`
	Status    InquiryStatus `json:"status"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}

// Collection specifies the document collection for ContactInquiry.
func (ContactInquiry) Collection() string {
	return "contact_inquiries"
}
