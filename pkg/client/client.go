// Package client is the typed API client used by back-office tooling. Every
// call flows through a fetch wrapper that classifies transport failures and
// a response decoder that classifies remote rejections, so callers only ever
// see *apierr.Error values.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"oakline/internal/domain"
	"oakline/internal/services"
	"oakline/pkg/apierr"
)

const defaultTimeout = 30 * time.Second

// Client talks to the Oakline Studio API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	token      string
}

// New creates a client for the API at baseURL. The underlying HTTP client
// carries a request timeout so a hung call cannot block its context forever.
func New(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
}

// SetToken sets the bearer token used for admin endpoints.
func (c *Client) SetToken(token string) {
	c.token = token
}

// do issues the request. Any failure that occurs before a response is
// obtained (DNS, connection reset, timeout) is classified with status 0; an
// already-classified error propagates unchanged.
func (c *Client) do(ctx context.Context, method, path string, body any) (*http.Response, error) {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, apierr.WithData("failed to encode request", 0, err.Error())
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, apierr.WithData("network request failed", 0, err.Error())
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		var classified *apierr.Error
		if errors.As(err, &classified) {
			return nil, classified
		}
		return nil, apierr.WithData("network request failed", 0, err.Error())
	}
	return resp, nil
}

func doJSON[T any](c *Client, ctx context.Context, method, path string, body any) (T, error) {
	var zero T
	resp, err := c.do(ctx, method, path, body)
	if err != nil {
		return zero, err
	}
	defer resp.Body.Close()
	return decodeResponse[T](resp)
}

// Login authenticates and stores the returned token on the client.
func (c *Client) Login(ctx context.Context, username, password string) (*services.LoginResult, error) {
	body := map[string]string{"username": username, "password": password}
	result, err := doJSON[*services.LoginResult](c, ctx, http.MethodPost, "/api/v1/auth/login", body)
	if err != nil {
		return nil, err
	}
	c.token = result.AccessToken
	return result, nil
}

// SubmitInquiry submits a contact inquiry through the public endpoint.
func (c *Client) SubmitInquiry(ctx context.Context, inq *domain.ContactInquiry) (*domain.ContactInquiry, error) {
	return doJSON[*domain.ContactInquiry](c, ctx, http.MethodPost, "/api/v1/contact", inq)
}

// Inquiries lists inquiries, optionally filtered by status ("all" or empty
// returns everything).
func (c *Client) Inquiries(ctx context.Context, status string) ([]domain.ContactInquiry, error) {
	path := "/api/v1/admin/inquiries"
	if status != "" {
		path += "?status=" + status
	}
	return doJSON[[]domain.ContactInquiry](c, ctx, http.MethodGet, path, nil)
}

// Inquiry fetches a single inquiry.
func (c *Client) Inquiry(ctx context.Context, id string) (*domain.ContactInquiry, error) {
	return doJSON[*domain.ContactInquiry](c, ctx, http.MethodGet, "/api/v1/admin/inquiries/"+id, nil)
}

// UpdateInquiryStatus transitions an inquiry to the given status.
func (c *Client) UpdateInquiryStatus(ctx context.Context, id string, status domain.InquiryStatus) (*services.StatusUpdate, error) {
	body := map[string]string{"status": string(status)}
	return doJSON[*services.StatusUpdate](c, ctx, http.MethodPatch, fmt.Sprintf("/api/v1/admin/inquiries/%s/status", id), body)
}

// SubmitReview submits a review through the public endpoint.
func (c *Client) SubmitReview(ctx context.Context, rev *domain.Review) (*domain.Review, error) {
	return doJSON[*domain.Review](c, ctx, http.MethodPost, "/api/v1/reviews", rev)
}

// PublicReviews lists approved, publicly visible reviews.
func (c *Client) PublicReviews(ctx context.Context) ([]domain.Review, error) {
	return doJSON[[]domain.Review](c, ctx, http.MethodGet, "/api/v1/reviews", nil)
}

// Reviews lists reviews for moderation, optionally filtered by status.
func (c *Client) Reviews(ctx context.Context, status string) ([]domain.Review, error) {
	path := "/api/v1/admin/reviews"
	if status != "" {
		path += "?status=" + status
	}
	return doJSON[[]domain.Review](c, ctx, http.MethodGet, path, nil)
}

// Review fetches a single review.
func (c *Client) Review(ctx context.Context, id string) (*domain.Review, error) {
	return doJSON[*domain.Review](c, ctx, http.MethodGet, "/api/v1/admin/reviews/"+id, nil)
}

// ModerateReview applies a moderation decision.
func (c *Client) ModerateReview(ctx context.Context, id string, status domain.ReviewStatus) (*services.StatusUpdate, error) {
	body := map[string]string{"status": string(status)}
	return doJSON[*services.StatusUpdate](c, ctx, http.MethodPost, fmt.Sprintf("/api/v1/admin/reviews/%s/moderate", id), body)
}

// SetReviewVisibility toggles a review's public visibility gate.
func (c *Client) SetReviewVisibility(ctx context.Context, id string, isPublic bool) error {
	body := map[string]bool{"isPublic": isPublic}
	_, err := doJSON[map[string]any](c, ctx, http.MethodPatch, fmt.Sprintf("/api/v1/admin/reviews/%s/visibility", id), body)
	return err
}

// TeamMembers lists team members.
func (c *Client) TeamMembers(ctx context.Context) ([]domain.TeamMember, error) {
	return doJSON[[]domain.TeamMember](c, ctx, http.MethodGet, "/api/v1/team", nil)
}

// CreateTeamMember creates a team member profile.
func (c *Client) CreateTeamMember(ctx context.Context, m *domain.TeamMember) (*domain.TeamMember, error) {
	return doJSON[*domain.TeamMember](c, ctx, http.MethodPost, "/api/v1/admin/team", m)
}

// UpdateTeamMember updates a team member profile.
func (c *Client) UpdateTeamMember(ctx context.Context, id string, m *domain.TeamMember) (*domain.TeamMember, error) {
	return doJSON[*domain.TeamMember](c, ctx, http.MethodPut, "/api/v1/admin/team/"+id, m)
}

// Offerings lists service offerings.
func (c *Client) Offerings(ctx context.Context) ([]domain.Offering, error) {
	return doJSON[[]domain.Offering](c, ctx, http.MethodGet, "/api/v1/offerings", nil)
}

// CreateOffering creates a service offering.
func (c *Client) CreateOffering(ctx context.Context, o *domain.Offering) (*domain.Offering, error) {
	return doJSON[*domain.Offering](c, ctx, http.MethodPost, "/api/v1/admin/offerings", o)
}

// UpdateOffering updates a service offering.
func (c *Client) UpdateOffering(ctx context.Context, id string, o *domain.Offering) (*domain.Offering, error) {
	return doJSON[*domain.Offering](c, ctx, http.MethodPut, "/api/v1/admin/offerings/"+id, o)
}
