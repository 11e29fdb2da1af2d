package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"oakline/pkg/apierr"
)

func TestDecodeErrorBodyWithMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message":"Review not found"}`))
	}))
	defer srv.Close()

	_, err := New(srv.URL).Review(context.Background(), "missing")
	if err == nil {
		t.Fatal("expected an error")
	}
	classified, ok := err.(*apierr.Error)
	if !ok {
		t.Fatalf("expected *apierr.Error, got %T", err)
	}
	if classified.Message != "Review not found" {
		t.Errorf("message = %q, want %q", classified.Message, "Review not found")
	}
	if classified.Status != 404 {
		t.Errorf("status = %d, want 404", classified.Status)
	}
	if !apierr.IsNotFound(err) {
		t.Error("expected IsNotFound to report true")
	}
}

func TestDecodeErrorBodyUnstructured(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("upstream exploded"))
	}))
	defer srv.Close()

	_, err := New(srv.URL).TeamMembers(context.Background())
	classified, ok := err.(*apierr.Error)
	if !ok {
		t.Fatalf("expected *apierr.Error, got %T", err)
	}
	if classified.Message != "API request failed with status 500" {
		t.Errorf("message = %q, want default status message", classified.Message)
	}
	if classified.Data != "upstream exploded" {
		t.Errorf("data = %v, want raw body", classified.Data)
	}
}

func TestDecodeErrorBodyWithoutMessageField(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"detail":"wrong shape"}`))
	}))
	defer srv.Close()

	_, err := New(srv.URL).Offerings(context.Background())
	classified, ok := err.(*apierr.Error)
	if !ok {
		t.Fatalf("expected *apierr.Error, got %T", err)
	}
	if classified.Message != "API request failed with status 400" {
		t.Errorf("message = %q, want default status message", classified.Message)
	}
}

func TestDecodeSuccessParseFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("not json at all"))
	}))
	defer srv.Close()

	_, err := New(srv.URL).Offerings(context.Background())
	classified, ok := err.(*apierr.Error)
	if !ok {
		t.Fatalf("expected *apierr.Error, got %T", err)
	}
	if classified.Message != "failed to parse response" {
		t.Errorf("message = %q, want %q", classified.Message, "failed to parse response")
	}
	if classified.Status != 200 {
		t.Errorf("status = %d, want 200", classified.Status)
	}
	if classified.Data == nil {
		t.Error("expected the parse error to be carried in data")
	}
}

func TestNetworkFailureClassifiedWithStatusZero(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	_, err := New(srv.URL).TeamMembers(context.Background())
	classified, ok := err.(*apierr.Error)
	if !ok {
		t.Fatalf("expected *apierr.Error, got %T", err)
	}
	if classified.Message != "network request failed" {
		t.Errorf("message = %q, want %q", classified.Message, "network request failed")
	}
	if classified.Status != 0 {
		t.Errorf("status = %d, want 0", classified.Status)
	}
	if !apierr.IsNetwork(err) {
		t.Error("expected IsNetwork to report true")
	}
}

func TestSuccessDecodesTypedValue(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/team" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id":"tm-1","name":"Ada","role":"Engineer"}]`))
	}))
	defer srv.Close()

	members, err := New(srv.URL).TeamMembers(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(members) != 1 || members[0].Name != "Ada" {
		t.Errorf("unexpected members: %+v", members)
	}
}

func TestBearerTokenSentWhenSet(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	c.SetToken("token-123")
	if _, err := c.Inquiries(context.Background(), "all"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotAuth != "Bearer token-123" {
		t.Errorf("Authorization = %q, want bearer token", gotAuth)
	}
}
