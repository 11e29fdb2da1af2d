package apierr

import (
	"errors"
	"testing"
)

type detailedError struct {
	msg     string
	details string
}

func (e *detailedError) Error() string   { return e.msg }
func (e *detailedError) Details() string { return e.details }

func TestClassifyPassesThroughClassified(t *testing.T) {
	original := WithData("Review not found", 404, map[string]any{"id": "abc"})

	got := Classify(original, "fallback")
	if got != original {
		t.Fatalf("expected the same *Error instance back, got %+v", got)
	}
}

func TestClassifyError(t *testing.T) {
	got := Classify(errors.New("connection refused"), "")
	if got.Message != "connection refused" {
		t.Errorf("message = %q, want %q", got.Message, "connection refused")
	}
	if got.Status != 0 {
		t.Errorf("status = %d, want 0", got.Status)
	}
	if got.Data != nil {
		t.Errorf("data = %v, want nil", got.Data)
	}
}

func TestClassifyErrorWithDetails(t *testing.T) {
	got := Classify(&detailedError{msg: "write failed", details: "disk full"}, "")
	if got.Message != "write failed" {
		t.Errorf("message = %q, want %q", got.Message, "write failed")
	}
	if got.Data != "disk full" {
		t.Errorf("data = %v, want %q", got.Data, "disk full")
	}
}

func TestClassifyString(t *testing.T) {
	got := Classify("something broke", "fallback")
	if got.Message != "something broke" {
		t.Errorf("message = %q, want %q", got.Message, "something broke")
	}
}

func TestClassifyUnknownValueUsesFallback(t *testing.T) {
	got := Classify(42, "request failed")
	if got.Message != "request failed" {
		t.Errorf("message = %q, want %q", got.Message, "request failed")
	}
}

func TestClassifyUnknownValueDefaultMessage(t *testing.T) {
	for _, v := range []any{nil, 42, struct{}{}, ""} {
		got := Classify(v, "")
		if got.Message != DefaultMessage {
			t.Errorf("Classify(%v): message = %q, want %q", v, got.Message, DefaultMessage)
		}
	}
}

func TestIsNotFound(t *testing.T) {
	if !IsNotFound(New("Inquiry not found", 404)) {
		t.Error("expected 404 to be not-found")
	}
	if IsNotFound(New("boom", 500)) {
		t.Error("500 should not be not-found")
	}
	if IsNotFound(errors.New("plain")) {
		t.Error("plain error should not be not-found")
	}
}

func TestIsNetwork(t *testing.T) {
	if !IsNetwork(New("network request failed", 0)) {
		t.Error("expected status 0 to be a network error")
	}
	if IsNetwork(New("bad request", 400)) {
		t.Error("400 should not be a network error")
	}
}
