package client

import (
	"fmt"
	"sync"

	"oakline/pkg/apierr"
)

// notifyMessageLimit caps how much of an error message is pushed to the
// notifier; the stored state keeps the full text.
const notifyMessageLimit = 100

// Severity grades a notification.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// Notifier receives user-facing notifications about failures. Implementations
// might show a toast, write to a log, or page someone.
type Notifier interface {
	Notify(severity Severity, title, message string)
}

// ErrorState is the last failure recorded by a Recovery, if any.
type ErrorState struct {
	HasError bool
	Message  string
	Details  string
}

// Recovery centralizes error handling for client-side flows: it classifies
// whatever a call produced, records it, and notifies. Safe for concurrent
// use.
type Recovery struct {
	mu       sync.Mutex
	state    ErrorState
	notifier Notifier
}

// NewRecovery creates a Recovery that reports through the given notifier.
func NewRecovery(notifier Notifier) *Recovery {
	return &Recovery{notifier: notifier}
}

// HandleError classifies failure, stores the resulting state, and sends a
// notification before returning. The returned message is never truncated;
// only the notification copy is.
func (r *Recovery) HandleError(failure any, fallback string) (message, details string) {
	classified := apierr.Classify(failure, fallback)
	message = classified.Message
	if classified.Data != nil {
		details = fmt.Sprint(classified.Data)
	}

	r.mu.Lock()
	r.state = ErrorState{HasError: true, Message: message, Details: details}
	notifier := r.notifier
	r.mu.Unlock()

	if notifier != nil {
		notifier.Notify(SeverityError, "Error", truncate(message, notifyMessageLimit))
	}
	return message, details
}

// ClearError resets the stored state. Calling it with no error recorded is a
// no-op.
func (r *Recovery) ClearError() {
	r.mu.Lock()
	r.state = ErrorState{}
	r.mu.Unlock()
}

// State returns a copy of the current error state.
func (r *Recovery) State() ErrorState {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// Retry clears any recorded error and runs op again; a new failure is
// handled the same way the original was.
func (r *Recovery) Retry(op func() error) error {
	r.ClearError()
	if err := op(); err != nil {
		r.HandleError(err, apierr.DefaultMessage)
		return err
	}
	return nil
}

// truncate shortens s to at most limit characters, spending the last three
// on an ellipsis when it has to cut.
func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-3]) + "..."
}
