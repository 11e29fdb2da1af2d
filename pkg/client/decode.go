package client

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"oakline/pkg/apierr"
)

// decodeResponse turns a transport response into either a typed value or a
// classified error.
//
// On a non-success status the body is decoded as a structured error first
// and as plain text if that fails; the error message comes from the body's
// message field when present, with a status-based default otherwise. On a
// success status a body that fails to decode as T yields a parse-failure
// classified error carrying the decoder's own message.
func decodeResponse[T any](resp *http.Response) (T, error) {
	var zero T

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return zero, apierr.WithData("failed to parse response", resp.StatusCode, err.Error())
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		message := fmt.Sprintf("API request failed with status %d", resp.StatusCode)
		var data any
		var structured map[string]any
		if err := json.Unmarshal(body, &structured); err == nil {
			data = structured
			if m, ok := structured["message"].(string); ok && m != "" {
				message = m
			}
		} else {
			data = string(body)
		}
		return zero, apierr.WithData(message, resp.StatusCode, data)
	}

	var v T
	if err := json.Unmarshal(body, &v); err != nil {
		return zero, apierr.WithData("failed to parse response", resp.StatusCode, err.Error())
	}
	return v, nil
}
