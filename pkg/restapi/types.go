package restapi

import (
	"encoding/json"
	"fmt"
)

// Envelope is the response body shape of every backoffice API endpoint.
type Envelope struct {
	StatusCode int             `json:"statusCode"`
	Status     string          `json:"status"`
	Message    string          `json:"message"`
	Data       json.RawMessage `json:"data"`
}

// APIError is returned for non-2xx responses. Body keeps the raw payload for logging.
type APIError struct {
	Method     string
	Path       string
	StatusCode int
	Message    string
	Body       string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("backoffice API %s %s error %d: %s", e.Method, e.Path, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("backoffice API %s %s error %d: %s", e.Method, e.Path, e.StatusCode, e.Body)
}
