package backend

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// RequestError marks a request that never produced an HTTP response:
// connection refused, DNS failure, timeout.
type RequestError struct {
	URL string
	Err error
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("backend request %s: %v", e.URL, e.Err)
}

func (e *RequestError) Unwrap() error { return e.Err }

// APIError is a non-2xx backend response, optionally carrying the message
// the backend put in its error body.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("backend responded %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("backend responded %d", e.StatusCode)
}

// errorBody is the error envelope the backend uses; some endpoints answer
// with "message", older ones with "mensagem".
type errorBody struct {
	Message  string `json:"message"`
	Mensagem string `json:"mensagem"`
}

func newAPIError(resp *http.Response) *APIError {
	apiErr := &APIError{StatusCode: resp.StatusCode}
	data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err != nil {
		return apiErr
	}
	var body errorBody
	if json.Unmarshal(data, &body) == nil {
		if msg := strings.TrimSpace(body.Message); msg != "" {
			apiErr.Message = msg
		} else if msg := strings.TrimSpace(body.Mensagem); msg != "" {
			apiErr.Message = msg
		}
	}
	return apiErr
}

// UserMessage returns the server-provided message when the error carries
// one, otherwise the fallback. Handlers use it to fill status alerts.
func UserMessage(err error, fallback string) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}
