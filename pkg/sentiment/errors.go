package sentiment

import (
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"strings"
)

// ErrMalformedResult is returned when a 200 body cannot be decoded into a Result.
var ErrMalformedResult = errors.New("malformed sentiment result")

// CommunicationError reports a non-200 answer from the endpoint. Body holds the
// response verbatim; Message and Detail are filled when the body carries the
// endpoint's `{message, error}` error payload.
type CommunicationError struct {
	StatusCode int
	Body       string
	Message    string
	Detail     string
}

func (e *CommunicationError) Error() string {
	return fmt.Sprintf("sentiment analysis failed with status %d: %s", e.StatusCode, e.Body)
}

func newCommunicationError(status int, body []byte) *CommunicationError {
	ce := &CommunicationError{StatusCode: status, Body: string(body)}

	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if json.Unmarshal(body, &payload) == nil {
		ce.Message = strings.TrimSpace(payload.Message)
		ce.Detail = strings.TrimSpace(payload.Error)
	}
	return ce
}

// TransportError wraps a network-level failure (refused connection, DNS,
// timeout) raised by the HTTP transport.
type TransportError struct {
	Endpoint string
	Err      error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("sentiment request to %s: %v", e.Endpoint, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// Timeout reports whether the failure was a timeout.
func (e *TransportError) Timeout() bool {
	var netErr net.Error
	return errors.As(e.Err, &netErr) && netErr.Timeout()
}

// InterruptionError reports that the caller cancelled the call while it was in flight.
type InterruptionError struct {
	Err error
}

func (e *InterruptionError) Error() string {
	return fmt.Sprintf("sentiment request interrupted: %v", e.Err)
}

func (e *InterruptionError) Unwrap() error { return e.Err }
