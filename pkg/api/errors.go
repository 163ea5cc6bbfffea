package api

import (
	"encoding/json"
	"fmt"
	"strings"
)

// NetworkError is returned when no response reached the client.
type NetworkError struct {
	Op  string // Operation that failed, e.g. "create envelope"
	Err error  // The transport error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s: no response from server: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// ValidationError is returned when the server rejects a payload with a known
// 4xx semantic (a duplicate envelope name on create) or when the payload does
// not pass validation before it is sent. Status is 0 in the latter case.
type ValidationError struct {
	Op      string
	Status  int
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("%s: invalid request: %s", e.Op, e.Message)
	}

	return fmt.Sprintf("%s: rejected with status %d: %s", e.Op, e.Status, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// RemoteError is returned for all other non-2xx responses and for 2xx
// responses whose body cannot be decoded.
type RemoteError struct {
	Op      string
	Status  int
	Body    string
	Message string // Parsed from the "error" field of the body, if present
}

func (e *RemoteError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: status %d: %s", e.Op, e.Status, e.Message)
	}

	return fmt.Sprintf("%s: status %d", e.Op, e.Status)
}

// errorBody is the error document returned by the API.
type errorBody struct {
	Error string `json:"error"`
}

// errorMessage extracts the message of an error document.
//
// If the body is not an error document, the trimmed body is used.
func errorMessage(body []byte) string {
	var e errorBody
	if err := json.Unmarshal(body, &e); err == nil && e.Error != "" {
		return e.Error
	}

	return strings.TrimSpace(string(body))
}
