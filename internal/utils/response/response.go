// Package response provides helpers for writing consistent HTTP
// responses: JSON for the API routes, HTML for the form page.
//
// Consistent response shapes also make life easier for API consumers,
// they always know what error responses look like.
package response

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// ─────────────────────────────────────────────────────────────────────────────
// Response is the standard envelope returned for error cases.
//
// Error responses always look like:
//
//	{ "status": "error", "error": "field lastName is required" }
//
// Fields carries per-field detail when the error came from a blocked
// form submission.
// ─────────────────────────────────────────────────────────────────────────────
type Response struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
	Fields any    `json:"fields,omitempty"`
}

// Status string constants.
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// WriteJSON writes a JSON-encoded response with the given HTTP status code.
//
// IMPORTANT ORDER: Header() → WriteHeader() → body writes.
// Once WriteHeader is called (or the first Write), headers are locked.
func WriteJSON(w http.ResponseWriter, status int, data any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(data)
}

// WriteHTML renders into a buffer first and only then writes the status,
// so a render failure can still become a clean 500 instead of a
// half-written page.
func WriteHTML(w http.ResponseWriter, status int, render func(io.Writer) error) error {
	var buf bytes.Buffer
	if err := render(&buf); err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError),
			http.StatusInternalServerError)
		return err
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}

// GeneralError wraps any Go error into our standard Response shape.
// Use this for unexpected errors (decode errors, render failures, etc.)
func GeneralError(err error) Response {
	return Response{
		Status: StatusError,
		Error:  err.Error(),
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// ValidationError turns the names of the blank required fields into a
// single human-readable Response, with fields attached as detail.
//
// Example output:
//
//	{ "status": "error", "error": "field lastName is required, field age is required", ... }
//
// ─────────────────────────────────────────────────────────────────────────────
func ValidationError(invalid []string, fields any) Response {
	errMessages := make([]string, 0, len(invalid))
	for _, name := range invalid {
		errMessages = append(errMessages, fmt.Sprintf("field %s is required", name))
	}

	return Response{
		Status: StatusError,
		Error:  strings.Join(errMessages, ", "),
		Fields: fields,
	}
}
