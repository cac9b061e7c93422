// Package response provides helpers for writing consistent JSON HTTP
// responses.
//
// Every handler in this application sends JSON back to the client.
// Rather than repeating the same three lines (set header, set status,
// encode JSON) in every handler, we centralise them here.
//
// Consistent response shapes also make life easier for API consumers —
// they always know what error responses look like.
package response

import (
	"encoding/json"
	"net/http"

	"github.com/meera-nair/student-records-api/internal/validation"
)

// Response is the standard envelope returned for error cases.
//
// Success responses return the resource itself (a student, a list…).
// Error responses always look like:
//
//	{ "status": "error", "error": "field age must be between 1 and 99",
//	  "details": [ { "field": "age", "rule": "lte", "value": 130 } ] }
//
// Details is only populated for validation failures; not-found and
// decode errors carry just the message.
type Response struct {
	Status  string                  `json:"status"`
	Error   string                  `json:"error,omitempty"`
	Details []validation.FieldError `json:"details,omitempty"`
}

// Status string constants — use these instead of raw string literals so
// a typo is caught by the compiler rather than silently sending "eroor".
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// WriteJSON writes a JSON-encoded response with the given HTTP status.
//
// ORDER MATTERS: Header() → WriteHeader() → body writes. Once
// WriteHeader is called (or the first Write happens), headers are
// locked in.
func WriteJSON(w http.ResponseWriter, status int, data any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(data)
}

// GeneralError wraps any Go error into the standard envelope. Use it
// for decode failures and other non-validation errors.
func GeneralError(err error) Response {
	return Response{
		Status: StatusError,
		Error:  err.Error(),
	}
}

// ValidationError builds the envelope for a failed payload validation,
// carrying the per-field breakdown so the client can see exactly which
// field broke which rule, and with what value.
func ValidationError(errs validation.FieldErrors) Response {
	return Response{
		Status:  StatusError,
		Error:   errs.Error(),
		Details: errs,
	}
}
