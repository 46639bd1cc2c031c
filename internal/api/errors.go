package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/luizavanter/guialmeidapersonal/internal/models"
)

const (
	CodeNetworkError   = "NETWORK_ERROR"
	CodeSessionExpired = "SESSION_EXPIRED"
)

// Error is the typed failure every request surfaces: a machine code plus a
// human message, with the field name when the server reported a validation
// error.
type Error struct {
	Status  int    `json:"-"`
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

func (e *Error) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Message)
	}
	return e.Message
}

func networkError() *Error {
	return &Error{
		Code:    CodeNetworkError,
		Message: "Network error. Please check your connection.",
	}
}

func sessionExpiredError() *Error {
	return &Error{
		Status:  http.StatusUnauthorized,
		Code:    CodeSessionExpired,
		Message: "Session expired. Please sign in again.",
	}
}

// decodeError maps a non-2xx response to an Error. Server-provided errors
// (validation and business failures) pass through as-is; everything else gets
// a fixed message.
func decodeError(status int, body []byte) *Error {
	var env models.Envelope
	if err := json.Unmarshal(body, &env); err == nil && len(env.Errors) > 0 {
		first := env.Errors[0]
		return &Error{Status: status, Field: first.Field, Message: first.Message, Code: first.Code}
	}

	switch {
	case status == http.StatusNotFound:
		return &Error{Status: status, Message: "Resource not found", Code: "404"}
	case status == http.StatusForbidden:
		return &Error{Status: status, Message: "Access forbidden", Code: "403"}
	case status >= 500:
		return &Error{Status: status, Message: "Server error", Code: "500"}
	default:
		return &Error{Status: status, Message: http.StatusText(status), Code: strconv.Itoa(status)}
	}
}
