package httpx

import (
	"encoding/json"
	"net/http"
)

// ErrorBody is the JSON shape of every error response. Fields is set only for
// request validation failures and maps a JSON field name to its message.
type ErrorBody struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

// JSON writes v with the given status. Encoding errors are dropped because
// the status line has already been sent.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// JSONError writes {"error": message}.
func JSONError(w http.ResponseWriter, status int, message string) {
	JSON(w, status, ErrorBody{Error: message})
}

// ValidationFailed writes a 422 with the per-field messages.
func ValidationFailed(w http.ResponseWriter, fields map[string]string) {
	JSON(w, http.StatusUnprocessableEntity, ErrorBody{Error: "Validation failed", Fields: fields})
}

// SafeError returns the text to send for err. With hideInternal set, 5xx
// errors collapse to the status text so storage and driver details stay in
// the logs.
func SafeError(err error, status int, hideInternal bool) string {
	if hideInternal && status >= http.StatusInternalServerError {
		return http.StatusText(status)
	}
	return err.Error()
}
