package errors

import (
	"encoding/json"
	"net/http"
)

// HTTPBody is the JSON error payload written to clients.
type HTTPBody struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Meta    map[string]interface{} `json:"meta,omitempty"`
}

// WriteHTTP writes an error as a JSON response with the status mapped from
// its code. Non-Error values are reported as internal errors without
// leaking their text.
func WriteHTTP(w http.ResponseWriter, err error) {
	if err == nil {
		return
	}

	body := HTTPBody{
		Code:    string(CodeInternal),
		Message: "internal error",
	}
	status := http.StatusInternalServerError

	var customErr *Error
	if As(err, &customErr) {
		body.Code = string(customErr.Code)
		body.Message = customErr.Message
		body.Meta = customErr.Meta
		status = customErr.Code.HTTPStatus()
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
