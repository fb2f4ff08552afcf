package utils

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/companieshouse/chs.go/log"
)

// ErrorResource is the object returned in an error case
type ErrorResource struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// NewErrorResponse - convenience function for creating an error resource
func NewErrorResponse(message string) *ErrorResource {
	return &ErrorResource{Error: message}
}

// NewErrorResponseWithDetails - convenience function for creating an error
// resource carrying diagnostic details
func NewErrorResponseWithDetails(message, details string) *ErrorResource {
	return &ErrorResource{Error: message, Details: details}
}

// WriteJSONWithStatus writes the interface as a json string with the supplied status.
func WriteJSONWithStatus(w http.ResponseWriter, r *http.Request, data interface{}, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(data)
	if err != nil {
		log.ErrorR(r, fmt.Errorf("error writing response: %v", err))
	}
}

// WriteErrorWithStatus writes an error resource with the supplied status
func WriteErrorWithStatus(w http.ResponseWriter, r *http.Request, message string, status int) {
	WriteJSONWithStatus(w, r, NewErrorResponse(message), status)
}
