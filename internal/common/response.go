package common

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse is the error envelope: {message, error?}. Denied
// authorization additionally reports the required and current roles.
type ErrorResponse struct {
	Message  string `json:"message"`
	Error    string `json:"error,omitempty"`
	Required string `json:"required,omitempty"`
	Current  string `json:"current,omitempty"`
}

// RespondWithError writes a bare {message} error body.
func RespondWithError(w http.ResponseWriter, code int, message string) {
	RespondWithJSON(w, code, ErrorResponse{Message: message})
}

// RespondWithErrorDetail writes {message, error} without leaking anything
// beyond the error's message text.
func RespondWithErrorDetail(w http.ResponseWriter, code int, message string, err error) {
	RespondWithJSON(w, code, ErrorResponse{Message: message, Error: err.Error()})
}

// RespondWithAuthzError writes the 403 envelope carrying both roles.
func RespondWithAuthzError(w http.ResponseWriter, authzErr *AuthorizationError) {
	RespondWithJSON(w, http.StatusForbidden, ErrorResponse{
		Message:  "Access denied",
		Required: authzErr.Required,
		Current:  authzErr.Current,
	})
}

func RespondWithJSON(w http.ResponseWriter, code int, payload any) {
	response, err := json.Marshal(payload)
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"message": "Failed to marshal JSON response"}`))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}
