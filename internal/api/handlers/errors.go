package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"Quill/internal/core/validation"
)

// MaxBodyBytes caps every JSON request body
const MaxBodyBytes = 1 << 20

// ErrorResponse is the JSON body of every non-2xx response
type ErrorResponse struct {
	Error   string                  `json:"error"`
	Message string                  `json:"message"`
	Errors  []validation.FieldError `json:"errors,omitempty"`
}

// WriteError writes a standardized JSON error response
func WriteError(w http.ResponseWriter, statusCode int, errorType, message string) {
	WriteJSON(w, statusCode, ErrorResponse{
		Error:   errorType,
		Message: message,
	})
}

// WriteValidationError writes a 400 listing every invalid field
func WriteValidationError(w http.ResponseWriter, valErr *validation.Error) {
	WriteJSON(w, http.StatusBadRequest, ErrorResponse{
		Error:   "ValidationError",
		Message: "Invalid request",
		Errors:  valErr.Fields,
	})
}

// WriteInternalError logs the real cause and writes a generic 500
func WriteInternalError(w http.ResponseWriter, op string, err error) {
	log.Printf("%s: %v", op, err)
	WriteError(w, http.StatusInternalServerError, "InternalError", "An internal error occurred")
}

// WriteJSON encodes body as the JSON response
func WriteJSON(w http.ResponseWriter, statusCode int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}

// MessageResponse is the body of endpoints that only confirm success
type MessageResponse struct {
	Message string `json:"message"`
}

// DecodeJSON reads a size-limited JSON body into dst.
// On failure it writes a 400 and returns false.
func DecodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	r.Body = http.MaxBytesReader(w, r.Body, MaxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			WriteError(w, http.StatusRequestEntityTooLarge, "PayloadTooLarge", "Request body too large")
			return false
		}
		WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return false
	}
	return true
}
