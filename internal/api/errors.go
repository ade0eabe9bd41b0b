package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"vedic-backend/internal/models"
)

// ErrorCode classifies API failures.
type ErrorCode string

const (
	InvalidInput  ErrorCode = "INVALID_INPUT"
	PlaceNotFound ErrorCode = "PLACE_NOT_FOUND"
	InternalError ErrorCode = "INTERNAL_ERROR"
)

// Error is an API failure with a code and a client-facing message.
type Error struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil && e.Message == "" {
		return e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// MapErrorToStatus maps error codes to HTTP status codes
func MapErrorToStatus(code ErrorCode) int {
	switch code {
	case InvalidInput:
		return http.StatusBadRequest // 400
	case PlaceNotFound:
		return http.StatusBadRequest // 400
	case InternalError:
		return http.StatusInternalServerError // 500
	default:
		return http.StatusInternalServerError // 500
	}
}

// classify turns any error into an *Error. Invalid birth data is the
// caller's fault, everything else is ours.
func classify(err error) *Error {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr
	}
	if errors.Is(err, models.ErrInvalidInput) {
		return &Error{Code: InvalidInput, Message: err.Error(), Err: err}
	}
	return &Error{Code: InternalError, Message: "internal error", Err: err}
}

// WriteJSON writes a JSON response
func WriteJSON(w http.ResponseWriter, data interface{}, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// WriteData writes a successful envelope.
func WriteData(w http.ResponseWriter, r *http.Request, data interface{}) {
	WriteJSON(w, models.Envelope{OK: true, RequestID: GetRequestID(r.Context()), Data: data}, http.StatusOK)
}

// WriteError writes a failed envelope with the status mapped from the error code.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	apiErr := classify(err)
	WriteJSON(w, models.Envelope{
		OK:        false,
		RequestID: GetRequestID(r.Context()),
		Error:     apiErr.Error(),
		Code:      string(apiErr.Code),
	}, MapErrorToStatus(apiErr.Code))
}

// BadRequest writes a 400 Bad Request error
func BadRequest(w http.ResponseWriter, r *http.Request, message string) {
	WriteError(w, r, &Error{Code: InvalidInput, Message: message})
}
