package http

import (
	"errors"
	"net/http"

	"golf-coach/internal/coach"
)

var (
	errInvalidBody = errors.New("request body must be a JSON object with a \"text\" string")
	errMissingText = errors.New("text is required")
)

// httpError is what a delivery failure looks like on the wire.
type httpError struct {
	status  int
	message string
}

// mapError translates use-case and binding errors into a status and a message
// safe to show clients. Anything unrecognised is a 500 with the generic message.
func (h *handler) mapError(err error) httpError {
	switch {
	case errors.Is(err, errInvalidBody), errors.Is(err, errMissingText):
		return httpError{status: http.StatusBadRequest, message: err.Error()}
	case errors.Is(err, coach.ErrEmptyText):
		return httpError{status: http.StatusBadRequest, message: "text must not be empty"}
	default:
		return httpError{status: http.StatusInternalServerError, message: msgInternal}
	}
}

const msgInternal = "Failed to process the question. Please try again later."
