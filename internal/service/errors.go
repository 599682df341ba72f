package service

import (
	"errors"
	"net/http"
)

// RejectionError is a failure the visitor should see. Status is the HTTP
// status to answer with; Message is safe to show.
type RejectionError struct {
	Status  int
	Message string
	Err     error
}

func (e *RejectionError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *RejectionError) Unwrap() error {
	return e.Err
}

// AsRejection extracts a *RejectionError from err.
func AsRejection(err error) (*RejectionError, bool) {
	var rej *RejectionError
	if errors.As(err, &rej) {
		return rej, true
	}
	return nil, false
}

func badRequest(msg string) *RejectionError {
	return &RejectionError{Status: http.StatusBadRequest, Message: msg}
}
