// Package server provides the HTTP REST API for the resume tailor backend.
package server

import (
	"fmt"
	"net/http"
)

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// ErrUnknownSection indicates an order patch named a section that does not exist
type ErrUnknownSection struct {
	Section string
}

func (e *ErrUnknownSection) Error() string {
	return fmt.Sprintf("unknown section: %s", e.Section)
}

// ErrResumeUnavailable indicates the resume file could not be loaded
type ErrResumeUnavailable struct {
	Cause error
}

func (e *ErrResumeUnavailable) Error() string {
	return fmt.Sprintf("resume unavailable: %v", e.Cause)
}

func (e *ErrResumeUnavailable) Unwrap() error {
	return e.Cause
}

// ErrAnalyzerUnavailable indicates no analyzer backend is configured
type ErrAnalyzerUnavailable struct{}

func (e *ErrAnalyzerUnavailable) Error() string {
	return "job analysis is not configured on this server"
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	switch err.(type) {
	case *ErrValidation, *ErrUnknownSection:
		return http.StatusBadRequest
	case *ErrResumeUnavailable:
		return http.StatusServiceUnavailable
	case *ErrAnalyzerUnavailable:
		return http.StatusNotImplemented
	default:
		return http.StatusInternalServerError
	}
}
