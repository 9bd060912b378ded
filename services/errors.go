package services

import (
	"errors"
	"fmt"
)

// ErrorType represents the type/category of error
type ErrorType string

const (
	ErrorTypeValidation        ErrorType = "validation"
	ErrorTypeChallengeRejected ErrorType = "challenge_rejected"
	ErrorTypeDownstream        ErrorType = "downstream"
	ErrorTypeLocalIO           ErrorType = "local_io"
)

// DomainError represents a structured error with additional context
type DomainError struct {
	Type    ErrorType
	Message string
	Err     error
	Details map[string]interface{}
}

// Error implements the error interface
func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *DomainError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return e.Type == t.Type
}

// WithDetail adds a detail to the error
func (e *DomainError) WithDetail(key string, value interface{}) *DomainError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// NewDomainError creates a new domain error
func NewDomainError(errType ErrorType, message string, err error) *DomainError {
	return &DomainError{
		Type:    errType,
		Message: message,
		Err:     err,
		Details: make(map[string]interface{}),
	}
}

// Domain error variables

var (
	// Validation Errors
	ErrInvalidSubmission = NewDomainError(ErrorTypeValidation, "submission failed validation", nil)

	// Challenge Errors
	ErrChallengeRejected = NewDomainError(ErrorTypeChallengeRejected, "challenge verification rejected", nil)

	// Downstream Service Errors
	ErrChallengeService = NewDomainError(ErrorTypeDownstream, "challenge service unavailable", nil)
	ErrMailRelay        = NewDomainError(ErrorTypeDownstream, "mail relay error", nil)
	ErrRemoteMirror     = NewDomainError(ErrorTypeDownstream, "remote mirror sync failed", nil)

	// Local I/O Errors
	ErrLedgerWrite = NewDomainError(ErrorTypeLocalIO, "ledger write failed", nil)
)

// Error type checking helper functions

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Type == ErrorTypeValidation
	}
	return false
}

// IsChallengeRejectedError checks if an error is an explicit challenge rejection
func IsChallengeRejectedError(err error) bool {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Type == ErrorTypeChallengeRejected
	}
	return false
}

// IsDownstreamError checks if an error came from an external service
func IsDownstreamError(err error) bool {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Type == ErrorTypeDownstream
	}
	return false
}

// IsLocalIOError checks if an error is a local ledger I/O error
func IsLocalIOError(err error) bool {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Type == ErrorTypeLocalIO
	}
	return false
}

// GetErrorType returns the error type, or empty string for non-domain errors
func GetErrorType(err error) ErrorType {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Type
	}
	return ""
}

// GetErrorDetails returns the details map of a domain error, or nil
func GetErrorDetails(err error) map[string]interface{} {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Details
	}
	return nil
}
