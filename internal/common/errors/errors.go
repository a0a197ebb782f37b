// Package errors provides standardized error handling for the browse core.
package errors

import (
	"errors"
	"fmt"
	"time"
)

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	ErrCodeEndpointUnreachable   ErrorCode = "ENDPOINT_UNREACHABLE"
	ErrCodeEndpointStatus        ErrorCode = "ENDPOINT_STATUS"
	ErrCodeResponseDecodeFailed  ErrorCode = "RESPONSE_DECODE_FAILED"
	ErrCodeResponseSchemaInvalid ErrorCode = "RESPONSE_SCHEMA_INVALID"
	ErrCodeInvalidFilterFormat   ErrorCode = "INVALID_FILTER_FORMAT"
)

// BrowseError represents a structured application error.
type BrowseError struct {
	Code      ErrorCode `json:"code"`
	Message   string    `json:"message"`
	Details   string    `json:"details,omitempty"`
	Retryable bool      `json:"retryable"`
	Timestamp time.Time `json:"timestamp"`
}

func (e *BrowseError) Error() string {
	return fmt.Sprintf("BrowseError[%s]: %s", e.Code, e.Message)
}

// NewEndpointUnreachableError creates a retryable transport error.
func NewEndpointUnreachableError(err error) *BrowseError {
	return &BrowseError{
		Code:      ErrCodeEndpointUnreachable,
		Message:   "Player endpoint unreachable",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewEndpointStatusError creates a retryable error for a non-2xx response.
func NewEndpointStatusError(status int, body string) *BrowseError {
	return &BrowseError{
		Code:      ErrCodeEndpointStatus,
		Message:   fmt.Sprintf("Player endpoint returned status %d", status),
		Details:   body,
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewResponseDecodeFailedError creates a retryable decode error.
func NewResponseDecodeFailedError(err error) *BrowseError {
	return &BrowseError{
		Code:      ErrCodeResponseDecodeFailed,
		Message:   "Failed to decode endpoint response",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewResponseSchemaInvalidError creates a non-retryable contract violation error.
func NewResponseSchemaInvalidError(details string) *BrowseError {
	return &BrowseError{
		Code:      ErrCodeResponseSchemaInvalid,
		Message:   "Endpoint response violates the list response schema",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewInvalidFilterFormatError creates a non-retryable filter format error.
// Local only: a malformed descriptor never reaches the server.
func NewInvalidFilterFormatError(details string) *BrowseError {
	return &BrowseError{
		Code:      ErrCodeInvalidFilterFormat,
		Message:   "Invalid filter format",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// IsRetryable reports whether err carries a retryable browse error.
func IsRetryable(err error) bool {
	var be *BrowseError
	if errors.As(err, &be) {
		return be.Retryable
	}
	return false
}

// AsBrowseError extracts a BrowseError from err, wrapping unknown errors
// as retryable transport failures so the orchestrator never surfaces a
// raw error to its callers.
func AsBrowseError(err error) *BrowseError {
	var be *BrowseError
	if errors.As(err, &be) {
		return be
	}
	return NewEndpointUnreachableError(err)
}
