package utils

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidExternalResponse = errors.New("invalid external response")
	ErrRegionRejected          = errors.New("external result outside supported region")
	ErrUpstreamUnreachable     = errors.New("upstream unreachable")
	ErrMissingConfiguration    = errors.New("missing configuration")
	ErrInvalidTaggingInput     = errors.New("invalid tagging input")
)

// ExternalError carries one of the sentinel kinds above together with a
// human message and optional machine-readable details.
type ExternalError struct {
	Kind    error
	Message string
	Details any
	Err     error
}

func (e *ExternalError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExternalError) Is(target error) bool {
	return target == e.Kind
}

func (e *ExternalError) Unwrap() error {
	return e.Err
}

// Code is the stable identifier sent to clients.
func (e *ExternalError) Code() string {
	return ErrorCode(e.Kind)
}

func ErrorCode(kind error) string {
	switch {
	case errors.Is(kind, ErrInvalidExternalResponse):
		return "INVALID_EXTERNAL_RESPONSE"
	case errors.Is(kind, ErrRegionRejected):
		return "EXTERNAL_SERVICE_ERROR"
	case errors.Is(kind, ErrUpstreamUnreachable):
		return "UPSTREAM_UNREACHABLE"
	case errors.Is(kind, ErrMissingConfiguration):
		return "MISSING_CONFIGURATION"
	case errors.Is(kind, ErrInvalidTaggingInput):
		return "INVALID_TAGGING_INPUT"
	default:
		return "INTERNAL_ERROR"
	}
}

func NewInvalidExternalResponse(message string, details any, cause error) *ExternalError {
	return &ExternalError{Kind: ErrInvalidExternalResponse, Message: message, Details: details, Err: cause}
}

func NewRegionRejected(message string) *ExternalError {
	return &ExternalError{Kind: ErrRegionRejected, Message: message}
}

func NewUpstreamUnreachable(message string, cause error) *ExternalError {
	var details any
	if cause != nil {
		details = cause.Error()
	}
	return &ExternalError{Kind: ErrUpstreamUnreachable, Message: message, Details: details, Err: cause}
}

func NewMissingConfiguration(key string) *ExternalError {
	return &ExternalError{Kind: ErrMissingConfiguration, Message: key + " is required."}
}
