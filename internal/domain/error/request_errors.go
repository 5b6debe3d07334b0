package error

import "errors"

// Request-level errors raised by the transport layer.
var (
	// ErrRateLimited is returned when a client exceeds its request allowance.
	ErrRateLimited = errors.New("too many requests")

	// ErrMalformedRequest is returned when a request body or parameter cannot be decoded.
	ErrMalformedRequest = errors.New("malformed request")
)

// RequestErrorCode defines error codes for transport errors.
// Format: REQ-XXYYYY where XX is category and YYYY is specific error.
type RequestErrorCode string

const (
	// Client errors (01XXXX)
	ErrCodeMalformedRequest RequestErrorCode = "REQ-010001"
	ErrCodeRateLimited      RequestErrorCode = "REQ-010002"

	// Server errors (02XXXX)
	ErrCodeInternal RequestErrorCode = "REQ-020001"
)
