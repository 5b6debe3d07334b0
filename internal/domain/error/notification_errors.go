package error

import "errors"

// Notification errors.
var (
	// ErrQueueFull is returned when the change relay has no room for another event.
	ErrQueueFull = errors.New("notification queue is full")

	// ErrPublishFailed is returned when an event could not be handed to the broker.
	ErrPublishFailed = errors.New("failed to publish change event")
)

// NotificationErrorCode defines error codes for notification errors.
// Format: NTF-XXYYYY where XX is category and YYYY is specific error.
type NotificationErrorCode string

const (
	ErrCodeQueueFull     NotificationErrorCode = "NTF-010001"
	ErrCodePublishFailed NotificationErrorCode = "NTF-020001"
)

// NotificationError represents a change delivery error.
type NotificationError struct {
	Code    NotificationErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *NotificationError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *NotificationError) Unwrap() error {
	return e.Err
}

// NewNotificationError creates a new NotificationError.
func NewNotificationError(code NotificationErrorCode, message string, err error) *NotificationError {
	return &NotificationError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
