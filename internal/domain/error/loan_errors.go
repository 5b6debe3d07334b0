package error

import "errors"

// Loan domain errors.
var (
	// ErrUnknownLoan is returned when a payment targets a loan id that does not exist.
	ErrUnknownLoan = errors.New("loan not found")

	// ErrInvalidTerm is returned when a loan term works out to zero or fewer months.
	ErrInvalidTerm = errors.New("invalid loan term")
)

// LoanErrorCode defines error codes for loan errors.
// Format: LON-XXYYYY where XX is category and YYYY is specific error.
type LoanErrorCode string

const (
	ErrCodeUnknownLoan LoanErrorCode = "LON-010001"
	ErrCodeInvalidTerm LoanErrorCode = "LON-010002"
)

// LoanError represents a loan error with code and message.
type LoanError struct {
	Code    LoanErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *LoanError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *LoanError) Unwrap() error {
	return e.Err
}

// NewLoanError creates a new LoanError with the given code and message.
func NewLoanError(code LoanErrorCode, message string, err error) *LoanError {
	return &LoanError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
