package controller

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
	"github.com/finance-tracker/ledger/internal/integration/entrypoint/dto"
)

// handleLedgerError maps ledger errors to HTTP responses.
func handleLedgerError(ctx *gin.Context, err error) {
	var validationErr *domainerror.ValidationError
	if errors.As(err, &validationErr) {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: validationErr.Message,
			Code:  string(validationErr.Code),
			Field: validationErr.Field,
		})
		return
	}

	var loanErr *domainerror.LoanError
	if errors.As(err, &loanErr) {
		ctx.JSON(getStatusCodeForLoanError(loanErr.Code), dto.ErrorResponse{
			Error: loanErr.Message,
			Code:  string(loanErr.Code),
		})
		return
	}

	slog.Error("Request failed",
		"method", ctx.Request.Method,
		"path", ctx.FullPath(),
		"error", err,
	)

	// Generic server error
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
		Code:  string(domainerror.ErrCodeInternal),
	})
}

// getStatusCodeForLoanError maps loan error codes to HTTP status codes.
func getStatusCodeForLoanError(code domainerror.LoanErrorCode) int {
	switch code {
	case domainerror.ErrCodeUnknownLoan:
		return http.StatusNotFound
	case domainerror.ErrCodeInvalidTerm:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// respondMalformed rejects a request that could not be decoded.
func respondMalformed(ctx *gin.Context, message string, field string) {
	ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Error: message,
		Code:  string(domainerror.ErrCodeMalformedRequest),
		Field: field,
	})
}

// bindJSON decodes the request body, answering 400 on failure.
func bindJSON(ctx *gin.Context, req any) bool {
	if err := ctx.ShouldBindJSON(req); err != nil {
		respondMalformed(ctx, "Invalid request body: "+err.Error(), "")
		return false
	}
	return true
}

// parseDate parses a YYYY-MM-DD field, answering 400 when it is malformed.
// An empty value yields the zero time and is left to the use case to reject.
func parseDate(ctx *gin.Context, field, value string) (time.Time, bool) {
	t, err := dto.ParseDate(value)
	if err != nil {
		respondMalformed(ctx, field+" must be a date formatted YYYY-MM-DD", field)
		return time.Time{}, false
	}
	return t, true
}

// newestFirst reads the ?order= list option.
func newestFirst(ctx *gin.Context) (bool, bool) {
	switch ctx.Query("order") {
	case "", "oldest":
		return false, true
	case "newest":
		return true, true
	default:
		respondMalformed(ctx, "order must be newest or oldest", "order")
		return false, false
	}
}
