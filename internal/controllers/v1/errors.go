package v1

import (
	"errors"
	"net/http"

	"github.com/ledgerline/backend/internal/auth"
	"github.com/ledgerline/backend/internal/models"
)

type httpError struct {
	Error string `json:"error" example:"An ID specified in the query string was not a valid UUID"`
}

// forbiddenError is the response body for authorization and ownership
// denials. No resource data is disclosed.
type forbiddenError struct {
	Error  string `json:"error" example:"forbidden"`
	Reason string `json:"reason" example:"role_restricted"`
}

// status returns the appropriate HTTP status for an error
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	if errors.Is(err, models.ErrEmailExists) || errors.Is(err, models.ErrInvoiceNumberNotUnique) {
		return http.StatusConflict
	}

	if errors.Is(err, auth.ErrUnauthorized) {
		return http.StatusUnauthorized
	}

	return http.StatusBadRequest
}

// Auth errors
var (
	errRegisterFieldsMissing = errors.New("email, password and role must be set")
	errRoleNotSelfAssignable = errors.New("the admin role cannot be chosen at registration")
)

// Budget errors
var (
	errBudgetFieldsMissing = errors.New("categoryId, startDate and endDate must be set")
)

// Invoice errors
var (
	errInvoiceFieldsMissing = errors.New("clientId and invoiceNumber must be set")
)

// Import errors
var (
	errNoFilePost    = errors.New("you must send a file to this endpoint")
	errNoRowsInCSV   = errors.New("the CSV file contains no data rows")
	errWrongFileType = errors.New("this endpoint only supports CSV files")
)
