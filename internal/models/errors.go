package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")

	// Conflict errors for unique constraints
	ErrEmailExists            = errors.New("a user with this email already exists")
	ErrInvoiceNumberNotUnique = errors.New("an invoice with this invoice number already exists")

	// Validation errors
	ErrRoleInvalid              = errors.New("the role must be one of: admin, client_mgmt, self_employed, salary, accountant, viewer")
	ErrTransactionTypeInvalid   = errors.New("the transaction type must be income or expense")
	ErrTransactionAmountInvalid = errors.New("the transaction amount must be positive")
	ErrBudgetTargetNegative     = errors.New("the budget target must not be negative")
	ErrInvoiceStatusInvalid     = errors.New("the invoice status must be one of: draft, sent, paid, overdue, cancelled")
	ErrClientNameRequired       = errors.New("the client name must be set")
)
