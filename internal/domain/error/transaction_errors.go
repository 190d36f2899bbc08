// Package error defines domain-specific errors for the Expense Control application.
package error

import "errors"

// Transaction domain errors.
var (
	// ErrTransactionNotFound is returned when a transaction is not found in the system.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrNotAuthorizedToModifyTransaction is returned when user is not authorized to modify a transaction.
	ErrNotAuthorizedToModifyTransaction = errors.New("not authorized to modify transaction")

	// ErrInvalidTransactionType is returned when the transaction type is invalid.
	ErrInvalidTransactionType = errors.New("transaction type must be EXPENSE or INCOME")

	// ErrInvalidTransactionAmount is returned when the transaction amount is negative.
	ErrInvalidTransactionAmount = errors.New("transaction amount must not be negative")

	// ErrEmptyTransactionDescription is returned when the transaction description is empty.
	ErrEmptyTransactionDescription = errors.New("transaction description must not be empty")

	// ErrCategoryNotFoundForTransaction is returned when the referenced category is not found
	// or does not belong to the requesting user.
	ErrCategoryNotFoundForTransaction = errors.New("category not found or not accessible")

	// ErrInvalidPage is returned when the requested page number is zero or negative.
	ErrInvalidPage = errors.New("page must be greater than zero")

	// ErrInvalidLimit is returned when the requested page size is zero or negative.
	ErrInvalidLimit = errors.New("limit must be greater than zero")

	// ErrInvalidAmountRange is returned when minAmount is greater than maxAmount.
	ErrInvalidAmountRange = errors.New("minAmount must not exceed maxAmount")
)

// TransactionErrorCode defines error codes for transaction errors.
// Format: TXN-XXYYYY where XX is category and YYYY is specific error.
type TransactionErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidTransactionType   TransactionErrorCode = "TXN-010001"
	ErrCodeInvalidTransactionAmount TransactionErrorCode = "TXN-010002"
	ErrCodeEmptyDescription         TransactionErrorCode = "TXN-010003"
	ErrCodeTransactionNotFound      TransactionErrorCode = "TXN-010004"
	ErrCodeNotAuthorizedTransaction TransactionErrorCode = "TXN-010005"
	ErrCodeTxnCategoryNotFound      TransactionErrorCode = "TXN-010006"
	ErrCodeInvalidPage              TransactionErrorCode = "TXN-010007"
	ErrCodeInvalidLimit             TransactionErrorCode = "TXN-010008"
	ErrCodeInvalidAmountRange       TransactionErrorCode = "TXN-010009"
	ErrCodeMissingTransactionFields TransactionErrorCode = "TXN-010010"
)

// TransactionError represents a transaction error with code and message.
type TransactionError struct {
	Code    TransactionErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *TransactionError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *TransactionError) Unwrap() error {
	return e.Err
}

// NewTransactionError creates a new TransactionError with the given code and message.
func NewTransactionError(code TransactionErrorCode, message string, err error) *TransactionError {
	return &TransactionError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
