package ledger

import (
	"errors"
	"fmt"
)

var (
	// ErrAccountNotFound reports a missing wallet, token account or mint.
	ErrAccountNotFound = errors.New("account not found")
	// ErrUnsupported reports an operation the ledger does not offer.
	ErrUnsupported = errors.New("operation not supported by ledger")
)

type LedgerError struct {
	Message string
}

func (errorValue LedgerError) Error() string {
	return errorValue.Message
}

// QueryError wraps a failed ledger call.
type QueryError struct {
	LedgerError
	Operation string
	Address   string
	Cause     error
}

func (errorValue QueryError) Unwrap() error {
	return errorValue.Cause
}

func NewQueryError(operation string, address string, cause error) error {
	message := fmt.Sprintf("ledger %s failed", operation)
	if address != "" {
		message = fmt.Sprintf("ledger %s failed for %s", operation, address)
	}
	if cause != nil {
		message = fmt.Sprintf("%s: %v", message, cause)
	}
	return QueryError{
		LedgerError: LedgerError{Message: message},
		Operation:   operation,
		Address:     address,
		Cause:       cause,
	}
}

// TransactionError reports a transaction the ledger accepted but failed.
type TransactionError struct {
	LedgerError
	Signature string
	Status    string
}

func NewTransactionError(signature string, status string) error {
	return TransactionError{
		LedgerError: LedgerError{Message: fmt.Sprintf("transaction %s failed: %s", signature, status)},
		Signature:   signature,
		Status:      status,
	}
}

type InvalidAddressError struct {
	LedgerError
	Address string
}

func NewInvalidAddressError(address string, reason string) error {
	return InvalidAddressError{
		LedgerError: LedgerError{Message: fmt.Sprintf("invalid address %q: %s", address, reason)},
		Address:     address,
	}
}

type InvalidAmountError struct {
	LedgerError
	Value string
}

func NewInvalidAmountError(value string, reason string) error {
	return InvalidAmountError{
		LedgerError: LedgerError{Message: fmt.Sprintf("invalid amount %q: %s", value, reason)},
		Value:       value,
	}
}
