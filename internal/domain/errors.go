package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	// Account errors
	ErrAccountNotFound  = errors.New("account not found")
	ErrAccountInactive  = errors.New("account is inactive")
	ErrCompanyNotFound  = errors.New("company not found")
	ErrCurrencyMismatch = errors.New("document currency does not match account currency")
	ErrVersionConflict  = errors.New("account was modified concurrently")

	// Ledger errors
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrDuplicateEffect     = errors.New("document already has a non-reversed ledger entry")
	ErrEntryArithmetic     = errors.New("entry balance snapshots do not match amount")
	ErrEntryNotFound       = errors.New("ledger entry not found")
	ErrInvalidAmount       = errors.New("amount must be positive")

	// Document errors
	ErrDocumentNotFound        = errors.New("document not found")
	ErrDocumentDeleted         = errors.New("document is deleted")
	ErrDocumentNoAccount       = errors.New("document has no linked account")
	ErrInvalidDocumentType     = errors.New("invalid document type")
	ErrInvalidStatusTransition = errors.New("invalid document status transition")
)

// InsufficientBalanceError reports the shortfall when a decrease would drive
// an account negative without the company override. It unwraps to
// ErrInsufficientBalance.
type InsufficientBalanceError struct {
	AccountID string
	Available decimal.Decimal
	Required  decimal.Decimal
}

func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient balance: account %s has %s but operation requires %s",
		e.AccountID, e.Available.String(), e.Required.String())
}

func (e *InsufficientBalanceError) Unwrap() error {
	return ErrInsufficientBalance
}

// Shortfall is the missing amount.
func (e *InsufficientBalanceError) Shortfall() decimal.Decimal {
	return e.Required.Sub(e.Available)
}
