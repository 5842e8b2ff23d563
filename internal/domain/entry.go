package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Entry represents a single immutable ledger entry. An entry is never
// updated after it is written; undoing one appends a reversal entry with the
// opposite direction that references it.
type Entry struct {
	CreatedAt       time.Time
	ID              string
	AccountID       string
	DocumentID      string
	Direction       EntryDirection
	Amount          decimal.Decimal
	BalanceBefore   decimal.Decimal
	BalanceAfter    decimal.Decimal
	AccountVersion  int64
	IsReversal      bool
	ReversesEntryID *string
}

// SignedAmount is the entry's delta on the account balance.
func (e *Entry) SignedAmount() decimal.Decimal {
	if e.Direction == DirectionDecrease {
		return e.Amount.Neg()
	}

	return e.Amount
}

// Validate checks the entry's internal arithmetic.
func (e *Entry) Validate() error {
	if e.Amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}

	if !e.BalanceAfter.Equal(e.BalanceBefore.Add(e.SignedAmount())) {
		return ErrEntryArithmetic
	}

	return nil
}
