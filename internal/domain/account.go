package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Account represents a cash account whose balance is moved by financial
// documents. CurrentBalance is only ever mutated through the ledger engine.
type Account struct {
	ID             string
	CompanyID      string
	Name           string
	Currency       string
	InitialBalance decimal.Decimal
	CurrentBalance decimal.Decimal
	Version        int64
	Active         bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
	DeletedAt      *time.Time
}

// Usable reports whether the account can accept ledger entries.
func (a *Account) Usable() bool {
	return a.Active && a.DeletedAt == nil
}

// ValidateDecrease checks if the account balance may be reduced by amount.
// allowNegative comes from the owning company's configuration.
func (a *Account) ValidateDecrease(amount decimal.Decimal, allowNegative bool) error {
	newBalance := a.CurrentBalance.Sub(amount)
	if !allowNegative && newBalance.IsNegative() {
		return &InsufficientBalanceError{
			AccountID: a.ID,
			Available: a.CurrentBalance,
			Required:  amount,
		}
	}

	return nil
}

// ApplyIncrease returns the balance after an increase.
func (a *Account) ApplyIncrease(amount decimal.Decimal) decimal.Decimal {
	return a.CurrentBalance.Add(amount)
}

// ApplyDecrease returns the balance after a decrease.
func (a *Account) ApplyDecrease(amount decimal.Decimal) decimal.Decimal {
	return a.CurrentBalance.Sub(amount)
}
