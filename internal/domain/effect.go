package domain

import "github.com/shopspring/decimal"

// EntryDirection is the direction of a balance movement.
type EntryDirection string

const (
	DirectionIncrease EntryDirection = "increase"
	DirectionDecrease EntryDirection = "decrease"
)

// Opposite returns the inverse direction, used when reversing an entry.
func (d EntryDirection) Opposite() EntryDirection {
	if d == DirectionIncrease {
		return DirectionDecrease
	}

	return DirectionIncrease
}

// BalanceEffect is the resolved impact of a document on its linked account.
type BalanceEffect struct {
	Direction EntryDirection
	Amount    decimal.Decimal
	None      bool
}

// NoEffect is the effect of any document that does not move cash.
var NoEffect = BalanceEffect{None: true}

// ResolveEffect maps (document type, status) to a balance effect. It is the
// single source of truth for which status transitions move money:
//
//	invoice, payment_voucher  -> none, at every status
//	receipt @ completed       -> increase(amount)
//	statement @ completed     -> decrease(total_deducted, defaults to amount)
//	anything not completed    -> none
func ResolveEffect(doc *Document) BalanceEffect {
	if doc.Status != DocumentStatusCompleted {
		return NoEffect
	}

	switch doc.Type {
	case DocumentTypeReceipt:
		return BalanceEffect{Direction: DirectionIncrease, Amount: doc.Amount}
	case DocumentTypeStatementOfPayment:
		return BalanceEffect{Direction: DirectionDecrease, Amount: doc.EffectiveAmount()}
	default:
		return NoEffect
	}
}
