package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DocumentType identifies the four financial document variants.
type DocumentType string

const (
	DocumentTypeInvoice            DocumentType = "invoice"
	DocumentTypeReceipt            DocumentType = "receipt"
	DocumentTypePaymentVoucher     DocumentType = "payment_voucher"
	DocumentTypeStatementOfPayment DocumentType = "statement_of_payment"
)

// DocumentStatus is the lifecycle state of a document.
type DocumentStatus string

const (
	DocumentStatusDraft     DocumentStatus = "draft"
	DocumentStatusIssued    DocumentStatus = "issued"
	DocumentStatusCompleted DocumentStatus = "completed"
	DocumentStatusCancelled DocumentStatus = "cancelled"
)

// statusTransitions lists the allowed forward transitions.
var statusTransitions = map[DocumentStatus][]DocumentStatus{
	DocumentStatusDraft:     {DocumentStatusIssued, DocumentStatusCompleted, DocumentStatusCancelled},
	DocumentStatusIssued:    {DocumentStatusCompleted, DocumentStatusCancelled},
	DocumentStatusCompleted: {DocumentStatusCancelled},
	DocumentStatusCancelled: {},
}

// Document represents a financial document. Only receipts and statements of
// payment ever carry balance effect; invoices and payment vouchers are
// documentation-only.
type Document struct {
	ID            string
	Number        string
	Type          DocumentType
	Status        DocumentStatus
	AccountID     *string
	Currency      string
	Amount        decimal.Decimal
	TotalDeducted *decimal.Decimal
	CreatedAt     time.Time
	UpdatedAt     time.Time
	DeletedAt     *time.Time
}

// Deleted reports whether the document carries a tombstone.
func (d *Document) Deleted() bool {
	return d.DeletedAt != nil
}

// EffectiveAmount is the amount a completed document moves. Statements of
// payment deduct TotalDeducted (amount plus transaction fees) when recorded,
// falling back to the face amount.
func (d *Document) EffectiveAmount() decimal.Decimal {
	if d.Type == DocumentTypeStatementOfPayment && d.TotalDeducted != nil {
		return *d.TotalDeducted
	}

	return d.Amount
}

// CanTransitionTo reports whether the status change is allowed.
func (d *Document) CanTransitionTo(next DocumentStatus) bool {
	for _, s := range statusTransitions[d.Status] {
		if s == next {
			return true
		}
	}

	return false
}

// Validate validates a document before it is persisted.
func (d *Document) Validate() error {
	switch d.Type {
	case DocumentTypeInvoice, DocumentTypeReceipt, DocumentTypePaymentVoucher, DocumentTypeStatementOfPayment:
	default:
		return ErrInvalidDocumentType
	}

	if d.Amount.IsNegative() {
		return ErrInvalidAmount
	}

	if d.TotalDeducted != nil && d.TotalDeducted.IsNegative() {
		return ErrInvalidAmount
	}

	return nil
}
