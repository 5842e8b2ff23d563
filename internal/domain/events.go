package domain

import "time"

// Event types
const (
	EventTypeDocumentCompleted = "document.completed"
	EventTypeDocumentDeleted   = "document.deleted"
	EventTypeEntryApplied      = "ledger.entry_applied"
	EventTypeEntryReversed     = "ledger.entry_reversed"
	EventTypeAccountCreated    = "account.created"
)

// Aggregate types
const (
	AggregateTypeDocument = "document"
	AggregateTypeEntry    = "entry"
	AggregateTypeAccount  = "account"
)

// OutboxEvent represents an event to be published
type OutboxEvent struct {
	ID            string
	AggregateID   string
	AggregateType string
	EventType     string
	Payload       JSON
	CreatedAt     time.Time
	PublishedAt   *time.Time
	Published     bool
}

// DocumentCompletedEvent payload
type DocumentCompletedEvent struct {
	DocumentID string `json:"document_id"`
	Type       string `json:"type"`
	AccountID  string `json:"account_id,omitempty"`
	Amount     string `json:"amount"`
	Currency   string `json:"currency"`
}

// DocumentDeletedEvent payload. It carries the prior state so consumers do
// not need to diff row versions to detect the deletion.
type DocumentDeletedEvent struct {
	DocumentID      string `json:"document_id"`
	Type            string `json:"type"`
	PriorStatus     string `json:"prior_status"`
	ReversalEntryID string `json:"reversal_entry_id,omitempty"`
}

// EntryAppliedEvent payload
type EntryAppliedEvent struct {
	EntryID       string `json:"entry_id"`
	AccountID     string `json:"account_id"`
	DocumentID    string `json:"document_id"`
	Direction     string `json:"direction"`
	Amount        string `json:"amount"`
	BalanceBefore string `json:"balance_before"`
	BalanceAfter  string `json:"balance_after"`
}

// EntryReversedEvent payload
type EntryReversedEvent struct {
	ReversalEntryID string `json:"reversal_entry_id"`
	OriginalEntryID string `json:"original_entry_id"`
	AccountID       string `json:"account_id"`
	DocumentID      string `json:"document_id"`
	Amount          string `json:"amount"`
}

// AccountCreatedEvent payload
type AccountCreatedEvent struct {
	AccountID      string `json:"account_id"`
	CompanyID      string `json:"company_id"`
	Name           string `json:"name"`
	Currency       string `json:"currency"`
	InitialBalance string `json:"initial_balance"`
}
