package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/traveledger/internal/domain"
)

// CompanyRepository defines data access for companies.
type CompanyRepository interface {
	Create(ctx context.Context, company *domain.Company) error
	GetByID(ctx context.Context, id string) (*domain.Company, error)
	List(ctx context.Context, limit, offset int) ([]*domain.Company, error)
}

// AccountRepository defines data access for accounts.
type AccountRepository interface {
	Create(ctx context.Context, account *domain.Account) error
	GetByID(ctx context.Context, id string) (*domain.Account, error)
	GetByIDForUpdate(ctx context.Context, tx Transaction, id string) (*domain.Account, error)
	// UpdateBalance performs a compare-and-swap on the account version and
	// returns domain.ErrVersionConflict when the row moved underneath us.
	UpdateBalance(ctx context.Context, tx Transaction, id string, balance decimal.Decimal, expectedVersion int64, updatedAt time.Time) error
	Deactivate(ctx context.Context, id string, deletedAt time.Time) error
	List(ctx context.Context, limit, offset int) ([]*domain.Account, error)
}

// DocumentFilter narrows document listings.
type DocumentFilter struct {
	Type      *domain.DocumentType
	Status    *domain.DocumentStatus
	AccountID *string
	Deleted   bool
	Limit     int
	Offset    int
}

// DocumentRepository defines data access for documents.
type DocumentRepository interface {
	Create(ctx context.Context, tx Transaction, doc *domain.Document) error
	GetByID(ctx context.Context, id string) (*domain.Document, error)
	GetByIDForUpdate(ctx context.Context, tx Transaction, id string) (*domain.Document, error)
	Update(ctx context.Context, tx Transaction, doc *domain.Document) error
	List(ctx context.Context, filter DocumentFilter) ([]*domain.Document, error)
}

// EntryRepository defines data access for ledger entries.
type EntryRepository interface {
	Create(ctx context.Context, tx Transaction, entry *domain.Entry) error
	GetByID(ctx context.Context, id string) (*domain.Entry, error)
	// GetActiveByDocument returns the document's non-reversed entry, or
	// domain.ErrEntryNotFound when the document never had (or no longer has)
	// a balance effect.
	GetActiveByDocument(ctx context.Context, tx Transaction, documentID string) (*domain.Entry, error)
	GetByDocument(ctx context.Context, documentID string) ([]*domain.Entry, error)
	GetByAccount(ctx context.Context, accountID string, limit, offset int) ([]*domain.Entry, error)
	GetBalanceAtTime(ctx context.Context, accountID string, at time.Time) (decimal.Decimal, error)
}

// AccountConsistency is one account's recorded vs derived position.
type AccountConsistency struct {
	AccountID      string
	InitialBalance decimal.Decimal
	CurrentBalance decimal.Decimal
	EntrySum       decimal.Decimal
}

// LedgerRepository defines data access for ledger-wide operations.
type LedgerRepository interface {
	ConsistencySums(ctx context.Context) ([]AccountConsistency, error)
	ConsistencySumsForAccount(ctx context.Context, accountID string) (AccountConsistency, error)
}

// SequenceRepository hands out document numbers from an atomic counter.
type SequenceRepository interface {
	Next(ctx context.Context, tx Transaction, key string) (int64, error)
}

// OutboxRepository defines data access for outbox events.
type OutboxRepository interface {
	Create(ctx context.Context, tx Transaction, event *domain.OutboxEvent) error
	GetUnpublished(ctx context.Context, limit int) ([]*domain.OutboxEvent, error)
	MarkPublished(ctx context.Context, id string, publishedAt time.Time) error
	GetByAggregate(ctx context.Context, aggregateType, aggregateID string, limit, offset int) ([]*domain.OutboxEvent, error)
	DeletePublished(ctx context.Context, before time.Time) error
}

// AuditRepository defines data access for audit logs.
type AuditRepository interface {
	Create(ctx context.Context, log *domain.AuditLog) error
	CreateTx(ctx context.Context, tx Transaction, log *domain.AuditLog) error
	List(ctx context.Context, filter domain.AuditFilter) ([]*domain.AuditLog, error)
	GetByResourceID(ctx context.Context, resourceType, resourceID string) ([]*domain.AuditLog, error)
}

// Transaction represents a database transaction.
type Transaction interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// TransactionManager handles transaction lifecycle.
type TransactionManager interface {
	Begin(ctx context.Context) (Transaction, error)
}

// Retrier retries an operation on transient conflicts.
type Retrier interface {
	Retry(ctx context.Context, operation func() error) error
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}

// Cache defines caching operations.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// IdempotencyStore handles idempotency key storage.
type IdempotencyStore interface {
	// CheckAndSet atomically checks if key exists, sets if not.
	// Returns (exists, existingValue, error).
	CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error)
	// Update updates an existing key with the final response.
	Update(ctx context.Context, key string, response []byte, ttl time.Duration) error
}
