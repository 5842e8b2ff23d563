package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/traveledger/internal/domain"
	"github.com/iho/traveledger/internal/infrastructure/metrics"
)

// LedgerUseCase is the account ledger engine. It is the only writer of
// account balances: every mutation goes through an exclusive row lock on the
// account, a currency and balance validation, and an atomic append of an
// immutable entry together with the balance update.
type LedgerUseCase struct {
	txManager   TransactionManager
	accountRepo AccountRepository
	companyRepo CompanyRepository
	entryRepo   EntryRepository
	outboxRepo  OutboxRepository
	idGen       IDGenerator
	retrier     Retrier
	metrics     *metrics.Metrics
}

// NewLedgerUseCase creates a new LedgerUseCase.
func NewLedgerUseCase(
	txManager TransactionManager,
	accountRepo AccountRepository,
	companyRepo CompanyRepository,
	entryRepo EntryRepository,
	outboxRepo OutboxRepository,
	idGen IDGenerator,
) *LedgerUseCase {
	return &LedgerUseCase{
		txManager:   txManager,
		accountRepo: accountRepo,
		companyRepo: companyRepo,
		entryRepo:   entryRepo,
		outboxRepo:  outboxRepo,
		idGen:       idGen,
	}
}

// WithRetrier enables retry on serialization failures and version conflicts.
func (uc *LedgerUseCase) WithRetrier(retrier Retrier) *LedgerUseCase {
	uc.retrier = retrier
	return uc
}

// WithMetrics enables Prometheus instrumentation.
func (uc *LedgerUseCase) WithMetrics(m *metrics.Metrics) *LedgerUseCase {
	uc.metrics = m
	return uc
}

// OnDocumentCompleted applies the balance effect of a document that just
// transitioned into completed status. Returns nil without error when the
// document carries no effect (invoices, payment vouchers).
func (uc *LedgerUseCase) OnDocumentCompleted(ctx context.Context, doc *domain.Document) (*domain.Entry, error) {
	var entry *domain.Entry

	err := uc.withRetry(ctx, func() error {
		tx, err := uc.txManager.Begin(ctx)
		if err != nil {
			return err
		}
		defer tx.Rollback(ctx)

		entry, err = uc.OnDocumentCompletedTx(ctx, tx, doc)
		if err != nil {
			return err
		}

		return tx.Commit(ctx)
	})

	return entry, err
}

// OnDocumentCompletedTx is OnDocumentCompleted running inside a caller-owned
// transaction, so the document status change and the ledger append commit or
// roll back together.
func (uc *LedgerUseCase) OnDocumentCompletedTx(ctx context.Context, tx Transaction, doc *domain.Document) (*domain.Entry, error) {
	if doc.Deleted() {
		return nil, domain.ErrDocumentDeleted
	}

	effect := domain.ResolveEffect(doc)
	if effect.None {
		return nil, nil
	}

	if doc.AccountID == nil {
		return nil, domain.ErrDocumentNoAccount
	}

	// A document carries at most one live entry; a second non-reversed
	// entry means it was double-completed.
	_, err := uc.entryRepo.GetActiveByDocument(ctx, tx, doc.ID)
	if err == nil {
		return nil, domain.ErrDuplicateEffect
	}
	if !errors.Is(err, domain.ErrEntryNotFound) {
		return nil, err
	}

	return uc.appendTx(ctx, tx, doc, *doc.AccountID, effect.Direction, effect.Amount, nil)
}

// OnDocumentDeleted reverses the balance effect of a tombstoned document.
// Documents that never reached completed status have no entry to reverse and
// the call is a no-op.
func (uc *LedgerUseCase) OnDocumentDeleted(ctx context.Context, doc *domain.Document) (*domain.Entry, error) {
	var entry *domain.Entry

	err := uc.withRetry(ctx, func() error {
		tx, err := uc.txManager.Begin(ctx)
		if err != nil {
			return err
		}
		defer tx.Rollback(ctx)

		entry, err = uc.OnDocumentDeletedTx(ctx, tx, doc)
		if err != nil {
			return err
		}

		return tx.Commit(ctx)
	})

	return entry, err
}

// OnDocumentDeletedTx is OnDocumentDeleted inside a caller-owned transaction.
func (uc *LedgerUseCase) OnDocumentDeletedTx(ctx context.Context, tx Transaction, doc *domain.Document) (*domain.Entry, error) {
	reversal, err := uc.reverseTx(ctx, tx, doc)
	if err != nil {
		return nil, err
	}

	event := domain.DocumentDeletedEvent{
		DocumentID:  doc.ID,
		Type:        string(doc.Type),
		PriorStatus: string(doc.Status),
	}
	if reversal != nil {
		event.ReversalEntryID = reversal.ID
	}

	if err := uc.publishTx(ctx, tx, domain.AggregateTypeDocument, doc.ID, domain.EventTypeDocumentDeleted, domain.MarshalState(event)); err != nil {
		return nil, err
	}

	return reversal, nil
}

// OnDocumentAmountChanged handles an edit to a completed document's amount or
// linked account: the old effect is reversed and the new document state is
// re-resolved and reapplied, all in one transaction.
func (uc *LedgerUseCase) OnDocumentAmountChanged(ctx context.Context, oldDoc, newDoc *domain.Document) (*domain.Entry, error) {
	var entry *domain.Entry

	err := uc.withRetry(ctx, func() error {
		tx, err := uc.txManager.Begin(ctx)
		if err != nil {
			return err
		}
		defer tx.Rollback(ctx)

		entry, err = uc.OnDocumentAmountChangedTx(ctx, tx, oldDoc, newDoc)
		if err != nil {
			return err
		}

		return tx.Commit(ctx)
	})

	return entry, err
}

// OnDocumentAmountChangedTx is OnDocumentAmountChanged inside a caller-owned
// transaction.
func (uc *LedgerUseCase) OnDocumentAmountChangedTx(ctx context.Context, tx Transaction, oldDoc, newDoc *domain.Document) (*domain.Entry, error) {
	if _, err := uc.reverseTx(ctx, tx, oldDoc); err != nil {
		return nil, err
	}

	return uc.OnDocumentCompletedTx(ctx, tx, newDoc)
}

// reverseTx looks up the document's active entry and appends its inverse.
// A missing entry is a normal case (draft or never-completed document) and
// yields (nil, nil).
func (uc *LedgerUseCase) reverseTx(ctx context.Context, tx Transaction, doc *domain.Document) (*domain.Entry, error) {
	original, err := uc.entryRepo.GetActiveByDocument(ctx, tx, doc.ID)
	if errors.Is(err, domain.ErrEntryNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return uc.appendTx(ctx, tx, doc, original.AccountID, original.Direction.Opposite(), original.Amount, original)
}

// appendTx runs the critical section: lock account, validate, snapshot
// balances, write the entry and the new balance. The account version CAS
// turns a lost race into domain.ErrVersionConflict for the retrier.
func (uc *LedgerUseCase) appendTx(
	ctx context.Context,
	tx Transaction,
	doc *domain.Document,
	accountID string,
	direction domain.EntryDirection,
	amount decimal.Decimal,
	reverses *domain.Entry,
) (*domain.Entry, error) {
	start := time.Now()

	account, err := uc.accountRepo.GetByIDForUpdate(ctx, tx, accountID)
	if err != nil {
		return nil, err
	}

	if !account.Usable() {
		return nil, domain.ErrAccountInactive
	}

	// Currency check comes before any arithmetic check.
	if doc.Currency != "" && doc.Currency != account.Currency {
		return nil, domain.ErrCurrencyMismatch
	}

	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, domain.ErrInvalidAmount
	}

	newBalance := account.ApplyIncrease(amount)
	if direction == domain.DirectionDecrease {
		// Reversals restore the pre-effect balance unconditionally; only a
		// forward decrease is gated by the company's negative-balance policy.
		if reverses == nil {
			company, err := uc.companyRepo.GetByID(ctx, account.CompanyID)
			if err != nil {
				return nil, err
			}

			if err := account.ValidateDecrease(amount, company.AllowNegativeBalance); err != nil {
				if uc.metrics != nil && errors.Is(err, domain.ErrInsufficientBalance) {
					uc.metrics.InsufficientBalance.Inc()
				}
				return nil, err
			}
		}

		newBalance = account.ApplyDecrease(amount)
	}

	now := time.Now().UTC()

	entry := &domain.Entry{
		ID:             uc.idGen.Generate(),
		AccountID:      account.ID,
		DocumentID:     doc.ID,
		Direction:      direction,
		Amount:         amount,
		BalanceBefore:  account.CurrentBalance,
		BalanceAfter:   newBalance,
		AccountVersion: account.Version + 1,
		CreatedAt:      now,
	}

	if reverses != nil {
		entry.IsReversal = true
		id := reverses.ID
		entry.ReversesEntryID = &id
	}

	if err := entry.Validate(); err != nil {
		return nil, err
	}

	if err := uc.entryRepo.Create(ctx, tx, entry); err != nil {
		return nil, err
	}

	if err := uc.accountRepo.UpdateBalance(ctx, tx, account.ID, newBalance, account.Version, now); err != nil {
		if uc.metrics != nil && errors.Is(err, domain.ErrVersionConflict) {
			uc.metrics.VersionConflicts.Inc()
		}
		return nil, err
	}

	account.CurrentBalance = newBalance
	account.Version++

	eventType := domain.EventTypeEntryApplied
	var payload domain.JSON
	if reverses != nil {
		eventType = domain.EventTypeEntryReversed
		payload = domain.MarshalState(domain.EntryReversedEvent{
			ReversalEntryID: entry.ID,
			OriginalEntryID: reverses.ID,
			AccountID:       entry.AccountID,
			DocumentID:      entry.DocumentID,
			Amount:          entry.Amount.String(),
		})
	} else {
		payload = domain.MarshalState(domain.EntryAppliedEvent{
			EntryID:       entry.ID,
			AccountID:     entry.AccountID,
			DocumentID:    entry.DocumentID,
			Direction:     string(entry.Direction),
			Amount:        entry.Amount.String(),
			BalanceBefore: entry.BalanceBefore.String(),
			BalanceAfter:  entry.BalanceAfter.String(),
		})
	}

	if err := uc.publishTx(ctx, tx, domain.AggregateTypeEntry, entry.ID, eventType, payload); err != nil {
		return nil, err
	}

	if uc.metrics != nil {
		if entry.IsReversal {
			uc.metrics.EntriesReversed.Inc()
		} else {
			uc.metrics.EntriesApplied.Inc()
		}
		uc.metrics.AccountBalance.
			WithLabelValues(account.ID, account.Currency).
			Set(newBalance.InexactFloat64())
		uc.metrics.LedgerDuration.Observe(time.Since(start).Seconds())
	}

	return entry, nil
}

func (uc *LedgerUseCase) publishTx(ctx context.Context, tx Transaction, aggregateType, aggregateID, eventType string, payload domain.JSON) error {
	if uc.outboxRepo == nil {
		return nil
	}

	return uc.outboxRepo.Create(ctx, tx, &domain.OutboxEvent{
		ID:            uc.idGen.Generate(),
		AggregateID:   aggregateID,
		AggregateType: aggregateType,
		EventType:     eventType,
		Payload:       payload,
		CreatedAt:     time.Now().UTC(),
	})
}

func (uc *LedgerUseCase) withRetry(ctx context.Context, op func() error) error {
	if uc.retrier == nil {
		return op()
	}

	return uc.retrier.Retry(ctx, op)
}
