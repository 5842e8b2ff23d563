package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/traveledger/internal/domain"
	"github.com/iho/traveledger/internal/infrastructure/metrics"
)

// documentNumberPrefixes maps document types to their number prefixes.
var documentNumberPrefixes = map[domain.DocumentType]string{
	domain.DocumentTypeInvoice:            "INV",
	domain.DocumentTypeReceipt:            "RCP",
	domain.DocumentTypePaymentVoucher:     "PVC",
	domain.DocumentTypeStatementOfPayment: "SOP",
}

// DocumentUseCase handles document lifecycle. Every status change, amount
// edit and soft delete runs in one database transaction together with the
// ledger effect it triggers, so a crash can never leave the document and the
// account balance disagreeing.
type DocumentUseCase struct {
	txManager    TransactionManager
	documentRepo DocumentRepository
	sequenceRepo SequenceRepository
	outboxRepo   OutboxRepository
	auditRepo    AuditRepository
	ledger       *LedgerUseCase
	idGen        IDGenerator
	retrier      Retrier
	metrics      *metrics.Metrics
}

// NewDocumentUseCase creates a new DocumentUseCase.
func NewDocumentUseCase(
	txManager TransactionManager,
	documentRepo DocumentRepository,
	sequenceRepo SequenceRepository,
	outboxRepo OutboxRepository,
	ledger *LedgerUseCase,
	idGen IDGenerator,
) *DocumentUseCase {
	return &DocumentUseCase{
		txManager:    txManager,
		documentRepo: documentRepo,
		sequenceRepo: sequenceRepo,
		outboxRepo:   outboxRepo,
		ledger:       ledger,
		idGen:        idGen,
	}
}

// WithRetrier enables retry on serialization failures and version conflicts.
func (uc *DocumentUseCase) WithRetrier(retrier Retrier) *DocumentUseCase {
	uc.retrier = retrier
	return uc
}

// WithAuditRepo enables audit logging of document mutations.
func (uc *DocumentUseCase) WithAuditRepo(auditRepo AuditRepository) *DocumentUseCase {
	uc.auditRepo = auditRepo
	return uc
}

// WithMetrics enables Prometheus instrumentation.
func (uc *DocumentUseCase) WithMetrics(m *metrics.Metrics) *DocumentUseCase {
	uc.metrics = m
	return uc
}

// CreateDocumentInput represents input for creating a document.
type CreateDocumentInput struct {
	Type          domain.DocumentType
	AccountID     *string
	Currency      string
	Amount        decimal.Decimal
	TotalDeducted *decimal.Decimal
}

// CreateDocument creates a document in draft status. The document number is
// drawn from an atomic per-type sequence; concurrent creations can never be
// handed the same number.
func (uc *DocumentUseCase) CreateDocument(ctx context.Context, input CreateDocumentInput) (*domain.Document, error) {
	if err := domain.ValidateCurrency(input.Currency); err != nil {
		return nil, err
	}

	if err := domain.ValidateAmount(input.Amount); err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	doc := &domain.Document{
		ID:            uc.idGen.Generate(),
		Type:          input.Type,
		Status:        domain.DocumentStatusDraft,
		AccountID:     input.AccountID,
		Currency:      strings.ToUpper(strings.TrimSpace(input.Currency)),
		Amount:        input.Amount,
		TotalDeducted: input.TotalDeducted,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := doc.Validate(); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, DefaultTransactionTimeout)
	defer cancel()

	tx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	seq, err := uc.sequenceRepo.Next(ctx, tx, sequenceKey(doc.Type, now))
	if err != nil {
		return nil, err
	}

	doc.Number = fmt.Sprintf("%s-%d-%04d", documentNumberPrefixes[doc.Type], now.Year(), seq)

	if err := uc.documentRepo.Create(ctx, tx, doc); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	uc.audit(ctx, domain.AuditActionDocumentCreate, doc.ID, nil, doc)

	if uc.metrics != nil {
		uc.metrics.DocumentsCreated.WithLabelValues(string(doc.Type)).Inc()
		uc.metrics.DocumentAmount.WithLabelValues(string(doc.Type)).Observe(doc.EffectiveAmount().InexactFloat64())
	}

	return doc, nil
}

// GetDocument retrieves a document by ID.
func (uc *DocumentUseCase) GetDocument(ctx context.Context, id string) (*domain.Document, error) {
	return uc.documentRepo.GetByID(ctx, id)
}

// ListDocuments lists documents with filtering and pagination.
func (uc *DocumentUseCase) ListDocuments(ctx context.Context, filter DocumentFilter) ([]*domain.Document, error) {
	filter.Limit, filter.Offset, _ = domain.ValidatePagination(filter.Limit, filter.Offset)
	return uc.documentRepo.List(ctx, filter)
}

// ChangeStatus transitions a document to a new status. Entering completed
// applies the document's balance effect; leaving completed (cancellation)
// reverses it. Both happen in the transaction that flips the status.
func (uc *DocumentUseCase) ChangeStatus(ctx context.Context, id string, next domain.DocumentStatus) (*domain.Document, error) {
	ctx, cancel := context.WithTimeout(ctx, DefaultTransactionTimeout)
	defer cancel()

	var result *domain.Document

	err := uc.withRetry(ctx, func() error {
		tx, err := uc.txManager.Begin(ctx)
		if err != nil {
			return err
		}
		defer tx.Rollback(ctx)

		doc, err := uc.documentRepo.GetByIDForUpdate(ctx, tx, id)
		if err != nil {
			return err
		}

		if doc.Deleted() {
			return domain.ErrDocumentDeleted
		}

		if !doc.CanTransitionTo(next) {
			return fmt.Errorf("%w: %s -> %s", domain.ErrInvalidStatusTransition, doc.Status, next)
		}

		prev := *doc
		wasEffective := !domain.ResolveEffect(doc).None

		doc.Status = next
		doc.UpdatedAt = time.Now().UTC()

		if err := uc.documentRepo.Update(ctx, tx, doc); err != nil {
			return err
		}

		switch {
		case next == domain.DocumentStatusCompleted:
			if _, err := uc.ledger.OnDocumentCompletedTx(ctx, tx, doc); err != nil {
				return err
			}

			if err := uc.publishCompleted(ctx, tx, doc); err != nil {
				return err
			}
		case wasEffective:
			// Cancelling a completed receipt or statement undoes its effect.
			if _, err := uc.ledger.reverseTx(ctx, tx, doc); err != nil {
				return err
			}
		}

		if err := tx.Commit(ctx); err != nil {
			return err
		}

		uc.audit(ctx, domain.AuditActionDocumentStatus, doc.ID, &prev, doc)

		if uc.metrics != nil {
			uc.metrics.StatusTransitions.WithLabelValues(string(prev.Status), string(next)).Inc()
			if next == domain.DocumentStatusCompleted {
				uc.metrics.DocumentsCompleted.WithLabelValues(string(doc.Type)).Inc()
			}
		}

		result = doc

		return nil
	})

	return result, err
}

// UpdateAmountInput represents an edit to a document's monetary fields.
type UpdateAmountInput struct {
	Amount        decimal.Decimal
	TotalDeducted *decimal.Decimal
	AccountID     *string
}

// UpdateAmount edits a document's amount, fee or linked account. While the
// document is completed, the old effect is reversed and the new one applied
// so the account never carries two entries for one document.
func (uc *DocumentUseCase) UpdateAmount(ctx context.Context, id string, input UpdateAmountInput) (*domain.Document, error) {
	if err := domain.ValidateAmount(input.Amount); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, DefaultTransactionTimeout)
	defer cancel()

	var result *domain.Document

	err := uc.withRetry(ctx, func() error {
		tx, err := uc.txManager.Begin(ctx)
		if err != nil {
			return err
		}
		defer tx.Rollback(ctx)

		doc, err := uc.documentRepo.GetByIDForUpdate(ctx, tx, id)
		if err != nil {
			return err
		}

		if doc.Deleted() {
			return domain.ErrDocumentDeleted
		}

		prev := *doc

		doc.Amount = input.Amount
		doc.TotalDeducted = input.TotalDeducted
		if input.AccountID != nil {
			doc.AccountID = input.AccountID
		}
		doc.UpdatedAt = time.Now().UTC()

		if err := doc.Validate(); err != nil {
			return err
		}

		if err := uc.documentRepo.Update(ctx, tx, doc); err != nil {
			return err
		}

		if doc.Status == domain.DocumentStatusCompleted {
			if _, err := uc.ledger.OnDocumentAmountChangedTx(ctx, tx, &prev, doc); err != nil {
				return err
			}
		}

		if err := tx.Commit(ctx); err != nil {
			return err
		}

		uc.audit(ctx, domain.AuditActionDocumentAmount, doc.ID, &prev, doc)

		result = doc

		return nil
	})

	return result, err
}

// DeleteDocument soft-deletes a document. Deletion is detected by the
// tombstone transition (nil -> non-nil): deleting an already-deleted
// document is a no-op, never a second reversal.
func (uc *DocumentUseCase) DeleteDocument(ctx context.Context, id string) (*domain.Document, error) {
	ctx, cancel := context.WithTimeout(ctx, DefaultTransactionTimeout)
	defer cancel()

	var result *domain.Document

	err := uc.withRetry(ctx, func() error {
		tx, err := uc.txManager.Begin(ctx)
		if err != nil {
			return err
		}
		defer tx.Rollback(ctx)

		doc, err := uc.documentRepo.GetByIDForUpdate(ctx, tx, id)
		if err != nil {
			return err
		}

		if doc.Deleted() {
			result = doc
			return tx.Commit(ctx)
		}

		prev := *doc

		now := time.Now().UTC()
		doc.DeletedAt = &now
		doc.UpdatedAt = now

		if err := uc.documentRepo.Update(ctx, tx, doc); err != nil {
			return err
		}

		if _, err := uc.ledger.OnDocumentDeletedTx(ctx, tx, doc); err != nil {
			return err
		}

		if err := tx.Commit(ctx); err != nil {
			return err
		}

		uc.audit(ctx, domain.AuditActionDocumentDelete, doc.ID, &prev, doc)

		if uc.metrics != nil {
			uc.metrics.DocumentsDeleted.WithLabelValues(string(doc.Type)).Inc()
		}

		result = doc

		return nil
	})

	return result, err
}

func (uc *DocumentUseCase) publishCompleted(ctx context.Context, tx Transaction, doc *domain.Document) error {
	if uc.outboxRepo == nil {
		return nil
	}

	event := domain.DocumentCompletedEvent{
		DocumentID: doc.ID,
		Type:       string(doc.Type),
		Amount:     doc.EffectiveAmount().String(),
		Currency:   doc.Currency,
	}
	if doc.AccountID != nil {
		event.AccountID = *doc.AccountID
	}

	return uc.outboxRepo.Create(ctx, tx, &domain.OutboxEvent{
		ID:            uc.idGen.Generate(),
		AggregateID:   doc.ID,
		AggregateType: domain.AggregateTypeDocument,
		EventType:     domain.EventTypeDocumentCompleted,
		Payload:       domain.MarshalState(event),
		CreatedAt:     time.Now().UTC(),
	})
}

func (uc *DocumentUseCase) audit(ctx context.Context, action domain.AuditAction, resourceID string, before, after *domain.Document) {
	if uc.auditRepo == nil {
		return
	}

	log := &domain.AuditLog{
		ID:           uc.idGen.Generate(),
		Action:       string(action),
		ResourceType: domain.AggregateTypeDocument,
		ResourceID:   resourceID,
		AfterState:   domain.MarshalState(after),
		Status:       string(domain.AuditStatusSuccess),
		CreatedAt:    time.Now().UTC(),
	}
	if before != nil {
		log.BeforeState = domain.MarshalState(before)
	}

	// Audit failures must not fail the business operation.
	status := domain.AuditStatusSuccess
	if err := uc.auditRepo.Create(ctx, log); err != nil {
		status = domain.AuditStatusFailure
	}

	if uc.metrics != nil {
		uc.metrics.AuditLogsCreated.WithLabelValues(string(action), string(status)).Inc()
	}
}

func (uc *DocumentUseCase) withRetry(ctx context.Context, op func() error) error {
	if uc.retrier == nil {
		return op()
	}

	return uc.retrier.Retry(ctx, op)
}

func sequenceKey(t domain.DocumentType, now time.Time) string {
	return fmt.Sprintf("%s:%d", t, now.Year())
}
