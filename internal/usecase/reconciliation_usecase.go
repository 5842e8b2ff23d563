package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// ErrInconsistentLedger is returned when an account's recorded balance does
// not match the balance derived from its entries.
var ErrInconsistentLedger = errors.New("ledger is inconsistent: recorded balance does not match entry sum")

// ReconciliationUseCase verifies the ledger's core invariant: for every
// account, current balance equals initial balance plus the signed sum of its
// entries.
type ReconciliationUseCase struct {
	accountRepo AccountRepository
	ledgerRepo  LedgerRepository
}

// NewReconciliationUseCase creates a new reconciliation use case.
func NewReconciliationUseCase(accountRepo AccountRepository, ledgerRepo LedgerRepository) *ReconciliationUseCase {
	return &ReconciliationUseCase{
		accountRepo: accountRepo,
		ledgerRepo:  ledgerRepo,
	}
}

// ReconciliationResult represents the result of a reconciliation check
type ReconciliationResult struct {
	AccountID         string
	RecordedBalance   decimal.Decimal
	CalculatedBalance decimal.Decimal
	Difference        decimal.Decimal
	IsReconciled      bool
	LastChecked       time.Time
}

// ReconcileAccount checks one account against its entry history.
func (uc *ReconciliationUseCase) ReconcileAccount(ctx context.Context, accountID string) (*ReconciliationResult, error) {
	if _, err := uc.accountRepo.GetByID(ctx, accountID); err != nil {
		return nil, err
	}

	sums, err := uc.ledgerRepo.ConsistencySumsForAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}

	return resultFromSums(sums), nil
}

// ReconcileAllAccounts reconciles every account in the system.
func (uc *ReconciliationUseCase) ReconcileAllAccounts(ctx context.Context) ([]*ReconciliationResult, error) {
	sums, err := uc.ledgerRepo.ConsistencySums(ctx)
	if err != nil {
		return nil, err
	}

	results := make([]*ReconciliationResult, 0, len(sums))
	for _, s := range sums {
		results = append(results, resultFromSums(s))
	}

	return results, nil
}

// CheckLedgerConsistency returns ErrInconsistentLedger if any account fails
// the invariant.
func (uc *ReconciliationUseCase) CheckLedgerConsistency(ctx context.Context) error {
	results, err := uc.ReconcileAllAccounts(ctx)
	if err != nil {
		return err
	}

	for _, r := range results {
		if !r.IsReconciled {
			return fmt.Errorf("%w: account %s recorded=%s derived=%s",
				ErrInconsistentLedger, r.AccountID, r.RecordedBalance.String(), r.CalculatedBalance.String())
		}
	}

	return nil
}

// ReconciliationReport represents a full reconciliation report
type ReconciliationReport struct {
	TotalAccounts      int
	ReconciledAccounts int
	Discrepancies      []*ReconciliationResult
	LedgerConsistent   bool
	CheckedAt          time.Time
}

// GenerateReconciliationReport generates a comprehensive reconciliation report
func (uc *ReconciliationUseCase) GenerateReconciliationReport(ctx context.Context) (*ReconciliationReport, error) {
	results, err := uc.ReconcileAllAccounts(ctx)
	if err != nil {
		return nil, err
	}

	report := &ReconciliationReport{
		TotalAccounts:    len(results),
		Discrepancies:    make([]*ReconciliationResult, 0),
		LedgerConsistent: true,
		CheckedAt:        time.Now().UTC(),
	}

	for _, result := range results {
		if result.IsReconciled {
			report.ReconciledAccounts++
		} else {
			report.LedgerConsistent = false
			report.Discrepancies = append(report.Discrepancies, result)
		}
	}

	return report, nil
}

func resultFromSums(s AccountConsistency) *ReconciliationResult {
	calculated := s.InitialBalance.Add(s.EntrySum)
	diff := s.CurrentBalance.Sub(calculated)

	return &ReconciliationResult{
		AccountID:         s.AccountID,
		RecordedBalance:   s.CurrentBalance,
		CalculatedBalance: calculated,
		Difference:        diff,
		IsReconciled:      diff.IsZero(),
		LastChecked:       time.Now().UTC(),
	}
}
