package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"

	"github.com/iho/traveledger/internal/domain"
	"github.com/iho/traveledger/internal/usecase"
	"github.com/iho/traveledger/internal/usecase/mocks"
)

func consistentSums(accountID string, initial, entrySum decimal.Decimal) usecase.AccountConsistency {
	return usecase.AccountConsistency{
		AccountID:      accountID,
		InitialBalance: initial,
		CurrentBalance: initial.Add(entrySum),
		EntrySum:       entrySum,
	}
}

func TestReconcileAccount(t *testing.T) {
	ctrl := gomock.NewController(t)

	accountRepo := mocks.NewMockAccountRepository()
	ledgerRepo := mocks.NewMockLedgerRepository(ctrl)

	if err := accountRepo.Create(context.Background(), &domain.Account{ID: "acc-1", Active: true}); err != nil {
		t.Fatalf("failed to seed account: %v", err)
	}

	ledgerRepo.EXPECT().
		ConsistencySumsForAccount(gomock.Any(), "acc-1").
		Return(consistentSums("acc-1", decimal.NewFromInt(1000), decimal.NewFromInt(250)), nil)

	uc := usecase.NewReconciliationUseCase(accountRepo, ledgerRepo)

	result, err := uc.ReconcileAccount(context.Background(), "acc-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !result.IsReconciled {
		t.Error("expected account to reconcile")
	}
	if !result.CalculatedBalance.Equal(decimal.NewFromInt(1250)) {
		t.Errorf("expected calculated balance 1250, got %s", result.CalculatedBalance)
	}
	if !result.Difference.IsZero() {
		t.Errorf("expected zero difference, got %s", result.Difference)
	}
}

func TestReconcileAccount_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)

	uc := usecase.NewReconciliationUseCase(mocks.NewMockAccountRepository(), mocks.NewMockLedgerRepository(ctrl))

	if _, err := uc.ReconcileAccount(context.Background(), "missing"); !errors.Is(err, domain.ErrAccountNotFound) {
		t.Errorf("expected ErrAccountNotFound, got %v", err)
	}
}

func TestCheckLedgerConsistency(t *testing.T) {
	ctrl := gomock.NewController(t)

	t.Run("consistent", func(t *testing.T) {
		ledgerRepo := mocks.NewMockLedgerRepository(ctrl)
		ledgerRepo.EXPECT().ConsistencySums(gomock.Any()).Return([]usecase.AccountConsistency{
			consistentSums("acc-1", decimal.NewFromInt(100), decimal.NewFromInt(50)),
			consistentSums("acc-2", decimal.Zero, decimal.NewFromInt(-30)),
		}, nil)

		uc := usecase.NewReconciliationUseCase(mocks.NewMockAccountRepository(), ledgerRepo)
		if err := uc.CheckLedgerConsistency(context.Background()); err != nil {
			t.Errorf("expected consistent ledger, got %v", err)
		}
	})

	t.Run("drifted balance", func(t *testing.T) {
		drifted := consistentSums("acc-1", decimal.NewFromInt(100), decimal.NewFromInt(50))
		drifted.CurrentBalance = decimal.NewFromInt(160)

		ledgerRepo := mocks.NewMockLedgerRepository(ctrl)
		ledgerRepo.EXPECT().ConsistencySums(gomock.Any()).Return([]usecase.AccountConsistency{drifted}, nil)

		uc := usecase.NewReconciliationUseCase(mocks.NewMockAccountRepository(), ledgerRepo)
		if err := uc.CheckLedgerConsistency(context.Background()); !errors.Is(err, usecase.ErrInconsistentLedger) {
			t.Errorf("expected ErrInconsistentLedger, got %v", err)
		}
	})
}

func TestGenerateReconciliationReport(t *testing.T) {
	ctrl := gomock.NewController(t)

	drifted := consistentSums("acc-3", decimal.NewFromInt(10), decimal.Zero)
	drifted.CurrentBalance = decimal.NewFromInt(11)

	ledgerRepo := mocks.NewMockLedgerRepository(ctrl)
	ledgerRepo.EXPECT().ConsistencySums(gomock.Any()).Return([]usecase.AccountConsistency{
		consistentSums("acc-1", decimal.NewFromInt(100), decimal.NewFromInt(50)),
		consistentSums("acc-2", decimal.NewFromInt(200), decimal.Zero),
		drifted,
	}, nil)

	uc := usecase.NewReconciliationUseCase(mocks.NewMockAccountRepository(), ledgerRepo)

	report, err := uc.GenerateReconciliationReport(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if report.TotalAccounts != 3 || report.ReconciledAccounts != 2 {
		t.Errorf("expected 2/3 reconciled, got %d/%d", report.ReconciledAccounts, report.TotalAccounts)
	}
	if report.LedgerConsistent {
		t.Error("expected LedgerConsistent to be false")
	}
	if len(report.Discrepancies) != 1 || report.Discrepancies[0].AccountID != "acc-3" {
		t.Errorf("expected acc-3 in discrepancies, got %+v", report.Discrepancies)
	}
}
