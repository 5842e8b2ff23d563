package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/iho/traveledger/internal/adapter/http/dto"
	"github.com/iho/traveledger/internal/domain"
	"github.com/iho/traveledger/internal/usecase"
)

type reconciliationServiceStub struct {
	reconcileFn func(ctx context.Context, accountID string) (*usecase.ReconciliationResult, error)
	checkFn     func(ctx context.Context) error
	reportFn    func(ctx context.Context) (*usecase.ReconciliationReport, error)
}

func (s *reconciliationServiceStub) ReconcileAccount(ctx context.Context, accountID string) (*usecase.ReconciliationResult, error) {
	return s.reconcileFn(ctx, accountID)
}

func (s *reconciliationServiceStub) CheckLedgerConsistency(ctx context.Context) error {
	return s.checkFn(ctx)
}

func (s *reconciliationServiceStub) GenerateReconciliationReport(ctx context.Context) (*usecase.ReconciliationReport, error) {
	return s.reportFn(ctx)
}

func TestLedgerHandler_CheckConsistency_Consistent(t *testing.T) {
	handler := NewLedgerHandler(&reconciliationServiceStub{
		checkFn: func(ctx context.Context) error { return nil },
	})

	req := httptest.NewRequest(http.MethodGet, "/ledger/consistency", nil)
	rec := httptest.NewRecorder()

	handler.CheckConsistency(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp["consistent"] != true {
		t.Fatalf("expected consistent=true, got %+v", resp)
	}
}

func TestLedgerHandler_CheckConsistency_Inconsistent(t *testing.T) {
	handler := NewLedgerHandler(&reconciliationServiceStub{
		checkFn: func(ctx context.Context) error { return usecase.ErrInconsistentLedger },
	})

	req := httptest.NewRequest(http.MethodGet, "/ledger/consistency", nil)
	rec := httptest.NewRecorder()

	handler.CheckConsistency(rec, req)

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
}

func TestLedgerHandler_ReconcileAccount(t *testing.T) {
	handler := NewLedgerHandler(&reconciliationServiceStub{
		reconcileFn: func(ctx context.Context, accountID string) (*usecase.ReconciliationResult, error) {
			return &usecase.ReconciliationResult{
				AccountID:         accountID,
				RecordedBalance:   decimal.NewFromInt(1250),
				CalculatedBalance: decimal.NewFromInt(1250),
				Difference:        decimal.Zero,
				IsReconciled:      true,
			}, nil
		},
	})

	req := withURLParam(httptest.NewRequest(http.MethodGet, "/accounts/acc-1/reconciliation", nil), "id", "acc-1")
	rec := httptest.NewRecorder()

	handler.ReconcileAccount(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp dto.ReconciliationResultResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !resp.IsReconciled || resp.AccountID != "acc-1" {
		t.Fatalf("unexpected result: %+v", resp)
	}
}

func TestLedgerHandler_ReconcileAccount_NotFound(t *testing.T) {
	handler := NewLedgerHandler(&reconciliationServiceStub{
		reconcileFn: func(ctx context.Context, accountID string) (*usecase.ReconciliationResult, error) {
			return nil, domain.ErrAccountNotFound
		},
	})

	req := withURLParam(httptest.NewRequest(http.MethodGet, "/accounts/missing/reconciliation", nil), "id", "missing")
	rec := httptest.NewRecorder()

	handler.ReconcileAccount(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestLedgerHandler_ReconciliationReport(t *testing.T) {
	handler := NewLedgerHandler(&reconciliationServiceStub{
		reportFn: func(ctx context.Context) (*usecase.ReconciliationReport, error) {
			return &usecase.ReconciliationReport{
				TotalAccounts:      3,
				ReconciledAccounts: 2,
				Discrepancies: []*usecase.ReconciliationResult{
					{AccountID: "acc-3", Difference: decimal.NewFromInt(10)},
				},
				LedgerConsistent: false,
			}, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/ledger/reconciliation", nil)
	rec := httptest.NewRecorder()

	handler.ReconciliationReport(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp dto.ReconciliationReportResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.TotalAccounts != 3 || resp.ReconciledAccounts != 2 || len(resp.Discrepancies) != 1 {
		t.Fatalf("unexpected report: %+v", resp)
	}
	if resp.LedgerConsistent {
		t.Fatal("expected ledger_consistent=false")
	}
}
