package integration

import (
	"context"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/iho/traveledger/internal/domain"
	"github.com/iho/traveledger/internal/usecase"
)

func TestDocumentLifecycle(t *testing.T) {
	app, cleanup := newTestApp(t)
	defer cleanup()

	ctx := context.Background()
	company := app.DB.CreateTestCompany(ctx, "Travel Co", false)
	account := app.DB.CreateTestAccount(ctx, company.ID, "cash", "MYR", decimal.NewFromInt(1000))

	t.Run("completed receipt increases balance", func(t *testing.T) {
		doc, err := app.DocumentUC.CreateDocument(ctx, usecase.CreateDocumentInput{
			Type:      domain.DocumentTypeReceipt,
			AccountID: &account.ID,
			Currency:  "MYR",
			Amount:    decimal.NewFromInt(200),
		})
		if err != nil {
			t.Fatalf("create failed: %v", err)
		}
		if doc.Status != domain.DocumentStatusDraft {
			t.Fatalf("expected draft, got %s", doc.Status)
		}
		if !strings.HasPrefix(doc.Number, "RCP-") {
			t.Fatalf("expected RCP number, got %s", doc.Number)
		}

		if _, err := app.DocumentUC.ChangeStatus(ctx, doc.ID, domain.DocumentStatusCompleted); err != nil {
			t.Fatalf("complete failed: %v", err)
		}

		got, err := app.AccountUC.GetAccount(ctx, account.ID)
		if err != nil {
			t.Fatalf("get account failed: %v", err)
		}
		if !got.CurrentBalance.Equal(decimal.NewFromInt(1200)) {
			t.Fatalf("expected balance 1200, got %s", got.CurrentBalance)
		}

		entries, err := app.EntryUC.GetEntriesByDocument(ctx, doc.ID)
		if err != nil {
			t.Fatalf("get entries failed: %v", err)
		}
		if len(entries) != 1 {
			t.Fatalf("expected one entry, got %d", len(entries))
		}
		entry := entries[0]
		if entry.Direction != domain.DirectionIncrease {
			t.Errorf("expected increase, got %s", entry.Direction)
		}
		if !entry.BalanceBefore.Equal(decimal.NewFromInt(1000)) || !entry.BalanceAfter.Equal(decimal.NewFromInt(1200)) {
			t.Errorf("unexpected balance snapshots: %s -> %s", entry.BalanceBefore, entry.BalanceAfter)
		}
	})

	t.Run("statement of payment deducts total including fees", func(t *testing.T) {
		fee := decimal.NewFromInt(520)
		doc, err := app.DocumentUC.CreateDocument(ctx, usecase.CreateDocumentInput{
			Type:          domain.DocumentTypeStatementOfPayment,
			AccountID:     &account.ID,
			Currency:      "MYR",
			Amount:        decimal.NewFromInt(500),
			TotalDeducted: &fee,
		})
		if err != nil {
			t.Fatalf("create failed: %v", err)
		}

		if _, err := app.DocumentUC.ChangeStatus(ctx, doc.ID, domain.DocumentStatusCompleted); err != nil {
			t.Fatalf("complete failed: %v", err)
		}

		got, err := app.AccountUC.GetAccount(ctx, account.ID)
		if err != nil {
			t.Fatalf("get account failed: %v", err)
		}
		// 1200 from the previous subtest minus 520.
		if !got.CurrentBalance.Equal(decimal.NewFromInt(680)) {
			t.Fatalf("expected balance 680, got %s", got.CurrentBalance)
		}
	})

	t.Run("invoices never move cash", func(t *testing.T) {
		before, _ := app.AccountUC.GetAccount(ctx, account.ID)

		doc, err := app.DocumentUC.CreateDocument(ctx, usecase.CreateDocumentInput{
			Type:      domain.DocumentTypeInvoice,
			AccountID: &account.ID,
			Currency:  "MYR",
			Amount:    decimal.NewFromInt(9999),
		})
		if err != nil {
			t.Fatalf("create failed: %v", err)
		}

		for _, status := range []domain.DocumentStatus{domain.DocumentStatusIssued, domain.DocumentStatusCompleted} {
			if _, err := app.DocumentUC.ChangeStatus(ctx, doc.ID, status); err != nil {
				t.Fatalf("transition to %s failed: %v", status, err)
			}
		}

		after, _ := app.AccountUC.GetAccount(ctx, account.ID)
		if !after.CurrentBalance.Equal(before.CurrentBalance) {
			t.Fatalf("expected balance unchanged, got %s -> %s", before.CurrentBalance, after.CurrentBalance)
		}

		entries, err := app.EntryUC.GetEntriesByDocument(ctx, doc.ID)
		if err != nil {
			t.Fatalf("get entries failed: %v", err)
		}
		if len(entries) != 0 {
			t.Fatalf("expected no entries for invoice, got %d", len(entries))
		}
	})

	t.Run("document numbers are sequential per type", func(t *testing.T) {
		first, err := app.DocumentUC.CreateDocument(ctx, usecase.CreateDocumentInput{
			Type:     domain.DocumentTypePaymentVoucher,
			Currency: "MYR",
			Amount:   decimal.NewFromInt(10),
		})
		if err != nil {
			t.Fatalf("create failed: %v", err)
		}
		second, err := app.DocumentUC.CreateDocument(ctx, usecase.CreateDocumentInput{
			Type:     domain.DocumentTypePaymentVoucher,
			Currency: "MYR",
			Amount:   decimal.NewFromInt(10),
		})
		if err != nil {
			t.Fatalf("create failed: %v", err)
		}

		if first.Number == second.Number {
			t.Fatalf("expected distinct numbers, both got %s", first.Number)
		}
		if !strings.HasSuffix(first.Number, "0001") || !strings.HasSuffix(second.Number, "0002") {
			t.Fatalf("expected sequential numbers, got %s then %s", first.Number, second.Number)
		}
	})

	t.Run("ledger stays consistent", func(t *testing.T) {
		if err := app.ReconciliationUC.CheckLedgerConsistency(ctx); err != nil {
			t.Fatalf("expected consistent ledger, got %v", err)
		}
	})
}
