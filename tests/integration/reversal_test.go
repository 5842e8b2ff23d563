package integration

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/iho/traveledger/internal/domain"
	"github.com/iho/traveledger/internal/usecase"
)

func TestCancellationReversesEffect(t *testing.T) {
	app, cleanup := newTestApp(t)
	defer cleanup()

	ctx := context.Background()
	company := app.DB.CreateTestCompany(ctx, "Travel Co", false)
	account := app.DB.CreateTestAccount(ctx, company.ID, "cash", "MYR", decimal.NewFromInt(1000))

	doc, err := app.DocumentUC.CreateDocument(ctx, usecase.CreateDocumentInput{
		Type:      domain.DocumentTypeReceipt,
		AccountID: &account.ID,
		Currency:  "MYR",
		Amount:    decimal.NewFromInt(200),
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if _, err := app.DocumentUC.ChangeStatus(ctx, doc.ID, domain.DocumentStatusCompleted); err != nil {
		t.Fatalf("complete failed: %v", err)
	}
	if _, err := app.DocumentUC.ChangeStatus(ctx, doc.ID, domain.DocumentStatusCancelled); err != nil {
		t.Fatalf("cancel failed: %v", err)
	}

	got, err := app.AccountUC.GetAccount(ctx, account.ID)
	if err != nil {
		t.Fatalf("get account failed: %v", err)
	}
	if !got.CurrentBalance.Equal(decimal.NewFromInt(1000)) {
		t.Fatalf("expected balance restored to 1000, got %s", got.CurrentBalance)
	}

	entries, err := app.EntryUC.GetEntriesByDocument(ctx, doc.ID)
	if err != nil {
		t.Fatalf("get entries failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected original plus reversal, got %d entries", len(entries))
	}

	var reversal *domain.Entry
	for _, e := range entries {
		if e.IsReversal {
			reversal = e
		}
	}
	if reversal == nil {
		t.Fatal("expected a reversal entry")
	}
	if reversal.ReversesEntryID == nil {
		t.Fatal("expected reversal to reference the original entry")
	}
	if reversal.Direction != domain.DirectionDecrease {
		t.Fatalf("expected reversal to decrease, got %s", reversal.Direction)
	}
}

func TestDeleteReversesAndTombstones(t *testing.T) {
	app, cleanup := newTestApp(t)
	defer cleanup()

	ctx := context.Background()
	company := app.DB.CreateTestCompany(ctx, "Travel Co", false)
	account := app.DB.CreateTestAccount(ctx, company.ID, "cash", "MYR", decimal.NewFromInt(1000))

	doc, err := app.DocumentUC.CreateDocument(ctx, usecase.CreateDocumentInput{
		Type:      domain.DocumentTypeReceipt,
		AccountID: &account.ID,
		Currency:  "MYR",
		Amount:    decimal.NewFromInt(300),
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if _, err := app.DocumentUC.ChangeStatus(ctx, doc.ID, domain.DocumentStatusCompleted); err != nil {
		t.Fatalf("complete failed: %v", err)
	}

	deleted, err := app.DocumentUC.DeleteDocument(ctx, doc.ID)
	if err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if deleted.DeletedAt == nil {
		t.Fatal("expected tombstone to be set")
	}

	// Delete is idempotent; a second call must not reverse again.
	if _, err := app.DocumentUC.DeleteDocument(ctx, doc.ID); err != nil {
		t.Fatalf("second delete failed: %v", err)
	}

	got, err := app.AccountUC.GetAccount(ctx, account.ID)
	if err != nil {
		t.Fatalf("get account failed: %v", err)
	}
	if !got.CurrentBalance.Equal(decimal.NewFromInt(1000)) {
		t.Fatalf("expected balance restored to 1000, got %s", got.CurrentBalance)
	}

	entries, err := app.EntryUC.GetEntriesByDocument(ctx, doc.ID)
	if err != nil {
		t.Fatalf("get entries failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected exactly one reversal after double delete, got %d entries", len(entries))
	}

	// The deleted document stays readable.
	fetched, err := app.DocumentUC.GetDocument(ctx, doc.ID)
	if err != nil {
		t.Fatalf("expected deleted document to stay readable: %v", err)
	}
	if fetched.DeletedAt == nil {
		t.Fatal("expected tombstone on fetched document")
	}

	// Further mutations are rejected.
	if _, err := app.DocumentUC.ChangeStatus(ctx, doc.ID, domain.DocumentStatusCancelled); err == nil {
		t.Fatal("expected status change on deleted document to fail")
	}
}

func TestAmountEditWhileCompletedReappliesEffect(t *testing.T) {
	app, cleanup := newTestApp(t)
	defer cleanup()

	ctx := context.Background()
	company := app.DB.CreateTestCompany(ctx, "Travel Co", false)
	account := app.DB.CreateTestAccount(ctx, company.ID, "cash", "MYR", decimal.NewFromInt(1000))

	doc, err := app.DocumentUC.CreateDocument(ctx, usecase.CreateDocumentInput{
		Type:      domain.DocumentTypeReceipt,
		AccountID: &account.ID,
		Currency:  "MYR",
		Amount:    decimal.NewFromInt(200),
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if _, err := app.DocumentUC.ChangeStatus(ctx, doc.ID, domain.DocumentStatusCompleted); err != nil {
		t.Fatalf("complete failed: %v", err)
	}

	if _, err := app.DocumentUC.UpdateAmount(ctx, doc.ID, usecase.UpdateAmountInput{
		Amount:    decimal.NewFromInt(500),
		AccountID: &account.ID,
	}); err != nil {
		t.Fatalf("update amount failed: %v", err)
	}

	got, err := app.AccountUC.GetAccount(ctx, account.ID)
	if err != nil {
		t.Fatalf("get account failed: %v", err)
	}
	if !got.CurrentBalance.Equal(decimal.NewFromInt(1500)) {
		t.Fatalf("expected balance 1500 after edit, got %s", got.CurrentBalance)
	}

	entries, err := app.EntryUC.GetEntriesByDocument(ctx, doc.ID)
	if err != nil {
		t.Fatalf("get entries failed: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected original, reversal and reapplied entry, got %d", len(entries))
	}

	if err := app.ReconciliationUC.CheckLedgerConsistency(ctx); err != nil {
		t.Fatalf("expected consistent ledger after edit, got %v", err)
	}
}
