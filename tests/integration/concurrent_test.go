package integration

import (
	"context"
	"sync"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/iho/traveledger/internal/domain"
	"github.com/iho/traveledger/internal/usecase"
)

func TestConcurrentCompletionsSerialize(t *testing.T) {
	app, cleanup := newTestApp(t)
	defer cleanup()

	ctx := context.Background()
	company := app.DB.CreateTestCompany(ctx, "Travel Co", false)
	account := app.DB.CreateTestAccount(ctx, company.ID, "cash", "MYR", decimal.NewFromInt(1000))

	const workers = 10
	docs := make([]*domain.Document, workers)
	for i := range docs {
		doc, err := app.DocumentUC.CreateDocument(ctx, usecase.CreateDocumentInput{
			Type:      domain.DocumentTypeReceipt,
			AccountID: &account.ID,
			Currency:  "MYR",
			Amount:    decimal.NewFromInt(10),
		})
		if err != nil {
			t.Fatalf("create failed: %v", err)
		}
		docs[i] = doc
	}

	var wg sync.WaitGroup
	errs := make(chan error, workers)
	for _, doc := range docs {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			if _, err := app.DocumentUC.ChangeStatus(ctx, id, domain.DocumentStatusCompleted); err != nil {
				errs <- err
			}
		}(doc.ID)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Errorf("completion failed: %v", err)
	}

	got, err := app.AccountUC.GetAccount(ctx, account.ID)
	if err != nil {
		t.Fatalf("get account failed: %v", err)
	}
	if !got.CurrentBalance.Equal(decimal.NewFromInt(1100)) {
		t.Fatalf("expected balance 1100 after %d completions, got %s", workers, got.CurrentBalance)
	}
	if got.Version != workers {
		t.Fatalf("expected version %d, got %d", workers, got.Version)
	}

	if err := app.ReconciliationUC.CheckLedgerConsistency(ctx); err != nil {
		t.Fatalf("expected consistent ledger, got %v", err)
	}
}

func TestConcurrentCreatesGetDistinctNumbers(t *testing.T) {
	app, cleanup := newTestApp(t)
	defer cleanup()

	ctx := context.Background()

	const workers = 20
	numbers := make(chan string, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			doc, err := app.DocumentUC.CreateDocument(ctx, usecase.CreateDocumentInput{
				Type:     domain.DocumentTypeInvoice,
				Currency: "MYR",
				Amount:   decimal.NewFromInt(1),
			})
			if err != nil {
				t.Errorf("create failed: %v", err)
				return
			}
			numbers <- doc.Number
		}()
	}
	wg.Wait()
	close(numbers)

	seen := make(map[string]bool)
	for number := range numbers {
		if seen[number] {
			t.Fatalf("duplicate document number handed out: %s", number)
		}
		seen[number] = true
	}
	if len(seen) != workers {
		t.Fatalf("expected %d distinct numbers, got %d", workers, len(seen))
	}
}
