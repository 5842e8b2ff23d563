package integration

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/traveledger/internal/domain"
	"github.com/iho/traveledger/internal/infrastructure/eventpublisher"
	"github.com/iho/traveledger/internal/usecase"
)

func TestCompletionWritesOutboxEvents(t *testing.T) {
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

	events, err := app.OutboxRepo.GetUnpublished(ctx, 100)
	if err != nil {
		t.Fatalf("get unpublished failed: %v", err)
	}
	if len(events) == 0 {
		t.Fatal("expected outbox events after completion")
	}

	types := make(map[string]bool)
	for _, event := range events {
		types[event.EventType] = true
	}
	if !types["entry_applied"] {
		t.Fatalf("expected entry_applied event, got %v", types)
	}
	if !types["document.completed"] {
		t.Fatalf("expected document.completed event, got %v", types)
	}
}

func TestPublisherDrainsOutbox(t *testing.T) {
	app, cleanup := newTestApp(t)
	defer cleanup()

	ctx := context.Background()
	company := app.DB.CreateTestCompany(ctx, "Travel Co", false)
	account := app.DB.CreateTestAccount(ctx, company.ID, "cash", "MYR", decimal.NewFromInt(1000))

	doc, err := app.DocumentUC.CreateDocument(ctx, usecase.CreateDocumentInput{
		Type:      domain.DocumentTypeReceipt,
		AccountID: &account.ID,
		Currency:  "MYR",
		Amount:    decimal.NewFromInt(50),
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if _, err := app.DocumentUC.ChangeStatus(ctx, doc.ID, domain.DocumentStatusCompleted); err != nil {
		t.Fatalf("complete failed: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	publisher := eventpublisher.NewEventPublisher(eventpublisher.Config{
		OutboxRepo: app.OutboxRepo,
		Publisher:  eventpublisher.NewLogPublisher(logger),
		Logger:     logger,
		BatchSize:  100,
		Interval:   10 * time.Millisecond,
	})

	publishCtx, cancel := context.WithTimeout(ctx, 500*time.Millisecond)
	defer cancel()
	_ = publisher.Start(publishCtx)

	remaining, err := app.OutboxRepo.GetUnpublished(ctx, 100)
	if err != nil {
		t.Fatalf("get unpublished failed: %v", err)
	}
	if len(remaining) != 0 {
		t.Fatalf("expected outbox drained, %d events remain", len(remaining))
	}
}
