package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/traveledger/internal/domain"
)

func TestDocumentFromDomainOmitsEmptyOptionals(t *testing.T) {
	doc := &domain.Document{
		ID:        "doc-1",
		Number:    "INV-2026-0001",
		Type:      domain.DocumentTypeInvoice,
		Status:    domain.DocumentStatusDraft,
		Currency:  "USD",
		Amount:    decimal.NewFromInt(100),
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}

	resp := DocumentFromDomain(doc)

	raw, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	if _, present := fields["account_id"]; present {
		t.Fatal("expected account_id to be omitted when nil")
	}
	if _, present := fields["deleted_at"]; present {
		t.Fatal("expected deleted_at to be omitted when nil")
	}
	if fields["number"] != "INV-2026-0001" {
		t.Fatalf("expected document number in response, got %v", fields["number"])
	}
}

func TestEntryFromDomainCarriesReversalLink(t *testing.T) {
	reversed := "ent-1"
	entry := &domain.Entry{
		ID:              "ent-2",
		AccountID:       "acc-1",
		DocumentID:      "doc-1",
		Direction:       domain.DirectionDecrease,
		Amount:          decimal.NewFromInt(200),
		BalanceBefore:   decimal.NewFromInt(1200),
		BalanceAfter:    decimal.NewFromInt(1000),
		IsReversal:      true,
		ReversesEntryID: &reversed,
		CreatedAt:       time.Now().UTC(),
	}

	resp := EntryFromDomain(entry)

	if !resp.IsReversal || resp.ReversesEntryID == nil || *resp.ReversesEntryID != "ent-1" {
		t.Fatalf("expected reversal link to carry over, got %+v", resp)
	}
	if resp.Direction != "decrease" {
		t.Fatalf("expected direction decrease, got %s", resp.Direction)
	}
}

func TestAccountsFromDomainPreservesOrder(t *testing.T) {
	accounts := []*domain.Account{
		{ID: "acc-1", CurrentBalance: decimal.NewFromInt(10)},
		{ID: "acc-2", CurrentBalance: decimal.NewFromInt(20)},
	}

	responses := AccountsFromDomain(accounts)

	if len(responses) != 2 || responses[0].ID != "acc-1" || responses[1].ID != "acc-2" {
		t.Fatalf("expected responses in input order, got %+v", responses)
	}
}
