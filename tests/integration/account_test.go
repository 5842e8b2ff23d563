package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/iho/traveledger/internal/adapter/http/dto"
)

func TestAccountAPI(t *testing.T) {
	app, cleanup := newTestApp(t)
	defer cleanup()

	ctx := context.Background()
	router := app.newRouter()

	company := app.DB.CreateTestCompany(ctx, "Travel Co", false)

	t.Run("create account with valid data", func(t *testing.T) {
		req := dto.CreateAccountRequest{
			CompanyID:      company.ID,
			Name:           "Operations MYR",
			Currency:       "MYR",
			InitialBalance: decimal.NewFromInt(1000),
		}
		body, _ := json.Marshal(req)

		r := httptest.NewRequest(http.MethodPost, "/api/v1/accounts/", bytes.NewReader(body))
		r.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, r)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected status %d, got %d: %s", http.StatusCreated, w.Code, w.Body.String())
		}

		var resp dto.AccountResponse
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to parse response: %v", err)
		}

		if resp.Name != req.Name || resp.Currency != req.Currency {
			t.Errorf("expected fields to round-trip, got %+v", resp)
		}
		if !resp.CurrentBalance.Equal(decimal.NewFromInt(1000)) {
			t.Errorf("expected current balance to equal initial balance, got %s", resp.CurrentBalance)
		}
		if !resp.Active || resp.Version != 0 {
			t.Errorf("expected fresh active account at version 0, got %+v", resp)
		}
	})

	t.Run("create account for missing company", func(t *testing.T) {
		req := dto.CreateAccountRequest{
			CompanyID: "does-not-exist",
			Name:      "Orphan",
			Currency:  "USD",
		}
		body, _ := json.Marshal(req)

		r := httptest.NewRequest(http.MethodPost, "/api/v1/accounts/", bytes.NewReader(body))
		w := httptest.NewRecorder()

		router.ServeHTTP(w, r)

		if w.Code != http.StatusNotFound {
			t.Errorf("expected status %d, got %d: %s", http.StatusNotFound, w.Code, w.Body.String())
		}
	})

	t.Run("get account by ID", func(t *testing.T) {
		account := app.DB.CreateTestAccount(ctx, company.ID, "get-test", "EUR", decimal.NewFromInt(50))

		r := httptest.NewRequest(http.MethodGet, "/api/v1/accounts/"+account.ID, nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, r)

		if w.Code != http.StatusOK {
			t.Fatalf("expected status %d, got %d: %s", http.StatusOK, w.Code, w.Body.String())
		}

		var resp dto.AccountResponse
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to parse response: %v", err)
		}
		if resp.ID != account.ID || !resp.InitialBalance.Equal(decimal.NewFromInt(50)) {
			t.Errorf("unexpected account: %+v", resp)
		}
	})

	t.Run("deactivate keeps account readable", func(t *testing.T) {
		account := app.DB.CreateTestAccount(ctx, company.ID, "deactivate-test", "USD", decimal.Zero)

		r := httptest.NewRequest(http.MethodDelete, "/api/v1/accounts/"+account.ID, nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, r)

		if w.Code != http.StatusNoContent {
			t.Fatalf("expected status %d, got %d: %s", http.StatusNoContent, w.Code, w.Body.String())
		}

		got, err := app.AccountUC.GetAccount(ctx, account.ID)
		if err != nil {
			t.Fatalf("expected deactivated account to stay readable: %v", err)
		}
		if got.Active || got.DeletedAt == nil {
			t.Errorf("expected inactive tombstoned account, got %+v", got)
		}
	})

	t.Run("create company via API", func(t *testing.T) {
		body, _ := json.Marshal(dto.CreateCompanyRequest{Name: "Negative Co", AllowNegativeBalance: true})

		r := httptest.NewRequest(http.MethodPost, "/api/v1/companies/", bytes.NewReader(body))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, r)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected status %d, got %d: %s", http.StatusCreated, w.Code, w.Body.String())
		}

		var resp dto.CompanyResponse
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to parse response: %v", err)
		}
		if !resp.AllowNegativeBalance {
			t.Errorf("expected allow_negative_balance to persist, got %+v", resp)
		}
	})
}
