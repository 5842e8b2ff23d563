package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/iho/traveledger/internal/domain"
	"github.com/iho/traveledger/internal/usecase"
	"github.com/iho/traveledger/internal/usecase/mocks"
)

type accountFixture struct {
	accountRepo *mocks.MockAccountRepository
	companyRepo *mocks.MockCompanyRepository
	accounts    *usecase.AccountUseCase
}

func newAccountFixture(t *testing.T) *accountFixture {
	t.Helper()

	f := &accountFixture{
		accountRepo: mocks.NewMockAccountRepository(),
		companyRepo: mocks.NewMockCompanyRepository(),
	}

	f.accounts = usecase.NewAccountUseCase(f.accountRepo, f.companyRepo, mocks.NewMockIDGenerator())

	return f
}

func TestAccountCreate(t *testing.T) {
	f := newAccountFixture(t)

	company, err := f.accounts.CreateCompany(context.Background(), usecase.CreateCompanyInput{
		Name: "Borneo Trails Sdn Bhd",
	})
	if err != nil {
		t.Fatalf("failed to create company: %v", err)
	}

	account, err := f.accounts.CreateAccount(context.Background(), usecase.CreateAccountInput{
		CompanyID:      company.ID,
		Name:           "Operations MYR",
		Currency:       "MYR",
		InitialBalance: decimal.NewFromInt(5000),
	})
	if err != nil {
		t.Fatalf("failed to create account: %v", err)
	}

	if !account.CurrentBalance.Equal(account.InitialBalance) {
		t.Errorf("current balance must seed from initial: %s != %s", account.CurrentBalance, account.InitialBalance)
	}
	if account.Version != 0 {
		t.Errorf("expected version 0, got %d", account.Version)
	}
	if !account.Active {
		t.Error("expected new account to be active")
	}
}

func TestAccountCreate_Validation(t *testing.T) {
	f := newAccountFixture(t)

	company, _ := f.accounts.CreateCompany(context.Background(), usecase.CreateCompanyInput{Name: "Test Co"})

	tests := []struct {
		name  string
		input usecase.CreateAccountInput
		want  error
	}{
		{
			name:  "empty name",
			input: usecase.CreateAccountInput{CompanyID: company.ID, Name: "", Currency: "MYR"},
			want:  domain.ErrInvalidAccountName,
		},
		{
			name:  "unsupported currency",
			input: usecase.CreateAccountInput{CompanyID: company.ID, Name: "Ops", Currency: "DOGE"},
			want:  domain.ErrInvalidCurrency,
		},
		{
			name:  "missing company",
			input: usecase.CreateAccountInput{CompanyID: "nope", Name: "Ops", Currency: "MYR"},
			want:  domain.ErrCompanyNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := f.accounts.CreateAccount(context.Background(), tt.input); !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestAccountDeactivate(t *testing.T) {
	f := newAccountFixture(t)

	company, _ := f.accounts.CreateCompany(context.Background(), usecase.CreateCompanyInput{Name: "Test Co"})
	account, err := f.accounts.CreateAccount(context.Background(), usecase.CreateAccountInput{
		CompanyID: company.ID,
		Name:      "Ops",
		Currency:  "MYR",
	})
	if err != nil {
		t.Fatalf("failed to create account: %v", err)
	}

	if err := f.accounts.DeactivateAccount(context.Background(), account.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := f.accounts.GetAccount(context.Background(), account.ID)
	if err != nil {
		t.Fatalf("expected deactivated account to remain readable: %v", err)
	}
	if got.Active {
		t.Error("expected account to be inactive")
	}
	if got.DeletedAt == nil {
		t.Error("expected DeletedAt to be set")
	}
}

func TestAccountDeactivate_NotFound(t *testing.T) {
	f := newAccountFixture(t)

	if err := f.accounts.DeactivateAccount(context.Background(), "missing"); !errors.Is(err, domain.ErrAccountNotFound) {
		t.Errorf("expected ErrAccountNotFound, got %v", err)
	}
}

func TestAccountList(t *testing.T) {
	f := newAccountFixture(t)

	company, _ := f.accounts.CreateCompany(context.Background(), usecase.CreateCompanyInput{Name: "Test Co"})
	for _, name := range []string{"Ops MYR", "Ops SGD", "Ops USD"} {
		if _, err := f.accounts.CreateAccount(context.Background(), usecase.CreateAccountInput{
			CompanyID: company.ID,
			Name:      name,
			Currency:  "MYR",
		}); err != nil {
			t.Fatalf("failed to create account: %v", err)
		}
	}

	accounts, err := f.accounts.ListAccounts(context.Background(), usecase.ListAccountsInput{Limit: 10})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(accounts) != 3 {
		t.Errorf("expected 3 accounts, got %d", len(accounts))
	}
}
