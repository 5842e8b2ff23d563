package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/traveledger/internal/domain"
	"github.com/iho/traveledger/internal/infrastructure/metrics"
)

// AccountUseCase handles account and company business logic.
type AccountUseCase struct {
	accountRepo AccountRepository
	companyRepo CompanyRepository
	idGen       IDGenerator
	metrics     *metrics.Metrics
}

// NewAccountUseCase creates a new AccountUseCase.
func NewAccountUseCase(accountRepo AccountRepository, companyRepo CompanyRepository, idGen IDGenerator) *AccountUseCase {
	return &AccountUseCase{
		accountRepo: accountRepo,
		companyRepo: companyRepo,
		idGen:       idGen,
	}
}

// WithMetrics enables Prometheus instrumentation.
func (uc *AccountUseCase) WithMetrics(m *metrics.Metrics) *AccountUseCase {
	uc.metrics = m
	return uc
}

// CreateAccountInput represents input for creating an account.
type CreateAccountInput struct {
	CompanyID      string
	Name           string
	Currency       string
	InitialBalance decimal.Decimal
}

// CreateAccount creates a new account. The initial balance is immutable and
// seeds the current balance; from then on the current balance only moves
// through the ledger engine.
func (uc *AccountUseCase) CreateAccount(ctx context.Context, input CreateAccountInput) (*domain.Account, error) {
	if err := domain.ValidateAccountName(input.Name); err != nil {
		return nil, err
	}

	if err := domain.ValidateCurrency(input.Currency); err != nil {
		return nil, err
	}

	if _, err := uc.companyRepo.GetByID(ctx, input.CompanyID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	account := &domain.Account{
		ID:             uc.idGen.Generate(),
		CompanyID:      input.CompanyID,
		Name:           input.Name,
		Currency:       input.Currency,
		InitialBalance: input.InitialBalance,
		CurrentBalance: input.InitialBalance,
		Version:        0,
		Active:         true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := uc.accountRepo.Create(ctx, account); err != nil {
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.AccountsCreated.Inc()
		uc.metrics.AccountBalance.
			WithLabelValues(account.ID, account.Currency).
			Set(account.CurrentBalance.InexactFloat64())
	}

	return account, nil
}

// GetAccount retrieves an account by ID.
func (uc *AccountUseCase) GetAccount(ctx context.Context, id string) (*domain.Account, error) {
	return uc.accountRepo.GetByID(ctx, id)
}

// DeactivateAccount soft-deletes an account. The row is never removed; its
// history stays queryable.
func (uc *AccountUseCase) DeactivateAccount(ctx context.Context, id string) error {
	if _, err := uc.accountRepo.GetByID(ctx, id); err != nil {
		return err
	}

	if err := uc.accountRepo.Deactivate(ctx, id, time.Now().UTC()); err != nil {
		return err
	}

	if uc.metrics != nil {
		uc.metrics.AccountOperations.WithLabelValues("deactivate").Inc()
	}

	return nil
}

// ListAccountsInput represents input for listing accounts.
type ListAccountsInput struct {
	Limit  int
	Offset int
}

// ListAccounts lists accounts with pagination.
func (uc *AccountUseCase) ListAccounts(ctx context.Context, input ListAccountsInput) ([]*domain.Account, error) {
	if input.Limit <= 0 {
		input.Limit = 20
	}
	if input.Limit > 100 {
		input.Limit = 100
	}
	return uc.accountRepo.List(ctx, input.Limit, input.Offset)
}

// CreateCompanyInput represents input for creating a company.
type CreateCompanyInput struct {
	Name                 string
	AllowNegativeBalance bool
}

// CreateCompany creates a new company.
func (uc *AccountUseCase) CreateCompany(ctx context.Context, input CreateCompanyInput) (*domain.Company, error) {
	now := time.Now().UTC()

	company := &domain.Company{
		ID:                   uc.idGen.Generate(),
		Name:                 input.Name,
		AllowNegativeBalance: input.AllowNegativeBalance,
		CreatedAt:            now,
		UpdatedAt:            now,
	}

	if err := uc.companyRepo.Create(ctx, company); err != nil {
		return nil, err
	}

	return company, nil
}

// GetCompany retrieves a company by ID.
func (uc *AccountUseCase) GetCompany(ctx context.Context, id string) (*domain.Company, error) {
	return uc.companyRepo.GetByID(ctx, id)
}
