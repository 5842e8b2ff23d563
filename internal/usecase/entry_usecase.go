package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/traveledger/internal/domain"
)

// historicalBalanceTTL bounds staleness for cached point-in-time balances.
// A lookup at a recent instant can still gain entries until the instant has
// passed, so the cache is short-lived.
const historicalBalanceTTL = time.Minute

// EntryUseCase handles ledger entry queries.
type EntryUseCase struct {
	entryRepo   EntryRepository
	accountRepo AccountRepository
	cache       Cache
}

// NewEntryUseCase creates a new EntryUseCase.
func NewEntryUseCase(entryRepo EntryRepository, accountRepo AccountRepository) *EntryUseCase {
	return &EntryUseCase{
		entryRepo:   entryRepo,
		accountRepo: accountRepo,
	}
}

// WithCache enables caching of historical balance lookups.
func (uc *EntryUseCase) WithCache(cache Cache) *EntryUseCase {
	uc.cache = cache
	return uc
}

// GetEntriesByAccountInput represents input for listing entries.
type GetEntriesByAccountInput struct {
	AccountID string
	Limit     int
	Offset    int
}

// GetEntriesByAccount lists entries for an account.
func (uc *EntryUseCase) GetEntriesByAccount(ctx context.Context, input GetEntriesByAccountInput) ([]*domain.Entry, error) {
	if input.Limit <= 0 {
		input.Limit = 20
	}

	if input.Limit > 100 {
		input.Limit = 100
	}

	return uc.entryRepo.GetByAccount(ctx, input.AccountID, input.Limit, input.Offset)
}

// GetEntriesByDocument lists all entries a document ever produced, including
// reversals.
func (uc *EntryUseCase) GetEntriesByDocument(ctx context.Context, documentID string) ([]*domain.Entry, error) {
	return uc.entryRepo.GetByDocument(ctx, documentID)
}

// GetHistoricalBalance returns the balance at a specific point in time.
func (uc *EntryUseCase) GetHistoricalBalance(ctx context.Context, accountID string, at time.Time) (decimal.Decimal, error) {
	key := fmt.Sprintf("balance:%s:%d", accountID, at.UTC().Unix())

	if uc.cache != nil {
		if cached, err := uc.cache.Get(ctx, key); err == nil {
			if balance, err := decimal.NewFromString(cached); err == nil {
				return balance, nil
			}
		}
	}

	balance, err := uc.entryRepo.GetBalanceAtTime(ctx, accountID, at)
	if errors.Is(err, domain.ErrEntryNotFound) {
		// No entry at or before the instant: the balance is still the
		// account's initial balance.
		account, err := uc.accountRepo.GetByID(ctx, accountID)
		if err != nil {
			return decimal.Decimal{}, err
		}
		balance = account.InitialBalance
	} else if err != nil {
		return decimal.Decimal{}, err
	}

	if uc.cache != nil {
		// Cache write failures only cost a future lookup.
		_ = uc.cache.Set(ctx, key, balance.String(), historicalBalanceTTL)
	}

	return balance, nil
}
