package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iho/traveledger/internal/domain"
	"github.com/iho/traveledger/internal/infrastructure/postgres/generated"
	"github.com/iho/traveledger/internal/usecase"
)

// LedgerRepository implements usecase.LedgerRepository.
type LedgerRepository struct {
	pool    *pgxpool.Pool
	queries *generated.Queries
}

// NewLedgerRepository creates a new LedgerRepository.
func NewLedgerRepository(pool *pgxpool.Pool) *LedgerRepository {
	return &LedgerRepository{
		pool:    pool,
		queries: generated.New(pool),
	}
}

// ConsistencySums returns every account's recorded balance alongside the
// signed sum of its entries.
func (r *LedgerRepository) ConsistencySums(ctx context.Context) ([]usecase.AccountConsistency, error) {
	rows, err := r.queries.GetLedgerConsistency(ctx)
	if err != nil {
		return nil, err
	}

	sums := make([]usecase.AccountConsistency, 0, len(rows))
	for _, row := range rows {
		sums = append(sums, usecase.AccountConsistency{
			AccountID:      row.AccountID,
			InitialBalance: numericToDecimal(row.InitialBalance),
			CurrentBalance: numericToDecimal(row.CurrentBalance),
			EntrySum:       numericToDecimal(row.EntrySum),
		})
	}

	return sums, nil
}

// ConsistencySumsForAccount returns one account's recorded vs derived sums.
func (r *LedgerRepository) ConsistencySumsForAccount(ctx context.Context, accountID string) (usecase.AccountConsistency, error) {
	row, err := r.queries.GetLedgerConsistencyForAccount(ctx, accountID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return usecase.AccountConsistency{}, domain.ErrAccountNotFound
		}

		return usecase.AccountConsistency{}, err
	}

	return usecase.AccountConsistency{
		AccountID:      row.AccountID,
		InitialBalance: numericToDecimal(row.InitialBalance),
		CurrentBalance: numericToDecimal(row.CurrentBalance),
		EntrySum:       numericToDecimal(row.EntrySum),
	}, nil
}
