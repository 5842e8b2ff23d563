package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iho/traveledger/internal/infrastructure/postgres/generated"
	"github.com/iho/traveledger/internal/usecase"
)

// SequenceRepository implements usecase.SequenceRepository on top of a
// per-key counter row. The upsert takes a row lock, so two transactions
// asking for the same key serialize and can never share a value.
type SequenceRepository struct {
	pool *pgxpool.Pool
}

// NewSequenceRepository creates a new SequenceRepository.
func NewSequenceRepository(pool *pgxpool.Pool) *SequenceRepository {
	return &SequenceRepository{pool: pool}
}

// Next returns the next value for the key.
func (r *SequenceRepository) Next(ctx context.Context, tx usecase.Transaction, key string) (int64, error) {
	pgxTx := tx.(*Tx).PgxTx()
	queries := generated.New(pgxTx)

	return queries.NextSequenceValue(ctx, key)
}
