package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/iho/traveledger/internal/domain"
	"github.com/iho/traveledger/internal/infrastructure/postgres/generated"
	"github.com/iho/traveledger/internal/usecase"
)

// EntryRepository implements usecase.EntryRepository.
type EntryRepository struct {
	pool    *pgxpool.Pool
	queries *generated.Queries
}

// NewEntryRepository creates a new EntryRepository.
func NewEntryRepository(pool *pgxpool.Pool) *EntryRepository {
	return &EntryRepository{
		pool:    pool,
		queries: generated.New(pool),
	}
}

// Create creates a new ledger entry within a transaction.
func (r *EntryRepository) Create(ctx context.Context, tx usecase.Transaction, entry *domain.Entry) error {
	pgxTx := tx.(*Tx).PgxTx()
	queries := generated.New(pgxTx)

	_, err := queries.CreateLedgerEntry(ctx, generated.CreateLedgerEntryParams{
		ID:              entry.ID,
		AccountID:       entry.AccountID,
		DocumentID:      entry.DocumentID,
		Direction:       string(entry.Direction),
		Amount:          decimalToNumeric(entry.Amount),
		BalanceBefore:   decimalToNumeric(entry.BalanceBefore),
		BalanceAfter:    decimalToNumeric(entry.BalanceAfter),
		AccountVersion:  entry.AccountVersion,
		IsReversal:      entry.IsReversal,
		ReversesEntryID: stringPtrToPgText(entry.ReversesEntryID),
		CreatedAt:       timeToPgTimestamptz(entry.CreatedAt),
	})

	return err
}

// GetByID retrieves an entry by ID.
func (r *EntryRepository) GetByID(ctx context.Context, id string) (*domain.Entry, error) {
	row, err := r.queries.GetEntryByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrEntryNotFound
		}

		return nil, err
	}

	return rowToEntry(row), nil
}

// GetActiveByDocument retrieves the document's non-reversed entry. The query
// runs inside the caller's transaction so the duplicate-effect check sees
// rows written earlier in the same transaction.
func (r *EntryRepository) GetActiveByDocument(ctx context.Context, tx usecase.Transaction, documentID string) (*domain.Entry, error) {
	pgxTx := tx.(*Tx).PgxTx()
	queries := generated.New(pgxTx)

	row, err := queries.GetActiveEntryByDocument(ctx, documentID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrEntryNotFound
		}

		return nil, err
	}

	return rowToEntry(row), nil
}

// GetByDocument retrieves all entries for a document, including reversals.
func (r *EntryRepository) GetByDocument(ctx context.Context, documentID string) ([]*domain.Entry, error) {
	rows, err := r.queries.GetEntriesByDocument(ctx, documentID)
	if err != nil {
		return nil, err
	}

	entries := make([]*domain.Entry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, rowToEntry(row))
	}

	return entries, nil
}

// GetByAccount retrieves entries by account ID.
func (r *EntryRepository) GetByAccount(ctx context.Context, accountID string, limit, offset int) ([]*domain.Entry, error) {
	rows, err := r.queries.GetEntriesByAccount(ctx, generated.GetEntriesByAccountParams{
		AccountID: accountID,
		Limit:     int32(limit),
		Offset:    int32(offset),
	})
	if err != nil {
		return nil, err
	}

	entries := make([]*domain.Entry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, rowToEntry(row))
	}

	return entries, nil
}

// GetBalanceAtTime retrieves the balance at a specific time.
func (r *EntryRepository) GetBalanceAtTime(ctx context.Context, accountID string, at time.Time) (decimal.Decimal, error) {
	balance, err := r.queries.GetAccountBalanceAtTime(ctx, generated.GetAccountBalanceAtTimeParams{
		AccountID: accountID,
		CreatedAt: timeToPgTimestamptz(at),
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Zero, domain.ErrEntryNotFound
		}

		return decimal.Zero, err
	}

	return numericToDecimal(balance), nil
}

func rowToEntry(row generated.LedgerEntry) *domain.Entry {
	return &domain.Entry{
		ID:              row.ID,
		AccountID:       row.AccountID,
		DocumentID:      row.DocumentID,
		Direction:       domain.EntryDirection(row.Direction),
		Amount:          numericToDecimal(row.Amount),
		BalanceBefore:   numericToDecimal(row.BalanceBefore),
		BalanceAfter:    numericToDecimal(row.BalanceAfter),
		AccountVersion:  row.AccountVersion,
		IsReversal:      row.IsReversal,
		ReversesEntryID: pgTextToStringPtr(row.ReversesEntryID),
		CreatedAt:       row.CreatedAt.Time,
	}
}
