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

// DocumentRepository implements usecase.DocumentRepository.
type DocumentRepository struct {
	pool    *pgxpool.Pool
	queries *generated.Queries
}

// NewDocumentRepository creates a new DocumentRepository.
func NewDocumentRepository(pool *pgxpool.Pool) *DocumentRepository {
	return &DocumentRepository{
		pool:    pool,
		queries: generated.New(pool),
	}
}

// Create creates a new document within a transaction.
func (r *DocumentRepository) Create(ctx context.Context, tx usecase.Transaction, doc *domain.Document) error {
	pgxTx := tx.(*Tx).PgxTx()
	queries := generated.New(pgxTx)

	_, err := queries.CreateDocument(ctx, generated.CreateDocumentParams{
		ID:            doc.ID,
		Number:        doc.Number,
		Type:          string(doc.Type),
		Status:        string(doc.Status),
		AccountID:     stringPtrToPgText(doc.AccountID),
		Currency:      doc.Currency,
		Amount:        decimalToNumeric(doc.Amount),
		TotalDeducted: decimalPtrToNumeric(doc.TotalDeducted),
		CreatedAt:     timeToPgTimestamptz(doc.CreatedAt),
		UpdatedAt:     timeToPgTimestamptz(doc.UpdatedAt),
	})

	return err
}

// GetByID retrieves a document by ID.
func (r *DocumentRepository) GetByID(ctx context.Context, id string) (*domain.Document, error) {
	row, err := r.queries.GetDocumentByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrDocumentNotFound
		}

		return nil, err
	}

	return rowToDocument(row), nil
}

// GetByIDForUpdate retrieves a document by ID with a FOR UPDATE lock.
func (r *DocumentRepository) GetByIDForUpdate(ctx context.Context, tx usecase.Transaction, id string) (*domain.Document, error) {
	pgxTx := tx.(*Tx).PgxTx()
	queries := generated.New(pgxTx)

	row, err := queries.GetDocumentByIDForUpdate(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrDocumentNotFound
		}

		return nil, err
	}

	return rowToDocument(row), nil
}

// Update updates a document's mutable fields within a transaction.
func (r *DocumentRepository) Update(ctx context.Context, tx usecase.Transaction, doc *domain.Document) error {
	pgxTx := tx.(*Tx).PgxTx()
	queries := generated.New(pgxTx)

	return queries.UpdateDocument(ctx, generated.UpdateDocumentParams{
		ID:            doc.ID,
		Status:        string(doc.Status),
		AccountID:     stringPtrToPgText(doc.AccountID),
		Amount:        decimalToNumeric(doc.Amount),
		TotalDeducted: decimalPtrToNumeric(doc.TotalDeducted),
		UpdatedAt:     timeToPgTimestamptz(doc.UpdatedAt),
		DeletedAt:     timePtrToPgTimestamptz(doc.DeletedAt),
	})
}

// List lists documents with filtering and pagination.
func (r *DocumentRepository) List(ctx context.Context, filter usecase.DocumentFilter) ([]*domain.Document, error) {
	params := generated.ListDocumentsParams{
		IncludeDeleted: filter.Deleted,
		Limit:          int32(filter.Limit),
		Offset:         int32(filter.Offset),
	}

	if filter.Type != nil {
		params.Type = pgtypeText(string(*filter.Type))
	}
	if filter.Status != nil {
		params.Status = pgtypeText(string(*filter.Status))
	}
	if filter.AccountID != nil {
		params.AccountID = pgtypeText(*filter.AccountID)
	}

	rows, err := r.queries.ListDocuments(ctx, params)
	if err != nil {
		return nil, err
	}

	docs := make([]*domain.Document, 0, len(rows))
	for _, row := range rows {
		docs = append(docs, rowToDocument(row))
	}

	return docs, nil
}

func rowToDocument(row generated.Document) *domain.Document {
	return &domain.Document{
		ID:            row.ID,
		Number:        row.Number,
		Type:          domain.DocumentType(row.Type),
		Status:        domain.DocumentStatus(row.Status),
		AccountID:     pgTextToStringPtr(row.AccountID),
		Currency:      row.Currency,
		Amount:        numericToDecimal(row.Amount),
		TotalDeducted: numericToDecimalPtr(row.TotalDeducted),
		CreatedAt:     row.CreatedAt.Time,
		UpdatedAt:     row.UpdatedAt.Time,
		DeletedAt:     pgTimestamptzToTimePtr(row.DeletedAt),
	}
}
