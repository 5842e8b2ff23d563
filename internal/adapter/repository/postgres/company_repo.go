package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iho/traveledger/internal/domain"
	"github.com/iho/traveledger/internal/infrastructure/postgres/generated"
)

// CompanyRepository implements usecase.CompanyRepository.
type CompanyRepository struct {
	pool    *pgxpool.Pool
	queries *generated.Queries
}

// NewCompanyRepository creates a new CompanyRepository.
func NewCompanyRepository(pool *pgxpool.Pool) *CompanyRepository {
	return &CompanyRepository{
		pool:    pool,
		queries: generated.New(pool),
	}
}

// Create creates a new company.
func (r *CompanyRepository) Create(ctx context.Context, company *domain.Company) error {
	_, err := r.queries.CreateCompany(ctx, generated.CreateCompanyParams{
		ID:                   company.ID,
		Name:                 company.Name,
		AllowNegativeBalance: company.AllowNegativeBalance,
		CreatedAt:            timeToPgTimestamptz(company.CreatedAt),
		UpdatedAt:            timeToPgTimestamptz(company.UpdatedAt),
	})

	return err
}

// GetByID retrieves a company by ID.
func (r *CompanyRepository) GetByID(ctx context.Context, id string) (*domain.Company, error) {
	row, err := r.queries.GetCompanyByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCompanyNotFound
		}

		return nil, err
	}

	return rowToCompany(row), nil
}

// List lists companies with pagination.
func (r *CompanyRepository) List(ctx context.Context, limit, offset int) ([]*domain.Company, error) {
	rows, err := r.queries.ListCompanies(ctx, generated.ListCompaniesParams{
		Limit:  int32(limit),
		Offset: int32(offset),
	})
	if err != nil {
		return nil, err
	}

	companies := make([]*domain.Company, 0, len(rows))
	for _, row := range rows {
		companies = append(companies, rowToCompany(row))
	}

	return companies, nil
}

func rowToCompany(row generated.Company) *domain.Company {
	return &domain.Company{
		ID:                   row.ID,
		Name:                 row.Name,
		AllowNegativeBalance: row.AllowNegativeBalance,
		CreatedAt:            row.CreatedAt.Time,
		UpdatedAt:            row.UpdatedAt.Time,
	}
}
