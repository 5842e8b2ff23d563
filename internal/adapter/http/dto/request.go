package dto

import (
	"github.com/shopspring/decimal"

	"github.com/iho/traveledger/internal/domain"
	"github.com/iho/traveledger/internal/usecase"
)

// CreateCompanyRequest represents a request to create a company.
type CreateCompanyRequest struct {
	Name                 string `json:"name"`
	AllowNegativeBalance bool   `json:"allow_negative_balance"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateCompanyRequest) ToUseCaseInput() usecase.CreateCompanyInput {
	return usecase.CreateCompanyInput{
		Name:                 r.Name,
		AllowNegativeBalance: r.AllowNegativeBalance,
	}
}

// CreateAccountRequest represents a request to create an account.
type CreateAccountRequest struct {
	CompanyID      string          `json:"company_id"`
	Name           string          `json:"name"`
	Currency       string          `json:"currency"`
	InitialBalance decimal.Decimal `json:"initial_balance"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateAccountRequest) ToUseCaseInput() usecase.CreateAccountInput {
	return usecase.CreateAccountInput{
		CompanyID:      r.CompanyID,
		Name:           r.Name,
		Currency:       r.Currency,
		InitialBalance: r.InitialBalance,
	}
}

// CreateDocumentRequest represents a request to create a document.
type CreateDocumentRequest struct {
	Type          string           `json:"type"`
	AccountID     *string          `json:"account_id,omitempty"`
	Currency      string           `json:"currency"`
	Amount        decimal.Decimal  `json:"amount"`
	TotalDeducted *decimal.Decimal `json:"total_deducted,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateDocumentRequest) ToUseCaseInput() usecase.CreateDocumentInput {
	return usecase.CreateDocumentInput{
		Type:          domain.DocumentType(r.Type),
		AccountID:     r.AccountID,
		Currency:      r.Currency,
		Amount:        r.Amount,
		TotalDeducted: r.TotalDeducted,
	}
}

// ChangeStatusRequest represents a document status change.
type ChangeStatusRequest struct {
	Status string `json:"status"`
}

// UpdateAmountRequest represents an edit to a document's monetary fields.
type UpdateAmountRequest struct {
	Amount        decimal.Decimal  `json:"amount"`
	TotalDeducted *decimal.Decimal `json:"total_deducted,omitempty"`
	AccountID     *string          `json:"account_id,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *UpdateAmountRequest) ToUseCaseInput() usecase.UpdateAmountInput {
	return usecase.UpdateAmountInput{
		Amount:        r.Amount,
		TotalDeducted: r.TotalDeducted,
		AccountID:     r.AccountID,
	}
}

// PaginationRequest represents pagination parameters.
type PaginationRequest struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}
