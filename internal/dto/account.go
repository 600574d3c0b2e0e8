package dto

import (
	"time"

	"github.com/SscSPs/papermill_ledger/internal/core/domain"
	"github.com/SscSPs/papermill_ledger/internal/utils"
)

// AccountResponse defines the data returned for an account.
// Mirrors domain.Account.
type AccountResponse struct {
	AccountID       string              `json:"accountID"`
	Name            string              `json:"name"`
	AccountType     domain.AccountType  `json:"accountType"`
	Level           domain.AccountLevel `json:"level"`
	ParentAccountID string              `json:"parentAccountID"` // Note: Empty string for level 1
	OpeningBalance  string              `json:"openingBalance"`
	BalanceType     domain.BalanceType  `json:"balanceType"`
	IsActive        bool                `json:"isActive"`
	CreatedAt       time.Time           `json:"createdAt"`
	CreatedBy       string              `json:"createdBy"`
	LastUpdatedAt   time.Time           `json:"lastUpdatedAt"`
	LastUpdatedBy   string              `json:"lastUpdatedBy"`
}

// ToAccountResponse converts a domain.Account to AccountResponse DTO
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:       acc.AccountID,
		Name:            acc.Name,
		AccountType:     acc.AccountType,
		Level:           acc.Level,
		ParentAccountID: acc.ParentAccountID,
		OpeningBalance:  utils.FormatAmount(acc.OpeningBalance),
		BalanceType:     acc.BalanceType,
		IsActive:        acc.IsActive,
		CreatedAt:       acc.CreatedAt,
		CreatedBy:       acc.CreatedBy,
		LastUpdatedAt:   acc.LastUpdatedAt,
		LastUpdatedBy:   acc.LastUpdatedBy,
	}
}

// ToListAccountResponse converts a slice of domain.Account to a slice of AccountResponse DTOs
func ToListAccountResponse(accounts []domain.Account) []AccountResponse {
	res := make([]AccountResponse, len(accounts))
	for i, acc := range accounts {
		res[i] = ToAccountResponse(&acc)
	}
	return res
}

// ListAccountsParams defines query parameters for listing accounts.
type ListAccountsParams struct {
	AccountType string `form:"type" binding:"omitempty,accounttype"`
}

// ListAccountsResponse wraps the list of accounts.
type ListAccountsResponse struct {
	Accounts []AccountResponse `json:"accounts"`
}
