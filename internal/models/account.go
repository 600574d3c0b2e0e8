package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// AuditFields mirrors the audit columns shared by master tables.
type AuditFields struct {
	CreatedAt     time.Time `db:"created_at"`
	CreatedBy     string    `db:"created_by"`
	LastUpdatedAt time.Time `db:"last_updated_at"`
	LastUpdatedBy string    `db:"last_updated_by"`
}

// Account is a row of the accounts table (chart of accounts).
type Account struct {
	AccountID       string          `db:"account_id"`
	Name            string          `db:"name"`
	AccountType     string          `db:"account_type"`
	Level           int16           `db:"level"`
	ParentAccountID sql.NullString  `db:"parent_account_id"` // NULL for level 1
	OpeningBalance  decimal.Decimal `db:"opening_balance"`
	BalanceType     string          `db:"balance_type"`
	IsActive        bool            `db:"is_active"`
	AuditFields
}
