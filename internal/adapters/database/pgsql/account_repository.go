package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/papermill_ledger/internal/apperrors"
	"github.com/SscSPs/papermill_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/papermill_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/papermill_ledger/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxAccountRepository struct {
	BaseRepository
}

// newPgxAccountRepository creates a new repository for account data.
func newPgxAccountRepository(pool *pgxpool.Pool) portsrepo.AccountRepositoryFacade {
	return &PgxAccountRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxAccountRepository implements portsrepo.AccountRepositoryFacade
var _ portsrepo.AccountRepositoryFacade = (*PgxAccountRepository)(nil)

const accountColumns = `account_id, name, account_type, level, parent_account_id, opening_balance, balance_type, is_active, created_at, created_by, last_updated_at, last_updated_by`

// Helper to convert models.Account from DB to domain.Account
func toDomainAccount(m models.Account) domain.Account {
	return domain.Account{
		AccountID:       m.AccountID,
		Name:            m.Name,
		AccountType:     domain.AccountType(m.AccountType),
		Level:           domain.AccountLevel(m.Level),
		ParentAccountID: m.ParentAccountID.String,
		OpeningBalance:  m.OpeningBalance,
		BalanceType:     domain.BalanceType(m.BalanceType),
		IsActive:        m.IsActive,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

func scanAccount(row pgx.Row) (domain.Account, error) {
	var m models.Account
	err := row.Scan(
		&m.AccountID,
		&m.Name,
		&m.AccountType,
		&m.Level,
		&m.ParentAccountID,
		&m.OpeningBalance,
		&m.BalanceType,
		&m.IsActive,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return domain.Account{}, err
	}
	return toDomainAccount(m), nil
}

// FindAccountByID retrieves an account by its ID.
func (r *PgxAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE account_id = $1;`

	acc, err := scanAccount(r.Pool.QueryRow(ctx, query, accountID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find account by ID %s: %w", accountID, err)
	}
	return &acc, nil
}

// FindAccountsByIDs retrieves multiple accounts by their IDs.
func (r *PgxAccountRepository) FindAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.Account, error) {
	if len(accountIDs) == 0 {
		return map[string]domain.Account{}, nil
	}

	query := `SELECT ` + accountColumns + ` FROM accounts WHERE account_id = ANY($1);`
	accounts, err := r.queryAccounts(ctx, query, accountIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts by IDs: %w", err)
	}

	accountsMap := make(map[string]domain.Account, len(accounts))
	for _, acc := range accounts {
		accountsMap[acc.AccountID] = acc
	}
	return accountsMap, nil
}

// ListAccounts retrieves the chart of accounts, optionally restricted to one account type.
func (r *PgxAccountRepository) ListAccounts(ctx context.Context, accountType *domain.AccountType) ([]domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts`
	var args []any
	if accountType != nil {
		query += ` WHERE account_type = $1`
		args = append(args, string(*accountType))
	}
	query += ` ORDER BY level, account_id;`

	accounts, err := r.queryAccounts(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	return accounts, nil
}

// ListChildAccounts retrieves the direct children of the given parents.
func (r *PgxAccountRepository) ListChildAccounts(ctx context.Context, parentIDs []string) ([]domain.Account, error) {
	if len(parentIDs) == 0 {
		return []domain.Account{}, nil
	}
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE parent_account_id = ANY($1) ORDER BY account_id;`

	accounts, err := r.queryAccounts(ctx, query, parentIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to list child accounts: %w", err)
	}
	return accounts, nil
}

func (r *PgxAccountRepository) queryAccounts(ctx context.Context, query string, args ...any) ([]domain.Account, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	accounts := []domain.Account{}
	for rows.Next() {
		acc, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account row: %w", err)
		}
		accounts = append(accounts, acc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating account rows: %w", err)
	}
	return accounts, nil
}
