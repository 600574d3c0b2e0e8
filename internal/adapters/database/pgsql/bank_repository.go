package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/papermill_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/papermill_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/papermill_ledger/internal/models"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxBankRepository reads the bank_transactions table.
type PgxBankRepository struct {
	BaseRepository
}

func newPgxBankRepository(pool *pgxpool.Pool) portsrepo.BankTransactionReader {
	return &PgxBankRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.BankTransactionReader = (*PgxBankRepository)(nil)

// FindBankTransactions returns rows whose bank account or counterparty is one of accountIDs.
func (r *PgxBankRepository) FindBankTransactions(ctx context.Context, accountIDs []string, rng domain.DateRange) ([]domain.BankTransaction, error) {
	if len(accountIDs) == 0 {
		return []domain.BankTransaction{}, nil
	}
	args := []any{accountIDs}
	filter, args := dateFilter("transaction_date", rng, args)
	query := `
		SELECT transaction_id, bank_account_id, counterparty_account_id, payment_id, transaction_type,
			amount, balance_after, reference_no, description, transaction_date
		FROM bank_transactions
		WHERE (bank_account_id = ANY($1) OR counterparty_account_id = ANY($1))` + filter + `
		ORDER BY transaction_date, transaction_id;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query bank transactions: %w", err)
	}
	defer rows.Close()

	txns := []domain.BankTransaction{}
	for rows.Next() {
		var m models.BankTransaction
		if err := rows.Scan(
			&m.TransactionID,
			&m.BankAccountID,
			&m.CounterpartyAccountID,
			&m.PaymentID,
			&m.TransactionType,
			&m.Amount,
			&m.BalanceAfter,
			&m.ReferenceNo,
			&m.Description,
			&m.TransactionDate,
		); err != nil {
			return nil, fmt.Errorf("failed to scan bank transaction: %w", err)
		}
		txn := domain.BankTransaction{
			TransactionID:         m.TransactionID,
			BankAccountID:         m.BankAccountID,
			CounterpartyAccountID: m.CounterpartyAccountID.String,
			Type:                  domain.EntryType(m.TransactionType),
			Amount:                m.Amount,
			BalanceAfter:          m.BalanceAfter,
			ReferenceNo:           m.ReferenceNo.String,
			Description:           m.Description.String,
			TransactionDate:       m.TransactionDate,
		}
		if m.PaymentID.Valid {
			id := m.PaymentID.Int64
			txn.PaymentID = &id
		}
		txns = append(txns, txn)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating bank transactions: %w", err)
	}
	return txns, nil
}
