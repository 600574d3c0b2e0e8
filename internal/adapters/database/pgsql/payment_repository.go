package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/papermill_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/papermill_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/papermill_ledger/internal/models"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxPaymentRepository reads the payments table.
type PgxPaymentRepository struct {
	BaseRepository
}

func newPgxPaymentRepository(pool *pgxpool.Pool) portsrepo.PaymentReader {
	return &PgxPaymentRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.PaymentReader = (*PgxPaymentRepository)(nil)

const paymentColumns = `payment_id, account_id, payment_type, payment_mode, amount, bank_account_id, reference_no, description, payment_date`

// FindPaymentsByAccounts returns payments of every mode made to or by the given accounts.
// Mode filtering is left to the caller.
func (r *PgxPaymentRepository) FindPaymentsByAccounts(ctx context.Context, accountIDs []string, rng domain.DateRange) ([]domain.Payment, error) {
	if len(accountIDs) == 0 {
		return []domain.Payment{}, nil
	}
	args := []any{accountIDs}
	filter, args := dateFilter("payment_date", rng, args)
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE account_id = ANY($1)` + filter + ` ORDER BY payment_date, payment_id;`

	payments, err := r.queryPayments(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query payments by account: %w", err)
	}
	return payments, nil
}

// FindPaymentsByMode returns every payment of one mode, regardless of counterparty.
func (r *PgxPaymentRepository) FindPaymentsByMode(ctx context.Context, mode domain.PaymentMode, rng domain.DateRange) ([]domain.Payment, error) {
	args := []any{string(mode)}
	filter, args := dateFilter("payment_date", rng, args)
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE payment_mode = $1` + filter + ` ORDER BY payment_date, payment_id;`

	payments, err := r.queryPayments(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s payments: %w", mode, err)
	}
	return payments, nil
}

func (r *PgxPaymentRepository) queryPayments(ctx context.Context, query string, args ...any) ([]domain.Payment, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	payments := []domain.Payment{}
	for rows.Next() {
		var m models.Payment
		if err := rows.Scan(
			&m.PaymentID,
			&m.AccountID,
			&m.PaymentType,
			&m.PaymentMode,
			&m.Amount,
			&m.BankAccountID,
			&m.ReferenceNo,
			&m.Description,
			&m.PaymentDate,
		); err != nil {
			return nil, fmt.Errorf("failed to scan payment: %w", err)
		}
		payments = append(payments, domain.Payment{
			PaymentID:     m.PaymentID,
			AccountID:     m.AccountID,
			PaymentType:   domain.PaymentType(m.PaymentType),
			PaymentMode:   domain.PaymentMode(m.PaymentMode),
			Amount:        m.Amount,
			BankAccountID: m.BankAccountID.String,
			ReferenceNo:   m.ReferenceNo.String,
			Description:   m.Description.String,
			PaymentDate:   m.PaymentDate,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating payments: %w", err)
	}
	return payments, nil
}
