package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/papermill_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/papermill_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/papermill_ledger/internal/models"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxExpenseRepository reads the expenses table.
type PgxExpenseRepository struct {
	BaseRepository
}

func newPgxExpenseRepository(pool *pgxpool.Pool) portsrepo.ExpenseReader {
	return &PgxExpenseRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ExpenseReader = (*PgxExpenseRepository)(nil)

// FindExpenses returns all expenses in the range.
func (r *PgxExpenseRepository) FindExpenses(ctx context.Context, rng domain.DateRange) ([]domain.Expense, error) {
	filter, args := dateFilter("expense_date", rng, nil)
	query := `
		SELECT expense_id, category, amount, reference_no, description, expense_date
		FROM expenses
		WHERE TRUE` + filter + `
		ORDER BY expense_date, expense_id;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query expenses: %w", err)
	}
	defer rows.Close()

	expenses := []domain.Expense{}
	for rows.Next() {
		var m models.Expense
		if err := rows.Scan(
			&m.ExpenseID,
			&m.Category,
			&m.Amount,
			&m.ReferenceNo,
			&m.Description,
			&m.ExpenseDate,
		); err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		expenses = append(expenses, domain.Expense{
			ExpenseID:   m.ExpenseID,
			Category:    m.Category,
			Amount:      m.Amount,
			ReferenceNo: m.ReferenceNo.String,
			Description: m.Description.String,
			ExpenseDate: m.ExpenseDate,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating expenses: %w", err)
	}
	return expenses, nil
}
