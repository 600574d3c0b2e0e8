package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/papermill_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/papermill_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/papermill_ledger/internal/models"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxTradeRepository reads gate entries and gate returns with their pricing.
type PgxTradeRepository struct {
	BaseRepository
}

func newPgxTradeRepository(pool *pgxpool.Pool) portsrepo.TradeReader {
	return &PgxTradeRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.TradeReader = (*PgxTradeRepository)(nil)

// FindTradeEntries returns priced gate entries. The inner join on gate_entry_pricing leaves
// out entries that have not been priced yet.
func (r *PgxTradeRepository) FindTradeEntries(ctx context.Context, accountIDs []string, rng domain.DateRange) ([]domain.TradeEntry, error) {
	if len(accountIDs) == 0 {
		return []domain.TradeEntry{}, nil
	}
	args := []any{accountIDs}
	filter, args := dateFilter("ge.entry_date", rng, args)
	query := `
		SELECT ge.entry_id, ge.grn_number, ge.entry_type, ge.account_id, ge.entry_date,
			ge.item_name, ge.description, ge.quantity, ge.deduction, ge.final_quantity,
			gp.unit_price, gp.total_amount
		FROM gate_entries ge
		JOIN gate_entry_pricing gp ON gp.entry_id = ge.entry_id
		WHERE ge.account_id = ANY($1)
			AND ge.entry_type IN ('PURCHASE_IN', 'SALE_OUT')` + filter + `
		ORDER BY ge.entry_date, ge.entry_id;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query gate entries: %w", err)
	}
	defer rows.Close()

	entries := []domain.TradeEntry{}
	for rows.Next() {
		var m models.GateEntry
		if err := rows.Scan(
			&m.EntryID,
			&m.GRNNumber,
			&m.EntryType,
			&m.AccountID,
			&m.EntryDate,
			&m.ItemName,
			&m.Description,
			&m.Quantity,
			&m.Deduction,
			&m.FinalQuantity,
			&m.UnitPrice,
			&m.TotalAmount,
		); err != nil {
			return nil, fmt.Errorf("failed to scan gate entry: %w", err)
		}
		entries = append(entries, domain.TradeEntry{
			EntryID:       m.EntryID,
			GRNNumber:     m.GRNNumber,
			EntryType:     domain.GateEntryType(m.EntryType),
			AccountID:     m.AccountID,
			EntryDate:     m.EntryDate,
			ItemName:      m.ItemName.String,
			Description:   m.Description.String,
			Quantity:      m.Quantity,
			Deduction:     m.Deduction,
			FinalQuantity: m.FinalQuantity,
			UnitPrice:     m.UnitPrice,
			TotalAmount:   m.TotalAmount,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating gate entries: %w", err)
	}
	return entries, nil
}

// FindTradeReturns returns gate returns of entries belonging to the given accounts, joined
// to the original entry for its account and unit price. The return's own date is filtered.
func (r *PgxTradeRepository) FindTradeReturns(ctx context.Context, accountIDs []string, rng domain.DateRange) ([]domain.TradeReturn, error) {
	if len(accountIDs) == 0 {
		return []domain.TradeReturn{}, nil
	}
	args := []any{accountIDs}
	filter, args := dateFilter("gr.return_date", rng, args)
	query := `
		SELECT gr.return_id, gr.return_grn, gr.return_type, gr.return_date, gr.quantity, gr.description,
			ge.entry_id, ge.grn_number, ge.account_id, gp.unit_price
		FROM gate_returns gr
		JOIN gate_entries ge ON ge.entry_id = gr.original_entry_id
		JOIN gate_entry_pricing gp ON gp.entry_id = ge.entry_id
		WHERE ge.account_id = ANY($1)` + filter + `
		ORDER BY gr.return_date, gr.return_id;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query gate returns: %w", err)
	}
	defer rows.Close()

	returns := []domain.TradeReturn{}
	for rows.Next() {
		var m models.GateReturn
		if err := rows.Scan(
			&m.ReturnID,
			&m.ReturnGRN,
			&m.ReturnType,
			&m.ReturnDate,
			&m.Quantity,
			&m.Description,
			&m.OriginalEntryID,
			&m.OriginalGRN,
			&m.AccountID,
			&m.UnitPrice,
		); err != nil {
			return nil, fmt.Errorf("failed to scan gate return: %w", err)
		}
		returns = append(returns, domain.TradeReturn{
			ReturnID:        m.ReturnID,
			ReturnGRN:       m.ReturnGRN.String,
			ReturnType:      domain.ReturnType(m.ReturnType),
			ReturnDate:      m.ReturnDate,
			Quantity:        m.Quantity,
			Description:     m.Description.String,
			OriginalEntryID: m.OriginalEntryID,
			OriginalGRN:     m.OriginalGRN,
			AccountID:       m.AccountID,
			UnitPrice:       m.UnitPrice,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating gate returns: %w", err)
	}
	return returns, nil
}
