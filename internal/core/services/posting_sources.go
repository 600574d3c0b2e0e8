package services

import (
	"context"
	"fmt"

	"github.com/SscSPs/papermill_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/papermill_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/papermill_ledger/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// tradeSource posts priced gate entries: a purchase is owed to the supplier (CREDIT),
// a sale is owed by the customer (DEBIT).
type tradeSource struct {
	repo portsrepo.TradeReader
}

// NewTradeSource creates the posting source for gate entries.
func NewTradeSource(repo portsrepo.TradeReader) portssvc.PostingSource {
	return &tradeSource{repo: repo}
}

func (s *tradeSource) Name() domain.SourceName { return domain.SourceNameTrade }

func (s *tradeSource) Fetch(ctx context.Context, scope domain.AccountScope, rng domain.DateRange) ([]domain.Posting, error) {
	entries, err := s.repo.FindTradeEntries(ctx, scope.AccountIDs, rng)
	if err != nil {
		return nil, fmt.Errorf("failed to read gate entries: %w", err)
	}

	postings := make([]domain.Posting, 0, len(entries))
	for _, e := range entries {
		if err := checkAmount(e.TotalAmount, "gate entry", e.EntryID); err != nil {
			return nil, err
		}
		p := domain.Posting{
			AccountID:   e.AccountID,
			Date:        e.EntryDate,
			Amount:      e.TotalAmount,
			ReferenceNo: e.GRNNumber,
			Description: describe(e.ItemName, e.Description),
			Quantity:    decimalPtr(e.Quantity),
			Deduction:   decimalPtr(e.Deduction),
			NetQuantity: decimalPtr(e.FinalQuantity),
			UnitPrice:   decimalPtr(e.UnitPrice),
			RowID:       e.EntryID,
		}
		switch e.EntryType {
		case domain.PurchaseIn:
			p.SourceType, p.EntryType = domain.SourcePurchase, domain.Credit
		case domain.SaleOut:
			p.SourceType, p.EntryType = domain.SourceSale, domain.Debit
		default:
			return nil, fmt.Errorf("gate entry %d has unknown entry type %q", e.EntryID, e.EntryType)
		}
		postings = append(postings, p)
	}
	return postings, nil
}

// returnSource reverses part of an original gate entry, priced at the original unit price.
type returnSource struct {
	repo portsrepo.TradeReader
}

// NewReturnSource creates the posting source for gate returns.
func NewReturnSource(repo portsrepo.TradeReader) portssvc.PostingSource {
	return &returnSource{repo: repo}
}

func (s *returnSource) Name() domain.SourceName { return domain.SourceNameReturn }

func (s *returnSource) Fetch(ctx context.Context, scope domain.AccountScope, rng domain.DateRange) ([]domain.Posting, error) {
	returns, err := s.repo.FindTradeReturns(ctx, scope.AccountIDs, rng)
	if err != nil {
		return nil, fmt.Errorf("failed to read gate returns: %w", err)
	}

	postings := make([]domain.Posting, 0, len(returns))
	for _, r := range returns {
		amount := r.Quantity.Mul(r.UnitPrice)
		if err := checkAmount(amount, "gate return", r.ReturnID); err != nil {
			return nil, err
		}
		ref := r.ReturnGRN
		if ref == "" {
			ref = r.OriginalGRN
		}
		p := domain.Posting{
			AccountID:   r.AccountID,
			Date:        r.ReturnDate,
			Amount:      amount,
			ReferenceNo: ref,
			Description: describe(fmt.Sprintf("Return against GRN %s", r.OriginalGRN), r.Description),
			Quantity:    decimalPtr(r.Quantity),
			NetQuantity: decimalPtr(r.Quantity),
			UnitPrice:   decimalPtr(r.UnitPrice),
			RowID:       r.ReturnID,
		}
		switch r.ReturnType {
		case domain.PurchaseReturn:
			p.SourceType, p.EntryType = domain.SourcePurchaseReturn, domain.Debit
		case domain.SaleReturn:
			p.SourceType, p.EntryType = domain.SourceSaleReturn, domain.Credit
		default:
			return nil, fmt.Errorf("gate return %d has unknown return type %q", r.ReturnID, r.ReturnType)
		}
		postings = append(postings, p)
	}
	return postings, nil
}

// paymentSource posts cash and cheque payments against the counterparty and, when the
// cash account is in scope, cash payments against the cash book.
//
// ONLINE payments are never posted here: they are mirrored in bank_transactions and the
// bank source is their only source.
type paymentSource struct {
	repo portsrepo.PaymentReader
}

// NewPaymentSource creates the posting source for the payments table.
func NewPaymentSource(repo portsrepo.PaymentReader) portssvc.PostingSource {
	return &paymentSource{repo: repo}
}

func (s *paymentSource) Name() domain.SourceName { return domain.SourceNamePayment }

func (s *paymentSource) Fetch(ctx context.Context, scope domain.AccountScope, rng domain.DateRange) ([]domain.Posting, error) {
	payments, err := s.repo.FindPaymentsByAccounts(ctx, scope.AccountIDs, rng)
	if err != nil {
		return nil, fmt.Errorf("failed to read payments: %w", err)
	}

	postings := make([]domain.Posting, 0, len(payments))
	for _, pm := range payments {
		if pm.PaymentMode == domain.PaymentModeOnline {
			continue
		}
		p, err := paymentPosting(pm, pm.AccountID)
		if err != nil {
			return nil, err
		}
		postings = append(postings, p)
	}

	if scope.CashAccountID == "" {
		return postings, nil
	}

	cashPayments, err := s.repo.FindPaymentsByMode(ctx, domain.PaymentModeCash, rng)
	if err != nil {
		return nil, fmt.Errorf("failed to read cash payments: %w", err)
	}
	for _, pm := range cashPayments {
		if pm.PaymentMode != domain.PaymentModeCash {
			continue
		}
		// Cash book convention: CREDIT is money in, which matches the counterparty side.
		p, err := paymentPosting(pm, scope.CashAccountID)
		if err != nil {
			return nil, err
		}
		postings = append(postings, p)
	}
	return postings, nil
}

func paymentPosting(pm domain.Payment, accountID string) (domain.Posting, error) {
	if err := checkAmount(pm.Amount, "payment", pm.PaymentID); err != nil {
		return domain.Posting{}, err
	}
	p := domain.Posting{
		AccountID:   accountID,
		Date:        pm.PaymentDate,
		Amount:      pm.Amount,
		ReferenceNo: pm.ReferenceNo,
		Description: describe(fmt.Sprintf("%s payment", pm.PaymentMode), pm.Description),
		RowID:       pm.PaymentID,
	}
	switch pm.PaymentType {
	case domain.PaymentReceived:
		p.SourceType, p.EntryType = domain.SourcePaymentReceived, domain.Credit
	case domain.PaymentIssued:
		p.SourceType, p.EntryType = domain.SourcePaymentIssued, domain.Debit
	default:
		return domain.Posting{}, fmt.Errorf("payment %d has unknown payment type %q", pm.PaymentID, pm.PaymentType)
	}
	return p, nil
}

// bankSource posts bank_transactions rows against the bank account and against the
// counterparty when either is in scope. The row type carries over unchanged, except for
// cash-book counterparties (cash deposited to or withdrawn from the bank), which see the
// opposite movement.
type bankSource struct {
	repo portsrepo.BankTransactionReader
}

// NewBankSource creates the posting source for bank transactions.
func NewBankSource(repo portsrepo.BankTransactionReader) portssvc.PostingSource {
	return &bankSource{repo: repo}
}

func (s *bankSource) Name() domain.SourceName { return domain.SourceNameBank }

func (s *bankSource) Fetch(ctx context.Context, scope domain.AccountScope, rng domain.DateRange) ([]domain.Posting, error) {
	rows, err := s.repo.FindBankTransactions(ctx, scope.AccountIDs, rng)
	if err != nil {
		return nil, fmt.Errorf("failed to read bank transactions: %w", err)
	}

	postings := make([]domain.Posting, 0, len(rows))
	for _, r := range rows {
		if err := checkAmount(r.Amount, "bank transaction", r.TransactionID); err != nil {
			return nil, err
		}
		var source domain.SourceType
		switch r.Type {
		case domain.Credit:
			source = domain.SourceBankCredit
		case domain.Debit:
			source = domain.SourceBankDebit
		default:
			return nil, fmt.Errorf("bank transaction %d has unknown type %q", r.TransactionID, r.Type)
		}

		base := domain.Posting{
			Date:        r.TransactionDate,
			SourceType:  source,
			Amount:      r.Amount,
			ReferenceNo: r.ReferenceNo,
			Description: r.Description,
			RowID:       r.TransactionID,
		}

		if scope.Contains(r.BankAccountID) {
			p := base
			p.AccountID = r.BankAccountID
			p.EntryType = r.Type
			p.BalanceAfter = decimalPtr(r.BalanceAfter)
			postings = append(postings, p)
		}
		if r.CounterpartyAccountID != "" && r.CounterpartyAccountID != r.BankAccountID && scope.Contains(r.CounterpartyAccountID) {
			p := base
			p.AccountID = r.CounterpartyAccountID
			p.EntryType = r.Type
			if scope.Accounts[r.CounterpartyAccountID].IsCashBook() {
				p.EntryType = opposite(r.Type)
			}
			postings = append(postings, p)
		}
	}
	return postings, nil
}

// expenseSource posts every expense as a DEBIT (money out) of the cash book. Expenses are
// not tied to a counterparty, so they only appear in ledgers containing the cash account.
type expenseSource struct {
	repo portsrepo.ExpenseReader
}

// NewExpenseSource creates the posting source for the expenses table.
func NewExpenseSource(repo portsrepo.ExpenseReader) portssvc.PostingSource {
	return &expenseSource{repo: repo}
}

func (s *expenseSource) Name() domain.SourceName { return domain.SourceNameExpense }

func (s *expenseSource) Fetch(ctx context.Context, scope domain.AccountScope, rng domain.DateRange) ([]domain.Posting, error) {
	if scope.CashAccountID == "" {
		return nil, nil
	}
	expenses, err := s.repo.FindExpenses(ctx, rng)
	if err != nil {
		return nil, fmt.Errorf("failed to read expenses: %w", err)
	}

	postings := make([]domain.Posting, 0, len(expenses))
	for _, e := range expenses {
		if err := checkAmount(e.Amount, "expense", e.ExpenseID); err != nil {
			return nil, err
		}
		postings = append(postings, domain.Posting{
			AccountID:   scope.CashAccountID,
			Date:        e.ExpenseDate,
			SourceType:  domain.SourceExpense,
			EntryType:   domain.Debit,
			Amount:      e.Amount,
			ReferenceNo: e.ReferenceNo,
			Description: describe(e.Category, e.Description),
			RowID:       e.ExpenseID,
		})
	}
	return postings, nil
}

// DefaultPostingSources returns every posting source backed by the given repositories.
func DefaultPostingSources(repos portsrepo.RepositoryProvider) []portssvc.PostingSource {
	return []portssvc.PostingSource{
		NewTradeSource(repos.TradeRepo),
		NewReturnSource(repos.TradeRepo),
		NewPaymentSource(repos.PaymentRepo),
		NewBankSource(repos.BankRepo),
		NewExpenseSource(repos.ExpenseRepo),
	}
}

func checkAmount(amount decimal.Decimal, kind string, rowID int64) error {
	if amount.IsNegative() {
		return fmt.Errorf("%s %d has negative amount %s", kind, rowID, amount)
	}
	return nil
}

func opposite(t domain.EntryType) domain.EntryType {
	if t == domain.Debit {
		return domain.Credit
	}
	return domain.Debit
}

func describe(primary, detail string) string {
	switch {
	case primary == "":
		return detail
	case detail == "":
		return primary
	default:
		return primary + " - " + detail
	}
}

func decimalPtr(d decimal.Decimal) *decimal.Decimal {
	return &d
}
