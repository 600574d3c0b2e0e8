package accounting

import (
	"fmt"

	"github.com/SscSPs/papermill_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SignedAmount applies the correct sign to a posting amount based on the normal side of
// the account it is folded into.
//
//	DEBIT-normal:  DEBIT -> +, CREDIT -> -
//	CREDIT-normal: CREDIT -> +, DEBIT -> -
func SignedAmount(p domain.Posting, balanceType domain.BalanceType) (decimal.Decimal, error) {
	if p.Amount.IsNegative() {
		return decimal.Zero, fmt.Errorf("posting %s/%d has negative amount %s", p.SourceType, p.RowID, p.Amount)
	}
	var isDebit bool
	switch p.EntryType {
	case domain.Debit:
		isDebit = true
	case domain.Credit:
	default:
		return decimal.Zero, fmt.Errorf("unknown entry type '%s' on posting %s/%d", p.EntryType, p.SourceType, p.RowID)
	}

	switch balanceType {
	case domain.DebitNormal:
		if isDebit {
			return p.Amount, nil
		}
		return p.Amount.Neg(), nil
	case domain.CreditNormal:
		if isDebit {
			return p.Amount.Neg(), nil
		}
		return p.Amount, nil
	default:
		return decimal.Zero, fmt.Errorf("unknown balance type '%s'", balanceType)
	}
}

// OpeningSeed sums the stored opening balances of every account in scope, expressed on the
// normal side of the root. An account whose normal side differs from the root's
// contributes its opening balance negated.
func OpeningSeed(scope domain.AccountScope) decimal.Decimal {
	seed := decimal.Zero
	for _, id := range scope.AccountIDs {
		acc := scope.Accounts[id]
		if acc.BalanceType == scope.Root.BalanceType || acc.BalanceType == "" {
			seed = seed.Add(acc.OpeningBalance)
		} else {
			seed = seed.Sub(acc.OpeningBalance)
		}
	}
	return seed
}

// ComputeBalances folds the opening postings into a single opening balance, then walks the
// period postings in order attaching a running balance to each one. Both slices must
// already be in chronological order. The input slices are not modified.
func ComputeBalances(seed decimal.Decimal, openingPostings, periodPostings []domain.Posting, balanceType domain.BalanceType) (domain.LedgerResult, error) {
	opening := seed
	for _, p := range openingPostings {
		delta, err := SignedAmount(p, balanceType)
		if err != nil {
			return domain.LedgerResult{}, err
		}
		opening = opening.Add(delta)
	}

	result := domain.LedgerResult{
		OpeningBalance: opening,
		Transactions:   make([]domain.Posting, len(periodPostings)),
		TotalDebit:     decimal.Zero,
		TotalCredit:    decimal.Zero,
	}

	running := opening
	for i, p := range periodPostings {
		delta, err := SignedAmount(p, balanceType)
		if err != nil {
			return domain.LedgerResult{}, err
		}
		running = running.Add(delta)
		p.RunningBalance = running
		result.Transactions[i] = p

		if p.EntryType == domain.Debit {
			result.TotalDebit = result.TotalDebit.Add(p.Amount)
		} else {
			result.TotalCredit = result.TotalCredit.Add(p.Amount)
		}
	}

	result.ClosingBalance = opening.Add(NetOfTotals(result.TotalDebit, result.TotalCredit, balanceType))
	return result, nil
}

// NetOfTotals returns the sign-adjusted net effect of period totals.
func NetOfTotals(totalDebit, totalCredit decimal.Decimal, balanceType domain.BalanceType) decimal.Decimal {
	if balanceType == domain.DebitNormal {
		return totalDebit.Sub(totalCredit)
	}
	return totalCredit.Sub(totalDebit)
}

// ToStatementBalance converts a balance on the given normal side into the bank-statement
// convention (credits minus debits) used by bank_transactions.balance_after.
func ToStatementBalance(balance decimal.Decimal, balanceType domain.BalanceType) decimal.Decimal {
	if balanceType == domain.DebitNormal {
		return balance.Neg()
	}
	return balance
}

// SplitColumns places a signed balance in the Debit or Credit column of a trial balance.
func SplitColumns(balance decimal.Decimal, balanceType domain.BalanceType) (debit, credit decimal.Decimal) {
	debit, credit = decimal.Zero, decimal.Zero
	positive := !balance.IsNegative()
	abs := balance.Abs()
	switch {
	case balanceType == domain.DebitNormal && positive, balanceType == domain.CreditNormal && !positive:
		debit = abs
	default:
		credit = abs
	}
	return debit, credit
}
