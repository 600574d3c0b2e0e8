package domain_test

import (
	"testing"

	"github.com/SscSPs/papermill_ledger/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestAccountType_Valid(t *testing.T) {
	for _, at := range []domain.AccountType{
		domain.Supplier, domain.Customer, domain.Vendor, domain.Bank,
		domain.Cash, domain.ExpenseAccount, domain.General,
	} {
		assert.True(t, at.Valid(), at)
	}
	assert.Equal(t, domain.AccountType("EXPENSE"), domain.ExpenseAccount)
	assert.False(t, domain.AccountType("ASSET").Valid())
	assert.False(t, domain.AccountType("").Valid())
}

func TestAccount_IsCashBook(t *testing.T) {
	assert.True(t, domain.Account{AccountType: domain.Cash}.IsCashBook())
	assert.True(t, domain.Account{AccountType: domain.Bank}.IsCashBook())
	assert.False(t, domain.Account{AccountType: domain.ExpenseAccount}.IsCashBook())
}
