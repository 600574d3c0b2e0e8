package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/SscSPs/papermill_ledger/internal/apperrors"
	"github.com/SscSPs/papermill_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/papermill_ledger/internal/core/ports/services"
	"github.com/SscSPs/papermill_ledger/internal/core/services"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite Setup ---

type AccountServiceTestSuite struct {
	suite.Suite
	mockRepo  *MockAccountRepository
	mockCache *MockHierarchyCache
	service   portssvc.AccountSvcFacade
}

func (suite *AccountServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockAccountRepository)
	suite.mockCache = new(MockHierarchyCache)
	suite.service = services.NewAccountService(suite.mockRepo)
}

func group(id string) *domain.Account {
	return &domain.Account{AccountID: id, Name: id, AccountType: domain.General, Level: domain.LevelGroup, BalanceType: domain.DebitNormal}
}

func sub(id, parent string) domain.Account {
	return domain.Account{AccountID: id, Name: id, AccountType: domain.General, Level: domain.LevelSubGroup, ParentAccountID: parent, BalanceType: domain.DebitNormal}
}

func leaf(id, parent string, t domain.AccountType) domain.Account {
	bt := domain.DebitNormal
	if t == domain.Supplier || t == domain.Cash || t == domain.Bank {
		bt = domain.CreditNormal
	}
	return domain.Account{AccountID: id, Name: id, AccountType: t, Level: domain.LevelLeaf, ParentAccountID: parent, BalanceType: bt}
}

// --- Test Cases ---

func (suite *AccountServiceTestSuite) TestResolve_LeafIsItself() {
	ctx := context.Background()
	acc := leaf("CUST-1", "SG-1", domain.Customer)
	suite.mockRepo.On("FindAccountByID", ctx, "CUST-1").Return(&acc, nil).Once()

	scope, err := suite.service.Resolve(ctx, "CUST-1", domain.LevelLeaf)

	suite.Require().NoError(err)
	suite.Equal([]string{"CUST-1"}, scope.AccountIDs)
	suite.False(scope.IsAggregate)
	suite.Empty(scope.CashAccountID)
	suite.mockRepo.AssertNotCalled(suite.T(), "ListChildAccounts", mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestResolve_SubGroupIncludesLeaves() {
	ctx := context.Background()
	sg := sub("SG-1", "G-1")
	suite.mockRepo.On("FindAccountByID", ctx, "SG-1").Return(&sg, nil).Once()
	suite.mockRepo.On("ListChildAccounts", ctx, []string{"SG-1"}).Return([]domain.Account{
		leaf("CUST-2", "SG-1", domain.Customer),
		leaf("CUST-1", "SG-1", domain.Customer),
	}, nil).Once()

	scope, err := suite.service.Resolve(ctx, "SG-1", domain.LevelUnspecified)

	suite.Require().NoError(err)
	suite.Equal([]string{"CUST-1", "CUST-2", "SG-1"}, scope.AccountIDs)
	suite.True(scope.IsAggregate)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestResolve_GroupIncludesTwoLevels() {
	ctx := context.Background()
	suite.mockRepo.On("FindAccountByID", ctx, "G-1").Return(group("G-1"), nil).Once()
	suite.mockRepo.On("ListChildAccounts", ctx, []string{"G-1"}).Return([]domain.Account{
		sub("SG-1", "G-1"), sub("SG-2", "G-1"),
	}, nil).Once()
	suite.mockRepo.On("ListChildAccounts", ctx, []string{"SG-1", "SG-2"}).Return([]domain.Account{
		leaf("CASH-1", "SG-1", domain.Cash),
		leaf("BANK-1", "SG-2", domain.Bank),
	}, nil).Once()
	suite.mockRepo.On("ListAccounts", ctx, mock.Anything).Return([]domain.Account{
		leaf("CASH-1", "SG-1", domain.Cash),
	}, nil).Once()

	scope, err := suite.service.Resolve(ctx, "G-1", domain.LevelGroup)

	suite.Require().NoError(err)
	suite.Equal([]string{"BANK-1", "CASH-1", "G-1", "SG-1", "SG-2"}, scope.AccountIDs)
	suite.Equal("CASH-1", scope.CashAccountID)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestResolve_ConfiguredCashAccount() {
	ctx := context.Background()
	svc := services.NewAccountService(suite.mockRepo, services.WithCashAccountID("CASH-2"))
	sg := sub("SG-1", "G-1")
	suite.mockRepo.On("FindAccountByID", ctx, "SG-1").Return(&sg, nil)
	suite.mockRepo.On("ListChildAccounts", ctx, []string{"SG-1"}).Return([]domain.Account{
		leaf("CASH-1", "SG-1", domain.Cash),
		leaf("CASH-2", "SG-1", domain.Cash),
	}, nil)

	scope, err := svc.Resolve(ctx, "SG-1", domain.LevelUnspecified)

	suite.Require().NoError(err)
	suite.Equal("CASH-2", scope.CashAccountID)
	suite.mockRepo.AssertNotCalled(suite.T(), "ListAccounts", mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestResolve_OnlyOneCashLeafCarriesCashSide() {
	ctx := context.Background()
	cash1 := leaf("CASH-1", "SG-BOOKS", domain.Cash)
	cash2 := leaf("CASH-2", "SG-BOOKS", domain.Cash)
	suite.mockRepo.On("FindAccountByID", ctx, "CASH-1").Return(&cash1, nil)
	suite.mockRepo.On("FindAccountByID", ctx, "CASH-2").Return(&cash2, nil)
	suite.mockRepo.On("ListAccounts", ctx, mock.MatchedBy(func(t *domain.AccountType) bool {
		return t != nil && *t == domain.Cash
	})).Return([]domain.Account{cash2, cash1}, nil)

	first, err := suite.service.Resolve(ctx, "CASH-1", domain.LevelLeaf)
	suite.Require().NoError(err)
	second, err := suite.service.Resolve(ctx, "CASH-2", domain.LevelLeaf)
	suite.Require().NoError(err)

	suite.Equal("CASH-1", first.CashAccountID)
	suite.Empty(second.CashAccountID)
}

func (suite *AccountServiceTestSuite) TestResolve_CashLookupFailure() {
	ctx := context.Background()
	cash := leaf("CASH-1", "SG-BOOKS", domain.Cash)
	suite.mockRepo.On("FindAccountByID", ctx, "CASH-1").Return(&cash, nil).Once()
	suite.mockRepo.On("ListAccounts", ctx, mock.Anything).Return(nil, errors.New("connection reset")).Once()

	_, err := suite.service.Resolve(ctx, "CASH-1", domain.LevelLeaf)

	suite.Require().Error(err)
	suite.ErrorContains(err, "connection reset")
}

func (suite *AccountServiceTestSuite) TestResolve_NotFound() {
	ctx := context.Background()
	suite.mockRepo.On("FindAccountByID", ctx, "NOPE").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.Resolve(ctx, "NOPE", domain.LevelUnspecified)

	suite.Require().Error(err)
	suite.True(errors.Is(err, apperrors.ErrNotFound))
}

func (suite *AccountServiceTestSuite) TestResolve_LevelMismatchRejected() {
	ctx := context.Background()
	acc := leaf("CUST-1", "SG-1", domain.Customer)
	suite.mockRepo.On("FindAccountByID", ctx, "CUST-1").Return(&acc, nil).Once()

	_, err := suite.service.Resolve(ctx, "CUST-1", domain.LevelGroup)

	suite.Require().Error(err)
	suite.True(errors.Is(err, apperrors.ErrValidation))
}

func (suite *AccountServiceTestSuite) TestResolve_InvalidRequestedLevel() {
	_, err := suite.service.Resolve(context.Background(), "CUST-1", domain.AccountLevel(7))

	suite.Require().Error(err)
	suite.True(errors.Is(err, apperrors.ErrValidation))
	suite.mockRepo.AssertNotCalled(suite.T(), "FindAccountByID", mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestResolve_MissingStoredLevelIsAmbiguous() {
	ctx := context.Background()
	acc := domain.Account{AccountID: "X", AccountType: domain.General}
	suite.mockRepo.On("FindAccountByID", ctx, "X").Return(&acc, nil).Once()

	_, err := suite.service.Resolve(ctx, "X", domain.LevelUnspecified)

	suite.Require().Error(err)
	suite.True(errors.Is(err, apperrors.ErrAmbiguousLevel))
}

func (suite *AccountServiceTestSuite) TestResolve_ChildAtWrongDepthIsAmbiguous() {
	ctx := context.Background()
	suite.mockRepo.On("FindAccountByID", ctx, "G-1").Return(group("G-1"), nil).Once()
	suite.mockRepo.On("ListChildAccounts", ctx, []string{"G-1"}).Return([]domain.Account{
		leaf("CUST-1", "G-1", domain.Customer),
	}, nil).Once()

	_, err := suite.service.Resolve(ctx, "G-1", domain.LevelUnspecified)

	suite.Require().Error(err)
	suite.True(errors.Is(err, apperrors.ErrAmbiguousLevel))
}

func (suite *AccountServiceTestSuite) TestResolve_CacheHitSkipsRepository() {
	ctx := context.Background()
	svc := services.NewAccountService(suite.mockRepo, services.WithHierarchyCache(suite.mockCache))
	cached := &domain.AccountScope{Root: leaf("CUST-1", "SG-1", domain.Customer), AccountIDs: []string{"CUST-1"}}
	suite.mockCache.On("Get", ctx, "CUST-1", domain.LevelUnspecified).Return(cached, true, nil).Once()

	scope, err := svc.Resolve(ctx, "CUST-1", domain.LevelUnspecified)

	suite.Require().NoError(err)
	suite.Same(cached, scope)
	suite.mockRepo.AssertNotCalled(suite.T(), "FindAccountByID", mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestResolve_CacheFailureFallsBackAndStores() {
	ctx := context.Background()
	svc := services.NewAccountService(suite.mockRepo, services.WithHierarchyCache(suite.mockCache))
	acc := leaf("CUST-1", "SG-1", domain.Customer)
	suite.mockCache.On("Get", ctx, "CUST-1", domain.LevelLeaf).Return(nil, false, errors.New("redis down")).Once()
	suite.mockRepo.On("FindAccountByID", ctx, "CUST-1").Return(&acc, nil).Once()
	suite.mockCache.On("Set", ctx, mock.AnythingOfType("domain.AccountScope"), domain.LevelLeaf).Return(nil).Once()

	scope, err := svc.Resolve(ctx, "CUST-1", domain.LevelLeaf)

	suite.Require().NoError(err)
	suite.Equal([]string{"CUST-1"}, scope.AccountIDs)
	suite.mockCache.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestInvalidateAccount_WalksAncestors() {
	ctx := context.Background()
	svc := services.NewAccountService(suite.mockRepo, services.WithHierarchyCache(suite.mockCache))
	l := leaf("CUST-1", "SG-1", domain.Customer)
	sg := sub("SG-1", "G-1")
	suite.mockRepo.On("FindAccountByID", ctx, "CUST-1").Return(&l, nil).Once()
	suite.mockRepo.On("FindAccountByID", ctx, "SG-1").Return(&sg, nil).Once()
	suite.mockRepo.On("FindAccountByID", ctx, "G-1").Return(group("G-1"), nil).Once()
	suite.mockCache.On("Invalidate", ctx, []string{"CUST-1", "SG-1", "G-1"}).Return(nil).Once()

	err := svc.InvalidateAccount(ctx, "CUST-1")

	suite.Require().NoError(err)
	suite.mockCache.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestInvalidateAccount_DeletedAccountStillInvalidated() {
	ctx := context.Background()
	svc := services.NewAccountService(suite.mockRepo, services.WithHierarchyCache(suite.mockCache))
	suite.mockRepo.On("FindAccountByID", ctx, "GONE").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockCache.On("Invalidate", ctx, []string{"GONE"}).Return(nil).Once()

	suite.Require().NoError(svc.InvalidateAccount(ctx, "GONE"))
	suite.mockCache.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestListAccounts_RejectsUnknownType() {
	bad := domain.AccountType("ASSET")

	_, err := suite.service.ListAccounts(context.Background(), &bad)

	suite.Require().Error(err)
	suite.True(errors.Is(err, apperrors.ErrValidation))
}

func (suite *AccountServiceTestSuite) TestListChildren() {
	ctx := context.Background()
	sg := sub("SG-1", "G-1")
	children := []domain.Account{leaf("CUST-1", "SG-1", domain.Customer)}
	suite.mockRepo.On("FindAccountByID", ctx, "SG-1").Return(&sg, nil).Once()
	suite.mockRepo.On("ListChildAccounts", ctx, []string{"SG-1"}).Return(children, nil).Once()

	got, err := suite.service.ListChildren(ctx, "SG-1")

	suite.Require().NoError(err)
	suite.Equal(children, got)
}

// --- Run Test Suite ---

func TestAccountServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}
