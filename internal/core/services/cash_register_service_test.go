package services_test

import (
	"context"
	"testing"

	"github.com/parkwise/parking_cash_app/internal/apperrors"
	"github.com/parkwise/parking_cash_app/internal/core/domain"
	portssvc "github.com/parkwise/parking_cash_app/internal/core/ports/services"
	"github.com/parkwise/parking_cash_app/internal/core/services"
	"github.com/parkwise/parking_cash_app/internal/dto"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite ---

type CashRegisterServiceTestSuite struct {
	suite.Suite
	mockRegisterRepo *MockCashRegisterRepository
	mockItemRepo     *MockCashItemRepository
	service          portssvc.CashRegisterSvcFacade

	coin100  domain.CashItem
	note500  domain.CashItem
	note1000 domain.CashItem
}

func (suite *CashRegisterServiceTestSuite) SetupTest() {
	suite.mockRegisterRepo = new(MockCashRegisterRepository)
	suite.mockItemRepo = new(MockCashItemRepository)
	suite.service = services.NewCashRegisterService(suite.mockRegisterRepo, suite.mockItemRepo)

	suite.coin100 = domain.CashItem{CashItemID: "item-100", CashType: domain.Coin, Value: 100}
	suite.note500 = domain.CashItem{CashItemID: "item-500", CashType: domain.Note, Value: 500}
	suite.note1000 = domain.CashItem{CashItemID: "item-1000", CashType: domain.Note, Value: 1000}
}

func (suite *CashRegisterServiceTestSuite) catalog() []domain.CashItem {
	return []domain.CashItem{suite.coin100, suite.note500, suite.note1000}
}

// --- RegisterBalance ---

func (suite *CashRegisterServiceTestSuite) TestRegisterBalance_DerivesStockFromSums() {
	ctx := context.Background()

	suite.mockItemRepo.On("ListCashItems", ctx).Return(suite.catalog(), nil).Once()
	suite.mockRegisterRepo.On("SumRegistersByItem", ctx).Return([]domain.RegisterSum{
		{CashItemID: "item-100", TransactionType: domain.Inflow, Quantity: 5},
		{CashItemID: "item-100", TransactionType: domain.Outflow, Quantity: 2},
		{CashItemID: "item-1000", TransactionType: domain.Inflow, Quantity: 2},
	}, nil).Once()

	balances, err := suite.service.RegisterBalance(ctx)

	suite.Require().NoError(err)
	suite.Require().Len(balances, 3)

	// Ascending by face value, denominations without movements at zero.
	suite.Equal("item-100", balances[0].CashItemID)
	suite.Equal(int64(3), balances[0].Quantity)
	suite.Equal(int64(300), balances[0].Amount)

	suite.Equal("item-500", balances[1].CashItemID)
	suite.Equal(int64(0), balances[1].Quantity)
	suite.Equal(int64(0), balances[1].Amount)

	suite.Equal("item-1000", balances[2].CashItemID)
	suite.Equal(int64(2), balances[2].Quantity)
	suite.Equal(int64(2000), balances[2].Amount)

	suite.mockItemRepo.AssertExpectations(suite.T())
	suite.mockRegisterRepo.AssertExpectations(suite.T())
}

func (suite *CashRegisterServiceTestSuite) TestRegisterBalance_EmptyCatalog() {
	ctx := context.Background()

	suite.mockItemRepo.On("ListCashItems", ctx).Return([]domain.CashItem{}, nil).Once()

	balances, err := suite.service.RegisterBalance(ctx)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(balances)
	suite.mockRegisterRepo.AssertNotCalled(suite.T(), "SumRegistersByItem", mock.Anything)
}

// --- CreateCashRegisters ---

func (suite *CashRegisterServiceTestSuite) TestCreateCashRegisters_Success() {
	ctx := context.Background()
	userID := uuid.NewString()
	reqs := []dto.CreateCashRegisterRequest{
		{CashItemID: "item-100", Quantity: 4, Amount: 400, TransactionType: "INFLOW"},
	}

	suite.mockItemRepo.On("FindCashItemsByIDs", ctx, []string{"item-100"}).
		Return(map[string]domain.CashItem{"item-100": suite.coin100}, nil).Once()
	suite.mockRegisterRepo.On("SumRegistersByItem", ctx).Return([]domain.RegisterSum{}, nil).Once()
	suite.mockRegisterRepo.On("SaveCashRegisters", ctx, mock.MatchedBy(func(regs []domain.CashRegister) bool {
		return len(regs) == 1 &&
			regs[0].CashItemID == "item-100" &&
			regs[0].Quantity == 4 &&
			regs[0].Amount == 400 &&
			regs[0].TransactionType == domain.Inflow &&
			regs[0].CreatedBy == userID
	})).Return(int64(1), nil).Once()

	count, err := suite.service.CreateCashRegisters(ctx, reqs, userID)

	suite.Require().NoError(err)
	suite.Equal(int64(1), count)
	suite.mockRegisterRepo.AssertExpectations(suite.T())
}

func (suite *CashRegisterServiceTestSuite) TestCreateCashRegisters_RecomputesAmount() {
	ctx := context.Background()
	userID := uuid.NewString()
	// Client-sent amount disagrees with quantity * face value.
	reqs := []dto.CreateCashRegisterRequest{
		{CashItemID: "item-500", Quantity: 2, Amount: 1, TransactionType: "INFLOW"},
	}

	suite.mockItemRepo.On("FindCashItemsByIDs", ctx, []string{"item-500"}).
		Return(map[string]domain.CashItem{"item-500": suite.note500}, nil).Once()
	suite.mockRegisterRepo.On("SumRegistersByItem", ctx).Return([]domain.RegisterSum{}, nil).Once()
	suite.mockRegisterRepo.On("SaveCashRegisters", ctx, mock.MatchedBy(func(regs []domain.CashRegister) bool {
		return len(regs) == 1 && regs[0].Amount == 1000
	})).Return(int64(1), nil).Once()

	_, err := suite.service.CreateCashRegisters(ctx, reqs, userID)

	suite.Require().NoError(err)
	suite.mockRegisterRepo.AssertExpectations(suite.T())
}

func (suite *CashRegisterServiceTestSuite) TestCreateCashRegisters_UnknownItem() {
	ctx := context.Background()
	reqs := []dto.CreateCashRegisterRequest{
		{CashItemID: "missing", Quantity: 1, Amount: 100, TransactionType: "INFLOW"},
	}

	suite.mockItemRepo.On("FindCashItemsByIDs", ctx, []string{"missing"}).
		Return(map[string]domain.CashItem{}, nil).Once()

	count, err := suite.service.CreateCashRegisters(ctx, reqs, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Equal(int64(0), count)
	suite.mockRegisterRepo.AssertNotCalled(suite.T(), "SaveCashRegisters", mock.Anything, mock.Anything)
}

func (suite *CashRegisterServiceTestSuite) TestCreateCashRegisters_SingleOverdrawBlocked() {
	ctx := context.Background()
	reqs := []dto.CreateCashRegisterRequest{
		{CashItemID: "item-100", Quantity: 4, Amount: 400, TransactionType: "OUTFLOW"},
	}

	suite.mockItemRepo.On("FindCashItemsByIDs", ctx, []string{"item-100"}).
		Return(map[string]domain.CashItem{"item-100": suite.coin100}, nil).Once()
	suite.mockRegisterRepo.On("SumRegistersByItem", ctx).Return([]domain.RegisterSum{
		{CashItemID: "item-100", TransactionType: domain.Inflow, Quantity: 3},
	}, nil).Once()

	count, err := suite.service.CreateCashRegisters(ctx, reqs, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.ErrorContains(err, "Insufficient quantity available for R$ 1,00!")
	suite.Equal(int64(0), count)
	suite.mockRegisterRepo.AssertNotCalled(suite.T(), "SaveCashRegisters", mock.Anything, mock.Anything)
}

func (suite *CashRegisterServiceTestSuite) TestCreateCashRegisters_TotalAcrossLinesBlocked() {
	ctx := context.Background()
	// Each line fits the stock of 3 on its own, the total of 4 does not.
	reqs := []dto.CreateCashRegisterRequest{
		{CashItemID: "item-100", Quantity: 2, Amount: 200, TransactionType: "OUTFLOW"},
		{CashItemID: "item-100", Quantity: 2, Amount: 200, TransactionType: "OUTFLOW"},
	}

	suite.mockItemRepo.On("FindCashItemsByIDs", ctx, []string{"item-100"}).
		Return(map[string]domain.CashItem{"item-100": suite.coin100}, nil).Once()
	suite.mockRegisterRepo.On("SumRegistersByItem", ctx).Return([]domain.RegisterSum{
		{CashItemID: "item-100", TransactionType: domain.Inflow, Quantity: 3},
	}, nil).Once()

	count, err := suite.service.CreateCashRegisters(ctx, reqs, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.Equal(int64(0), count)
	suite.mockRegisterRepo.AssertNotCalled(suite.T(), "SaveCashRegisters", mock.Anything, mock.Anything)
}

// --- CreateChange ---

func (suite *CashRegisterServiceTestSuite) TestCreateChange_Success() {
	ctx := context.Background()
	userID := uuid.NewString()

	// Price 19,00 paid 20,00: one 1,00 coin back, the two 10,00 notes go in.
	req := dto.CreateChangeRequest{
		TotalPrice: 1900,
		TotalPaid:  2000,
		CashRegister: []dto.CreateInflowRegisterRequest{
			{CashItemID: "item-1000", Quantity: 2, Amount: 2000, TransactionType: "INFLOW"},
		},
	}

	suite.mockItemRepo.On("ListCashItems", ctx).Return(suite.catalog(), nil).Once()
	suite.mockRegisterRepo.On("SumRegistersByItem", ctx).Return([]domain.RegisterSum{
		{CashItemID: "item-100", TransactionType: domain.Inflow, Quantity: 1},
		{CashItemID: "item-1000", TransactionType: domain.Inflow, Quantity: 1},
	}, nil).Once()
	suite.mockItemRepo.On("FindCashItemsByIDs", ctx, []string{"item-100", "item-1000"}).
		Return(map[string]domain.CashItem{
			"item-100":  suite.coin100,
			"item-1000": suite.note1000,
		}, nil).Once()
	suite.mockRegisterRepo.On("SaveCashRegisters", ctx, mock.MatchedBy(func(regs []domain.CashRegister) bool {
		if len(regs) != 2 {
			return false
		}
		outflow, inflow := regs[0], regs[1]
		return outflow.CashItemID == "item-100" &&
			outflow.Quantity == 1 &&
			outflow.Amount == 100 &&
			outflow.TransactionType == domain.Outflow &&
			inflow.CashItemID == "item-1000" &&
			inflow.Quantity == 2 &&
			inflow.Amount == 2000 &&
			inflow.TransactionType == domain.Inflow
	})).Return(int64(2), nil).Once()

	details, err := suite.service.CreateChange(ctx, req, userID)

	suite.Require().NoError(err)
	suite.Require().Len(details, 1)
	suite.Equal("item-100", details[0].CashItemID)
	suite.Equal(int64(1), details[0].Quantity)
	suite.Equal(int64(100), details[0].Amount)
	suite.Equal(domain.Outflow, details[0].TransactionType)

	suite.mockRegisterRepo.AssertExpectations(suite.T())
	suite.mockItemRepo.AssertExpectations(suite.T())
}

func (suite *CashRegisterServiceTestSuite) TestCreateChange_InsufficientStock() {
	ctx := context.Background()

	// Change of 6,00 with empty 5,00 and 10,00 slots and a single 1,00
	// coin: the drawer cannot represent the amount.
	req := dto.CreateChangeRequest{TotalPrice: 1400, TotalPaid: 2000}

	suite.mockItemRepo.On("ListCashItems", ctx).Return(suite.catalog(), nil).Once()
	suite.mockRegisterRepo.On("SumRegistersByItem", ctx).Return([]domain.RegisterSum{
		{CashItemID: "item-100", TransactionType: domain.Inflow, Quantity: 1},
	}, nil).Once()

	details, err := suite.service.CreateChange(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.ErrorContains(err, "Insufficient coins and notes in cash for change!")
	suite.Nil(details)
	suite.mockRegisterRepo.AssertNotCalled(suite.T(), "SaveCashRegisters", mock.Anything, mock.Anything)
}

func (suite *CashRegisterServiceTestSuite) TestCreateChange_GreedyCannotBacktrack() {
	ctx := context.Background()

	// Change of 6,00 against three 2,00 notes and one 5,00 note. Taking
	// the three 2,00 notes would work, but the walk grabs the 5,00 first,
	// leaves 1,00 unpayable and gives up rather than backtrack.
	note200 := domain.CashItem{CashItemID: "item-200", CashType: domain.Note, Value: 200}
	req := dto.CreateChangeRequest{TotalPrice: 1400, TotalPaid: 2000}

	suite.mockItemRepo.On("ListCashItems", ctx).
		Return([]domain.CashItem{note200, suite.note500}, nil).Once()
	suite.mockRegisterRepo.On("SumRegistersByItem", ctx).Return([]domain.RegisterSum{
		{CashItemID: "item-200", TransactionType: domain.Inflow, Quantity: 3},
		{CashItemID: "item-500", TransactionType: domain.Inflow, Quantity: 1},
	}, nil).Once()

	details, err := suite.service.CreateChange(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.Nil(details)
	suite.mockRegisterRepo.AssertNotCalled(suite.T(), "SaveCashRegisters", mock.Anything, mock.Anything)
}

func (suite *CashRegisterServiceTestSuite) TestCreateChange_Underpaid() {
	ctx := context.Background()
	req := dto.CreateChangeRequest{TotalPrice: 2000, TotalPaid: 1500}

	details, err := suite.service.CreateChange(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.ErrorContains(err, "total paid is less than the total price")
	suite.Nil(details)
	suite.mockRegisterRepo.AssertNotCalled(suite.T(), "SumRegistersByItem", mock.Anything)
	suite.mockRegisterRepo.AssertNotCalled(suite.T(), "SaveCashRegisters", mock.Anything, mock.Anything)
}

func (suite *CashRegisterServiceTestSuite) TestCreateChange_ExactPayment() {
	ctx := context.Background()
	userID := uuid.NewString()

	// No change due: only the payment inflow is persisted.
	req := dto.CreateChangeRequest{
		TotalPrice: 1000,
		TotalPaid:  1000,
		CashRegister: []dto.CreateInflowRegisterRequest{
			{CashItemID: "item-1000", Quantity: 1, Amount: 1000, TransactionType: "INFLOW"},
		},
	}

	suite.mockItemRepo.On("FindCashItemsByIDs", ctx, []string{"item-1000"}).
		Return(map[string]domain.CashItem{"item-1000": suite.note1000}, nil).Once()
	suite.mockRegisterRepo.On("SaveCashRegisters", ctx, mock.MatchedBy(func(regs []domain.CashRegister) bool {
		return len(regs) == 1 && regs[0].TransactionType == domain.Inflow
	})).Return(int64(1), nil).Once()

	details, err := suite.service.CreateChange(ctx, req, userID)

	suite.Require().NoError(err)
	suite.Empty(details)
	suite.mockRegisterRepo.AssertExpectations(suite.T())
}

func TestCashRegisterServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CashRegisterServiceTestSuite))
}
