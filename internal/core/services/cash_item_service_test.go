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

type CashItemServiceTestSuite struct {
	suite.Suite
	mockRepo *MockCashItemRepository
	service  portssvc.CashItemSvcFacade
}

func (suite *CashItemServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockCashItemRepository)
	suite.service = services.NewCashItemService(suite.mockRepo)
}

func (suite *CashItemServiceTestSuite) TestCreateCashItem_Success() {
	ctx := context.Background()
	creatorUserID := uuid.NewString()
	req := dto.CreateCashItemRequest{CashType: "COIN", Value: 25}

	suite.mockRepo.On("FindCashItemByValue", ctx, int64(25)).
		Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("SaveCashItem", ctx, mock.MatchedBy(func(item domain.CashItem) bool {
		return item.CashType == domain.Coin &&
			item.Value == 25 &&
			item.CreatedBy == creatorUserID &&
			item.CashItemID != ""
	})).Return(nil).Once()

	item, err := suite.service.CreateCashItem(ctx, req, creatorUserID)

	suite.Require().NoError(err)
	suite.Require().NotNil(item)
	suite.Equal(domain.Coin, item.CashType)
	suite.Equal(int64(25), item.Value)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CashItemServiceTestSuite) TestCreateCashItem_DuplicateValue() {
	ctx := context.Background()
	req := dto.CreateCashItemRequest{CashType: "NOTE", Value: 500}
	existing := domain.CashItem{CashItemID: "item-500", CashType: domain.Note, Value: 500}

	suite.mockRepo.On("FindCashItemByValue", ctx, int64(500)).
		Return(&existing, nil).Once()

	item, err := suite.service.CreateCashItem(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.ErrorContains(err, "Already exists a cash item with this value!")
	suite.Nil(item)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveCashItem", mock.Anything, mock.Anything)
}

func (suite *CashItemServiceTestSuite) TestListCashItems_Success() {
	ctx := context.Background()
	expected := []domain.CashItem{
		{CashItemID: "item-5", CashType: domain.Coin, Value: 5},
		{CashItemID: "item-100", CashType: domain.Coin, Value: 100},
	}

	suite.mockRepo.On("ListCashItems", ctx).Return(expected, nil).Once()

	items, err := suite.service.ListCashItems(ctx)

	suite.Require().NoError(err)
	suite.Equal(expected, items)
}

func (suite *CashItemServiceTestSuite) TestListCashItems_Empty() {
	ctx := context.Background()

	suite.mockRepo.On("ListCashItems", ctx).Return([]domain.CashItem{}, nil).Once()

	items, err := suite.service.ListCashItems(ctx)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(items)
}

func TestCashItemServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CashItemServiceTestSuite))
}
