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

type VehicleTypeServiceTestSuite struct {
	suite.Suite
	mockRepo *MockVehicleTypeRepository
	service  portssvc.VehicleTypeSvcFacade
}

func (suite *VehicleTypeServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockVehicleTypeRepository)
	suite.service = services.NewVehicleTypeService(suite.mockRepo)
}

func (suite *VehicleTypeServiceTestSuite) TestCreateVehicleType_LowercasesName() {
	ctx := context.Background()
	creatorUserID := uuid.NewString()
	req := dto.CreateVehicleTypeRequest{Name: "Carro", HourRate: 400}

	suite.mockRepo.On("FindVehicleTypeByName", ctx, "carro").
		Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("SaveVehicleType", ctx, mock.MatchedBy(func(vt domain.VehicleType) bool {
		return vt.Name == "carro" && vt.HourRate == 400 && vt.CreatedBy == creatorUserID
	})).Return(nil).Once()

	vt, err := suite.service.CreateVehicleType(ctx, req, creatorUserID)

	suite.Require().NoError(err)
	suite.Require().NotNil(vt)
	suite.Equal("carro", vt.Name)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *VehicleTypeServiceTestSuite) TestCreateVehicleType_DuplicateName() {
	ctx := context.Background()
	req := dto.CreateVehicleTypeRequest{Name: "moto", HourRate: 250}
	existing := domain.VehicleType{VehicleTypeID: "type-moto", Name: "moto", HourRate: 250}

	suite.mockRepo.On("FindVehicleTypeByName", ctx, "moto").
		Return(&existing, nil).Once()

	vt, err := suite.service.CreateVehicleType(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.ErrorContains(err, "There is already a vehicle type with this name!")
	suite.Nil(vt)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveVehicleType", mock.Anything, mock.Anything)
}

func (suite *VehicleTypeServiceTestSuite) TestListVehicleTypes_Empty() {
	ctx := context.Background()

	suite.mockRepo.On("ListVehicleTypes", ctx).Return([]domain.VehicleType{}, nil).Once()

	vts, err := suite.service.ListVehicleTypes(ctx)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(vts)
}

func TestVehicleTypeServiceTestSuite(t *testing.T) {
	suite.Run(t, new(VehicleTypeServiceTestSuite))
}
