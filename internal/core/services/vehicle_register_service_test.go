package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/parkwise/parking_cash_app/internal/apperrors"
	"github.com/parkwise/parking_cash_app/internal/core/domain"
	portssvc "github.com/parkwise/parking_cash_app/internal/core/ports/services"
	"github.com/parkwise/parking_cash_app/internal/core/services"
	"github.com/parkwise/parking_cash_app/internal/dto"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type VehicleRegisterServiceTestSuite struct {
	suite.Suite
	mockRegisterRepo *MockVehicleRegisterRepository
	mockTypeRepo     *MockVehicleTypeRepository
	service          portssvc.VehicleRegisterSvcFacade

	carType domain.VehicleType
}

func (suite *VehicleRegisterServiceTestSuite) SetupTest() {
	suite.mockRegisterRepo = new(MockVehicleRegisterRepository)
	suite.mockTypeRepo = new(MockVehicleTypeRepository)
	suite.service = services.NewVehicleRegisterService(suite.mockRegisterRepo, suite.mockTypeRepo)

	suite.carType = domain.VehicleType{VehicleTypeID: "type-carro", Name: "carro", HourRate: 400}
}

// --- CheckIn ---

func (suite *VehicleRegisterServiceTestSuite) TestCheckIn_Success() {
	ctx := context.Background()
	userID := uuid.NewString()
	req := dto.CreateVehicleRegisterRequest{VehicleTypeID: "type-carro", PlateNumber: "ABC1D23"}

	suite.mockRegisterRepo.On("FindActiveByPlateNumber", ctx, "ABC1D23").
		Return(nil, apperrors.ErrNotFound).Once()
	suite.mockTypeRepo.On("FindVehicleTypeByID", ctx, "type-carro").
		Return(&suite.carType, nil).Once()
	suite.mockRegisterRepo.On("SaveVehicleRegister", ctx, mock.MatchedBy(func(vr domain.VehicleRegister) bool {
		return vr.PlateNumber == "ABC1D23" &&
			vr.VehicleTypeID == "type-carro" &&
			vr.ExitTime == nil &&
			vr.PaidAmount == nil &&
			vr.CreatedBy == userID
	})).Return(nil).Once()

	vr, err := suite.service.CheckIn(ctx, userID, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(vr)
	suite.True(vr.Active())

	// Entry time is recorded three hours behind UTC.
	expectedEntry := time.Now().UTC().Add(-3 * time.Hour)
	suite.WithinDuration(expectedEntry, vr.EntryTime, 5*time.Second)

	suite.mockRegisterRepo.AssertExpectations(suite.T())
	suite.mockTypeRepo.AssertExpectations(suite.T())
}

func (suite *VehicleRegisterServiceTestSuite) TestCheckIn_PlateAlreadyActive() {
	ctx := context.Background()
	req := dto.CreateVehicleRegisterRequest{VehicleTypeID: "type-carro", PlateNumber: "ABC1D23"}
	active := domain.VehicleRegister{VehicleRegisterID: "reg-1", PlateNumber: "ABC1D23"}

	suite.mockRegisterRepo.On("FindActiveByPlateNumber", ctx, "ABC1D23").
		Return(&active, nil).Once()

	vr, err := suite.service.CheckIn(ctx, uuid.NewString(), req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.ErrorContains(err, "This vehicle already has an active registration!")
	suite.Nil(vr)
	suite.mockRegisterRepo.AssertNotCalled(suite.T(), "SaveVehicleRegister", mock.Anything, mock.Anything)
}

func (suite *VehicleRegisterServiceTestSuite) TestCheckIn_UnknownVehicleType() {
	ctx := context.Background()
	req := dto.CreateVehicleRegisterRequest{VehicleTypeID: "missing", PlateNumber: "ABC1D23"}

	suite.mockRegisterRepo.On("FindActiveByPlateNumber", ctx, "ABC1D23").
		Return(nil, apperrors.ErrNotFound).Once()
	suite.mockTypeRepo.On("FindVehicleTypeByID", ctx, "missing").
		Return(nil, apperrors.ErrNotFound).Once()

	vr, err := suite.service.CheckIn(ctx, uuid.NewString(), req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(vr)
	suite.mockRegisterRepo.AssertNotCalled(suite.T(), "SaveVehicleRegister", mock.Anything, mock.Anything)
}

// A closed register for the same plate does not block a new check-in; only
// an active one does.
func (suite *VehicleRegisterServiceTestSuite) TestCheckIn_ClosedRegisterDoesNotBlock() {
	ctx := context.Background()
	userID := uuid.NewString()
	req := dto.CreateVehicleRegisterRequest{VehicleTypeID: "type-carro", PlateNumber: "ABC1D23"}

	suite.mockRegisterRepo.On("FindActiveByPlateNumber", ctx, "ABC1D23").
		Return(nil, apperrors.ErrNotFound).Once()
	suite.mockTypeRepo.On("FindVehicleTypeByID", ctx, "type-carro").
		Return(&suite.carType, nil).Once()
	suite.mockRegisterRepo.On("SaveVehicleRegister", ctx, mock.AnythingOfType("domain.VehicleRegister")).
		Return(nil).Once()

	vr, err := suite.service.CheckIn(ctx, userID, req)

	suite.Require().NoError(err)
	suite.NotNil(vr)
	suite.mockRegisterRepo.AssertExpectations(suite.T())
}

// --- CheckOut ---

func (suite *VehicleRegisterServiceTestSuite) TestCheckOut_ComputesFee() {
	ctx := context.Background()
	userID := uuid.NewString()

	// Checked in two and a half hours ago at 4,00/h: fee of 10,00.
	entry := time.Now().UTC().Add(-3 * time.Hour).Add(-150 * time.Minute)
	open := domain.VehicleRegister{
		VehicleRegisterID: "reg-1",
		VehicleTypeID:     "type-carro",
		PlateNumber:       "ABC1D23",
		EntryTime:         entry,
	}

	suite.mockRegisterRepo.On("FindVehicleRegisterByID", ctx, "reg-1").
		Return(&open, nil).Once()
	suite.mockTypeRepo.On("FindVehicleTypeByID", ctx, "type-carro").
		Return(&suite.carType, nil).Once()
	suite.mockRegisterRepo.On("CloseVehicleRegister", ctx, mock.MatchedBy(func(vr domain.VehicleRegister) bool {
		return vr.VehicleRegisterID == "reg-1" &&
			vr.ExitTime != nil &&
			vr.PaidAmount != nil &&
			*vr.PaidAmount == 1000 &&
			vr.LastUpdatedBy == userID
	})).Return(nil).Once()

	vr, err := suite.service.CheckOut(ctx, userID, "reg-1")

	suite.Require().NoError(err)
	suite.Require().NotNil(vr)
	suite.Require().NotNil(vr.PaidAmount)
	suite.Equal(int64(1000), *vr.PaidAmount)
	suite.False(vr.Active())

	suite.mockRegisterRepo.AssertExpectations(suite.T())
	suite.mockTypeRepo.AssertExpectations(suite.T())
}

func (suite *VehicleRegisterServiceTestSuite) TestCheckOut_AlreadyClosed() {
	ctx := context.Background()
	exitTime := time.Now().Add(-time.Hour)
	paid := int64(800)
	closed := domain.VehicleRegister{
		VehicleRegisterID: "reg-1",
		VehicleTypeID:     "type-carro",
		ExitTime:          &exitTime,
		PaidAmount:        &paid,
	}

	suite.mockRegisterRepo.On("FindVehicleRegisterByID", ctx, "reg-1").
		Return(&closed, nil).Once()

	vr, err := suite.service.CheckOut(ctx, uuid.NewString(), "reg-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.ErrorContains(err, "This register is not active!")
	suite.Nil(vr)
	suite.mockRegisterRepo.AssertNotCalled(suite.T(), "CloseVehicleRegister", mock.Anything, mock.Anything)
}

func (suite *VehicleRegisterServiceTestSuite) TestCheckOut_NotFound() {
	ctx := context.Background()

	suite.mockRegisterRepo.On("FindVehicleRegisterByID", ctx, "missing").
		Return(nil, apperrors.ErrNotFound).Once()

	vr, err := suite.service.CheckOut(ctx, uuid.NewString(), "missing")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(vr)
}

// --- Listings ---

func (suite *VehicleRegisterServiceTestSuite) TestListVehicleRegisters_Empty() {
	ctx := context.Background()

	suite.mockRegisterRepo.On("ListVehicleRegisters", ctx).
		Return([]domain.VehicleRegister{}, nil).Once()

	registers, err := suite.service.ListVehicleRegisters(ctx)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(registers)
}

func (suite *VehicleRegisterServiceTestSuite) TestFindByDate_UsesDayBoundsUTC() {
	ctx := context.Background()
	date := time.Date(2024, 5, 17, 15, 30, 0, 0, time.UTC)

	expectedStart := time.Date(2024, 5, 17, 0, 0, 0, 0, time.UTC)
	expectedEnd := time.Date(2024, 5, 17, 23, 59, 59, 999000000, time.UTC)

	registers := []domain.VehicleRegister{{VehicleRegisterID: "reg-1"}}
	suite.mockRegisterRepo.On("ListVehicleRegistersByEntryTime", ctx, expectedStart, expectedEnd).
		Return(registers, nil).Once()

	got, err := suite.service.FindByDate(ctx, date)

	suite.Require().NoError(err)
	suite.Equal(registers, got)
	suite.mockRegisterRepo.AssertExpectations(suite.T())
}

func (suite *VehicleRegisterServiceTestSuite) TestFindByPlateNumber_NotFound() {
	ctx := context.Background()

	suite.mockRegisterRepo.On("FindActiveByPlateNumber", ctx, "ZZZ9Z99").
		Return(nil, apperrors.ErrNotFound).Once()

	register, err := suite.service.FindByPlateNumber(ctx, "ZZZ9Z99")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(register)
}

func TestVehicleRegisterServiceTestSuite(t *testing.T) {
	suite.Run(t, new(VehicleRegisterServiceTestSuite))
}
