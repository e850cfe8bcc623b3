package services_test

import (
	"context"
	"time"

	"github.com/parkwise/parking_cash_app/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/mock"
)

// --- Mock UserRepository ---

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// --- Mock SessionRepository ---

type MockSessionRepository struct {
	mock.Mock
}

func (m *MockSessionRepository) SaveSession(ctx context.Context, session domain.Session) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockSessionRepository) FindSessionByToken(ctx context.Context, token string) (*domain.Session, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Session), args.Error(1)
}

// --- Mock CashItemRepository ---

type MockCashItemRepository struct {
	mock.Mock
}

func (m *MockCashItemRepository) SaveCashItem(ctx context.Context, item domain.CashItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockCashItemRepository) FindCashItemByID(ctx context.Context, cashItemID string) (*domain.CashItem, error) {
	args := m.Called(ctx, cashItemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CashItem), args.Error(1)
}

func (m *MockCashItemRepository) FindCashItemByValue(ctx context.Context, value int64) (*domain.CashItem, error) {
	args := m.Called(ctx, value)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CashItem), args.Error(1)
}

func (m *MockCashItemRepository) FindCashItemsByIDs(ctx context.Context, cashItemIDs []string) (map[string]domain.CashItem, error) {
	args := m.Called(ctx, cashItemIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.CashItem), args.Error(1)
}

func (m *MockCashItemRepository) ListCashItems(ctx context.Context) ([]domain.CashItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CashItem), args.Error(1)
}

// --- Mock CashRegisterRepository ---

type MockCashRegisterRepository struct {
	mock.Mock
}

func (m *MockCashRegisterRepository) SumRegistersByItem(ctx context.Context) ([]domain.RegisterSum, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RegisterSum), args.Error(1)
}

func (m *MockCashRegisterRepository) SaveCashRegisters(ctx context.Context, registers []domain.CashRegister) (int64, error) {
	args := m.Called(ctx, registers)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCashRegisterRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(pgx.Tx), args.Error(1)
}

func (m *MockCashRegisterRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockCashRegisterRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

// --- Mock VehicleTypeRepository ---

type MockVehicleTypeRepository struct {
	mock.Mock
}

func (m *MockVehicleTypeRepository) SaveVehicleType(ctx context.Context, vt domain.VehicleType) error {
	args := m.Called(ctx, vt)
	return args.Error(0)
}

func (m *MockVehicleTypeRepository) FindVehicleTypeByID(ctx context.Context, vehicleTypeID string) (*domain.VehicleType, error) {
	args := m.Called(ctx, vehicleTypeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.VehicleType), args.Error(1)
}

func (m *MockVehicleTypeRepository) FindVehicleTypeByName(ctx context.Context, name string) (*domain.VehicleType, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.VehicleType), args.Error(1)
}

func (m *MockVehicleTypeRepository) ListVehicleTypes(ctx context.Context) ([]domain.VehicleType, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.VehicleType), args.Error(1)
}

// --- Mock VehicleRegisterRepository ---

type MockVehicleRegisterRepository struct {
	mock.Mock
}

func (m *MockVehicleRegisterRepository) SaveVehicleRegister(ctx context.Context, vr domain.VehicleRegister) error {
	args := m.Called(ctx, vr)
	return args.Error(0)
}

func (m *MockVehicleRegisterRepository) CloseVehicleRegister(ctx context.Context, vr domain.VehicleRegister) error {
	args := m.Called(ctx, vr)
	return args.Error(0)
}

func (m *MockVehicleRegisterRepository) FindVehicleRegisterByID(ctx context.Context, registerID string) (*domain.VehicleRegister, error) {
	args := m.Called(ctx, registerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.VehicleRegister), args.Error(1)
}

func (m *MockVehicleRegisterRepository) FindActiveByPlateNumber(ctx context.Context, plateNumber string) (*domain.VehicleRegister, error) {
	args := m.Called(ctx, plateNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.VehicleRegister), args.Error(1)
}

func (m *MockVehicleRegisterRepository) ListVehicleRegisters(ctx context.Context) ([]domain.VehicleRegister, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.VehicleRegister), args.Error(1)
}

func (m *MockVehicleRegisterRepository) ListActiveVehicleRegisters(ctx context.Context) ([]domain.VehicleRegister, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.VehicleRegister), args.Error(1)
}

func (m *MockVehicleRegisterRepository) ListVehicleRegistersByEntryTime(ctx context.Context, start, end time.Time) ([]domain.VehicleRegister, error) {
	args := m.Called(ctx, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.VehicleRegister), args.Error(1)
}
