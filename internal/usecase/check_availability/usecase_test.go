package check_availability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/PJ-BookingService/internal/domain"
	productRepo "github.com/m04kA/PJ-BookingService/internal/infra/storage/product"
)

// Mock структуры

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) GetBlockingForProduct(ctx context.Context, productID int64, start, end time.Time, excludeID *int64) ([]*domain.Booking, error) {
	args := m.Called(ctx, productID, start, end, excludeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Booking), args.Error(1)
}

type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func activeProduct(id int64) *domain.Product {
	price := 100.0
	return &domain.Product{ID: id, Title: "Палатка", PricePerDay: &price, IsActive: true}
}

func TestCheckAvailability_Available(t *testing.T) {
	mockBookingRepo := &MockBookingRepository{}
	mockProductRepo := &MockProductRepository{}
	uc := NewUseCase(mockBookingRepo, mockProductRepo, noopLogger{})

	ctx := context.Background()
	mockProductRepo.On("GetByID", ctx, int64(1)).Return(activeProduct(1), nil).Once()
	mockBookingRepo.On("GetBlockingForProduct", ctx, int64(1), date(2025, 7, 10), date(2025, 7, 12), (*int64)(nil)).
		Return([]*domain.Booking{}, nil).Once()

	resp, err := uc.Execute(ctx, &Request{
		ProductID: 1,
		StartDate: date(2025, 7, 10),
		EndDate:   date(2025, 7, 12),
	})

	assert.NoError(t, err)
	assert.True(t, resp.Available)
	assert.Empty(t, resp.BlockedDates)

	mockProductRepo.AssertExpectations(t)
	mockBookingRepo.AssertExpectations(t)
}

func TestCheckAvailability_BlockedDatesUnion(t *testing.T) {
	mockBookingRepo := &MockBookingRepository{}
	mockProductRepo := &MockProductRepository{}
	uc := NewUseCase(mockBookingRepo, mockProductRepo, noopLogger{})

	ctx := context.Background()
	conflicts := []*domain.Booking{
		{ID: 1, StartDate: date(2025, 7, 11), EndDate: date(2025, 7, 12), Status: domain.StatusConfirmed},
		{ID: 2, StartDate: date(2025, 7, 12), EndDate: date(2025, 7, 13), Status: domain.StatusPending},
	}

	mockProductRepo.On("GetByID", ctx, int64(1)).Return(activeProduct(1), nil).Once()
	mockBookingRepo.On("GetBlockingForProduct", ctx, int64(1), date(2025, 7, 10), date(2025, 7, 14), (*int64)(nil)).
		Return(conflicts, nil).Once()

	resp, err := uc.Execute(ctx, &Request{
		ProductID: 1,
		StartDate: date(2025, 7, 10),
		EndDate:   date(2025, 7, 14),
	})

	assert.NoError(t, err)
	assert.False(t, resp.Available)
	// Объединение занятых дней, без дублей, по возрастанию
	assert.Equal(t, []time.Time{
		date(2025, 7, 11),
		date(2025, 7, 12),
		date(2025, 7, 13),
	}, resp.BlockedDates)
}

func TestCheckAvailability_ExcludesOwnBooking(t *testing.T) {
	mockBookingRepo := &MockBookingRepository{}
	mockProductRepo := &MockProductRepository{}
	uc := NewUseCase(mockBookingRepo, mockProductRepo, noopLogger{})

	ctx := context.Background()
	excludeID := int64(42)

	mockProductRepo.On("GetByID", ctx, int64(1)).Return(activeProduct(1), nil).Once()
	mockBookingRepo.On("GetBlockingForProduct", ctx, int64(1), date(2025, 7, 10), date(2025, 7, 12), &excludeID).
		Return([]*domain.Booking{}, nil).Once()

	resp, err := uc.Execute(ctx, &Request{
		ProductID:        1,
		StartDate:        date(2025, 7, 10),
		EndDate:          date(2025, 7, 12),
		ExcludeBookingID: &excludeID,
	})

	assert.NoError(t, err)
	assert.True(t, resp.Available)
	mockBookingRepo.AssertExpectations(t)
}

func TestCheckAvailability_ProductNotFound(t *testing.T) {
	mockBookingRepo := &MockBookingRepository{}
	mockProductRepo := &MockProductRepository{}
	uc := NewUseCase(mockBookingRepo, mockProductRepo, noopLogger{})

	ctx := context.Background()
	mockProductRepo.On("GetByID", ctx, int64(99)).Return(nil, productRepo.ErrProductNotFound).Once()

	_, err := uc.Execute(ctx, &Request{
		ProductID: 99,
		StartDate: date(2025, 7, 10),
		EndDate:   date(2025, 7, 12),
	})

	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestCheckAvailability_InvalidRange(t *testing.T) {
	uc := NewUseCase(&MockBookingRepository{}, &MockProductRepository{}, noopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		ProductID: 1,
		StartDate: date(2025, 7, 12),
		EndDate:   date(2025, 7, 10),
	})

	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestCheckAvailability_RepositoryError(t *testing.T) {
	mockBookingRepo := &MockBookingRepository{}
	mockProductRepo := &MockProductRepository{}
	uc := NewUseCase(mockBookingRepo, mockProductRepo, noopLogger{})

	ctx := context.Background()
	mockProductRepo.On("GetByID", ctx, int64(1)).Return(activeProduct(1), nil).Once()
	mockBookingRepo.On("GetBlockingForProduct", ctx, int64(1), date(2025, 7, 10), date(2025, 7, 12), (*int64)(nil)).
		Return(nil, errors.New("connection refused")).Once()

	_, err := uc.Execute(ctx, &Request{
		ProductID: 1,
		StartDate: date(2025, 7, 10),
		EndDate:   date(2025, 7, 12),
	})

	assert.ErrorIs(t, err, ErrInternal)
}
