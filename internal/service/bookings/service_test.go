package bookings

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/PJ-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/PJ-BookingService/internal/infra/storage/booking"
	"github.com/m04kA/PJ-BookingService/internal/service/bookings/models"
	"github.com/m04kA/PJ-BookingService/pkg/ptr"
)

// Mock структуры

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) GetWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) UpdateStatusBulk(ctx context.Context, ids []int64, status domain.BookingStatus) (int64, error) {
	args := m.Called(ctx, ids, status)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBookingRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestService_GetByID(t *testing.T) {
	mockRepo := &MockBookingRepository{}
	service := NewService(mockRepo, noopLogger{})

	ctx := context.Background()
	mockRepo.On("GetByID", ctx, int64(42)).Return(&domain.Booking{
		ID:           42,
		ProductID:    1,
		CustomerName: "Иван Петров",
		StartDate:    date(2025, 7, 10),
		EndDate:      date(2025, 7, 12),
		Status:       domain.StatusPending,
	}, nil).Once()

	resp, err := service.GetByID(ctx, 42)

	assert.NoError(t, err)
	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, "2025-07-10", resp.StartDate)
	assert.Equal(t, "2025-07-12", resp.EndDate)
	assert.Equal(t, 3, resp.DurationDays)
}

func TestService_GetByID_NotFound(t *testing.T) {
	mockRepo := &MockBookingRepository{}
	service := NewService(mockRepo, noopLogger{})

	ctx := context.Background()
	mockRepo.On("GetByID", ctx, int64(99)).Return(nil, bookingRepo.ErrBookingNotFound).Once()

	_, err := service.GetByID(ctx, 99)

	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestService_GetProductBookings(t *testing.T) {
	mockRepo := &MockBookingRepository{}
	service := NewService(mockRepo, noopLogger{})

	ctx := context.Background()
	mockRepo.On("GetWithFilter", ctx, mock.MatchedBy(func(f domain.BookingsFilter) bool {
		return f.ProductID != nil && *f.ProductID == 7 &&
			f.Status != nil && *f.Status == domain.StatusConfirmed
	})).Return([]*domain.Booking{
		{ID: 1, ProductID: 7, StartDate: date(2025, 7, 10), EndDate: date(2025, 7, 12), Status: domain.StatusConfirmed},
	}, nil).Once()

	resp, err := service.GetProductBookings(ctx, &models.GetProductBookingsRequest{
		ProductID: 7,
		Status:    ptr.Ptr("confirmed"),
	})

	assert.NoError(t, err)
	assert.Len(t, resp.Bookings, 1)
	assert.Equal(t, "confirmed", resp.Bookings[0].Status)
}

func TestService_GetProductBookings_InvalidStatus(t *testing.T) {
	service := NewService(&MockBookingRepository{}, noopLogger{})

	_, err := service.GetProductBookings(context.Background(), &models.GetProductBookingsRequest{
		ProductID: 7,
		Status:    ptr.Ptr("archived"),
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_ConfirmAll(t *testing.T) {
	mockRepo := &MockBookingRepository{}
	service := NewService(mockRepo, noopLogger{})

	ctx := context.Background()
	ids := []int64{1, 2, 99}
	// Несуществующий ID молча пропускается: обновлено 2 из 3
	mockRepo.On("UpdateStatusBulk", ctx, ids, domain.StatusConfirmed).Return(int64(2), nil).Once()

	updated, err := service.ConfirmAll(ctx, ids)

	assert.NoError(t, err)
	assert.Equal(t, int64(2), updated)
}

func TestService_CancelAll(t *testing.T) {
	mockRepo := &MockBookingRepository{}
	service := NewService(mockRepo, noopLogger{})

	ctx := context.Background()
	ids := []int64{1, 2}
	mockRepo.On("UpdateStatusBulk", ctx, ids, domain.StatusCancelled).Return(int64(2), nil).Once()

	updated, err := service.CancelAll(ctx, ids)

	assert.NoError(t, err)
	assert.Equal(t, int64(2), updated)
}

func TestService_BulkUpdate_EmptyIDs(t *testing.T) {
	service := NewService(&MockBookingRepository{}, noopLogger{})

	_, err := service.ConfirmAll(context.Background(), nil)

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_Delete_NotFound(t *testing.T) {
	mockRepo := &MockBookingRepository{}
	service := NewService(mockRepo, noopLogger{})

	ctx := context.Background()
	mockRepo.On("Delete", ctx, int64(99)).Return(bookingRepo.ErrBookingNotFound).Once()

	err := service.Delete(ctx, 99)

	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestService_Delete_RepositoryError(t *testing.T) {
	mockRepo := &MockBookingRepository{}
	service := NewService(mockRepo, noopLogger{})

	ctx := context.Background()
	mockRepo.On("Delete", ctx, int64(1)).Return(errors.New("connection refused")).Once()

	err := service.Delete(ctx, 1)

	assert.ErrorIs(t, err, ErrInternal)
}
