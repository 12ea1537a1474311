package get_calendar_feed

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/PJ-BookingService/internal/domain"
	"github.com/m04kA/PJ-BookingService/pkg/ptr"
)

// Mock структуры

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) GetWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Booking), args.Error(1)
}

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestGetCalendarFeed_BuildsEvents(t *testing.T) {
	mockBookingRepo := &MockBookingRepository{}
	uc := NewUseCase(mockBookingRepo, noopLogger{})

	ctx := context.Background()
	bookings := []*domain.Booking{
		{
			ID:           1,
			ProductID:    7,
			ProductTitle: "Палатка Husky",
			CustomerName: "Иван Петров",
			StartDate:    date(2025, 7, 10),
			EndDate:      date(2025, 7, 12),
			Status:       domain.StatusConfirmed,
		},
		{
			ID:           2,
			ProductID:    7,
			ProductTitle: "Палатка Husky",
			CustomerName: "Анна Сидорова",
			StartDate:    date(2025, 7, 20),
			EndDate:      date(2025, 7, 20),
			Status:       domain.StatusCancelled,
		},
	}

	mockBookingRepo.On("GetWithFilter", ctx, mock.MatchedBy(func(f domain.BookingsFilter) bool {
		// Лента включает неактивные бронирования, порядок - по дате начала
		return f.IncludeInactive && f.OrderByStartAsc
	})).Return(bookings, nil).Once()

	resp, err := uc.Execute(ctx, &Request{})

	assert.NoError(t, err)
	assert.Len(t, resp.Events, 2)

	first := resp.Events[0]
	assert.Equal(t, "Иван Петров - Палатка Husky", first.Title)
	assert.Equal(t, domain.ColorConfirmed, first.Color)
	assert.Equal(t, date(2025, 7, 10), first.Start)
	assert.Equal(t, date(2025, 7, 13), first.End) // эксклюзивная граница

	second := resp.Events[1]
	assert.Equal(t, domain.ColorCancelled, second.Color)
	assert.Equal(t, date(2025, 7, 21), second.End)
}

func TestGetCalendarFeed_PassesFilterThrough(t *testing.T) {
	mockBookingRepo := &MockBookingRepository{}
	uc := NewUseCase(mockBookingRepo, noopLogger{})

	ctx := context.Background()
	productID := int64(7)
	windowStart := date(2025, 7, 1)
	windowEnd := date(2025, 7, 31)

	mockBookingRepo.On("GetWithFilter", ctx, domain.BookingsFilter{
		ProductID:       &productID,
		StartDate:       &windowStart,
		EndDate:         &windowEnd,
		IncludeInactive: true,
		OrderByStartAsc: true,
	}).Return([]*domain.Booking{}, nil).Once()

	resp, err := uc.Execute(ctx, &Request{
		ProductID:   &productID,
		WindowStart: &windowStart,
		WindowEnd:   &windowEnd,
	})

	assert.NoError(t, err)
	assert.Empty(t, resp.Events)
	mockBookingRepo.AssertExpectations(t)
}

func TestGetCalendarFeed_InvalidWindow(t *testing.T) {
	uc := NewUseCase(&MockBookingRepository{}, noopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		WindowStart: ptr.Ptr(date(2025, 7, 31)),
		WindowEnd:   ptr.Ptr(date(2025, 7, 1)),
	})

	assert.ErrorIs(t, err, ErrInvalidWindow)
}

func TestGetCalendarFeed_InvalidProductID(t *testing.T) {
	uc := NewUseCase(&MockBookingRepository{}, noopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		ProductID: ptr.Ptr(int64(0)),
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
}
