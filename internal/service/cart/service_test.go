package cart

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/lib/pq"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/PJ-BookingService/internal/domain"
	"github.com/m04kA/PJ-BookingService/internal/service/cart/models"
)

// Mock структуры

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	args := m.Called(ctx, booking)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
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

// MockTransactionManager выполняет функцию без настоящей транзакции
type MockTransactionManager struct{}

func (m *MockTransactionManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func newTestService(bookingRepo *MockBookingRepository, productRepo *MockProductRepository) *Service {
	return NewService(bookingRepo, productRepo, &MockTransactionManager{}, noopLogger{})
}

func tentProduct() *domain.Product {
	price := 150.0
	return &domain.Product{ID: 1, Title: "Палатка Husky", PricePerDay: &price, IsActive: true}
}

func addItemRequest() *models.AddItemRequest {
	return &models.AddItemRequest{
		ProductID: 1,
		StartDate: date(2025, 7, 10),
		EndDate:   date(2025, 7, 12),
	}
}

func TestCartService_Get_EmptySession(t *testing.T) {
	service := newTestService(&MockBookingRepository{}, &MockProductRepository{})

	resp, err := service.Get(context.Background(), "session-1")

	assert.NoError(t, err)
	assert.Empty(t, resp.Items)
	assert.Equal(t, 0.0, resp.Total)
}

func TestCartService_AddItem(t *testing.T) {
	mockBookingRepo := &MockBookingRepository{}
	mockProductRepo := &MockProductRepository{}
	service := newTestService(mockBookingRepo, mockProductRepo)

	ctx := context.Background()
	mockProductRepo.On("GetByID", ctx, int64(1)).Return(tentProduct(), nil).Once()
	mockBookingRepo.On("GetBlockingForProduct", ctx, int64(1), date(2025, 7, 10), date(2025, 7, 12), (*int64)(nil)).
		Return([]*domain.Booking{}, nil).Once()

	resp, err := service.AddItem(ctx, "session-1", addItemRequest())

	assert.NoError(t, err)
	assert.Len(t, resp.Items, 1)
	assert.Equal(t, "Палатка Husky", resp.Items[0].ProductTitle)
	assert.Equal(t, 450.0, resp.Items[0].Subtotal) // 150 * 3 дня
	assert.Equal(t, 450.0, resp.Total)
}

func TestCartService_AddItem_ConflictingRange(t *testing.T) {
	mockBookingRepo := &MockBookingRepository{}
	mockProductRepo := &MockProductRepository{}
	service := newTestService(mockBookingRepo, mockProductRepo)

	ctx := context.Background()
	mockProductRepo.On("GetByID", ctx, int64(1)).Return(tentProduct(), nil).Once()
	mockBookingRepo.On("GetBlockingForProduct", ctx, int64(1), date(2025, 7, 10), date(2025, 7, 12), (*int64)(nil)).
		Return([]*domain.Booking{
			{ID: 5, StartDate: date(2025, 7, 11), EndDate: date(2025, 7, 15), Status: domain.StatusConfirmed},
		}, nil).Once()

	_, err := service.AddItem(ctx, "session-1", addItemRequest())

	assert.ErrorIs(t, err, ErrBookingConflict)
}

func TestCartService_UpdateItemDates_KeepsCapturedPrice(t *testing.T) {
	mockBookingRepo := &MockBookingRepository{}
	mockProductRepo := &MockProductRepository{}
	service := newTestService(mockBookingRepo, mockProductRepo)

	ctx := context.Background()
	mockProductRepo.On("GetByID", ctx, int64(1)).Return(tentProduct(), nil).Once()
	mockBookingRepo.On("GetBlockingForProduct", ctx, int64(1), date(2025, 7, 10), date(2025, 7, 12), (*int64)(nil)).
		Return([]*domain.Booking{}, nil).Once()

	_, err := service.AddItem(ctx, "session-1", addItemRequest())
	assert.NoError(t, err)

	// Подытог пересчитывается по цене, зафиксированной при добавлении,
	// повторного похода в каталог нет
	resp, err := service.UpdateItemDates(ctx, "session-1", &models.UpdateItemRequest{
		ProductID:    1,
		StartDate:    date(2025, 7, 10),
		EndDate:      date(2025, 7, 12),
		NewStartDate: date(2025, 7, 10),
		NewEndDate:   date(2025, 7, 14),
	})

	assert.NoError(t, err)
	assert.Len(t, resp.Items, 1)
	assert.Equal(t, "2025-07-14", resp.Items[0].EndDate)
	assert.Equal(t, 750.0, resp.Items[0].Subtotal) // 150 * 5 дней
	mockProductRepo.AssertNumberOfCalls(t, "GetByID", 1)
}

func TestCartService_UpdateItemDates_LineNotFound(t *testing.T) {
	service := newTestService(&MockBookingRepository{}, &MockProductRepository{})

	_, err := service.UpdateItemDates(context.Background(), "session-1", &models.UpdateItemRequest{
		ProductID:    1,
		StartDate:    date(2025, 7, 10),
		EndDate:      date(2025, 7, 12),
		NewStartDate: date(2025, 7, 11),
		NewEndDate:   date(2025, 7, 13),
	})

	assert.ErrorIs(t, err, ErrLineNotFound)
}

func TestCartService_RemoveItem(t *testing.T) {
	mockBookingRepo := &MockBookingRepository{}
	mockProductRepo := &MockProductRepository{}
	service := newTestService(mockBookingRepo, mockProductRepo)

	ctx := context.Background()
	mockProductRepo.On("GetByID", ctx, int64(1)).Return(tentProduct(), nil).Once()
	mockBookingRepo.On("GetBlockingForProduct", ctx, int64(1), date(2025, 7, 10), date(2025, 7, 12), (*int64)(nil)).
		Return([]*domain.Booking{}, nil).Once()

	_, err := service.AddItem(ctx, "session-1", addItemRequest())
	assert.NoError(t, err)

	resp, err := service.RemoveItem(ctx, "session-1", &models.RemoveItemRequest{
		ProductID: 1,
		StartDate: date(2025, 7, 10),
		EndDate:   date(2025, 7, 12),
	})

	assert.NoError(t, err)
	assert.Empty(t, resp.Items)
}

func TestCartService_Checkout(t *testing.T) {
	mockBookingRepo := &MockBookingRepository{}
	mockProductRepo := &MockProductRepository{}
	service := newTestService(mockBookingRepo, mockProductRepo)

	ctx := context.Background()
	mockProductRepo.On("GetByID", ctx, int64(1)).Return(tentProduct(), nil).Once()
	// Консультативная проверка при добавлении и финальная при оформлении
	mockBookingRepo.On("GetBlockingForProduct", ctx, int64(1), date(2025, 7, 10), date(2025, 7, 12), (*int64)(nil)).
		Return([]*domain.Booking{}, nil).Twice()
	mockBookingRepo.On("Create", ctx, mock.AnythingOfType("*domain.Booking")).
		Run(func(args mock.Arguments) {
			booking := args.Get(1).(*domain.Booking)
			assert.Equal(t, domain.StatusPending, booking.Status)
			assert.Equal(t, "Иван Петров", booking.CustomerName)
		}).
		Return(&domain.Booking{ID: 10, ProductID: 1, TotalPrice: 450, Status: domain.StatusPending}, nil).Once()

	_, err := service.AddItem(ctx, "session-1", addItemRequest())
	assert.NoError(t, err)

	resp, err := service.Checkout(ctx, "session-1", &models.CheckoutRequest{
		CustomerName:  "Иван Петров",
		CustomerEmail: "ivan@example.com",
	})

	assert.NoError(t, err)
	assert.Equal(t, []int64{10}, resp.BookingIDs)
	assert.Equal(t, 450.0, resp.Total)

	// Корзина очищена после оформления
	cartResp, err := service.Get(ctx, "session-1")
	assert.NoError(t, err)
	assert.Empty(t, cartResp.Items)

	mockBookingRepo.AssertExpectations(t)
}

func TestCartService_Checkout_ConflictKeepsCart(t *testing.T) {
	mockBookingRepo := &MockBookingRepository{}
	mockProductRepo := &MockProductRepository{}
	service := newTestService(mockBookingRepo, mockProductRepo)

	ctx := context.Background()
	mockProductRepo.On("GetByID", ctx, int64(1)).Return(tentProduct(), nil).Once()
	// При добавлении диапазон свободен, к моменту оформления занят
	mockBookingRepo.On("GetBlockingForProduct", ctx, int64(1), date(2025, 7, 10), date(2025, 7, 12), (*int64)(nil)).
		Return([]*domain.Booking{}, nil).Once()
	mockBookingRepo.On("GetBlockingForProduct", ctx, int64(1), date(2025, 7, 10), date(2025, 7, 12), (*int64)(nil)).
		Return([]*domain.Booking{
			{ID: 5, StartDate: date(2025, 7, 10), EndDate: date(2025, 7, 12), Status: domain.StatusConfirmed},
		}, nil).Once()

	_, err := service.AddItem(ctx, "session-1", addItemRequest())
	assert.NoError(t, err)

	_, err = service.Checkout(ctx, "session-1", &models.CheckoutRequest{
		CustomerName:  "Иван Петров",
		CustomerEmail: "ivan@example.com",
	})

	assert.ErrorIs(t, err, ErrBookingConflict)
	mockBookingRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)

	// Корзина осталась нетронутой
	cartResp, err := service.Get(ctx, "session-1")
	assert.NoError(t, err)
	assert.Len(t, cartResp.Items, 1)
}

func TestCartService_Checkout_EmptyCart(t *testing.T) {
	service := newTestService(&MockBookingRepository{}, &MockProductRepository{})

	_, err := service.Checkout(context.Background(), "session-1", &models.CheckoutRequest{
		CustomerName:  "Иван Петров",
		CustomerEmail: "ivan@example.com",
	})

	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestCartService_Checkout_ValidationErrors(t *testing.T) {
	service := newTestService(&MockBookingRepository{}, &MockProductRepository{})
	ctx := context.Background()

	testCases := []struct {
		name string
		req  *models.CheckoutRequest
	}{
		{
			name: "Missing customer name",
			req:  &models.CheckoutRequest{CustomerEmail: "ivan@example.com"},
		},
		{
			name: "Email without at sign",
			req:  &models.CheckoutRequest{CustomerName: "Иван", CustomerEmail: "ivan.example.com"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := service.Checkout(ctx, "session-1", tc.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

// failingTxManager имитирует сбой фиксации транзакции
type failingTxManager struct {
	err error
}

func (m *failingTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.err
}

func TestCartService_Checkout_SerializationFailureMapsToConflict(t *testing.T) {
	// Параллельное оформление победило - это конфликт, а не 500, и корзина сохраняется
	mockBookingRepo := &MockBookingRepository{}
	mockProductRepo := &MockProductRepository{}
	txErr := fmt.Errorf("commit transaction: %w", &pq.Error{Code: "40P01"})
	service := NewService(mockBookingRepo, mockProductRepo, &failingTxManager{err: txErr}, noopLogger{})

	ctx := context.Background()
	mockProductRepo.On("GetByID", ctx, int64(1)).Return(tentProduct(), nil).Once()
	mockBookingRepo.On("GetBlockingForProduct", ctx, int64(1), date(2025, 7, 10), date(2025, 7, 12), (*int64)(nil)).
		Return([]*domain.Booking{}, nil).Once()

	_, err := service.AddItem(ctx, "session-1", addItemRequest())
	assert.NoError(t, err)

	_, err = service.Checkout(ctx, "session-1", &models.CheckoutRequest{
		CustomerName:  "Иван Петров",
		CustomerEmail: "ivan@example.com",
	})

	assert.ErrorIs(t, err, ErrBookingConflict)

	// Корзина осталась нетронутой
	cartResp, err := service.Get(ctx, "session-1")
	assert.NoError(t, err)
	assert.Len(t, cartResp.Items, 1)
}
