package cart

import (
	"context"
	"time"

	"github.com/m04kA/PJ-BookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	GetBlockingForProduct(ctx context.Context, productID int64, start, end time.Time, excludeID *int64) ([]*domain.Booking, error)
}

// ProductRepository интерфейс репозитория продуктов
type ProductRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Product, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
