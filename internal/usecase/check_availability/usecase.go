package check_availability

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/PJ-BookingService/internal/domain"
	productRepo "github.com/m04kA/PJ-BookingService/internal/infra/storage/product"
)

// UseCase use case проверки доступности продукта на диапазон дат
// Проверка консультативная: без блокировок, выполняется на чтении
// Гарантию от двойного бронирования дает сериализуемая транзакция
// в usecase создания бронирования
type UseCase struct {
	bookingRepo BookingRepository
	productRepo ProductRepository
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	productRepo ProductRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		productRepo: productRepo,
		logger:      logger,
	}
}

// Execute выполняет use case проверки доступности
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CheckAvailability: product=%d, range=%s..%s",
		req.ProductID, req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CheckAvailability: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем, что продукт существует и активен
	if _, err := uc.productRepo.GetByID(ctx, req.ProductID); err != nil {
		if errors.Is(err, productRepo.ErrProductNotFound) {
			uc.logger.Warn("CheckAvailability: product id=%d not found", req.ProductID)
			return nil, ErrProductNotFound
		}
		uc.logger.Error("CheckAvailability: failed to get product id=%d: %v", req.ProductID, err)
		return nil, fmt.Errorf("%w: failed to get product: %v", ErrInternal, err)
	}

	// 3. Получаем блокирующие бронирования, пересекающиеся с диапазоном
	// Отмененные и завершенные бронирования не резервируют слот
	conflicts, err := uc.bookingRepo.GetBlockingForProduct(ctx, req.ProductID, req.StartDate, req.EndDate, req.ExcludeBookingID)
	if err != nil {
		uc.logger.Error("CheckAvailability: failed to get bookings for product id=%d: %v", req.ProductID, err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	available := len(conflicts) == 0
	blockedDates := []time.Time{}
	if !available {
		blockedDates = collectBlockedDates(conflicts)
	}

	uc.logger.Info("CheckAvailability: product=%d available=%t, conflicts=%d",
		req.ProductID, available, len(conflicts))

	return &Response{
		ProductID:    req.ProductID,
		StartDate:    domain.DateOnly(req.StartDate),
		EndDate:      domain.DateOnly(req.EndDate),
		Available:    available,
		BlockedDates: blockedDates,
	}, nil
}
