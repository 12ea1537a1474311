package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/PJ-BookingService/internal/domain"
	productRepo "github.com/m04kA/PJ-BookingService/internal/infra/storage/product"
	"github.com/m04kA/PJ-BookingService/pkg/pqerrors"
)

// UseCase use case для создания бронирования
// Проверка доступности и вставка выполняются в одной сериализуемой транзакции:
// две параллельные заявки на пересекающиеся диапазоны не могут пройти обе -
// проигравшая получает ErrBookingConflict вместо тихого двойного бронирования
type UseCase struct {
	bookingRepo BookingRepository
	productRepo ProductRepository
	txManager   TransactionManager
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	productRepo ProductRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		productRepo: productRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// Execute выполняет use case создания бронирования
// Создание атомарно: при любой ошибке ничего не сохраняется
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: product=%d, customer=%s, range=%s..%s",
		req.ProductID, req.CustomerName,
		req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем продукт (неактивный продукт бронировать нельзя)
	product, err := uc.productRepo.GetByID(ctx, req.ProductID)
	if err != nil {
		if errors.Is(err, productRepo.ErrProductNotFound) {
			uc.logger.Warn("CreateBooking: product id=%d not found", req.ProductID)
			return nil, ErrProductNotFound
		}
		uc.logger.Error("CreateBooking: failed to get product id=%d: %v", req.ProductID, err)
		return nil, fmt.Errorf("%w: failed to get product: %v", ErrInternal, err)
	}

	// 3. Вычисляем стоимость: цена за день * количество дней (включительно)
	// Для продукта с ценой по запросу стоимость равна 0 и уточняется вручную
	totalPrice, err := domain.ComputeTotal(product.PricePerDay, req.StartDate, req.EndDate)
	if err != nil {
		// Диапазон уже проверен валидацией
		return nil, fmt.Errorf("%w: failed to compute total: %v", ErrInternal, err)
	}

	// Переменная для хранения результата
	var result *domain.Booking

	// 4. Проверка доступности и вставка в одной сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 4.1. Получаем блокирующие бронирования с блокировкой строк (FOR UPDATE)
		conflicts, err := uc.bookingRepo.GetBlockingForProduct(txCtx, req.ProductID, req.StartDate, req.EndDate, nil)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get blocking bookings: %v", err)
			return fmt.Errorf("%w: failed to get blocking bookings: %v", ErrInternal, err)
		}

		if len(conflicts) > 0 {
			uc.logger.Warn("CreateBooking: product id=%d has %d conflicting bookings in %s..%s",
				req.ProductID, len(conflicts),
				req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat))
			return ErrBookingConflict
		}

		// 4.2. Создаем бронирование со статусом pending
		booking := &domain.Booking{
			ProductID:     req.ProductID,
			CustomerName:  req.CustomerName,
			CustomerEmail: req.CustomerEmail,
			CustomerPhone: req.CustomerPhone,
			StartDate:     domain.DateOnly(req.StartDate),
			EndDate:       domain.DateOnly(req.EndDate),
			TotalPrice:    totalPrice,
			Status:        domain.StatusPending,
			Notes:         req.Notes,
			// Денормализация названия продукта для истории
			ProductTitle: product.Title,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		// Сбой сериализации означает, что параллельная транзакция заняла диапазон
		if pqerrors.IsSerializationFailure(err) {
			uc.logger.Warn("CreateBooking: serialization failure for product id=%d, treating as conflict", req.ProductID)
			return nil, ErrBookingConflict
		}
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d, total=%.2f", result.ID, result.TotalPrice)

	return &Response{
		ID:            result.ID,
		ProductID:     result.ProductID,
		ProductTitle:  result.ProductTitle,
		CustomerName:  result.CustomerName,
		CustomerEmail: result.CustomerEmail,
		CustomerPhone: result.CustomerPhone,
		StartDate:     result.StartDate,
		EndDate:       result.EndDate,
		DurationDays:  result.DurationDays(),
		TotalPrice:    result.TotalPrice,
		Status:        string(result.Status),
		Notes:         result.Notes,
		CreatedAt:     result.CreatedAt,
		UpdatedAt:     result.UpdatedAt,
	}, nil
}
