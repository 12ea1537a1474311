package update_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/PJ-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/PJ-BookingService/internal/infra/storage/booking"
	productRepo "github.com/m04kA/PJ-BookingService/internal/infra/storage/product"
	"github.com/m04kA/PJ-BookingService/pkg/pqerrors"
)

// UseCase use case для обновления бронирования (даты, статус, заметки)
//
// Изменение дат пересчитывает стоимость и перепроверяет доступность нового
// диапазона, исключая само бронирование. Перевод бронирования из неблокирующего
// статуса (cancelled/completed) в блокирующий (pending/confirmed) тоже
// перепроверяет доступность: за время простоя слот могли занять.
// В остальном переходы статусов свободные - персонал может выставить любой статус
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

// Execute выполняет use case обновления бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateBooking: booking=%d", req.BookingID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("UpdateBooking: validation failed: %v", err)
		return nil, err
	}

	var result *domain.Booking

	// 2. Чтение, проверки и запись в одной сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Получаем бронирование
		booking, err := uc.bookingRepo.GetByID(txCtx, req.BookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				uc.logger.Warn("UpdateBooking: booking id=%d not found", req.BookingID)
				return ErrBookingNotFound
			}
			uc.logger.Error("UpdateBooking: failed to get booking id=%d: %v", req.BookingID, err)
			return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
		}

		// 2.2. Вычисляем новые значения дат
		newStart := booking.StartDate
		newEnd := booking.EndDate
		if req.StartDate != nil {
			newStart = domain.DateOnly(*req.StartDate)
		}
		if req.EndDate != nil {
			newEnd = domain.DateOnly(*req.EndDate)
		}

		if _, err := domain.DurationDays(newStart, newEnd); err != nil {
			uc.logger.Warn("UpdateBooking: invalid range %s..%s for booking id=%d",
				newStart.Format(domain.DateFormat), newEnd.Format(domain.DateFormat), req.BookingID)
			return ErrInvalidRange
		}

		datesChanged := !newStart.Equal(domain.DateOnly(booking.StartDate)) ||
			!newEnd.Equal(domain.DateOnly(booking.EndDate))

		// 2.3. Вычисляем новый статус
		newStatus := booking.Status
		if req.Status != nil {
			newStatus = domain.BookingStatus(*req.Status)
			if !domain.IsValidStatus(newStatus) {
				uc.logger.Warn("UpdateBooking: invalid status=%s for booking id=%d", *req.Status, req.BookingID)
				return ErrInvalidStatus
			}
		}

		// Возврат в блокирующий статус заново резервирует слот
		reactivated := !booking.IsBlocking() &&
			(newStatus == domain.StatusPending || newStatus == domain.StatusConfirmed)

		willBlock := newStatus == domain.StatusPending || newStatus == domain.StatusConfirmed

		// 2.4. Перепроверяем доступность, если изменились даты блокирующего
		// бронирования или бронирование возвращается в блокирующий статус
		if willBlock && (datesChanged || reactivated) {
			conflicts, err := uc.bookingRepo.GetBlockingForProduct(txCtx, booking.ProductID, newStart, newEnd, &booking.ID)
			if err != nil {
				uc.logger.Error("UpdateBooking: failed to get blocking bookings: %v", err)
				return fmt.Errorf("%w: failed to get blocking bookings: %v", ErrInternal, err)
			}
			if len(conflicts) > 0 {
				uc.logger.Warn("UpdateBooking: booking id=%d conflicts with %d bookings in %s..%s",
					req.BookingID, len(conflicts),
					newStart.Format(domain.DateFormat), newEnd.Format(domain.DateFormat))
				return ErrBookingConflict
			}
		}

		// 2.5. Пересчитываем стоимость при изменении дат
		if datesChanged {
			product, err := uc.productRepo.GetByID(txCtx, booking.ProductID)
			if err != nil {
				if errors.Is(err, productRepo.ErrProductNotFound) {
					uc.logger.Warn("UpdateBooking: product id=%d not found for booking id=%d",
						booking.ProductID, req.BookingID)
					return ErrProductNotFound
				}
				uc.logger.Error("UpdateBooking: failed to get product id=%d: %v", booking.ProductID, err)
				return fmt.Errorf("%w: failed to get product: %v", ErrInternal, err)
			}

			totalPrice, err := domain.ComputeTotal(product.PricePerDay, newStart, newEnd)
			if err != nil {
				return fmt.Errorf("%w: failed to compute total: %v", ErrInternal, err)
			}

			booking.StartDate = newStart
			booking.EndDate = newEnd
			booking.TotalPrice = totalPrice
		}

		booking.Status = newStatus
		if req.Notes != nil {
			booking.Notes = req.Notes
		}

		// 2.6. Сохраняем изменения
		// Для смены одного лишь статуса достаточно точечного обновления
		if !datesChanged && req.Notes == nil {
			err = uc.bookingRepo.UpdateStatus(txCtx, booking.ID, newStatus)
		} else {
			err = uc.bookingRepo.Update(txCtx, booking)
		}
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			uc.logger.Error("UpdateBooking: failed to update booking id=%d: %v", req.BookingID, err)
			return fmt.Errorf("%w: failed to update booking: %v", ErrInternal, err)
		}

		result = booking
		return nil
	})

	if err != nil {
		// Сбой сериализации означает, что параллельное изменение затронуло диапазон
		if pqerrors.IsSerializationFailure(err) {
			uc.logger.Warn("UpdateBooking: serialization failure for booking id=%d, treating as conflict", req.BookingID)
			return nil, ErrBookingConflict
		}
		return nil, err
	}

	uc.logger.Info("UpdateBooking: successfully updated booking id=%d, status=%s, total=%.2f",
		result.ID, result.Status, result.TotalPrice)

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
