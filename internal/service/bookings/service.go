package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/PJ-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/PJ-BookingService/internal/infra/storage/booking"
	"github.com/m04kA/PJ-BookingService/internal/service/bookings/models"
)

// Service сервис для работы с бронированиями (чтение, удаление, массовые действия)
// Создание и обновление с перепроверкой доступности живут в отдельных usecases
type Service struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d", id)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(booking), nil
}

// GetProductBookings получает бронирования продукта с гибкой фильтрацией
// Используется административным экраном управления бронированиями
//
// Примеры использования:
// - Все блокирующие бронирования: GetProductBookings(ctx, &GetProductBookingsRequest{ProductID: 123})
// - Бронирования в окне дат: указать StartDate и EndDate
// - Только подтвержденные: указать Status = "confirmed"
// - Включая отмененные и завершенные: IncludeInactive = true
func (s *Service) GetProductBookings(ctx context.Context, req *models.GetProductBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetProductBookings: fetching bookings for product=%d", req.ProductID)

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("GetProductBookings: invalid filter for product=%d: %v", req.ProductID, err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	bookings, err := s.bookingRepo.GetWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetProductBookings: repository error for product=%d: %v", req.ProductID, err)
		return nil, fmt.Errorf("%w: GetProductBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetProductBookings: successfully fetched %d bookings for product=%d", len(bookings), req.ProductID)
	return models.FromDomainBookingList(bookings), nil
}

// ConfirmAll массово подтверждает бронирования
// Возвращает количество обновленных записей; несуществующие ID молча пропускаются
// Массовое действие персонала, перепроверка доступности не выполняется
func (s *Service) ConfirmAll(ctx context.Context, ids []int64) (int64, error) {
	return s.updateStatusBulk(ctx, ids, domain.StatusConfirmed)
}

// CancelAll массово отменяет бронирования
// Возвращает количество обновленных записей; несуществующие ID молча пропускаются
func (s *Service) CancelAll(ctx context.Context, ids []int64) (int64, error) {
	return s.updateStatusBulk(ctx, ids, domain.StatusCancelled)
}

func (s *Service) updateStatusBulk(ctx context.Context, ids []int64, status domain.BookingStatus) (int64, error) {
	s.logger.Info("updateStatusBulk: setting status=%s for %d bookings", status, len(ids))

	if len(ids) == 0 {
		return 0, fmt.Errorf("%w: booking ids are required", ErrInvalidInput)
	}

	updated, err := s.bookingRepo.UpdateStatusBulk(ctx, ids, status)
	if err != nil {
		s.logger.Error("updateStatusBulk: repository error: %v", err)
		return 0, fmt.Errorf("%w: updateStatusBulk - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("updateStatusBulk: updated %d of %d bookings to status=%s", updated, len(ids), status)
	return updated, nil
}

// Delete удаляет бронирование (физическое удаление, необратимо)
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting booking id=%d", id)

	if err := s.bookingRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Delete: booking id=%d not found", id)
			return ErrBookingNotFound
		}
		s.logger.Error("Delete: repository error for booking id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted booking id=%d", id)
	return nil
}
