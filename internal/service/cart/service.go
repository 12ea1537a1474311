package cart

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/m04kA/PJ-BookingService/internal/domain"
	productRepo "github.com/m04kA/PJ-BookingService/internal/infra/storage/product"
	"github.com/m04kA/PJ-BookingService/internal/service/cart/models"
	"github.com/m04kA/PJ-BookingService/pkg/pqerrors"
)

// Service сервис корзины
//
// Корзина живет в памяти процесса и привязана к сессии (X-Session-ID).
// В хранилище она не сохраняется: до оформления это черновик клиента,
// после оформления позиции становятся бронированиями со статусом pending.
// Позиция корзины идентифицируется кортежем (продукт, начало, конец) -
// один продукт на разные даты образует разные позиции
type Service struct {
	mu       sync.RWMutex
	sessions map[string]*domain.Cart

	bookingRepo BookingRepository
	productRepo ProductRepository
	txManager   TransactionManager
	logger      Logger
}

// NewService создает новый экземпляр сервиса корзины
func NewService(
	bookingRepo BookingRepository,
	productRepo ProductRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		sessions:    make(map[string]*domain.Cart),
		bookingRepo: bookingRepo,
		productRepo: productRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// Get возвращает содержимое корзины сессии
func (s *Service) Get(ctx context.Context, sessionID string) (*models.CartResponse, error) {
	if sessionID == "" {
		return nil, fmt.Errorf("%w: sessionID is required", ErrInvalidInput)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	cart, ok := s.sessions[sessionID]
	if !ok {
		return models.EmptyCartResponse(), nil
	}

	return models.FromDomainCart(cart), nil
}

// AddItem добавляет продукт на диапазон дат в корзину
// Цена за день фиксируется на момент добавления
// Занятость диапазона проверяется консультативно: окончательная проверка
// выполняется при оформлении внутри сериализуемой транзакции
func (s *Service) AddItem(ctx context.Context, sessionID string, req *models.AddItemRequest) (*models.CartResponse, error) {
	s.logger.Info("AddItem: session=%s, product=%d, range=%s..%s",
		sessionID, req.ProductID,
		req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat))

	if err := validateItemRange(sessionID, req.ProductID, req.StartDate, req.EndDate); err != nil {
		s.logger.Warn("AddItem: validation failed: %v", err)
		return nil, err
	}

	// Продукт должен существовать и быть активным
	product, err := s.productRepo.GetByID(ctx, req.ProductID)
	if err != nil {
		if errors.Is(err, productRepo.ErrProductNotFound) {
			s.logger.Warn("AddItem: product id=%d not found", req.ProductID)
			return nil, ErrProductNotFound
		}
		s.logger.Error("AddItem: failed to get product id=%d: %v", req.ProductID, err)
		return nil, fmt.Errorf("%w: failed to get product: %v", ErrInternal, err)
	}

	// Консультативная проверка занятости, чтобы не копить заведомо конфликтные позиции
	conflicts, err := s.bookingRepo.GetBlockingForProduct(ctx, req.ProductID, req.StartDate, req.EndDate, nil)
	if err != nil {
		s.logger.Error("AddItem: failed to get blocking bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get blocking bookings: %v", ErrInternal, err)
	}
	if len(conflicts) > 0 {
		s.logger.Warn("AddItem: product id=%d is not available in %s..%s",
			req.ProductID, req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat))
		return nil, ErrBookingConflict
	}

	subtotal, err := domain.ComputeTotal(product.PricePerDay, req.StartDate, req.EndDate)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to compute subtotal: %v", ErrInternal, err)
	}

	item := domain.CartLineItem{
		ProductID:    product.ID,
		ProductTitle: product.Title,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		PricePerDay:  product.PricePerDay,
		Subtotal:     subtotal,
		AddedAt:      time.Now(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cart, ok := s.sessions[sessionID]
	if !ok {
		cart = domain.NewCart()
		s.sessions[sessionID] = cart
	}
	cart.Add(item)

	s.logger.Info("AddItem: session=%s now has %d items", sessionID, cart.Len())
	return models.FromDomainCart(cart), nil
}

// UpdateItemDates меняет даты позиции корзины
// Подытог пересчитывается по цене, зафиксированной при добавлении
func (s *Service) UpdateItemDates(ctx context.Context, sessionID string, req *models.UpdateItemRequest) (*models.CartResponse, error) {
	s.logger.Info("UpdateItemDates: session=%s, product=%d, %s..%s -> %s..%s",
		sessionID, req.ProductID,
		req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat),
		req.NewStartDate.Format(domain.DateFormat), req.NewEndDate.Format(domain.DateFormat))

	if err := validateItemRange(sessionID, req.ProductID, req.NewStartDate, req.NewEndDate); err != nil {
		s.logger.Warn("UpdateItemDates: validation failed: %v", err)
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cart, ok := s.sessions[sessionID]
	if !ok {
		return nil, ErrLineNotFound
	}

	key := domain.CartLineKey{
		ProductID: req.ProductID,
		StartDate: domain.DateOnly(req.StartDate),
		EndDate:   domain.DateOnly(req.EndDate),
	}

	item, ok := cart.Get(key)
	if !ok {
		s.logger.Warn("UpdateItemDates: line not found in session=%s", sessionID)
		return nil, ErrLineNotFound
	}

	subtotal, err := domain.ComputeTotal(item.PricePerDay, req.NewStartDate, req.NewEndDate)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to compute subtotal: %v", ErrInternal, err)
	}

	// Ключ позиции включает даты, поэтому правка дат - это замена позиции
	cart.Remove(key)
	item.StartDate = domain.DateOnly(req.NewStartDate)
	item.EndDate = domain.DateOnly(req.NewEndDate)
	item.Subtotal = subtotal
	cart.Add(item)

	return models.FromDomainCart(cart), nil
}

// RemoveItem удаляет позицию из корзины
func (s *Service) RemoveItem(ctx context.Context, sessionID string, req *models.RemoveItemRequest) (*models.CartResponse, error) {
	s.logger.Info("RemoveItem: session=%s, product=%d", sessionID, req.ProductID)

	if err := validateItemRange(sessionID, req.ProductID, req.StartDate, req.EndDate); err != nil {
		s.logger.Warn("RemoveItem: validation failed: %v", err)
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cart, ok := s.sessions[sessionID]
	if !ok {
		return nil, ErrLineNotFound
	}

	key := domain.CartLineKey{
		ProductID: req.ProductID,
		StartDate: domain.DateOnly(req.StartDate),
		EndDate:   domain.DateOnly(req.EndDate),
	}

	if !cart.Remove(key) {
		s.logger.Warn("RemoveItem: line not found in session=%s", sessionID)
		return nil, ErrLineNotFound
	}

	return models.FromDomainCart(cart), nil
}

// Checkout оформляет корзину: каждая позиция становится бронированием
// со статусом pending
//
// Оформление атомарно: все позиции проверяются и сохраняются в одной
// сериализуемой транзакции. Если хотя бы одна позиция конфликтует с
// существующим бронированием, не сохраняется ничего и корзина остается
// нетронутой - клиент видит, какая позиция не прошла
func (s *Service) Checkout(ctx context.Context, sessionID string, req *models.CheckoutRequest) (*models.CheckoutResponse, error) {
	s.logger.Info("Checkout: session=%s, customer=%s", sessionID, req.CustomerName)

	if err := validateCheckout(sessionID, req); err != nil {
		s.logger.Warn("Checkout: validation failed: %v", err)
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cart, ok := s.sessions[sessionID]
	if !ok || cart.Len() == 0 {
		return nil, ErrEmptyCart
	}

	items := cart.Items()
	created := make([]*domain.Booking, 0, len(items))

	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		for _, item := range items {
			// Перепроверяем занятость под блокировкой: консультативная проверка
			// при добавлении могла устареть
			conflicts, err := s.bookingRepo.GetBlockingForProduct(txCtx, item.ProductID, item.StartDate, item.EndDate, nil)
			if err != nil {
				s.logger.Error("Checkout: failed to get blocking bookings for product id=%d: %v", item.ProductID, err)
				return fmt.Errorf("%w: failed to get blocking bookings: %v", ErrInternal, err)
			}
			if len(conflicts) > 0 {
				s.logger.Warn("Checkout: product id=%d is no longer available in %s..%s",
					item.ProductID, item.StartDate.Format(domain.DateFormat), item.EndDate.Format(domain.DateFormat))
				return fmt.Errorf("%w: product %d for %s..%s", ErrBookingConflict,
					item.ProductID, item.StartDate.Format(domain.DateFormat), item.EndDate.Format(domain.DateFormat))
			}

			booking := &domain.Booking{
				ProductID:     item.ProductID,
				CustomerName:  req.CustomerName,
				CustomerEmail: req.CustomerEmail,
				CustomerPhone: req.CustomerPhone,
				StartDate:     item.StartDate,
				EndDate:       item.EndDate,
				TotalPrice:    item.Subtotal,
				Status:        domain.StatusPending,
				Notes:         req.Notes,
				ProductTitle:  item.ProductTitle,
			}

			result, err := s.bookingRepo.Create(txCtx, booking)
			if err != nil {
				s.logger.Error("Checkout: failed to create booking for product id=%d: %v", item.ProductID, err)
				return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
			}

			created = append(created, result)
		}
		return nil
	})

	if err != nil {
		// Ничего не сохранено, корзина не очищается
		// Сбой сериализации означает, что параллельная транзакция заняла один из диапазонов
		if pqerrors.IsSerializationFailure(err) {
			s.logger.Warn("Checkout: serialization failure for session=%s, treating as conflict", sessionID)
			return nil, ErrBookingConflict
		}
		return nil, err
	}

	// Все позиции оформлены - корзина очищается целиком
	cart.Clear()
	delete(s.sessions, sessionID)

	s.logger.Info("Checkout: session=%s created %d bookings", sessionID, len(created))
	return models.FromCreatedBookings(created), nil
}

// validateItemRange валидирует идентификаторы и диапазон дат позиции
func validateItemRange(sessionID string, productID int64, start, end time.Time) error {
	if sessionID == "" {
		return fmt.Errorf("%w: sessionID is required", ErrInvalidInput)
	}
	if productID <= 0 {
		return fmt.Errorf("%w: productID must be positive", ErrInvalidInput)
	}
	if start.IsZero() || end.IsZero() {
		return fmt.Errorf("%w: startDate and endDate are required", ErrInvalidInput)
	}
	if _, err := domain.DurationDays(start, end); err != nil {
		return ErrInvalidRange
	}
	return nil
}

// validateCheckout валидирует данные клиента при оформлении
func validateCheckout(sessionID string, req *models.CheckoutRequest) error {
	if sessionID == "" {
		return fmt.Errorf("%w: sessionID is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.CustomerName) == "" {
		return fmt.Errorf("%w: customerName is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.CustomerEmail) == "" {
		return fmt.Errorf("%w: customerEmail is required", ErrInvalidInput)
	}
	if !strings.Contains(req.CustomerEmail, "@") {
		return fmt.Errorf("%w: customerEmail is not a valid email address", ErrInvalidInput)
	}
	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes are too long", ErrInvalidInput)
	}
	return nil
}
