package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	addCartItemHandler "github.com/m04kA/PJ-BookingService/internal/api/handlers/add_cart_item"
	bulkUpdateStatusHandler "github.com/m04kA/PJ-BookingService/internal/api/handlers/bulk_update_status"
	checkAvailabilityHandler "github.com/m04kA/PJ-BookingService/internal/api/handlers/check_availability"
	checkoutCartHandler "github.com/m04kA/PJ-BookingService/internal/api/handlers/checkout_cart"
	createBookingHandler "github.com/m04kA/PJ-BookingService/internal/api/handlers/create_booking"
	deleteBookingHandler "github.com/m04kA/PJ-BookingService/internal/api/handlers/delete_booking"
	getBookingHandler "github.com/m04kA/PJ-BookingService/internal/api/handlers/get_booking"
	getCalendarFeedHandler "github.com/m04kA/PJ-BookingService/internal/api/handlers/get_calendar_feed"
	getCartHandler "github.com/m04kA/PJ-BookingService/internal/api/handlers/get_cart"
	getProductBookingsHandler "github.com/m04kA/PJ-BookingService/internal/api/handlers/get_product_bookings"
	removeCartItemHandler "github.com/m04kA/PJ-BookingService/internal/api/handlers/remove_cart_item"
	updateBookingHandler "github.com/m04kA/PJ-BookingService/internal/api/handlers/update_booking"
	updateCartItemHandler "github.com/m04kA/PJ-BookingService/internal/api/handlers/update_cart_item"
	"github.com/m04kA/PJ-BookingService/internal/api/middleware"
	"github.com/m04kA/PJ-BookingService/internal/config"
	bookingRepo "github.com/m04kA/PJ-BookingService/internal/infra/storage/booking"
	productRepo "github.com/m04kA/PJ-BookingService/internal/infra/storage/product"
	bookingsService "github.com/m04kA/PJ-BookingService/internal/service/bookings"
	cartService "github.com/m04kA/PJ-BookingService/internal/service/cart"
	checkAvailabilityUC "github.com/m04kA/PJ-BookingService/internal/usecase/check_availability"
	createBookingUC "github.com/m04kA/PJ-BookingService/internal/usecase/create_booking"
	getCalendarFeedUC "github.com/m04kA/PJ-BookingService/internal/usecase/get_calendar_feed"
	updateBookingUC "github.com/m04kA/PJ-BookingService/internal/usecase/update_booking"
	"github.com/m04kA/PJ-BookingService/pkg/dbmetrics"
	"github.com/m04kA/PJ-BookingService/pkg/logger"
	"github.com/m04kA/PJ-BookingService/pkg/metrics"
	"github.com/m04kA/PJ-BookingService/pkg/simpletxmanager"
	"github.com/m04kA/PJ-BookingService/pkg/txmanager"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting PJ-BookingService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository *bookingRepo.Repository
		productRepository *productRepo.Repository
	)

	// Интерфейс transaction manager, общий для usecases и сервисов
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		productRepository = productRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		productRepository = productRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, log)
	cartSvc := cartService.NewService(bookingRepository, productRepository, txMgr, log)

	// Инициализируем use cases
	checkAvailabilityUseCase := checkAvailabilityUC.NewUseCase(
		bookingRepository,
		productRepository,
		log,
	)
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		productRepository,
		txMgr,
		log,
	)
	updateBookingUseCase := updateBookingUC.NewUseCase(
		bookingRepository,
		productRepository,
		txMgr,
		log,
	)
	getCalendarFeedUseCase := getCalendarFeedUC.NewUseCase(bookingRepository, log)

	// Инициализируем handlers
	checkAvailability := checkAvailabilityHandler.NewHandler(checkAvailabilityUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	updateBooking := updateBookingHandler.NewHandler(updateBookingUseCase, log)
	deleteBooking := deleteBookingHandler.NewHandler(bookingSvc, log)
	getProductBookings := getProductBookingsHandler.NewHandler(bookingSvc, log)
	bulkUpdateStatus := bulkUpdateStatusHandler.NewHandler(bookingSvc, log)
	getCalendarFeed := getCalendarFeedHandler.NewHandler(getCalendarFeedUseCase, log)
	getCart := getCartHandler.NewHandler(cartSvc, log)
	addCartItem := addCartItemHandler.NewHandler(cartSvc, log)
	updateCartItem := updateCartItemHandler.NewHandler(cartSvc, log)
	removeCartItem := removeCartItemHandler.NewHandler(cartSvc, log)
	checkoutCart := checkoutCartHandler.NewHandler(cartSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Проверка доступности продукта на диапазон дат
	api.HandleFunc("/products/{productId}/availability", checkAvailability.Handle).Methods(http.MethodGet)

	// Лента событий для календарного виджета
	api.HandleFunc("/calendar/events", getCalendarFeed.Handle).Methods(http.MethodGet)

	// ============================================================
	// SESSION ROUTES (требуют X-Session-ID header)
	// ============================================================

	session := api.PathPrefix("/cart").Subrouter()
	session.Use(middleware.Session)

	// Содержимое корзины
	session.HandleFunc("", getCart.Handle).Methods(http.MethodGet)

	// Управление позициями корзины
	session.HandleFunc("/items", addCartItem.Handle).Methods(http.MethodPost)
	session.HandleFunc("/items", updateCartItem.Handle).Methods(http.MethodPatch)
	session.HandleFunc("/items", removeCartItem.Handle).Methods(http.MethodDelete)

	// Оформление корзины в бронирования
	session.HandleFunc("/checkout", checkoutCart.Handle).Methods(http.MethodPost)

	// ============================================================
	// STAFF ROUTES (требуют X-Staff-ID header)
	// ============================================================

	staff := api.PathPrefix("").Subrouter()
	staff.Use(middleware.Auth)

	// --- Бронирования ---
	// Создание бронирования
	staff.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Массовое подтверждение/отмена
	staff.HandleFunc("/bookings/bulk-status", bulkUpdateStatus.Handle).Methods(http.MethodPost)

	// Получение бронирования по ID
	staff.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Обновление бронирования (даты, статус, заметки)
	staff.HandleFunc("/bookings/{bookingId}", updateBooking.Handle).Methods(http.MethodPut)

	// Удаление бронирования
	staff.HandleFunc("/bookings/{bookingId}", deleteBooking.Handle).Methods(http.MethodDelete)

	// Бронирования продукта с фильтрацией
	staff.HandleFunc("/products/{productId}/bookings", getProductBookings.Handle).Methods(http.MethodGet)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем сбор метрик connection pool
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
