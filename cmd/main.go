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

	cancelApplicationHandler "github.com/m04kA/ACI-ReservationService/internal/api/handlers/cancel_application"
	confirmReservationHandler "github.com/m04kA/ACI-ReservationService/internal/api/handlers/confirm_reservation"
	createApplicationHandler "github.com/m04kA/ACI-ReservationService/internal/api/handlers/create_application"
	getApplicationHandler "github.com/m04kA/ACI-ReservationService/internal/api/handlers/get_application"
	getAvailabilityCalendarHandler "github.com/m04kA/ACI-ReservationService/internal/api/handlers/get_availability_calendar"
	getAvailableSlotsHandler "github.com/m04kA/ACI-ReservationService/internal/api/handlers/get_available_slots"
	getBookingSettingsHandler "github.com/m04kA/ACI-ReservationService/internal/api/handlers/get_booking_settings"
	getWeeklyAvailabilityHandler "github.com/m04kA/ACI-ReservationService/internal/api/handlers/get_weekly_availability"
	listApplicationsHandler "github.com/m04kA/ACI-ReservationService/internal/api/handlers/list_applications"
	removeDateOverrideHandler "github.com/m04kA/ACI-ReservationService/internal/api/handlers/remove_date_override"
	setDateOverrideHandler "github.com/m04kA/ACI-ReservationService/internal/api/handlers/set_date_override"
	updateBookingSettingsHandler "github.com/m04kA/ACI-ReservationService/internal/api/handlers/update_booking_settings"
	updateWeeklyAvailabilityHandler "github.com/m04kA/ACI-ReservationService/internal/api/handlers/update_weekly_availability"
	"github.com/m04kA/ACI-ReservationService/internal/api/middleware"
	"github.com/m04kA/ACI-ReservationService/internal/config"
	applicationRepo "github.com/m04kA/ACI-ReservationService/internal/infra/storage/application"
	availabilityRepo "github.com/m04kA/ACI-ReservationService/internal/infra/storage/availability"
	preferredSlotRepo "github.com/m04kA/ACI-ReservationService/internal/infra/storage/preferredslot"
	settingsRepo "github.com/m04kA/ACI-ReservationService/internal/infra/storage/settings"
	slotRepo "github.com/m04kA/ACI-ReservationService/internal/infra/storage/slot"
	applicationsService "github.com/m04kA/ACI-ReservationService/internal/service/applications"
	availabilityService "github.com/m04kA/ACI-ReservationService/internal/service/availability"
	bookingWindowService "github.com/m04kA/ACI-ReservationService/internal/service/bookingwindow"
	cancelApplicationUC "github.com/m04kA/ACI-ReservationService/internal/usecase/cancel_application"
	confirmReservationUC "github.com/m04kA/ACI-ReservationService/internal/usecase/confirm_reservation"
	createApplicationUC "github.com/m04kA/ACI-ReservationService/internal/usecase/create_application"
	getAvailableSlotsUC "github.com/m04kA/ACI-ReservationService/internal/usecase/get_available_slots"
	"github.com/m04kA/ACI-ReservationService/pkg/dbmetrics"
	"github.com/m04kA/ACI-ReservationService/pkg/logger"
	"github.com/m04kA/ACI-ReservationService/pkg/metrics"
	"github.com/m04kA/ACI-ReservationService/pkg/simpletxmanager"
	"github.com/m04kA/ACI-ReservationService/pkg/txmanager"
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

	log.Info("Starting ACI-ReservationService...")
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
		applications   *applicationRepo.Repository
		preferredSlots *preferredSlotRepo.Repository
		slots          *slotRepo.Repository
		availabilities *availabilityRepo.Repository
		settings       *settingsRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases и сервисах)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		applications = applicationRepo.NewRepository(wrappedDB)
		preferredSlots = preferredSlotRepo.NewRepository(wrappedDB)
		slots = slotRepo.NewRepository(wrappedDB)
		availabilities = availabilityRepo.NewRepository(wrappedDB)
		settings = settingsRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		applications = applicationRepo.NewRepository(db)
		preferredSlots = preferredSlotRepo.NewRepository(db)
		slots = slotRepo.NewRepository(db)
		availabilities = availabilityRepo.NewRepository(db)
		settings = settingsRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	availabilitySvc := availabilityService.NewService(availabilities, applications, slots, log)
	bookingWindowSvc := bookingWindowService.NewService(settings, txMgr, log)
	applicationsSvc := applicationsService.NewService(applications, preferredSlots, log)

	// Инициализируем use cases
	createApplicationUseCase := createApplicationUC.NewUseCase(
		applications,
		preferredSlots,
		slots,
		availabilitySvc,
		bookingWindowSvc,
		txMgr,
		log,
	)

	confirmReservationUseCase := confirmReservationUC.NewUseCase(
		applications,
		preferredSlots,
		slots,
		txMgr,
		log,
	)

	cancelApplicationUseCase := cancelApplicationUC.NewUseCase(
		applications,
		preferredSlots,
		slots,
		txMgr,
		log,
	)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		slots,
		availabilitySvc,
		bookingWindowSvc,
		log,
	)

	// Инициализируем handlers
	createApplication := createApplicationHandler.NewHandler(createApplicationUseCase, log)
	confirmReservation := confirmReservationHandler.NewHandler(confirmReservationUseCase, log)
	cancelApplication := cancelApplicationHandler.NewHandler(cancelApplicationUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getApplication := getApplicationHandler.NewHandler(applicationsSvc, log)
	listApplications := listApplicationsHandler.NewHandler(applicationsSvc, log)
	getWeeklyAvailability := getWeeklyAvailabilityHandler.NewHandler(availabilitySvc, log)
	updateWeeklyAvailability := updateWeeklyAvailabilityHandler.NewHandler(availabilitySvc, log)
	setDateOverride := setDateOverrideHandler.NewHandler(availabilitySvc, log)
	removeDateOverride := removeDateOverrideHandler.NewHandler(availabilitySvc, log)
	getAvailabilityCalendar := getAvailabilityCalendarHandler.NewHandler(availabilitySvc, log)
	getBookingSettings := getBookingSettingsHandler.NewHandler(bookingWindowSvc, log)
	updateBookingSettings := updateBookingSettingsHandler.NewHandler(bookingWindowSvc, log)

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

	// Создание заявки на установку
	api.HandleFunc("/applications", createApplication.Handle).Methods(http.MethodPost)

	// Доступность окон на дату
	api.HandleFunc("/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-Admin-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Заявки ---
	// Карточка заявки с историей кандидатов
	protected.HandleFunc("/applications/{applicationId}", getApplication.Handle).Methods(http.MethodGet)

	// Список заявок с фильтрацией
	protected.HandleFunc("/admin/applications", listApplications.Handle).Methods(http.MethodGet)

	// Подтверждение брони (конверт success/message)
	protected.HandleFunc("/admin/reservations/confirm", confirmReservation.Handle).Methods(http.MethodPost)

	// Отмена заявки (конверт success/message)
	protected.HandleFunc("/admin/applications/cancel", cancelApplication.Handle).Methods(http.MethodPost)

	// --- Доступность ---
	// Недельная сетка
	protected.HandleFunc("/admin/availability/weekly", getWeeklyAvailability.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/admin/availability/weekly", updateWeeklyAvailability.Handle).Methods(http.MethodPut)

	// Оверрайды на конкретные даты
	protected.HandleFunc("/admin/availability/overrides", setDateOverride.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/admin/availability/overrides", removeDateOverride.Handle).Methods(http.MethodDelete)

	// Календарь месяца
	protected.HandleFunc("/admin/availability/calendar", getAvailabilityCalendar.Handle).Methods(http.MethodGet)

	// --- Настройки периода приёма заявок ---
	protected.HandleFunc("/admin/settings/booking", getBookingSettings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/admin/settings/booking", updateBookingSettings.Handle).Methods(http.MethodPut)

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
