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
	"github.com/robfig/cron/v3"

	addDisabledPeriodHandler "github.com/m04kA/MCS-BookingService/internal/api/handlers/add_disabled_period"
	cancelBookingHandler "github.com/m04kA/MCS-BookingService/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/m04kA/MCS-BookingService/internal/api/handlers/create_booking"
	deleteDisabledPeriodHandler "github.com/m04kA/MCS-BookingService/internal/api/handlers/delete_disabled_period"
	getAvailableSlotsHandler "github.com/m04kA/MCS-BookingService/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/m04kA/MCS-BookingService/internal/api/handlers/get_booking"
	getClinicBookingsHandler "github.com/m04kA/MCS-BookingService/internal/api/handlers/get_clinic_bookings"
	getScheduleHandler "github.com/m04kA/MCS-BookingService/internal/api/handlers/get_schedule"
	listDisabledPeriodsHandler "github.com/m04kA/MCS-BookingService/internal/api/handlers/list_disabled_periods"
	updateBookingStatusHandler "github.com/m04kA/MCS-BookingService/internal/api/handlers/update_booking_status"
	updateScheduleHandler "github.com/m04kA/MCS-BookingService/internal/api/handlers/update_schedule"
	"github.com/m04kA/MCS-BookingService/internal/api/middleware"
	"github.com/m04kA/MCS-BookingService/internal/config"
	bookingRepo "github.com/m04kA/MCS-BookingService/internal/infra/storage/booking"
	patientRepo "github.com/m04kA/MCS-BookingService/internal/infra/storage/patient"
	periodRepo "github.com/m04kA/MCS-BookingService/internal/infra/storage/period"
	scheduleRepo "github.com/m04kA/MCS-BookingService/internal/infra/storage/schedule"
	bookingsService "github.com/m04kA/MCS-BookingService/internal/service/bookings"
	periodsService "github.com/m04kA/MCS-BookingService/internal/service/periods"
	scheduleService "github.com/m04kA/MCS-BookingService/internal/service/schedule"
	createBookingUC "github.com/m04kA/MCS-BookingService/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/m04kA/MCS-BookingService/internal/usecase/get_available_slots"
	"github.com/m04kA/MCS-BookingService/pkg/dbmetrics"
	"github.com/m04kA/MCS-BookingService/pkg/logger"
	"github.com/m04kA/MCS-BookingService/pkg/metrics"
	"github.com/m04kA/MCS-BookingService/pkg/simpletxmanager"
	"github.com/m04kA/MCS-BookingService/pkg/txmanager"
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

	log.Info("Starting MCS-BookingService...")
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
		bookingRepository  *bookingRepo.Repository
		scheduleRepository *scheduleRepo.Repository
		periodRepository   *periodRepo.Repository
		patientRepository  *patientRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		scheduleRepository = scheduleRepo.NewRepository(wrappedDB)
		periodRepository = periodRepo.NewRepository(wrappedDB)
		patientRepository = patientRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		scheduleRepository = scheduleRepo.NewRepository(db)
		periodRepository = periodRepo.NewRepository(db)
		patientRepository = patientRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, log)
	periodSvc := periodsService.NewService(periodRepository, log)
	scheduleSvc := scheduleService.NewService(scheduleRepository, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		scheduleRepository,
		periodRepository,
		patientRepository,
		txMgr,
		log,
	)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		bookingRepository,
		scheduleRepository,
		periodRepository,
		log,
	)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	getClinicBookings := getClinicBookingsHandler.NewHandler(bookingSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	addDisabledPeriod := addDisabledPeriodHandler.NewHandler(periodSvc, log)
	listDisabledPeriods := listDisabledPeriodsHandler.NewHandler(periodSvc, log)
	deleteDisabledPeriod := deleteDisabledPeriodHandler.NewHandler(periodSvc, log)
	getSchedule := getScheduleHandler.NewHandler(scheduleSvc, log)
	updateSchedule := updateScheduleHandler.NewHandler(scheduleSvc, log)

	// Фоновая задача: просроченные неподтвержденные записи помечаются expired
	cronRunner := cron.New()
	if cfg.Jobs.ExpireOverdueSchedule != "" {
		_, err := cronRunner.AddFunc(cfg.Jobs.ExpireOverdueSchedule, func() {
			expired, err := bookingSvc.ExpireOverduePending(context.Background())
			if err != nil {
				log.Error("ExpireOverduePending job failed: %v", err)
				return
			}
			if expired > 0 {
				log.Info("ExpireOverduePending job: %d bookings expired", expired)
			}
		})
		if err != nil {
			log.Fatal("Failed to schedule expire job (%q): %v", cfg.Jobs.ExpireOverdueSchedule, err)
		}
		cronRunner.Start()
		log.Info("Expire job scheduled: %s", cfg.Jobs.ExpireOverdueSchedule)
	}

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
	// PUBLIC ROUTES (без аутентификации - пациентская сторона)
	// ============================================================

	// Сетка слотов врача на день
	api.HandleFunc("/clinics/{clinicId}/practitioners/{practitionerId}/available-slots",
		getAvailableSlots.Handle).Methods(http.MethodGet)

	// Действующая конфигурация сетки врача
	api.HandleFunc("/clinics/{clinicId}/practitioners/{practitionerId}/schedule",
		getSchedule.Handle).Methods(http.MethodGet)

	// Самозапись пациента
	api.HandleFunc("/clinics/{clinicId}/bookings", createBooking.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header - сторона клиники)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Записи на прием ---
	// Список записей клиники
	protected.HandleFunc("/clinics/{clinicId}/bookings", getClinicBookings.Handle).Methods(http.MethodGet)

	// Получение записи по ID
	protected.HandleFunc("/clinics/{clinicId}/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Смена статуса записи (подтверждение, завершение, неявка)
	protected.HandleFunc("/clinics/{clinicId}/bookings/{bookingId}/status",
		updateBookingStatus.Handle).Methods(http.MethodPatch)

	// Отмена записи
	protected.HandleFunc("/clinics/{clinicId}/bookings/{bookingId}/cancel",
		cancelBooking.Handle).Methods(http.MethodPatch)

	// --- Периоды блокировки ---
	protected.HandleFunc("/clinics/{clinicId}/disabled-periods", listDisabledPeriods.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/clinics/{clinicId}/disabled-periods", addDisabledPeriod.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/clinics/{clinicId}/disabled-periods/{periodId}",
		deleteDisabledPeriod.Handle).Methods(http.MethodDelete)

	// --- Конфигурация сетки ---
	protected.HandleFunc("/clinics/{clinicId}/practitioners/{practitionerId}/schedule",
		updateSchedule.Handle).Methods(http.MethodPut)

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

	// Останавливаем фоновые задачи
	cronCtx := cronRunner.Stop()
	<-cronCtx.Done()

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
