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
	"github.com/redis/go-redis/v9"

	"github.com/vinaywa/Seat-Booking-System/internal/api/handlers"
	allocateWeekHandler "github.com/vinaywa/Seat-Booking-System/internal/api/handlers/allocate_week"
	blockSeatHandler "github.com/vinaywa/Seat-Booking-System/internal/api/handlers/block_seat"
	bookSeatHandler "github.com/vinaywa/Seat-Booking-System/internal/api/handlers/book_seat"
	getAvailableSeatsHandler "github.com/vinaywa/Seat-Booking-System/internal/api/handlers/get_available_seats"
	getBookingsByDateHandler "github.com/vinaywa/Seat-Booking-System/internal/api/handlers/get_bookings_by_date"
	getSeatGridHandler "github.com/vinaywa/Seat-Booking-System/internal/api/handlers/get_seat_grid"
	getUserBookingsHandler "github.com/vinaywa/Seat-Booking-System/internal/api/handlers/get_user_bookings"
	getUtilizationHandler "github.com/vinaywa/Seat-Booking-System/internal/api/handlers/get_utilization"
	manageHolidaysHandler "github.com/vinaywa/Seat-Booking-System/internal/api/handlers/manage_holidays"
	manageSeatsHandler "github.com/vinaywa/Seat-Booking-System/internal/api/handlers/manage_seats"
	manageSquadsHandler "github.com/vinaywa/Seat-Booking-System/internal/api/handlers/manage_squads"
	manageUsersHandler "github.com/vinaywa/Seat-Booking-System/internal/api/handlers/manage_users"
	releaseBookingHandler "github.com/vinaywa/Seat-Booking-System/internal/api/handlers/release_booking"
	vacateSeatHandler "github.com/vinaywa/Seat-Booking-System/internal/api/handlers/vacate_seat"
	"github.com/vinaywa/Seat-Booking-System/internal/api/middleware"
	"github.com/vinaywa/Seat-Booking-System/internal/config"
	"github.com/vinaywa/Seat-Booking-System/internal/infra/cache/availability"
	"github.com/vinaywa/Seat-Booking-System/internal/infra/migrations"
	allocationRepo "github.com/vinaywa/Seat-Booking-System/internal/infra/storage/allocation"
	bookingRepo "github.com/vinaywa/Seat-Booking-System/internal/infra/storage/booking"
	holidayRepo "github.com/vinaywa/Seat-Booking-System/internal/infra/storage/holiday"
	seatRepo "github.com/vinaywa/Seat-Booking-System/internal/infra/storage/seat"
	squadRepo "github.com/vinaywa/Seat-Booking-System/internal/infra/storage/squad"
	userRepo "github.com/vinaywa/Seat-Booking-System/internal/infra/storage/user"
	"github.com/vinaywa/Seat-Booking-System/internal/integrations/eventbus"
	bookingsService "github.com/vinaywa/Seat-Booking-System/internal/service/bookings"
	holidaysService "github.com/vinaywa/Seat-Booking-System/internal/service/holidays"
	"github.com/vinaywa/Seat-Booking-System/internal/service/ledgerevents"
	"github.com/vinaywa/Seat-Booking-System/internal/service/seating"
	seatsService "github.com/vinaywa/Seat-Booking-System/internal/service/seats"
	squadsService "github.com/vinaywa/Seat-Booking-System/internal/service/squads"
	usersService "github.com/vinaywa/Seat-Booking-System/internal/service/users"
	allocateWeekUC "github.com/vinaywa/Seat-Booking-System/internal/usecase/allocate_week"
	blockSeatUC "github.com/vinaywa/Seat-Booking-System/internal/usecase/block_seat"
	bookSeatUC "github.com/vinaywa/Seat-Booking-System/internal/usecase/book_seat"
	getAvailableSeatsUC "github.com/vinaywa/Seat-Booking-System/internal/usecase/get_available_seats"
	getSeatGridUC "github.com/vinaywa/Seat-Booking-System/internal/usecase/get_seat_grid"
	getUtilizationUC "github.com/vinaywa/Seat-Booking-System/internal/usecase/get_utilization"
	vacateSeatUC "github.com/vinaywa/Seat-Booking-System/internal/usecase/vacate_seat"
	"github.com/vinaywa/Seat-Booking-System/pkg/dbmetrics"
	"github.com/vinaywa/Seat-Booking-System/pkg/logger"
	"github.com/vinaywa/Seat-Booking-System/pkg/metrics"
	"github.com/vinaywa/Seat-Booking-System/pkg/txmanager"
)

// seatCache кэш доступности, общий для чтения, инвалидации по дате и сброса целиком
type seatCache interface {
	getAvailableSeatsUC.AvailabilityCache
	ledgerevents.AvailabilityCache
	seatsService.AvailabilityCache
}

// eventPublisher публикатор событий с закрытием соединения
type eventPublisher interface {
	ledgerevents.Publisher
	Close() error
}

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

	log.Info("Starting Seat-Booking-System...")

	location, err := cfg.Booking.Location()
	if err != nil {
		log.Fatal("Invalid office timezone %q: %v", cfg.Booking.Timezone, err)
	}
	log.Info("Office timezone=%s, block cutoff=%d:00", location, cfg.Booking.CutoffHour)

	// Инициализируем метрики (если включены)
	// nil *metrics.Metrics допустим: dbmetrics и RecordBooking его игнорируют
	var metricsCollector *metrics.Metrics
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

	// Применяем миграции (схема и 50 мест)
	if cfg.Database.AutoMigrate {
		migrator, err := migrations.NewMigrator(db, log)
		if err != nil {
			log.Fatal("Failed to init migrator: %v", err)
		}
		if err := migrator.Run(context.Background()); err != nil {
			log.Fatal("Failed to apply migrations: %v", err)
		}
	}

	wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Инициализируем репозитории
	userRepository := userRepo.NewRepository(wrappedDB)
	squadRepository := squadRepo.NewRepository(wrappedDB)
	seatRepository := seatRepo.NewRepository(wrappedDB)
	bookingRepository := bookingRepo.NewRepository(wrappedDB)
	holidayRepository := holidayRepo.NewRepository(wrappedDB)
	allocationRepository := allocationRepo.NewRepository(wrappedDB)

	// Кэш доступности мест
	var cache seatCache = availability.Noop{}
	if cfg.Redis.Enabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()

		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			log.Warn("Redis unavailable at %s, availability cache disabled: %v", cfg.Redis.Addr, err)
		} else {
			cache = availability.NewCache(redisClient, time.Duration(cfg.Redis.TTL)*time.Second)
			log.Info("Availability cache enabled (addr=%s, ttl=%ds)", cfg.Redis.Addr, cfg.Redis.TTL)
		}
	}

	// Публикация событий брони
	var publisher eventPublisher = eventbus.Noop{}
	if cfg.RabbitMQ.Enabled {
		p, err := eventbus.Dial(cfg.RabbitMQ.URL, cfg.RabbitMQ.Exchange)
		if err != nil {
			log.Warn("RabbitMQ unavailable, seat events disabled: %v", err)
		} else {
			publisher = p
			log.Info("Seat events published to exchange %s", cfg.RabbitMQ.Exchange)
		}
	}
	defer publisher.Close()

	events := ledgerevents.NewDispatcher(cache, publisher, metricsCollector, log)
	engine := seating.NewEngine(bookingRepository, seatRepository, log)

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, userRepository, events, log)
	holidaySvc := holidaysService.NewService(holidayRepository, userRepository, location, log)
	seatSvc := seatsService.NewService(seatRepository, userRepository, cache, log)
	squadSvc := squadsService.NewService(squadRepository, userRepository, allocationRepository, seatRepository, location, log)
	userSvc := usersService.NewService(userRepository, log)

	// Инициализируем use cases
	bookSeatUseCase := bookSeatUC.NewUseCase(userRepository, holidayRepository, engine, txMgr, events, log)
	blockSeatUseCase := blockSeatUC.NewUseCase(
		userRepository,
		holidayRepository,
		engine,
		txMgr,
		events,
		blockSeatUC.Policy{
			CutoffHour:       cfg.Booking.CutoffHour,
			Location:         location,
			HolidaySkipLimit: cfg.Booking.HolidaySkipLimit,
		},
		log,
	)
	vacateSeatUseCase := vacateSeatUC.NewUseCase(userRepository, bookingRepository, events, log)
	getAvailableSeatsUseCase := getAvailableSeatsUC.NewUseCase(seatRepository, cache, log)
	getUtilizationUseCase := getUtilizationUC.NewUseCase(seatRepository, bookingRepository, log)
	getSeatGridUseCase := getSeatGridUC.NewUseCase(userRepository, seatRepository, bookingRepository, holidayRepository, log)
	allocateWeekUseCase := allocateWeekUC.NewUseCase(
		userRepository,
		squadRepository,
		seatRepository,
		allocationRepository,
		txMgr,
		location,
		log,
	)

	// Инициализируем handlers
	bookSeat := bookSeatHandler.NewHandler(bookSeatUseCase, log)
	blockSeat := blockSeatHandler.NewHandler(blockSeatUseCase, log)
	vacateSeat := vacateSeatHandler.NewHandler(vacateSeatUseCase, log)
	releaseBooking := releaseBookingHandler.NewHandler(bookingSvc, log)
	getAvailableSeats := getAvailableSeatsHandler.NewHandler(getAvailableSeatsUseCase, log)
	getUtilization := getUtilizationHandler.NewHandler(getUtilizationUseCase, log)
	getSeatGrid := getSeatGridHandler.NewHandler(getSeatGridUseCase, log)
	getBookingsByDate := getBookingsByDateHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	allocateWeek := allocateWeekHandler.NewHandler(allocateWeekUseCase, log)
	holidays := manageHolidaysHandler.NewHandler(holidaySvc, log)
	seats := manageSeatsHandler.NewHandler(seatSvc, log)
	squads := manageSquadsHandler.NewHandler(squadSvc, log)
	users := manageUsersHandler.NewHandler(userSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, metricsCollector.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		if err := wrappedDB.PingContext(r.Context()); err != nil {
			handlers.RespondInternalError(w)
			return
		}
		handlers.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Свободные места и загрузка офиса на дату
	api.HandleFunc("/bookings/available", getAvailableSeats.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/utilization", getUtilization.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	protected.HandleFunc("/bookings/book", bookSeat.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/block", blockSeat.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/vacate", vacateSeat.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings", getBookingsByDate.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}", releaseBooking.Handle).Methods(http.MethodDelete)

	// --- Пользователи ---
	protected.HandleFunc("/users/{userId}", users.Get).Methods(http.MethodGet)
	protected.HandleFunc("/users/{userId}/bookings", getUserBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/users/{userId}/seat-grid", getSeatGrid.Handle).Methods(http.MethodGet)

	// --- Места, отряды и распределение ---
	protected.HandleFunc("/seats", seats.List).Methods(http.MethodGet)
	protected.HandleFunc("/squads", squads.Create).Methods(http.MethodPost)
	protected.HandleFunc("/squads", squads.List).Methods(http.MethodGet)
	protected.HandleFunc("/squads/{squadId}", squads.Get).Methods(http.MethodGet)
	protected.HandleFunc("/allocations/allocate", allocateWeek.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/allocations", squads.Allocations).Methods(http.MethodGet)
	protected.HandleFunc("/allocations/squads/{squadId}", squads.Allocations).Methods(http.MethodGet)

	// --- Администрирование (роль ADMIN проверяется в сервисах) ---
	admin := protected.PathPrefix("/admin").Subrouter()
	admin.HandleFunc("/holidays", holidays.Create).Methods(http.MethodPost)
	admin.HandleFunc("/holidays", holidays.List).Methods(http.MethodGet)
	admin.HandleFunc("/holidays/{holidayId}", holidays.Delete).Methods(http.MethodDelete)
	admin.HandleFunc("/seats/{seatId}", seats.SetActive).Methods(http.MethodPatch)
	admin.HandleFunc("/users", users.Create).Methods(http.MethodPost)
	admin.HandleFunc("/users", users.List).Methods(http.MethodGet)
	admin.HandleFunc("/users/{userId}", users.Update).Methods(http.MethodPatch)

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
	close(stopMetricsCh)

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
