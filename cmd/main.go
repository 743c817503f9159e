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

	cancelBookingHandler "github.com/tadbeer-it/TDB-FieldService/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/tadbeer-it/TDB-FieldService/internal/api/handlers/create_booking"
	createClientHandler "github.com/tadbeer-it/TDB-FieldService/internal/api/handlers/create_client"
	createTaskHandler "github.com/tadbeer-it/TDB-FieldService/internal/api/handlers/create_task"
	deleteClientHandler "github.com/tadbeer-it/TDB-FieldService/internal/api/handlers/delete_client"
	deleteTaskHandler "github.com/tadbeer-it/TDB-FieldService/internal/api/handlers/delete_task"
	getAvailableSlotsHandler "github.com/tadbeer-it/TDB-FieldService/internal/api/handlers/get_available_slots"
	getBlockedDaysHandler "github.com/tadbeer-it/TDB-FieldService/internal/api/handlers/get_blocked_days"
	getBookingHandler "github.com/tadbeer-it/TDB-FieldService/internal/api/handlers/get_booking"
	getClientHandler "github.com/tadbeer-it/TDB-FieldService/internal/api/handlers/get_client"
	getClientBookingsHandler "github.com/tadbeer-it/TDB-FieldService/internal/api/handlers/get_client_bookings"
	getTaskTimelineHandler "github.com/tadbeer-it/TDB-FieldService/internal/api/handlers/get_task_timeline"
	listClientsHandler "github.com/tadbeer-it/TDB-FieldService/internal/api/handlers/list_clients"
	rescheduleBookingHandler "github.com/tadbeer-it/TDB-FieldService/internal/api/handlers/reschedule_booking"
	setBlockedDayHandler "github.com/tadbeer-it/TDB-FieldService/internal/api/handlers/set_blocked_day"
	updateTaskStatusHandler "github.com/tadbeer-it/TDB-FieldService/internal/api/handlers/update_task_status"
	"github.com/tadbeer-it/TDB-FieldService/internal/api/middleware"
	"github.com/tadbeer-it/TDB-FieldService/internal/config"
	blockedDayRepo "github.com/tadbeer-it/TDB-FieldService/internal/infra/storage/blockedday"
	bookingRepo "github.com/tadbeer-it/TDB-FieldService/internal/infra/storage/booking"
	clientRepo "github.com/tadbeer-it/TDB-FieldService/internal/infra/storage/client"
	taskRepo "github.com/tadbeer-it/TDB-FieldService/internal/infra/storage/task"
	identityServiceClient "github.com/tadbeer-it/TDB-FieldService/internal/integrations/identityservice"
	blockedDaysService "github.com/tadbeer-it/TDB-FieldService/internal/service/blockeddays"
	bookingsService "github.com/tadbeer-it/TDB-FieldService/internal/service/bookings"
	clientsService "github.com/tadbeer-it/TDB-FieldService/internal/service/clients"
	tasksService "github.com/tadbeer-it/TDB-FieldService/internal/service/tasks"
	createBookingUC "github.com/tadbeer-it/TDB-FieldService/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/tadbeer-it/TDB-FieldService/internal/usecase/get_available_slots"
	getTaskTimelineUC "github.com/tadbeer-it/TDB-FieldService/internal/usecase/get_task_timeline"
	rescheduleBookingUC "github.com/tadbeer-it/TDB-FieldService/internal/usecase/reschedule_booking"
	"github.com/tadbeer-it/TDB-FieldService/pkg/dbmetrics"
	"github.com/tadbeer-it/TDB-FieldService/pkg/logger"
	"github.com/tadbeer-it/TDB-FieldService/pkg/metrics"
	"github.com/tadbeer-it/TDB-FieldService/pkg/simpletxmanager"
	"github.com/tadbeer-it/TDB-FieldService/pkg/txmanager"
)

func main() {
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting TDB-FieldService...")
	log.Info("Configuration loaded from config.toml")

	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	identityClient := identityServiceClient.NewClient(
		cfg.IdentityService.URL,
		time.Duration(cfg.IdentityService.Timeout)*time.Second,
		log,
	)
	log.Info("Identity service client initialized (url=%s, timeout=%ds)",
		cfg.IdentityService.URL, cfg.IdentityService.Timeout)

	var (
		bookingRepository    *bookingRepo.Repository
		taskRepository       *taskRepo.Repository
		blockedDayRepository *blockedDayRepo.Repository
		clientRepository     *clientRepo.Repository
	)

	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		taskRepository = taskRepo.NewRepository(wrappedDB)
		blockedDayRepository = blockedDayRepo.NewRepository(wrappedDB)
		clientRepository = clientRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		taskRepository = taskRepo.NewRepository(db)
		blockedDayRepository = blockedDayRepo.NewRepository(db)
		clientRepository = clientRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	slotCatalog := cfg.SlotCatalog()

	bookingSvc := bookingsService.NewService(
		bookingRepository,
		identityClient,
		cfg.Booking.EditWindowHours,
		log,
	)
	taskSvc := tasksService.NewService(
		taskRepository,
		bookingRepository,
		identityClient,
		log,
	)
	blockedDaySvc := blockedDaysService.NewService(
		blockedDayRepository,
		identityClient,
		log,
	)
	clientSvc := clientsService.NewService(
		clientRepository,
		identityClient,
		log,
	)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		bookingRepository,
		blockedDayRepository,
		slotCatalog,
		cfg.Booking.StrictFullDay,
		log,
	)
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		blockedDayRepository,
		clientRepository,
		txMgr,
		slotCatalog,
		log,
	)
	rescheduleBookingUseCase := rescheduleBookingUC.NewUseCase(
		bookingRepository,
		blockedDayRepository,
		identityClient,
		txMgr,
		slotCatalog,
		cfg.Booking.EditWindowHours,
		log,
	)
	getTaskTimelineUseCase := getTaskTimelineUC.NewUseCase(
		bookingRepository,
		taskRepository,
		log,
	)

	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	getClientBookings := getClientBookingsHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	rescheduleBooking := rescheduleBookingHandler.NewHandler(rescheduleBookingUseCase, log)
	getTaskTimeline := getTaskTimelineHandler.NewHandler(getTaskTimelineUseCase, log)
	createTask := createTaskHandler.NewHandler(taskSvc, log)
	updateTaskStatus := updateTaskStatusHandler.NewHandler(taskSvc, log)
	deleteTask := deleteTaskHandler.NewHandler(taskSvc, log)
	setBlockedDay := setBlockedDayHandler.NewHandler(blockedDaySvc, log)
	getBlockedDays := getBlockedDaysHandler.NewHandler(blockedDaySvc, log)
	createClient := createClientHandler.NewHandler(clientSvc, log)
	getClient := getClientHandler.NewHandler(clientSvc, log)
	listClients := listClientsHandler.NewHandler(clientSvc, log)
	deleteClient := deleteClientHandler.NewHandler(clientSvc, log)

	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")

		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// Public routes (no authentication)
	api.HandleFunc("/clients/{clientId}/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/clients/{clientId}/timeline", getTaskTimeline.Handle).Methods(http.MethodGet)
	api.HandleFunc("/clients/{clientId}", getClient.Handle).Methods(http.MethodGet)

	// Protected routes (require X-User-ID header)
	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// Bookings
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/bookings/{bookingId}/reschedule", rescheduleBooking.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/clients/{clientId}/bookings", getClientBookings.Handle).Methods(http.MethodGet)

	// Visit tasks
	protected.HandleFunc("/tasks", createTask.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/tasks/{taskId}/status", updateTaskStatus.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/tasks/{taskId}", deleteTask.Handle).Methods(http.MethodDelete)

	// Calendar availability (admin)
	protected.HandleFunc("/blocked-days", setBlockedDay.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/blocked-days", getBlockedDays.Handle).Methods(http.MethodGet)

	// Client records (admin)
	protected.HandleFunc("/clients", createClient.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/clients", listClients.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/clients/{clientId}", deleteClient.Handle).Methods(http.MethodDelete)

	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

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
