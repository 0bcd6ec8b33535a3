package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	acceptBookingHandler "github.com/coachwise/CW-RescheduleService/internal/api/handlers/accept_booking"
	declineBookingHandler "github.com/coachwise/CW-RescheduleService/internal/api/handlers/decline_booking"
	getBookingHandler "github.com/coachwise/CW-RescheduleService/internal/api/handlers/get_booking"
	getNegotiationModeHandler "github.com/coachwise/CW-RescheduleService/internal/api/handlers/get_negotiation_mode"
	getNotificationsHandler "github.com/coachwise/CW-RescheduleService/internal/api/handlers/get_notifications"
	getRescheduleEligibilityHandler "github.com/coachwise/CW-RescheduleService/internal/api/handlers/get_reschedule_eligibility"
	getSlotDefaultsHandler "github.com/coachwise/CW-RescheduleService/internal/api/handlers/get_slot_defaults"
	initiateRescheduleHandler "github.com/coachwise/CW-RescheduleService/internal/api/handlers/initiate_reschedule"
	respondRescheduleHandler "github.com/coachwise/CW-RescheduleService/internal/api/handlers/respond_reschedule"
	"github.com/coachwise/CW-RescheduleService/internal/api/middleware"
	"github.com/coachwise/CW-RescheduleService/internal/config"
	"github.com/coachwise/CW-RescheduleService/internal/infra/querycache"
	bookingServiceClient "github.com/coachwise/CW-RescheduleService/internal/integrations/bookingservice"
	bookingsService "github.com/coachwise/CW-RescheduleService/internal/service/bookings"
	syncService "github.com/coachwise/CW-RescheduleService/internal/service/sync"
	acceptBookingUC "github.com/coachwise/CW-RescheduleService/internal/usecase/accept_booking"
	checkEligibilityUC "github.com/coachwise/CW-RescheduleService/internal/usecase/check_eligibility"
	composeProposalUC "github.com/coachwise/CW-RescheduleService/internal/usecase/compose_proposal"
	declineBookingUC "github.com/coachwise/CW-RescheduleService/internal/usecase/decline_booking"
	initiateRescheduleUC "github.com/coachwise/CW-RescheduleService/internal/usecase/initiate_reschedule"
	respondToRequestUC "github.com/coachwise/CW-RescheduleService/internal/usecase/respond_to_request"
	selectModeUC "github.com/coachwise/CW-RescheduleService/internal/usecase/select_mode"
	"github.com/coachwise/CW-RescheduleService/pkg/logger"
	"github.com/coachwise/CW-RescheduleService/pkg/metrics"
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

	log.Info("Starting CW-RescheduleService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Инициализируем query-кэш
	cache := querycache.New()

	// Инициализируем клиента booking-сервиса
	bookingClient := bookingServiceClient.NewClient(
		cfg.BookingService.URL,
		cfg.BookingService.ServiceToken,
		time.Duration(cfg.BookingService.Timeout)*time.Second,
		log,
	)
	log.Info("Booking service client initialized (url=%s, timeout=%ds)",
		cfg.BookingService.URL, cfg.BookingService.Timeout)

	// Инициализируем сервисы
	bookingsSvc := bookingsService.NewService(bookingClient, cache, log)
	synchronizer := syncService.NewService(cache, log)

	if metricsCollector != nil {
		bookingClient.SetMetrics(metricsCollector)
		synchronizer.SetMetrics(metricsCollector)
	}

	// Инициализируем use cases
	checkEligibilityUseCase := checkEligibilityUC.NewUseCase(bookingsSvc, bookingClient, log)
	composeProposalUseCase := composeProposalUC.NewUseCase(bookingsSvc, bookingClient, log)
	selectModeUseCase := selectModeUC.NewUseCase(checkEligibilityUseCase, log)
	initiateRescheduleUseCase := initiateRescheduleUC.NewUseCase(
		bookingsSvc,
		bookingClient,
		checkEligibilityUseCase,
		synchronizer,
		log,
	)
	respondToRequestUseCase := respondToRequestUC.NewUseCase(
		bookingsSvc,
		bookingClient,
		synchronizer,
		log,
	)
	acceptBookingUseCase := acceptBookingUC.NewUseCase(bookingsSvc, bookingClient, synchronizer, log)
	declineBookingUseCase := declineBookingUC.NewUseCase(bookingsSvc, bookingClient, synchronizer, log)

	// Инициализируем handlers
	getBooking := getBookingHandler.NewHandler(bookingsSvc, log)
	getRescheduleEligibility := getRescheduleEligibilityHandler.NewHandler(checkEligibilityUseCase, log)
	getNegotiationMode := getNegotiationModeHandler.NewHandler(bookingsSvc, selectModeUseCase, log)
	getSlotDefaults := getSlotDefaultsHandler.NewHandler(composeProposalUseCase, log)
	initiateReschedule := initiateRescheduleHandler.NewHandler(initiateRescheduleUseCase, log)
	respondReschedule := respondRescheduleHandler.NewHandler(respondToRequestUseCase, log)
	acceptBooking := acceptBookingHandler.NewHandler(acceptBookingUseCase, log)
	declineBooking := declineBookingHandler.NewHandler(declineBookingUseCase, log)
	getNotifications := getNotificationsHandler.NewHandler(bookingsSvc, log)

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
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	// Получение бронирования с леджером переносов
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Принятие/отклонение запрошенного бронирования (только коуч)
	protected.HandleFunc("/bookings/{bookingId}/accept", acceptBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{bookingId}/decline", declineBooking.Handle).Methods(http.MethodPost)

	// --- Переговоры о переносе ---
	// Проверка права на перенос
	protected.HandleFunc("/bookings/{bookingId}/reschedule-eligibility",
		getRescheduleEligibility.Handle).Methods(http.MethodGet)

	// Разрешение режима переговоров
	protected.HandleFunc("/bookings/{bookingId}/negotiation-mode",
		getNegotiationMode.Handle).Methods(http.MethodGet)

	// Подбор слотов-кандидатов
	protected.HandleFunc("/bookings/{bookingId}/slot-defaults",
		getSlotDefaults.HandleCompose).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{bookingId}/slot-defaults/next",
		getSlotDefaults.HandleAddSlot).Methods(http.MethodPost)

	// Первичное предложение переноса
	protected.HandleFunc("/bookings/{bookingId}/reschedule-requests",
		initiateReschedule.Handle).Methods(http.MethodPost)

	// Ответ на предложение переноса (approve / decline / counter_propose)
	protected.HandleFunc("/bookings/{bookingId}/reschedule-requests/{requestId}/respond",
		respondReschedule.Handle).Methods(http.MethodPost)

	// --- Уведомления ---
	protected.HandleFunc("/notifications", getNotifications.Handle).Methods(http.MethodGet)

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
