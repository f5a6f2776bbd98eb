package main

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	broadcastMessageHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/broadcast_message"
	cancelReservationHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/cancel_reservation"
	checkCapacityHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/check_capacity"
	createCapacityRuleHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/create_capacity_rule"
	createReservationHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/create_reservation"
	deleteCapacityRuleHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/delete_capacity_rule"
	getAvailableSeatsHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/get_available_seats"
	getReservationHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/get_reservation"
	lineWebhookHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/line_webhook"
	listCapacityRulesHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/list_capacity_rules"
	listReservationsHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/list_reservations"
	updateCapacityRuleHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/update_capacity_rule"
	"github.com/m04kA/SMC-ReservationService/internal/api/middleware"
	"github.com/m04kA/SMC-ReservationService/internal/config"
	"github.com/m04kA/SMC-ReservationService/internal/infra/slotlock"
	"github.com/m04kA/SMC-ReservationService/internal/infra/storage/migrations"
	reservationRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/reservation"
	ruleRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/rule"
	seatRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/seat"
	"github.com/m04kA/SMC-ReservationService/internal/integrations/line"
	messagingService "github.com/m04kA/SMC-ReservationService/internal/service/messaging"
	reservationsService "github.com/m04kA/SMC-ReservationService/internal/service/reservations"
	rulesService "github.com/m04kA/SMC-ReservationService/internal/service/rules"
	checkCapacityUC "github.com/m04kA/SMC-ReservationService/internal/usecase/check_capacity"
	createReservationUC "github.com/m04kA/SMC-ReservationService/internal/usecase/create_reservation"
	resolveSeatsUC "github.com/m04kA/SMC-ReservationService/internal/usecase/resolve_seats"
	"github.com/m04kA/SMC-ReservationService/pkg/janitor"
	"github.com/m04kA/SMC-ReservationService/pkg/ratelimit"
)

func newServeCmd(configPath *string) *cobra.Command {
	var migrateUp bool

	c := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context(), *configPath, migrateUp)
		},
	}
	c.Flags().BoolVar(&migrateUp, "migrate", false, "apply pending migrations before start")
	return c
}

func serve(ctx context.Context, configPath string, migrateUp bool) error {
	b, err := bootstrap(ctx, configPath)
	if err != nil {
		return err
	}
	defer b.Close()

	cfg, log := b.cfg, b.log
	log.Info("Starting SMC-ReservationService...")

	if migrateUp {
		if _, err := migrations.Up(ctx, b.db, b.txManager, log); err != nil {
			return err
		}
	}

	// Блокировка слотов: redis для нескольких инстансов, иначе в памяти процесса
	var locker createReservationUC.SlotLocker
	if cfg.Redis.Enabled {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer rdb.Close()

		if err := rdb.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("failed to ping redis at %s: %w", cfg.Redis.Addr, err)
		}
		locker = slotlock.NewRedisLocker(rdb, config.Seconds(cfg.Redis.LockTTL), log)
		log.Info("Slot lock: redis (addr=%s, ttl=%ds)", cfg.Redis.Addr, cfg.Redis.LockTTL)
	} else {
		locker = slotlock.NewMemoryLocker()
		log.Info("Slot lock: in-process")
	}

	lineClient := line.NewClient(cfg.Line.BaseURL, cfg.Line.ChannelToken, config.Seconds(cfg.Line.Timeout), log)
	if !lineClient.Enabled() {
		log.Warn("LINE channel token is not set, notifications are disabled")
	}
	if cfg.Line.ChannelSecret == "" {
		log.Warn("LINE channel secret is not set, webhook is disabled")
	}

	storeLocation, err := cfg.Reservations.Location()
	if err != nil {
		return err
	}

	// Репозитории
	reservationRepository := reservationRepo.NewRepository(b.db)
	seatRepository := seatRepo.NewRepository(b.db)
	ruleRepository := ruleRepo.NewCachedRepository(ruleRepo.NewRepository(b.db), config.Seconds(cfg.Cache.RuleTTL))

	// Сервисы
	reservationSvc := reservationsService.NewService(reservationRepository, lineClient, log)
	ruleSvc := rulesService.NewService(ruleRepository, log)
	messagingSvc := messagingService.NewService(lineClient, cfg.Line.ReservationURL, log)

	// Use cases
	checkCapacityUseCase := checkCapacityUC.NewUseCase(ruleRepository, reservationRepository, b.metrics, log)
	resolveSeatsUseCase := resolveSeatsUC.NewUseCase(reservationRepository, seatRepository, b.metrics, log)
	createReservationUseCase := createReservationUC.NewUseCase(
		reservationRepository,
		checkCapacityUseCase,
		resolveSeatsUseCase,
		locker,
		lineClient,
		b.txManager,
		b.metrics,
		log,
		config.Seconds(cfg.Reservations.LockWait),
		storeLocation,
	)

	// Handlers
	checkCapacity := checkCapacityHandler.NewHandler(checkCapacityUseCase, log)
	getAvailableSeats := getAvailableSeatsHandler.NewHandler(resolveSeatsUseCase, log, cfg.Seats.FallbackOnStoreError)
	createReservation := createReservationHandler.NewHandler(createReservationUseCase, log)
	getReservation := getReservationHandler.NewHandler(reservationSvc, log)
	cancelReservation := cancelReservationHandler.NewHandler(reservationSvc, log)
	listReservations := listReservationsHandler.NewHandler(reservationSvc, log)
	listCapacityRules := listCapacityRulesHandler.NewHandler(ruleSvc, log)
	createCapacityRule := createCapacityRuleHandler.NewHandler(ruleSvc, log)
	updateCapacityRule := updateCapacityRuleHandler.NewHandler(ruleSvc, log)
	deleteCapacityRule := deleteCapacityRuleHandler.NewHandler(ruleSvc, log)
	lineWebhook := lineWebhookHandler.NewHandler(messagingSvc, cfg.Line.ChannelSecret, log)
	broadcastMessage := broadcastMessageHandler.NewHandler(messagingSvc, log)

	// Периодические служебные задачи
	jan, err := janitor.New(log)
	if err != nil {
		return err
	}
	if err := jan.Every("rule-cache-evict", config.Seconds(cfg.Cache.EvictInterval), func() {
		if n := ruleRepository.EvictExpired(); n > 0 {
			log.Debug("Evicted %d expired rule cache entries", n)
		}
	}); err != nil {
		return err
	}

	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(b.metrics))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (LIFF / LINE бот), с ограничением частоты
	// ============================================================

	public := api.PathPrefix("").Subrouter()
	if cfg.RateLimit.Enabled {
		limiter := ratelimit.NewLimiter(cfg.RateLimit.Requests, config.Seconds(cfg.RateLimit.Window))
		public.Use(middleware.RateLimit(limiter, b.metrics, log, cfg.RateLimit.TrustForwarded))

		idle := config.Seconds(cfg.RateLimit.Window)
		if err := jan.Every("rate-limit-cleanup", config.Seconds(cfg.RateLimit.CleanupInterval), func() {
			limiter.Cleanup(idle)
		}); err != nil {
			return err
		}
		log.Info("Rate limit enabled: %d requests per %ds", cfg.RateLimit.Requests, cfg.RateLimit.Window)
	}

	public.HandleFunc("/stores/{storeId}/capacity/check", checkCapacity.Handle).Methods(http.MethodPost)
	public.HandleFunc("/stores/{storeId}/seats/available", getAvailableSeats.Handle).Methods(http.MethodGet)
	public.HandleFunc("/stores/{storeId}/reservations", createReservation.Handle).Methods(http.MethodPost)
	public.HandleFunc("/reservations/{reservationId}", getReservation.Handle).Methods(http.MethodGet)
	public.HandleFunc("/reservations/{reservationId}/cancel", cancelReservation.Handle).Methods(http.MethodPatch)

	// ============================================================
	// ADMIN ROUTES (панель магазина)
	// ============================================================

	api.HandleFunc("/stores/{storeId}/reservations", listReservations.Handle).Methods(http.MethodGet)
	api.HandleFunc("/stores/{storeId}/capacity-rules", listCapacityRules.Handle).Methods(http.MethodGet)
	api.HandleFunc("/stores/{storeId}/capacity-rules", createCapacityRule.Handle).Methods(http.MethodPost)
	api.HandleFunc("/capacity-rules/{ruleId}", updateCapacityRule.Handle).Methods(http.MethodPut)
	api.HandleFunc("/capacity-rules/{ruleId}", deleteCapacityRule.Handle).Methods(http.MethodDelete)
	api.HandleFunc("/line/broadcast", broadcastMessage.Handle).Methods(http.MethodPost)

	// ============================================================
	// LINE WEBHOOK (подпись проверяется секретом канала)
	// ============================================================

	api.HandleFunc("/line/webhook", lineWebhook.Handle).Methods(http.MethodPost)

	jan.Start()
	defer func() {
		if err := jan.Stop(); err != nil {
			log.Error("Failed to stop janitor: %v", err)
		}
	}()

	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  config.Seconds(cfg.Server.ReadTimeout),
		WriteTimeout: config.Seconds(cfg.Server.WriteTimeout),
		IdleTimeout:  config.Seconds(cfg.Server.IdleTimeout),
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
	case <-ctx.Done():
	}

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.Seconds(cfg.Server.ShutdownTimeout))
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
	return nil
}

