package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/leaselab/screening-service/internal/application/usecase"
	"github.com/leaselab/screening-service/internal/domain/port"
	"github.com/leaselab/screening-service/internal/domain/service"
	"github.com/leaselab/screening-service/internal/infrastructure/adapter"
	"github.com/leaselab/screening-service/internal/infrastructure/config"
	"github.com/leaselab/screening-service/internal/infrastructure/messaging"
	pgRepo "github.com/leaselab/screening-service/internal/infrastructure/persistence/postgres"
	grpcPresentation "github.com/leaselab/screening-service/internal/presentation/grpc"
	"github.com/leaselab/screening-service/internal/presentation/rest"
	"github.com/leaselab/screening-service/pkg/auth"
	"github.com/leaselab/screening-service/pkg/kafka"
	"github.com/leaselab/screening-service/pkg/observability"
	"github.com/leaselab/screening-service/pkg/postgres"
)

func main() {
	logger := observability.InitLogger(observability.LogConfig{
		Level:   os.Getenv("LOG_LEVEL"),
		Format:  "json",
		Service: "screening-service",
	})

	cfg := config.Load()
	cfg.Validate()
	logger.Info("starting screening service",
		"grpc_port", cfg.GRPCPort,
		"http_port", cfg.HTTPPort,
		"metrics_port", cfg.MetricsPort,
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// --- Database -----------------------------------------------------------
	pgCfg := postgres.Config{
		Host:     cfg.DB.Host,
		Port:     cfg.DB.Port,
		User:     cfg.DB.User,
		Password: cfg.DB.Password,
		Database: cfg.DB.Name,
		SSLMode:  cfg.DB.SSLMode,
	}

	if err := postgres.RunMigrations(pgCfg.DSN(), "file://./migrations"); err != nil {
		logger.Error("migrations failed", "error", err)
		os.Exit(1)
	}
	logger.Info("migrations applied")

	pool, err := postgres.NewPool(ctx, pgCfg)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()
	logger.Info("connected to database")

	// --- Infrastructure adapters -------------------------------------------
	userRepo := pgRepo.NewUserRepo(pool)
	propertyRepo := pgRepo.NewPropertyRepo(pool)
	applicationRepo := pgRepo.NewApplicationRepo(pool)
	leaseRepo := pgRepo.NewLeaseRepo(pool)
	paymentRepo := pgRepo.NewPaymentRepo(pool)
	scoreRepo := pgRepo.NewTenantScoreRepo(pool)
	creditCheckRepo := pgRepo.NewCreditCheckRepo(pool)
	employmentRepo := pgRepo.NewEmploymentRepo(pool)
	rentalHistoryRepo := pgRepo.NewRentalHistoryRepo(pool)
	referenceRepo := pgRepo.NewReferenceRepo(pool)

	var publisher port.EventPublisher
	if len(cfg.Kafka.Brokers) > 0 && cfg.Kafka.Brokers[0] != "" {
		producer := kafka.NewProducer(kafka.Config{Brokers: cfg.Kafka.Brokers})
		defer producer.Close()
		publisher = messaging.NewKafkaEventPublisher(producer, cfg.Kafka.Topic, logger)
	} else {
		logger.Warn("no kafka brokers configured, events will only be logged")
		publisher = messaging.NewLogEventPublisher(logger)
	}

	var bureau port.CreditBureauClient
	if cfg.Bureau.UseStub {
		bureau = adapter.NewStubCreditBureauClient()
	} else {
		bureau = adapter.NewCreditBureauAdapter(adapter.CreditBureauConfig{
			BaseURL:        cfg.Bureau.BaseURL,
			APIKey:         cfg.Bureau.APIKey,
			TimeoutSeconds: 10,
			MaxRetries:     cfg.Bureau.MaxRetries,
			RetryBackoffMs: 200,
		})
	}

	engine := service.NewScoringEngine(
		userRepo, propertyRepo, applicationRepo, paymentRepo,
		creditCheckRepo, employmentRepo, rentalHistoryRepo, referenceRepo,
		logger,
	)
	analyzer := service.NewScoreAnalyzer()

	// --- Use cases ----------------------------------------------------------
	ensureScoreUC := usecase.NewEnsureDefaultScoreUseCase(scoreRepo, userRepo, publisher)

	useCases := rest.UseCases{
		RegisterUser:       usecase.NewRegisterUserUseCase(userRepo),
		GetUser:            usecase.NewGetUserUseCase(userRepo),
		UpdateVerification: usecase.NewUpdateVerificationUseCase(userRepo),

		CreateProperty: usecase.NewCreatePropertyUseCase(propertyRepo, userRepo),
		ListProperties: usecase.NewListPropertiesUseCase(propertyRepo),
		GetProperty:    usecase.NewGetPropertyUseCase(propertyRepo),

		SubmitApplication: usecase.NewSubmitApplicationUseCase(applicationRepo, propertyRepo, userRepo, publisher),
		GetApplication:    usecase.NewGetApplicationUseCase(applicationRepo),
		DecideApplication: usecase.NewDecideApplicationUseCase(applicationRepo, propertyRepo, leaseRepo, publisher),

		SchedulePayment: usecase.NewSchedulePaymentUseCase(paymentRepo, leaseRepo),
		SettlePayment:   usecase.NewSettlePaymentUseCase(paymentRepo, publisher),

		RecordCreditCheck:  usecase.NewRecordCreditCheckUseCase(creditCheckRepo, userRepo),
		RefreshCreditCheck: usecase.NewRefreshCreditCheckUseCase(creditCheckRepo, userRepo, bureau),
		AddEmployment:      usecase.NewAddEmploymentRecordUseCase(employmentRepo, userRepo),
		AddRentalHistory:   usecase.NewAddRentalHistoryUseCase(rentalHistoryRepo, userRepo),
		AddReference:       usecase.NewAddReferenceUseCase(referenceRepo, userRepo),

		CalculateScore:      usecase.NewCalculateTenantScoreUseCase(engine, scoreRepo, publisher),
		GetScore:            usecase.NewGetTenantScoreUseCase(ensureScoreUC),
		GetScoreHistory:     usecase.NewGetScoreHistoryUseCase(scoreRepo),
		DeactivateScore:     usecase.NewDeactivateScoreUseCase(scoreRepo),
		AnalyzeScore:        usecase.NewAnalyzeTenantScoreUseCase(scoreRepo, analyzer, ensureScoreUC),
		ScoreImprovements:   usecase.NewGetScoreImprovementsUseCase(scoreRepo, analyzer, ensureScoreUC),
		RecommendProperties: usecase.NewRecommendPropertiesUseCase(propertyRepo, userRepo, scoreRepo),
	}

	// --- Auth ---------------------------------------------------------------
	jwtService, err := auth.NewJWTService(auth.JWTConfig{
		Secret:     cfg.Auth.JWTSecret,
		Issuer:     cfg.Auth.Issuer,
		Expiration: 24 * time.Hour,
	})
	if err != nil {
		logger.Error("failed to initialise JWT service", "error", err)
		os.Exit(1)
	}

	// --- Metrics ------------------------------------------------------------
	meterProvider, metricsHandler, err := observability.InitMetrics(observability.MetricsConfig{
		ServiceName: cfg.ServiceName,
		Port:        cfg.MetricsPort,
	})
	if err != nil {
		logger.Error("failed to initialise metrics", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := meterProvider.Shutdown(context.Background()); err != nil {
			logger.Error("metrics shutdown error", "error", err)
		}
	}()

	metricsMux := http.NewServeMux()
	metricsMux.Handle("GET /metrics", metricsHandler)
	metricsServer := &http.Server{Addr: cfg.MetricsAddr(), Handler: metricsMux}

	go func() {
		logger.Info("metrics server listening", "addr", cfg.MetricsAddr())
		if err := metricsServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("metrics server error", "error", err)
		}
	}()

	// --- gRPC server --------------------------------------------------------
	grpcHandler := grpcPresentation.NewScreeningHandler(
		useCases.CalculateScore, useCases.GetScore, useCases.AnalyzeScore, useCases.ScoreImprovements,
	)
	grpcServer := grpcPresentation.NewServer(grpcHandler, logger, jwtService)

	go func() {
		if err := grpcServer.Serve(cfg.GRPCAddr()); err != nil {
			logger.Error("gRPC server error", "error", err)
			os.Exit(1)
		}
	}()

	// --- HTTP server --------------------------------------------------------
	mux := http.NewServeMux()
	rest.NewHealthHandler(pool, logger).RegisterRoutes(mux)
	rest.NewHandler(useCases, logger).RegisterRoutes(mux)

	httpServer := &http.Server{
		Addr:    cfg.HTTPAddr(),
		Handler: rest.AuthMiddleware(jwtService, logger)(mux),
	}

	go func() {
		logger.Info("HTTP server listening", "addr", cfg.HTTPAddr())
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", "error", err)
			os.Exit(1)
		}
	}()

	// --- Graceful shutdown --------------------------------------------------
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	logger.Info("received shutdown signal", "signal", sig.String())

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	grpcServer.GracefulStop()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown error", "error", err)
	}
	if err := metricsServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("metrics server shutdown error", "error", err)
	}

	logger.Info("screening service stopped")
}
