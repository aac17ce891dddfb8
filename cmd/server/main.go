package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"

	"trackerMobility/internal/config"
	customersusecase "trackerMobility/internal/modules/customers/application/usecase"
	customersinfra "trackerMobility/internal/modules/customers/infrastructure"
	customershttp "trackerMobility/internal/modules/customers/interface"
	ordersusecase "trackerMobility/internal/modules/orders/application/usecase"
	ordersinfra "trackerMobility/internal/modules/orders/infrastructure"
	ordershttp "trackerMobility/internal/modules/orders/interface"
	realtimehandler "trackerMobility/internal/modules/realtime/application/handler"
	realtimeusecase "trackerMobility/internal/modules/realtime/application/usecase"
	realtimeinfra "trackerMobility/internal/modules/realtime/infrastructure"
	realtimehttp "trackerMobility/internal/modules/realtime/interface"
	reportsusecase "trackerMobility/internal/modules/reports/application/usecase"
	reportsinfra "trackerMobility/internal/modules/reports/infrastructure"
	reportshttp "trackerMobility/internal/modules/reports/interface"
	salesusecase "trackerMobility/internal/modules/salesteam/application/usecase"
	saleshttp "trackerMobility/internal/modules/salesteam/interface"
	verifiersusecase "trackerMobility/internal/modules/verifiers/application/usecase"
	verifiersinfra "trackerMobility/internal/modules/verifiers/infrastructure"
	verifiershttp "trackerMobility/internal/modules/verifiers/interface"
	"trackerMobility/internal/platform/broker"
	"trackerMobility/internal/platform/metrics"
	"trackerMobility/internal/shared/auth"
	"trackerMobility/internal/shared/errorhandler"
	"trackerMobility/internal/shared/httputil"
	"trackerMobility/internal/shared/logging"
	"trackerMobility/internal/shared/normalization"
	"trackerMobility/internal/shared/transport"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "server error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Attempt to load variables from .env so local runs honour configuration tweaks.
	if err := godotenv.Overload(); err != nil && !errors.Is(err, os.ErrNotExist) {
		fmt.Fprintf(os.Stderr, ".env load warning: %v\n", err)
	}
	cfg, err := config.Load(os.Getenv("CONFIG_FILE"))
	if err != nil {
		return fmt.Errorf("config load: %w", err)
	}

	logFile, logger, err := logging.OpenDaily(cfg.Logging.Directory, logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		AddSource: true,
	}, time.Now())
	if err != nil {
		return fmt.Errorf("logging setup: %w", err)
	}
	defer logFile.Close()
	slog.SetDefault(logger)
	slog.Info("logging initialized", slog.String("directory", cfg.Logging.Directory), slog.String("level", cfg.Logging.Level), slog.String("format", cfg.Logging.Format))
	slog.Info("kafka config resolved", slog.Any("brokers", cfg.Kafka.Brokers), slog.String("group", cfg.Kafka.GroupID), slog.Any("topics", cfg.Kafka.AllTopics()))

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	appMetrics := metrics.New(registry)

	rest := transport.NewClient(transport.Config{
		BaseURL:  cfg.REST.BaseURL,
		Timeout:  cfg.REST.Timeout,
		RetryMax: cfg.REST.RetryMax,
		Logger:   logger,
		Observer: appMetrics,
	})

	// Realtime: the hub carries both toasts and list refresh signals.
	hub := realtimeinfra.NewHub()
	broadcastUC := realtimeusecase.NewBroadcastUseCase(hub)
	notifier := realtimeusecase.NewHubNotifier(broadcastUC, appMetrics)
	errHandler := errorhandler.New(notifier, logger, errorhandler.WithDurations(cfg.Notifications.ErrorDuration, cfg.Notifications.WarningDuration))

	validator, err := auth.NewJWTValidator(cfg.Security.JWTSecret, cfg.Security.JWTPublicKey)
	if err != nil {
		return fmt.Errorf("jwt validator: %w", err)
	}

	orderRepo := ordersinfra.NewOrderHTTPRepository(rest)
	companyRepo := customersinfra.NewCompanyHTTPRepository(rest)

	reportUseCases, err := reportsusecase.NewReportUseCases(reportsinfra.NewReportHTTPRepository(rest), errHandler)
	if err != nil {
		return err
	}
	orderUseCases, err := ordersusecase.NewOrderUseCases(orderRepo, errHandler)
	if err != nil {
		return err
	}
	requestUseCases, err := ordersusecase.NewOrderRequestUseCases(ordersinfra.NewOrderRequestHTTPRepository(rest), errHandler)
	if err != nil {
		return err
	}
	verifierUseCases, err := verifiersusecase.NewVerifierUseCases(verifiersinfra.NewVerifierHTTPRepository(rest), errHandler)
	if err != nil {
		return err
	}
	companyUseCases, err := customersusecase.NewCompanyUseCases(companyRepo, errHandler)
	if err != nil {
		return err
	}
	salesOverview, err := salesusecase.NewFetchSalesOverviewUseCase(orderRepo, companyRepo, errHandler, logger)
	if err != nil {
		return err
	}

	e := echo.New()
	e.HideBanner = true
	e.Logger.SetOutput(log.Writer())
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())

	api := e.Group("/api", httputil.ForwardCredentials())
	reportshttp.NewReportHandler(reportUseCases, appMetrics).Register(api.Group("/reports"))
	orderHandler := ordershttp.NewOrderHandler(orderUseCases, requestUseCases, appMetrics)
	orderHandler.RegisterOrders(api.Group("/orders"))
	orderHandler.RegisterRequests(api.Group("/order-requests"))
	verifiershttp.NewVerifierHandler(verifierUseCases, appMetrics).Register(api.Group("/verifiers"))
	customershttp.NewCompanyHandler(companyUseCases, appMetrics).Register(api.Group("/companies"))
	saleshttp.NewSalesTeamHandler(salesOverview, appMetrics).Register(api.Group("/sales-team"))

	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]any{"status": "ok", "sessions": hub.Sessions()})
	})
	e.GET("/metrics", echo.WrapHandler(appMetrics.Handler()))
	e.GET("/ws/notifications", realtimehttp.NewNotificationsWebsocketHandler(hub, validator))

	// Upstream change events become "<entity>.updated" refresh signals.
	topicHandlers := realtimeinfra.NewHandlerRegistry()
	for entity, topics := range cfg.Kafka.Topics {
		if !normalization.IsValidEntity(entity) {
			slog.Warn("kafka topics mapped to unknown entity", slog.String("entity", entity), slog.Any("topics", topics))
		}
		for _, topic := range topics {
			topicHandlers.Register(realtimehandler.NewEntityStreamHandler(entity, topic, cfg.Websocket.AllowedActions, broadcastUC, appMetrics))
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		slog.Info("http server starting", slog.String("port", cfg.Server.Port))
		if err := e.Start(":" + cfg.Server.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	group.Go(func() error {
		return broker.Run(groupCtx, topicHandlers, cfg.Kafka.Brokers, cfg.Kafka.GroupID, topicHandlers.Topics())
	})
	group.Go(func() error {
		<-groupCtx.Done()
		slog.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		return e.Shutdown(shutdownCtx)
	})

	return group.Wait()
}
