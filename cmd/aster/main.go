package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Gobusters/ectologger"
	"github.com/Gobusters/ectologger/zapadapter"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/Ramsey-B/aster/config"
	"github.com/Ramsey-B/aster/internal/handlers"
	"github.com/Ramsey-B/aster/pkg/channel"
	"github.com/Ramsey-B/aster/pkg/health"
	"github.com/Ramsey-B/aster/pkg/middleware"
	"github.com/Ramsey-B/aster/pkg/startup"
	"github.com/Ramsey-B/aster/pkg/tracing"
	"github.com/Ramsey-B/aster/pkg/tracing/exporters"
	"github.com/Ramsey-B/aster/pkg/wordpress"
)

const version = "v0.1.0"

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %s\n", err)
		os.Exit(1)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %s\n", err)
		os.Exit(1)
	}

	checker := health.NewChecker(version)

	boot := startup.NewStartup(logger, 5)
	boot.AddDependency(&tracerDependency{cfg: cfg, logger: logger})
	boot.AddDependency(&serverDependency{cfg: cfg, logger: logger, checker: checker})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := boot.Start(ctx); err != nil {
		logger.WithError(err).Error("startup failed")
		os.Exit(1)
	}
	checker.SetReady(true)
	logger.WithField("port", cfg.Port).Infof("%s listening on port %d", cfg.AppName, cfg.Port)

	<-ctx.Done()
	checker.SetReady(false)
	logger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := boot.Stop(shutdownCtx); err != nil {
		logger.WithError(err).Error("shutdown failed")
		os.Exit(1)
	}
}

func newLogger(cfg *config.Config) (ectologger.Logger, error) {
	var zapLogger *zap.Logger
	var err error

	if cfg.PrettyLogs {
		zapLogger, err = zap.NewDevelopment()
	} else {
		zapCfg := zap.NewProductionConfig()
		level, parseErr := zapcore.ParseLevel(cfg.LogLevel)
		if parseErr != nil {
			level = zapcore.InfoLevel
		}
		zapCfg.Level = zap.NewAtomicLevelAt(level)
		zapLogger, err = zapCfg.Build()
	}
	if err != nil {
		return nil, err
	}

	return zapadapter.NewZapEctoLogger(zapLogger, nil), nil
}

// tracerDependency owns the OpenTelemetry tracer provider lifecycle.
type tracerDependency struct {
	cfg      *config.Config
	logger   ectologger.Logger
	provider *sdktrace.TracerProvider
}

func (d *tracerDependency) GetName() string     { return "tracing" }
func (d *tracerDependency) DependsOn() []string { return nil }

func (d *tracerDependency) Start(ctx context.Context) error {
	var exporter sdktrace.SpanExporter
	if d.cfg.OTLPEnabled {
		otlpExporter, err := exporters.NewOTLPExporter(ctx, exporters.OTLPConfig{
			Endpoint: d.cfg.OTLPEndpoint,
			Protocol: d.cfg.OTLPProtocol,
			Insecure: d.cfg.OTLPInsecure,
			Timeout:  10 * time.Second,
		})
		if err != nil {
			return fmt.Errorf("failed to create OTLP exporter: %w", err)
		}
		exporter = otlpExporter
	} else {
		exporter = &exporters.ConsoleExporter{}
	}

	d.provider = sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(resource.NewSchemaless(
			attribute.String("service.name", d.cfg.AppName),
			attribute.String("service.version", version),
		)),
	)
	otel.SetTracerProvider(d.provider)
	tracing.SetTracer(d.provider.Tracer(d.cfg.AppName))
	return nil
}

func (d *tracerDependency) Stop(ctx context.Context) error {
	if d.provider == nil {
		return nil
	}
	return d.provider.Shutdown(ctx)
}

// serverDependency owns the echo server and its route wiring.
type serverDependency struct {
	cfg     *config.Config
	logger  ectologger.Logger
	checker *health.Checker
	server  *http.Server
}

func (d *serverDependency) GetName() string     { return "http-server" }
func (d *serverDependency) DependsOn() []string { return []string{"tracing"} }

func (d *serverDependency) Start(ctx context.Context) error {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = middleware.Error(d.logger)

	e.Use(middleware.RequestID())
	e.Use(otelecho.Middleware(d.cfg.AppName))
	e.Use(middleware.Logger(d.logger))

	client := wordpress.NewClient(wordpress.Config{
		Timeout:         d.cfg.WordpressTimeout,
		MaxIdleConns:    d.cfg.WordpressMaxIdleConns,
		IdleConnTimeout: d.cfg.WordpressIdleConnTimeout,
	}, d.logger)
	service := channel.NewService(client, d.logger)

	handlers.NewChannelHandler(service, d.logger).RegisterRoutes(e)
	handlers.NewAdminHandler(service, d.logger).RegisterRoutes(e)
	handlers.NewManifestHandler(version, d.logger).RegisterRoutes(e)
	d.checker.RegisterRoutes(e)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	d.server = &http.Server{
		Addr:           fmt.Sprintf(":%d", d.cfg.Port),
		Handler:        e,
		ReadTimeout:    time.Duration(d.cfg.HttpServerReadTimeoutSeconds) * time.Second,
		WriteTimeout:   time.Duration(d.cfg.HttpServerWriteTimeoutSeconds) * time.Second,
		IdleTimeout:    time.Duration(d.cfg.HttpServerIdleTimeoutSeconds) * time.Second,
		MaxHeaderBytes: d.cfg.MaxHeaderBytes,
	}

	go func() {
		if err := d.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			d.logger.WithError(err).Error("http server stopped unexpectedly")
		}
	}()
	return nil
}

func (d *serverDependency) Stop(ctx context.Context) error {
	if d.server == nil {
		return nil
	}
	return d.server.Shutdown(ctx)
}
