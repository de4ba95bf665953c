// Package app provides the dependency injection container assembling the
// application components.
package app

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"go.opentelemetry.io/otel/metric"

	auditHTTP "github.com/tlias/tlias/internal/audit/http"
	authService "github.com/tlias/tlias/internal/auth/service"
	clazzHTTP "github.com/tlias/tlias/internal/clazz/http"
	clazzUsecase "github.com/tlias/tlias/internal/clazz/usecase"
	"github.com/tlias/tlias/internal/config"
	"github.com/tlias/tlias/internal/database"
	deptHTTP "github.com/tlias/tlias/internal/dept/http"
	deptUsecase "github.com/tlias/tlias/internal/dept/usecase"
	empHTTP "github.com/tlias/tlias/internal/emp/http"
	empUsecase "github.com/tlias/tlias/internal/emp/usecase"
	"github.com/tlias/tlias/internal/http"
	"github.com/tlias/tlias/internal/metrics"
	reportHTTP "github.com/tlias/tlias/internal/report/http"
	reportUsecase "github.com/tlias/tlias/internal/report/usecase"
	studentHTTP "github.com/tlias/tlias/internal/student/http"
	studentUsecase "github.com/tlias/tlias/internal/student/usecase"

	auditUsecase "github.com/tlias/tlias/internal/audit/usecase"
)

// Container holds all application dependencies and provides methods to access them.
// It follows the lazy initialization pattern - components are created on first access.
type Container struct {
	// Configuration
	config *config.Config

	// Infrastructure
	logger          *slog.Logger
	db              *sql.DB
	txManager       database.TxManager
	metricsProvider *metrics.Provider
	businessMetrics metrics.BusinessMetrics

	// Auth
	tokenCodec authService.TokenCodec

	// Repositories
	empRepo        empUsecase.EmpRepository
	studentRepo    studentUsecase.StudentRepository
	clazzRepo      clazzUsecase.ClazzRepository
	deptRepo       deptUsecase.DeptRepository
	reportRepo     reportUsecase.ReportRepository
	operateLogRepo auditUsecase.OperateLogRepository

	// Use Cases
	empUseCase        empUsecase.EmpUseCase
	studentUseCase    studentUsecase.StudentUseCase
	clazzUseCase      clazzUsecase.ClazzUseCase
	deptUseCase       deptUsecase.DeptUseCase
	reportUseCase     reportUsecase.ReportUseCase
	operateLogUseCase auditUsecase.OperateLogUseCase

	// Servers
	httpServer    *http.Server
	metricsServer *http.MetricsServer

	// Initialization flags and mutex for thread-safety
	mu                    sync.Mutex
	loggerInit            sync.Once
	dbInit                sync.Once
	txManagerInit         sync.Once
	metricsProviderInit   sync.Once
	businessMetricsInit   sync.Once
	tokenCodecInit        sync.Once
	empRepoInit           sync.Once
	studentRepoInit       sync.Once
	clazzRepoInit         sync.Once
	deptRepoInit          sync.Once
	reportRepoInit        sync.Once
	operateLogRepoInit    sync.Once
	empUseCaseInit        sync.Once
	studentUseCaseInit    sync.Once
	clazzUseCaseInit      sync.Once
	deptUseCaseInit       sync.Once
	reportUseCaseInit     sync.Once
	operateLogUseCaseInit sync.Once
	httpServerInit        sync.Once
	metricsServerInit     sync.Once
	initErrors            map[string]error
}

// NewContainer creates a new dependency injection container with the provided configuration.
func NewContainer(cfg *config.Config) *Container {
	return &Container{
		config:     cfg,
		initErrors: make(map[string]error),
	}
}

// Config returns the application configuration.
func (c *Container) Config() *config.Config {
	return c.config
}

// Logger returns the configured logger instance.
// It creates a new logger on first access based on the log level in configuration.
func (c *Container) Logger() *slog.Logger {
	c.loggerInit.Do(func() {
		c.logger = c.initLogger()
	})
	return c.logger
}

// DB returns the database connection.
// It creates and configures the database connection on first access.
func (c *Container) DB() (*sql.DB, error) {
	c.dbInit.Do(func() {
		db, err := database.Connect(database.Config{
			Driver:             c.config.DBDriver,
			ConnectionString:   c.config.DBConnectionString,
			MaxOpenConnections: c.config.DBMaxOpenConnections,
			MaxIdleConnections: c.config.DBMaxIdleConnections,
			ConnMaxLifetime:    c.config.DBConnMaxLifetime,
		})
		if err != nil {
			c.initErrors["db"] = fmt.Errorf("failed to connect to database: %w", err)
			return
		}
		c.db = db
	})
	if err, exists := c.initErrors["db"]; exists {
		return nil, err
	}
	return c.db, nil
}

// TxManager returns the transaction manager.
func (c *Container) TxManager() (database.TxManager, error) {
	c.txManagerInit.Do(func() {
		db, err := c.DB()
		if err != nil {
			c.initErrors["txManager"] = fmt.Errorf("failed to get database for tx manager: %w", err)
			return
		}
		c.txManager = database.NewTxManager(db)
	})
	if err, exists := c.initErrors["txManager"]; exists {
		return nil, err
	}
	return c.txManager, nil
}

// MetricsProvider returns the metrics provider, or nil when metrics are
// disabled.
func (c *Container) MetricsProvider() (*metrics.Provider, error) {
	c.metricsProviderInit.Do(func() {
		if !c.config.MetricsEnabled {
			return
		}
		provider, err := metrics.NewProvider(c.config.MetricsNamespace)
		if err != nil {
			c.initErrors["metricsProvider"] = fmt.Errorf("failed to create metrics provider: %w", err)
			return
		}
		c.metricsProvider = provider
	})
	if err, exists := c.initErrors["metricsProvider"]; exists {
		return nil, err
	}
	return c.metricsProvider, nil
}

// BusinessMetrics returns the business metrics recorder; a no-op
// implementation when metrics are disabled.
func (c *Container) BusinessMetrics() (metrics.BusinessMetrics, error) {
	c.businessMetricsInit.Do(func() {
		provider, err := c.MetricsProvider()
		if err != nil {
			c.initErrors["businessMetrics"] = err
			return
		}
		if provider == nil {
			c.businessMetrics = metrics.NewNoOpBusinessMetrics()
			return
		}
		businessMetrics, err := metrics.NewBusinessMetrics(provider.MeterProvider(), c.config.MetricsNamespace)
		if err != nil {
			c.initErrors["businessMetrics"] = fmt.Errorf("failed to create business metrics: %w", err)
			return
		}
		c.businessMetrics = businessMetrics
	})
	if err, exists := c.initErrors["businessMetrics"]; exists {
		return nil, err
	}
	return c.businessMetrics, nil
}

// TokenCodec returns the login token codec.
func (c *Container) TokenCodec() (authService.TokenCodec, error) {
	c.tokenCodecInit.Do(func() {
		if c.config.AuthTokenSecret == "" {
			c.initErrors["tokenCodec"] = fmt.Errorf("AUTH_TOKEN_SECRET must be set")
			return
		}
		c.tokenCodec = authService.NewTokenCodec(c.config.AuthTokenSecret, c.config.AuthTokenExpiration)
	})
	if err, exists := c.initErrors["tokenCodec"]; exists {
		return nil, err
	}
	return c.tokenCodec, nil
}

// HTTPServer returns the HTTP server instance with all routes wired.
func (c *Container) HTTPServer() (*http.Server, error) {
	c.httpServerInit.Do(func() {
		c.httpServer, c.initErrors["httpServer"] = c.initHTTPServer()
		if c.initErrors["httpServer"] == nil {
			delete(c.initErrors, "httpServer")
		}
	})
	if err, exists := c.initErrors["httpServer"]; exists {
		return nil, err
	}
	return c.httpServer, nil
}

// MetricsServer returns the metrics server, or nil when metrics are disabled.
func (c *Container) MetricsServer() (*http.MetricsServer, error) {
	c.metricsServerInit.Do(func() {
		provider, err := c.MetricsProvider()
		if err != nil {
			c.initErrors["metricsServer"] = err
			return
		}
		if provider == nil {
			return
		}
		c.metricsServer = http.NewMetricsServer(
			c.config.ServerHost,
			c.config.MetricsPort,
			c.Logger(),
			provider,
		)
	})
	if err, exists := c.initErrors["metricsServer"]; exists {
		return nil, err
	}
	return c.metricsServer, nil
}

// Shutdown performs cleanup of all initialized resources.
// It should be called when the application is shutting down.
func (c *Container) Shutdown(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var shutdownErrors []error

	if c.httpServer != nil {
		if err := c.httpServer.Shutdown(ctx); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("http server shutdown: %w", err))
		}
	}

	if c.metricsServer != nil {
		if err := c.metricsServer.Shutdown(ctx); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("metrics server shutdown: %w", err))
		}
	}

	if c.metricsProvider != nil {
		if err := c.metricsProvider.Shutdown(ctx); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("metrics provider shutdown: %w", err))
		}
	}

	if c.db != nil {
		if err := c.db.Close(); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("database close: %w", err))
		}
	}

	if len(shutdownErrors) > 0 {
		return fmt.Errorf("shutdown errors: %v", shutdownErrors)
	}

	return nil
}

// initLogger creates and configures a structured logger based on the log level.
func (c *Container) initLogger() *slog.Logger {
	var logLevel slog.Level
	switch c.config.LogLevel {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	})

	return slog.New(handler)
}

// initHTTPServer assembles the HTTP server from the container components.
func (c *Container) initHTTPServer() (*http.Server, error) {
	db, err := c.DB()
	if err != nil {
		return nil, err
	}
	tokenCodec, err := c.TokenCodec()
	if err != nil {
		return nil, err
	}
	empUseCase, err := c.EmpUseCase()
	if err != nil {
		return nil, err
	}
	studentUseCase, err := c.StudentUseCase()
	if err != nil {
		return nil, err
	}
	clazzUseCase, err := c.ClazzUseCase()
	if err != nil {
		return nil, err
	}
	deptUseCase, err := c.DeptUseCase()
	if err != nil {
		return nil, err
	}
	reportUseCase, err := c.ReportUseCase()
	if err != nil {
		return nil, err
	}
	operateLogUseCase, err := c.OperateLogUseCase()
	if err != nil {
		return nil, err
	}

	logger := c.Logger()
	handlers := http.Handlers{
		Login:      empHTTP.NewLoginHandler(empUseCase, logger),
		Emp:        empHTTP.NewEmpHandler(empUseCase, logger),
		Student:    studentHTTP.NewStudentHandler(studentUseCase, logger),
		Clazz:      clazzHTTP.NewClazzHandler(clazzUseCase, logger),
		Dept:       deptHTTP.NewDeptHandler(deptUseCase, logger),
		Report:     reportHTTP.NewReportHandler(reportUseCase, logger),
		OperateLog: auditHTTP.NewOperateLogHandler(operateLogUseCase, logger),
	}

	provider, err := c.MetricsProvider()
	if err != nil {
		return nil, err
	}
	var meterProvider metric.MeterProvider
	if provider != nil {
		meterProvider = provider.MeterProvider()
	}

	server := http.NewServer(
		c.config,
		db,
		logger,
		tokenCodec,
		empUseCase,
		operateLogUseCase,
		handlers,
		meterProvider,
	)
	return server, nil
}
