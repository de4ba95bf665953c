package http

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/metric"

	auditHTTP "github.com/tlias/tlias/internal/audit/http"
	auditUseCase "github.com/tlias/tlias/internal/audit/usecase"
	authDomain "github.com/tlias/tlias/internal/auth/domain"
	authHTTP "github.com/tlias/tlias/internal/auth/http"
	authService "github.com/tlias/tlias/internal/auth/service"
	clazzHTTP "github.com/tlias/tlias/internal/clazz/http"
	"github.com/tlias/tlias/internal/config"
	deptHTTP "github.com/tlias/tlias/internal/dept/http"
	empHTTP "github.com/tlias/tlias/internal/emp/http"
	"github.com/tlias/tlias/internal/metrics"
	reportHTTP "github.com/tlias/tlias/internal/report/http"
	studentHTTP "github.com/tlias/tlias/internal/student/http"
)

// Handlers groups the per-module HTTP handlers wired into the router.
type Handlers struct {
	Login      *empHTTP.LoginHandler
	Emp        *empHTTP.EmpHandler
	Student    *studentHTTP.StudentHandler
	Clazz      *clazzHTTP.ClazzHandler
	Dept       *deptHTTP.DeptHandler
	Report     *reportHTTP.ReportHandler
	OperateLog *auditHTTP.OperateLogHandler
}

// Server represents the HTTP server
type Server struct {
	server *http.Server
	cfg    *config.Config
	db     *sql.DB
	logger *slog.Logger

	tokenCodec    authService.TokenCodec
	roleLookup    authHTTP.RoleLookup
	operateLogUC  auditUseCase.OperateLogUseCase
	handlers      Handlers
	meterProvider metric.MeterProvider
}

// NewServer creates a new HTTP server
func NewServer(
	cfg *config.Config,
	db *sql.DB,
	logger *slog.Logger,
	tokenCodec authService.TokenCodec,
	roleLookup authHTTP.RoleLookup,
	operateLogUC auditUseCase.OperateLogUseCase,
	handlers Handlers,
	meterProvider metric.MeterProvider,
) *Server {
	s := &Server{
		cfg:           cfg,
		db:            db,
		logger:        logger,
		tokenCodec:    tokenCodec,
		roleLookup:    roleLookup,
		operateLogUC:  operateLogUC,
		handlers:      handlers,
		meterProvider: meterProvider,
	}

	s.server = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.ServerHost, cfg.ServerPort),
		Handler:      s.buildRouter(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	return s
}

// GetHandler returns the http.Handler for testing purposes.
func (s *Server) GetHandler() http.Handler {
	return s.server.Handler
}

// buildRouter assembles the gin engine. Middleware ordering on protected
// routes is authenticate, then authorize, then audit, then the handler: a
// request rejected by an earlier stage never reaches a later one.
func (s *Server) buildRouter() *gin.Engine {
	gin.SetMode(s.cfg.GetGinMode())

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestid.New(requestid.WithGenerator(func() string {
		return uuid.Must(uuid.NewV7()).String()
	})))
	router.Use(CustomLoggerMiddleware(s.logger))

	if s.meterProvider != nil {
		router.Use(metrics.HTTPMetricsMiddleware(s.meterProvider, s.cfg.MetricsNamespace))
	}
	if corsMiddleware := createCORSMiddleware(s.cfg.CORSEnabled, s.cfg.CORSAllowOrigins, s.logger); corsMiddleware != nil {
		router.Use(corsMiddleware)
	}

	// Authentication applies to every route; the allow-list lets login and
	// the probes through.
	router.Use(authHTTP.AuthenticationMiddleware(s.tokenCodec, s.cfg.AllowedPathPrefixes(), s.logger))

	router.GET("/health", s.healthHandler)
	router.GET("/ready", s.readyHandler)

	login := router.Group("/login")
	if s.cfg.RateLimitLoginEnabled {
		login.Use(authHTTP.LoginRateLimitMiddleware(
			s.cfg.RateLimitLoginRequestsPerSec,
			s.cfg.RateLimitLoginBurst,
			s.logger,
		))
	}
	login.POST("", s.handlers.Login.LoginHandler)

	emps := router.Group("/emps")
	emps.GET("", s.require(authDomain.PermEmpList), s.handlers.Emp.PageHandler)
	emps.GET("/list", s.require(authDomain.PermEmpList), s.handlers.Emp.ListHandler)
	emps.GET("/permissions", s.handlers.Emp.PermissionsHandler)
	emps.GET("/:id", s.require(authDomain.PermEmpView), s.handlers.Emp.GetHandler)
	emps.POST("", s.require(authDomain.PermEmpCreate), s.audit("emp", "create"), s.handlers.Emp.CreateHandler)
	emps.PUT("/:id", s.require(authDomain.PermEmpEdit), s.audit("emp", "update"), s.handlers.Emp.UpdateHandler)
	emps.DELETE("", s.require(authDomain.PermEmpDelete), s.audit("emp", "delete"), s.handlers.Emp.DeleteHandler)

	students := router.Group("/students")
	students.GET("", s.require(authDomain.PermStudentList), s.handlers.Student.PageHandler)
	students.GET("/:id", s.require(authDomain.PermStudentView), s.handlers.Student.GetHandler)
	students.POST("", s.require(authDomain.PermStudentCreate), s.audit("student", "create"), s.handlers.Student.CreateHandler)
	students.PUT("/violation/:id/:score", s.require(authDomain.PermStudentEdit), s.handlers.Student.ViolationHandler)
	students.PUT("/:id", s.require(authDomain.PermStudentEdit), s.audit("student", "update"), s.handlers.Student.UpdateHandler)
	students.DELETE("/:ids", s.require(authDomain.PermStudentDelete), s.audit("student", "delete"), s.handlers.Student.DeleteHandler)

	clazzs := router.Group("/clazzs")
	clazzs.GET("", s.require(authDomain.PermClazzList), s.handlers.Clazz.PageHandler)
	clazzs.GET("/list", s.require(authDomain.PermClazzList), s.handlers.Clazz.ListHandler)
	clazzs.GET("/:id", s.require(authDomain.PermClazzView), s.handlers.Clazz.GetHandler)
	clazzs.POST("", s.require(authDomain.PermClazzCreate), s.audit("clazz", "create"), s.handlers.Clazz.CreateHandler)
	clazzs.PUT("/:id", s.require(authDomain.PermClazzEdit), s.audit("clazz", "update"), s.handlers.Clazz.UpdateHandler)
	clazzs.DELETE("/:id", s.require(authDomain.PermClazzDelete), s.audit("clazz", "delete"), s.handlers.Clazz.DeleteHandler)

	depts := router.Group("/depts")
	depts.GET("", s.require(authDomain.PermDeptList), s.handlers.Dept.ListHandler)
	depts.GET("/:id", s.require(authDomain.PermDeptView), s.handlers.Dept.GetHandler)
	depts.POST("", s.require(authDomain.PermDeptCreate), s.audit("dept", "create"), s.handlers.Dept.CreateHandler)
	depts.PUT("/:id", s.require(authDomain.PermDeptEdit), s.audit("dept", "update"), s.handlers.Dept.UpdateHandler)
	depts.DELETE("", s.require(authDomain.PermDeptDelete), s.audit("dept", "delete"), s.handlers.Dept.DeleteHandler)

	report := router.Group("/report")
	report.Use(s.require(authDomain.PermReportView))
	report.GET("/empJobData", s.handlers.Report.EmpJobDataHandler)
	report.GET("/empGenderData", s.handlers.Report.EmpGenderDataHandler)
	report.GET("/studentCountData", s.handlers.Report.StudentCountDataHandler)
	report.GET("/studentDegreeData", s.handlers.Report.StudentDegreeDataHandler)

	router.GET("/log/page", s.require(authDomain.PermLogView), s.handlers.OperateLog.PageHandler)

	return router
}

// require gates a route behind one permission.
func (s *Server) require(perm authDomain.Permission) gin.HandlerFunc {
	return authHTTP.RequirePermission(perm, s.roleLookup, s.cfg.AuthRoleLookupTimeout, s.logger)
}

// audit wraps a state-changing route with operate-log recording.
func (s *Server) audit(className, methodName string) gin.HandlerFunc {
	return auditHTTP.Middleware(s.operateLogUC, className, methodName, s.cfg.AuditWriteTimeout, s.logger)
}

// healthHandler reports process liveness.
func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// readyHandler reports readiness, including database reachability.
func (s *Server) readyHandler(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := s.db.PingContext(ctx); err != nil {
		s.logger.Warn("readiness check failed", slog.Any("error", err))
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not ready"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}

// Start starts the HTTP server
func (s *Server) Start(ctx context.Context) error {
	s.logger.Info("starting http server", slog.String("addr", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down http server")
	return s.server.Shutdown(ctx)
}
