package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dayflow-hris/hris-backend-go/internal/config"
	appHTTP "github.com/dayflow-hris/hris-backend-go/internal/handler/http"
	"github.com/dayflow-hris/hris-backend-go/internal/pkg/database"
	"github.com/dayflow-hris/hris-backend-go/internal/pkg/jwt"
	"github.com/dayflow-hris/hris-backend-go/internal/repository/postgresql"
	attendanceService "github.com/dayflow-hris/hris-backend-go/internal/service/attendance"
	serviceAuth "github.com/dayflow-hris/hris-backend-go/internal/service/auth"
	serviceCompany "github.com/dayflow-hris/hris-backend-go/internal/service/company"
	employeeService "github.com/dayflow-hris/hris-backend-go/internal/service/employee"
	leaveService "github.com/dayflow-hris/hris-backend-go/internal/service/leave"
	payrollService "github.com/dayflow-hris/hris-backend-go/internal/service/payroll"
	"github.com/go-chi/httplog/v3"
	"github.com/shopspring/decimal"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}

	logFormat := httplog.SchemaECS.Concise(!cfg.IsProduction())
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:       cfg.SlogLevel(),
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", cfg.App.Name),
		slog.String("version", cfg.App.Version),
		slog.String("env", cfg.App.Env),
	)
	slog.SetDefault(logger)

	// Money goes over the wire as JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true

	db, err := database.NewPostgreSQLDB(context.Background(), cfg.DatabaseURL(), database.PoolOptions{
		MaxConns: cfg.Database.MaxConns,
		MinConns: cfg.Database.MinConns,
	})
	if err != nil {
		slog.Error("Error connecting to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	transactor := postgresql.NewTransactor(db)
	accountRepo := postgresql.NewAccountRepository(db)
	companyRepo := postgresql.NewCompanyRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)
	salaryRepo := postgresql.NewSalaryStructureRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	employeeSvc := employeeService.NewEmployeeService(
		transactor,
		accountRepo,
		companyRepo,
		employeeRepo,
		attendanceRepo,
		leaveRequestRepo,
		salaryRepo,
		cfg.Company.DefaultPrefix,
	)
	authSvc := serviceAuth.NewAuthService(transactor, accountRepo, companyRepo, employeeRepo, employeeSvc, JWTService)
	companySvc := serviceCompany.NewCompanyService(companyRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, leaveRequestRepo, employeeRepo, accountRepo)
	leaveSvc := leaveService.NewLeaveService(leaveRequestRepo)
	payrollSvc := payrollService.NewPayrollService(transactor, accountRepo, employeeRepo, salaryRepo)

	router := appHTTP.NewRouter(logger, cfg.App.CORSAllowedOrigins, JWTService, appHTTP.Handlers{
		Auth:       appHTTP.NewAuthHandler(authSvc),
		Employee:   appHTTP.NewEmployeeHandler(employeeSvc, attendanceSvc),
		Attendance: appHTTP.NewAttendanceHandler(attendanceSvc),
		Leave:      appHTTP.NewLeaveHandler(leaveSvc),
		Salary:     appHTTP.NewSalaryHandler(payrollSvc),
		Company:    appHTTP.NewCompanyHandler(companySvc),
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("Server running", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Warn("Server shutdown failed", "error", err)
	}
}
