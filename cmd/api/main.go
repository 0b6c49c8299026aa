package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/guardhq/timesheet-backend-go/internal/config"
	"github.com/guardhq/timesheet-backend-go/internal/grid"
	appHTTP "github.com/guardhq/timesheet-backend-go/internal/handler/http"
	"github.com/guardhq/timesheet-backend-go/internal/pkg/database"
	"github.com/guardhq/timesheet-backend-go/internal/pkg/jwt"
	"github.com/guardhq/timesheet-backend-go/internal/repository/postgresql"
	serviceAuth "github.com/guardhq/timesheet-backend-go/internal/service/auth"
	employeeService "github.com/guardhq/timesheet-backend-go/internal/service/employee"
	payrollService "github.com/guardhq/timesheet-backend-go/internal/service/payroll"
	targetService "github.com/guardhq/timesheet-backend-go/internal/service/target"
	timesheetService "github.com/guardhq/timesheet-backend-go/internal/service/timesheet"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	employeeRepo := postgresql.NewEmployeeRepository(db)
	targetRepo := postgresql.NewTargetRepository(db)
	timesheetRepo := postgresql.NewTimesheetRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	sessions := grid.NewSessionManager(employeeRepo, targetRepo, timesheetRepo, cfg.Grid.SaveDebounce, logger)

	authSvc := serviceAuth.NewAuthService(employeeRepo, JWTService)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo, targetRepo, timesheetRepo, logger)
	targetSvc := targetService.NewTargetService(targetRepo, employeeRepo)
	timesheetSvc := timesheetService.NewTimesheetService(sessions, employeeRepo, targetRepo)
	payrollSvc := payrollService.NewPayrollService(employeeRepo, timesheetRepo)

	authHandler := appHTTP.NewAuthHandler(JWTService, authSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	targetHandler := appHTTP.NewTargetHandler(targetSvc)
	timesheetHandler := appHTTP.NewTimesheetHandler(timesheetSvc)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)

	router := appHTTP.NewRouter(
		JWTService,
		authHandler,
		employeeHandler,
		targetHandler,
		timesheetHandler,
		payrollHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	server := &http.Server{Addr: port, Handler: router}

	go func() {
		fmt.Printf("Server running at http://localhost%s\n", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			fmt.Println("Server error:", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	// Flush pending grid saves before shutting down so debounced snapshots
	// are not lost.
	sessions.FlushAll()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		fmt.Println("Shutdown error:", err)
	}
}
