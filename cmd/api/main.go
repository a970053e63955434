package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/paywell-hr/payroll-backend-go/internal/config"
	appHTTP "github.com/paywell-hr/payroll-backend-go/internal/handler/http"
	"github.com/paywell-hr/payroll-backend-go/internal/pkg/cache"
	"github.com/paywell-hr/payroll-backend-go/internal/pkg/cron"
	"github.com/paywell-hr/payroll-backend-go/internal/pkg/database"
	"github.com/paywell-hr/payroll-backend-go/internal/pkg/jwt"
	"github.com/paywell-hr/payroll-backend-go/internal/repository/postgresql"
	attendanceService "github.com/paywell-hr/payroll-backend-go/internal/service/attendance"
	authService "github.com/paywell-hr/payroll-backend-go/internal/service/auth"
	employeeService "github.com/paywell-hr/payroll-backend-go/internal/service/employee"
	leaveService "github.com/paywell-hr/payroll-backend-go/internal/service/leave"
	"github.com/paywell-hr/payroll-backend-go/internal/service/master"
	payrollService "github.com/paywell-hr/payroll-backend-go/internal/service/payroll"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL(), int32(cfg.Database.MaxConns))
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	// The employee cache is optional; the service falls back to direct
	// database reads when Redis is unreachable at startup.
	var employeeCache *cache.Cache
	if c, err := cache.NewRedisCache(cfg.RedisAddr(), cfg.Redis.Password, cfg.Redis.DB); err != nil {
		slog.Warn("Redis unavailable, employee cache disabled", "error", err)
	} else {
		employeeCache = c
		defer c.Close()
	}

	employeeRepo := postgresql.NewEmployeeRepository(db)
	revisionRepo := postgresql.NewSalaryRevisionRepository(db)
	taxSlabRepo := postgresql.NewTaxSlabRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)
	leaveBalanceRepo := postgresql.NewLeaveBalanceRepository(db)
	accrualPeriodRepo := postgresql.NewAccrualPeriodRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	payrollRepo := postgresql.NewPayrollRunRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	loc, err := time.LoadLocation(cfg.App.Timezone)
	if err != nil {
		slog.Warn("Invalid timezone, falling back to server local time", "timezone", cfg.App.Timezone, "error", err)
		loc = time.Local
	}

	authSvc := authService.NewAuthService(employeeRepo, jwtService)
	employeeSvc := employeeService.NewEmployeeService(db, employeeRepo, revisionRepo, employeeCache)
	leaveSvc := leaveService.NewLeaveService(db, leaveRequestRepo, leaveBalanceRepo)
	accrualSvc := leaveService.NewAccrualService(leaveBalanceRepo, accrualPeriodRepo, employeeRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, employeeRepo, loc)
	payrollSvc := payrollService.NewPayrollService(payrollRepo, employeeRepo, taxSlabRepo, leaveRequestRepo, attendanceRepo)
	taxSlabSvc := master.NewTaxSlabService(taxSlabRepo)

	authHandler := appHTTP.NewAuthHandler(authSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	leaveHandler := appHTTP.NewLeaveHandler(leaveSvc, accrualSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)
	masterHandler := appHTTP.NewMasterHandler(taxSlabSvc)

	scheduler := cron.NewScheduler()
	cron.NewLeaveJobs(accrualSvc).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(
		jwtService,
		authHandler,
		employeeHandler,
		leaveHandler,
		attendanceHandler,
		payrollHandler,
		masterHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
