package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/paywell-hr/payroll-backend-go/internal/handler/http/middleware"
	"github.com/paywell-hr/payroll-backend-go/internal/pkg/jwt"
)

func NewRouter(
	jwtService jwt.Service,
	authHandler AuthHandler,
	employeeHandler EmployeeHandler,
	leaveHandler LeaveHandler,
	attendanceHandler AttendanceHandler,
	payrollHandler PayrollHandler,
	masterHandler MasterHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "paywell-hr"),
		slog.String("version", "v1.0.0"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/employees", func(r chi.Router) {
				r.Get("/{id}", employeeHandler.Get)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/", employeeHandler.List)
					r.Post("/", employeeHandler.Create)
					r.Put("/{id}/compensation", employeeHandler.UpdateCompensation)
					r.Get("/{id}/salary-history", employeeHandler.SalaryHistory)
				})
			})

			r.Route("/leaves", func(r chi.Router) {
				r.Post("/", leaveHandler.CreateRequest)
				r.Get("/my", leaveHandler.GetMyRequests)
				r.Get("/balance", leaveHandler.GetMyBalance)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/", leaveHandler.ListAll)
					r.Get("/pending", leaveHandler.ListPending)
					r.Put("/{id}/status", leaveHandler.SetStatus)
					r.Post("/accrue", leaveHandler.TriggerAccrual)
				})
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Post("/check-in", attendanceHandler.CheckIn)
				r.Post("/check-out", attendanceHandler.CheckOut)
				r.Get("/today", attendanceHandler.TodayStatus)
				r.Get("/my", attendanceHandler.History)
				r.Get("/stats", attendanceHandler.MonthlyStats)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/all", attendanceHandler.TodayAll)
					r.Get("/report", attendanceHandler.MonthlyReport)
					r.Get("/overall", attendanceHandler.OverallStats)
				})
			})

			r.Route("/payroll", func(r chi.Router) {
				r.Get("/payslips", payrollHandler.MyPayslips)
				r.Get("/payslips/latest", payrollHandler.MyLatestPayslip)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/run/{employeeId}", payrollHandler.Run)
					r.Put("/{id}/pay", payrollHandler.MarkPaid)
					r.Get("/history", payrollHandler.History)
					r.Get("/history/{employeeId}", payrollHandler.EmployeeHistory)
				})
			})

			r.Route("/tax-slabs", func(r chi.Router) {
				r.Use(middleware.AdminOnly)
				r.Get("/", masterHandler.ListTaxSlabs)
				r.Get("/{id}", masterHandler.GetTaxSlab)
			})
		})
	})

	return r
}
