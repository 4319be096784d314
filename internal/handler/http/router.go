package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/klbeton/pointage-backend-go/internal/handler/http/middleware"
	"github.com/klbeton/pointage-backend-go/internal/pkg/jwt"
)

type Handlers struct {
	Auth       AuthHandler
	Employee   EmployeeHandler
	Attendance AttendanceHandler
	Advance    AdvanceHandler
	Payroll    PayrollHandler
	Report     ReportHandler
	Geofence   GeofenceHandler
}

func NewRouter(jwtService jwt.Service, h Handlers, allowedOrigins []string, env string) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "pointage-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", h.Auth.Login)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Get("/auth/me", h.Auth.Me)

			// Admin only
			r.Group(func(r chi.Router) {
				r.Use(middleware.AdminOnly)
				r.Post("/auth/register", h.Auth.Register)
			})

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", h.Employee.ListEmployees)
				r.Get("/{id}", h.Employee.GetEmployee)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", h.Employee.CreateEmployee)
					r.Put("/{id}", h.Employee.UpdateEmployee)
					r.Delete("/{id}", h.Employee.DeactivateEmployee)
				})
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Get("/", h.Attendance.ListAttendance)

				// Chef or admin: sheet ingestion
				r.Group(func(r chi.Router) {
					r.Use(middleware.ManagerOnly)
					r.Post("/normalize", h.Attendance.NormalizeEntry)
					r.Post("/sheets", h.Attendance.IngestDailySheet)
				})
			})

			r.Route("/advances", func(r chi.Router) {
				r.Get("/", h.Advance.ListAdvances)
				r.Get("/{id}", h.Advance.GetAdvance)
				r.Post("/", h.Advance.RequestAdvance)

				r.Group(func(r chi.Router) {
					r.Use(middleware.ManagerOnly)
					r.Put("/{id}/review", h.Advance.ReviewAdvance)
				})
			})

			r.Route("/payroll", func(r chi.Router) {
				r.Use(middleware.ManagerOnly)
				r.Get("/policy", h.Payroll.GetPolicy)
				r.Get("/summary", h.Payroll.GetSummaryAll)
				r.Get("/summary/{employeeID}", h.Payroll.GetSummary)
			})

			r.Route("/reports", func(r chi.Router) {
				r.Use(middleware.ManagerOnly)
				r.Get("/payslip/{employeeID}", h.Report.DownloadPayslip)
				r.Get("/recap", h.Report.DownloadMonthlyRecap)
			})

			r.Post("/geofence/check", h.Geofence.CheckLocation)
		})
	})

	return r
}
