package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/klbeton/pointage-backend-go/internal/config"
	"github.com/klbeton/pointage-backend-go/internal/domain/payroll"
	appHTTP "github.com/klbeton/pointage-backend-go/internal/handler/http"
	"github.com/klbeton/pointage-backend-go/internal/pkg/calendar"
	"github.com/klbeton/pointage-backend-go/internal/pkg/cron"
	"github.com/klbeton/pointage-backend-go/internal/pkg/database"
	"github.com/klbeton/pointage-backend-go/internal/pkg/jwt"
	"github.com/klbeton/pointage-backend-go/internal/repository/postgresql"
	advanceService "github.com/klbeton/pointage-backend-go/internal/service/advance"
	attendanceService "github.com/klbeton/pointage-backend-go/internal/service/attendance"
	authService "github.com/klbeton/pointage-backend-go/internal/service/auth"
	employeeService "github.com/klbeton/pointage-backend-go/internal/service/employee"
	payrollService "github.com/klbeton/pointage-backend-go/internal/service/payroll"
	reportService "github.com/klbeton/pointage-backend-go/internal/service/report"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	if err := database.Migrate(context.Background(), db); err != nil {
		log.Fatal("Failed to run migrations: ", err)
	}

	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	advanceRepo := postgresql.NewAdvanceRepository(db)
	userRepo := postgresql.NewUserRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	classifier := calendar.NewTunisiaClassifier()

	policy := payroll.DefaultPolicy()
	policy.EnforceBalanceFloor = cfg.Payroll.EnforceBalanceFloor

	empService := employeeService.NewEmployeeService(employeeRepo, policy)
	attService := attendanceService.NewAttendanceService(db, attendanceRepo, employeeRepo, classifier, policy)
	advService := advanceService.NewAdvanceService(advanceRepo, employeeRepo)
	payService := payrollService.NewPayrollService(employeeRepo, attendanceRepo, advanceRepo, classifier, policy)
	repService := reportService.NewReportService(payService, cfg.App.CompanyName)
	autService := authService.NewAuthService(userRepo, employeeRepo, jwtService)

	handlers := appHTTP.Handlers{
		Auth:       appHTTP.NewAuthHandler(autService),
		Employee:   appHTTP.NewEmployeeHandler(empService),
		Attendance: appHTTP.NewAttendanceHandler(attService),
		Advance:    appHTTP.NewAdvanceHandler(advService),
		Payroll:    appHTTP.NewPayrollHandler(payService),
		Report:     appHTTP.NewReportHandler(repService),
		Geofence: appHTTP.NewGeofenceHandler(appHTTP.Site{
			Latitude:     cfg.Site.Latitude,
			Longitude:    cfg.Site.Longitude,
			RadiusMeters: cfg.Site.RadiusMeters,
		}),
	}

	router := appHTTP.NewRouter(jwtService, handlers, cfg.App.AllowedOrigins, cfg.App.Env)

	scheduler := cron.NewScheduler()
	cron.NewAttendanceJobs(attendanceRepo, employeeRepo, classifier).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("Server listening on port %d", cfg.App.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server error: ", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Forced shutdown: ", err)
	}
}
