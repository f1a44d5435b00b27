package main

import (
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/EBUBEIWOBA/Winnies-Bakery-sub000/internal/config"
	appHTTP "github.com/EBUBEIWOBA/Winnies-Bakery-sub000/internal/handler/http"
	"github.com/EBUBEIWOBA/Winnies-Bakery-sub000/internal/pkg/cron"
	"github.com/EBUBEIWOBA/Winnies-Bakery-sub000/internal/pkg/database"
	"github.com/EBUBEIWOBA/Winnies-Bakery-sub000/internal/pkg/jwt"
	"github.com/EBUBEIWOBA/Winnies-Bakery-sub000/internal/repository/postgresql"
	attendanceService "github.com/EBUBEIWOBA/Winnies-Bakery-sub000/internal/service/attendance"
	leaveService "github.com/EBUBEIWOBA/Winnies-Bakery-sub000/internal/service/leave"
	shiftService "github.com/EBUBEIWOBA/Winnies-Bakery-sub000/internal/service/shift"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		log.Fatal("Error connecting to database: ", err)
	}
	defer db.Close()

	employeeRepo := postgresql.NewEmployeeRepository(db)
	shiftRepo := postgresql.NewShiftRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret)
	shiftSvc := shiftService.NewShiftService(db, shiftRepo, employeeRepo)
	attendanceSvc := attendanceService.NewAttendanceService(db, attendanceRepo, employeeRepo, cfg.Attendance.LateThreshold)
	leaveSvc := leaveService.NewLeaveService(db, leaveRequestRepo, employeeRepo)

	shiftHandler := appHTTP.NewShiftHandler(shiftSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	leaveHandler := appHTTP.NewLeaveHandler(leaveSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeRepo)

	jobLogger := slog.New(slog.NewJSONHandler(os.Stdout, nil)).With(
		slog.String("component", "cron"),
	)
	scheduler := cron.NewScheduler(jobLogger)
	cron.NewAttendanceJobs(attendanceRepo, shiftRepo, jobLogger).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(
		JWTService,
		cfg.App.FrontendURL,
		shiftHandler,
		attendanceHandler,
		leaveHandler,
		employeeHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
