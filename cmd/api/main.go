package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/naxrita/hrms-backend-go/internal/config"
	appHTTP "github.com/naxrita/hrms-backend-go/internal/handler/http"
	"github.com/naxrita/hrms-backend-go/internal/pkg/database"
	"github.com/naxrita/hrms-backend-go/internal/pkg/jwt"
	"github.com/naxrita/hrms-backend-go/internal/repository/postgresql"
	authService "github.com/naxrita/hrms-backend-go/internal/service/auth"
	chargecodeService "github.com/naxrita/hrms-backend-go/internal/service/chargecode"
	holidayService "github.com/naxrita/hrms-backend-go/internal/service/holiday"
	leaveService "github.com/naxrita/hrms-backend-go/internal/service/leave"
	notificationService "github.com/naxrita/hrms-backend-go/internal/service/notification"
	timesheetService "github.com/naxrita/hrms-backend-go/internal/service/timesheet"
	userService "github.com/naxrita/hrms-backend-go/internal/service/user"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}
	if err := cfg.Validate(); err != nil {
		fmt.Println("Invalid config:", err)
		return
	}

	logLevel := slog.LevelInfo
	if cfg.App.LogLevel == "debug" {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel}))
	slog.SetDefault(logger)

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)
	leaveBalanceRepo := postgresql.NewLeaveBalanceRepository(db)
	timesheetRepo := postgresql.NewTimesheetRepository(db)
	chargeCodeRepo := postgresql.NewChargeCodeRepository(db)
	assignmentRepo := postgresql.NewAssignmentRepository(db)
	notificationRepo := postgresql.NewNotificationRepository(db)
	holidayRepo := postgresql.NewHolidayRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	notificationSvc := notificationService.NewNotificationService(notificationRepo, logger)
	authSvc := authService.NewAuthService(userRepo, jwtService)
	userSvc := userService.NewUserService(userRepo)
	leaveSvc := leaveService.NewLeaveService(leaveRequestRepo, leaveBalanceRepo, userRepo, notificationSvc, postgresql.NewTxRunner(db))
	timesheetSvc := timesheetService.NewTimesheetService(
		timesheetRepo,
		chargeCodeRepo,
		leaveRequestRepo,
		holidayRepo,
		userRepo,
		notificationSvc,
	)
	chargeCodeSvc := chargecodeService.NewChargeCodeService(chargeCodeRepo, assignmentRepo, userRepo)
	holidaySvc := holidayService.NewHolidayService(holidayRepo)

	router := appHTTP.NewRouter(cfg, jwtService, appHTTP.Handlers{
		Auth:         appHTTP.NewAuthHandler(authSvc, jwtService),
		User:         appHTTP.NewUserHandler(userSvc),
		Leave:        appHTTP.NewLeaveHandler(leaveSvc),
		Timesheet:    appHTTP.NewTimesheetHandler(timesheetSvc),
		ChargeCode:   appHTTP.NewChargeCodeHandler(chargeCodeSvc),
		Notification: appHTTP.NewNotificationHandler(notificationSvc),
		Holiday:      appHTTP.NewHolidayHandler(holidaySvc),
	})

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
