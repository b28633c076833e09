package main

import (
	"fmt"
	"net/http"

	"github.com/shiftline/shiftline-backend-go/internal/config"
	appHTTP "github.com/shiftline/shiftline-backend-go/internal/handler/http"
	"github.com/shiftline/shiftline-backend-go/internal/pkg/cron"
	"github.com/shiftline/shiftline-backend-go/internal/pkg/database"
	"github.com/shiftline/shiftline-backend-go/internal/pkg/jwt"
	"github.com/shiftline/shiftline-backend-go/internal/pkg/oauth"
	"github.com/shiftline/shiftline-backend-go/internal/pkg/sse"
	"github.com/shiftline/shiftline-backend-go/internal/repository/postgresql"
	advanceService "github.com/shiftline/shiftline-backend-go/internal/service/advance"
	authService "github.com/shiftline/shiftline-backend-go/internal/service/auth"
	payrollService "github.com/shiftline/shiftline-backend-go/internal/service/payroll"
	safeService "github.com/shiftline/shiftline-backend-go/internal/service/safe"
	salesService "github.com/shiftline/shiftline-backend-go/internal/service/sales"
	scheduleService "github.com/shiftline/shiftline-backend-go/internal/service/schedule"
	shiftService "github.com/shiftline/shiftline-backend-go/internal/service/shift"
	storeService "github.com/shiftline/shiftline-backend-go/internal/service/store"
	taskService "github.com/shiftline/shiftline-backend-go/internal/service/task"
	userService "github.com/shiftline/shiftline-backend-go/internal/service/user"
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

	userRepo := postgresql.NewUserRepository(db)
	storeRepo := postgresql.NewStoreRepository(db)
	shiftRepo := postgresql.NewShiftRepository(db)
	advanceRepo := postgresql.NewAdvanceRepository(db)
	scheduleRepo := postgresql.NewScheduleRepository(db)
	safeRepo := postgresql.NewSafeRepository(db)
	salesRepo := postgresql.NewSalesRepository(db)
	taskRepo := postgresql.NewTaskRepository(db)
	refreshTokenRepo := postgresql.NewRefreshTokenRepository(db)

	jwtSvc := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	var googleSvc oauth.GoogleService
	if cfg.GoogleLoginEnabled() {
		googleSvc = oauth.NewGoogleService(cfg.OAuth2Google.ClientID, cfg.OAuth2Google.ClientSecret, cfg.OAuth2Google.RedirectURL, cfg.OAuth2Google.Scopes)
	}
	hub := sse.NewHub()

	authSvc := authService.NewAuthService(userRepo, refreshTokenRepo, jwtSvc, googleSvc)
	userSvc := userService.NewUserService(userRepo)
	storeSvc := storeService.NewStoreService(storeRepo)
	shiftSvc := shiftService.NewShiftService(shiftRepo)
	advanceSvc := advanceService.NewAdvanceService(advanceRepo)
	scheduleSvc := scheduleService.NewScheduleService(scheduleRepo)
	payrollSvc := payrollService.NewPayrollService(shiftRepo, advanceRepo, scheduleRepo, storeRepo)
	safeSvc := safeService.NewSafeService(safeRepo, storeRepo)
	salesSvc := salesService.NewSalesService(salesRepo)
	taskSvc := taskService.NewTaskService(taskRepo, hub)

	handlers := appHTTP.Handlers{
		Auth:     appHTTP.NewAuthHandler(authSvc, jwtSvc, cfg.App.FrontendURL),
		User:     appHTTP.NewUserHandler(userSvc),
		Store:    appHTTP.NewStoreHandler(storeSvc),
		Shift:    appHTTP.NewShiftHandler(shiftSvc),
		Advance:  appHTTP.NewAdvanceHandler(advanceSvc),
		Schedule: appHTTP.NewScheduleHandler(scheduleSvc),
		Payroll:  appHTTP.NewPayrollHandler(payrollSvc),
		Safe:     appHTTP.NewSafeHandler(safeSvc),
		Sales:    appHTTP.NewSalesHandler(salesSvc),
		Task:     appHTTP.NewTaskHandler(taskSvc, jwtSvc, hub),
	}

	scheduler := cron.NewScheduler()
	cron.NewShiftJobs(shiftRepo, refreshTokenRepo, hub).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(cfg, jwtSvc, handlers)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Println("Listening on", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
