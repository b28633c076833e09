package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/shiftline/shiftline-backend-go/internal/config"
	"github.com/shiftline/shiftline-backend-go/internal/handler/http/middleware"
	"github.com/shiftline/shiftline-backend-go/internal/pkg/jwt"
)

type Handlers struct {
	Auth     AuthHandler
	User     UserHandler
	Store    StoreHandler
	Shift    ShiftHandler
	Advance  AdvanceHandler
	Schedule ScheduleHandler
	Payroll  PayrollHandler
	Safe     SafeHandler
	Sales    SalesHandler
	Task     TaskHandler
}

func NewRouter(cfg *config.Config, jwtService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()

	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "shiftline"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.App.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
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
			r.Post("/login", h.Auth.Login)
			r.Post("/refresh", h.Auth.RefreshToken)
			r.Post("/logout", h.Auth.Logout)
			r.Route("/login/oauth", func(r chi.Router) {
				r.Get("/google", h.Auth.LoginWithGoogle)
			})
			r.Route("/oauth/callback", func(r chi.Router) {
				r.Get("/google", h.Auth.OAuthCallbackGoogle)
			})
		})

		// The EventSource client cannot send headers; the endpoint checks
		// its own short-lived token instead.
		r.Get("/events", h.Task.Events)

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/me", func(r chi.Router) {
				r.Get("/", h.User.Me)
			})

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", h.User.ListByStore)
				r.Get("/{id}", h.User.GetByID)

				r.Group(func(r chi.Router) {
					r.Use(middleware.ManagerOnly)
					r.Post("/", h.User.Create)
					r.Patch("/{id}/active", h.User.SetActive)
				})
			})

			r.Route("/stores", func(r chi.Router) {
				r.Get("/", h.Store.List)
				r.Get("/{id}", h.Store.GetByID)

				r.Group(func(r chi.Router) {
					r.Use(middleware.ManagerOnly)
					r.Post("/", h.Store.Create)
					r.Put("/{id}", h.Store.Update)
				})
			})

			r.Route("/shifts", func(r chi.Router) {
				r.Post("/clock-in", h.Shift.ClockIn)
				r.Post("/clock-out", h.Shift.ClockOut)
				r.Post("/manual-close", h.Shift.ManualClose)
				r.Get("/current", h.Shift.Current)
				r.Get("/", h.Shift.List)

				r.Group(func(r chi.Router) {
					r.Use(middleware.ManagerOnly)
					r.Post("/{id}/review", h.Shift.ReviewManualClose)
					r.Put("/{id}", h.Shift.Edit)
					r.Patch("/{id}/excluded", h.Shift.SetExcluded)
				})
			})

			r.Route("/advances", func(r chi.Router) {
				r.Get("/", h.Advance.List)

				r.Group(func(r chi.Router) {
					r.Use(middleware.ManagerOnly)
					r.Post("/", h.Advance.Create)
					r.Post("/{id}/resolve", h.Advance.Resolve)
				})
			})

			r.Route("/schedule", func(r chi.Router) {
				r.Get("/", h.Schedule.List)

				r.Group(func(r chi.Router) {
					r.Use(middleware.ManagerOnly)
					r.Post("/", h.Schedule.Create)
					r.Delete("/{id}", h.Schedule.Delete)
				})
			})

			r.Route("/payroll", func(r chi.Router) {
				r.Use(middleware.ManagerOnly)
				r.Get("/report", h.Payroll.Report)
				r.Get("/export/csv", h.Payroll.ExportCSV)
				r.Get("/export/xlsx", h.Payroll.ExportXLSX)
				r.Get("/export/text", h.Payroll.ExportText)
			})

			r.Route("/safe", func(r chi.Router) {
				r.Post("/counts", h.Safe.RecordCount)
				r.Get("/ledger", h.Safe.Ledger)
			})

			r.Route("/sales", func(r chi.Router) {
				r.Get("/performance", h.Sales.Performance)

				r.Group(func(r chi.Router) {
					r.Use(middleware.ManagerOnly)
					r.Post("/records", h.Sales.UpsertRecord)
				})
			})

			r.Route("/tasks", func(r chi.Router) {
				r.Get("/", h.Task.ListByStore)
				r.Get("/mine", h.Task.Mine)
				r.Post("/{id}/complete", h.Task.Complete)
				r.Get("/stream-token", h.Task.StreamToken)

				r.Group(func(r chi.Router) {
					r.Use(middleware.ManagerOnly)
					r.Post("/", h.Task.Create)
				})
			})
		})
	})

	return r
}
