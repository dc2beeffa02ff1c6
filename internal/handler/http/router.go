package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/naxrita/hrms-backend-go/internal/config"
	"github.com/naxrita/hrms-backend-go/internal/handler/http/middleware"
	"github.com/naxrita/hrms-backend-go/internal/pkg/jwt"
)

type Handlers struct {
	Auth         AuthHandler
	User         UserHandler
	Leave        LeaveHandler
	Timesheet    TimesheetHandler
	ChargeCode   ChargeCodeHandler
	Notification NotificationHandler
	Holiday      HolidayHandler
}

func NewRouter(cfg *config.Config, jwtService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "hrms-naxrita"),
		slog.String("env", cfg.App.Env),
	)

	adminOnly := func(r chi.Router) chi.Router {
		return r.With(
			jwtauth.Verifier(jwtService.JWTAuth()),
			middleware.AuthRequired(jwtService.JWTAuth()),
			middleware.AdminOnly,
		)
	}

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.App.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/health"))

	r.Route("/api", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", h.Auth.Login)
			r.Post("/refresh", h.Auth.Refresh)
			r.Post("/logout", h.Auth.Logout)
		})

		r.Route("/users", func(r chi.Router) {
			r.Get("/", h.User.List)
			r.Get("/{id}", h.User.GetByID)
		})

		r.Route("/leaves", func(r chi.Router) {
			r.Get("/balance/{employeeId}", h.Leave.GetBalance)
			r.Post("/apply", h.Leave.Apply)
			r.Get("/pending/{managerEmail}", h.Leave.Pending)
			r.Get("/history/{employeeId}", h.Leave.History)
			r.Get("/all", h.Leave.All)
			r.Put("/update_status/{id}", h.Leave.UpdateStatus)

			adminOnly(r).Get("/pending_grouped", h.Leave.PendingGrouped)
			adminOnly(r).Post("/accrue_monthly", h.Leave.AccrueMonthly)
		})

		r.Route("/timesheets", func(r chi.Router) {
			r.Post("/create", h.Timesheet.Create)
			r.Get("/employee/{employeeId}", h.Timesheet.ListByEmployee)
			r.Get("/pending/{managerEmail}", h.Timesheet.Pending)
			r.Put("/approve/{id}", h.Timesheet.Approve)
			r.Put("/reject/{id}", h.Timesheet.Reject)
			r.Put("/reopen/{id}", h.Timesheet.Reopen)
			r.Post("/populate_holidays", h.Timesheet.PopulateHolidays)

			adminOnly(r).Get("/all", h.Timesheet.All)
		})

		r.Route("/charge_codes", func(r chi.Router) {
			r.Get("/all", h.ChargeCode.All)
			r.Get("/employee/{employeeId}", h.ChargeCode.ListByEmployee)

			admin := adminOnly(r)
			admin.Post("/create", h.ChargeCode.Create)
			admin.Put("/update/{id}", h.ChargeCode.Update)
			admin.Delete("/delete/{id}", h.ChargeCode.Delete)
			admin.Post("/assign", h.ChargeCode.Assign)
			admin.Get("/assignments/all", h.ChargeCode.AllAssignments)
			admin.Delete("/remove/{id}", h.ChargeCode.RemoveAssignment)
		})

		r.Route("/notifications", func(r chi.Router) {
			r.Get("/{userId}", h.Notification.ListByUser)
			r.Put("/mark_read/{id}", h.Notification.MarkRead)
			r.Put("/mark_all_read/{userId}", h.Notification.MarkAllRead)
			r.Delete("/delete/{id}", h.Notification.Delete)
		})

		r.Route("/holidays", func(r chi.Router) {
			r.Get("/", h.Holiday.List)

			adminOnly(r).Post("/create", h.Holiday.Create)
			adminOnly(r).Delete("/delete/{id}", h.Holiday.Delete)
		})
	})

	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("hrms backend up\n"))
	})

	return r
}
