package http

import (
	"log/slog"
	"os"

	"github.com/EBUBEIWOBA/Winnies-Bakery-sub000/internal/handler/http/middleware"
	"github.com/EBUBEIWOBA/Winnies-Bakery-sub000/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

func NewRouter(
	JWTService jwt.Service,
	frontendURL string,
	shiftHandler ShiftHandler,
	attendanceHandler AttendanceHandler,
	leaveHandler LeaveHandler,
	employeeHandler EmployeeHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "winnies-bakery"),
		slog.String("version", "v1.0.0"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{frontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
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

	r.Route("/api/v1", func(r chi.Router) {
		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService.JWTAuth()))

			r.Route("/shifts", func(r chi.Router) {
				r.Get("/", shiftHandler.List)
				r.Get("/{id}", shiftHandler.Get)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", shiftHandler.Create)
					r.Patch("/{id}/status", shiftHandler.UpdateStatus)
					r.Delete("/{id}", shiftHandler.Delete)
				})
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Post("/clock-in", attendanceHandler.ClockIn)
				r.Post("/clock-out", attendanceHandler.ClockOut)
				r.Get("/", attendanceHandler.List)
				r.Get("/{id}", attendanceHandler.Get)
			})

			r.Route("/leave", func(r chi.Router) {
				r.Post("/", leaveHandler.Create)
				r.Get("/", leaveHandler.List)
				r.Get("/{id}", leaveHandler.Get)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Patch("/{id}/approve", leaveHandler.Approve)
					r.Patch("/{id}/reject", leaveHandler.Reject)
				})
			})

			r.Route("/employees", func(r chi.Router) {
				r.Use(middleware.AdminOnly)
				r.Get("/", employeeHandler.List)
				r.Get("/{id}", employeeHandler.Get)
			})
		})
	})
	return r
}
