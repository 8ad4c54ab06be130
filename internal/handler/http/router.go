package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/nominamx/nomina-backend-go/internal/handler/http/middleware"
	"github.com/nominamx/nomina-backend-go/internal/pkg/jwt"
)

func NewRouter(JWTService jwt.Service, payrollHandler PayrollHandler, employeeHandler EmployeeHandler) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "nomina-backend"),
		slog.String("version", "v1.0.0"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
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
		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService.JWTAuth()))

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", employeeHandler.List)
				r.Get("/{id}", employeeHandler.GetByID)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", employeeHandler.Create)
				})
			})

			r.Route("/payroll", func(r chi.Router) {
				r.Route("/periods", func(r chi.Router) {
					r.Get("/", payrollHandler.ListPeriods)
					r.Post("/", payrollHandler.CreatePeriod)

					r.Route("/{id}", func(r chi.Router) {
						r.Get("/", payrollHandler.GetPeriod)
						r.Get("/calculations", payrollHandler.ListCalculations)
						r.Get("/summary", payrollHandler.GetPeriodSummary)

						r.Post("/calculate", payrollHandler.CalculatePeriod)
						r.Post("/employees/{employeeID}/recalculate", payrollHandler.RecalculateEmployee)
						r.Put("/employees/{employeeID}/incidences", payrollHandler.UpsertIncidences)

						// Lifecycle transitions are admin actions
						r.Group(func(r chi.Router) {
							r.Use(middleware.AdminOnly)
							r.Post("/approve", payrollHandler.ApprovePeriod)
							r.Post("/pay", payrollHandler.MarkPeriodPaid)
							r.Post("/close", payrollHandler.ClosePeriod)
						})
					})
				})

				r.Get("/calculations/{id}", payrollHandler.GetCalculation)
			})
		})
	})
	return r
}
