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

	"github.com/guardhq/timesheet-backend-go/internal/handler/http/middleware"
	"github.com/guardhq/timesheet-backend-go/internal/pkg/jwt"
)

func NewRouter(
	JWTService jwt.Service,
	authHandler AuthHandler,
	employeeHandler EmployeeHandler,
	targetHandler TargetHandler,
	timesheetHandler TimesheetHandler,
	payrollHandler PayrollHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "guardhq-timesheet"),
		slog.String("version", "v1.0.0"),
		slog.String("env", "development"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
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
			r.Post("/login", authHandler.Login)
			r.Post("/refresh", authHandler.RefreshToken)
			r.Post("/logout", authHandler.Logout)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService.JWTAuth()))

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", employeeHandler.List)
				r.Get("/search", employeeHandler.Search)
				r.Get("/{id}", employeeHandler.Get)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", employeeHandler.Create)
					r.Put("/{id}", employeeHandler.Update)
					r.Delete("/{id}", employeeHandler.Delete)
				})
			})

			r.Route("/targets", func(r chi.Router) {
				r.Get("/", targetHandler.List)
				r.Get("/{id}", targetHandler.Get)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", targetHandler.Create)
					r.Put("/{id}", targetHandler.Update)
					r.Delete("/{id}", targetHandler.Delete)
					r.Post("/{id}/roster", targetHandler.AddToRoster)
					r.Delete("/{id}/roster/{employeeId}", targetHandler.RemoveFromRoster)
				})
			})

			r.Route("/timesheets/{year}/{month}", func(r chi.Router) {
				r.Get("/", timesheetHandler.GetGrid)
				r.Put("/", timesheetHandler.CommitGrid)
				r.Post("/cell", timesheetHandler.SetCell)
				r.Post("/selection", timesheetHandler.Select)
				r.Get("/copy", timesheetHandler.Copy)
				r.Post("/paste", timesheetHandler.Paste)
				r.Post("/fill", timesheetHandler.Fill)
				r.Post("/clear", timesheetHandler.Clear)
				r.Post("/autocomplete", timesheetHandler.Autocomplete)
				r.Post("/rows/from-target/{targetId}", timesheetHandler.AddRowsFromTarget)
				r.Get("/export", timesheetHandler.Export)
				r.Get("/template", timesheetHandler.Template)
				r.Post("/import", timesheetHandler.Import)
				r.Get("/stats", timesheetHandler.Stats)
			})

			r.Route("/payroll/{year}/{month}", func(r chi.Router) {
				r.Get("/", payrollHandler.Report)
				r.Get("/export", payrollHandler.Export)
			})
		})
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok\n"))
	})

	return r
}
