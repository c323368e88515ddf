package http

import (
	"log/slog"

	"github.com/dayflow-hris/hris-backend-go/internal/domain/auth"
	"github.com/dayflow-hris/hris-backend-go/internal/handler/http/middleware"
	"github.com/dayflow-hris/hris-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

type Handlers struct {
	Auth       AuthHandler
	Employee   EmployeeHandler
	Attendance AttendanceHandler
	Leave      LeaveHandler
	Salary     SalaryHandler
	Company    CompanyHandler
}

func NewRouter(logger *slog.Logger, allowedOrigins []string, JWTService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "OPTIONS"},
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
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/signup", h.Auth.Signup)
			r.Post("/login", h.Auth.Login)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService))

			r.Get("/auth/me", h.Auth.Me)
			r.Put("/auth/change-password", h.Auth.ChangePassword)

			r.Get("/company", h.Company.GetMine)

			r.Route("/employees", func(r chi.Router) {
				r.With(middleware.RequireOperation(auth.OperationEmployeeList)).Get("/", h.Employee.List)
				r.With(middleware.RequireOperation(auth.OperationEmployeeCreate)).Post("/", h.Employee.Create)

				// Self-scoped; the service checks ownership
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", h.Employee.Get)
					r.Put("/", h.Employee.Update)
					r.Get("/status", h.Employee.Status)
				})
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Post("/check-in", h.Attendance.CheckIn)
				r.Post("/check-out", h.Attendance.CheckOut)
				r.Get("/", h.Attendance.ListMine)
				r.Get("/stats", h.Attendance.Stats)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireOperation(auth.OperationAttendanceViewAll))
					r.Get("/all", h.Attendance.ListAll)
					r.Get("/today", h.Attendance.Today)
				})
			})

			r.Route("/leaves", func(r chi.Router) {
				r.Post("/", h.Leave.Apply)
				r.Get("/", h.Leave.ListMine)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireOperation(auth.OperationLeaveViewAll))
					r.Get("/pending", h.Leave.ListPending)
					r.Get("/all", h.Leave.ListAll)
				})

				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", h.Leave.Get)

					r.Group(func(r chi.Router) {
						r.Use(middleware.RequireOperation(auth.OperationLeaveDecide))
						r.Put("/approve", h.Leave.Approve)
						r.Put("/reject", h.Leave.Reject)
					})
				})
			})

			r.Route("/salary/{id}", func(r chi.Router) {
				r.Get("/", h.Salary.Get)
				r.With(middleware.RequireOperation(auth.OperationSalaryUpdate)).Put("/", h.Salary.Update)
			})
		})
	})
	return r
}
