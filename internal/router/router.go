package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"employee-registry/internal/config"
	"employee-registry/internal/handler"
	"employee-registry/internal/middleware"
	"employee-registry/internal/model"
)

func New(
	cfg *config.Config,
	authMiddleware *middleware.AuthMiddleware,
	healthHandler *handler.HealthHandler,
	authHandler *handler.AuthHandler,
	employeeHandler *handler.EmployeeHandler,
	reportHandler *handler.ReportHandler,
) http.Handler {
	r := chi.NewRouter()
	rateLimitMiddleware := middleware.NewRateLimitMiddleware(cfg.RateLimitRPM, cfg.AuthRateLimitRPM)

	r.Use(middleware.Recovery)
	r.Use(middleware.Logging)
	r.Use(middleware.CORS(cfg.CORSOrigins))
	r.Use(rateLimitMiddleware.Handler)

	r.Get("/health", healthHandler.Health)
	r.Post("/login", authHandler.Login)
	r.Post("/users", authHandler.Register)

	r.With(authMiddleware.RequireAuth).Get("/employees", employeeHandler.List)
	r.With(authMiddleware.RequireAuth, authMiddleware.RequireRole(model.RoleView)).Get("/employees/pdf", reportHandler.ExportAll)
	r.With(authMiddleware.RequireAuth).Get("/employees/{id}", employeeHandler.Get)
	r.With(authMiddleware.RequireAuth, authMiddleware.RequireRole(model.RoleView)).Get("/employees/{id}/pdf", reportHandler.ExportOne)
	r.With(authMiddleware.RequireAuth, authMiddleware.RequireRole(model.RoleEdit)).Post("/employees", employeeHandler.Create)
	r.With(authMiddleware.RequireAuth, authMiddleware.RequireRole(model.RoleEdit)).Put("/employees/{id}", employeeHandler.Update)
	r.With(authMiddleware.RequireAuth, authMiddleware.RequireRole(model.RoleEdit)).Delete("/employees/{id}", employeeHandler.Delete)

	return r
}
