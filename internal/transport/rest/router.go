package rest

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	chiMiddleware "github.com/go-chi/chi/middleware"
	"github.com/sekolahapp/attendance-management/internal/attendance"
	"github.com/sekolahapp/attendance-management/internal/permission"
	"github.com/sekolahapp/attendance-management/internal/transport/middleware"
	"github.com/sekolahapp/attendance-management/internal/transport/swagger"
)

func RegisterAllRoutes(router *chi.Mux, db *sql.DB, permissionHandler *permission.Handler, attendanceHandler *attendance.Handler, logger *slog.Logger) {
	healthHandler := NewHealthHandler(db)

	// Apply global middleware
	router.Use(middleware.CORS)
	router.Use(chiMiddleware.RequestID)
	router.Use(middleware.RequestID)
	router.Use(middleware.LoggingMiddleware(logger))
	router.Use(middleware.RecoveryMiddleware(logger))

	// Serve OpenAPI spec at root (outside API prefix)
	router.Get("/openapi.yml", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "./api/openapi.yml")
	})
	// Swagger UI route at root
	router.Handle("/swagger/*", swagger.Handler())

	router.Route("/api/v1", func(r chi.Router) {
		// Health check route
		r.Get("/health", healthHandler.healthCheckHandler)
		r.Get("/ping", healthHandler.pingHandler)

		if permissionHandler != nil {
			r.Get("/permissions", permissionHandler.GetUserPermissions)
		}

		// Registered for every method: the handler owns the 405 so the
		// response body keeps the envelope the frontend expects.
		if attendanceHandler != nil {
			r.HandleFunc("/meetings/attendance", attendanceHandler.SubmitAttendance)
		}
	})
}
