package routes

import (
	"net/http"

	"github.com/footprint-app/footprint/internal/app"
	"github.com/footprint-app/footprint/internal/handler"
	"github.com/footprint-app/footprint/internal/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func SetupRoutes(app *app.App) http.Handler {
	// Handlers
	health := handler.NewHealthHandler(app.DB)
	auth := handler.NewAuthHandler(app.AuthService, app.UserService)
	activity := handler.NewActivityHandler(app.ActivityService)
	emission := handler.NewEmissionHandler(app.EmissionService, app.EmissionFactorService)
	tip := handler.NewTipHandler(app.TipService)
	goal := handler.NewGoalHandler(app.GoalService, app.AchievementService)
	report := handler.NewReportHandler(app.ReportService)

	mux := http.NewServeMux()

	// ============================================================================
	// PUBLIC ROUTES
	// ============================================================================

	mux.HandleFunc("GET /healthz", health.Healthz)
	mux.Handle("GET /metrics", promhttp.Handler())

	// Auth (rate limited)
	rateLimiter := middleware.RateLimit(app.AuthLimiter)
	mux.HandleFunc("POST /api/auth/register", rateLimiter(auth.Register))
	mux.HandleFunc("POST /api/auth/login", rateLimiter(auth.Login))

	// ============================================================================
	// PROTECTED ROUTES
	// ============================================================================

	// Account
	mux.HandleFunc("GET /api/me", middleware.RequireAuth(auth.Me))
	mux.HandleFunc("DELETE /api/me", middleware.RequireAuth(auth.DeleteAccount))

	// Activity log
	mux.HandleFunc("POST /api/activities", middleware.RequireAuth(activity.Create))
	mux.HandleFunc("GET /api/activities", middleware.RequireAuth(activity.List))
	mux.HandleFunc("GET /api/activities/{id}", middleware.RequireAuth(activity.Get))
	mux.HandleFunc("PATCH /api/activities/{id}", middleware.RequireAuth(activity.Update))
	mux.HandleFunc("DELETE /api/activities/{id}", middleware.RequireAuth(activity.Delete))

	// Emissions
	mux.HandleFunc("GET /api/emissions", middleware.RequireAuth(emission.Emissions))
	mux.HandleFunc("POST /api/emission-factors", middleware.RequireAuth(emission.CreateFactor))
	mux.HandleFunc("GET /api/emission-factors", middleware.RequireAuth(emission.ListFactors))
	mux.HandleFunc("DELETE /api/emission-factors/{id}", middleware.RequireAuth(emission.DeleteFactor))

	// Tips
	mux.HandleFunc("POST /api/tips/generate", middleware.RequireAuth(tip.Generate))
	mux.HandleFunc("GET /api/tips", middleware.RequireAuth(tip.List))
	mux.HandleFunc("DELETE /api/tips/{id}", middleware.RequireAuth(tip.Delete))

	// Goals
	mux.HandleFunc("POST /api/goals", middleware.RequireAuth(goal.Create))
	mux.HandleFunc("GET /api/goals", middleware.RequireAuth(goal.List))
	mux.HandleFunc("POST /api/goals/check", middleware.RequireAuth(goal.Check))
	mux.HandleFunc("GET /api/goals/{id}", middleware.RequireAuth(goal.Get))
	mux.HandleFunc("PATCH /api/goals/{id}", middleware.RequireAuth(goal.Update))
	mux.HandleFunc("DELETE /api/goals/{id}", middleware.RequireAuth(goal.Delete))
	mux.HandleFunc("GET /api/achievements", middleware.RequireAuth(goal.Achievements))

	// Reports
	mux.HandleFunc("POST /api/reports", middleware.RequireAuth(report.Generate))
	mux.HandleFunc("GET /api/reports", middleware.RequireAuth(report.List))
	mux.HandleFunc("GET /api/reports/{id}", middleware.RequireAuth(report.Get))
	mux.HandleFunc("GET /api/reports/{id}/html", middleware.RequireAuth(report.HTML))

	// Apply global middleware
	return middleware.Chain(mux,
		middleware.AuthMiddleware(app.AuthService, app.UserService),
		middleware.RequestLogging,
	)
}
