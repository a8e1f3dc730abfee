package routes

import (
	"net/http"

	"github.com/SyedqaderEng/financeOS-sub001/internal/app"
	"github.com/SyedqaderEng/financeOS-sub001/internal/handler"
	"github.com/SyedqaderEng/financeOS-sub001/internal/middleware"
)

func SetupRoutes(app *app.App) http.Handler {
	// Handlers
	auth := handler.NewAuthHandler(app.AuthService)
	goal := handler.NewGoalHandler(app.GoalService, app.ContributionService)
	transaction := handler.NewTransactionHandler(app.TransactionService)
	budget := handler.NewBudgetHandler(app.BudgetService, app.TransactionService)
	dashboard := handler.NewDashboardHandler(app.AnalyticsService, app.TransactionService)
	health := handler.NewHealthHandler(app.DB)

	mux := http.NewServeMux()

	// ============================================================================
	// PUBLIC ROUTES
	// ============================================================================

	mux.HandleFunc("GET /healthz", health.Healthz)

	// Auth - Authentication flow (rate limited)
	rateLimiter := middleware.RateLimit(middleware.NewRateLimiter(app.Cfg.RateLimitAuth, app.Cfg.RateLimitAuthWindow))

	mux.HandleFunc("POST /api/auth/register", rateLimiter(middleware.RequireGuest(auth.Register)))
	mux.HandleFunc("POST /api/auth/login", rateLimiter(middleware.RequireGuest(auth.Login)))
	mux.HandleFunc("POST /api/auth/logout", auth.Logout)

	// ============================================================================
	// PROTECTED ROUTES (/api/*)
	// ============================================================================

	mux.HandleFunc("GET /api/me", middleware.RequireAuth(auth.Me))

	// Goals
	mux.HandleFunc("GET /api/goals", middleware.RequireAuth(goal.List))
	mux.HandleFunc("POST /api/goals", middleware.RequireAuth(goal.Create))
	mux.HandleFunc("GET /api/goals/export", middleware.RequireAuth(goal.Export))
	mux.HandleFunc("GET /api/goals/{id}", middleware.RequireAuth(goal.Get))
	mux.HandleFunc("PATCH /api/goals/{id}", middleware.RequireAuth(goal.Update))

	// Contribution ledger
	mux.HandleFunc("POST /api/goals/{id}/contributions", middleware.RequireAuth(goal.Contribute))
	mux.HandleFunc("GET /api/goals/{id}/contributions", middleware.RequireAuth(goal.History))

	// Transactions & budgets
	mux.HandleFunc("GET /api/transactions", middleware.RequireAuth(transaction.List))
	mux.HandleFunc("POST /api/transactions", middleware.RequireAuth(transaction.Create))
	mux.HandleFunc("GET /api/budgets", middleware.RequireAuth(budget.Report))
	mux.HandleFunc("PUT /api/budgets", middleware.RequireAuth(budget.Set))

	mux.HandleFunc("GET /api/dashboard", middleware.RequireAuth(dashboard.Dashboard))

	// Global middleware - executed in order (top to bottom)
	handler := middleware.Chain(
		mux,
		middleware.Config(app.Cfg), // Config must be first (CSRF reads it for cookie flags)
		middleware.CORS(app.Cfg),   // Preflight requests stop here, before CSRF
		middleware.RequestLogging,
		middleware.CSRFProtection, // CSRF protection for all state-changing requests
		middleware.AuthMiddleware(app.AuthService, app.UserService),
	)

	return handler
}
