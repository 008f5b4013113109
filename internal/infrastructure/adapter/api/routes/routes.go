package routes

import (
	"github.com/gin-contrib/pprof"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	coreport "github.com/yozi-budget/yozi-backend/internal/domain/port/core"
	"github.com/yozi-budget/yozi-backend/internal/infrastructure/adapter/api/handler"
	"github.com/yozi-budget/yozi-backend/internal/infrastructure/adapter/api/middleware"
)

// Handlers groups every HTTP handler the router serves
type Handlers struct {
	Budget      *handler.BudgetHandler
	Transaction *handler.TransactionHandler
	Category    *handler.CategoryHandler
	Auth        *handler.AuthHandler
	Health      *handler.HealthHandler
}

// Options switches the optional endpoints
type Options struct {
	CORSOrigins []string
	HTTPMetrics *middleware.HTTPMetrics
	Gatherer    prometheus.Gatherer // serves /metrics when set
	Profiling   bool
}

// SetupRoutes configures all the routes for the API
func SetupRoutes(router *gin.Engine, h Handlers, requireAuth gin.HandlerFunc, opts Options) {
	router.GET("/healthz", h.Health.Health)

	// OAuth redirect flow
	authRoutes := router.Group("/auth")
	{
		authRoutes.GET("/:socialType", h.Auth.Login)
		authRoutes.GET("/:socialType/callback", h.Auth.Callback)
	}

	api := router.Group("/api", requireAuth)

	budgets := api.Group("/budgets")
	{
		budgets.POST("", h.Budget.SetBudget)
		budgets.GET("", h.Budget.GetBudget)
		budgets.GET("/total", h.Budget.TotalBudget())
		budgets.GET("/spent", h.Budget.TotalExpense())
		budgets.GET("/income", h.Budget.TotalIncome())
		budgets.GET("/remaining", h.Budget.RemainingBudget())
		budgets.GET("/exceeded", h.Budget.ExceededBudget())
		budgets.GET("/summary", h.Budget.BudgetSummary)
		budgets.GET("/main/summary", h.Budget.MainSummary)
		budgets.GET("/main/daily-amounts", h.Budget.DailyAmounts)
		budgets.GET("/analysis/monthly", h.Budget.MonthlyAnalysis)
	}

	transactions := api.Group("/transactions")
	{
		transactions.GET("", h.Transaction.ListTransactions)
		transactions.GET("/category/:categoryId", h.Transaction.ListByCategory)
		transactions.POST("", h.Transaction.CreateTransaction)
		transactions.PUT("/:id", h.Transaction.UpdateTransaction)
		transactions.DELETE("/:id", h.Transaction.DeleteTransaction)
	}

	api.GET("/categories", h.Category.ListCategories)
	api.GET("/users/me", h.Auth.Me)

	if opts.Gatherer != nil {
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(opts.Gatherer, promhttp.HandlerOpts{})))
	}
	if opts.Profiling {
		pprof.Register(router)
	}
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger, timeProvider coreport.TimeProvider, opts Options) {
	router.HandleMethodNotAllowed = true

	// Apply middlewares in the correct order
	router.Use(middleware.ErrorHandler(logger))
	router.Use(requestid.New())
	router.Use(middleware.Logger(logger, timeProvider))
	if opts.HTTPMetrics != nil {
		router.Use(middleware.Metrics(opts.HTTPMetrics, timeProvider))
	}
	router.Use(middleware.CORS(opts.CORSOrigins))
}
