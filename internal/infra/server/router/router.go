// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/finanzas-genius/backend/internal/integration/entrypoint/controller"
	"github.com/finanzas-genius/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                 *gin.Engine
	healthController       *controller.HealthController
	accountController      *controller.AccountController
	transactionController  *controller.TransactionController
	subscriptionController *controller.SubscriptionController
	goalController         *controller.GoalController
	debtController         *controller.DebtController
	settingsController     *controller.SettingsController
	dashboardController    *controller.DashboardController
	assistantController    *controller.AssistantController
	assistantRateLimiter   *middleware.RateLimiter
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	accountController *controller.AccountController,
	transactionController *controller.TransactionController,
	subscriptionController *controller.SubscriptionController,
	goalController *controller.GoalController,
	debtController *controller.DebtController,
	settingsController *controller.SettingsController,
	dashboardController *controller.DashboardController,
	assistantController *controller.AssistantController,
	assistantRateLimiter *middleware.RateLimiter,
) *Router {
	return &Router{
		healthController:       healthController,
		accountController:      accountController,
		transactionController:  transactionController,
		subscriptionController: subscriptionController,
		goalController:         goalController,
		debtController:         debtController,
		settingsController:     settingsController,
		dashboardController:    dashboardController,
		assistantController:    assistantController,
		assistantRateLimiter:   assistantRateLimiter,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()

	// Setup routes
	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	// API v1 group
	v1 := r.engine.Group("/api/v1")
	{
		accounts := v1.Group("/accounts")
		{
			accounts.GET("", r.accountController.List)
			accounts.POST("", r.accountController.Create)
			accounts.DELETE("/:id", r.accountController.Delete)
		}

		transactions := v1.Group("/transactions")
		{
			transactions.GET("", r.transactionController.List)
			transactions.POST("", r.transactionController.Create)
			transactions.DELETE("/:id", r.transactionController.Delete)
		}

		subscriptions := v1.Group("/subscriptions")
		{
			subscriptions.GET("", r.subscriptionController.List)
			subscriptions.POST("", r.subscriptionController.Create)
			subscriptions.DELETE("/:id", r.subscriptionController.Delete)
		}

		goals := v1.Group("/goals")
		{
			goals.GET("", r.goalController.List)
			goals.POST("", r.goalController.Create)
			goals.PUT("/:id", r.goalController.Update)
			goals.DELETE("/:id", r.goalController.Delete)
			goals.POST("/:id/contributions", r.goalController.Contribute)
		}

		debts := v1.Group("/debts")
		{
			debts.GET("", r.debtController.List)
			debts.POST("", r.debtController.Create)
			debts.PUT("/:id", r.debtController.Update)
			debts.DELETE("/:id", r.debtController.Delete)
			debts.POST("/:id/payments", r.debtController.Pay)
		}

		v1.GET("/settings", r.settingsController.Get)
		v1.PUT("/settings", r.settingsController.Update)
		v1.DELETE("/data", r.settingsController.ClearData)
		v1.GET("/export", r.settingsController.Export)

		v1.GET("/dashboard/summary", r.dashboardController.GetSummary)

		// Assistant routes are rate limited; every call costs a Gemini request.
		assistant := v1.Group("/assistant")
		if r.assistantRateLimiter != nil {
			assistant.Use(r.assistantRateLimiter.Middleware())
		}
		{
			assistant.POST("/commands", r.assistantController.ProcessCommand)
			assistant.POST("/analysis", r.assistantController.AnalyzeFinances)
			assistant.POST("/category-suggestions", r.assistantController.SuggestCategory)
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
