// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/partilio/backend/internal/integration/entrypoint/controller"
	"github.com/partilio/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine               *gin.Engine
	healthController     *controller.HealthController
	authController       *controller.AuthController
	categoryController   *controller.CategoryController
	payerController      *controller.PayerController
	creditCardController *controller.CreditCardController
	expenseController    *controller.ExpenseController
	paymentController    *controller.PaymentController
	dashboardController  *controller.DashboardController
	loginThrottle        *middleware.LoginThrottleMiddleware
	authMiddleware       *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	categoryController *controller.CategoryController,
	payerController *controller.PayerController,
	creditCardController *controller.CreditCardController,
	expenseController *controller.ExpenseController,
	paymentController *controller.PaymentController,
	dashboardController *controller.DashboardController,
	loginThrottle *middleware.LoginThrottleMiddleware,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:     healthController,
		authController:       authController,
		categoryController:   categoryController,
		payerController:      payerController,
		creditCardController: creditCardController,
		expenseController:    expenseController,
		paymentController:    paymentController,
		dashboardController:  dashboardController,
		loginThrottle:        loginThrottle,
		authMiddleware:       authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Default middleware: logger and recovery
	r.engine = gin.Default()

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
	v1 := r.engine.Group("/api/v1")
	{
		// Auth routes are public; login is throttled per client IP.
		if r.authController != nil && r.loginThrottle != nil {
			auth := v1.Group("/auth")
			{
				auth.POST("/register", r.authController.Register)
				auth.POST("/login", r.loginThrottle.Throttle(), r.authController.Login)
				auth.POST("/refresh", r.authController.Refresh)
				auth.POST("/logout", r.authController.Logout)
			}
		}

		if r.categoryController != nil && r.authMiddleware != nil {
			categories := v1.Group("/categories")
			categories.Use(r.authMiddleware.Authenticate())
			{
				categories.GET("", r.categoryController.List)
				categories.POST("", r.categoryController.Create)
				categories.PATCH("/:id", r.categoryController.Update)
				categories.DELETE("/:id", r.categoryController.Delete)
			}
		}

		if r.payerController != nil && r.authMiddleware != nil {
			payers := v1.Group("/payers")
			payers.Use(r.authMiddleware.Authenticate())
			{
				payers.GET("", r.payerController.List)
				payers.POST("", r.payerController.Create)
				payers.PATCH("/:id", r.payerController.Update)
				payers.DELETE("/:id", r.payerController.Delete)
			}
		}

		if r.creditCardController != nil && r.authMiddleware != nil {
			cards := v1.Group("/credit-cards")
			cards.Use(r.authMiddleware.Authenticate())
			{
				cards.GET("", r.creditCardController.List)
				cards.POST("", r.creditCardController.Create)
				cards.PATCH("/:id", r.creditCardController.Update)
				cards.DELETE("/:id", r.creditCardController.Delete)
			}
		}

		if r.expenseController != nil && r.authMiddleware != nil {
			expenses := v1.Group("/expenses")
			expenses.Use(r.authMiddleware.Authenticate())
			{
				expenses.GET("", r.expenseController.List)
				expenses.POST("", r.expenseController.Create)
				expenses.GET("/:id", r.expenseController.Get)
				expenses.PUT("/:id", r.expenseController.Update)
				expenses.DELETE("/:id", r.expenseController.Delete)
			}
		}

		if r.paymentController != nil && r.authMiddleware != nil {
			payments := v1.Group("/payments")
			payments.Use(r.authMiddleware.Authenticate())
			{
				payments.GET("", r.paymentController.List)
				payments.POST("/:id/pay", r.paymentController.Pay)
				payments.POST("/:id/revert", r.paymentController.Revert)
			}
		}

		if r.dashboardController != nil && r.authMiddleware != nil {
			dashboard := v1.Group("/dashboard")
			dashboard.Use(r.authMiddleware.Authenticate())
			{
				dashboard.GET("/summary", r.dashboardController.Summary)
				dashboard.GET("/categories", r.dashboardController.CategoryBreakdown)
				dashboard.GET("/payers", r.dashboardController.PayerBalances)
			}
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
