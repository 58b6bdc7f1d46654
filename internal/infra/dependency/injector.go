// Package dependency provides dependency injection for the application.
package dependency

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/partilio/backend/config"
	"github.com/partilio/backend/internal/application/usecase/auth"
	"github.com/partilio/backend/internal/application/usecase/category"
	creditcard "github.com/partilio/backend/internal/application/usecase/credit_card"
	"github.com/partilio/backend/internal/application/usecase/dashboard"
	"github.com/partilio/backend/internal/application/usecase/expense"
	"github.com/partilio/backend/internal/application/usecase/payer"
	"github.com/partilio/backend/internal/application/usecase/payment"
	"github.com/partilio/backend/internal/infra/server/router"
	"github.com/partilio/backend/internal/integration/adapters"
	"github.com/partilio/backend/internal/integration/entrypoint/controller"
	"github.com/partilio/backend/internal/integration/entrypoint/middleware"
	"github.com/partilio/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	DB     *gorm.DB
	Redis  *redis.Client
	Router *router.Router
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *Injector {
	// Repositories
	userRepo := persistence.NewUserRepository(db)
	tokenRepo := persistence.NewTokenRepository(db)
	categoryRepo := persistence.NewCategoryRepository(db)
	payerRepo := persistence.NewPayerRepository(db)
	creditCardRepo := persistence.NewCreditCardRepository(db)
	expenseRepo := persistence.NewExpenseRepository(db)
	paymentRepo := persistence.NewPaymentRepository(db)
	dashboardRepo := persistence.NewDashboardRepository(db)

	// Adapters
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, tokenRepo)
	loginThrottle := adapters.NewRedisLoginThrottle(redisClient, cfg.Throttle.MaxAttempts, cfg.Throttle.Window)

	// Auth use cases
	registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService)
	loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
	refreshTokenUseCase := auth.NewRefreshTokenUseCase(tokenService)
	logoutUseCase := auth.NewLogoutUserUseCase(tokenService)

	// Category use cases
	createCategoryUseCase := category.NewCreateCategoryUseCase(categoryRepo)
	listCategoriesUseCase := category.NewListCategoriesUseCase(categoryRepo)
	updateCategoryUseCase := category.NewUpdateCategoryUseCase(categoryRepo)
	deleteCategoryUseCase := category.NewDeleteCategoryUseCase(categoryRepo)

	// Payer use cases
	createPayerUseCase := payer.NewCreatePayerUseCase(payerRepo)
	listPayersUseCase := payer.NewListPayersUseCase(payerRepo)
	updatePayerUseCase := payer.NewUpdatePayerUseCase(payerRepo)
	deletePayerUseCase := payer.NewDeletePayerUseCase(payerRepo)

	// Credit card use cases
	createCreditCardUseCase := creditcard.NewCreateCreditCardUseCase(creditCardRepo)
	listCreditCardsUseCase := creditcard.NewListCreditCardsUseCase(creditCardRepo)
	updateCreditCardUseCase := creditcard.NewUpdateCreditCardUseCase(creditCardRepo)
	deleteCreditCardUseCase := creditcard.NewDeleteCreditCardUseCase(creditCardRepo)

	// Expense use cases
	createExpenseUseCase := expense.NewCreateExpenseUseCase(expenseRepo, payerRepo, categoryRepo, creditCardRepo)
	getExpenseUseCase := expense.NewGetExpenseUseCase(expenseRepo)
	listExpensesUseCase := expense.NewListExpensesUseCase(expenseRepo)
	updateExpenseUseCase := expense.NewUpdateExpenseUseCase(expenseRepo, payerRepo, categoryRepo, creditCardRepo)
	deleteExpenseUseCase := expense.NewDeleteExpenseUseCase(expenseRepo)

	// Payment use cases
	listPaymentsUseCase := payment.NewListPaymentsUseCase(paymentRepo)
	payPaymentUseCase := payment.NewPayPaymentUseCase(paymentRepo)
	revertPaymentUseCase := payment.NewRevertPaymentUseCase(paymentRepo)

	// Dashboard use cases
	monthlySummaryUseCase := dashboard.NewGetMonthlySummaryUseCase(paymentRepo)
	categoryBreakdownUseCase := dashboard.NewGetCategoryBreakdownUseCase(dashboardRepo)
	payerBalancesUseCase := dashboard.NewGetPayerBalancesUseCase(dashboardRepo)

	// Controllers
	healthController := controller.NewHealthController(
		func(c *gin.Context) bool {
			sqlDB, err := db.DB()
			if err != nil {
				return false
			}
			return sqlDB.PingContext(c.Request.Context()) == nil
		},
		func(c *gin.Context) bool {
			return redisClient.Ping(c.Request.Context()).Err() == nil
		},
	)

	authController := controller.NewAuthController(
		registerUseCase,
		loginUseCase,
		refreshTokenUseCase,
		logoutUseCase,
		loginThrottle,
	)

	categoryController := controller.NewCategoryController(
		createCategoryUseCase,
		listCategoriesUseCase,
		updateCategoryUseCase,
		deleteCategoryUseCase,
	)

	payerController := controller.NewPayerController(
		createPayerUseCase,
		listPayersUseCase,
		updatePayerUseCase,
		deletePayerUseCase,
	)

	creditCardController := controller.NewCreditCardController(
		createCreditCardUseCase,
		listCreditCardsUseCase,
		updateCreditCardUseCase,
		deleteCreditCardUseCase,
	)

	expenseController := controller.NewExpenseController(
		createExpenseUseCase,
		getExpenseUseCase,
		listExpensesUseCase,
		updateExpenseUseCase,
		deleteExpenseUseCase,
	)

	paymentController := controller.NewPaymentController(
		listPaymentsUseCase,
		payPaymentUseCase,
		revertPaymentUseCase,
	)

	dashboardController := controller.NewDashboardController(
		monthlySummaryUseCase,
		categoryBreakdownUseCase,
		payerBalancesUseCase,
	)

	// Middleware
	loginThrottleMiddleware := middleware.NewLoginThrottleMiddleware(loginThrottle)
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	r := router.NewRouter(
		healthController,
		authController,
		categoryController,
		payerController,
		creditCardController,
		expenseController,
		paymentController,
		dashboardController,
		loginThrottleMiddleware,
		authMiddleware,
	)

	return &Injector{
		Config: cfg,
		DB:     db,
		Redis:  redisClient,
		Router: r,
	}
}
