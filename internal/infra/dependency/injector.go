// Package dependency provides dependency injection for the application.
package dependency

import (
	"time"

	"gorm.io/gorm"

	"github.com/expense-control/backend/config"
	"github.com/expense-control/backend/internal/application/usecase/auth"
	"github.com/expense-control/backend/internal/application/usecase/category"
	"github.com/expense-control/backend/internal/application/usecase/report"
	"github.com/expense-control/backend/internal/application/usecase/transaction"
	"github.com/expense-control/backend/internal/infra/server/router"
	"github.com/expense-control/backend/internal/integration/adapters"
	"github.com/expense-control/backend/internal/integration/entrypoint/controller"
	"github.com/expense-control/backend/internal/integration/entrypoint/middleware"
	"github.com/expense-control/backend/internal/integration/persistence"
	"github.com/expense-control/backend/internal/integration/render"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	DB     *gorm.DB
	Router *router.Router
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB) *Injector {
	// Repositories
	userRepo := persistence.NewUserRepository(db)
	categoryRepo := persistence.NewCategoryRepository(db)
	transactionRepo := persistence.NewTransactionRepository(db)

	// Adapters/services
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry)
	reportRenderer := render.NewChromeRenderer()

	// Auth use cases
	registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService)
	loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)

	// Category use cases
	listCategoriesUseCase := category.NewListCategoriesUseCase(categoryRepo)
	createCategoryUseCase := category.NewCreateCategoryUseCase(categoryRepo)
	updateCategoryUseCase := category.NewUpdateCategoryUseCase(categoryRepo)
	deleteCategoryUseCase := category.NewDeleteCategoryUseCase(categoryRepo, transactionRepo)

	// Transaction use cases
	listTransactionsUseCase := transaction.NewListTransactionsUseCase(transactionRepo)
	getTransactionUseCase := transaction.NewGetTransactionUseCase(transactionRepo)
	createTransactionUseCase := transaction.NewCreateTransactionUseCase(transactionRepo, categoryRepo)
	updateTransactionUseCase := transaction.NewUpdateTransactionUseCase(transactionRepo, categoryRepo)
	deleteTransactionUseCase := transaction.NewDeleteTransactionUseCase(transactionRepo)
	getSummaryUseCase := transaction.NewGetSummaryUseCase(transactionRepo, categoryRepo)

	// Report use cases
	monthlyReportUseCase := report.NewMonthlyReportUseCase(transactionRepo, getSummaryUseCase)
	yearlyReportUseCase := report.NewYearlyReportUseCase(getSummaryUseCase)
	csvReportUseCase := report.NewCSVReportUseCase(transactionRepo)
	pdfReportUseCase := report.NewPDFReportUseCase(transactionRepo, userRepo, getSummaryUseCase, reportRenderer)

	// Controllers
	healthController := controller.NewHealthController(func() bool {
		sqlDB, err := db.DB()
		if err != nil {
			return false
		}
		return sqlDB.Ping() == nil
	})

	authController := controller.NewAuthController(registerUseCase, loginUseCase)
	userController := controller.NewUserController(userRepo)

	categoryController := controller.NewCategoryController(
		createCategoryUseCase,
		listCategoriesUseCase,
		updateCategoryUseCase,
		deleteCategoryUseCase,
	)

	transactionController := controller.NewTransactionController(
		listTransactionsUseCase,
		getTransactionUseCase,
		createTransactionUseCase,
		updateTransactionUseCase,
		deleteTransactionUseCase,
		getSummaryUseCase,
	)

	reportController := controller.NewReportController(
		monthlyReportUseCase,
		yearlyReportUseCase,
		csvReportUseCase,
		pdfReportUseCase,
	)

	// Middleware. Higher login limits in test environments to keep suites stable.
	var loginRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "test" {
		loginRateLimiter = middleware.NewRateLimiterWithConfig(1000, 1*time.Minute)
	} else {
		loginRateLimiter = middleware.NewRateLimiter()
	}
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	r := router.NewRouter(
		healthController,
		authController,
		userController,
		categoryController,
		transactionController,
		reportController,
		loginRateLimiter,
		authMiddleware,
	)

	return &Injector{
		Config: cfg,
		DB:     db,
		Router: r,
	}
}
