// Package dependency provides dependency injection for the application.
package dependency

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/radio-billing/backend/config"
	"github.com/radio-billing/backend/internal/application/adapter"
	"github.com/radio-billing/backend/internal/application/usecase/batch"
	"github.com/radio-billing/backend/internal/application/usecase/expense"
	"github.com/radio-billing/backend/internal/application/usecase/generation"
	"github.com/radio-billing/backend/internal/application/usecase/order"
	"github.com/radio-billing/backend/internal/application/usecase/payment"
	"github.com/radio-billing/backend/internal/application/usecase/reconciliation"
	"github.com/radio-billing/backend/internal/application/usecase/schedule"
	"github.com/radio-billing/backend/internal/application/usecase/template"
	"github.com/radio-billing/backend/internal/domain/valueobject"
	"github.com/radio-billing/backend/internal/infra/server/router"
	"github.com/radio-billing/backend/internal/integration/batchlog"
	"github.com/radio-billing/backend/internal/integration/email"
	"github.com/radio-billing/backend/internal/integration/email/templates"
	"github.com/radio-billing/backend/internal/integration/entrypoint/controller"
	"github.com/radio-billing/backend/internal/integration/entrypoint/middleware"
	"github.com/radio-billing/backend/internal/integration/persistence"
)

// Options carries the optional infrastructure the injector wires when present.
type Options struct {
	// Redis enables batch-run recording. Nil disables it.
	Redis *redis.Client
	// EmailSender delivers reconciliation reports. Nil disables reports.
	EmailSender adapter.EmailSender
	// Clock overrides the billing clock, mainly for tests.
	Clock adapter.Clock
}

// UseCases exposes the batch entry points shared by the API, the CLI and the worker.
type UseCases struct {
	GenerateForMonth *generation.GenerateForMonthUseCase
	GenerateMissing  *generation.GenerateMissingUseCase
	MatchExpenses    *reconciliation.MatchExpensesUseCase
	MatchOrders      *reconciliation.MatchOrdersUseCase
	ProjectSchedule  *schedule.ProjectScheduleUseCase
	ImportPayments   *payment.ImportPaymentsUseCase
	GetLastRun       *batch.GetLastRunUseCase
}

// Injector holds all application dependencies.
type Injector struct {
	Config   *config.Config
	DB       *gorm.DB
	Router   *router.Router
	UseCases UseCases
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB, opts Options) *Injector {
	matchingConfig := valueobject.MatchingConfig{
		PayeeCodeWidth:            cfg.Billing.PayeeCodeWidth,
		PlaceholderBroadcastCount: cfg.Billing.PlaceholderBroadcastCount,
	}

	var clock adapter.Clock = adapter.SystemClock{Location: cfg.Billing.Location()}
	if opts.Clock != nil {
		clock = opts.Clock
	}

	// Create repositories
	templateRepo := persistence.NewExpenseTemplateRepository(db)
	expenseRepo := persistence.NewExpenseRepository(db)
	logRepo := persistence.NewGenerationLogRepository(db)
	paymentRepo := persistence.NewPaymentRepository(db)
	orderRepo := persistence.NewOrderRepository(db)
	reconciliationRepo := persistence.NewReconciliationRepository(db)

	// Optional integrations stay nil interfaces when not configured
	var recorder adapter.BatchRunRecorder
	if opts.Redis != nil {
		recorder = batchlog.NewRedisRecorder(opts.Redis, cfg.Redis.RunTTL)
	}

	var reporter adapter.ReportService
	if opts.EmailSender != nil && cfg.Email.ReportRecipient != "" {
		renderer, err := templates.NewRenderer()
		if err != nil {
			slog.Warn("Reconciliation report disabled, templates failed to load", "error", err)
		} else {
			reporter = email.NewReportService(opts.EmailSender, renderer, cfg.Email.ReportRecipient)
		}
	}

	// Create template use cases
	listTemplatesUseCase := template.NewListTemplatesUseCase(templateRepo)
	getTemplateUseCase := template.NewGetTemplateUseCase(templateRepo)
	createTemplateUseCase := template.NewCreateTemplateUseCase(templateRepo)
	updateTemplateUseCase := template.NewUpdateTemplateUseCase(templateRepo)
	deleteTemplateUseCase := template.NewDeleteTemplateUseCase(templateRepo)

	// Create expense use cases
	listExpensesUseCase := expense.NewListExpensesUseCase(expenseRepo)
	createExpenseUseCase := expense.NewCreateExpenseUseCase(expenseRepo)
	updateExpenseUseCase := expense.NewUpdateExpenseUseCase(expenseRepo)

	// Create payment use cases
	listPaymentsUseCase := payment.NewListPaymentsUseCase(paymentRepo)
	importPaymentsUseCase := payment.NewImportPaymentsUseCase(paymentRepo, recorder, clock)

	// Create order use cases
	listOrdersUseCase := order.NewListOrdersUseCase(orderRepo)
	createOrderUseCase := order.NewCreateOrderUseCase(orderRepo)
	updateDocumentsUseCase := order.NewUpdateDocumentsUseCase(orderRepo)

	// Create batch use cases
	generateForMonthUseCase := generation.NewGenerateForMonthUseCase(templateRepo, expenseRepo, logRepo, recorder, clock)
	generateMissingUseCase := generation.NewGenerateMissingUseCase(templateRepo, expenseRepo, logRepo, recorder, clock)
	matchExpensesUseCase := reconciliation.NewMatchExpensesUseCase(expenseRepo, paymentRepo, reconciliationRepo, recorder, reporter, clock, matchingConfig)
	matchOrdersUseCase := reconciliation.NewMatchOrdersUseCase(orderRepo, paymentRepo, reconciliationRepo, recorder, reporter, clock, matchingConfig)
	resetStatusUseCase := reconciliation.NewResetStatusUseCase(reconciliationRepo)
	getSummaryUseCase := reconciliation.NewGetSummaryUseCase(expenseRepo, paymentRepo, orderRepo)
	projectScheduleUseCase := schedule.NewProjectScheduleUseCase(orderRepo, matchingConfig)
	getCompletenessUseCase := schedule.NewGetCompletenessUseCase(orderRepo, paymentRepo, reconciliationRepo, matchingConfig)
	getLastRunUseCase := batch.NewGetLastRunUseCase(recorder)

	// Create controllers
	var redisHealthChecker func() bool
	if opts.Redis != nil {
		redisHealthChecker = func() bool {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			return opts.Redis.Ping(ctx).Err() == nil
		}
	}
	healthController := controller.NewHealthController(func() bool {
		sqlDB, err := db.DB()
		if err != nil {
			return false
		}
		return sqlDB.Ping() == nil
	}, redisHealthChecker)

	templateController := controller.NewTemplateController(
		listTemplatesUseCase,
		getTemplateUseCase,
		createTemplateUseCase,
		updateTemplateUseCase,
		deleteTemplateUseCase,
	)

	expenseController := controller.NewExpenseController(
		listExpensesUseCase,
		createExpenseUseCase,
		updateExpenseUseCase,
	)

	paymentController := controller.NewPaymentController(
		listPaymentsUseCase,
		importPaymentsUseCase,
	)

	orderController := controller.NewOrderController(
		listOrdersUseCase,
		createOrderUseCase,
		updateDocumentsUseCase,
	)

	generationController := controller.NewGenerationController(
		generateForMonthUseCase,
		generateMissingUseCase,
	)

	reconciliationController := controller.NewReconciliationController(
		matchExpensesUseCase,
		matchOrdersUseCase,
		resetStatusUseCase,
		getSummaryUseCase,
	)

	scheduleController := controller.NewScheduleController(
		projectScheduleUseCase,
		getCompletenessUseCase,
	)

	batchController := controller.NewBatchController(getLastRunUseCase)

	// Create middleware
	var batchThrottle *middleware.BatchThrottle
	if cfg.Throttle.MaxTriggers > 0 {
		batchThrottle = middleware.NewBatchThrottle(cfg.Throttle.MaxTriggers, cfg.Throttle.Window)
	}

	// Create router
	r := router.NewRouter(
		healthController,
		templateController,
		expenseController,
		paymentController,
		orderController,
		generationController,
		reconciliationController,
		scheduleController,
		batchController,
		batchThrottle,
	)

	return &Injector{
		Config: cfg,
		DB:     db,
		Router: r,
		UseCases: UseCases{
			GenerateForMonth: generateForMonthUseCase,
			GenerateMissing:  generateMissingUseCase,
			MatchExpenses:    matchExpensesUseCase,
			MatchOrders:      matchOrdersUseCase,
			ProjectSchedule:  projectScheduleUseCase,
			ImportPayments:   importPaymentsUseCase,
			GetLastRun:       getLastRunUseCase,
		},
	}
}

// NewEmailSender returns a Resend sender when an API key is configured, or nil.
func NewEmailSender(cfg *config.EmailConfig) adapter.EmailSender {
	if !cfg.ReportEnabled() {
		return nil
	}
	return email.NewResendClient(cfg.ResendAPIKey, cfg.FromName, cfg.FromEmail, cfg.ResendBaseURL)
}

// NewRedisClient connects to Redis when enabled. Connection failures are logged and
// leave batch-run recording disabled.
func NewRedisClient(cfg *config.RedisConfig) *redis.Client {
	if !cfg.Enabled {
		return nil
	}
	client, err := batchlog.NewClient(cfg)
	if err != nil {
		slog.Warn("Redis unavailable, batch runs will not be recorded", "error", err)
		return nil
	}
	return client
}
