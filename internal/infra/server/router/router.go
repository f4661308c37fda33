// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/radio-billing/backend/internal/integration/entrypoint/controller"
	"github.com/radio-billing/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                   *gin.Engine
	healthController         *controller.HealthController
	templateController       *controller.TemplateController
	expenseController        *controller.ExpenseController
	paymentController        *controller.PaymentController
	orderController          *controller.OrderController
	generationController     *controller.GenerationController
	reconciliationController *controller.ReconciliationController
	scheduleController       *controller.ScheduleController
	batchController          *controller.BatchController
	batchThrottle            *middleware.BatchThrottle
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	templateController *controller.TemplateController,
	expenseController *controller.ExpenseController,
	paymentController *controller.PaymentController,
	orderController *controller.OrderController,
	generationController *controller.GenerationController,
	reconciliationController *controller.ReconciliationController,
	scheduleController *controller.ScheduleController,
	batchController *controller.BatchController,
	batchThrottle *middleware.BatchThrottle,
) *Router {
	return &Router{
		healthController:         healthController,
		templateController:       templateController,
		expenseController:        expenseController,
		paymentController:        paymentController,
		orderController:          orderController,
		generationController:     generationController,
		reconciliationController: reconciliationController,
		scheduleController:       scheduleController,
		batchController:          batchController,
		batchThrottle:            batchThrottle,
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
	v1 := r.engine.Group("/api/v1")
	{
		if r.templateController != nil {
			templates := v1.Group("/templates")
			{
				templates.GET("", r.templateController.List)
				templates.POST("", r.templateController.Create)
				templates.GET("/:id", r.templateController.Get)
				templates.PATCH("/:id", r.templateController.Update)
				templates.DELETE("/:id", r.templateController.Delete)
			}
		}

		if r.expenseController != nil {
			expenses := v1.Group("/expenses")
			{
				expenses.GET("", r.expenseController.List)
				expenses.POST("", r.expenseController.Create)
				expenses.PATCH("/:id", r.expenseController.Update)
			}
		}

		if r.paymentController != nil {
			payments := v1.Group("/payments")
			{
				payments.GET("", r.paymentController.List)
				payments.POST("/import", r.batchHandlers(r.paymentController.Import)...)
			}
		}

		if r.orderController != nil {
			orders := v1.Group("/orders")
			{
				orders.GET("", r.orderController.List)
				orders.POST("", r.orderController.Create)
				orders.PATCH("/:id/documents", r.orderController.UpdateDocuments)
			}
		}

		if r.generationController != nil {
			generation := v1.Group("/generation", r.batchHandlers()...)
			{
				generation.POST("/run", r.generationController.Run)
				generation.POST("/catch-up", r.generationController.CatchUp)
			}
		}

		if r.reconciliationController != nil {
			reconciliation := v1.Group("/reconciliation")
			{
				reconciliation.POST("/expenses", r.batchHandlers(r.reconciliationController.MatchExpenses)...)
				reconciliation.POST("/orders", r.batchHandlers(r.reconciliationController.MatchOrders)...)
				reconciliation.POST("/reset", r.reconciliationController.Reset)
				reconciliation.GET("/summary", r.reconciliationController.GetSummary)
			}
		}

		if r.scheduleController != nil {
			schedule := v1.Group("/schedule")
			{
				schedule.GET("", r.scheduleController.Project)
				schedule.GET("/completeness", r.scheduleController.Completeness)
			}
		}

		if r.batchController != nil {
			v1.GET("/batches/last", r.batchController.Last)
		}
	}
}

// batchHandlers prepends the batch throttle, when configured, to the handlers of a
// batch-triggering route.
func (r *Router) batchHandlers(handlers ...gin.HandlerFunc) []gin.HandlerFunc {
	if r.batchThrottle == nil {
		return handlers
	}
	return append([]gin.HandlerFunc{r.batchThrottle.Middleware()}, handlers...)
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
