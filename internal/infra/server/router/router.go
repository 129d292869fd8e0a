// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/bcrezende/erp-rezendetech-sub000/internal/integration/entrypoint/controller"
	"github.com/bcrezende/erp-rezendetech-sub000/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                 *gin.Engine
	healthController       *controller.HealthController
	authController         *controller.AuthController
	companyController      *controller.CompanyController
	personController       *controller.PersonController
	productController      *controller.ProductController
	categoryController     *controller.CategoryController
	entryController        *controller.EntryController
	salesOrderController   *controller.SalesOrderController
	notificationController *controller.NotificationController
	dashboardController    *controller.DashboardController
	loginRateLimiter       middleware.Limiter
	authMiddleware         *middleware.AuthMiddleware
	sessionMiddleware      *middleware.SessionMiddleware
}

// Controllers groups the HTTP handlers served by the router.
type Controllers struct {
	Health       *controller.HealthController
	Auth         *controller.AuthController
	Company      *controller.CompanyController
	Person       *controller.PersonController
	Product      *controller.ProductController
	Category     *controller.CategoryController
	Entry        *controller.EntryController
	SalesOrder   *controller.SalesOrderController
	Notification *controller.NotificationController
	Dashboard    *controller.DashboardController
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	controllers Controllers,
	loginRateLimiter middleware.Limiter,
	authMiddleware *middleware.AuthMiddleware,
	sessionMiddleware *middleware.SessionMiddleware,
) *Router {
	return &Router{
		healthController:       controllers.Health,
		authController:         controllers.Auth,
		companyController:      controllers.Company,
		personController:       controllers.Person,
		productController:      controllers.Product,
		categoryController:     controllers.Category,
		entryController:        controllers.Entry,
		salesOrderController:   controllers.SalesOrder,
		notificationController: controllers.Notification,
		dashboardController:    controllers.Dashboard,
		loginRateLimiter:       loginRateLimiter,
		authMiddleware:         authMiddleware,
		sessionMiddleware:      sessionMiddleware,
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

	auth := v1.Group("/auth")
	{
		auth.POST("/register", r.authController.Register)
		auth.POST("/login", middleware.RateLimit(r.loginRateLimiter), r.authController.Login)
		auth.POST("/refresh", r.authController.RefreshToken)
		auth.POST("/logout", r.authMiddleware.Authenticate(), r.authController.Logout)
		auth.POST("/forgot-password", middleware.RateLimit(r.loginRateLimiter), r.authController.ForgotPassword)
		auth.POST("/reset-password", r.authController.ResetPassword)
	}

	// Every route below needs a valid token and a loaded session.
	authenticated := v1.Group("")
	authenticated.Use(r.authMiddleware.Authenticate(), r.sessionMiddleware.Load())

	companies := authenticated.Group("/companies")
	{
		companies.POST("", r.companyController.Create)
		companies.GET("/me", r.companyController.Get)
		companies.PATCH("/me", r.companyController.Update)
	}

	// Tenant routes need a company.
	tenant := authenticated.Group("")
	tenant.Use(middleware.RequireCompany())

	people := tenant.Group("/people")
	{
		people.GET("", r.personController.List)
		people.POST("", r.personController.Create)
		people.GET("/:id", r.personController.Get)
		people.PATCH("/:id", r.personController.Update)
		people.DELETE("/:id", r.personController.Delete)
	}

	products := tenant.Group("/products")
	{
		products.GET("", r.productController.List)
		products.POST("", r.productController.Create)
		products.PATCH("/:id", r.productController.Update)
		products.DELETE("/:id", r.productController.Delete)
	}

	categories := tenant.Group("/categories")
	{
		categories.GET("", r.categoryController.List)
		categories.POST("", r.categoryController.Create)
		categories.POST("/suggest", r.categoryController.Suggest)
		categories.PATCH("/:id", r.categoryController.Update)
		categories.DELETE("/:id", r.categoryController.Delete)
	}

	entries := tenant.Group("/entries")
	{
		entries.GET("", r.entryController.List)
		entries.POST("", r.entryController.Create)
		entries.GET("/:id", r.entryController.Get)
		entries.PATCH("/:id", r.entryController.Update)
		entries.DELETE("/:id", r.entryController.Delete)
		entries.POST("/:id/settle", r.entryController.Settle)
		entries.POST("/:id/cancel", r.entryController.Cancel)
	}

	orders := tenant.Group("/sales-orders")
	{
		orders.GET("", r.salesOrderController.List)
		orders.POST("", r.salesOrderController.Create)
		orders.GET("/:id", r.salesOrderController.Get)
		orders.DELETE("/:id", r.salesOrderController.Delete)
		orders.POST("/:id/status", r.salesOrderController.UpdateStatus)
	}

	reminders := tenant.Group("/reminders")
	{
		reminders.GET("", r.notificationController.ListReminders)
		reminders.POST("", r.notificationController.CreateReminder)
		reminders.PATCH("/:id", r.notificationController.UpdateReminder)
		reminders.DELETE("/:id", r.notificationController.DeleteReminder)
		reminders.POST("/:id/complete", r.notificationController.CompleteReminder)
	}

	notifications := tenant.Group("/notifications")
	{
		notifications.GET("", r.notificationController.ListNotifications)
		notifications.POST("/read-all", r.notificationController.MarkAllRead)
		notifications.POST("/:id/read", r.notificationController.MarkRead)
	}

	dashboard := tenant.Group("/dashboard")
	{
		dashboard.GET("/dre", r.dashboardController.GetDRE)
		dashboard.GET("/estimate", r.dashboardController.GetEstimate)
		dashboard.GET("/indicators", r.dashboardController.GetIndicators)
		dashboard.GET("/cash-flow", r.dashboardController.GetCashFlow)
	}
}
