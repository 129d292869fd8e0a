// Package dependency provides dependency injection for the application.
package dependency

import (
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/bcrezende/erp-rezendetech-sub000/config"
	"github.com/bcrezende/erp-rezendetech-sub000/internal/application/adapter"
	"github.com/bcrezende/erp-rezendetech-sub000/internal/application/usecase/auth"
	"github.com/bcrezende/erp-rezendetech-sub000/internal/application/usecase/category"
	"github.com/bcrezende/erp-rezendetech-sub000/internal/application/usecase/company"
	"github.com/bcrezende/erp-rezendetech-sub000/internal/application/usecase/dashboard"
	"github.com/bcrezende/erp-rezendetech-sub000/internal/application/usecase/entry"
	"github.com/bcrezende/erp-rezendetech-sub000/internal/application/usecase/notification"
	"github.com/bcrezende/erp-rezendetech-sub000/internal/application/usecase/person"
	"github.com/bcrezende/erp-rezendetech-sub000/internal/application/usecase/product"
	"github.com/bcrezende/erp-rezendetech-sub000/internal/application/usecase/reminder"
	"github.com/bcrezende/erp-rezendetech-sub000/internal/application/usecase/salesorder"
	"github.com/bcrezende/erp-rezendetech-sub000/internal/infra/cache"
	"github.com/bcrezende/erp-rezendetech-sub000/internal/infra/server/router"
	"github.com/bcrezende/erp-rezendetech-sub000/internal/integration/adapters"
	"github.com/bcrezende/erp-rezendetech-sub000/internal/integration/email"
	"github.com/bcrezende/erp-rezendetech-sub000/internal/integration/email/templates"
	"github.com/bcrezende/erp-rezendetech-sub000/internal/integration/entrypoint/controller"
	"github.com/bcrezende/erp-rezendetech-sub000/internal/integration/entrypoint/middleware"
	"github.com/bcrezende/erp-rezendetech-sub000/internal/integration/events"
	"github.com/bcrezende/erp-rezendetech-sub000/internal/integration/persistence"
)

// Services holds the external collaborators created by the caller.
// Every field is optional.
type Services struct {
	// Redis backs the login rate limiter. Nil falls back to an in-memory limiter.
	Redis *redis.Client
	// Publisher receives domain events. Nil logs them instead.
	Publisher adapter.EventPublisher
	// EmailSender delivers queued emails. Nil uses the logging mock sender.
	EmailSender adapter.EmailSender
	// Clock drives the estimate, the indicators and the notification worker.
	// Nil uses the wall clock.
	Clock dashboard.Clock
}

// Injector holds all application dependencies.
type Injector struct {
	Config             *config.Config
	DB                 *gorm.DB
	Router             *router.Router
	EmailWorker        *email.Worker
	NotificationWorker *notification.Worker
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB, services Services) (*Injector, error) {
	if services.Publisher == nil {
		services.Publisher = events.LogPublisher{}
	}
	if services.EmailSender == nil {
		services.EmailSender = email.NewMockEmailSender()
	}
	if services.Clock == nil {
		services.Clock = dashboard.SystemClock
	}

	// Create repositories
	userRepo := persistence.NewUserRepository(db)
	tokenRepo := persistence.NewTokenRepository(db)
	companyRepo := persistence.NewCompanyRepository(db)
	categoryRepo := persistence.NewCategoryRepository(db)
	personRepo := persistence.NewPersonRepository(db)
	productRepo := persistence.NewProductRepository(db)
	entryRepo := persistence.NewEntryRepository(db)
	orderRepo := persistence.NewSalesOrderRepository(db)
	reminderRepo := persistence.NewReminderRepository(db)
	notificationRepo := persistence.NewNotificationRepository(db)
	emailQueueRepo := persistence.NewEmailQueueRepository(db)
	dashboardRepo := persistence.NewDashboardRepository(db)

	// Create adapters/services
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(cfg.JWT, tokenRepo)
	resetTokenService := adapters.NewPasswordResetTokenService(tokenRepo)
	suggester := adapters.NewGeminiService(cfg.AI.GeminiAPIKey, cfg.AI.Model)
	emailService := email.NewService(emailQueueRepo, cfg.Email.AppBaseURL)

	renderer, err := templates.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("failed to load email templates: %w", err)
	}

	// Create auth use cases
	registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService)
	loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
	refreshTokenUseCase := auth.NewRefreshTokenUseCase(tokenService)
	logoutUseCase := auth.NewLogoutUserUseCase(tokenService)
	forgotPasswordUseCase := auth.NewForgotPasswordUseCase(userRepo, resetTokenService, emailService, cfg.Email.AppBaseURL)
	resetPasswordUseCase := auth.NewResetPasswordUseCase(userRepo, passwordService, resetTokenService, tokenService)

	// Create controllers
	controllers := router.Controllers{
		Health: controller.NewHealthController(func() bool {
			sqlDB, err := db.DB()
			if err != nil {
				return false
			}
			return sqlDB.Ping() == nil
		}, cache.HealthCheck(services.Redis)),
		Auth: controller.NewAuthController(
			registerUseCase,
			loginUseCase,
			refreshTokenUseCase,
			logoutUseCase,
			forgotPasswordUseCase,
			resetPasswordUseCase,
		),
		Company: controller.NewCompanyController(
			company.NewCreateCompanyUseCase(companyRepo, userRepo, services.Publisher),
			company.NewGetCompanyUseCase(companyRepo),
			company.NewUpdateCompanyUseCase(companyRepo),
		),
		Person: controller.NewPersonController(
			person.NewListPeopleUseCase(personRepo),
			person.NewGetPersonUseCase(personRepo),
			person.NewCreatePersonUseCase(personRepo),
			person.NewUpdatePersonUseCase(personRepo),
			person.NewDeletePersonUseCase(personRepo),
		),
		Product: controller.NewProductController(
			product.NewListProductsUseCase(productRepo),
			product.NewCreateProductUseCase(productRepo),
			product.NewUpdateProductUseCase(productRepo),
			product.NewDeleteProductUseCase(productRepo),
		),
		Category: controller.NewCategoryController(
			category.NewListCategoriesUseCase(categoryRepo),
			category.NewCreateCategoryUseCase(categoryRepo),
			category.NewUpdateCategoryUseCase(categoryRepo),
			category.NewDeleteCategoryUseCase(categoryRepo),
			category.NewSuggestCategoryUseCase(categoryRepo, suggester),
		),
		Entry: controller.NewEntryController(
			entry.NewListEntriesUseCase(entryRepo),
			entry.NewGetEntryUseCase(entryRepo),
			entry.NewCreateEntryUseCase(entryRepo, categoryRepo, personRepo),
			entry.NewUpdateEntryUseCase(entryRepo, categoryRepo, personRepo),
			entry.NewDeleteEntryUseCase(entryRepo),
			entry.NewSettleEntryUseCase(entryRepo, services.Publisher),
			entry.NewCancelEntryUseCase(entryRepo),
		),
		SalesOrder: controller.NewSalesOrderController(
			salesorder.NewListSalesOrdersUseCase(orderRepo),
			salesorder.NewGetSalesOrderUseCase(orderRepo),
			salesorder.NewCreateSalesOrderUseCase(orderRepo, productRepo, personRepo),
			salesorder.NewUpdateStatusUseCase(orderRepo),
			salesorder.NewDeleteSalesOrderUseCase(orderRepo),
		),
		Notification: controller.NewNotificationController(
			reminder.NewListRemindersUseCase(reminderRepo),
			reminder.NewCreateReminderUseCase(reminderRepo, entryRepo),
			reminder.NewUpdateReminderUseCase(reminderRepo),
			reminder.NewCompleteReminderUseCase(reminderRepo),
			reminder.NewDeleteReminderUseCase(reminderRepo),
			notification.NewListNotificationsUseCase(notificationRepo),
			notification.NewMarkReadUseCase(notificationRepo),
		),
		Dashboard: controller.NewDashboardController(
			dashboard.NewGetDREUseCase(dashboardRepo),
			dashboard.NewGetEstimateUseCase(dashboardRepo, services.Clock),
			dashboard.NewGetIndicatorsUseCase(dashboardRepo, services.Clock),
			dashboard.NewGetCashFlowUseCase(dashboardRepo),
			dashboard.NewRequestSequencer(),
		),
	}

	// Create middleware
	// Use higher rate limits for E2E/test environments to prevent flaky tests
	maxAttempts := 5
	if cfg.Server.Environment == "e2e" || cfg.Server.Environment == "test" {
		maxAttempts = 1000
	}
	var loginRateLimiter middleware.Limiter
	if services.Redis != nil {
		loginRateLimiter = middleware.NewRedisRateLimiter(services.Redis, "ratelimit:auth", maxAttempts, time.Minute)
	} else {
		loginRateLimiter = middleware.NewRateLimiterWithConfig(maxAttempts, time.Minute)
	}
	authMiddleware := middleware.NewAuthMiddleware(tokenService)
	sessionMiddleware := middleware.NewSessionMiddleware(userRepo)

	// Create workers
	// The outbox schedules on the wall clock, whatever business day Clock reports.
	emailWorker := email.NewWorker(emailQueueRepo, services.EmailSender, renderer, email.DefaultWorkerConfig())

	notificationWorker := notification.NewWorker(notification.WorkerDeps{
		Entries:       entryRepo,
		Reminders:     reminderRepo,
		Notifications: notificationRepo,
		Users:         userRepo,
		Companies:     companyRepo,
		EmailService:  emailService,
		Publisher:     services.Publisher,
	}, notification.WorkerConfig{
		PollInterval:  cfg.Notifications.PollInterval,
		BatchSize:     cfg.Notifications.BatchSize,
		DueSoonWindow: cfg.Notifications.DueSoonWindow,
		Now:           services.Clock.Now,
	})

	r := router.NewRouter(controllers, loginRateLimiter, authMiddleware, sessionMiddleware)

	return &Injector{
		Config:             cfg,
		DB:                 db,
		Router:             r,
		EmailWorker:        emailWorker,
		NotificationWorker: notificationWorker,
	}, nil
}
