package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tesoreria-api/internal/application/analytics"
	"github.com/jhoicas/tesoreria-api/internal/application/auth"
	appnumbering "github.com/jhoicas/tesoreria-api/internal/application/numbering"
	"github.com/jhoicas/tesoreria-api/internal/application/reporting"
	"github.com/jhoicas/tesoreria-api/internal/application/usecase"
	"github.com/jhoicas/tesoreria-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC          *auth.UseCase
	UserUC          *usecase.UserUseCase
	TransactionUC   *usecase.TransactionUseCase
	PrebendaUC      *usecase.PrebendaUseCase
	RegistrationUC  *usecase.RegistrationUseCase
	PaymentUC       *usecase.PaymentUseCase
	PastorUC        *usecase.PastorUseCase
	DocumentRangeUC *usecase.DocumentRangeUseCase
	FinancialGoalUC *usecase.FinancialGoalUseCase
	NumberingSvc    *appnumbering.Service
	DashboardUC     *analytics.DashboardUseCase
	ReportUC        *reporting.PDFUseCase
	JWTSecret       string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth: login público; register solo admin
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/register",
		AuthMiddleware(deps.JWTSecret), RequireRole(entity.RoleAdmin),
		authHandler.Register)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	adminOnly := RequireRole(entity.RoleAdmin)

	// Users (solo admin)
	users := protected.Group("/users", adminOnly)
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.GetByID)
	users.Put("/:id", userHandler.Update)
	users.Delete("/:id", userHandler.Delete)

	// Transactions
	transactions := protected.Group("/transactions")
	transactionHandler := NewTransactionHandler(deps.TransactionUC)
	transactions.Post("/", transactionHandler.Create)
	transactions.Get("/", transactionHandler.List)
	transactions.Get("/:id", transactionHandler.GetByID)
	transactions.Put("/:id", transactionHandler.Update)
	transactions.Delete("/:id", transactionHandler.Delete)

	// Prebendas
	prebendas := protected.Group("/prebendas")
	prebendaHandler := NewPrebendaHandler(deps.PrebendaUC)
	prebendas.Post("/", prebendaHandler.Create)
	prebendas.Get("/", prebendaHandler.List)
	prebendas.Get("/:id", prebendaHandler.GetByID)
	prebendas.Put("/:id", prebendaHandler.Update)
	prebendas.Delete("/:id", prebendaHandler.Delete)

	// Registrations + pagos por inscripción
	registrations := protected.Group("/registrations")
	registrationHandler := NewRegistrationHandler(deps.RegistrationUC, deps.PaymentUC)
	registrations.Post("/", registrationHandler.Create)
	registrations.Get("/", registrationHandler.List)
	registrations.Get("/:id", registrationHandler.GetByID)
	registrations.Put("/:id", registrationHandler.Update)
	registrations.Delete("/:id", registrationHandler.Delete)
	registrations.Get("/:id/payments", registrationHandler.ListPayments)

	// Payments
	payments := protected.Group("/payments")
	paymentHandler := NewPaymentHandler(deps.PaymentUC)
	payments.Post("/", paymentHandler.Create)
	payments.Get("/", paymentHandler.List)
	payments.Get("/:id", paymentHandler.GetByID)
	payments.Put("/:id", paymentHandler.Update)
	payments.Delete("/:id", paymentHandler.Delete)

	// Pastors
	pastors := protected.Group("/pastors")
	pastorHandler := NewPastorHandler(deps.PastorUC)
	pastors.Post("/", pastorHandler.Create)
	pastors.Get("/", pastorHandler.List)
	pastors.Get("/:id", pastorHandler.GetByID)
	pastors.Put("/:id", pastorHandler.Update)
	pastors.Delete("/:id", pastorHandler.Delete)

	// Document ranges: lectura y validación para todos; mutaciones solo admin
	ranges := protected.Group("/document-ranges")
	rangeHandler := NewDocumentRangeHandler(deps.DocumentRangeUC, deps.NumberingSvc)
	ranges.Get("/", rangeHandler.List)
	ranges.Post("/validate", rangeHandler.Validate)
	ranges.Get("/:id", rangeHandler.GetByID)
	ranges.Post("/", adminOnly, rangeHandler.Create)
	ranges.Put("/:id", adminOnly, rangeHandler.Update)
	ranges.Delete("/:id", adminOnly, rangeHandler.Delete)

	// Financial goals
	goals := protected.Group("/financial-goals")
	goalHandler := NewFinancialGoalHandler(deps.FinancialGoalUC)
	goals.Post("/", goalHandler.Create)
	goals.Get("/", goalHandler.List)
	goals.Get("/:id", goalHandler.GetByID)
	goals.Put("/:id", goalHandler.Update)
	goals.Delete("/:id", goalHandler.Delete)

	// Dashboard + reportes
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard/summary", dashboardHandler.Summary)
	reportHandler := NewReportHandler(deps.ReportUC)
	protected.Get("/reports/monthly", reportHandler.Monthly)
}
