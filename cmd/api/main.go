package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	appanalytics "github.com/jhoicas/tesoreria-api/internal/application/analytics"
	"github.com/jhoicas/tesoreria-api/internal/application/auth"
	appnumbering "github.com/jhoicas/tesoreria-api/internal/application/numbering"
	"github.com/jhoicas/tesoreria-api/internal/application/reporting"
	"github.com/jhoicas/tesoreria-api/internal/application/usecase"
	infrapdf "github.com/jhoicas/tesoreria-api/internal/infrastructure/pdf"
	"github.com/jhoicas/tesoreria-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/tesoreria-api/internal/interfaces/http"
	"github.com/jhoicas/tesoreria-api/pkg/config"
	"github.com/jhoicas/tesoreria-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	// Repositorios
	userRepo := postgres.NewUserRepository(pool)
	txRepo := postgres.NewTransactionRepository(pool)
	prebRepo := postgres.NewPrebendaRepository(pool)
	regRepo := postgres.NewRegistrationRepository(pool)
	payRepo := postgres.NewPaymentRepository(pool)
	pastorRepo := postgres.NewPastorRepository(pool)
	rangeRepo := postgres.NewDocumentRangeRepository(pool)
	docRepo := postgres.NewDocumentNumberRepository(pool)
	goalRepo := postgres.NewFinancialGoalRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Gate de numeración: compartido por movimientos y prebendas
	numberingSvc := appnumbering.NewService(rangeRepo, docRepo)

	// Casos de uso
	authUC := auth.NewUseCase(userRepo, cfg.JWT)
	userUC := usecase.NewUserUseCase(userRepo)
	transactionUC := usecase.NewTransactionUseCase(txRepo, numberingSvc, txRunner)
	prebendaUC := usecase.NewPrebendaUseCase(prebRepo, numberingSvc, txRunner)
	registrationUC := usecase.NewRegistrationUseCase(regRepo)
	paymentUC := usecase.NewPaymentUseCase(payRepo, regRepo)
	pastorUC := usecase.NewPastorUseCase(pastorRepo)
	rangeUC := usecase.NewDocumentRangeUseCase(rangeRepo)
	goalUC := usecase.NewFinancialGoalUseCase(goalRepo)
	dashboardUC := appanalytics.NewDashboardUseCase(analyticsRepo, txRepo, prebRepo, goalRepo)

	// PDF: informe mensual de tesorería
	pdfGenerator := infrapdf.NewMarotoReportGenerator(cfg.Report)
	reportUC := reporting.NewPDFUseCase(txRepo, prebRepo, goalRepo, pdfGenerator, cfg.Report)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.MetricsMiddleware())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Tesorería API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})
	app.Get("/metrics", httpRouter.MetricsHandler())

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:          authUC,
		UserUC:          userUC,
		TransactionUC:   transactionUC,
		PrebendaUC:      prebendaUC,
		RegistrationUC:  registrationUC,
		PaymentUC:       paymentUC,
		PastorUC:        pastorUC,
		DocumentRangeUC: rangeUC,
		FinancialGoalUC: goalUC,
		NumberingSvc:    numberingSvc,
		DashboardUC:     dashboardUC,
		ReportUC:        reportUC,
		JWTSecret:       cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
