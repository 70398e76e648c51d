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
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"

	"github.com/wymdy/erp-api/internal/application/auth"
	"github.com/wymdy/erp-api/internal/application/insights"
	"github.com/wymdy/erp-api/internal/application/payroll"
	"github.com/wymdy/erp-api/internal/application/sales"
	"github.com/wymdy/erp-api/internal/application/usecase"
	infraai "github.com/wymdy/erp-api/internal/infrastructure/ai"
	inframetrics "github.com/wymdy/erp-api/internal/infrastructure/metrics"
	infrapdf "github.com/wymdy/erp-api/internal/infrastructure/pdf"
	"github.com/wymdy/erp-api/internal/infrastructure/postgres"
	"github.com/wymdy/erp-api/internal/infrastructure/session"
	infraxlsx "github.com/wymdy/erp-api/internal/infrastructure/xlsx"
	httpRouter "github.com/wymdy/erp-api/internal/interfaces/http"
	"github.com/wymdy/erp-api/pkg/config"
	"github.com/wymdy/erp-api/pkg/logger"
)

const swaggerFile = "./docs/swagger.json"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	if cfg.JWT.Secret == "" {
		log.Fatal().Msg("JWT_SECRET es obligatorio")
	}

	if cfg.DB.AutoMigrate {
		if err := postgres.Migrate(cfg.DB.ConnectionString(), log); err != nil {
			log.Fatal().Err(err).Msg("migraciones")
		}
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	// Métricas: registro propio expuesto en /metrics.
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics := inframetrics.New("erp", registry)

	// Sesiones de checkout: Redis si está configurado, si no memoria del proceso.
	sessionTTL := time.Duration(cfg.Redis.SessionTTLMinutes) * time.Minute
	var sessions sales.SessionStore = session.NewMemoryStore(sessionTTL)
	if cfg.Redis.URL != "" {
		opts, err := redis.ParseURL(cfg.Redis.URL)
		if err != nil {
			log.Fatal().Err(err).Msg("REDIS_URL inválida")
		}
		redisClient := redis.NewClient(opts)
		defer redisClient.Close()
		if err := redisClient.Ping(ctx).Err(); err != nil {
			log.Fatal().Err(err).Msg("conexión a Redis")
		}
		sessions = session.NewRedisStore(redisClient, sessionTTL)
		log.Info().Msg("sesiones de checkout en Redis")
	}

	productRepo := postgres.NewProductRepository(pool)
	clientRepo := postgres.NewClientRepository(pool)
	agentRepo := postgres.NewMarketingAgentRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	installmentRepo := postgres.NewInstallmentRepository(pool)
	employeeRepo := postgres.NewEmployeeRepository(pool)
	payrollRepo := postgres.NewPayrollRepository(pool)
	expenseRepo := postgres.NewExpenseRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	auditRepo := postgres.NewAuditRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	auditUC := usecase.NewAuditUseCase(auditRepo, log)
	productUC := usecase.NewProductUseCase(productRepo, auditUC)
	clientUC := usecase.NewClientUseCase(clientRepo, auditUC)
	employeeUC := usecase.NewEmployeeUseCase(employeeRepo, auditUC)
	userUC := usecase.NewUserUseCase(userRepo, auditUC)
	expenseUC := usecase.NewExpenseUseCase(expenseRepo)
	authUC := auth.NewAuthUseCase(userRepo, auditUC, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	checkoutUC := sales.NewCheckoutUseCase(productRepo, clientRepo, sessions, txRunner, metrics, sales.CheckoutConfig{
		DefaultInterestRate:     cfg.Sales.DefaultInterestRate,
		InstallmentIntervalDays: cfg.Sales.InstallmentIntervalDays,
	}, log)
	salesQuery := sales.NewQueryUseCase(saleRepo, installmentRepo, clientRepo, agentRepo, infraxlsx.NewSalesExporter())

	payrollUC := payroll.NewUseCase(employeeRepo, payrollRepo, txRunner, infrapdf.NewMarotoPDFGenerator(), metrics, payroll.Config{
		INSSRate:        cfg.Payroll.INSSRate,
		ExpenseCategory: cfg.Payroll.ExpenseCategory,
		CompanyName:     cfg.App.CompanyName,
	}, log)

	// Sin API key el dashboard responde siempre con el texto de respaldo.
	llm := infraai.New(cfg.AI.Provider, cfg.AI.GeminiAPIKey, cfg.AI.GeminiModel, cfg.AI.AnthropicAPIKey, cfg.AI.AnthropicModel)
	if llm == nil {
		log.Warn().Str("provider", cfg.AI.Provider).Msg("sin API key de IA: insights desactivados")
	}
	insightsUC := insights.NewUseCase(analyticsRepo, productRepo, llm, metrics, log)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(metrics.Middleware())

	// Swagger UI en local: http://localhost:<port>/docs
	if _, err := os.Stat(swaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: swaggerFile,
			Path:     "docs",
			Title:    "ERP Agro API",
		}))
	}

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:     authUC,
		ProductUC:  productUC,
		ClientUC:   clientUC,
		EmployeeUC: employeeUC,
		UserUC:     userUC,
		AuditUC:    auditUC,
		ExpenseUC:  expenseUC,
		CheckoutUC: checkoutUC,
		SalesQuery: salesQuery,
		PayrollUC:  payrollUC,
		InsightsUC: insightsUC,
		JWTSecret:  cfg.JWT.Secret,
		Gatherer:   registry,
		Logger:     log,
		AppName:    cfg.App.Name,
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
