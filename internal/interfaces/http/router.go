package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/wymdy/erp-api/internal/application/auth"
	"github.com/wymdy/erp-api/internal/application/insights"
	"github.com/wymdy/erp-api/internal/application/payroll"
	"github.com/wymdy/erp-api/internal/application/sales"
	"github.com/wymdy/erp-api/internal/application/usecase"
	"github.com/wymdy/erp-api/internal/domain/entity"
	"github.com/wymdy/erp-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     *auth.AuthUseCase
	ProductUC  *usecase.ProductUseCase
	ClientUC   *usecase.ClientUseCase
	EmployeeUC *usecase.EmployeeUseCase
	UserUC     *usecase.UserUseCase
	AuditUC    *usecase.AuditUseCase
	ExpenseUC  *usecase.ExpenseUseCase
	CheckoutUC *sales.CheckoutUseCase
	SalesQuery *sales.QueryUseCase
	PayrollUC  *payroll.UseCase
	InsightsUC *insights.UseCase
	JWTSecret  string
	// Gatherer registro expuesto en /metrics. nil = sin endpoint de métricas.
	Gatherer prometheus.Gatherer
	Logger   *logger.Logger
	AppName  string
}

// Permisos por área.
var (
	anyRole      = []string{entity.RoleAdmin, entity.RoleFinance, entity.RoleStock, entity.RoleSeller, entity.RolePurchases, entity.RoleHR, entity.RoleAuditor}
	stockWriters = []string{entity.RoleAdmin, entity.RoleStock, entity.RolePurchases}
	sellers      = []string{entity.RoleAdmin, entity.RoleSeller}
	salesReaders = []string{entity.RoleAdmin, entity.RoleSeller, entity.RoleFinance, entity.RoleAuditor}
	clientWriter = []string{entity.RoleAdmin, entity.RoleSeller, entity.RoleFinance}
	hr           = []string{entity.RoleAdmin, entity.RoleHR}
	payrollUsers = []string{entity.RoleAdmin, entity.RoleHR, entity.RoleFinance}
	finance      = []string{entity.RoleAdmin, entity.RoleFinance}
	auditors     = []string{entity.RoleAdmin, entity.RoleAuditor}
	admins       = []string{entity.RoleAdmin}
)

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	errs := errorWriter{log: deps.Logger.Component("http")}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": deps.AppName})
	})
	if deps.Gatherer != nil {
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{})))
	}

	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC, errs)
	api.Post("/auth/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC, errs)
	products.Get("/", RequireRole(anyRole...), productHandler.List)
	products.Get("/low-stock", RequireRole(anyRole...), productHandler.LowStock)
	products.Get("/:id", RequireRole(anyRole...), productHandler.GetByID)
	products.Post("/", RequireRole(stockWriters...), productHandler.Create)
	products.Put("/:id", RequireRole(stockWriters...), productHandler.Update)

	clients := protected.Group("/clients")
	clientHandler := NewClientHandler(deps.ClientUC, deps.SalesQuery, errs)
	clients.Get("/", RequireRole(salesReaders...), clientHandler.List)
	clients.Post("/", RequireRole(clientWriter...), clientHandler.Create)
	clients.Get("/:id/context", RequireRole(salesReaders...), clientHandler.Context)

	employees := protected.Group("/employees", RequireRole(hr...))
	employeeHandler := NewEmployeeHandler(deps.EmployeeUC, errs)
	employees.Get("/", employeeHandler.List)
	employees.Post("/", employeeHandler.Create)
	employees.Put("/:id", employeeHandler.Update)

	checkout := protected.Group("/checkout", RequireRole(sellers...))
	checkoutHandler := NewCheckoutHandler(deps.CheckoutUC, errs)
	checkout.Post("/", checkoutHandler.Start)
	checkout.Get("/:id", checkoutHandler.Get)
	checkout.Delete("/:id", checkoutHandler.Cancel)
	checkout.Post("/:id/items", checkoutHandler.AddItem)
	checkout.Patch("/:id/items/:productId", checkoutHandler.UpdateQuantity)
	checkout.Delete("/:id/items/:productId", checkoutHandler.RemoveItem)
	checkout.Put("/:id/terms", checkoutHandler.SetTerms)
	checkout.Post("/:id/finalize", checkoutHandler.Finalize)

	salesGroup := protected.Group("/sales", RequireRole(salesReaders...))
	salesHandler := NewSalesHandler(deps.SalesQuery, errs)
	salesGroup.Get("/", salesHandler.History)
	salesGroup.Get("/export.xlsx", salesHandler.Export)
	salesGroup.Get("/:id/installments", salesHandler.Installments)

	protected.Get("/finance/commissions", RequireRole(finance...), salesHandler.Commissions)
	financeHandler := NewFinanceHandler(deps.ExpenseUC, errs)
	protected.Get("/finance/expenses", RequireRole(finance...), financeHandler.Expenses)

	payrollGroup := protected.Group("/payroll", RequireRole(payrollUsers...))
	payrollHandler := NewPayrollHandler(deps.PayrollUC, errs)
	payrollGroup.Post("/preview", payrollHandler.Preview)
	payrollGroup.Post("/", RequireRole(hr...), payrollHandler.Submit)
	payrollGroup.Get("/", payrollHandler.List)
	payrollGroup.Get("/sheet.pdf", payrollHandler.Sheet)
	payrollGroup.Post("/reconcile", RequireRole(finance...), payrollHandler.Reconcile)

	dashboardHandler := NewDashboardHandler(deps.InsightsUC, errs)
	protected.Get("/dashboard", RequireRole(anyRole...), dashboardHandler.Get)

	userHandler := NewUserHandler(deps.UserUC, deps.AuditUC, errs)
	protected.Get("/audit", RequireRole(auditors...), userHandler.Audit)
	users := protected.Group("/users", RequireRole(admins...))
	users.Get("/", userHandler.List)
	users.Post("/", userHandler.Create)
	users.Put("/:id", userHandler.Update)
	users.Patch("/:id/status", userHandler.UpdateStatus)
}
