// Command reconcile crea los gastos que faltan para entradas de nómina ya registradas.
// Pensado para ejecutarse desde cron; sale con código 1 si alguna entrada no pudo repararse.
package main

import (
	"context"
	"os"
	"time"

	"github.com/wymdy/erp-api/internal/application/payroll"
	"github.com/wymdy/erp-api/internal/infrastructure/postgres"
	"github.com/wymdy/erp-api/pkg/config"
	"github.com/wymdy/erp-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel, Service: cfg.App.Name})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	uc := payroll.NewUseCase(
		postgres.NewEmployeeRepository(pool),
		postgres.NewPayrollRepository(pool),
		postgres.NewTxRunner(pool),
		nil, nil,
		payroll.Config{INSSRate: cfg.Payroll.INSSRate, ExpenseCategory: cfg.Payroll.ExpenseCategory},
		log,
	)

	res, err := uc.Reconcile(ctx)
	if err != nil {
		log.Error().Err(err).Msg("reconciliación")
		os.Exit(1)
	}
	log.Info().Int("checked", res.Checked).Int("created", res.Created).Int("failures", len(res.Failures)).
		Msg("reconciliación terminada")
	if len(res.Failures) > 0 {
		os.Exit(1)
	}
}
