// Command seed prepara una base nueva: usuario administrador, agente de marketing,
// cliente y productos de ejemplo. Es idempotente: lo que ya existe se omite.
//
// Uso:
//
//	SEED_ADMIN_EMAIL=admin@empresa.co.mz SEED_ADMIN_KEY=... go run ./cmd/seed [-demo]
package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/wymdy/erp-api/internal/application/dto"
	"github.com/wymdy/erp-api/internal/application/usecase"
	"github.com/wymdy/erp-api/internal/domain"
	"github.com/wymdy/erp-api/internal/domain/entity"
	"github.com/wymdy/erp-api/internal/infrastructure/postgres"
	"github.com/wymdy/erp-api/pkg/config"
	"github.com/wymdy/erp-api/pkg/logger"
)

const seedActor = "seed"

var demoProducts = []dto.CreateProductRequest{
	{SKU: "SEM-MILHO-25", Name: "Semente de milho híbrido 25kg", Unit: "saco",
		CostPrice: decimal.NewFromInt(1800), SalePrice: decimal.NewFromInt(2500), MinStock: decimal.NewFromInt(10), CurrentStock: decimal.NewFromInt(40)},
	{SKU: "ADB-NPK-50", Name: "Adubo NPK 12-24-12 50kg", Unit: "saco",
		CostPrice: decimal.NewFromInt(2600), SalePrice: decimal.NewFromInt(3400), MinStock: decimal.NewFromInt(15), CurrentStock: decimal.NewFromInt(8)},
	{SKU: "HRB-GLI-5L", Name: "Herbicida glifosato 5L", Unit: "litro",
		CostPrice: decimal.NewFromInt(950), SalePrice: decimal.NewFromInt(1350), MinStock: decimal.NewFromInt(5), CurrentStock: decimal.NewFromInt(20)},
}

func main() {
	demo := flag.Bool("demo", false, "crear también agente, cliente y productos de ejemplo")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel, Service: cfg.App.Name})

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if err := postgres.Migrate(cfg.DB.ConnectionString(), log); err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	audit := usecase.NewAuditUseCase(postgres.NewAuditRepository(pool), log)

	email, key := os.Getenv("SEED_ADMIN_EMAIL"), os.Getenv("SEED_ADMIN_KEY")
	if email == "" || key == "" {
		log.Fatal().Msg("SEED_ADMIN_EMAIL y SEED_ADMIN_KEY son obligatorios")
	}
	users := usecase.NewUserUseCase(postgres.NewUserRepository(pool), audit)
	_, err = users.Create(ctx, seedActor, dto.CreateUserRequest{
		Name: "Administrador", Email: email, Role: entity.RoleAdmin, AccessKey: key,
	})
	skipDuplicate(log, err, "usuario administrador")

	if !*demo {
		return
	}

	agent, err := demoAgent(ctx, postgres.NewMarketingAgentRepository(pool))
	if err != nil {
		log.Fatal().Err(err).Msg("agente de marketing")
	}

	clients := usecase.NewClientUseCase(postgres.NewClientRepository(pool), audit)
	_, err = clients.Create(ctx, seedActor, dto.CreateClientRequest{
		Name: "Cooperativa Agrícola de Chókwè", NUIT: "400000001", CreditLimit: decimal.NewFromInt(50000),
		MarketingAgentID: &agent.ID,
	})
	skipDuplicate(log, err, "cliente demo")

	products := usecase.NewProductUseCase(postgres.NewProductRepository(pool), audit)
	for _, p := range demoProducts {
		_, err := products.Create(ctx, seedActor, p)
		skipDuplicate(log, err, p.SKU)
	}
	log.Info().Msg("seed terminado")
}

const demoAgentName = "Agente Demo"

// demoAgent reutiliza el agente demo si ya existe (la tabla no tiene clave natural).
func demoAgent(ctx context.Context, repo *postgres.MarketingAgentRepo) (*entity.MarketingAgent, error) {
	agents, err := repo.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, a := range agents {
		if a.Name == demoAgentName {
			return a, nil
		}
	}
	agent := &entity.MarketingAgent{ID: uuid.New().String(), Name: demoAgentName, BonusPercentage: decimal.RequireFromString("2.5")}
	return agent, repo.Create(ctx, agent)
}

func skipDuplicate(log *logger.Logger, err error, what string) {
	switch {
	case err == nil:
		log.Info().Str("item", what).Msg("creado")
	case errors.Is(err, domain.ErrDuplicate):
		log.Info().Str("item", what).Msg("ya existe, se omite")
	default:
		log.Fatal().Err(err).Str("item", what).Msg("seed")
	}
}
