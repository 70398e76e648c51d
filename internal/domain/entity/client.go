package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Client cliente de ventas. MarketingAgentID enlaza el cliente con el agente que cobra comisión.
type Client struct {
	ID               string
	Name             string
	NUIT             string // número de identificación tributaria
	Phone            string
	Address          string
	CreditLimit      decimal.Decimal
	Balance          decimal.Decimal
	MarketingAgentID *string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// MarketingAgent agente comercial con porcentaje de bónus sobre las ventas de sus clientes.
type MarketingAgent struct {
	ID              string
	Name            string
	BonusPercentage decimal.Decimal
}
