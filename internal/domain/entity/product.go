package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del stock agrícola.
// CurrentStock lo mueven los movimientos de stock; el checkout solo lo lee.
type Product struct {
	ID           string
	SKU          string // clave de negocio única
	Name         string
	Unit         string // kg, saco, litro...
	CostPrice    decimal.Decimal
	SalePrice    decimal.Decimal
	MinStock     decimal.Decimal
	CurrentStock decimal.Decimal
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsLowStock indica si el stock actual está en o por debajo del mínimo.
func (p *Product) IsLowStock() bool {
	return p.CurrentStock.LessThanOrEqual(p.MinStock)
}
