package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto.
// Campos de la UI (costPrice, salePrice...) mapean a columnas cost_price, sale_price...
type CreateProductRequest struct {
	SKU          string          `json:"sku" validate:"required,min=1,max=100"`
	Name         string          `json:"name" validate:"required,min=1,max=200"`
	Unit         string          `json:"unit" validate:"required,max=20"`
	CostPrice    decimal.Decimal `json:"cost_price" validate:"dgte0"`
	SalePrice    decimal.Decimal `json:"sale_price" validate:"dgte0"`
	MinStock     decimal.Decimal `json:"min_stock" validate:"dgte0"`
	CurrentStock decimal.Decimal `json:"current_stock" validate:"dgte0"`
}

// UpdateProductRequest entrada para actualizar un producto (el stock lo mueven los movimientos).
type UpdateProductRequest struct {
	Name      *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Unit      *string          `json:"unit" validate:"omitempty,max=20"`
	CostPrice *decimal.Decimal `json:"cost_price" validate:"omitempty,dgte0"`
	SalePrice *decimal.Decimal `json:"sale_price" validate:"omitempty,dgte0"`
	MinStock  *decimal.Decimal `json:"min_stock" validate:"omitempty,dgte0"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID           string          `json:"id"`
	SKU          string          `json:"sku"`
	Name         string          `json:"name"`
	Unit         string          `json:"unit"`
	CostPrice    decimal.Decimal `json:"cost_price"`
	SalePrice    decimal.Decimal `json:"sale_price"`
	MinStock     decimal.Decimal `json:"min_stock"`
	CurrentStock decimal.Decimal `json:"current_stock"`
	LowStock     bool            `json:"low_stock"`
	UpdatedAt    time.Time       `json:"updated_at"`
}
