package sales

import (
	"encoding/json"

	"github.com/shopspring/decimal"
	"github.com/wymdy/erp-api/internal/domain/entity"
)

// CartItem línea del carrito. Quantity siempre ≥ 1.
type CartItem struct {
	Product  entity.Product `json:"product"`
	Quantity int            `json:"quantity"`
}

// Subtotal precio de venta × cantidad.
func (i CartItem) Subtotal() decimal.Decimal {
	return i.Product.SalePrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Cart carrito mutable de la sesión de checkout. No consulta el stock disponible.
type Cart struct {
	items []CartItem
}

// Add agrega qty unidades del producto; si ya está en el carrito suma a la línea existente.
// qty ≤ 0 se trata como 1.
func (c *Cart) Add(p entity.Product, qty int) {
	if qty <= 0 {
		qty = 1
	}
	for i := range c.items {
		if c.items[i].Product.ID == p.ID {
			c.items[i].Quantity += qty
			return
		}
	}
	c.items = append(c.items, CartItem{Product: p, Quantity: qty})
}

// UpdateQuantity aplica delta a la cantidad sin bajar de 1. Devuelve false si el producto no está.
func (c *Cart) UpdateQuantity(productID string, delta int) bool {
	for i := range c.items {
		if c.items[i].Product.ID == productID {
			q := c.items[i].Quantity + delta
			if q < 1 {
				q = 1
			}
			c.items[i].Quantity = q
			return true
		}
	}
	return false
}

// Remove elimina la línea completa. Devuelve false si el producto no está.
func (c *Cart) Remove(productID string) bool {
	for i := range c.items {
		if c.items[i].Product.ID == productID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return true
		}
	}
	return false
}

// Clear vacía el carrito.
func (c *Cart) Clear() { c.items = nil }

// IsEmpty indica si no hay líneas.
func (c *Cart) IsEmpty() bool { return len(c.items) == 0 }

// Items copia de las líneas en orden de inserción.
func (c *Cart) Items() []CartItem {
	out := make([]CartItem, len(c.items))
	copy(out, c.items)
	return out
}

// Lines convierte el carrito en líneas para el motor de precios.
func (c *Cart) Lines() []Line {
	lines := make([]Line, 0, len(c.items))
	for _, it := range c.items {
		lines = append(lines, Line{
			UnitPrice: it.Product.SalePrice,
			Quantity:  decimal.NewFromInt(int64(it.Quantity)),
		})
	}
	return lines
}

// MarshalJSON serializa las líneas (almacén de sesiones).
func (c Cart) MarshalJSON() ([]byte, error) {
	if c.items == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(c.items)
}

// UnmarshalJSON restaura las líneas descartando cantidades inválidas.
func (c *Cart) UnmarshalJSON(data []byte) error {
	var items []CartItem
	if err := json.Unmarshal(data, &items); err != nil {
		return err
	}
	c.items = c.items[:0]
	for _, it := range items {
		if it.Quantity < 1 {
			it.Quantity = 1
		}
		c.items = append(c.items, it)
	}
	return nil
}
