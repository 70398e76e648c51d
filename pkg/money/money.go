// Package money formatea importes en meticais con separadores de Moçambique
// (MT 15.000,00) para documentos impresos y exportaciones.
package money

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Symbol símbolo de moneda usado en documentos.
const Symbol = "MT"

// pt usa "." para miles y "," para decimales, como los documentos de la empresa.
var printer = message.NewPrinter(language.Portuguese)

// Format devuelve el importe redondeado a 2 decimales con agrupación local.
func Format(d decimal.Decimal) string {
	f, _ := d.Round(2).Float64()
	return Symbol + " " + printer.Sprintf("%.2f", f)
}

// Cents redondea a 2 decimales (unidad mínima de cobro).
func Cents(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}
