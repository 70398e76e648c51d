package money

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	assert.Equal(t, "MT 15.000,00", Format(decimal.NewFromInt(15000)))
	assert.Equal(t, "MT 14.550,50", Format(decimal.RequireFromString("14550.499")))
	assert.Equal(t, "MT 0,00", Format(decimal.Zero))
}

func TestCents(t *testing.T) {
	assert.True(t, decimal.RequireFromString("333.33").Equal(Cents(decimal.NewFromInt(1000).Div(decimal.NewFromInt(3)))))
}
