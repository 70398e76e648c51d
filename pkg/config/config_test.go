package config

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromViper_Defaults(t *testing.T) {
	cfg, err := fromViper(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, 30, cfg.Sales.InstallmentIntervalDays)
	assert.True(t, cfg.Sales.DefaultInterestRate.IsZero())
	assert.True(t, decimal.NewFromFloat(0.03).Equal(cfg.Payroll.INSSRate))
	assert.Equal(t, "Salários", cfg.Payroll.ExpenseCategory)
	assert.Equal(t, "gemini", cfg.AI.Provider)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
	assert.EqualValues(t, 10, cfg.DB.MaxConns)
	assert.Equal(t, "erp-api", cfg.DB.AppName)
}

func TestFromViper_PoolInvalido(t *testing.T) {
	v := viper.New()
	v.Set("DB_MIN_CONNS", "20")
	v.Set("DB_MAX_CONNS", "5")

	_, err := fromViper(v)
	assert.Error(t, err)
}

func TestFromViper_Overrides(t *testing.T) {
	v := viper.New()
	v.Set("SALES_DEFAULT_INTEREST_RATE", "5")
	v.Set("PAYROLL_INSS_RATE", "0.04")
	v.Set("HTTP_PORT", "9090")
	v.Set("AI_PROVIDER", "Anthropic")

	cfg, err := fromViper(v)
	require.NoError(t, err)

	assert.True(t, decimal.NewFromInt(5).Equal(cfg.Sales.DefaultInterestRate))
	assert.True(t, decimal.NewFromFloat(0.04).Equal(cfg.Payroll.INSSRate))
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, "anthropic", cfg.AI.Provider)
}

func TestFromViper_DecimalInvalido(t *testing.T) {
	v := viper.New()
	v.Set("PAYROLL_INSS_RATE", "tres por cento")

	_, err := fromViper(v)
	assert.Error(t, err)
}

func TestDBConfig_ConnectionString(t *testing.T) {
	c := DBConfig{Host: "db", Port: 5432, User: "u", Password: "p@ss", DBName: "erp", SSLMode: "disable"}
	assert.Equal(t, "postgres://u:p%40ss@db:5432/erp?sslmode=disable", c.ConnectionString())

	c.DatabaseURL = "postgresql://x"
	assert.Equal(t, "postgresql://x", c.ConnectionString())
}
