package postgres

import (
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/wymdy/erp-api/internal/domain"
)

func TestWriteErr_TraduceSQLSTATE(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want error
	}{
		{"clave única", &pgconn.PgError{Code: pgUniqueViolation}, domain.ErrDuplicate},
		{"fk", &pgconn.PgError{Code: pgForeignKeyViolation, ConstraintName: "sales_client_id_fkey"}, domain.ErrInvalidInput},
		{"check", &pgconn.PgError{Code: pgCheckViolation}, domain.ErrInvalidInput},
		{"uuid mal formado", &pgconn.PgError{Code: pgInvalidText}, domain.ErrInvalidInput},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, writeErr("insert x", tc.err), tc.want)
		})
	}

	other := errors.New("conexión cerrada")
	got := writeErr("insert x", other)
	assert.ErrorIs(t, got, other)
	assert.NotErrorIs(t, got, domain.ErrInvalidInput)
}

func TestNullString(t *testing.T) {
	empty, id := "", "5f1d8a2e-0000-4c4c-8d8d-000000000001"
	assert.Nil(t, nullString(nil))
	assert.Nil(t, nullString(&empty))
	assert.Equal(t, id, nullString(&id))
}
