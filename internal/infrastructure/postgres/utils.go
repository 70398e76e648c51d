package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/wymdy/erp-api/internal/domain"
)

// Códigos SQLSTATE que se traducen a errores de dominio.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"
	pgInvalidText         = "22P02"
)

// writeErr envuelve un error de INSERT/UPDATE con op. Clave única → ErrDuplicate;
// FK inexistente, CHECK o texto no convertible (p. ej. UUID mal formado) → ErrInvalidInput. El resto se devuelve tal cual envuelto.
func writeErr(op string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return fmt.Errorf("%s: %w", op, domain.ErrDuplicate)
		case pgForeignKeyViolation, pgCheckViolation:
			return fmt.Errorf("%s: %s: %w", op, pgErr.ConstraintName, domain.ErrInvalidInput)
		case pgInvalidText:
			return fmt.Errorf("%s: %w", op, domain.ErrInvalidInput)
		}
	}
	return fmt.Errorf("%s: %w", op, err)
}

func isNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

// nullString: nil o "" se guardan como NULL (columnas UUID opcionales).
func nullString(s *string) any {
	if s == nil || *s == "" {
		return nil
	}
	return *s
}
