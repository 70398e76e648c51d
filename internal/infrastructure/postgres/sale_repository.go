package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/wymdy/erp-api/internal/domain/entity"
	"github.com/wymdy/erp-api/internal/domain/repository"
)

var (
	_ repository.SaleRepository        = (*SaleRepo)(nil)
	_ repository.InstallmentRepository = (*InstallmentRepo)(nil)
)

// SaleRepo ventas (usable con pool o tx).
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// Create persiste la cabecera de la venta.
func (r *SaleRepo) Create(ctx context.Context, s *entity.Sale) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO sales (id, client_id, total, discount, type, status, date, user_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		s.ID, s.ClientID, s.Total, s.Discount, s.Type, s.Status, s.Date, s.UserID, s.CreatedAt,
	)
	if err != nil {
		return writeErr("insert sale", err)
	}
	return nil
}

// GetByID obtiene una venta. nil si no existe.
func (r *SaleRepo) GetByID(ctx context.Context, id string) (*entity.Sale, error) {
	var s entity.Sale
	err := r.q.QueryRow(ctx, `
		SELECT id, client_id, total, discount, type, status, date, user_id, created_at
		FROM sales WHERE id = $1`, id,
	).Scan(&s.ID, &s.ClientID, &s.Total, &s.Discount, &s.Type, &s.Status, &s.Date, &s.UserID, &s.CreatedAt)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}
	return &s, nil
}

const saleSummarySelect = `
	SELECT s.id, s.client_id, COALESCE(c.name, ''), s.total, s.type, s.status, s.date
	FROM sales s LEFT JOIN clients c ON c.id = s.client_id`

// List historial más reciente primero. filter: all | proforma | confirmed (todo lo que no es proforma).
func (r *SaleRepo) List(ctx context.Context, filter string, limit, offset int) ([]*entity.SaleSummary, error) {
	where := ""
	switch filter {
	case "proforma":
		where = ` WHERE s.status = 'proforma'`
	case "confirmed":
		where = ` WHERE s.status <> 'proforma'`
	}
	return r.summaries(ctx, saleSummarySelect+where+` ORDER BY s.date DESC LIMIT $1 OFFSET $2`, limit, offset)
}

// ListByClient últimas ventas de un cliente.
func (r *SaleRepo) ListByClient(ctx context.Context, clientID string, limit int) ([]*entity.SaleSummary, error) {
	return r.summaries(ctx, saleSummarySelect+` WHERE s.client_id = $1 ORDER BY s.date DESC LIMIT $2`, clientID, limit)
}

// OutstandingCredit Σ total de ventas a crédito del cliente que no están pagadas.
func (r *SaleRepo) OutstandingCredit(ctx context.Context, clientID string) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.q.QueryRow(ctx, `
		SELECT COALESCE(SUM(total), 0) FROM sales
		WHERE client_id = $1 AND type = 'credit' AND status <> 'paid'`, clientID,
	).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("outstanding credit: %w", err)
	}
	return total, nil
}

// SumByClients Σ total de ventas confirmadas (no proforma) de los clientes dados.
func (r *SaleRepo) SumByClients(ctx context.Context, clientIDs []string) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.q.QueryRow(ctx, `
		SELECT COALESCE(SUM(total), 0) FROM sales
		WHERE client_id = ANY($1::uuid[]) AND status <> 'proforma'`, clientIDs,
	).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("sum sales by clients: %w", err)
	}
	return total, nil
}

func (r *SaleRepo) summaries(ctx context.Context, query string, args ...any) ([]*entity.SaleSummary, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()
	var list []*entity.SaleSummary
	for rows.Next() {
		var s entity.SaleSummary
		if err := rows.Scan(&s.ID, &s.ClientID, &s.ClientName, &s.Total, &s.Type, &s.Status, &s.Date); err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// InstallmentRepo cronograma de cuotas (usable con pool o tx).
type InstallmentRepo struct {
	q Querier
}

// NewInstallmentRepository construye el adaptador.
func NewInstallmentRepository(q Querier) *InstallmentRepo {
	return &InstallmentRepo{q: q}
}

// CreateBatch inserta todas las cuotas con un único round-trip (pgx.Batch).
func (r *InstallmentRepo) CreateBatch(ctx context.Context, list []*entity.Installment) error {
	if len(list) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	for _, i := range list {
		batch.Queue(`
			INSERT INTO installments (id, sale_id, number, amount, due_date, status, paid_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			i.ID, i.SaleID, i.Number, i.Amount, i.DueDate, i.Status, i.PaidAt,
		)
	}
	br := r.q.SendBatch(ctx, batch)
	for range list {
		if _, err := br.Exec(); err != nil {
			_ = br.Close()
			return writeErr("insert installments", err)
		}
	}
	if err := br.Close(); err != nil {
		return fmt.Errorf("insert installments: %w", err)
	}
	return nil
}

// ListBySale cuotas de una venta por número.
func (r *InstallmentRepo) ListBySale(ctx context.Context, saleID string) ([]*entity.Installment, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, sale_id, number, amount, due_date, status, paid_at
		FROM installments WHERE sale_id = $1 ORDER BY number`, saleID)
	if err != nil {
		return nil, fmt.Errorf("list installments: %w", err)
	}
	defer rows.Close()
	var list []*entity.Installment
	for rows.Next() {
		var i entity.Installment
		if err := rows.Scan(&i.ID, &i.SaleID, &i.Number, &i.Amount, &i.DueDate, &i.Status, &i.PaidAt); err != nil {
			return nil, fmt.Errorf("scan installment: %w", err)
		}
		list = append(list, &i)
	}
	return list, rows.Err()
}
