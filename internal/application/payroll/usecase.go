package payroll

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/wymdy/erp-api/internal/application/dto"
	"github.com/wymdy/erp-api/internal/application/ports"
	"github.com/wymdy/erp-api/internal/domain"
	"github.com/wymdy/erp-api/internal/domain/entity"
	payrollcalc "github.com/wymdy/erp-api/internal/domain/payroll"
	"github.com/wymdy/erp-api/internal/domain/repository"
	"github.com/wymdy/erp-api/pkg/logger"
)

// Config política de nómina.
type Config struct {
	INSSRate        decimal.Decimal
	ExpenseCategory string
	CompanyName     string
}

const reconcileBatch = 100

// UseCase casos de uso de la folha salarial.
type UseCase struct {
	employeeRepo repository.EmployeeRepository
	payrollRepo  repository.PayrollRepository
	tx           PayrollTxRunner
	sheet        SalarySheetGenerator
	metrics      ports.Metrics
	cfg          Config
	log          zerolog.Logger
	now          func() time.Time
}

// NewUseCase construye el caso de uso. metrics puede ser nil.
func NewUseCase(
	employeeRepo repository.EmployeeRepository,
	payrollRepo repository.PayrollRepository,
	tx PayrollTxRunner,
	sheet SalarySheetGenerator,
	metrics ports.Metrics,
	cfg Config,
	log *logger.Logger,
) *UseCase {
	if metrics == nil {
		metrics = ports.NopMetrics{}
	}
	if cfg.INSSRate.IsZero() {
		cfg.INSSRate = payrollcalc.DefaultINSSRate
	}
	if cfg.ExpenseCategory == "" {
		cfg.ExpenseCategory = "Salários"
	}
	return &UseCase{
		employeeRepo: employeeRepo,
		payrollRepo:  payrollRepo,
		tx:           tx,
		sheet:        sheet,
		metrics:      metrics,
		cfg:          cfg,
		log:          log.Component("payroll"),
		now:          time.Now,
	}
}

// Preview calcula los totales sin persistir. Sin base_salary usa el salario del funcionario;
// sin inss usa base × tasa configurada.
func (uc *UseCase) Preview(ctx context.Context, req dto.PayrollRequest) (*dto.PayrollResponse, error) {
	entry, err := uc.build(ctx, req)
	if err != nil {
		return nil, err
	}
	return ToPayrollResponse(entry, ""), nil
}

// Submit persiste la entrada y su gasto espejo en la misma transacción.
// Rechaza salario líquido negativo y entradas repetidas para el mismo funcionario y período.
func (uc *UseCase) Submit(ctx context.Context, req dto.PayrollRequest, userID string) (*dto.PayrollResponse, error) {
	entry, err := uc.build(ctx, req)
	if err != nil {
		return nil, err
	}
	if entry.NetSalary.IsNegative() {
		uc.log.Warn().
			Str("employee_id", entry.EmployeeID).
			Int("month", entry.Month).Int("year", entry.Year).
			Str("net", entry.NetSalary.String()).
			Msg("salario líquido negativo rechazado")
		return nil, domain.ErrNegativeNetSalary
	}
	existing, err := uc.payrollRepo.GetByEmployeePeriod(ctx, entry.EmployeeID, entry.Month, entry.Year)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}

	now := uc.now()
	entry.ID = uuid.New().String()
	entry.UserID = userID
	entry.CreatedAt = now
	expense := uc.mirrorExpense(entry, now)
	after, _ := json.Marshal(map[string]any{
		"employee_id": entry.EmployeeID,
		"period":      fmt.Sprintf("%02d/%d", entry.Month, entry.Year),
		"net_salary":  entry.NetSalary,
		"expense_id":  expense.ID,
	})

	err = uc.tx.RunPayroll(ctx, func(
		payrollRepo repository.PayrollRepository,
		expenseRepo repository.ExpenseRepository,
		auditRepo repository.AuditRepository,
	) error {
		if err := payrollRepo.Create(ctx, entry); err != nil {
			return fmt.Errorf("crear nómina: %w", err)
		}
		if err := expenseRepo.Create(ctx, expense); err != nil {
			return fmt.Errorf("crear gasto de nómina: %w", err)
		}
		return auditRepo.Create(ctx, &entity.AuditLog{
			ID:        uuid.New().String(),
			UserID:    userID,
			Action:    "payroll.create",
			Entity:    "payroll_entries",
			EntityID:  entry.ID,
			After:     string(after),
			Timestamp: now,
		})
	})
	if err != nil {
		uc.log.Error().Err(err).Str("employee_id", entry.EmployeeID).Msg("enviar nómina")
		return nil, err
	}

	net, _ := entry.NetSalary.Float64()
	uc.metrics.PayrollSubmitted(net)
	uc.log.Info().Str("payroll_id", entry.ID).Str("employee", entry.EmployeeName).
		Int("month", entry.Month).Int("year", entry.Year).Str("net", entry.NetSalary.String()).Msg("nómina registrada")
	return ToPayrollResponse(entry, expense.ID), nil
}

// List entradas de un período.
func (uc *UseCase) List(ctx context.Context, month, year int) ([]dto.PayrollResponse, error) {
	if month < 1 || month > 12 || year < 2000 {
		return nil, domain.ErrInvalidInput
	}
	list, err := uc.payrollRepo.ListByPeriod(ctx, month, year)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PayrollResponse, 0, len(list))
	for _, e := range list {
		out = append(out, *ToPayrollResponse(e, ""))
	}
	return out, nil
}

// Reconcile crea el gasto espejo de las entradas que no lo tienen (datos previos o migrados).
// Recorre todas las huérfanas en lotes de reconcileBatch con un cursor por id, de modo que una
// entrada que falla no vuelve a aparecer en la misma corrida. Cada entrada se repara en su propia
// transacción; los fallos se reportan y no detienen el resto.
func (uc *UseCase) Reconcile(ctx context.Context) (*dto.ReconcileResponse, error) {
	res := &dto.ReconcileResponse{}
	after := ""
	for {
		orphans, err := uc.payrollRepo.ListWithoutExpense(ctx, after, reconcileBatch)
		if err != nil {
			return nil, err
		}
		res.Checked += len(orphans)
		for _, entry := range orphans {
			if err := uc.repair(ctx, entry); err != nil {
				uc.metrics.ExpenseMirrorFailed()
				uc.log.Warn().Err(err).Str("payroll_id", entry.ID).Msg("reconciliación: no se pudo crear el gasto")
				res.Failures = append(res.Failures, entry.ID)
				continue
			}
			res.Created++
		}
		if len(orphans) < reconcileBatch {
			break
		}
		after = orphans[len(orphans)-1].ID
	}
	if res.Checked > 0 {
		uc.log.Info().Int("checked", res.Checked).Int("created", res.Created).
			Int("failures", len(res.Failures)).Msg("reconciliación de nómina")
	}
	return res, nil
}

func (uc *UseCase) repair(ctx context.Context, entry *entity.PayrollEntry) error {
	now := uc.now()
	expense := uc.mirrorExpense(entry, now)
	return uc.tx.RunPayroll(ctx, func(
		_ repository.PayrollRepository,
		expenseRepo repository.ExpenseRepository,
		auditRepo repository.AuditRepository,
	) error {
		if err := expenseRepo.Create(ctx, expense); err != nil {
			return err
		}
		return auditRepo.Create(ctx, &entity.AuditLog{
			ID:        uuid.New().String(),
			UserID:    entry.UserID,
			Action:    "payroll.reconcile",
			Entity:    "expenses",
			EntityID:  expense.ID,
			Timestamp: now,
		})
	})
}

// SalarySheet genera el PDF "Folha Salarial" del período.
func (uc *UseCase) SalarySheet(ctx context.Context, month, year int) ([]byte, error) {
	if month < 1 || month > 12 || year < 2000 {
		return nil, domain.ErrInvalidInput
	}
	list, err := uc.payrollRepo.ListByPeriod(ctx, month, year)
	if err != nil {
		return nil, err
	}
	data, err := uc.sheet.GenerateSalarySheet(SalarySheet{
		CompanyName: uc.cfg.CompanyName,
		Month:       month,
		Year:        year,
		Entries:     list,
	})
	if err != nil {
		return nil, fmt.Errorf("generar folha salarial: %w", err)
	}
	return data, nil
}

// build arma la entrada con los valores por defecto del funcionario y los totales derivados.
func (uc *UseCase) build(ctx context.Context, req dto.PayrollRequest) (*entity.PayrollEntry, error) {
	if req.Month < 1 || req.Month > 12 || req.Year < 2000 {
		return nil, domain.ErrInvalidInput
	}
	emp, err := uc.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return nil, err
	}
	if emp == nil {
		return nil, domain.ErrNotFound
	}
	if !emp.IsActive() {
		return nil, domain.ErrConflict
	}

	base := emp.Salary
	if req.BaseSalary != nil {
		base = *req.BaseSalary
	}
	inss := payrollcalc.DefaultINSS(base, uc.cfg.INSSRate)
	if req.INSS != nil {
		inss = *req.INSS
	}
	in := payrollcalc.Input{
		BaseSalary:         base,
		FoodAllowance:      req.FoodAllowance,
		TransportAllowance: req.TransportAllowance,
		Bonus:              req.Bonus,
		PersonalCommission: req.PersonalCommission,
		TeamCommission:     req.TeamCommission,
		OtherIncome:        req.OtherIncome,
		Loans:              req.Loans,
		INSS:               inss,
		OtherDeductions:    req.OtherDeductions,
	}
	for _, v := range []decimal.Decimal{in.BaseSalary, in.FoodAllowance, in.TransportAllowance, in.Bonus,
		in.PersonalCommission, in.TeamCommission, in.OtherIncome, in.Loans, in.INSS, in.OtherDeductions} {
		if v.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
	}
	t := payrollcalc.Compute(in)
	return &entity.PayrollEntry{
		EmployeeID:         emp.ID,
		EmployeeName:       emp.Name,
		Month:              req.Month,
		Year:               req.Year,
		BaseSalary:         in.BaseSalary,
		FoodAllowance:      in.FoodAllowance,
		TransportAllowance: in.TransportAllowance,
		Bonus:              in.Bonus,
		PersonalCommission: in.PersonalCommission,
		TeamCommission:     in.TeamCommission,
		OtherIncome:        in.OtherIncome,
		Loans:              in.Loans,
		INSS:               in.INSS,
		OtherDeductions:    in.OtherDeductions,
		TotalSubsidies:     t.TotalSubsidies,
		TotalIncome:        t.TotalIncome,
		TotalDeductions:    t.TotalDeductions,
		NetSalary:          t.NetSalary,
	}, nil
}

func (uc *UseCase) mirrorExpense(entry *entity.PayrollEntry, now time.Time) *entity.Expense {
	id := entry.ID
	return &entity.Expense{
		ID:             uuid.New().String(),
		Category:       uc.cfg.ExpenseCategory,
		Amount:         entry.NetSalary,
		Date:           now,
		Provider:       entry.EmployeeName,
		Description:    ExpenseDescription(entry),
		Status:         entity.ExpenseStatusPending,
		UserID:         entry.UserID,
		PayrollEntryID: &id,
		CreatedAt:      now,
	}
}

// ExpenseDescription texto del gasto espejo: "Salário <nombre> - <mes>/<año>".
func ExpenseDescription(e *entity.PayrollEntry) string {
	return fmt.Sprintf("Salário %s - %02d/%d", e.EmployeeName, e.Month, e.Year)
}

// ToPayrollResponse proyecta la entrada.
func ToPayrollResponse(e *entity.PayrollEntry, expenseID string) *dto.PayrollResponse {
	return &dto.PayrollResponse{
		ID:                 e.ID,
		EmployeeID:         e.EmployeeID,
		EmployeeName:       e.EmployeeName,
		Month:              e.Month,
		Year:               e.Year,
		BaseSalary:         e.BaseSalary,
		FoodAllowance:      e.FoodAllowance,
		TransportAllowance: e.TransportAllowance,
		Bonus:              e.Bonus,
		PersonalCommission: e.PersonalCommission,
		TeamCommission:     e.TeamCommission,
		OtherIncome:        e.OtherIncome,
		Loans:              e.Loans,
		INSS:               e.INSS,
		OtherDeductions:    e.OtherDeductions,
		TotalSubsidies:     e.TotalSubsidies,
		TotalIncome:        e.TotalIncome,
		TotalDeductions:    e.TotalDeductions,
		NetSalary:          e.NetSalary,
		ExpenseID:          expenseID,
	}
}
