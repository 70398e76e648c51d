package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/wymdy/erp-api/internal/application/dto"
	"github.com/wymdy/erp-api/internal/domain"
	"github.com/wymdy/erp-api/internal/domain/entity"
	"github.com/wymdy/erp-api/internal/domain/repository"
)

const dateLayout = "2006-01-02"

// EmployeeUseCase ficha de funcionarios (RH).
type EmployeeUseCase struct {
	repo  repository.EmployeeRepository
	audit *AuditUseCase
}

// NewEmployeeUseCase construye el caso de uso.
func NewEmployeeUseCase(repo repository.EmployeeRepository, audit *AuditUseCase) *EmployeeUseCase {
	return &EmployeeUseCase{repo: repo, audit: audit}
}

// Create alta de funcionario; entra activo salvo que se indique lo contrario.
func (uc *EmployeeUseCase) Create(ctx context.Context, userID string, in dto.EmployeeRequest) (*dto.EmployeeResponse, error) {
	now := time.Now()
	e := &entity.Employee{ID: uuid.New().String(), Status: entity.StatusActive, CreatedAt: now}
	if err := applyEmployee(e, in); err != nil {
		return nil, err
	}
	e.UpdatedAt = now
	if err := uc.repo.Create(ctx, e); err != nil {
		return nil, err
	}
	res := toEmployeeResponse(e)
	uc.audit.Record(ctx, userID, "employee.create", "employees", e.ID, nil, res)
	return res, nil
}

// Update reemplaza los datos del funcionario.
func (uc *EmployeeUseCase) Update(ctx context.Context, userID, id string, in dto.EmployeeRequest) (*dto.EmployeeResponse, error) {
	e, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, domain.ErrNotFound
	}
	before := toEmployeeResponse(e)
	if err := applyEmployee(e, in); err != nil {
		return nil, err
	}
	e.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, e); err != nil {
		return nil, err
	}
	res := toEmployeeResponse(e)
	uc.audit.Record(ctx, userID, "employee.update", "employees", e.ID, before, res)
	return res, nil
}

// GetByID obtiene un funcionario.
func (uc *EmployeeUseCase) GetByID(ctx context.Context, id string) (*dto.EmployeeResponse, error) {
	e, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, domain.ErrNotFound
	}
	return toEmployeeResponse(e), nil
}

// List funcionarios filtrados por nombre o cargo.
func (uc *EmployeeUseCase) List(ctx context.Context, search string) ([]dto.EmployeeResponse, error) {
	list, err := uc.repo.List(ctx, strings.TrimSpace(search))
	if err != nil {
		return nil, err
	}
	out := make([]dto.EmployeeResponse, 0, len(list))
	for _, e := range list {
		out = append(out, *toEmployeeResponse(e))
	}
	return out, nil
}

func applyEmployee(e *entity.Employee, in dto.EmployeeRequest) error {
	if strings.TrimSpace(in.Name) == "" || in.Salary.IsNegative() {
		return domain.ErrInvalidInput
	}
	if in.AdmissionDate != "" {
		t, err := time.Parse(dateLayout, in.AdmissionDate)
		if err != nil {
			return domain.ErrInvalidInput
		}
		e.AdmissionDate = t
	} else if e.AdmissionDate.IsZero() {
		e.AdmissionDate = time.Now()
	}
	if in.Status != "" {
		e.Status = in.Status
	}
	e.Name = strings.TrimSpace(in.Name)
	e.Email = in.Email
	e.Phone = in.Phone
	e.Address = in.Address
	e.Position = in.Position
	e.Department = in.Department
	e.BankName = in.BankName
	e.AccountNumber = in.AccountNumber
	e.NIB = in.NIB
	e.Salary = in.Salary
	return nil
}

func toEmployeeResponse(e *entity.Employee) *dto.EmployeeResponse {
	return &dto.EmployeeResponse{
		ID:            e.ID,
		Name:          e.Name,
		Email:         e.Email,
		Phone:         e.Phone,
		Address:       e.Address,
		Position:      e.Position,
		Department:    e.Department,
		BankName:      e.BankName,
		AccountNumber: e.AccountNumber,
		NIB:           e.NIB,
		Salary:        e.Salary,
		Status:        e.Status,
		AdmissionDate: e.AdmissionDate.Format(dateLayout),
	}
}
