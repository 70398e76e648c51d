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

// ProductUseCase casos de uso CRUD para productos. El stock se maneja vía movimientos.
type ProductUseCase struct {
	repo  repository.ProductRepository
	audit *AuditUseCase
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, audit *AuditUseCase) *ProductUseCase {
	return &ProductUseCase{repo: repo, audit: audit}
}

// Create crea un nuevo producto. El SKU es único.
func (uc *ProductUseCase) Create(ctx context.Context, userID string, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	sku := strings.TrimSpace(in.SKU)
	existing, err := uc.repo.GetBySKU(ctx, sku)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	if in.CostPrice.IsNegative() || in.SalePrice.IsNegative() || in.MinStock.IsNegative() || in.CurrentStock.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	product := &entity.Product{
		ID:           uuid.New().String(),
		SKU:          sku,
		Name:         strings.TrimSpace(in.Name),
		Unit:         in.Unit,
		CostPrice:    in.CostPrice,
		SalePrice:    in.SalePrice,
		MinStock:     in.MinStock,
		CurrentStock: in.CurrentStock,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	uc.audit.Record(ctx, userID, "product.create", "products", product.ID, nil, toProductResponse(product))
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(product), nil
}

// Update actualiza nombre, unidad, precios y mínimo. No toca el stock actual.
func (uc *ProductUseCase) Update(ctx context.Context, userID, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	before := toProductResponse(product)
	if in.Name != nil {
		product.Name = strings.TrimSpace(*in.Name)
	}
	if in.Unit != nil {
		product.Unit = *in.Unit
	}
	if in.CostPrice != nil {
		product.CostPrice = *in.CostPrice
	}
	if in.SalePrice != nil {
		product.SalePrice = *in.SalePrice
	}
	if in.MinStock != nil {
		product.MinStock = *in.MinStock
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, product); err != nil {
		return nil, err
	}
	after := toProductResponse(product)
	uc.audit.Record(ctx, userID, "product.update", "products", product.ID, before, after)
	return after, nil
}

// List busca por nombre o SKU.
func (uc *ProductUseCase) List(ctx context.Context, search string, page dto.PageRequest) ([]dto.ProductResponse, error) {
	page.Normalize()
	list, err := uc.repo.List(ctx, strings.TrimSpace(search), page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	return toProductResponses(list), nil
}

// LowStock productos en o por debajo del mínimo.
func (uc *ProductUseCase) LowStock(ctx context.Context) ([]dto.ProductResponse, error) {
	list, err := uc.repo.ListLowStock(ctx)
	if err != nil {
		return nil, err
	}
	return toProductResponses(list), nil
}

func toProductResponses(list []*entity.Product) []dto.ProductResponse {
	out := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		out = append(out, *toProductResponse(p))
	}
	return out
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:           p.ID,
		SKU:          p.SKU,
		Name:         p.Name,
		Unit:         p.Unit,
		CostPrice:    p.CostPrice,
		SalePrice:    p.SalePrice,
		MinStock:     p.MinStock,
		CurrentStock: p.CurrentStock,
		LowStock:     p.IsLowStock(),
		UpdatedAt:    p.UpdatedAt,
	}
}
