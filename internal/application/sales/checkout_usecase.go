package sales

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
	"github.com/wymdy/erp-api/internal/domain/repository"
	domainsales "github.com/wymdy/erp-api/internal/domain/sales"
	"github.com/wymdy/erp-api/pkg/logger"
)

// CheckoutConfig parámetros de la política comercial.
type CheckoutConfig struct {
	DefaultInterestRate     decimal.Decimal
	InstallmentIntervalDays int
}

// CheckoutUseCase casos de uso del checkout: sesión, líneas, condiciones y finalización.
type CheckoutUseCase struct {
	productRepo repository.ProductRepository
	clientRepo  repository.ClientRepository
	store       SessionStore
	tx          SaleTxRunner
	metrics     ports.Metrics
	cfg         CheckoutConfig
	log         zerolog.Logger
	now         func() time.Time
}

// NewCheckoutUseCase construye el caso de uso. metrics puede ser nil.
func NewCheckoutUseCase(
	productRepo repository.ProductRepository,
	clientRepo repository.ClientRepository,
	store SessionStore,
	tx SaleTxRunner,
	metrics ports.Metrics,
	cfg CheckoutConfig,
	log *logger.Logger,
) *CheckoutUseCase {
	if metrics == nil {
		metrics = ports.NopMetrics{}
	}
	if cfg.InstallmentIntervalDays <= 0 {
		cfg.InstallmentIntervalDays = domainsales.DefaultInstallmentIntervalDays
	}
	return &CheckoutUseCase{
		productRepo: productRepo,
		clientRepo:  clientRepo,
		store:       store,
		tx:          tx,
		metrics:     metrics,
		cfg:         cfg,
		log:         log.Component("checkout"),
		now:         time.Now,
	}
}

// Start abre una sesión nueva, opcionalmente con el cliente ya elegido.
func (uc *CheckoutUseCase) Start(ctx context.Context, in dto.StartCheckoutRequest) (*dto.CheckoutResponse, error) {
	s := NewCheckoutSession(uuid.New().String(), uc.cfg.DefaultInterestRate, uc.now())
	if in.ClientID != "" {
		if err := uc.ensureClient(ctx, in.ClientID); err != nil {
			return nil, err
		}
		s.ClientID = in.ClientID
	}
	if err := uc.store.Save(ctx, s); err != nil {
		return nil, fmt.Errorf("guardar sesión: %w", err)
	}
	return ToCheckoutResponse(s), nil
}

// Get devuelve el estado actual con los totales recalculados.
func (uc *CheckoutUseCase) Get(ctx context.Context, sessionID string) (*dto.CheckoutResponse, error) {
	s, err := uc.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return ToCheckoutResponse(s), nil
}

// AddItem lee el producto del catálogo y lo agrega a la sesión. No verifica stock disponible.
func (uc *CheckoutUseCase) AddItem(ctx context.Context, sessionID string, in dto.AddItemRequest) (*dto.CheckoutResponse, error) {
	p, err := uc.productRepo.GetByID(ctx, in.ProductID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	return uc.mutate(ctx, sessionID, func(s *CheckoutSession) error {
		s.AddItem(*p, in.Quantity)
		return nil
	})
}

// UpdateQuantity aplica delta a la línea (mínimo 1).
func (uc *CheckoutUseCase) UpdateQuantity(ctx context.Context, sessionID, productID string, delta int) (*dto.CheckoutResponse, error) {
	return uc.mutate(ctx, sessionID, func(s *CheckoutSession) error {
		return s.UpdateQuantity(productID, delta)
	})
}

// RemoveItem quita la línea del carrito.
func (uc *CheckoutUseCase) RemoveItem(ctx context.Context, sessionID, productID string) (*dto.CheckoutResponse, error) {
	return uc.mutate(ctx, sessionID, func(s *CheckoutSession) error {
		return s.RemoveItem(productID)
	})
}

// SetTerms actualiza cliente y condiciones comerciales.
func (uc *CheckoutUseCase) SetTerms(ctx context.Context, sessionID string, in dto.CheckoutTermsRequest) (*dto.CheckoutResponse, error) {
	if in.ClientID != "" {
		if err := uc.ensureClient(ctx, in.ClientID); err != nil {
			return nil, err
		}
	}
	return uc.mutate(ctx, sessionID, func(s *CheckoutSession) error {
		return s.SetTerms(TermsInput{
			ClientID:         in.ClientID,
			ClearClient:      in.ClearClient,
			PaymentType:      in.PaymentType,
			DiscountAmount:   in.DiscountAmount,
			DiscountKind:     domainsales.DiscountKind(in.DiscountKind),
			InterestRate:     in.InterestRate,
			InstallmentCount: in.InstallmentCount,
		})
	})
}

// Cancel descarta la sesión.
func (uc *CheckoutUseCase) Cancel(ctx context.Context, sessionID string) error {
	return uc.store.Delete(ctx, sessionID)
}

// Finalize persiste la venta y, si es crédito con más de una cuota, su cronograma.
// Venta, cuotas y auditoría se escriben en una sola transacción; al confirmar la sesión queda en blanco.
// Mientras dura, la sesión queda reservada y una finalización concurrente devuelve domain.ErrConflict.
func (uc *CheckoutUseCase) Finalize(ctx context.Context, sessionID, userID string, proforma bool) (*dto.SaleResponse, error) {
	// una sola finalización por sesión a la vez; la segunda recibe ErrConflict
	if err := uc.store.Lock(ctx, sessionID); err != nil {
		return nil, err
	}
	defer func() {
		if err := uc.store.Unlock(context.WithoutCancel(ctx), sessionID); err != nil {
			uc.log.Warn().Err(err).Str("session_id", sessionID).Msg("no se pudo liberar la sesión de checkout")
		}
	}()

	s, err := uc.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err := s.precondition(); err != nil {
		return nil, err
	}
	if err := uc.ensureClient(ctx, s.ClientID); err != nil {
		return nil, err
	}

	now := uc.now()
	totals := s.Totals()
	sale := &entity.Sale{
		ID:        uuid.New().String(),
		ClientID:  s.ClientID,
		Total:     totals.FinalTotal,
		Discount:  totals.DiscountAmount,
		Type:      s.PaymentType,
		Status:    statusFor(s.PaymentType, proforma),
		Date:      now,
		UserID:    userID,
		CreatedAt: now,
	}
	if proforma {
		sale.Type = entity.SaleTypeQuote
	}

	var installments []*entity.Installment
	if domainsales.NeedsInstallments(sale.Type, s.InstallmentCount) {
		for _, si := range domainsales.BuildSchedule(sale.Total, s.InstallmentCount, now, uc.cfg.InstallmentIntervalDays) {
			installments = append(installments, &entity.Installment{
				ID:      uuid.New().String(),
				SaleID:  sale.ID,
				Number:  si.Number,
				Amount:  si.Amount,
				DueDate: si.DueDate,
				Status:  entity.InstallmentStatusPending,
			})
		}
	}

	after, _ := json.Marshal(map[string]any{
		"total":        sale.Total,
		"type":         sale.Type,
		"status":       sale.Status,
		"items":        len(s.Cart.Items()),
		"installments": len(installments),
	})
	err = uc.tx.RunSale(ctx, func(
		saleRepo repository.SaleRepository,
		installmentRepo repository.InstallmentRepository,
		auditRepo repository.AuditRepository,
	) error {
		if err := saleRepo.Create(ctx, sale); err != nil {
			return fmt.Errorf("crear venta: %w", err)
		}
		if len(installments) > 0 {
			if err := installmentRepo.CreateBatch(ctx, installments); err != nil {
				return fmt.Errorf("crear cuotas: %w", err)
			}
		}
		return auditRepo.Create(ctx, &entity.AuditLog{
			ID:        uuid.New().String(),
			UserID:    userID,
			Action:    "sale.create",
			Entity:    "sales",
			EntityID:  sale.ID,
			After:     string(after),
			Timestamp: now,
		})
	})
	if err != nil {
		uc.log.Error().Err(err).Str("session_id", sessionID).Msg("finalizar venta")
		return nil, err
	}

	total, _ := sale.Total.Float64()
	uc.metrics.SaleFinalized(sale.Type, sale.Status, total)
	// la pantalla vuelve a empezar: carrito, cliente, descuento y cuotas en blanco
	s.Reset(uc.cfg.DefaultInterestRate)
	s.UpdatedAt = now
	if err := uc.store.Save(ctx, s); err != nil {
		uc.log.Warn().Err(err).Str("session_id", sessionID).Msg("no se pudo reiniciar la sesión de checkout")
	}
	uc.log.Info().Str("sale_id", sale.ID).Str("type", sale.Type).Str("total", sale.Total.String()).
		Int("installments", len(installments)).Msg("venta finalizada")

	return ToSaleResponse(sale, installments), nil
}

// statusFor contado → paid, crédito → pending, proforma → proforma.
func statusFor(paymentType string, proforma bool) string {
	switch {
	case proforma:
		return entity.SaleStatusProforma
	case paymentType == entity.SaleTypeCredit:
		return entity.SaleStatusPending
	default:
		return entity.SaleStatusPaid
	}
}

func (uc *CheckoutUseCase) ensureClient(ctx context.Context, clientID string) error {
	c, err := uc.clientRepo.GetByID(ctx, clientID)
	if err != nil {
		return err
	}
	if c == nil {
		return domain.ErrNotFound
	}
	return nil
}

// mutate carga la sesión, aplica fn y la guarda. Última escritura gana.
func (uc *CheckoutUseCase) mutate(ctx context.Context, sessionID string, fn func(*CheckoutSession) error) (*dto.CheckoutResponse, error) {
	s, err := uc.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err := fn(s); err != nil {
		return nil, err
	}
	s.UpdatedAt = uc.now()
	if err := uc.store.Save(ctx, s); err != nil {
		return nil, fmt.Errorf("guardar sesión: %w", err)
	}
	return ToCheckoutResponse(s), nil
}
