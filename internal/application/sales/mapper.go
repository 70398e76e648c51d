package sales

import (
	"github.com/wymdy/erp-api/internal/application/dto"
	"github.com/wymdy/erp-api/internal/domain/entity"
)

const dateLayout = "2006-01-02"

// ToCheckoutResponse proyecta la sesión con los totales del momento.
func ToCheckoutResponse(s *CheckoutSession) *dto.CheckoutResponse {
	items := s.Cart.Items()
	out := &dto.CheckoutResponse{
		ID:               s.ID,
		ClientID:         s.ClientID,
		PaymentType:      s.PaymentType,
		DiscountAmount:   s.DiscountAmount,
		DiscountKind:     string(s.DiscountKind),
		InterestRate:     s.InterestRate,
		InstallmentCount: s.InstallmentCount,
		Items:            make([]dto.CartItemResponse, 0, len(items)),
		CanFinalize:      s.CanFinalize(),
	}
	for _, it := range items {
		out.Items = append(out.Items, dto.CartItemResponse{
			ProductID: it.Product.ID,
			SKU:       it.Product.SKU,
			Name:      it.Product.Name,
			Unit:      it.Product.Unit,
			UnitPrice: it.Product.SalePrice,
			Quantity:  it.Quantity,
			Subtotal:  it.Subtotal(),
		})
	}
	t := s.Totals()
	out.Totals = dto.TotalsResponse{
		Subtotal:            t.Subtotal,
		DiscountAmount:      t.DiscountAmount,
		AmountAfterDiscount: t.AmountAfterDiscount,
		InterestAmount:      t.InterestAmount,
		FinalTotal:          t.FinalTotal,
	}
	return out
}

// ToSaleResponse venta más su cronograma.
func ToSaleResponse(s *entity.Sale, installments []*entity.Installment) *dto.SaleResponse {
	return &dto.SaleResponse{
		ID:           s.ID,
		ClientID:     s.ClientID,
		Total:        s.Total,
		Discount:     s.Discount,
		Type:         s.Type,
		Status:       s.Status,
		Date:         s.Date.Format(dateLayout),
		Installments: ToInstallmentResponses(installments),
	}
}

// ToInstallmentResponses convierte las cuotas.
func ToInstallmentResponses(list []*entity.Installment) []dto.InstallmentResponse {
	if len(list) == 0 {
		return nil
	}
	out := make([]dto.InstallmentResponse, 0, len(list))
	for _, i := range list {
		out = append(out, dto.InstallmentResponse{
			ID:      i.ID,
			Number:  i.Number,
			Amount:  i.Amount,
			DueDate: i.DueDate.Format(dateLayout),
			Status:  i.Status,
		})
	}
	return out
}

// ToSaleSummaryResponses filas del historial.
func ToSaleSummaryResponses(list []*entity.SaleSummary) []dto.SaleSummaryResponse {
	out := make([]dto.SaleSummaryResponse, 0, len(list))
	for _, s := range list {
		out = append(out, dto.SaleSummaryResponse{
			ID:         s.ID,
			ClientID:   s.ClientID,
			ClientName: s.ClientName,
			Total:      s.Total,
			Type:       s.Type,
			Status:     s.Status,
			Date:       s.Date.Format(dateLayout),
		})
	}
	return out
}
