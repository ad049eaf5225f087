package http

import (
	"github.com/gastrostock/gastrostock-api/internal/application/dto"
	"github.com/gastrostock/gastrostock-api/internal/domain/entity"
)

// productResponse mapea la entidad al contrato JSON.
func productResponse(p *entity.Product) dto.ProductResponse {
	resp := dto.ProductResponse{
		ID:        p.ID,
		Name:      p.Name,
		Category:  p.Category,
		Unit:      p.Unit,
		Stock:     p.Stock,
		MinStock:  p.MinStock,
		Price:     p.Price,
		Status:    string(p.Status),
		ImageURL:  p.ImageURL,
		Active:    p.Active,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
	if p.LocationID != nil {
		resp.NegocioID = *p.LocationID
	}
	if p.SourceID != nil {
		resp.SourceID = *p.SourceID
	}
	return resp
}

// movementResponse mapea la entidad al contrato JSON.
func movementResponse(m *entity.Movement) dto.MovementResponse {
	resp := dto.MovementResponse{
		ID:          m.ID,
		Type:        m.Type,
		ProductID:   m.ProductID,
		Partition:   m.Partition,
		Transaction: m.TransactionID,
		Quantity:    m.Quantity,
		Unit:        m.Unit,
		UnitPrice:   m.UnitPrice,
		Total:       m.Total,
		Reason:      m.Reason,
		Reference:   m.Reference,
		CreatedAt:   m.CreatedAt,
	}
	if m.LocationID != nil {
		resp.NegocioID = *m.LocationID
	}
	return resp
}
