package analytics

import (
	"context"
	"time"

	"github.com/gastrostock/gastrostock-api/internal/application/dto"
	"github.com/gastrostock/gastrostock-api/internal/domain"
	"github.com/gastrostock/gastrostock-api/internal/domain/entity"
	"github.com/gastrostock/gastrostock-api/internal/domain/reporting"
	"github.com/gastrostock/gastrostock-api/internal/domain/repository"
)

// ReportsUseCase reporte por período: KPIs, serie de tendencia, distribución
// de movimientos, top productos y stock crítico. Trabaja sobre la ventana
// reciente de movimientos; los períodos largos quedan acotados por ella.
type ReportsUseCase struct {
	generalRepo  repository.GeneralProductRepository
	detailedRepo repository.DetailedProductRepository
	movementRepo repository.MovementRepository
}

// NewReportsUseCase construye el caso de uso.
func NewReportsUseCase(
	generalRepo repository.GeneralProductRepository,
	detailedRepo repository.DetailedProductRepository,
	movementRepo repository.MovementRepository,
) *ReportsUseCase {
	return &ReportsUseCase{
		generalRepo:  generalRepo,
		detailedRepo: detailedRepo,
		movementRepo: movementRepo,
	}
}

// Get genera el reporte del período. Período no reconocido cae a mensual.
func (uc *ReportsUseCase) Get(ctx context.Context, period string) (*dto.ReportResponse, error) {
	p := reporting.Period(period)
	if period == "" {
		p = reporting.PeriodMonthly
	} else if !p.Valid() {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	since := now.Add(-p.Window())

	generalCh := make(chan fetchResult, 1)
	detailedCh := make(chan fetchResult, 1)
	movementsCh := make(chan fetchResult, 1)

	go func() {
		products, err := uc.generalRepo.List(ctx, true)
		generalCh <- fetchResult{general: products, err: err}
	}()
	go func() {
		products, err := uc.detailedRepo.List(ctx, true)
		detailedCh <- fetchResult{detailed: products, err: err}
	}()
	go func() {
		movements, err := uc.movementRepo.Recent(ctx, since)
		movementsCh <- fetchResult{movements: movements, err: err}
	}()

	var products []*entity.Product
	var movements []*entity.Movement
	for _, ch := range []chan fetchResult{generalCh, detailedCh, movementsCh} {
		r := <-ch
		if r.err != nil {
			return nil, r.err
		}
		products = append(products, r.general...)
		products = append(products, r.detailed...)
		if r.movements != nil {
			movements = r.movements
		}
	}

	kpis := reporting.ComputeKPIs(products, movements)
	trend := reporting.TrendSeries(p, now, kpis.InventoryValue)
	distribution := reporting.ComputeDistribution(movements)
	top := reporting.TopProducts(products, movements)
	critical := reporting.CriticalStock(products)

	resp := &dto.ReportResponse{
		Period:         string(p),
		InventoryValue: kpis.InventoryValue,
		PeriodLosses:   kpis.PeriodLosses,
		ActiveProducts: kpis.ActiveProducts,
		StockAlerts:    kpis.StockAlerts,
		Distribution: dto.DistributionDTO{
			Entries:     distribution.Entries,
			Exits:       distribution.Exits,
			Adjustments: distribution.Adjustments,
			Transfers:   distribution.Transfers,
		},
		GeneratedAt: now,
	}
	resp.Trend = make([]dto.TrendPointDTO, 0, len(trend))
	for _, point := range trend {
		resp.Trend = append(resp.Trend, dto.TrendPointDTO{Label: point.Label, Value: point.Value})
	}
	resp.TopProducts = make([]dto.TopProductDTO, 0, len(top))
	for _, t := range top {
		resp.TopProducts = append(resp.TopProducts, dto.TopProductDTO{
			ProductID: t.ProductID,
			Name:      t.Name,
			Quantity:  t.Quantity,
		})
	}
	resp.CriticalStock = make([]dto.ProductResponse, 0, len(critical))
	for _, p := range critical {
		resp.CriticalStock = append(resp.CriticalStock, toCriticalProduct(p))
	}
	return resp, nil
}

func toCriticalProduct(p *entity.Product) dto.ProductResponse {
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
