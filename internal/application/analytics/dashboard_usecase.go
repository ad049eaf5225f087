// Package analytics agrega el inventario actual y la ventana reciente de
// movimientos en vistas de solo lectura para dashboard y reportes. Las
// consultas son efímeras: se calculan al vuelo y no persisten nada.
package analytics

import (
	"context"
	"errors"
	"time"

	"github.com/gastrostock/gastrostock-api/internal/application/dto"
	"github.com/gastrostock/gastrostock-api/internal/application/inventory"
	"github.com/gastrostock/gastrostock-api/internal/domain"
	"github.com/gastrostock/gastrostock-api/internal/domain/entity"
	"github.com/gastrostock/gastrostock-api/internal/domain/reporting"
	"github.com/gastrostock/gastrostock-api/internal/domain/repository"
)

const recentWindowDays = 30

// Clave de configuración para la conversión de moneda del dashboard.
const settingExchangeRate = "tasa_cambio"

// DashboardUseCase resumen de la pantalla principal: totales sobre las dos
// particiones combinadas y los últimos movimientos.
type DashboardUseCase struct {
	generalRepo  repository.GeneralProductRepository
	detailedRepo repository.DetailedProductRepository
	movementRepo repository.MovementRepository
	settingsRepo repository.SettingsRepository
	nameCache    *inventory.NameCache
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(
	generalRepo repository.GeneralProductRepository,
	detailedRepo repository.DetailedProductRepository,
	movementRepo repository.MovementRepository,
	settingsRepo repository.SettingsRepository,
	nameCache *inventory.NameCache,
) *DashboardUseCase {
	return &DashboardUseCase{
		generalRepo:  generalRepo,
		detailedRepo: detailedRepo,
		movementRepo: movementRepo,
		settingsRepo: settingsRepo,
		nameCache:    nameCache,
	}
}

type fetchResult struct {
	general   []*entity.Product
	detailed  []*entity.Product
	movements []*entity.Movement
	err       error
}

// Get calcula el resumen del dashboard. Las tres consultas de origen corren
// en paralelo; el primer error aborta el cálculo.
func (uc *DashboardUseCase) Get(ctx context.Context) (*dto.DashboardResponse, error) {
	res, err := uc.fetchAll(ctx)
	if err != nil {
		return nil, err
	}

	products := append(res.general, res.detailed...)
	stats := reporting.ComputeDashboard(products, res.movements)

	resp := &dto.DashboardResponse{
		TotalProducts:   stats.TotalProducts,
		TotalValue:      stats.TotalValue,
		LowStockCount:   stats.LowStockCount,
		RecentMovements: uc.toMovementResponses(stats.RecentMovements),
	}

	// La conversión solo aparece si existe la configuración tasa_cambio.
	rate, err := uc.settingsRepo.GetDecimal(ctx, settingExchangeRate)
	if err == nil && rate.IsPositive() {
		converted := stats.TotalValue.Mul(rate)
		resp.TotalValueConverted = &converted
	} else if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}
	return resp, nil
}

func (uc *DashboardUseCase) fetchAll(ctx context.Context) (*fetchResult, error) {
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
		since := time.Now().AddDate(0, 0, -recentWindowDays)
		movements, err := uc.movementRepo.Recent(ctx, since)
		movementsCh <- fetchResult{movements: movements, err: err}
	}()

	res := &fetchResult{}
	for _, ch := range []chan fetchResult{generalCh, detailedCh, movementsCh} {
		r := <-ch
		if r.err != nil {
			return nil, r.err
		}
		if r.general != nil {
			res.general = r.general
		}
		if r.detailed != nil {
			res.detailed = r.detailed
		}
		if r.movements != nil {
			res.movements = r.movements
		}
	}
	return res, nil
}

func (uc *DashboardUseCase) toMovementResponses(movements []*entity.Movement) []dto.MovementResponse {
	out := make([]dto.MovementResponse, 0, len(movements))
	for _, m := range movements {
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
		if name, ok := uc.nameCache.Get(m.ProductID); ok {
			resp.ProductName = name
		}
		out = append(out, resp)
	}
	return out
}
