package inventory

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/gastrostock/gastrostock-api/internal/domain"
	"github.com/gastrostock/gastrostock-api/internal/domain/entity"
	"github.com/gastrostock/gastrostock-api/internal/domain/repository"
)

// StockUseCase operaciones directas de stock sobre cualquiera de las dos
// particiones. Toda escritura bloquea la fila (SELECT FOR UPDATE) dentro de
// una transacción y persiste el estado recalculado junto con el stock: no hay
// camino de escritura que deje el estado desincronizado ni carrera
// leer-calcular-escribir entre sesiones.
type StockUseCase struct {
	txRunner TxRunner
	notifier Notifier
}

// NewStockUseCase construye el caso de uso.
func NewStockUseCase(txRunner TxRunner, notifier Notifier) *StockUseCase {
	return &StockUseCase{txRunner: txRunner, notifier: notifier}
}

// SetStock fija el stock absoluto del producto. Falla con ErrNegativeStock
// antes de tocar la BD si newStock < 0.
func (uc *StockUseCase) SetStock(ctx context.Context, partition, productID string, newStock decimal.Decimal) (*entity.Product, error) {
	if newStock.LessThan(decimal.Zero) {
		return nil, domain.ErrNegativeStock
	}
	return uc.mutate(ctx, partition, productID, func(current decimal.Decimal) decimal.Decimal {
		return newStock
	})
}

// IncrementStock suma delta (>= 0) al stock actual.
func (uc *StockUseCase) IncrementStock(ctx context.Context, partition, productID string, delta decimal.Decimal) (*entity.Product, error) {
	if delta.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	return uc.mutate(ctx, partition, productID, func(current decimal.Decimal) decimal.Decimal {
		return current.Add(delta)
	})
}

// DecrementStock resta delta (>= 0) con piso en cero: max(0, stock - delta).
// El recorte es una política de saturación deliberada, no un error silenciado.
func (uc *StockUseCase) DecrementStock(ctx context.Context, partition, productID string, delta decimal.Decimal) (*entity.Product, error) {
	if delta.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	return uc.mutate(ctx, partition, productID, func(current decimal.Decimal) decimal.Decimal {
		next := current.Sub(delta)
		if next.LessThan(decimal.Zero) {
			return decimal.Zero
		}
		return next
	})
}

// mutate bloquea la fila, aplica compute sobre el stock actual y persiste
// stock + estado en la misma transacción. Notifica stock bajo tras el commit.
func (uc *StockUseCase) mutate(ctx context.Context, partition, productID string, compute func(decimal.Decimal) decimal.Decimal) (*entity.Product, error) {
	var updated *entity.Product
	var wasCritical bool

	err := uc.txRunner.Run(ctx, func(
		generalRepo repository.GeneralProductRepository,
		detailedRepo repository.DetailedProductRepository,
		_ repository.MovementRepository,
		_ repository.LocationRepository,
	) error {
		store, err := storeFor(partition, generalRepo, detailedRepo)
		if err != nil {
			return err
		}
		product, err := store.GetForUpdate(ctx, productID)
		if err != nil {
			return err
		}
		if product == nil || !product.Active {
			return domain.ErrNotFound
		}
		wasCritical = product.Status == entity.StatusLow || product.Status == entity.StatusOut

		newStock := compute(product.Stock)
		status := entity.DeriveStatus(newStock, product.MinStock)
		if err := store.SetStock(ctx, productID, newStock, status); err != nil {
			return err
		}
		product.Stock = newStock
		product.Status = status
		updated = product
		return nil
	})
	if err != nil {
		return nil, err
	}

	if uc.notifier != nil && !wasCritical &&
		(updated.Status == entity.StatusLow || updated.Status == entity.StatusOut) {
		uc.notifier.LowStock(ctx, updated)
	}
	return updated, nil
}
