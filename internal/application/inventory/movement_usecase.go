package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gastrostock/gastrostock-api/internal/application/dto"
	"github.com/gastrostock/gastrostock-api/internal/domain"
	"github.com/gastrostock/gastrostock-api/internal/domain/entity"
	"github.com/gastrostock/gastrostock-api/internal/domain/repository"
)

// Ventana por defecto del conjunto de trabajo de dashboards y reportes.
const defaultWindowDays = 30

// MovementUseCase libro de movimientos: registra entradas, salidas y ajustes
// de forma transaccional (bloqueo de fila + mutación de stock + registro del
// movimiento en la misma tx) y consulta el historial.
//
// Los movimientos son estrictamente inmutables: no existe edición ni borrado.
// Las correcciones pasan por ReverseMovement, que registra un movimiento
// compensatorio y aplica el delta inverso de stock en una sola transacción.
type MovementUseCase struct {
	txRunner  TxRunner
	movRepo   repository.MovementRepository
	notifier  Notifier
	nameCache *NameCache
}

// NewMovementUseCase construye el caso de uso.
func NewMovementUseCase(txRunner TxRunner, movRepo repository.MovementRepository, notifier Notifier, nameCache *NameCache) *MovementUseCase {
	return &MovementUseCase{txRunner: txRunner, movRepo: movRepo, notifier: notifier, nameCache: nameCache}
}

// MovementInput entrada para registrar un movimiento.
// Quantity: magnitud positiva para entrada/salida; con signo para ajuste.
type MovementInput struct {
	ProductID string
	Partition string
	Type      string
	Quantity  decimal.Decimal
	Unit      string
	UnitPrice *decimal.Decimal
	Reason    string
	Reference string
	UserID    string
}

func (in MovementInput) validate() error {
	if in.ProductID == "" || !entity.ValidMovementType(in.Type) {
		return domain.ErrInvalidInput
	}
	if in.Partition != entity.PartitionGeneral && in.Partition != entity.PartitionDetailed {
		return domain.ErrInvalidInput
	}
	switch in.Type {
	case entity.MovementTypeEntry, entity.MovementTypeExit:
		if !in.Quantity.GreaterThan(decimal.Zero) {
			return domain.ErrInvalidInput
		}
	case entity.MovementTypeAdjustment:
		if in.Quantity.IsZero() {
			return domain.ErrInvalidInput
		}
	}
	if in.UnitPrice != nil && in.UnitPrice.LessThan(decimal.Zero) {
		return domain.ErrInvalidInput
	}
	return nil
}

// RegisterEntry registra una entrada: suma la cantidad al stock.
func (uc *MovementUseCase) RegisterEntry(ctx context.Context, in MovementInput) (*entity.Movement, error) {
	in.Type = entity.MovementTypeEntry
	return uc.register(ctx, in)
}

// RegisterExit registra una salida. Falla con InsufficientStock (llevando la
// cantidad disponible) si la cantidad supera el stock actual.
func (uc *MovementUseCase) RegisterExit(ctx context.Context, in MovementInput) (*entity.Movement, error) {
	in.Type = entity.MovementTypeExit
	return uc.register(ctx, in)
}

// RegisterAdjustment registra un ajuste con cantidad con signo.
// Un ajuste negativo satura en cero (max(0, stock + cantidad)).
func (uc *MovementUseCase) RegisterAdjustment(ctx context.Context, in MovementInput) (*entity.Movement, error) {
	in.Type = entity.MovementTypeAdjustment
	return uc.register(ctx, in)
}

func (uc *MovementUseCase) register(ctx context.Context, in MovementInput) (*entity.Movement, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	var recorded *entity.Movement
	var updated *entity.Product
	var wasCritical bool

	err := uc.txRunner.Run(ctx, func(
		generalRepo repository.GeneralProductRepository,
		detailedRepo repository.DetailedProductRepository,
		movRepo repository.MovementRepository,
		_ repository.LocationRepository,
	) error {
		store, err := storeFor(in.Partition, generalRepo, detailedRepo)
		if err != nil {
			return err
		}
		product, err := store.GetForUpdate(ctx, in.ProductID)
		if err != nil {
			return err
		}
		if product == nil || !product.Active {
			return domain.ErrNotFound
		}
		wasCritical = product.Status == entity.StatusLow || product.Status == entity.StatusOut

		newStock, err := applyMovement(product.Stock, in.Type, in.Quantity)
		if err != nil {
			return err
		}
		status := entity.DeriveStatus(newStock, product.MinStock)
		if err := store.SetStock(ctx, in.ProductID, newStock, status); err != nil {
			return err
		}
		product.Stock = newStock
		product.Status = status
		updated = product

		recorded = buildMovement(in, product, time.Now())
		return movRepo.Create(ctx, recorded)
	})
	if err != nil {
		return nil, err
	}

	uc.nameCache.Put(updated.ID, updated.Name)
	if uc.notifier != nil && !wasCritical &&
		(updated.Status == entity.StatusLow || updated.Status == entity.StatusOut) {
		uc.notifier.LowStock(ctx, updated)
	}
	return recorded, nil
}

// applyMovement calcula el stock resultante según el tipo.
func applyMovement(current decimal.Decimal, movementType string, qty decimal.Decimal) (decimal.Decimal, error) {
	switch movementType {
	case entity.MovementTypeEntry:
		return current.Add(qty), nil
	case entity.MovementTypeExit:
		if current.LessThan(qty) {
			return decimal.Zero, domain.NewInsufficientStock(current, qty)
		}
		return current.Sub(qty), nil
	case entity.MovementTypeAdjustment:
		next := current.Add(qty)
		if next.LessThan(decimal.Zero) {
			next = decimal.Zero
		}
		return next, nil
	}
	return decimal.Zero, domain.ErrInvalidInput
}

// buildMovement arma la fila del movimiento. El precio unitario por defecto
// es el precio actual del producto; el total siempre es |cantidad| × precio.
func buildMovement(in MovementInput, product *entity.Product, now time.Time) *entity.Movement {
	unit := in.Unit
	if unit == "" {
		unit = product.Unit
	}
	unitPrice := in.UnitPrice
	if unitPrice == nil {
		price := product.Price
		unitPrice = &price
	}
	total := in.Quantity.Abs().Mul(*unitPrice)

	m := &entity.Movement{
		ID:         uuid.New().String(),
		Type:       in.Type,
		ProductID:  in.ProductID,
		Partition:  in.Partition,
		LocationID: product.LocationID,
		Quantity:   in.Quantity,
		Unit:       unit,
		UnitPrice:  unitPrice,
		Total:      &total,
		Reason:     in.Reason,
		Reference:  in.Reference,
		CreatedAt:  now,
	}
	if in.UserID != "" {
		m.UserID = &in.UserID
	}
	return m
}

// ReverseMovement registra el movimiento compensatorio del movimiento dado y
// aplica el delta inverso de stock, todo en una transacción. Revertir una
// entrada exige stock suficiente (la compensación es una salida).
func (uc *MovementUseCase) ReverseMovement(ctx context.Context, movementID, reason, userID string) (*entity.Movement, error) {
	original, err := uc.movRepo.GetByID(ctx, movementID)
	if err != nil {
		return nil, err
	}
	if original == nil {
		return nil, domain.ErrNotFound
	}

	in := MovementInput{
		ProductID: original.ProductID,
		Partition: original.Partition,
		Quantity:  original.Quantity,
		Unit:      original.Unit,
		UnitPrice: original.UnitPrice,
		Reason:    reason,
		Reference: original.ID,
		UserID:    userID,
	}
	if in.Reason == "" {
		in.Reason = "reversa de movimiento"
	}
	switch original.Type {
	case entity.MovementTypeEntry:
		in.Type = entity.MovementTypeExit
	case entity.MovementTypeExit:
		in.Type = entity.MovementTypeEntry
	case entity.MovementTypeAdjustment:
		in.Type = entity.MovementTypeAdjustment
		in.Quantity = original.Quantity.Neg()
	default:
		return nil, domain.ErrInvalidInput
	}
	return uc.register(ctx, in)
}

// ListByProduct historial de un producto, más reciente primero, enriquecido
// con el nombre del producto desde el caché inyectado.
func (uc *MovementUseCase) ListByProduct(ctx context.Context, productID, partition string, limit int) ([]dto.MovementResponse, error) {
	if limit <= 0 {
		limit = 50
	}
	movements, err := uc.movRepo.ListByProduct(ctx, productID, partition, limit)
	if err != nil {
		return nil, err
	}
	return uc.toResponses(movements), nil
}

// ListByLocation historial de un negocio, más reciente primero.
func (uc *MovementUseCase) ListByLocation(ctx context.Context, locationID string, limit int) ([]dto.MovementResponse, error) {
	if limit <= 0 {
		limit = 50
	}
	movements, err := uc.movRepo.ListByLocation(ctx, locationID, limit)
	if err != nil {
		return nil, err
	}
	return uc.toResponses(movements), nil
}

// Recent ventana reciente de movimientos (por defecto 30 días), más reciente
// primero. Es el conjunto de trabajo de dashboards y reportes: consultas más
// allá de la ventana no están soportadas por este camino.
func (uc *MovementUseCase) Recent(ctx context.Context, windowDays int) ([]dto.MovementResponse, error) {
	if windowDays <= 0 {
		windowDays = defaultWindowDays
	}
	since := time.Now().AddDate(0, 0, -windowDays)
	movements, err := uc.movRepo.Recent(ctx, since)
	if err != nil {
		return nil, err
	}
	return uc.toResponses(movements), nil
}

func (uc *MovementUseCase) toResponses(movements []*entity.Movement) []dto.MovementResponse {
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
