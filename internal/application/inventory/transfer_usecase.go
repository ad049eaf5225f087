package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gastrostock/gastrostock-api/internal/domain"
	"github.com/gastrostock/gastrostock-api/internal/domain/entity"
	"github.com/gastrostock/gastrostock-api/internal/domain/repository"
)

// TransferUseCase traslada stock del inventario general al detallado de un
// negocio. El traslado entero ocurre en una transacción: bloqueo del producto
// general, verificación de suficiencia, alta del producto detallado, descuento
// del general y las dos piernas del movimiento (salida general + entrada
// detallada) compartiendo un TransactionID. O se confirma todo o nada.
type TransferUseCase struct {
	txRunner  TxRunner
	notifier  Notifier
	nameCache *NameCache
}

// NewTransferUseCase construye el caso de uso.
func NewTransferUseCase(txRunner TxRunner, notifier Notifier, nameCache *NameCache) *TransferUseCase {
	return &TransferUseCase{txRunner: txRunner, notifier: notifier, nameCache: nameCache}
}

// TransferInput entrada del traslado.
type TransferInput struct {
	LocationID       string
	GeneralProductID string
	Quantity         decimal.Decimal
	MinStock         decimal.Decimal
	UserID           string
}

// TransferResult producto detallado creado y producto general actualizado.
type TransferResult struct {
	Detailed      *entity.Product
	General       *entity.Product
	TransactionID string
}

// Transfer ejecuta el traslado. Falla con ErrInvalidInput si cantidad o stock
// mínimo no son positivos, ErrNotFound si el negocio o el producto general no
// existen o están inactivos, e InsufficientStock (con la cantidad disponible)
// si la cantidad supera el stock general.
func (uc *TransferUseCase) Transfer(ctx context.Context, in TransferInput) (*TransferResult, error) {
	if in.LocationID == "" || in.GeneralProductID == "" {
		return nil, domain.ErrInvalidInput
	}
	if !in.Quantity.GreaterThan(decimal.Zero) || !in.MinStock.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}

	var result *TransferResult
	var generalWasCritical bool

	err := uc.txRunner.Run(ctx, func(
		generalRepo repository.GeneralProductRepository,
		detailedRepo repository.DetailedProductRepository,
		movRepo repository.MovementRepository,
		locRepo repository.LocationRepository,
	) error {
		location, err := locRepo.GetByID(ctx, in.LocationID)
		if err != nil {
			return err
		}
		if location == nil || !location.Active {
			return domain.ErrNotFound
		}

		general, err := generalRepo.GetForUpdate(ctx, in.GeneralProductID)
		if err != nil {
			return err
		}
		if general == nil || !general.Active {
			return domain.ErrNotFound
		}
		if general.Stock.LessThan(in.Quantity) {
			return domain.NewInsufficientStock(general.Stock, in.Quantity)
		}
		generalWasCritical = general.Status == entity.StatusLow || general.Status == entity.StatusOut

		now := time.Now()
		locationID := in.LocationID
		sourceID := general.ID
		detailed := &entity.Product{
			ID:         uuid.New().String(),
			Name:       general.Name,
			Category:   general.Category,
			Unit:       general.Unit,
			Stock:      in.Quantity,
			MinStock:   in.MinStock,
			Price:      general.Price,
			Status:     entity.DeriveStatus(in.Quantity, in.MinStock),
			ImageURL:   general.ImageURL,
			Active:     true,
			LocationID: &locationID,
			SourceID:   &sourceID,
			CreatedAt:  now,
			UpdatedAt:  now,
		}
		if err := detailedRepo.Create(ctx, detailed); err != nil {
			return err
		}

		newGeneralStock := general.Stock.Sub(in.Quantity)
		generalStatus := entity.DeriveStatus(newGeneralStock, general.MinStock)
		if err := generalRepo.SetStock(ctx, general.ID, newGeneralStock, generalStatus); err != nil {
			return err
		}
		general.Stock = newGeneralStock
		general.Status = generalStatus

		txID := uuid.New().String()
		price := general.Price
		total := in.Quantity.Mul(price)
		reason := fmt.Sprintf("traslado a %s", location.Name)

		exitLeg := &entity.Movement{
			ID:            uuid.New().String(),
			Type:          entity.MovementTypeExit,
			ProductID:     general.ID,
			Partition:     entity.PartitionGeneral,
			TransactionID: txID,
			Quantity:      in.Quantity,
			Unit:          general.Unit,
			UnitPrice:     &price,
			Total:         &total,
			Reason:        reason,
			CreatedAt:     now,
		}
		entryLeg := &entity.Movement{
			ID:            uuid.New().String(),
			Type:          entity.MovementTypeEntry,
			ProductID:     detailed.ID,
			Partition:     entity.PartitionDetailed,
			LocationID:    &locationID,
			TransactionID: txID,
			Quantity:      in.Quantity,
			Unit:          general.Unit,
			UnitPrice:     &price,
			Total:         &total,
			Reason:        reason,
			CreatedAt:     now,
		}
		if in.UserID != "" {
			userID := in.UserID
			exitLeg.UserID = &userID
			entryLeg.UserID = &userID
		}
		if err := movRepo.Create(ctx, exitLeg); err != nil {
			return err
		}
		if err := movRepo.Create(ctx, entryLeg); err != nil {
			return err
		}

		result = &TransferResult{Detailed: detailed, General: general, TransactionID: txID}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.nameCache.Put(result.General.ID, result.General.Name)
	uc.nameCache.Put(result.Detailed.ID, result.Detailed.Name)

	if uc.notifier != nil {
		uc.notifier.Event(ctx, "Traslado completado",
			fmt.Sprintf("Se trasladaron %s %s de %s", in.Quantity.String(), result.General.Unit, result.General.Name),
			entity.NotificationInfo)
		if !generalWasCritical &&
			(result.General.Status == entity.StatusLow || result.General.Status == entity.StatusOut) {
			uc.notifier.LowStock(ctx, result.General)
		}
		if result.Detailed.Status == entity.StatusLow || result.Detailed.Status == entity.StatusOut {
			uc.notifier.LowStock(ctx, result.Detailed)
		}
	}
	return result, nil
}
