package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gastrostock/gastrostock-api/internal/application/dto"
	"github.com/gastrostock/gastrostock-api/internal/application/inventory"
	"github.com/gastrostock/gastrostock-api/internal/domain"
	"github.com/gastrostock/gastrostock-api/internal/domain/entity"
	"github.com/gastrostock/gastrostock-api/internal/domain/repository"
	"github.com/gastrostock/gastrostock-api/pkg/textnorm"
)

// ProductUseCase CRUD y búsqueda sobre las dos particiones de inventario.
// El stock nunca se escribe por aquí: al crear se fija el stock inicial y a
// partir de ahí solo las operaciones de stock y movimientos lo mueven.
type ProductUseCase struct {
	generalRepo  repository.GeneralProductRepository
	detailedRepo repository.DetailedProductRepository
	locationRepo repository.LocationRepository
	notifier     inventory.Notifier
	nameCache    *inventory.NameCache
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(
	generalRepo repository.GeneralProductRepository,
	detailedRepo repository.DetailedProductRepository,
	locationRepo repository.LocationRepository,
	notifier inventory.Notifier,
	nameCache *inventory.NameCache,
) *ProductUseCase {
	return &ProductUseCase{
		generalRepo:  generalRepo,
		detailedRepo: detailedRepo,
		locationRepo: locationRepo,
		notifier:     notifier,
		nameCache:    nameCache,
	}
}

// List productos de la partición, ordenados por nombre ascendente.
func (uc *ProductUseCase) List(ctx context.Context, partition string, activeOnly bool) ([]dto.ProductResponse, error) {
	products, err := uc.list(ctx, partition, activeOnly)
	if err != nil {
		return nil, err
	}
	return toProductResponses(products), nil
}

// ListByLocation productos detallados de un negocio.
func (uc *ProductUseCase) ListByLocation(ctx context.Context, locationID string, activeOnly bool) ([]dto.ProductResponse, error) {
	products, err := uc.detailedRepo.ListByLocation(ctx, locationID, activeOnly)
	if err != nil {
		return nil, err
	}
	return toProductResponses(products), nil
}

// GetByID devuelve el producto activo o ErrNotFound.
func (uc *ProductUseCase) GetByID(ctx context.Context, partition, id string) (*dto.ProductResponse, error) {
	product, err := uc.get(ctx, partition, id)
	if err != nil {
		return nil, err
	}
	resp := toProductResponse(product)
	return &resp, nil
}

// Search búsqueda insensible a acentos y mayúsculas sobre nombre y categoría.
// El filtrado ocurre en memoria sobre el listado activo: los catálogos son
// pequeños y la normalización Unicode no tiene equivalente portable en SQL.
func (uc *ProductUseCase) Search(ctx context.Context, partition, query string) ([]dto.ProductResponse, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return uc.List(ctx, partition, true)
	}
	products, err := uc.list(ctx, partition, true)
	if err != nil {
		return nil, err
	}
	matched := make([]*entity.Product, 0, len(products))
	for _, p := range products {
		if textnorm.Contains(p.Name, query) || textnorm.Contains(p.Category, query) {
			matched = append(matched, p)
		}
	}
	return toProductResponses(matched), nil
}

// Create da de alta un producto. Para la partición detallada NegocioID es
// obligatorio y debe referir a un negocio activo. El estado inicial se deriva
// de (stock, stock_minimo).
func (uc *ProductUseCase) Create(ctx context.Context, partition string, req dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Unit) == "" {
		return nil, domain.ErrInvalidInput
	}
	if req.Stock.LessThan(decimal.Zero) || req.MinStock.LessThan(decimal.Zero) || req.Price.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	product := &entity.Product{
		ID:        uuid.New().String(),
		Name:      strings.TrimSpace(req.Name),
		Category:  strings.TrimSpace(req.Category),
		Unit:      strings.TrimSpace(req.Unit),
		Stock:     req.Stock,
		MinStock:  req.MinStock,
		Price:     req.Price,
		Status:    entity.DeriveStatus(req.Stock, req.MinStock),
		ImageURL:  req.ImageURL,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	switch partition {
	case entity.PartitionGeneral:
		if err := uc.generalRepo.Create(ctx, product); err != nil {
			return nil, err
		}
	case entity.PartitionDetailed:
		if req.NegocioID == "" {
			return nil, domain.ErrInvalidInput
		}
		location, err := uc.locationRepo.GetByID(ctx, req.NegocioID)
		if err != nil {
			return nil, err
		}
		if location == nil || !location.Active {
			return nil, domain.ErrNotFound
		}
		locationID := req.NegocioID
		product.LocationID = &locationID
		if err := uc.detailedRepo.Create(ctx, product); err != nil {
			return nil, err
		}
	default:
		return nil, domain.ErrInvalidInput
	}

	uc.nameCache.Put(product.ID, product.Name)
	if uc.notifier != nil {
		uc.notifier.Event(ctx, "Producto creado",
			fmt.Sprintf("Se agregó %s al inventario %s", product.Name, partition),
			entity.NotificationInfo)
	}
	resp := toProductResponse(product)
	return &resp, nil
}

// Update actualización parcial de los campos descriptivos. Stock no se toca.
// Estado solo admite "medio" (curaduría manual); un cambio de stock_minimo
// recalcula el estado derivado salvo que el mismo patch fije "medio".
func (uc *ProductUseCase) Update(ctx context.Context, partition, id string, req dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	patch, err := buildPatch(req)
	if err != nil {
		return nil, err
	}
	if patch.Empty() {
		return nil, domain.ErrInvalidInput
	}

	product, err := uc.get(ctx, partition, id)
	if err != nil {
		return nil, err
	}

	renamed := false
	if patch.Name != nil {
		product.Name = *patch.Name
		renamed = true
	}
	if patch.Category != nil {
		product.Category = *patch.Category
	}
	if patch.Unit != nil {
		product.Unit = *patch.Unit
	}
	if patch.Price != nil {
		product.Price = *patch.Price
	}
	if patch.ImageURL != nil {
		product.ImageURL = *patch.ImageURL
	}
	if patch.MinStock != nil {
		product.MinStock = *patch.MinStock
		product.Status = entity.DeriveStatus(product.Stock, product.MinStock)
	}
	if patch.Status != nil {
		product.Status = *patch.Status
	}
	product.UpdatedAt = time.Now()

	switch partition {
	case entity.PartitionGeneral:
		err = uc.generalRepo.Update(ctx, product)
	case entity.PartitionDetailed:
		err = uc.detailedRepo.Update(ctx, product)
	default:
		err = domain.ErrInvalidInput
	}
	if err != nil {
		return nil, err
	}

	if renamed {
		uc.nameCache.Invalidate(id)
		uc.nameCache.Put(id, product.Name)
	}
	if uc.notifier != nil {
		uc.notifier.Event(ctx, "Producto actualizado",
			fmt.Sprintf("Se actualizó %s", product.Name), entity.NotificationInfo)
	}
	resp := toProductResponse(product)
	return &resp, nil
}

// Delete borrado lógico. El historial de movimientos del producto se conserva.
func (uc *ProductUseCase) Delete(ctx context.Context, partition, id string) error {
	product, err := uc.get(ctx, partition, id)
	if err != nil {
		return err
	}

	switch partition {
	case entity.PartitionGeneral:
		err = uc.generalRepo.SoftDelete(ctx, id)
	case entity.PartitionDetailed:
		err = uc.detailedRepo.SoftDelete(ctx, id)
	default:
		err = domain.ErrInvalidInput
	}
	if err != nil {
		return err
	}

	uc.nameCache.Invalidate(id)
	if uc.notifier != nil {
		uc.notifier.Event(ctx, "Producto eliminado",
			fmt.Sprintf("Se eliminó %s del inventario %s", product.Name, partition),
			entity.NotificationInfo)
	}
	return nil
}

func (uc *ProductUseCase) list(ctx context.Context, partition string, activeOnly bool) ([]*entity.Product, error) {
	switch partition {
	case entity.PartitionGeneral:
		return uc.generalRepo.List(ctx, activeOnly)
	case entity.PartitionDetailed:
		return uc.detailedRepo.List(ctx, activeOnly)
	default:
		return nil, domain.ErrInvalidInput
	}
}

func (uc *ProductUseCase) get(ctx context.Context, partition, id string) (*entity.Product, error) {
	var product *entity.Product
	var err error
	switch partition {
	case entity.PartitionGeneral:
		product, err = uc.generalRepo.GetByID(ctx, id)
	case entity.PartitionDetailed:
		product, err = uc.detailedRepo.GetByID(ctx, id)
	default:
		return nil, domain.ErrInvalidInput
	}
	if err != nil {
		return nil, err
	}
	if product == nil || !product.Active {
		return nil, domain.ErrNotFound
	}
	return product, nil
}

func buildPatch(req dto.UpdateProductRequest) (entity.ProductPatch, error) {
	patch := entity.ProductPatch{
		Name:     req.Name,
		Category: req.Category,
		Unit:     req.Unit,
		MinStock: req.MinStock,
		Price:    req.Price,
		ImageURL: req.ImageURL,
	}
	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		return patch, domain.ErrInvalidInput
	}
	if req.MinStock != nil && req.MinStock.LessThan(decimal.Zero) {
		return patch, domain.ErrInvalidInput
	}
	if req.Price != nil && req.Price.LessThan(decimal.Zero) {
		return patch, domain.ErrInvalidInput
	}
	if req.Status != nil {
		status := entity.Status(*req.Status)
		if status != entity.StatusMedium {
			return patch, domain.ErrInvalidInput
		}
		patch.Status = &status
	}
	return patch, nil
}

func toProductResponse(p *entity.Product) dto.ProductResponse {
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

func toProductResponses(products []*entity.Product) []dto.ProductResponse {
	out := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, toProductResponse(p))
	}
	return out
}
