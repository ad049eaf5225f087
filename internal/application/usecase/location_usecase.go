package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/gastrostock/gastrostock-api/internal/application/dto"
	"github.com/gastrostock/gastrostock-api/internal/application/inventory"
	"github.com/gastrostock/gastrostock-api/internal/domain"
	"github.com/gastrostock/gastrostock-api/internal/domain/entity"
	"github.com/gastrostock/gastrostock-api/internal/domain/repository"
)

// LocationUseCase CRUD de negocios. El borrado es lógico y arrastra en la
// misma transacción el inventario detallado del negocio; el historial de
// movimientos queda intacto.
type LocationUseCase struct {
	locationRepo repository.LocationRepository
	txRunner     inventory.TxRunner
	notifier     inventory.Notifier
}

// NewLocationUseCase construye el caso de uso.
func NewLocationUseCase(locationRepo repository.LocationRepository, txRunner inventory.TxRunner, notifier inventory.Notifier) *LocationUseCase {
	return &LocationUseCase{locationRepo: locationRepo, txRunner: txRunner, notifier: notifier}
}

// List negocios, ordenados por nombre ascendente.
func (uc *LocationUseCase) List(ctx context.Context, activeOnly bool) ([]dto.LocationResponse, error) {
	locations, err := uc.locationRepo.List(ctx, activeOnly)
	if err != nil {
		return nil, err
	}
	out := make([]dto.LocationResponse, 0, len(locations))
	for _, l := range locations {
		out = append(out, toLocationResponse(l))
	}
	return out, nil
}

// GetByID devuelve el negocio activo o ErrNotFound.
func (uc *LocationUseCase) GetByID(ctx context.Context, id string) (*dto.LocationResponse, error) {
	location, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := toLocationResponse(location)
	return &resp, nil
}

// Create da de alta un negocio.
func (uc *LocationUseCase) Create(ctx context.Context, req dto.CreateLocationRequest) (*dto.LocationResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	location := &entity.Location{
		ID:        uuid.New().String(),
		Name:      name,
		Address:   strings.TrimSpace(req.Address),
		Phone:     strings.TrimSpace(req.Phone),
		Email:     strings.TrimSpace(req.Email),
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.locationRepo.Create(ctx, location); err != nil {
		return nil, err
	}
	if uc.notifier != nil {
		uc.notifier.Event(ctx, "Negocio creado",
			fmt.Sprintf("Se registró el negocio %s", location.Name), entity.NotificationInfo)
	}
	resp := toLocationResponse(location)
	return &resp, nil
}

// Update actualización parcial de un negocio.
func (uc *LocationUseCase) Update(ctx context.Context, id string, req dto.UpdateLocationRequest) (*dto.LocationResponse, error) {
	if req.Name == nil && req.Address == nil && req.Phone == nil && req.Email == nil {
		return nil, domain.ErrInvalidInput
	}
	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		return nil, domain.ErrInvalidInput
	}

	location, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		location.Name = strings.TrimSpace(*req.Name)
	}
	if req.Address != nil {
		location.Address = strings.TrimSpace(*req.Address)
	}
	if req.Phone != nil {
		location.Phone = strings.TrimSpace(*req.Phone)
	}
	if req.Email != nil {
		location.Email = strings.TrimSpace(*req.Email)
	}
	location.UpdatedAt = time.Now()

	if err := uc.locationRepo.Update(ctx, location); err != nil {
		return nil, err
	}
	resp := toLocationResponse(location)
	return &resp, nil
}

// Delete borrado lógico del negocio y de todo su inventario detallado en una
// sola transacción: no quedan productos detallados activos apuntando a un
// negocio inactivo.
func (uc *LocationUseCase) Delete(ctx context.Context, id string) error {
	location, err := uc.get(ctx, id)
	if err != nil {
		return err
	}

	err = uc.txRunner.Run(ctx, func(
		_ repository.GeneralProductRepository,
		detailedRepo repository.DetailedProductRepository,
		_ repository.MovementRepository,
		locRepo repository.LocationRepository,
	) error {
		if err := locRepo.SoftDelete(ctx, id); err != nil {
			return err
		}
		return detailedRepo.SoftDeleteByLocation(ctx, id)
	})
	if err != nil {
		return err
	}

	if uc.notifier != nil {
		uc.notifier.Event(ctx, "Negocio eliminado",
			fmt.Sprintf("Se eliminó el negocio %s y su inventario", location.Name),
			entity.NotificationAlert)
	}
	return nil
}

func (uc *LocationUseCase) get(ctx context.Context, id string) (*entity.Location, error) {
	location, err := uc.locationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if location == nil || !location.Active {
		return nil, domain.ErrNotFound
	}
	return location, nil
}

func toLocationResponse(l *entity.Location) dto.LocationResponse {
	return dto.LocationResponse{
		ID:        l.ID,
		Name:      l.Name,
		Address:   l.Address,
		Phone:     l.Phone,
		Email:     l.Email,
		Active:    l.Active,
		CreatedAt: l.CreatedAt,
		UpdatedAt: l.UpdatedAt,
	}
}
