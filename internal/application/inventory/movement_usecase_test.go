package inventory_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gastrostock/gastrostock-api/internal/application/inventory"
	"github.com/gastrostock/gastrostock-api/internal/domain"
	"github.com/gastrostock/gastrostock-api/internal/domain/entity"
)

func newMovementUseCase(f *engineFixture) *inventory.MovementUseCase {
	return inventory.NewMovementUseCase(f.tx, f.mov, f.notifier, inventory.NewNameCache())
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests MovementUseCase
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: una entrada suma al stock y deja un movimiento con total calculado.
func TestMovementUseCase_EntradaSumaYRegistra(t *testing.T) {
	f := newEngineFixture()
	f.seedGeneral("p1", "Harina", "10", "5", "2.50")
	uc := newMovementUseCase(f)

	m, err := uc.RegisterEntry(context.Background(), inventory.MovementInput{
		ProductID: "p1",
		Partition: entity.PartitionGeneral,
		Quantity:  dec("4"),
		Reason:    "compra semanal",
	})
	require.NoError(t, err)

	stored, _ := f.general.GetByID(context.Background(), "p1")
	assert.True(t, dec("14").Equal(stored.Stock))

	require.Len(t, f.mov.movements, 1)
	assert.Equal(t, entity.MovementTypeEntry, m.Type)
	assert.True(t, dec("10").Equal(*m.Total), "total = 4 × 2.50 (precio del producto)")
	assert.Equal(t, "kg", m.Unit, "la unidad por defecto es la del producto")
}

// Caso 2: una salida mayor al stock falla con el disponible en el error y no
// deja rastro ni en el stock ni en el historial.
func TestMovementUseCase_SalidaInsuficienteSinEfectos(t *testing.T) {
	f := newEngineFixture()
	f.seedGeneral("p1", "Harina", "10", "5", "2.50")
	uc := newMovementUseCase(f)

	_, err := uc.RegisterExit(context.Background(), inventory.MovementInput{
		ProductID: "p1",
		Partition: entity.PartitionGeneral,
		Quantity:  dec("15"),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	var insufficient *domain.InsufficientStockError
	require.True(t, errors.As(err, &insufficient))
	assert.True(t, dec("10").Equal(insufficient.Available),
		"el error debe llevar la cantidad disponible")

	stored, _ := f.general.GetByID(context.Background(), "p1")
	assert.True(t, dec("10").Equal(stored.Stock), "el stock no debe cambiar")
	assert.Empty(t, f.mov.movements, "no debe registrarse ningún movimiento")
}

// Caso 3: un ajuste negativo mayor al stock satura en cero (agotado).
func TestMovementUseCase_AjusteNegativoSatura(t *testing.T) {
	f := newEngineFixture()
	f.seedGeneral("p1", "Harina", "3", "5", "2.50")
	uc := newMovementUseCase(f)

	_, err := uc.RegisterAdjustment(context.Background(), inventory.MovementInput{
		ProductID: "p1",
		Partition: entity.PartitionGeneral,
		Quantity:  dec("-7"),
		Reason:    "merma",
	})
	require.NoError(t, err)

	stored, _ := f.general.GetByID(context.Background(), "p1")
	assert.True(t, stored.Stock.IsZero())
	assert.Equal(t, entity.StatusOut, stored.Status)
}

// Caso 4: cantidades inválidas por tipo.
func TestMovementUseCase_CantidadesInvalidas(t *testing.T) {
	f := newEngineFixture()
	f.seedGeneral("p1", "Harina", "10", "5", "2.50")
	uc := newMovementUseCase(f)
	ctx := context.Background()

	_, err := uc.RegisterEntry(ctx, inventory.MovementInput{
		ProductID: "p1", Partition: entity.PartitionGeneral, Quantity: dec("0"),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "entrada exige cantidad positiva")

	_, err = uc.RegisterExit(ctx, inventory.MovementInput{
		ProductID: "p1", Partition: entity.PartitionGeneral, Quantity: dec("-2"),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "salida exige cantidad positiva")

	_, err = uc.RegisterAdjustment(ctx, inventory.MovementInput{
		ProductID: "p1", Partition: entity.PartitionGeneral, Quantity: dec("0"),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "ajuste cero no tiene sentido")
}

// Caso 5: revertir una entrada registra la salida compensatoria con Reference
// apuntando al movimiento original y deshace el efecto sobre el stock.
func TestMovementUseCase_ReversaDeEntrada(t *testing.T) {
	f := newEngineFixture()
	f.seedGeneral("p1", "Harina", "10", "5", "2.50")
	uc := newMovementUseCase(f)
	ctx := context.Background()

	original, err := uc.RegisterEntry(ctx, inventory.MovementInput{
		ProductID: "p1", Partition: entity.PartitionGeneral, Quantity: dec("4"),
	})
	require.NoError(t, err)

	reversal, err := uc.ReverseMovement(ctx, original.ID, "registro duplicado", "u1")
	require.NoError(t, err)

	assert.Equal(t, entity.MovementTypeExit, reversal.Type)
	assert.Equal(t, original.ID, reversal.Reference)
	assert.True(t, original.Quantity.Equal(reversal.Quantity))

	stored, _ := f.general.GetByID(ctx, "p1")
	assert.True(t, dec("10").Equal(stored.Stock), "la reversa deshace la entrada")
	assert.Len(t, f.mov.movements, 2, "el original queda intacto en el historial")
}

// Caso 5b: revertir un ajuste invierte el signo de la cantidad.
func TestMovementUseCase_ReversaDeAjuste(t *testing.T) {
	f := newEngineFixture()
	f.seedGeneral("p1", "Harina", "10", "5", "2.50")
	uc := newMovementUseCase(f)
	ctx := context.Background()

	original, err := uc.RegisterAdjustment(ctx, inventory.MovementInput{
		ProductID: "p1", Partition: entity.PartitionGeneral, Quantity: dec("-3"),
	})
	require.NoError(t, err)

	reversal, err := uc.ReverseMovement(ctx, original.ID, "", "")
	require.NoError(t, err)
	assert.Equal(t, entity.MovementTypeAdjustment, reversal.Type)
	assert.True(t, dec("3").Equal(reversal.Quantity))

	stored, _ := f.general.GetByID(ctx, "p1")
	assert.True(t, dec("10").Equal(stored.Stock))
}

// Caso 5c: revertir un movimiento inexistente devuelve ErrNotFound.
func TestMovementUseCase_ReversaInexistente(t *testing.T) {
	f := newEngineFixture()
	uc := newMovementUseCase(f)

	_, err := uc.ReverseMovement(context.Background(), "no-existe", "", "")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Caso 6: el historial por producto sale más reciente primero y enriquecido
// con el nombre cacheado.
func TestMovementUseCase_HistorialEnriquecido(t *testing.T) {
	f := newEngineFixture()
	f.seedGeneral("p1", "Harina", "10", "5", "2.50")
	uc := newMovementUseCase(f)
	ctx := context.Background()

	_, err := uc.RegisterEntry(ctx, inventory.MovementInput{
		ProductID: "p1", Partition: entity.PartitionGeneral, Quantity: dec("4"),
	})
	require.NoError(t, err)
	_, err = uc.RegisterExit(ctx, inventory.MovementInput{
		ProductID: "p1", Partition: entity.PartitionGeneral, Quantity: dec("2"),
	})
	require.NoError(t, err)

	history, err := uc.ListByProduct(ctx, "p1", entity.PartitionGeneral, 10)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, entity.MovementTypeExit, history[0].Type, "más reciente primero")
	assert.Equal(t, "Harina", history[0].ProductName)
}
