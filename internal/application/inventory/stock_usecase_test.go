package inventory_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gastrostock/gastrostock-api/internal/application/inventory"
	"github.com/gastrostock/gastrostock-api/internal/domain"
	"github.com/gastrostock/gastrostock-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests StockUseCase
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: fijar stock absoluto recalcula el estado derivado.
func TestStockUseCase_SetStockRecalculaEstado(t *testing.T) {
	f := newEngineFixture()
	f.seedGeneral("p1", "Harina", "45", "10", "2.50")
	uc := inventory.NewStockUseCase(f.tx, f.notifier)

	updated, err := uc.SetStock(context.Background(), entity.PartitionGeneral, "p1", dec("8"))
	require.NoError(t, err)

	assert.True(t, dec("8").Equal(updated.Stock))
	assert.Equal(t, entity.StatusLow, updated.Status,
		"0 < stock <= minimo debe derivar bajo")
}

// Caso 2: stock negativo se rechaza antes de tocar el almacén.
func TestStockUseCase_SetStockNegativoRechazado(t *testing.T) {
	f := newEngineFixture()
	f.seedGeneral("p1", "Harina", "45", "10", "2.50")
	uc := inventory.NewStockUseCase(f.tx, f.notifier)

	_, err := uc.SetStock(context.Background(), entity.PartitionGeneral, "p1", dec("-1"))
	assert.ErrorIs(t, err, domain.ErrNegativeStock)

	stored, _ := f.general.GetByID(context.Background(), "p1")
	assert.True(t, dec("45").Equal(stored.Stock), "el stock no debe cambiar")
}

// Caso 3: decrementar más que el stock disponible satura en cero y deja el
// producto agotado, notificando la transición a estado crítico.
func TestStockUseCase_DecrementSaturaEnCero(t *testing.T) {
	f := newEngineFixture()
	f.seedGeneral("p1", "Harina", "5", "10", "2.50")
	uc := inventory.NewStockUseCase(f.tx, f.notifier)

	updated, err := uc.DecrementStock(context.Background(), entity.PartitionGeneral, "p1", dec("8"))
	require.NoError(t, err)

	assert.True(t, updated.Stock.IsZero(), "max(0, 5-8) debe ser 0")
	assert.Equal(t, entity.StatusOut, updated.Status)
}

// Caso 3b: la notificación de stock bajo solo dispara al ENTRAR en estado
// crítico, no si el producto ya estaba crítico.
func TestStockUseCase_NotificaSoloTransicionACritico(t *testing.T) {
	f := newEngineFixture()
	f.seedGeneral("p1", "Harina", "20", "10", "2.50")
	uc := inventory.NewStockUseCase(f.tx, f.notifier)

	_, err := uc.DecrementStock(context.Background(), entity.PartitionGeneral, "p1", dec("12"))
	require.NoError(t, err)
	assert.Equal(t, []string{"p1"}, f.notifier.lowStock,
		"la primera caída a bajo debe notificar")

	_, err = uc.DecrementStock(context.Background(), entity.PartitionGeneral, "p1", dec("3"))
	require.NoError(t, err)
	assert.Len(t, f.notifier.lowStock, 1,
		"un producto ya crítico no debe volver a notificar")
}

// Caso 4: incrementar saca al producto del estado bajo.
func TestStockUseCase_IncrementRecuperaDisponible(t *testing.T) {
	f := newEngineFixture()
	f.seedGeneral("p1", "Harina", "5", "10", "2.50")
	uc := inventory.NewStockUseCase(f.tx, f.notifier)

	updated, err := uc.IncrementStock(context.Background(), entity.PartitionGeneral, "p1", dec("20"))
	require.NoError(t, err)

	assert.True(t, dec("25").Equal(updated.Stock))
	assert.Equal(t, entity.StatusAvailable, updated.Status)
	assert.Empty(t, f.notifier.lowStock, "subir stock no debe generar alerta")
}

// Caso 5: delta negativo en increment/decrement es entrada inválida.
func TestStockUseCase_DeltaNegativoInvalido(t *testing.T) {
	f := newEngineFixture()
	f.seedGeneral("p1", "Harina", "5", "10", "2.50")
	uc := inventory.NewStockUseCase(f.tx, f.notifier)

	_, err := uc.IncrementStock(context.Background(), entity.PartitionGeneral, "p1", dec("-1"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.DecrementStock(context.Background(), entity.PartitionGeneral, "p1", decimal.NewFromInt(-2))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Caso 6: producto inexistente o inactivo devuelve ErrNotFound.
func TestStockUseCase_ProductoInexistente(t *testing.T) {
	f := newEngineFixture()
	uc := inventory.NewStockUseCase(f.tx, f.notifier)

	_, err := uc.SetStock(context.Background(), entity.PartitionGeneral, "no-existe", dec("10"))
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
