package analytics_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gastrostock/gastrostock-api/internal/application/analytics"
	"github.com/gastrostock/gastrostock-api/internal/application/inventory"
	"github.com/gastrostock/gastrostock-api/internal/domain"
	"github.com/gastrostock/gastrostock-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Dobles en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeProducts struct {
	items []*entity.Product
}

func (r *fakeProducts) GetByID(context.Context, string) (*entity.Product, error) { return nil, nil }
func (r *fakeProducts) GetForUpdate(context.Context, string) (*entity.Product, error) {
	return nil, nil
}
func (r *fakeProducts) SetStock(context.Context, string, decimal.Decimal, entity.Status) error {
	return nil
}
func (r *fakeProducts) List(context.Context, bool) ([]*entity.Product, error) {
	return r.items, nil
}
func (r *fakeProducts) ListByLocation(context.Context, string, bool) ([]*entity.Product, error) {
	return nil, nil
}
func (r *fakeProducts) Create(context.Context, *entity.Product) error      { return nil }
func (r *fakeProducts) Update(context.Context, *entity.Product) error      { return nil }
func (r *fakeProducts) SoftDelete(context.Context, string) error           { return nil }
func (r *fakeProducts) SoftDeleteByLocation(context.Context, string) error { return nil }

type fakeMovements struct {
	items []*entity.Movement
}

func (r *fakeMovements) Create(context.Context, *entity.Movement) error { return nil }
func (r *fakeMovements) GetByID(context.Context, string) (*entity.Movement, error) {
	return nil, nil
}
func (r *fakeMovements) ListByProduct(context.Context, string, string, int) ([]*entity.Movement, error) {
	return nil, nil
}
func (r *fakeMovements) ListByLocation(context.Context, string, int) ([]*entity.Movement, error) {
	return nil, nil
}
func (r *fakeMovements) ListByType(context.Context, string, int) ([]*entity.Movement, error) {
	return nil, nil
}
func (r *fakeMovements) Recent(context.Context, time.Time) ([]*entity.Movement, error) {
	return r.items, nil
}

type fakeSettings struct {
	values map[string]decimal.Decimal
}

func (r *fakeSettings) GetDecimal(_ context.Context, key string) (decimal.Decimal, error) {
	v, ok := r.values[key]
	if !ok {
		return decimal.Zero, domain.ErrNotFound
	}
	return v, nil
}

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func product(id, name, stock, price, minStock string) *entity.Product {
	return &entity.Product{
		ID:       id,
		Name:     name,
		Stock:    dec(stock),
		MinStock: dec(minStock),
		Price:    dec(price),
		Status:   entity.DeriveStatus(dec(stock), dec(minStock)),
		Active:   true,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests DashboardUseCase
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: el dashboard combina las dos particiones y valora a precio actual.
func TestDashboardUseCase_CombinaParticiones(t *testing.T) {
	general := &fakeProducts{items: []*entity.Product{
		product("g1", "Harina", "10", "2", "3"), // valor 20
		product("g2", "Queso", "1", "5", "4"),   // valor 5, bajo
	}}
	detailed := &fakeProducts{items: []*entity.Product{
		product("d1", "Harina", "4", "3", "1"), // valor 12
	}}
	movements := &fakeMovements{items: []*entity.Movement{
		{ID: "m1", Type: entity.MovementTypeEntry, ProductID: "g1", Quantity: dec("2")},
	}}
	settings := &fakeSettings{values: map[string]decimal.Decimal{}}

	uc := analytics.NewDashboardUseCase(general, detailed, movements, settings, inventory.NewNameCache())
	out, err := uc.Get(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, out.TotalProducts)
	assert.True(t, dec("37").Equal(out.TotalValue), "20 + 5 + 12")
	assert.Equal(t, 1, out.LowStockCount)
	require.Len(t, out.RecentMovements, 1)
	assert.Nil(t, out.TotalValueConverted, "sin tasa_cambio no hay conversión")
}

// Caso 2: con tasa_cambio configurada aparece el valor convertido.
func TestDashboardUseCase_ConversionDeMoneda(t *testing.T) {
	general := &fakeProducts{items: []*entity.Product{
		product("g1", "Harina", "10", "2", "3"),
	}}
	settings := &fakeSettings{values: map[string]decimal.Decimal{
		"tasa_cambio": dec("4000"),
	}}

	uc := analytics.NewDashboardUseCase(general, &fakeProducts{}, &fakeMovements{}, settings, inventory.NewNameCache())
	out, err := uc.Get(context.Background())
	require.NoError(t, err)

	require.NotNil(t, out.TotalValueConverted)
	assert.True(t, dec("80000").Equal(*out.TotalValueConverted), "20 × 4000")
}

// Caso 3: inventario vacío produce ceros seguros, no errores.
func TestDashboardUseCase_InventarioVacio(t *testing.T) {
	uc := analytics.NewDashboardUseCase(&fakeProducts{}, &fakeProducts{}, &fakeMovements{},
		&fakeSettings{values: map[string]decimal.Decimal{}}, inventory.NewNameCache())
	out, err := uc.Get(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 0, out.TotalProducts)
	assert.True(t, out.TotalValue.IsZero())
	assert.Empty(t, out.RecentMovements)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests ReportsUseCase
// ──────────────────────────────────────────────────────────────────────────────

// Caso 4: el reporte respeta el período y agrupa las piernas de un traslado
// como un único traslado en la distribución.
func TestReportsUseCase_DistribucionConTraslado(t *testing.T) {
	general := &fakeProducts{items: []*entity.Product{
		product("g1", "Harina", "10", "2", "3"),
	}}
	movements := &fakeMovements{items: []*entity.Movement{
		{ID: "m1", Type: entity.MovementTypeExit, ProductID: "g1", Quantity: dec("2"), TransactionID: "t1"},
		{ID: "m2", Type: entity.MovementTypeEntry, ProductID: "d1", Quantity: dec("2"), TransactionID: "t1"},
		{ID: "m3", Type: entity.MovementTypeEntry, ProductID: "g1", Quantity: dec("5")},
	}}

	uc := analytics.NewReportsUseCase(general, &fakeProducts{}, movements)
	out, err := uc.Get(context.Background(), "semanal")
	require.NoError(t, err)

	assert.Equal(t, "semanal", out.Period)
	assert.Equal(t, 50, out.Distribution.Transfers, "1 traslado de 2 operaciones")
	assert.Equal(t, 50, out.Distribution.Entries)
	assert.Len(t, out.Trend, 7, "semanal lleva 7 puntos")
}

// Caso 5: período no reconocido es entrada inválida; vacío cae a mensual.
func TestReportsUseCase_PeriodoInvalido(t *testing.T) {
	uc := analytics.NewReportsUseCase(&fakeProducts{}, &fakeProducts{}, &fakeMovements{})

	_, err := uc.Get(context.Background(), "bimestral")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	out, err := uc.Get(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, "mensual", out.Period)
}
