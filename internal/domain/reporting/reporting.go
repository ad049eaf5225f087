package reporting

import (
	"math"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/gastrostock/gastrostock-api/internal/domain/entity"
)

const dashboardRecentMovements = 5 // movimientos en el widget del dashboard
const topProductsLimit = 5

// DashboardStats resumen para la pantalla principal.
type DashboardStats struct {
	TotalProducts   int
	TotalValue      decimal.Decimal // Σ stock × precio
	LowStockCount   int             // estado ∈ {bajo, agotado}
	RecentMovements []*entity.Movement
}

// ComputeDashboard calcula el resumen del dashboard. movements debe venir
// ordenado más reciente primero (como lo entrega MovementRepository.Recent).
func ComputeDashboard(products []*entity.Product, movements []*entity.Movement) DashboardStats {
	stats := DashboardStats{TotalValue: decimal.Zero, RecentMovements: []*entity.Movement{}}
	for _, p := range products {
		stats.TotalProducts++
		stats.TotalValue = stats.TotalValue.Add(p.Stock.Mul(p.Price))
		if p.Status == entity.StatusLow || p.Status == entity.StatusOut {
			stats.LowStockCount++
		}
	}
	n := dashboardRecentMovements
	if len(movements) < n {
		n = len(movements)
	}
	stats.RecentMovements = append(stats.RecentMovements, movements[:n]...)
	return stats
}

// KPIs indicadores del reporte por período.
type KPIs struct {
	InventoryValue decimal.Decimal // snapshot actual, no valor histórico al inicio del período
	PeriodLosses   decimal.Decimal // Σ |cantidad| × precio sobre salidas y ajustes de la ventana
	ActiveProducts int             // estado != agotado
	StockAlerts    int             // estado ∈ {bajo, agotado}
}

// ComputeKPIs calcula los KPIs del período. movements debe estar ya filtrado
// a la ventana. El cruce movimiento→precio es por ID de producto.
func ComputeKPIs(products []*entity.Product, movements []*entity.Movement) KPIs {
	k := KPIs{InventoryValue: decimal.Zero, PeriodLosses: decimal.Zero}
	priceByID := make(map[string]decimal.Decimal, len(products))
	for _, p := range products {
		k.InventoryValue = k.InventoryValue.Add(p.Stock.Mul(p.Price))
		priceByID[p.ID] = p.Price
		if p.Status != entity.StatusOut {
			k.ActiveProducts++
		}
		if p.Status == entity.StatusLow || p.Status == entity.StatusOut {
			k.StockAlerts++
		}
	}
	for _, m := range movements {
		if m.Type != entity.MovementTypeExit && m.Type != entity.MovementTypeAdjustment {
			continue
		}
		price, ok := priceByID[m.ProductID]
		if !ok {
			if m.UnitPrice != nil {
				price = *m.UnitPrice
			} else {
				continue
			}
		}
		k.PeriodLosses = k.PeriodLosses.Add(m.Quantity.Abs().Mul(price))
	}
	return k
}

// TrendPoint punto de la serie de tendencia.
type TrendPoint struct {
	Label string
	Value decimal.Decimal
}

// TrendSeries construye la serie de tendencia del período. Sin almacenamiento
// histórico de snapshots, cada bucket repite el valor actual del inventario:
// es una proyección plana documentada, no una serie temporal real.
func TrendSeries(p Period, now time.Time, currentValue decimal.Decimal) []TrendPoint {
	buckets := p.Buckets()
	series := make([]TrendPoint, 0, buckets)
	for i := buckets - 1; i >= 0; i-- {
		var label string
		if p == PeriodDaily {
			label = now.Add(-time.Duration(i) * time.Hour).Format("15:00")
		} else {
			label = now.AddDate(0, 0, -i).Format("02/01")
		}
		series = append(series, TrendPoint{Label: label, Value: currentValue})
	}
	return series
}

// Distribution porcentajes enteros por tipo de movimiento dentro de la ventana.
// Las dos piernas de un traslado (mismo TransactionID) cuentan como un único
// traslado, no como entrada y salida independientes.
type Distribution struct {
	Entries     int
	Exits       int
	Adjustments int
	Transfers   int
}

// ComputeDistribution calcula la distribución. Ventana vacía produce todo 0%
// (el denominador se fija en mínimo 1 para evitar división por cero).
func ComputeDistribution(movements []*entity.Movement) Distribution {
	legsByTx := make(map[string]int)
	for _, m := range movements {
		if m.TransactionID != "" {
			legsByTx[m.TransactionID]++
		}
	}

	var entries, exits, adjustments, transfers int
	countedTx := make(map[string]bool)
	for _, m := range movements {
		if m.TransactionID != "" && legsByTx[m.TransactionID] >= 2 {
			if !countedTx[m.TransactionID] {
				countedTx[m.TransactionID] = true
				transfers++
			}
			continue
		}
		switch m.Type {
		case entity.MovementTypeEntry:
			entries++
		case entity.MovementTypeExit:
			exits++
		case entity.MovementTypeAdjustment:
			adjustments++
		}
	}

	total := entries + exits + adjustments + transfers
	if total < 1 {
		total = 1
	}
	pct := func(count int) int {
		return int(math.Round(float64(count) * 100 / float64(total)))
	}
	return Distribution{
		Entries:     pct(entries),
		Exits:       pct(exits),
		Adjustments: pct(adjustments),
		Transfers:   pct(transfers),
	}
}

// TopProduct producto con mayor volumen movido en la ventana.
type TopProduct struct {
	ProductID string
	Name      string
	Quantity  decimal.Decimal // Σ |cantidad| de sus movimientos
}

// TopProducts suma las cantidades movidas por producto (cruce por ID) y
// devuelve los 5 primeros en orden descendente. Productos ya no presentes en
// el catálogo conservan su ID como etiqueta.
func TopProducts(products []*entity.Product, movements []*entity.Movement) []TopProduct {
	nameByID := make(map[string]string, len(products))
	for _, p := range products {
		nameByID[p.ID] = p.Name
	}
	qtyByID := make(map[string]decimal.Decimal)
	var order []string
	for _, m := range movements {
		if _, seen := qtyByID[m.ProductID]; !seen {
			order = append(order, m.ProductID)
		}
		qtyByID[m.ProductID] = qtyByID[m.ProductID].Add(m.Quantity.Abs())
	}
	top := make([]TopProduct, 0, len(order))
	for _, id := range order {
		name := nameByID[id]
		if name == "" {
			name = id
		}
		top = append(top, TopProduct{ProductID: id, Name: name, Quantity: qtyByID[id]})
	}
	sort.SliceStable(top, func(i, j int) bool {
		return top[i].Quantity.GreaterThan(top[j].Quantity)
	})
	if len(top) > topProductsLimit {
		top = top[:topProductsLimit]
	}
	return top
}

// CriticalStock devuelve los productos con estado bajo o agotado,
// ordenados por nombre ascendente.
func CriticalStock(products []*entity.Product) []*entity.Product {
	critical := []*entity.Product{}
	for _, p := range products {
		if p.Status == entity.StatusLow || p.Status == entity.StatusOut {
			critical = append(critical, p)
		}
	}
	sort.SliceStable(critical, func(i, j int) bool {
		return critical[i].Name < critical[j].Name
	})
	return critical
}
