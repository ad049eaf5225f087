package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// DashboardResponse resumen para la pantalla principal.
// TotalValueConverted solo aparece cuando existe la configuración tasa_cambio.
type DashboardResponse struct {
	TotalProducts       int                `json:"total_productos"`
	TotalValue          decimal.Decimal    `json:"valor_total"`
	TotalValueConverted *decimal.Decimal   `json:"valor_total_convertido,omitempty"`
	LowStockCount       int                `json:"alertas_stock"`
	RecentMovements     []MovementResponse `json:"movimientos_recientes"`
}

// ReportResponse KPIs, tendencia, distribución y top productos del período.
type ReportResponse struct {
	Period         string               `json:"periodo"`
	InventoryValue decimal.Decimal      `json:"valor_inventario"`
	PeriodLosses   decimal.Decimal      `json:"perdidas_periodo"`
	ActiveProducts int                  `json:"productos_activos"`
	StockAlerts    int                  `json:"alertas_stock"`
	Trend          []TrendPointDTO      `json:"tendencia"`
	Distribution   DistributionDTO      `json:"distribucion"`
	TopProducts    []TopProductDTO      `json:"top_productos"`
	CriticalStock  []ProductResponse    `json:"stock_critico"`
	GeneratedAt    time.Time            `json:"generado_en"`
}

// TrendPointDTO punto de la serie de tendencia.
type TrendPointDTO struct {
	Label string          `json:"etiqueta"`
	Value decimal.Decimal `json:"valor"`
}

// DistributionDTO porcentajes enteros por tipo de movimiento.
type DistributionDTO struct {
	Entries     int `json:"entradas"`
	Exits       int `json:"salidas"`
	Adjustments int `json:"ajustes"`
	Transfers   int `json:"traslados"`
}

// TopProductDTO producto con mayor volumen movido en la ventana.
type TopProductDTO struct {
	ProductID string          `json:"producto_id"`
	Name      string          `json:"nombre"`
	Quantity  decimal.Decimal `json:"cantidad"`
}

// NotificationResponse notificación del canal lateral.
type NotificationResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"titulo"`
	Message   string    `json:"mensaje"`
	Type      string    `json:"tipo"`
	Recipient string    `json:"destinatario,omitempty"`
	Read      bool      `json:"leida"`
	CreatedAt time.Time `json:"fecha_creacion"`
}
