// Package reporting contiene los cálculos puros de agregación sobre el
// inventario actual y la ventana reciente de movimientos. Sin persistencia
// propia: todas las reducciones tienen identidad segura sobre entrada vacía.
package reporting

import "time"

// Period ventana seleccionable para los KPIs de reporte.
type Period string

// Períodos soportados.
const (
	PeriodDaily     Period = "diario"     // 24 horas
	PeriodWeekly    Period = "semanal"    // 7 días
	PeriodBiweekly  Period = "quincenal"  // 15 días
	PeriodMonthly   Period = "mensual"    // 30 días
	PeriodQuarterly Period = "trimestral" // 90 días
	PeriodAnnual    Period = "anual"      // 365 días
)

// Window devuelve la duración de la ventana del período.
func (p Period) Window() time.Duration {
	switch p {
	case PeriodDaily:
		return 24 * time.Hour
	case PeriodWeekly:
		return 7 * 24 * time.Hour
	case PeriodBiweekly:
		return 15 * 24 * time.Hour
	case PeriodQuarterly:
		return 90 * 24 * time.Hour
	case PeriodAnnual:
		return 365 * 24 * time.Hour
	default:
		return 30 * 24 * time.Hour
	}
}

// Buckets devuelve cuántos puntos lleva la serie de tendencia del período:
// 24 buckets horarios para diario, 7 diarios para el resto.
func (p Period) Buckets() int {
	if p == PeriodDaily {
		return 24
	}
	return 7
}

// Valid indica si p es un período reconocido.
func (p Period) Valid() bool {
	switch p {
	case PeriodDaily, PeriodWeekly, PeriodBiweekly, PeriodMonthly, PeriodQuarterly, PeriodAnnual:
		return true
	}
	return false
}
