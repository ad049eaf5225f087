package repository

import (
	"context"

	"github.com/shopspring/decimal"
)

// SettingsRepository lectura del almacén clave/valor configuracion.
// El núcleo solo lee valores numéricos (ej. tasa_cambio); la escritura es
// responsabilidad de la capa excluida de administración.
type SettingsRepository interface {
	// GetDecimal devuelve el valor numérico de la clave o ErrNotFound.
	GetDecimal(ctx context.Context, key string) (decimal.Decimal, error)
}
