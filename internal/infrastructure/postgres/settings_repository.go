package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/gastrostock/gastrostock-api/internal/domain"
	"github.com/gastrostock/gastrostock-api/internal/domain/repository"
)

var _ repository.SettingsRepository = (*SettingsRepo)(nil)

// SettingsRepo lectura del almacén clave/valor configuracion.
type SettingsRepo struct {
	q Querier
}

// NewSettingsRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSettingsRepository(q Querier) *SettingsRepo {
	return &SettingsRepo{q: q}
}

// GetDecimal devuelve el valor numérico de la clave, o ErrNotFound si no existe.
func (r *SettingsRepo) GetDecimal(ctx context.Context, key string) (decimal.Decimal, error) {
	var raw string
	err := r.q.QueryRow(ctx, `SELECT valor FROM configuracion WHERE clave = $1`, key).Scan(&raw)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Zero, domain.ErrNotFound
		}
		return decimal.Zero, domain.WrapBackend(fmt.Sprintf("get configuración %q", key), err)
	}
	value, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("configuración %q no es numérica: %w", key, err)
	}
	return value, nil
}
