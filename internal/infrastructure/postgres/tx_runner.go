package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gastrostock/gastrostock-api/internal/application/inventory"
	"github.com/gastrostock/gastrostock-api/internal/domain/repository"
)

var _ inventory.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
// Toda secuencia multi-paso del núcleo (traslados, reversas, cascadas de
// borrado) corre por aquí: o se aplica completa o no se aplica nada.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace
// Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(
	generalRepo repository.GeneralProductRepository,
	detailedRepo repository.DetailedProductRepository,
	movRepo repository.MovementRepository,
	locRepo repository.LocationRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	generalRepo := NewGeneralProductRepository(tx)
	detailedRepo := NewDetailedProductRepository(tx)
	movRepo := NewMovementRepository(tx)
	locRepo := NewLocationRepository(tx)

	if err := fn(generalRepo, detailedRepo, movRepo, locRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
