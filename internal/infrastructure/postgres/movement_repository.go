package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/gastrostock/gastrostock-api/internal/domain"
	"github.com/gastrostock/gastrostock-api/internal/domain/entity"
	"github.com/gastrostock/gastrostock-api/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

const movementColumns = `id, tipo, producto_id, inventario, negocio_id, transaccion_id, cantidad, unidad, precio_unitario, total, motivo, referencia, usuario_id, fecha_creacion`

// MovementRepo historial de movimientos sobre PostgreSQL (usable con pool o tx).
// Solo inserta y consulta: la tabla movimientos no admite UPDATE ni DELETE
// desde el núcleo.
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// Create persiste un movimiento. Asigna ID y timestamp de servidor si faltan.
func (r *MovementRepo) Create(ctx context.Context, m *entity.Movement) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now()
	}
	query := `
		INSERT INTO movimientos (id, tipo, producto_id, inventario, negocio_id, transaccion_id, cantidad, unidad, precio_unitario, total, motivo, referencia, usuario_id, fecha_creacion)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(ctx, query,
		m.ID, m.Type, m.ProductID, m.Partition, m.LocationID, m.TransactionID,
		m.Quantity, m.Unit, m.UnitPrice, m.Total, m.Reason, m.Reference,
		m.UserID, m.CreatedAt,
	)
	if err != nil {
		return domain.WrapBackend("insert movimiento", err)
	}
	return nil
}

func scanMovement(row pgx.Row) (*entity.Movement, error) {
	var m entity.Movement
	err := row.Scan(
		&m.ID, &m.Type, &m.ProductID, &m.Partition, &m.LocationID, &m.TransactionID,
		&m.Quantity, &m.Unit, &m.UnitPrice, &m.Total, &m.Reason, &m.Reference,
		&m.UserID, &m.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MovementRepo) queryMany(ctx context.Context, query string, args ...any) ([]*entity.Movement, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, domain.WrapBackend("list movimientos", err)
	}
	defer rows.Close()
	var list []*entity.Movement
	for rows.Next() {
		m, err := scanMovement(rows)
		if err != nil {
			return nil, domain.WrapBackend("scan movimiento", err)
		}
		list = append(list, m)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.WrapBackend("rows movimientos", err)
	}
	return list, nil
}

// GetByID obtiene un movimiento por ID, o nil si no existe.
func (r *MovementRepo) GetByID(ctx context.Context, id string) (*entity.Movement, error) {
	query := `SELECT ` + movementColumns + ` FROM movimientos WHERE id = $1`
	m, err := scanMovement(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, domain.WrapBackend("get movimiento", err)
	}
	return m, nil
}

// ListByProduct movimientos de un producto en una partición, más reciente primero.
func (r *MovementRepo) ListByProduct(ctx context.Context, productID, partition string, limit int) ([]*entity.Movement, error) {
	query := `SELECT ` + movementColumns + ` FROM movimientos
		WHERE producto_id = $1 AND inventario = $2
		ORDER BY fecha_creacion DESC LIMIT $3`
	return r.queryMany(ctx, query, productID, partition, limit)
}

// ListByLocation movimientos de un negocio, más reciente primero.
func (r *MovementRepo) ListByLocation(ctx context.Context, locationID string, limit int) ([]*entity.Movement, error) {
	query := `SELECT ` + movementColumns + ` FROM movimientos
		WHERE negocio_id = $1
		ORDER BY fecha_creacion DESC LIMIT $2`
	return r.queryMany(ctx, query, locationID, limit)
}

// ListByType movimientos de un tipo, más reciente primero.
func (r *MovementRepo) ListByType(ctx context.Context, movementType string, limit int) ([]*entity.Movement, error) {
	query := `SELECT ` + movementColumns + ` FROM movimientos
		WHERE tipo = $1
		ORDER BY fecha_creacion DESC LIMIT $2`
	return r.queryMany(ctx, query, movementType, limit)
}

// Recent movimientos desde el umbral dado, más reciente primero.
func (r *MovementRepo) Recent(ctx context.Context, since time.Time) ([]*entity.Movement, error) {
	query := `SELECT ` + movementColumns + ` FROM movimientos
		WHERE fecha_creacion >= $1
		ORDER BY fecha_creacion DESC`
	return r.queryMany(ctx, query, since)
}
