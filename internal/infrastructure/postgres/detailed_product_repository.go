package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/gastrostock/gastrostock-api/internal/domain"
	"github.com/gastrostock/gastrostock-api/internal/domain/entity"
	"github.com/gastrostock/gastrostock-api/internal/domain/repository"
)

var _ repository.DetailedProductRepository = (*DetailedProductRepo)(nil)

const detailedProductColumns = `id, nombre, categoria, unidad, stock, stock_minimo, precio, estado, imagen_url, activo, negocio_id, producto_general_id, fecha_creacion, fecha_actualizacion`

// DetailedProductRepo acceso a inventario_detallado sobre PostgreSQL (usable con pool o tx).
type DetailedProductRepo struct {
	q Querier
}

// NewDetailedProductRepository construye el adaptador. Pasar pool o tx (Querier).
func NewDetailedProductRepository(q Querier) *DetailedProductRepo {
	return &DetailedProductRepo{q: q}
}

func scanDetailedProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(
		&p.ID, &p.Name, &p.Category, &p.Unit, &p.Stock, &p.MinStock, &p.Price,
		&p.Status, &p.ImageURL, &p.Active, &p.LocationID, &p.SourceID,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *DetailedProductRepo) queryMany(ctx context.Context, query string, args ...any) ([]*entity.Product, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, domain.WrapBackend("list inventario_detallado", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		p, err := scanDetailedProduct(rows)
		if err != nil {
			return nil, domain.WrapBackend("scan producto detallado", err)
		}
		list = append(list, p)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.WrapBackend("rows inventario_detallado", err)
	}
	return list, nil
}

// List devuelve todos los productos detallados ordenados por nombre.
func (r *DetailedProductRepo) List(ctx context.Context, activeOnly bool) ([]*entity.Product, error) {
	query := `SELECT ` + detailedProductColumns + ` FROM inventario_detallado`
	if activeOnly {
		query += ` WHERE activo = true`
	}
	query += ` ORDER BY nombre ASC`
	return r.queryMany(ctx, query)
}

// ListByLocation filtra por negocio dueño, ordenado por nombre.
func (r *DetailedProductRepo) ListByLocation(ctx context.Context, locationID string, activeOnly bool) ([]*entity.Product, error) {
	query := `SELECT ` + detailedProductColumns + ` FROM inventario_detallado WHERE negocio_id = $1`
	if activeOnly {
		query += ` AND activo = true`
	}
	query += ` ORDER BY nombre ASC`
	return r.queryMany(ctx, query, locationID)
}

// GetByID obtiene un producto detallado por ID, o nil si no existe.
func (r *DetailedProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	query := `SELECT ` + detailedProductColumns + ` FROM inventario_detallado WHERE id = $1`
	p, err := scanDetailedProduct(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, domain.WrapBackend("get producto detallado", err)
	}
	return p, nil
}

// GetForUpdate obtiene el producto bloqueando la fila (SELECT FOR UPDATE).
func (r *DetailedProductRepo) GetForUpdate(ctx context.Context, id string) (*entity.Product, error) {
	query := `SELECT ` + detailedProductColumns + ` FROM inventario_detallado WHERE id = $1 FOR UPDATE`
	p, err := scanDetailedProduct(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, domain.WrapBackend("get producto detallado for update", err)
	}
	return p, nil
}

// Create persiste un nuevo producto detallado (con negocio y origen opcionales).
func (r *DetailedProductRepo) Create(ctx context.Context, p *entity.Product) error {
	query := `
		INSERT INTO inventario_detallado (id, nombre, categoria, unidad, stock, stock_minimo, precio, estado, imagen_url, activo, negocio_id, producto_general_id, fecha_creacion, fecha_actualizacion)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(ctx, query,
		p.ID, p.Name, p.Category, p.Unit, p.Stock, p.MinStock, p.Price,
		p.Status, p.ImageURL, p.Active, p.LocationID, p.SourceID,
		p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return domain.WrapBackend("insert producto detallado", err)
	}
	return nil
}

// Update escribe los campos descriptivos y el estado. No toca stock.
func (r *DetailedProductRepo) Update(ctx context.Context, p *entity.Product) error {
	query := `
		UPDATE inventario_detallado
		SET nombre = $2, categoria = $3, unidad = $4, stock_minimo = $5, precio = $6,
		    estado = $7, imagen_url = $8, fecha_actualizacion = $9
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query,
		p.ID, p.Name, p.Category, p.Unit, p.MinStock, p.Price,
		p.Status, p.ImageURL, p.UpdatedAt,
	)
	if err != nil {
		return domain.WrapBackend("update producto detallado", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// SoftDelete marca el producto como inactivo.
func (r *DetailedProductRepo) SoftDelete(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE inventario_detallado SET activo = false, fecha_actualizacion = now() WHERE id = $1`, id)
	if err != nil {
		return domain.WrapBackend("soft delete producto detallado", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// SoftDeleteByLocation desactiva todos los productos de un negocio
// (cascada del borrado lógico; correr dentro de la misma tx que el negocio).
func (r *DetailedProductRepo) SoftDeleteByLocation(ctx context.Context, locationID string) error {
	_, err := r.q.Exec(ctx,
		`UPDATE inventario_detallado SET activo = false, fecha_actualizacion = now() WHERE negocio_id = $1 AND activo = true`,
		locationID)
	if err != nil {
		return domain.WrapBackend("soft delete por negocio", err)
	}
	return nil
}

// SetStock escribe stock, estado y fecha_actualizacion en una sola sentencia.
func (r *DetailedProductRepo) SetStock(ctx context.Context, id string, stock decimal.Decimal, status entity.Status) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE inventario_detallado SET stock = $2, estado = $3, fecha_actualizacion = now() WHERE id = $1`,
		id, stock, status)
	if err != nil {
		return domain.WrapBackend("set stock producto detallado", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
