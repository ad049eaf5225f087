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

var _ repository.GeneralProductRepository = (*GeneralProductRepo)(nil)

const generalProductColumns = `id, nombre, categoria, unidad, stock, stock_minimo, precio, estado, imagen_url, activo, fecha_creacion, fecha_actualizacion`

// GeneralProductRepo acceso a inventario_general sobre PostgreSQL (usable con pool o tx).
type GeneralProductRepo struct {
	q Querier
}

// NewGeneralProductRepository construye el adaptador. Pasar pool o tx (Querier).
func NewGeneralProductRepository(q Querier) *GeneralProductRepo {
	return &GeneralProductRepo{q: q}
}

func scanGeneralProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(
		&p.ID, &p.Name, &p.Category, &p.Unit, &p.Stock, &p.MinStock, &p.Price,
		&p.Status, &p.ImageURL, &p.Active, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// List devuelve los productos del catálogo general ordenados por nombre.
func (r *GeneralProductRepo) List(ctx context.Context, activeOnly bool) ([]*entity.Product, error) {
	query := `SELECT ` + generalProductColumns + ` FROM inventario_general`
	if activeOnly {
		query += ` WHERE activo = true`
	}
	query += ` ORDER BY nombre ASC`

	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, domain.WrapBackend("list inventario_general", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		p, err := scanGeneralProduct(rows)
		if err != nil {
			return nil, domain.WrapBackend("scan producto general", err)
		}
		list = append(list, p)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.WrapBackend("rows inventario_general", err)
	}
	return list, nil
}

// GetByID obtiene un producto general por ID, o nil si no existe.
func (r *GeneralProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	query := `SELECT ` + generalProductColumns + ` FROM inventario_general WHERE id = $1`
	p, err := scanGeneralProduct(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, domain.WrapBackend("get producto general", err)
	}
	return p, nil
}

// GetForUpdate obtiene el producto bloqueando la fila (SELECT FOR UPDATE).
// Usar solo dentro de una transacción para serializar mutaciones de stock.
func (r *GeneralProductRepo) GetForUpdate(ctx context.Context, id string) (*entity.Product, error) {
	query := `SELECT ` + generalProductColumns + ` FROM inventario_general WHERE id = $1 FOR UPDATE`
	p, err := scanGeneralProduct(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, domain.WrapBackend("get producto general for update", err)
	}
	return p, nil
}

// Create persiste un nuevo producto general.
func (r *GeneralProductRepo) Create(ctx context.Context, p *entity.Product) error {
	query := `
		INSERT INTO inventario_general (id, nombre, categoria, unidad, stock, stock_minimo, precio, estado, imagen_url, activo, fecha_creacion, fecha_actualizacion)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(ctx, query,
		p.ID, p.Name, p.Category, p.Unit, p.Stock, p.MinStock, p.Price,
		p.Status, p.ImageURL, p.Active, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return domain.WrapBackend("insert producto general", err)
	}
	return nil
}

// Update escribe los campos descriptivos y el estado. No toca stock: esa
// columna solo se escribe vía SetStock.
func (r *GeneralProductRepo) Update(ctx context.Context, p *entity.Product) error {
	query := `
		UPDATE inventario_general
		SET nombre = $2, categoria = $3, unidad = $4, stock_minimo = $5, precio = $6,
		    estado = $7, imagen_url = $8, fecha_actualizacion = $9
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query,
		p.ID, p.Name, p.Category, p.Unit, p.MinStock, p.Price,
		p.Status, p.ImageURL, p.UpdatedAt,
	)
	if err != nil {
		return domain.WrapBackend("update producto general", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// SoftDelete marca el producto como inactivo. Stock e historial quedan intactos.
func (r *GeneralProductRepo) SoftDelete(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE inventario_general SET activo = false, fecha_actualizacion = now() WHERE id = $1`, id)
	if err != nil {
		return domain.WrapBackend("soft delete producto general", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// SetStock escribe stock, estado y fecha_actualizacion en una sola sentencia.
// Única vía de escritura de stock para esta partición.
func (r *GeneralProductRepo) SetStock(ctx context.Context, id string, stock decimal.Decimal, status entity.Status) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE inventario_general SET stock = $2, estado = $3, fecha_actualizacion = now() WHERE id = $1`,
		id, stock, status)
	if err != nil {
		return domain.WrapBackend("set stock producto general", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
