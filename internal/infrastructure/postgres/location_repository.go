package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/gastrostock/gastrostock-api/internal/domain"
	"github.com/gastrostock/gastrostock-api/internal/domain/entity"
	"github.com/gastrostock/gastrostock-api/internal/domain/repository"
)

var _ repository.LocationRepository = (*LocationRepo)(nil)

const locationColumns = `id, nombre, direccion, telefono, email, activo, fecha_creacion, fecha_actualizacion`

// LocationRepo acceso a la tabla negocios (usable con pool o tx).
type LocationRepo struct {
	q Querier
}

// NewLocationRepository construye el adaptador. Pasar pool o tx (Querier).
func NewLocationRepository(q Querier) *LocationRepo {
	return &LocationRepo{q: q}
}

func scanLocation(row pgx.Row) (*entity.Location, error) {
	var l entity.Location
	err := row.Scan(&l.ID, &l.Name, &l.Address, &l.Phone, &l.Email, &l.Active, &l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &l, nil
}

// List devuelve los negocios ordenados por nombre.
func (r *LocationRepo) List(ctx context.Context, activeOnly bool) ([]*entity.Location, error) {
	query := `SELECT ` + locationColumns + ` FROM negocios`
	if activeOnly {
		query += ` WHERE activo = true`
	}
	query += ` ORDER BY nombre ASC`

	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, domain.WrapBackend("list negocios", err)
	}
	defer rows.Close()
	var list []*entity.Location
	for rows.Next() {
		l, err := scanLocation(rows)
		if err != nil {
			return nil, domain.WrapBackend("scan negocio", err)
		}
		list = append(list, l)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.WrapBackend("rows negocios", err)
	}
	return list, nil
}

// GetByID obtiene un negocio por ID, o nil si no existe.
func (r *LocationRepo) GetByID(ctx context.Context, id string) (*entity.Location, error) {
	query := `SELECT ` + locationColumns + ` FROM negocios WHERE id = $1`
	l, err := scanLocation(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, domain.WrapBackend("get negocio", err)
	}
	return l, nil
}

// Create persiste un nuevo negocio.
func (r *LocationRepo) Create(ctx context.Context, l *entity.Location) error {
	query := `
		INSERT INTO negocios (id, nombre, direccion, telefono, email, activo, fecha_creacion, fecha_actualizacion)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		l.ID, l.Name, l.Address, l.Phone, l.Email, l.Active, l.CreatedAt, l.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return domain.WrapBackend("insert negocio", err)
	}
	return nil
}

// Update actualiza los datos de contacto del negocio.
func (r *LocationRepo) Update(ctx context.Context, l *entity.Location) error {
	query := `
		UPDATE negocios SET nombre = $2, direccion = $3, telefono = $4, email = $5, fecha_actualizacion = $6
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query, l.ID, l.Name, l.Address, l.Phone, l.Email, l.UpdatedAt)
	if err != nil {
		return domain.WrapBackend("update negocio", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// SoftDelete marca el negocio como inactivo.
func (r *LocationRepo) SoftDelete(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE negocios SET activo = false, fecha_actualizacion = now() WHERE id = $1`, id)
	if err != nil {
		return domain.WrapBackend("soft delete negocio", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
