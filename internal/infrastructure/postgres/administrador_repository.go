package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/ventas-instalaciones/internal/domain"
	"github.com/jhoicas/ventas-instalaciones/internal/domain/entity"
	"github.com/jhoicas/ventas-instalaciones/internal/domain/repository"
)

var _ repository.AdministradorRepository = (*AdministradorRepo)(nil)

const administradorColumns = `id, cedula, nombre, email, password, modulo, fecha_creacion`

// AdministradorRepo implementación del puerto AdministradorRepository sobre PostgreSQL.
type AdministradorRepo struct {
	q Querier
}

// NewAdministradorRepository construye el adaptador. Pasar pool o tx (Querier).
func NewAdministradorRepository(q Querier) *AdministradorRepo {
	return &AdministradorRepo{q: q}
}

// Create persiste un nuevo usuario.
func (r *AdministradorRepo) Create(ctx context.Context, a *entity.Administrador) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO administrador (`+administradorColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		a.ID, a.Cedula, a.Nombre, a.Email, a.PasswordHash, a.Modulo, a.FechaCreacion,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert administrador: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario por ID.
func (r *AdministradorRepo) GetByID(ctx context.Context, id string) (*entity.Administrador, error) {
	return r.getOne(ctx, "id::text = $1", id)
}

// GetByEmail obtiene un usuario por email (se guardan en minúscula).
func (r *AdministradorRepo) GetByEmail(ctx context.Context, email string) (*entity.Administrador, error) {
	return r.getOne(ctx, "email = LOWER($1)", email)
}

// GetByCedula obtiene un usuario por cédula.
func (r *AdministradorRepo) GetByCedula(ctx context.Context, cedula string) (*entity.Administrador, error) {
	return r.getOne(ctx, "cedula = $1", cedula)
}

func (r *AdministradorRepo) getOne(ctx context.Context, cond string, arg any) (*entity.Administrador, error) {
	var a entity.Administrador
	err := r.q.QueryRow(ctx, `SELECT `+administradorColumns+` FROM administrador WHERE `+cond, arg).Scan(
		&a.ID, &a.Cedula, &a.Nombre, &a.Email, &a.PasswordHash, &a.Modulo, &a.FechaCreacion,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get administrador: %w", err)
	}
	return &a, nil
}

// Update actualiza datos, rol y hash de contraseña.
func (r *AdministradorRepo) Update(ctx context.Context, a *entity.Administrador) error {
	tag, err := r.q.Exec(ctx, `
		UPDATE administrador
		SET cedula = $2, nombre = $3, email = $4, password = $5, modulo = $6
		WHERE id = $1`,
		a.ID, a.Cedula, a.Nombre, a.Email, a.PasswordHash, a.Modulo,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update administrador: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// Delete elimina un usuario.
func (r *AdministradorRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM administrador WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete administrador: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// List lista usuarios por nombre con búsqueda en nombre, cédula o email.
func (r *AdministradorRepo) List(ctx context.Context, f repository.ListFilter) ([]*entity.Administrador, int, error) {
	var w where
	if f.Search != "" {
		w.add("(nombre ILIKE ? OR cedula ILIKE ? OR email ILIKE ?)", likePattern(f.Search))
	}
	var total int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM administrador`+w.sql(), w.args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count administrador: %w", err)
	}
	query := `SELECT ` + administradorColumns + ` FROM administrador` + w.sql() +
		` ORDER BY nombre LIMIT ` + w.next(f.Limit) + ` OFFSET ` + w.next(f.Offset)
	rows, err := r.q.Query(ctx, query, w.args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list administrador: %w", err)
	}
	defer rows.Close()

	var out []*entity.Administrador
	for rows.Next() {
		var a entity.Administrador
		if err := rows.Scan(&a.ID, &a.Cedula, &a.Nombre, &a.Email, &a.PasswordHash, &a.Modulo, &a.FechaCreacion); err != nil {
			return nil, 0, fmt.Errorf("scan administrador: %w", err)
		}
		out = append(out, &a)
	}
	return out, total, rows.Err()
}
