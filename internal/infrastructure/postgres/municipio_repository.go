package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/ventas-instalaciones/internal/domain/entity"
	"github.com/jhoicas/ventas-instalaciones/internal/domain/repository"
)

var _ repository.MunicipioRepository = (*MunicipioRepo)(nil)

// MunicipioRepo catálogo DANE.
type MunicipioRepo struct {
	q Querier
}

// NewMunicipioRepository construye el adaptador.
func NewMunicipioRepository(q Querier) *MunicipioRepo {
	return &MunicipioRepo{q: q}
}

// List devuelve los municipios, opcionalmente de un departamento (sin distinguir mayúsculas).
func (r *MunicipioRepo) List(ctx context.Context, departamento string) ([]*entity.Municipio, error) {
	var w where
	if departamento != "" {
		w.add("LOWER(departamento) = LOWER(?)", departamento)
	}
	rows, err := r.q.Query(ctx, `SELECT codigo, nombre, departamento FROM municipios`+w.sql()+
		` ORDER BY departamento, nombre`, w.args...)
	if err != nil {
		return nil, fmt.Errorf("list municipios: %w", err)
	}
	defer rows.Close()
	var out []*entity.Municipio
	for rows.Next() {
		var m entity.Municipio
		if err := rows.Scan(&m.Codigo, &m.Nombre, &m.Departamento); err != nil {
			return nil, fmt.Errorf("scan municipio: %w", err)
		}
		out = append(out, &m)
	}
	return out, rows.Err()
}

// Upsert carga o actualiza el catálogo en lote. Lo usa el comando de siembra.
func (r *MunicipioRepo) Upsert(ctx context.Context, list []*entity.Municipio) (int, error) {
	batch := &pgx.Batch{}
	for _, m := range list {
		batch.Queue(`
			INSERT INTO municipios (codigo, nombre, departamento) VALUES ($1, $2, $3)
			ON CONFLICT (codigo) DO UPDATE SET nombre = EXCLUDED.nombre, departamento = EXCLUDED.departamento`,
			m.Codigo, m.Nombre, m.Departamento)
	}
	br, ok := r.q.(interface {
		SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults
	})
	if !ok {
		return 0, fmt.Errorf("upsert municipios: el querier no soporta batch")
	}
	res := br.SendBatch(ctx, batch)
	defer res.Close()
	for i := range list {
		if _, err := res.Exec(); err != nil {
			return i, fmt.Errorf("upsert municipio %s: %w", list[i].Codigo, err)
		}
	}
	return len(list), nil
}
