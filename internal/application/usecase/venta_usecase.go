package usecase

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/ventas-instalaciones/internal/application/dto"
	"github.com/jhoicas/ventas-instalaciones/internal/domain"
	"github.com/jhoicas/ventas-instalaciones/internal/domain/entity"
	"github.com/jhoicas/ventas-instalaciones/internal/domain/repository"
	"github.com/jhoicas/ventas-instalaciones/pkg/colombia"
)

// VentaUseCase registro y consulta de ventas.
type VentaUseCase struct {
	repo     repository.VentaRepository
	usuarios repository.AdministradorRepository
	exporter VentaExporter
	audit    Auditor
}

// NewVentaUseCase construye el caso de uso. exporter puede ser nil si no se expone el CSV.
func NewVentaUseCase(repo repository.VentaRepository, usuarios repository.AdministradorRepository, exporter VentaExporter, audit Auditor) *VentaUseCase {
	return &VentaUseCase{repo: repo, usuarios: usuarios, exporter: exporter, audit: auditorOrNop(audit)}
}

// Create registra la venta. El vendedor es el usuario en sesión y la fecha vacía es hoy.
func (uc *VentaUseCase) Create(ctx context.Context, actor Actor, in dto.CreateVentaRequest) (*dto.VentaResponse, error) {
	vendedor, err := uc.vendedorCedula(ctx, actor)
	if err != nil {
		return nil, err
	}
	fecha := today()
	if in.Fecha != "" {
		f, err := parseDate(in.Fecha)
		if err != nil {
			return nil, fmt.Errorf("%w: fecha", domain.ErrInvalidInput)
		}
		fecha = *f
	}
	v := &entity.Venta{
		ID:             uuid.New().String(),
		Cedula:         strings.TrimSpace(in.Cedula),
		Nombre:         strings.TrimSpace(in.Nombre),
		Telefono1:      colombia.NormalizeTelefono(in.Telefono1),
		Telefono2:      colombia.NormalizeTelefono(in.Telefono2),
		Email:          strings.ToLower(strings.TrimSpace(in.Email)),
		Municipio:      strings.TrimSpace(in.Municipio),
		Vereda:         strings.TrimSpace(in.Vereda),
		Coordenadas:    strings.ReplaceAll(in.Coordenadas, " ", ""),
		Tecnologia:     in.Tecnologia,
		Plan:           strings.TrimSpace(in.Plan),
		NumServicio:    strings.TrimSpace(in.NumServicio),
		Fecha:          fecha,
		Notas:          strings.TrimSpace(in.Notas),
		VendedorCedula: vendedor,
		CreatedAt:      time.Now(),
	}
	if v.Cedula == "" || v.Nombre == "" || v.Telefono1 == "" {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.repo.Create(ctx, v); err != nil {
		return nil, err
	}
	uc.audit.Record(ctx, actor, entity.AccionCrear, "venta", v.ID, v.Cedula)
	return ToVentaResponse(v), nil
}

// GetByID obtiene una venta.
func (uc *VentaUseCase) GetByID(ctx context.Context, id string) (*dto.VentaResponse, error) {
	v, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, domain.ErrNotFound
	}
	return ToVentaResponse(v), nil
}

// Update aplica los campos presentes. El vendedor original no cambia.
func (uc *VentaUseCase) Update(ctx context.Context, actor Actor, id string, in dto.UpdateVentaRequest) (*dto.VentaResponse, error) {
	v, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, domain.ErrNotFound
	}
	setTrimmed(&v.Cedula, in.Cedula)
	setTrimmed(&v.Nombre, in.Nombre)
	if in.Telefono1 != nil {
		v.Telefono1 = colombia.NormalizeTelefono(*in.Telefono1)
	}
	if in.Telefono2 != nil {
		v.Telefono2 = colombia.NormalizeTelefono(*in.Telefono2)
	}
	if in.Email != nil {
		v.Email = strings.ToLower(strings.TrimSpace(*in.Email))
	}
	setTrimmed(&v.Municipio, in.Municipio)
	setTrimmed(&v.Vereda, in.Vereda)
	if in.Coordenadas != nil {
		v.Coordenadas = strings.ReplaceAll(*in.Coordenadas, " ", "")
	}
	setTrimmed(&v.Tecnologia, in.Tecnologia)
	setTrimmed(&v.Plan, in.Plan)
	setTrimmed(&v.NumServicio, in.NumServicio)
	setTrimmed(&v.Notas, in.Notas)
	if in.Fecha != nil {
		f, err := parseDate(*in.Fecha)
		if err != nil || f == nil {
			return nil, fmt.Errorf("%w: fecha", domain.ErrInvalidInput)
		}
		v.Fecha = *f
	}
	if v.Cedula == "" || v.Nombre == "" || v.Telefono1 == "" || v.Municipio == "" || v.Plan == "" {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.repo.Update(ctx, v); err != nil {
		return nil, err
	}
	uc.audit.Record(ctx, actor, entity.AccionActualizar, "venta", v.ID, v.Cedula)
	return ToVentaResponse(v), nil
}

// Delete elimina una venta.
func (uc *VentaUseCase) Delete(ctx context.Context, actor Actor, id string) error {
	v, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if v == nil {
		return domain.ErrNotFound
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	uc.audit.Record(ctx, actor, entity.AccionEliminar, "venta", v.ID, v.Cedula)
	return nil
}

// List lista ventas con filtros y paginación.
func (uc *VentaUseCase) List(ctx context.Context, q dto.VentaListQuery) (*dto.VentaListResponse, error) {
	desde, hasta, err := ParseRange(q.Desde, q.Hasta)
	if err != nil {
		return nil, err
	}
	limit, offset := normalizePage(q.Limit, q.Offset)
	list, total, err := uc.repo.List(ctx, repository.VentaFilter{
		Search:         strings.TrimSpace(q.Search),
		Municipio:      strings.TrimSpace(q.Municipio),
		Tecnologia:     strings.TrimSpace(q.Tecnologia),
		VendedorCedula: strings.TrimSpace(q.Vendedor),
		Desde:          desde,
		Hasta:          hasta,
		Limit:          limit,
		Offset:         offset,
	})
	if err != nil {
		return nil, err
	}
	out := &dto.VentaListResponse{
		Items: make([]dto.VentaResponse, 0, len(list)),
		Page:  dto.PageResponse{Limit: limit, Offset: offset, Total: total},
	}
	for _, v := range list {
		out.Items = append(out.Items, *ToVentaResponse(v))
	}
	return out, nil
}

// ExportCSV escribe en w las ventas del rango. Sin rango exporta el mes en curso.
func (uc *VentaUseCase) ExportCSV(ctx context.Context, actor Actor, desdeStr, hastaStr string, w io.Writer) error {
	if uc.exporter == nil {
		return fmt.Errorf("venta: exportador no configurado")
	}
	desde, hasta, err := ResolveRange(desdeStr, hastaStr)
	if err != nil {
		return err
	}
	list, err := uc.repo.ListBetween(ctx, desde, endOfDay(hasta))
	if err != nil {
		return err
	}
	if err := uc.exporter.WriteVentas(w, list); err != nil {
		return fmt.Errorf("venta: exportar csv: %w", err)
	}
	uc.audit.Record(ctx, actor, "exportar", "venta", "", fmt.Sprintf("%s a %s (%d filas)", formatDate(desde), formatDate(hasta), len(list)))
	return nil
}

func (uc *VentaUseCase) vendedorCedula(ctx context.Context, actor Actor) (string, error) {
	if actor.UserID == "" {
		return "", domain.ErrUnauthorized
	}
	u, err := uc.usuarios.GetByID(ctx, actor.UserID)
	if err != nil {
		return "", err
	}
	if u == nil {
		return "", domain.ErrUserNotFound
	}
	return u.Cedula, nil
}

// ToVentaResponse mapea la entidad al DTO.
func ToVentaResponse(v *entity.Venta) *dto.VentaResponse {
	return &dto.VentaResponse{
		ID:             v.ID,
		Cedula:         v.Cedula,
		Nombre:         v.Nombre,
		Telefono1:      v.Telefono1,
		Telefono2:      v.Telefono2,
		Email:          v.Email,
		Municipio:      v.Municipio,
		Vereda:         v.Vereda,
		Coordenadas:    v.Coordenadas,
		Tecnologia:     v.Tecnologia,
		Plan:           v.Plan,
		NumServicio:    v.NumServicio,
		Fecha:          formatDate(v.Fecha),
		Notas:          v.Notas,
		VendedorCedula: v.VendedorCedula,
		CreatedAt:      v.CreatedAt,
	}
}

func setTrimmed(dst *string, src *string) {
	if src != nil {
		*dst = strings.TrimSpace(*src)
	}
}

// ParseRange interpreta filtros opcionales desde/hasta; hasta incluye el día completo.
func ParseRange(desdeStr, hastaStr string) (*time.Time, *time.Time, error) {
	desde, err := parseDate(desdeStr)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: desde", domain.ErrInvalidInput)
	}
	hasta, err := parseDate(hastaStr)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: hasta", domain.ErrInvalidInput)
	}
	if desde != nil && hasta != nil && desde.After(*hasta) {
		return nil, nil, domain.ErrInvalidDateRange
	}
	if hasta != nil {
		h := endOfDay(*hasta)
		hasta = &h
	}
	return desde, hasta, nil
}

// maxRangeDays tope del rango de dashboard y exportación.
const maxRangeDays = 366

// ResolveRange aplica el rango por defecto: primer día del mes en curso hasta hoy.
// Un rango invertido o de más de maxRangeDays devuelve ErrInvalidDateRange.
func ResolveRange(desdeStr, hastaStr string) (time.Time, time.Time, error) {
	hoy := today()
	desde := time.Date(hoy.Year(), hoy.Month(), 1, 0, 0, 0, 0, hoy.Location())
	hasta := hoy
	if d, err := parseDate(desdeStr); err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: desde", domain.ErrInvalidInput)
	} else if d != nil {
		desde = *d
	}
	if h, err := parseDate(hastaStr); err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: hasta", domain.ErrInvalidInput)
	} else if h != nil {
		hasta = *h
	}
	if desde.After(hasta) || hasta.After(desde.AddDate(0, 0, maxRangeDays)) {
		return time.Time{}, time.Time{}, domain.ErrInvalidDateRange
	}
	return desde, hasta, nil
}
