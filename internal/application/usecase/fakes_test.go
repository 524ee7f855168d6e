package usecase

import (
	"context"
	"errors"
	"io"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/jhoicas/ventas-instalaciones/internal/domain/entity"
	"github.com/jhoicas/ventas-instalaciones/internal/domain/repository"
)

var errDB = errors.New("db caída")

type fakeModuloRepo struct {
	modulos  []*entity.Modulo
	permisos map[string]*entity.Permiso // id → permiso
	asignado map[string]map[string]bool // rol → permisoID
	fail     bool
	calls    int
}

func newFakeModuloRepo(permisos ...*entity.Permiso) *fakeModuloRepo {
	r := &fakeModuloRepo{
		modulos: []*entity.Modulo{
			{ID: "m1", Nombre: "Ventas"},
			{ID: "m2", Nombre: "Tecnico"},
		},
		permisos: map[string]*entity.Permiso{},
		asignado: map[string]map[string]bool{},
	}
	for _, p := range permisos {
		r.permisos[p.ID] = p
	}
	return r
}

func (r *fakeModuloRepo) List(context.Context) ([]*entity.Modulo, error) {
	if r.fail {
		return nil, errDB
	}
	return r.modulos, nil
}

func (r *fakeModuloRepo) ExistsByNombre(_ context.Context, nombre string) (bool, error) {
	if r.fail {
		return false, errDB
	}
	for _, m := range r.modulos {
		if m.Nombre == nombre {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeModuloRepo) PermisosByRole(_ context.Context, role string) ([]*entity.Permiso, error) {
	r.calls++
	if r.fail {
		return nil, errDB
	}
	var out []*entity.Permiso
	for id := range r.asignado[role] {
		if p, ok := r.permisos[id]; ok {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Nombre < out[j].Nombre })
	return out, nil
}

func (r *fakeModuloRepo) AssignPermiso(_ context.Context, role, permisoID string) error {
	if r.fail {
		return errDB
	}
	if r.asignado[role] == nil {
		r.asignado[role] = map[string]bool{}
	}
	r.asignado[role][permisoID] = true
	return nil
}

func (r *fakeModuloRepo) RevokePermiso(_ context.Context, role, permisoID string) error {
	delete(r.asignado[role], permisoID)
	return nil
}

func (r *fakeModuloRepo) RevokeAll(_ context.Context, role string) error {
	delete(r.asignado, role)
	return nil
}

// fakeTx aplica fn sobre una copia y solo la confirma si no hay error.
type fakeTx struct {
	repo *fakeModuloRepo
}

func (t fakeTx) RunModulos(ctx context.Context, fn func(repo repository.ModuloRepository) error) error {
	snapshot := map[string]map[string]bool{}
	for rol, ids := range t.repo.asignado {
		snapshot[rol] = map[string]bool{}
		for id := range ids {
			snapshot[rol][id] = true
		}
	}
	if err := fn(t.repo); err != nil {
		t.repo.asignado = snapshot
		return err
	}
	return nil
}

type fakePermisoRepo struct {
	items map[string]*entity.Permiso
}

func newFakePermisoRepo(ps ...*entity.Permiso) *fakePermisoRepo {
	r := &fakePermisoRepo{items: map[string]*entity.Permiso{}}
	for _, p := range ps {
		r.items[p.ID] = p
	}
	return r
}

func (r *fakePermisoRepo) Create(_ context.Context, p *entity.Permiso) error {
	r.items[p.ID] = p
	return nil
}

func (r *fakePermisoRepo) GetByID(_ context.Context, id string) (*entity.Permiso, error) {
	return r.items[id], nil
}

func (r *fakePermisoRepo) GetByNombre(_ context.Context, nombre string) (*entity.Permiso, error) {
	for _, p := range r.items {
		if strings.EqualFold(p.Nombre, nombre) {
			return p, nil
		}
	}
	return nil, nil
}

func (r *fakePermisoRepo) Update(_ context.Context, p *entity.Permiso) error {
	r.items[p.ID] = p
	return nil
}

func (r *fakePermisoRepo) Delete(_ context.Context, id string) error {
	delete(r.items, id)
	return nil
}

func (r *fakePermisoRepo) List(_ context.Context, f repository.ListFilter) ([]*entity.Permiso, int, error) {
	var out []*entity.Permiso
	for _, p := range r.items {
		if f.Search == "" || strings.Contains(strings.ToLower(p.Nombre), strings.ToLower(f.Search)) {
			out = append(out, p)
		}
	}
	return out, len(out), nil
}

type fakeUsuarioRepo struct {
	items map[string]*entity.Administrador
}

func newFakeUsuarioRepo(us ...*entity.Administrador) *fakeUsuarioRepo {
	r := &fakeUsuarioRepo{items: map[string]*entity.Administrador{}}
	for _, u := range us {
		r.items[u.ID] = u
	}
	return r
}

func (r *fakeUsuarioRepo) Create(_ context.Context, a *entity.Administrador) error {
	r.items[a.ID] = a
	return nil
}

func (r *fakeUsuarioRepo) GetByID(_ context.Context, id string) (*entity.Administrador, error) {
	return r.items[id], nil
}

func (r *fakeUsuarioRepo) GetByEmail(_ context.Context, email string) (*entity.Administrador, error) {
	for _, u := range r.items {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUsuarioRepo) GetByCedula(_ context.Context, cedula string) (*entity.Administrador, error) {
	for _, u := range r.items {
		if u.Cedula == cedula {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUsuarioRepo) Update(_ context.Context, a *entity.Administrador) error {
	r.items[a.ID] = a
	return nil
}

func (r *fakeUsuarioRepo) Delete(_ context.Context, id string) error {
	delete(r.items, id)
	return nil
}

func (r *fakeUsuarioRepo) List(context.Context, repository.ListFilter) ([]*entity.Administrador, int, error) {
	out := make([]*entity.Administrador, 0, len(r.items))
	for _, u := range r.items {
		out = append(out, u)
	}
	return out, len(out), nil
}

type fakeVentaRepo struct {
	items    map[string]*entity.Venta
	lastList repository.VentaFilter
}

func newFakeVentaRepo(vs ...*entity.Venta) *fakeVentaRepo {
	r := &fakeVentaRepo{items: map[string]*entity.Venta{}}
	for _, v := range vs {
		r.items[v.ID] = v
	}
	return r
}

func (r *fakeVentaRepo) Create(_ context.Context, v *entity.Venta) error {
	r.items[v.ID] = v
	return nil
}

func (r *fakeVentaRepo) GetByID(_ context.Context, id string) (*entity.Venta, error) {
	return r.items[id], nil
}

func (r *fakeVentaRepo) GetLatestByCedula(_ context.Context, cedula string) (*entity.Venta, error) {
	var latest *entity.Venta
	for _, v := range r.items {
		if v.Cedula == cedula && (latest == nil || v.Fecha.After(latest.Fecha)) {
			latest = v
		}
	}
	return latest, nil
}

func (r *fakeVentaRepo) ExistsByCedula(ctx context.Context, cedula string) (bool, error) {
	v, _ := r.GetLatestByCedula(ctx, cedula)
	return v != nil, nil
}

func (r *fakeVentaRepo) Update(_ context.Context, v *entity.Venta) error {
	r.items[v.ID] = v
	return nil
}

func (r *fakeVentaRepo) Delete(_ context.Context, id string) error {
	delete(r.items, id)
	return nil
}

func (r *fakeVentaRepo) List(_ context.Context, f repository.VentaFilter) ([]*entity.Venta, int, error) {
	r.lastList = f
	out := make([]*entity.Venta, 0, len(r.items))
	for _, v := range r.items {
		out = append(out, v)
	}
	return out, len(out), nil
}

func (r *fakeVentaRepo) ListBetween(_ context.Context, desde, hasta time.Time) ([]*entity.Venta, error) {
	var out []*entity.Venta
	for _, v := range r.items {
		if !v.Fecha.Before(desde) && !v.Fecha.After(hasta) {
			out = append(out, v)
		}
	}
	return out, nil
}

type fakeAgendamientoRepo struct {
	items map[string]*entity.Agendamiento
}

func newFakeAgendamientoRepo(as ...*entity.Agendamiento) *fakeAgendamientoRepo {
	r := &fakeAgendamientoRepo{items: map[string]*entity.Agendamiento{}}
	for _, a := range as {
		r.items[a.ID] = a
	}
	return r
}

func (r *fakeAgendamientoRepo) Create(_ context.Context, a *entity.Agendamiento) error {
	r.items[a.ID] = a
	return nil
}

func (r *fakeAgendamientoRepo) GetByID(_ context.Context, id string) (*entity.Agendamiento, error) {
	a, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *a
	return &cp, nil
}

func (r *fakeAgendamientoRepo) GetLatestByCedula(_ context.Context, cedula string) (*entity.Agendamiento, error) {
	var latest *entity.Agendamiento
	for _, a := range r.items {
		if a.CedulaCliente == cedula && (latest == nil || a.CreatedAt.After(latest.CreatedAt)) {
			latest = a
		}
	}
	return latest, nil
}

func (r *fakeAgendamientoRepo) Update(_ context.Context, a *entity.Agendamiento) error {
	r.items[a.ID] = a
	return nil
}

func (r *fakeAgendamientoRepo) Delete(_ context.Context, id string) error {
	delete(r.items, id)
	return nil
}

func (r *fakeAgendamientoRepo) List(context.Context, repository.AgendamientoFilter) ([]*entity.Agendamiento, int, error) {
	out := make([]*entity.Agendamiento, 0, len(r.items))
	for _, a := range r.items {
		out = append(out, a)
	}
	return out, len(out), nil
}

type fakeAprovRepo struct {
	items map[string]*entity.Aprovisionamiento
}

func newFakeAprovRepo(as ...*entity.Aprovisionamiento) *fakeAprovRepo {
	r := &fakeAprovRepo{items: map[string]*entity.Aprovisionamiento{}}
	for _, a := range as {
		r.items[a.ID] = a
	}
	return r
}

func (r *fakeAprovRepo) Create(_ context.Context, a *entity.Aprovisionamiento) error {
	r.items[a.ID] = a
	return nil
}

func (r *fakeAprovRepo) GetByID(_ context.Context, id string) (*entity.Aprovisionamiento, error) {
	return r.items[id], nil
}

func (r *fakeAprovRepo) GetLatestByCedula(_ context.Context, cedula string) (*entity.Aprovisionamiento, error) {
	var latest *entity.Aprovisionamiento
	for _, a := range r.items {
		if a.CedulaCliente == cedula && (latest == nil || a.CreatedAt.After(latest.CreatedAt)) {
			latest = a
		}
	}
	return latest, nil
}

func (r *fakeAprovRepo) Update(_ context.Context, a *entity.Aprovisionamiento) error {
	r.items[a.ID] = a
	return nil
}

func (r *fakeAprovRepo) Delete(_ context.Context, id string) error {
	delete(r.items, id)
	return nil
}

func (r *fakeAprovRepo) List(context.Context, repository.AprovisionamientoFilter) ([]*entity.Aprovisionamiento, int, error) {
	out := make([]*entity.Aprovisionamiento, 0, len(r.items))
	for _, a := range r.items {
		out = append(out, a)
	}
	return out, len(out), nil
}

type fakeAuditoriaRepo struct {
	mu    sync.Mutex
	items []*entity.Auditoria
	fail  bool
}

func (r *fakeAuditoriaRepo) Create(_ context.Context, a *entity.Auditoria) error {
	if r.fail {
		return errDB
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, a)
	return nil
}

func (r *fakeAuditoriaRepo) List(context.Context, repository.AuditoriaFilter) ([]*entity.Auditoria, int, error) {
	return r.items, len(r.items), nil
}

// recordingAuditor guarda las acciones auditadas.
type recordingAuditor struct {
	mu      sync.Mutex
	entries []string
}

func (a *recordingAuditor) Record(_ context.Context, _ Actor, accion, entidad, _, _ string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.entries = append(a.entries, entidad+":"+accion)
}

type chanNotifier struct {
	sent chan *entity.Agendamiento
	err  error
}

func (n *chanNotifier) NotifyVisita(_ context.Context, _ *entity.Venta, visita *entity.Agendamiento) error {
	n.sent <- visita
	return n.err
}

type lineExporter struct{}

func (lineExporter) WriteVentas(w io.Writer, ventas []*entity.Venta) error {
	for _, v := range ventas {
		if _, err := io.WriteString(w, v.Cedula+"\n"); err != nil {
			return err
		}
	}
	return nil
}
