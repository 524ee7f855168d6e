package http_test

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/ventas-instalaciones/internal/application/auth"
	"github.com/jhoicas/ventas-instalaciones/internal/application/usecase"
	"github.com/jhoicas/ventas-instalaciones/internal/domain/entity"
	"github.com/jhoicas/ventas-instalaciones/internal/domain/repository"
	"github.com/jhoicas/ventas-instalaciones/internal/infrastructure/cache"
	apphttp "github.com/jhoicas/ventas-instalaciones/internal/interfaces/http"
	"github.com/jhoicas/ventas-instalaciones/pkg/logger"
)

type memPermisos struct {
	mu    sync.Mutex
	items map[string]*entity.Permiso
	fail  error
}

func newMemPermisos() *memPermisos { return &memPermisos{items: map[string]*entity.Permiso{}} }

func (m *memPermisos) Create(_ context.Context, p *entity.Permiso) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail != nil {
		return m.fail
	}
	cp := *p
	m.items[p.ID] = &cp
	return nil
}

func (m *memPermisos) GetByID(_ context.Context, id string) (*entity.Permiso, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if p, ok := m.items[id]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, nil
}

func (m *memPermisos) GetByNombre(_ context.Context, nombre string) (*entity.Permiso, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, p := range m.items {
		if strings.EqualFold(p.Nombre, nombre) {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memPermisos) Update(_ context.Context, p *entity.Permiso) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *p
	m.items[p.ID] = &cp
	return nil
}

func (m *memPermisos) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.items, id)
	return nil
}

func (m *memPermisos) List(_ context.Context, _ repository.ListFilter) ([]*entity.Permiso, int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*entity.Permiso, 0, len(m.items))
	for _, p := range m.items {
		out = append(out, p)
	}
	return out, len(out), nil
}

func buildPermisoApp(repo repository.PermisoRepository) *fiber.App {
	log := logger.Nop()
	app := fiber.New(fiber.Config{ErrorHandler: apphttp.ErrorHandler(log)})
	h := apphttp.NewPermisoHandler(usecase.NewPermisoUseCase(repo, nil), log)
	app.Post("/api/permisos", h.Create)
	app.Get("/api/permisos/:id", h.GetByID)
	app.Get("/api/permisos", h.List)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path, body string) *http.Response {
	t.Helper()
	return send(t, app, http.MethodPost, path, body)
}

func send(t *testing.T, app *fiber.App, method, path, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestPermisoHandler_CrearYConsultar(t *testing.T) {
	app := buildPermisoApp(newMemPermisos())

	resp := postJSON(t, app, "/api/permisos", `{"nombre":"Exportar ventas","descripcion":"CSV"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, true, body["success"])
	data := body["data"].(map[string]interface{})
	assert.Equal(t, "Exportar ventas", data["nombre"])

	resp = get(t, app, "/api/permisos/"+data["id"].(string), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = get(t, app, "/api/permisos", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	list := decodeBody(t, resp)["data"].(map[string]interface{})
	assert.Len(t, list["items"], 1)
}

func TestPermisoHandler_NombreDuplicado_409(t *testing.T) {
	app := buildPermisoApp(newMemPermisos())
	require.Equal(t, http.StatusCreated, postJSON(t, app, "/api/permisos", `{"nombre":"Ventas"}`).StatusCode)

	resp := postJSON(t, app, "/api/permisos", `{"nombre":"VENTAS"}`)

	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "DUPLICATE", decodeBody(t, resp)["code"])
}

func TestPermisoHandler_NoExiste_404(t *testing.T) {
	app := buildPermisoApp(newMemPermisos())

	resp := get(t, app, "/api/permisos/00000000-0000-0000-0000-00000000dead", nil)

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", decodeBody(t, resp)["code"])
}

func TestPermisoHandler_CuerpoInvalido_400(t *testing.T) {
	app := buildPermisoApp(newMemPermisos())

	resp := postJSON(t, app, "/api/permisos", `{"nombre":`)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INVALID_BODY", decodeBody(t, resp)["code"])
}

func TestPermisoHandler_ErrorInterno_MensajeGenerico(t *testing.T) {
	repo := newMemPermisos()
	repo.fail = errors.New("pq: conexión perdida")
	app := buildPermisoApp(repo)

	resp := postJSON(t, app, "/api/permisos", `{"nombre":"Reportes"}`)

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "INTERNAL", body["code"])
	assert.NotContains(t, body["message"], "pq:")
}

func TestVentaHandler_Validacion_CamposConNombreJSON(t *testing.T) {
	app := fiber.New()
	h := apphttp.NewVentaHandler(nil, nil, logger.Nop())
	app.Post("/api/ventas", h.Create)

	resp := postJSON(t, app, "/api/ventas", `{
		"cedula": "12ab",
		"nombre": "Jo",
		"telefono1": "12345",
		"municipio": "Pasto",
		"coordenadas": "95.1,-77.2",
		"tecnologia": "Satelital",
		"plan": "50 Mbps"
	}`)

	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "VALIDATION", body["code"])
	fields := body["fields"].(map[string]interface{})
	for _, f := range []string{"cedula", "nombre", "telefono1", "coordenadas", "tecnologia"} {
		assert.Contains(t, fields, f)
	}
	assert.NotContains(t, fields, "municipio")
}

func TestAprovisionamientoHandler_MetrosNegativos(t *testing.T) {
	app := fiber.New()
	h := apphttp.NewAprovisionamientoHandler(nil, logger.Nop())
	app.Post("/api/aprovisionamiento", h.Create)

	resp := postJSON(t, app, "/api/aprovisionamiento", `{
		"cedula_cliente": "1085123456",
		"tipo_router_onu": "Huawei HG8145",
		"mac_serial_router": "AA:BB:CC:DD:EE:FF",
		"ip_navegacion": "10.0.0.300",
		"metros_cable": "-5"
	}`)

	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	fields := decodeBody(t, resp)["fields"].(map[string]interface{})
	assert.Contains(t, fields, "metros_cable")
	assert.Contains(t, fields, "ip_navegacion")
	assert.NotContains(t, fields, "mac_serial_router")
}

func TestErrorHandler_RutaInexistente(t *testing.T) {
	app := buildPermisoApp(newMemPermisos())

	resp := get(t, app, "/api/no-existe", nil)

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "NOT_FOUND", body["code"])
}

// ──────────────────────────────────────────────────────────────────────────────
// Contrato de estados: login, venta previa y autoeliminación
// ──────────────────────────────────────────────────────────────────────────────

type memAdmins struct {
	repository.AdministradorRepository
	mu   sync.Mutex
	byID map[string]*entity.Administrador
}

func (m *memAdmins) GetByID(_ context.Context, id string) (*entity.Administrador, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.byID[id], nil
}

func (m *memAdmins) GetByEmail(_ context.Context, email string) (*entity.Administrador, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.byID {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (m *memAdmins) GetByCedula(_ context.Context, cedula string) (*entity.Administrador, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.byID {
		if u.Cedula == cedula {
			return u, nil
		}
	}
	return nil, nil
}

func (m *memAdmins) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.byID, id)
	return nil
}

type catalogoCompleto struct{}

func (catalogoCompleto) VisibleModules(context.Context, string) ([]entity.ModuloInfo, error) {
	return entity.Catalog, nil
}

// sinVentas simula una base sin ventas registradas.
type sinVentas struct{ repository.VentaRepository }

func (sinVentas) GetLatestByCedula(context.Context, string) (*entity.Venta, error) { return nil, nil }

func (sinVentas) ExistsByCedula(context.Context, string) (bool, error) { return false, nil }

func buildLoginApp(t *testing.T) *fiber.App {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("clave1234"), bcrypt.MinCost)
	require.NoError(t, err)
	users := &memAdmins{byID: map[string]*entity.Administrador{
		"u1": {ID: "u1", Cedula: "1098765432", Nombre: "Laura Gómez", Email: "laura@isp.co", PasswordHash: string(hash), Modulo: entity.RoleAdministrador},
	}}
	store := cache.NewMemoryStore()
	uc := auth.NewAuthUseCase(users, catalogoCompleto{}, store, store, nil,
		auth.JWTConfig{Secret: testJWTSecret, Issuer: testIssuer, Timeout: testTimeout},
		auth.LimiterConfig{MaxAttempts: 2, Window: 15 * time.Minute}, nil)

	log := logger.Nop()
	app := fiber.New(fiber.Config{ErrorHandler: apphttp.ErrorHandler(log)})
	app.Post("/api/auth/login", apphttp.NewAuthHandler(uc, apphttp.CookieConfig{}, log).Login)
	return app
}

func TestAuthHandler_Login_CookieHttpOnlyYToken(t *testing.T) {
	app := buildLoginApp(t)

	resp := postJSON(t, app, "/api/auth/login", `{"usuario":"laura@isp.co","password":"clave1234"}`)

	require.Equal(t, http.StatusOK, resp.StatusCode)
	ck := sessionCookie(resp)
	require.NotNil(t, ck, "login deja la cookie de sesión")
	assert.True(t, ck.HttpOnly)
	assert.Equal(t, "/", ck.Path)
	assert.Equal(t, http.SameSiteLaxMode, ck.SameSite)
	assert.WithinDuration(t, time.Now().Add(testTimeout), ck.Expires, time.Minute)

	data := decodeBody(t, resp)["data"].(map[string]interface{})
	require.NotEmpty(t, data["token"])
	assert.Equal(t, ck.Value, data["token"], "clientes Bearer reciben el mismo token")
	assert.Len(t, data["modulos"], len(entity.Catalog))
}

func TestAuthHandler_Login_Bloqueo_429(t *testing.T) {
	app := buildLoginApp(t)

	for i := 0; i < 2; i++ {
		resp := postJSON(t, app, "/api/auth/login", `{"usuario":"laura@isp.co","password":"equivocada"}`)
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		assert.Equal(t, "UNAUTHORIZED", decodeBody(t, resp)["code"])
	}

	resp := postJSON(t, app, "/api/auth/login", `{"usuario":"laura@isp.co","password":"clave1234"}`)

	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
	assert.Equal(t, "TOO_MANY_ATTEMPTS", decodeBody(t, resp)["code"])
	assert.Nil(t, sessionCookie(resp))
}

func TestAgendamientoHandler_SinVenta_422(t *testing.T) {
	log := logger.Nop()
	app := fiber.New(fiber.Config{ErrorHandler: apphttp.ErrorHandler(log)})
	h := apphttp.NewAgendamientoHandler(usecase.NewAgendamientoUseCase(nil, sinVentas{}, nil, nil, log), log)
	app.Post("/api/agendamiento", h.Create)

	resp := postJSON(t, app, "/api/agendamiento", `{
		"cedula_cliente": "1085123456",
		"fecha_visita": "`+time.Now().AddDate(0, 0, 3).Format("2006-01-02")+`",
		"franja_visita": "AM",
		"tecnico_asignado": "Julián Rojas"
	}`)

	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Equal(t, "VENTA_NOT_FOUND", decodeBody(t, resp)["code"])
}

func TestAprovisionamientoHandler_SinVenta_422(t *testing.T) {
	log := logger.Nop()
	app := fiber.New(fiber.Config{ErrorHandler: apphttp.ErrorHandler(log)})
	h := apphttp.NewAprovisionamientoHandler(usecase.NewAprovisionamientoUseCase(nil, sinVentas{}, nil, nil), log)
	app.Post("/api/aprovisionamiento", h.Create)

	resp := postJSON(t, app, "/api/aprovisionamiento", `{
		"cedula_cliente": "1085123456",
		"tipo_router_onu": "Huawei HG8145",
		"mac_serial_router": "AA:BB:CC:DD:EE:FF",
		"metros_cable": "12.5"
	}`)

	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Equal(t, "VENTA_NOT_FOUND", decodeBody(t, resp)["code"])
}

func TestUsuarioHandler_EliminarseASiMismo_400(t *testing.T) {
	repo := &memAdmins{byID: map[string]*entity.Administrador{
		"u1": {ID: "u1", Email: "laura@isp.co", Modulo: entity.RoleAdministrador},
		"u2": {ID: "u2", Email: "pedro@isp.co", Modulo: "Ventas"},
	}}
	log := logger.Nop()
	app := fiber.New(fiber.Config{ErrorHandler: apphttp.ErrorHandler(log)})
	app.Use(func(c *fiber.Ctx) error {
		c.Locals(apphttp.LocalUserID, "u1")
		c.Locals(apphttp.LocalRole, entity.RoleAdministrador)
		return c.Next()
	})
	app.Delete("/api/usuarios/:id", apphttp.NewUsuarioHandler(usecase.NewUsuarioUseCase(repo, nil, nil), log).Delete)

	resp := send(t, app, http.MethodDelete, "/api/usuarios/u1", "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "CANNOT_DELETE_SELF", decodeBody(t, resp)["code"])
	assert.Contains(t, repo.byID, "u1")

	resp = send(t, app, http.MethodDelete, "/api/usuarios/u2", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotContains(t, repo.byID, "u2")

	resp = send(t, app, http.MethodDelete, "/api/usuarios/u2", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestVentaHandler_Update_MunicipioVacio_400(t *testing.T) {
	app := fiber.New()
	app.Put("/api/ventas/:id", apphttp.NewVentaHandler(nil, nil, logger.Nop()).Update)

	resp := send(t, app, http.MethodPut, "/api/ventas/v1", `{"municipio":"","plan":""}`)

	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "VALIDATION", body["code"])
	fields := body["fields"].(map[string]interface{})
	assert.Contains(t, fields, "municipio")
	assert.Contains(t, fields, "plan")
}

func TestModuloHandler_RevokePermiso_IDInvalido_400(t *testing.T) {
	app := fiber.New()
	app.Delete("/api/roles/:rol/permisos/:permisoId", apphttp.NewModuloHandler(nil, logger.Nop()).RevokePermiso)

	resp := send(t, app, http.MethodDelete, "/api/roles/Ventas/permisos/no-es-uuid", "")

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", decodeBody(t, resp)["code"])
}
