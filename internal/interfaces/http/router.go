package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/ventas-instalaciones/internal/application/analytics"
	"github.com/jhoicas/ventas-instalaciones/internal/application/auth"
	"github.com/jhoicas/ventas-instalaciones/internal/application/usecase"
	"github.com/jhoicas/ventas-instalaciones/internal/domain/entity"
	"github.com/jhoicas/ventas-instalaciones/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC            *auth.AuthUseCase
	ModuleService     *usecase.ModuleService
	VentaUC           *usecase.VentaUseCase
	AgendamientoUC    *usecase.AgendamientoUseCase
	Aprovisionamiento *usecase.AprovisionamientoUseCase
	UsuarioUC         *usecase.UsuarioUseCase
	PermisoUC         *usecase.PermisoUseCase
	AuditoriaUC       *usecase.AuditoriaUseCase
	CatalogoUC        *usecase.CatalogoUseCase
	DocumentosUC      *usecase.DocumentosUseCase
	DashboardUC       *appanalytics.DashboardUseCase
	PanelUC           *appanalytics.PanelUseCase
	Cookie            CookieConfig
	Log               *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	log := deps.Log
	if log == nil {
		log = logger.Nop()
	}
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC, deps.Cookie, log)
	api.Post("/auth/login", authHandler.Login)

	// Rutas protegidas (cookie de sesión o Bearer)
	protected := api.Group("", AuthMiddleware(deps.AuthUC, deps.Cookie))
	protected.Post("/auth/logout", authHandler.Logout)
	protected.Get("/auth/me", authHandler.Me)
	protected.Put("/auth/password", authHandler.ChangePassword)

	mods := deps.ModuleService
	moduloHandler := NewModuloHandler(mods, log)
	protected.Get("/modulos/visibles", moduloHandler.Visible)

	auditoriaHandler := NewAuditoriaHandler(deps.AuditoriaUC, deps.CatalogoUC, log)
	protected.Get("/catalogos/municipios", auditoriaHandler.Municipios)

	// Dashboard y panel de prioridades
	dashboardHandler := NewDashboardHandler(deps.DashboardUC, deps.PanelUC, log)
	protected.Get("/dashboard", RequireModule(entity.ModuloDashboard, mods, log), dashboardHandler.GetDashboard)
	protected.Get("/panel", RequireModule(entity.ModuloDashboard, mods, log), dashboardHandler.GetPanel)

	// Ventas; export va antes de /:id
	ventaHandler := NewVentaHandler(deps.VentaUC, deps.DocumentosUC, log)
	ventas := protected.Group("/ventas", RequireModule(entity.ModuloVentas, mods, log))
	ventas.Get("/export", RequirePermission(entity.PermisoExportarVentas, mods, log), ventaHandler.Export)
	ventas.Post("/", ventaHandler.Create)
	ventas.Get("/", ventaHandler.List)
	ventas.Get("/:id", ventaHandler.GetByID)
	ventas.Get("/:id/orden", ventaHandler.Orden)
	ventas.Put("/:id", ventaHandler.Update)
	ventas.Delete("/:id", ventaHandler.Delete)

	agendamientoHandler := NewAgendamientoHandler(deps.AgendamientoUC, log)
	agendamiento := protected.Group("/agendamiento", RequireModule(entity.ModuloAgendamiento, mods, log))
	agendamiento.Post("/", agendamientoHandler.Create)
	agendamiento.Get("/", agendamientoHandler.List)
	agendamiento.Get("/:id", agendamientoHandler.GetByID)
	agendamiento.Put("/:id", agendamientoHandler.Update)
	agendamiento.Delete("/:id", agendamientoHandler.Delete)

	aprovHandler := NewAprovisionamientoHandler(deps.Aprovisionamiento, log)
	aprov := protected.Group("/aprovisionamiento", RequireModule(entity.ModuloAprovisionamiento, mods, log))
	aprov.Get("/cliente/:cedula", aprovHandler.Cliente)
	aprov.Post("/", aprovHandler.Create)
	aprov.Get("/", aprovHandler.List)
	aprov.Get("/:id", aprovHandler.GetByID)
	aprov.Put("/:id", aprovHandler.Update)
	aprov.Delete("/:id", aprovHandler.Delete)

	usuarioHandler := NewUsuarioHandler(deps.UsuarioUC, log)
	usuarios := protected.Group("/usuarios", RequireModule(entity.ModuloUsuarios, mods, log))
	usuarios.Post("/", usuarioHandler.Create)
	usuarios.Get("/", usuarioHandler.List)
	usuarios.Get("/:id", usuarioHandler.GetByID)
	usuarios.Put("/:id", usuarioHandler.Update)
	usuarios.Delete("/:id", usuarioHandler.Delete)

	// Permisos, módulos y roles comparten el módulo permisos
	gatePermisos := RequireModule(entity.ModuloPermisos, mods, log)
	permisoHandler := NewPermisoHandler(deps.PermisoUC, log)
	permisos := protected.Group("/permisos", gatePermisos)
	permisos.Post("/", permisoHandler.Create)
	permisos.Get("/", permisoHandler.List)
	permisos.Get("/:id", permisoHandler.GetByID)
	permisos.Put("/:id", permisoHandler.Update)
	permisos.Delete("/:id", permisoHandler.Delete)

	protected.Get("/modulos", gatePermisos, moduloHandler.List)
	roles := protected.Group("/roles", gatePermisos)
	roles.Get("/", moduloHandler.Roles)
	roles.Get("/:rol/permisos", moduloHandler.RolPermisos)
	roles.Put("/:rol/permisos", moduloHandler.SetRolPermisos)
	roles.Post("/:rol/permisos", moduloHandler.AssignPermiso)
	roles.Delete("/:rol/permisos/:permisoId", moduloHandler.RevokePermiso)

	protected.Get("/auditoria", RequireModule(entity.ModuloAuditoria, mods, log), auditoriaHandler.List)
}
