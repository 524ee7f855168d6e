package entity

// Modulo fila del catálogo de módulos (también define los roles asignables).
type Modulo struct {
	ID          string
	Nombre      string
	Descripcion string
}

// Claves de los módulos de la aplicación.
const (
	ModuloDashboard         = "dashboard"
	ModuloVentas            = "ventas"
	ModuloAgendamiento      = "agendamiento"
	ModuloAprovisionamiento = "aprovisionamiento"
	ModuloUsuarios          = "usuarios"
	ModuloPermisos          = "permisos"
	ModuloAuditoria         = "auditoria"
)

// PermisoExportarVentas capacidad que no es un módulo: descarga del CSV de ventas.
const PermisoExportarVentas = "exportar_ventas"

// ModuloInfo entrada del catálogo estático que consume el menú del cliente.
type ModuloInfo struct {
	Key    string
	Nombre string
	Ruta   string
	Icono  string
}

// Catalog catálogo estático de módulos, en el orden en que se muestran.
var Catalog = []ModuloInfo{
	{Key: ModuloDashboard, Nombre: "Dashboard", Ruta: "/dashboard", Icono: "chart-bar"},
	{Key: ModuloVentas, Nombre: "Ventas", Ruta: "/ventas", Icono: "shopping-cart"},
	{Key: ModuloAgendamiento, Nombre: "Agendamiento", Ruta: "/agendamiento", Icono: "calendar"},
	{Key: ModuloAprovisionamiento, Nombre: "Aprovisionamiento", Ruta: "/aprovisionamiento", Icono: "router"},
	{Key: ModuloUsuarios, Nombre: "Usuarios", Ruta: "/usuarios", Icono: "users"},
	{Key: ModuloPermisos, Nombre: "Permisos", Ruta: "/permisos", Icono: "key"},
	{Key: ModuloAuditoria, Nombre: "Auditoría", Ruta: "/auditoria", Icono: "history"},
}
