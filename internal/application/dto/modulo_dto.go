package dto

// ModuloInfo entrada del menú de módulos visibles.
type ModuloInfo struct {
	Key    string `json:"key"`
	Nombre string `json:"nombre"`
	Ruta   string `json:"ruta"`
	Icono  string `json:"icono"`
}

// ModuloResponse fila del catálogo de módulos (roles asignables).
type ModuloResponse struct {
	ID          string `json:"id"`
	Nombre      string `json:"nombre"`
	Descripcion string `json:"descripcion"`
}

// RolPermisosResponse permisos asignados a un rol y módulos que habilitan.
type RolPermisosResponse struct {
	Rol      string            `json:"rol"`
	Permisos []PermisoResponse `json:"permisos"`
	Modulos  []ModuloInfo      `json:"modulos"`
}

// SetPermisosRequest reemplaza el conjunto de permisos de un rol.
type SetPermisosRequest struct {
	PermisoIDs []string `json:"permiso_ids" validate:"dive,uuid"`
}

// AssignPermisoRequest asigna un permiso a un rol.
type AssignPermisoRequest struct {
	PermisoID string `json:"permiso_id" validate:"required,uuid"`
}
