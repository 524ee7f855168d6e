package entity

import "time"

// Tecnologías de acceso que vende el ISP.
const (
	TecnologiaFibra = "Fibra óptica"
	TecnologiaRadio = "Radio enlace"
)

// Venta registro de una venta de servicio de internet. Cedula identifica al cliente.
type Venta struct {
	ID             string
	Cedula         string
	Nombre         string
	Telefono1      string
	Telefono2      string
	Email          string
	Municipio      string
	Vereda         string
	Coordenadas    string // "lat,lng"
	Tecnologia     string
	Plan           string
	NumServicio    string
	Fecha          time.Time
	Notas          string
	VendedorCedula string
	CreatedAt      time.Time
}
