package entity

// Municipio municipio colombiano con su código DANE.
type Municipio struct {
	Codigo       string
	Nombre       string
	Departamento string
}
