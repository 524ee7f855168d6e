// Package export escribe el reporte de ventas en CSV para abrir directamente en Excel.
package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/ventas-instalaciones/internal/application/usecase"
	"github.com/jhoicas/ventas-instalaciones/internal/domain/entity"
)

var _ usecase.VentaExporter = (*CSVExporter)(nil)

var ventasHeader = []string{
	"Fecha", "Cédula", "Nombre", "Teléfono 1", "Teléfono 2", "Email", "Municipio", "Vereda",
	"Coordenadas", "Tecnología", "Plan", "N° servicio", "Vendedor", "Notas",
}

// CSVExporter separa con ';' y codifica en Windows-1252, que es lo que Excel en español espera.
type CSVExporter struct{}

// NewCSVExporter construye el exportador.
func NewCSVExporter() *CSVExporter { return &CSVExporter{} }

// WriteVentas escribe encabezado y una fila por venta. Los caracteres sin equivalente en
// Windows-1252 se reemplazan en lugar de abortar el reporte.
func (e *CSVExporter) WriteVentas(w io.Writer, ventas []*entity.Venta) error {
	enc := transform.NewWriter(w, charmap.Windows1252.NewEncoder())
	cw := csv.NewWriter(enc)
	cw.Comma = ';'
	cw.UseCRLF = true

	if err := cw.Write(encodable(ventasHeader)); err != nil {
		return fmt.Errorf("export: encabezado: %w", err)
	}
	for _, v := range ventas {
		rec := []string{
			v.Fecha.Format("02/01/2006"), v.Cedula, v.Nombre, v.Telefono1, v.Telefono2, v.Email,
			v.Municipio, v.Vereda, v.Coordenadas, v.Tecnologia, v.Plan, v.NumServicio, v.VendedorCedula, v.Notas,
		}
		if err := cw.Write(encodable(rec)); err != nil {
			return fmt.Errorf("export: venta %s: %w", v.ID, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("export: %w", err)
	}
	return enc.Close()
}

// encodable cambia por '?' las runas que Windows-1252 no representa.
func encodable(rec []string) []string {
	out := make([]string, len(rec))
	for i, s := range rec {
		rs := []rune(s)
		for j, r := range rs {
			if _, ok := charmap.Windows1252.EncodeRune(r); !ok {
				rs[j] = '?'
			}
		}
		out[i] = string(rs)
	}
	return out
}
